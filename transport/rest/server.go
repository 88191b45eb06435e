package rest

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Start - starts the HTTP server with the health endpoint.
func Start(port string) error {
	router := echo.New()
	router.HideBanner = true

	router.GET("/ping", pingHandler)

	if err := router.Start(":" + port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func pingHandler(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "pong")
}
