package websocket

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/gamegalaxy/tictactoe-backend/internal/game"
)

const eventConnected = "connected"

var (
	errRequireMoveFields = errors.New("make-move requires session_id, row and col")
	errRequireSessionID  = errors.New("request-rematch requires session_id")
)

type dispatcher interface {
	Dispatch(event game.Event)
}

// Server upgrades HTTP connections, assigns each one a participant handle
// and turns validated wire messages into game events. Payload shape is
// checked here so malformed requests never reach the game manager.
type Server struct {
	logger   *slog.Logger
	hub      *Hub
	manager  dispatcher
	upgrader websocket.Upgrader
}

func New(logger *slog.Logger, hub *Hub, manager dispatcher) *Server {
	return &Server{
		logger:  logger,
		hub:     hub,
		manager: manager,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// origin policy is handled by the deployment in front of us
			CheckOrigin: func(_ *http.Request) bool { return true },
		},
	}
}

// Start - starts the WebSocket server.
func (that *Server) Start(port string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", that.handleConnection)

	// no read/write timeouts: connections are long-lived and liveness
	// comes from the ping/pong cycle
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) handleConnection(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "handleConnection")

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	playerID := uuid.NewString()
	client := newClient(playerID, conn)

	that.hub.Add(client)
	go client.writePump(that.logger)

	that.hub.ToPlayer(playerID, eventConnected, ConnectedPayload{PlayerID: playerID})

	log.Info("player connected", "playerID", playerID)

	that.readLoop(client)

	that.hub.Remove(playerID)
	that.manager.Dispatch(game.Event{Action: game.ActionDisconnect, Player: playerID})

	log.Info("player disconnected", "playerID", playerID)
}

// readLoop - reads messages from the client until the connection ends.
func (that *Server) readLoop(client *Client) {
	log := that.logger.With("method", "readLoop", "playerID", client.id)

	defer client.conn.Close()

	_ = client.conn.SetReadDeadline(time.Now().Add(pongWait))
	client.conn.SetPongHandler(func(string) error {
		return client.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var message Message
		if err := client.conn.ReadJSON(&message); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Debug("unexpected close", "error", err)
			}
			return
		}

		if err := that.processMessage(client, &message); err != nil {
			log.Warn("rejected message", "action", message.Action, "error", err)
			that.hub.ToPlayer(client.id, game.EventError, game.ErrorPayload{Error: err.Error()})
		}
	}
}

// processMessage - validates the payload shape and dispatches the event.
func (that *Server) processMessage(client *Client, message *Message) error {
	switch message.Action {
	case game.ActionFindMatch:
		that.manager.Dispatch(game.Event{Action: game.ActionFindMatch, Player: client.id})
		return nil

	case game.ActionMakeMove:
		var payload MovePayload
		if err := json.Unmarshal(message.Payload, &payload); err != nil {
			return fmt.Errorf("invalid make-move payload: %w", err)
		}
		if payload.SessionID == "" || payload.Row == nil || payload.Col == nil {
			return errRequireMoveFields
		}

		that.manager.Dispatch(game.Event{
			Action:    game.ActionMakeMove,
			Player:    client.id,
			SessionID: payload.SessionID,
			Row:       *payload.Row,
			Col:       *payload.Col,
		})
		return nil

	case game.ActionRequestRematch:
		var payload RematchPayload
		if err := json.Unmarshal(message.Payload, &payload); err != nil {
			return fmt.Errorf("invalid request-rematch payload: %w", err)
		}
		if payload.SessionID == "" {
			return errRequireSessionID
		}

		that.manager.Dispatch(game.Event{
			Action:    game.ActionRequestRematch,
			Player:    client.id,
			SessionID: payload.SessionID,
		})
		return nil

	default:
		return fmt.Errorf("unknown action %q", message.Action)
	}
}
