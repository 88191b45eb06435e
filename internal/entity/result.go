package entity

import "time"

// GameResult is the archived record of one finished game.
type GameResult struct {
	SessionID  string    `json:"session_id"`
	Winner     string    `json:"winner,omitempty"`
	WinnerID   string    `json:"winner_id,omitempty"`
	Draw       bool      `json:"draw,omitempty"`
	Players    []string  `json:"players"`
	FinishedAt time.Time `json:"finished_at"`
}
