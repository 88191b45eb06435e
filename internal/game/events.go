package game

import "github.com/gamegalaxy/tictactoe-backend/internal/entity"

// Inbound actions, one per handler. ActionDisconnect is synthesized by the
// transport when a connection ends.
const (
	ActionFindMatch      = "find-match"
	ActionMakeMove       = "make-move"
	ActionRequestRematch = "request-rematch"
	ActionDisconnect     = "disconnect"
)

// Outbound events.
const (
	EventWaiting              = "waiting"
	EventMatchFound           = "match-found"
	EventError                = "error"
	EventUpdateBoard          = "update-board"
	EventGameOver             = "game-over"
	EventRematchRequested     = "rematch-requested"
	EventRematchAccepted      = "rematch-accepted"
	EventOpponentDisconnected = "opponent-disconnected"
)

// Event is one validated inbound event from a participant. The transport
// fills Player with the participant handle it assigned to the connection.
type Event struct {
	Action    string
	Player    string
	SessionID string
	Row       int
	Col       int
}

type WaitingPayload struct {
	Message string `json:"message"`
}

type MatchFoundPayload struct {
	SessionID string `json:"session_id"`
	Mark      string `json:"mark"`
	Opponent  string `json:"opponent"`
}

type ErrorPayload struct {
	Error string `json:"error"`
}

type BoardPayload struct {
	Board entity.Board `json:"board"`
	Turn  string       `json:"turn"`
}

type GameOverPayload struct {
	Winner   string `json:"winner,omitempty"`
	WinnerID string `json:"winner_id,omitempty"`
	Draw     bool   `json:"draw,omitempty"`
}

type RematchAcceptedPayload struct {
	Mark string `json:"mark"`
}

// Messenger delivers outbound events. The transport owns connections and
// broadcast channels; the manager only names participants and channels.
// Implementations must not block the caller.
type Messenger interface {
	ToPlayer(playerID, event string, payload any)
	ToChannel(channelID, event string, payload any)
	Join(channelID, playerID string)
	CloseChannel(channelID string)
}
