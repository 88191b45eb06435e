package websocket

import "encoding/json"

// Message is the wire envelope for both directions: an action name plus an
// action-specific payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type ConnectedPayload struct {
	PlayerID string `json:"player_id"`
}

// MovePayload carries a make-move request. Row and Col are pointers so a
// missing field is distinguishable from a legal zero.
type MovePayload struct {
	SessionID string `json:"session_id"`
	Row       *int   `json:"row"`
	Col       *int   `json:"col"`
}

type RematchPayload struct {
	SessionID string `json:"session_id"`
}
