package entity

// Session is the live state of one game between exactly two participants.
// Players maps each mark to the participant handle holding it.
type Session struct {
	ID      string            `json:"id"`
	Board   Board             `json:"board"`
	Players map[string]string `json:"players"`
	Turn    string            `json:"turn"`
}

// NewSession - creates an active session with a fresh board and X to move.
func NewSession(id, playerX, playerO string) *Session {
	return &Session{
		ID:    id,
		Board: NewBoard(),
		Players: map[string]string{
			MarkX: playerX,
			MarkO: playerO,
		},
		Turn: MarkX,
	}
}

// MarkOf - returns the mark held by the given participant.
func (that *Session) MarkOf(playerID string) (string, bool) {
	for mark, id := range that.Players {
		if id == playerID {
			return mark, true
		}
	}

	return "", false
}

func (that *Session) HasPlayer(playerID string) bool {
	_, ok := that.MarkOf(playerID)
	return ok
}
