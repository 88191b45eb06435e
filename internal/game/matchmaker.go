package game

import (
	"github.com/google/uuid"

	"github.com/gamegalaxy/tictactoe-backend/internal/apperror"
	"github.com/gamegalaxy/tictactoe-backend/internal/entity"
)

// FindMatch - pairs the requester with the waiting participant, or parks
// the requester in the waiting slot when nobody is waiting. A participant
// still playing an active game is rejected, and a participant already
// occupying the slot never matches itself.
func (that *Manager) FindMatch(requester string) {
	log := that.logger.With("method", "FindMatch", "playerID", requester)

	for _, session := range that.sessions {
		if session.HasPlayer(requester) {
			that.messenger.ToPlayer(requester, EventError, ErrorPayload{Error: apperror.ErrAlreadyInGame.Error()})
			log.Warn("find-match during an active session rejected", "sessionID", session.ID)
			return
		}
	}

	// a leftover pairing from a finished game means the requester walked
	// away from the rematch window; forget it before matching anew
	that.abandonPairings(requester)

	if that.waiting == "" || that.waiting == requester {
		that.waiting = requester
		that.messenger.ToPlayer(requester, EventWaiting, WaitingPayload{Message: "waiting for an opponent"})
		log.Info("player waiting for opponent")
		return
	}

	opponent := that.waiting
	that.waiting = ""

	sessionID := uuid.NewString()
	session := entity.NewSession(sessionID, opponent, requester)
	that.sessions[sessionID] = session
	that.pairings[sessionID] = pairing{playerX: opponent, playerO: requester}

	that.messenger.Join(sessionID, opponent)
	that.messenger.Join(sessionID, requester)

	// first to arrive plays X
	that.messenger.ToPlayer(opponent, EventMatchFound, MatchFoundPayload{
		SessionID: sessionID,
		Mark:      entity.MarkX,
		Opponent:  requester,
	})
	that.messenger.ToPlayer(requester, EventMatchFound, MatchFoundPayload{
		SessionID: sessionID,
		Mark:      entity.MarkO,
		Opponent:  opponent,
	})

	log.Info("match found", "sessionID", sessionID, "opponent", opponent)
}

// abandonPairings - forgets every finished-game pairing the player is part
// of, together with its rematch entries and channel. Only called once the
// player is known to hold no active session.
func (that *Manager) abandonPairings(playerID string) {
	for sessionID, pair := range that.pairings {
		if _, ok := pair.opponentOf(playerID); !ok {
			continue
		}

		delete(that.pairings, sessionID)
		delete(that.rematch, rematchKey{sessionID: sessionID, playerID: pair.playerX})
		delete(that.rematch, rematchKey{sessionID: sessionID, playerID: pair.playerO})
		that.messenger.CloseChannel(sessionID)
	}
}
