package game

// Disconnect - removes every trace of a departing participant: the waiting
// slot, the session it was part of (ending the game for the opponent), its
// pairing and the session's rematch entries. Each step is a no-op when its
// precondition does not hold.
func (that *Manager) Disconnect(playerID string) {
	log := that.logger.With("method", "Disconnect", "playerID", playerID)

	if that.waiting == playerID {
		that.waiting = ""
		log.Info("waiting player left")
	}

	for sessionID, pair := range that.pairings {
		if _, ok := pair.opponentOf(playerID); !ok {
			continue
		}

		that.messenger.ToChannel(sessionID, EventOpponentDisconnected, nil)

		delete(that.sessions, sessionID)
		delete(that.pairings, sessionID)
		delete(that.rematch, rematchKey{sessionID: sessionID, playerID: pair.playerX})
		delete(that.rematch, rematchKey{sessionID: sessionID, playerID: pair.playerO})
		that.messenger.CloseChannel(sessionID)

		log.Info("session ended by disconnect", "sessionID", sessionID)
	}
}
