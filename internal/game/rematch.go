package game

import "github.com/gamegalaxy/tictactoe-backend/internal/entity"

// RequestRematch - records a rematch offer, or completes the handshake when
// the opponent already asked. Both original participants must still be
// connected; once either disconnects the pairing is gone and the request is
// ignored.
func (that *Manager) RequestRematch(requester, sessionID string) {
	log := that.logger.With("method", "RequestRematch", "playerID", requester, "sessionID", sessionID)

	pair, ok := that.pairings[sessionID]
	if !ok {
		log.Debug("rematch request without a live pairing dropped")
		return
	}

	opponent, ok := pair.opponentOf(requester)
	if !ok {
		log.Debug("rematch request from player outside session dropped")
		return
	}

	if _, ok = that.rematch[rematchKey{sessionID: sessionID, playerID: opponent}]; !ok {
		that.rematch[rematchKey{sessionID: sessionID, playerID: requester}] = struct{}{}
		that.messenger.ToPlayer(opponent, EventRematchRequested, nil)
		log.Info("rematch requested", "opponent", opponent)
		return
	}

	// the opponent asked first: both agreed, reset the session under the
	// same id with the same mark assignment as before
	delete(that.rematch, rematchKey{sessionID: sessionID, playerID: opponent})
	delete(that.rematch, rematchKey{sessionID: sessionID, playerID: requester})

	session := entity.NewSession(sessionID, pair.playerX, pair.playerO)
	that.sessions[sessionID] = session

	that.messenger.ToPlayer(pair.playerX, EventRematchAccepted, RematchAcceptedPayload{Mark: entity.MarkX})
	that.messenger.ToPlayer(pair.playerO, EventRematchAccepted, RematchAcceptedPayload{Mark: entity.MarkO})
	that.messenger.ToChannel(sessionID, EventUpdateBoard, BoardPayload{Board: session.Board, Turn: session.Turn})

	log.Info("rematch accepted")
}
