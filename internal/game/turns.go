package game

import (
	"context"
	"time"

	"github.com/gamegalaxy/tictactoe-backend/internal/apperror"
	"github.com/gamegalaxy/tictactoe-backend/internal/entity"
)

const archiveTimeout = 5 * time.Second

// MakeMove - validates that the actor owns the current turn, applies the
// move and broadcasts the result. A session id no longer in the registry is
// an expected race with game end or disconnect and is dropped silently.
func (that *Manager) MakeMove(actor, sessionID string, row, col int) {
	log := that.logger.With("method", "MakeMove", "playerID", actor, "sessionID", sessionID)

	session, ok := that.sessions[sessionID]
	if !ok {
		log.Debug("move for inactive session dropped")
		return
	}

	mark, ok := session.MarkOf(actor)
	if !ok {
		log.Debug("move from player outside session dropped")
		return
	}

	if session.Turn != mark {
		that.messenger.ToPlayer(actor, EventError, ErrorPayload{Error: apperror.ErrNotYourTurn.Error()})
		return
	}

	if err := session.Board.ApplyMove(row, col, mark); err != nil {
		that.messenger.ToPlayer(actor, EventError, ErrorPayload{Error: "invalid move: " + err.Error()})
		return
	}

	winner := session.Board.Winner()
	draw := winner == entity.EmptyCell && session.Board.IsFull()

	if winner == entity.EmptyCell && !draw {
		session.Turn = entity.ToggleMark(mark)
	}

	that.messenger.ToChannel(sessionID, EventUpdateBoard, BoardPayload{Board: session.Board, Turn: session.Turn})

	if winner == entity.EmptyCell && !draw {
		return
	}

	if winner != entity.EmptyCell {
		that.messenger.ToChannel(sessionID, EventGameOver, GameOverPayload{
			Winner:   winner,
			WinnerID: session.Players[winner],
		})
		log.Info("game over", "winner", winner)
	} else {
		that.messenger.ToChannel(sessionID, EventGameOver, GameOverPayload{Draw: true})
		log.Info("game over", "draw", true)
	}

	// delete before anything else can observe the finished session; the
	// pairing stays so both players may still agree on a rematch
	delete(that.sessions, sessionID)

	that.archiveResult(session, winner, draw)
}

// archiveResult - hands the finished game to the archive off the event
// loop. Archiving is best effort and never delays or fails a transition.
func (that *Manager) archiveResult(session *entity.Session, winner string, draw bool) {
	if that.archive == nil {
		return
	}

	result := &entity.GameResult{
		SessionID:  session.ID,
		Winner:     winner,
		Draw:       draw,
		Players:    []string{session.Players[entity.MarkX], session.Players[entity.MarkO]},
		FinishedAt: time.Now().UTC(),
	}
	if winner != entity.EmptyCell {
		result.WinnerID = session.Players[winner]
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), archiveTimeout)
		defer cancel()

		if err := that.archive.Save(ctx, result); err != nil {
			that.logger.Error("failed to archive game result", "sessionID", result.SessionID, "error", err)
		}
	}()
}
