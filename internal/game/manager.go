package game

import (
	"context"
	"log/slog"

	"github.com/gamegalaxy/tictactoe-backend/internal/entity"
)

const eventBufferSize = 256

type resultArchive interface {
	Save(ctx context.Context, result *entity.GameResult) error
}

// pairing remembers which participant holds which mark in a session. It is
// created when a match is made and outlives the session itself: a finished
// game keeps its pairing until one of the two disconnects, which is what
// makes a rematch under the same session id possible.
type pairing struct {
	playerX string
	playerO string
}

func (that pairing) opponentOf(playerID string) (string, bool) {
	switch playerID {
	case that.playerX:
		return that.playerO, true
	case that.playerO:
		return that.playerX, true
	default:
		return "", false
	}
}

type rematchKey struct {
	sessionID string
	playerID  string
}

// Manager owns all matchmaking and session state: the single waiting slot,
// the registry of active sessions, the pairing records and the outstanding
// rematch requests. Every mutation happens on the Run goroutine, so the
// handlers need no locking and never observe each other mid-transition.
type Manager struct {
	logger    *slog.Logger
	messenger Messenger
	archive   resultArchive

	sessions map[string]*entity.Session
	pairings map[string]pairing
	rematch  map[rematchKey]struct{}
	waiting  string

	events chan Event
}

func NewManager(logger *slog.Logger, messenger Messenger, archive resultArchive) *Manager {
	return &Manager{
		logger:    logger,
		messenger: messenger,
		archive:   archive,

		sessions: make(map[string]*entity.Session),
		pairings: make(map[string]pairing),
		rematch:  make(map[rematchKey]struct{}),

		events: make(chan Event, eventBufferSize),
	}
}

// Dispatch - queues an inbound event for the Run loop.
func (that *Manager) Dispatch(event Event) {
	that.events <- event
}

// Run - consumes inbound events until the context is canceled. All state
// transitions execute to completion here, one at a time.
func (that *Manager) Run(ctx context.Context) {
	log := that.logger.With("component", "game-manager")
	log.Info("game manager started")

	for {
		select {
		case <-ctx.Done():
			log.Info("game manager stopped")
			return
		case event := <-that.events:
			that.handle(event)
		}
	}
}

func (that *Manager) handle(event Event) {
	switch event.Action {
	case ActionFindMatch:
		that.FindMatch(event.Player)
	case ActionMakeMove:
		that.MakeMove(event.Player, event.SessionID, event.Row, event.Col)
	case ActionRequestRematch:
		that.RequestRematch(event.Player, event.SessionID)
	case ActionDisconnect:
		that.Disconnect(event.Player)
	default:
		that.logger.Warn("unknown action dropped", "action", event.Action, "playerID", event.Player)
	}
}
