package apperror

import "errors"

var (
	ErrNotYourTurn    = errors.New("it's not your turn")
	ErrCellOccupied   = errors.New("cell is already occupied")
	ErrInvalidCell    = errors.New("invalid cell position")
	ErrAlreadyInGame  = errors.New("already in an active game")
	ErrResultNotFound = errors.New("result not found")
)
