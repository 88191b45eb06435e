package entity

import (
	"fmt"

	"github.com/gamegalaxy/tictactoe-backend/internal/apperror"
)

const (
	MarkX = "X"
	MarkO = "O"

	EmptyCell = ""

	BoardSize = 3
)

// Board is a 3x3 grid of marks. Every cell holds MarkX, MarkO or EmptyCell.
type Board [BoardSize][BoardSize]string

func NewBoard() Board {
	return Board{}
}

// ApplyMove - writes mark into the cell at row, col. It is the only board
// mutator; on any error the board is left unchanged.
func (that *Board) ApplyMove(row, col int, mark string) error {
	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return fmt.Errorf("%w: row %d col %d", apperror.ErrInvalidCell, row, col)
	}

	if that[row][col] != EmptyCell {
		return fmt.Errorf("%w: row %d col %d", apperror.ErrCellOccupied, row, col)
	}

	that[row][col] = mark

	return nil
}

// Winner - returns the mark occupying a complete row, column or diagonal,
// or EmptyCell if no line is complete. Rows are checked before columns
// before diagonals; a valid board holds at most one winner.
func (that Board) Winner() string {
	for row := 0; row < BoardSize; row++ {
		if that[row][0] != EmptyCell && that[row][0] == that[row][1] && that[row][1] == that[row][2] {
			return that[row][0]
		}
	}

	for col := 0; col < BoardSize; col++ {
		if that[0][col] != EmptyCell && that[0][col] == that[1][col] && that[1][col] == that[2][col] {
			return that[0][col]
		}
	}

	if that[0][0] != EmptyCell && that[0][0] == that[1][1] && that[1][1] == that[2][2] {
		return that[0][0]
	}

	if that[0][2] != EmptyCell && that[0][2] == that[1][1] && that[1][1] == that[2][0] {
		return that[0][2]
	}

	return EmptyCell
}

// IsFull - true when every cell is occupied. Callers must check Winner
// first: a full board with a complete line is a win, not a draw.
func (that Board) IsFull() bool {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if that[row][col] == EmptyCell {
				return false
			}
		}
	}

	return true
}

func ToggleMark(currentMark string) string {
	if currentMark == MarkX {
		return MarkO
	}
	return MarkX
}
