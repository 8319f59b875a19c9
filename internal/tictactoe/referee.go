package tictactoe

import (
	"errors"
	"slices"

	"github.com/rocketscienceinc/tictactoe-client/internal/entity"
)

var (
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrInvalidCell  = errors.New("invalid cell index")
)

// MakeTurn - puts mark on an empty cell of board.
func MakeTurn(board entity.Board, mark entity.Cell, cell int) error {
	if cell < 0 || cell >= len(board) {
		return ErrInvalidCell
	}

	if !board[cell].IsEmpty() {
		return ErrCellOccupied
	}

	board[cell] = mark

	return nil
}

// Status - outcome of the board, OutcomeNone while empty cells remain and nobody owns a line.
// The human side is checked first.
func Status(board entity.Board, size int) entity.Outcome {
	for _, outcome := range []entity.Outcome{entity.OutcomeHuman, entity.OutcomeAI} {
		if WinningLine(board, size, outcome) != nil {
			return outcome
		}
	}

	if slices.ContainsFunc(board, entity.Cell.IsEmpty) {
		return entity.OutcomeNone
	}

	return entity.OutcomeDraw
}
