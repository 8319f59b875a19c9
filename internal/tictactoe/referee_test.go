package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-client/internal/entity"
)

func TestMakeTurn(t *testing.T) {
	t.Run("Places the mark", func(t *testing.T) {
		// Given: An empty classic board
		board := entity.NewEmptyBoard(entity.ClassicSize)

		// When: The human plays the center
		err := MakeTurn(board, entity.CellHuman, 4)

		// Then: The cell holds the mark
		require.NoError(t, err)
		assert.Equal(t, entity.CellHuman, board[4])
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: A board where the AI owns cell 0
		board := entity.NewEmptyBoard(entity.ClassicSize)
		require.NoError(t, MakeTurn(board, entity.CellAI, 0))

		// When: The human plays the same cell
		err := MakeTurn(board, entity.CellHuman, 0)

		// Then: The move is refused and the board is unchanged
		require.ErrorIs(t, err, ErrCellOccupied)
		assert.Equal(t, entity.CellAI, board[0])
	})

	t.Run("Error on wildcard cell", func(t *testing.T) {
		// Given: A 4x4 board with a wildcard
		board := entity.NewEmptyBoard(entity.EnhancedSize)
		board[5] = w

		// When: Playing the wildcard
		err := MakeTurn(board, entity.CellHuman, 5)

		// Then: The move is refused
		require.ErrorIs(t, err, ErrCellOccupied)
	})

	t.Run("Error on invalid cell", func(t *testing.T) {
		// Given: An empty classic board
		board := entity.NewEmptyBoard(entity.ClassicSize)

		// When: Playing outside of it
		err := MakeTurn(board, entity.CellHuman, 9)

		// Then: The index is rejected
		require.ErrorIs(t, err, ErrInvalidCell)
	})
}

func TestStatus(t *testing.T) {
	tests := []struct {
		name  string
		board entity.Board
		size  int
		want  entity.Outcome
	}{
		{
			name:  "game goes on",
			board: entity.Board{x, e, e, e, o, e, e, e, e},
			size:  3,
			want:  entity.OutcomeNone,
		},
		{
			name:  "ai row",
			board: entity.Board{x, x, x, o, o, e, e, e, e},
			size:  3,
			want:  entity.OutcomeAI,
		},
		{
			name:  "human diagonal",
			board: entity.Board{o, x, x, e, o, e, e, e, o},
			size:  3,
			want:  entity.OutcomeHuman,
		},
		{
			name:  "full board without a line",
			board: entity.Board{o, x, o, o, x, x, x, o, o},
			size:  3,
			want:  entity.OutcomeDraw,
		},
		{
			name: "wildcard completes a column",
			board: entity.Board{
				e, o, e, e,
				e, w, e, e,
				e, o, e, e,
				x, o, x, x,
			},
			size: 4,
			want: entity.OutcomeHuman,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// When: Evaluating the board
			got := Status(tt.board, tt.size)

			// Then: The outcome matches
			assert.Equal(t, tt.want, got)
		})
	}
}
