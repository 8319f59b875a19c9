package tictactoe

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-client/internal/entity"
)

const (
	x = entity.CellAI
	o = entity.CellHuman
	e = entity.CellEmpty
	w = entity.CellWild
)

func TestLines(t *testing.T) {
	t.Run("Classic board has eight lines", func(t *testing.T) {
		// When: generating lines for a 3x3 board
		lines := Lines(3)

		// Then: rows, columns and diagonals come in that order
		expected := [][]int{
			{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
			{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
			{0, 4, 8}, {2, 4, 6},
		}
		require.Equal(t, expected, lines)
	})

	t.Run("Enhanced board has ten lines", func(t *testing.T) {
		lines := Lines(4)

		require.Len(t, lines, 10)
		assert.Equal(t, []int{0, 5, 10, 15}, lines[8])
		assert.Equal(t, []int{3, 6, 9, 12}, lines[9])
	})

	t.Run("Non-positive size has no lines", func(t *testing.T) {
		assert.Empty(t, Lines(0))
	})
}

func TestWinningLine(t *testing.T) {
	t.Run("Top row for X", func(t *testing.T) {
		// Given: X owns the first row
		board := entity.Board{
			x, x, x,
			o, o, e,
			e, e, e,
		}

		// When: resolving the winning line for the AI
		line := WinningLine(board, 3, entity.OutcomeAI)

		// Then: the first row is returned
		assert.Equal(t, []int{0, 1, 2}, line)
	})

	t.Run("Column for O", func(t *testing.T) {
		board := entity.Board{
			x, o, e,
			e, o, x,
			x, o, e,
		}

		assert.Equal(t, []int{1, 4, 7}, WinningLine(board, 3, entity.OutcomeHuman))
	})

	t.Run("Anti-diagonal for X", func(t *testing.T) {
		board := entity.Board{
			o, o, x,
			e, x, o,
			x, e, e,
		}

		assert.Equal(t, []int{2, 4, 6}, WinningLine(board, 3, entity.OutcomeAI))
	})

	t.Run("Wildcard completes a line on the enhanced board", func(t *testing.T) {
		// Given: a 4x4 board with a wildcard at 5 and O on the rest of the main diagonal
		board := entity.Board{
			o, x, e, e,
			x, w, e, e,
			e, x, o, e,
			e, e, e, o,
		}

		// When: resolving the winning line for the human
		line := WinningLine(board, 4, entity.OutcomeHuman)

		// Then: the diagonal through the wildcard is returned
		assert.Equal(t, []int{0, 5, 10, 15}, line)
	})

	t.Run("Wildcard also counts for the other side", func(t *testing.T) {
		board := entity.Board{
			e, e, e, e,
			x, w, x, x,
			o, o, e, e,
			e, o, e, e,
		}

		assert.Equal(t, []int{4, 5, 6, 7}, WinningLine(board, 4, entity.OutcomeAI))
	})

	t.Run("Draw and no winner return empty", func(t *testing.T) {
		board := entity.Board{
			x, x, x,
			o, o, e,
			e, e, e,
		}

		assert.Empty(t, WinningLine(board, 3, entity.OutcomeDraw))
		assert.Empty(t, WinningLine(board, 3, entity.OutcomeNone))
	})

	t.Run("Declared winner without a line returns empty", func(t *testing.T) {
		// Given: an inconsistent board where O has no line
		board := entity.Board{
			x, x, x,
			o, o, e,
			e, e, e,
		}

		// Then: nothing is highlighted
		assert.Empty(t, WinningLine(board, 3, entity.OutcomeHuman))
	})

	t.Run("Short board returns empty", func(t *testing.T) {
		assert.Empty(t, WinningLine(entity.Board{x, x, x}, 3, entity.OutcomeAI))
	})
}

func TestWinningLine_RandomBoards(t *testing.T) {
	cells := []entity.Cell{x, o, e, w}
	rnd := rand.New(rand.NewSource(42)) //nolint: gosec // deterministic test input

	for _, size := range []int{3, 4} {
		for range 2000 {
			// Given: a random board, wildcards only on 4x4
			board := make(entity.Board, size*size)
			for i := range board {
				cell := cells[rnd.Intn(len(cells))]
				if cell == w && size == 3 {
					cell = e
				}
				board[i] = cell
			}

			for _, winner := range []entity.Outcome{entity.OutcomeHuman, entity.OutcomeAI} {
				// When: resolving the line
				line := WinningLine(board, size, winner)

				// Then: a returned line is fully owned by winner or wildcards
				if len(line) > 0 {
					require.Len(t, line, size)
					for _, position := range line {
						cell := board[position]
						require.True(t, cell == winner.Cell() || cell == w, "board %v line %v", board, line)
					}
					continue
				}

				// Then: an empty result means no candidate line satisfies the winner
				for _, candidate := range Lines(size) {
					require.False(t, isSatisfied(board, candidate, winner.Cell()), "board %v line %v", board, candidate)
				}
			}
		}
	}
}
