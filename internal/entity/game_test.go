package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBoard(t *testing.T) {
	t.Run("Parses an empty classic board", func(t *testing.T) {
		// Given: nine empty wire cells
		raw := []string{" ", " ", " ", " ", " ", " ", " ", " ", " "}

		// When: parsing the board
		board, err := ParseBoard(raw, ClassicSize)

		// Then: the board equals a new empty board
		require.NoError(t, err)
		assert.Equal(t, NewEmptyBoard(ClassicSize), board)
	})

	t.Run("Empty string is read as an empty cell", func(t *testing.T) {
		raw := []string{"", "X", "O", "", "", "", "", "", ""}

		board, err := ParseBoard(raw, ClassicSize)

		require.NoError(t, err)
		assert.Equal(t, CellEmpty, board[0])
		assert.Equal(t, CellAI, board[1])
		assert.Equal(t, CellHuman, board[2])
	})

	t.Run("Accepts wildcard on enhanced board", func(t *testing.T) {
		// Given: a 4x4 board with a wildcard at index 5
		raw := make([]string, 16)
		for i := range raw {
			raw[i] = " "
		}
		raw[5] = "X/O"

		// When: parsing the board
		board, err := ParseBoard(raw, EnhancedSize)

		// Then: the wildcard is kept
		require.NoError(t, err)
		assert.Equal(t, CellWild, board[5])
	})

	t.Run("Rejects wildcard on classic board", func(t *testing.T) {
		raw := []string{"X/O", " ", " ", " ", " ", " ", " ", " ", " "}

		_, err := ParseBoard(raw, ClassicSize)

		require.ErrorIs(t, err, ErrInvalidCell)
	})

	t.Run("Rejects unknown cell value", func(t *testing.T) {
		raw := []string{"Z", " ", " ", " ", " ", " ", " ", " ", " "}

		_, err := ParseBoard(raw, ClassicSize)

		require.ErrorIs(t, err, ErrInvalidCell)
	})

	t.Run("Rejects length mismatch", func(t *testing.T) {
		raw := []string{" ", " ", " "}

		_, err := ParseBoard(raw, ClassicSize)

		require.ErrorIs(t, err, ErrInvalidBoardLen)
	})

	t.Run("Rejects unsupported size", func(t *testing.T) {
		_, err := ParseBoard(make([]string, 25), 5)

		require.ErrorIs(t, err, ErrInvalidSize)
	})
}

func TestBoard_ValidateMoves(t *testing.T) {
	board := Board{
		CellAI, CellEmpty, CellEmpty,
		CellEmpty, CellHuman, CellEmpty,
		CellEmpty, CellEmpty, CellEmpty,
	}

	t.Run("Accepts empty cells in range", func(t *testing.T) {
		assert.NoError(t, board.ValidateMoves([]int{1, 2, 3, 5, 6, 7, 8}))
	})

	t.Run("Rejects occupied cell", func(t *testing.T) {
		assert.ErrorIs(t, board.ValidateMoves([]int{1, 4}), ErrInvalidMove)
	})

	t.Run("Rejects out of range", func(t *testing.T) {
		assert.ErrorIs(t, board.ValidateMoves([]int{9}), ErrInvalidMove)
		assert.ErrorIs(t, board.ValidateMoves([]int{-1}), ErrInvalidMove)
	})
}

func TestGameSession_Clone(t *testing.T) {
	// Given: a session with slices
	session := &GameSession{
		ID:             "g1",
		Board:          NewEmptyBoard(ClassicSize),
		Size:           ClassicSize,
		AvailableMoves: []int{0, 1, 2},
		WinningLine:    []int{0, 1, 2},
	}

	// When: cloning and mutating the clone
	clone := session.Clone()
	clone.Board[0] = CellAI
	clone.AvailableMoves[0] = 8

	// Then: the original is untouched
	assert.Equal(t, CellEmpty, session.Board[0])
	assert.Equal(t, 0, session.AvailableMoves[0])
	assert.True(t, session.IsAvailable(2))
	assert.False(t, session.IsAvailable(8))

	var empty *GameSession
	assert.Nil(t, empty.Clone())
}

func TestOutcomeFromWinner(t *testing.T) {
	tests := []struct {
		winner string
		want   Outcome
	}{
		{winner: "O", want: OutcomeHuman},
		{winner: "X", want: OutcomeAI},
		{winner: "", want: OutcomeDraw},
		{winner: "draw", want: OutcomeDraw},
		{winner: "tie", want: OutcomeDraw},
	}

	for _, tt := range tests {
		got, err := OutcomeFromWinner(tt.winner)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "winner %q", tt.winner)
	}

	_, err := OutcomeFromWinner("Y")
	assert.ErrorIs(t, err, ErrUnknownWinner)
}
