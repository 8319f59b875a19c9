package entity

import (
	"errors"
	"fmt"
	"slices"
)

type Cell string

const (
	CellEmpty Cell = " "
	CellHuman Cell = "O"
	CellAI    Cell = "X"
	CellWild  Cell = "X/O"
)

type Phase string

const (
	PhaseSetup    Phase = "setup"
	PhasePlaying  Phase = "playing"
	PhaseFinished Phase = "finished"
)

const (
	ClassicSize  = 3
	EnhancedSize = 4
)

var (
	ErrInvalidSize     = errors.New("invalid board size")
	ErrInvalidCell     = errors.New("invalid cell value")
	ErrInvalidBoardLen = errors.New("board length does not match size")
	ErrInvalidMove     = errors.New("invalid available move")
)

// ParseCell - decodes a wire cell, the empty string is read as an empty cell.
func ParseCell(raw string) (Cell, error) {
	switch cell := Cell(raw); cell {
	case CellEmpty, CellHuman, CellAI, CellWild:
		return cell, nil
	case "":
		return CellEmpty, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidCell, raw)
	}
}

func (that Cell) IsEmpty() bool {
	return that == CellEmpty
}

// Board - cells in row-major order, index = row*size+col.
type Board []Cell

// ParseBoard - decodes and validates a wire board for the given size.
func ParseBoard(raw []string, size int) (Board, error) {
	if !IsValidSize(size) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	if len(raw) != size*size {
		return nil, fmt.Errorf("%w: got %d cells for size %d", ErrInvalidBoardLen, len(raw), size)
	}

	board := make(Board, len(raw))
	for i, value := range raw {
		cell, err := ParseCell(value)
		if err != nil {
			return nil, fmt.Errorf("cell %d: %w", i, err)
		}

		// wildcards only exist on the enhanced board
		if cell == CellWild && size != EnhancedSize {
			return nil, fmt.Errorf("cell %d: %w: wildcard on %dx%d board", i, ErrInvalidCell, size, size)
		}

		board[i] = cell
	}

	return board, nil
}

func NewEmptyBoard(size int) Board {
	board := make(Board, size*size)
	for i := range board {
		board[i] = CellEmpty
	}

	return board
}

// ValidateMoves - available moves must be in range and point at empty cells.
func (that Board) ValidateMoves(moves []int) error {
	for _, move := range moves {
		if move < 0 || move >= len(that) {
			return fmt.Errorf("%w: %d out of range", ErrInvalidMove, move)
		}

		if !that[move].IsEmpty() {
			return fmt.Errorf("%w: %d is occupied by %q", ErrInvalidMove, move, that[move])
		}
	}

	return nil
}

func IsValidSize(size int) bool {
	return size == ClassicSize || size == EnhancedSize
}

// GameSession - one game instance as last confirmed by the server.
type GameSession struct {
	ID             string
	Board          Board
	Size           int
	AvailableMoves []int
	SpecialCells   []int
	Difficulty     string
	DifficultyInfo DifficultyInfo
	Outcome        Outcome
	WinningLine    []int
}

func (that *GameSession) IsAvailable(position int) bool {
	return slices.Contains(that.AvailableMoves, position)
}

func (that *GameSession) IsSpecial(position int) bool {
	return slices.Contains(that.SpecialCells, position)
}

func (that *GameSession) Clone() *GameSession {
	if that == nil {
		return nil
	}

	clone := *that
	clone.Board = slices.Clone(that.Board)
	clone.AvailableMoves = slices.Clone(that.AvailableMoves)
	clone.SpecialCells = slices.Clone(that.SpecialCells)
	clone.WinningLine = slices.Clone(that.WinningLine)

	return &clone
}

// SessionState - everything the view needs to render the current game.
type SessionState struct {
	Game       *GameSession
	Phase      Phase
	Message    string
	AIThinking bool
	Stats      Stats
}

func NewSessionState() SessionState {
	return SessionState{
		Phase: PhaseSetup,
	}
}

func (that SessionState) Clone() SessionState {
	that.Game = that.Game.Clone()
	return that
}

func (that SessionState) IsPlaying() bool {
	return that.Phase == PhasePlaying
}

func (that SessionState) IsFinished() bool {
	return that.Phase == PhaseFinished
}
