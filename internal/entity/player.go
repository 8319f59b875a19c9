package entity

import (
	"errors"
	"fmt"
)

// Human is always O, the AI is always X.
const (
	PlayerHuman = "O"
	PlayerAI    = "X"
)

type Outcome string

const (
	OutcomeNone  Outcome = ""
	OutcomeHuman Outcome = "human"
	OutcomeAI    Outcome = "ai"
	OutcomeDraw  Outcome = "draw"
)

var ErrUnknownWinner = errors.New("unknown winner")

// OutcomeFromWinner - maps the winner reported by the server for a finished game.
// A missing winner means a draw.
func OutcomeFromWinner(winner string) (Outcome, error) {
	switch winner {
	case PlayerHuman:
		return OutcomeHuman, nil
	case PlayerAI:
		return OutcomeAI, nil
	case "", "draw", "tie", "-":
		return OutcomeDraw, nil
	default:
		return OutcomeNone, fmt.Errorf("%w: %q", ErrUnknownWinner, winner)
	}
}

// Cell - the board value owned by the winner, empty for draw and none.
func (that Outcome) Cell() Cell {
	switch that {
	case OutcomeHuman:
		return CellHuman
	case OutcomeAI:
		return CellAI
	default:
		return CellEmpty
	}
}

func (that Outcome) IsDecided() bool {
	return that == OutcomeHuman || that == OutcomeAI
}

// ResultMessage - text shown when a finished game carries no server message.
func (that Outcome) ResultMessage() string {
	switch that {
	case OutcomeHuman:
		return "Congratulations! You won!"
	case OutcomeAI:
		return "AI wins! Better luck next time!"
	default:
		return "It's a draw!"
	}
}
