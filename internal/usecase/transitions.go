package usecase

import (
	"slices"

	"github.com/rocketscienceinc/tictactoe-client/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-client/internal/entity"
	"github.com/rocketscienceinc/tictactoe-client/internal/tictactoe"
)

const (
	messageStarting = "Starting game..."
	messageThinking = "AI is thinking..."
	messageTurn     = "Your turn! Click a cell to make your move."
	messageRejected = "Move rejected."
)

// Every function below maps one event onto a SessionState and returns the next one.
// None of them talks to the network.

func beginStart(state entity.SessionState) entity.SessionState {
	state.Game = nil
	state.Phase = entity.PhasePlaying
	state.Message = messageStarting
	state.AIThinking = false

	return state
}

func applyStarted(state entity.SessionState, session *entity.GameSession) entity.SessionState {
	game := session.Clone()
	game.Outcome = entity.OutcomeNone
	game.WinningLine = nil

	state.Game = game
	state.Phase = entity.PhasePlaying
	state.Message = messageTurn
	state.AIThinking = false

	return state
}

// applyStartFailed - no partial session survives a failed start.
func applyStartFailed(state entity.SessionState, err error) entity.SessionState {
	state.Game = nil
	state.Phase = entity.PhaseSetup
	state.Message = "Failed to start game: " + apperror.Message(err)
	state.AIThinking = false

	return state
}

func beginMove(state entity.SessionState) entity.SessionState {
	state.AIThinking = true
	state.Message = messageThinking

	return state
}

// applyMoveResult - the only place where a finished game is folded into the stats.
func applyMoveResult(state entity.SessionState, result *entity.MoveResult) entity.SessionState {
	state.AIThinking = false

	if !result.Success {
		state.Message = result.Message
		if state.Message == "" {
			state.Message = messageRejected
		}
		return state
	}

	game := state.Game.Clone()
	game.Board = slices.Clone(result.Board)
	game.AvailableMoves = slices.Clone(result.AvailableMoves)
	state.Game = game

	if !result.GameOver {
		state.Message = result.Message
		if state.Message == "" {
			state.Message = messageTurn
		}
		return state
	}

	game.Outcome = result.Outcome
	game.WinningLine = tictactoe.WinningLine(game.Board, game.Size, result.Outcome)

	state.Phase = entity.PhaseFinished
	state.Stats = state.Stats.Fold(result.Outcome)
	state.Message = result.Message
	if state.Message == "" {
		state.Message = result.Outcome.ResultMessage()
	}

	return state
}

// applyMoveFailed - the session is kept as it was, only the message changes.
func applyMoveFailed(state entity.SessionState, err error) entity.SessionState {
	state.AIThinking = false
	state.Message = "Move failed: " + apperror.Message(err)

	return state
}

// applyRestarted - the server cleared the board of the same game.
func applyRestarted(state entity.SessionState, session *entity.GameSession) entity.SessionState {
	game := state.Game.Clone()
	game.Board = slices.Clone(session.Board)
	game.Size = session.Size
	game.AvailableMoves = slices.Clone(session.AvailableMoves)
	game.SpecialCells = slices.Clone(session.SpecialCells)
	game.Outcome = entity.OutcomeNone
	game.WinningLine = nil

	state.Game = game
	state.Phase = entity.PhasePlaying
	state.Message = messageTurn
	state.AIThinking = false

	return state
}

func applyRestartFailed(state entity.SessionState, err error) entity.SessionState {
	state.Message = "Failed to restart game: " + apperror.Message(err)

	return state
}

// reset - back to setup, only the stats survive.
func reset(state entity.SessionState) entity.SessionState {
	next := entity.NewSessionState()
	next.Stats = state.Stats

	return next
}
