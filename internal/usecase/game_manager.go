package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/rocketscienceinc/tictactoe-client/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-client/internal/entity"
)

type gameAPI interface {
	StartGame(ctx context.Context, difficulty string, size int) (*entity.GameSession, error)
	MakeMove(ctx context.Context, gameID string, position int) (*entity.MoveResult, error)
	ResetGame(ctx context.Context, gameID string) (*entity.GameSession, error)
	EndGame(ctx context.Context, gameID string) error

	Loading() bool
	Err() error
}

// Snapshot - a copy of the session safe to read without holding the manager.
type Snapshot struct {
	entity.SessionState

	Loading bool
	Err     error
}

// GameManager - owns the session state and is the only writer of it.
// At most one session call is outstanding at a time; a Reset starts a new epoch
// and answers to calls issued before it are dropped.
type GameManager struct {
	logger *slog.Logger
	api    gameAPI

	mu    sync.Mutex
	state entity.SessionState
	busy  bool
	epoch uint64
}

func NewGameManager(logger *slog.Logger, api gameAPI) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game-manager"),
		api:    api,
		state:  entity.NewSessionState(),
	}
}

func (that *GameManager) Start(ctx context.Context, difficulty string, size int) error {
	if !entity.IsValidSize(size) {
		return fmt.Errorf("%w: %d", entity.ErrInvalidSize, size)
	}

	that.mu.Lock()
	if that.busy || that.state.IsPlaying() {
		phase := that.state.Phase
		that.mu.Unlock()
		return fmt.Errorf("start from %s: %w", phase, apperror.ErrInvalidTransition)
	}

	that.state = beginStart(that.state)
	that.busy = true
	epoch := that.epoch
	that.mu.Unlock()

	session, err := that.api.StartGame(ctx, difficulty, size)

	that.mu.Lock()
	defer that.mu.Unlock()

	if !that.settle(epoch, "start") {
		return nil
	}

	if err != nil {
		that.logger.Warn("failed to start game", "difficulty", difficulty, "size", size, "error", err)
		that.state = applyStartFailed(that.state, err)
		return fmt.Errorf("failed to start game: %w", err)
	}

	if session.Difficulty == "" {
		session.Difficulty = difficulty
	}

	that.logger.Info("game started", "game_id", session.ID, "difficulty", session.Difficulty, "size", session.Size)
	that.state = applyStarted(that.state, session)

	return nil
}

// Move - submits the human move. Moves that cannot be played right now are ignored.
func (that *GameManager) Move(ctx context.Context, position int) error {
	that.mu.Lock()
	if !that.canMove(position) {
		that.mu.Unlock()
		return nil
	}

	gameID := that.state.Game.ID
	size := that.state.Game.Size
	that.state = beginMove(that.state)
	that.busy = true
	epoch := that.epoch
	that.mu.Unlock()

	result, err := that.api.MakeMove(ctx, gameID, position)

	that.mu.Lock()
	defer that.mu.Unlock()

	if !that.settle(epoch, "move") {
		return nil
	}

	if err == nil && result.Success && result.Size != size {
		err = &apperror.ServiceError{
			Status:  http.StatusOK,
			Message: "The game service sent an invalid response.",
			Err:     fmt.Errorf("%w: board size %d, game size %d", apperror.ErrMalformedResponse, result.Size, size),
		}
	}

	if err != nil {
		that.logger.Warn("failed to make move", "game_id", gameID, "position", position, "error", err)
		that.state = applyMoveFailed(that.state, err)
		return fmt.Errorf("failed to make move: %w", err)
	}

	if !result.Success {
		that.logger.Info("move rejected", "game_id", gameID, "position", position, "message", result.Message)
	}

	that.state = applyMoveResult(that.state, result)

	if that.state.IsFinished() {
		that.logger.Info("game finished", "game_id", gameID, "outcome", that.state.Game.Outcome)
	}

	return nil
}

// Replay - starts a new game with the settings of the finished one.
func (that *GameManager) Replay(ctx context.Context) error {
	that.mu.Lock()
	if !that.state.IsFinished() || that.busy {
		that.mu.Unlock()
		return nil
	}

	game := that.state.Game.Clone()
	that.mu.Unlock()

	if game == nil || game.Difficulty == "" || !entity.IsValidSize(game.Size) {
		that.Reset()
		return nil
	}

	return that.Start(ctx, game.Difficulty, game.Size)
}

// Restart - asks the server to clear the board of the current game.
func (that *GameManager) Restart(ctx context.Context) error {
	that.mu.Lock()
	if that.busy || that.state.Phase == entity.PhaseSetup {
		phase := that.state.Phase
		that.mu.Unlock()
		return fmt.Errorf("restart from %s: %w", phase, apperror.ErrInvalidTransition)
	}

	if that.state.Game == nil {
		that.mu.Unlock()
		return apperror.ErrNoActiveGame
	}

	gameID := that.state.Game.ID
	that.busy = true
	epoch := that.epoch
	that.mu.Unlock()

	session, err := that.api.ResetGame(ctx, gameID)

	that.mu.Lock()
	defer that.mu.Unlock()

	if !that.settle(epoch, "restart") {
		return nil
	}

	if err == nil && session.Size != that.state.Game.Size {
		err = &apperror.ServiceError{
			Status:  http.StatusOK,
			Message: "The game service sent an invalid response.",
			Err:     fmt.Errorf("%w: board size %d, game size %d", apperror.ErrMalformedResponse, session.Size, that.state.Game.Size),
		}
	}

	if err != nil {
		that.logger.Warn("failed to restart game", "game_id", gameID, "error", err)
		that.state = applyRestartFailed(that.state, err)
		return fmt.Errorf("failed to restart game: %w", err)
	}

	that.state = applyRestarted(that.state, session)

	return nil
}

// Reset - drops the session and goes back to setup. Stats are kept.
func (that *GameManager) Reset() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.epoch++
	that.busy = false
	that.state = reset(that.state)
}

// End - tells the server the active game is abandoned. Failures are only logged.
func (that *GameManager) End(ctx context.Context) {
	that.mu.Lock()
	game := that.state.Game
	that.mu.Unlock()

	if game == nil {
		return
	}

	if err := that.api.EndGame(ctx, game.ID); err != nil {
		that.logger.Warn("failed to end game", "game_id", game.ID, "error", err)
		return
	}

	that.logger.Info("game ended", "game_id", game.ID)
}

func (that *GameManager) Snapshot() Snapshot {
	that.mu.Lock()
	state := that.state.Clone()
	that.mu.Unlock()

	return Snapshot{
		SessionState: state,
		Loading:      that.api.Loading(),
		Err:          that.api.Err(),
	}
}

func (that *GameManager) canMove(position int) bool {
	return that.state.IsPlaying() &&
		!that.state.AIThinking &&
		!that.busy &&
		that.state.Game != nil &&
		that.state.Game.IsAvailable(position)
}

// settle - releases the in-flight guard, false when the answer belongs to a discarded session.
func (that *GameManager) settle(epoch uint64, op string) bool {
	if epoch != that.epoch {
		that.logger.Debug("dropping stale response", "operation", op)
		return false
	}

	that.busy = false

	return true
}
