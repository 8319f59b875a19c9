package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/rocketscienceinc/tictactoe-client/internal/entity"
)

var (
	errMissingGameID       = errors.New("missing game id")
	errMissingDifficulties = errors.New("missing difficulties")
	errUnknownBoardSize    = errors.New("board length matches no supported size")
)

func (that *Client) Difficulties(ctx context.Context) (entity.DifficultyCatalog, error) {
	var catalog entity.DifficultyCatalog

	err := that.track(ctx, func(ctx context.Context) error {
		var resp difficultiesResponse
		status, err := that.roundTrip(ctx, "difficulties", http.MethodGet, "/game/difficulties", nil, &resp)
		if err != nil {
			return err
		}

		if resp.Difficulties == nil {
			return malformed(status, errMissingDifficulties)
		}

		catalog = make(entity.DifficultyCatalog, len(resp.Difficulties))
		for key, info := range resp.Difficulties {
			catalog[key] = info.toEntity(false)
		}

		return nil
	})

	return catalog, err
}

func (that *Client) StartGame(ctx context.Context, difficulty string, size int) (*entity.GameSession, error) {
	var session *entity.GameSession

	err := that.track(ctx, func(ctx context.Context) error {
		request := startGameRequest{
			Difficulty: difficulty,
			GameSize:   size,
		}

		var resp gameResponse
		status, err := that.roundTrip(ctx, "startGame", http.MethodPost, "/game/start", request, &resp)
		if err != nil {
			return err
		}

		session, err = resp.toSession("")
		if err != nil {
			return malformed(status, err)
		}

		return nil
	})

	return session, err
}

func (that *Client) MakeMove(ctx context.Context, gameID string, position int) (*entity.MoveResult, error) {
	var result *entity.MoveResult

	err := that.track(ctx, func(ctx context.Context) error {
		request := moveRequest{
			GameID:   gameID,
			Position: position,
			Player:   entity.PlayerHuman,
		}

		var resp moveResponse
		status, err := that.roundTrip(ctx, "makeMove", http.MethodPost, "/game/move", request, &resp)
		if err != nil {
			return err
		}

		result, err = resp.toResult()
		if err != nil {
			return malformed(status, err)
		}

		return nil
	})

	return result, err
}

// ResetGame - asks the server to clear the board of an existing game.
func (that *Client) ResetGame(ctx context.Context, gameID string) (*entity.GameSession, error) {
	var session *entity.GameSession

	err := that.track(ctx, func(ctx context.Context) error {
		var resp gameResponse
		status, err := that.roundTrip(ctx, "resetGame", http.MethodPost, "/game/reset/"+url.PathEscape(gameID), nil, &resp)
		if err != nil {
			return err
		}

		session, err = resp.toSession(gameID)
		if err != nil {
			return malformed(status, err)
		}

		return nil
	})

	return session, err
}

func (that *Client) EndGame(ctx context.Context, gameID string) error {
	return that.track(ctx, func(ctx context.Context) error {
		_, err := that.roundTrip(ctx, "endGame", http.MethodDelete, "/game/end/"+url.PathEscape(gameID), nil, nil)
		return err
	})
}

func (that *Client) ServerStats(ctx context.Context) (*entity.ServerStats, error) {
	var stats *entity.ServerStats

	err := that.track(ctx, func(ctx context.Context) error {
		var resp serverStatsResponse
		if _, err := that.roundTrip(ctx, "serverStats", http.MethodGet, "/game/stats", nil, &resp); err != nil {
			return err
		}

		stats = &entity.ServerStats{
			ActiveGames:      resp.ActiveGames,
			TotalGamesPlayed: resp.TotalGamesPlayed,
		}

		return nil
	})

	return stats, err
}

// toSession - validates a start or reset body, fallbackID is used when the body has no id.
func (that *gameResponse) toSession(fallbackID string) (*entity.GameSession, error) {
	id := that.GameID
	if id == "" {
		id = fallbackID
	}
	if id == "" {
		return nil, errMissingGameID
	}

	size := that.Size
	if size == 0 {
		var err error
		if size, err = sizeForCells(len(that.Board)); err != nil {
			return nil, err
		}
	}

	board, err := entity.ParseBoard(that.Board, size)
	if err != nil {
		return nil, fmt.Errorf("invalid board: %w", err)
	}

	if err = board.ValidateMoves(that.AvailableMoves); err != nil {
		return nil, err
	}

	for _, cell := range that.SpecialCells {
		if cell < 0 || cell >= len(board) {
			return nil, fmt.Errorf("%w: special cell %d", entity.ErrInvalidMove, cell)
		}
	}

	session := &entity.GameSession{
		ID:             id,
		Board:          board,
		Size:           size,
		AvailableMoves: nonNil(that.AvailableMoves),
		SpecialCells:   nonNil(that.SpecialCells),
		Difficulty:     that.Difficulty,
	}

	if that.DifficultyInfo != nil {
		session.DifficultyInfo = that.DifficultyInfo.toEntity(true)
	}

	return session, nil
}

func (that *moveResponse) toResult() (*entity.MoveResult, error) {
	result := &entity.MoveResult{
		Success: that.Success,
		Message: that.Message,
	}

	// a rejected move carries nothing but the reason
	if !that.Success {
		return result, nil
	}

	size, err := sizeForCells(len(that.Board))
	if err != nil {
		return nil, err
	}

	board, err := entity.ParseBoard(that.Board, size)
	if err != nil {
		return nil, fmt.Errorf("invalid board: %w", err)
	}

	if err = board.ValidateMoves(that.AvailableMoves); err != nil {
		return nil, err
	}

	result.Board = board
	result.Size = size
	result.AvailableMoves = nonNil(that.AvailableMoves)
	result.GameOver = that.GameOver

	if that.GameOver {
		var winner string
		if that.Winner != nil {
			winner = *that.Winner
		}

		if result.Outcome, err = entity.OutcomeFromWinner(winner); err != nil {
			return nil, err
		}
	}

	return result, nil
}

func (that *difficultyInfoDTO) toEntity(defaultTrained bool) entity.DifficultyInfo {
	trained := defaultTrained
	if that.Trained != nil {
		trained = *that.Trained
	}

	label := that.StrategyLabel
	if label == "" {
		label = that.Strategy
	}

	return entity.DifficultyInfo{
		Name:          that.Name,
		Description:   that.Description,
		Episodes:      that.Episodes,
		Trained:       trained,
		StrategyLabel: label,
	}
}

func sizeForCells(cells int) (int, error) {
	switch cells {
	case entity.ClassicSize * entity.ClassicSize:
		return entity.ClassicSize, nil
	case entity.EnhancedSize * entity.EnhancedSize:
		return entity.EnhancedSize, nil
	default:
		return 0, fmt.Errorf("%w: %d cells", errUnknownBoardSize, cells)
	}
}

func nonNil(values []int) []int {
	if values == nil {
		return []int{}
	}

	return values
}
