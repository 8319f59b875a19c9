package suite

import (
	"encoding/json"
	"net/http"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-client/internal/entity"
	"github.com/rocketscienceinc/tictactoe-client/internal/tictactoe"
)

const (
	RouteHealth       = "GET /health"
	RouteDifficulties = "GET /game/difficulties"
	RouteStart        = "POST /game/start"
	RouteMove         = "POST /game/move"
	RouteReset        = "POST /game/reset/{id}"
	RouteEnd          = "DELETE /game/end/{id}"
	RouteStats        = "GET /game/stats"
)

// Reply - a scripted answer returned instead of the simulated one.
type Reply struct {
	Status int
	Body   any
	Raw    string
}

// Backend - in-memory stand-in for the game service. The AI always takes the
// lowest free cell, which keeps games deterministic.
type Backend struct {
	mu sync.Mutex

	// SpecialCells are the wildcard positions of every 4x4 game.
	SpecialCells []int
	Difficulties map[string]map[string]any

	games    map[string]*fakeGame
	scripted map[string][]Reply
	calls    map[string]int
	played   int
}

type fakeGame struct {
	board      entity.Board
	size       int
	difficulty string
	over       bool
}

func NewBackend() *Backend {
	return &Backend{
		SpecialCells: []int{5},
		Difficulties: map[string]map[string]any{
			"easy":   {"description": "Casual play - makes some mistakes", "episodes": 0, "trained": true},
			"medium": {"description": "Good challenge - plays strategically", "episodes": 0, "trained": true},
			"hard":   {"description": "Expert level - perfect play", "episodes": 50000, "trained": false},
		},
		games:    make(map[string]*fakeGame),
		scripted: make(map[string][]Reply),
		calls:    make(map[string]int),
	}
}

// Enqueue - the next call to route answers with reply instead of the simulation.
func (that *Backend) Enqueue(route string, reply Reply) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.scripted[route] = append(that.scripted[route], reply)
}

// Calls - number of requests received on route.
func (that *Backend) Calls(route string) int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.calls[route]
}

// Board - current board of a game, nil when the game is unknown.
func (that *Backend) Board(gameID string) entity.Board {
	that.mu.Lock()
	defer that.mu.Unlock()

	game, ok := that.games[gameID]
	if !ok {
		return nil
	}

	return slices.Clone(game.board)
}

func (that *Backend) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc(RouteHealth, that.route(RouteHealth, that.handleHealth))
	mux.HandleFunc(RouteDifficulties, that.route(RouteDifficulties, that.handleDifficulties))
	mux.HandleFunc(RouteStart, that.route(RouteStart, that.handleStart))
	mux.HandleFunc(RouteMove, that.route(RouteMove, that.handleMove))
	mux.HandleFunc(RouteReset, that.route(RouteReset, that.handleReset))
	mux.HandleFunc(RouteEnd, that.route(RouteEnd, that.handleEnd))
	mux.HandleFunc(RouteStats, that.route(RouteStats, that.handleStats))

	return mux
}

func (that *Backend) route(name string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		that.mu.Lock()
		that.calls[name]++
		queue := that.scripted[name]
		var reply *Reply
		if len(queue) > 0 {
			reply = &queue[0]
			that.scripted[name] = queue[1:]
		}
		that.mu.Unlock()

		if reply != nil {
			writeReply(w, *reply)
			return
		}

		next(w, r)
	}
}

func (that *Backend) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (that *Backend) handleDifficulties(w http.ResponseWriter, _ *http.Request) {
	that.mu.Lock()
	defer that.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{"difficulties": that.Difficulties})
}

func (that *Backend) handleStart(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Difficulty string `json:"difficulty"`
		GameSize   int    `json:"game_size"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid body")
		return
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	info, ok := that.Difficulties[request.Difficulty]
	if !ok {
		writeDetail(w, http.StatusBadRequest, "Invalid difficulty: "+request.Difficulty)
		return
	}

	if !entity.IsValidSize(request.GameSize) {
		writeDetail(w, http.StatusBadRequest, "Invalid game size")
		return
	}

	game := that.newGame(request.Difficulty, request.GameSize)
	id := uuid.NewString()
	that.games[id] = game

	writeJSON(w, http.StatusOK, map[string]any{
		"game_id":         id,
		"board":           game.board,
		"size":            game.size,
		"available_moves": game.available(),
		"special_cells":   that.specialCells(game.size),
		"difficulty":      request.Difficulty,
		"difficulty_info": info,
	})
}

func (that *Backend) handleMove(w http.ResponseWriter, r *http.Request) {
	var request struct {
		GameID   string `json:"game_id"`
		Position int    `json:"position"`
		Player   string `json:"player"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid body")
		return
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	game, ok := that.games[request.GameID]
	if !ok {
		writeDetail(w, http.StatusNotFound, "Game not found")
		return
	}

	if game.over || tictactoe.MakeTurn(game.board, entity.CellHuman, request.Position) != nil {
		writeJSON(w, http.StatusOK, map[string]any{"success": false, "message": "Invalid move"})
		return
	}

	outcome := tictactoe.Status(game.board, game.size)
	if outcome == entity.OutcomeNone {
		_ = tictactoe.MakeTurn(game.board, entity.CellAI, game.available()[0])
		outcome = tictactoe.Status(game.board, game.size)
	}

	game.over = outcome != entity.OutcomeNone
	if game.over {
		that.played++
	}

	var winner any
	if outcome.IsDecided() {
		winner = outcome.Cell()
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":         true,
		"board":           game.board,
		"available_moves": game.available(),
		"game_over":       game.over,
		"winner":          winner,
		"message":         "Move successful",
	})
}

func (that *Backend) handleReset(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	that.mu.Lock()
	defer that.mu.Unlock()

	game, ok := that.games[id]
	if !ok {
		writeDetail(w, http.StatusNotFound, "Game not found")
		return
	}

	fresh := that.newGame(game.difficulty, game.size)
	that.games[id] = fresh

	writeJSON(w, http.StatusOK, map[string]any{
		"board":           fresh.board,
		"available_moves": fresh.available(),
		"special_cells":   that.specialCells(fresh.size),
	})
}

func (that *Backend) handleEnd(w http.ResponseWriter, r *http.Request) {
	that.mu.Lock()
	defer that.mu.Unlock()

	delete(that.games, r.PathValue("id"))

	writeJSON(w, http.StatusOK, map[string]string{"message": "Game ended successfully"})
}

func (that *Backend) handleStats(w http.ResponseWriter, _ *http.Request) {
	that.mu.Lock()
	defer that.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]int{
		"active_games":       len(that.games),
		"total_games_played": that.played,
	})
}

func (that *Backend) newGame(difficulty string, size int) *fakeGame {
	board := entity.NewEmptyBoard(size)

	if size == entity.EnhancedSize {
		for _, cell := range that.SpecialCells {
			board[cell] = entity.CellWild
		}
	}

	return &fakeGame{board: board, size: size, difficulty: difficulty}
}

func (that *Backend) specialCells(size int) []int {
	if size != entity.EnhancedSize {
		return []int{}
	}

	return slices.Clone(that.SpecialCells)
}

func (that *fakeGame) available() []int {
	moves := []int{}
	for i, cell := range that.board {
		if cell.IsEmpty() {
			moves = append(moves, i)
		}
	}

	return moves
}

func writeReply(w http.ResponseWriter, reply Reply) {
	status := reply.Status
	if status == 0 {
		status = http.StatusOK
	}

	if reply.Raw != "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(reply.Raw))
		return
	}

	writeJSON(w, status, reply.Body)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if body == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(body); err != nil {
		http.Error(w, strings.TrimSpace(err.Error()), http.StatusInternalServerError)
	}
}
