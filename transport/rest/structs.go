package rest

type startGameRequest struct {
	Difficulty string `json:"difficulty"`
	GameSize   int    `json:"game_size"`
}

type moveRequest struct {
	GameID   string `json:"game_id"`
	Position int    `json:"position"`
	Player   string `json:"player"`
}

// gameResponse - body of start and reset, reset omits the catalog fields.
type gameResponse struct {
	GameID         string             `json:"game_id"`
	Board          []string           `json:"board"`
	Size           int                `json:"size"`
	AvailableMoves []int              `json:"available_moves"`
	SpecialCells   []int              `json:"special_cells"`
	Difficulty     string             `json:"difficulty"`
	DifficultyInfo *difficultyInfoDTO `json:"difficulty_info"`
}

type moveResponse struct {
	Success        bool     `json:"success"`
	Board          []string `json:"board"`
	AvailableMoves []int    `json:"available_moves"`
	GameOver       bool     `json:"game_over"`
	Winner         *string  `json:"winner"`
	Message        string   `json:"message"`
}

type difficultyInfoDTO struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	Episodes      int    `json:"episodes"`
	Trained       *bool  `json:"trained"`
	Strategy      string `json:"strategy"`
	StrategyLabel string `json:"strategy_label"`
}

type difficultiesResponse struct {
	Difficulties map[string]difficultyInfoDTO `json:"difficulties"`
}

type serverStatsResponse struct {
	ActiveGames      int `json:"active_games"`
	TotalGamesPlayed int `json:"total_games_played"`
}

// errorResponse - FastAPI puts the reason in detail, other services use message.
type errorResponse struct {
	Detail  any    `json:"detail"`
	Message string `json:"message"`
}
