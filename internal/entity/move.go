package entity

// MoveResult - server answer to a submitted human move, AI reply included.
type MoveResult struct {
	Success        bool
	Board          Board
	Size           int
	AvailableMoves []int
	GameOver       bool
	Outcome        Outcome
	Message        string
}

// ServerStats - global counters reported by the game service.
type ServerStats struct {
	ActiveGames      int
	TotalGamesPlayed int
}
