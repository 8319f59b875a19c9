package entity

// Stats - running results of the games finished in this process.
type Stats struct {
	GamesPlayed int
	Wins        int
	Losses      int
	Draws       int
}

// Fold - merges one finished game into the running stats.
func (that Stats) Fold(outcome Outcome) Stats {
	that.GamesPlayed++

	switch outcome {
	case OutcomeHuman:
		that.Wins++
	case OutcomeAI:
		that.Losses++
	default:
		that.Draws++
	}

	return that
}

// WinRate - share of won games in percent.
func (that Stats) WinRate() float64 {
	if that.GamesPlayed == 0 {
		return 0
	}

	return float64(that.Wins) / float64(that.GamesPlayed) * 100
}

func (that Stats) IsConsistent() bool {
	return that.GamesPlayed == that.Wins+that.Losses+that.Draws
}
