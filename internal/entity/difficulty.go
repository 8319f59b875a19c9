package entity

import (
	"slices"
	"strings"
)

const (
	EasyDifficulty   = "easy"
	MediumDifficulty = "medium"
	HardDifficulty   = "hard"
)

var (
	difficultyOrder = []string{EasyDifficulty, MediumDifficulty, HardDifficulty}

	defaultDifficultyNames = map[string]string{
		EasyDifficulty:   "Easy",
		MediumDifficulty: "Medium",
		HardDifficulty:   "Hard",
	}
)

type DifficultyInfo struct {
	Name          string
	Description   string
	Episodes      int
	Trained       bool
	StrategyLabel string
}

// DifficultyCatalog - difficulty key to its description as advertised by the server.
type DifficultyCatalog map[string]DifficultyInfo

// Selectable - only trained difficulties can be offered to the player.
func (that DifficultyCatalog) Selectable(key string) bool {
	info, ok := that[key]
	return ok && info.Trained
}

// Keys - easy, medium and hard first, everything else alphabetically.
func (that DifficultyCatalog) Keys() []string {
	keys := make([]string, 0, len(that))
	for key := range that {
		keys = append(keys, key)
	}

	slices.SortFunc(keys, func(a, b string) int {
		ra, rb := difficultyRank(a), difficultyRank(b)
		if ra != rb {
			return ra - rb
		}
		return strings.Compare(a, b)
	})

	return keys
}

func difficultyRank(key string) int {
	if i := slices.Index(difficultyOrder, key); i >= 0 {
		return i
	}

	return len(difficultyOrder)
}

// DisplayName - the advertised name, falling back to a built-in one.
func DisplayName(key string, info DifficultyInfo) string {
	if info.Name != "" {
		return info.Name
	}

	if name, ok := defaultDifficultyNames[key]; ok {
		return name
	}

	return key
}
