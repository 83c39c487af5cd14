package models

import (
	"fmt"
	"time"
)

// ValidationError marks caller-recoverable input errors so the delivery
// layer can tell them apart from storage faults.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

func Validationf(format string, args ...interface{}) ValidationError {
	return ValidationError(fmt.Sprintf(format, args...))
}

// Difficulty is the preparation tier of a meal. Only the three listed
// values are valid; raw input is converted once via ParseDifficulty.
type Difficulty string

const (
	DifficultyLow  Difficulty = "LOW"
	DifficultyMed  Difficulty = "MED"
	DifficultyHigh Difficulty = "HIGH"
)

func ParseDifficulty(raw string) (Difficulty, error) {
	switch Difficulty(raw) {
	case DifficultyLow, DifficultyMed, DifficultyHigh:
		return Difficulty(raw), nil
	default:
		return "", Validationf("invalid difficulty level: %s, must be 'LOW', 'MED', or 'HIGH'", raw)
	}
}

// Outcome is a battle result recorded against a meal's counters.
type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeLoss Outcome = "loss"
)

func ParseOutcome(raw string) (Outcome, error) {
	switch Outcome(raw) {
	case OutcomeWin, OutcomeLoss:
		return Outcome(raw), nil
	default:
		return "", Validationf("invalid outcome: %s, expected 'win' or 'loss'", raw)
	}
}

// LeaderboardSort selects the ranking metric for the leaderboard.
type LeaderboardSort string

const (
	SortByWins   LeaderboardSort = "wins"
	SortByWinPct LeaderboardSort = "win_pct"
)

func ParseLeaderboardSort(raw string) (LeaderboardSort, error) {
	switch LeaderboardSort(raw) {
	case SortByWins, SortByWinPct:
		return LeaderboardSort(raw), nil
	default:
		return "", Validationf("invalid sort_by parameter: %s", raw)
	}
}

type Meal struct {
	ID         int        `json:"id" db:"id"`
	Name       string     `json:"name" db:"name"`
	Cuisine    string     `json:"cuisine" db:"cuisine"`
	Price      float64    `json:"price" db:"price"`
	Difficulty Difficulty `json:"difficulty" db:"difficulty"`
	Battles    int        `json:"battles" db:"battles"`
	Wins       int        `json:"wins" db:"wins"`
	Deleted    bool       `json:"-" db:"is_deleted"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
}

// LeaderboardEntry is one ranked row; WinPct is a percentage rounded to
// one decimal place.
type LeaderboardEntry struct {
	ID         int        `json:"id"`
	Name       string     `json:"name"`
	Cuisine    string     `json:"cuisine"`
	Price      float64    `json:"price"`
	Difficulty Difficulty `json:"difficulty"`
	Battles    int        `json:"battles"`
	Wins       int        `json:"wins"`
	WinPct     float64    `json:"win_pct"`
}
