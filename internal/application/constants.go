package application

import "mealmax/internal/models"

const (
	// Staging
	maxCombatants = 2

	// Score gap normalization for the win-probability threshold
	deltaScale = 100.0

	// Excel / Sheets report configuration
	reportSheetName = "Leaderboard"
)

// difficultyModifier handicaps harder meals; an unknown difficulty
// contributes zero, but meals are validated before they ever reach the
// arena.
var difficultyModifier = map[models.Difficulty]float64{
	models.DifficultyLow:  1,
	models.DifficultyMed:  2,
	models.DifficultyHigh: 3,
}

var reportHeaders = []string{"Rank", "ID", "Meal", "Cuisine", "Price", "Difficulty", "Battles", "Wins", "Win %"}
