package application

import (
	"mealmax/internal/integration"
	"mealmax/internal/models"
	"mealmax/internal/repository"
	"mealmax/pkg/random"
)

type Logger interface {
	Error(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Info(format string, v ...interface{})
	Debug(format string, v ...interface{})
}

// StatRecorder is the slice of the meal store the battle service needs.
type StatRecorder interface {
	UpdateStats(id int, outcome models.Outcome) error
}

type MealService interface {
	CreateMeal(name, cuisine string, price float64, difficulty string) (models.Meal, error)
	GetMealByID(id int) (models.Meal, error)
	GetMealByName(name string) (models.Meal, error)
	DeleteMeal(id int) error
	Leaderboard(sortBy string) ([]models.LeaderboardEntry, error)
	ExcelReport(sortBy string) ([]byte, error)
	SyncLeaderboard() (string, error)
	WipeAll() error
}

type BattleService interface {
	PrepCombatant(meal models.Meal) error
	Combatants() []models.Meal
	ClearCombatants()
	BattleScore(meal models.Meal) float64
	Battle() (string, error)
}

type Service struct {
	Meals   MealService
	Battles BattleService
}

func NewService(repos *repository.Repository, rnd random.Source, sheets *integration.SheetService, ownerEmail string, logger Logger) *Service {
	return &Service{
		Meals:   NewMealServiceImpl(repos.Meal, sheets, ownerEmail, logger),
		Battles: NewBattleServiceImpl(repos.Meal, rnd, logger),
	}
}
