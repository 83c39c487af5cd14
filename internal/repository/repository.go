package repository

import (
	"database/sql"
	"errors"

	"mealmax/internal/models"
)

var (
	ErrMealNotFound = errors.New("meal not found")
	ErrMealDeleted  = errors.New("meal has been deleted")
	ErrMealExists   = errors.New("meal already exists")
)

type Meal interface {
	Create(meal models.Meal) (int, error)
	GetByID(id int) (models.Meal, error)
	GetByName(name string) (models.Meal, error)
	Delete(id int) error
	UpdateStats(id int, outcome models.Outcome) error
	Leaderboard(sortBy models.LeaderboardSort) ([]models.LeaderboardEntry, error)
	WipeAll() error
}

type Repository struct {
	Meal
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Meal: NewMealPostgres(db),
		db:   db,
	}
}
