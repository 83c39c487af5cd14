package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"math"

	"mealmax/internal/models"

	"github.com/lib/pq"
)

type MealPostgres struct {
	db *sql.DB
}

func NewMealPostgres(db *sql.DB) *MealPostgres {
	return &MealPostgres{db: db}
}

func (r *MealPostgres) Create(meal models.Meal) (int, error) {
	var id int
	query := `INSERT INTO meals (name, cuisine, price, difficulty)
              VALUES ($1, $2, $3, $4) RETURNING id`
	err := r.db.QueryRow(query, meal.Name, meal.Cuisine, meal.Price, meal.Difficulty).Scan(&id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return 0, fmt.Errorf("meal with name %q: %w", meal.Name, ErrMealExists)
		}
		return 0, fmt.Errorf("failed to insert meal: %w", err)
	}
	return id, nil
}

func (r *MealPostgres) GetByID(id int) (models.Meal, error) {
	query := `SELECT id, name, cuisine, price, difficulty, battles, wins, is_deleted, created_at
              FROM meals WHERE id = $1`
	m, err := r.scanMeal(r.db.QueryRow(query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Meal{}, fmt.Errorf("meal with ID %d: %w", id, ErrMealNotFound)
	}
	if err != nil {
		return models.Meal{}, fmt.Errorf("failed to get meal by id: %w", err)
	}
	if m.Deleted {
		return models.Meal{}, fmt.Errorf("meal with ID %d: %w", id, ErrMealDeleted)
	}
	return m, nil
}

func (r *MealPostgres) GetByName(name string) (models.Meal, error) {
	query := `SELECT id, name, cuisine, price, difficulty, battles, wins, is_deleted, created_at
              FROM meals WHERE name = $1
              ORDER BY is_deleted ASC, id DESC LIMIT 1`
	m, err := r.scanMeal(r.db.QueryRow(query, name))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Meal{}, fmt.Errorf("meal with name %q: %w", name, ErrMealNotFound)
	}
	if err != nil {
		return models.Meal{}, fmt.Errorf("failed to get meal by name: %w", err)
	}
	if m.Deleted {
		return models.Meal{}, fmt.Errorf("meal with name %q: %w", name, ErrMealDeleted)
	}
	return m, nil
}

func (r *MealPostgres) Delete(id int) error {
	var deleted bool
	err := r.db.QueryRow("SELECT is_deleted FROM meals WHERE id = $1", id).Scan(&deleted)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("meal with ID %d: %w", id, ErrMealNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to check meal: %w", err)
	}
	if deleted {
		return fmt.Errorf("meal with ID %d: %w", id, ErrMealDeleted)
	}

	_, err = r.db.Exec("UPDATE meals SET is_deleted = TRUE, deleted_at = NOW() WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to soft delete meal: %w", err)
	}
	return nil
}

func (r *MealPostgres) UpdateStats(id int, outcome models.Outcome) error {
	var deleted bool
	err := r.db.QueryRow("SELECT is_deleted FROM meals WHERE id = $1", id).Scan(&deleted)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("meal with ID %d: %w", id, ErrMealNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to check meal: %w", err)
	}
	if deleted {
		return fmt.Errorf("meal with ID %d: %w", id, ErrMealDeleted)
	}

	var query string
	switch outcome {
	case models.OutcomeWin:
		query = "UPDATE meals SET battles = battles + 1, wins = wins + 1 WHERE id = $1"
	case models.OutcomeLoss:
		query = "UPDATE meals SET battles = battles + 1 WHERE id = $1"
	default:
		return fmt.Errorf("invalid outcome: %s, expected 'win' or 'loss'", outcome)
	}

	if _, err := r.db.Exec(query, id); err != nil {
		return fmt.Errorf("failed to update meal stats: %w", err)
	}
	return nil
}

func (r *MealPostgres) Leaderboard(sortBy models.LeaderboardSort) ([]models.LeaderboardEntry, error) {
	order := "wins"
	if sortBy == models.SortByWinPct {
		order = "win_pct"
	}
	query := fmt.Sprintf(`
		SELECT id, name, cuisine, price, difficulty, battles, wins,
		       (wins * 1.0 / battles) AS win_pct
		FROM meals
		WHERE is_deleted = FALSE AND battles > 0
		ORDER BY %s DESC`, order)

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []models.LeaderboardEntry
	for rows.Next() {
		var e models.LeaderboardEntry
		var pct float64
		if err := rows.Scan(&e.ID, &e.Name, &e.Cuisine, &e.Price, &e.Difficulty,
			&e.Battles, &e.Wins, &pct); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard row: %w", err)
		}
		e.WinPct = math.Round(pct*1000) / 10
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read leaderboard rows: %w", err)
	}
	return entries, nil
}

func (r *MealPostgres) WipeAll() error {
	if _, err := r.db.Exec("TRUNCATE meals RESTART IDENTITY"); err != nil {
		return fmt.Errorf("failed to wipe meals: %w", err)
	}
	return nil
}

func (r *MealPostgres) scanMeal(row *sql.Row) (models.Meal, error) {
	var m models.Meal
	err := row.Scan(&m.ID, &m.Name, &m.Cuisine, &m.Price, &m.Difficulty,
		&m.Battles, &m.Wins, &m.Deleted, &m.CreatedAt)
	return m, err
}
