package application

import (
	"bytes"
	"errors"
	"testing"

	"mealmax/internal/models"

	"github.com/xuri/excelize/v2"
)

type fakeMealRepo struct {
	created     []models.Meal
	nextID      int
	createErr   error
	leaderboard []models.LeaderboardEntry
	lastSort    models.LeaderboardSort
	wiped       bool
}

func (r *fakeMealRepo) Create(meal models.Meal) (int, error) {
	if r.createErr != nil {
		return 0, r.createErr
	}
	r.nextID++
	r.created = append(r.created, meal)
	return r.nextID, nil
}

func (r *fakeMealRepo) GetByID(id int) (models.Meal, error) {
	return models.Meal{ID: id}, nil
}

func (r *fakeMealRepo) GetByName(name string) (models.Meal, error) {
	return models.Meal{Name: name}, nil
}

func (r *fakeMealRepo) Delete(id int) error { return nil }

func (r *fakeMealRepo) UpdateStats(id int, outcome models.Outcome) error { return nil }

func (r *fakeMealRepo) Leaderboard(sortBy models.LeaderboardSort) ([]models.LeaderboardEntry, error) {
	r.lastSort = sortBy
	return r.leaderboard, nil
}

func (r *fakeMealRepo) WipeAll() error {
	r.wiped = true
	return nil
}

func newMealService(repo *fakeMealRepo) *MealServiceImpl {
	return NewMealServiceImpl(repo, nil, "", testLogger{})
}

func TestCreateMealValidation(t *testing.T) {
	tests := []struct {
		name       string
		mealName   string
		price      float64
		difficulty string
		wantErr    bool
	}{
		{"valid", "Pad Thai", 12.50, "MED", false},
		{"empty name", "", 12.50, "MED", true},
		{"zero price", "Pad Thai", 0, "MED", true},
		{"negative price", "Pad Thai", -10, "LOW", true},
		{"unknown difficulty", "Pad Thai", 12.50, "MEDIUM", true},
		{"lowercase difficulty", "Pad Thai", 12.50, "low", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeMealRepo{}
			svc := newMealService(repo)

			meal, err := svc.CreateMeal(tt.mealName, "Thai", tt.price, tt.difficulty)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreateMeal() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ve models.ValidationError
				if !errors.As(err, &ve) {
					t.Errorf("CreateMeal() error %v is not a ValidationError", err)
				}
				if len(repo.created) != 0 {
					t.Error("invalid meal reached the store")
				}
				return
			}
			if meal.ID != 1 || meal.Difficulty != models.DifficultyMed {
				t.Errorf("CreateMeal() = %+v, want ID 1 and MED difficulty", meal)
			}
		})
	}
}

func TestCreateMealPropagatesStoreError(t *testing.T) {
	repo := &fakeMealRepo{createErr: errors.New("meal already exists")}
	svc := newMealService(repo)

	if _, err := svc.CreateMeal("Pad Thai", "Thai", 12.50, "MED"); err == nil {
		t.Fatal("CreateMeal() expected store error")
	}
}

func TestLeaderboardSortValidation(t *testing.T) {
	repo := &fakeMealRepo{}
	svc := newMealService(repo)

	if _, err := svc.Leaderboard("price"); err == nil {
		t.Fatal("Leaderboard() expected error for invalid sort key")
	}

	if _, err := svc.Leaderboard(""); err != nil {
		t.Fatalf("Leaderboard() with empty sort: error = %v", err)
	}
	if repo.lastSort != models.SortByWins {
		t.Errorf("empty sort delegated as %q, want %q", repo.lastSort, models.SortByWins)
	}

	if _, err := svc.Leaderboard("win_pct"); err != nil {
		t.Fatalf("Leaderboard(win_pct) error = %v", err)
	}
	if repo.lastSort != models.SortByWinPct {
		t.Errorf("win_pct sort delegated as %q", repo.lastSort)
	}
}

func TestExcelReport(t *testing.T) {
	repo := &fakeMealRepo{
		leaderboard: []models.LeaderboardEntry{
			{ID: 1, Name: "Meal 1", Cuisine: "Italian", Price: 24.99, Difficulty: models.DifficultyMed, Battles: 10, Wins: 5, WinPct: 50.0},
			{ID: 2, Name: "Meal 2", Cuisine: "French", Price: 49.99, Difficulty: models.DifficultyHigh, Battles: 10, Wins: 4, WinPct: 40.0},
		},
	}
	svc := newMealService(repo)

	report, err := svc.ExcelReport("wins")
	if err != nil {
		t.Fatalf("ExcelReport() error = %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(report))
	if err != nil {
		t.Fatalf("report is not a readable workbook: %v", err)
	}
	defer f.Close()

	if got, _ := f.GetCellValue("Leaderboard", "C1"); got != "Meal" {
		t.Errorf("header C1 = %q, want %q", got, "Meal")
	}
	if got, _ := f.GetCellValue("Leaderboard", "C2"); got != "Meal 1" {
		t.Errorf("first row meal = %q, want %q", got, "Meal 1")
	}
	if got, _ := f.GetCellValue("Leaderboard", "I3"); got != "40.0%" {
		t.Errorf("second row win pct = %q, want %q", got, "40.0%")
	}
}

func TestSyncLeaderboardUnconfigured(t *testing.T) {
	svc := newMealService(&fakeMealRepo{})
	if _, err := svc.SyncLeaderboard(); err == nil {
		t.Fatal("SyncLeaderboard() expected error without sheets integration")
	}
}

func TestWipeAll(t *testing.T) {
	repo := &fakeMealRepo{}
	svc := newMealService(repo)

	if err := svc.WipeAll(); err != nil {
		t.Fatalf("WipeAll() error = %v", err)
	}
	if !repo.wiped {
		t.Fatal("WipeAll() did not reach the store")
	}
}
