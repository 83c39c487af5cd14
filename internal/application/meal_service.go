package application

import (
	"fmt"

	"mealmax/internal/integration"
	"mealmax/internal/models"
	"mealmax/internal/repository"

	"github.com/xuri/excelize/v2"
)

type MealServiceImpl struct {
	repo       repository.Meal
	sheets     *integration.SheetService
	ownerEmail string
	logger     Logger
}

func NewMealServiceImpl(repo repository.Meal, sheets *integration.SheetService, ownerEmail string, logger Logger) *MealServiceImpl {
	return &MealServiceImpl{
		repo:       repo,
		sheets:     sheets,
		ownerEmail: ownerEmail,
		logger:     logger,
	}
}

// CreateMeal is the single validation point for raw meal input; past here
// price and difficulty are trusted.
func (s *MealServiceImpl) CreateMeal(name, cuisine string, price float64, difficulty string) (models.Meal, error) {
	if name == "" {
		return models.Meal{}, models.Validationf("invalid meal name: name must not be empty")
	}
	if price <= 0 {
		return models.Meal{}, models.Validationf("invalid price: %v, price must be a positive number", price)
	}
	level, err := models.ParseDifficulty(difficulty)
	if err != nil {
		return models.Meal{}, err
	}

	meal := models.Meal{
		Name:       name,
		Cuisine:    cuisine,
		Price:      price,
		Difficulty: level,
	}
	id, err := s.repo.Create(meal)
	if err != nil {
		return models.Meal{}, err
	}
	meal.ID = id

	s.logger.Info("meal created", "id", id, "name", name)
	return meal, nil
}

func (s *MealServiceImpl) GetMealByID(id int) (models.Meal, error) {
	return s.repo.GetByID(id)
}

func (s *MealServiceImpl) GetMealByName(name string) (models.Meal, error) {
	return s.repo.GetByName(name)
}

func (s *MealServiceImpl) DeleteMeal(id int) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.logger.Info("meal deleted", "id", id)
	return nil
}

func (s *MealServiceImpl) Leaderboard(sortBy string) ([]models.LeaderboardEntry, error) {
	if sortBy == "" {
		sortBy = string(models.SortByWins)
	}
	sort, err := models.ParseLeaderboardSort(sortBy)
	if err != nil {
		return nil, err
	}
	return s.repo.Leaderboard(sort)
}

// ExcelReport renders the leaderboard as an xlsx workbook.
func (s *MealServiceImpl) ExcelReport(sortBy string) ([]byte, error) {
	entries, err := s.Leaderboard(sortBy)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	f.NewSheet(reportSheetName)
	f.DeleteSheet("Sheet1")

	for i, h := range reportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(reportSheetName, cell, h)
	}

	for i, e := range entries {
		row := []interface{}{
			i + 1, e.ID, e.Name, e.Cuisine, e.Price, string(e.Difficulty),
			e.Battles, e.Wins, fmt.Sprintf("%.1f%%", e.WinPct),
		}
		for col, v := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			f.SetCellValue(reportSheetName, cell, v)
		}
	}

	f.SetColWidth(reportSheetName, "A", "B", 8)
	f.SetColWidth(reportSheetName, "C", "D", 20)
	f.SetColWidth(reportSheetName, "E", "I", 12)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SyncLeaderboard pushes the current leaderboard to the configured Google
// Sheet and returns its URL.
func (s *MealServiceImpl) SyncLeaderboard() (string, error) {
	if s.sheets == nil {
		return "", fmt.Errorf("google sheets integration is not configured")
	}

	entries, err := s.repo.Leaderboard(models.SortByWins)
	if err != nil {
		return "", err
	}

	rows := [][]interface{}{headerRow()}
	for i, e := range entries {
		rows = append(rows, []interface{}{
			i + 1, e.ID, e.Name, e.Cuisine, e.Price, string(e.Difficulty),
			e.Battles, e.Wins, fmt.Sprintf("%.1f%%", e.WinPct),
		})
	}

	_, url, err := s.sheets.EnsureSheetExists(reportSheetName, s.ownerEmail)
	if err != nil {
		return "", err
	}
	if err := s.sheets.UpdateLeaderboard(rows); err != nil {
		return "", fmt.Errorf("failed to update leaderboard sheet: %w", err)
	}
	return url, nil
}

func (s *MealServiceImpl) WipeAll() error {
	if err := s.repo.WipeAll(); err != nil {
		return fmt.Errorf("failed to wipe meals: %w", err)
	}
	if s.sheets != nil {
		if _, _, err := s.sheets.EnsureSheetExists(reportSheetName, s.ownerEmail); err == nil {
			_ = s.sheets.UpdateLeaderboard([][]interface{}{headerRow()})
		}
	}
	s.logger.Warn("all meals wiped")
	return nil
}

func headerRow() []interface{} {
	row := make([]interface{}, len(reportHeaders))
	for i, h := range reportHeaders {
		row[i] = h
	}
	return row
}
