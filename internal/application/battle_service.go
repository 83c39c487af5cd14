package application

import (
	"errors"
	"sync"
	"unicode/utf8"

	"mealmax/internal/models"
	"mealmax/pkg/random"
)

var (
	ErrCombatantsFull         = errors.New("combatant list is full, cannot add more combatants")
	ErrInsufficientCombatants = errors.New("two combatants must be staged for a battle")
)

// BattleServiceImpl holds up to two staged combatants and resolves battles
// between them. The mutex serializes staging, clearing and battling since
// the HTTP host calls in concurrently.
type BattleServiceImpl struct {
	mu         sync.Mutex
	combatants []models.Meal
	stats      StatRecorder
	rnd        random.Source
	logger     Logger
}

func NewBattleServiceImpl(stats StatRecorder, rnd random.Source, logger Logger) *BattleServiceImpl {
	return &BattleServiceImpl{
		stats:  stats,
		rnd:    rnd,
		logger: logger,
	}
}

func (s *BattleServiceImpl) PrepCombatant(meal models.Meal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.combatants) >= maxCombatants {
		return ErrCombatantsFull
	}
	s.combatants = append(s.combatants, meal)
	s.logger.Debug("combatant staged", "meal", meal.Name, "staged", len(s.combatants))
	return nil
}

// Combatants returns a snapshot; mutating it does not touch the staged list.
func (s *BattleServiceImpl) Combatants() []models.Meal {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Meal, len(s.combatants))
	copy(out, s.combatants)
	return out
}

func (s *BattleServiceImpl) ClearCombatants() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.combatants = s.combatants[:0]
}

// BattleScore is the deterministic handicap for a meal. Cuisine length is
// counted in runes, matching how the formula has always behaved.
func (s *BattleServiceImpl) BattleScore(meal models.Meal) float64 {
	return meal.Price*float64(utf8.RuneCountInString(meal.Cuisine)) - difficultyModifier[meal.Difficulty]
}

// Battle resolves the two staged combatants, records a win and a loss
// through the stat recorder, unstages the loser and returns the winner's
// name. The comparison is strictly delta > r: at delta == r the lower
// scorer takes the upset win.
func (s *BattleServiceImpl) Battle() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.combatants) < maxCombatants {
		return "", ErrInsufficientCombatants
	}

	scoreA := s.BattleScore(s.combatants[0])
	scoreB := s.BattleScore(s.combatants[1])

	delta := (scoreA - scoreB) / deltaScale
	if delta < 0 {
		delta = -delta
	}

	r, err := s.rnd.Next()
	if err != nil {
		return "", err
	}

	favorite := 1
	if scoreA > scoreB {
		favorite = 0
	}
	underdog := 1 - favorite

	winner, loser := underdog, favorite
	if delta > r {
		winner, loser = favorite, underdog
	}

	s.logger.Info("battle resolved",
		"winner", s.combatants[winner].Name,
		"loser", s.combatants[loser].Name,
		"delta", delta,
		"draw", r)

	if err := s.stats.UpdateStats(s.combatants[winner].ID, models.OutcomeWin); err != nil {
		return "", err
	}
	if err := s.stats.UpdateStats(s.combatants[loser].ID, models.OutcomeLoss); err != nil {
		return "", err
	}

	// Loser leaves only after both updates land; the winner stays staged.
	name := s.combatants[winner].Name
	s.combatants = []models.Meal{s.combatants[winner]}
	return name, nil
}
