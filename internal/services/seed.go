package services

import (
	"errors"
	"fmt"

	"github.com/franciscosanchezn/gin-meals-api/internal/models"
	"github.com/franciscosanchezn/gin-meals-api/internal/repository"
	"github.com/sirupsen/logrus"
)

// starterDishes are stored with fixed values so a fresh catalog is usable offline
var starterDishes = []models.NutritionTotals{
	{Name: "pasta", Calories: 500, ServingSizeG: 150, SodiumMg: 12, SugarG: 1, Entries: 1},
	{Name: "focaccia", Calories: 251.4, ServingSizeG: 100, SodiumMg: 570, SugarG: 1.8, Entries: 1},
	{Name: "chicken soup", Calories: 33.2, ServingSizeG: 100, SodiumMg: 230, SugarG: 1.0, Entries: 1},
	{Name: "salad", Calories: 28.2, ServingSizeG: 100, SodiumMg: 78.2, SugarG: 6, Entries: 1},
}

// Seed stores the starter dishes. Dishes that already exist are left untouched.
func (s *catalogService) Seed() error {
	for _, totals := range starterDishes {
		id, err := s.dishes.CreateWithNutrition(totals.Name, totals)
		if errors.Is(err, repository.ErrDuplicateName) {
			log.WithField("dish_name", totals.Name).Debug("Starter dish already present, skipping")
			continue
		}
		if err != nil {
			return fmt.Errorf("seeding dish %q: %w", totals.Name, err)
		}
		log.WithFields(logrus.Fields{"dish_id": id, "dish_name": totals.Name}).Info("Starter dish stored")
	}
	s.record("dish", "seed", nil)
	return nil
}
