package services

import (
	"context"
	"errors"

	"github.com/franciscosanchezn/gin-meals-api/internal/metrics"
	"github.com/franciscosanchezn/gin-meals-api/internal/models"
	"github.com/franciscosanchezn/gin-meals-api/internal/repository"
)

// CatalogService is the single entry point to the dish and meal repositories
type CatalogService interface {
	// CreateDish looks up the nutrition values of name and stores a new dish
	CreateDish(ctx context.Context, name string) (int, error)
	// GetDishByID retrieves a dish by its ID
	GetDishByID(id int) (models.Dish, error)
	// GetDishByName retrieves a dish by its exact name
	GetDishByName(name string) (models.Dish, error)
	// ListDishes returns a snapshot of every dish keyed by ID
	ListDishes() map[int]models.Dish
	// DeleteDishByID deletes a dish by its ID and returns that ID
	DeleteDishByID(id int) (int, error)
	// DeleteDishByName deletes a dish by its name and returns its ID
	DeleteDishByName(name string) (int, error)

	// CreateMeal stores a new meal made of three existing dishes
	CreateMeal(name string, appetizerID, mainID, dessertID int) (int, error)
	// GetMealByID retrieves a meal by its ID
	GetMealByID(id int) (models.Meal, error)
	// GetMealByName retrieves a meal by its exact name
	GetMealByName(name string) (models.Meal, error)
	// ListMeals returns a snapshot of every meal keyed by ID
	ListMeals() map[int]models.Meal
	// UpdateMeal renames a meal and replaces its dishes
	UpdateMeal(id int, name string, appetizerID, mainID, dessertID int) (int, error)
	// DeleteMealByID deletes a meal by its ID and returns that ID
	DeleteMealByID(id int) (int, error)
	// DeleteMealByName deletes a meal by its name and returns its ID
	DeleteMealByName(name string) (int, error)

	// Seed stores the fixed starter dishes without contacting the nutrition service
	Seed() error
}

// catalogService is the implementation of the CatalogService interface
type catalogService struct {
	dishes *repository.DishRepository
	meals  *repository.MealRepository
}

// NewCatalogService creates a new instance of CatalogService enriching dishes through gateway
func NewCatalogService(gateway repository.NutritionGateway) CatalogService {
	dishes := repository.NewDishRepository(gateway)
	meals := repository.NewMealRepository(dishes)
	dishes.ObserveSize(func(size int) { metrics.SetCatalogSize("dish", size) })
	meals.ObserveSize(func(size int) { metrics.SetCatalogSize("meal", size) })
	return &catalogService{
		dishes: dishes,
		meals:  meals,
	}
}

func (s *catalogService) CreateDish(ctx context.Context, name string) (int, error) {
	id, err := s.dishes.Create(ctx, name)
	s.record("dish", "create", err)
	return id, err
}

func (s *catalogService) GetDishByID(id int) (models.Dish, error) {
	dish, err := s.dishes.GetByID(id)
	s.record("dish", "get", err)
	return dish, err
}

func (s *catalogService) GetDishByName(name string) (models.Dish, error) {
	dish, err := s.dishes.GetByName(name)
	s.record("dish", "get", err)
	return dish, err
}

func (s *catalogService) ListDishes() map[int]models.Dish {
	dishes := s.dishes.List()
	s.record("dish", "list", nil)
	return dishes
}

func (s *catalogService) DeleteDishByID(id int) (int, error) {
	deleted, err := s.dishes.DeleteByID(id)
	s.record("dish", "delete", err)
	return deleted, err
}

func (s *catalogService) DeleteDishByName(name string) (int, error) {
	deleted, err := s.dishes.DeleteByName(name)
	s.record("dish", "delete", err)
	return deleted, err
}

func (s *catalogService) CreateMeal(name string, appetizerID, mainID, dessertID int) (int, error) {
	id, err := s.meals.Create(name, appetizerID, mainID, dessertID)
	s.record("meal", "create", err)
	return id, err
}

func (s *catalogService) GetMealByID(id int) (models.Meal, error) {
	meal, err := s.meals.GetByID(id)
	s.record("meal", "get", err)
	return meal, err
}

func (s *catalogService) GetMealByName(name string) (models.Meal, error) {
	meal, err := s.meals.GetByName(name)
	s.record("meal", "get", err)
	return meal, err
}

func (s *catalogService) ListMeals() map[int]models.Meal {
	meals := s.meals.List()
	s.record("meal", "list", nil)
	return meals
}

func (s *catalogService) UpdateMeal(id int, name string, appetizerID, mainID, dessertID int) (int, error) {
	updated, err := s.meals.Update(id, name, appetizerID, mainID, dessertID)
	s.record("meal", "update", err)
	return updated, err
}

func (s *catalogService) DeleteMealByID(id int) (int, error) {
	deleted, err := s.meals.DeleteByID(id)
	s.record("meal", "delete", err)
	return deleted, err
}

func (s *catalogService) DeleteMealByName(name string) (int, error) {
	deleted, err := s.meals.DeleteByName(name)
	s.record("meal", "delete", err)
	return deleted, err
}

func (s *catalogService) record(entity, operation string, err error) {
	metrics.RecordOperation(entity, operation, ResultTag(err))
}

// ResultTag names the outcome of a catalog operation
func ResultTag(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, repository.ErrDuplicateName):
		return "duplicate_name"
	case errors.Is(err, repository.ErrNotFound):
		return "not_found"
	case errors.Is(err, repository.ErrInvalidReference):
		return "invalid_reference"
	case errors.Is(err, repository.ErrUnknownFood):
		return "unknown_food"
	case errors.Is(err, repository.ErrUpstreamUnavailable):
		return "upstream_unavailable"
	default:
		return "error"
	}
}
