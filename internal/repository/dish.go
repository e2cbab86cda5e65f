package repository

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/franciscosanchezn/gin-meals-api/internal/models"
	"github.com/sirupsen/logrus"
)

// NutritionGateway looks up aggregated nutrition values for a food name
type NutritionGateway interface {
	Enrich(ctx context.Context, name string) (models.NutritionTotals, error)
}

// DishRepository stores dishes indexed by id and by name.
// Both indexes are guarded by the same lock so every operation is atomic to observers.
type DishRepository struct {
	mu       sync.RWMutex
	byID     map[int]models.Dish
	byName   map[string]int
	ids      *IDAllocator
	gateway  NutritionGateway
	fault    atomic.Pointer[CorruptionError]
	onResize func(size int)
}

// NewDishRepository creates an empty dish repository that enriches new dishes through gateway
func NewDishRepository(gateway NutritionGateway) *DishRepository {
	return &DishRepository{
		byID:    make(map[int]models.Dish),
		byName:  make(map[string]int),
		ids:     NewIDAllocator(),
		gateway: gateway,
	}
}

// Create looks up the nutrition values for name and stores a new dish.
// The lookup runs without holding the repository lock.
func (r *DishRepository) Create(ctx context.Context, name string) (int, error) {
	if r.exists(name) {
		return 0, ErrDuplicateName
	}

	totals, err := r.gateway.Enrich(ctx, name)
	if err != nil {
		if errors.Is(err, ErrUnknownFood) || errors.Is(err, ErrUpstreamUnavailable) {
			return 0, err
		}
		return 0, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	// Another request may have created the same name while the lookup was in flight
	return r.CreateWithNutrition(name, totals)
}

// CreateWithNutrition stores a new dish using already known nutrition values
func (r *DishRepository) CreateWithNutrition(name string, totals models.NutritionTotals) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkHealthy()

	if _, taken := r.byName[name]; taken {
		return 0, ErrDuplicateName
	}

	id := r.ids.Next()
	r.byID[id] = models.NewDish(id, name, totals)
	r.byName[name] = id

	log.WithFields(logrus.Fields{
		"dish_id":   id,
		"dish_name": name,
	}).Debug("Dish created")
	r.notifyResize()
	return id, nil
}

func (r *DishRepository) exists(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	r.checkHealthy()
	_, ok := r.byName[name]
	return ok
}

// GetByID returns the dish with the given id
func (r *DishRepository) GetByID(id int) (models.Dish, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	r.checkHealthy()

	dish, ok := r.byID[id]
	if !ok {
		return models.Dish{}, ErrNotFound
	}
	return dish, nil
}

// GetByName returns the dish with the given name
func (r *DishRepository) GetByName(name string) (models.Dish, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	r.checkHealthy()

	id, ok := r.byName[name]
	if !ok {
		return models.Dish{}, ErrNotFound
	}
	dish, ok := r.byID[id]
	if !ok {
		r.corrupt("id", strconv.Itoa(id))
	}
	return dish, nil
}

// Lookup resolves several dish ids under a single read lock.
// The returned slice has the same order as ids.
func (r *DishRepository) Lookup(ids ...int) ([]models.Dish, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	r.checkHealthy()

	dishes := make([]models.Dish, 0, len(ids))
	for _, id := range ids {
		dish, ok := r.byID[id]
		if !ok {
			return nil, fmt.Errorf("dish %d: %w", id, ErrNotFound)
		}
		dishes = append(dishes, dish)
	}
	return dishes, nil
}

// List returns a copy of all dishes keyed by id
func (r *DishRepository) List() map[int]models.Dish {
	r.mu.RLock()
	defer r.mu.RUnlock()
	r.checkHealthy()
	return maps.Clone(r.byID)
}

// DeleteByID removes the dish with the given id and returns that id
func (r *DishRepository) DeleteByID(id int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkHealthy()

	dish, ok := r.byID[id]
	if !ok {
		return 0, ErrNotFound
	}
	if indexed, ok := r.byName[dish.Name]; !ok || indexed != id {
		r.corrupt("name", strconv.Quote(dish.Name))
	}
	delete(r.byID, id)
	delete(r.byName, dish.Name)

	log.WithFields(logrus.Fields{"dish_id": id, "dish_name": dish.Name}).Debug("Dish deleted")
	r.notifyResize()
	return id, nil
}

// DeleteByName removes the dish with the given name and returns its id
func (r *DishRepository) DeleteByName(name string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkHealthy()

	id, ok := r.byName[name]
	if !ok {
		return 0, ErrNotFound
	}
	if _, ok := r.byID[id]; !ok {
		r.corrupt("id", strconv.Itoa(id))
	}
	delete(r.byName, name)
	delete(r.byID, id)

	log.WithFields(logrus.Fields{"dish_id": id, "dish_name": name}).Debug("Dish deleted")
	r.notifyResize()
	return id, nil
}

// Len returns the number of stored dishs
func (r *DishRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	r.checkHealthy()
	return len(r.byID)
}

// ObserveSize registers fn to receive the dish count after every insert or delete.
// fn runs while the write lock is held, so it must not call back into the repository.
// Register it before the repository is shared.
func (r *DishRepository) ObserveSize(fn func(size int)) {
	r.onResize = fn
}

func (r *DishRepository) notifyResize() {
	if r.onResize != nil {
		r.onResize(len(r.byID))
	}
}

func (r *DishRepository) checkHealthy() {
	if fault := r.fault.Load(); fault != nil {
		panic(fault)
	}
}

// corrupt records the fault so later operations are refused, then raises it
func (r *DishRepository) corrupt(index, key string) {
	fault := &CorruptionError{Entity: "dish", Index: index, Key: key}
	log.WithError(fault).Error("Dish indexes are inconsistent, refusing further operations")
	r.fault.CompareAndSwap(nil, fault)
	panic(fault)
}
