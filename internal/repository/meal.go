package repository

import (
	"errors"
	"fmt"
	"maps"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/franciscosanchezn/gin-meals-api/internal/models"
	"github.com/sirupsen/logrus"
)

// DishResolver resolves dish ids to their current records
type DishResolver interface {
	Lookup(ids ...int) ([]models.Dish, error)
}

// MealRepository stores meals indexed by id and by name.
// Meal operations hold the meal lock while resolving dishes, so the lock order
// is always meal before dish.
type MealRepository struct {
	mu       sync.RWMutex
	byID     map[int]models.Meal
	byName   map[string]int
	ids      *IDAllocator
	dishes   DishResolver
	fault    atomic.Pointer[CorruptionError]
	onResize func(size int)
}

// NewMealRepository creates an empty meal repository resolving references through dishes
func NewMealRepository(dishes DishResolver) *MealRepository {
	return &MealRepository{
		byID:   make(map[int]models.Meal),
		byName: make(map[string]int),
		ids:    NewIDAllocator(),
		dishes: dishes,
	}
}

// Create stores a new meal made of the three given dishes and returns its id
func (r *MealRepository) Create(name string, appetizerID, mainID, dessertID int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkHealthy()

	if _, taken := r.byName[name]; taken {
		return 0, ErrDuplicateName
	}

	courses, err := r.resolve(appetizerID, mainID, dessertID)
	if err != nil {
		return 0, err
	}

	id := r.ids.Next()
	r.byID[id] = models.NewMeal(id, name, courses[0], courses[1], courses[2])
	r.byName[name] = id

	log.WithFields(logrus.Fields{
		"meal_id":   id,
		"meal_name": name,
	}).Debug("Meal created")
	r.notifyResize()
	return id, nil
}

// Update renames the meal when name differs from its current one and replaces
// its dishes and nutrition totals. References are validated before the rename
// so a failed update leaves the meal untouched.
func (r *MealRepository) Update(id int, name string, appetizerID, mainID, dessertID int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkHealthy()

	current, ok := r.byID[id]
	if !ok {
		return 0, ErrNotFound
	}

	renamed := name != current.Name
	if renamed {
		if _, taken := r.byName[name]; taken {
			return 0, ErrDuplicateName
		}
	}

	courses, err := r.resolve(appetizerID, mainID, dessertID)
	if err != nil {
		return 0, err
	}

	if renamed {
		if indexed, ok := r.byName[current.Name]; !ok || indexed != id {
			r.corrupt("name", strconv.Quote(current.Name))
		}
		delete(r.byName, current.Name)
		r.byName[name] = id
	}
	r.byID[id] = models.NewMeal(id, name, courses[0], courses[1], courses[2])

	log.WithFields(logrus.Fields{
		"meal_id":   id,
		"meal_name": name,
		"renamed":   renamed,
	}).Debug("Meal updated")
	return id, nil
}

func (r *MealRepository) resolve(ids ...int) ([]models.Dish, error) {
	courses, err := r.dishes.Lookup(ids...)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidReference, err)
		}
		return nil, err
	}
	return courses, nil
}

// GetByID returns the meal with the given id
func (r *MealRepository) GetByID(id int) (models.Meal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	r.checkHealthy()

	meal, ok := r.byID[id]
	if !ok {
		return models.Meal{}, ErrNotFound
	}
	return meal, nil
}

// GetByName returns the meal with the given name
func (r *MealRepository) GetByName(name string) (models.Meal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	r.checkHealthy()

	id, ok := r.byName[name]
	if !ok {
		return models.Meal{}, ErrNotFound
	}
	meal, ok := r.byID[id]
	if !ok {
		r.corrupt("id", strconv.Itoa(id))
	}
	return meal, nil
}

// List returns a copy of all meals keyed by id
func (r *MealRepository) List() map[int]models.Meal {
	r.mu.RLock()
	defer r.mu.RUnlock()
	r.checkHealthy()
	return maps.Clone(r.byID)
}

// DeleteByID removes the meal with the given id and returns that id
func (r *MealRepository) DeleteByID(id int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkHealthy()

	meal, ok := r.byID[id]
	if !ok {
		return 0, ErrNotFound
	}
	if indexed, ok := r.byName[meal.Name]; !ok || indexed != id {
		r.corrupt("name", strconv.Quote(meal.Name))
	}
	delete(r.byID, id)
	delete(r.byName, meal.Name)

	log.WithFields(logrus.Fields{"meal_id": id, "meal_name": meal.Name}).Debug("Meal deleted")
	r.notifyResize()
	return id, nil
}

// DeleteByName removes the meal with the given name and returns its id
func (r *MealRepository) DeleteByName(name string) (int, error) {
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

	log.WithFields(logrus.Fields{"meal_id": id, "meal_name": name}).Debug("Meal deleted")
	r.notifyResize()
	return id, nil
}

// Len returns the number of stored meals
func (r *MealRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	r.checkHealthy()
	return len(r.byID)
}

// ObserveSize registers fn to receive the meal count after every insert or delete.
// fn runs while the write lock is held, so it must not call back into the repository.
// Register it before the repository is shared.
func (r *MealRepository) ObserveSize(fn func(size int)) {
	r.onResize = fn
}

func (r *MealRepository) notifyResize() {
	if r.onResize != nil {
		r.onResize(len(r.byID))
	}
}

func (r *MealRepository) checkHealthy() {
	if fault := r.fault.Load(); fault != nil {
		panic(fault)
	}
}

func (r *MealRepository) corrupt(index, key string) {
	fault := &CorruptionError{Entity: "meal", Index: index, Key: key}
	log.WithError(fault).Error("Meal indexes are inconsistent, refusing further operations")
	r.fault.CompareAndSwap(nil, fault)
	panic(fault)
}
