package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/franciscosanchezn/gin-meals-api/internal/models"
)

// stubGateway serves fixed nutrition totals keyed by food name
type stubGateway struct {
	mu      sync.Mutex
	totals  map[string]models.NutritionTotals
	err     error
	calls   int
	release chan struct{}
	entered chan struct{}
}

func newStubGateway() *stubGateway {
	return &stubGateway{
		totals: map[string]models.NutritionTotals{
			"pasta": {Name: "pasta", Calories: 500, ServingSizeG: 150, SodiumMg: 12, SugarG: 1},
			"salad": {Name: "salad", Calories: 28.2, ServingSizeG: 100, SodiumMg: 78.2, SugarG: 6},
			"cake":  {Name: "cake", Calories: 350, ServingSizeG: 100, SodiumMg: 300, SugarG: 35},
		},
	}
}

func (g *stubGateway) Enrich(ctx context.Context, name string) (models.NutritionTotals, error) {
	g.mu.Lock()
	g.calls++
	entered, release, err := g.entered, g.release, g.err
	totals, ok := g.totals[name]
	g.mu.Unlock()

	if entered != nil {
		entered <- struct{}{}
	}
	if release != nil {
		<-release
	}
	if err != nil {
		return models.NutritionTotals{}, err
	}
	if !ok {
		return models.NutritionTotals{Name: name}, nil
	}
	return totals, nil
}

func (g *stubGateway) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

var errUpstreamDown = errors.New("connection refused")

// recoverFault runs f and returns the corruption fault it raised, if any
func recoverFault(f func()) (fault *CorruptionError) {
	defer func() {
		if r := recover(); r != nil {
			fault, _ = r.(*CorruptionError)
		}
	}()
	f()
	return nil
}
