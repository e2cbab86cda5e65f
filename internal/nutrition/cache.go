package nutrition

import (
	"context"
	"fmt"

	"github.com/franciscosanchezn/gin-meals-api/internal/metrics"
	"github.com/franciscosanchezn/gin-meals-api/internal/models"
	"github.com/franciscosanchezn/gin-meals-api/internal/repository"
	"golang.org/x/sync/singleflight"
)

// Store keeps successful nutrition lookups
type Store interface {
	// Get returns the cached totals for name and whether they were found
	Get(ctx context.Context, name string) (models.NutritionTotals, bool, error)
	// Put stores totals under totals.Name
	Put(ctx context.Context, totals models.NutritionTotals) error
}

// CachedGateway serves lookups from a Store and collapses concurrent upstream
// lookups for the same name into one call. Store failures are logged and bypassed.
type CachedGateway struct {
	next  repository.NutritionGateway
	store Store
	group singleflight.Group
}

var _ repository.NutritionGateway = (*CachedGateway)(nil)

// NewCachedGateway wraps next. store may be nil, in which case only concurrent
// lookups are collapsed.
func NewCachedGateway(next repository.NutritionGateway, store Store) *CachedGateway {
	return &CachedGateway{next: next, store: store}
}

// Enrich returns cached totals for name or looks them up through the wrapped gateway.
// The shared upstream call runs detached from any single caller, so the wrapped
// gateway must bound its own calls. Each caller stops waiting when its own ctx ends.
func (g *CachedGateway) Enrich(ctx context.Context, name string) (models.NutritionTotals, error) {
	if g.store != nil {
		totals, found, err := g.store.Get(ctx, name)
		switch {
		case err != nil:
			log.WithError(err).WithField("food", name).Warn("Nutrition cache read failed")
		case found && totals.Entries > 0:
			metrics.RecordCacheHit()
			return totals, nil
		}
		metrics.RecordCacheMiss()
	}

	lookupCtx := context.WithoutCancel(ctx)
	results := g.group.DoChan(name, func() (interface{}, error) {
		totals, err := g.next.Enrich(lookupCtx, name)
		if err != nil {
			return nil, err
		}
		// lookups that matched nothing are not kept, so strict mode still sees them
		if g.store != nil && totals.Entries > 0 {
			if err := g.store.Put(lookupCtx, totals); err != nil {
				log.WithError(err).WithField("food", name).Warn("Nutrition cache write failed")
			}
		}
		return totals, nil
	})

	select {
	case <-ctx.Done():
		log.WithField("food", name).Debug("Caller stopped waiting for nutrition lookup")
		return models.NutritionTotals{}, fmt.Errorf("%w: %w", repository.ErrUpstreamUnavailable, ctx.Err())
	case res := <-results:
		if res.Err != nil {
			return models.NutritionTotals{}, res.Err
		}
		if res.Shared {
			log.WithField("food", name).Debug("Nutrition lookup shared with a concurrent request")
		}
		return res.Val.(models.NutritionTotals), nil
	}
}
