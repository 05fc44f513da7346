package queries

import (
	"context"
	"sync"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// StatsProjection is a cached snapshot of the fulfillment statistics,
// refreshed on a schedule by a background job. Live queries stay exact by
// computing on demand; the projection serves surfaces where a slightly stale
// figure is acceptable, such as periodic reports.
type StatsProjection struct {
	orderRepo  ports.OrderRepository
	calculator services.StatsCalculator

	mu          sync.RWMutex
	overall     services.OverallStats
	perPerson   map[kernel.UUID]services.DeliveryPersonStats
	refreshedAt time.Time
}

// NewStatsProjection creates an empty projection. It holds all-zero figures
// until the first Refresh.
func NewStatsProjection(orderRepo ports.OrderRepository) *StatsProjection {
	return &StatsProjection{
		orderRepo:  orderRepo,
		calculator: services.NewStatsCalculator(),
		perPerson:  make(map[kernel.UUID]services.DeliveryPersonStats),
	}
}

// Refresh recomputes the snapshot from the current order set. On error the
// previous snapshot is kept; a failed refresh never blanks the figures.
func (p *StatsProjection) Refresh(ctx context.Context) error {
	orders, err := p.orderRepo.GetAll(ctx)
	if err != nil {
		return err
	}

	overall := p.calculator.Overall(orders)
	perPerson := p.calculator.PerPerson(orders)

	p.mu.Lock()
	p.overall = overall
	p.perPerson = perPerson
	p.refreshedAt = time.Now()
	p.mu.Unlock()

	return nil
}

// Overall returns the cached system-wide figures.
func (p *StatsProjection) Overall() services.OverallStats {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.overall
}

// ForPerson returns the cached figures of one delivery person. The second
// return value is false when the person had no linked orders at refresh time.
func (p *StatsProjection) ForPerson(personID kernel.UUID) (services.DeliveryPersonStats, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	stats, ok := p.perPerson[personID]
	return stats, ok
}

// RefreshedAt returns when the snapshot was last rebuilt, or the zero time if
// it never was.
func (p *StatsProjection) RefreshedAt() time.Time {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.refreshedAt
}
