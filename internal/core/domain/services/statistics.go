package services

import (
	"math"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// DeliveryPersonStats holds the derived performance figures of one delivery
// person. All values are computed from the orders currently linked to the
// person; nothing here is stored.
type DeliveryPersonStats struct {
	// PersonID identifies the delivery person the figures belong to.
	PersonID kernel.UUID

	// TotalAssigned counts the orders linked to the person. With no
	// assignment audit trail kept, a reassigned-away order counts toward
	// its current assignee only.
	TotalAssigned int

	// TotalDelivered counts linked orders that reached delivered or later.
	TotalDelivered int

	// TotalCompleted counts linked orders that reached completed.
	TotalCompleted int

	// DeliveryRate is round(TotalCompleted / TotalAssigned * 100),
	// always within [0, 100], and exactly 0 when TotalAssigned is 0.
	DeliveryRate int

	// AverageDeliveryTime is the mean of deliveredAt - assignedAt across the
	// person's delivered orders. Zero when none of them reached delivered.
	AverageDeliveryTime time.Duration
}

// OverallStats aggregates the same figures across all delivery persons for
// the system-wide dashboard view.
type OverallStats struct {
	TotalAssigned  int
	TotalDelivered int
	TotalCompleted int

	// DeliveryRate is the system-wide success rate computed from the totals.
	DeliveryRate int

	// AverageDeliveryTime is the mean delivery time across every delivered
	// order in the system.
	AverageDeliveryTime time.Duration
}

// StatsCalculator is the domain service that derives performance statistics
// from order collections. Every read path goes through this one aggregation
// pass so the counting rules cannot drift between callers.
//
// The calculator never mutates anything; statistics are computed lazily on
// query and a slightly stale figure is acceptable to callers.
//
// Example usage:
//
//	calc := services.NewStatsCalculator()
//	stats := calc.ForPerson(personID, orders)
//	fmt.Printf("delivery rate: %d%%\n", stats.DeliveryRate)
type StatsCalculator struct{}

// NewStatsCalculator creates a new StatsCalculator instance.
func NewStatsCalculator() StatsCalculator {
	return StatsCalculator{}
}

// ForPerson derives the statistics of a single delivery person from the given
// orders. Orders linked to other persons, or to nobody, are ignored, so the
// caller may pass either a pre-filtered set or the full collection.
func (c StatsCalculator) ForPerson(personID kernel.UUID, orders []*order.Order) DeliveryPersonStats {
	stats := DeliveryPersonStats{PersonID: personID}

	var deliveryTime time.Duration
	var deliveredWithTimes int

	for _, o := range orders {
		linked := o.DeliveryPerson()
		if linked == nil || !linked.IsEqual(personID) {
			continue
		}

		stats.TotalAssigned++

		switch o.Status() {
		case order.Delivered:
			stats.TotalDelivered++
		case order.Completed:
			stats.TotalDelivered++
			stats.TotalCompleted++
		}

		if o.DeliveredAt() != nil && o.AssignedAt() != nil {
			deliveryTime += o.DeliveredAt().Sub(*o.AssignedAt())
			deliveredWithTimes++
		}
	}

	stats.DeliveryRate = rate(stats.TotalCompleted, stats.TotalAssigned)
	if deliveredWithTimes > 0 {
		stats.AverageDeliveryTime = deliveryTime / time.Duration(deliveredWithTimes)
	}

	return stats
}

// PerPerson derives the statistics of every delivery person that appears in
// the given orders, keyed by person ID.
func (c StatsCalculator) PerPerson(orders []*order.Order) map[kernel.UUID]DeliveryPersonStats {
	byPerson := make(map[kernel.UUID][]*order.Order)
	for _, o := range orders {
		if linked := o.DeliveryPerson(); linked != nil {
			byPerson[*linked] = append(byPerson[*linked], o)
		}
	}

	out := make(map[kernel.UUID]DeliveryPersonStats, len(byPerson))
	for personID, personOrders := range byPerson {
		out[personID] = c.ForPerson(personID, personOrders)
	}
	return out
}

// Overall derives the system-wide statistics across all delivery persons:
// sums of the per-person counts, a success rate from the totals, and the mean
// delivery time over every delivered order.
func (c StatsCalculator) Overall(orders []*order.Order) OverallStats {
	var stats OverallStats
	var deliveryTime time.Duration
	var deliveredWithTimes int

	for _, o := range orders {
		if o.DeliveryPerson() == nil {
			continue
		}

		stats.TotalAssigned++

		switch o.Status() {
		case order.Delivered:
			stats.TotalDelivered++
		case order.Completed:
			stats.TotalDelivered++
			stats.TotalCompleted++
		}

		if o.DeliveredAt() != nil && o.AssignedAt() != nil {
			deliveryTime += o.DeliveredAt().Sub(*o.AssignedAt())
			deliveredWithTimes++
		}
	}

	stats.DeliveryRate = rate(stats.TotalCompleted, stats.TotalAssigned)
	if deliveredWithTimes > 0 {
		stats.AverageDeliveryTime = deliveryTime / time.Duration(deliveredWithTimes)
	}

	return stats
}

// rate returns round(part/total*100), defined as 0 when total is 0 so the
// division by zero of an unassigned person can never fault.
func rate(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
