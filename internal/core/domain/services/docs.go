// Package services contains domain services of the fulfillment workflow.
// Domain services host behavior that spans aggregates and therefore does not
// belong to a single entity.
//
// StatsCalculator is the only service here: one aggregation pass deriving
// delivery-person and system-wide performance figures (assignment counts,
// delivery rate, average delivery time) from order collections. Centralizing
// the pass guarantees every caller applies identical counting rules.
package services
