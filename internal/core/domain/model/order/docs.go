// Package order provides the domain entities and business rules of the order
// fulfillment lifecycle. It implements the Order aggregate root together with
// the Status state machine and the per-role transition table.
//
// The package includes:
//   - Order: the aggregate root carrying lifecycle status, the delivery-person
//     link, per-transition timestamps, and display-only commerce fields
//   - Status: the lifecycle states and the single transition table consulted
//     by every status change
//   - Role: the actor kinds (administrator, delivery person) with their
//     distinct transition permissions
//
// Key business rules:
//   - orders are created in pending and follow a strict forward path:
//     pending -> confirmed -> assigned -> out_for_delivery -> delivered -> completed
//   - cancelled is reachable from any non-terminal state, administrators only
//   - a delivery person may only advance orders assigned to them, one step at
//     a time, never backward and never skipping a state
//   - transition timestamps are stamped exactly once and survive reassignment
//
// The package follows Domain-Driven Design principles: aggregates are built
// through validated constructors and mutate only through methods that enforce
// the transition rules.
package order
