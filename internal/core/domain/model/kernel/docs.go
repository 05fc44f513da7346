// Package kernel provides core domain primitives for the fulfillment system.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package currently contains the UUID value object, which enforces that
// identifiers are always constructed through a factory function and are
// immutable and thread-safe.
package kernel
