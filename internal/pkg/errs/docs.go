// Package errs provides standardized error types for the fulfillment application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// Two groups of errors live here:
//
//   - General categories used during validation and lookup:
//     ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError,
//     ObjectNotFoundError.
//   - Workflow rejection kinds raised by the order lifecycle and assignment
//     operations: InvalidTransitionError, NotAssignedToActorError,
//     OrderTerminalError, InvalidStateError, InactivePersonError.
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrInvalidTransition)
//   - A struct type with fields for error details
//   - Constructor functions, with and without cause where applicable
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so callers can classify
//     failures with errors.Is
//
// The workflow kinds are semantic rejections, not transient faults: they are
// never retried by the core and always leave the target record unchanged.
package errs
