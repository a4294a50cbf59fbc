package core

import "errors"

// Configuration / contract violations. These are meant to surface during
// integration, not to be retried at runtime.
var (
	// ErrCapacity is returned when a message store is configured with a
	// non-positive capacity.
	ErrCapacity = errors.New("store capacity must be positive")

	// ErrBudget is returned when the trimmer is given a negative token budget.
	ErrBudget = errors.New("token budget must not be negative")
)
