// Package error defines domain-specific errors for the Fleet Manager application.
package error

import "errors"

// Remaining collection errors.
var (
	// ErrGlobalExpenseNotFound is returned when a global expense is not found.
	ErrGlobalExpenseNotFound = errors.New("global expense not found")

	// ErrCashDeskNotFound is returned when a cash desk is not found.
	ErrCashDeskNotFound = errors.New("cash desk not found")

	// ErrNotificationNotFound is returned when a notification is not found.
	ErrNotificationNotFound = errors.New("notification not found")

	// ErrHistoricalStatsNotFound is returned when the historical stats
	// singleton has not been created yet. Callers treat this as a zero
	// carry-forward, not a failure.
	ErrHistoricalStatsNotFound = errors.New("historical stats not found")
)
