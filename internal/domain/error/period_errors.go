// Package error defines domain-specific errors for the Fleet Manager application.
package error

import (
	"errors"
	"fmt"
	"strings"
)

// Period-close and other destructive-operation errors.
var (
	// ErrConfirmationRequired is returned when a destructive operation is
	// requested without the explicit confirmation flag.
	ErrConfirmationRequired = errors.New("explicit confirmation required")
)

// PeriodCloseError reports a partial failure of the period-close
// procedure. The procedure is not atomic: each sub-step is an independent
// write, there is no rollback, and a partial failure leaves the system in
// a mixed state that requires manual reconciliation. CompletedSteps names
// the sub-steps that already took effect.
type PeriodCloseError struct {
	FailedStep     string
	CompletedSteps []string
	Err            error
}

// Error implements the error interface.
func (e *PeriodCloseError) Error() string {
	completed := "none"
	if len(e.CompletedSteps) > 0 {
		completed = strings.Join(e.CompletedSteps, ", ")
	}
	return fmt.Sprintf(
		"period close failed at step %q (completed: %s), manual reconciliation required: %v",
		e.FailedStep, completed, e.Err,
	)
}

// Unwrap returns the underlying error.
func (e *PeriodCloseError) Unwrap() error {
	return e.Err
}

// NewPeriodCloseError creates a new PeriodCloseError.
func NewPeriodCloseError(failedStep string, completedSteps []string, err error) *PeriodCloseError {
	return &PeriodCloseError{
		FailedStep:     failedStep,
		CompletedSteps: completedSteps,
		Err:            err,
	}
}
