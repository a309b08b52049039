// Package error defines domain-specific errors for the Fleet Manager application.
package error

import "errors"

// Financial entry domain errors.
var (
	// ErrEntryNotFound is returned when a financial entry is not found.
	ErrEntryNotFound = errors.New("financial entry not found")

	// ErrInvalidEntryType is returned when the entry type is invalid.
	ErrInvalidEntryType = errors.New("invalid entry type")

	// ErrInvalidEntryAmount is returned when the entry amount is not strictly positive.
	ErrInvalidEntryAmount = errors.New("entry amount must be positive")

	// ErrEntryNotPending is returned when approving or rejecting an entry that is not pending.
	ErrEntryNotPending = errors.New("entry is not pending")

	// ErrMissingMaintenanceType is returned when a maintenance entry carries no maintenance type.
	ErrMissingMaintenanceType = errors.New("maintenance type is required for maintenance entries")

	// ErrUnknownMaintenanceType is returned when the maintenance type is not in the registry.
	ErrUnknownMaintenanceType = errors.New("unknown maintenance type")

	// ErrEntryVehicleNotFound is returned when the referenced vehicle does not exist.
	ErrEntryVehicleNotFound = errors.New("vehicle not found for entry")

	// ErrEntryCashDeskNotFound is returned when the referenced cash desk does not exist.
	ErrEntryCashDeskNotFound = errors.New("cash desk not found for entry")
)

// EntryErrorCode defines error codes for financial entry errors.
// Format: ENT-XXYYYY where XX is category and YYYY is specific error.
type EntryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidEntryType       EntryErrorCode = "ENT-010001"
	ErrCodeInvalidEntryAmount     EntryErrorCode = "ENT-010002"
	ErrCodeMissingEntryFields     EntryErrorCode = "ENT-010003"
	ErrCodeMissingMaintenanceType EntryErrorCode = "ENT-010004"
	ErrCodeUnknownMaintenanceType EntryErrorCode = "ENT-010005"

	// State errors (02XXXX)
	ErrCodeEntryNotFound         EntryErrorCode = "ENT-020001"
	ErrCodeEntryNotPending       EntryErrorCode = "ENT-020002"
	ErrCodeEntryVehicleNotFound  EntryErrorCode = "ENT-020003"
	ErrCodeEntryCashDeskNotFound EntryErrorCode = "ENT-020004"
)

// EntryError represents a financial entry error with code and message.
type EntryError struct {
	Code    EntryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EntryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EntryError) Unwrap() error {
	return e.Err
}

// NewEntryError creates a new EntryError with the given code and message.
func NewEntryError(code EntryErrorCode, message string, err error) *EntryError {
	return &EntryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
