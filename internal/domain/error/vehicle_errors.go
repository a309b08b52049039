// Package error defines domain-specific errors for the Fleet Manager application.
package error

import "errors"

// Vehicle domain errors.
var (
	// ErrVehicleNotFound is returned when a vehicle is not found in the system.
	ErrVehicleNotFound = errors.New("vehicle not found")

	// ErrMileageDecrease is returned when an odometer update is lower than the current reading.
	ErrMileageDecrease = errors.New("mileage cannot decrease")

	// ErrVehicleArchived is returned when mutating an archived vehicle.
	ErrVehicleArchived = errors.New("vehicle is archived")

	// ErrVehicleAlreadyArchived is returned when archiving an already archived vehicle.
	ErrVehicleAlreadyArchived = errors.New("vehicle is already archived")

	// ErrMaintenanceConfigNotFound is returned when no config matches the maintenance type.
	ErrMaintenanceConfigNotFound = errors.New("maintenance config not found")

	// ErrDuplicateMaintenanceConfig is returned when adding a config for a type the vehicle already tracks.
	ErrDuplicateMaintenanceConfig = errors.New("maintenance config already exists for this type")

	// ErrInvalidMaintenanceInterval is returned when the interval is not strictly positive.
	ErrInvalidMaintenanceInterval = errors.New("maintenance interval must be positive")
)

// VehicleErrorCode defines error codes for vehicle errors.
// Format: VEH-XXYYYY where XX is category and YYYY is specific error.
type VehicleErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingVehicleFields       VehicleErrorCode = "VEH-010001"
	ErrCodeMileageDecrease            VehicleErrorCode = "VEH-010002"
	ErrCodeInvalidMaintenanceInterval VehicleErrorCode = "VEH-010003"
	ErrCodeDuplicateMaintenanceConfig VehicleErrorCode = "VEH-010004"

	// State errors (02XXXX)
	ErrCodeVehicleNotFound           VehicleErrorCode = "VEH-020001"
	ErrCodeVehicleArchived           VehicleErrorCode = "VEH-020002"
	ErrCodeVehicleAlreadyArchived    VehicleErrorCode = "VEH-020003"
	ErrCodeMaintenanceConfigNotFound VehicleErrorCode = "VEH-020004"
)

// VehicleError represents a vehicle error with code and message.
type VehicleError struct {
	Code    VehicleErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *VehicleError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *VehicleError) Unwrap() error {
	return e.Err
}

// NewVehicleError creates a new VehicleError with the given code and message.
func NewVehicleError(code VehicleErrorCode, message string, err error) *VehicleError {
	return &VehicleError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
