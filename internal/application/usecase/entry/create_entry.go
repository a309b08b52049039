// Package entry contains financial entry use cases.
package entry

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fleet-manager/backend/internal/application/adapter"
	"github.com/fleet-manager/backend/internal/application/usecase/cashdesk"
	"github.com/fleet-manager/backend/internal/application/usecase/maintenance"
	"github.com/fleet-manager/backend/internal/domain/entity"
	domainerror "github.com/fleet-manager/backend/internal/domain/error"
	"github.com/fleet-manager/backend/internal/domain/valueobject"
)

// MaxDescriptionLength is the maximum allowed length for entry descriptions.
const MaxDescriptionLength = 255

// CreateEntryInput represents the input for entry creation.
type CreateEntryInput struct {
	Type            entity.EntryType
	Amount          decimal.Decimal
	Date            time.Time
	Description     string
	VehicleID       *uuid.UUID
	CashDeskID      *uuid.UUID
	MaintenanceType string
	MileageAtEntry  *int
	ReceiptPhoto    string
	AuthorID        uuid.UUID
	AuthorName      string
	AuthorRole      entity.UserRole
}

// CreateEntryOutput represents the output of entry creation.
type CreateEntryOutput struct {
	Entry *entity.FinancialEntry
}

// CreateEntryUseCase handles entry creation and its immediate side
// effects. Cash-desk and odometer adjustments happen at creation time,
// not at approval time: a PENDING entry already moves the desk balance
// and the odometer so operational figures stay current.
type CreateEntryUseCase struct {
	entryRepo        adapter.EntryRepository
	vehicleRepo      adapter.VehicleRepository
	cashDeskRepo     adapter.CashDeskRepository
	notificationRepo adapter.NotificationRepository
	registry         *valueobject.MaintenanceTypeRegistry
	tracker          *maintenance.EvaluateAlertsUseCase
}

// NewCreateEntryUseCase creates a new CreateEntryUseCase instance.
func NewCreateEntryUseCase(
	entryRepo adapter.EntryRepository,
	vehicleRepo adapter.VehicleRepository,
	cashDeskRepo adapter.CashDeskRepository,
	notificationRepo adapter.NotificationRepository,
	registry *valueobject.MaintenanceTypeRegistry,
	tracker *maintenance.EvaluateAlertsUseCase,
) *CreateEntryUseCase {
	return &CreateEntryUseCase{
		entryRepo:        entryRepo,
		vehicleRepo:      vehicleRepo,
		cashDeskRepo:     cashDeskRepo,
		notificationRepo: notificationRepo,
		registry:         registry,
		tracker:          tracker,
	}
}

// Execute performs the entry creation.
func (uc *CreateEntryUseCase) Execute(ctx context.Context, input CreateEntryInput) (*CreateEntryOutput, error) {
	if err := uc.validate(input); err != nil {
		return nil, err
	}

	// Vehicle and cash-desk references are resolved before any write so a
	// validation failure leaves no partial state.
	var vehicle *entity.Vehicle
	if input.VehicleID != nil {
		v, err := uc.vehicleRepo.FindByID(ctx, *input.VehicleID)
		if err != nil {
			return nil, domainerror.NewEntryError(
				domainerror.ErrCodeEntryVehicleNotFound,
				"vehicle not found",
				domainerror.ErrEntryVehicleNotFound,
			)
		}
		vehicle = v
	}

	if input.CashDeskID != nil {
		if _, err := uc.cashDeskRepo.FindByID(ctx, *input.CashDeskID); err != nil {
			return nil, domainerror.NewEntryError(
				domainerror.ErrCodeEntryCashDeskNotFound,
				"cash desk not found",
				domainerror.ErrEntryCashDeskNotFound,
			)
		}
	}

	// Admin-authored entries bypass review.
	status := entity.EntryStatusPending
	if input.AuthorRole == entity.UserRoleAdmin {
		status = entity.EntryStatusApproved
	}

	fe := entity.NewFinancialEntry(
		input.Type,
		status,
		input.Amount,
		input.Date,
		input.Description,
		input.AuthorName,
		input.AuthorID,
	)
	fe.VehicleID = input.VehicleID
	fe.CashDeskID = input.CashDeskID
	fe.MaintenanceType = input.MaintenanceType
	fe.MileageAtEntry = input.MileageAtEntry
	fe.ReceiptPhoto = input.ReceiptPhoto

	if err := uc.entryRepo.Create(ctx, fe); err != nil {
		return nil, fmt.Errorf("failed to create entry: %w", err)
	}

	if fe.CashDeskID != nil {
		delta := cashdesk.EntryDelta(fe.Type, fe.Amount)
		if err := uc.cashDeskRepo.AdjustBalance(ctx, *fe.CashDeskID, delta); err != nil {
			return nil, fmt.Errorf("failed to adjust cash desk balance: %w", err)
		}
	}

	if vehicle != nil && input.MileageAtEntry != nil && *input.MileageAtEntry > vehicle.LastMileage {
		vehicle.LastMileage = *input.MileageAtEntry
		vehicle.UpdatedAt = time.Now().UTC()
		if err := uc.vehicleRepo.Update(ctx, vehicle); err != nil {
			return nil, fmt.Errorf("failed to update vehicle odometer: %w", err)
		}

		// The tracker pass is best-effort: a failed alert evaluation must
		// not fail the entry that raised the odometer.
		if uc.tracker != nil {
			if _, err := uc.tracker.Execute(ctx); err != nil {
				slog.Warn("Alert evaluation after odometer update failed", "error", err)
			}
		}
	}

	// Admin maintenance entries are born approved and never pass through
	// the approval flow, so the schedule advance happens here.
	if fe.Status == entity.EntryStatusApproved && fe.Type == entity.EntryTypeExpenseMaintenance && fe.VehicleID != nil {
		if err := advanceMaintenance(ctx, uc.vehicleRepo, uc.notificationRepo, fe); err != nil {
			return nil, err
		}
	}

	return &CreateEntryOutput{Entry: fe}, nil
}

// validate checks the input before any state mutation.
func (uc *CreateEntryUseCase) validate(input CreateEntryInput) error {
	switch input.Type {
	case entity.EntryTypeRevenue, entity.EntryTypeExpenseSimple, entity.EntryTypeExpenseMaintenance, entity.EntryTypeFunding:
	default:
		return domainerror.NewEntryError(
			domainerror.ErrCodeInvalidEntryType,
			"entry type must be REVENUE, EXPENSE_SIMPLE, EXPENSE_MAINTENANCE or FUNDING",
			domainerror.ErrInvalidEntryType,
		)
	}

	if !input.Amount.IsPositive() {
		return domainerror.NewEntryError(
			domainerror.ErrCodeInvalidEntryAmount,
			"entry amount must be positive",
			domainerror.ErrInvalidEntryAmount,
		)
	}

	if len(input.Description) > MaxDescriptionLength {
		return domainerror.NewEntryError(
			domainerror.ErrCodeMissingEntryFields,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			nil,
		)
	}

	if input.Type == entity.EntryTypeExpenseMaintenance {
		if input.MaintenanceType == "" {
			return domainerror.NewEntryError(
				domainerror.ErrCodeMissingMaintenanceType,
				"maintenance type is required for maintenance entries",
				domainerror.ErrMissingMaintenanceType,
			)
		}
		if uc.registry != nil && !uc.registry.Known(input.MaintenanceType) {
			return domainerror.NewEntryError(
				domainerror.ErrCodeUnknownMaintenanceType,
				"unknown maintenance type "+input.MaintenanceType,
				domainerror.ErrUnknownMaintenanceType,
			)
		}
	}

	return nil
}
