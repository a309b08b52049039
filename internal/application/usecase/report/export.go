// Package report contains financial reporting use cases.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/fleet-manager/backend/internal/application/adapter"
	"github.com/fleet-manager/backend/internal/domain/entity"
)

// ExportDocument is the single JSON document produced by a manual export.
type ExportDocument struct {
	Vehicles       []*entity.Vehicle        `json:"vehicles"`
	Entries        []*entity.FinancialEntry `json:"entries"`
	GlobalExpenses []*entity.GlobalExpense  `json:"globalExpenses"`
	Users          []*entity.User           `json:"users"`
	Notifications  []*entity.Notification   `json:"notifications"`
	CashDesks      []*entity.CashDesk       `json:"cashDesks"`
	ExportDate     time.Time                `json:"exportDate"`
}

// ExportDataOutput represents the output of the export.
type ExportDataOutput struct {
	Document *ExportDocument
}

// ExportDataUseCase assembles the full-state export document.
type ExportDataUseCase struct {
	vehicleRepo      adapter.VehicleRepository
	entryRepo        adapter.EntryRepository
	expenseRepo      adapter.GlobalExpenseRepository
	userRepo         adapter.UserRepository
	notificationRepo adapter.NotificationRepository
	cashDeskRepo     adapter.CashDeskRepository
}

// NewExportDataUseCase creates a new ExportDataUseCase instance.
func NewExportDataUseCase(
	vehicleRepo adapter.VehicleRepository,
	entryRepo adapter.EntryRepository,
	expenseRepo adapter.GlobalExpenseRepository,
	userRepo adapter.UserRepository,
	notificationRepo adapter.NotificationRepository,
	cashDeskRepo adapter.CashDeskRepository,
) *ExportDataUseCase {
	return &ExportDataUseCase{
		vehicleRepo:      vehicleRepo,
		entryRepo:        entryRepo,
		expenseRepo:      expenseRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		cashDeskRepo:     cashDeskRepo,
	}
}

// Execute assembles the export document.
func (uc *ExportDataUseCase) Execute(ctx context.Context) (*ExportDataOutput, error) {
	vehicles, err := uc.vehicleRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to export vehicles: %w", err)
	}

	entries, err := uc.entryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to export entries: %w", err)
	}

	expenses, err := uc.expenseRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to export global expenses: %w", err)
	}

	users, err := uc.userRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to export users: %w", err)
	}

	// Password hashes never leave the system.
	for _, u := range users {
		u.PasswordHash = ""
	}

	notifications, err := uc.notificationRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to export notifications: %w", err)
	}

	desks, err := uc.cashDeskRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to export cash desks: %w", err)
	}

	return &ExportDataOutput{
		Document: &ExportDocument{
			Vehicles:       vehicles,
			Entries:        entries,
			GlobalExpenses: expenses,
			Users:          users,
			Notifications:  notifications,
			CashDesks:      desks,
			ExportDate:     time.Now().UTC(),
		},
	}, nil
}
