// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntryType represents the kind of financial entry.
type EntryType string

const (
	EntryTypeRevenue            EntryType = "REVENUE"
	EntryTypeExpenseSimple      EntryType = "EXPENSE_SIMPLE"
	EntryTypeExpenseMaintenance EntryType = "EXPENSE_MAINTENANCE"
	EntryTypeFunding            EntryType = "FUNDING"
)

// EntryStatus represents the approval state of a financial entry.
type EntryStatus string

const (
	EntryStatusPending  EntryStatus = "PENDING"
	EntryStatusApproved EntryStatus = "APPROVED"
	EntryStatusRejected EntryStatus = "REJECTED"
)

// FinancialEntry is a single ledger line: revenue, simple expense,
// maintenance expense or cash-desk funding. Entries are the atomic unit of
// the approval workflow and the financial aggregation.
type FinancialEntry struct {
	ID              uuid.UUID
	Type            EntryType
	Status          EntryStatus
	Amount          decimal.Decimal
	Date            time.Time
	Description     string
	AgentName       string
	VehicleID       *uuid.UUID
	CashDeskID      *uuid.UUID
	MaintenanceType string // Set for EXPENSE_MAINTENANCE entries
	MileageAtEntry  *int
	ReceiptPhoto    string // Opaque Base64 payload
	CreatedBy       uuid.UUID
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewFinancialEntry creates a new FinancialEntry entity. Status is decided
// by the creating use case: admin-authored entries start APPROVED,
// agent-authored entries start PENDING.
func NewFinancialEntry(
	entryType EntryType,
	status EntryStatus,
	amount decimal.Decimal,
	date time.Time,
	description string,
	agentName string,
	createdBy uuid.UUID,
) *FinancialEntry {
	now := time.Now().UTC()

	return &FinancialEntry{
		ID:          uuid.New(),
		Type:        entryType,
		Status:      status,
		Amount:      amount,
		Date:        date,
		Description: description,
		AgentName:   agentName,
		CreatedBy:   createdBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// IsExpense reports whether the entry counts as a vehicle expense in the
// aggregation. FUNDING moves cash but is neither revenue nor expense.
func (e *FinancialEntry) IsExpense() bool {
	return e.Type == EntryTypeExpenseSimple || e.Type == EntryTypeExpenseMaintenance
}

// CreditsDesk reports whether the entry credits its cash desk; all other
// types debit it.
func (e *FinancialEntry) CreditsDesk() bool {
	return e.Type == EntryTypeRevenue || e.Type == EntryTypeFunding
}
