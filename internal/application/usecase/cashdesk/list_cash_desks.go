// Package cashdesk contains cash-desk related use cases.
package cashdesk

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fleet-manager/backend/internal/application/adapter"
	"github.com/fleet-manager/backend/internal/domain/entity"
)

// ListCashDesksOutput represents the output of listing cash desks.
type ListCashDesksOutput struct {
	Desks []*DeskWithOwner
	Total decimal.Decimal
}

// DeskWithOwner pairs a desk with its owner's display name.
type DeskWithOwner struct {
	Desk      *entity.CashDesk
	OwnerName string
}

// ListCashDesksUseCase lists all cash desks with their owners and the
// cash-on-hand total.
type ListCashDesksUseCase struct {
	cashDeskRepo adapter.CashDeskRepository
	userRepo     adapter.UserRepository
}

// NewListCashDesksUseCase creates a new ListCashDesksUseCase instance.
func NewListCashDesksUseCase(cashDeskRepo adapter.CashDeskRepository, userRepo adapter.UserRepository) *ListCashDesksUseCase {
	return &ListCashDesksUseCase{
		cashDeskRepo: cashDeskRepo,
		userRepo:     userRepo,
	}
}

// Execute lists the cash desks.
func (uc *ListCashDesksUseCase) Execute(ctx context.Context) (*ListCashDesksOutput, error) {
	desks, err := uc.cashDeskRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cash desks: %w", err)
	}

	users, err := uc.userRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID.String()] = u.Name
	}

	output := &ListCashDesksOutput{Total: decimal.Zero}
	for _, d := range desks {
		output.Desks = append(output.Desks, &DeskWithOwner{
			Desk:      d,
			OwnerName: names[d.UserID.String()],
		})
		output.Total = output.Total.Add(d.Balance)
	}

	return output, nil
}
