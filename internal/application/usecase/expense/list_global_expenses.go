// Package expense contains global (agency-wide) expense use cases.
package expense

import (
	"context"
	"fmt"

	"github.com/fleet-manager/backend/internal/application/adapter"
	"github.com/fleet-manager/backend/internal/domain/entity"
)

// ListGlobalExpensesOutput represents the output of listing global expenses.
type ListGlobalExpensesOutput struct {
	Expenses []*entity.GlobalExpense
}

// ListGlobalExpensesUseCase lists all global expenses.
type ListGlobalExpensesUseCase struct {
	expenseRepo adapter.GlobalExpenseRepository
}

// NewListGlobalExpensesUseCase creates a new ListGlobalExpensesUseCase instance.
func NewListGlobalExpensesUseCase(expenseRepo adapter.GlobalExpenseRepository) *ListGlobalExpensesUseCase {
	return &ListGlobalExpensesUseCase{expenseRepo: expenseRepo}
}

// Execute lists the expenses.
func (uc *ListGlobalExpensesUseCase) Execute(ctx context.Context) (*ListGlobalExpensesOutput, error) {
	expenses, err := uc.expenseRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list global expenses: %w", err)
	}

	return &ListGlobalExpensesOutput{Expenses: expenses}, nil
}
