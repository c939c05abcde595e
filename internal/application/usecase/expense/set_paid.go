package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-planner/backend/internal/application/adapter"
	"github.com/expense-planner/backend/internal/domain/entity"
	domainerror "github.com/expense-planner/backend/internal/domain/error"
)

// SetPaidInput represents the input for marking an expense paid or unpaid.
type SetPaidInput struct {
	ExpenseID uuid.UUID
	IsPaid    bool
}

// SetPaidOutput represents the output of the paid flag change.
type SetPaidOutput struct {
	Expense *entity.Expense
}

// SetPaidUseCase handles the paid flag change.
type SetPaidUseCase struct {
	store adapter.StateStore
}

// NewSetPaidUseCase creates a new SetPaidUseCase instance.
func NewSetPaidUseCase(store adapter.StateStore) *SetPaidUseCase {
	return &SetPaidUseCase{
		store: store,
	}
}

// Execute flips the paid flag by replacing the stored expense.
func (uc *SetPaidUseCase) Execute(ctx context.Context, input SetPaidInput) (*SetPaidOutput, error) {
	state, err := loadState(ctx, uc.store)
	if err != nil {
		return nil, err
	}

	existing := state.ExpenseByID(input.ExpenseID)
	if existing == nil {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseNotFound,
			"expense not found",
			domainerror.ErrExpenseNotFound,
		)
	}

	updated := *existing
	updated.IsPaid = input.IsPaid
	state.ReplaceExpense(&updated)

	if err := uc.store.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to save state: %w", err)
	}

	return &SetPaidOutput{
		Expense: &updated,
	}, nil
}
