package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-planner/backend/internal/application/adapter"
	domainerror "github.com/expense-planner/backend/internal/domain/error"
)

// DeleteExpenseInput represents the input for expense deletion.
type DeleteExpenseInput struct {
	ExpenseID uuid.UUID
}

// DeleteExpenseOutput represents the output of expense deletion.
type DeleteExpenseOutput struct {
	Success bool
}

// DeleteExpenseUseCase handles expense deletion logic.
type DeleteExpenseUseCase struct {
	store adapter.StateStore
}

// NewDeleteExpenseUseCase creates a new DeleteExpenseUseCase instance.
func NewDeleteExpenseUseCase(store adapter.StateStore) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{
		store: store,
	}
}

// Execute removes the expense. Removing any installment removes its whole
// series so the contiguous sibling numbering invariant survives.
func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, input DeleteExpenseInput) (*DeleteExpenseOutput, error) {
	state, err := loadState(ctx, uc.store)
	if err != nil {
		return nil, err
	}

	if !state.RemoveExpense(input.ExpenseID) {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseNotFound,
			"expense not found",
			domainerror.ErrExpenseNotFound,
		)
	}

	if err := uc.store.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to save state: %w", err)
	}

	return &DeleteExpenseOutput{
		Success: true,
	}, nil
}
