package expense

import (
	"context"
	"sort"

	"github.com/expense-planner/backend/internal/application/adapter"
	"github.com/expense-planner/backend/internal/domain/calendar"
	"github.com/expense-planner/backend/internal/domain/entity"
)

// ListExpensesInput represents the input for listing expenses.
type ListExpensesInput struct {
	// Month scopes the listing to a calendar month when set. An expense
	// belongs to the month of its execution date when present, else of its
	// purchase date.
	Month *calendar.Date
}

// ListExpensesOutput represents the output of listing expenses.
type ListExpensesOutput struct {
	Expenses []*entity.Expense
}

// ListExpensesUseCase handles expense listing logic.
type ListExpensesUseCase struct {
	store adapter.StateStore
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(store adapter.StateStore) *ListExpensesUseCase {
	return &ListExpensesUseCase{
		store: store,
	}
}

// Execute lists expenses, optionally scoped to a month, ordered by their
// relevant date.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	state, err := loadState(ctx, uc.store)
	if err != nil {
		return nil, err
	}

	expenses := make([]*entity.Expense, 0, len(state.Expenses))
	for _, expense := range state.Expenses {
		if input.Month != nil && !expense.RelevantDate().SameMonth(*input.Month) {
			continue
		}
		expenses = append(expenses, expense)
	}

	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[i].RelevantDate().Before(expenses[j].RelevantDate())
	})

	return &ListExpensesOutput{
		Expenses: expenses,
	}, nil
}
