package income

import (
	"context"
	"sort"

	"github.com/expense-planner/backend/internal/application/adapter"
	"github.com/expense-planner/backend/internal/domain/calendar"
	"github.com/expense-planner/backend/internal/domain/entity"
)

// ListIncomesInput represents the input for listing incomes.
type ListIncomesInput struct {
	// Month scopes the listing to a calendar month when set.
	Month *calendar.Date
}

// ListIncomesOutput represents the output of listing incomes.
type ListIncomesOutput struct {
	Incomes []*entity.Income
}

// ListIncomesUseCase handles income listing logic.
type ListIncomesUseCase struct {
	store adapter.StateStore
}

// NewListIncomesUseCase creates a new ListIncomesUseCase instance.
func NewListIncomesUseCase(store adapter.StateStore) *ListIncomesUseCase {
	return &ListIncomesUseCase{
		store: store,
	}
}

// Execute lists incomes, optionally scoped to a month, ordered by date.
func (uc *ListIncomesUseCase) Execute(ctx context.Context, input ListIncomesInput) (*ListIncomesOutput, error) {
	state, err := loadState(ctx, uc.store)
	if err != nil {
		return nil, err
	}

	incomes := make([]*entity.Income, 0, len(state.Incomes))
	for _, income := range state.Incomes {
		if input.Month != nil && !income.Date.SameMonth(*input.Month) {
			continue
		}
		incomes = append(incomes, income)
	}

	sort.SliceStable(incomes, func(i, j int) bool {
		return incomes[i].Date.Before(incomes[j].Date)
	})

	return &ListIncomesOutput{
		Incomes: incomes,
	}, nil
}
