package reserve

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/expense-planner/backend/internal/application/adapter"
	"github.com/expense-planner/backend/internal/domain/calendar"
	"github.com/expense-planner/backend/internal/domain/entity"
)

// ListReservesInput represents the input for listing reserves.
type ListReservesInput struct {
	AsOf       calendar.Date
	ActiveOnly bool
}

// ReserveWithValue pairs a reserve with its accrued value as of a date.
type ReserveWithValue struct {
	Reserve      *entity.Reserve
	AccruedValue decimal.Decimal
}

// ListReservesOutput represents the output of listing reserves.
type ListReservesOutput struct {
	Reserves []ReserveWithValue
	Total    decimal.Decimal
}

// ListReservesUseCase handles reserve listing logic.
type ListReservesUseCase struct {
	store adapter.StateStore
}

// NewListReservesUseCase creates a new ListReservesUseCase instance.
func NewListReservesUseCase(store adapter.StateStore) *ListReservesUseCase {
	return &ListReservesUseCase{
		store: store,
	}
}

// Execute lists reserves with simple-interest accrued values, ordered by
// creation date.
func (uc *ListReservesUseCase) Execute(ctx context.Context, input ListReservesInput) (*ListReservesOutput, error) {
	state, err := loadState(ctx, uc.store)
	if err != nil {
		return nil, err
	}

	reserves := make([]ReserveWithValue, 0, len(state.Reserves))
	total := decimal.Zero
	for _, reserve := range state.Reserves {
		if input.ActiveOnly && !reserve.IsActiveOn(input.AsOf) {
			continue
		}
		value := reserve.AccruedValue(input.AsOf)
		reserves = append(reserves, ReserveWithValue{
			Reserve:      reserve,
			AccruedValue: value,
		})
		if reserve.IsActiveOn(input.AsOf) {
			total = total.Add(value)
		}
	}

	sort.SliceStable(reserves, func(i, j int) bool {
		return reserves[i].Reserve.CreationDate.Before(reserves[j].Reserve.CreationDate)
	})

	return &ListReservesOutput{
		Reserves: reserves,
		Total:    total,
	}, nil
}
