// Package creditcard contains credit card-related use cases.
package creditcard

import (
	"context"
	"fmt"

	"github.com/expense-planner/backend/internal/application/adapter"
	"github.com/expense-planner/backend/internal/domain/entity"
	domainerror "github.com/expense-planner/backend/internal/domain/error"
)

// loadState reads the persisted state, initializing an empty normalized
// state when nothing has been saved yet.
func loadState(ctx context.Context, store adapter.StateStore) (*entity.State, error) {
	state, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}
	if state == nil {
		return entity.NewState(), nil
	}
	state.Normalize()
	return state, nil
}

// validateCycleDays checks that both days are valid calendar cycle days.
func validateCycleDays(closingDay, dueDay int) error {
	if !entity.ValidCycleDay(closingDay) || !entity.ValidCycleDay(dueDay) {
		return domainerror.NewCreditCardError(
			domainerror.ErrCodeInvalidCycleDay,
			fmt.Sprintf("closing and due days must be between %d and %d", entity.MinCycleDay, entity.MaxCycleDay),
			domainerror.ErrInvalidCycleDay,
		)
	}
	return nil
}
