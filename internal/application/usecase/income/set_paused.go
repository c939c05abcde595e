package income

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-planner/backend/internal/application/adapter"
	"github.com/expense-planner/backend/internal/domain/entity"
	domainerror "github.com/expense-planner/backend/internal/domain/error"
)

// SetPausedInput represents the input for pausing or resuming an income.
type SetPausedInput struct {
	IncomeID uuid.UUID
	IsPaused bool
}

// SetPausedOutput represents the output of the pause flag change.
type SetPausedOutput struct {
	Income *entity.Income
}

// SetPausedUseCase handles pausing and resuming incomes. A paused income is
// excluded from totals and from month rollover but retained for history.
type SetPausedUseCase struct {
	store adapter.StateStore
}

// NewSetPausedUseCase creates a new SetPausedUseCase instance.
func NewSetPausedUseCase(store adapter.StateStore) *SetPausedUseCase {
	return &SetPausedUseCase{
		store: store,
	}
}

// Execute flips the paused flag by replacing the stored income.
func (uc *SetPausedUseCase) Execute(ctx context.Context, input SetPausedInput) (*SetPausedOutput, error) {
	state, err := loadState(ctx, uc.store)
	if err != nil {
		return nil, err
	}

	existing := state.IncomeByID(input.IncomeID)
	if existing == nil {
		return nil, domainerror.NewIncomeError(
			domainerror.ErrCodeIncomeNotFound,
			"income not found",
			domainerror.ErrIncomeNotFound,
		)
	}

	updated := *existing
	updated.IsPaused = input.IsPaused
	state.ReplaceIncome(&updated)

	if err := uc.store.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to save state: %w", err)
	}

	return &SetPausedOutput{
		Income: &updated,
	}, nil
}
