package reserve

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-planner/backend/internal/application/adapter"
	domainerror "github.com/expense-planner/backend/internal/domain/error"
)

// DeleteReserveInput represents the input for reserve deletion.
type DeleteReserveInput struct {
	ReserveID uuid.UUID
}

// DeleteReserveOutput represents the output of reserve deletion.
type DeleteReserveOutput struct {
	Success bool
}

// DeleteReserveUseCase handles reserve deletion logic.
type DeleteReserveUseCase struct {
	store adapter.StateStore
}

// NewDeleteReserveUseCase creates a new DeleteReserveUseCase instance.
func NewDeleteReserveUseCase(store adapter.StateStore) *DeleteReserveUseCase {
	return &DeleteReserveUseCase{
		store: store,
	}
}

// Execute removes the reserve.
func (uc *DeleteReserveUseCase) Execute(ctx context.Context, input DeleteReserveInput) (*DeleteReserveOutput, error) {
	state, err := loadState(ctx, uc.store)
	if err != nil {
		return nil, err
	}

	if !state.RemoveReserve(input.ReserveID) {
		return nil, domainerror.NewReserveError(
			domainerror.ErrCodeReserveNotFound,
			"reserve not found",
			domainerror.ErrReserveNotFound,
		)
	}

	if err := uc.store.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to save state: %w", err)
	}

	return &DeleteReserveOutput{
		Success: true,
	}, nil
}
