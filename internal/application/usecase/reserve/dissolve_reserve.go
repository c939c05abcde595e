package reserve

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-planner/backend/internal/application/adapter"
	"github.com/expense-planner/backend/internal/domain/calendar"
	"github.com/expense-planner/backend/internal/domain/entity"
	domainerror "github.com/expense-planner/backend/internal/domain/error"
)

// DissolveReserveInput represents the input for dissolving a reserve.
type DissolveReserveInput struct {
	ReserveID       uuid.UUID
	DissolutionDate calendar.Date
}

// DissolveReserveOutput represents the output of dissolving a reserve.
type DissolveReserveOutput struct {
	Reserve *entity.Reserve
}

// DissolveReserveUseCase handles reserve dissolution logic.
type DissolveReserveUseCase struct {
	store adapter.StateStore
}

// NewDissolveReserveUseCase creates a new DissolveReserveUseCase instance.
func NewDissolveReserveUseCase(store adapter.StateStore) *DissolveReserveUseCase {
	return &DissolveReserveUseCase{
		store: store,
	}
}

// Execute sets the reserve's dissolution date, ending its holding period.
func (uc *DissolveReserveUseCase) Execute(ctx context.Context, input DissolveReserveInput) (*DissolveReserveOutput, error) {
	state, err := loadState(ctx, uc.store)
	if err != nil {
		return nil, err
	}

	existing := state.ReserveByID(input.ReserveID)
	if existing == nil {
		return nil, domainerror.NewReserveError(
			domainerror.ErrCodeReserveNotFound,
			"reserve not found",
			domainerror.ErrReserveNotFound,
		)
	}
	if input.DissolutionDate.Before(existing.CreationDate) {
		return nil, domainerror.NewReserveError(
			domainerror.ErrCodeInvalidDissolutionDate,
			"dissolution date must not precede creation date",
			domainerror.ErrInvalidDissolutionDate,
		)
	}

	updated := *existing
	dissolution := input.DissolutionDate
	updated.DissolutionDate = &dissolution
	state.ReplaceReserve(&updated)

	if err := uc.store.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to save state: %w", err)
	}

	return &DissolveReserveOutput{
		Reserve: &updated,
	}, nil
}
