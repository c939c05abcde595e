package reserve

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-planner/backend/internal/application/adapter"
	"github.com/expense-planner/backend/internal/domain/calendar"
	"github.com/expense-planner/backend/internal/domain/entity"
	domainerror "github.com/expense-planner/backend/internal/domain/error"
)

// UpdateReserveInput represents the input for reserve update.
type UpdateReserveInput struct {
	ReserveID    uuid.UUID
	Name         string
	Amount       decimal.Decimal
	CreationDate calendar.Date
	InterestRate *decimal.Decimal
}

// UpdateReserveOutput represents the output of reserve update.
type UpdateReserveOutput struct {
	Reserve *entity.Reserve
}

// UpdateReserveUseCase handles reserve update logic.
type UpdateReserveUseCase struct {
	store adapter.StateStore
}

// NewUpdateReserveUseCase creates a new UpdateReserveUseCase instance.
func NewUpdateReserveUseCase(store adapter.StateStore) *UpdateReserveUseCase {
	return &UpdateReserveUseCase{
		store: store,
	}
}

// Execute replaces the reserve's fields. The dissolution date, if any, is
// kept; moving the creation date past it is rejected.
func (uc *UpdateReserveUseCase) Execute(ctx context.Context, input UpdateReserveInput) (*UpdateReserveOutput, error) {
	if input.Amount.IsNegative() {
		return nil, domainerror.NewReserveError(
			domainerror.ErrCodeInvalidReserveAmount,
			"amount must not be negative",
			domainerror.ErrInvalidReserveAmount,
		)
	}

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
	if existing.DissolutionDate != nil && existing.DissolutionDate.Before(input.CreationDate) {
		return nil, domainerror.NewReserveError(
			domainerror.ErrCodeInvalidDissolutionDate,
			"creation date must not follow the dissolution date",
			domainerror.ErrInvalidDissolutionDate,
		)
	}

	updated := *existing
	updated.Name = input.Name
	updated.Amount = input.Amount
	updated.CreationDate = input.CreationDate
	updated.InterestRate = input.InterestRate
	state.ReplaceReserve(&updated)

	if err := uc.store.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to save state: %w", err)
	}

	return &UpdateReserveOutput{
		Reserve: &updated,
	}, nil
}
