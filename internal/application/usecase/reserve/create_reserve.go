package reserve

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/expense-planner/backend/internal/application/adapter"
	"github.com/expense-planner/backend/internal/domain/calendar"
	"github.com/expense-planner/backend/internal/domain/entity"
	domainerror "github.com/expense-planner/backend/internal/domain/error"
)

// CreateReserveInput represents the input for reserve creation.
type CreateReserveInput struct {
	Name         string
	Amount       decimal.Decimal
	CreationDate calendar.Date
	InterestRate *decimal.Decimal
}

// CreateReserveOutput represents the output of reserve creation.
type CreateReserveOutput struct {
	Reserve *entity.Reserve
}

// CreateReserveUseCase handles reserve creation logic.
type CreateReserveUseCase struct {
	store adapter.StateStore
}

// NewCreateReserveUseCase creates a new CreateReserveUseCase instance.
func NewCreateReserveUseCase(store adapter.StateStore) *CreateReserveUseCase {
	return &CreateReserveUseCase{
		store: store,
	}
}

// Execute performs the reserve creation.
func (uc *CreateReserveUseCase) Execute(ctx context.Context, input CreateReserveInput) (*CreateReserveOutput, error) {
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

	reserve := entity.NewReserve(input.Name, input.Amount, input.CreationDate, input.InterestRate)
	state.Reserves = append(state.Reserves, reserve)

	if err := uc.store.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to save state: %w", err)
	}

	return &CreateReserveOutput{
		Reserve: reserve,
	}, nil
}
