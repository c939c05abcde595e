package income

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

// UpdateIncomeInput represents the input for income update. Updates are full
// replacements keyed on id.
type UpdateIncomeInput struct {
	IncomeID    uuid.UUID
	Description string
	Amount      decimal.Decimal
	Date        calendar.Date
	IsPaused    bool
}

// UpdateIncomeOutput represents the output of income update.
type UpdateIncomeOutput struct {
	Income *entity.Income
}

// UpdateIncomeUseCase handles income update logic.
type UpdateIncomeUseCase struct {
	store adapter.StateStore
}

// NewUpdateIncomeUseCase creates a new UpdateIncomeUseCase instance.
func NewUpdateIncomeUseCase(store adapter.StateStore) *UpdateIncomeUseCase {
	return &UpdateIncomeUseCase{
		store: store,
	}
}

// Execute replaces the stored income.
func (uc *UpdateIncomeUseCase) Execute(ctx context.Context, input UpdateIncomeInput) (*UpdateIncomeOutput, error) {
	if input.Amount.IsNegative() {
		return nil, domainerror.NewIncomeError(
			domainerror.ErrCodeInvalidIncomeAmount,
			"amount must not be negative",
			domainerror.ErrInvalidIncomeAmount,
		)
	}

	state, err := loadState(ctx, uc.store)
	if err != nil {
		return nil, err
	}

	if state.IncomeByID(input.IncomeID) == nil {
		return nil, domainerror.NewIncomeError(
			domainerror.ErrCodeIncomeNotFound,
			"income not found",
			domainerror.ErrIncomeNotFound,
		)
	}

	updated := &entity.Income{
		ID:          input.IncomeID,
		Description: input.Description,
		Amount:      input.Amount,
		Date:        input.Date,
		IsPaused:    input.IsPaused,
	}
	state.ReplaceIncome(updated)

	if err := uc.store.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to save state: %w", err)
	}

	return &UpdateIncomeOutput{
		Income: updated,
	}, nil
}
