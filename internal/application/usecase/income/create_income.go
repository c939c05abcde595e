package income

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/expense-planner/backend/internal/application/adapter"
	"github.com/expense-planner/backend/internal/domain/calendar"
	"github.com/expense-planner/backend/internal/domain/entity"
	domainerror "github.com/expense-planner/backend/internal/domain/error"
)

// CreateIncomeInput represents the input for income creation.
type CreateIncomeInput struct {
	Description string
	Amount      decimal.Decimal
	Date        calendar.Date
}

// CreateIncomeOutput represents the output of income creation.
type CreateIncomeOutput struct {
	Income *entity.Income
}

// CreateIncomeUseCase handles income creation logic.
type CreateIncomeUseCase struct {
	store adapter.StateStore
}

// NewCreateIncomeUseCase creates a new CreateIncomeUseCase instance.
func NewCreateIncomeUseCase(store adapter.StateStore) *CreateIncomeUseCase {
	return &CreateIncomeUseCase{
		store: store,
	}
}

// Execute performs the income creation.
func (uc *CreateIncomeUseCase) Execute(ctx context.Context, input CreateIncomeInput) (*CreateIncomeOutput, error) {
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

	income := entity.NewIncome(input.Description, input.Amount, input.Date)
	state.Incomes = append(state.Incomes, income)

	if err := uc.store.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to save state: %w", err)
	}

	return &CreateIncomeOutput{
		Income: income,
	}, nil
}
