package creditcard

import (
	"context"
	"fmt"

	"github.com/expense-planner/backend/internal/application/adapter"
	"github.com/expense-planner/backend/internal/domain/calendar"
	"github.com/expense-planner/backend/internal/domain/entity"
)

// CreateCreditCardInput represents the input for credit card creation.
type CreateCreditCardInput struct {
	Description  string
	ClosingDay   int
	DueDay       int
	GoodThruDate calendar.Date
}

// CreateCreditCardOutput represents the output of credit card creation.
type CreateCreditCardOutput struct {
	CreditCard *entity.CreditCard
}

// CreateCreditCardUseCase handles credit card creation logic.
type CreateCreditCardUseCase struct {
	store adapter.StateStore
}

// NewCreateCreditCardUseCase creates a new CreateCreditCardUseCase instance.
func NewCreateCreditCardUseCase(store adapter.StateStore) *CreateCreditCardUseCase {
	return &CreateCreditCardUseCase{
		store: store,
	}
}

// Execute performs the credit card creation.
func (uc *CreateCreditCardUseCase) Execute(ctx context.Context, input CreateCreditCardInput) (*CreateCreditCardOutput, error) {
	if err := validateCycleDays(input.ClosingDay, input.DueDay); err != nil {
		return nil, err
	}

	state, err := loadState(ctx, uc.store)
	if err != nil {
		return nil, err
	}

	card := entity.NewCreditCard(input.Description, input.ClosingDay, input.DueDay, input.GoodThruDate)
	state.CreditCards = append(state.CreditCards, card)

	if err := uc.store.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to save state: %w", err)
	}

	return &CreateCreditCardOutput{
		CreditCard: card,
	}, nil
}
