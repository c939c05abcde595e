package creditcard

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-planner/backend/internal/application/adapter"
	domainerror "github.com/expense-planner/backend/internal/domain/error"
)

// DeleteCreditCardInput represents the input for credit card deletion.
type DeleteCreditCardInput struct {
	CreditCardID uuid.UUID
}

// DeleteCreditCardOutput represents the output of credit card deletion.
type DeleteCreditCardOutput struct {
	Success bool
}

// DeleteCreditCardUseCase handles credit card deletion logic.
type DeleteCreditCardUseCase struct {
	store adapter.StateStore
}

// NewDeleteCreditCardUseCase creates a new DeleteCreditCardUseCase instance.
func NewDeleteCreditCardUseCase(store adapter.StateStore) *DeleteCreditCardUseCase {
	return &DeleteCreditCardUseCase{
		store: store,
	}
}

// Execute removes the credit card unless an expense still references it.
func (uc *DeleteCreditCardUseCase) Execute(ctx context.Context, input DeleteCreditCardInput) (*DeleteCreditCardOutput, error) {
	state, err := loadState(ctx, uc.store)
	if err != nil {
		return nil, err
	}

	if state.CreditCardByID(input.CreditCardID) == nil {
		return nil, domainerror.NewCreditCardError(
			domainerror.ErrCodeCreditCardNotFound,
			"credit card not found",
			domainerror.ErrCreditCardNotFound,
		)
	}
	if state.CreditCardInUse(input.CreditCardID) {
		return nil, domainerror.NewCreditCardError(
			domainerror.ErrCodeCreditCardInUse,
			"credit card is referenced by existing expenses",
			domainerror.ErrCreditCardInUse,
		)
	}

	state.RemoveCreditCard(input.CreditCardID)

	if err := uc.store.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to save state: %w", err)
	}

	return &DeleteCreditCardOutput{
		Success: true,
	}, nil
}
