package creditcard

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-planner/backend/internal/application/adapter"
	"github.com/expense-planner/backend/internal/domain/calendar"
	"github.com/expense-planner/backend/internal/domain/entity"
	domainerror "github.com/expense-planner/backend/internal/domain/error"
)

// UpdateCreditCardInput represents the input for credit card update.
type UpdateCreditCardInput struct {
	CreditCardID uuid.UUID
	Description  string
	ClosingDay   int
	DueDay       int
	GoodThruDate calendar.Date
	IsPaused     bool
}

// UpdateCreditCardOutput represents the output of credit card update.
type UpdateCreditCardOutput struct {
	CreditCard *entity.CreditCard
}

// UpdateCreditCardUseCase handles credit card update logic.
type UpdateCreditCardUseCase struct {
	store adapter.StateStore
}

// NewUpdateCreditCardUseCase creates a new UpdateCreditCardUseCase instance.
func NewUpdateCreditCardUseCase(store adapter.StateStore) *UpdateCreditCardUseCase {
	return &UpdateCreditCardUseCase{
		store: store,
	}
}

// Execute replaces the stored credit card. Existing expenses keep their
// already-resolved execution dates; only future resolutions see the new
// cycle configuration.
func (uc *UpdateCreditCardUseCase) Execute(ctx context.Context, input UpdateCreditCardInput) (*UpdateCreditCardOutput, error) {
	if err := validateCycleDays(input.ClosingDay, input.DueDay); err != nil {
		return nil, err
	}

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

	updated := &entity.CreditCard{
		ID:           input.CreditCardID,
		Description:  input.Description,
		ClosingDay:   input.ClosingDay,
		DueDay:       input.DueDay,
		GoodThruDate: input.GoodThruDate,
		IsPaused:     input.IsPaused,
	}
	state.ReplaceCreditCard(updated)

	if err := uc.store.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to save state: %w", err)
	}

	return &UpdateCreditCardOutput{
		CreditCard: updated,
	}, nil
}
