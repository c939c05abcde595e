package creditcard

import (
	"context"

	"github.com/google/uuid"

	"github.com/expense-planner/backend/internal/application/adapter"
	"github.com/expense-planner/backend/internal/domain/billing"
	"github.com/expense-planner/backend/internal/domain/calendar"
	domainerror "github.com/expense-planner/backend/internal/domain/error"
)

// GetCyclesInput represents the input for querying a card's cycle boundaries.
// A zero ReferenceDate anchors the calculation on today.
type GetCyclesInput struct {
	CreditCardID  uuid.UUID
	ReferenceDate calendar.Date
}

// GetCyclesOutput represents the cycle boundaries surrounding the reference date.
type GetCyclesOutput struct {
	Boundaries billing.CycleBoundaries
}

// GetCyclesUseCase exposes billing-cycle boundary calculation for a card.
type GetCyclesUseCase struct {
	store adapter.StateStore
	clock adapter.Clock
}

// NewGetCyclesUseCase creates a new GetCyclesUseCase instance.
func NewGetCyclesUseCase(store adapter.StateStore, clock adapter.Clock) *GetCyclesUseCase {
	return &GetCyclesUseCase{
		store: store,
		clock: clock,
	}
}

// Execute computes the cycle boundaries for the card around the reference date.
func (uc *GetCyclesUseCase) Execute(ctx context.Context, input GetCyclesInput) (*GetCyclesOutput, error) {
	state, err := loadState(ctx, uc.store)
	if err != nil {
		return nil, err
	}

	card := state.CreditCardByID(input.CreditCardID)
	if card == nil {
		return nil, domainerror.NewCreditCardError(
			domainerror.ErrCodeCreditCardNotFound,
			"credit card not found",
			domainerror.ErrCreditCardNotFound,
		)
	}

	reference := input.ReferenceDate
	if reference.IsZero() {
		reference = uc.clock.Today()
	}

	return &GetCyclesOutput{
		Boundaries: billing.Boundaries(card.ClosingDay, card.DueDay, reference),
	}, nil
}
