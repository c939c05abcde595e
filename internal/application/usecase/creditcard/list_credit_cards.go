package creditcard

import (
	"context"
	"sort"

	"github.com/expense-planner/backend/internal/application/adapter"
	"github.com/expense-planner/backend/internal/domain/entity"
)

// ListCreditCardsInput represents the input for listing credit cards.
type ListCreditCardsInput struct {
	IncludePaused bool
}

// ListCreditCardsOutput represents the output of listing credit cards.
type ListCreditCardsOutput struct {
	CreditCards []*entity.CreditCard
}

// ListCreditCardsUseCase handles credit card listing logic.
type ListCreditCardsUseCase struct {
	store adapter.StateStore
}

// NewListCreditCardsUseCase creates a new ListCreditCardsUseCase instance.
func NewListCreditCardsUseCase(store adapter.StateStore) *ListCreditCardsUseCase {
	return &ListCreditCardsUseCase{
		store: store,
	}
}

// Execute lists credit cards ordered by description.
func (uc *ListCreditCardsUseCase) Execute(ctx context.Context, input ListCreditCardsInput) (*ListCreditCardsOutput, error) {
	state, err := loadState(ctx, uc.store)
	if err != nil {
		return nil, err
	}

	cards := make([]*entity.CreditCard, 0, len(state.CreditCards))
	for _, card := range state.CreditCards {
		if card.IsPaused && !input.IncludePaused {
			continue
		}
		cards = append(cards, card)
	}

	sort.SliceStable(cards, func(i, j int) bool {
		return cards[i].Description < cards[j].Description
	})

	return &ListCreditCardsOutput{
		CreditCards: cards,
	}, nil
}
