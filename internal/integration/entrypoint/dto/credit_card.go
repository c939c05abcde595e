package dto

import (
	"github.com/expense-planner/backend/internal/domain/billing"
	"github.com/expense-planner/backend/internal/domain/calendar"
	"github.com/expense-planner/backend/internal/domain/entity"
)

// CreateCreditCardRequest represents the request body for card creation.
// Closing and due days are days-of-month in [1, 30].
type CreateCreditCardRequest struct {
	Description  string        `json:"description" binding:"required,min=1,max=50"`
	ClosingDay   int           `json:"closing_day" binding:"required,min=1,max=30"`
	DueDay       int           `json:"due_day" binding:"required,min=1,max=30"`
	GoodThruDate calendar.Date `json:"good_thru_date" binding:"required"`
}

// UpdateCreditCardRequest represents the request body for card update.
type UpdateCreditCardRequest struct {
	Description  string        `json:"description" binding:"required,min=1,max=50"`
	ClosingDay   int           `json:"closing_day" binding:"required,min=1,max=30"`
	DueDay       int           `json:"due_day" binding:"required,min=1,max=30"`
	GoodThruDate calendar.Date `json:"good_thru_date" binding:"required"`
	IsPaused     bool          `json:"is_paused,omitempty"`
}

// CreditCardResponse represents a single credit card in API responses.
type CreditCardResponse struct {
	ID           string `json:"id"`
	Description  string `json:"description"`
	ClosingDay   int    `json:"closing_day"`
	DueDay       int    `json:"due_day"`
	GoodThruDate string `json:"good_thru_date"`
	IsPaused     bool   `json:"is_paused"`
}

// CreditCardListResponse represents the response for listing credit cards.
type CreditCardListResponse struct {
	CreditCards []CreditCardResponse `json:"credit_cards"`
}

// CycleBoundariesResponse represents the billing cycle boundaries around a
// reference date.
type CycleBoundariesResponse struct {
	PrevClosing       string `json:"prev_closing"`
	PrevDue           string `json:"prev_due"`
	NextClosing       string `json:"next_closing"`
	NextDue           string `json:"next_due"`
	SecondNextClosing string `json:"second_next_closing"`
	SecondNextDue     string `json:"second_next_due"`
}

// ToCreditCardResponse converts a domain CreditCard entity to a CreditCardResponse DTO.
func ToCreditCardResponse(card *entity.CreditCard) CreditCardResponse {
	return CreditCardResponse{
		ID:           card.ID.String(),
		Description:  card.Description,
		ClosingDay:   card.ClosingDay,
		DueDay:       card.DueDay,
		GoodThruDate: card.GoodThruDate.String(),
		IsPaused:     card.IsPaused,
	}
}

// ToCreditCardListResponse converts a list of cards to a CreditCardListResponse.
func ToCreditCardListResponse(cards []*entity.CreditCard) CreditCardListResponse {
	responses := make([]CreditCardResponse, len(cards))
	for i, card := range cards {
		responses[i] = ToCreditCardResponse(card)
	}
	return CreditCardListResponse{
		CreditCards: responses,
	}
}

// ToCycleBoundariesResponse converts cycle boundaries to their DTO form.
func ToCycleBoundariesResponse(boundaries billing.CycleBoundaries) CycleBoundariesResponse {
	return CycleBoundariesResponse{
		PrevClosing:       boundaries.PrevClosing.String(),
		PrevDue:           boundaries.PrevDue.String(),
		NextClosing:       boundaries.NextClosing.String(),
		NextDue:           boundaries.NextDue.String(),
		SecondNextClosing: boundaries.SecondNextClosing.String(),
		SecondNextDue:     boundaries.SecondNextDue.String(),
	}
}
