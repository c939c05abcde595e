package dto

import (
	"github.com/shopspring/decimal"

	"github.com/expense-planner/backend/internal/domain/calendar"
	"github.com/expense-planner/backend/internal/domain/entity"
)

// CreateIncomeRequest represents the request body for income creation.
type CreateIncomeRequest struct {
	Description string          `json:"description" binding:"required,min=1,max=100"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Date        calendar.Date   `json:"date" binding:"required"`
}

// UpdateIncomeRequest represents the request body for income update.
type UpdateIncomeRequest struct {
	Description string          `json:"description" binding:"required,min=1,max=100"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Date        calendar.Date   `json:"date" binding:"required"`
	IsPaused    bool            `json:"is_paused,omitempty"`
}

// SetIncomePausedRequest represents the request body for the pause flag change.
type SetIncomePausedRequest struct {
	IsPaused *bool `json:"is_paused" binding:"required"`
}

// IncomeResponse represents a single income in API responses.
type IncomeResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	IsPaused    bool            `json:"is_paused"`
}

// IncomeListResponse represents the response for listing incomes.
type IncomeListResponse struct {
	Incomes []IncomeResponse `json:"incomes"`
}

// ToIncomeResponse converts a domain Income entity to an IncomeResponse DTO.
func ToIncomeResponse(income *entity.Income) IncomeResponse {
	return IncomeResponse{
		ID:          income.ID.String(),
		Description: income.Description,
		Amount:      income.Amount,
		Date:        income.Date.String(),
		IsPaused:    income.IsPaused,
	}
}

// ToIncomeListResponse converts a list of incomes to an IncomeListResponse.
func ToIncomeListResponse(incomes []*entity.Income) IncomeListResponse {
	responses := make([]IncomeResponse, len(incomes))
	for i, income := range incomes {
		responses[i] = ToIncomeResponse(income)
	}
	return IncomeListResponse{
		Incomes: responses,
	}
}
