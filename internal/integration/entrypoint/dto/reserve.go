package dto

import (
	"github.com/shopspring/decimal"

	"github.com/expense-planner/backend/internal/application/usecase/reserve"
	"github.com/expense-planner/backend/internal/domain/calendar"
)

// CreateReserveRequest represents the request body for reserve creation.
// InterestRate is an annual simple-interest rate, e.g. 0.12 for 12%.
type CreateReserveRequest struct {
	Name         string           `json:"name" binding:"required,min=1,max=50"`
	Amount       decimal.Decimal  `json:"amount" binding:"required"`
	CreationDate calendar.Date    `json:"creation_date" binding:"required"`
	InterestRate *decimal.Decimal `json:"interest_rate,omitempty"`
}

// UpdateReserveRequest represents the request body for reserve update.
type UpdateReserveRequest struct {
	Name         string           `json:"name" binding:"required,min=1,max=50"`
	Amount       decimal.Decimal  `json:"amount" binding:"required"`
	CreationDate calendar.Date    `json:"creation_date" binding:"required"`
	InterestRate *decimal.Decimal `json:"interest_rate,omitempty"`
}

// DissolveReserveRequest represents the request body for dissolving a reserve.
type DissolveReserveRequest struct {
	DissolutionDate calendar.Date `json:"dissolution_date" binding:"required"`
}

// ReserveResponse represents a single reserve in API responses.
type ReserveResponse struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Amount          decimal.Decimal  `json:"amount"`
	CreationDate    string           `json:"creation_date"`
	DissolutionDate *string          `json:"dissolution_date,omitempty"`
	InterestRate    *decimal.Decimal `json:"interest_rate,omitempty"`
	AccruedValue    decimal.Decimal  `json:"accrued_value"`
}

// ReserveListResponse represents the response for listing reserves.
type ReserveListResponse struct {
	Reserves []ReserveResponse `json:"reserves"`
	Total    decimal.Decimal   `json:"total"`
}

// ToReserveResponse converts a reserve with its accrued value to a ReserveResponse DTO.
func ToReserveResponse(withValue reserve.ReserveWithValue) ReserveResponse {
	r := withValue.Reserve
	response := ReserveResponse{
		ID:           r.ID.String(),
		Name:         r.Name,
		Amount:       r.Amount,
		CreationDate: r.CreationDate.String(),
		InterestRate: r.InterestRate,
		AccruedValue: withValue.AccruedValue,
	}
	if r.DissolutionDate != nil {
		date := r.DissolutionDate.String()
		response.DissolutionDate = &date
	}
	return response
}

// ToReserveListResponse converts a reserve listing to a ReserveListResponse.
func ToReserveListResponse(output *reserve.ListReservesOutput) ReserveListResponse {
	responses := make([]ReserveResponse, len(output.Reserves))
	for i, withValue := range output.Reserves {
		responses[i] = ToReserveResponse(withValue)
	}
	return ReserveListResponse{
		Reserves: responses,
		Total:    output.Total,
	}
}
