package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-planner/backend/internal/domain/calendar"
)

// Reserve represents an amount set aside, optionally earning simple interest
// over its holding period until dissolution.
type Reserve struct {
	ID              uuid.UUID
	Name            string
	Amount          decimal.Decimal
	CreationDate    calendar.Date
	DissolutionDate *calendar.Date // Must be >= CreationDate when set
	InterestRate    *decimal.Decimal
}

// NewReserve creates a new Reserve entity.
func NewReserve(name string, amount decimal.Decimal, creationDate calendar.Date, interestRate *decimal.Decimal) *Reserve {
	return &Reserve{
		ID:           uuid.New(),
		Name:         name,
		Amount:       amount,
		CreationDate: creationDate,
		InterestRate: interestRate,
	}
}

// IsActiveOn reports whether the reserve is held on the given date.
func (r *Reserve) IsActiveOn(date calendar.Date) bool {
	if date.Before(r.CreationDate) {
		return false
	}
	return r.DissolutionDate == nil || date.Before(*r.DissolutionDate)
}

// AccruedValue returns the reserve amount plus simple interest over the
// holding period ending at the given date (or at dissolution, if earlier).
func (r *Reserve) AccruedValue(asOf calendar.Date) decimal.Decimal {
	if r.InterestRate == nil {
		return r.Amount
	}
	end := asOf
	if r.DissolutionDate != nil && r.DissolutionDate.Before(end) {
		end = *r.DissolutionDate
	}
	if end.Before(r.CreationDate) {
		return r.Amount
	}
	days := int(end.ToTime().Sub(r.CreationDate.ToTime()).Hours() / 24)
	years := decimal.NewFromInt(int64(days)).Div(decimal.NewFromInt(365))
	interest := r.Amount.Mul(*r.InterestRate).Mul(years)
	return r.Amount.Add(interest).Round(2)
}
