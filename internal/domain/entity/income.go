package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-planner/backend/internal/domain/calendar"
)

// Income represents an expected inflow for a given date. A paused income is
// excluded from totals but retained for history.
type Income struct {
	ID          uuid.UUID
	Description string
	Amount      decimal.Decimal
	Date        calendar.Date
	IsPaused    bool
}

// NewIncome creates a new Income entity.
func NewIncome(description string, amount decimal.Decimal, date calendar.Date) *Income {
	return &Income{
		ID:          uuid.New(),
		Description: description,
		Amount:      amount,
		Date:        date,
	}
}
