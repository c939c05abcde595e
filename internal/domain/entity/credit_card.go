package entity

import (
	"github.com/google/uuid"

	"github.com/expense-planner/backend/internal/domain/calendar"
)

// Credit card closing and due days are calendar days-of-month restricted to
// [1, 30]; day 31 is never a valid configuration since it cannot recur in
// every month.
const (
	MinCycleDay = 1
	MaxCycleDay = 30
)

// CreditCard represents a credit card and its billing cycle configuration.
// DueDay may be before or after ClosingDay within the month; the sign of the
// difference determines whether the due date falls in the same or the next
// calendar month relative to closing.
type CreditCard struct {
	ID           uuid.UUID
	Description  string
	ClosingDay   int
	DueDay       int
	GoodThruDate calendar.Date
	IsPaused     bool
}

// NewCreditCard creates a new CreditCard entity.
func NewCreditCard(description string, closingDay, dueDay int, goodThruDate calendar.Date) *CreditCard {
	return &CreditCard{
		ID:           uuid.New(),
		Description:  description,
		ClosingDay:   closingDay,
		DueDay:       dueDay,
		GoodThruDate: goodThruDate,
	}
}

// ValidCycleDay reports whether day is a valid closing or due day.
func ValidCycleDay(day int) bool {
	return day >= MinCycleDay && day <= MaxCycleDay
}
