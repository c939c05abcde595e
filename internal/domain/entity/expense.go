// Package entity defines the core business entities for the domain layer.
package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-planner/backend/internal/domain/calendar"
)

// Expense represents a single dated obligation. An expense charged to a
// credit card additionally carries the execution date resolved from the
// card's billing cycle; installment siblings share an ExpenseInstallmentID.
//
// Invariants:
//   - CreditCardID set implies ExecutionDate set and ExecutionDate >= Date.
//   - Installment siblings share ExpenseInstallmentID and TotalAmount, and
//     their InstallmentNumber values form a contiguous 1..InstallmentQuantity
//     set with no duplicates.
type Expense struct {
	ID                   uuid.UUID
	Description          string
	Amount               decimal.Decimal
	CategoryID           uuid.UUID
	Date                 calendar.Date // Purchase/booking date
	CreditCardID         *uuid.UUID
	ExecutionDate        *calendar.Date // Resolved due date when a card is attached
	ExpenseInstallmentID *uuid.UUID     // Groups sibling installments
	InstallmentQuantity  int
	InstallmentNumber    int // 1-based position within the series
	TotalAmount          decimal.Decimal
	IsPaid               bool
	IsRecurring          bool
}

// NewExpense creates a new ordinary (non-installment) Expense entity.
func NewExpense(
	description string,
	amount decimal.Decimal,
	categoryID uuid.UUID,
	date calendar.Date,
	isRecurring bool,
) *Expense {
	return &Expense{
		ID:          uuid.New(),
		Description: description,
		Amount:      amount,
		CategoryID:  categoryID,
		Date:        date,
		TotalAmount: amount,
		IsRecurring: isRecurring,
	}
}

// RelevantDate returns the date the expense counts toward for month scoping
// and cash-flow purposes: the execution date when present, else the purchase
// date.
func (e *Expense) RelevantDate() calendar.Date {
	if e.ExecutionDate != nil {
		return *e.ExecutionDate
	}
	return e.Date
}

// IsInstallment reports whether the expense belongs to an installment series.
func (e *Expense) IsInstallment() bool {
	return e.ExpenseInstallmentID != nil
}

// IsFirstInstallment reports whether the expense opens an installment series.
func (e *Expense) IsFirstInstallment() bool {
	return e.ExpenseInstallmentID != nil && e.InstallmentNumber == 1
}
