package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-planner/backend/internal/application/adapter"
	"github.com/expense-planner/backend/internal/domain/billing"
	"github.com/expense-planner/backend/internal/domain/calendar"
	"github.com/expense-planner/backend/internal/domain/entity"
	domainerror "github.com/expense-planner/backend/internal/domain/error"
)

// CreateExpenseInput represents the input for expense creation.
type CreateExpenseInput struct {
	Description      string
	Amount           decimal.Decimal
	CategoryID       uuid.UUID
	Date             calendar.Date
	CreditCardID     *uuid.UUID
	InstallmentCount int // 0 or 1 creates an ordinary expense
	IsPaid           bool
	IsRecurring      bool
}

// CreateExpenseOutput represents the output of expense creation. A purchase
// split into installments yields one expense per installment.
type CreateExpenseOutput struct {
	Expenses []*entity.Expense
}

// CreateExpenseUseCase handles expense creation logic.
type CreateExpenseUseCase struct {
	store adapter.StateStore
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(store adapter.StateStore) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		store: store,
	}
}

// Execute performs the expense creation, expanding the purchase into an
// installment series when a count of two or more and a credit card are given.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	if input.Amount.IsNegative() {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseAmount,
			"amount must not be negative",
			domainerror.ErrInvalidExpenseAmount,
		)
	}
	if input.InstallmentCount < 0 {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidInstallmentCount,
			"installment count must be at least one",
			domainerror.ErrInvalidInstallmentCount,
		)
	}

	state, err := loadState(ctx, uc.store)
	if err != nil {
		return nil, err
	}

	if state.CategoryByID(input.CategoryID) == nil {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeUnknownCategory,
			"referenced category does not exist",
			domainerror.ErrUnknownCategoryReference,
		)
	}

	var card *entity.CreditCard
	if input.CreditCardID != nil {
		card = state.CreditCardByID(*input.CreditCardID)
		if card == nil {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeUnknownCreditCard,
				"referenced credit card does not exist",
				domainerror.ErrUnknownCreditCardReference,
			)
		}
	}

	expenses := billing.ExpandInstallments(billing.ExpandInput{
		Description:  input.Description,
		TotalAmount:  input.Amount,
		Count:        input.InstallmentCount,
		PurchaseDate: input.Date,
		CategoryID:   input.CategoryID,
		Card:         card,
		IsRecurring:  input.IsRecurring,
	})

	// Installments are always created unpaid; an ordinary expense may be
	// booked as already paid.
	if len(expenses) == 1 && expenses[0].ExpenseInstallmentID == nil {
		expenses[0].IsPaid = input.IsPaid
	}

	state.Expenses = append(state.Expenses, expenses...)

	if err := uc.store.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to save state: %w", err)
	}

	return &CreateExpenseOutput{
		Expenses: expenses,
	}, nil
}
