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

// UpdateExpenseInput represents the input for expense update. Updates are
// full replacements keyed on id.
type UpdateExpenseInput struct {
	ExpenseID    uuid.UUID
	Description  string
	Amount       decimal.Decimal
	CategoryID   uuid.UUID
	Date         calendar.Date
	CreditCardID *uuid.UUID
	IsPaid       bool
	IsRecurring  bool
}

// UpdateExpenseOutput represents the output of expense update.
type UpdateExpenseOutput struct {
	Expense *entity.Expense
}

// UpdateExpenseUseCase handles expense update logic.
type UpdateExpenseUseCase struct {
	store adapter.StateStore
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(store adapter.StateStore) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{
		store: store,
	}
}

// Execute replaces the stored expense, re-resolving the execution date when
// a card is attached. Installment metadata is preserved untouched so sibling
// invariants cannot be broken through an update.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	if input.Amount.IsNegative() {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseAmount,
			"amount must not be negative",
			domainerror.ErrInvalidExpenseAmount,
		)
	}

	state, err := loadState(ctx, uc.store)
	if err != nil {
		return nil, err
	}

	existing := state.ExpenseByID(input.ExpenseID)
	if existing == nil {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseNotFound,
			"expense not found",
			domainerror.ErrExpenseNotFound,
		)
	}

	if state.CategoryByID(input.CategoryID) == nil {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeUnknownCategory,
			"referenced category does not exist",
			domainerror.ErrUnknownCategoryReference,
		)
	}

	updated := &entity.Expense{
		ID:                   existing.ID,
		Description:          input.Description,
		Amount:               input.Amount,
		CategoryID:           input.CategoryID,
		Date:                 input.Date,
		ExpenseInstallmentID: existing.ExpenseInstallmentID,
		InstallmentQuantity:  existing.InstallmentQuantity,
		InstallmentNumber:    existing.InstallmentNumber,
		TotalAmount:          existing.TotalAmount,
		IsPaid:               input.IsPaid,
		IsRecurring:          input.IsRecurring,
	}
	if existing.ExpenseInstallmentID == nil {
		updated.TotalAmount = input.Amount
	}

	if input.CreditCardID != nil {
		card := state.CreditCardByID(*input.CreditCardID)
		if card == nil {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeUnknownCreditCard,
				"referenced credit card does not exist",
				domainerror.ErrUnknownCreditCardReference,
			)
		}
		billing.AttachCard(updated, card)
	}

	state.ReplaceExpense(updated)

	if err := uc.store.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to save state: %w", err)
	}

	return &UpdateExpenseOutput{
		Expense: updated,
	}, nil
}
