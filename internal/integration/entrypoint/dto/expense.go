package dto

import (
	"github.com/shopspring/decimal"

	"github.com/expense-planner/backend/internal/domain/calendar"
	"github.com/expense-planner/backend/internal/domain/entity"
)

// CreateExpenseRequest represents the request body for expense creation.
// Dates use the YYYY-MM-DD format. InstallmentCount of 0 or 1 creates an
// ordinary expense; 2 or more splits the amount into a card installment
// series.
type CreateExpenseRequest struct {
	Description      string          `json:"description" binding:"required,min=1,max=100"`
	Amount           decimal.Decimal `json:"amount" binding:"required"`
	CategoryID       string          `json:"category_id" binding:"required,uuid"`
	Date             calendar.Date   `json:"date" binding:"required"`
	CreditCardID     *string         `json:"credit_card_id,omitempty" binding:"omitempty,uuid"`
	InstallmentCount int             `json:"installment_count,omitempty" binding:"omitempty,min=0,max=99"`
	IsPaid           bool            `json:"is_paid,omitempty"`
	IsRecurring      bool            `json:"is_recurring,omitempty"`
}

// UpdateExpenseRequest represents the request body for expense update.
type UpdateExpenseRequest struct {
	Description  string          `json:"description" binding:"required,min=1,max=100"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	CategoryID   string          `json:"category_id" binding:"required,uuid"`
	Date         calendar.Date   `json:"date" binding:"required"`
	CreditCardID *string         `json:"credit_card_id,omitempty" binding:"omitempty,uuid"`
	IsPaid       bool            `json:"is_paid,omitempty"`
	IsRecurring  bool            `json:"is_recurring,omitempty"`
}

// SetExpensePaidRequest represents the request body for the paid flag change.
type SetExpensePaidRequest struct {
	IsPaid *bool `json:"is_paid" binding:"required"`
}

// ExpenseResponse represents a single expense in API responses.
type ExpenseResponse struct {
	ID                   string          `json:"id"`
	Description          string          `json:"description"`
	Amount               decimal.Decimal `json:"amount"`
	CategoryID           string          `json:"category_id"`
	Date                 string          `json:"date"`
	CreditCardID         *string         `json:"credit_card_id,omitempty"`
	ExecutionDate        *string         `json:"execution_date,omitempty"`
	ExpenseInstallmentID *string         `json:"expense_installment_id,omitempty"`
	InstallmentQuantity  int             `json:"installment_quantity,omitempty"`
	InstallmentNumber    int             `json:"installment_number,omitempty"`
	TotalAmount          decimal.Decimal `json:"total_amount"`
	IsPaid               bool            `json:"is_paid"`
	IsRecurring          bool            `json:"is_recurring"`
}

// ExpenseListResponse represents the response for listing expenses.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// ToExpenseResponse converts a domain Expense entity to an ExpenseResponse DTO.
func ToExpenseResponse(expense *entity.Expense) ExpenseResponse {
	response := ExpenseResponse{
		ID:                  expense.ID.String(),
		Description:         expense.Description,
		Amount:              expense.Amount,
		CategoryID:          expense.CategoryID.String(),
		Date:                expense.Date.String(),
		InstallmentQuantity: expense.InstallmentQuantity,
		InstallmentNumber:   expense.InstallmentNumber,
		TotalAmount:         expense.TotalAmount,
		IsPaid:              expense.IsPaid,
		IsRecurring:         expense.IsRecurring,
	}
	if expense.CreditCardID != nil {
		id := expense.CreditCardID.String()
		response.CreditCardID = &id
	}
	if expense.ExecutionDate != nil {
		date := expense.ExecutionDate.String()
		response.ExecutionDate = &date
	}
	if expense.ExpenseInstallmentID != nil {
		id := expense.ExpenseInstallmentID.String()
		response.ExpenseInstallmentID = &id
	}
	return response
}

// ToExpenseListResponse converts a list of expenses to an ExpenseListResponse.
func ToExpenseListResponse(expenses []*entity.Expense) ExpenseListResponse {
	responses := make([]ExpenseResponse, len(expenses))
	for i, expense := range expenses {
		responses[i] = ToExpenseResponse(expense)
	}
	return ExpenseListResponse{
		Expenses: responses,
	}
}
