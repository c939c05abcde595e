package billing

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-planner/backend/internal/domain/calendar"
	"github.com/expense-planner/backend/internal/domain/entity"
)

// ExpandInput carries the parameters of an installment expansion.
type ExpandInput struct {
	Description  string
	TotalAmount  decimal.Decimal
	Count        int
	PurchaseDate calendar.Date
	CategoryID   uuid.UUID
	Card         *entity.CreditCard // Optional
	IsRecurring  bool
}

// ExpandInstallments splits a purchase into dated installment expenses.
//
// The per-installment amount is the total divided by the count, rounded to
// the cent; the rounding residue (positive or negative) is absorbed by the
// first installment so the amounts always sum back to the total exactly.
// Installment i is dated i-1 months after the purchase, day clamped to the
// target month. Execution dates for installments past the first advance the
// previous installment's execution date by one month and re-clamp to the
// card's due day, keeping the sequence strictly increasing even when the
// card's due day precedes its closing day.
//
// A count below 2 or a missing card short-circuits to a single ordinary
// expense with no installment metadata.
func ExpandInstallments(input ExpandInput) []*entity.Expense {
	if input.Count < 2 || input.Card == nil {
		expense := entity.NewExpense(
			input.Description,
			input.TotalAmount,
			input.CategoryID,
			input.PurchaseDate,
			input.IsRecurring,
		)
		if input.Card != nil {
			AttachCard(expense, input.Card)
		}
		return []*entity.Expense{expense}
	}

	count := decimal.NewFromInt(int64(input.Count))
	perInstallment := input.TotalAmount.Div(count).Round(2)
	remainder := input.TotalAmount.Sub(perInstallment.Mul(count))

	seriesID := uuid.New()
	cardID := input.Card.ID
	installments := make([]*entity.Expense, 0, input.Count)

	execution := ResolveExecutionDate(input.PurchaseDate, input.Card.ClosingDay, input.Card.DueDay)
	for i := 1; i <= input.Count; i++ {
		amount := perInstallment
		date := input.PurchaseDate
		if i == 1 {
			amount = perInstallment.Add(remainder)
		} else {
			date = input.PurchaseDate.AddMonths(i - 1)
			advanced := execution.AddMonths(1)
			execution = calendar.NewDate(advanced.Year, advanced.Month, input.Card.DueDay)
		}
		executionDate := execution

		installment := &entity.Expense{
			ID:                   uuid.New(),
			Description:          input.Description,
			Amount:               amount,
			CategoryID:           input.CategoryID,
			Date:                 date,
			CreditCardID:         &cardID,
			ExecutionDate:        &executionDate,
			ExpenseInstallmentID: &seriesID,
			InstallmentQuantity:  input.Count,
			InstallmentNumber:    i,
			TotalAmount:          input.TotalAmount,
			IsRecurring:          input.IsRecurring,
		}
		installments = append(installments, installment)
	}
	return installments
}

// AttachCard resolves and sets the execution date for a card-charged expense
// from its purchase date.
func AttachCard(expense *entity.Expense, card *entity.CreditCard) {
	cardID := card.ID
	execution := ResolveExecutionDate(expense.Date, card.ClosingDay, card.DueDay)
	expense.CreditCardID = &cardID
	expense.ExecutionDate = &execution
}
