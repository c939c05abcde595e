// Package rollover contains the month-transition copier: when a new calendar
// month is first observed, recurring incomes, recurring simple expenses and
// recurring installment series from the previous month are propagated forward
// as brand-new records.
package rollover

import (
	"github.com/expense-planner/backend/internal/domain/billing"
	"github.com/expense-planner/backend/internal/domain/calendar"
	"github.com/expense-planner/backend/internal/domain/entity"
)

// CopyResult holds the records generated by a month copy. Source records are
// never mutated; every generated record carries a fresh id.
type CopyResult struct {
	NewExpenses []*entity.Expense
	NewIncomes  []*entity.Income
}

// CopyMonth runs the three independent copy passes from the source month
// into the target month:
//
//   - every non-paused income dated in the source month is copied to the
//     same day of the target month, clamped to its length;
//   - every recurring non-installment expense dated in the source month is
//     copied the same way, with its execution date re-resolved against the
//     new date when a card is attached;
//   - every recurring installment series whose first installment is dated in
//     the source month is re-expanded as a fresh N-installment series under
//     a new series id, modeling the purchase happening again this month.
//
// fromMonth and toMonth only contribute their calendar month; their
// day-of-month is ignored.
func CopyMonth(
	expenses []*entity.Expense,
	incomes []*entity.Income,
	creditCards []*entity.CreditCard,
	fromMonth calendar.Date,
	toMonth calendar.Date,
) CopyResult {
	var result CopyResult

	cardsByID := make(map[string]*entity.CreditCard, len(creditCards))
	for _, card := range creditCards {
		cardsByID[card.ID.String()] = card
	}

	for _, income := range incomes {
		if income.IsPaused || !income.Date.SameMonth(fromMonth) {
			continue
		}
		copied := entity.NewIncome(
			income.Description,
			income.Amount,
			calendar.NewDate(toMonth.Year, toMonth.Month, income.Date.Day),
		)
		result.NewIncomes = append(result.NewIncomes, copied)
	}

	for _, expense := range expenses {
		if !expense.IsRecurring || !expense.Date.SameMonth(fromMonth) {
			continue
		}

		if expense.ExpenseInstallmentID == nil {
			copied := entity.NewExpense(
				expense.Description,
				expense.Amount,
				expense.CategoryID,
				calendar.NewDate(toMonth.Year, toMonth.Month, expense.Date.Day),
				true,
			)
			if expense.CreditCardID != nil {
				if card := cardsByID[expense.CreditCardID.String()]; card != nil {
					billing.AttachCard(copied, card)
				}
			}
			result.NewExpenses = append(result.NewExpenses, copied)
			continue
		}

		if expense.InstallmentNumber != 1 {
			continue // Only the series opener seeds a new series.
		}
		var card *entity.CreditCard
		if expense.CreditCardID != nil {
			card = cardsByID[expense.CreditCardID.String()]
		}
		series := billing.ExpandInstallments(billing.ExpandInput{
			Description:  expense.Description,
			TotalAmount:  expense.TotalAmount,
			Count:        expense.InstallmentQuantity,
			PurchaseDate: calendar.NewDate(toMonth.Year, toMonth.Month, expense.Date.Day),
			CategoryID:   expense.CategoryID,
			Card:         card,
			IsRecurring:  true,
		})
		result.NewExpenses = append(result.NewExpenses, series...)
	}

	return result
}
