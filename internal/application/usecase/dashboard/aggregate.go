// Package dashboard contains the month-scoped aggregation use cases: totals,
// executed-vs-pending splits, savings projections, per-card cycle metrics and
// category budget consumption.
package dashboard

import (
	"github.com/shopspring/decimal"

	"github.com/expense-planner/backend/internal/domain/billing"
	"github.com/expense-planner/backend/internal/domain/calendar"
	"github.com/expense-planner/backend/internal/domain/entity"
)

// CardCycleMetrics holds the upcoming charge totals for one card. Cycle
// totals count expenses whose execution date lands exactly on the cycle's
// due date; PendingTotal counts every not-yet-executed expense on the card
// regardless of month.
type CardCycleMetrics struct {
	Card                 *entity.CreditCard
	Cycle                billing.CycleBoundaries
	NextCycleTotal       decimal.Decimal
	SecondNextCycleTotal decimal.Decimal
	PendingTotal         decimal.Decimal
}

// CategoryBudgetStatus compares a category's executed and pending amounts in
// the selected month against its budget.
type CategoryBudgetStatus struct {
	Category  *entity.Category
	Budget    decimal.Decimal
	Executed  decimal.Decimal
	Pending   decimal.Decimal
	Remaining decimal.Decimal
}

// MonthSummary is the full dashboard payload for one selected month.
type MonthSummary struct {
	Month calendar.Date
	Today calendar.Date

	TotalIncome    decimal.Decimal
	ExecutedIncome decimal.Decimal
	PendingIncome  decimal.Decimal

	TotalExpense    decimal.Decimal
	ExecutedExpense decimal.Decimal
	PendingExpense  decimal.Decimal

	// HistoricalSavings is the running real-time balance: every executed
	// income minus every executed expense across all months up to today.
	HistoricalSavings decimal.Decimal

	// ProjectedBalance assumes the selected month's pending incomes and
	// pending card charges execute on schedule.
	ProjectedBalance decimal.Decimal

	Cards      []CardCycleMetrics
	Categories []CategoryBudgetStatus

	ReservesTotal decimal.Decimal
}

// Aggregate derives the dashboard summary for the selected month. Pure: the
// state is read, never mutated. A record is executed when its relevant date
// is on or before today, pending otherwise; expenses count toward the month
// of their execution date when one is set, else their purchase date.
//
// Expenses referencing a missing category or card still count toward the
// month and savings totals but are attributed to no bucket.
func Aggregate(state *entity.State, selectedMonth, today calendar.Date) MonthSummary {
	summary := MonthSummary{
		Month:             selectedMonth,
		Today:             today,
		TotalIncome:       decimal.Zero,
		ExecutedIncome:    decimal.Zero,
		PendingIncome:     decimal.Zero,
		TotalExpense:      decimal.Zero,
		ExecutedExpense:   decimal.Zero,
		PendingExpense:    decimal.Zero,
		HistoricalSavings: decimal.Zero,
		ProjectedBalance:  decimal.Zero,
		ReservesTotal:     decimal.Zero,
	}

	for _, income := range state.Incomes {
		if income.IsPaused {
			continue
		}
		executed := !income.Date.After(today)
		if executed {
			summary.HistoricalSavings = summary.HistoricalSavings.Add(income.Amount)
		}
		if !income.Date.SameMonth(selectedMonth) {
			continue
		}
		summary.TotalIncome = summary.TotalIncome.Add(income.Amount)
		if executed {
			summary.ExecutedIncome = summary.ExecutedIncome.Add(income.Amount)
		} else {
			summary.PendingIncome = summary.PendingIncome.Add(income.Amount)
		}
	}

	pendingCardCharges := decimal.Zero
	executedByCategory := make(map[string]decimal.Decimal)
	pendingByCategory := make(map[string]decimal.Decimal)

	for _, expense := range state.Expenses {
		relevant := expense.RelevantDate()
		executed := !relevant.After(today)
		if executed {
			summary.HistoricalSavings = summary.HistoricalSavings.Sub(expense.Amount)
		}
		if !relevant.SameMonth(selectedMonth) {
			continue
		}
		summary.TotalExpense = summary.TotalExpense.Add(expense.Amount)
		key := expense.CategoryID.String()
		if executed {
			summary.ExecutedExpense = summary.ExecutedExpense.Add(expense.Amount)
			executedByCategory[key] = executedByCategory[key].Add(expense.Amount)
		} else {
			summary.PendingExpense = summary.PendingExpense.Add(expense.Amount)
			pendingByCategory[key] = pendingByCategory[key].Add(expense.Amount)
			if expense.CreditCardID != nil {
				pendingCardCharges = pendingCardCharges.Add(expense.Amount)
			}
		}
	}

	summary.ProjectedBalance = summary.HistoricalSavings.
		Add(summary.PendingIncome).
		Sub(pendingCardCharges)

	summary.Cards = cardMetrics(state, today)
	summary.Categories = categoryStatuses(state, summary.TotalIncome, executedByCategory, pendingByCategory)

	for _, reserve := range state.Reserves {
		if reserve.IsActiveOn(today) {
			summary.ReservesTotal = summary.ReservesTotal.Add(reserve.AccruedValue(today))
		}
	}

	return summary
}

// cardMetrics computes the upcoming cycle totals for every non-paused card.
// An expense counts toward a cycle when its execution date equals that
// cycle's due date exactly.
func cardMetrics(state *entity.State, today calendar.Date) []CardCycleMetrics {
	var metrics []CardCycleMetrics
	for _, card := range state.CreditCards {
		if card.IsPaused {
			continue
		}
		cycle := billing.Boundaries(card.ClosingDay, card.DueDay, today)
		m := CardCycleMetrics{
			Card:                 card,
			Cycle:                cycle,
			NextCycleTotal:       decimal.Zero,
			SecondNextCycleTotal: decimal.Zero,
			PendingTotal:         decimal.Zero,
		}
		for _, expense := range state.Expenses {
			if expense.CreditCardID == nil || *expense.CreditCardID != card.ID {
				continue
			}
			if expense.ExecutionDate != nil {
				if expense.ExecutionDate.Equal(cycle.NextDue) {
					m.NextCycleTotal = m.NextCycleTotal.Add(expense.Amount)
				}
				if expense.ExecutionDate.Equal(cycle.SecondNextDue) {
					m.SecondNextCycleTotal = m.SecondNextCycleTotal.Add(expense.Amount)
				}
			}
			if expense.RelevantDate().After(today) {
				m.PendingTotal = m.PendingTotal.Add(expense.Amount)
			}
		}
		metrics = append(metrics, m)
	}
	return metrics
}

// categoryStatuses builds the per-category budget view in stored order. The
// fallback bucket's budget is reported as the selected month's total active
// income rather than its stored value.
func categoryStatuses(
	state *entity.State,
	monthIncome decimal.Decimal,
	executedByCategory map[string]decimal.Decimal,
	pendingByCategory map[string]decimal.Decimal,
) []CategoryBudgetStatus {
	var statuses []CategoryBudgetStatus
	for _, category := range state.Categories {
		if category.IsDisabled {
			continue
		}
		budget := category.Budget
		if category.IsFallback() {
			budget = monthIncome
		}
		key := category.ID.String()
		executed := executedByCategory[key]
		pending := pendingByCategory[key]
		statuses = append(statuses, CategoryBudgetStatus{
			Category:  category,
			Budget:    budget,
			Executed:  executed,
			Pending:   pending,
			Remaining: budget.Sub(executed).Sub(pending),
		})
	}
	return statuses
}
