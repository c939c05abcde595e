package dto

import (
	"github.com/shopspring/decimal"

	"github.com/expense-planner/backend/internal/application/usecase/dashboard"
)

// MonthSummaryResponse represents the dashboard payload for one month.
type MonthSummaryResponse struct {
	Month string `json:"month"`
	Today string `json:"today"`

	TotalIncome    decimal.Decimal `json:"total_income"`
	ExecutedIncome decimal.Decimal `json:"executed_income"`
	PendingIncome  decimal.Decimal `json:"pending_income"`

	TotalExpense    decimal.Decimal `json:"total_expense"`
	ExecutedExpense decimal.Decimal `json:"executed_expense"`
	PendingExpense  decimal.Decimal `json:"pending_expense"`

	HistoricalSavings decimal.Decimal `json:"historical_savings"`
	ProjectedBalance  decimal.Decimal `json:"projected_balance"`

	Cards      []CardCycleMetricsResponse     `json:"cards"`
	Categories []CategoryBudgetStatusResponse `json:"categories"`

	ReservesTotal decimal.Decimal `json:"reserves_total"`
}

// CardCycleMetricsResponse represents the upcoming cycle totals for one card.
type CardCycleMetricsResponse struct {
	CreditCardID         string                  `json:"credit_card_id"`
	Description          string                  `json:"description"`
	Cycle                CycleBoundariesResponse `json:"cycle"`
	NextCycleTotal       decimal.Decimal         `json:"next_cycle_total"`
	SecondNextCycleTotal decimal.Decimal         `json:"second_next_cycle_total"`
	PendingTotal         decimal.Decimal         `json:"pending_total"`
}

// CategoryBudgetStatusResponse represents one category's budget consumption.
type CategoryBudgetStatusResponse struct {
	CategoryID string          `json:"category_id"`
	Name       string          `json:"name"`
	Budget     decimal.Decimal `json:"budget"`
	Executed   decimal.Decimal `json:"executed"`
	Pending    decimal.Decimal `json:"pending"`
	Remaining  decimal.Decimal `json:"remaining"`
}

// ToMonthSummaryResponse converts a month summary to its DTO form.
func ToMonthSummaryResponse(summary dashboard.MonthSummary) MonthSummaryResponse {
	response := MonthSummaryResponse{
		Month:             summary.Month.MonthKey(),
		Today:             summary.Today.String(),
		TotalIncome:       summary.TotalIncome,
		ExecutedIncome:    summary.ExecutedIncome,
		PendingIncome:     summary.PendingIncome,
		TotalExpense:      summary.TotalExpense,
		ExecutedExpense:   summary.ExecutedExpense,
		PendingExpense:    summary.PendingExpense,
		HistoricalSavings: summary.HistoricalSavings,
		ProjectedBalance:  summary.ProjectedBalance,
		Cards:             make([]CardCycleMetricsResponse, len(summary.Cards)),
		Categories:        make([]CategoryBudgetStatusResponse, len(summary.Categories)),
		ReservesTotal:     summary.ReservesTotal,
	}
	for i, metrics := range summary.Cards {
		response.Cards[i] = CardCycleMetricsResponse{
			CreditCardID:         metrics.Card.ID.String(),
			Description:          metrics.Card.Description,
			Cycle:                ToCycleBoundariesResponse(metrics.Cycle),
			NextCycleTotal:       metrics.NextCycleTotal,
			SecondNextCycleTotal: metrics.SecondNextCycleTotal,
			PendingTotal:         metrics.PendingTotal,
		}
	}
	for i, status := range summary.Categories {
		response.Categories[i] = CategoryBudgetStatusResponse{
			CategoryID: status.Category.ID.String(),
			Name:       status.Category.Name,
			Budget:     status.Budget,
			Executed:   status.Executed,
			Pending:    status.Pending,
			Remaining:  status.Remaining,
		}
	}
	return response
}

// RolloverResponse represents the outcome of a month-transition check.
type RolloverResponse struct {
	Performed   bool `json:"performed"`
	NewExpenses int  `json:"new_expenses"`
	NewIncomes  int  `json:"new_incomes"`
}
