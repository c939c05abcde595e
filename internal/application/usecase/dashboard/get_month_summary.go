package dashboard

import (
	"context"
	"fmt"

	"github.com/expense-planner/backend/internal/application/adapter"
	"github.com/expense-planner/backend/internal/application/usecase/rollover"
	"github.com/expense-planner/backend/internal/domain/calendar"
	"github.com/expense-planner/backend/internal/domain/entity"
)

// GetMonthSummaryInput represents the input for the dashboard summary.
type GetMonthSummaryInput struct {
	// Month selects the month to summarize; zero value means the current
	// month. Only the year and month contribute.
	Month calendar.Date
}

// GetMonthSummaryOutput represents the output of the dashboard summary.
type GetMonthSummaryOutput struct {
	Summary  MonthSummary
	Rollover *rollover.RunRolloverOutput
}

// GetMonthSummaryUseCase handles dashboard aggregation. It runs the
// month-transition check before aggregating, so opening the dashboard is
// what propagates recurring records into a newly started month.
type GetMonthSummaryUseCase struct {
	store    adapter.StateStore
	clock    adapter.Clock
	rollover *rollover.RunRolloverUseCase
}

// NewGetMonthSummaryUseCase creates a new GetMonthSummaryUseCase instance.
func NewGetMonthSummaryUseCase(
	store adapter.StateStore,
	clock adapter.Clock,
	rolloverUseCase *rollover.RunRolloverUseCase,
) *GetMonthSummaryUseCase {
	return &GetMonthSummaryUseCase{
		store:    store,
		clock:    clock,
		rollover: rolloverUseCase,
	}
}

// Execute aggregates the selected month and keeps the fallback category's
// stored budget synced to the month's active income.
func (uc *GetMonthSummaryUseCase) Execute(ctx context.Context, input GetMonthSummaryInput) (*GetMonthSummaryOutput, error) {
	rolloverOutput, err := uc.rollover.Execute(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to run month transition check: %w", err)
	}

	state, err := loadState(ctx, uc.store)
	if err != nil {
		return nil, err
	}

	today := uc.clock.Today()
	month := input.Month
	if month.IsZero() {
		month = today
	}
	month = calendar.NewDate(month.Year, month.Month, 1)

	summary := Aggregate(state, month, today)

	if err := uc.syncFallbackBudget(ctx, state, summary); err != nil {
		return nil, err
	}

	return &GetMonthSummaryOutput{
		Summary:  summary,
		Rollover: rolloverOutput,
	}, nil
}

// syncFallbackBudget persists the fallback bucket's derived budget so other
// readers of the stored document see the same number the dashboard shows.
func (uc *GetMonthSummaryUseCase) syncFallbackBudget(ctx context.Context, state *entity.State, summary MonthSummary) error {
	fallback := state.FallbackCategory()
	if fallback == nil || fallback.Budget.Equal(summary.TotalIncome) {
		return nil
	}
	fallback.Budget = summary.TotalIncome
	if err := uc.store.Save(ctx, state); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}
	return nil
}
