package rollover

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/expense-planner/backend/internal/application/adapter"
	"github.com/expense-planner/backend/internal/domain/calendar"
	"github.com/expense-planner/backend/internal/domain/entity"
)

// RunRolloverOutput reports what the month-transition check did.
type RunRolloverOutput struct {
	Performed   bool
	NewExpenses int
	NewIncomes  int
}

// RunRolloverUseCase detects a month transition between the persisted last
// access date and today, and copies recurring records forward across exactly
// one month boundary. Safe to invoke on every load: the last access date is
// advanced on every run, so a genuine transition is handled at most once.
type RunRolloverUseCase struct {
	store adapter.StateStore
	clock adapter.Clock
}

// NewRunRolloverUseCase creates a new RunRolloverUseCase instance.
func NewRunRolloverUseCase(store adapter.StateStore, clock adapter.Clock) *RunRolloverUseCase {
	return &RunRolloverUseCase{
		store: store,
		clock: clock,
	}
}

// Execute runs the month-transition check.
//
// A missing last access date or a gap other than exactly one calendar month
// performs no copy; multi-month gaps are not backfilled, only observed in
// the logs.
func (uc *RunRolloverUseCase) Execute(ctx context.Context) (*RunRolloverOutput, error) {
	state, err := uc.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}
	if state == nil {
		state = entity.NewState()
	}
	state.Normalize()

	today := uc.clock.Today()
	lastAccess := state.LastAccessDate
	output := &RunRolloverOutput{}

	if lastAccess != nil {
		gap := monthIndex(today) - monthIndex(*lastAccess)
		switch {
		case gap == 1:
			result := CopyMonth(state.Expenses, state.Incomes, state.CreditCards, *lastAccess, today)
			state.Expenses = append(state.Expenses, result.NewExpenses...)
			state.Incomes = append(state.Incomes, result.NewIncomes...)
			output.Performed = true
			output.NewExpenses = len(result.NewExpenses)
			output.NewIncomes = len(result.NewIncomes)
		case gap > 1:
			slog.Warn("skipping rollover across multi-month gap, recurring records are not backfilled",
				"last_access", lastAccess.String(),
				"today", today.String(),
				"gap_months", gap,
			)
		}
	}

	state.LastAccessDate = &today
	if err := uc.store.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to save state: %w", err)
	}

	return output, nil
}

// monthIndex maps a date to a linear month count so December to January
// reads as a single-month gap.
func monthIndex(d calendar.Date) int {
	return d.Year*12 + int(d.Month) - 1
}
