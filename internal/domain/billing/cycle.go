// Package billing implements credit-card billing-cycle arithmetic: cycle
// boundary calculation, purchase-to-due-date resolution, and installment
// expansion.
package billing

import (
	"github.com/expense-planner/backend/internal/domain/calendar"
)

// CycleBoundaries holds the closing/due dates of the billing cycles
// surrounding a reference date. Each closing date is offset from its paired
// due date by the fixed dueDay-closingDay difference, counted in days.
type CycleBoundaries struct {
	PrevClosing       calendar.Date
	PrevDue           calendar.Date
	NextClosing       calendar.Date
	NextDue           calendar.Date
	SecondNextClosing calendar.Date
	SecondNextDue     calendar.Date
}

// Boundaries computes the cycle boundaries for a card configured with the
// given closing and due days, relative to a reference date. Pure and total
// for any closingDay, dueDay in [1, 30].
//
// The due date may fall before or after its closing date within the month:
// diff = dueDay - closingDay keeps its sign and the closing dates are
// derived from the due dates by exact day-count subtraction, which stays
// correct across month-length changes.
func Boundaries(closingDay, dueDay int, reference calendar.Date) CycleBoundaries {
	diff := dueDay - closingDay

	// The earliest due date strictly after the reference date: same month
	// while the reference day is still before the due day, else next month.
	dueYear, dueMonth := reference.Year, reference.Month
	if reference.Day >= dueDay {
		next := reference.AddMonths(1)
		dueYear, dueMonth = next.Year, next.Month
	}
	nextDue := calendar.NewDate(dueYear, dueMonth, dueDay)

	nextClosing := nextDue.AddDays(-diff)
	prevClosing := nextClosing.AddMonths(-1)

	return CycleBoundaries{
		PrevClosing:       prevClosing,
		PrevDue:           prevClosing.AddDays(diff),
		NextClosing:       nextClosing,
		NextDue:           nextDue,
		SecondNextClosing: nextClosing.AddMonths(1),
		SecondNextDue:     nextDue.AddMonths(1),
	}
}
