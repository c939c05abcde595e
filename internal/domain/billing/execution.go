package billing

import (
	"github.com/expense-planner/backend/internal/domain/calendar"
)

// ResolveExecutionDate maps a purchase date to the due date of the billing
// cycle it is charged under. The purchase belongs to the cycle that has not
// yet closed as of the purchase date: a purchase made after the closing day
// rolls one month past the immediate next due date.
//
// The result is always a (clamped) dueDay in a month at or after the
// purchase month. Resolving a returned date again as a purchase date made on
// or before the closing day never moves backward.
func ResolveExecutionDate(purchaseDate calendar.Date, closingDay, dueDay int) calendar.Date {
	due := Boundaries(closingDay, dueDay, purchaseDate).NextDue
	if purchaseDate.Day > closingDay {
		due = due.AddMonths(1)
	}
	return due
}
