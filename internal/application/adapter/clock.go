package adapter

import (
	"github.com/expense-planner/backend/internal/domain/calendar"
)

// Clock supplies the current calendar date. Injected so rollover and
// aggregation behavior can be pinned to a fixed day in tests.
type Clock interface {
	// Today returns the current calendar date.
	Today() calendar.Date
}
