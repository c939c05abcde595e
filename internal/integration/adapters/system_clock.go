// Package adapters provides concrete implementations of application adapters.
package adapters

import (
	"time"

	"github.com/expense-planner/backend/internal/application/adapter"
	"github.com/expense-planner/backend/internal/domain/calendar"
)

// systemClock reports the machine's current date.
type systemClock struct{}

// NewSystemClock creates a Clock backed by the system time.
func NewSystemClock() adapter.Clock {
	return systemClock{}
}

// Today returns the current calendar date in local time.
func (systemClock) Today() calendar.Date {
	return calendar.FromTime(time.Now())
}
