package mock

import (
	"sync"

	"github.com/expense-planner/backend/internal/domain/calendar"
)

// Clock is a settable calendar clock shared between scenarios and the test
// server, so "today" can be moved across month boundaries mid-scenario.
type Clock struct {
	mu    sync.RWMutex
	today calendar.Date
}

// NewClock creates a clock pinned to the given date.
func NewClock(today calendar.Date) *Clock {
	return &Clock{today: today}
}

// SetToday moves the clock to the given date.
func (c *Clock) SetToday(today calendar.Date) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.today = today
}

// Today returns the pinned date.
func (c *Clock) Today() calendar.Date {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.today
}
