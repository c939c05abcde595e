package billing

import (
	"testing"

	"github.com/expense-planner/backend/internal/domain/calendar"
)

func TestResolveExecutionDate(t *testing.T) {
	tests := []struct {
		name       string
		purchase   string
		closingDay int
		dueDay     int
		want       string
	}{
		{
			name:       "purchase before closing day bills in nearest due",
			purchase:   "2024-01-20",
			closingDay: 25,
			dueDay:     10,
			want:       "2024-02-10",
		},
		{
			name:       "purchase after closing day rolls one extra month",
			purchase:   "2024-01-26",
			closingDay: 25,
			dueDay:     10,
			want:       "2024-03-10",
		},
		{
			name:       "purchase on closing day stays in current cycle",
			purchase:   "2024-01-25",
			closingDay: 25,
			dueDay:     10,
			want:       "2024-02-10",
		},
		{
			name:       "purchase before due day in same month",
			purchase:   "2024-03-02",
			closingDay: 25,
			dueDay:     10,
			want:       "2024-03-10",
		},
		{
			name:       "due day after closing day in same month",
			purchase:   "2024-03-02",
			closingDay: 5,
			dueDay:     15,
			want:       "2024-03-15",
		},
		{
			name:       "due day after closing day, purchase past closing",
			purchase:   "2024-03-08",
			closingDay: 5,
			dueDay:     15,
			want:       "2024-04-15",
		},
		{
			name:       "due day 30 clamps in february before advancing",
			purchase:   "2024-01-31",
			closingDay: 20,
			dueDay:     30,
			want:       "2024-03-29", // February due clamps to the 29th, then one month forward
		},
		{
			name:       "due day 30 clamps in february",
			purchase:   "2024-02-15",
			closingDay: 20,
			dueDay:     30,
			want:       "2024-02-29",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveExecutionDate(calendar.MustParse(tt.purchase), tt.closingDay, tt.dueDay)
			if got.String() != tt.want {
				t.Errorf("ResolveExecutionDate(%s, %d, %d) = %s, want %s",
					tt.purchase, tt.closingDay, tt.dueDay, got, tt.want)
			}
		})
	}
}

// Resolving a resolved execution date again as if it were a new purchase
// never moves backward, provided the resolved day does not land past the
// closing day.
func TestResolveExecutionDateMonotonic(t *testing.T) {
	purchases := []calendar.Date{
		calendar.MustParse("2024-01-05"),
		calendar.MustParse("2024-01-20"),
		calendar.MustParse("2024-02-29"),
		calendar.MustParse("2024-12-28"),
	}

	for closingDay := 1; closingDay <= 30; closingDay++ {
		for dueDay := 1; dueDay <= 30; dueDay++ {
			for _, purchase := range purchases {
				first := ResolveExecutionDate(purchase, closingDay, dueDay)
				if first.Before(purchase) {
					t.Fatalf("closing=%d due=%d: execution %s before purchase %s",
						closingDay, dueDay, first, purchase)
				}
				if first.Day > closingDay {
					continue
				}
				second := ResolveExecutionDate(first, closingDay, dueDay)
				if second.Before(first) {
					t.Fatalf("closing=%d due=%d purchase=%s: re-resolution moved backward, %s then %s",
						closingDay, dueDay, purchase, first, second)
				}
			}
		}
	}
}
