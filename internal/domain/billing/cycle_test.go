package billing

import (
	"fmt"
	"testing"

	"github.com/expense-planner/backend/internal/domain/calendar"
)

func TestBoundaries(t *testing.T) {
	type boundaries struct {
		prevClosing, prevDue             string
		nextClosing, nextDue             string
		secondNextClosing, secondNextDue string
	}

	tests := []struct {
		name       string
		closingDay int
		dueDay     int
		reference  string
		want       boundaries
	}{
		{
			name:       "due in month after closing, reference before due day",
			closingDay: 25,
			dueDay:     10, // diff = -15
			reference:  "2024-01-05",
			want: boundaries{
				prevClosing:       "2023-12-25",
				prevDue:           "2023-12-10",
				nextClosing:       "2024-01-25",
				nextDue:           "2024-01-10",
				secondNextClosing: "2024-02-25",
				secondNextDue:     "2024-02-10",
			},
		},
		{
			name:       "reference on due day rolls to next month",
			closingDay: 25,
			dueDay:     10,
			reference:  "2024-01-10",
			want: boundaries{
				prevClosing:       "2024-01-25",
				prevDue:           "2024-01-10",
				nextClosing:       "2024-02-25",
				nextDue:           "2024-02-10",
				secondNextClosing: "2024-03-25",
				secondNextDue:     "2024-03-10",
			},
		},
		{
			name:       "due after closing in same month",
			closingDay: 5,
			dueDay:     15, // diff = +10
			reference:  "2024-03-20",
			want: boundaries{
				prevClosing:       "2024-03-05",
				prevDue:           "2024-03-15",
				nextClosing:       "2024-04-05",
				nextDue:           "2024-04-15",
				secondNextClosing: "2024-05-05",
				secondNextDue:     "2024-05-15",
			},
		},
		{
			name:       "negative diff with february clamping",
			closingDay: 30,
			dueDay:     10, // diff = -20: due precedes closing
			reference:  "2024-02-15",
			want: boundaries{
				prevClosing:       "2024-02-29", // Day 30 clamped to leap February
				prevDue:           "2024-02-09", // Day-count offset, not day substitution
				nextClosing:       "2024-03-30",
				nextDue:           "2024-03-10",
				secondNextClosing: "2024-04-30",
				secondNextDue:     "2024-04-10",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Boundaries(tt.closingDay, tt.dueDay, calendar.MustParse(tt.reference))
			gotStrings := boundaries{
				prevClosing:       got.PrevClosing.String(),
				prevDue:           got.PrevDue.String(),
				nextClosing:       got.NextClosing.String(),
				nextDue:           got.NextDue.String(),
				secondNextClosing: got.SecondNextClosing.String(),
				secondNextDue:     got.SecondNextDue.String(),
			}
			if gotStrings != tt.want {
				t.Errorf("Boundaries(%d, %d, %s) =\n  %+v\nwant\n  %+v",
					tt.closingDay, tt.dueDay, tt.reference, gotStrings, tt.want)
			}
		})
	}
}

func TestBoundariesOrderingProperty(t *testing.T) {
	references := []calendar.Date{
		calendar.MustParse("2024-01-01"),
		calendar.MustParse("2024-02-29"),
		calendar.MustParse("2024-06-15"),
		calendar.MustParse("2024-12-31"),
		calendar.MustParse("2023-02-28"),
	}

	for closingDay := 1; closingDay <= 30; closingDay++ {
		for dueDay := 1; dueDay <= 30; dueDay++ {
			for _, reference := range references {
				name := fmt.Sprintf("closing=%d due=%d ref=%s", closingDay, dueDay, reference)
				b := Boundaries(closingDay, dueDay, reference)

				if !b.PrevClosing.Before(b.NextClosing) {
					t.Fatalf("%s: prev closing %s not before next closing %s", name, b.PrevClosing, b.NextClosing)
				}
				if !b.NextClosing.Before(b.SecondNextClosing) {
					t.Fatalf("%s: next closing %s not before second next closing %s", name, b.NextClosing, b.SecondNextClosing)
				}
				if !b.PrevDue.Before(b.NextDue) {
					t.Fatalf("%s: prev due %s not before next due %s", name, b.PrevDue, b.NextDue)
				}
				if !b.NextDue.Before(b.SecondNextDue) {
					t.Fatalf("%s: next due %s not before second next due %s", name, b.NextDue, b.SecondNextDue)
				}
				if reference.Day < dueDay && !b.NextDue.After(reference) {
					t.Fatalf("%s: next due %s not after reference", name, b.NextDue)
				}

				// Each closing is offset from its paired due date by the
				// fixed diff, counted in days.
				diff := dueDay - closingDay
				if got := b.NextClosing.AddDays(diff); !got.Equal(b.NextDue) {
					t.Fatalf("%s: next pair broken: closing %s + %d days = %s, want %s",
						name, b.NextClosing, diff, got, b.NextDue)
				}
				if got := b.PrevClosing.AddDays(diff); !got.Equal(b.PrevDue) {
					t.Fatalf("%s: prev pair broken: closing %s + %d days = %s, want %s",
						name, b.PrevClosing, diff, got, b.PrevDue)
				}
			}
		}
	}
}
