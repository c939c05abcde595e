package calendar

import (
	"encoding/json"
	"testing"
	"time"
)

func TestSafeDayInMonth(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
		day   int
		want  int
	}{
		{"valid day untouched", 2024, time.January, 15, 15},
		{"day 30 in february clamps to 29 on leap year", 2024, time.February, 30, 29},
		{"day 30 in february clamps to 28 off leap year", 2023, time.February, 30, 28},
		{"day 31 in april clamps to 30", 2024, time.April, 31, 30},
		{"last day of month untouched", 2024, time.February, 29, 29},
		{"day below one clamps to one", 2024, time.June, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SafeDayInMonth(tt.year, tt.month, tt.day); got != tt.want {
				t.Errorf("SafeDayInMonth(%d, %v, %d) = %d, want %d", tt.year, tt.month, tt.day, got, tt.want)
			}
		})
	}
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name string
		date string
		n    int
		want string
	}{
		{"simple forward", "2024-03-15", 1, "2024-04-15"},
		{"year rollover forward", "2024-12-10", 1, "2025-01-10"},
		{"year rollover backward", "2024-01-10", -1, "2023-12-10"},
		{"clamp january 31 into february", "2024-01-31", 1, "2024-02-29"},
		{"clamp into non-leap february", "2023-01-30", 1, "2023-02-28"},
		{"multiple years forward", "2024-06-30", 25, "2026-07-30"},
		{"multiple years backward", "2024-06-30", -25, "2022-05-30"},
		{"zero is identity", "2024-02-29", 0, "2024-02-29"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MustParse(tt.date).AddMonths(tt.n)
			if got.String() != tt.want {
				t.Errorf("%s.AddMonths(%d) = %s, want %s", tt.date, tt.n, got, tt.want)
			}
		})
	}
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		name string
		date string
		n    int
		want string
	}{
		{"within month", "2024-03-10", 5, "2024-03-15"},
		{"across month end", "2024-01-30", 3, "2024-02-02"},
		{"across leap day", "2024-02-28", 2, "2024-03-01"},
		{"backward across month start", "2024-03-02", -5, "2024-02-26"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MustParse(tt.date).AddDays(tt.n)
			if got.String() != tt.want {
				t.Errorf("%s.AddDays(%d) = %s, want %s", tt.date, tt.n, got, tt.want)
			}
		})
	}
}

func TestDateComparison(t *testing.T) {
	earlier := MustParse("2024-01-31")
	later := MustParse("2024-02-01")

	if !earlier.Before(later) {
		t.Error("expected 2024-01-31 to be before 2024-02-01")
	}
	if !later.After(earlier) {
		t.Error("expected 2024-02-01 to be after 2024-01-31")
	}
	if !earlier.Equal(MustParse("2024-01-31")) {
		t.Error("expected equal dates to compare equal")
	}
	if earlier.SameMonth(later) {
		t.Error("expected different months to not match")
	}
	if !later.SameMonth(MustParse("2024-02-29")) {
		t.Error("expected dates in the same month to match")
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	original := MustParse("2024-02-29")

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != `"2024-02-29"` {
		t.Errorf("expected ISO string encoding, got %s", data)
	}

	var decoded Date
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if !decoded.Equal(original) {
		t.Errorf("round trip changed date: got %s, want %s", decoded, original)
	}
}

func TestParseRejectsInvalidInput(t *testing.T) {
	for _, value := range []string{"", "2024-13-01", "2024-02-30", "20240201", "not-a-date"} {
		if _, err := Parse(value); err == nil {
			t.Errorf("expected Parse(%q) to fail", value)
		}
	}
}

func TestMonthKey(t *testing.T) {
	if got := MustParse("2024-02-29").MonthKey(); got != "2024-02" {
		t.Errorf("MonthKey() = %s, want 2024-02", got)
	}
}
