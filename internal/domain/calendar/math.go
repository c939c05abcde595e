package calendar

import "time"

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	// Day zero of the following month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// SafeDayInMonth clamps day into [1, DaysInMonth(year, month)]. A fixed
// day-of-month such as a card's closing day stays valid when projected onto
// a shorter month (day 30 in February becomes the last day of February).
func SafeDayInMonth(year int, month time.Month, day int) int {
	if day < 1 {
		return 1
	}
	if last := DaysInMonth(year, month); day > last {
		return last
	}
	return day
}

// AddMonths shifts the date by n calendar months, rolling the year in either
// direction. The day-of-month is preserved when valid in the target month and
// clamped otherwise, so January 31 plus one month is the last day of February.
func (d Date) AddMonths(n int) Date {
	months := d.Year*12 + int(d.Month) - 1 + n
	year := months / 12
	month := time.Month(months%12 + 1)
	if months < 0 && months%12 != 0 {
		year--
		month = time.Month(months%12 + 13)
	}
	return NewDate(year, month, d.Day)
}

// AddDays shifts the date by n days using exact day-count arithmetic.
func (d Date) AddDays(n int) Date {
	return FromTime(d.ToTime().AddDate(0, 0, n))
}
