// Package calendar computes ECB market working days: weekends plus the
// TARGET closing days on which no reference rates are published.
package calendar

import "time"

// date returns a UTC midnight time for the given day.
func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// EasterSunday returns Western (Gregorian) Easter Sunday for a year, using
// the Meeus/Jones/Butcher algorithm.
func EasterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	o := h + l - 7*m + 114

	return date(year, time.Month(o/31), o%31+1)
}

// EasterMonday is the day after Easter Sunday.
func EasterMonday(year int) time.Time {
	return EasterSunday(year).AddDate(0, 0, 1)
}

// GoodFriday is two days before Easter Sunday.
func GoodFriday(year int) time.Time {
	return EasterSunday(year).AddDate(0, 0, -2)
}

// ClosingDays returns the TARGET closing days for a year: New Year's Day,
// Good Friday, Easter Monday, Labour Day, Christmas Day and the Christmas
// holiday on the 26th.
//
// See https://www.ecb.europa.eu/ecb/contacts/working-hours/html/index.en.html
func ClosingDays(year int) []time.Time {
	return []time.Time{
		date(year, time.January, 1),
		GoodFriday(year),
		EasterMonday(year),
		date(year, time.May, 1),
		date(year, time.December, 25),
		date(year, time.December, 26),
	}
}

// IsWeekend reports whether a date falls on a Saturday or Sunday.
func IsWeekend(day time.Time) bool {
	return day.Weekday() == time.Saturday || day.Weekday() == time.Sunday
}

// IsWorkingDay reports whether a date is neither a weekend nor one of the
// given closing days. Dates are compared by calendar day.
func IsWorkingDay(day time.Time, closingDays []time.Time) bool {
	if IsWeekend(day) {
		return false
	}
	for _, closed := range closingDays {
		if sameDay(day, closed) {
			return false
		}
	}
	return true
}

// WorkingDays returns every working day between start and end, inclusive.
// A reversed range is treated the same as the ordered one.
func WorkingDays(start, end time.Time) []time.Time {
	if start.After(end) {
		return WorkingDays(end, start)
	}

	var closingDays []time.Time
	for _, year := range YearsBetween(start, end) {
		closingDays = append(closingDays, ClosingDays(year)...)
	}

	var days []time.Time
	for day := date(start.Year(), start.Month(), start.Day()); !day.After(end); day = day.AddDate(0, 0, 1) {
		if IsWorkingDay(day, closingDays) {
			days = append(days, day)
		}
	}
	return days
}

// YearsBetween returns every year in the range between two dates, inclusive.
func YearsBetween(start, end time.Time) []int {
	if start.After(end) {
		return YearsBetween(end, start)
	}

	var years []int
	for year := start.Year(); year <= end.Year(); year++ {
		years = append(years, year)
	}
	return years
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
