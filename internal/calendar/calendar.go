// Package calendar provides the in-game date math: leap-year-aware
// year/month/day derivation, day-of-week, and season banding.
// All date computation in the simulation goes through DateFor; the
// epoch offset lives here and nowhere else.
package calendar

// EpochOffsetDays shifts the play-day counter onto the in-fiction
// calendar so that day 1 of play is year 1, April 1
// (January 31 + February 28 + March 31 = 90 days).
const EpochOffsetDays = 90

// Season is a 3-month banding of the calendar.
type Season int

const (
	Spring Season = iota
	Summer
	Autumn
	Winter
)

// String returns a human-readable season name.
func (s Season) String() string {
	switch s {
	case Spring:
		return "Spring"
	case Summer:
		return "Summer"
	case Autumn:
		return "Autumn"
	case Winter:
		return "Winter"
	default:
		return "Unknown"
	}
}

// Weekday is the day-of-week cycle. Day 1 of play is a Monday.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// String returns a human-readable weekday name.
func (w Weekday) String() string {
	names := [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	if w < 0 || int(w) >= len(names) {
		return "Unknown"
	}
	return names[w]
}

// Date is a fully derived in-game calendar date.
type Date struct {
	Year      int
	Month     int // 1-12
	Day       int // 1-31
	Weekday   Weekday
	Season    Season
	TotalDays int // The play-day counter this date was derived from.
}

// IsLeapYear reports whether a year is a leap year under the standard
// rule: divisible by 4, not by 100, unless by 400.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// DaysInYear returns 365 or 366.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// DaysInMonth returns the length of a month, with February adjusted
// for leap years.
func DaysInMonth(year, month int) int {
	switch month {
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

// SeasonOf maps a month number to its season: Mar-May spring,
// Jun-Aug summer, Sep-Nov autumn, Dec-Feb winter.
func SeasonOf(month int) Season {
	switch {
	case month >= 3 && month <= 5:
		return Spring
	case month >= 6 && month <= 8:
		return Summer
	case month >= 9 && month <= 11:
		return Autumn
	default:
		return Winter
	}
}

// DateFor derives the full calendar date for a play-day counter
// (totalDays >= 1). The epoch offset is applied here so callers never
// handle it themselves. Weekday cycles from Monday on play day 1.
func DateFor(totalDays int) Date {
	remaining := totalDays + EpochOffsetDays - 1 // 0-indexed absolute day

	year := 1
	for remaining >= DaysInYear(year) {
		remaining -= DaysInYear(year)
		year++
	}

	month := 1
	for remaining >= DaysInMonth(year, month) {
		remaining -= DaysInMonth(year, month)
		month++
	}

	return Date{
		Year:      year,
		Month:     month,
		Day:       remaining + 1,
		Weekday:   Weekday((totalDays - 1) % 7),
		Season:    SeasonOf(month),
		TotalDays: totalDays,
	}
}
