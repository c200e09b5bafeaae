// Package gregorian converts between Gregorian calendar date/times
// and a count of seconds since an epoch of Jan 1, 1601.
//
// 1601 is the first year of a 400-year Gregorian leap cycle, which
// keeps the closed-form span arithmetic below simple. It is the same
// epoch Windows FILETIME uses.
//
// Everything here is pure arithmetic: no time zones, no leap
// seconds, no clocks.
package gregorian

// EpochYear is year zero of the epoch. Dates before it are not
// representable.
const EpochYear = 1601

const (
	MonthsInYear      = 12
	DaysInNonLeapYear = 365

	SecondsInMinute = 60
	SecondsInHour   = 60 * SecondsInMinute
	SecondsInDay    = 24 * SecondsInHour
)

// In each span of 400 years there are 97 leap years:
// 100 are divisible by 4, but 4 of those are divisible by 100,
// and one of them is divisible by 400.
const (
	leapsIn400Years = 400/4 - 400/100 + 400/400
	leapsIn100Years = 100/4 - 1

	daysIn400Years = 400*DaysInNonLeapYear + leapsIn400Years
	daysIn100Years = 100*DaysInNonLeapYear + leapsIn100Years
	daysIn4Years   = 4*DaysInNonLeapYear + 1

	secondsIn400Years = uint64(daysIn400Years) * SecondsInDay
	secondsIn100Years = uint64(daysIn100Years) * SecondsInDay
	secondsIn4Years   = uint64(daysIn4Years) * SecondsInDay
	secondsIn1Year    = uint64(DaysInNonLeapYear) * SecondsInDay
)

// Month numbers the months of the year starting from zero.
type Month int

const (
	January Month = iota
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

var monthNames = [MonthsInYear]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

func (m Month) String() string {
	if m < January || m > December {
		return "<invalid gregorian.Month>"
	}
	return monthNames[m]
}

// note: February in a leap year is handled in DaysInMonth
var daysInMonth = [MonthsInYear]int{
	31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31,
}

// DateTime is a calendar date and time of day.
// All fields count from zero: Day 0 is the first day of the month,
// and DayOfYear 365 is the last day of a leap year.
type DateTime struct {
	Year      int
	Month     Month
	Day       int
	DayOfYear int
	Hours     int
	Minutes   int
	Seconds   int
}

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	// Years divisible by 400 are leap years,
	// other years divisible by 100 are not,
	// remaining years divisible by 4 are.
	if year%400 == 0 {
		return true
	}
	if year%100 == 0 {
		return false
	}
	return year%4 == 0
}

// DaysInMonth returns the number of days in a month.
// The year is needed for February's leap day.
// DaysInMonth panics if month is out of range.
func DaysInMonth(month Month, year int) int {
	if month < January || month > December {
		panic("gregorian: month out of range")
	}
	days := daysInMonth[month]
	if month == February && IsLeapYear(year) {
		days++
	}
	return days
}

// LeapYearsSinceEpoch counts the leap years in [EpochYear, year).
// It panics if year is before the epoch.
func LeapYearsSinceEpoch(year int) int {
	if year < EpochYear {
		panic("gregorian: year before epoch")
	}
	delta := year - EpochYear
	return delta/4 - delta/100 + delta/400
}

// DayOfYear returns the zero-based day of the year for a date.
// It panics if the date is out of range.
func DayOfYear(year int, month Month, day int) int {
	if day < 0 || day >= DaysInMonth(month, year) {
		panic("gregorian: day of month out of range")
	}

	dayCount := day
	for m := January; m < month; m++ {
		dayCount += DaysInMonth(m, year)
	}
	return dayCount
}

// FromEpoch converts a count of seconds since the epoch to a
// calendar date and time.
//
// The count is peeled apart span by span: whole 400-year cycles,
// then 100-year and 4-year cycles, then years, days, and the time of
// day. The 100-year and 1-year span counts are clamped because the
// final leap day of a cycle would otherwise divide out as one span
// too many.
func FromEpoch(secondsSinceEpoch uint64) DateTime {
	seconds := secondsSinceEpoch

	span400 := seconds / secondsIn400Years
	seconds -= span400 * secondsIn400Years

	span100 := seconds / secondsIn100Years
	if span100 > 3 {
		// Dec 31 of the 400th year, past the cycle's extra leap day
		span100 = 3
	}
	seconds -= span100 * secondsIn100Years

	span4 := seconds / secondsIn4Years
	seconds -= span4 * secondsIn4Years

	span1 := seconds / secondsIn1Year
	if span1 > 3 {
		// the 4th year's leap day
		span1 = 3
	}
	seconds -= span1 * secondsIn1Year

	year := int(span400*400+span100*100+span4*4+span1) + EpochYear

	dayOfYear := int(seconds / SecondsInDay)
	seconds -= uint64(dayOfYear) * SecondsInDay

	month := January
	dayCount := dayOfYear
	for dayCount >= DaysInMonth(month, year) {
		dayCount -= DaysInMonth(month, year)
		month++
	}

	hours := int(seconds / SecondsInHour)
	seconds -= uint64(hours) * SecondsInHour

	minutes := int(seconds / SecondsInMinute)
	seconds -= uint64(minutes) * SecondsInMinute

	return DateTime{
		Year:      year,
		Month:     month,
		Day:       dayCount,
		DayOfYear: dayOfYear,
		Hours:     hours,
		Minutes:   minutes,
		Seconds:   int(seconds),
	}
}

// EpochSeconds converts the date and time back to a count of seconds
// since the epoch. It panics if the date is before the epoch or out
// of range.
func (d DateTime) EpochSeconds() uint64 {
	days := uint64(d.Year-EpochYear) * DaysInNonLeapYear
	days += uint64(LeapYearsSinceEpoch(d.Year))
	days += uint64(DayOfYear(d.Year, d.Month, d.Day))

	return days*SecondsInDay +
		uint64(d.Hours)*SecondsInHour +
		uint64(d.Minutes)*SecondsInMinute +
		uint64(d.Seconds)
}
