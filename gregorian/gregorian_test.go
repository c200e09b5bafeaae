package gregorian

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		year int
		want bool
	}{
		{1601, false},
		{1604, true},
		{1700, false}, // divisible by 100
		{1900, false},
		{2000, true}, // divisible by 400
		{2023, false},
		{2024, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsLeapYear(tt.year), "%d", tt.year)
	}
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, DaysInMonth(January, 2023))
	assert.Equal(t, 28, DaysInMonth(February, 2023))
	assert.Equal(t, 29, DaysInMonth(February, 2024))
	assert.Equal(t, 30, DaysInMonth(April, 2023))
	assert.Equal(t, 31, DaysInMonth(December, 2023))

	// the twelve months of a non-leap year must cover exactly 365 days
	total := 0
	for m := January; m <= December; m++ {
		total += DaysInMonth(m, 2023)
	}
	assert.Equal(t, DaysInNonLeapYear, total)

	assert.Panics(t, func() { DaysInMonth(-1, 2023) })
	assert.Panics(t, func() { DaysInMonth(December+1, 2023) })
}

func TestLeapYearsSinceEpoch(t *testing.T) {
	assert.Equal(t, 0, LeapYearsSinceEpoch(1601))
	assert.Equal(t, 0, LeapYearsSinceEpoch(1604)) // 1604 itself not counted
	assert.Equal(t, 1, LeapYearsSinceEpoch(1605))
	assert.Equal(t, leapsIn400Years, LeapYearsSinceEpoch(2001))

	assert.Panics(t, func() { LeapYearsSinceEpoch(1600) })
}

func TestFromEpoch_Zero(t *testing.T) {
	d := FromEpoch(0)
	assert.Equal(t, DateTime{Year: EpochYear, Month: January}, d)
	assert.Zero(t, d.EpochSeconds())
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		d    DateTime
	}{
		{
			name: "first second of the epoch",
			d:    DateTime{Year: 1601, Month: January},
		},
		{
			name: "last second of the first year",
			d: DateTime{Year: 1601, Month: December, Day: 30,
				DayOfYear: 364, Hours: 23, Minutes: 59, Seconds: 59},
		},
		{
			name: "leap day of the first leap year",
			d:    DateTime{Year: 1604, Month: February, Day: 28, DayOfYear: 59},
		},
		{
			// the last day of a 4-year span divides out as one span
			// too many unless clamped
			name: "last day of the first leap year",
			d: DateTime{Year: 1604, Month: December, Day: 30,
				DayOfYear: 365, Hours: 12},
		},
		{
			name: "century non-leap year",
			d:    DateTime{Year: 1700, Month: March, Day: 0, DayOfYear: 59},
		},
		{
			name: "leap day of a 400th year",
			d:    DateTime{Year: 2000, Month: February, Day: 28, DayOfYear: 59},
		},
		{
			// same clamping concern, at the end of a whole 400-year cycle
			name: "last day of a 400-year cycle",
			d: DateTime{Year: 2000, Month: December, Day: 30,
				DayOfYear: 365, Hours: 23, Minutes: 59, Seconds: 59},
		},
		{
			name: "an ordinary day",
			d: DateTime{Year: 2024, Month: August, Day: 29,
				DayOfYear: 242, Hours: 13, Minutes: 37, Seconds: 42},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			secs := tt.d.EpochSeconds()
			assert.Equal(t, tt.d, FromEpoch(secs))
		})
	}
}

// TestAgainstTimePackage checks both conversion directions against
// the standard library for a pile of random dates.
func TestAgainstTimePackage(t *testing.T) {
	epoch := time.Date(EpochYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 2000; i++ {
		year := EpochYear + rng.Intn(800)
		month := Month(rng.Intn(MonthsInYear))
		day := rng.Intn(DaysInMonth(month, year))
		d := DateTime{
			Year:      year,
			Month:     month,
			Day:       day,
			DayOfYear: DayOfYear(year, month, day),
			Hours:     rng.Intn(24),
			Minutes:   rng.Intn(60),
			Seconds:   rng.Intn(60),
		}

		ref := time.Date(d.Year, time.Month(d.Month)+1, d.Day+1,
			d.Hours, d.Minutes, d.Seconds, 0, time.UTC)
		want := uint64(ref.Unix() - epoch.Unix())

		secs := d.EpochSeconds()
		require.Equal(t, want, secs, "%+v", d)
		require.Equal(t, d, FromEpoch(secs), "%+v", d)
	}
}

func TestMonthString(t *testing.T) {
	assert.Equal(t, "January", January.String())
	assert.Equal(t, "December", December.String())
	assert.Equal(t, "<invalid gregorian.Month>", Month(12).String())
}
