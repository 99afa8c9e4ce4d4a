package cycle

import (
	"math"
	"time"
)

// LayoutISO is the date layout used for anchor dates and CLI date flags.
const LayoutISO = "2006-01-02"

// midnight truncates t to local midnight so day arithmetic is not skewed
// by wall clock time.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DateToCycleDay maps a calendar date onto the cycle grid tiled from the
// anchor date. The index is 0 for the anchor cycle, negative before it;
// the day is always 1..CycleDays regardless of sign.
func DateToCycleDay(anchor, date time.Time) (index, day int) {
	// Rounding instead of truncating keeps the diff exact across DST
	// transitions, where a calendar day is not 24 hours long.
	diffDays := int(math.Round(midnight(date).Sub(midnight(anchor)).Hours() / 24))
	index = floorDiv(diffDays, CycleDays)
	day = ((diffDays%CycleDays)+CycleDays)%CycleDays + 1
	return index, day
}

// CurrentIndex returns the cycle index containing now.
func CurrentIndex(anchor, now time.Time) int {
	index, _ := DateToCycleDay(anchor, now)
	return index
}

// CycleStart returns the first calendar day of the cycle at index.
func CycleStart(anchor time.Time, index int) time.Time {
	return midnight(anchor).AddDate(0, 0, index*CycleDays)
}

// CycleEnd returns the last calendar day of the cycle at index.
func CycleEnd(anchor time.Time, index int) time.Time {
	return CycleStart(anchor, index).AddDate(0, 0, CycleDays-1)
}

// DayDate returns the calendar date of a 1-based day within the cycle at
// index.
func DayDate(anchor time.Time, index, day int) time.Time {
	return CycleStart(anchor, index).AddDate(0, 0, day-1)
}

// floorDiv divides rounding toward negative infinity, so dates before the
// anchor land in negative cycle indices instead of being pulled to zero.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
