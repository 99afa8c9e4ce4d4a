package cycle

import "time"

const layoutClock = "15:04"

// DerivedHours converts wall clock start/end times and an optional break
// into an hours value for CUSTOM, TIME_OFF and COURSE_TRAINING entries.
// An end before the start is read as crossing midnight. Malformed or
// missing input degrades to 0 rather than propagating an error.
func DerivedHours(start, end string, breakMinutes *int) float64 {
	if start == "" || end == "" {
		return 0
	}
	s, err := time.Parse(layoutClock, start)
	if err != nil {
		return 0
	}
	e, err := time.Parse(layoutClock, end)
	if err != nil {
		return 0
	}

	d := e.Sub(s)
	if d < 0 {
		d += 24 * time.Hour
	}
	if breakMinutes != nil {
		d -= time.Duration(*breakMinutes) * time.Minute
	}
	if d < 0 {
		return 0
	}
	return d.Hours()
}
