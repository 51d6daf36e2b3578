package timeago

import "fmt"

// thresholds holds the exclusive upper bound, in seconds, of each unit.
// Years have no upper bound.
var thresholds = []struct {
	unit  Unit
	below int64
}{
	{Seconds, MinuteSeconds},
	{Minutes, HourSeconds},
	{Hours, DaySeconds},
	{Days, WeekSeconds},
	{Weeks, MonthSeconds},
	{Months, YearSeconds},
}

// Select picks the largest unit whose lower bound elapsed reaches and
// returns the truncated number of whole units.
func Select(elapsed int64) (Unit, int64, error) {
	if elapsed < 0 {
		return Seconds, 0, fmt.Errorf("%w: %ds", ErrNegativeElapsed, elapsed)
	}

	unit := Years
	for _, t := range thresholds {
		if elapsed < t.below {
			unit = t.unit
			break
		}
	}

	return unit, elapsed / unit.Seconds(), nil
}
