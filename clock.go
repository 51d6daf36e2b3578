package timeago

import "time"

// Clock provides the current time. Use SystemClock in production and
// FixedClock for reproducible output.
type Clock interface {
	Now() time.Time
}

// SystemClock returns the actual current time.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always reports the same instant.
type FixedClock time.Time

func (c FixedClock) Now() time.Time { return time.Time(c) }

// ClockFunc adapts a function to the Clock interface
type ClockFunc func() time.Time

func (fn ClockFunc) Now() time.Time { return fn() }

// ElapsedSeconds returns the whole seconds between past and now.
func ElapsedSeconds(clock Clock, past time.Time) int64 {
	if clock == nil {
		clock = SystemClock{}
	}
	return int64(clock.Now().Sub(past) / time.Second)
}
