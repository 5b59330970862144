package domain

import "time"

// Clock supplies the current time for deadline comparisons. The host
// guarantees values are monotonically non-decreasing across operations.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }
