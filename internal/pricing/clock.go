package pricing

import "time"

// Clock supplies the instant used for dynamic pricing.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in a fixed location.
type SystemClock struct {
	Location *time.Location
}

func (c SystemClock) Now() time.Time {
	now := time.Now()
	if c.Location != nil {
		return now.In(c.Location)
	}
	return now
}

// FixedClock always returns the same instant.
type FixedClock time.Time

func (c FixedClock) Now() time.Time {
	return time.Time(c)
}

// AtHour returns a FixedClock set to today's date at the given hour, in UTC.
func AtHour(hour int) FixedClock {
	y, m, d := time.Now().UTC().Date()
	return FixedClock(time.Date(y, m, d, hour, 0, 0, 0, time.UTC))
}
