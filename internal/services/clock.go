package services

import "time"

// Clock supplies "today" to the scheduling engine so no pure function reads
// the system time on its own.
type Clock interface {
	Now() time.Time
}

type SystemClock struct {
	Location *time.Location
}

func (clock SystemClock) Now() time.Time {
	location := clock.Location
	if location == nil {
		location = time.UTC
	}
	return time.Now().In(location)
}

type FixedClock struct {
	At time.Time
}

func (clock FixedClock) Now() time.Time {
	return clock.At
}
