package model

import "time"

// Clock supplies the current time. The scheduling core takes its notion of
// "today" from an injected Clock so that deadline math stays deterministic
// under test.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant.
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time { return c.T }
