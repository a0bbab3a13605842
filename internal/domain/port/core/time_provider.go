package core

import "time"

// TimeProvider supplies the current time, so timestamps written to records can be fixed in tests
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}
