package time

import (
	"time"

	"github.com/amirhossein-jamali/meta-model/internal/domain/port/core"
)

// RealTimeProvider reads the system clock in UTC
type RealTimeProvider struct{}

func NewRealTimeProvider() core.TimeProvider {
	return RealTimeProvider{}
}

func (RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}

func (RealTimeProvider) Since(t time.Time) time.Duration {
	return time.Since(t)
}

// FixedTimeProvider always reports the same instant
type FixedTimeProvider struct {
	At time.Time
}

func NewFixedTimeProvider(at time.Time) core.TimeProvider {
	return FixedTimeProvider{At: at}
}

func (p FixedTimeProvider) Now() time.Time {
	return p.At
}

func (p FixedTimeProvider) Since(t time.Time) time.Duration {
	return p.At.Sub(t)
}
