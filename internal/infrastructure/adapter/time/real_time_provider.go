package time

import (
	"time"

	"github.com/amirhossein-jamali/currency-detector/internal/domain/port/core"
)

// RealTimeProvider reads the system clock. Times are UTC and truncated to
// microseconds so values survive a round trip through PostgreSQL unchanged.
type RealTimeProvider struct{}

// NewRealTimeProvider creates a new real time provider
func NewRealTimeProvider() core.TimeProvider {
	return RealTimeProvider{}
}

// Now returns the current time
func (RealTimeProvider) Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// Since returns the time elapsed since t
func (RealTimeProvider) Since(t time.Time) core.Duration {
	return core.Duration(time.Since(t))
}
