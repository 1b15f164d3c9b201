package transcripts

import "time"

// TimeProvider supplies the clock so tests can pin timestamps
type TimeProvider interface {
	Now() time.Time
}

// UTCTimeProvider is the production clock
type UTCTimeProvider struct{}

// Now returns the current UTC time
func (UTCTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
