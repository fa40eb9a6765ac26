package clock

import "time"

// Clock provides the current time. Crop readiness is derived by comparing the
// server-supplied ready timestamp against this clock, so tests can pin it.
type Clock interface {
	Now() time.Time
}

// Real implements Clock using the system clock
type Real struct{}

// New creates a Real clock
func New() *Real {
	return &Real{}
}

// Now returns the current system time
func (c *Real) Now() time.Time {
	return time.Now()
}

// Mock is a manually-advanced Clock for tests
type Mock struct {
	CurrentTime time.Time
}

var _ Clock = (*Mock)(nil)

// NewMock creates a Mock set to the given time
func NewMock(t time.Time) *Mock {
	return &Mock{CurrentTime: t}
}

// Now returns the mocked current time
func (c *Mock) Now() time.Time {
	return c.CurrentTime
}

// Advance moves the clock forward by d
func (c *Mock) Advance(d time.Duration) {
	c.CurrentTime = c.CurrentTime.Add(d)
}
