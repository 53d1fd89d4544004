package clock

import "time"

// Clock supplies current time so auction logic can be tested without
// wall-clock dependence. Implementations must be safe for concurrent reads.
type Clock interface {
	Now() time.Time
}

// Real implements Clock using actual system time.
type Real struct{}

func (Real) Now() time.Time {
	return time.Now().UTC()
}

// Mock implements Clock for testing.
type Mock struct {
	CurrentTime time.Time
}

func NewMock(t time.Time) *Mock {
	return &Mock{CurrentTime: t}
}

func (m *Mock) Now() time.Time {
	return m.CurrentTime
}

func (m *Mock) Advance(d time.Duration) {
	m.CurrentTime = m.CurrentTime.Add(d)
}

func (m *Mock) Set(t time.Time) {
	m.CurrentTime = t
}
