package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMock(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clk := NewMock(base)

	assert.Equal(t, base, clk.Now())

	clk.Advance(90 * time.Second)
	assert.Equal(t, base.Add(90*time.Second), clk.Now())

	later := base.Add(time.Hour)
	clk.Set(later)
	assert.Equal(t, later, clk.Now())
}

func TestRealReturnsUTC(t *testing.T) {
	now := Real{}.Now()
	assert.Equal(t, time.UTC, now.Location())
}
