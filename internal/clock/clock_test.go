package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMock_AdvanceMovesTime(t *testing.T) {
	start := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	mock := NewMock(start)

	assert.Equal(t, start, mock.Now())

	mock.Advance(10 * time.Minute)
	assert.Equal(t, start.Add(10*time.Minute), mock.Now())
}

func TestReal_TracksSystemClock(t *testing.T) {
	c := New()
	before := time.Now()
	got := c.Now()
	after := time.Now()

	assert.False(t, got.Before(before))
	assert.False(t, got.After(after))
}
