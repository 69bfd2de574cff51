package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func TestUpdate(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	s := newWithClock(clock.now)

	dt, updated := s.Update()
	assert.Zero(t, dt)
	assert.False(t, updated)

	for range 59 {
		clock.advance(16 * time.Millisecond)
		dt, updated = s.Update()
		assert.Equal(t, 16*time.Millisecond, dt)
		assert.False(t, updated)
	}

	clock.advance(100 * time.Millisecond)
	_, updated = s.Update()
	assert.True(t, updated)
	assert.Equal(t, uint64(61), s.FPS)
	assert.Equal(t, uint64(61), s.Frames)
	assert.Equal(t, 1044*time.Millisecond, s.Uptime)
}

func TestElapsed(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	s := newWithClock(clock.now)

	clock.advance(2500 * time.Millisecond)
	assert.InDelta(t, 2.5, s.Elapsed(), 1e-6)
}
