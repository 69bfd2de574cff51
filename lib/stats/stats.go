package stats

import (
	"time"
)

// Stats keeps the frame clock of the render loop.
type Stats struct {
	FPS    uint64
	Frames uint64
	Uptime time.Duration

	frameCounter uint64
	frameTimer   time.Time
	last         time.Time
	start        time.Time
	now          func() time.Time
}

func New() *Stats {
	return newWithClock(time.Now)
}

func newWithClock(now func() time.Time) *Stats {
	s := &Stats{now: now}
	s.start = now()
	s.frameTimer = s.start
	return s
}

// Update is called once per presented frame. It returns the time since the
// previous frame, which is 0 for the first one, and reports whether FPS was
// refreshed.
func (s *Stats) Update() (dt time.Duration, fpsUpdated bool) {
	// acquire timestamp exactly once to ensure we're not accumulating error
	now := s.now()

	if !s.last.IsZero() {
		dt = now.Sub(s.last)
	}
	s.last = now

	s.Frames++
	s.frameCounter++
	if now.Sub(s.frameTimer) >= time.Second {
		s.FPS = s.frameCounter
		s.frameCounter = 0
		s.frameTimer = now
		fpsUpdated = true
	}

	s.Uptime = now.Sub(s.start)
	return dt, fpsUpdated
}

// Elapsed is the time since the loop started, as the samples want it.
func (s *Stats) Elapsed() float32 {
	return float32(s.now().Sub(s.start).Seconds())
}
