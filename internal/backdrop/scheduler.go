package backdrop

import (
	"sync"
	"time"
)

const (
	// maxFrameDeltaMs caps the integration step after a stall (backgrounded
	// window, long GC pause) at the equivalent of 24fps.
	maxFrameDeltaMs = 40.0
	baseFrameMs     = 1000.0 / 60.0
)

// NormalizedDelta converts elapsed wall time to 60fps-normalized units,
// clamped to maxFrameDeltaMs.
func NormalizedDelta(elapsed time.Duration) float64 {
	ms := float64(elapsed) / float64(time.Millisecond)
	if ms < 0 {
		ms = 0
	}
	if ms > maxFrameDeltaMs {
		ms = maxFrameDeltaMs
	}
	return ms / baseFrameMs
}

// FrameFunc is one frame body, invoked with the frame timestamp.
type FrameFunc func(now time.Time)

// Token identifies a running frame loop. After Cancel returns, no further
// frame executes.
type Token struct {
	stop chan struct{}
	done chan struct{}
	once sync.Once
}

// Scheduler starts and cancels a self-rescheduling frame loop.
type Scheduler interface {
	Start(frame FrameFunc) *Token
	Cancel(t *Token)
}

// TickerScheduler drives frames from a wall-clock ticker. It stands in for a
// vsync-aligned callback on hosts that have none (headless runs, tests).
// Frames never overlap: the next tick is consumed only after the current
// frame body returns.
type TickerScheduler struct {
	// Interval between frames; defaults to 1/60s when zero.
	Interval time.Duration
}

func (s *TickerScheduler) Start(frame FrameFunc) *Token {
	interval := s.Interval
	if interval <= 0 {
		interval = time.Second / 60
	}
	t := &Token{stop: make(chan struct{}), done: make(chan struct{})}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		defer close(t.done)
		for {
			select {
			case <-t.stop:
				return
			case now := <-ticker.C:
				frame(now)
			}
		}
	}()
	return t
}

// Cancel stops the loop and waits for any in-flight frame to finish, so the
// caller can tear down frame-visible state immediately after.
func (s *TickerScheduler) Cancel(t *Token) {
	if t == nil {
		return
	}
	t.once.Do(func() { close(t.stop) })
	<-t.done
}
