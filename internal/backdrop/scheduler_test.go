package backdrop

import (
	"math"
	"sync/atomic"
	"testing"
	"time"
)

func TestNormalizedDelta(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		want    float64
	}{
		{"one 60fps frame", 16666667 * time.Nanosecond, 1},
		{"half frame", 8333333 * time.Nanosecond, 0.5},
		{"at the clamp", 40 * time.Millisecond, 2.4},
		{"beyond the clamp", 500 * time.Millisecond, 2.4},
		{"zero", 0, 0},
		{"negative clock skew", -time.Second, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizedDelta(tt.elapsed)
			if math.Abs(got-tt.want) > 1e-3 {
				t.Fatalf("NormalizedDelta(%v) = %v, want %v", tt.elapsed, got, tt.want)
			}
		})
	}
}

func TestTickerSchedulerRunsFrames(t *testing.T) {
	sched := &TickerScheduler{Interval: time.Millisecond}
	var frames atomic.Int64
	token := sched.Start(func(time.Time) { frames.Add(1) })
	defer sched.Cancel(token)

	deadline := time.Now().Add(2 * time.Second)
	for frames.Load() < 3 {
		if time.Now().After(deadline) {
			t.Fatalf("only %d frames ran before deadline", frames.Load())
		}
		time.Sleep(time.Millisecond)
	}
}

func TestCancelStopsFurtherFrames(t *testing.T) {
	sched := &TickerScheduler{Interval: time.Millisecond}
	var frames atomic.Int64
	token := sched.Start(func(time.Time) { frames.Add(1) })

	deadline := time.Now().Add(2 * time.Second)
	for frames.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}

	sched.Cancel(token)
	after := frames.Load()
	time.Sleep(20 * time.Millisecond)
	if frames.Load() != after {
		t.Fatalf("frames advanced from %d to %d after cancel", after, frames.Load())
	}

	// Cancel is idempotent and tolerates nil.
	sched.Cancel(token)
	sched.Cancel(nil)
}
