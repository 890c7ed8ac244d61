package service

import (
	"fmt"
	"sync"
	"time"
)

// Stopwatch measures the time spent on an exam. It only reads the clock and
// may be polled from a timer goroutine while the session is in use.
type Stopwatch struct {
	mu    sync.RWMutex
	now   func() time.Time
	start time.Time
}

// NewStopwatch creates a stopwatch started now.
func NewStopwatch() *Stopwatch {
	return newStopwatch(time.Now)
}

func newStopwatch(now func() time.Time) *Stopwatch {
	return &Stopwatch{
		now:   now,
		start: now(),
	}
}

// Restart resets the elapsed time to zero.
func (w *Stopwatch) Restart() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.start = w.now()
}

// Elapsed returns the time since the stopwatch was started.
func (w *Stopwatch) Elapsed() time.Duration {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.now().Sub(w.start)
}

// FormatElapsed formats d as MM:SS. Minutes keep growing past 59.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	seconds := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
