package profiler

import (
	"time"
)

// MaxFrameSamples is the number of frame times averaged by a FrameTimer.
const MaxFrameSamples = 50

// maxSampleDeviation is how far (in seconds) a frame time may stray from the running average
// before it is discarded as a timer spike.
const maxSampleDeviation float32 = 1.0

// FrameTimer produces a smoothed per-frame elapsed time.
// Each measurement is averaged with the previous MaxFrameSamples-1 accepted ones; a measurement
// differing from the current average by a second or more (a stall, a breakpoint, a dragged window)
// is dropped so it cannot fling the camera across the world.
type FrameTimer struct {
	samples [MaxFrameSamples]float32 // newest first
	count   int
	average float32
	last    time.Time
	started bool
}

// NewFrameTimer creates a FrameTimer. The first call to Elapsed only starts the clock.
//
// Returns:
//   - *FrameTimer: the new timer
func NewFrameTimer() *FrameTimer {
	return &FrameTimer{}
}

// Elapsed returns the smoothed time in seconds between now and the previous call.
//
// Parameters:
//   - now: the current frame timestamp
//
// Returns:
//   - float32: the averaged frame time in seconds
func (ft *FrameTimer) Elapsed(now time.Time) float32 {
	if !ft.started {
		ft.started = true
		ft.last = now
		return ft.average
	}

	elapsed := float32(now.Sub(ft.last).Seconds())
	ft.last = now

	deviation := elapsed - ft.average
	if deviation < maxSampleDeviation && deviation > -maxSampleDeviation {
		copy(ft.samples[1:], ft.samples[:MaxFrameSamples-1])
		ft.samples[0] = elapsed
		ft.count = min(ft.count+1, MaxFrameSamples)
	}

	var sum float32
	for _, s := range ft.samples[:ft.count] {
		sum += s
	}
	if ft.count > 0 {
		ft.average = sum / float32(ft.count)
	}
	return ft.average
}

// Average returns the last value returned by Elapsed.
//
// Returns:
//   - float32: the averaged frame time in seconds
func (ft *FrameTimer) Average() float32 {
	return ft.average
}

// Reset discards all samples and restarts the clock on the next Elapsed call.
func (ft *FrameTimer) Reset() {
	*ft = FrameTimer{}
}
