package profiler

import (
	"log"
	"runtime"
	"time"
)

// Profiler tracks frame rate and memory statistics for performance monitoring.
// Every update interval it computes the frame rate since the previous report and, unless quiet,
// outputs it to the log together with heap and GC statistics.
type Profiler struct {
	frameCount     int
	lastTime       time.Time
	updateInterval time.Duration
	quiet          bool
	fps            float64
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
}

// ProfilerOption is a functional option for configuring a Profiler.
type ProfilerOption func(*Profiler)

// WithUpdateInterval sets how often statistics are computed.
//
// Parameters:
//   - interval: the reporting period
//
// Returns:
//   - ProfilerOption: a function that sets the update interval
func WithUpdateInterval(interval time.Duration) ProfilerOption {
	return func(p *Profiler) {
		if interval > 0 {
			p.updateInterval = interval
		}
	}
}

// WithQuiet disables logging; FPS is still computed for FPS().
//
// Returns:
//   - ProfilerOption: a function that disables logging
func WithQuiet() ProfilerOption {
	return func(p *Profiler) {
		p.quiet = true
	}
}

// NewProfiler creates a new Profiler. The update interval defaults to 1 second.
//
// Parameters:
//   - options: functional options to configure the profiler
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerOption) *Profiler {
	p := &Profiler{
		lastTime:       time.Now(),
		updateInterval: time.Second,
	}
	for _, option := range options {
		option(p)
	}
	return p
}

// Tick should be called once per frame to track frame timing.
//
// Returns:
//   - bool: true if a new FPS value was computed this tick
func (p *Profiler) Tick() bool {
	return p.TickAt(time.Now())
}

// TickAt is Tick with an explicit timestamp.
//
// Parameters:
//   - now: the frame timestamp
//
// Returns:
//   - bool: true if a new FPS value was computed this tick
func (p *Profiler) TickAt(now time.Time) bool {
	p.frameCount++
	elapsed := now.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	p.fps = float64(p.frameCount) / elapsed.Seconds()
	if !p.quiet {
		p.logStats(elapsed)
	}

	p.frameCount = 0
	p.lastTime = now
	return true
}

// SetQuiet enables or disables logging at runtime.
//
// Parameters:
//   - quiet: true to stop logging
func (p *Profiler) SetQuiet(quiet bool) {
	p.quiet = quiet
}

// FPS returns the frame rate computed at the last report, or 0 before the first one.
//
// Returns:
//   - float64: frames per second
func (p *Profiler) FPS() float64 {
	return p.fps
}

// logStats logs FPS, heap usage, allocation rate, GC count/pause times and total memory.
func (p *Profiler) logStats(elapsed time.Duration) {
	runtime.ReadMemStats(&p.memStats)
	allocMB := float64(p.memStats.Alloc) / 1024 / 1024
	sysMB := float64(p.memStats.Sys) / 1024 / 1024

	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
	allocRateMB := float64(allocDelta) / 1024 / 1024 / elapsed.Seconds()

	gcCount := p.memStats.NumGC
	var lastPauseUs, maxPauseUs uint64
	if gcCount > 0 {
		// PauseNs is a circular buffer of the last 256 GC pauses
		lastPauseUs = p.memStats.PauseNs[(gcCount-1)%256] / 1000

		startIdx := p.lastGCCount
		if gcCount-startIdx > 256 {
			startIdx = gcCount - 256
		}
		for i := startIdx; i < gcCount; i++ {
			maxPauseUs = max(maxPauseUs, p.memStats.PauseNs[i%256]/1000)
		}
	}

	log.Printf("[Profiler] FPS: %.2f | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (last: %d µs, max: %d µs) | Sys: %.2f MB",
		p.fps, allocMB, allocRateMB, gcCount, lastPauseUs, maxPauseUs, sysMB)

	p.lastGCCount = gcCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
}
