package profiler

import (
	"runtime"
	"time"

	"github.com/Carmen-Shannon/oxy-storefront/engine/controller"
	"github.com/Carmen-Shannon/oxy-storefront/engine/logger"
	"go.uber.org/zap"
)

// Profiler tracks tick rate, walk statistics and memory usage of the running controller.
// Outputs stats to the logger at a configurable interval.
type Profiler struct {
	log            *zap.Logger
	tickCount      int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastStats      controller.Stats
}

// NewProfiler creates a new Profiler with default settings.
// Update interval defaults to 1 second.
//
// Parameters:
//   - log: the logger stats are written to (nil discards them)
//   - options: functional options to configure the profiler
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(log *zap.Logger, options ...ProfilerOption) *Profiler {
	p := &Profiler{
		log:            logger.Or(log).Named("profiler"),
		lastTime:       time.Now(),
		updateInterval: time.Second,
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// ProfilerOption is a functional option for configuring a Profiler.
type ProfilerOption func(*Profiler)

// WithInterval sets how often stats are logged.
//
// Parameters:
//   - interval: minimum time between two log lines
//
// Returns:
//   - ProfilerOption: functional option to set the interval
func WithInterval(interval time.Duration) ProfilerOption {
	return func(p *Profiler) {
		if interval >= 0 {
			p.updateInterval = interval
		}
	}
}

// Tick should be called once per controller tick with the controller's running counters.
// Logs statistics when the update interval has elapsed: ticks per second, collision
// rejections and footsteps since the last report, heap usage and GC pauses.
//
// Parameters:
//   - stats: the active controller's counters
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick(stats controller.Stats) bool {
	p.tickCount++
	currentTime := time.Now()
	elapsed := currentTime.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	tps := float64(p.tickCount)
	if secs := elapsed.Seconds(); secs > 0 {
		tps /= secs
	}

	runtime.ReadMemStats(&p.memStats)
	allocMB := float64(p.memStats.Alloc) / 1024 / 1024

	gcCount := p.memStats.NumGC
	var maxPauseUs uint64
	if gcCount > 0 {
		// PauseNs is a circular buffer of the last 256 GC pauses.
		startIdx := p.lastGCCount
		if gcCount-startIdx > 256 {
			startIdx = gcCount - 256
		}
		for i := startIdx; i < gcCount; i++ {
			maxPauseUs = max(maxPauseUs, p.memStats.PauseNs[i%256]/1000)
		}
	}

	// A store switch resets the counters to a fresh controller's.
	rejections := stats.Rejections
	if rejections >= p.lastStats.Rejections {
		rejections -= p.lastStats.Rejections
	}
	footsteps := stats.Footsteps
	if footsteps >= p.lastStats.Footsteps {
		footsteps -= p.lastStats.Footsteps
	}

	p.log.Info("walk stats",
		zap.Float64("tps", tps),
		zap.Uint64("rejections", rejections),
		zap.Int("footsteps", footsteps),
		zap.Float64("heap_mb", allocMB),
		zap.Uint32("gc", gcCount),
		zap.Uint64("gc_max_pause_us", maxPauseUs),
	)

	p.tickCount = 0
	p.lastTime = currentTime
	p.lastGCCount = gcCount
	p.lastStats = stats
	return true
}
