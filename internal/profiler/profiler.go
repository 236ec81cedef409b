package profiler

import (
	"fmt"
	"runtime"
	"time"

	"cubescreen/hal"
)

// Profiler tracks per-frame durations, frame rate and heap allocations.
// Frame rate is written to the log at a configurable interval.
type Profiler struct {
	log            hal.Logger
	now            func() time.Time
	updateInterval time.Duration

	frameStart time.Time
	last       time.Duration
	total      time.Duration
	frames     uint64

	tickFrames int
	tickStart  time.Time

	memStats     runtime.MemStats
	startMallocs uint64
	mallocs      uint64
}

// New creates a Profiler logging to log. The update interval defaults to
// 1 second.
func New(log hal.Logger) *Profiler {
	p := &Profiler{
		log:            log,
		now:            time.Now,
		updateInterval: time.Second,
	}
	p.Reset()
	return p
}

// SetInterval changes how often Tick logs. Zero disables logging.
func (p *Profiler) SetInterval(d time.Duration) { p.updateInterval = d }

// Reset clears all counters and snapshots the allocation count.
func (p *Profiler) Reset() {
	runtime.ReadMemStats(&p.memStats)
	p.startMallocs = p.memStats.Mallocs
	p.mallocs = 0
	p.frames = 0
	p.total = 0
	p.last = 0
	p.tickFrames = 0
	p.tickStart = p.now()
}

// Begin marks the start of a frame.
func (p *Profiler) Begin() { p.frameStart = p.now() }

// End marks the end of the frame started by Begin and returns its duration.
func (p *Profiler) End() time.Duration {
	d := p.now().Sub(p.frameStart)
	if d < 0 {
		d = 0
	}
	p.last = d
	p.total += d
	p.frames++
	p.Tick()
	return d
}

// Last is the duration of the most recent frame.
func (p *Profiler) Last() time.Duration { return p.last }

// FPS is the instantaneous rate implied by the most recent frame.
func (p *Profiler) FPS() float64 {
	if p.last <= 0 {
		return 0
	}
	return float64(time.Second) / float64(p.last)
}

// Tick counts a frame toward the logged rate. It logs and returns true when
// the update interval has elapsed.
func (p *Profiler) Tick() bool {
	p.tickFrames++
	if p.updateInterval <= 0 {
		return false
	}
	now := p.now()
	elapsed := now.Sub(p.tickStart)
	if elapsed < p.updateInterval {
		return false
	}

	fps := float64(p.tickFrames) / elapsed.Seconds()
	runtime.ReadMemStats(&p.memStats)
	hal.Logf(p.log, "[Profiler] FPS: %.2f | Frame: %s | Heap: %.2f MB | Mallocs: %d",
		fps, p.last, float64(p.memStats.HeapAlloc)/1024/1024, p.memStats.Mallocs-p.startMallocs)

	p.tickFrames = 0
	p.tickStart = now
	return true
}

// Report summarizes a run.
type Report struct {
	Frames     uint64
	Average    time.Duration
	AverageFPS float64
	Mallocs    uint64
}

// Report reads the allocation counter and returns the run summary.
func (p *Profiler) Report() Report {
	runtime.ReadMemStats(&p.memStats)
	p.mallocs = p.memStats.Mallocs - p.startMallocs

	r := Report{Frames: p.frames, Mallocs: p.mallocs}
	if p.frames > 0 {
		r.Average = p.total / time.Duration(p.frames)
	}
	if r.Average > 0 {
		r.AverageFPS = float64(time.Second) / float64(r.Average)
	}
	return r
}

// String formats the frame line of the shutdown report.
func (r Report) String() string {
	ms := float64(r.Average) / float64(time.Millisecond)
	us := r.Average.Microseconds()
	return fmt.Sprintf("Frames: %d | Frame Average: %g milliseconds (%d microseconds) | Average FPS: %g",
		r.Frames, ms, us, r.AverageFPS)
}
