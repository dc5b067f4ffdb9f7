// Package janitor sweeps a ttlcache on a fixed interval using a hierarchical
// timing wheel. The cache itself never spawns goroutines; callers who want
// background expiry hand the cache to a Janitor and route all further access
// through Do, which shares a lock with the sweep.
package janitor

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/RussellLuo/timingwheel"
	"github.com/dborchard/orderedkv/pkg/cache/ttlcache"
)

type Janitor struct {
	mu       sync.Mutex
	cache    *ttlcache.Cache
	interval time.Duration
	wheel    *timingwheel.TimingWheel
	timer    *timingwheel.Timer
	swept    atomic.Int64
	running  atomic.Bool
}

// intervalScheduler fires at a fixed period.
type intervalScheduler struct {
	interval time.Duration
}

func (s intervalScheduler) Next(prev time.Time) time.Time {
	return prev.Add(s.interval)
}

// New builds a janitor for cache firing every interval. The wheel ticks at
// interval granularity so sweeps land on whole ticks.
func New(cache *ttlcache.Cache, interval time.Duration) *Janitor {
	if interval <= 0 {
		panic("janitor: interval must be positive")
	}
	return &Janitor{
		cache:    cache,
		interval: interval,
		wheel:    timingwheel.NewTimingWheel(interval, 64),
	}
}

// Start launches the wheel and schedules the recurring sweep. Calling Start
// on a running janitor is a no-op.
func (j *Janitor) Start() {
	if !j.running.CompareAndSwap(false, true) {
		return
	}
	j.wheel.Start()
	j.timer = j.wheel.ScheduleFunc(intervalScheduler{j.interval}, func() {
		j.mu.Lock()
		n := j.cache.Cleanup()
		j.mu.Unlock()
		j.swept.Add(int64(n))
	})
}

// Stop halts the sweeps and the wheel. Safe to call more than once.
func (j *Janitor) Stop() {
	if !j.running.CompareAndSwap(true, false) {
		return
	}
	if j.timer != nil {
		j.timer.Stop()
	}
	j.wheel.Stop()
}

// Do runs fn against the cache under the same lock the sweep takes. All
// cache access while the janitor runs must go through here.
func (j *Janitor) Do(fn func(*ttlcache.Cache)) {
	j.mu.Lock()
	defer j.mu.Unlock()
	fn(j.cache)
}

// Swept reports the total number of entries removed by background sweeps.
func (j *Janitor) Swept() int64 {
	return j.swept.Load()
}
