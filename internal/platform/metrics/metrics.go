package metrics

import (
	"sync"
	"sync/atomic"
	"time"
)

// Collector tracks request throughput plus per-source fetch failures. The
// request counters sit on the hot path and stay atomic; source failures are
// rare, so a mutex-guarded map keyed by source name is enough.
type Collector struct {
	totalRequests   atomic.Uint64
	errorRequests   atomic.Uint64
	rateLimited     atomic.Uint64
	totalDurationMs atomic.Uint64

	mu             sync.Mutex
	sourceFailures map[string]uint64
}

func New() *Collector {
	return &Collector{sourceFailures: map[string]uint64{}}
}

func (c *Collector) Record(status int, duration time.Duration) {
	c.totalRequests.Add(1)
	if status >= 500 {
		c.errorRequests.Add(1)
	}
	if status == 429 {
		c.rateLimited.Add(1)
	}
	c.totalDurationMs.Add(uint64(duration.Milliseconds()))
}

// RecordSourceFailure counts a degraded fetch for one activity source.
func (c *Collector) RecordSourceFailure(source string) {
	c.mu.Lock()
	c.sourceFailures[source]++
	c.mu.Unlock()
}

func (c *Collector) Snapshot() map[string]any {
	total := c.totalRequests.Load()
	totalMs := c.totalDurationMs.Load()
	avg := float64(0)
	if total > 0 {
		avg = float64(totalMs) / float64(total)
	}

	c.mu.Lock()
	failures := make(map[string]uint64, len(c.sourceFailures))
	for source, count := range c.sourceFailures {
		failures[source] = count
	}
	c.mu.Unlock()

	return map[string]any{
		"requestsTotal":    total,
		"errorsTotal":      c.errorRequests.Load(),
		"rateLimitedTotal": c.rateLimited.Load(),
		"avgDurationMs":    avg,
		"totalDurationMs":  totalMs,
		"sourceFailures":   failures,
	}
}
