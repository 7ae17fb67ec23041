package monitor

import (
	"sync"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
)

// CursorStats tracks erased cursor handles: every allocation has to be paired
// with a release, so Live returning to its baseline means no handle leaked.
type CursorStats struct {
	allocated *prometheus.CounterVec
	released  *prometheus.CounterVec
	tables    prometheus.Counter
	live      prometheus.Gauge

	liveCount  int64
	tableCount int64

	mu       sync.Mutex
	counters map[string]*CursorCounters
}

// CursorCounters are the pre-resolved counters of one cursor type.
type CursorCounters struct {
	stats   *CursorStats
	alloc   prometheus.Counter
	release prometheus.Counter
}

var Cursors = NewCursorStats()

func NewCursorStats() *CursorStats {
	return &CursorStats{
		allocated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ordmap",
			Name:      "cursor_handles_allocated_total",
			Help:      "Erased cursor handles allocated, by native cursor type.",
		}, []string{"cursor"}),
		released: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ordmap",
			Name:      "cursor_handles_released_total",
			Help:      "Erased cursor handles released, by native cursor type.",
		}, []string{"cursor"}),
		tables: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ordmap",
			Name:      "cursor_tables_total",
			Help:      "Operation tables generated.",
		}),
		live: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "ordmap",
			Name:      "cursor_handles_live",
			Help:      "Erased cursor handles currently owned by iterators.",
		}),
		counters: make(map[string]*CursorCounters),
	}
}

// Register exposes the collectors on reg.
func (cs *CursorStats) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{cs.allocated, cs.released, cs.tables, cs.live} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// For returns the counters of one cursor type. Repeated calls return the same
// value.
func (cs *CursorStats) For(cursorType string) *CursorCounters {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	if c, ok := cs.counters[cursorType]; ok {
		return c
	}
	c := &CursorCounters{
		stats:   cs,
		alloc:   cs.allocated.WithLabelValues(cursorType),
		release: cs.released.WithLabelValues(cursorType),
	}
	cs.counters[cursorType] = c
	return c
}

func (cs *CursorStats) RecordTable() {
	atomic.AddInt64(&cs.tableCount, 1)
	cs.tables.Inc()
}

func (cs *CursorStats) Live() int64 {
	return atomic.LoadInt64(&cs.liveCount)
}

func (cs *CursorStats) Tables() int64 {
	return atomic.LoadInt64(&cs.tableCount)
}

func (cs *CursorStats) Snapshot() map[string]interface{} {
	cs.mu.Lock()
	types := len(cs.counters)
	cs.mu.Unlock()
	return map[string]interface{}{
		"cursor_types":        types,
		"cursor_tables":       cs.Tables(),
		"cursor_handles_live": cs.Live(),
	}
}

func (cc *CursorCounters) Alloc() {
	cc.alloc.Inc()
	cc.stats.live.Inc()
	atomic.AddInt64(&cc.stats.liveCount, 1)
}

func (cc *CursorCounters) Release() {
	cc.release.Inc()
	cc.stats.live.Dec()
	atomic.AddInt64(&cc.stats.liveCount, -1)
}
