package metrics

import (
	"sync"
	"time"
)

type queryStats struct {
	executions      int
	emptyResults    int
	lastLatency     time.Duration
	lastResultCount int
}

type forwardStats struct {
	attempts    int
	errors      int
	lastLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about query execution and
// form forwarding. It is intentionally simple so it can be swapped for a real
// backend later.
type Recorder struct {
	mu      sync.Mutex
	queries map[string]*queryStats
	forward forwardStats
	otel    *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		queries: make(map[string]*queryStats),
		otel:    otel,
	}
}

// RecordQuery tracks one executed query for a mode ("search" or "filter").
func (r *Recorder) RecordQuery(mode string, duration time.Duration, resultCount int) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.queries[mode]
	if !ok {
		stats = &queryStats{}
		r.queries[mode] = stats
	}
	stats.executions++
	stats.lastLatency = duration
	stats.lastResultCount = resultCount
	if resultCount == 0 {
		stats.emptyResults++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordQuery(mode, duration, resultCount)
	}
}

// RecordForwardAttempt tracks one form-forwarding attempt and its outcome.
func (r *Recorder) RecordForwardAttempt(duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.forward.attempts++
	r.forward.lastLatency = duration
	if err != nil {
		r.forward.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordForwardAttempt(duration, err)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// QuerySnapshot is a copy of the current stats for a query mode.
type QuerySnapshot struct {
	Executions      int
	EmptyResults    int
	LastLatency     time.Duration
	LastResultCount int
}

func (r *Recorder) QuerySnapshot(mode string) QuerySnapshot {
	if r == nil {
		return QuerySnapshot{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	stats, ok := r.queries[mode]
	if !ok || stats == nil {
		return QuerySnapshot{}
	}
	return QuerySnapshot{
		Executions:      stats.executions,
		EmptyResults:    stats.emptyResults,
		LastLatency:     stats.lastLatency,
		LastResultCount: stats.lastResultCount,
	}
}

// ForwardSnapshot is a copy of the current forwarding stats.
type ForwardSnapshot struct {
	Attempts    int
	Errors      int
	LastLatency time.Duration
}

func (r *Recorder) ForwardSnapshot() ForwardSnapshot {
	if r == nil {
		return ForwardSnapshot{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return ForwardSnapshot{
		Attempts:    r.forward.attempts,
		Errors:      r.forward.errors,
		LastLatency: r.forward.lastLatency,
	}
}
