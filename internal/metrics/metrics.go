package metrics

import (
	"sync"
	"time"
)

type fetchKey struct {
	provider string
	entity   string
}

type resolutionKey struct {
	entity string
	tier   string
}

type fetchStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

// Recorder captures in-memory counters about provider fetches and resolution tiers.
// Counters are mirrored into OpenTelemetry instruments when Setup enabled them.
type Recorder struct {
	mu          sync.Mutex
	fetches     map[fetchKey]*fetchStats
	resolutions map[resolutionKey]int
	otel        *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		fetches:     make(map[fetchKey]*fetchStats),
		resolutions: make(map[resolutionKey]int),
		otel:        otel,
	}
}

// RecordFetch increments counters for a provider fetch and stores the last observed latency.
func (r *Recorder) RecordFetch(provider, entity string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	key := fetchKey{provider: provider, entity: entity}
	stats, ok := r.fetches[key]
	if !ok {
		stats = &fetchStats{}
		r.fetches[key] = stats
	}
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordFetch(provider, entity, duration, err)
	}
}

// RecordResolution counts which tier (memory, disk, remote) answered a lookup.
func (r *Recorder) RecordResolution(entity, tier string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.resolutions[resolutionKey{entity: entity, tier: tier}]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordResolution(entity, tier)
	}
}

// Snapshot is a copy of the fetch stats for one provider and entity.
type Snapshot struct {
	Calls           int
	Errors          int
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(provider, entity string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.fetches[fetchKey{provider: provider, entity: entity}]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		LastCallLatency: stats.lastCallLatency,
	}
}

// FetchCalls returns the total fetches recorded for a provider and entity.
func (r *Recorder) FetchCalls(provider, entity string) int {
	return r.Snapshot(provider, entity).Calls
}

// FetchErrors returns the failed fetches recorded for a provider and entity.
func (r *Recorder) FetchErrors(provider, entity string) int {
	return r.Snapshot(provider, entity).Errors
}

// Resolutions returns how many lookups for entity were answered by tier.
func (r *Recorder) Resolutions(entity, tier string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.resolutions[resolutionKey{entity: entity, tier: tier}]
}
