package handlers

import (
	"sync/atomic"

	"github.com/jroosing/dnsly/internal/lookup"
)

// LookupStats collects lookup outcome counters.
// All methods are safe for concurrent use.
type LookupStats struct {
	total          atomic.Uint64
	failed         atomic.Uint64
	invalidInput   atomic.Uint64
	notFound       atomic.Uint64
	noAnswer       atomic.Uint64
	timeouts       atomic.Uint64
	latencyTotalNs atomic.Uint64
}

// NewLookupStats creates a new lookup statistics collector.
func NewLookupStats() *LookupStats {
	return &LookupStats{}
}

// Record counts one completed lookup.
func (s *LookupStats) Record(res lookup.Result, latencyNs int64) {
	s.total.Add(1)
	if latencyNs > 0 {
		s.latencyTotalNs.Add(uint64(latencyNs))
	}
	if res.Success {
		return
	}
	s.failed.Add(1)
	switch res.Kind {
	case lookup.KindInvalidInput:
		s.invalidInput.Add(1)
	case lookup.KindNameNotFound:
		s.notFound.Add(1)
	case lookup.KindNoAnswer:
		s.noAnswer.Add(1)
	case lookup.KindTimeout:
		s.timeouts.Add(1)
	}
}

// LookupStatsSnapshot is a point-in-time view of the counters.
type LookupStatsSnapshot struct {
	Total        uint64
	Failed       uint64
	InvalidInput uint64
	NotFound     uint64
	NoAnswer     uint64
	Timeouts     uint64
	AvgLatencyMs float64
}

// Snapshot returns the current statistics.
func (s *LookupStats) Snapshot() LookupStatsSnapshot {
	total := s.total.Load()
	latencyNs := s.latencyTotalNs.Load()

	avgLatencyMs := 0.0
	if total > 0 {
		avgLatencyMs = float64(latencyNs) / float64(total) / 1e6
	}

	return LookupStatsSnapshot{
		Total:        total,
		Failed:       s.failed.Load(),
		InvalidInput: s.invalidInput.Load(),
		NotFound:     s.notFound.Load(),
		NoAnswer:     s.noAnswer.Load(),
		Timeouts:     s.timeouts.Load(),
		AvgLatencyMs: avgLatencyMs,
	}
}
