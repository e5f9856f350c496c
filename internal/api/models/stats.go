package models

import "time"

// ServerStatsResponse contains server runtime statistics.
type ServerStatsResponse struct {
	Uptime        string              `json:"uptime"`
	UptimeSeconds int64               `json:"uptime_seconds"`
	StartTime     time.Time           `json:"start_time"`
	GoRoutines    int                 `json:"goroutines"`
	MemoryAllocMB float64             `json:"memory_alloc_mb"`
	NumCPU        int                 `json:"num_cpu"`
	Lookups       LookupStatsResponse `json:"lookups"`
}

// LookupStatsResponse contains lookup counters since server start.
type LookupStatsResponse struct {
	Total        uint64  `json:"total"`
	Failed       uint64  `json:"failed"`
	InvalidInput uint64  `json:"invalid_input"`
	NotFound     uint64  `json:"not_found"`
	NoAnswer     uint64  `json:"no_answer"`
	Timeouts     uint64  `json:"timeouts"`
	AvgLatencyMs float64 `json:"avg_latency_ms"`
}
