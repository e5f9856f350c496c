package handlers

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/dnsly/internal/api/models"
)

// Health returns server health status.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, models.StatusResponse{Status: "ok"})
}

// Stats returns runtime statistics including memory, goroutines, and
// lookup counters since server start.
func (h *Handler) Stats(c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	uptime := time.Since(h.startTime)
	snap := h.stats.Snapshot()

	c.JSON(http.StatusOK, models.ServerStatsResponse{
		Uptime:        uptime.Round(time.Second).String(),
		UptimeSeconds: int64(uptime.Seconds()),
		StartTime:     h.startTime,
		GoRoutines:    runtime.NumGoroutine(),
		MemoryAllocMB: float64(m.Alloc) / 1024 / 1024,
		NumCPU:        runtime.NumCPU(),
		Lookups: models.LookupStatsResponse{
			Total:        snap.Total,
			Failed:       snap.Failed,
			InvalidInput: snap.InvalidInput,
			NotFound:     snap.NotFound,
			NoAnswer:     snap.NoAnswer,
			Timeouts:     snap.Timeouts,
			AvgLatencyMs: snap.AvgLatencyMs,
		},
	})
}
