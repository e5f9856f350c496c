// Package handlers implements the dnsly HTTP API endpoint handlers.
//
// Endpoints:
//   - GET /api/v1/health - Health check status
//   - GET /api/v1/stats  - Server statistics (uptime, memory, lookup counters)
//   - GET /api/v1/lookup - DNS lookup: ?domain=<name>&type=<A|comma list|ALL>
//
// All endpoints support optional API key authentication via the X-API-Key
// header. The API binds to localhost by default; put it behind real
// authentication before exposing it to untrusted networks.
package handlers

import (
	"log/slog"
	"time"

	"github.com/jroosing/dnsly/internal/config"
	"github.com/jroosing/dnsly/internal/lookup"
)

// Handler contains dependencies for API handlers.
type Handler struct {
	cfg        *config.Config
	dispatcher *lookup.Dispatcher
	logger     *slog.Logger
	startTime  time.Time
	stats      *LookupStats
}

// New creates a Handler backed by the given dispatcher.
func New(cfg *config.Config, dispatcher *lookup.Dispatcher, logger *slog.Logger) *Handler {
	return &Handler{
		cfg:        cfg,
		dispatcher: dispatcher,
		logger:     logger,
		startTime:  time.Now(),
		stats:      NewLookupStats(),
	}
}
