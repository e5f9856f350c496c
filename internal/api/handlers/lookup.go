package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/dnsly/internal/api/models"
	"github.com/jroosing/dnsly/internal/lookup"
)

// Lookup performs DNS lookups for a domain.
//
// Query parameters:
//   - domain: required, the name to query (an IP address for type=PTR)
//   - type:   optional, a record type, comma-separated list, or ALL
//     (default A)
//
// The response is 200 with one Result per requested type; per-type
// failures are carried inside each Result, mirroring the CLI contract.
// Only malformed requests (missing domain, unknown type) are 4xx.
func (h *Handler) Lookup(c *gin.Context) {
	domain := strings.TrimSpace(c.Query("domain"))
	if domain == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "domain parameter is required"})
		return
	}

	types, err := parseTypesParam(c.DefaultQuery("type", "A"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	results := make([]lookup.Result, 0, len(types))
	for _, rt := range types {
		start := time.Now()
		res := h.dispatcher.Lookup(c.Request.Context(), domain, rt)
		h.stats.Record(res, time.Since(start).Nanoseconds())
		results = append(results, res)
	}

	c.JSON(http.StatusOK, models.LookupResponse{Domain: domain, Results: results})
}

// parseTypesParam expands a type parameter into record types, preserving
// order. "ALL" expands to every type except PTR.
func parseTypesParam(raw string) ([]lookup.RecordType, error) {
	if strings.EqualFold(strings.TrimSpace(raw), "ALL") {
		return lookup.AllTypes(), nil
	}
	parts := strings.Split(raw, ",")
	types := make([]lookup.RecordType, 0, len(parts))
	for _, p := range parts {
		rt, err := lookup.ParseRecordType(p)
		if err != nil {
			return nil, err
		}
		types = append(types, rt)
	}
	return types, nil
}
