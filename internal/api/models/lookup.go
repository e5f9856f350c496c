package models

import "github.com/jroosing/dnsly/internal/lookup"

// LookupResponse is the result of a lookup request: one entry per
// requested record type, in request order. Each entry carries its own
// success flag and either records or an error message, exactly as the
// CLI's JSON output does.
type LookupResponse struct {
	Domain  string          `json:"domain"`
	Results []lookup.Result `json:"results"`
}
