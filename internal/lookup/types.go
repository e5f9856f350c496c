// Package lookup implements the core of dnsly: domain validation and a
// record-lookup dispatcher that queries a DNS resolver and normalizes
// answers into a uniform result shape.
//
// The package does no protocol work of its own. Queries go through the
// Resolver interface, backed by github.com/miekg/dns in production, and
// every failure is folded into a Result value rather than surfaced as an
// error; callers only ever see a Result.
package lookup

import (
	"fmt"
	"strings"

	"github.com/miekg/dns"
)

// RecordType is a supported DNS query type.
type RecordType string

const (
	TypeA     RecordType = "A"
	TypeAAAA  RecordType = "AAAA"
	TypeCNAME RecordType = "CNAME"
	TypeMX    RecordType = "MX"
	TypeNS    RecordType = "NS"
	TypeTXT   RecordType = "TXT"
	TypeSOA   RecordType = "SOA"
	TypePTR   RecordType = "PTR"
)

// recordTypes maps each supported type to its wire-format query type.
var recordTypes = map[RecordType]uint16{
	TypeA:     dns.TypeA,
	TypeAAAA:  dns.TypeAAAA,
	TypeCNAME: dns.TypeCNAME,
	TypeMX:    dns.TypeMX,
	TypeNS:    dns.TypeNS,
	TypeTXT:   dns.TypeTXT,
	TypeSOA:   dns.TypeSOA,
	TypePTR:   dns.TypePTR,
}

// AllTypes returns the record types queried when the caller asks for "ALL".
// PTR is excluded: it takes an IP address, not a domain name.
func AllTypes() []RecordType {
	return []RecordType{TypeA, TypeAAAA, TypeCNAME, TypeMX, TypeNS, TypeTXT, TypeSOA}
}

// ParseRecordType parses a user-supplied type label (case-insensitive).
func ParseRecordType(s string) (RecordType, error) {
	rt := RecordType(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := recordTypes[rt]; !ok {
		return "", fmt.Errorf("invalid record type: %s", s)
	}
	return rt, nil
}

// Qtype returns the wire-format query type for rt.
func (rt RecordType) Qtype() uint16 {
	return recordTypes[rt]
}

// ErrorKind classifies a failed lookup. The set is closed: the dispatcher
// maps every resolver-signaled condition onto exactly one kind.
type ErrorKind int

const (
	// KindNone means the lookup succeeded.
	KindNone ErrorKind = iota
	// KindInvalidInput means the domain (or IP, for PTR) failed syntax checks.
	KindInvalidInput
	// KindNameNotFound means the resolver reported NXDOMAIN.
	KindNameNotFound
	// KindNoAnswer means the name exists but has no records of the requested type.
	KindNoAnswer
	// KindTimeout means the query timed out.
	KindTimeout
	// KindResolverError means the resolver reported some other protocol failure.
	KindResolverError
	// KindUnknown means an uncategorized failure.
	KindUnknown
)

// String returns a short label for the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindInvalidInput:
		return "invalid_input"
	case KindNameNotFound:
		return "name_not_found"
	case KindNoAnswer:
		return "no_answer"
	case KindTimeout:
		return "timeout"
	case KindResolverError:
		return "resolver_error"
	default:
		return "unknown"
	}
}

// Record is one normalized DNS answer. The concrete shape depends on the
// record type: MXRecord for MX, SOARecord for SOA, StringRecord for
// everything else. The interface is sealed so renderers can match all
// cases exhaustively.
type Record interface {
	isRecord()
}

// StringRecord is a plain-string answer (A, AAAA, CNAME, NS, TXT, PTR).
type StringRecord string

func (StringRecord) isRecord() {}

// MXRecord is a mail-exchange answer.
type MXRecord struct {
	Preference uint16 `json:"preference"`
	Exchange   string `json:"exchange"`
}

func (MXRecord) isRecord() {}

// SOARecord is a start-of-authority answer.
type SOARecord struct {
	Mname   string `json:"mname"`
	Rname   string `json:"rname"`
	Serial  uint32 `json:"serial"`
	Refresh uint32 `json:"refresh"`
	Retry   uint32 `json:"retry"`
	Expire  uint32 `json:"expire"`
	Minimum uint32 `json:"minimum"`
}

func (SOARecord) isRecord() {}

// Result is the outcome of a single lookup. It is either a success with at
// least one record, or a failure with an error kind and message; never both.
// An empty answer set is reported as a KindNoAnswer failure, so Records is
// non-empty whenever Success is true.
//
// The JSON shape is part of the tool's output contract:
// success/domain/record_type always, records+count on success,
// error on failure.
type Result struct {
	Success    bool       `json:"success"`
	Domain     string     `json:"domain"`
	RecordType RecordType `json:"record_type"`
	Records    []Record   `json:"records,omitempty"`
	Count      int        `json:"count,omitempty"`
	Error      string     `json:"error,omitempty"`

	// Kind classifies the failure; KindNone on success. Not serialized:
	// the JSON contract carries the message only.
	Kind ErrorKind `json:"-"`
}

func success(domain string, rt RecordType, records []Record) Result {
	return Result{
		Success:    true,
		Domain:     domain,
		RecordType: rt,
		Records:    records,
		Count:      len(records),
	}
}

func failure(domain string, rt RecordType, kind ErrorKind, msg string) Result {
	return Result{
		Domain:     domain,
		RecordType: rt,
		Error:      msg,
		Kind:       kind,
	}
}
