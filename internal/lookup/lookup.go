package lookup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strings"

	"github.com/miekg/dns"
)

// Dispatcher validates lookup input, issues a single query through its
// Resolver, and normalizes the response into a Result. Every failure is
// recovered here and reported as a Result; Lookup never panics and never
// returns an error.
type Dispatcher struct {
	resolver Resolver
	logger   *slog.Logger
}

// NewDispatcher creates a Dispatcher that queries through r.
func NewDispatcher(r Resolver, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{resolver: r, logger: logger}
}

// Lookup queries one record type for one domain.
//
// PTR inputs are IP address literals: they are converted to the reverse
// lookup name (in-addr.arpa / ip6.arpa) and bypass the domain validator.
// All other inputs are validated before any network call. Zero answers of
// the requested type is a KindNoAnswer failure, so a successful Result
// always carries at least one record, in resolver response order.
func (d *Dispatcher) Lookup(ctx context.Context, domain string, rt RecordType) Result {
	name := domain

	if rt == TypePTR {
		rev, err := dns.ReverseAddr(domain)
		if err != nil {
			return failure(domain, rt, KindInvalidInput, "Invalid IP address for PTR lookup")
		}
		name = rev
		// Report the reverse name as the queried domain, matching what
		// actually went on the wire.
		domain = strings.TrimSuffix(rev, ".")
	} else {
		if !ValidDomain(domain) {
			return failure(domain, rt, KindInvalidInput, "Invalid domain format")
		}
		name = dns.Fqdn(domain)
	}

	d.logger.Debug("dispatching query", "name", name, "type", rt)

	msg, err := d.resolver.Exchange(ctx, name, rt.Qtype())
	if err != nil {
		kind, text := classifyExchangeError(err)
		return failure(domain, rt, kind, text)
	}

	switch msg.Rcode {
	case dns.RcodeSuccess:
		// fall through to answer normalization
	case dns.RcodeNameError:
		return failure(domain, rt, KindNameNotFound, "Domain does not exist")
	default:
		return failure(domain, rt, KindResolverError,
			fmt.Sprintf("DNS error: %s", rcodeText(msg.Rcode)))
	}

	records := normalizeAnswers(msg.Answer, rt)
	if len(records) == 0 {
		return failure(domain, rt, KindNoAnswer, fmt.Sprintf("No %s records found", rt))
	}
	return success(domain, rt, records)
}

// classifyExchangeError maps a transport-level exchange error onto the
// closed ErrorKind set.
func classifyExchangeError(err error) (ErrorKind, string) {
	var nerr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return KindTimeout, "DNS query timed out"
	case errors.As(err, &nerr) && nerr.Timeout():
		return KindTimeout, "DNS query timed out"
	case errors.As(err, &nerr):
		return KindResolverError, fmt.Sprintf("DNS error: %v", err)
	default:
		return KindUnknown, fmt.Sprintf("Unexpected error: %v", err)
	}
}

// rcodeText renders a response code for error messages.
func rcodeText(rcode int) string {
	if s, ok := dns.RcodeToString[rcode]; ok {
		return s
	}
	return fmt.Sprintf("RCODE %d", rcode)
}

// normalizeAnswers converts the answer section into Records for the
// requested type, preserving response order. Answers of other types (for
// example the CNAME steps of a chain returned for an A query) are skipped;
// no deduplication or sorting is performed.
func normalizeAnswers(answers []dns.RR, rt RecordType) []Record {
	records := make([]Record, 0, len(answers))
	for _, rr := range answers {
		if rec, ok := normalizeRR(rr, rt); ok {
			records = append(records, rec)
		}
	}
	return records
}

// normalizeRR converts a single resource record into the shape documented
// on Record. Name-valued fields are reported without the trailing root dot.
func normalizeRR(rr dns.RR, rt RecordType) (Record, bool) {
	switch rt {
	case TypeA:
		if v, ok := rr.(*dns.A); ok {
			return StringRecord(v.A.String()), true
		}
	case TypeAAAA:
		if v, ok := rr.(*dns.AAAA); ok {
			return StringRecord(v.AAAA.String()), true
		}
	case TypeCNAME:
		if v, ok := rr.(*dns.CNAME); ok {
			return StringRecord(trimRoot(v.Target)), true
		}
	case TypeMX:
		if v, ok := rr.(*dns.MX); ok {
			return MXRecord{Preference: v.Preference, Exchange: trimRoot(v.Mx)}, true
		}
	case TypeNS:
		if v, ok := rr.(*dns.NS); ok {
			return StringRecord(trimRoot(v.Ns)), true
		}
	case TypeTXT:
		if v, ok := rr.(*dns.TXT); ok {
			// Character-string segments arrive unquoted; concatenating
			// them yields the record value with no surrounding quotes.
			return StringRecord(strings.Join(v.Txt, "")), true
		}
	case TypeSOA:
		if v, ok := rr.(*dns.SOA); ok {
			return SOARecord{
				Mname:   trimRoot(v.Ns),
				Rname:   trimRoot(v.Mbox),
				Serial:  v.Serial,
				Refresh: v.Refresh,
				Retry:   v.Retry,
				Expire:  v.Expire,
				Minimum: v.Minttl,
			}, true
		}
	case TypePTR:
		if v, ok := rr.(*dns.PTR); ok {
			return StringRecord(trimRoot(v.Ptr)), true
		}
	}
	return nil, false
}

func trimRoot(name string) string {
	if name == "." {
		return name
	}
	return strings.TrimSuffix(name, ".")
}
