// Package output renders lookup results for the terminal, as aligned text
// tables or indented JSON. A Renderer is an explicit value handed to the
// CLI at call time; the package keeps no console state of its own.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/jroosing/dnsly/internal/lookup"
)

// Format selects how results are rendered.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat validates a user-supplied output format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatJSON:
		return Format(s), nil
	default:
		return "", fmt.Errorf("invalid output format: %s (expected text or json)", s)
	}
}

// Renderer writes lookup results to a single destination.
type Renderer struct {
	out     io.Writer
	verbose bool
}

// NewRenderer creates a Renderer writing to out.
func NewRenderer(out io.Writer, verbose bool) *Renderer {
	return &Renderer{out: out, verbose: verbose}
}

// Render writes one result in the given format.
func (r *Renderer) Render(res lookup.Result, format Format) error {
	if format == FormatJSON {
		return r.renderJSON(res)
	}
	return r.renderText(res)
}

func (r *Renderer) renderJSON(res lookup.Result) error {
	b, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.out, string(b))
	return err
}

func (r *Renderer) renderText(res lookup.Result) error {
	if !res.Success {
		_, err := fmt.Fprintf(r.out, "✗ Error: %s\n", res.Error)
		return err
	}

	fmt.Fprintf(r.out, "\n✓ DNS Query Results for %s\n", res.Domain)
	fmt.Fprintf(r.out, "  Record Type:   %s\n", res.RecordType)
	fmt.Fprintf(r.out, "  Records Found: %d\n\n", res.Count)

	tw := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)
	switch res.RecordType {
	case lookup.TypeMX:
		fmt.Fprintln(tw, "  PRIORITY\tMAIL SERVER")
		for _, rec := range res.Records {
			if mx, ok := rec.(lookup.MXRecord); ok {
				fmt.Fprintf(tw, "  %d\t%s\n", mx.Preference, mx.Exchange)
			}
		}
	case lookup.TypeSOA:
		fmt.Fprintln(tw, "  FIELD\tVALUE")
		for _, rec := range res.Records {
			if soa, ok := rec.(lookup.SOARecord); ok {
				fmt.Fprintf(tw, "  MNAME\t%s\n", soa.Mname)
				fmt.Fprintf(tw, "  RNAME\t%s\n", soa.Rname)
				fmt.Fprintf(tw, "  SERIAL\t%d\n", soa.Serial)
				fmt.Fprintf(tw, "  REFRESH\t%d\n", soa.Refresh)
				fmt.Fprintf(tw, "  RETRY\t%d\n", soa.Retry)
				fmt.Fprintf(tw, "  EXPIRE\t%d\n", soa.Expire)
				fmt.Fprintf(tw, "  MINIMUM\t%d\n", soa.Minimum)
			}
		}
	default:
		fmt.Fprintln(tw, "  RECORD")
		for _, rec := range res.Records {
			if s, ok := rec.(lookup.StringRecord); ok {
				fmt.Fprintf(tw, "  %s\n", string(s))
			}
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if r.verbose {
		fmt.Fprintln(r.out, "\nQuery completed successfully")
	}
	return nil
}
