package lookup

import "regexp"

// maxDomainLength is the longest domain name accepted, in presentation
// format (RFC 1035 limits names to 255 octets on the wire, which leaves
// 253 visible characters).
const maxDomainLength = 253

// One or more labels of 1-63 alphanumeric-or-hyphen characters, no label
// starting or ending with a hyphen, followed by an alphabetic top-level
// label of at least two characters.
var domainPattern = regexp.MustCompile(
	`^(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}$`,
)

// ValidDomain reports whether s is a syntactically valid domain name.
//
// This is a pure syntax check: it says nothing about whether the name
// resolves. IP address literals are rejected; PTR lookups take their input
// through net address parsing instead.
func ValidDomain(s string) bool {
	if s == "" || len(s) > maxDomainLength {
		return false
	}
	return domainPattern.MatchString(s)
}
