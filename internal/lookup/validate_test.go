package lookup

import (
	"strings"
	"testing"
)

func TestValidDomain(t *testing.T) {
	tests := []struct {
		name   string
		domain string
		want   bool
	}{
		{"simple domain", "example.com", true},
		{"subdomain", "www.example.com", true},
		{"deep subdomain", "a.b.c.example.co.uk", true},
		{"hyphenated label", "my-site.example.com", true},
		{"digit labels", "123.example.com", true},
		{"single char label", "a.io", true},
		{"max length label", strings.Repeat("a", 63) + ".com", true},

		{"empty string", "", false},
		{"no dot", "localhost", false},
		{"trailing dot", "example.com.", false},
		{"leading dot", ".example.com", false},
		{"consecutive dots", "example..com", false},
		{"label starts with hyphen", "-example.com", false},
		{"label ends with hyphen", "example-.com", false},
		{"numeric tld", "example.123", false},
		{"single char tld", "example.c", false},
		{"space in label", "exa mple.com", false},
		{"underscore in label", "exa_mple.com", false},
		{"ipv4 literal", "192.168.1.1", false},
		{"label too long", strings.Repeat("a", 64) + ".com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidDomain(tt.domain); got != tt.want {
				t.Errorf("ValidDomain(%q) = %v, want %v", tt.domain, got, tt.want)
			}
		})
	}
}

func TestValidDomain_OverallLengthLimit(t *testing.T) {
	// Four maximum-length labels plus a TLD is 259 characters, past the
	// 253 limit even though every label is individually valid.
	label := strings.Repeat("a", 63)
	long := strings.Join([]string{label, label, label, label, "com"}, ".")
	if len(long) <= 253 {
		t.Fatalf("test setup: domain length %d should exceed 253", len(long))
	}
	if ValidDomain(long) {
		t.Errorf("ValidDomain accepted a %d character domain", len(long))
	}

	// A 253 character domain with valid labels is accepted.
	ok := strings.Join([]string{label, label, label, strings.Repeat("a", 57), "com"}, ".")
	if len(ok) != 253 {
		t.Fatalf("test setup: domain length = %d, want 253", len(ok))
	}
	if !ValidDomain(ok) {
		t.Errorf("ValidDomain rejected a valid 253 character domain")
	}
}
