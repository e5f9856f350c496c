package lookup_test

import (
	"testing"
	"time"

	"github.com/jroosing/dnsly/internal/lookup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_ExplicitServer(t *testing.T) {
	c, err := lookup.NewClient(lookup.ClientConfig{
		Servers: []string{"1.1.1.1"},
		Timeout: 2 * time.Second,
	})
	require.NoError(t, err)
	assert.Equal(t, "1.1.1.1:53", c.Addr())
}

func TestNewClient_CustomPort(t *testing.T) {
	c, err := lookup.NewClient(lookup.ClientConfig{
		Servers: []string{"127.0.0.1"},
		Port:    5353,
	})
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:5353", c.Addr())
}

func TestNewClient_IPv6Server(t *testing.T) {
	c, err := lookup.NewClient(lookup.ClientConfig{
		Servers: []string{"2606:4700:4700::1111"},
	})
	require.NoError(t, err)
	assert.Equal(t, "[2606:4700:4700::1111]:53", c.Addr())
}

func TestNewClient_DefaultServerResolved(t *testing.T) {
	// With no servers configured the client falls back to the system
	// resolver configuration (or a public resolver); either way the
	// address must be well-formed.
	c, err := lookup.NewClient(lookup.ClientConfig{})
	require.NoError(t, err)
	assert.NotEmpty(t, c.Addr())
	assert.Contains(t, c.Addr(), ":53")
}
