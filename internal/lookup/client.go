package lookup

import (
	"context"
	"net"
	"strconv"
	"time"

	"github.com/jroosing/dnsly/internal/helpers"
	"github.com/miekg/dns"
)

// Client configuration defaults.
const (
	DefaultTimeout = 5 * time.Second
	defaultDNSPort = 53

	resolvConfPath = "/etc/resolv.conf"
	fallbackServer = "8.8.8.8"
)

// Resolver issues a single DNS query and returns the raw response message.
// It exists so the Dispatcher can be exercised without a network.
type Resolver interface {
	Exchange(ctx context.Context, fqdn string, qtype uint16) (*dns.Msg, error)
}

// ClientConfig configures a Client.
type ClientConfig struct {
	// Servers are nameserver IPs. Empty means read the system resolver
	// configuration, falling back to a public resolver if that fails.
	Servers []string
	// Port is the nameserver port (default 53).
	Port int
	// Timeout bounds each query attempt.
	Timeout time.Duration
	// TCPFallback retries over TCP when a UDP response is truncated.
	TCPFallback bool
}

// Client is the production Resolver. It sends one UDP query per Exchange
// call to a single nameserver, with an optional TCP retry on truncation.
// No retries, no caching, no pooling: this tool makes exactly one query
// attempt per lookup.
//
// A Client carries no mutable state and is safe for concurrent use.
type Client struct {
	udp  *dns.Client
	tcp  *dns.Client
	addr string
}

// NewClient builds a Client from cfg, resolving the nameserver address
// from the system configuration when none is given.
func NewClient(cfg ClientConfig) (*Client, error) {
	if cfg.Port == 0 {
		cfg.Port = defaultDNSPort
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	server := ""
	if len(cfg.Servers) > 0 {
		server = cfg.Servers[0]
	} else {
		server = systemNameserver()
	}
	addr := net.JoinHostPort(server, strconv.Itoa(cfg.Port))

	c := &Client{
		udp: &dns.Client{
			Net:     "udp",
			Timeout: cfg.Timeout,
			UDPSize: helpers.ClampIntToUint16(dns.DefaultMsgSize),
		},
		addr: addr,
	}
	if cfg.TCPFallback {
		c.tcp = &dns.Client{Net: "tcp", Timeout: cfg.Timeout}
	}
	return c, nil
}

// Addr returns the nameserver address the client queries.
func (c *Client) Addr() string {
	return c.addr
}

// Exchange sends a single recursive query for (fqdn, qtype) and returns
// the response. A truncated UDP response is retried once over TCP when the
// client was built with TCPFallback.
func (c *Client) Exchange(ctx context.Context, fqdn string, qtype uint16) (*dns.Msg, error) {
	m := new(dns.Msg)
	m.SetQuestion(fqdn, qtype)
	m.RecursionDesired = true
	m.SetEdns0(dns.DefaultMsgSize, false)

	r, _, err := c.udp.ExchangeContext(ctx, m, c.addr)
	if err != nil {
		return nil, err
	}
	if r.Truncated && c.tcp != nil {
		r, _, err = c.tcp.ExchangeContext(ctx, m, c.addr)
		if err != nil {
			return nil, err
		}
	}
	return r, nil
}

// systemNameserver returns the first nameserver from resolv.conf, or a
// public resolver when the file is unreadable or empty.
func systemNameserver() string {
	cc, err := dns.ClientConfigFromFile(resolvConfPath)
	if err != nil || len(cc.Servers) == 0 {
		return fallbackServer
	}
	return cc.Servers[0]
}
