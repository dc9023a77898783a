// SPDX-License-Identifier: GPL-3.0-only

package resolver

import (
	"context"
	"fmt"
	"net"
	"sort"
	"strings"
	"time"

	"github.com/miekg/dns"
)

const (
	defaultTimeout = 2 * time.Second
	resolvConfPath = "/etc/resolv.conf"
	defaultDNSPort = "53"
)

var FallbackServers = []string{"1.1.1.1", "8.8.8.8"}

type Client struct {
	servers []string
	timeout time.Duration
	udp     *dns.Client
	tcp     *dns.Client
}

type Option func(*Client)

// WithServers sets the nameservers queried in order. Entries without a port use 53.
func WithServers(servers []string) Option {
	return func(c *Client) {
		c.servers = normalizeServers(servers)
	}
}

// WithTimeout bounds each lookup, across all nameservers tried.
func WithTimeout(t time.Duration) Option {
	return func(c *Client) {
		if t > 0 {
			c.timeout = t
		}
	}
}

func New(opts ...Option) *Client {
	c := &Client{
		servers: SystemServers(),
		timeout: defaultTimeout,
	}
	for _, o := range opts {
		o(c)
	}
	c.udp = &dns.Client{Net: "udp", Timeout: c.timeout}
	c.tcp = &dns.Client{Net: "tcp", Timeout: c.timeout}
	return c
}

// SystemServers reads resolv.conf, falling back to public resolvers.
func SystemServers() []string {
	cfg, err := dns.ClientConfigFromFile(resolvConfPath)
	if err != nil || len(cfg.Servers) == 0 {
		return normalizeServers(FallbackServers)
	}
	servers := make([]string, 0, len(cfg.Servers))
	for _, s := range cfg.Servers {
		servers = append(servers, net.JoinHostPort(s, cfg.Port))
	}
	return servers
}

func normalizeServers(servers []string) []string {
	out := make([]string, 0, len(servers))
	for _, s := range servers {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, _, err := net.SplitHostPort(s); err != nil {
			s = net.JoinHostPort(strings.Trim(s, "[]"), defaultDNSPort)
		}
		out = append(out, s)
	}
	return out
}

func (c *Client) Servers() []string {
	return append([]string(nil), c.servers...)
}

func (c *Client) LookupA(ctx context.Context, domain string) ([]string, error) {
	answer, err := c.query(ctx, domain, dns.TypeA)
	if err != nil {
		return nil, err
	}
	var addrs []string
	for _, rr := range answer {
		if a, ok := rr.(*dns.A); ok {
			addrs = append(addrs, a.A.String())
		}
	}
	if len(addrs) == 0 {
		return nil, fmt.Errorf("%w: A %s", ErrNoRecords, domain)
	}
	return addrs, nil
}

func (c *Client) LookupAAAA(ctx context.Context, domain string) ([]string, error) {
	answer, err := c.query(ctx, domain, dns.TypeAAAA)
	if err != nil {
		return nil, err
	}
	var addrs []string
	for _, rr := range answer {
		if a, ok := rr.(*dns.AAAA); ok {
			addrs = append(addrs, a.AAAA.String())
		}
	}
	if len(addrs) == 0 {
		return nil, fmt.Errorf("%w: AAAA %s", ErrNoRecords, domain)
	}
	return addrs, nil
}

// LookupMX returns the MX set ordered by preference.
func (c *Client) LookupMX(ctx context.Context, domain string) ([]MXRecord, error) {
	answer, err := c.query(ctx, domain, dns.TypeMX)
	if err != nil {
		return nil, err
	}
	var records []MXRecord
	for _, rr := range answer {
		if mx, ok := rr.(*dns.MX); ok {
			records = append(records, MXRecord{
				Host: strings.TrimSuffix(mx.Mx, "."),
				Pref: mx.Preference,
			})
		}
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: MX %s", ErrNoRecords, domain)
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Pref < records[j].Pref
	})
	return records, nil
}

func (c *Client) query(ctx context.Context, domain string, qtype uint16) ([]dns.RR, error) {
	domain = strings.TrimSpace(domain)
	if domain == "" {
		return nil, ErrEmptyDomain
	}
	if len(c.servers) == 0 {
		return nil, ErrNoNameservers
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(domain), qtype)
	msg.RecursionDesired = true

	qname := dns.TypeToString[qtype]
	var lastErr error
	for _, server := range c.servers {
		resp, _, err := c.udp.ExchangeContext(ctx, msg, server)
		if err == nil && resp != nil && resp.Truncated {
			resp, _, err = c.tcp.ExchangeContext(ctx, msg, server)
		}
		if err != nil {
			lastErr = fmt.Errorf("%s %s via %s: %w", qname, domain, server, err)
			if ctx.Err() != nil {
				break
			}
			continue
		}
		if resp == nil {
			lastErr = fmt.Errorf("%s %s via %s: empty response", qname, domain, server)
			continue
		}

		switch resp.Rcode {
		case dns.RcodeSuccess:
			return resp.Answer, nil
		case dns.RcodeNameError:
			return nil, fmt.Errorf("%w: %s", ErrNXDomain, domain)
		default:
			lastErr = fmt.Errorf("%s %s via %s: %s", qname, domain, server, dns.RcodeToString[resp.Rcode])
		}
	}
	return nil, lastErr
}
