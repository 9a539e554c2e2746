package clientip

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// DefaultHeaders lists the proxy headers consulted by GetIP, in priority order.
var DefaultHeaders = []string{
	"CF-Connecting-IP",
	"DO-Connecting-IP",
	"X-Forwarded-For",
	"X-Real-IP",
}

// Resolver extracts the client address from a request.
type Resolver struct {
	headers []string
}

// NewResolver returns a Resolver that trusts the given headers in order before
// falling back to RemoteAddr. With no headers only RemoteAddr is used, which
// is what a service exposed without a proxy wants.
func NewResolver(headers ...string) *Resolver {
	return &Resolver{headers: headers}
}

var defaultResolver = NewResolver(DefaultHeaders...)

// GetIP returns the client's IP address using DefaultHeaders.
func GetIP(r *http.Request) string {
	return defaultResolver.IP(r)
}

// IP returns the normalised client address, or "" if none can be parsed.
// X-Forwarded-For is scanned for its first valid entry.
func (res *Resolver) IP(r *http.Request) string {
	for _, h := range res.headers {
		v := r.Header.Get(h)
		if v == "" {
			continue
		}
		if strings.EqualFold(h, "X-Forwarded-For") {
			for part := range strings.SplitSeq(v, ",") {
				if ip := parseIP(part); ip != "" {
					return ip
				}
			}
			continue
		}
		if ip := parseIP(v); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

// parseIP validates and normalises an address. IPv4-mapped IPv6 addresses
// collapse to IPv4 and zones are dropped.
func parseIP(s string) string {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return ""
	}
	return addr.Unmap().WithZone("").String()
}
