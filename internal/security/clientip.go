package security

import (
	"net"
	"net/http"
	"net/netip"
	"strings"

	"github.com/supafox/supafox/internal/errors"
)

// TrustedProxies lists the networks whose forwarding headers are believed.
// The zero value trusts nobody.
type TrustedProxies []netip.Prefix

// ParseTrustedProxies accepts CIDR prefixes and bare addresses.
func ParseTrustedProxies(entries []string) (TrustedProxies, error) {
	out := make(TrustedProxies, 0, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if strings.Contains(entry, "/") {
			prefix, err := netip.ParsePrefix(entry)
			if err != nil {
				return nil, errors.NewConfigError("INVALID_TRUSTED_PROXY", "trusted proxy is not a valid CIDR").
					WithContext("proxy", entry)
			}
			out = append(out, prefix.Masked())
			continue
		}
		addr, err := netip.ParseAddr(entry)
		if err != nil {
			return nil, errors.NewConfigError("INVALID_TRUSTED_PROXY", "trusted proxy is not a valid address").
				WithContext("proxy", entry)
		}
		addr = addr.Unmap()
		out = append(out, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return out, nil
}

// Contains reports whether addr belongs to a trusted network.
func (tp TrustedProxies) Contains(addr string) bool {
	ip, err := netip.ParseAddr(addr)
	if err != nil {
		return false
	}
	ip = ip.Unmap()
	for _, prefix := range tp {
		if prefix.Contains(ip) {
			return true
		}
	}
	return false
}

// ClientIP returns the address of the peer that sent r. When that peer is a
// trusted proxy, X-Forwarded-For is walked from the right and the first hop
// that is not itself trusted wins; X-Real-IP is used when there is no
// X-Forwarded-For.
func (tp TrustedProxies) ClientIP(r *http.Request) string {
	peer := remoteHost(r.RemoteAddr)
	if len(tp) == 0 || !tp.Contains(peer) {
		return peer
	}

	if xff := r.Header.Values("X-Forwarded-For"); len(xff) > 0 {
		hops := strings.Split(strings.Join(xff, ","), ",")
		for i := len(hops) - 1; i >= 0; i-- {
			hop := strings.TrimSpace(hops[i])
			if _, err := netip.ParseAddr(hop); err != nil {
				// A malformed hop was written by someone we do not trust.
				return peer
			}
			if !tp.Contains(hop) {
				return hop
			}
		}
		return strings.TrimSpace(hops[0])
	}

	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		if _, err := netip.ParseAddr(xri); err == nil {
			return xri
		}
	}
	return peer
}

// ClientIP returns the peer address of r without its port. Forwarding
// headers are ignored; use TrustedProxies.ClientIP behind a proxy.
func ClientIP(r *http.Request) string {
	return TrustedProxies(nil).ClientIP(r)
}

func remoteHost(addr string) string {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return host
}
