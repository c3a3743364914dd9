// internal/app/system/ratelimit/ratelimit.go
package ratelimit

import (
	"fmt"
	"math"
	"net"
	"net/http"
	"net/netip"
	"strconv"
	"strings"
	"time"

	waffleratelimit "github.com/dalemusser/waffle/pantry/ratelimit"
	"go.uber.org/zap"
)

// Config describes a per-client limit of Limit requests every Window.
type Config struct {
	Limit  int
	Window time.Duration

	// TrustedProxies are the peers whose X-Forwarded-For / X-Real-IP
	// headers are believed. Requests from anyone else are keyed by
	// RemoteAddr.
	TrustedProxies []netip.Prefix
}

// Middleware rejects requests over the limit with 429, a Retry-After header
// and a JSON error body. Tokens refill continuously, so a client that has
// spent its burst regains one request every Window/Limit.
func Middleware(cfg Config, logger *zap.Logger) func(http.Handler) http.Handler {
	rate := float64(cfg.Limit) / cfg.Window.Seconds()
	limiter := waffleratelimit.NewKeyLimiter(rate, cfg.Limit, 2*cfg.Window)

	retryAfter := strconv.Itoa(int(math.Max(1, math.Ceil(1/rate))))

	return waffleratelimit.MiddlewareWithLimiter(limiter, waffleratelimit.Config{
		KeyFunc: func(r *http.Request) string {
			return ClientIP(r, cfg.TrustedProxies)
		},
		OnLimited: func(w http.ResponseWriter, r *http.Request) {
			logger.Debug("rate limited",
				zap.String("ip", ClientIP(r, cfg.TrustedProxies)),
				zap.String("path", r.URL.Path))
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Retry-After", retryAfter)
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":"too many requests"}` + "\n"))
		},
	})
}

// ClientIP returns the address requests are counted against.
//
// The peer address (RemoteAddr) is used unless the peer is a trusted proxy.
// Behind a trusted proxy, X-Forwarded-For is read right to left and the
// first hop that is not itself a trusted proxy wins; X-Real-IP is the
// fallback. Client-supplied headers from untrusted peers are ignored.
func ClientIP(r *http.Request, trusted []netip.Prefix) string {
	peer := r.RemoteAddr
	if host, _, err := net.SplitHostPort(peer); err == nil {
		peer = host
	}
	addr, err := netip.ParseAddr(peer)
	if err != nil || !isTrusted(addr, trusted) {
		return peer
	}

	var hops []string
	for _, v := range r.Header.Values("X-Forwarded-For") {
		hops = append(hops, strings.Split(v, ",")...)
	}
	for i := len(hops) - 1; i >= 0; i-- {
		hop, err := netip.ParseAddr(strings.TrimSpace(hops[i]))
		if err != nil {
			break
		}
		if !isTrusted(hop, trusted) {
			return hop.Unmap().String()
		}
	}

	if xri, err := netip.ParseAddr(strings.TrimSpace(r.Header.Get("X-Real-IP"))); err == nil {
		return xri.Unmap().String()
	}
	return peer
}

func isTrusted(addr netip.Addr, trusted []netip.Prefix) bool {
	addr = addr.Unmap()
	for _, p := range trusted {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}

// ParseTrustedProxies parses a comma-separated list of IPs and CIDR ranges,
// e.g. "10.0.0.0/8, 192.168.1.10". Blank input yields no proxies.
func ParseTrustedProxies(raw string) ([]netip.Prefix, error) {
	var out []netip.Prefix
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if strings.Contains(part, "/") {
			p, err := netip.ParsePrefix(part)
			if err != nil {
				return nil, fmt.Errorf("trusted proxy %q: %w", part, err)
			}
			out = append(out, p.Masked())
			continue
		}
		a, err := netip.ParseAddr(part)
		if err != nil {
			return nil, fmt.Errorf("trusted proxy %q: %w", part, err)
		}
		a = a.Unmap()
		out = append(out, netip.PrefixFrom(a, a.BitLen()))
	}
	return out, nil
}
