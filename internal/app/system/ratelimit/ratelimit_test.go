package ratelimit_test

import (
	"net/http"
	"net/http/httptest"
	"net/netip"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/driverdash/internal/app/system/ratelimit"
	"go.uber.org/zap"
)

func limited(cfg ratelimit.Config) http.Handler {
	return ratelimit.Middleware(cfg, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func get(h http.Handler, remote, forwarded string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/admin/drivers", nil)
	req.RemoteAddr = remote
	if forwarded != "" {
		req.Header.Set("X-Forwarded-For", forwarded)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func mustPrefixes(t *testing.T, raw string) []netip.Prefix {
	t.Helper()
	p, err := ratelimit.ParseTrustedProxies(raw)
	if err != nil {
		t.Fatalf("ParseTrustedProxies(%q): %v", raw, err)
	}
	return p
}

func TestMiddleware_LimitsPerClient(t *testing.T) {
	h := limited(ratelimit.Config{Limit: 2, Window: time.Minute})

	for i := 0; i < 2; i++ {
		if rec := get(h, "203.0.113.7:4000", ""); rec.Code != http.StatusOK {
			t.Fatalf("request %d status: got %d, want %d", i+1, rec.Code, http.StatusOK)
		}
	}

	rec := get(h, "203.0.113.7:4001", "")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("third status: got %d, want %d", rec.Code, http.StatusTooManyRequests)
	}
	if got := rec.Header().Get("Retry-After"); got != "30" {
		t.Errorf("Retry-After: got %q, want %q", got, "30")
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type: got %q", ct)
	}
	if !strings.Contains(rec.Body.String(), `"too many requests"`) {
		t.Errorf("body: got %q", rec.Body.String())
	}

	if rec := get(h, "198.51.100.1:4000", ""); rec.Code != http.StatusOK {
		t.Errorf("other client status: got %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestMiddleware_IgnoresForwardedHeadersFromUntrustedPeers(t *testing.T) {
	h := limited(ratelimit.Config{Limit: 2, Window: time.Minute})

	allowed := 0
	for i := 0; i < 10; i++ {
		if get(h, "203.0.113.7:4000", "10.1.0."+strconv.Itoa(i)).Code == http.StatusOK {
			allowed++
		}
	}
	if allowed != 2 {
		t.Errorf("allowed with rotating X-Forwarded-For: got %d, want 2", allowed)
	}
}

func TestMiddleware_TrustedProxyKeysByForwardedClient(t *testing.T) {
	h := limited(ratelimit.Config{
		Limit:          1,
		Window:         time.Minute,
		TrustedProxies: mustPrefixes(t, "10.0.0.0/8"),
	})

	if rec := get(h, "10.0.0.5:80", "198.51.100.1"); rec.Code != http.StatusOK {
		t.Fatalf("client 1 status: got %d", rec.Code)
	}
	if rec := get(h, "10.0.0.5:80", "198.51.100.2"); rec.Code != http.StatusOK {
		t.Fatalf("client 2 status: got %d", rec.Code)
	}
	if rec := get(h, "10.0.0.6:80", "198.51.100.1"); rec.Code != http.StatusTooManyRequests {
		t.Errorf("client 1 again status: got %d, want %d", rec.Code, http.StatusTooManyRequests)
	}
}

func TestClientIP(t *testing.T) {
	trusted := mustPrefixes(t, "10.0.0.0/8, 192.168.1.10")

	tests := []struct {
		name    string
		remote  string
		xff     string
		realIP  string
		trusted []netip.Prefix
		want    string
	}{
		{"remote addr", "10.0.0.1:5555", "", "", nil, "10.0.0.1"},
		{"remote without port", "10.0.0.1", "", "", nil, "10.0.0.1"},
		{"untrusted peer ignores xff", "203.0.113.9:1", "1.2.3.4", "", trusted, "203.0.113.9"},
		{"untrusted peer ignores real ip", "203.0.113.9:1", "", "1.2.3.4", trusted, "203.0.113.9"},
		{"no trusted proxies ignores xff", "10.0.0.1:1", "1.2.3.4", "", nil, "10.0.0.1"},
		{"trusted peer uses xff", "10.0.0.1:1", "198.51.100.4", "", trusted, "198.51.100.4"},
		{"rightmost untrusted hop wins", "10.0.0.1:1", "6.6.6.6, 198.51.100.4, 192.168.1.10", "", trusted, "198.51.100.4"},
		{"trusted peer uses real ip", "10.0.0.1:1", "", " 198.51.100.5 ", trusted, "198.51.100.5"},
		{"garbage xff falls back to peer", "10.0.0.1:1", "not-an-ip", "", trusted, "10.0.0.1"},
		{"ipv6 peer", "[2001:db8::1]:443", "", "", nil, "2001:db8::1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tt.remote
			if tt.xff != "" {
				r.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.realIP != "" {
				r.Header.Set("X-Real-IP", tt.realIP)
			}
			if got := ratelimit.ClientIP(r, tt.trusted); got != tt.want {
				t.Errorf("ClientIP: got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseTrustedProxies(t *testing.T) {
	got, err := ratelimit.ParseTrustedProxies(" 10.1.2.3/8 ,192.168.1.10,, ::1 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"10.0.0.0/8", "192.168.1.10/32", "::1/128"}
	if len(got) != len(want) {
		t.Fatalf("prefixes: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i].String() != want[i] {
			t.Errorf("prefix %d: got %q, want %q", i, got[i], want[i])
		}
	}

	if _, err := ratelimit.ParseTrustedProxies("10.0.0.0/99"); err == nil {
		t.Error("expected error for bad CIDR")
	}
	if _, err := ratelimit.ParseTrustedProxies("proxy.local"); err == nil {
		t.Error("expected error for hostname")
	}
}
