package navigation_test

import (
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/driverdash/internal/app/system/navigation"
)

func TestItems_FixedFive(t *testing.T) {
	items := navigation.Items("")
	want := []navigation.Link{
		{Label: "Dashboard", Href: "/admin"},
		{Label: "Drivers", Href: "/admin/drivers"},
		{Label: "Analytics", Href: "/admin/analytics"},
		{Label: "Partners", Href: "/admin/partners"},
		{Label: "Alerts", Href: "/admin/alerts"},
	}
	if len(items) != len(want) {
		t.Fatalf("len: got %d, want %d", len(items), len(want))
	}
	for i := range want {
		if items[i].Link != want[i] {
			t.Errorf("link %d: got %+v, want %+v", i, items[i].Link, want[i])
		}
		if items[i].Active {
			t.Errorf("link %d active with no current path", i)
		}
	}
}

func TestItems_ReturnsCopy(t *testing.T) {
	items := navigation.Items("/admin")
	items[0].Label = "changed"
	if navigation.Items("/admin")[0].Label != "Dashboard" {
		t.Error("Items exposed internal state")
	}
}

func TestItems_ActiveLink(t *testing.T) {
	tests := []struct {
		path   string
		active string
	}{
		{"/admin", "Dashboard"},
		{"/admin/", "Dashboard"},
		{"/admin/drivers", "Drivers"},
		{"/admin/drivers/?x=1", "Drivers"},
		{"/admin/alerts", "Alerts"},
		{"/health", ""},
		{"/administrator", ""},
	}
	for _, tt := range tests {
		items := navigation.Items(tt.path)
		if len(items) != 5 {
			t.Fatalf("%s: got %d items, want 5", tt.path, len(items))
		}
		got := ""
		n := 0
		for _, it := range items {
			if it.Active {
				got = it.Label
				n++
			}
		}
		if n > 1 {
			t.Errorf("%s: %d active items", tt.path, n)
		}
		if got != tt.active {
			t.Errorf("%s: active got %q, want %q", tt.path, got, tt.active)
		}
	}
}

func TestSafeBackURL_Fallback(t *testing.T) {
	req := httptest.NewRequest("GET", "/logout", nil)
	if got := navigation.SafeBackURL(req, navigation.AdminBackURL); got != "/admin" {
		t.Errorf("got %q, want %q", got, "/admin")
	}
}

func TestSafeBackURL_AllowsAdminPath(t *testing.T) {
	req := httptest.NewRequest("GET", "/logout?return=/admin/partners", nil)
	if got := navigation.SafeBackURL(req, navigation.AdminBackURL); got != "/admin/partners" {
		t.Errorf("got %q, want %q", got, "/admin/partners")
	}
}

func TestSafeBackURL_RejectsOutsidePrefix(t *testing.T) {
	for _, ret := range []string{"/health", "/administrator", "https://evil.example.com/admin"} {
		req := httptest.NewRequest("GET", "/logout?return="+ret, nil)
		if got := navigation.SafeBackURL(req, navigation.AdminBackURL); got != "/admin" {
			t.Errorf("return=%s: got %q, want %q", ret, got, "/admin")
		}
	}
}
