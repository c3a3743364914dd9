package timeouts_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dalemusser/driverdash/internal/app/system/timeouts"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestDefaults(t *testing.T) {
	timeouts.Reset()
	got := timeouts.Current()
	want := timeouts.Config{Ping: timeouts.DefaultPing, Short: timeouts.DefaultShort, Medium: timeouts.DefaultMedium}
	if got != want {
		t.Errorf("Current: got %+v, want %+v", got, want)
	}
}

func TestConfigure_IgnoresZero(t *testing.T) {
	t.Cleanup(timeouts.Reset)
	timeouts.Configure(timeouts.Config{Medium: 3 * time.Second})

	if got := timeouts.Medium(); got != 3*time.Second {
		t.Errorf("Medium: got %v, want 3s", got)
	}
	if got := timeouts.Ping(); got != timeouts.DefaultPing {
		t.Errorf("Ping: got %v, want %v", got, timeouts.DefaultPing)
	}
}

func TestWithTimeout_Expires(t *testing.T) {
	ctx, cancel := timeouts.WithTimeout(context.Background(), time.Millisecond, zap.NewNop(), "test")
	defer cancel()

	<-ctx.Done()
	if !errors.Is(ctx.Err(), context.DeadlineExceeded) {
		t.Errorf("Err: got %v, want DeadlineExceeded", ctx.Err())
	}
}

func TestWithTimeout_LogsDeadline(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	ctx, cancel := timeouts.WithTimeout(context.Background(), time.Millisecond, zap.New(core), "load drivers")
	<-ctx.Done()
	cancel()

	entries := logs.FilterMessage("operation timed out").All()
	if len(entries) != 1 {
		t.Fatalf("warnings: got %d, want 1", len(entries))
	}
	if got := entries[0].ContextMap()["operation"]; got != "load drivers" {
		t.Errorf("operation field: got %v, want %q", got, "load drivers")
	}
}

func TestWithTimeout_QuietWhenFinishedInTime(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	_, cancel := timeouts.WithTimeout(context.Background(), time.Hour, zap.New(core), "load drivers")
	cancel()

	if n := logs.Len(); n != 0 {
		t.Errorf("warnings: got %d, want 0", n)
	}
}
