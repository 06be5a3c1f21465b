package grpc

import (
	"context"
	"testing"
	"time"

	"github.com/guardianos/guardian-sync/internal/logging"
	"github.com/guardianos/guardian-sync/internal/server/config"
	"github.com/guardianos/guardian-sync/internal/server/services"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

func newRunServer(t *testing.T, address string) *GRPCServer {
	t.Helper()
	cfg := &config.Config{EndpointAddrGRPC: address, UploadChunkSize: 64 * 1024}
	srv, err := NewGRPCServer(nopLogger{}, cfg,
		(*services.AuthService)(nil), (*services.SyncService)(nil),
		(*services.FileService)(nil), (*services.FamilyService)(nil))
	if err != nil {
		t.Fatalf("NewGRPCServer error: %v", err)
	}
	return srv
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	srv := newRunServer(t, "127.0.0.1:0")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	select {
	case err := <-done:
		t.Fatalf("server exited too early: %v", err)
	case <-time.After(150 * time.Millisecond):
	}

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error on graceful stop: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop within timeout after context cancel")
	}
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	t.Parallel()

	srv := newRunServer(t, "127.0.0.1:99999")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := srv.Run(ctx); err == nil {
		t.Fatal("expected error from Run on bad address, got nil")
	}
}
