package app

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopfront/internal/config"
)

type fakeService struct {
	name     string
	startErr error
	mu       sync.Mutex
	stopped  bool
}

func (s *fakeService) Name() string { return s.name }

func (s *fakeService) Start(ctx context.Context) error {
	if s.startErr != nil {
		return s.startErr
	}
	<-ctx.Done()
	return nil
}

func (s *fakeService) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	return nil
}

func (s *fakeService) isStopped() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopped
}

func TestRunnerStopsAllServicesOnFailure(t *testing.T) {
	boom := errors.New("listen failed")
	failing := &fakeService{name: "http", startErr: boom}
	idle := &fakeService{name: "cache"}

	err := NewRunner(failing, idle).Run(context.Background(), time.Second, nil)
	if !errors.Is(err, boom) {
		t.Fatalf("expected start error, got %v", err)
	}
	if !failing.isStopped() || !idle.isStopped() {
		t.Fatalf("all services should be stopped")
	}
}

func TestRunnerReturnsNilOnCancel(t *testing.T) {
	idle := &fakeService{name: "cache"}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- NewRunner(idle).Run(ctx, time.Second, nil)
	}()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("cancel should not be reported as error, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("runner did not exit after cancel")
	}
	if !idle.isStopped() {
		t.Fatalf("service should be stopped after cancel")
	}
}

func TestRunnerWithoutServices(t *testing.T) {
	if err := NewRunner().Run(context.Background(), time.Second, nil); err == nil {
		t.Fatalf("expected error for empty runner")
	}
}

func TestNormalizeOptionsUsesConfiguredTimeout(t *testing.T) {
	cfg := &config.Config{}
	cfg.Server.ShutdownTimeoutSeconds = 3
	opts := normalizeOptions(Options{Config: cfg})
	if opts.ShutdownTimeout != 3*time.Second {
		t.Fatalf("shutdown timeout want 3s got %v", opts.ShutdownTimeout)
	}
	if opts.Logger == nil {
		t.Fatalf("logger should default")
	}

	opts = normalizeOptions(Options{})
	if opts.ShutdownTimeout != 10*time.Second {
		t.Fatalf("default shutdown timeout want 10s got %v", opts.ShutdownTimeout)
	}
}
