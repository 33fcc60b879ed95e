package grpc

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/tasktracker/internal/logging"
	pb "github.com/dmitrijs2005/tasktracker/internal/proto"
)

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	srv, err := NewGRPCServer("127.0.0.1:0", logging.Nop{}, &fakeUser{}, &fakeTasks{}, &fakeCategories{}, &fakeExports{}, "secret")
	if err != nil {
		t.Fatalf("NewGRPCServer error: %v", err)
	}

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

	srv, err := NewGRPCServer("127.0.0.1:99999", logging.Nop{}, &fakeUser{}, &fakeTasks{}, &fakeCategories{}, &fakeExports{}, "secret")
	if err != nil {
		t.Fatalf("NewGRPCServer error (constructor should not fail here): %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := srv.Run(ctx); err == nil {
		t.Fatal("expected error from Run on bad address, got nil")
	}
}

func TestNewServer_RegistersEveryMethod(t *testing.T) {
	srv, err := NewGRPCServer("127.0.0.1:0", logging.Nop{}, &fakeUser{}, &fakeTasks{}, &fakeCategories{}, &fakeExports{}, "secret")
	if err != nil {
		t.Fatalf("NewGRPCServer error: %v", err)
	}

	info, ok := srv.NewServer().GetServiceInfo()[pb.TaskTracker_ServiceDesc.ServiceName]
	if !ok {
		t.Fatalf("service %q not registered", pb.TaskTracker_ServiceDesc.ServiceName)
	}
	if len(info.Methods) != 21 {
		t.Fatalf("expected 21 methods, got %d", len(info.Methods))
	}
}
