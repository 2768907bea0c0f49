package app

import (
	"context"
	"testing"
)

func TestNewDependencies_MemoryFallback(t *testing.T) {
	deps, err := NewDependencies(context.Background(), Config{}, nil)
	if err != nil {
		t.Fatalf("NewDependencies failed: %v", err)
	}
	defer func() { _ = deps.Close() }()

	if deps.Clients == nil {
		t.Error("Clients repository should not be nil")
	}

	if deps.Products == nil {
		t.Error("Products repository should not be nil")
	}

	if deps.Orders == nil {
		t.Error("Orders repository should not be nil")
	}

	if deps.Store != nil {
		t.Error("Store should be nil when DSN is empty")
	}

	if deps.Logger == nil {
		t.Error("Logger should not be nil")
	}
}

func TestDependenciesCloseNil(t *testing.T) {
	var deps *Dependencies
	if err := deps.Close(); err != nil {
		t.Errorf("Close on nil dependencies should not fail: %v", err)
	}
}
