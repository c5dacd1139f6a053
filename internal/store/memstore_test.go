package store_test

import (
	"context"
	"errors"
	"testing"

	"chronos-analytics/internal/store"
)

func TestMemStore_FetchAll(t *testing.T) {
	ms := store.NewMemStore()
	ms.Put("clientes",
		store.Record{"id": "c1", "nombre": "Alpha"},
		store.Record{"id": "c2", "nombre": "Beta"},
	)
	ctx := context.Background()

	records, err := ms.FetchAll(ctx, "clientes")
	if err != nil {
		t.Fatalf("FetchAll failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	// The returned slice is a copy: replacing an element must not leak
	// into the fixture.
	records[0] = store.Record{"id": "hacked"}
	again, err := ms.FetchAll(ctx, "clientes")
	if err != nil {
		t.Fatalf("second FetchAll failed: %v", err)
	}
	if again[0].ID() != "c1" {
		t.Errorf("fixture mutated: got ID %q, want c1", again[0].ID())
	}

	// Unknown collections are empty, not an error.
	empty, err := ms.FetchAll(ctx, "desconocida")
	if err != nil {
		t.Fatalf("unknown collection: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("unknown collection: got %d records, want 0", len(empty))
	}
}

func TestMemStore_FailWith(t *testing.T) {
	ms := store.NewMemStore()
	want := errors.New("store unavailable")
	ms.FailWith("ventas", want)

	_, err := ms.FetchAll(context.Background(), "ventas")
	if !errors.Is(err, want) {
		t.Errorf("got %v, want %v", err, want)
	}
}

func TestMemStore_ContextCancelled(t *testing.T) {
	ms := store.NewMemStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := ms.FetchAll(ctx, "clientes"); !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}
