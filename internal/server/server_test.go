package server

import (
	"context"
	"errors"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"todocli/internal/api"
)

// The handler is exercised through the real client so the two sides of
// the wire contract are tested against each other.
func newTestBackend(t *testing.T) *api.Client {
	t.Helper()
	store, err := OpenStore(filepath.Join(t.TempDir(), "todos.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	srv := httptest.NewServer(Handler(store))
	t.Cleanup(srv.Close)
	return api.New(srv.URL)
}

func TestBackend_EmptyListIsAnEmptyArray(t *testing.T) {
	c := newTestBackend(t)
	items, err := c.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Fatalf("expected empty collection, got %v", items)
	}
}

func TestBackend_CreateThenListRoundTrip(t *testing.T) {
	c := newTestBackend(t)
	ctx := context.Background()

	created, err := c.Create(ctx, "Buy milk")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" || created.Title != "Buy milk" || created.Completed {
		t.Fatalf("unexpected created record: %+v", created)
	}

	items, err := c.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 || items[0] != created {
		t.Fatalf("expected [%+v], got %v", created, items)
	}
}

func TestBackend_CreateRejectsBlankTitle(t *testing.T) {
	c := newTestBackend(t)
	if _, err := c.Create(context.Background(), "   "); !errors.Is(err, api.ErrCreateFailed) {
		t.Fatalf("expected ErrCreateFailed, got %v", err)
	}
}

func TestBackend_PatchToggleAndRename(t *testing.T) {
	c := newTestBackend(t)
	ctx := context.Background()

	created, err := c.Create(ctx, "Learn")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	done := true
	toggled, err := c.Update(ctx, created.ID, api.Patch{Completed: &done})
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !toggled.Completed || toggled.Title != "Learn" {
		t.Fatalf("unexpected toggled record: %+v", toggled)
	}

	title := "Learn Go"
	renamed, err := c.Update(ctx, created.ID, api.Patch{Title: &title})
	if err != nil {
		t.Fatalf("rename: %v", err)
	}
	if renamed.Title != "Learn Go" || !renamed.Completed {
		t.Fatalf("unexpected renamed record: %+v", renamed)
	}
}

func TestBackend_PatchUnknownIDFails(t *testing.T) {
	c := newTestBackend(t)
	done := true
	if _, err := c.Update(context.Background(), "missing", api.Patch{Completed: &done}); !errors.Is(err, api.ErrUpdateFailed) {
		t.Fatalf("expected ErrUpdateFailed, got %v", err)
	}
}

func TestBackend_AddThenRemoveRestoresCollection(t *testing.T) {
	c := newTestBackend(t)
	ctx := context.Background()

	if _, err := c.Create(ctx, "keep me"); err != nil {
		t.Fatalf("create: %v", err)
	}
	before, err := c.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	created, err := c.Create(ctx, "temporary")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := c.Remove(ctx, created.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}

	after, err := c.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(after) != len(before) {
		t.Fatalf("expected %d items after round trip, got %d", len(before), len(after))
	}
	for i := range before {
		if after[i] != before[i] {
			t.Fatalf("position %d changed: %+v vs %+v", i, before[i], after[i])
		}
	}
}

func TestBackend_RemoveUnknownIDFails(t *testing.T) {
	c := newTestBackend(t)
	if err := c.Remove(context.Background(), "missing"); !errors.Is(err, api.ErrDeleteFailed) {
		t.Fatalf("expected ErrDeleteFailed, got %v", err)
	}
}
