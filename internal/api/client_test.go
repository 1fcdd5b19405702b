package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestList_ReturnsServerOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/todos" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		io.WriteString(w, `[{"id":1,"title":"Learn","completed":false},{"id":2,"title":"Ship","completed":true}]`)
	}))
	defer srv.Close()

	items, err := New(srv.URL).List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].ID != "1" || items[0].Title != "Learn" || items[0].Completed {
		t.Fatalf("unexpected first item: %+v", items[0])
	}
	if items[1].ID != "2" || !items[1].Completed {
		t.Fatalf("unexpected second item: %+v", items[1])
	}
}

func TestList_NonSuccessStatusIsLoadFailed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := New(srv.URL).List(context.Background())
	if !errors.Is(err, ErrLoadFailed) {
		t.Fatalf("expected ErrLoadFailed, got %v", err)
	}
}

func TestList_UnreachableServerIsLoadFailed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	_, err := New(srv.URL).List(context.Background())
	if !errors.Is(err, ErrLoadFailed) {
		t.Fatalf("expected ErrLoadFailed, got %v", err)
	}
}

func TestCreate_PostsTitleWithCompletedFalse(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/todos" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"id":"2","title":"Buy milk","completed":false}`)
	}))
	defer srv.Close()

	created, err := New(srv.URL).Create(context.Background(), "Buy milk")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != "2" || created.Title != "Buy milk" {
		t.Fatalf("unexpected created item: %+v", created)
	}
	if gotBody["title"] != "Buy milk" || gotBody["completed"] != false {
		t.Fatalf("unexpected request body: %v", gotBody)
	}
	if _, hasID := gotBody["id"]; hasID {
		t.Fatalf("client must not send an id on create; body: %v", gotBody)
	}
}

func TestCreate_NonSuccessStatusIsCreateFailed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	_, err := New(srv.URL).Create(context.Background(), "x")
	if !errors.Is(err, ErrCreateFailed) {
		t.Fatalf("expected ErrCreateFailed, got %v", err)
	}
}

func TestUpdate_SendsOnlyPresentFields(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/todos/1" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode body: %v", err)
		}
		io.WriteString(w, `{"id":1,"title":"Learn","completed":true}`)
	}))
	defer srv.Close()

	done := true
	updated, err := New(srv.URL).Update(context.Background(), "1", Patch{Completed: &done})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !updated.Completed || updated.Title != "Learn" {
		t.Fatalf("unexpected updated item: %+v", updated)
	}
	if gotBody["completed"] != true {
		t.Fatalf("expected completed=true in body, got %v", gotBody)
	}
	if _, hasTitle := gotBody["title"]; hasTitle {
		t.Fatalf("nil patch field must be omitted; body: %v", gotBody)
	}
}

func TestUpdate_NonSuccessStatusIsUpdateFailed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	title := "y"
	_, err := New(srv.URL).Update(context.Background(), "9", Patch{Title: &title})
	if !errors.Is(err, ErrUpdateFailed) {
		t.Fatalf("expected ErrUpdateFailed, got %v", err)
	}
}

func TestRemove_DeletesByID(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		if r.Method != http.MethodDelete || r.URL.Path != "/todos/3" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	if err := New(srv.URL).Remove(context.Background(), "3"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if !called {
		t.Fatalf("expected a DELETE request")
	}
}

func TestRemove_NonSuccessStatusIsDeleteFailed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	err := New(srv.URL).Remove(context.Background(), "3")
	if !errors.Is(err, ErrDeleteFailed) {
		t.Fatalf("expected ErrDeleteFailed, got %v", err)
	}
}
