package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"todocli/internal/model"
)

// Handler exposes the todo collection as the REST surface clients
// expect: GET/POST /todos, PATCH/DELETE /todos/{id}.
func Handler(store *Store) *http.ServeMux {
	mux := http.NewServeMux()
	h := &todoHandler{store: store}

	mux.HandleFunc("GET /todos", h.list)
	mux.HandleFunc("POST /todos", h.create)
	mux.HandleFunc("PATCH /todos/{id}", h.patch)
	mux.HandleFunc("DELETE /todos/{id}", h.delete)

	return mux
}

// ListenAndServe runs the mock backend until the process exits.
func ListenAndServe(addr, dbPath string) error {
	store, err := OpenStore(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	log.Printf("todo backend listening on %s (db %s)", addr, dbPath)
	return http.ListenAndServe(addr, Handler(store))
}

type todoHandler struct {
	store *Store
}

type createBody struct {
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

type patchBody struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
}

func (h *todoHandler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *todoHandler) create(w http.ResponseWriter, r *http.Request) {
	var body createBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid JSON body"))
		return
	}
	if strings.TrimSpace(body.Title) == "" {
		writeError(w, http.StatusBadRequest, errors.New("title must not be empty"))
		return
	}
	created, err := h.store.Create(r.Context(), body.Title)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *todoHandler) patch(w http.ResponseWriter, r *http.Request) {
	var body patchBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid JSON body"))
		return
	}
	if body.Title != nil && strings.TrimSpace(*body.Title) == "" {
		writeError(w, http.StatusBadRequest, errors.New("title must not be empty"))
		return
	}
	updated, err := h.store.Patch(r.Context(), model.ID(r.PathValue("id")), body.Title, body.Completed)
	if errors.Is(err, ErrNotFound) {
		writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *todoHandler) delete(w http.ResponseWriter, r *http.Request) {
	err := h.store.Delete(r.Context(), model.ID(r.PathValue("id")))
	if errors.Is(err, ErrNotFound) {
		writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
