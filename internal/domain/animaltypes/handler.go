package animaltypes

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"animal-chip-registry/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/types", func(tr chi.Router) {
		tr.Post("/", createTypeHandler(svc))
		tr.Get("/", listTypesHandler(svc))
		tr.Get("/{typeID}", getTypeHandler(svc))
		tr.Patch("/{typeID}", renameTypeHandler(svc))
		tr.Delete("/{typeID}", deleteTypeHandler(svc))
	})
}

type typeRequest struct {
	Name string `json:"name"`
}

type typeResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func createTypeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authed(r) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req typeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		t, err := svc.Create(r.Context(), req.Name)
		if err != nil {
			writeTypeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toTypeResponse(t))
	}
}

func listTypesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authed(r) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]typeResponse, 0, len(items))
		for _, t := range items {
			out = append(out, toTypeResponse(t))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func getTypeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authed(r) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		t, err := svc.GetByID(r.Context(), chi.URLParam(r, "typeID"))
		if err != nil {
			http.Error(w, "animal type not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, toTypeResponse(t))
	}
}

func renameTypeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authed(r) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req typeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		t, err := svc.Rename(r.Context(), chi.URLParam(r, "typeID"), req.Name)
		if err != nil {
			writeTypeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toTypeResponse(t))
	}
}

func deleteTypeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authed(r) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := svc.Delete(r.Context(), chi.URLParam(r, "typeID")); err != nil {
			writeTypeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func writeTypeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrAlreadyExists), errors.Is(err, ErrInUse):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func authed(r *http.Request) bool {
	claims, ok := middleware.GetClaims(r.Context())
	return ok && strings.TrimSpace(claims.UserID) != ""
}

func toTypeResponse(t AnimalType) typeResponse {
	return typeResponse{
		ID:        t.ID,
		Name:      t.Name,
		CreatedAt: t.CreatedAt,
	}
}

// writeJSON is intentionally duplicated across module handlers to avoid a
// shared helper package this early.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
