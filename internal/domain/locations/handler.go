package locations

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
	r.Route("/locations", func(lr chi.Router) {
		lr.Post("/", createLocationHandler(svc))
		lr.Get("/", listLocationsHandler(svc))
		lr.Get("/{locationID}", getLocationHandler(svc))
		lr.Delete("/{locationID}", deleteLocationHandler(svc))
	})
}

type createLocationRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type locationResponse struct {
	ID        string    `json:"id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	CreatedAt time.Time `json:"created_at"`
}

func createLocationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authed(r) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createLocationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Create(r.Context(), CreateInput{
			Latitude:  req.Latitude,
			Longitude: req.Longitude,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrAlreadyExists):
				http.Error(w, err.Error(), http.StatusConflict)
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, toLocationResponse(p))
	}
}

func listLocationsHandler(svc *Service) http.HandlerFunc {
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

		out := make([]locationResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toLocationResponse(p))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func getLocationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authed(r) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "locationID"))
		if err != nil {
			http.Error(w, "location point not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, toLocationResponse(p))
	}
}

func deleteLocationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authed(r) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := svc.Delete(r.Context(), chi.URLParam(r, "locationID")); err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				http.Error(w, err.Error(), http.StatusNotFound)
			case errors.Is(err, ErrInUse):
				http.Error(w, err.Error(), http.StatusConflict)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func authed(r *http.Request) bool {
	claims, ok := middleware.GetClaims(r.Context())
	return ok && strings.TrimSpace(claims.UserID) != ""
}

func toLocationResponse(p LocationPoint) locationResponse {
	return locationResponse{
		ID:        p.ID,
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
		CreatedAt: p.CreatedAt,
	}
}

// writeJSON is intentionally duplicated across module handlers to avoid a
// shared helper package this early.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
