package animals

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"animal-chip-registry/internal/domain/animaltypes"
	"animal-chip-registry/internal/domain/locations"
	"animal-chip-registry/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, locationsSvc *locations.Service, typesSvc *animaltypes.Service) {
	r.Route("/animals", func(ar chi.Router) {
		ar.Post("/", createAnimalHandler(svc, locationsSvc, typesSvc))
		ar.Get("/{animalID}", getAnimalHandler(svc))
		ar.Patch("/{animalID}", updateAnimalHandler(svc, locationsSvc))
		ar.Delete("/{animalID}", deleteAnimalHandler(svc))

		// Type tags (chipper only)
		ar.Post("/{animalID}/types/{typeID}", addTypeHandler(svc, typesSvc))
		ar.Put("/{animalID}/types", changeTypeHandler(svc, typesSvc))
		ar.Delete("/{animalID}/types/{typeID}", deleteTypeHandler(svc))

		// Movement history (chipper only for mutations)
		ar.Get("/{animalID}/locations", listVisitedLocationsHandler(svc))
		ar.Post("/{animalID}/locations", addVisitedLocationHandler(svc, locationsSvc))
		ar.Put("/{animalID}/locations/{visitedID}", changeVisitedLocationHandler(svc, locationsSvc))
		ar.Delete("/{animalID}/locations/{visitedID}", deleteVisitedLocationHandler(svc))
	})

	// Animals chipped by the authenticated user
	r.Get("/me/animals", listMyAnimalsHandler(svc))
}

type createAnimalRequest struct {
	TypeIDs            []string `json:"type_ids"`
	Weight             float64  `json:"weight"`
	Length             float64  `json:"length"`
	Height             float64  `json:"height"`
	Gender             Gender   `json:"gender" enums:"male,female,other"`
	ChippingLocationID string   `json:"chipping_location_id"`
}

type updateAnimalRequest struct {
	// Pointers for real PATCH semantics: nil = leave unchanged.
	Weight             *float64    `json:"weight"`
	Length             *float64    `json:"length"`
	Height             *float64    `json:"height"`
	Gender             *Gender     `json:"gender"`
	LifeStatus         *LifeStatus `json:"life_status"`
	ChippingLocationID *string     `json:"chipping_location_id"`
}

type changeTypeRequest struct {
	OldTypeID string `json:"old_type_id"`
	NewTypeID string `json:"new_type_id"`
}

type visitRequest struct {
	LocationPointID string `json:"location_point_id"`
}

type visitedLocationResponse struct {
	ID              string    `json:"id"`
	LocationPointID string    `json:"location_point_id"`
	VisitDatetime   time.Time `json:"visit_datetime"`
}

type animalResponse struct {
	ID                 string                    `json:"id"`
	TypeIDs            []string                  `json:"type_ids"`
	Weight             float64                   `json:"weight"`
	Length             float64                   `json:"length"`
	Height             float64                   `json:"height"`
	Gender             Gender                    `json:"gender"`
	LifeStatus         LifeStatus                `json:"life_status"`
	ChippingDatetime   time.Time                 `json:"chipping_datetime"`
	ChippingLocationID string                    `json:"chipping_location_id"`
	ChipperID          string                    `json:"chipper_id"`
	VisitedLocations   []visitedLocationResponse `json:"visited_locations"`
	DeathDatetime      *time.Time                `json:"death_datetime,omitempty"`
}

// createAnimalHandler godoc
// @Summary Register a chipped animal
// @Description Registers a new animal. The authenticated user becomes its chipper. All type ids and the chipping location must already exist.
// @Tags animals
// @Accept json
// @Produce json
// @Param payload body createAnimalRequest true "Animal data"
// @Success 201 {object} animalResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "type or location point not found"
// @Failure 409 {string} string "duplicate type ids"
// @Router /animals [post]
func createAnimalHandler(svc *Service, locationsSvc *locations.Service, typesSvc *animaltypes.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createAnimalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		// Referenced catalog entries must exist.
		for _, typeID := range req.TypeIDs {
			if _, err := typesSvc.GetByID(r.Context(), typeID); err != nil {
				http.Error(w, "animal type not found", http.StatusNotFound)
				return
			}
		}
		if _, err := locationsSvc.GetByID(r.Context(), req.ChippingLocationID); err != nil {
			http.Error(w, "location point not found", http.StatusNotFound)
			return
		}

		a, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			TypeIDs:            req.TypeIDs,
			Weight:             req.Weight,
			Length:             req.Length,
			Height:             req.Height,
			Gender:             req.Gender,
			ChippingLocationID: req.ChippingLocationID,
		})
		if err != nil {
			writeDomainError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toAnimalResponse(a))
	}
}

func getAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := authedUser(r); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		a, err := svc.GetByID(r.Context(), chi.URLParam(r, "animalID"))
		if err != nil {
			http.Error(w, "animal not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, toAnimalResponse(a))
	}
}

func listMyAnimalsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authedUser(r)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListByChipper(r.Context(), userID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]animalResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAnimalResponse(a))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func updateAnimalHandler(svc *Service, locationsSvc *locations.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, ok := requireChipper(w, r, svc)
		if !ok {
			return
		}

		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req updateAnimalRequest
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		if req.ChippingLocationID != nil {
			if _, err := locationsSvc.GetByID(r.Context(), *req.ChippingLocationID); err != nil {
				http.Error(w, "location point not found", http.StatusNotFound)
				return
			}
		}

		updated, err := svc.Update(r.Context(), a.ID, Patch{
			Weight:             req.Weight,
			Length:             req.Length,
			Height:             req.Height,
			Gender:             req.Gender,
			LifeStatus:         req.LifeStatus,
			ChippingLocationID: req.ChippingLocationID,
		})
		if err != nil {
			writeDomainError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toAnimalResponse(updated))
	}
}

func deleteAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, ok := requireChipper(w, r, svc)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), a.ID); err != nil {
			writeDomainError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func addTypeHandler(svc *Service, typesSvc *animaltypes.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, ok := requireChipper(w, r, svc)
		if !ok {
			return
		}

		typeID := chi.URLParam(r, "typeID")
		if _, err := typesSvc.GetByID(r.Context(), typeID); err != nil {
			http.Error(w, "animal type not found", http.StatusNotFound)
			return
		}

		updated, err := svc.AddType(r.Context(), a.ID, typeID)
		if err != nil {
			writeDomainError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toAnimalResponse(updated))
	}
}

func changeTypeHandler(svc *Service, typesSvc *animaltypes.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, ok := requireChipper(w, r, svc)
		if !ok {
			return
		}

		var req changeTypeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		if _, err := typesSvc.GetByID(r.Context(), req.NewTypeID); err != nil {
			http.Error(w, "animal type not found", http.StatusNotFound)
			return
		}

		updated, err := svc.ChangeType(r.Context(), a.ID, req.OldTypeID, req.NewTypeID)
		if err != nil {
			writeDomainError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toAnimalResponse(updated))
	}
}

func deleteTypeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, ok := requireChipper(w, r, svc)
		if !ok {
			return
		}

		updated, err := svc.DeleteType(r.Context(), a.ID, chi.URLParam(r, "typeID"))
		if err != nil {
			writeDomainError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toAnimalResponse(updated))
	}
}

func listVisitedLocationsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := authedUser(r); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		a, err := svc.GetByID(r.Context(), chi.URLParam(r, "animalID"))
		if err != nil {
			http.Error(w, "animal not found", http.StatusNotFound)
			return
		}

		out := make([]visitedLocationResponse, 0, len(a.VisitedLocations))
		for _, v := range a.VisitedLocations {
			out = append(out, toVisitedResponse(v))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// addVisitedLocationHandler godoc
// @Summary Record a visited location
// @Description Appends a location point to the animal's movement history. Rejected for dead animals, for the chipping location and for the point the animal is currently at.
// @Tags animals
// @Accept json
// @Produce json
// @Param animalID path string true "Animal ID"
// @Param payload body visitRequest true "Location point to record"
// @Success 201 {object} visitedLocationResponse
// @Failure 400 {string} string "invalid json / rule violation"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "animal or location point not found"
// @Failure 409 {string} string "animal already at this point"
// @Router /animals/{animalID}/locations [post]
func addVisitedLocationHandler(svc *Service, locationsSvc *locations.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, ok := requireChipper(w, r, svc)
		if !ok {
			return
		}

		var req visitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		if _, err := locationsSvc.GetByID(r.Context(), req.LocationPointID); err != nil {
			http.Error(w, "location point not found", http.StatusNotFound)
			return
		}

		v, err := svc.AddVisitedLocation(r.Context(), a.ID, req.LocationPointID)
		if err != nil {
			writeDomainError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toVisitedResponse(v))
	}
}

func changeVisitedLocationHandler(svc *Service, locationsSvc *locations.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, ok := requireChipper(w, r, svc)
		if !ok {
			return
		}

		var req visitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		if _, err := locationsSvc.GetByID(r.Context(), req.LocationPointID); err != nil {
			http.Error(w, "location point not found", http.StatusNotFound)
			return
		}

		v, err := svc.ChangeVisitedLocation(r.Context(), a.ID, chi.URLParam(r, "visitedID"), req.LocationPointID)
		if err != nil {
			writeDomainError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toVisitedResponse(v))
	}
}

func deleteVisitedLocationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, ok := requireChipper(w, r, svc)
		if !ok {
			return
		}

		if _, err := svc.DeleteVisitedLocation(r.Context(), a.ID, chi.URLParam(r, "visitedID")); err != nil {
			writeDomainError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func authedUser(r *http.Request) (string, bool) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.UserID) == "" {
		return "", false
	}
	return claims.UserID, true
}

// requireChipper loads the animal from the path and enforces that the
// authenticated user is its chipper. Mutations are chipper-only.
func requireChipper(w http.ResponseWriter, r *http.Request, svc *Service) (Animal, bool) {
	userID, ok := authedUser(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return Animal{}, false
	}

	a, err := svc.GetByID(r.Context(), chi.URLParam(r, "animalID"))
	if err != nil {
		http.Error(w, "animal not found", http.StatusNotFound)
		return Animal{}, false
	}

	if a.ChipperID != userID {
		http.Error(w, "forbidden", http.StatusForbidden)
		return Animal{}, false
	}
	return a, true
}

// writeDomainError maps aggregate rule errors onto HTTP statuses: absence to
// 404, "already there" conflicts to 409, everything else the rules reject to
// 400.
func writeDomainError(w http.ResponseWriter, err error) {
	var (
		noType    *NoSuchTypeError
		noVisited *NoSuchVisitedLocationError

		haveType  *AlreadyHaveTypeError
		haveBoth  *HaveBothTypesError
		atPoint   *AlreadyAtPointError
		duplicate *DuplicateTypeError
	)

	switch {
	case errors.Is(err, ErrNotFound):
		http.Error(w, "animal not found", http.StatusNotFound)
	case errors.As(err, &noType), errors.As(err, &noVisited):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.As(err, &haveType), errors.As(err, &haveBoth),
		errors.As(err, &atPoint), errors.As(err, &duplicate):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		var dead *DeadAnimalError
		var onlyType *OnlyTypeError
		var chipPoint *ChippingLocationError
		var samePoint *SamePointError
		var adjacent *AdjacentPointError
		var firstChip *FirstPointChippingError
		var hasVisits *HasVisitedLocationsError
		if errors.As(err, &dead) || errors.As(err, &onlyType) || errors.As(err, &chipPoint) ||
			errors.As(err, &samePoint) || errors.As(err, &adjacent) ||
			errors.As(err, &firstChip) || errors.As(err, &hasVisits) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toVisitedResponse(v VisitedLocation) visitedLocationResponse {
	return visitedLocationResponse{
		ID:              v.ID,
		LocationPointID: v.LocationPointID,
		VisitDatetime:   v.VisitDatetime,
	}
}

func toAnimalResponse(a Animal) animalResponse {
	typeIDs := make([]string, 0, len(a.Types))
	for _, t := range a.Types {
		typeIDs = append(typeIDs, t.TypeID)
	}

	visits := make([]visitedLocationResponse, 0, len(a.VisitedLocations))
	for _, v := range a.VisitedLocations {
		visits = append(visits, toVisitedResponse(v))
	}

	return animalResponse{
		ID:                 a.ID,
		TypeIDs:            typeIDs,
		Weight:             a.Weight,
		Length:             a.Length,
		Height:             a.Height,
		Gender:             a.Gender,
		LifeStatus:         a.LifeStatus,
		ChippingDatetime:   a.ChippingDatetime,
		ChippingLocationID: a.ChippingLocationID,
		ChipperID:          a.ChipperID,
		VisitedLocations:   visits,
		DeathDatetime:      a.DeathDatetime,
	}
}

// writeJSON is intentionally duplicated across module handlers to avoid a
// shared helper package this early.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
