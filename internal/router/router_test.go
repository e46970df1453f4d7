package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"animal-chip-registry/internal/router"
)

func TestHTTP_EndToEnd_AnimalLifecycle(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	chipperID := "chipper-1"
	strangerID := "stranger-1"

	// 1) Catalog: types and location points
	typeA := createType(t, ts.URL, chipperID, "mammal")
	typeB := createType(t, ts.URL, chipperID, "rodent")

	p5 := createLocation(t, ts.URL, chipperID, 55.0, 20.0)
	p7 := createLocation(t, ts.URL, chipperID, 56.0, 21.0)
	p9 := createLocation(t, ts.URL, chipperID, 57.0, 22.0)

	// duplicate coordinates => 409
	{
		st, _ := doReq(t, ts.URL, "POST", "/locations", chipperID, map[string]any{
			"latitude": 55.0, "longitude": 20.0,
		})
		if st != http.StatusConflict {
			t.Fatalf("expected 409 for duplicate coordinates, got %d", st)
		}
	}

	// 2) Register the animal, chipped at p5
	animalID := createAnimal(t, ts.URL, chipperID, map[string]any{
		"type_ids":             []string{typeA},
		"weight":               4.2,
		"length":               0.61,
		"height":               0.24,
		"gender":               "female",
		"chipping_location_id": p5,
	})

	// 3) Unauthenticated => 401; a stranger cannot mutate => 403
	{
		st, _ := doReq(t, ts.URL, "GET", "/animals/"+animalID, "", nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 without auth, got %d", st)
		}
	}
	{
		st, _ := doReq(t, ts.URL, "POST", "/animals/"+animalID+"/locations", strangerID, map[string]any{
			"location_point_id": p7,
		})
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 for stranger mutation, got %d", st)
		}
	}

	// 4) Movement rules: chipping location rejected, unknown point 404
	{
		st, _ := doReq(t, ts.URL, "POST", "/animals/"+animalID+"/locations", chipperID, map[string]any{
			"location_point_id": p5,
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 visiting the chipping location, got %d", st)
		}
	}
	{
		st, _ := doReq(t, ts.URL, "POST", "/animals/"+animalID+"/locations", chipperID, map[string]any{
			"location_point_id": "nope",
		})
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 for unknown point, got %d", st)
		}
	}

	// 5) Visit p7, re-visit p7 => 409, then p9
	v1 := addVisit(t, ts.URL, chipperID, animalID, p7)
	{
		st, _ := doReq(t, ts.URL, "POST", "/animals/"+animalID+"/locations", chipperID, map[string]any{
			"location_point_id": p7,
		})
		if st != http.StatusConflict {
			t.Fatalf("expected 409 re-visiting the current point, got %d", st)
		}
	}
	v2 := addVisit(t, ts.URL, chipperID, animalID, p9)

	// 6) Edit the last visit back to the chip point (allowed for non-first
	// entries), then delete the first one: both entries must go.
	{
		st, body := doReq(t, ts.URL, "PUT", "/animals/"+animalID+"/locations/"+v2, chipperID, map[string]any{
			"location_point_id": p5,
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 editing last visit, got %d body=%s", st, string(body))
		}
	}
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/animals/"+animalID+"/locations/"+v1, chipperID, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 deleting first visit, got %d", st)
		}
	}
	{
		st, body := doReq(t, ts.URL, "GET", "/animals/"+animalID+"/locations", chipperID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 listing visits, got %d", st)
		}
		var visits []map[string]any
		_ = json.Unmarshal(body, &visits)
		if len(visits) != 0 {
			t.Fatalf("expected empty history after collapse, got %v", visits)
		}
	}

	// 7) Type tags: add, duplicate add, remove down to one
	{
		st, _ := doReq(t, ts.URL, "POST", "/animals/"+animalID+"/types/"+typeB, chipperID, nil)
		if st != http.StatusCreated {
			t.Fatalf("expected 201 adding type, got %d", st)
		}
	}
	{
		st, _ := doReq(t, ts.URL, "POST", "/animals/"+animalID+"/types/"+typeB, chipperID, nil)
		if st != http.StatusConflict {
			t.Fatalf("expected 409 adding duplicate type, got %d", st)
		}
	}
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/animals/"+animalID+"/types/"+typeA, chipperID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 deleting type, got %d", st)
		}
	}
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/animals/"+animalID+"/types/"+typeB, chipperID, nil)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 deleting the sole type, got %d", st)
		}
	}

	// 8) Dead animals keep their patch surface but stop moving
	{
		st, body := doReq(t, ts.URL, "PATCH", "/animals/"+animalID, chipperID, map[string]any{
			"life_status": "dead",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 patching life status, got %d body=%s", st, string(body))
		}
		var resp map[string]any
		_ = json.Unmarshal(body, &resp)
		if resp["death_datetime"] == nil {
			t.Fatalf("expected death_datetime set, body=%s", string(body))
		}
	}
	{
		st, _ := doReq(t, ts.URL, "POST", "/animals/"+animalID+"/locations", chipperID, map[string]any{
			"location_point_id": p7,
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 adding visit to dead animal, got %d", st)
		}
	}
	{
		st, _ := doReq(t, ts.URL, "PATCH", "/animals/"+animalID, chipperID, map[string]any{
			"weight": 5.1,
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 patching dead animal's weight, got %d", st)
		}
	}

	// 9) History is empty again, so deletion goes through
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/animals/"+animalID, chipperID, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 deleting animal, got %d", st)
		}
	}
	{
		st, _ := doReq(t, ts.URL, "GET", "/animals/"+animalID, chipperID, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 after delete, got %d", st)
		}
	}
}

func TestHTTP_CreateAnimal_UnknownReferences(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	chipperID := "chipper-1"
	p5 := createLocation(t, ts.URL, chipperID, 55.0, 20.0)

	// unknown type id => 404
	{
		st, _ := doReq(t, ts.URL, "POST", "/animals", chipperID, map[string]any{
			"type_ids":             []string{"nope"},
			"weight":               1.0,
			"length":               1.0,
			"height":               1.0,
			"gender":               "male",
			"chipping_location_id": p5,
		})
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 for unknown type, got %d", st)
		}
	}

	// unknown chipping location => 404
	typeA := createType(t, ts.URL, chipperID, "mammal")
	{
		st, _ := doReq(t, ts.URL, "POST", "/animals", chipperID, map[string]any{
			"type_ids":             []string{typeA},
			"weight":               1.0,
			"length":               1.0,
			"height":               1.0,
			"gender":               "male",
			"chipping_location_id": "nope",
		})
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 for unknown location, got %d", st)
		}
	}
}

func TestHTTP_ListMyAnimals(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	chipperID := "chipper-1"
	otherID := "chipper-2"

	typeA := createType(t, ts.URL, chipperID, "mammal")
	p5 := createLocation(t, ts.URL, chipperID, 55.0, 20.0)

	payload := map[string]any{
		"type_ids":             []string{typeA},
		"weight":               1.0,
		"length":               1.0,
		"height":               1.0,
		"gender":               "other",
		"chipping_location_id": p5,
	}
	_ = createAnimal(t, ts.URL, chipperID, payload)
	_ = createAnimal(t, ts.URL, otherID, payload)

	st, body := doReq(t, ts.URL, "GET", "/me/animals", chipperID, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 listing my animals, got %d", st)
	}
	var items []map[string]any
	_ = json.Unmarshal(body, &items)
	if len(items) != 1 {
		t.Fatalf("expected 1 animal for chipper-1, got %d", len(items))
	}
	if items[0]["chipper_id"] != chipperID {
		t.Fatalf("unexpected chipper_id: %v", items[0]["chipper_id"])
	}
}

func createType(t *testing.T, baseURL, userID, name string) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/types", userID, map[string]any{"name": name})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create type, got %d body=%s", st, string(body))
	}
	return extractID(t, body)
}

func createLocation(t *testing.T, baseURL, userID string, lat, lon float64) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/locations", userID, map[string]any{
		"latitude":  lat,
		"longitude": lon,
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create location, got %d body=%s", st, string(body))
	}
	return extractID(t, body)
}

func createAnimal(t *testing.T, baseURL, userID string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/animals", userID, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create animal, got %d body=%s", st, string(body))
	}
	return extractID(t, body)
}

func addVisit(t *testing.T, baseURL, userID, animalID, pointID string) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/animals/"+animalID+"/locations", userID, map[string]any{
		"location_point_id": pointID,
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 add visit, got %d body=%s", st, string(body))
	}
	return extractID(t, body)
}

func extractID(t *testing.T, body []byte) string {
	t.Helper()

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("missing id in body=%s", string(body))
	}
	return resp.ID
}

func doReq(t *testing.T, baseURL, method, path, debugUserID string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if debugUserID != "" {
		req.Header.Set("X-Debug-User-ID", debugUserID)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
