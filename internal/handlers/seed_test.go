package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/praneeth-grandhi/Hostel-Management/internal/seed"
)

func TestSeedDemo_IdempotentAcrossCalls(t *testing.T) {
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.SeedDemo(rec, httptest.NewRequest(http.MethodPost, "/api/admin/seed", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var res seed.Result
	json.NewDecoder(rec.Body).Decode(&res)
	if res.Status != seed.StatusSeeded {
		t.Fatalf("first call: got %q, want seeded", res.Status)
	}

	rec = httptest.NewRecorder()
	srv.SeedDemo(rec, httptest.NewRequest(http.MethodPost, "/api/admin/seed", nil))
	json.NewDecoder(rec.Body).Decode(&res)
	if res.Status != seed.StatusSkipped {
		t.Errorf("second call: got %q, want skipped", res.Status)
	}
}

func TestSeedDemo_Force(t *testing.T) {
	srv := newTestServer(t)
	srv.SeedDemo(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/admin/seed", nil))
	srv.Cols.Owners.Remove(seed.OwnerAnitaID)

	rec := httptest.NewRecorder()
	srv.SeedDemo(rec, httptest.NewRequest(http.MethodPost, "/api/admin/seed?force=true", nil))
	var res seed.Result
	json.NewDecoder(rec.Body).Decode(&res)
	if res.Status != seed.StatusSeeded {
		t.Fatalf("force: got %q, want seeded", res.Status)
	}
	if got := len(srv.Cols.Owners.LoadAll()); got != 3 {
		t.Errorf("force must restore owners: got %d, want 3", got)
	}
}
