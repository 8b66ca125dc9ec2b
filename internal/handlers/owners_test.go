package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/praneeth-grandhi/Hostel-Management/internal/models"
)

func TestCreateOwner_Success(t *testing.T) {
	srv := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/api/owners", jsonBody(t, CreateOwnerRequest{
		FirstName: "Meera", LastName: "Iyer", Email: "Meera.Iyer@Example.com", Password: "secret123",
	}))
	rec := httptest.NewRecorder()
	srv.CreateOwner(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var o models.Owner
	json.NewDecoder(rec.Body).Decode(&o)
	if o.Email != "meera.iyer@example.com" {
		t.Errorf("email not normalized: %q", o.Email)
	}
	if o.PasswordHash != "" {
		t.Error("response must not expose the credential")
	}
	if o.ID == "" {
		t.Error("expected a generated id")
	}

	stored, ok := srv.Cols.Owners.Find(o.ID)
	if !ok {
		t.Fatal("owner not persisted")
	}
	if stored.PasswordHash == "" || stored.PasswordHash == "secret123" {
		t.Error("stored credential must be a hash")
	}
}

func TestCreateOwner_DuplicateEmailCaseInsensitive(t *testing.T) {
	srv := newTestServer(t)
	payload := CreateOwnerRequest{
		FirstName: "Meera", LastName: "Iyer", Email: "meera@example.com", Password: "secret123",
	}
	rec := httptest.NewRecorder()
	srv.CreateOwner(rec, httptest.NewRequest(http.MethodPost, "/", jsonBody(t, payload)))
	if rec.Code != http.StatusCreated {
		t.Fatalf("first create: expected 201, got %d", rec.Code)
	}

	payload.Email = "MEERA@example.com"
	rec = httptest.NewRecorder()
	srv.CreateOwner(rec, httptest.NewRequest(http.MethodPost, "/", jsonBody(t, payload)))
	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409 on duplicate, got %d", rec.Code)
	}
	if got := len(srv.Cols.Owners.LoadAll()); got != 1 {
		t.Errorf("collection must be untouched by the rejected create: %d owners", got)
	}
}

func TestCreateOwner_Validation(t *testing.T) {
	srv := newTestServer(t)
	cases := []CreateOwnerRequest{
		{LastName: "Iyer", Email: "a@b.co", Password: "secret123"},            // no first name
		{FirstName: "Meera", LastName: "Iyer", Email: "bad", Password: "secret123"}, // bad email
		{FirstName: "Meera", LastName: "Iyer", Email: "a@b.co", Password: "x"},      // short password
	}
	for i, c := range cases {
		rec := httptest.NewRecorder()
		srv.CreateOwner(rec, httptest.NewRequest(http.MethodPost, "/", jsonBody(t, c)))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("case %d: expected 400, got %d", i, rec.Code)
		}
	}
}

func TestListOwners_Sanitized(t *testing.T) {
	srv := newTestServer(t)
	srv.Cols.Owners.Upsert(models.Owner{ID: "owner_1", Email: "a@b.co", PasswordHash: "hash"})

	rec := httptest.NewRecorder()
	srv.ListOwners(rec, httptest.NewRequest(http.MethodGet, "/api/owners", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var owners []models.Owner
	json.NewDecoder(rec.Body).Decode(&owners)
	if len(owners) != 1 || owners[0].PasswordHash != "" {
		t.Errorf("list must be sanitized: %+v", owners)
	}
}

func TestDeleteOwner(t *testing.T) {
	srv := newTestServer(t)
	srv.Cols.Owners.Upsert(models.Owner{ID: "owner_1", Email: "a@b.co"})

	req := httptest.NewRequest(http.MethodDelete, "/api/owners/owner_1", nil)
	req.SetPathValue("id", "owner_1")
	rec := httptest.NewRecorder()
	srv.DeleteOwner(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/owners/owner_1", nil)
	req.SetPathValue("id", "owner_1")
	rec = httptest.NewRecorder()
	srv.DeleteOwner(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for a gone owner, got %d", rec.Code)
	}
}
