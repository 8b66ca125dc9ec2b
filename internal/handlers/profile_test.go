package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/praneeth-grandhi/Hostel-Management/internal/models"
)

func TestGetProfile_EmptyIsNot404(t *testing.T) {
	srv := newTestServer(t)
	rec := httptest.NewRecorder()
	srv.GetProfile(rec, httptest.NewRequest(http.MethodGet, "/api/profile", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 for an unset profile, got %d", rec.Code)
	}
}

func TestSaveProfile_RoundTrip(t *testing.T) {
	srv := newTestServer(t)
	rec := httptest.NewRecorder()
	srv.SaveProfile(rec, httptest.NewRequest(http.MethodPut, "/api/profile", jsonBody(t, models.Profile{
		FirstName: "Praneeth", LastName: "G", Email: "praneeth@example.com", City: "Hyderabad",
	})))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	srv.GetProfile(rec, httptest.NewRequest(http.MethodGet, "/api/profile", nil))
	var p models.Profile
	json.NewDecoder(rec.Body).Decode(&p)
	if p.FirstName != "Praneeth" || p.City != "Hyderabad" {
		t.Errorf("profile did not round trip: %+v", p)
	}
}

func TestSaveProfile_Validation(t *testing.T) {
	srv := newTestServer(t)
	cases := []models.Profile{
		{LastName: "G"},                                     // no first name
		{FirstName: "P", LastName: "G", Email: "not-email"}, // bad email
	}
	for i, c := range cases {
		rec := httptest.NewRecorder()
		srv.SaveProfile(rec, httptest.NewRequest(http.MethodPut, "/", jsonBody(t, c)))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("case %d: expected 400, got %d", i, rec.Code)
		}
	}
}

func TestChangePassword_Validation(t *testing.T) {
	srv := newTestServer(t)
	cases := []PasswordChangeRequest{
		{NewPassword: "longenough", ConfirmPassword: "longenough"},                              // no current
		{CurrentPassword: "x", NewPassword: "short", ConfirmPassword: "short"},                  // too short
		{CurrentPassword: "x", NewPassword: "longenough", ConfirmPassword: "different-enough"}, // mismatch
	}
	for i, c := range cases {
		rec := httptest.NewRecorder()
		srv.ChangePassword(rec, httptest.NewRequest(http.MethodPost, "/", jsonBody(t, c)))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("case %d: expected 400, got %d", i, rec.Code)
		}
	}

	rec := httptest.NewRecorder()
	srv.ChangePassword(rec, httptest.NewRequest(http.MethodPost, "/", jsonBody(t, PasswordChangeRequest{
		CurrentPassword: "old-pass", NewPassword: "new-password", ConfirmPassword: "new-password",
	})))
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestDeleteProfile_SignsOut(t *testing.T) {
	srv := newTestServer(t)
	srv.Sessions.SignInGuest("resident@example.com")
	srv.SaveProfile(httptest.NewRecorder(), httptest.NewRequest(http.MethodPut, "/",
		jsonBody(t, models.Profile{FirstName: "P", LastName: "G"})))

	rec := httptest.NewRecorder()
	srv.DeleteProfile(rec, httptest.NewRequest(http.MethodDelete, "/api/profile", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	if _, ok := srv.Sessions.Current(); ok {
		t.Error("account deletion must also sign the session out")
	}
	rec = httptest.NewRecorder()
	srv.GetProfile(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	var p models.Profile
	json.NewDecoder(rec.Body).Decode(&p)
	if p.FirstName != "" {
		t.Errorf("profile should be gone, got %+v", p)
	}
}
