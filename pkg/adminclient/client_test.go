package adminclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/rs/zerolog"

	"github.com/smartcare-io/admin-api/pkg/filterform"
)

func TestClient_ListUsers(t *testing.T) {
	var gotQuery url.Values
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/users" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		gotQuery = r.URL.Query()
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode([]UserRow{
			{ID: "U1", FirstName: "Alice", PartnerID: "P1"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, "tok-123")
	rows, err := c.ListUsers(context.Background(), url.Values{"first_name": {"ali"}, "role": {"2"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rows) != 1 || rows[0].ID != "U1" {
		t.Fatalf("unexpected rows: %+v", rows)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("bearer token not sent: %q", gotAuth)
	}
	if gotQuery.Get("first_name") != "ali" || gotQuery.Get("role") != "2" {
		t.Errorf("filters not encoded: %v", gotQuery)
	}
}

func TestClient_NonOKStatusIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"forbidden"}`, http.StatusForbidden)
	}))
	defer srv.Close()

	c := New(srv.URL, "tok")
	if _, err := c.ListUsers(context.Background(), nil); err == nil {
		t.Fatal("expected error on 403 response")
	}
}

// The client's list methods plug directly into a filter form controller.
func TestClient_DrivesFilterFormController(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("is_closed") == "true" {
			_ = json.NewEncoder(w).Encode([]Ticket{{ID: "T3", IsClosed: true}})
			return
		}
		_ = json.NewEncoder(w).Encode([]Ticket{{ID: "T1"}, {ID: "T2"}, {ID: "T3", IsClosed: true}})
	}))
	defer srv.Close()

	c := New(srv.URL, "tok")
	form := filterform.NewController(c.ListTickets, zerolog.Nop())

	form.Submit(context.Background())
	if len(form.Results()) != 3 {
		t.Fatalf("expected 3 tickets unfiltered, got %d", len(form.Results()))
	}

	form.SetField("is_closed", "true")
	form.Submit(context.Background())
	if got := form.Results(); len(got) != 1 || got[0].ID != "T3" {
		t.Fatalf("expected the closed ticket only, got %+v", got)
	}

	form.Clear(context.Background())
	if len(form.Results()) != 3 {
		t.Fatalf("clear must restore the unfiltered set, got %d", len(form.Results()))
	}
}
