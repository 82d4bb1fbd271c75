package externalservices

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Barcodehub/metrics-api-reactive/pkg/report"
)

func newTestClientConfig(url string) ExternalServiceConfig {
	return ExternalServiceConfig{
		Name:    "bootcamp-service",
		URL:     url,
		Timeout: 5,
	}
}

func TestGetBootcampByID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/bootcamp/42" {
			t.Errorf("path = %q, want %q", r.URL.Path, "/bootcamp/42")
		}
		if r.Header.Get("X-Message-Id") != "msg-1" {
			t.Errorf("X-Message-Id = %q, want %q", r.Header.Get("X-Message-Id"), "msg-1")
		}
		w.Write([]byte(`{
			"id": 42,
			"name": "Backend Bootcamp",
			"description": "Server side engineering",
			"launchDate": "2026-01-15",
			"duration": 12,
			"capacities": [
				{"id": 1, "name": "Backend", "technologies": [{"id": 1, "name": "Go"}, {"id": 2, "name": "MongoDB"}]},
				{"id": 2, "name": "Cloud", "technologies": [{"id": 3, "name": "Docker"}]}
			]
		}`))
	}))
	defer server.Close()

	client := NewBootcampClient(newTestClientConfig(server.URL))
	got, err := client.GetBootcampByID(42, "msg-1")
	if err != nil {
		t.Fatalf("GetBootcampByID() unexpected error: %v", err)
	}

	if got.ID != 42 || got.Name != "Backend Bootcamp" {
		t.Errorf("unexpected bootcamp info: %+v", got)
	}
	if len(got.Capacities) != 2 {
		t.Fatalf("capacities = %d, want 2", len(got.Capacities))
	}
	if len(got.Capacities[0].Technologies) != 2 || len(got.Capacities[1].Technologies) != 1 {
		t.Errorf("technology lists not mapped: %+v", got.Capacities)
	}
}

func TestGetBootcampByIDNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewBootcampClient(newTestClientConfig(server.URL))
	_, err := client.GetBootcampByID(42, "msg-1")
	if !errors.Is(err, report.ErrBootcampNotFound) {
		t.Errorf("error = %v, want %v", err, report.ErrBootcampNotFound)
	}
}

func TestGetBootcampByIDServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewBootcampClient(newTestClientConfig(server.URL))
	_, err := client.GetBootcampByID(42, "msg-1")

	var serviceErr *report.ServiceError
	if !errors.As(err, &serviceErr) {
		t.Fatalf("error = %v, want a ServiceError", err)
	}
	if serviceErr.Service != "bootcamp" {
		t.Errorf("service = %q, want %q", serviceErr.Service, "bootcamp")
	}
}

func TestGetUserIDsByBootcampID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/bootcamp/42/users" {
			t.Errorf("path = %q, want %q", r.URL.Path, "/bootcamp/42/users")
		}
		w.Write([]byte(`[10, 11, 12]`))
	}))
	defer server.Close()

	client := NewBootcampClient(newTestClientConfig(server.URL))
	got, err := client.GetUserIDsByBootcampID(42, "msg-1")
	if err != nil {
		t.Fatalf("GetUserIDsByBootcampID() unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("ids = %v, want 3 entries", got)
	}
}

func TestGetUserIDsNotFoundMeansEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewBootcampClient(newTestClientConfig(server.URL))
	got, err := client.GetUserIDsByBootcampID(42, "msg-1")
	if err != nil {
		t.Fatalf("GetUserIDsByBootcampID() unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("ids = %v, want empty list on 404", got)
	}
}

func TestGetUserIDsNoContentMeansEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewBootcampClient(newTestClientConfig(server.URL))
	got, err := client.GetUserIDsByBootcampID(42, "msg-1")
	if err != nil {
		t.Fatalf("GetUserIDsByBootcampID() unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("ids = %v, want empty list on 204", got)
	}
}

func TestGetUserIDsServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewBootcampClient(newTestClientConfig(server.URL))
	_, err := client.GetUserIDsByBootcampID(42, "msg-1")

	var serviceErr *report.ServiceError
	if !errors.As(err, &serviceErr) {
		t.Fatalf("error = %v, want a ServiceError", err)
	}
}
