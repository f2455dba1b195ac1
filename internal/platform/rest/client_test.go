package rest_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "pathora/internal/platform/errors"
	"pathora/internal/platform/rest"
)

func TestBearerHeaderAndDecode(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-1" {
			t.Errorf("unexpected auth header: %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"value":42}`))
	}))
	defer srv.Close()

	client := rest.NewClient(srv.URL, func() string { return "tok-1" }, nil)
	var out struct {
		Value int `json:"value"`
	}
	if err := client.Get(context.Background(), "/thing", &out); err != nil {
		t.Fatalf("get: %v", err)
	}
	if out.Value != 42 {
		t.Fatalf("expected 42, got %d", out.Value)
	}
}

func TestNoAuthHeaderWhenLoggedOut(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.Header["Authorization"]; ok {
			t.Errorf("auth header must be absent without a token")
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := rest.NewClient(srv.URL, func() string { return "" }, nil)
	if err := client.Get(context.Background(), "thing", nil); err != nil {
		t.Fatalf("get: %v", err)
	}
}

func TestDetailBecomesAPIError(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Invalid password"}`))
	}))
	defer srv.Close()

	client := rest.NewClient(srv.URL, func() string { return "" }, nil)
	err := client.Post(context.Background(), "/login", map[string]string{}, nil)
	var apiErr *apperrors.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Status != 401 || apiErr.Detail != "Invalid password" {
		t.Fatalf("unexpected api error: %+v", apiErr)
	}
	if !apperrors.Unauthorized(err) {
		t.Fatalf("401 should report unauthorized")
	}
}

func TestNonJSONErrorBodyFallsBackToStatus(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer srv.Close()

	client := rest.NewClient(srv.URL, func() string { return "" }, nil)
	err := client.Get(context.Background(), "/x", nil)
	var apiErr *apperrors.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Detail != "" || apiErr.Status != 502 {
		t.Fatalf("unexpected api error: %+v", apiErr)
	}
}
