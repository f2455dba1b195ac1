package domain_test

import (
	"errors"
	"reflect"
	"testing"

	"pathora/internal/modules/workspace/domain"
	apperrors "pathora/internal/platform/errors"
)

func TestParseTechnologies(t *testing.T) {
	t.Parallel()
	got := domain.ParseTechnologies(" Go, SQLite ,, gRPC ")
	want := []string{"Go", "SQLite", "gRPC"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ParseTechnologies = %v, want %v", got, want)
	}
	if domain.ParseTechnologies("  ") != nil {
		t.Fatalf("blank input should parse to nil")
	}
	if joined := domain.JoinTechnologies(want); joined != "Go, SQLite, gRPC" {
		t.Fatalf("JoinTechnologies = %q", joined)
	}
}

func TestProjectValidate(t *testing.T) {
	t.Parallel()
	if err := (domain.Project{Title: "API", Status: domain.StatusPlanning}).Validate(); err != nil {
		t.Fatalf("valid project rejected: %v", err)
	}
	if err := (domain.Project{Status: domain.StatusPlanning}).Validate(); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("untitled project must be rejected, got %v", err)
	}
	if err := (domain.Project{Title: "API", Status: "paused"}).Validate(); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("unknown status must be rejected, got %v", err)
	}
}
