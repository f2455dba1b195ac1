package adapterout_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	adapterout "pathora/internal/modules/account/adapter/out"
	"pathora/internal/modules/account/domain"
	apperrors "pathora/internal/platform/errors"
)

func TestCredentialStoreRoundTrip(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "session.json")
	store := adapterout.NewFileCredentialStore(path)

	want := domain.Session{UserID: 4, Email: "x@y.z", Token: "tok", Onboarded: true}
	if err := store.Save(context.Background(), want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != want {
		t.Fatalf("round trip mismatch: got %+v want %+v", got, want)
	}

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat: %v", err)
		}
		if perm := info.Mode().Perm(); perm != 0o600 {
			t.Fatalf("session file must be private, got %o", perm)
		}
	}
}

func TestLoadWithoutSessionReportsNotAuthenticated(t *testing.T) {
	t.Parallel()
	store := adapterout.NewFileCredentialStore(filepath.Join(t.TempDir(), "session.json"))
	if _, err := store.Load(context.Background()); !errors.Is(err, apperrors.ErrNotAuthenticated) {
		t.Fatalf("expected not authenticated, got %v", err)
	}
}

func TestClearMissingFileSucceeds(t *testing.T) {
	t.Parallel()
	store := adapterout.NewFileCredentialStore(filepath.Join(t.TempDir(), "session.json"))
	if err := store.Clear(context.Background()); err != nil {
		t.Fatalf("clear: %v", err)
	}
}

func TestSaveRejectsTokenWithoutUser(t *testing.T) {
	t.Parallel()
	store := adapterout.NewFileCredentialStore(filepath.Join(t.TempDir(), "session.json"))
	if err := store.Save(context.Background(), domain.Session{Token: "tok"}); err == nil {
		t.Fatalf("token without user id must not be stored")
	}
}
