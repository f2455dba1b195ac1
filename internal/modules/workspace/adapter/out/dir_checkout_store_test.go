package adapterout_test

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	adapterout "pathora/internal/modules/workspace/adapter/out"
	"pathora/internal/modules/workspace/domain"
)

func TestCheckoutAndCollectRoundTrip(t *testing.T) {
	t.Parallel()
	store := adapterout.NewDirCheckoutStore(t.TempDir())
	ctx := context.Background()

	project := domain.Project{
		ID: 3,
		Files: map[string]string{
			"main.go":          "package main\n",
			"internal/util.go": "package internal\n",
			"README.md":        "# Demo\n",
		},
	}
	dir, err := store.Checkout(ctx, project)
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if dir != store.Dir(3) {
		t.Fatalf("unexpected checkout dir %s", dir)
	}

	got, err := store.Collect(ctx, 3)
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if !reflect.DeepEqual(got, project.Files) {
		t.Fatalf("round trip mismatch:\n got %v\nwant %v", got, project.Files)
	}
}

func TestCollectSkipsHiddenFiles(t *testing.T) {
	t.Parallel()
	store := adapterout.NewDirCheckoutStore(t.TempDir())
	ctx := context.Background()

	if _, err := store.Checkout(ctx, domain.Project{ID: 1, Files: map[string]string{"a.txt": "a"}}); err != nil {
		t.Fatalf("checkout: %v", err)
	}
	dir := store.Dir(1)
	if err := os.MkdirAll(filepath.Join(dir, ".git"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".git", "HEAD"), []byte("ref"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("secret"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := store.Collect(ctx, 1)
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if len(got) != 1 || got["a.txt"] != "a" {
		t.Fatalf("hidden files must not be collected: %v", got)
	}
}

func TestCheckoutRejectsEscapingPaths(t *testing.T) {
	t.Parallel()
	store := adapterout.NewDirCheckoutStore(t.TempDir())
	project := domain.Project{ID: 2, Files: map[string]string{"../evil.sh": "rm -rf"}}
	if _, err := store.Checkout(context.Background(), project); err == nil {
		t.Fatalf("path escaping the checkout dir must be rejected")
	}
}
