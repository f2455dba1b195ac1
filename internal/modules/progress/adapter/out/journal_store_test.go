package adapterout_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	adapterout "pathora/internal/modules/progress/adapter/out"
	"pathora/internal/modules/progress/domain"
	"pathora/internal/platform/markdown"
)

func TestAppendWritesNoteAndIndex(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	store := adapterout.NewMarkdownJournalStore(dir)

	entry := domain.JournalEntry{
		SkillID:    42,
		SkillTitle: "SQL Joins & Subqueries",
		PathTitle:  "Data Engineering",
		Minutes:    45,
		When:       time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC),
	}
	if err := store.Append(context.Background(), entry); err != nil {
		t.Fatalf("append: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "2026-08-20-sql-joins-subqueries.md"))
	if err != nil {
		t.Fatalf("read note: %v", err)
	}
	meta, body, err := markdown.SplitFrontmatter(string(raw))
	if err != nil {
		t.Fatalf("split frontmatter: %v", err)
	}
	if meta["skill_id"] != 42 {
		t.Fatalf("unexpected frontmatter: %v", meta)
	}
	if !strings.Contains(body, "# SQL Joins & Subqueries") {
		t.Fatalf("body missing title: %q", body)
	}

	index, err := os.ReadFile(filepath.Join(dir, "index.md"))
	if err != nil {
		t.Fatalf("read index: %v", err)
	}
	if !strings.Contains(string(index), "2026-08-20-sql-joins-subqueries") {
		t.Fatalf("index missing entry: %q", index)
	}
}

func TestIndexPreservesUserContentOutsideManagedBlock(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	store := adapterout.NewMarkdownJournalStore(dir)
	when := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)

	if err := store.Append(context.Background(), domain.JournalEntry{SkillID: 1, SkillTitle: "First", When: when}); err != nil {
		t.Fatalf("append: %v", err)
	}

	// Simulate a hand-written preamble above the managed block.
	indexPath := filepath.Join(dir, "index.md")
	raw, _ := os.ReadFile(indexPath)
	if err := os.WriteFile(indexPath, []byte("My notes live here.\n\n"+string(raw)), 0o644); err != nil {
		t.Fatalf("edit index: %v", err)
	}

	if err := store.Append(context.Background(), domain.JournalEntry{SkillID: 2, SkillTitle: "Second", When: when}); err != nil {
		t.Fatalf("second append: %v", err)
	}

	updated, _ := os.ReadFile(indexPath)
	if !strings.Contains(string(updated), "My notes live here.") {
		t.Fatalf("user content was clobbered: %q", updated)
	}
	if !strings.Contains(string(updated), "2026-08-20-second") {
		t.Fatalf("index missing new entry: %q", updated)
	}
}
