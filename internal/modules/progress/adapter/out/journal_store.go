package adapterout

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"pathora/internal/modules/progress/domain"
	portout "pathora/internal/modules/progress/port/out"
	"pathora/internal/platform/id"
	"pathora/internal/platform/markdown"
	"pathora/internal/platform/slug"
)

const (
	indexStartMarker = "<!-- journal:start -->"
	indexEndMarker   = "<!-- journal:end -->"
)

// MarkdownJournalStore writes one markdown note per completed skill under
// the journal dir and keeps a generated listing inside index.md. Everything
// outside the managed block of index.md is the user's to edit.
type MarkdownJournalStore struct {
	dir string
	ids id.Generator
}

var _ portout.JournalStore = (*MarkdownJournalStore)(nil)

func NewMarkdownJournalStore(dir string) *MarkdownJournalStore {
	return &MarkdownJournalStore{dir: dir, ids: id.UUID{}}
}

func (s *MarkdownJournalStore) Append(_ context.Context, entry domain.JournalEntry) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create journal dir: %w", err)
	}

	name := fmt.Sprintf("%s-%s.md", entry.When.Format("2006-01-02"), slug.Make(entry.SkillTitle))
	meta := map[string]any{
		"id":           s.ids.New(),
		"skill_id":     entry.SkillID,
		"skill":        entry.SkillTitle,
		"path":         entry.PathTitle,
		"minutes":      entry.Minutes,
		"completed_at": entry.When.Format("2006-01-02T15:04:05Z07:00"),
	}
	body := fmt.Sprintf("# %s\n\nCompleted as part of %s.\n", entry.SkillTitle, entry.PathTitle)
	if entry.Note != "" {
		body += "\n" + entry.Note + "\n"
	}

	note, err := markdown.RenderFrontmatter(meta, body)
	if err != nil {
		return fmt.Errorf("render journal note: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), []byte(note), 0o644); err != nil {
		return fmt.Errorf("write journal note: %w", err)
	}
	return s.rebuildIndex()
}

func (s *MarkdownJournalStore) rebuildIndex() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return fmt.Errorf("list journal dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == "index.md" || !strings.HasSuffix(name, ".md") {
			continue
		}
		names = append(names, name)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))

	var listing strings.Builder
	for _, name := range names {
		fmt.Fprintf(&listing, "- [%s](%s)\n", strings.TrimSuffix(name, ".md"), name)
	}

	indexPath := filepath.Join(s.dir, "index.md")
	existing, err := os.ReadFile(indexPath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("read journal index: %w", err)
	}
	body := string(existing)
	if body == "" {
		body = "# Completion journal\n"
	}

	updated := markdown.ReplaceManagedBlock(body, indexStartMarker, indexEndMarker, strings.TrimRight(listing.String(), "\n"))
	if err := os.WriteFile(indexPath, []byte(updated), 0o644); err != nil {
		return fmt.Errorf("write journal index: %w", err)
	}
	return nil
}
