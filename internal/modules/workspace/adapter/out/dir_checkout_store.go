package adapterout

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"pathora/internal/modules/workspace/domain"
	portout "pathora/internal/modules/workspace/port/out"
)

// DirCheckoutStore materializes project file maps under
// <base>/project-<id>/ and reads them back. Hidden files and directories are
// the user's (editor state, git) and are never collected.
type DirCheckoutStore struct {
	base string
}

var _ portout.CheckoutStore = (*DirCheckoutStore)(nil)

func NewDirCheckoutStore(base string) *DirCheckoutStore {
	return &DirCheckoutStore{base: base}
}

func (s *DirCheckoutStore) Dir(projectID int) string {
	return filepath.Join(s.base, fmt.Sprintf("project-%d", projectID))
}

func (s *DirCheckoutStore) Checkout(_ context.Context, project domain.Project) (string, error) {
	dir := s.Dir(project.ID)
	for rel, content := range project.Files {
		clean, err := safeRel(rel)
		if err != nil {
			return "", err
		}
		target := filepath.Join(dir, clean)
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return "", fmt.Errorf("create checkout dir: %w", err)
		}
		if err := os.WriteFile(target, []byte(content), 0o644); err != nil {
			return "", fmt.Errorf("write %s: %w", rel, err)
		}
	}
	if len(project.Files) == 0 {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create checkout dir: %w", err)
		}
	}
	return dir, nil
}

func (s *DirCheckoutStore) Collect(_ context.Context, projectID int) (map[string]string, error) {
	dir := s.Dir(projectID)
	files := make(map[string]string)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if strings.HasPrefix(d.Name(), ".") && path != dir {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", rel, err)
		}
		files[filepath.ToSlash(rel)] = string(content)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("collect checkout: %w", err)
	}
	return files, nil
}

func (s *DirCheckoutStore) Remove(_ context.Context, projectID int) error {
	if err := os.RemoveAll(s.Dir(projectID)); err != nil {
		return fmt.Errorf("remove checkout: %w", err)
	}
	return nil
}

// safeRel rejects wire paths that would escape the checkout dir.
func safeRel(rel string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(rel))
	if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("unsafe project file path %q", rel)
	}
	return clean, nil
}
