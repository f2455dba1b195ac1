package adapterout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	portout "pathora/internal/modules/curriculum/port/out"
)

// FilePreferenceStore keeps the small durable settings (selected path,
// theme) in one JSON file. A missing file means defaults, never an error.
type FilePreferenceStore struct {
	path string
}

var _ portout.PreferenceStore = (*FilePreferenceStore)(nil)

func NewFilePreferenceStore(path string) *FilePreferenceStore {
	return &FilePreferenceStore{path: path}
}

type preferences struct {
	SelectedPathID int    `json:"selected_path_id,omitempty"`
	Theme          string `json:"theme,omitempty"`
}

func (s *FilePreferenceStore) SelectedPathID(_ context.Context) (int, error) {
	prefs, err := s.read()
	if err != nil {
		return 0, err
	}
	return prefs.SelectedPathID, nil
}

func (s *FilePreferenceStore) SaveSelectedPath(_ context.Context, pathID int) error {
	return s.update(func(p *preferences) { p.SelectedPathID = pathID })
}

func (s *FilePreferenceStore) ClearSelectedPath(_ context.Context) error {
	return s.update(func(p *preferences) { p.SelectedPathID = 0 })
}

func (s *FilePreferenceStore) Theme(_ context.Context) (string, error) {
	prefs, err := s.read()
	if err != nil {
		return "", err
	}
	return prefs.Theme, nil
}

func (s *FilePreferenceStore) SaveTheme(_ context.Context, theme string) error {
	return s.update(func(p *preferences) { p.Theme = theme })
}

func (s *FilePreferenceStore) read() (preferences, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return preferences{}, nil
	}
	if err != nil {
		return preferences{}, fmt.Errorf("read preferences: %w", err)
	}
	var prefs preferences
	if err := json.Unmarshal(raw, &prefs); err != nil {
		return preferences{}, fmt.Errorf("decode preferences: %w", err)
	}
	return prefs, nil
}

func (s *FilePreferenceStore) update(apply func(*preferences)) error {
	prefs, err := s.read()
	if err != nil {
		return err
	}
	apply(&prefs)

	raw, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write preferences: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace preferences: %w", err)
	}
	return nil
}
