package adapterout

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"pathora/internal/modules/workspace/domain"
	portout "pathora/internal/modules/workspace/port/out"
)

// YAMLRunnerStore reads runner manifests from runners.yaml in the state dir.
// A missing file means no runners are configured. Relative binary paths
// resolve against the state dir so a config can ship its runners alongside.
type YAMLRunnerStore struct {
	baseDir string
	path    string
}

var _ portout.ManifestStore = (*YAMLRunnerStore)(nil)

func NewYAMLRunnerStore(path string) *YAMLRunnerStore {
	return &YAMLRunnerStore{baseDir: filepath.Dir(path), path: path}
}

type runnerManifestDoc struct {
	Runners []struct {
		Name        string `yaml:"name"`
		Binary      string `yaml:"binary"`
		Description string `yaml:"description"`
	} `yaml:"runners"`
}

func (s *YAMLRunnerStore) Load(_ context.Context) ([]domain.Manifest, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read runner manifests: %w", err)
	}

	var doc runnerManifestDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode runner manifests: %w", err)
	}

	manifests := make([]domain.Manifest, 0, len(doc.Runners))
	for _, r := range doc.Runners {
		if r.Name == "" || r.Binary == "" {
			return nil, fmt.Errorf("runner manifest needs name and binary: %+v", r)
		}
		binary := r.Binary
		if !filepath.IsAbs(binary) {
			binary = filepath.Clean(filepath.Join(s.baseDir, binary))
		}
		manifests = append(manifests, domain.Manifest{Name: r.Name, Binary: binary, Description: r.Description})
	}
	return manifests, nil
}
