package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultAPIBaseURL  = "http://localhost:8000/api"
	defaultLoadTimeout = 15 * time.Second
)

// Config is the resolved client configuration. Precedence, lowest to
// highest: defaults, config.yaml in the state dir, environment.
type Config struct {
	APIBaseURL  string
	StateDir    string
	DBPath      string
	JournalDir  string
	SessionPath string
	PrefsPath   string
	RunnersPath string
	LogPath     string
	LoadTimeout time.Duration
}

type fileConfig struct {
	APIBaseURL    string `yaml:"api_base_url"`
	LoadTimeoutMS int    `yaml:"load_timeout_ms"`
}

func New(stateDir string) (Config, error) {
	if strings.TrimSpace(stateDir) == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home dir: %w", err)
		}
		stateDir = filepath.Join(home, ".pathora")
	}

	cfg := Config{
		APIBaseURL:  defaultAPIBaseURL,
		StateDir:    stateDir,
		DBPath:      filepath.Join(stateDir, "cache.db"),
		JournalDir:  filepath.Join(stateDir, "journal"),
		SessionPath: filepath.Join(stateDir, "session.json"),
		PrefsPath:   filepath.Join(stateDir, "preferences.json"),
		RunnersPath: filepath.Join(stateDir, "runners.yaml"),
		LogPath:     filepath.Join(stateDir, "pathora.log"),
		LoadTimeout: defaultLoadTimeout,
	}

	if err := cfg.applyFile(filepath.Join(stateDir, "config.yaml")); err != nil {
		return Config{}, err
	}
	if v := strings.TrimSpace(os.Getenv("PATHORA_API_URL")); v != "" {
		cfg.APIBaseURL = v
	}
	cfg.APIBaseURL = strings.TrimRight(cfg.APIBaseURL, "/")
	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	if strings.TrimSpace(fc.APIBaseURL) != "" {
		c.APIBaseURL = fc.APIBaseURL
	}
	if fc.LoadTimeoutMS > 0 {
		c.LoadTimeout = time.Duration(fc.LoadTimeoutMS) * time.Millisecond
	}
	return nil
}
