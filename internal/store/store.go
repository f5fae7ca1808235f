package store

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"gopkg.in/yaml.v3"
)

type randReader struct{}

func (randReader) Read(p []byte) (int, error) { return rand.Read(p) }

var (
	ErrPersistence = errors.New("persistence")
	ErrInvalid     = errors.New("invalid")
	timeNow        = func() time.Time { return time.Now().UTC() }
)

const (
	configFile      = "config.yaml"
	defaultDataFile = "tasks.txt"
)

// Workspace is a store root: the config file, the task file and exports.
type Workspace struct {
	Root string
	cfg  Config
}

type Config struct {
	DataFile string `yaml:"data_file" json:"data_file"`
	Quiet    bool   `yaml:"quiet" json:"quiet"`
	Banner   bool   `yaml:"banner" json:"banner"`
	LogLevel string `yaml:"log_level" json:"log_level"` // debug|info|warn|error
}

func defaultConfig() Config {
	return Config{
		DataFile: defaultDataFile,
		Banner:   true,
		LogLevel: "warn",
	}
}

// Open opens a workspace rooted at root. A missing config file means
// defaults; nothing is created until something is saved.
func Open(root string) (*Workspace, error) {
	ws := &Workspace{Root: expandHome(root), cfg: defaultConfig()}
	if err := ws.loadConfig(); err != nil {
		return nil, err
	}
	return ws, nil
}

func (w *Workspace) ConfigPath() string {
	return filepath.Join(w.Root, configFile)
}

func (w *Workspace) loadConfig() error {
	b, err := os.ReadFile(w.ConfigPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("%w: read config: %w", ErrPersistence, err)
	}
	cfg := defaultConfig()
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return fmt.Errorf("%w: parse %s: %w", ErrInvalid, w.ConfigPath(), err)
	}
	w.cfg = normalizeConfig(cfg)
	return nil
}

func normalizeConfig(cfg Config) Config {
	cfg.DataFile = strings.TrimSpace(cfg.DataFile)
	if cfg.DataFile == "" {
		cfg.DataFile = defaultDataFile
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
	return cfg
}

func (w *Workspace) Config() Config {
	return w.cfg
}

// Override replaces the in-memory config without writing it, for flags that
// apply to a single run.
func (w *Workspace) Override(cfg Config) {
	w.cfg = normalizeConfig(cfg)
}

func (w *Workspace) SaveConfig(cfg Config) error {
	cfg = normalizeConfig(cfg)
	b, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}
	if err := atomicWriteFile(w.ConfigPath(), b, 0o644); err != nil {
		return fmt.Errorf("%w: write config: %w", ErrPersistence, err)
	}
	w.cfg = cfg
	return nil
}

// DataPath is the task file. Relative data_file values resolve against Root.
func (w *Workspace) DataPath() string {
	p := expandHome(w.cfg.DataFile)
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(w.Root, p)
}

func (w *Workspace) ExportDir() string {
	return filepath.Join(w.Root, "exports")
}

// NewID returns an upper-case ULID.
func NewID() string {
	t := ulid.Timestamp(timeNow())
	entropy := ulid.Monotonic(randReader{}, 0)
	id, err := ulid.New(t, entropy)
	if err != nil {
		// fallback
		return fmt.Sprintf("%d", timeNow().UnixNano())
	}
	return strings.ToUpper(id.String())
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~"+string(os.PathSeparator)) || path == "~" {
		home, _ := os.UserHomeDir()
		if home != "" {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}

func atomicWriteFile(path string, data []byte, perm fs.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp := filepath.Join(dir, ".tmp-"+NewID())
	if err := os.WriteFile(tmp, data, perm); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	// Rename is atomic on same filesystem.
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
