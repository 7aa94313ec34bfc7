package billy

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"

	"github.com/peterkovacs/files/backend"
)

// envPrefix is prepended to every LocalConfig variable, e.g. FILES_HOME_DIR.
const envPrefix = "FILES"

// LocalConfig overrides the special directories reported by the local
// backend. Empty fields fall back to the operating system defaults.
type LocalConfig struct {
	Home      string `envconfig:"HOME_DIR"`
	Documents string `envconfig:"DOCUMENTS_DIR"`
	Library   string `envconfig:"LIBRARY_DIR"`
	Caches    string `envconfig:"CACHES_DIR"`
	Temporary string `envconfig:"TEMP_DIR"`
}

// LoadLocalConfig reads LocalConfig from FILES_* environment variables.
func LoadLocalConfig() (LocalConfig, error) {
	var cfg LocalConfig
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return LocalConfig{}, fmt.Errorf("failed to load local backend config: %w", err)
	}
	return cfg, nil
}

// directories resolves every special directory except Current, which is
// looked up on each call since the working directory can change.
func (c LocalConfig) directories() (map[backend.SpecialDirectory]string, error) {
	home := c.Home
	if home == "" {
		h, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine home directory: %w", err)
		}
		home = h
	}

	dirs := map[backend.SpecialDirectory]string{
		backend.Home:      home,
		backend.Documents: firstNonEmpty(c.Documents, filepath.Join(home, "Documents")),
		backend.Temporary: firstNonEmpty(c.Temporary, os.TempDir()),
	}

	library := c.Library
	if library == "" {
		if dir, err := os.UserConfigDir(); err == nil {
			library = dir
		} else {
			library = filepath.Join(home, "Library")
		}
	}
	dirs[backend.Library] = library

	caches := c.Caches
	if caches == "" {
		if dir, err := os.UserCacheDir(); err == nil {
			caches = dir
		} else {
			caches = filepath.Join(library, "Caches")
		}
	}
	dirs[backend.Caches] = caches

	for k, v := range dirs {
		abs, err := filepath.Abs(v)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s directory %q: %w", k, v, err)
		}
		dirs[k] = normalize(abs)
	}
	return dirs, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Option configures backend creation.
type Option func(*options)

type options struct {
	special map[backend.SpecialDirectory]string
	config  *LocalConfig
}

// WithSpecialDirectory sets the path reported for dir. For the memory
// backend the directory is created on construction.
func WithSpecialDirectory(dir backend.SpecialDirectory, path string) Option {
	return func(o *options) {
		if o.special == nil {
			o.special = make(map[backend.SpecialDirectory]string)
		}
		o.special[dir] = normalize(path)
	}
}

// WithLocalConfig uses cfg instead of reading the environment.
func WithLocalConfig(cfg LocalConfig) Option {
	return func(o *options) {
		o.config = &cfg
	}
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// memoryDefaults are the special directories of a fresh memory backend.
func memoryDefaults() map[backend.SpecialDirectory]string {
	return map[backend.SpecialDirectory]string{
		backend.Home:      "/home",
		backend.Current:   "/",
		backend.Temporary: "/tmp",
		backend.Documents: "/home/Documents",
		backend.Library:   "/home/Library",
		backend.Caches:    "/home/Library/Caches",
	}
}
