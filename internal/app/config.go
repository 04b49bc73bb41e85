package app

import (
	"errors"

	"github.com/CristovaoMNunes/tmpkeep/internal/tempres"
)

// DefaultManifestName is the manifest file name written into kept workspaces.
const DefaultManifestName = "manifest.yaml"

// DefaultPurgePattern matches workspaces produced with the default prefix.
const DefaultPurgePattern = tempres.DefaultPrefix + "*"

// Config captures runtime parameters for a staging or purge run.
type Config struct {
	Sources      []string
	TempRoot     string
	Prefix       string
	Keep         bool
	ManifestName string
	PurgePattern string
	Debug        bool
	Version      string
}

// ConfigOption mutates a Config during construction.
type ConfigOption func(*Config)

// NewConfig creates a Config with defaults and applies provided options.
func NewConfig(tempRoot string, opts ...ConfigOption) (Config, error) {
	if tempRoot == "" {
		return Config{}, errors.New("temp root must be provided")
	}

	cfg := Config{
		TempRoot:     tempRoot,
		Prefix:       tempres.DefaultPrefix,
		ManifestName: DefaultManifestName,
		PurgePattern: DefaultPurgePattern,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg, nil
}

// WithSources sets the files to copy into the staging workspace.
func WithSources(sources []string) ConfigOption {
	return func(cfg *Config) {
		cfg.Sources = append([]string{}, sources...)
	}
}

// WithPrefix overrides the name prefix for created temporary resources.
func WithPrefix(prefix string) ConfigOption {
	return func(cfg *Config) {
		if prefix != "" {
			cfg.Prefix = prefix
		}
	}
}

// WithKeep determines whether the workspace survives process exit.
func WithKeep(enabled bool) ConfigOption {
	return func(cfg *Config) {
		cfg.Keep = enabled
	}
}

// WithManifestName overrides the manifest file name for kept workspaces.
func WithManifestName(name string) ConfigOption {
	return func(cfg *Config) {
		if name != "" {
			cfg.ManifestName = name
		}
	}
}

// WithPurgePattern overrides the glob used to find leftover workspaces.
func WithPurgePattern(pattern string) ConfigOption {
	return func(cfg *Config) {
		if pattern != "" {
			cfg.PurgePattern = pattern
		}
	}
}

// WithDebug toggles verbose logging.
func WithDebug(enabled bool) ConfigOption {
	return func(cfg *Config) {
		cfg.Debug = enabled
	}
}

// WithVersion sets the application version used in log output.
func WithVersion(version string) ConfigOption {
	return func(cfg *Config) {
		cfg.Version = version
	}
}
