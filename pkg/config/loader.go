package config

import (
	"context"
	"fmt"

	"github.com/yaklabco/gotree/internal/logging"
	"github.com/yaklabco/gotree/pkg/fsutil"
)

// LoadOptions selects the sources Load consults.
type LoadOptions struct {
	// WorkingDir is where the project config search starts, "" for the working directory.
	WorkingDir string

	// ExplicitPath names a file applied on top of the project config.
	ExplicitPath string

	IgnoreProjectConfig bool
	IgnoreEnv           bool
}

// LoadResult is a resolved configuration and the files it was read from.
type LoadResult struct {
	Config *Config

	// LoadedFrom holds the applied files, lowest precedence first.
	LoadedFrom []string
}

// Load layers the configuration sources over the defaults. From lowest to highest
// precedence these are the project file found upward from opts.WorkingDir, the
// file at opts.ExplicitPath, and the GOTREE_* environment.
//
// The first validation error of the result is returned as *ValidationError.
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	files, err := configSources(ctx, opts)
	if err != nil {
		return nil, err
	}

	logger := logging.ForComponent(ctx, "config")
	cfg := NewConfig()
	for _, path := range files {
		if err := cfg.loadFile(ctx, path); err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		logger.Debug("loaded config", logging.FieldConfig, path)
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(cfg); err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, &errs[0]
	}
	return &LoadResult{Config: cfg, LoadedFrom: files}, nil
}

// configSources returns the config files to apply, lowest precedence first.
func configSources(ctx context.Context, opts LoadOptions) ([]string, error) {
	var files []string

	if !opts.IgnoreProjectConfig {
		project, err := FindProjectConfig(ctx, opts.WorkingDir)
		if err != nil {
			return nil, fmt.Errorf("discover project config: %w", err)
		}
		if project != "" {
			files = append(files, project)
		}
	}

	if opts.ExplicitPath != "" {
		files = append(files, opts.ExplicitPath)
	}
	return files, nil
}

// LoadFile reads a single config file on top of the defaults.
func LoadFile(ctx context.Context, path string) (*Config, error) {
	cfg := NewConfig()
	if err := cfg.loadFile(ctx, path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFile overlays the keys of a YAML file onto c.
func (c *Config) loadFile(ctx context.Context, path string) error {
	content, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	if err := c.decodeYAML(content); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
