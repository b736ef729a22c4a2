package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// projectConfigNames lists the accepted project file names. Within one directory
// the earliest name wins.
//
//nolint:gochecknoglobals // Read-only lookup table.
var projectConfigNames = []string{
	".gotree.yml",
	".gotree.yaml",
	"gotree.yml",
	"gotree.yaml",
}

// repositoryMarkers name the metadata directories that end the upward search.
//
//nolint:gochecknoglobals // Read-only lookup table.
var repositoryMarkers = []string{".git", ".hg", ".svn"}

// FindProjectConfig walks from startDir towards the filesystem root looking for a
// project config file and returns its path, or "" when there is none.
//
// An empty startDir means the working directory. The walk gives up after the
// repository root or the home directory has been inspected.
func FindProjectConfig(ctx context.Context, startDir string) (string, error) {
	dir, err := searchStart(startDir)
	if err != nil {
		return "", err
	}

	home, _ := os.UserHomeDir()

	for {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("config search cancelled: %w", err)
		}

		if found := projectConfigIn(dir); found != "" {
			return found, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir || dir == home || hasRepositoryMarker(dir) {
			return "", nil
		}
		dir = parent
	}
}

func searchStart(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", dir, err)
	}
	return abs, nil
}

// projectConfigIn returns the preferred config file in dir, or "".
func projectConfigIn(dir string) string {
	for _, name := range projectConfigNames {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
			return candidate
		}
	}
	return ""
}

func hasRepositoryMarker(dir string) bool {
	for _, marker := range repositoryMarkers {
		if info, err := os.Stat(filepath.Join(dir, marker)); err == nil && info.IsDir() {
			return true
		}
	}
	return false
}
