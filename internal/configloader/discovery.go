package configloader

import (
	"context"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"runtime"
)

// ConfigPaths holds the configuration files found for one run. Empty
// strings mean "not present".
type ConfigPaths struct {
	// System is the machine-wide file, e.g. /etc/mdprefix/config.yaml.
	System string

	// User is the per-user file under $XDG_CONFIG_HOME/mdprefix.
	User string

	// Project is the nearest .mdprefix.{yml,yaml,toml} above the working
	// directory.
	Project string

	// Shadowed lists project files beside Project that lost to it.
	Shadowed []string

	// Explicit is the --config file, set by the caller.
	Explicit string
}

// Project file names in preference order.
//
//nolint:gochecknoglobals // Read-only lookup table.
var projectConfigFiles = []string{".mdprefix.yml", ".mdprefix.yaml", ".mdprefix.toml"}

// File names looked up inside the system and user config directories.
//
//nolint:gochecknoglobals // Read-only lookup table.
var dirConfigFiles = []string{"config.yaml", "config.yml", "config.toml"}

//nolint:gochecknoglobals // Read-only lookup table.
var vcsRootMarkers = []string{".git", ".hg", ".svn"}

// DiscoverPaths locates the system, user and project configuration files.
// A missing file is not an error.
func DiscoverPaths(ctx context.Context, workDir string) (*ConfigPaths, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context cancelled: %w", err)
	}

	paths := &ConfigPaths{
		System: firstExisting(systemConfigDir(), dirConfigFiles),
		User:   firstExisting(userConfigDir(), dirConfigFiles),
	}

	project, err := FindProjectConfig(ctx, workDir)
	if err != nil {
		return nil, err
	}
	paths.Project = project

	if project != "" {
		for _, name := range projectConfigFiles {
			sibling := filepath.Join(filepath.Dir(project), name)
			if sibling != project && fileExists(sibling) {
				paths.Shadowed = append(paths.Shadowed, sibling)
			}
		}
	}

	return paths, nil
}

// FindProjectConfig returns the nearest project config at or above
// startDir, or "" when none exists. The search stops after a VCS root or
// the home directory.
func FindProjectConfig(ctx context.Context, startDir string) (string, error) {
	if startDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		startDir = wd
	}

	absDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}

	home, _ := os.UserHomeDir()

	for dir := range ancestors(absDir) {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("context cancelled: %w", err)
		}
		if found := firstExisting(dir, projectConfigFiles); found != "" {
			return found, nil
		}
		if isVCSRoot(dir) || (home != "" && dir == home) {
			break
		}
	}
	return "", nil
}

// ancestors yields dir and each of its parents up to the filesystem root.
func ancestors(dir string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			if !yield(dir) {
				return
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				return
			}
			dir = parent
		}
	}
}

func systemConfigDir() string {
	if runtime.GOOS == "windows" {
		programData := os.Getenv("ProgramData")
		if programData == "" {
			programData = `C:\ProgramData`
		}
		return filepath.Join(programData, "mdprefix")
	}
	return "/etc/mdprefix"
}

func userConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "mdprefix")
}

// firstExisting returns the first of names present as a file in dir.
func firstExisting(dir string, names []string) string {
	if dir == "" {
		return ""
	}
	for _, name := range names {
		if candidate := filepath.Join(dir, name); fileExists(candidate) {
			return candidate
		}
	}
	return ""
}

func isVCSRoot(dir string) bool {
	for _, marker := range vcsRootMarkers {
		if info, err := os.Stat(filepath.Join(dir, marker)); err == nil && info.IsDir() {
			return true
		}
	}
	return false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
