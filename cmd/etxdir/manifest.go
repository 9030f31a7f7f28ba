package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// projectManifest is the optional etxdir.toml found next to (or above) the
// diagram source. It only feeds the CLI layer: default permissions and exec
// globs. The parsing core never reads it.
type projectManifest struct {
	Path   string
	Root   string
	Config manifestConfig
}

type manifestConfig struct {
	Scaffold scaffoldConfig `toml:"scaffold"`
}

type scaffoldConfig struct {
	DirPerm   string   `toml:"dir_perm"`
	FilePerm  string   `toml:"file_perm"`
	ExecGlobs []string `toml:"exec_globs"`
}

// findManifest ищет etxdir.toml вверх по дереву от startDir.
func findManifest(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "etxdir.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// loadManifest returns the manifest for startDir, if one exists.
func loadManifest(startDir string) (*projectManifest, bool, error) {
	path, ok, err := findManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	var cfg manifestConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, true, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &projectManifest{
		Path:   path,
		Root:   filepath.Dir(path),
		Config: cfg,
	}, true, nil
}

// parsePerm разбирает восьмеричные права (0755/755/0o755).
func parsePerm(s string, def os.FileMode) (os.FileMode, error) {
	ss := strings.TrimSpace(s)
	if ss == "" {
		return def, nil
	}
	// "755" и "0755" — восьмеричные; "0o755" разберёт base=0.
	if u, err := strconv.ParseUint(ss, 8, 32); err == nil {
		return os.FileMode(u), nil
	}
	u, err := strconv.ParseUint(ss, 0, 32)
	if err != nil {
		return 0, err
	}
	return os.FileMode(u), nil
}
