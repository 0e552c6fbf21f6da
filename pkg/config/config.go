package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aoe4-overlay/desktop-installer/pkg/entry"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Default config file locations, tried in order.
const (
	DefaultConfigPathYML  = ".config/aoe4-desktop.yml"
	DefaultConfigPathYAML = ".config/aoe4-desktop.yaml"
)

// Load reads and parses an entry spec config file from the given path
func Load(path string) (*entry.Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config file: %s", path)
	}

	var spec entry.Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config file: %s", path)
	}

	spec.SetDefaults()
	return &spec, nil
}

// Discover searches for a config file in the current directory and
// parent directories.
func Discover() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "failed to get current directory")
	}

	for {
		for _, name := range []string{DefaultConfigPathYML, DefaultConfigPathYAML} {
			configPath := filepath.Join(dir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("no aoe4-desktop config found")
}

// Root returns the directory relative icon/exec paths in a config
// file are anchored to. A file at its default .config/ location
// anchors at the project root above .config, so a run discovered from
// a subdirectory still resolves against the project; any other config
// file anchors at its own directory.
func Root(path string) string {
	p := filepath.ToSlash(path)
	for _, name := range []string{DefaultConfigPathYML, DefaultConfigPathYAML} {
		if p == name || strings.HasSuffix(p, "/"+name) {
			return filepath.Dir(filepath.Dir(path))
		}
	}
	return filepath.Dir(path)
}

// LoadOrDefault loads a config from the given path, discovers one if
// path is empty, and falls back to the built-in defaults when no
// config file exists anywhere. The built-in defaults reproduce the
// original installer exactly, so a missing config is not an error.
func LoadOrDefault(configPath string) (*entry.Spec, string, error) {
	path := configPath
	if path == "" {
		discovered, err := Discover()
		if err != nil {
			spec := &entry.Spec{}
			spec.SetDefaults()
			return spec, "", nil
		}
		path = discovered
	}

	spec, err := Load(path)
	if err != nil {
		return nil, "", err
	}
	return spec, path, nil
}
