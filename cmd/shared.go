package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/aoe4-overlay/desktop-installer/pkg/config"
	"github.com/aoe4-overlay/desktop-installer/pkg/entry"
	"github.com/apex/log"
	"github.com/goccy/go-yaml"
)

// loadEntrySpec loads the entry spec from the config file, or from
// stdin when cfgFile is "-". An empty cfgFile falls back to config
// discovery and then to the built-in defaults, which reproduce the
// original installer exactly. The returned path is empty when the
// built-in defaults were used.
func loadEntrySpec(cfgFile string) (*entry.Spec, string, error) {
	if cfgFile == "-" {
		log.Debug("Reading entry spec from stdin")
		yamlData, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.WithError(err).Error("Failed to read entry spec from stdin")
			return nil, "", fmt.Errorf("failed to read entry spec from stdin: %w", err)
		}

		var spec entry.Spec
		if err := yaml.Unmarshal(yamlData, &spec); err != nil {
			log.WithError(err).Error("Failed to unmarshal entry spec YAML from stdin")
			return nil, "", fmt.Errorf("failed to unmarshal entry spec YAML from stdin: %w", err)
		}
		spec.SetDefaults()
		return &spec, "-", nil
	}

	return config.LoadOrDefault(cfgFile)
}

// entryRoot returns the directory relative icon/exec paths resolve
// against: the config file's project root when a config was used, the
// invocation directory for defaults-only and stdin runs.
func entryRoot(cfgPath string) (string, error) {
	if cfgPath == "" || cfgPath == "-" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
		return wd, nil
	}
	return config.Root(cfgPath), nil
}
