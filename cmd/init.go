package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aoe4-overlay/desktop-installer/pkg/config"
	"github.com/aoe4-overlay/desktop-installer/pkg/entry"
	"github.com/apex/log"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

var (
	// Flags for init command
	initOutputFile string
	initForce      bool // Skip confirmation when overwriting existing files
)

// promptForConfirmation prompts the user for confirmation and returns true if they confirm
func promptForConfirmation(message string) bool {
	fmt.Printf("%s (y/N): ", message)
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}

// InitCommand represents the init command
var InitCommand = &cobra.Command{
	Use:   "init",
	Short: "Write a starter entry config file",
	Long: `Writes a config file (` + config.DefaultConfigPathYML + `) pre-filled with the
built-in AoE4 Overlay entry, as a starting point for overriding the
display name, icon, executable path, or categories.

The installer works without any config file; init is only needed when
the defaults are to be changed.`,
	Example: `  # Write the default config
  aoe4-desktop init

  # Write it somewhere else
  aoe4-desktop init -o entry.yml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		outputFile := initOutputFile
		if outputFile == "" {
			outputFile = config.DefaultConfigPathYML
		}

		if _, err := os.Stat(outputFile); err == nil && !initForce {
			if !promptForConfirmation(fmt.Sprintf("File %s already exists. Overwrite?", outputFile)) {
				log.Info("Aborted")
				return nil
			}
		}

		spec := &entry.Spec{}
		spec.SetDefaults()

		yamlData, err := yaml.Marshal(spec)
		if err != nil {
			return fmt.Errorf("failed to marshal entry spec: %w", err)
		}

		if dir := filepath.Dir(outputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create config directory %s: %w", dir, err)
			}
		}
		if err := os.WriteFile(outputFile, yamlData, 0644); err != nil {
			return fmt.Errorf("failed to write config file %s: %w", outputFile, err)
		}

		log.Infof("Wrote config file: %s", outputFile)
		return nil
	},
}

func init() {
	InitCommand.Flags().StringVarP(&initOutputFile, "output", "o", "", "Output file path (default: "+config.DefaultConfigPathYML+")")
	InitCommand.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing config without asking")
}
