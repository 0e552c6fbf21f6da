package cmd

import (
	"fmt"
	"os"

	"github.com/aoe4-overlay/desktop-installer/internal/render"
	"github.com/apex/log"
	"github.com/spf13/cobra"
)

var (
	// Flags for gen command
	genOutputFile string
)

// GenCommand represents the gen command
var GenCommand = &cobra.Command{
	Use:   "gen",
	Short: "Render the desktop entry content without installing it",
	Long: `Renders the descriptor content an install run would produce, with
Icon and Exec resolved to absolute paths against the current directory,
and writes it to stdout or a file. No external tool is invoked and
nothing is registered.`,
	Example: `  # Print the descriptor to stdout
  aoe4-desktop gen

  # Write it to a file
  aoe4-desktop gen -o org.aoe4_overlay.desktop`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		spec, cfgPath, err := loadEntrySpec(configFile)
		if err != nil {
			return err
		}
		if cfgPath != "" {
			log.Infof("Using config file: %s", cfgPath)
		}

		root, err := entryRoot(cfgPath)
		if err != nil {
			return err
		}
		if err := spec.Finalize(root); err != nil {
			return err
		}

		content, err := render.Entry(spec)
		if err != nil {
			return fmt.Errorf("failed to render desktop entry: %w", err)
		}

		if genOutputFile == "" || genOutputFile == "-" {
			log.Debug("Writing descriptor to stdout")
			if _, err := os.Stdout.Write(content); err != nil {
				return fmt.Errorf("failed to write descriptor to stdout: %w", err)
			}
			return nil
		}

		log.Infof("Writing descriptor to: %s", genOutputFile)
		if err := os.WriteFile(genOutputFile, content, 0644); err != nil {
			return fmt.Errorf("failed to write descriptor file %s: %w", genOutputFile, err)
		}
		return nil
	},
}

func init() {
	GenCommand.Flags().StringVarP(&genOutputFile, "output", "o", "", "Output file path (default: stdout)")
}
