package cmd

import (
	"fmt"

	"github.com/aoe4-overlay/desktop-installer/pkg/desktopfile"
	"github.com/aoe4-overlay/desktop-installer/pkg/install"
	"github.com/apex/log"
	"github.com/spf13/cobra"
)

var (
	// Flags for install command
	installAppsDir string
	installDryRun  bool
	installClean   bool
)

// InstallCommand represents the install command
var InstallCommand = &cobra.Command{
	Use:   "install",
	Short: "Build and register the desktop entry",
	Long: `Builds the desktop entry descriptor in the current directory,
populates it with desktop-file-edit, installs it into the per-user
application directory with desktop-file-install, and refreshes the
desktop database with update-desktop-database.

The four steps run strictly in order; the first failure aborts the rest
and no rollback is attempted. Re-running with unchanged inputs produces
a byte-identical installed descriptor.`,
	Example: `  # Install with the built-in AoE4 Overlay entry
  aoe4-desktop install

  # Install into a non-default applications directory
  aoe4-desktop install --applications-dir=~/.local/share/applications

  # Show the commands that would run without touching anything
  aoe4-desktop install --dry-run

  # Remove the working-directory descriptor after installing
  aoe4-desktop install --clean`,
	Args: cobra.NoArgs,
	RunE: runInstall,
}

func init() {
	InstallCommand.Flags().StringVarP(&installAppsDir, "applications-dir", "d", "", "Per-user applications directory (default: XDG data home + /applications)")
	InstallCommand.Flags().BoolVarP(&installDryRun, "dry-run", "n", false, "Print the commands without running them")
	InstallCommand.Flags().BoolVar(&installClean, "clean", false, "Remove the working-directory descriptor after a successful install")
}

func runInstall(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	spec, cfgPath, err := loadEntrySpec(configFile)
	if err != nil {
		return err
	}
	if cfgPath != "" {
		log.Infof("Using config file: %s", cfgPath)
	} else {
		log.Debug("No config file found, using built-in entry")
	}

	if !installDryRun {
		if err := desktopfile.Available(); err != nil {
			return err
		}
	}

	root, err := entryRoot(cfgPath)
	if err != nil {
		return err
	}

	result, err := install.Run(ctx, spec, install.Options{
		ApplicationsDir: installAppsDir,
		ProjectRoot:     root,
		DryRun:          installDryRun,
		Clean:           installClean,
	})
	if err != nil {
		return fmt.Errorf("install failed: %w", err)
	}

	if installDryRun {
		log.Infof("Dry run complete, nothing was installed")
		return nil
	}

	log.Infof("Installed %s", result.InstalledFile)
	log.Infof("Desktop database refreshed: %s", result.ApplicationsDir)
	return nil
}
