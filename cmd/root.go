package cmd

import (
	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	configFile string
	verbose    bool
	quiet      bool
)

// RootCmd represents the base command when called without any subcommands.
// Running it with no arguments performs the full install sequence, so
// the bare binary behaves like the original one-shot installer.
var RootCmd = &cobra.Command{
	Use:   "aoe4-desktop",
	Short: "Register the AoE4 Overlay desktop entry",
	Long: `aoe4-desktop registers a desktop entry for the AoE4 Overlay on
freedesktop.org-compliant Linux desktops.

It builds the org.aoe4_overlay.desktop descriptor with desktop-file-edit,
installs it into the per-user application directory with
desktop-file-install, and refreshes the desktop database with
update-desktop-database. Icon and Exec paths are resolved to absolute
paths against the invocation directory before the descriptor is written.

Running aoe4-desktop without a subcommand is the same as running
aoe4-desktop install.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetHandler(cli.Default)
		if verbose {
			log.SetLevel(log.DebugLevel)
			log.Debugf("Verbose logging enabled")
		} else if quiet {
			log.SetLevel(log.ErrorLevel)
		} else {
			log.SetLevel(log.InfoLevel)
		}
		log.Debugf("Config file: %s", configFile)
	},
	RunE: runInstall,
}

func init() {
	// Disable automatic command sorting to maintain semantic order
	cobra.EnableCommandSorting = false

	RootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to entry config file (default: built-in AoE4 Overlay entry)")
	RootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Increase log verbosity")
	RootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "Suppress progress output")

	// The root's own flags double as the install command's flags since
	// the bare binary is an install alias.
	RootCmd.Flags().AddFlagSet(InstallCommand.Flags())

	RootCmd.AddGroup(&cobra.Group{
		ID:    "workflow",
		Title: "Workflow Commands:",
	})
	RootCmd.AddGroup(&cobra.Group{
		ID:    "utility",
		Title: "Utility Commands:",
	})

	RootCmd.SetHelpCommandGroupID("utility")
	RootCmd.SetCompletionCommandGroupID("utility")

	InitCommand.GroupID = "workflow"
	InstallCommand.GroupID = "workflow"
	CheckCommand.GroupID = "workflow"
	GenCommand.GroupID = "utility"

	RootCmd.AddCommand(InitCommand)    // Optional: write a starter config
	RootCmd.AddCommand(InstallCommand) // Build, register, refresh
	RootCmd.AddCommand(CheckCommand)   // Verify the installed entry
	RootCmd.AddCommand(GenCommand)     // Utility: preview descriptor content
}
