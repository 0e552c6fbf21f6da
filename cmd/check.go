package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aoe4-overlay/desktop-installer/internal/render"
	"github.com/aoe4-overlay/desktop-installer/pkg/entry"
	"github.com/aoe4-overlay/desktop-installer/pkg/install"
	"github.com/apex/log"
	"github.com/spf13/cobra"
)

var (
	// Flags for check command
	checkAppsDir string
)

// CheckCommand represents the check command
var CheckCommand = &cobra.Command{
	Use:   "check",
	Short: "Verify the installed desktop entry",
	Long: `Checks the installed desktop entry by:
- Parsing the descriptor from the per-user application directory
- Verifying Icon and Exec are absolute paths pointing at existing files
- Verifying the category list and entry type
- Comparing the installed content against what an install run would
  produce now, to detect drift after the project moved or the config
  changed

This makes it easy to confirm a registration without re-running the
installer.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log.Info("Running check command...")

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
		if err := spec.Validate(); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}

		appsDir, err := install.ResolveApplicationsDir(checkAppsDir)
		if err != nil {
			return err
		}

		installedPath := filepath.Join(appsDir, spec.FileName)
		log.Debugf("Reading installed entry: %s", installedPath)
		data, err := os.ReadFile(installedPath)
		if err != nil {
			return fmt.Errorf("no installed entry at %s (run aoe4-desktop install first): %w", installedPath, err)
		}

		installed, err := entry.Parse(data)
		if err != nil {
			return fmt.Errorf("failed to parse installed entry %s: %w", installedPath, err)
		}

		if err := checkInstalled(installed); err != nil {
			return fmt.Errorf("installed entry is invalid: %w", err)
		}
		log.Info("✓ Installed entry is valid")

		expected, err := render.Entry(spec)
		if err != nil {
			return err
		}
		if drift := diffEntries(spec, installed); drift != "" {
			log.Warnf("Installed entry differs from current configuration: %s", drift)
			log.Warn("Re-run aoe4-desktop install to update it")
			return nil
		}
		// Key-level equality is what matters; byte-level differences
		// only mean the file was last written by a different
		// desktop-file-edit version.
		if !bytes.Equal(bytes.TrimSpace(data), bytes.TrimSpace(expected)) {
			log.Debug("Installed entry matches by keys but not byte-for-byte")
		}
		log.Info("✓ Installed entry matches current configuration")
		return nil
	},
}

func init() {
	CheckCommand.Flags().StringVarP(&checkAppsDir, "applications-dir", "d", "", "Per-user applications directory (default: XDG data home + /applications)")
}

// checkInstalled verifies the freedesktop-level properties of an
// installed entry independent of this project's configuration.
func checkInstalled(installed *entry.Spec) error {
	if !filepath.IsAbs(installed.Icon) {
		return fmt.Errorf("Icon is not an absolute path: %s", installed.Icon)
	}
	if !filepath.IsAbs(installed.Exec) {
		return fmt.Errorf("Exec is not an absolute path: %s", installed.Exec)
	}
	if installed.Type != entry.TypeApplication {
		return fmt.Errorf("Type is %q, want %q", installed.Type, entry.TypeApplication)
	}
	if len(installed.Categories) == 0 {
		return fmt.Errorf("Categories is empty")
	}
	if _, err := os.Stat(installed.Exec); err != nil {
		return fmt.Errorf("Exec target does not exist: %s", installed.Exec)
	}
	if _, err := os.Stat(installed.Icon); err != nil {
		return fmt.Errorf("Icon file does not exist: %s", installed.Icon)
	}
	return nil
}

// diffEntries reports the first key whose installed value differs from
// the configured one, or "" when they agree.
func diffEntries(want, got *entry.Spec) string {
	if got.Name != want.Name {
		return fmt.Sprintf("Name is %q, want %q", got.Name, want.Name)
	}
	if got.Comment != want.Comment {
		return fmt.Sprintf("Comment is %q, want %q", got.Comment, want.Comment)
	}
	if got.Icon != want.Icon {
		return fmt.Sprintf("Icon is %q, want %q", got.Icon, want.Icon)
	}
	if got.Exec != want.Exec {
		return fmt.Sprintf("Exec is %q, want %q", got.Exec, want.Exec)
	}
	if got.CategoryList() != want.CategoryList() {
		return fmt.Sprintf("Categories is %q, want %q", got.CategoryList(), want.CategoryList())
	}
	if got.Type != want.Type {
		return fmt.Sprintf("Type is %q, want %q", got.Type, want.Type)
	}
	return ""
}
