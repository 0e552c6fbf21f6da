package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func resetInstallFlags() {
	configFile = ""
	installAppsDir = ""
	installDryRun = false
	installClean = false
}

// The dry-run path goes through the whole command without requiring
// the desktop-file utilities to be present.
func TestInstallCommandDryRun(t *testing.T) {
	resetInstallFlags()
	workDir := t.TempDir()
	appsDir := filepath.Join(t.TempDir(), "applications")
	t.Chdir(workDir)

	installDryRun = true
	installAppsDir = appsDir

	if err := InstallCommand.RunE(InstallCommand, nil); err != nil {
		t.Fatalf("dry-run install failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(workDir, "org.aoe4_overlay.desktop")); err == nil {
		t.Error("dry run created the working descriptor")
	}
	if _, err := os.Stat(appsDir); err == nil {
		t.Error("dry run created the applications directory")
	}
}

func TestInstallCommandMissingTools(t *testing.T) {
	resetInstallFlags()
	t.Chdir(t.TempDir())

	// With an empty PATH the command must fail before touching the
	// filesystem.
	t.Setenv("PATH", t.TempDir())

	err := InstallCommand.RunE(InstallCommand, nil)
	if err == nil {
		t.Fatal("expected an error when the desktop-file utilities are missing")
	}

	if _, err := os.Stat("org.aoe4_overlay.desktop"); err == nil {
		t.Error("failed run left a working descriptor behind before any step ran")
	}
}

func TestInstallCommandBadConfig(t *testing.T) {
	resetInstallFlags()
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)

	badConfig := filepath.Join(tmpDir, "entry.yml")
	if err := os.WriteFile(badConfig, []byte("categories: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	configFile = badConfig
	installDryRun = true

	if err := InstallCommand.RunE(InstallCommand, nil); err == nil {
		t.Error("expected an error for an unparsable config file")
	}
}
