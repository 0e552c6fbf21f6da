package install

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/aoe4-overlay/desktop-installer/pkg/desktopfile"
	"github.com/aoe4-overlay/desktop-installer/pkg/entry"
	"github.com/apex/log"
	"github.com/pkg/errors"
)

// Options controls a single install run.
type Options struct {
	// ApplicationsDir overrides the per-user application directory.
	// Empty means the XDG default.
	ApplicationsDir string

	// WorkDir is the directory the working descriptor is created in.
	// Empty means the current directory.
	WorkDir string

	// ProjectRoot is the directory relative icon/exec paths are
	// resolved against, typically the directory a discovered config
	// file anchors. Empty means WorkDir.
	ProjectRoot string

	// DryRun logs the commands that would run without touching the
	// filesystem.
	DryRun bool

	// Clean removes the working-directory descriptor after a
	// successful install. The default keeps it, matching the original
	// installer's byproduct.
	Clean bool

	// Runner substitutes the external process runner. Nil means real
	// execution.
	Runner desktopfile.Runner
}

// Result reports what an install run produced.
type Result struct {
	WorkFile        string
	InstalledFile   string
	ApplicationsDir string
}

// ResolveApplicationsDir resolves the per-user application-entries
// directory, handling overrides and expansions. The default honors
// XDG_DATA_HOME and falls back to ~/.local/share/applications.
func ResolveApplicationsDir(dir string) (string, error) {
	if dir == "" {
		dir = filepath.Join(xdg.DataHome, "applications")
	}

	dir = expandPath(dir)

	absPath, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.Wrap(err, "failed to resolve applications directory")
	}
	return absPath, nil
}

// Run performs the full install sequence: create the working
// descriptor, populate it, register it, refresh the database. Steps
// run strictly in order and the first failure aborts the rest. There
// is no rollback; a failed run may leave the working descriptor
// behind, as the original installer does.
func Run(ctx context.Context, spec *entry.Spec, opts Options) (*Result, error) {
	workDir := opts.WorkDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "failed to get working directory")
		}
		workDir = wd
	}

	root := opts.ProjectRoot
	if root == "" {
		root = workDir
	}
	if err := spec.Finalize(root); err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	appsDir, err := ResolveApplicationsDir(opts.ApplicationsDir)
	if err != nil {
		return nil, err
	}

	workFile := filepath.Join(workDir, spec.FileName)
	result := &Result{
		WorkFile:        workFile,
		InstalledFile:   filepath.Join(appsDir, spec.FileName),
		ApplicationsDir: appsDir,
	}

	if opts.DryRun {
		logDryRun(spec, workFile, appsDir)
		return result, nil
	}

	tool := desktopfile.New(opts.Runner)

	if err := touch(workFile); err != nil {
		return result, &StepError{Step: StepCreate, Err: err}
	}
	if err := tool.Edit(ctx, spec, workFile); err != nil {
		return result, &StepError{Step: StepEdit, Err: err}
	}
	// desktop-file-install creates the directory itself; creating it
	// here keeps the later database refresh from ever seeing a
	// missing path.
	if err := os.MkdirAll(appsDir, 0755); err != nil {
		return result, &StepError{Step: StepInstall, Err: errors.Wrap(err, "failed to create applications directory")}
	}
	if err := tool.Install(ctx, workFile, appsDir); err != nil {
		return result, &StepError{Step: StepInstall, Err: err}
	}
	if err := tool.UpdateDatabase(ctx, appsDir); err != nil {
		return result, &StepError{Step: StepUpdateDatabase, Err: err}
	}

	if opts.Clean {
		if err := os.Remove(workFile); err != nil {
			log.WithError(err).Warnf("failed to remove working descriptor: %s", workFile)
		}
	}

	return result, nil
}

// touch creates the working descriptor if absent, leaving existing
// content alone; desktop-file-edit overwrites the keys it sets either
// way.
func touch(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrapf(err, "failed to create descriptor file: %s", path)
	}
	return f.Close()
}

func logDryRun(spec *entry.Spec, workFile, appsDir string) {
	log.Infof("would create %s", workFile)
	log.Infof("would run: %s %s", desktopfile.EditTool, strings.Join(desktopfile.EditArgs(spec, workFile), " "))
	log.Infof("would run: %s %s", desktopfile.InstallTool, strings.Join(desktopfile.InstallArgs(workFile, appsDir), " "))
	log.Infof("would run: %s %s", desktopfile.UpdateDatabaseTool, strings.Join(desktopfile.UpdateDatabaseArgs(appsDir), " "))
}

// expandPath expands ~ and environment variables in a path
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home := os.Getenv("HOME"); home != "" {
			path = filepath.Join(home, path[2:])
		}
	}
	return os.ExpandEnv(path)
}
