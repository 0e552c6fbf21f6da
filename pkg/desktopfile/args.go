package desktopfile

import "github.com/aoe4-overlay/desktop-installer/pkg/entry"

// External tool names, resolved through PATH.
const (
	EditTool           = "desktop-file-edit"
	InstallTool        = "desktop-file-install"
	UpdateDatabaseTool = "update-desktop-database"
)

// EditArgs builds the desktop-file-edit argv that populates workPath
// from the spec. Every option overwrites its key rather than
// appending, and --add-category does not duplicate an existing
// category, so re-running the same argv leaves the file unchanged.
// Exec and Type have no dedicated option and go through
// --set-key/--set-value pairs.
func EditArgs(spec *entry.Spec, workPath string) []string {
	args := []string{
		workPath,
		"--set-name=" + spec.Name,
		"--set-comment=" + spec.Comment,
		"--set-icon=" + spec.Icon,
	}
	for _, c := range spec.Categories {
		args = append(args, "--add-category="+c)
	}
	args = append(args,
		"--set-key=Exec", "--set-value="+spec.Exec,
		"--set-key=Type", "--set-value="+spec.Type,
	)
	return args
}

// InstallArgs builds the desktop-file-install argv that copies
// workPath into dir, creating dir if absent.
func InstallArgs(workPath, dir string) []string {
	return []string{"--dir=" + dir, workPath}
}

// UpdateDatabaseArgs builds the update-desktop-database argv that
// rebuilds the cache rooted at dir.
func UpdateDatabaseArgs(dir string) []string {
	return []string{dir}
}
