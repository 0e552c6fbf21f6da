package desktopfile

import (
	"context"

	"github.com/aoe4-overlay/desktop-installer/pkg/entry"
)

// Tool invokes the freedesktop desktop-file utilities through a
// Runner. The utilities' contracts are consumed as-is; no output is
// parsed.
type Tool struct {
	runner Runner
}

// New returns a Tool backed by the given runner. A nil runner gets
// the real ExecRunner.
func New(runner Runner) *Tool {
	if runner == nil {
		runner = ExecRunner{}
	}
	return &Tool{runner: runner}
}

// Edit populates workPath with the spec's fields via desktop-file-edit.
func (t *Tool) Edit(ctx context.Context, spec *entry.Spec, workPath string) error {
	return t.runner.Run(ctx, EditTool, EditArgs(spec, workPath)...)
}

// Install registers workPath into dir via desktop-file-install.
func (t *Tool) Install(ctx context.Context, workPath, dir string) error {
	return t.runner.Run(ctx, InstallTool, InstallArgs(workPath, dir)...)
}

// UpdateDatabase refreshes the desktop database rooted at dir via
// update-desktop-database, so launchers observe changes without a
// session restart.
func (t *Tool) UpdateDatabase(ctx context.Context, dir string) error {
	return t.runner.Run(ctx, UpdateDatabaseTool, UpdateDatabaseArgs(dir)...)
}
