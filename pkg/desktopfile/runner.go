package desktopfile

import (
	"context"
	"os/exec"
	"strings"

	"github.com/apex/log"
	"github.com/pkg/errors"
)

// Runner executes an external tool and returns its error, if any.
// The default implementation shells out; tests substitute a fake.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// ExecRunner runs tools as child processes, blocking until exit.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	log.Debugf("running: %s %s", name, strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		if len(out) > 0 {
			return errors.Wrapf(err, "%s failed: %s", name, strings.TrimSpace(string(out)))
		}
		return errors.Wrapf(err, "%s failed", name)
	}
	return nil
}

// Available reports an error naming the first of the three required
// tools missing from PATH, so a run can fail before touching any
// file instead of halfway through the sequence.
func Available() error {
	for _, tool := range []string{EditTool, InstallTool, UpdateDatabaseTool} {
		if _, err := exec.LookPath(tool); err != nil {
			return errors.Wrapf(err, "required tool %s not found in PATH", tool)
		}
	}
	return nil
}
