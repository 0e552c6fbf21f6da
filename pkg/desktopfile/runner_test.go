package desktopfile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecRunner(t *testing.T) {
	ctx := context.Background()

	t.Run("successful command", func(t *testing.T) {
		err := ExecRunner{}.Run(ctx, "sh", "-c", "exit 0")
		assert.NoError(t, err)
	})

	t.Run("failure includes tool name and output", func(t *testing.T) {
		err := ExecRunner{}.Run(ctx, "sh", "-c", "echo file is not writable >&2; exit 1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sh failed")
		assert.Contains(t, err.Error(), "file is not writable")
	})

	t.Run("missing binary", func(t *testing.T) {
		err := ExecRunner{}.Run(ctx, "definitely-not-a-real-tool-xyz")
		assert.Error(t, err)
	})
}

func TestAvailable(t *testing.T) {
	// With an empty PATH none of the tools resolve, and the error
	// names the first missing one.
	t.Setenv("PATH", t.TempDir())
	err := Available()
	require.Error(t, err)
	assert.Contains(t, err.Error(), EditTool)
}
