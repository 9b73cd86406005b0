package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/mthorne/listkeep/internal/liststore"
	"github.com/mthorne/listkeep/internal/testutil"
)

// testClockStart pins command timestamps: 2023-11-14T22:13:20Z.
const testClockStart = int64(1700000000)

// newTestRoot returns root options wired to a fresh temp store, a registry
// torn down with the test, and a fixed clock.
func newTestRoot(t *testing.T) *RootOptions {
	t.Helper()

	reg := liststore.NewRegistry()
	t.Cleanup(func() { _ = reg.Close() })

	return &RootOptions{
		Format:   "text",
		DB:       filepath.Join(t.TempDir(), "test.db"),
		Registry: reg,
		Now:      testutil.NewFixedClock(testClockStart).Now,
	}
}

// execute runs cmd with args and returns its stdout.
func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// seedItems writes items straight into the store behind opts, bypassing
// the command under test.
func seedItems(t *testing.T, opts *RootOptions, items []liststore.Item) {
	t.Helper()

	st, err := opts.Registry.Get(opts.DB)
	require.NoError(t, err)
	for _, it := range items {
		require.NoError(t, st.Write(context.Background(), it))
	}
}
