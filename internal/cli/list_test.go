package cli

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mthorne/listkeep/internal/liststore"
)

// seedListFixture writes a fixed set of items so rendered output is stable
// enough for golden comparison.
func seedListFixture(t *testing.T, opts *RootOptions) {
	t.Helper()
	seedItems(t, opts, []liststore.Item{
		{Author: 1, CreatedAt: 1700000000, UpdatedAt: 1700000000, MessageReference: 1, Message: "eggs and flour", Priority: liststore.PriorityLow},
		{Author: 2, CreatedAt: 1700086400, UpdatedAt: 1700086400, MessageReference: 2, Message: "fix the gate", Priority: liststore.PriorityHigh},
		{Author: 1, CreatedAt: 1700172800, UpdatedAt: 1700172800, ClosedAt: 1700172900, MessageReference: 3, Message: "call the plumber", Priority: liststore.PriorityNone},
	})
}

func listGoldie(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestListCommand_OpenItems(t *testing.T) {
	opts := newTestRoot(t)
	seedListFixture(t, opts)

	out, err := execute(t, NewListCommand(opts))
	require.NoError(t, err)

	listGoldie(t).Assert(t, "list_open", []byte(out))
}

func TestListCommand_AllItems(t *testing.T) {
	opts := newTestRoot(t)
	seedListFixture(t, opts)

	out, err := execute(t, NewListCommand(opts), "--all")
	require.NoError(t, err)

	listGoldie(t).Assert(t, "list_all", []byte(out))
}

func TestListCommand_AuthorFilter(t *testing.T) {
	opts := newTestRoot(t)
	seedListFixture(t, opts)

	out, err := execute(t, NewListCommand(opts), "--author", "1")
	require.NoError(t, err)

	listGoldie(t).Assert(t, "list_author", []byte(out))
}

func TestListCommand_AuthorZeroIsAFilter(t *testing.T) {
	opts := newTestRoot(t)
	seedListFixture(t, opts)

	// Author 0 owns nothing; passing the flag explicitly must filter,
	// not fall back to "all authors".
	out, err := execute(t, NewListCommand(opts), "--author", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "(no items)")
}

func TestListCommand_EmptyStore(t *testing.T) {
	opts := newTestRoot(t)

	out, err := execute(t, NewListCommand(opts))
	require.NoError(t, err)

	listGoldie(t).Assert(t, "list_empty", []byte(out))
}

func TestListCommand_JSONOutput(t *testing.T) {
	opts := newTestRoot(t)
	opts.Format = "json"
	seedListFixture(t, opts)

	out, err := execute(t, NewListCommand(opts), "--all")
	require.NoError(t, err)

	var resp struct {
		Status string           `json:"status"`
		Data   []liststore.Item `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	require.Len(t, resp.Data, 3)
	assert.Equal(t, "eggs and flour", resp.Data[0].Message)
	assert.True(t, resp.Data[2].Closed())
}
