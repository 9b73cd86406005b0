package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mthorne/listkeep/internal/liststore"
)

func TestInfoCommand_EmptyStore(t *testing.T) {
	opts := newTestRoot(t)

	out, err := execute(t, NewInfoCommand(opts))
	require.NoError(t, err)

	assert.Contains(t, out, "Total Items: 0")
	assert.Contains(t, out, "Closed Items: 0")
	// Zero total must not divide by zero
	assert.Contains(t, out, "Percent Closed: 0.00%")
	assert.Contains(t, out, "Connected: true")
}

func TestInfoCommand_Counts(t *testing.T) {
	opts := newTestRoot(t)
	seedItems(t, opts, []liststore.Item{
		{Author: 1, MessageReference: 1, Message: "open"},
		{Author: 1, ClosedAt: 100, MessageReference: 2, Message: "closed"},
	})

	out, err := execute(t, NewInfoCommand(opts))
	require.NoError(t, err)

	assert.Contains(t, out, "Total Items: 2")
	assert.Contains(t, out, "Closed Items: 1")
	assert.Contains(t, out, "Percent Closed: 50.00%")
}

func TestInfoCommand_JSONOutput(t *testing.T) {
	opts := newTestRoot(t)
	opts.Format = "json"
	seedItems(t, opts, []liststore.Item{
		{Author: 1, MessageReference: 1, Message: "open"},
		{Author: 1, ClosedAt: 100, MessageReference: 2, Message: "closed"},
		{Author: 2, ClosedAt: 100, MessageReference: 3, Message: "closed too"},
		{Author: 2, ClosedAt: 100, MessageReference: 4, Message: "and this"},
	})

	out, err := execute(t, NewInfoCommand(opts))
	require.NoError(t, err)

	var resp struct {
		Status string     `json:"status"`
		Data   InfoResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, opts.DB, resp.Data.Store)
	assert.True(t, resp.Data.Connected)
	assert.Equal(t, int64(4), resp.Data.TotalItems)
	assert.Equal(t, int64(3), resp.Data.ClosedItems)
	assert.InDelta(t, 75.0, resp.Data.PercentClosed, 0.001)
}
