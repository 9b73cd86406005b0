package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mthorne/listkeep/internal/liststore"
)

func TestDoneCommand_ClosesItem(t *testing.T) {
	opts := newTestRoot(t)
	seedItems(t, opts, []liststore.Item{
		{Author: 42, CreatedAt: 100, UpdatedAt: 100, MessageReference: 9001, Message: "eggs", Priority: liststore.PriorityLow},
	})

	out, err := execute(t, NewDoneCommand(opts), "--author", "42", "--ref", "9001")
	require.NoError(t, err)
	assert.Contains(t, out, "Closed item 9001 for author 42")

	st, err := opts.Registry.Get(opts.DB)
	require.NoError(t, err)
	items, err := st.Get(context.Background(), liststore.Filter{IncludeClosed: true})
	require.NoError(t, err)
	require.Len(t, items, 1)

	it := items[0]
	assert.Equal(t, testClockStart, it.ClosedAt)
	assert.Equal(t, testClockStart, it.UpdatedAt)
	assert.Equal(t, int64(100), it.CreatedAt, "created_at must survive closing")
	assert.Equal(t, "eggs", it.Message, "message must survive closing")
}

func TestDoneCommand_UnknownReference(t *testing.T) {
	opts := newTestRoot(t)
	seedItems(t, opts, []liststore.Item{
		{Author: 42, MessageReference: 9001, Message: "eggs"},
	})

	_, err := execute(t, NewDoneCommand(opts), "--author", "42", "--ref", "404")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "no item with reference 404")
}

func TestDoneCommand_WrongAuthor(t *testing.T) {
	opts := newTestRoot(t)
	seedItems(t, opts, []liststore.Item{
		{Author: 42, MessageReference: 9001, Message: "eggs"},
	})

	_, err := execute(t, NewDoneCommand(opts), "--author", "7", "--ref", "9001")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestDoneCommand_AlreadyClosedRefreshesTimestamps(t *testing.T) {
	opts := newTestRoot(t)
	seedItems(t, opts, []liststore.Item{
		{Author: 42, CreatedAt: 100, UpdatedAt: 150, ClosedAt: 150, MessageReference: 9001, Message: "eggs"},
	})

	_, err := execute(t, NewDoneCommand(opts), "--author", "42", "--ref", "9001")
	require.NoError(t, err)

	st, err := opts.Registry.Get(opts.DB)
	require.NoError(t, err)
	items, err := st.Get(context.Background(), liststore.Filter{IncludeClosed: true})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, testClockStart, items[0].ClosedAt)
}

func TestDoneCommand_RequiredFlags(t *testing.T) {
	opts := newTestRoot(t)

	_, err := execute(t, NewDoneCommand(opts), "--ref", "1")
	require.Error(t, err)

	_, err = execute(t, NewDoneCommand(opts), "--author", "1")
	require.Error(t, err)
}
