package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mthorne/listkeep/internal/liststore"
	"github.com/mthorne/listkeep/internal/logging"
)

// DoneOptions holds flags for the done command.
type DoneOptions struct {
	*RootOptions
	Author    int64
	Reference int64
}

// NewDoneCommand creates the done command.
func NewDoneCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DoneOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "done",
		Short: "Close an item",
		Long: `Mark the item with the given (author, reference) pair as closed.

The item keeps its creation time and message; only the closed and updated
timestamps change. Closing an already-closed item refreshes them.

Examples:
  listkeep done --db ./shopping.db --author 42 --ref 9001`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDone(opts, cmd)
		},
	}

	cmd.Flags().Int64Var(&opts.Author, "author", 0, "id of the item's owner (required)")
	_ = cmd.MarkFlagRequired("author")
	cmd.Flags().Int64Var(&opts.Reference, "ref", 0, "reference of the item to close (required)")
	_ = cmd.MarkFlagRequired("ref")

	return cmd
}

func runDone(opts *DoneOptions, cmd *cobra.Command) error {
	ctx := context.Background()

	st, err := opts.acquireStore()
	if err != nil {
		return err
	}

	items, err := st.Get(ctx, liststore.Filter{Author: &opts.Author, IncludeClosed: true})
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read items", err)
	}

	var item *liststore.Item
	for i := range items {
		if items[i].MessageReference == opts.Reference {
			item = &items[i]
			break
		}
	}
	if item == nil {
		return NewExitError(ExitFailure,
			fmt.Sprintf("no item with reference %d for author %d", opts.Reference, opts.Author))
	}

	now := opts.Now().Unix()
	item.UpdatedAt = now
	item.ClosedAt = now
	if err := st.Write(ctx, *item); err != nil {
		return WrapExitError(ExitCommandError, "failed to close item", err)
	}

	logging.L().Info("item closed",
		zap.Int64("author", item.Author),
		zap.Int64("reference", item.MessageReference),
	)

	if opts.Format == "json" {
		return writeJSON(cmd.OutOrStdout(), map[string]any{
			"author":    item.Author,
			"reference": item.MessageReference,
			"closed_at": item.ClosedAt,
		})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Closed item %d for author %d\n", item.MessageReference, item.Author)
	return nil
}
