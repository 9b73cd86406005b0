package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/mthorne/listkeep/internal/liststore"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
	Author int64
	All    bool
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show items in the list",
		Long: `Show items in insertion order. Closed items are excluded unless
--all is passed; --author restricts output to one author's items.

Examples:
  listkeep list --db ./shopping.db
  listkeep list --db ./shopping.db --author 42 --all
  listkeep list --db ./shopping.db --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(opts, cmd)
		},
	}

	cmd.Flags().Int64Var(&opts.Author, "author", 0, "restrict to one author's items")
	cmd.Flags().BoolVar(&opts.All, "all", false, "include closed items")

	return cmd
}

func runList(opts *ListOptions, cmd *cobra.Command) error {
	st, err := opts.acquireStore()
	if err != nil {
		return err
	}

	filter := liststore.Filter{IncludeClosed: opts.All}
	if cmd.Flags().Changed("author") {
		filter.Author = &opts.Author
	}

	items, err := st.Get(context.Background(), filter)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read items", err)
	}

	if opts.Format == "json" {
		return writeJSON(cmd.OutOrStdout(), items)
	}

	renderItems(cmd.OutOrStdout(), items)
	return nil
}

// renderItems writes the text listing: one line per item with the creation
// date, priority and message, flagging closed items.
func renderItems(w io.Writer, items []liststore.Item) {
	if len(items) == 0 {
		fmt.Fprintln(w, "(no items)")
		return
	}

	for _, it := range items {
		created := time.Unix(it.CreatedAt, 0).UTC().Format("2006-01-02")
		line := fmt.Sprintf("- %s [%s] %s", created, it.Priority, it.Message)
		if it.Closed() {
			line += " (closed)"
		}
		fmt.Fprintln(w, line)
	}
}
