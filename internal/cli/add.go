package cli

import (
	"context"
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mthorne/listkeep/internal/liststore"
	"github.com/mthorne/listkeep/internal/logging"
)

// AddOptions holds flags for the add command.
type AddOptions struct {
	*RootOptions
	Author    int64
	Reference int64
	Priority  string
}

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AddOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "add <message>...",
		Short: "Add an item to the list",
		Long: `Write a new open item stamped with the current time.

Writing the same (author, reference) pair again updates the existing item
in place, so add is safe to repeat.

When --ref is not passed a time-ordered reference is minted; pass the
originating message id explicitly to keep writes idempotent across runs.

Examples:
  listkeep add --db ./shopping.db --author 42 eggs and flour
  listkeep add --db ./shopping.db --author 42 --ref 9001 --priority high milk`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(opts, cmd, args)
		},
	}

	cmd.Flags().Int64Var(&opts.Author, "author", 0, "id of the item's owner (required)")
	_ = cmd.MarkFlagRequired("author")
	cmd.Flags().Int64Var(&opts.Reference, "ref", 0, "external correlation id (minted when omitted)")
	cmd.Flags().StringVar(&opts.Priority, "priority", "none", "priority (none|low|medium|high)")

	return cmd
}

func runAdd(opts *AddOptions, cmd *cobra.Command, args []string) error {
	priority, err := liststore.ParsePriority(opts.Priority)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --priority", err)
	}

	st, err := opts.acquireStore()
	if err != nil {
		return err
	}

	ref := opts.Reference
	if ref == 0 {
		ref = newMessageReference()
	}

	now := opts.Now().Unix()
	item := liststore.Item{
		Author:           opts.Author,
		CreatedAt:        now,
		UpdatedAt:        now,
		MessageReference: ref,
		Message:          strings.Join(args, " "),
		Priority:         priority,
	}

	if err := st.Write(context.Background(), item); err != nil {
		return WrapExitError(ExitCommandError, "failed to write item", err)
	}

	logging.L().Info("item written",
		zap.Int64("author", item.Author),
		zap.Int64("reference", item.MessageReference),
		zap.String("priority", item.Priority.String()),
	)

	if opts.Format == "json" {
		return writeJSON(cmd.OutOrStdout(), map[string]any{
			"author":    item.Author,
			"reference": item.MessageReference,
			"priority":  item.Priority.String(),
		})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added item %d for author %d\n", item.MessageReference, item.Author)
	return nil
}

// newMessageReference mints a time-ordered reference for items that do not
// originate from an external message. UUIDv7 carries a millisecond
// timestamp plus a monotonic sequence in its leading bytes, so references
// sort by creation time and never repeat within a process. Masking the
// sign bit keeps them positive without touching the sequence bits.
func newMessageReference() int64 {
	id := uuid.Must(uuid.NewV7())
	return int64(binary.BigEndian.Uint64(id[:8]) & (1<<63 - 1))
}
