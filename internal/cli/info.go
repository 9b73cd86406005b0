package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// InfoResult holds the store summary for output.
type InfoResult struct {
	Store         string  `json:"store"`
	Connected     bool    `json:"connected"`
	TotalItems    int64   `json:"total_items"`
	ClosedItems   int64   `json:"closed_items"`
	PercentClosed float64 `json:"percent_closed"`
}

// NewInfoCommand creates the info command.
func NewInfoCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show store summary",
		Long: `Show the store path, connection state, item counts and the share of
closed items.

Examples:
  listkeep info --db ./shopping.db
  listkeep info --db ./shopping.db --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(rootOpts, cmd)
		},
	}
}

func runInfo(opts *RootOptions, cmd *cobra.Command) error {
	st, err := opts.acquireStore()
	if err != nil {
		return err
	}

	total, closed, err := st.Counts(context.Background())
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to count items", err)
	}

	// The store returns raw counts; the zero-total case is ours to handle.
	percent := 0.0
	if total > 0 {
		percent = float64(closed) / float64(total) * 100
	}

	result := InfoResult{
		Store:         st.Path(),
		Connected:     st.Connected(),
		TotalItems:    total,
		ClosedItems:   closed,
		PercentClosed: percent,
	}

	if opts.Format == "json" {
		return writeJSON(cmd.OutOrStdout(), result)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Store: %s\n", result.Store)
	fmt.Fprintf(w, "Connected: %t\n", result.Connected)
	fmt.Fprintf(w, "Total Items: %d\n", result.TotalItems)
	fmt.Fprintf(w, "Closed Items: %d\n", result.ClosedItems)
	fmt.Fprintf(w, "Percent Closed: %.2f%%\n", result.PercentClosed)
	return nil
}
