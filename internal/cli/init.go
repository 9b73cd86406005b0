package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mthorne/listkeep/internal/liststore"
	"github.com/mthorne/listkeep/internal/logging"
)

// NewInitCommand creates the init command.
func NewInitCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a new list store",
		Long: `Create the backing database file and schema for a new list store.

Fails if the file already exists; init never reuses an existing store.

Examples:
  listkeep init --db ./shopping.db
  listkeep init --config listkeep.yaml --store chores`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(rootOpts, cmd)
		},
	}
}

func runInit(opts *RootOptions, cmd *cobra.Command) error {
	path, err := opts.resolvePath()
	if err != nil {
		return err
	}

	if _, err := liststore.Initialize(path); err != nil {
		if errors.Is(err, liststore.ErrAlreadyExists) {
			return WrapExitError(ExitCommandError, "store already initialized", err)
		}
		return WrapExitError(ExitCommandError, "failed to initialize store", err)
	}

	logging.L().Info("store initialized", zap.String("path", path))

	if opts.Format == "json" {
		return writeJSON(cmd.OutOrStdout(), map[string]string{"path": path})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Initialized list store at %s\n", path)
	return nil
}
