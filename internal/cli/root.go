// Package cli implements the listkeep command-line interface.
//
// This layer is presentation glue: it resolves a store, builds fully-formed
// items and renders rows read back. All invariants live in the liststore
// package; nothing here touches the database directly.
package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mthorne/listkeep/internal/liststore"
	"github.com/mthorne/listkeep/internal/logging"
)

// RootOptions holds global flags and injected collaborators shared by all
// commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	DB         string // explicit database path, overrides config
	StoreName  string // named store from the config file
	ConfigPath string

	// Registry caches one open handle per store for the process lifetime.
	// Injected by main; its Close is the process-exit teardown.
	Registry *liststore.Registry

	// Now stamps items; tests substitute a fixed clock.
	Now func() time.Time
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the listkeep CLI.
func NewRootCommand(reg *liststore.Registry) *cobra.Command {
	opts := &RootOptions{Registry: reg, Now: time.Now}

	cmd := &cobra.Command{
		Use:   "listkeep",
		Short: "listkeep - a durable shared list",
		Long:  "Keep ordered lists of items in a single-file store with idempotent writes.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return logging.Init(opts.Verbose)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.DB, "db", "", "path to the store database (overrides --store/--config)")
	cmd.PersistentFlags().StringVar(&opts.StoreName, "store", "", "named store from the config file")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to a YAML config mapping store names to paths")

	cmd.AddCommand(NewInitCommand(opts))
	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewDoneCommand(opts))
	cmd.AddCommand(NewInfoCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// resolvePath returns the backing database path for this invocation:
// --db wins; otherwise the config file names the store.
func (o *RootOptions) resolvePath() (string, error) {
	if o.DB != "" {
		return o.DB, nil
	}
	if o.ConfigPath == "" {
		return "", NewExitError(ExitCommandError, "no store selected: pass --db, or --config with --store")
	}

	cfg, err := LoadConfig(o.ConfigPath)
	if err != nil {
		return "", WrapExitError(ExitCommandError, "failed to load config", err)
	}
	path, err := cfg.Resolve(o.StoreName)
	if err != nil {
		return "", WrapExitError(ExitCommandError, "failed to resolve store", err)
	}
	return path, nil
}

// acquireStore resolves the store path and returns its long-lived open
// handle from the registry, bootstrapping the backing file on first use.
func (o *RootOptions) acquireStore() (*liststore.Store, error) {
	path, err := o.resolvePath()
	if err != nil {
		return nil, err
	}
	st, err := o.Registry.Get(path)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to open store", err)
	}
	return st, nil
}
