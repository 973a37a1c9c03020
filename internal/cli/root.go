// Package cli implements academiactl, a command-line client for the records
// backend that shares the list, form and catalog packages with the app.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/academia-admin/academia/internal/api"
	"github.com/academia-admin/academia/internal/catalog"
	"github.com/academia-admin/academia/internal/config"
	"github.com/academia-admin/academia/internal/logging"
	"github.com/academia-admin/academia/internal/platform"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	APIURL     string
	Verbose    bool
	Format     string // "json" | "text"

	cfg *config.File
	log *zap.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the academiactl CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "academiactl",
		Short: "academiactl - academic records from the command line",
		Long: `Manage people, faculties, careers, research and their relations on the
academic records backend, or run an in-memory backend for development.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Validate format flag
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return opts.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.log != nil {
				_ = opts.log.Sync()
			}
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file (default: user config dir/academia/config.yaml)")
	cmd.PersistentFlags().StringVar(&opts.APIURL, "api", "", "backend base URL, overrides the config file")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output and debug logging")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	// Add subcommands
	cmd.AddCommand(NewEntitiesCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewCreateCommand(opts))
	cmd.AddCommand(NewUpdateCommand(opts))
	cmd.AddCommand(NewDeleteCommand(opts))
	cmd.AddCommand(NewServeMockCommand(opts))
	cmd.AddCommand(NewConfigCommand(opts))

	return cmd
}

// init loads the configuration and builds the logger. Flags win over the
// file and the environment.
func (o *RootOptions) init() error {
	path, err := o.configPath()
	if err != nil {
		return WrapExitError(ExitCommandError, "cannot locate config", err)
	}

	cfg, err := config.LoadFile(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "cannot load config", err)
	}
	if o.APIURL != "" {
		cfg.APIURL = o.APIURL
	}
	o.cfg = cfg

	log, err := logging.New(cfg.LogLevel, o.Verbose)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to initialize logger", err)
	}
	o.log = log.Named("cli")
	return nil
}

func (o *RootOptions) configPath() (string, error) {
	if o.ConfigPath != "" {
		return o.ConfigPath, nil
	}
	return platform.DefaultConfigFile()
}

// client builds the API client from the effective configuration.
func (o *RootOptions) client() (*api.Client, error) {
	timeout, err := o.cfg.Timeout()
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "invalid config", err)
	}
	client, err := api.NewClient(api.Options{
		BaseURL: o.cfg.APIURL,
		Timeout: timeout,
		Logger:  o.log,
	})
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "invalid API URL", err)
	}
	return client, nil
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   o.Verbose,
	}
}

// lookupEntity resolves an entity argument such as "facultades" or "Persona".
func lookupEntity(name string) (catalog.Descriptor, error) {
	d, ok := catalog.Lookup(name)
	if !ok {
		return nil, NewExitError(ExitCommandError, fmt.Sprintf("unknown entity %q, run 'academiactl entities'", name))
	}
	return d, nil
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
