package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/academia-admin/academia/internal/config"
	"github.com/academia-admin/academia/internal/platform"
)

// ConfigView is the effective configuration.
type ConfigView struct {
	Path   string       `json:"path"`
	Config *config.File `json:"config"`
}

// WriteText renders the configuration as YAML preceded by its path.
func (v ConfigView) WriteText(w io.Writer) error {
	fmt.Fprintf(w, "# %s\n", v.Path)
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v.Config); err != nil {
		return err
	}
	return enc.Close()
}

// NewConfigCommand creates the config command group.
func NewConfigCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create the configuration file",
	}
	cmd.AddCommand(newConfigShowCommand(rootOpts))
	cmd.AddCommand(newConfigInitCommand(rootOpts))
	return cmd
}

func newConfigShowCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := rootOpts.configPath()
			if err != nil {
				return WrapExitError(ExitCommandError, "cannot locate config", err)
			}
			return rootOpts.formatter(cmd).Success(ConfigView{Path: path, Config: rootOpts.cfg})
		},
	}
}

func newConfigInitCommand(rootOpts *RootOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file with default values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := rootOpts.configPath()
			if err != nil {
				return WrapExitError(ExitCommandError, "cannot locate config", err)
			}
			if platform.FileExists(path) && !force {
				return NewExitError(ExitCommandError, fmt.Sprintf("%s already exists, use --force to overwrite", path))
			}

			cfg := config.DefaultFile()
			if rootOpts.APIURL != "" {
				cfg.APIURL = rootOpts.APIURL
			}
			if err := cfg.Save(path); err != nil {
				return WrapExitError(ExitFailure, "cannot write config", err)
			}
			return rootOpts.formatter(cmd).Success(ConfigView{Path: path, Config: cfg})
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}
