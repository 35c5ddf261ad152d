// Package cli implements the arcroute command-line interface.
//
// # Commands
//
//   - drone:    one drone surveys every street (Chinese Postman circuit)
//   - fleet:    split the network among N snow plows and route each one
//   - generate: write a synthetic grid or random road network
//
// Networks are read and written as JSON or YAML (see package graphio); the
// format follows the file extension unless --format is given.
//
// # Logging
//
// Logs go to stderr through charmbracelet/log. The level comes from the
// config file ([log] level) and --verbose (-v) forces debug.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/arcroute/graphio"
	"github.com/katalvlaran/arcroute/internal/config"
)

var (
	version string
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version, usually
// injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the arcroute CLI with os.Args.
func Execute(ctx context.Context) error {
	return NewRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
}

// NewRootCmd builds the command tree writing results to stdout and logs to
// stderr.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:          "arcroute",
		Short:        "arcroute plans street-covering routes for drones and snow plows",
		Long:         `arcroute solves the Chinese Postman Problem on road networks: a single drone circuit over every street, or a fleet of snow plows each clearing one region of the city.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			level, err := cfg.LogLevel()
			if err != nil {
				return err
			}
			if verbose {
				level = log.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(stderr, level))
			cmd.SetContext(withConfig(ctx, cfg))

			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.SetVersionTemplate(fmt.Sprintf("arcroute %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "TOML configuration file")

	root.AddCommand(newDroneCmd())
	root.AddCommand(newFleetCmd())
	root.AddCommand(newGenerateCmd())

	return root
}

// outputFlags are shared by every command that writes a document.
type outputFlags struct {
	out    string
	format string
}

func (o *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.out, "out", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&o.format, "format", "f", "", "output format: json or yaml (default from --out extension, else json)")
}

// write encodes a document to --out or the command's stdout.
func (o *outputFlags) write(cmd *cobra.Command, encode func(io.Writer, graphio.Format) error) error {
	f := graphio.FormatJSON
	if o.out != "" {
		f = graphio.FormatFromPath(o.out)
	}
	if o.format != "" {
		f = graphio.Format(o.format)
	}

	if o.out == "" {
		return encode(cmd.OutOrStdout(), f)
	}
	fh, err := os.Create(o.out)
	if err != nil {
		return fmt.Errorf("create %s: %w", o.out, err)
	}
	defer fh.Close()

	return encode(fh, f)
}
