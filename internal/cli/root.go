// Package cli implements the generate command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"comic-relayout/internal/config"
	"comic-relayout/internal/pipeline"
	"comic-relayout/internal/version"

	"github.com/spf13/cobra"
)

// ErrUsage is returned when the command is given the wrong arguments.
var ErrUsage = errors.New("usage: generate <input.png> <output-dir>")

// exactArgs rejects anything but an input path and an output directory.
func exactArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	return nil
}

// NewCommand builds the generate command. Settings start from the
// environment, which is read only once the arguments are valid, and are
// overridden by flags given on the command line.
func NewCommand() *cobra.Command {
	var flags config.Config

	cmd := &cobra.Command{
		Use:   "generate <input.png> <output-dir>",
		Short: "Generate alternative grid layouts of a comic strip",
		Long: `Reads a comic strip, extracts its individual panels and writes
<cols>x<rows>.png into the output directory for every grid the panels fit.`,
		Version:       version.String(),
		Args:          exactArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("padding") {
				cfg.Padding = flags.Padding
			}
			if cmd.Flags().Changed("compression") {
				cfg.Compression = flags.Compression
			}
			cfg.Verbose = flags.Verbose
			cfg.InputPath = args[0]
			cfg.OutputDir = args[1]

			if cfg.Verbose {
				setupLogging(slog.LevelDebug)
			}
			_, err = pipeline.Run(cmd.Context(), cfg)
			return err
		},
	}

	cmd.Flags().IntVarP(&flags.Padding, "padding", "p", config.DefaultPadding,
		"Gap in pixels between panels and around the image (env "+config.EnvPadding+")")
	cmd.Flags().StringVar(&flags.Compression, "compression", config.DefaultCompression,
		"PNG compression: default, none, fast or best (env "+config.EnvCompression+")")
	cmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

// setupLogging installs a text logger on stderr.
func setupLogging(level slog.Level) {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

// Run executes the command with args, which exclude the program name.
func Run(ctx context.Context, args []string) error {
	cmd := NewCommand()
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

// ExecuteContext runs the command with the process arguments and returns
// the exit status.
func ExecuteContext(ctx context.Context) int {
	setupLogging(slog.LevelInfo)

	if err := Run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
