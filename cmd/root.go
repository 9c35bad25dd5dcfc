package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"generate-qr/internal/models"
	"generate-qr/internal/modules/encoder"
	"generate-qr/internal/modules/persistence"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultOutputPath is where the image goes when no output path is given.
const DefaultOutputPath = "../expo_qr.png"

// usageLine is printed when the URL is missing. A URL starting with a dash
// must follow "--".
const usageLine = "Usage: generate_qr [flags] [--] <URL> [output_path]"

// Exit codes.
const (
	ExitOK      = 0
	ExitUsage   = 1
	ExitFailure = 2
)

// usageError marks failures caused by how the command was invoked.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

var errMissingURL = errors.New("missing URL argument")

type options struct {
	level      string
	moduleSize int
	engine     string
	verbose    bool
}

// Execute runs the command against the process arguments and returns the exit code.
func Execute(ctx context.Context, logger *zap.Logger, level zap.AtomicLevel) int {
	return Run(ctx, os.Args[1:], os.Stdout, os.Stderr, logger, level)
}

// Run parses args, generates the QR image and reports the result.
//
// Parameters:
//   - ctx: Context for cancellation.
//   - args: Command-line arguments without the program name.
//   - stdout: Receives the usage line or the confirmation.
//   - stderr: Receives error diagnostics.
//   - logger: Logger for progress and errors.
//   - level: Log level switched to debug by --verbose.
//
// Returns:
//   - ExitOK on success, ExitUsage on a bad invocation, ExitFailure when encoding or writing fails.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer, logger *zap.Logger, level zap.AtomicLevel) int {
	if args == nil {
		args = []string{}
	}

	rootCmd := newRootCmd(ctx, stdout, logger, level)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err == nil {
		return ExitOK
	}

	var uerr *usageError
	if errors.As(err, &uerr) {
		if !errors.Is(err, errMissingURL) {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		fmt.Fprintln(stdout, usageLine)
		return ExitUsage
	}

	logger.Debug("execution failed", zap.Error(err))
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return ExitFailure
}

func newRootCmd(ctx context.Context, stdout io.Writer, logger *zap.Logger, level zap.AtomicLevel) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "generate_qr [flags] [--] <URL> [output_path]",
		Short:         "Write a URL as a QR code image",
		Long:          `Encode a URL as a QR code (error correction Q, black on white) and save it as a raster image. The format follows the output file extension.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.verbose {
				level.SetLevel(zapcore.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := parseInvocation(args, DefaultOutputPath)
			if err != nil {
				return err
			}
			cfg, err := opts.renderConfig()
			if err != nil {
				return err
			}
			enc, err := encoder.New(opts.engine)
			if err != nil {
				return &usageError{err: err}
			}
			if err := generate(ctx, inv, enc, cfg, logger); err != nil {
				return err
			}
			fmt.Fprintf(stdout, "QR saved to: %s\n", inv.OutputPath)
			return nil
		},
	}

	opts.bind(rootCmd.Flags())
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	return rootCmd
}

func (o *options) bind(flags *pflag.FlagSet) {
	// Long names only, so a dash-prefixed URL is never taken for a shorthand.
	flags.StringVar(&o.level, "level", models.LevelQ.String(), "Error correction level (L, M, Q or H)")
	flags.IntVar(&o.moduleSize, "module-size", models.DefaultModuleSize, "Pixels per QR module")
	flags.StringVar(&o.engine, "engine", encoder.DefaultEngine, fmt.Sprintf("QR encoder backend %v", encoder.Engines()))
	flags.BoolVar(&o.verbose, "verbose", false, "Enable debug logging on stderr")
	flags.SortFlags = false
}

// parseInvocation maps positional arguments onto an Invocation. Arguments past
// the output path are ignored.
func parseInvocation(args []string, defaultOutput string) (models.Invocation, error) {
	if len(args) < 1 {
		return models.Invocation{}, &usageError{err: errMissingURL}
	}
	inv := models.Invocation{URL: args[0], OutputPath: defaultOutput}
	if len(args) >= 2 {
		inv.OutputPath = args[1]
	}
	return inv, nil
}

func (o *options) renderConfig() (models.RenderConfig, error) {
	cfg := models.DefaultRenderConfig()

	lvl, err := models.ParseErrorCorrection(o.level)
	if err != nil {
		return cfg, &usageError{err: err}
	}
	cfg.Level = lvl

	if o.moduleSize < 1 || o.moduleSize > encoder.MaxModuleSize {
		return cfg, &usageError{err: fmt.Errorf("%w: %d", encoder.ErrBadModuleSize, o.moduleSize)}
	}
	cfg.ModuleSize = o.moduleSize
	return cfg, nil
}

func generate(ctx context.Context, inv models.Invocation, enc encoder.Encoder, cfg models.RenderConfig, logger *zap.Logger) error {
	logger.Info("generating qr code",
		zap.String("url", inv.URL),
		zap.String("output", inv.OutputPath),
		zap.Stringer("level", cfg.Level))

	// Fail on the extension before doing any encoding work.
	if _, err := persistence.FormatFromPath(inv.OutputPath); err != nil {
		return err
	}

	img, err := enc.Encode(ctx, inv.URL, cfg)
	if err != nil {
		return err
	}
	return persistence.Save(ctx, inv.OutputPath, img, logger)
}
