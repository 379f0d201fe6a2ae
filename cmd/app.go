package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/leonardinius/floatdiff/internal/comparator"
)

// Process exit codes.
const (
	ExitOK        = 0
	ExitDiffFound = 1
	ExitError     = 2
)

type FloatDiffApp struct {
	opts      *appOpts
	err       error
	diffFound bool
}

func NewFloatDiffApp(options ...AppOption) *FloatDiffApp {
	return &FloatDiffApp{opts: newAppOpts(options...)}
}

func (app *FloatDiffApp) reportError(err error) {
	app.opts.reporter.ReportError(err)
	app.err = err
}

// Main runs the command line and returns the process exit code.
func (app *FloatDiffApp) Main(args []string) (code int) {
	defer func() {
		if r := recover(); r != nil {
			app.opts.reporter.ReportPanic(fmt.Errorf("%v", r))
			code = ExitError
		}
	}()

	root := app.newRootCommand()
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		app.reportError(err)
	}

	switch {
	case app.err != nil:
		return ExitError
	case app.diffFound:
		return ExitDiffFound
	}
	return ExitOK
}

func (app *FloatDiffApp) newRootCommand() *cobra.Command {
	cfg := loadConfig(app.opts.getenv)

	cmd := &cobra.Command{
		Use:   "floatdiff [flags] file1 file2",
		Short: "Compare two text files allowing float tolerance",
		Long: `floatdiff compares a reference file (file1) with an output file (file2)
line by line. Tokens that parse as numbers on both sides are equal when
|a-b| <= max(tol*max(|a|,|b|), tol); all other tokens must match exactly.

Exit status is 0 when no differences are found, 1 when differences are
found and 2 on errors.`,
		Args:          cfg.validateArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.run(cfg, cmd.Flags().Changed(tolFlag), args)
		},
	}
	cmd.SetIn(app.opts.stdin)
	cmd.SetOut(app.opts.stdout)
	cmd.SetErr(app.opts.stderr)

	flags := cmd.Flags()
	flags.Float64VarP(&cfg.Tol, tolFlag, "t", cfg.Tol, "tolerance, used as both relative and absolute bound")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "log debug details to stderr")
	flags.BoolVarP(&cfg.Interactive, "interactive", "i", false, "compare pairs of lines typed at a prompt")

	return cmd
}

func (app *FloatDiffApp) run(cfg *config, tolFlagSet bool, args []string) error {
	logger := app.newLogger(cfg.Verbose)

	var legacyTol []string
	if len(args) > 2 {
		legacyTol = args[2:]
	}
	tol, err := cfg.resolveTolerance(tolFlagSet, legacyTol, logger)
	if err != nil {
		return err
	}

	c, err := comparator.NewComparator(comparator.WithTolerance(tol), comparator.WithLogger(logger))
	if err != nil {
		return err
	}

	if cfg.Interactive {
		return app.runPrompt(c)
	}
	return app.runFiles(c, args[0], args[1])
}

func (app *FloatDiffApp) runFiles(c *comparator.Comparator, pathA, pathB string) error {
	result, err := c.CompareFiles(pathA, pathB)
	if err != nil {
		return err
	}

	if _, err := result.WriteTo(app.opts.stdout); err != nil {
		return err
	}
	app.diffFound = result.DiffFound()

	return nil
}

func (app *FloatDiffApp) newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(app.opts.stderr, &slog.HandlerOptions{Level: level}))
}
