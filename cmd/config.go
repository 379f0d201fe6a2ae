package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/leonardinius/floatdiff/internal/differrors"
	"github.com/leonardinius/floatdiff/internal/token"
	"github.com/leonardinius/floatdiff/internal/tolerance"
)

const (
	tolFlag = "tol"
	tolEnv  = "FLOATDIFF_TOL"
)

type config struct {
	Tol         float64
	Verbose     bool
	Interactive bool

	envErr error
}

// loadConfig seeds defaults, letting FLOATDIFF_TOL replace the built-in
// tolerance. A malformed value only matters when nothing else sets the
// tolerance.
func loadConfig(getenv func(string) string) *config {
	cfg := &config{Tol: tolerance.Default}
	if v := getenv(tolEnv); v != "" {
		if tol, ok := token.ParseNumber(v); ok {
			cfg.Tol = tol
		} else {
			cfg.envErr = differrors.NewToleranceError(v, differrors.ErrMalformedTolerance)
		}
	}
	return cfg
}

func (cfg *config) validateArgs(_ *cobra.Command, args []string) error {
	if cfg.Interactive {
		if len(args) != 0 {
			return differrors.ErrUsageInteractive
		}
		return nil
	}
	if len(args) < 2 || len(args) > 3 {
		return differrors.ErrUsageArgCount(len(args))
	}
	return nil
}

// resolveTolerance applies the legacy positional tolerance. Older callers
// pass it as a third argument; when it parses as a number it overrides -t,
// otherwise it is ignored.
func (cfg *config) resolveTolerance(flagSet bool, legacy []string, logger *slog.Logger) (float64, error) {
	if len(legacy) > 0 {
		if tol, ok := token.ParseNumber(legacy[0]); ok {
			logger.Debug("positional tolerance overrides flag", "tol", legacy[0])
			return tol, nil
		}
		logger.Debug("ignoring positional tolerance", "value", legacy[0], "error", differrors.ErrMalformedTolerance)
	}
	if !flagSet && cfg.envErr != nil {
		return 0, cfg.envErr
	}
	return cfg.Tol, nil
}
