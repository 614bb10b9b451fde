package cli

import (
	"context"
	"io"
	"os"

	"github.com/secmon-lab/threatcalc/pkg/cli/config"
	"github.com/secmon-lab/threatcalc/pkg/utils/errutil"
	"github.com/secmon-lab/threatcalc/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func Run(ctx context.Context, args []string, version string) error {
	return run(ctx, args, version, os.Stdout)
}

func run(ctx context.Context, args []string, version string, w io.Writer) error {
	var loggerCfg config.Logger
	var sentryCfg config.Sentry
	var closers []func()
	defer func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}()

	flags := loggerCfg.Flags()
	flags = append(flags, sentryCfg.Flags()...)

	app := &cli.Command{
		Name:    "threatcalc",
		Usage:   "CVEO threat risk estimator",
		Version: version,
		Flags:   flags,
		Writer:  w,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			closeLog, err := loggerCfg.Configure()
			if err != nil {
				return ctx, err
			}
			closers = append(closers, closeLog)

			flush, err := sentryCfg.Configure(version)
			if err != nil {
				return ctx, err
			}
			closers = append(closers, flush)

			logging.Default().Debug("Starting threatcalc", "logger", loggerCfg, "sentry", sentryCfg)
			return ctx, nil
		},
		Commands: []*cli.Command{
			cmdThreat(),
			cmdComplexity(),
			cmdTier(),
			cmdBatch(),
			cmdSweep(),
			cmdServe(),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		return errutil.Handle(ctx, err, "failed to run app")
	}

	return nil
}
