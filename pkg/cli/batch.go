package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/threatcalc/pkg/cli/config"
	"github.com/secmon-lab/threatcalc/pkg/presenter"
	"github.com/secmon-lab/threatcalc/pkg/usecase"
	"github.com/secmon-lab/threatcalc/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdBatch() *cli.Command {
	var batchCfg config.Batch
	var out output
	var concurrency int

	flags := batchCfg.Flags()
	flags = append(flags,
		&cli.IntFlag{
			Name:        "concurrency",
			Usage:       "Maximum number of scenarios evaluated concurrently",
			Value:       8,
			Sources:     cli.EnvVars("THREATCALC_CONCURRENCY"),
			Destination: &concurrency,
		},
	)
	flags = append(flags, out.flags()...)

	return &cli.Command{
		Name:    "batch",
		Aliases: []string{"b"},
		Usage:   "Evaluate every [[scenario]] of a TOML file",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := out.validate(); err != nil {
				return err
			}

			scenarios, err := batchCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load scenarios")
			}
			logging.Default().Debug("loaded scenarios", "count", len(scenarios))

			uc := usecase.New(usecase.WithBatchLimit(concurrency))
			results, err := uc.EvaluateBatch(ctx, scenarios)
			if err != nil {
				return goerr.Wrap(err, "failed to evaluate batch")
			}

			return out.render(c, results, func(p *presenter.Text) error {
				return p.Batch(results)
			})
		},
	}
}
