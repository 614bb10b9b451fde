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

func cmdComplexity() *cli.Command {
	var complexityCfg config.Complexity
	var out output

	flags := complexityCfg.Flags()
	flags = append(flags, out.flags()...)

	return &cli.Command{
		Name:    "complexity",
		Aliases: []string{"x"},
		Usage:   "Estimate success probability split by attack complexity",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := out.validate(); err != nil {
				return err
			}
			logging.Default().Debug("configuring complexity scenario", "config", complexityCfg)

			params, err := complexityCfg.Configure(c)
			if err != nil {
				return goerr.Wrap(err, "failed to configure complexity scenario")
			}

			uc := usecase.New()
			report, err := uc.Complexity.Evaluate(ctx, params)
			if err != nil {
				return goerr.Wrap(err, "failed to evaluate complexity split")
			}

			return out.render(c, report, func(p *presenter.Text) error {
				return p.ComplexityReport(report)
			})
		},
	}
}
