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

func cmdThreat() *cli.Command {
	var threatCfg config.Threat
	var out output

	flags := threatCfg.Flags()
	flags = append(flags, out.flags()...)

	return &cli.Command{
		Name:    "threat",
		Aliases: []string{"t"},
		Usage:   "Estimate raw, current residual and future residual threat",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := out.validate(); err != nil {
				return err
			}
			logging.Default().Debug("configuring threat scenario", "config", threatCfg)

			input, err := threatCfg.Configure(c)
			if err != nil {
				return goerr.Wrap(err, "failed to configure threat scenario")
			}

			uc := usecase.New()
			profile, err := uc.Threat.EvaluateProfile(ctx, input)
			if err != nil {
				return goerr.Wrap(err, "failed to evaluate threat profile")
			}

			return out.render(c, profile, func(p *presenter.Text) error {
				return p.ThreatProfile(profile)
			})
		},
	}
}
