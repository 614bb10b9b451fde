package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/threatcalc/pkg/cli/config"
	"github.com/secmon-lab/threatcalc/pkg/domain/model"
	"github.com/secmon-lab/threatcalc/pkg/presenter"
	"github.com/secmon-lab/threatcalc/pkg/usecase"
	"github.com/secmon-lab/threatcalc/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdSweep() *cli.Command {
	var threatCfg config.Threat
	var out output
	var parameter string
	var steps int

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "parameter",
			Aliases:     []string{"p"},
			Usage:       "Parameter to vary: " + strings.Join(model.SweepParameters(), ", "),
			Required:    true,
			Destination: &parameter,
		},
		&cli.IntFlag{
			Name:        "steps",
			Usage:       fmt.Sprintf("Number of equal increments between 0 and 1 (at most %d)", usecase.MaxSweepSteps),
			Value:       10,
			Destination: &steps,
		},
	}
	flags = append(flags, threatCfg.Flags()...)
	flags = append(flags, out.flags()...)

	return &cli.Command{
		Name:  "sweep",
		Usage: "Show how residual threat responds to one parameter",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := out.validate(); err != nil {
				return err
			}
			logging.Default().Debug("configuring threat scenario", "config", threatCfg)

			base, err := threatCfg.Configure(c)
			if err != nil {
				return goerr.Wrap(err, "failed to configure threat scenario")
			}

			points, err := usecase.New().Sweep(ctx, base, parameter, steps)
			if err != nil {
				return goerr.Wrap(err, "failed to sweep", goerr.V("parameter", parameter))
			}

			return out.render(c, points, func(p *presenter.Text) error {
				return p.Sweep(parameter, points)
			})
		},
	}
}
