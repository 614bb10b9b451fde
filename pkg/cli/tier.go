package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/threatcalc/pkg/usecase"
	"github.com/urfave/cli/v3"
)

var errProbabilityRequired = goerr.New("probability argument is required")

func cmdTier() *cli.Command {
	return &cli.Command{
		Name:      "tier",
		Usage:     "Classify a success probability into a risk tier",
		ArgsUsage: "PROBABILITY",
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.NArg() != 1 {
				return errProbabilityRequired
			}

			arg := c.Args().First()
			probability, err := strconv.ParseFloat(arg, 64)
			if err != nil {
				return goerr.Wrap(err, "invalid probability", goerr.V("arg", arg))
			}

			tier, err := usecase.New().Threat.Classify(ctx, probability)
			if err != nil {
				return goerr.Wrap(err, "failed to classify probability")
			}

			if _, err := fmt.Fprintln(c.Root().Writer, tier.DisplayName()); err != nil {
				return goerr.Wrap(err, "failed to write tier")
			}
			return nil
		},
	}
}
