package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/threatcalc/pkg/domain/model"
	"github.com/secmon-lab/threatcalc/pkg/domain/types"
	"github.com/secmon-lab/threatcalc/pkg/utils/logging"
)

// MaxSweepSteps bounds the number of increments of a single sweep
const MaxSweepSteps = 1000

// Sweep varies one current-scenario parameter of base across [0,1] in steps
// equal increments and reports raw and current residual threat at each point.
func (uc *UseCases) Sweep(ctx context.Context, base model.ThreatProfileInput, parameter string, steps int) ([]model.SweepPoint, error) {
	if steps <= 0 || steps > MaxSweepSteps {
		return nil, goerr.Wrap(model.ErrInvalidSweepSteps, "failed to sweep",
			goerr.V("steps", steps),
			goerr.V("max", MaxSweepSteps),
		)
	}

	points := make([]model.SweepPoint, 0, steps+1)
	for i := 0; i <= steps; i++ {
		value := float64(i) / float64(steps)

		input, err := base.WithParameter(parameter, value)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to sweep")
		}

		raw, err := model.ComputeRawThreat(input.AttackGivenIntent, input.SuccessGivenAttackNoCountermeasure)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to compute raw threat", goerr.V("value", value))
		}
		residual, err := model.ComputeResidualThreat(input.CurrentScenario())
		if err != nil {
			return nil, goerr.Wrap(err, "failed to compute residual threat", goerr.V("value", value))
		}

		points = append(points, model.SweepPoint{
			Value:    value,
			Raw:      raw,
			Residual: residual,
			Tier:     types.Classify(residual),
		})
	}

	logging.From(ctx).Debug("sweep evaluated", "parameter", parameter, "points", len(points))
	return points, nil
}
