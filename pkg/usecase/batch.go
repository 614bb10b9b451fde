package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/threatcalc/pkg/domain/model"
	"github.com/secmon-lab/threatcalc/pkg/utils/logging"
	"golang.org/x/sync/errgroup"
)

const defaultBatchLimit = 8

// EvaluateBatch evaluates every scenario and returns results in input order.
// The first failing scenario aborts the batch; its name is attached to the error.
func (uc *UseCases) EvaluateBatch(ctx context.Context, scenarios []model.NamedScenario) ([]model.ScenarioResult, error) {
	if len(scenarios) == 0 {
		return nil, goerr.Wrap(ErrEmptyBatch, "failed to evaluate batch")
	}

	seen := make(map[string]struct{}, len(scenarios))
	for _, s := range scenarios {
		if err := s.Validate(); err != nil {
			return nil, goerr.Wrap(err, "invalid scenario")
		}
		if _, ok := seen[s.Name]; ok {
			return nil, goerr.Wrap(ErrDuplicateScenario, "invalid batch", goerr.V(model.ScenarioNameKey, s.Name))
		}
		seen[s.Name] = struct{}{}
	}

	results := make([]model.ScenarioResult, len(scenarios))
	eg, ctx := errgroup.WithContext(ctx)
	if uc.batchLimit > 0 {
		eg.SetLimit(uc.batchLimit)
	}

	for i, s := range scenarios {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			result := model.ScenarioResult{Name: s.Name}
			switch {
			case s.Threat != nil:
				profile, err := uc.Threat.EvaluateProfile(ctx, *s.Threat)
				if err != nil {
					return goerr.Wrap(err, "failed to evaluate scenario", goerr.V(model.ScenarioNameKey, s.Name))
				}
				result.Threat = profile
			case s.Complexity != nil:
				report, err := uc.Complexity.Evaluate(ctx, *s.Complexity)
				if err != nil {
					return goerr.Wrap(err, "failed to evaluate scenario", goerr.V(model.ScenarioNameKey, s.Name))
				}
				result.Complexity = report
			}

			results[i] = result
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	logging.From(ctx).Info("batch evaluated", "count", len(results))
	return results, nil
}
