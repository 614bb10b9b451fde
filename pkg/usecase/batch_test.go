package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/threatcalc/pkg/domain/model"
	"github.com/secmon-lab/threatcalc/pkg/usecase"
)

func TestUseCases_EvaluateBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("preserves input order", func(t *testing.T) {
		uc := usecase.New(usecase.WithBatchLimit(3))

		var scenarios []model.NamedScenario
		for i := 0; i < 20; i++ {
			if i%2 == 0 {
				in := model.DefaultThreatProfileInput()
				in.AttackGivenIntent = float64(i) / 20
				scenarios = append(scenarios, model.NamedScenario{Name: fmt.Sprintf("s%02d", i), Threat: &in})
			} else {
				p := model.DefaultComplexitySplitParameters()
				p.ProbabilityLowComplexity = float64(i) / 20
				scenarios = append(scenarios, model.NamedScenario{Name: fmt.Sprintf("s%02d", i), Complexity: &p})
			}
		}

		results, err := uc.EvaluateBatch(ctx, scenarios)
		gt.NoError(t, err).Required()
		gt.Array(t, results).Length(len(scenarios)).Required()

		for i, r := range results {
			gt.Value(t, r.Name).Equal(scenarios[i].Name)
			if i%2 == 0 {
				gt.Value(t, r.Threat).NotNil()
				gt.Value(t, r.Threat.Input.AttackGivenIntent).Equal(float64(i) / 20)
			} else {
				gt.Value(t, r.Complexity).NotNil()
				gt.Value(t, r.Complexity.Parameters.ProbabilityLowComplexity).Equal(float64(i) / 20)
			}
		}
	})

	t.Run("empty batch", func(t *testing.T) {
		_, err := usecase.New().EvaluateBatch(ctx, nil)
		gt.Error(t, err).Is(usecase.ErrEmptyBatch)
	})

	t.Run("duplicate names", func(t *testing.T) {
		in := model.DefaultThreatProfileInput()
		_, err := usecase.New().EvaluateBatch(ctx, []model.NamedScenario{
			{Name: "dup", Threat: &in},
			{Name: "dup", Threat: &in},
		})
		gt.Error(t, err).Is(usecase.ErrDuplicateScenario)
	})

	t.Run("invalid scenario shape", func(t *testing.T) {
		_, err := usecase.New().EvaluateBatch(ctx, []model.NamedScenario{{Name: "nothing"}})
		gt.Error(t, err).Is(model.ErrScenarioModel)
	})

	t.Run("domain violation names the scenario", func(t *testing.T) {
		good := model.DefaultThreatProfileInput()
		bad := model.DefaultComplexitySplitParameters()
		bad.SuccessGivenDetected = -1

		_, err := usecase.New().EvaluateBatch(ctx, []model.NamedScenario{
			{Name: "good", Threat: &good},
			{Name: "bad", Complexity: &bad},
		})
		gt.Error(t, err).Is(model.ErrDomainViolation)
		gt.String(t, err.Error()).Contains(model.ParamSuccessGivenDetected)
	})
}
