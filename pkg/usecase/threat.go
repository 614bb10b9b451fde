package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/threatcalc/pkg/domain/interfaces"
	"github.com/secmon-lab/threatcalc/pkg/domain/model"
	"github.com/secmon-lab/threatcalc/pkg/domain/types"
	"github.com/secmon-lab/threatcalc/pkg/utils/logging"
)

// Chart presentation of a threat profile
const (
	ThreatChartTitle = "CVEO Risk Profile"
	ThreatChartAxis  = "Success Probability"

	LabelRaw     = "Raw"
	LabelCurrent = "Current Residual"
	LabelFuture  = "Future Residual"

	colorRaw     = "#d62728"
	colorCurrent = "#ff7f0e"
	colorFuture  = "#2ca02c"
)

type ThreatUseCase struct {
	observer interfaces.EvaluationObserver
	newID    func() string
}

func NewThreatUseCase(observer interfaces.EvaluationObserver, newID func() string) *ThreatUseCase {
	return &ThreatUseCase{
		observer: observer,
		newID:    newID,
	}
}

// EvaluateProfile computes raw, current residual and future residual threat
// of input, each with its risk tier, and the chart comparing them.
func (uc *ThreatUseCase) EvaluateProfile(ctx context.Context, input model.ThreatProfileInput) (*model.ThreatProfile, error) {
	raw, err := model.ComputeRawThreat(input.AttackGivenIntent, input.SuccessGivenAttackNoCountermeasure)
	if err != nil {
		uc.observer.ObserveRejection(ctx, interfaces.ModelRaw, err)
		return nil, goerr.Wrap(err, "failed to compute raw threat")
	}

	currentScenario := input.CurrentScenario()
	current, err := model.ComputeResidualThreat(currentScenario)
	if err != nil {
		uc.observer.ObserveRejection(ctx, interfaces.ModelCurrent, err)
		return nil, goerr.Wrap(err, "failed to compute current residual threat")
	}
	breakdown, err := model.ComputeResidualBreakdown(currentScenario)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to compute current residual breakdown")
	}

	future, err := model.ComputeResidualThreat(input.FutureScenario())
	if err != nil {
		uc.observer.ObserveRejection(ctx, interfaces.ModelFuture, err)
		return nil, goerr.Wrap(err, "failed to compute future residual threat")
	}

	profile := &model.ThreatProfile{
		ID:        uc.newID(),
		Input:     input,
		Raw:       model.NewThreatAssessment(LabelRaw, raw),
		Current:   model.NewThreatAssessment(LabelCurrent, current),
		Future:    model.NewThreatAssessment(LabelFuture, future),
		Breakdown: breakdown,
		Chart: model.NewChart(ThreatChartTitle, ThreatChartAxis, model.ChartVertical,
			model.ChartBar{Label: LabelRaw, Value: raw, Color: colorRaw},
			model.ChartBar{Label: LabelCurrent, Value: current, Color: colorCurrent},
			model.ChartBar{Label: LabelFuture, Value: future, Color: colorFuture},
		),
	}

	uc.observer.ObserveEvaluation(ctx, interfaces.ModelRaw, raw, profile.Raw.Tier)
	uc.observer.ObserveEvaluation(ctx, interfaces.ModelCurrent, current, profile.Current.Tier)
	uc.observer.ObserveEvaluation(ctx, interfaces.ModelFuture, future, profile.Future.Tier)

	logging.From(ctx).Debug("threat profile evaluated",
		"id", profile.ID,
		"raw", raw,
		"current", current,
		"future", future,
	)

	return profile, nil
}

// Classify validates probability and returns its risk tier
func (uc *ThreatUseCase) Classify(ctx context.Context, probability float64) (types.RiskTier, error) {
	if err := model.ValidateProbability(model.ParamProbability, probability); err != nil {
		return "", goerr.Wrap(err, "failed to classify probability")
	}
	return types.Classify(probability), nil
}
