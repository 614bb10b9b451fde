package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/threatcalc/pkg/domain/interfaces"
	"github.com/secmon-lab/threatcalc/pkg/domain/model"
	"github.com/secmon-lab/threatcalc/pkg/utils/logging"
)

// Chart presentation of a complexity-split estimate
const (
	ComplexityChartTitle = "Success Probability by Attack Path"
	ComplexityChartAxis  = "Contribution to Success Probability"

	LabelDetected       = "Detected"
	LabelUndetectedLow  = "Undetected (Low Complexity)"
	LabelUndetectedHigh = "Undetected (High Complexity)"
)

type ComplexityUseCase struct {
	observer interfaces.EvaluationObserver
	newID    func() string
}

func NewComplexityUseCase(observer interfaces.EvaluationObserver, newID func() string) *ComplexityUseCase {
	return &ComplexityUseCase{
		observer: observer,
		newID:    newID,
	}
}

// Evaluate computes the complexity-split success probability, its tier and
// the chart of path contributions.
func (uc *ComplexityUseCase) Evaluate(ctx context.Context, params model.ComplexitySplitParameters) (*model.ComplexityReport, error) {
	est, err := model.ComputeSuccessProbability(params)
	if err != nil {
		uc.observer.ObserveRejection(ctx, interfaces.ModelComplexity, err)
		return nil, goerr.Wrap(err, "failed to compute success probability")
	}

	report := &model.ComplexityReport{
		ID:         uc.newID(),
		Parameters: params,
		Estimate:   est,
		Tier:       est.Tier(),
		Chart: model.NewChart(ComplexityChartTitle, ComplexityChartAxis, model.ChartHorizontal,
			model.ChartBar{Label: LabelDetected, Value: est.Breakdown.Detected, Color: colorFuture},
			model.ChartBar{Label: LabelUndetectedLow, Value: est.Breakdown.UndetectedLow, Color: colorRaw},
			model.ChartBar{Label: LabelUndetectedHigh, Value: est.Breakdown.UndetectedHigh, Color: colorCurrent},
		),
	}

	uc.observer.ObserveEvaluation(ctx, interfaces.ModelComplexity, est.Probability, report.Tier)

	logging.From(ctx).Debug("complexity split evaluated",
		"id", report.ID,
		"overall", est.Probability,
		"detected", est.Breakdown.Detected,
		"undetected_low", est.Breakdown.UndetectedLow,
		"undetected_high", est.Breakdown.UndetectedHigh,
	)

	return report, nil
}
