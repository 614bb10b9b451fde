package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/threatcalc/pkg/domain/interfaces"
	"github.com/secmon-lab/threatcalc/pkg/domain/model"
	"github.com/secmon-lab/threatcalc/pkg/domain/types"
	"github.com/secmon-lab/threatcalc/pkg/usecase"
)

func TestThreatUseCase_EvaluateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("default profile", func(t *testing.T) {
		observer := newRecordingObserver()
		uc := newTestUseCases(observer)

		profile, err := uc.Threat.EvaluateProfile(ctx, model.DefaultThreatProfileInput())
		gt.NoError(t, err).Required()

		gt.Value(t, profile.ID).Equal("eval-1")
		assertClose(t, profile.Raw.Probability, 0.14)
		gt.Value(t, profile.Raw.Tier).Equal(types.RiskTierSignificant)
		assertClose(t, profile.Current.Probability, 0.03115)
		gt.Value(t, profile.Current.Tier).Equal(types.RiskTierModerate)
		assertClose(t, profile.Future.Probability, 0.00873)
		gt.Value(t, profile.Future.Tier).Equal(types.RiskTierLow)
		assertClose(t, profile.Breakdown.Total(), profile.Current.Probability)

		gt.Value(t, profile.Chart.Title).Equal(usecase.ThreatChartTitle)
		gt.Value(t, profile.Chart.Orientation).Equal(model.ChartVertical)
		gt.Array(t, profile.Chart.Bars).Length(3).Required()
		gt.Value(t, profile.Chart.Bars[0].Label).Equal(usecase.LabelRaw)
		gt.Value(t, profile.Chart.Bars[1].Label).Equal(usecase.LabelCurrent)
		gt.Value(t, profile.Chart.Bars[2].Label).Equal(usecase.LabelFuture)
		assertClose(t, profile.Chart.Limit, 0.14*1.2)

		gt.Array(t, observer.evaluated).Length(3).Required()
		gt.Value(t, observer.evaluated[0].model).Equal(interfaces.ModelRaw)
		gt.Value(t, observer.evaluated[1].model).Equal(interfaces.ModelCurrent)
		gt.Value(t, observer.evaluated[2].model).Equal(interfaces.ModelFuture)
	})

	t.Run("assessments are in display order", func(t *testing.T) {
		uc := newTestUseCases(newRecordingObserver())
		profile, err := uc.Threat.EvaluateProfile(ctx, model.DefaultThreatProfileInput())
		gt.NoError(t, err).Required()

		labels := []string{}
		for _, a := range profile.Assessments() {
			labels = append(labels, a.Label)
		}
		gt.Value(t, labels).Equal([]string{usecase.LabelRaw, usecase.LabelCurrent, usecase.LabelFuture})
	})

	t.Run("rejects invalid future scenario", func(t *testing.T) {
		observer := newRecordingObserver()
		uc := newTestUseCases(observer)

		input := model.DefaultThreatProfileInput()
		input.FutureAttackGivenIntent = 1.5

		_, err := uc.Threat.EvaluateProfile(ctx, input)
		gt.Error(t, err).Is(model.ErrDomainViolation)
		gt.String(t, err.Error()).Contains(model.ParamAttackGivenIntent)
		gt.Value(t, observer.rejections[interfaces.ModelFuture]).Equal(1)
		gt.Array(t, observer.evaluated).Length(0)
	})

	t.Run("rejects invalid raw scenario", func(t *testing.T) {
		observer := newRecordingObserver()
		uc := newTestUseCases(observer)

		input := model.DefaultThreatProfileInput()
		input.SuccessGivenAttackNoCountermeasure = -0.2

		_, err := uc.Threat.EvaluateProfile(ctx, input)
		gt.Error(t, err).Is(model.ErrDomainViolation)
		gt.Value(t, observer.rejections[interfaces.ModelRaw]).Equal(1)
	})
}

func TestThreatUseCase_Classify(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New()

	tier, err := uc.Threat.Classify(ctx, 0.05)
	gt.NoError(t, err).Required()
	gt.Value(t, tier).Equal(types.RiskTierSignificant)

	_, err = uc.Threat.Classify(ctx, 1.0001)
	gt.Error(t, err).Is(model.ErrDomainViolation)
}
