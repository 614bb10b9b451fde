package model_test

import (
	"errors"
	"math"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/threatcalc/pkg/domain/model"
)

func TestValidateProbability(t *testing.T) {
	for _, v := range []float64{0, 0.5, 1} {
		gt.NoError(t, model.ValidateProbability("p", v))
	}
	for _, v := range []float64{-0.0001, 1.0001, math.NaN(), math.Inf(-1), math.Inf(1)} {
		gt.Error(t, model.ValidateProbability("p", v)).Is(model.ErrDomainViolation)
	}
}

func TestViolatedParameter(t *testing.T) {
	t.Run("direct violation", func(t *testing.T) {
		err := model.ValidateProbability(model.ParamCountermeasureActive, 3)
		gt.Value(t, model.ViolatedParameter(err)).Equal(model.ParamCountermeasureActive)
	})

	t.Run("wrapped violation", func(t *testing.T) {
		err := goerr.Wrap(model.ValidateProbability(model.ParamSuccessGivenDetected, -1), "outer", goerr.V("scenario", "x"))
		gt.Value(t, model.ViolatedParameter(err)).Equal(model.ParamSuccessGivenDetected)
	})

	t.Run("unrelated errors", func(t *testing.T) {
		gt.Value(t, model.ViolatedParameter(nil)).Equal("")
		gt.Value(t, model.ViolatedParameter(errors.New("x"))).Equal("")
		gt.Value(t, model.ViolatedParameter(goerr.New("y"))).Equal("")
	})
}
