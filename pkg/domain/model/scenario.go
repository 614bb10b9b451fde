package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/threatcalc/pkg/domain/types"
)

// Scenario errors
var (
	ErrScenarioNameRequired = goerr.New("scenario name is required")
	ErrScenarioModel        = goerr.New("scenario must set exactly one of threat or complexity")
	ErrUnknownParameter     = goerr.New("unknown sweep parameter")
	ErrInvalidSweepSteps    = goerr.New("sweep steps out of range")
)

// ScenarioNameKey is the error value key naming the failing scenario
const ScenarioNameKey = "scenario"

// NamedScenario is one entry of a batch evaluation. Exactly one of Threat or
// Complexity is set.
type NamedScenario struct {
	Name       string                     `json:"name" toml:"name"`
	Threat     *ThreatProfileInput        `json:"threat,omitempty" toml:"threat,omitempty"`
	Complexity *ComplexitySplitParameters `json:"complexity,omitempty" toml:"complexity,omitempty"`
}

// Validate checks the scenario shape; probability ranges are checked by the models
func (x NamedScenario) Validate() error {
	if x.Name == "" {
		return ErrScenarioNameRequired
	}
	if (x.Threat == nil) == (x.Complexity == nil) {
		return goerr.Wrap(ErrScenarioModel, "invalid scenario", goerr.V(ScenarioNameKey, x.Name))
	}
	return nil
}

// ScenarioResult is the evaluation of a NamedScenario
type ScenarioResult struct {
	Name       string            `json:"name"`
	Threat     *ThreatProfile    `json:"threat,omitempty"`
	Complexity *ComplexityReport `json:"complexity,omitempty"`
}

// SweepPoint is the threat profile at one value of the swept parameter
type SweepPoint struct {
	Value    float64        `json:"value"`
	Raw      float64        `json:"raw"`
	Residual float64        `json:"residual"`
	Tier     types.RiskTier `json:"tier"`
}

// SweepParameters lists the current-scenario parameters that can be swept
func SweepParameters() []string {
	return []string{
		ParamAttackGivenIntent,
		ParamSuccessGivenAttackNoCountermeasure,
		ParamCountermeasureActive,
		ParamDetectionGivenCountermeasure,
		ParamSuccessGivenDetected,
		ParamSuccessGivenNotDetected,
	}
}

// WithParameter returns a copy of x with the named current-scenario parameter set to value
func (x ThreatProfileInput) WithParameter(name string, value float64) (ThreatProfileInput, error) {
	switch name {
	case ParamAttackGivenIntent:
		x.AttackGivenIntent = value
	case ParamSuccessGivenAttackNoCountermeasure:
		x.SuccessGivenAttackNoCountermeasure = value
	case ParamCountermeasureActive:
		x.Current.CountermeasureActive = value
	case ParamDetectionGivenCountermeasure:
		x.Current.DetectionGivenCountermeasure = value
	case ParamSuccessGivenDetected:
		x.Current.SuccessGivenDetected = value
	case ParamSuccessGivenNotDetected:
		x.Current.SuccessGivenNotDetected = value
	default:
		return x, goerr.Wrap(ErrUnknownParameter, "cannot set parameter", goerr.V(ParameterKey, name))
	}
	return x, nil
}
