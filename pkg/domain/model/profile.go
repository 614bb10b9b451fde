package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/threatcalc/pkg/domain/types"
)

// Countermeasures describes the detection posture of one scenario
type Countermeasures struct {
	CountermeasureActive         float64 `json:"countermeasure_active" toml:"countermeasure_active"`
	DetectionGivenCountermeasure float64 `json:"detection_given_countermeasure" toml:"detection_given_countermeasure"`
	SuccessGivenDetected         float64 `json:"success_given_detected" toml:"success_given_detected"`
	SuccessGivenNotDetected      float64 `json:"success_given_not_detected" toml:"success_given_not_detected"`
}

// ThreatProfileInput collects the parameters of the raw, current and future
// scenarios. The future scenario carries its own intent-to-attack conversion.
type ThreatProfileInput struct {
	AttackGivenIntent                  float64         `json:"attack_given_intent" toml:"attack_given_intent"`
	SuccessGivenAttackNoCountermeasure float64         `json:"success_given_attack_no_countermeasure" toml:"success_given_attack_no_countermeasure"`
	Current                            Countermeasures `json:"current" toml:"current"`
	FutureAttackGivenIntent            float64         `json:"future_attack_given_intent" toml:"future_attack_given_intent"`
	Future                             Countermeasures `json:"future" toml:"future"`
}

// Validate checks every probability of the raw, current and future scenarios
func (x ThreatProfileInput) Validate() error {
	if err := validateAll(
		namedProbability{ParamAttackGivenIntent, x.AttackGivenIntent},
		namedProbability{ParamSuccessGivenAttackNoCountermeasure, x.SuccessGivenAttackNoCountermeasure},
	); err != nil {
		return err
	}
	if err := x.CurrentScenario().Validate(); err != nil {
		return goerr.Wrap(err, "invalid current scenario")
	}
	if err := x.FutureScenario().Validate(); err != nil {
		return goerr.Wrap(err, "invalid future scenario")
	}
	return nil
}

// CurrentScenario returns the parameters of the current residual threat
func (x ThreatProfileInput) CurrentScenario() ScenarioParameters {
	return x.Current.scenario(x.AttackGivenIntent, x.SuccessGivenAttackNoCountermeasure)
}

// FutureScenario returns the parameters of the future residual threat
func (x ThreatProfileInput) FutureScenario() ScenarioParameters {
	return x.Future.scenario(x.FutureAttackGivenIntent, x.SuccessGivenAttackNoCountermeasure)
}

func (x Countermeasures) scenario(attackGivenIntent, successNoCountermeasure float64) ScenarioParameters {
	return ScenarioParameters{
		AttackGivenIntent:                  attackGivenIntent,
		SuccessGivenAttackNoCountermeasure: successNoCountermeasure,
		CountermeasureActive:               x.CountermeasureActive,
		DetectionGivenCountermeasure:       x.DetectionGivenCountermeasure,
		SuccessGivenDetected:               x.SuccessGivenDetected,
		SuccessGivenNotDetected:            x.SuccessGivenNotDetected,
	}
}

// ThreatAssessment is one evaluated probability of a threat profile
type ThreatAssessment struct {
	Label       string         `json:"label"`
	Probability float64        `json:"probability"`
	Tier        types.RiskTier `json:"tier"`
}

// NewThreatAssessment classifies probability under the given label
func NewThreatAssessment(label string, probability float64) ThreatAssessment {
	return ThreatAssessment{
		Label:       label,
		Probability: probability,
		Tier:        types.Classify(probability),
	}
}

// ThreatProfile is the evaluated raw, current residual and future residual threat
type ThreatProfile struct {
	ID        string             `json:"id"`
	Input     ThreatProfileInput `json:"input"`
	Raw       ThreatAssessment   `json:"raw"`
	Current   ThreatAssessment   `json:"current"`
	Future    ThreatAssessment   `json:"future"`
	Breakdown ResidualBreakdown  `json:"current_breakdown"`
	Chart     Chart              `json:"chart"`
}

// Assessments returns raw, current and future in display order
func (x *ThreatProfile) Assessments() []ThreatAssessment {
	return []ThreatAssessment{x.Raw, x.Current, x.Future}
}

// ComplexityReport is the evaluated complexity-split model
type ComplexityReport struct {
	ID         string                    `json:"id"`
	Parameters ComplexitySplitParameters `json:"parameters"`
	Estimate   RiskEstimate              `json:"estimate"`
	Tier       types.RiskTier            `json:"tier"`
	Chart      Chart                     `json:"chart"`
}
