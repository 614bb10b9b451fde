package model

// ComplexitySplitParameters holds the probabilities of the complexity-split
// model. The high complexity share is derived from the low complexity one.
type ComplexitySplitParameters struct {
	CountermeasureActive         float64 `json:"countermeasure_active" toml:"countermeasure_active"`
	DetectionGivenCountermeasure float64 `json:"detection_given_countermeasure" toml:"detection_given_countermeasure"`
	ProbabilityLowComplexity     float64 `json:"probability_low_complexity" toml:"probability_low_complexity"`
	SuccessGivenDetected         float64 `json:"success_given_detected" toml:"success_given_detected"`
	SuccessGivenNotDetectedLow   float64 `json:"success_given_not_detected_low" toml:"success_given_not_detected_low"`
	SuccessGivenNotDetectedHigh  float64 `json:"success_given_not_detected_high" toml:"success_given_not_detected_high"`
}

// ProbabilityHighComplexity returns 1 - ProbabilityLowComplexity
func (p ComplexitySplitParameters) ProbabilityHighComplexity() float64 {
	return 1 - p.ProbabilityLowComplexity
}

// Validate checks that every probability is within [0,1]
func (p ComplexitySplitParameters) Validate() error {
	return validateAll(
		namedProbability{ParamCountermeasureActive, p.CountermeasureActive},
		namedProbability{ParamDetectionGivenCountermeasure, p.DetectionGivenCountermeasure},
		namedProbability{ParamProbabilityLowComplexity, p.ProbabilityLowComplexity},
		namedProbability{ParamSuccessGivenDetected, p.SuccessGivenDetected},
		namedProbability{ParamSuccessGivenNotDetectedLow, p.SuccessGivenNotDetectedLow},
		namedProbability{ParamSuccessGivenNotDetectedHigh, p.SuccessGivenNotDetectedHigh},
	)
}

// ComputeSuccessProbability returns the overall success probability as a
// complexity weighted mixture within the undetected branch, together with
// the additive contribution of each path.
func ComputeSuccessProbability(params ComplexitySplitParameters) (RiskEstimate, error) {
	if err := params.Validate(); err != nil {
		return RiskEstimate{}, err
	}

	detected, notDetected := detectionBranch(params.CountermeasureActive, params.DetectionGivenCountermeasure)
	breakdown := Breakdown{
		Detected:       detected * params.SuccessGivenDetected,
		UndetectedLow:  notDetected * params.ProbabilityLowComplexity * params.SuccessGivenNotDetectedLow,
		UndetectedHigh: notDetected * params.ProbabilityHighComplexity() * params.SuccessGivenNotDetectedHigh,
	}

	return RiskEstimate{
		Probability: breakdown.Total(),
		Breakdown:   &breakdown,
	}, nil
}
