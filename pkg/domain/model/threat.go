package model

// ScenarioParameters holds the probabilities of one three-tier scenario.
// Current and future residual threat share this schema with different values.
type ScenarioParameters struct {
	AttackGivenIntent                  float64 `json:"attack_given_intent" toml:"attack_given_intent"`
	SuccessGivenAttackNoCountermeasure float64 `json:"success_given_attack_no_countermeasure" toml:"success_given_attack_no_countermeasure"`
	CountermeasureActive               float64 `json:"countermeasure_active" toml:"countermeasure_active"`
	DetectionGivenCountermeasure       float64 `json:"detection_given_countermeasure" toml:"detection_given_countermeasure"`
	SuccessGivenDetected               float64 `json:"success_given_detected" toml:"success_given_detected"`
	SuccessGivenNotDetected            float64 `json:"success_given_not_detected" toml:"success_given_not_detected"`
}

// Validate checks that every probability used by the residual computation is within [0,1]
func (p ScenarioParameters) Validate() error {
	return validateAll(
		namedProbability{ParamAttackGivenIntent, p.AttackGivenIntent},
		namedProbability{ParamCountermeasureActive, p.CountermeasureActive},
		namedProbability{ParamDetectionGivenCountermeasure, p.DetectionGivenCountermeasure},
		namedProbability{ParamSuccessGivenDetected, p.SuccessGivenDetected},
		namedProbability{ParamSuccessGivenNotDetected, p.SuccessGivenNotDetected},
	)
}

// ResidualBreakdown splits a residual threat into its detected and undetected paths
type ResidualBreakdown struct {
	Detected   float64 `json:"detected"`
	Undetected float64 `json:"undetected"`
}

// Total returns the sum of both path contributions
func (b ResidualBreakdown) Total() float64 {
	return b.Detected + b.Undetected
}

// ComputeRawThreat returns the success probability with no countermeasures in place
func ComputeRawThreat(attackGivenIntent, successGivenAttackNoCountermeasure float64) (float64, error) {
	if err := validateAll(
		namedProbability{ParamAttackGivenIntent, attackGivenIntent},
		namedProbability{ParamSuccessGivenAttackNoCountermeasure, successGivenAttackNoCountermeasure},
	); err != nil {
		return 0, err
	}

	return attackGivenIntent * successGivenAttackNoCountermeasure, nil
}

// ComputeResidualThreat returns the success probability once countermeasures
// may detect the attempt. With CountermeasureActive = 0 the result collapses
// to AttackGivenIntent × SuccessGivenNotDetected.
func ComputeResidualThreat(params ScenarioParameters) (float64, error) {
	if err := params.Validate(); err != nil {
		return 0, err
	}

	detected, notDetected := detectionBranch(params.CountermeasureActive, params.DetectionGivenCountermeasure)
	successIfAttempted := detected*params.SuccessGivenDetected + notDetected*params.SuccessGivenNotDetected
	return params.AttackGivenIntent * successIfAttempted, nil
}

// ComputeResidualBreakdown returns the additive path contributions of the
// residual threat; their total equals ComputeResidualThreat up to rounding.
func ComputeResidualBreakdown(params ScenarioParameters) (ResidualBreakdown, error) {
	if err := params.Validate(); err != nil {
		return ResidualBreakdown{}, err
	}

	detected, notDetected := detectionBranch(params.CountermeasureActive, params.DetectionGivenCountermeasure)
	return ResidualBreakdown{
		Detected:   params.AttackGivenIntent * detected * params.SuccessGivenDetected,
		Undetected: params.AttackGivenIntent * notDetected * params.SuccessGivenNotDetected,
	}, nil
}
