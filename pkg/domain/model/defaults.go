package model

// DefaultThreatProfileInput returns the baseline CVEO threat scenario.
// The future scenario's detection probability already includes countermeasure
// availability, so its CountermeasureActive is 1.
func DefaultThreatProfileInput() ThreatProfileInput {
	return ThreatProfileInput{
		AttackGivenIntent:                  0.2,
		SuccessGivenAttackNoCountermeasure: 0.7,
		Current: Countermeasures{
			CountermeasureActive:         0.9,
			DetectionGivenCountermeasure: 0.85,
			SuccessGivenDetected:         0.05,
			SuccessGivenNotDetected:      0.5,
		},
		FutureAttackGivenIntent: 0.18,
		Future: Countermeasures{
			CountermeasureActive:         1.0,
			DetectionGivenCountermeasure: 0.95,
			SuccessGivenDetected:         0.03,
			SuccessGivenNotDetected:      0.4,
		},
	}
}

// DefaultComplexitySplitParameters returns the baseline complexity-split scenario
func DefaultComplexitySplitParameters() ComplexitySplitParameters {
	return ComplexitySplitParameters{
		CountermeasureActive:         0.95,
		DetectionGivenCountermeasure: 0.9,
		ProbabilityLowComplexity:     0.7,
		SuccessGivenDetected:         0.05,
		SuccessGivenNotDetectedLow:   0.7,
		SuccessGivenNotDetectedHigh:  0.4,
	}
}
