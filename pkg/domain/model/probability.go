package model

import (
	"errors"
	"fmt"
	"math"

	"github.com/m-mizutani/goerr/v2"
)

// ErrDomainViolation is returned when a probability parameter lies outside [0,1]
var ErrDomainViolation = goerr.New("probability out of domain [0,1]")

// Context keys for error values
const (
	ParameterKey = "parameter"
	ValueKey     = "value"
)

// Parameter names shared by JSON, TOML and CLI surfaces
const (
	ParamAttackGivenIntent                  = "attack_given_intent"
	ParamSuccessGivenAttackNoCountermeasure = "success_given_attack_no_countermeasure"
	ParamCountermeasureActive               = "countermeasure_active"
	ParamDetectionGivenCountermeasure       = "detection_given_countermeasure"
	ParamSuccessGivenDetected               = "success_given_detected"
	ParamSuccessGivenNotDetected            = "success_given_not_detected"
	ParamProbabilityLowComplexity           = "probability_low_complexity"
	ParamSuccessGivenNotDetectedLow         = "success_given_not_detected_low"
	ParamSuccessGivenNotDetectedHigh        = "success_given_not_detected_high"
	ParamProbability                        = "probability"
)

type namedProbability struct {
	name  string
	value float64
}

// ValidateProbability fails with ErrDomainViolation naming the parameter when
// value is NaN or outside the closed interval [0,1].
func ValidateProbability(name string, value float64) error {
	if math.IsNaN(value) || value < 0 || value > 1 {
		return goerr.Wrap(ErrDomainViolation, fmt.Sprintf("invalid %s", name),
			goerr.V(ParameterKey, name),
			goerr.V(ValueKey, value),
		)
	}
	return nil
}

func validateAll(probs ...namedProbability) error {
	for _, p := range probs {
		if err := ValidateProbability(p.name, p.value); err != nil {
			return err
		}
	}
	return nil
}

// detectionBranch splits an attempt into the probability of being detected
// and of going undetected. Both model variants share this arithmetic.
func detectionBranch(countermeasureActive, detectionGivenCountermeasure float64) (detected, notDetected float64) {
	detected = countermeasureActive * detectionGivenCountermeasure
	return detected, 1 - detected
}

// ViolatedParameter returns the name of the parameter attached to a domain
// violation in err's chain, or "" if there is none.
func ViolatedParameter(err error) string {
	var ge *goerr.Error
	for errors.As(err, &ge) {
		if name, ok := ge.Values()[ParameterKey].(string); ok {
			return name
		}
		err = ge.Unwrap()
	}
	return ""
}
