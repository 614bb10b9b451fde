package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/threatcalc/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

var complexityBindings = []floatBinding[model.ComplexitySplitParameters]{
	{"countermeasure-active", "P(countermeasure active)", "THREATCALC_COUNTERMEASURE_ACTIVE",
		func(x *model.ComplexitySplitParameters) *float64 { return &x.CountermeasureActive }},
	{"detection", "P(detection | countermeasure)", "THREATCALC_DETECTION",
		func(x *model.ComplexitySplitParameters) *float64 { return &x.DetectionGivenCountermeasure }},
	{"low-complexity", "P(low complexity attack)", "THREATCALC_LOW_COMPLEXITY",
		func(x *model.ComplexitySplitParameters) *float64 { return &x.ProbabilityLowComplexity }},
	{"success-detected", "P(success | detected)", "THREATCALC_SUCCESS_DETECTED",
		func(x *model.ComplexitySplitParameters) *float64 { return &x.SuccessGivenDetected }},
	{"success-not-detected-low", "P(success | not detected, low complexity)", "THREATCALC_SUCCESS_NOT_DETECTED_LOW",
		func(x *model.ComplexitySplitParameters) *float64 { return &x.SuccessGivenNotDetectedLow }},
	{"success-not-detected-high", "P(success | not detected, high complexity)", "THREATCALC_SUCCESS_NOT_DETECTED_HIGH",
		func(x *model.ComplexitySplitParameters) *float64 { return &x.SuccessGivenNotDetectedHigh }},
}

// Complexity holds CLI flags for the complexity-split model
type Complexity struct {
	configPath string
	values     model.ComplexitySplitParameters
}

func (x *Complexity) Flags() []cli.Flag {
	x.values = model.DefaultComplexitySplitParameters()
	flags := []cli.Flag{configPathFlag(&x.configPath)}
	return append(flags, bindFloatFlags(complexityBindings, &x.values, "Complexity model")...)
}

func (x Complexity) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("config", x.configPath),
	)
}

// Configure resolves the complexity-split parameters from defaults, the
// [complexity] section of the config file and flags, in that order
func (x *Complexity) Configure(c *cli.Command) (model.ComplexitySplitParameters, error) {
	params := model.DefaultComplexitySplitParameters()

	if x.configPath != "" {
		file, err := LoadScenarioFile(x.configPath)
		if err != nil {
			return params, err
		}
		if file.Complexity == nil {
			return params, goerr.Wrap(ErrMissingScenario, "no [complexity] section", goerr.V(ConfigPathKey, x.configPath))
		}
		params = *file.Complexity
	}

	applyFloatFlags(c, complexityBindings, &x.values, &params)

	if err := params.Validate(); err != nil {
		return params, goerr.Wrap(err, "invalid complexity parameters")
	}
	return params, nil
}

// Batch holds CLI flags for batch evaluation
type Batch struct {
	configPath string
}

func (x *Batch) Flags() []cli.Flag {
	return []cli.Flag{configPathFlag(&x.configPath)}
}

// Configure loads the [[scenario]] entries of the config file
func (x *Batch) Configure() ([]model.NamedScenario, error) {
	if x.configPath == "" {
		return nil, goerr.Wrap(ErrConfigNotFound, "--config is required for batch evaluation")
	}

	file, err := LoadScenarioFile(x.configPath)
	if err != nil {
		return nil, err
	}
	if len(file.Scenarios) == 0 {
		return nil, goerr.Wrap(ErrMissingScenario, "no [[scenario]] entries", goerr.V(ConfigPathKey, x.configPath))
	}
	return file.Scenarios, nil
}
