package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/threatcalc/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

// floatBinding ties a float flag to the field it overrides
type floatBinding[T any] struct {
	name  string
	usage string
	env   string
	field func(*T) *float64
}

var threatBindings = []floatBinding[model.ThreatProfileInput]{
	{"attack-given-intent", "P(attack | intent)", "THREATCALC_ATTACK_GIVEN_INTENT",
		func(x *model.ThreatProfileInput) *float64 { return &x.AttackGivenIntent }},
	{"success-no-countermeasure", "P(success | attack, no countermeasure)", "THREATCALC_SUCCESS_NO_COUNTERMEASURE",
		func(x *model.ThreatProfileInput) *float64 { return &x.SuccessGivenAttackNoCountermeasure }},
	{"countermeasure-active", "P(countermeasure active), current", "THREATCALC_COUNTERMEASURE_ACTIVE",
		func(x *model.ThreatProfileInput) *float64 { return &x.Current.CountermeasureActive }},
	{"detection", "P(detection | countermeasure), current", "THREATCALC_DETECTION",
		func(x *model.ThreatProfileInput) *float64 { return &x.Current.DetectionGivenCountermeasure }},
	{"success-detected", "P(success | detected), current", "THREATCALC_SUCCESS_DETECTED",
		func(x *model.ThreatProfileInput) *float64 { return &x.Current.SuccessGivenDetected }},
	{"success-not-detected", "P(success | not detected), current", "THREATCALC_SUCCESS_NOT_DETECTED",
		func(x *model.ThreatProfileInput) *float64 { return &x.Current.SuccessGivenNotDetected }},
	{"future-attack-given-intent", "P(attack | intent), future", "THREATCALC_FUTURE_ATTACK_GIVEN_INTENT",
		func(x *model.ThreatProfileInput) *float64 { return &x.FutureAttackGivenIntent }},
	{"future-countermeasure-active", "P(countermeasure active), future", "THREATCALC_FUTURE_COUNTERMEASURE_ACTIVE",
		func(x *model.ThreatProfileInput) *float64 { return &x.Future.CountermeasureActive }},
	{"future-detection", "P(detection | countermeasure), future", "THREATCALC_FUTURE_DETECTION",
		func(x *model.ThreatProfileInput) *float64 { return &x.Future.DetectionGivenCountermeasure }},
	{"future-success-detected", "P(success | detected), future", "THREATCALC_FUTURE_SUCCESS_DETECTED",
		func(x *model.ThreatProfileInput) *float64 { return &x.Future.SuccessGivenDetected }},
	{"future-success-not-detected", "P(success | not detected), future", "THREATCALC_FUTURE_SUCCESS_NOT_DETECTED",
		func(x *model.ThreatProfileInput) *float64 { return &x.Future.SuccessGivenNotDetected }},
}

func bindFloatFlags[T any](bindings []floatBinding[T], values *T, category string) []cli.Flag {
	flags := make([]cli.Flag, 0, len(bindings))
	for _, b := range bindings {
		dst := b.field(values)
		flags = append(flags, &cli.FloatFlag{
			Name:        b.name,
			Usage:       b.usage,
			Category:    category,
			Value:       *dst,
			Sources:     cli.EnvVars(b.env),
			Destination: dst,
		})
	}
	return flags
}

// applyFloatFlags copies the values of flags set on the command line or by
// environment into dst
func applyFloatFlags[T any](c *cli.Command, bindings []floatBinding[T], values *T, dst *T) {
	for _, b := range bindings {
		if c.IsSet(b.name) {
			*b.field(dst) = *b.field(values)
		}
	}
}

func configPathFlag(dst *string) cli.Flag {
	return &cli.StringFlag{
		Name:        "config",
		Aliases:     []string{"c"},
		Usage:       "Scenario file in TOML format",
		Sources:     cli.EnvVars("THREATCALC_CONFIG"),
		Destination: dst,
	}
}

// Threat holds CLI flags for the three-tier threat model
type Threat struct {
	configPath string
	values     model.ThreatProfileInput
}

func (x *Threat) Flags() []cli.Flag {
	x.values = model.DefaultThreatProfileInput()
	flags := []cli.Flag{configPathFlag(&x.configPath)}
	return append(flags, bindFloatFlags(threatBindings, &x.values, "Threat model")...)
}

func (x Threat) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("config", x.configPath),
	)
}

// Configure resolves the threat profile input. Values are taken from the
// defaults, then the [threat] section of the config file, then flags.
func (x *Threat) Configure(c *cli.Command) (model.ThreatProfileInput, error) {
	input := model.DefaultThreatProfileInput()

	if x.configPath != "" {
		file, err := LoadScenarioFile(x.configPath)
		if err != nil {
			return input, err
		}
		if file.Threat == nil {
			return input, goerr.Wrap(ErrMissingScenario, "no [threat] section", goerr.V(ConfigPathKey, x.configPath))
		}
		input = *file.Threat
	}

	applyFloatFlags(c, threatBindings, &x.values, &input)

	if err := input.Validate(); err != nil {
		return input, goerr.Wrap(err, "invalid threat parameters")
	}
	return input, nil
}
