package config

import (
	"bytes"
	"errors"
	"io/fs"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/secmon-lab/threatcalc/pkg/domain/model"
)

// ScenarioFile is a parsed scenario configuration. Sections absent from the
// file are nil; keys absent from a section keep their default value.
type ScenarioFile struct {
	Threat     *model.ThreatProfileInput
	Complexity *model.ComplexitySplitParameters
	Scenarios  []model.NamedScenario
}

type rawDocument struct {
	Threat     map[string]any `toml:"threat"`
	Complexity map[string]any `toml:"complexity"`
	Scenarios  []rawScenario  `toml:"scenario"`
}

type rawScenario struct {
	Name       string         `toml:"name"`
	Threat     map[string]any `toml:"threat"`
	Complexity map[string]any `toml:"complexity"`
}

// LoadScenarioFile loads a scenario configuration from a TOML file
func LoadScenarioFile(path string) (*ScenarioFile, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, goerr.Wrap(ErrConfigNotFound, "failed to read config file", goerr.V(ConfigPathKey, path))
		}
		return nil, goerr.Wrap(err, "failed to read config file", goerr.V(ConfigPathKey, path))
	}

	file, err := ParseScenarioFile(data)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load config file", goerr.V(ConfigPathKey, path))
	}
	return file, nil
}

// ParseScenarioFile parses and validates TOML scenario configuration
func ParseScenarioFile(data []byte) (*ScenarioFile, error) {
	var doc rawDocument
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, goerr.Wrap(ErrInvalidConfig, "failed to parse TOML config", goerr.V("error", err.Error()))
	}

	var file ScenarioFile

	if doc.Threat != nil {
		threat := model.DefaultThreatProfileInput()
		if err := overlay(doc.Threat, &threat); err != nil {
			return nil, goerr.Wrap(err, "invalid threat section")
		}
		if err := threat.Validate(); err != nil {
			return nil, goerr.Wrap(err, "invalid threat section")
		}
		file.Threat = &threat
	}

	if doc.Complexity != nil {
		complexity := model.DefaultComplexitySplitParameters()
		if err := overlay(doc.Complexity, &complexity); err != nil {
			return nil, goerr.Wrap(err, "invalid complexity section")
		}
		if err := complexity.Validate(); err != nil {
			return nil, goerr.Wrap(err, "invalid complexity section")
		}
		file.Complexity = &complexity
	}

	for i, raw := range doc.Scenarios {
		s, err := raw.build()
		if err != nil {
			return nil, goerr.Wrap(err, "invalid scenario", goerr.V("index", i), goerr.V(model.ScenarioNameKey, raw.Name))
		}
		file.Scenarios = append(file.Scenarios, s)
	}

	return &file, nil
}

func (x rawScenario) build() (model.NamedScenario, error) {
	s := model.NamedScenario{Name: x.Name}

	if x.Threat != nil {
		threat := model.DefaultThreatProfileInput()
		if err := overlay(x.Threat, &threat); err != nil {
			return s, err
		}
		if err := threat.Validate(); err != nil {
			return s, err
		}
		s.Threat = &threat
	}

	if x.Complexity != nil {
		complexity := model.DefaultComplexitySplitParameters()
		if err := overlay(x.Complexity, &complexity); err != nil {
			return s, err
		}
		if err := complexity.Validate(); err != nil {
			return s, err
		}
		s.Complexity = &complexity
	}

	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

// overlay decodes section on top of dst so that absent keys keep the value
// already in dst. Unknown keys are rejected.
func overlay(section map[string]any, dst any) error {
	data, err := toml.Marshal(section)
	if err != nil {
		return goerr.Wrap(err, "failed to re-encode TOML section")
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return goerr.Wrap(ErrInvalidConfig, "unknown key in section", goerr.V("detail", strict.String()))
		}
		return goerr.Wrap(ErrInvalidConfig, "failed to decode section", goerr.V("error", err.Error()))
	}
	return nil
}
