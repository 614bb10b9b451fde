package config

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for configuration validation
var (
	ErrConfigNotFound  = goerr.New("configuration file not found")
	ErrInvalidConfig   = goerr.New("invalid configuration")
	ErrMissingScenario = goerr.New("configuration has no scenario for the requested model")
)

// Context keys for error values
const (
	ConfigPathKey = "config_path"
)
