package usecase

import "errors"

// Sentinel errors for use case layer
var (
	ErrEmptyBatch        = errors.New("no scenario to evaluate")
	ErrDuplicateScenario = errors.New("duplicate scenario name")
)
