package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/secmon-lab/threatcalc/pkg/domain/interfaces"
	"github.com/secmon-lab/threatcalc/pkg/domain/types"
)

type UseCases struct {
	observer   interfaces.EvaluationObserver
	newID      func() string
	batchLimit int
	Threat     *ThreatUseCase
	Complexity *ComplexityUseCase
}

type Option func(*UseCases)

// WithObserver registers an observer notified after every evaluation
func WithObserver(observer interfaces.EvaluationObserver) Option {
	return func(uc *UseCases) {
		uc.observer = observer
	}
}

// WithIDGenerator replaces the evaluation ID generator (UUIDv4 by default)
func WithIDGenerator(f func() string) Option {
	return func(uc *UseCases) {
		uc.newID = f
	}
}

// WithBatchLimit bounds the number of scenarios evaluated concurrently
func WithBatchLimit(n int) Option {
	return func(uc *UseCases) {
		uc.batchLimit = n
	}
}

func New(opts ...Option) *UseCases {
	uc := &UseCases{
		observer:   nopObserver{},
		newID:      uuid.NewString,
		batchLimit: defaultBatchLimit,
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.Threat = NewThreatUseCase(uc.observer, uc.newID)
	uc.Complexity = NewComplexityUseCase(uc.observer, uc.newID)

	return uc
}

type nopObserver struct{}

func (nopObserver) ObserveEvaluation(context.Context, string, float64, types.RiskTier) {}
func (nopObserver) ObserveRejection(context.Context, string, error)                    {}
