package interfaces

import (
	"context"

	"github.com/secmon-lab/threatcalc/pkg/domain/types"
)

// Model names reported to an EvaluationObserver
const (
	ModelRaw        = "raw"
	ModelCurrent    = "current_residual"
	ModelFuture     = "future_residual"
	ModelComplexity = "complexity_split"
)

// EvaluationObserver receives the outcome of every evaluation, e.g. for metrics.
// Implementations must be safe for concurrent use.
type EvaluationObserver interface {
	ObserveEvaluation(ctx context.Context, modelName string, probability float64, tier types.RiskTier)
	ObserveRejection(ctx context.Context, modelName string, err error)
}
