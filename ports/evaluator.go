package ports

import (
	"gocoach/domain/factors"
	"gocoach/domain/strategy"
)

// StrategyEvaluator scores Decision Factors into a publication strategy verdict.
// Implementations must be pure and safe for concurrent use.
type StrategyEvaluator interface {
	// Evaluate never fails; out-of-domain values degrade to base scores
	Evaluate(f factors.Factors) strategy.Result
}
