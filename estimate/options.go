package estimate

import (
	"go.uber.org/zap"

	"github.com/krfricke/arima/stats"
)

type config struct {
	maxIterations      int
	gradientTolerance  float64
	objectiveTolerance float64
	solver             stats.ToeplitzSolver
	logger             *zap.Logger
}

func defaultConfig() config {
	return config{
		maxIterations:      200,
		gradientTolerance:  1e-8,
		objectiveTolerance: 1e-10,
		logger:             zap.NewNop(),
	}
}

// Option adjusts the behavior of Fit.
type Option func(*config)

// WithMaxIterations bounds the optimizer's major iterations. Exhausting the
// bound fails the fit with ErrNonConvergence. Values below 1 are ignored.
func WithMaxIterations(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxIterations = n
		}
	}
}

// WithGradientTolerance sets the gradient-norm threshold under which the
// search is considered converged.
func WithGradientTolerance(tol float64) Option {
	return func(c *config) {
		if tol > 0 {
			c.gradientTolerance = tol
		}
	}
}

// WithObjectiveTolerance sets the absolute objective-improvement threshold
// under which the search is considered converged.
func WithObjectiveTolerance(tol float64) Option {
	return func(c *config) {
		if tol > 0 {
			c.objectiveTolerance = tol
		}
	}
}

// WithSolver routes the Yule-Walker starting point through an alternative
// linear-algebra backend instead of the built-in recursion.
func WithSolver(s stats.ToeplitzSolver) Option {
	return func(c *config) {
		c.solver = s
	}
}

// WithLogger attaches a logger for optimizer warnings. The default discards
// them.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}
