package rolling

import (
	"go.uber.org/zap"

	"github.com/krfricke/arima/estimate"
)

type Option func(*Model)

// WithRefitEvery re-estimates only every n observations once the window is
// full, instead of on every new point.
func WithRefitEvery(n int) Option {
	return func(m *Model) {
		if n > 0 {
			m.refitEvery = n
		}
	}
}

// WithLogger routes refit warnings to the given logger.
func WithLogger(logger *zap.Logger) Option {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithFitOptions forwards options to every estimate.Fit call.
func WithFitOptions(opts ...estimate.Option) Option {
	return func(m *Model) {
		m.fitOpts = opts
	}
}
