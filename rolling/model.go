// Package rolling maintains an ARIMA model over a sliding window of a
// streaming series, re-estimating as new observations arrive.
//
// A Model is not safe for concurrent use; callers feeding it from multiple
// goroutines must serialize access themselves.
package rolling

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/krfricke/arima"
	"github.com/krfricke/arima/estimate"
	"github.com/krfricke/arima/forecast"
)

var (
	ErrNotEstimated = errors.New("model not estimated")
)

type Model struct {
	order arima.Order
	buf   *window

	refitEvery int
	sinceFit   int
	fitOpts    []estimate.Option
	logger     *zap.Logger

	last *estimate.Result
}

// New builds a rolling model of the given order over a window of the given
// size. The window must leave room for differencing plus the conditioning
// prefix of the residual recursion.
func New(p, d, q, window int, opts ...Option) (*Model, error) {
	order := arima.Order{P: p, D: d, Q: q}
	if err := order.Validate(); err != nil {
		return nil, err
	}
	if window <= d+order.MaxPQ() {
		return nil, fmt.Errorf("rolling: window %d too small for %s: %w",
			window, order, arima.ErrInvalidParameters)
	}

	m := &Model{
		order:      order,
		buf:        newWindow(window),
		refitEvery: 1,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Add pushes one observation. Once the window is full the model refits
// whenever the refit interval has elapsed; a failed fit is logged and the
// previous estimate, if any, stays in effect.
func (m *Model) Add(v float64) {
	m.buf.push(v)
	if !m.buf.full() {
		return
	}

	m.sinceFit++
	if m.last != nil && m.sinceFit < m.refitEvery {
		return
	}
	if err := m.refit(); err != nil {
		m.logger.Warn("rolling refit failed",
			zap.Stringer("order", m.order),
			zap.Error(err))
	}
}

// Refit forces re-estimation on the current window.
func (m *Model) Refit() error {
	if !m.buf.full() {
		return fmt.Errorf("rolling: window holds %d of %d observations: %w",
			m.buf.size, len(m.buf.vals), arima.ErrInsufficientData)
	}
	return m.refit()
}

func (m *Model) refit() error {
	m.sinceFit = 0
	res, err := estimate.Fit(m.buf.data(), m.order.P, m.order.D, m.order.Q, m.fitOpts...)
	if err != nil {
		return err
	}
	m.last = res
	return nil
}

// Ready reports whether the window has filled up.
func (m *Model) Ready() bool {
	return m.buf.full()
}

// Estimated reports whether at least one fit has succeeded.
func (m *Model) Estimated() bool {
	return m.last != nil
}

// Params returns the parameters of the most recent successful fit.
func (m *Model) Params() (arima.Parameters, error) {
	if m.last == nil {
		return arima.Parameters{}, ErrNotEstimated
	}
	return m.last.Params, nil
}

// Forecast predicts the next steps observations from the current window and
// the most recent successful fit.
func (m *Model) Forecast(steps int) (*forecast.Result, error) {
	if m.last == nil {
		return nil, ErrNotEstimated
	}
	return forecast.Steps(m.buf.data(), m.order, m.last.Params, steps)
}
