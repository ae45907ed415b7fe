package estimate

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/krfricke/arima"
)

// Residuals computes the one-step in-sample residuals of an ARMA model on a
// stationary series; differencing and any centering must be done before.
// The recursion conditions on the first max(p,q) observations, whose
// residuals stay zero:
//
//	e_t = x_t - intercept - sum_i phi_i*x_{t-i} - sum_j theta_j*e_{t-j}
//
// A non-finite residual fails with ErrNumericalInstability rather than
// propagating.
func Residuals(x []float64, intercept float64, phi, theta []float64) ([]float64, error) {
	m := len(phi)
	if len(theta) > m {
		m = len(theta)
	}
	if len(x) <= m {
		return nil, fmt.Errorf("%w: %d observations for %d conditioning lags", arima.ErrInsufficientData, len(x), m)
	}

	res := make([]float64, len(x))
	for t := m; t < len(x); t++ {
		pred := intercept
		for j, c := range phi {
			pred += c * x[t-j-1]
		}
		for j, c := range theta {
			pred += c * res[t-j-1]
		}
		e := x[t] - pred
		if math.IsNaN(e) || math.IsInf(e, 0) {
			return nil, fmt.Errorf("%w: non-finite residual at index %d", arima.ErrNumericalInstability, t)
		}
		res[t] = e
	}
	return res, nil
}

// CSS returns the conditional sum of squared residuals, the objective Fit
// minimizes. The implied innovation variance is CSS divided by the number
// of contributing residuals, len(x)-max(p,q).
func CSS(x []float64, intercept float64, phi, theta []float64) (float64, error) {
	res, err := Residuals(x, intercept, phi, theta)
	if err != nil {
		return 0, err
	}
	css := floats.Dot(res, res)
	if math.IsInf(css, 0) {
		return 0, fmt.Errorf("%w: squared residuals overflow", arima.ErrNumericalInstability)
	}
	return css, nil
}
