// Package forecast produces multi-step point forecasts and normal-theory
// prediction intervals from fitted ARIMA parameters.
package forecast

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/krfricke/arima"
	"github.com/krfricke/arima/estimate"
	"github.com/krfricke/arima/series"
)

// Result holds h-step forecasts on the original, undifferenced scale. All
// slices have one entry per forecast step.
type Result struct {
	Values  []float64
	StdErr  []float64
	Lower80 []float64
	Upper80 []float64
	Lower95 []float64
	Upper95 []float64
}

// Steps forecasts the next steps observations of x under the given order and
// parameters.
//
// The AR polynomial is multiplied by (1-B)^d so that the recurrence runs
// directly on the original scale, with future innovations set to zero. The
// MA part draws on the conditional residuals of the differenced series.
// Standard errors follow from the psi-weight expansion, sigma_h^2 =
// sigma^2 * sum(psi_j^2, j < h), so they grow without bound when d > 0.
func Steps(x []float64, order arima.Order, params arima.Parameters, steps int) (*Result, error) {
	if err := order.Validate(); err != nil {
		return nil, err
	}
	if err := params.Validate(order); err != nil {
		return nil, err
	}
	if steps <= 0 {
		return nil, fmt.Errorf("forecast: %d steps: %w", steps, arima.ErrInvalidParameters)
	}

	w, err := series.Diff(x, order.D)
	if err != nil {
		return nil, err
	}
	res, err := estimate.Residuals(w, params.Intercept, params.AR, params.MA)
	if err != nil {
		return nil, err
	}

	arFull := expandAR(params.AR, order.D)

	nx := len(x)
	values := make([]float64, steps)
	for h := 1; h <= steps; h++ {
		v := params.Intercept
		for i, phi := range arFull {
			k := nx - 1 + h - i - 1
			if k >= nx {
				v += phi * values[k-nx]
			} else {
				v += phi * x[k]
			}
		}
		for j, theta := range params.MA {
			k := nx - 1 + h - j - 1
			if k >= nx {
				continue // future innovations forecast to zero
			}
			if t := k - order.D; t >= 0 {
				v += theta * res[t]
			}
		}
		values[h-1] = v
	}

	sigma := math.Sqrt(params.Variance)
	psi := psiWeights(arFull, params.MA, steps)
	z80 := distuv.UnitNormal.Quantile(0.90)
	z95 := distuv.UnitNormal.Quantile(0.975)

	r := &Result{
		Values:  values,
		StdErr:  make([]float64, steps),
		Lower80: make([]float64, steps),
		Upper80: make([]float64, steps),
		Lower95: make([]float64, steps),
		Upper95: make([]float64, steps),
	}
	var ssq float64
	for h := 0; h < steps; h++ {
		ssq += psi[h] * psi[h]
		se := sigma * math.Sqrt(ssq)
		r.StdErr[h] = se
		r.Lower80[h] = values[h] - z80*se
		r.Upper80[h] = values[h] + z80*se
		r.Lower95[h] = values[h] - z95*se
		r.Upper95[h] = values[h] + z95*se
	}
	return r, nil
}

// expandAR multiplies the AR polynomial by (1-B)^d and returns the lag
// weights of the combined autoregression on the undifferenced scale. The
// returned slice has length len(ar)+d.
func expandAR(ar []float64, d int) []float64 {
	phi := make([]float64, len(ar)+1)
	phi[0] = 1
	for i, c := range ar {
		phi[i+1] = -c
	}

	diff := make([]float64, d+1)
	sign := 1.0
	for k := 0; k <= d; k++ {
		diff[k] = sign * binomial(d, k)
		sign = -sign
	}

	full := make([]float64, len(phi)+d)
	for i, a := range phi {
		for k, b := range diff {
			full[i+k] += a * b
		}
	}

	out := make([]float64, len(full)-1)
	for i := range out {
		out[i] = -full[i+1]
	}
	return out
}

// psiWeights returns the first h coefficients of the MA(inf) representation
// implied by the expanded AR weights and the MA coefficients.
func psiWeights(arFull, ma []float64, h int) []float64 {
	psi := make([]float64, h)
	psi[0] = 1
	for j := 1; j < h; j++ {
		var v float64
		if j <= len(ma) {
			v = ma[j-1]
		}
		for i := 1; i <= j && i <= len(arFull); i++ {
			v += arFull[i-1] * psi[j-i]
		}
		psi[j] = v
	}
	return psi
}

// binomial computes n choose k with the multiplicative formula.
func binomial(n, k int) float64 {
	if k > n {
		return 0
	}
	if k == 0 || k == n {
		return 1
	}
	result := 1.0
	for i := 0; i < k; i++ {
		result = result * float64(n-i) / float64(i+1)
	}
	return result
}
