// Package sim generates synthetic ARIMA series from known coefficients and a
// caller-owned noise source. It is independent of the estimation packages and
// is mainly useful for testing estimators and building Monte Carlo studies.
package sim

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/krfricke/arima"
)

// NoiseFunc draws one innovation from the caller-owned generator. It must be
// a pure function of the generator state so that simulations are reproducible
// with a fixed seed.
type NoiseFunc func(*rand.Rand) float64

// Normal returns a NoiseFunc drawing from a Gaussian with the given mean and
// standard deviation. Sigma must be positive; it is not validated here.
func Normal(mu, sigma float64) NoiseFunc {
	return func(rng *rand.Rand) float64 {
		return distuv.Normal{Mu: mu, Sigma: sigma, Src: rng}.Rand()
	}
}

// ARIMA simulates n observations of an ARIMA(len(ar), d, len(ma)) process
// with zero intercept.
//
// Innovations are drawn sequentially from noise, one per time step,
// covering a burn-in prefix of max(p,q) steps plus the n steps that are
// kept. The recurrence
//
//	y_t = sum_i ar[i]*y_{t-i-1} + e_t + sum_j ma[j]*e_{t-j-1}
//
// runs forward over the whole window with values at negative indices
// treated as zero, the burn-in prefix is discarded, and the remaining
// series is cumulatively summed d times.
func ARIMA(n int, ar, ma []float64, d int, noise NoiseFunc, rng *rand.Rand) ([]float64, error) {
	return simulate(n, 0, ar, ma, d, noise, rng)
}

// FromParameters simulates from a fitted parameter set, applying its
// intercept at every step. The coefficient slice lengths must agree with the
// declared order.
func FromParameters(n int, order arima.Order, params arima.Parameters, noise NoiseFunc, rng *rand.Rand) ([]float64, error) {
	if err := order.Validate(); err != nil {
		return nil, err
	}
	if err := params.Validate(order); err != nil {
		return nil, err
	}
	return simulate(n, params.Intercept, params.AR, params.MA, order.D, noise, rng)
}

func simulate(n int, intercept float64, ar, ma []float64, d int, noise NoiseFunc, rng *rand.Rand) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("sim: series length %d: %w", n, arima.ErrInvalidParameters)
	}
	if d < 0 {
		return nil, fmt.Errorf("sim: differencing order %d: %w", d, arima.ErrInvalidParameters)
	}
	if noise == nil || rng == nil {
		return nil, fmt.Errorf("sim: nil noise source: %w", arima.ErrInvalidParameters)
	}

	burn := len(ar)
	if len(ma) > burn {
		burn = len(ma)
	}
	total := burn + n

	e := make([]float64, total)
	for t := range e {
		e[t] = noise(rng)
	}

	x := make([]float64, total)
	for t := 0; t < total; t++ {
		v := intercept + e[t]
		for j, theta := range ma {
			if k := t - j - 1; k >= 0 {
				v += theta * e[k]
			}
		}
		for i, phi := range ar {
			if k := t - i - 1; k >= 0 {
				v += phi * x[k]
			}
		}
		x[t] = v
	}

	out := make([]float64, n)
	copy(out, x[burn:])
	for k := 0; k < d; k++ {
		sums := make([]float64, n)
		floats.CumSum(sums, out)
		out = sums
	}
	return out, nil
}
