// Package stats provides the sample statistics behind ARIMA modeling:
// autocovariance, autocorrelation and partial autocorrelation functions,
// Yule-Walker autoregression, residual diagnostics and information criteria.
package stats

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/krfricke/arima"
)

// Acovf returns the sample autocovariances of x at lags 0..maxLag. Every
// term uses the full-sample mean and the 1/n divisor, so the lag-0 entry is
// the biased sample variance.
func Acovf(x []float64, maxLag int) ([]float64, error) {
	if maxLag < 0 {
		return nil, fmt.Errorf("%w: negative lag %d", arima.ErrInvalidParameters, maxLag)
	}
	if maxLag >= len(x) {
		return nil, fmt.Errorf("%w: lag %d with %d observations", arima.ErrInsufficientData, maxLag, len(x))
	}

	n := float64(len(x))
	mean := stat.Mean(x, nil)

	cov := make([]float64, maxLag+1)
	for k := 0; k <= maxLag; k++ {
		var sum float64
		for i := 0; i < len(x)-k; i++ {
			sum += (x[i] - mean) * (x[i+k] - mean)
		}
		cov[k] = sum / n
	}
	return cov, nil
}

// ACF returns the sample autocorrelations of x at lags 0..maxLag, with the
// lag-0 entry exactly 1. A constant series has no correlation structure and
// fails with ErrNumericalInstability.
func ACF(x []float64, maxLag int) ([]float64, error) {
	cov, err := Acovf(x, maxLag)
	if err != nil {
		return nil, err
	}
	return normalize(cov)
}

// PACF returns the partial autocorrelations of x at lags 1..maxLag: the
// lag-k entry is the last coefficient of the order-k Yule-Walker solution,
// computed in one pass of the Durbin-Levinson recursion.
func PACF(x []float64, maxLag int) ([]float64, error) {
	rho, err := ACF(x, maxLag)
	if err != nil {
		return nil, err
	}
	_, diag, _, err := levinson(rho, maxLag)
	if err != nil {
		return nil, err
	}
	return diag, nil
}

func normalize(cov []float64) ([]float64, error) {
	if cov[0] == 0 {
		return nil, fmt.Errorf("%w: zero-variance series", arima.ErrNumericalInstability)
	}
	rho := make([]float64, len(cov))
	rho[0] = 1
	for k := 1; k < len(cov); k++ {
		rho[k] = cov[k] / cov[0]
	}
	return rho, nil
}
