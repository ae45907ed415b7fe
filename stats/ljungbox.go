package stats

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/krfricke/arima"
)

// LjungBoxResult holds the portmanteau test outcome. A small PValue rejects
// the hypothesis that the residuals are uncorrelated up to the tested lag.
type LjungBoxResult struct {
	Statistic float64
	DF        int
	PValue    float64
}

// LjungBox tests a residual series for remaining autocorrelation at lags
// 1..lags. fitdf is the number of coefficients the residuals were fitted
// with (p+q for an ARMA fit) and is subtracted from the degrees of freedom,
// so lags must exceed fitdf.
func LjungBox(resid []float64, lags, fitdf int) (*LjungBoxResult, error) {
	if fitdf < 0 {
		return nil, fmt.Errorf("%w: negative fitdf %d", arima.ErrInvalidParameters, fitdf)
	}
	if lags <= fitdf {
		return nil, fmt.Errorf("%w: %d lags leave no degrees of freedom after fitdf %d", arima.ErrInvalidParameters, lags, fitdf)
	}

	rho, err := ACF(resid, lags)
	if err != nil {
		return nil, err
	}

	n := float64(len(resid))
	var q float64
	for k := 1; k <= lags; k++ {
		q += rho[k] * rho[k] / (n - float64(k))
	}
	q *= n * (n + 2)

	df := lags - fitdf
	chi2 := distuv.ChiSquared{K: float64(df)}
	return &LjungBoxResult{Statistic: q, DF: df, PValue: 1 - chi2.CDF(q)}, nil
}

// DurbinWatson returns the Durbin-Watson statistic of a residual series.
// Values near 2 indicate no first-order autocorrelation; values toward 0 or
// 4 indicate positive or negative correlation.
func DurbinWatson(resid []float64) float64 {
	var num, den float64
	for i, e := range resid {
		den += e * e
		if i > 0 {
			d := e - resid[i-1]
			num += d * d
		}
	}
	return num / den
}
