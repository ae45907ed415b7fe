// Package estimate fits ARIMA models by minimizing the conditional sum of
// squares with a quasi-Newton optimizer.
//
//	res, err := estimate.Fit(x, 2, 1, 1)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("ar=%v ma=%v var=%.4f\n", res.Params.AR, res.Params.MA, res.Params.Variance)
//
// The residual recursion conditions on the first max(p,q) observations of
// the differenced series, so the reported coefficients and variance live on
// the differenced scale. Fit is deterministic.
package estimate
