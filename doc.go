// Package arima provides estimation and simulation of ARIMA(p,d,q) time
// series models.
//
// An ARIMA(p,d,q) model combines p autoregressive lags, d differencing
// steps and q moving-average lags. The root package holds the shared model
// vocabulary (orders, parameter sets, error kinds); the work happens in the
// subpackages:
//
//   - series: differencing, integration and related primitives
//   - stats: autocovariance, ACF/PACF, AR estimation, residual diagnostics
//   - estimate: full ARIMA estimation by conditional sum of squares
//   - sim: recursive simulation from known coefficients
//   - forecast: h-step forecasts with prediction intervals
//   - rolling: windowed model that re-estimates as observations arrive
//   - dataset: series loading from CSV files and DuckDB databases
//
// # Fitting a model
//
//	res, err := estimate.Fit(x, 2, 1, 1)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("ar=%v ma=%v\n", res.Params.AR, res.Params.MA)
//
// # Simulating a series
//
//	rng := rand.New(rand.NewPCG(1, 2))
//	x, err := sim.ARIMA(500, []float64{0.7, 0.2}, nil, 0, sim.Normal(0, 1), rng)
//
// All entry points report failures through the error kinds declared in this
// package; test for them with errors.Is.
package arima
