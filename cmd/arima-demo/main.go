// arima-demo simulates or loads a series, fits an ARIMA model to it and
// prints diagnostics plus a short forecast.
package main

import (
	"flag"
	"fmt"
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/krfricke/arima"
	"github.com/krfricke/arima/dataset"
	"github.com/krfricke/arima/estimate"
	"github.com/krfricke/arima/forecast"
	"github.com/krfricke/arima/internal/dbg"
	"github.com/krfricke/arima/series"
	"github.com/krfricke/arima/sim"
	"github.com/krfricke/arima/stats"
)

var (
	csvPath = flag.String("csv", "", "model a CSV column instead of a simulated series")
	column  = flag.String("column", "", "CSV column to model (default: last)")
	jsonLog = flag.Bool("json", false, "log as JSON")

	p     = flag.Int("p", 2, "AR order")
	d     = flag.Int("d", 1, "differencing order")
	q     = flag.Int("q", 1, "MA order")
	n     = flag.Int("n", 500, "simulated series length, true model is ARIMA(2,d,1)")
	steps = flag.Int("steps", 10, "forecast horizon")
	seed  = flag.Uint64("seed", 42, "simulation seed")
)

func main() {
	flag.Parse()

	logger := dbg.NewDevLogger()
	if *jsonLog {
		logger = dbg.NewProdLogger()
	}
	defer func(logger *zap.Logger) {
		_ = logger.Sync()
	}(logger)

	order := arima.Order{P: *p, D: *d, Q: *q}

	x, err := loadSeries()
	if err != nil {
		logger.Fatal("unable to load series", zap.Error(err))
	}
	logger.Info("series ready",
		zap.Stringer("order", order),
		zap.Int("observations", len(x)))

	res, err := estimate.Fit(x, order.P, order.D, order.Q, estimate.WithLogger(logger))
	if err != nil {
		logger.Fatal("estimation failed", zap.Error(err))
	}
	logger.Info("estimated",
		zap.Float64("intercept", res.Params.Intercept),
		zap.Float64s("ar", res.Params.AR),
		zap.Float64s("ma", res.Params.MA),
		zap.Float64("variance", res.Params.Variance),
		zap.Int("iterations", res.Iterations))

	if len(res.Params.AR) > 0 {
		logger.Info("stationarity",
			zap.Bool("ar_stationary", stats.IsStationary(res.Params.AR)))
	}
	if len(res.Params.MA) > 0 {
		logger.Info("invertibility",
			zap.Bool("ma_invertible", stats.IsInvertible(res.Params.MA)))
	}

	ic := res.Criteria()
	logger.Info("information criteria",
		zap.Float64("loglik", ic.LogLik),
		zap.Float64("aic", ic.AIC),
		zap.Float64("bic", ic.BIC))

	if err := whitenessCheck(logger, x, order, res); err != nil {
		logger.Warn("residual diagnostics unavailable", zap.Error(err))
	}

	fc, err := forecast.Steps(x, order, res.Params, *steps)
	if err != nil {
		logger.Fatal("forecast failed", zap.Error(err))
	}

	fmt.Printf("\n%-4s %12s %12s %26s\n", "h", "forecast", "std.err", "95% interval")
	for h := range fc.Values {
		fmt.Printf("%-4d %12.4f %12.4f [%11.4f, %11.4f]\n",
			h+1, fc.Values[h], fc.StdErr[h], fc.Lower95[h], fc.Upper95[h])
	}
}

func loadSeries() ([]float64, error) {
	if *csvPath != "" {
		var opts []dataset.CSVOption
		if *column != "" {
			opts = append(opts, dataset.WithColumn(*column))
		}
		return dataset.LoadCSV(*csvPath, opts...)
	}

	rng := rand.New(rand.NewPCG(*seed, *seed))
	return sim.ARIMA(*n, []float64{0.6, -0.2}, []float64{0.4}, *d, sim.Normal(0, 1), rng)
}

func whitenessCheck(logger *zap.Logger, x []float64, order arima.Order, res *estimate.Result) error {
	w, err := series.Diff(x, order.D)
	if err != nil {
		return err
	}
	resid, err := estimate.Residuals(w, res.Params.Intercept, res.Params.AR, res.Params.MA)
	if err != nil {
		return err
	}

	// Drop the zero conditioning prefix so it cannot bias the test.
	resid = resid[order.MaxPQ():]
	lb, err := stats.LjungBox(resid, 10, order.P+order.Q)
	if err != nil {
		return err
	}
	logger.Info("ljung-box",
		zap.Float64("statistic", lb.Statistic),
		zap.Int("df", lb.DF),
		zap.Float64("pvalue", lb.PValue),
		zap.Float64("durbin_watson", stats.DurbinWatson(resid)))
	return nil
}
