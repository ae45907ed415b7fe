package estimate

import (
	"fmt"
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/gonum/stat"

	"github.com/krfricke/arima"
	"github.com/krfricke/arima/series"
	"github.com/krfricke/arima/stats"
)

// unstablePenalty stands in for the objective wherever the residual
// recursion blows up, steering the line search back without feeding the
// optimizer non-finite values.
const unstablePenalty = 1e150

// Result holds a fitted model together with the optimizer's account of how
// it got there.
type Result struct {
	Params     arima.Parameters
	Order      arima.Order
	Objective  float64 // final conditional sum of squares
	NObs       int     // observations on the differenced scale
	Iterations int
	FuncEvals  int
}

// Criteria returns the Gaussian information criteria of the fit, computed
// over the residuals that entered the objective.
func (r *Result) Criteria() stats.Criteria {
	m := r.NObs - r.Order.MaxPQ()
	logLik := stats.GaussianLogLik(r.Objective, m)
	return stats.InformationCriteria(logLik, m, r.Order.NumParams()+1)
}

// Fit estimates an ARIMA(p,d,q) model on x. The series is differenced d
// times, then the coefficient vector [intercept, phi..., theta...] is fitted
// by minimizing the conditional sum of squares with L-BFGS and forward
// finite-difference gradients. The AR coefficients start from the
// Yule-Walker solution, the MA coefficients from zero and the intercept from
// the differenced-series mean.
//
// The returned parameters live on the differenced scale. Fit is
// deterministic: repeated calls on the same input return identical results.
func Fit(x []float64, p, d, q int, opts ...Option) (*Result, error) {
	order := arima.Order{P: p, D: d, Q: q}
	if err := order.Validate(); err != nil {
		return nil, err
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	w, err := series.Diff(x, d)
	if err != nil {
		return nil, err
	}
	if !allFinite(w) {
		return nil, fmt.Errorf("%w: input series contains non-finite values", arima.ErrNumericalInstability)
	}
	m := order.MaxPQ()
	if len(w) <= m {
		return nil, fmt.Errorf("%w: %d observations after differencing, need more than %d", arima.ErrInsufficientData, len(w), m)
	}

	// Starting point: sample mean, Yule-Walker AR row, zero MA terms.
	init := make([]float64, order.NumParams())
	init[0] = stat.Mean(w, nil)
	if p > 0 {
		var phi0 []float64
		if cfg.solver != nil {
			phi0, _, err = stats.ARSolve(w, p, cfg.solver)
		} else {
			phi0, _, err = stats.AR(w, p)
		}
		if err != nil {
			return nil, err
		}
		copy(init[1:], phi0)
	}

	obj := func(coef []float64) float64 {
		css, cssErr := CSS(w, coef[0], coef[1:1+p], coef[1+p:])
		if cssErr != nil {
			return unstablePenalty
		}
		return css
	}
	problem := optimize.Problem{
		Func: obj,
		Grad: func(grad, coef []float64) {
			fd.Gradient(grad, obj, coef, &fd.Settings{Formula: fd.Forward})
		},
	}
	settings := &optimize.Settings{
		MajorIterations:   cfg.maxIterations,
		GradientThreshold: cfg.gradientTolerance,
		Converger: &optimize.FunctionConverge{
			Absolute:   cfg.objectiveTolerance,
			Relative:   cfg.objectiveTolerance,
			Iterations: 20,
		},
	}

	res, optErr := optimize.Minimize(problem, init, settings, &optimize.LBFGS{})
	if res == nil {
		return nil, fmt.Errorf("%w: %v", arima.ErrNonConvergence, optErr)
	}
	coef := res.Location.X

	if !allFinite(coef) || math.IsNaN(res.Location.F) || math.IsInf(res.Location.F, 0) || res.Location.F >= unstablePenalty {
		return nil, fmt.Errorf("%w: optimizer ended on non-finite objective", arima.ErrNumericalInstability)
	}
	switch res.Status {
	case optimize.IterationLimit, optimize.FunctionEvaluationLimit, optimize.GradientEvaluationLimit:
		return nil, fmt.Errorf("%w: %s stopped after %d iterations", arima.ErrNonConvergence, order, res.Stats.MajorIterations)
	}
	if optErr != nil {
		// The line search can give up on the flat bottom of the CSS surface
		// before a converger fires. The location is still the best visited
		// point; keep it and leave a trace.
		cfg.logger.Warn("optimizer stopped early",
			zap.Stringer("order", order),
			zap.Int("iterations", res.Stats.MajorIterations),
			zap.Error(optErr),
		)
	}

	variance := res.Location.F / float64(len(w)-m)
	params := arima.Parameters{
		Intercept: coef[0],
		AR:        append([]float64(nil), coef[1:1+p]...),
		MA:        append([]float64(nil), coef[1+p:]...),
		Variance:  variance,
	}
	return &Result{
		Params:     params,
		Order:      order,
		Objective:  res.Location.F,
		NObs:       len(w),
		Iterations: res.Stats.MajorIterations,
		FuncEvals:  res.Stats.FuncEvaluations,
	}, nil
}

func allFinite(v []float64) bool {
	for _, f := range v {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}
