// Package series provides differencing, integration and related primitives
// over numeric slices.
//
// All functions allocate their result and never mutate their input. Diff,
// Invert, DiffInv, CumSum and Lag are generic over integer and float element
// types so that count-valued series keep exact arithmetic.
package series

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/stat"

	"github.com/krfricke/arima"
)

// Number constrains the element types the generic primitives accept.
type Number interface {
	constraints.Integer | constraints.Float
}

// Diff applies d differencing steps, each replacing the series with the
// pairwise differences x[t] - x[t-1]. The result is d elements shorter than
// the input; d = 0 returns a copy.
func Diff[T Number](x []T, d int) ([]T, error) {
	if d < 0 {
		return nil, fmt.Errorf("%w: negative differencing order %d", arima.ErrInvalidParameters, d)
	}
	if d >= len(x) {
		return nil, fmt.Errorf("%w: cannot difference %d observations %d times", arima.ErrInsufficientData, len(x), d)
	}
	out := make([]T, len(x))
	copy(out, x)
	for k := 0; k < d; k++ {
		for t := 0; t < len(out)-1; t++ {
			out[t] = out[t+1] - out[t]
		}
		out = out[:len(out)-1]
	}
	return out, nil
}

// Invert reverses d differencing steps. seeds must hold the d leading values
// of the original undifferenced series; the reconstruction is then exact:
// Invert(Diff(x, d), d, x[:d]) equals x up to floating-point rounding, and
// exactly for integer element types.
func Invert[T Number](x []T, d int, seeds []T) ([]T, error) {
	if d < 0 {
		return nil, fmt.Errorf("%w: negative differencing order %d", arima.ErrInvalidParameters, d)
	}
	if len(seeds) != d {
		return nil, fmt.Errorf("%w: got %d seed values, need %d", arima.ErrInvalidParameters, len(seeds), d)
	}

	// heads[k] is the first value of the series after k differencing steps,
	// recovered by differencing the seeds themselves.
	heads := make([]T, d)
	lvl := make([]T, d)
	copy(lvl, seeds)
	for k := 0; k < d; k++ {
		heads[k] = lvl[0]
		for t := 0; t < len(lvl)-1; t++ {
			lvl[t] = lvl[t+1] - lvl[t]
		}
		lvl = lvl[:len(lvl)-1]
	}

	out := make([]T, len(x))
	copy(out, x)
	for k := d - 1; k >= 0; k-- {
		restored := make([]T, len(out)+1)
		restored[0] = heads[k]
		for t, v := range out {
			restored[t+1] = restored[t] + v
		}
		out = restored
	}
	return out, nil
}

// DiffInv integrates d times with zero starting values, prepending one zero
// per step: Diff(DiffInv(x, d), d) returns x. It is the zero-seeded
// counterpart of Invert. d <= 0 returns a copy.
func DiffInv[T Number](x []T, d int) []T {
	cum := make([]T, len(x))
	copy(cum, x)
	out := make([]T, 0, len(x)+max(d, 0))
	for k := 0; k < d; k++ {
		out = append(out, 0)
		cum = CumSum(cum)
	}
	return append(out, cum...)
}

// CumSum returns the running sum of x.
func CumSum[T Number](x []T) []T {
	out := make([]T, len(x))
	var acc T
	for i, v := range x {
		acc += v
		out[i] = acc
	}
	return out
}

// Lag drops the first k observations, aligning the remainder with the
// series lagged by k.
func Lag[T Number](x []T, k int) ([]T, error) {
	if k < 0 {
		return nil, fmt.Errorf("%w: negative lag %d", arima.ErrInvalidParameters, k)
	}
	if k >= len(x) {
		return nil, fmt.Errorf("%w: lag %d with %d observations", arima.ErrInsufficientData, k, len(x))
	}
	out := make([]T, len(x)-k)
	copy(out, x[k:])
	return out, nil
}

// LogDiff returns the one-step differences of the natural logarithms, the
// continuously compounded change series. Non-positive inputs produce
// non-finite outputs.
func LogDiff(x []float64) []float64 {
	if len(x) < 2 {
		return nil
	}
	out := make([]float64, len(x)-1)
	for i := 1; i < len(x); i++ {
		out[i-1] = math.Log(x[i]) - math.Log(x[i-1])
	}
	return out
}

// Center subtracts the sample mean from every observation, returning the
// centered copy together with the mean.
func Center(x []float64) ([]float64, float64) {
	mean := stat.Mean(x, nil)
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = v - mean
	}
	return out, mean
}
