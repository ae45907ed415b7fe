package stats

import (
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// IsStationary reports whether the AR polynomial 1 - phi_1*z - ... - phi_p*z^p
// has all roots strictly outside the unit circle, so the coefficients
// describe a stationary causal process. Zero-length input is stationary.
func IsStationary(phi []float64) bool {
	return rootsOutsideUnitCircle(phi)
}

// IsInvertible reports the same root condition for the MA polynomial
// 1 + theta_1*z + ... + theta_q*z^q, under which residuals can be recovered
// from observations.
func IsInvertible(theta []float64) bool {
	neg := make([]float64, len(theta))
	for i, c := range theta {
		neg[i] = -c
	}
	return rootsOutsideUnitCircle(neg)
}

// rootsOutsideUnitCircle checks the roots of 1 - c_1*z - ... - c_p*z^p via
// the companion matrix of the reversed polynomial: its eigenvalues are the
// inverse roots, so all must lie strictly inside the unit circle.
func rootsOutsideUnitCircle(coef []float64) bool {
	// Trim zero leading-order terms so the companion matrix stays minimal.
	p := len(coef)
	for p > 0 && coef[p-1] == 0 {
		p--
	}
	if p == 0 {
		return true
	}

	a := mat.NewDense(p, p, nil)
	for j := 0; j < p; j++ {
		a.Set(0, j, coef[j])
	}
	for i := 1; i < p; i++ {
		a.Set(i, i-1, 1)
	}

	var eig mat.Eigen
	if ok := eig.Factorize(a, mat.EigenNone); !ok {
		return false
	}
	for _, v := range eig.Values(nil) {
		if cmplx.Abs(v) >= 1 {
			return false
		}
	}
	return true
}
