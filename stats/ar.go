package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/krfricke/arima"
)

// AR fits an autoregressive model of the given order to x by solving the
// Yule-Walker equations with the Durbin-Levinson recursion. It returns the
// coefficients and the implied innovation variance
// v_p = c_0 * prod(1 - phi_kk^2). Order 0 returns no coefficients and the
// lag-0 autocovariance as variance.
func AR(x []float64, order int) ([]float64, float64, error) {
	if order < 0 {
		return nil, 0, fmt.Errorf("%w: negative AR order %d", arima.ErrInvalidParameters, order)
	}
	if order >= len(x) {
		return nil, 0, fmt.Errorf("%w: AR order %d with %d observations", arima.ErrInsufficientData, order, len(x))
	}
	cov, err := Acovf(x, order)
	if err != nil {
		return nil, 0, err
	}
	rho, err := normalize(cov)
	if err != nil {
		return nil, 0, err
	}
	phi, _, vRatio, err := levinson(rho, order)
	if err != nil {
		return nil, 0, err
	}
	return phi, cov[0] * vRatio, nil
}

// levinson runs the Durbin-Levinson recursion on the autocorrelations rho
// (lags 0..order). It returns the order-p coefficient row, the recursion
// diagonal phi_kk for k=1..order, and the variance ratio
// prod_k (1 - phi_kk^2) relating the innovation variance to the lag-0
// autocovariance.
func levinson(rho []float64, order int) (phi, diag []float64, vRatio float64, err error) {
	phi = make([]float64, order)
	diag = make([]float64, order)
	vRatio = 1.0
	if order == 0 {
		return phi, diag, vRatio, nil
	}

	phi[0] = rho[1]
	diag[0] = rho[1]
	vRatio = 1 - rho[1]*rho[1]

	prev := make([]float64, order)
	for k := 2; k <= order; k++ {
		if vRatio == 0 || math.IsNaN(vRatio) {
			return nil, nil, 0, fmt.Errorf("%w: Durbin-Levinson variance vanished at order %d", arima.ErrNumericalInstability, k-1)
		}
		copy(prev, phi[:k-1])

		refl := rho[k]
		for j := 1; j < k; j++ {
			refl -= prev[j-1] * rho[k-j]
		}
		refl /= vRatio
		if math.IsInf(refl, 0) || math.IsNaN(refl) {
			return nil, nil, 0, fmt.Errorf("%w: non-finite reflection coefficient at order %d", arima.ErrNumericalInstability, k)
		}

		for j := 1; j < k; j++ {
			phi[j-1] = prev[j-1] - refl*prev[k-1-j]
		}
		phi[k-1] = refl
		diag[k-1] = refl
		vRatio *= 1 - refl*refl
	}
	return phi, diag, vRatio, nil
}

// ToeplitzSolver solves the Yule-Walker system R*phi = r, where R is the
// symmetric Toeplitz matrix R[i][j] = acov[|i-j|] and r[i] = acov[i+1].
// ARSolve accepts any implementation; the recursion inside AR never builds
// the matrix and is the default path.
type ToeplitzSolver interface {
	Solve(acov []float64) ([]float64, error)
}

// CholeskySolver is a dense ToeplitzSolver backed by a Cholesky
// factorization.
type CholeskySolver struct{}

func (CholeskySolver) Solve(acov []float64) ([]float64, error) {
	n := len(acov) - 1
	if n < 1 {
		return nil, fmt.Errorf("%w: need autocovariances beyond lag 0", arima.ErrInvalidParameters)
	}

	r := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			r.SetSym(i, j, acov[j-i])
		}
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(r); !ok {
		return nil, fmt.Errorf("%w: autocovariance matrix is not positive definite", arima.ErrNumericalInstability)
	}

	rhs := mat.NewVecDense(n, append([]float64(nil), acov[1:]...))
	var sol mat.VecDense
	if err := chol.SolveVecTo(&sol, rhs); err != nil {
		return nil, fmt.Errorf("%w: Yule-Walker solve failed: %v", arima.ErrNumericalInstability, err)
	}

	phi := make([]float64, n)
	copy(phi, sol.RawVector().Data)
	return phi, nil
}

// ARSolve fits an autoregressive model like AR but delegates the Yule-Walker
// solve to the supplied backend. The variance follows from the solved
// coefficients as c_0 - sum(phi_j * c_j), which agrees with AR's recursive
// update on an exact solution.
func ARSolve(x []float64, order int, solver ToeplitzSolver) ([]float64, float64, error) {
	if solver == nil {
		return nil, 0, fmt.Errorf("%w: nil solver", arima.ErrInvalidParameters)
	}
	if order < 0 {
		return nil, 0, fmt.Errorf("%w: negative AR order %d", arima.ErrInvalidParameters, order)
	}
	if order >= len(x) {
		return nil, 0, fmt.Errorf("%w: AR order %d with %d observations", arima.ErrInsufficientData, order, len(x))
	}
	cov, err := Acovf(x, order)
	if err != nil {
		return nil, 0, err
	}
	if order == 0 {
		return []float64{}, cov[0], nil
	}

	phi, err := solver.Solve(cov)
	if err != nil {
		return nil, 0, err
	}
	variance := cov[0]
	for j, c := range phi {
		variance -= c * cov[j+1]
	}
	return phi, variance, nil
}
