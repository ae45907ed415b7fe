package arima

import "errors"

// Error kinds shared by all subpackages. Call sites wrap these with
// fmt.Errorf("...: %w", ...) so errors.Is works across package boundaries.
var (
	// ErrInsufficientData indicates a series shorter than the requested
	// lag, order or differencing depth.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrInvalidParameters indicates an out-of-domain argument, such as a
	// negative order or a coefficient slice whose length disagrees with
	// the declared order.
	ErrInvalidParameters = errors.New("invalid parameters")

	// ErrNonConvergence indicates the optimizer exhausted its iteration
	// budget before meeting its tolerances.
	ErrNonConvergence = errors.New("estimation did not converge")

	// ErrNumericalInstability indicates a non-finite intermediate or
	// final value.
	ErrNumericalInstability = errors.New("numerical instability")
)
