package arima

import "fmt"

// Order is the (p,d,q) specification of an ARIMA model.
type Order struct {
	P int // autoregressive lags
	D int // differencing steps
	Q int // moving-average lags
}

func (o Order) Validate() error {
	if o.P < 0 || o.D < 0 || o.Q < 0 {
		return fmt.Errorf("%w: order (%d,%d,%d) has a negative component", ErrInvalidParameters, o.P, o.D, o.Q)
	}
	return nil
}

// MaxPQ returns max(p,q), the number of start-up observations the
// conditional residual recursion skips and the simulator burns in.
func (o Order) MaxPQ() int {
	if o.P > o.Q {
		return o.P
	}
	return o.Q
}

// NumParams returns the number of free coefficients estimated for the
// order: intercept, p AR terms and q MA terms.
func (o Order) NumParams() int { return 1 + o.P + o.Q }

func (o Order) String() string { return fmt.Sprintf("ARIMA(%d,%d,%d)", o.P, o.D, o.Q) }

// Parameters holds the coefficients of an ARIMA model on the differenced
// scale. Estimation routines return it fully populated; simulation and
// forecasting consume it without mutating it.
type Parameters struct {
	Intercept float64
	AR        []float64
	MA        []float64
	Variance  float64 // innovation variance
}

// Validate checks the coefficient slices against the declared order.
func (p Parameters) Validate(o Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if len(p.AR) != o.P {
		return fmt.Errorf("%w: %d AR coefficients for order p=%d", ErrInvalidParameters, len(p.AR), o.P)
	}
	if len(p.MA) != o.Q {
		return fmt.Errorf("%w: %d MA coefficients for order q=%d", ErrInvalidParameters, len(p.MA), o.Q)
	}
	if p.Variance < 0 {
		return fmt.Errorf("%w: negative innovation variance %g", ErrInvalidParameters, p.Variance)
	}
	return nil
}
