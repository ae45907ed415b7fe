package rolling

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/krfricke/arima"
	"github.com/krfricke/arima/sim"
)

func TestModelLifecycle(t *testing.T) {
	const windowSize = 50

	rng := rand.New(rand.NewPCG(31, 2))
	x, err := sim.ARIMA(windowSize, []float64{0.6}, nil, 0, sim.Normal(0, 1), rng)
	if err != nil {
		t.Fatalf("sim.ARIMA: %v", err)
	}

	m, err := New(1, 0, 0, windowSize)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for i, v := range x[:windowSize-1] {
		m.Add(v)
		if m.Ready() {
			t.Fatalf("Ready after %d of %d observations", i+1, windowSize)
		}
	}
	if m.Estimated() {
		t.Fatal("Estimated before the window filled")
	}
	if _, err := m.Params(); !errors.Is(err, ErrNotEstimated) {
		t.Errorf("Params error = %v, want ErrNotEstimated", err)
	}
	if _, err := m.Forecast(3); !errors.Is(err, ErrNotEstimated) {
		t.Errorf("Forecast error = %v, want ErrNotEstimated", err)
	}

	m.Add(x[windowSize-1])
	if !m.Ready() {
		t.Fatal("not Ready after the window filled")
	}
	if !m.Estimated() {
		t.Fatal("not Estimated after the window filled")
	}

	params, err := m.Params()
	if err != nil {
		t.Fatalf("Params: %v", err)
	}
	if math.Abs(params.AR[0]-0.6) > 0.4 {
		t.Errorf("phi = %.4f, want 0.6 within a wide n=50 tolerance", params.AR[0])
	}

	fc, err := m.Forecast(5)
	if err != nil {
		t.Fatalf("Forecast: %v", err)
	}
	if len(fc.Values) != 5 {
		t.Errorf("forecast length = %d, want 5", len(fc.Values))
	}
}

func TestModelRefitEvery(t *testing.T) {
	// With p=d=q=0 the fit reduces to the window mean, so refit timing shows
	// up directly in the intercept.
	m, err := New(0, 0, 0, 4, WithRefitEvery(3))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for i := 0; i < 4; i++ {
		m.Add(1)
	}
	params, err := m.Params()
	if err != nil {
		t.Fatalf("Params: %v", err)
	}
	if math.Abs(params.Intercept-1) > 1e-4 {
		t.Fatalf("intercept = %v, want 1 after the first fit", params.Intercept)
	}

	// Two more observations stay inside the refit interval.
	m.Add(9)
	m.Add(9)
	params, _ = m.Params()
	if math.Abs(params.Intercept-1) > 1e-4 {
		t.Errorf("intercept = %v, want stale value 1 before the interval elapses", params.Intercept)
	}

	// The third observation triggers a refit over window [1,9,9,9].
	m.Add(9)
	params, _ = m.Params()
	if math.Abs(params.Intercept-7) > 1e-4 {
		t.Errorf("intercept = %v, want 7 after refit", params.Intercept)
	}
}

func TestModelRefitFailureKeepsEstimate(t *testing.T) {
	m, err := New(0, 0, 0, 3)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	m.Add(2)
	m.Add(2)
	m.Add(2)
	if !m.Estimated() {
		t.Fatal("not Estimated after the window filled")
	}

	// A NaN in the window makes the next fit fail; the previous estimate
	// must survive.
	m.Add(math.NaN())
	if !m.Estimated() {
		t.Fatal("lost the estimate after a failed refit")
	}
	params, err := m.Params()
	if err != nil {
		t.Fatalf("Params: %v", err)
	}
	if math.Abs(params.Intercept-2) > 1e-4 {
		t.Errorf("intercept = %v, want retained value 2", params.Intercept)
	}
}

func TestModelRefitBeforeFull(t *testing.T) {
	m, err := New(1, 0, 0, 10)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	m.Add(1)
	m.Add(2)

	if err := m.Refit(); !errors.Is(err, arima.ErrInsufficientData) {
		t.Errorf("Refit error = %v, want ErrInsufficientData", err)
	}
}

func TestModelNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		p, d, q int
		window  int
	}{
		{name: "window equals minimum", p: 2, d: 1, q: 0, window: 3},
		{name: "zero window", p: 0, d: 0, q: 0, window: 0},
		{name: "negative order", p: -1, d: 0, q: 0, window: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.p, tt.d, tt.q, tt.window); !errors.Is(err, arima.ErrInvalidParameters) {
				t.Errorf("New error = %v, want ErrInvalidParameters", err)
			}
		})
	}
}
