package estimate

import (
	"errors"
	"math"
	"testing"

	"github.com/krfricke/arima"
	"github.com/krfricke/arima/series"
)

// Draw from an AR(3) process; residuals and fit targets below were
// cross-checked against R's arima() with method="CSS".
var ar3Series = []float64{
	149.8228533548, 86.8388399871, 42.3116899484, 76.6796578536,
	60.3665347774, 66.7733563129, -5.1144504108, 14.0294086329,
	76.2517878809, 121.2898170491, 74.65663878, 69.9331198692,
	46.7476543397, 26.2225173663, -32.0638217183, 2.8335240789,
	31.5182582874, 76.4827451823, 36.6122657518, -33.430444607,
}

func TestResidualsARMA(t *testing.T) {
	x := []float64{1.0, 1.2, 1.4, 1.6}
	res, err := Residuals(x, 0.0, []float64{0.6, 0.4}, []float64{0.3})
	if err != nil {
		t.Fatalf("Residuals: %v", err)
	}

	// e_2 = 1.4 - (0.6*1.2 + 0.4*1.0)          = 0.28
	// e_3 = 1.6 - (0.6*1.4 + 0.4*1.2 + 0.3*e_2) = 0.196
	want := []float64{0, 0, 0.28, 0.196}
	if len(res) != len(want) {
		t.Fatalf("Residuals length = %d, want %d", len(res), len(want))
	}
	for i := range want {
		if math.Abs(res[i]-want[i]) > 1e-7 {
			t.Errorf("res[%d] = %.7f, want %.7f", i, res[i], want[i])
		}
	}
}

func TestResidualsAR3(t *testing.T) {
	y, _ := series.Center(ar3Series)
	intercept := -5.954353
	phi := []float64{0.67715294, -0.44171525, 0.08249936}

	want := []float64{
		0.0, 0.0, 0.0, 46.2603808, -7.7972931, 28.510325, -57.7569706,
		14.2417414, 31.2183008, 48.5090956, -2.716499, 38.8984537,
		-5.402662, -8.4669355, -62.7063041, 4.5063279, -14.4924325,
		31.271378, -29.2554603, -54.8047308,
	}

	res, err := Residuals(y, intercept, phi, nil)
	if err != nil {
		t.Fatalf("Residuals: %v", err)
	}
	if len(res) != len(want) {
		t.Fatalf("Residuals length = %d, want %d", len(res), len(want))
	}
	for i := range want {
		// Reference residuals come from R's arima() at print precision.
		if math.Abs(res[i]-want[i]) > 1e-3 {
			t.Errorf("res[%d] = %.7f, want %.7f", i, res[i], want[i])
		}
	}
}

func TestResidualsInterceptOnly(t *testing.T) {
	x := []float64{2, 3, 4}
	res, err := Residuals(x, 1.5, nil, nil)
	if err != nil {
		t.Fatalf("Residuals: %v", err)
	}
	want := []float64{0.5, 1.5, 2.5}
	for i := range want {
		if res[i] != want[i] {
			t.Errorf("res[%d] = %g, want %g", i, res[i], want[i])
		}
	}
}

func TestResidualsBoundaries(t *testing.T) {
	tests := []struct {
		name  string
		x     []float64
		phi   []float64
		theta []float64
		want  error
	}{
		{name: "series equals lags", x: []float64{1, 2}, phi: []float64{0.5, 0.2}, want: arima.ErrInsufficientData},
		{name: "ma lags dominate", x: []float64{1, 2}, theta: []float64{0.5, 0.2, 0.1}, want: arima.ErrInsufficientData},
		{name: "empty series", x: nil, want: arima.ErrInsufficientData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Residuals(tt.x, 0, tt.phi, tt.theta); !errors.Is(err, tt.want) {
				t.Errorf("Residuals error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestResidualsOverflow(t *testing.T) {
	// A non-invertible MA coefficient compounds the residual recursion by
	// |theta| each step until it overflows; the engine must stop with
	// ErrNumericalInstability instead of returning infinities.
	x := make([]float64, 720)
	for i := range x {
		x[i] = 1.0
	}
	if _, err := Residuals(x, 0, nil, []float64{3.0}); !errors.Is(err, arima.ErrNumericalInstability) {
		t.Errorf("Residuals(explosive MA) error = %v, want ErrNumericalInstability", err)
	}
}

func TestCSS(t *testing.T) {
	x := []float64{1.0, 1.2, 1.4, 1.6}
	css, err := CSS(x, 0.0, []float64{0.6, 0.4}, []float64{0.3})
	if err != nil {
		t.Fatalf("CSS: %v", err)
	}
	want := 0.28*0.28 + 0.196*0.196
	if math.Abs(css-want) > 1e-12 {
		t.Errorf("CSS = %.12f, want %.12f", css, want)
	}

	longOnes := make([]float64, 720)
	for i := range longOnes {
		longOnes[i] = 1.0
	}
	if _, err := CSS(longOnes, 0, nil, []float64{3.0}); !errors.Is(err, arima.ErrNumericalInstability) {
		t.Errorf("CSS(explosive MA) error = %v, want ErrNumericalInstability", err)
	}
}
