package rolling

// window is a fixed-capacity ring over float64 observations. get(0) is the
// most recent value; data() returns the content in chronological order.
type window struct {
	vals []float64
	head int
	size int
}

func newWindow(capacity int) *window {
	if capacity <= 0 {
		panic("capacity must be positive")
	}
	return &window{vals: make([]float64, capacity)}
}

func (w *window) push(v float64) {
	w.vals[w.head] = v
	w.head = (w.head + 1) % len(w.vals)
	if w.size < len(w.vals) {
		w.size++
	}
}

func (w *window) get(idx int) float64 {
	if idx < 0 || idx >= w.size {
		panic("index out of range")
	}
	n := len(w.vals)
	return w.vals[((w.head-1-idx)%n+n)%n]
}

func (w *window) full() bool {
	return w.size == len(w.vals)
}

func (w *window) data() []float64 {
	n := len(w.vals)
	out := make([]float64, w.size)
	for i := 0; i < w.size; i++ {
		out[i] = w.vals[((w.head-w.size+i)%n+n)%n]
	}
	return out
}
