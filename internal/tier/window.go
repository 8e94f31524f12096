package tier

// window is a bounded rolling sample: once full, each new sample overwrites
// the oldest one. Guarded by the Manager's mutex.
type window struct {
	samples []float64
	next    int
	count   int
}

func newWindow(size int) *window {
	if size <= 0 {
		size = 1
	}
	return &window{samples: make([]float64, size)}
}

func (w *window) add(v float64) {
	w.samples[w.next] = v
	w.next = (w.next + 1) % len(w.samples)
	if w.count < len(w.samples) {
		w.count++
	}
}

func (w *window) average() float64 {
	if w.count == 0 {
		return 0
	}
	var sum float64
	for i := 0; i < w.count; i++ {
		sum += w.samples[i]
	}
	return sum / float64(w.count)
}

func (w *window) reset() {
	w.next = 0
	w.count = 0
}
