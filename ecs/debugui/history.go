package debugui

// history is a fixed-size ring of samples for plotting.
type history struct {
	samples []float32
	next    int
	count   int
}

func newHistory(size int) history {
	return history{samples: make([]float32, max(size, 1))}
}

func (h *history) Push(v float32) {
	h.samples[h.next] = v
	h.next = (h.next + 1) % len(h.samples)
	h.count = min(h.count+1, len(h.samples))
}

// Average is the mean of the recorded samples, 0 when there are none.
func (h *history) Average() float32 {
	if h.count == 0 {
		return 0
	}
	var sum float32
	for _, v := range h.samples[:h.count] {
		sum += v
	}
	return sum / float32(h.count)
}

func (h *history) Max() float32 {
	var m float32
	for _, v := range h.samples[:h.count] {
		m = max(m, v)
	}
	return m
}

// Ordered returns the samples oldest first.
func (h *history) Ordered() []float32 {
	if h.count < len(h.samples) {
		return append([]float32(nil), h.samples[:h.count]...)
	}
	out := make([]float32, 0, len(h.samples))
	out = append(out, h.samples[h.next:]...)
	return append(out, h.samples[:h.next]...)
}
