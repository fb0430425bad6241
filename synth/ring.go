package synth

// ring is a fixed-capacity sliding window. Once full, each push overwrites
// the oldest entry at the cursor.
type ring[T any] struct {
	buf  []T
	next int // index the next push writes to
	full bool
}

func newRing[T any](capacity int) *ring[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &ring[T]{buf: make([]T, capacity)}
}

// push appends v, evicting the oldest entry when the window is full.
func (r *ring[T]) push(v T) {
	r.buf[r.next] = v
	r.next++
	if r.next == len(r.buf) {
		r.next = 0
		r.full = true
	}
}

// len returns the number of stored entries.
func (r *ring[T]) len() int {
	if r.full {
		return len(r.buf)
	}
	return r.next
}

// at returns the i-th entry counting from the oldest.
func (r *ring[T]) at(i int) T {
	if r.full {
		return r.buf[(r.next+i)%len(r.buf)]
	}
	return r.buf[i]
}

// reset empties the window without reallocating.
func (r *ring[T]) reset() {
	clear(r.buf)
	r.next = 0
	r.full = false
}

// snapshot copies the entries oldest-first.
func (r *ring[T]) snapshot() []T {
	out := make([]T, r.len())
	for i := range out {
		out[i] = r.at(i)
	}
	return out
}
