package synth

import "testing"

func TestRing_PushAndEvict(t *testing.T) {
	r := newRing[int](3)
	if r.len() != 0 {
		t.Fatalf("len() = %d, want 0", r.len())
	}
	for i := 1; i <= 5; i++ {
		r.push(i)
	}
	if r.len() != 3 {
		t.Fatalf("len() = %d, want 3", r.len())
	}
	got := r.snapshot()
	want := []int{3, 4, 5}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("snapshot()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestRing_Partial(t *testing.T) {
	r := newRing[int](4)
	r.push(7)
	r.push(8)
	if r.at(0) != 7 || r.at(1) != 8 {
		t.Errorf("at(0), at(1) = %d, %d, want 7, 8", r.at(0), r.at(1))
	}
}

func TestRing_Reset(t *testing.T) {
	r := newRing[int](2)
	r.push(1)
	r.push(2)
	r.push(3)
	r.reset()
	if r.len() != 0 {
		t.Errorf("len() after reset = %d, want 0", r.len())
	}
	r.push(9)
	if got := r.snapshot(); len(got) != 1 || got[0] != 9 {
		t.Errorf("snapshot() after reset = %v, want [9]", got)
	}
}

func TestRing_MinimumCapacity(t *testing.T) {
	r := newRing[int](0)
	r.push(1)
	r.push(2)
	if r.len() != 1 || r.at(0) != 2 {
		t.Errorf("capacity-0 ring = %v, want [2]", r.snapshot())
	}
}

func BenchmarkRing_Push(b *testing.B) {
	r := newRing[float64](DefaultBufferSize)
	for i := 0; i < b.N; i++ {
		r.push(float64(i))
	}
}
