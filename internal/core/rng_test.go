package core

import "testing"

func TestRNGSeedRepeats(t *testing.T) {
	r := NewRNG(42)
	first := []float64{r.Float64(), r.Float64(), r.Signed()}
	r.Seed(42)
	again := []float64{r.Float64(), r.Float64(), r.Signed()}
	for i := range first {
		if first[i] != again[i] {
			t.Fatalf("draw %d: %v != %v after reseed", i, first[i], again[i])
		}
	}
	for i := 0; i < 100; i++ {
		if v := r.Signed(); v < -1 || v >= 1 {
			t.Fatalf("signed draw out of range: %v", v)
		}
	}
}
