package core

import "testing"

func TestRNGDeterminism(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)

	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("RNGs with the same seed diverged at step %d", i)
		}
	}
	if a.State() != b.State() {
		t.Error("State() should match after identical sequences")
	}
}

func TestRNGZeroSeed(t *testing.T) {
	r := NewRNG(0)
	if r.State() != 1 {
		t.Errorf("zero seed should be remapped to 1, got %d", r.State())
	}
}

func TestRNGIntnRange(t *testing.T) {
	r := NewRNG(7)
	seen := make(map[int]bool)

	for i := 0; i < 1000; i++ {
		v := r.Intn(5)
		if v < 0 || v >= 5 {
			t.Fatalf("Intn(5) = %d, out of range", v)
		}
		seen[v] = true
	}
	if len(seen) != 5 {
		t.Errorf("Intn(5) should produce all values over 1000 draws, saw %d", len(seen))
	}

	if r.Intn(0) != 0 || r.Intn(-3) != 0 {
		t.Error("Intn with non-positive n should return 0")
	}
}

func TestRNGFloatAndChance(t *testing.T) {
	r := NewRNG(99)
	hits := 0

	for i := 0; i < 10000; i++ {
		f := r.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("Float64() = %f, out of range", f)
		}
		if r.Chance(0.5) {
			hits++
		}
	}
	if hits < 4500 || hits > 5500 {
		t.Errorf("Chance(0.5) hit %d/10000 times, expected about half", hits)
	}

	if r.Chance(0) {
		t.Error("Chance(0) should never be true")
	}
	if !r.Chance(1) {
		t.Error("Chance(1) should always be true")
	}
}
