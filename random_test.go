package bluenoise

import (
	"math"
	"testing"
)

func TestRandomSourceRanges(t *testing.T) {
	src := NewRandomSource(1)

	for i := 0; i < 1000; i++ {
		if n := src.UniformIndex(7); n < 0 || n >= 7 {
			t.Fatalf("UniformIndex(7) = %d", n)
		}
		if v := src.UniformFloat(10, 20); v < 10 || v >= 20 {
			t.Fatalf("UniformFloat(10, 20) = %v", v)
		}
		u := src.UnitVector()
		if l := math.Hypot(u.X, u.Y); math.Abs(l-1) > 1e-9 {
			t.Fatalf("UnitVector() = %v has length %v", u, l)
		}
	}
}

func TestRandomSourceSeeded(t *testing.T) {
	a := NewRandomSource(99)
	b := NewRandomSource(99)
	for i := 0; i < 10; i++ {
		if a.UniformFloat(0, 1) != b.UniformFloat(0, 1) {
			t.Fatal("same seed should give the same sequence")
		}
	}
}
