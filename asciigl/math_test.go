package asciigl

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestNormalizeUnitLength(t *testing.T) {
	for _, v := range []Vec3{V3(3, 4, 12), V3(0, 1, -1), V3(-0.001, 0, 0), V3(1e3, -2e3, 5)} {
		n := Normalize(v)
		if l := Len(n); math32.Abs(l-1) > 1e-5 {
			t.Fatalf("Len(Normalize(%v))=%v, want 1", v, l)
		}
	}
}

func TestNormalizeZeroUnchanged(t *testing.T) {
	var v Vec3
	if got := Normalize(v); got != (Vec3{}) {
		t.Fatalf("Normalize(zero)=%v", got)
	}
	v.Normalize()
	if v != (Vec3{}) {
		t.Fatalf("in-place Normalize(zero)=%v", v)
	}
	for _, c := range []Scalar{v.X, v.Y, v.Z} {
		if math32.IsNaN(c) {
			t.Fatalf("NaN component after zero normalize")
		}
	}
}

func TestNormalizeInPlace(t *testing.T) {
	v := V3(0, 0, 2)
	v.Normalize()
	if v != V3(0, 0, 1) {
		t.Fatalf("got %v", v)
	}
}
