package window

import (
	"math"
	"testing"
)

const tolerance = 1e-12

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestGenerate_Rectangular(t *testing.T) {
	out := Generate(TypeRectangular, 8)
	for i, v := range out {
		if v != 1 {
			t.Errorf("sample %d: got %g, want 1", i, v)
		}
	}
}

func TestGenerate_Hann(t *testing.T) {
	n := 9
	out := Generate(TypeHann, n)

	for i, v := range out {
		want := 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
		if !almostEqual(v, want, tolerance) {
			t.Errorf("sample %d: got %g, want %g", i, v, want)
		}
	}

	// Symmetric form: zero at both edges, unity at the midpoint.
	if !almostEqual(out[0], 0, tolerance) || !almostEqual(out[n-1], 0, tolerance) {
		t.Error("hann edges must be zero")
	}
	if !almostEqual(out[n/2], 1, tolerance) {
		t.Errorf("hann midpoint: got %g, want 1", out[n/2])
	}
}

func TestGenerate_Hamming(t *testing.T) {
	n := 16
	out := Generate(TypeHamming, n)

	for i, v := range out {
		want := 0.54 - 0.46*math.Cos(2*math.Pi*float64(i)/float64(n-1))
		if !almostEqual(v, want, tolerance) {
			t.Errorf("sample %d: got %g, want %g", i, v, want)
		}
	}

	// Hamming does not reach zero at the edges.
	if !almostEqual(out[0], 0.08, tolerance) {
		t.Errorf("hamming edge: got %g, want 0.08", out[0])
	}
}

func TestGenerate_Blackman(t *testing.T) {
	n := 32
	out := Generate(TypeBlackman, n)

	for i, v := range out {
		x := float64(i) / float64(n-1)
		want := 0.42 - 0.5*math.Cos(2*math.Pi*x) + 0.08*math.Cos(4*math.Pi*x)
		if !almostEqual(v, want, tolerance) {
			t.Errorf("sample %d: got %g, want %g", i, v, want)
		}
	}
}

func TestGenerate_Symmetry(t *testing.T) {
	for _, typ := range []Type{TypeHann, TypeHamming, TypeBlackman} {
		out := Generate(typ, 64)
		for i := range out {
			j := len(out) - 1 - i
			if !almostEqual(out[i], out[j], tolerance) {
				t.Errorf("%v: asymmetry at %d: %g != %g", typ, i, out[i], out[j])
			}
		}
	}
}

func TestGenerate_Periodic(t *testing.T) {
	n := 8
	out := Generate(TypeHann, n, WithPeriodic())
	for i, v := range out {
		want := 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n)))
		if !almostEqual(v, want, tolerance) {
			t.Errorf("sample %d: got %g, want %g", i, v, want)
		}
	}
}

func TestGenerate_Degenerate(t *testing.T) {
	if out := Generate(TypeHann, 0); out != nil {
		t.Errorf("zero length should yield nil: got %v", out)
	}
	if out := Generate(TypeHann, -3); out != nil {
		t.Errorf("negative length should yield nil: got %v", out)
	}
	if out := Generate(TypeHann, 1); len(out) != 1 || out[0] != 0 {
		// Single sample sits at x=0, which the Hann taper maps to 0.
		t.Errorf("single sample hann: got %v", out)
	}
}

func TestApply(t *testing.T) {
	buf := []float64{1, 1, 1, 1, 1}
	Apply(TypeHann, buf)

	want := Generate(TypeHann, 5)
	for i := range buf {
		if !almostEqual(buf[i], want[i], tolerance) {
			t.Errorf("sample %d: got %g, want %g", i, buf[i], want[i])
		}
	}
}

func TestApply_RectangularIsIdentity(t *testing.T) {
	buf := []float64{3, -1, 2}
	Apply(TypeRectangular, buf)

	want := []float64{3, -1, 2}
	for i := range buf {
		if buf[i] != want[i] {
			t.Errorf("sample %d: got %g, want %g", i, buf[i], want[i])
		}
	}
}

func TestApplyCoefficients(t *testing.T) {
	out, err := ApplyCoefficients([]float64{2, 3}, []float64{0.5, 2})
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(out[0], 1, tolerance) || !almostEqual(out[1], 6, tolerance) {
		t.Errorf("got %v, want [1 6]", out)
	}

	if _, err := ApplyCoefficients([]float64{1}, []float64{1, 2}); err == nil {
		t.Error("mismatched lengths should error")
	}
}

func TestNamedConstructors(t *testing.T) {
	for _, tc := range []struct {
		name string
		fn   func(int, ...Option) ([]float64, error)
		typ  Type
	}{
		{"hann", Hann, TypeHann},
		{"hamming", Hamming, TypeHamming},
		{"blackman", Blackman, TypeBlackman},
	} {
		out, err := tc.fn(17)
		if err != nil {
			t.Errorf("%s: unexpected error %v", tc.name, err)
		}
		want := Generate(tc.typ, 17)
		for i := range want {
			if out[i] != want[i] {
				t.Errorf("%s: sample %d differs", tc.name, i)
			}
		}

		if _, err := tc.fn(0); err == nil {
			t.Errorf("%s: zero size should error", tc.name)
		}
	}
}
