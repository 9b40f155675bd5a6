package biquad

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-smooth/dsp/filter"
	"github.com/cwbudde/algo-smooth/internal/testutil"
	"github.com/golang/geo/r3"
)

const eps = 1e-12

var _ filter.Filter[float64] = (*Filter[float64])(nil)

func TestLowpassUnityDCGain(t *testing.T) {
	cases := []struct{ fc, q, fs float64 }{
		{10, 0.5, 1000},
		{100, 0.5, 1000},
		{440, 0.5, 48000},
		{1000, 1 / math.Sqrt2, 48000},
		{4000, 2, 48000},
		{20000, 0.5, 96000},
	}

	for _, tc := range cases {
		c, err := Lowpass(tc.fc, tc.q, tc.fs)
		if err != nil {
			t.Fatalf("Lowpass(%v, %v, %v) = %v", tc.fc, tc.q, tc.fs, err)
		}

		num := c.B0 + c.B1 + c.B2
		den := 1 + c.A1 + c.A2

		if math.Abs(num-den) > eps {
			t.Fatalf("fc=%v q=%v fs=%v: B0+B1+B2 = %v, 1+A1+A2 = %v", tc.fc, tc.q, tc.fs, num, den)
		}
	}
}

func TestLowpassCoefficientShape(t *testing.T) {
	c, err := Lowpass(100, 0.5, 1000)
	if err != nil {
		t.Fatal(err)
	}

	if c.B2 != c.B0 {
		t.Fatalf("B2 = %v, want B0 = %v", c.B2, c.B0)
	}

	if c.B1 != 2*c.B0 {
		t.Fatalf("B1 = %v, want 2*B0 = %v", c.B1, 2*c.B0)
	}

	// Spot-check against the formula directly.
	k := math.Tan(math.Pi * 100 / 1000)
	denom := k*k + k/0.5 + 1

	if math.Abs(c.B0-k*k/denom) > eps {
		t.Fatalf("B0 = %v, want %v", c.B0, k*k/denom)
	}

	if math.Abs(c.A2-(k*k-k/0.5+1)/denom) > eps {
		t.Fatalf("A2 = %v, want %v", c.A2, (k*k-k/0.5+1)/denom)
	}
}

func TestLowpassInvalid(t *testing.T) {
	cases := []struct {
		name      string
		fc, q, fs float64
		want      error
	}{
		{"zero cutoff", 0, 0.5, 1000, filter.ErrInvalidCutoff},
		{"zero sample rate", 100, 0.5, 0, filter.ErrInvalidSampleRate},
		{"cutoff at nyquist", 500, 0.5, 1000, filter.ErrCutoffAboveNyquist},
		{"zero q", 100, 0, 1000, filter.ErrInvalidQ},
		{"negative q", 100, -2, 1000, filter.ErrInvalidQ},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Lowpass(tc.fc, tc.q, tc.fs); !errors.Is(err, tc.want) {
				t.Fatalf("Lowpass(%v, %v, %v) = %v, want %v", tc.fc, tc.q, tc.fs, err, tc.want)
			}
		})
	}
}

func TestSetCutoffDefaultQ(t *testing.T) {
	a, err := NewScalar(100, 1000)
	if err != nil {
		t.Fatal(err)
	}

	b, err := NewWithCutoffQ[float64](filter.ScalarSpace{}, 100, 1000, 0.5)
	if err != nil {
		t.Fatal(err)
	}

	if a.Coefficients != b.Coefficients {
		t.Fatalf("default-Q coefficients %+v differ from explicit Q=0.5 %+v", a.Coefficients, b.Coefficients)
	}
}

func TestSetCutoffIdempotent(t *testing.T) {
	f, err := NewScalar(250, 48000)
	if err != nil {
		t.Fatal(err)
	}

	c1 := f.Coefficients

	if err := f.SetCutoff(250, 48000); err != nil {
		t.Fatal(err)
	}

	if f.Coefficients != c1 {
		t.Fatalf("reconfiguration changed coefficients: %+v vs %+v", c1, f.Coefficients)
	}
}

func TestSetCutoffErrorKeepsCoefficients(t *testing.T) {
	f, err := NewScalar(100, 1000)
	if err != nil {
		t.Fatal(err)
	}

	c1 := f.Coefficients

	if err := f.SetCutoffWithQ(100, 1000, -1); !errors.Is(err, filter.ErrInvalidQ) {
		t.Fatalf("SetCutoffWithQ error = %v, want ErrInvalidQ", err)
	}

	if f.Coefficients != c1 {
		t.Fatalf("coefficients changed after rejected arguments")
	}
}

func TestProcessDirectFormI(t *testing.T) {
	// Hand-traced DF-I impulse response with fixed coefficients:
	// B0=0.25, B1=0.5, B2=0.25, A1=-0.2, A2=0.04, x = [1, 0, 0, 0]:
	//
	// n=0: y = 0.25*1                          = 0.25
	// n=1: y = 0.5*1 + 0.2*0.25                = 0.55
	// n=2: y = 0.25*1 + 0.2*0.55 - 0.04*0.25   = 0.35
	// n=3: y = 0.2*0.35 - 0.04*0.55            = 0.048
	f := New[float64](filter.ScalarSpace{})
	f.Coefficients = Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}

	want := []float64{0.25, 0.55, 0.35, 0.048}
	for i, w := range want {
		var x float64
		if i == 0 {
			x = 1
		}

		if y := f.Process(x); math.Abs(y-w) > eps {
			t.Fatalf("sample %d: got %.15f, want %.15f", i, y, w)
		}
	}
}

func TestSetValueFullReset(t *testing.T) {
	f, err := NewScalar(100, 1000)
	if err != nil {
		t.Fatal(err)
	}

	// Disturb the history, then reset.
	for _, x := range testutil.DeterministicNoise(9, 1.0, 32) {
		f.Process(x)
	}

	const v = 1.25

	f.SetValue(v)

	if got := f.Value(); got != v {
		t.Fatalf("Value() = %v, want %v", got, v)
	}

	st := f.State()
	if st.Y1 != v || st.Y2 != v || st.X1 != v || st.X2 != v {
		t.Fatalf("history not fully reset: %+v", st)
	}

	// With unity DC gain and fully seeded history, the filter is settled.
	for i := range 8 {
		if y := f.Process(v); math.Abs(y-v) > eps {
			t.Fatalf("step %d after reset: %v, want %v", i, y, v)
		}
	}
}

func TestStepResponseSettlesWithoutOvershoot(t *testing.T) {
	// Q = 0.5 critically damps the filter: the step response must not
	// exceed the target.
	f, err := NewScalar(10, 1000)
	if err != nil {
		t.Fatal(err)
	}

	var y float64
	for i := range 5000 {
		y = f.Process(1)
		if y > 1+eps {
			t.Fatalf("step %d: output %v overshoots 1", i, y)
		}
	}

	if math.Abs(y-1) > 1e-9 {
		t.Fatalf("step response settled at %v, want 1", y)
	}
}

func TestStepResponseOvershootsWithHighQ(t *testing.T) {
	// A resonant filter must overshoot; this pins down that DefaultQ is
	// what suppresses it.
	f, err := NewWithCutoffQ[float64](filter.ScalarSpace{}, 10, 1000, 2)
	if err != nil {
		t.Fatal(err)
	}

	overshot := false
	for range 5000 {
		if f.Process(1) > 1+eps {
			overshot = true
			break
		}
	}

	if !overshot {
		t.Fatal("Q=2 step response never overshot")
	}
}

func TestProcessBlockMatchesProcess(t *testing.T) {
	input := testutil.DeterministicNoise(4, 1.0, 256)

	f1, err := NewScalar(440, 48000)
	if err != nil {
		t.Fatal(err)
	}

	want := make([]float64, len(input))
	for i, x := range input {
		want[i] = f1.Process(x)
	}

	f2, _ := NewScalar(440, 48000)
	got := make([]float64, len(input))
	copy(got, input)
	f2.ProcessBlock(got)

	testutil.RequireSliceNearlyEqual(t, got, want, 0)
}

func TestProcessBlockToMatchesProcess(t *testing.T) {
	input := testutil.DeterministicNoise(4, 1.0, 256)

	f1, err := NewScalar(440, 48000)
	if err != nil {
		t.Fatal(err)
	}

	want := make([]float64, len(input))
	for i, x := range input {
		want[i] = f1.Process(x)
	}

	f2, _ := NewScalar(440, 48000)
	got := make([]float64, len(input))
	if err := f2.ProcessBlockTo(got, input); err != nil {
		t.Fatal(err)
	}

	testutil.RequireSliceNearlyEqual(t, got, want, 0)

	f3, _ := NewScalar(440, 48000)
	if err := f3.ProcessBlockTo(make([]float64, 4), input); !errors.Is(err, filter.ErrLengthMismatch) {
		t.Fatalf("mismatched lengths: err = %v, want ErrLengthMismatch", err)
	}
}

func TestVector3MatchesScalarPerComponent(t *testing.T) {
	fv, err := NewVector3(50, 1000)
	if err != nil {
		t.Fatal(err)
	}

	if got := fv.Value(); got != (r3.Vector{}) {
		t.Fatalf("initial value = %v, want zero vector", got)
	}

	fx, _ := NewScalar(50, 1000)
	fy, _ := NewScalar(50, 1000)
	fz, _ := NewScalar(50, 1000)

	inputs := []r3.Vector{
		{X: 1, Y: -2, Z: 0.5},
		{X: 0.2, Y: 3, Z: -1},
		{X: -4, Y: 0, Z: 2.5},
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 1, Z: 1},
	}

	for i, v := range inputs {
		got := fv.Process(v)
		want := r3.Vector{X: fx.Process(v.X), Y: fy.Process(v.Y), Z: fz.Process(v.Z)}

		if math.Abs(got.X-want.X) > eps || math.Abs(got.Y-want.Y) > eps || math.Abs(got.Z-want.Z) > eps {
			t.Fatalf("sample %d: got %v, want %v", i, got, want)
		}
	}
}
