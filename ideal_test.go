package rocketrel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// Reference values tabulated from the standard ideal nozzle relations
// (Sutton & Biblarz, Rocket Propulsion Elements).
func TestSolveCstar_Scalar(t *testing.T) {
	got, err := CstarScalar(1.2, 350, 3500)
	require.NoError(t, err)

	AssertCloseRel(t, got, 1706.6214, DefaultAssertionConfig())
}

func TestSolveCf_Scalar(t *testing.T) {
	got, err := CfScalar(1.2, 0.0125, 0.02, 10)
	require.NoError(t, err)

	AssertCloseRel(t, got, 1.5423079, DefaultAssertionConfig())
}

// TestSolveCstar_Vector verifies elementwise evaluation matches the scalar
// path for each element.
func TestSolveCstar_Vector(t *testing.T) {
	gammas := []float64{1.2, 1.3}
	rss := []float64{350, 300}
	t0s := []float64{3500, 3200}

	out, err := SolveCstar(Vector(gammas...), Vector(rss...), Vector(t0s...))
	require.NoError(t, err)

	want := make([]float64, len(gammas))
	for i := range gammas {
		want[i], err = CstarScalar(gammas[i], rss[i], t0s[i])
		require.NoError(t, err)
	}
	AssertAllCloseRel(t, out, []int{2}, want, DefaultAssertionConfig())
}

// TestSolveCstar_Broadcast combines a vector gamma with scalar Rs and T0;
// the scalars stretch to the vector's shape.
func TestSolveCstar_Broadcast(t *testing.T) {
	gammas := []float64{1.15, 1.25, 1.35}

	out, err := SolveCstar(Vector(gammas...), Scalar(350), Scalar(3500))
	require.NoError(t, err)

	want := make([]float64, len(gammas))
	for i, g := range gammas {
		want[i], err = CstarScalar(g, 350, 3500)
		require.NoError(t, err)
	}
	AssertAllCloseRel(t, out, []int{3}, want, DefaultAssertionConfig())
}

// TestSolveCstar_BroadcastMatrix stretches a (2,1) gamma against a (3,) Rs
// into a (2,3) result.
func TestSolveCstar_BroadcastMatrix(t *testing.T) {
	gamma, err := New([]float64{1.2, 1.3}, 2, 1)
	require.NoError(t, err)

	rss := []float64{300, 350, 400}
	out, err := SolveCstar(gamma, Vector(rss...), Scalar(3500))
	require.NoError(t, err)

	var want []float64
	for _, g := range []float64{1.2, 1.3} {
		for _, rs := range rss {
			v, err := CstarScalar(g, rs, 3500)
			require.NoError(t, err)
			want = append(want, v)
		}
	}
	AssertAllCloseRel(t, out, []int{2, 3}, want, DefaultAssertionConfig())
}

func TestSolveCf_AreaRatioSweep(t *testing.T) {
	areas := []float64{2, 4, 6, 8, 10}

	out, err := SolveCf(Scalar(1.2), Scalar(0.0125), Scalar(0.02), Vector(areas...))
	require.NoError(t, err)

	want := make([]float64, len(areas))
	for i, a := range areas {
		want[i], err = CfScalar(1.2, 0.0125, 0.02, a)
		require.NoError(t, err)
	}
	AssertAllCloseRel(t, out, []int{5}, want, DefaultAssertionConfig())
}

func TestSolveCstar_DomainErrors(t *testing.T) {
	tests := []struct {
		name       string
		gamma      float64
		rs         float64
		t0         float64
		wantArg    string
		wantDetail string
	}{
		{"gamma too low", 0.9, 350, 3500, "gamma", "gamma must be > 1 and < 1.8"},
		{"gamma at lower bound", 1.0, 350, 3500, "gamma", "gamma must be > 1 and < 1.8"},
		{"gamma at upper bound", 1.8, 350, 3500, "gamma", "gamma must be > 1 and < 1.8"},
		{"gamma too high", 2.5, 350, 3500, "gamma", "gamma must be > 1 and < 1.8"},
		{"gamma infinite", math.Inf(1), 350, 3500, "gamma", "gamma must be > 1 and < 1.8"},
		{"Rs zero", 1.2, 0, 3500, "Rs", "Specific gas constant must be > 0"},
		{"Rs negative", 1.2, -287, 3500, "Rs", "Specific gas constant must be > 0"},
		{"T0 zero", 1.2, 350, 0, "T0", "Stagnation temperature must be > 0"},
		{"T0 negative", 1.2, 350, -5, "T0", "Stagnation temperature must be > 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CstarScalar(tt.gamma, tt.rs, tt.t0)
			AssertFailsWith(t, err, ErrDomain, tt.wantArg)

			var ie *InputError
			require.ErrorAs(t, err, &ie)
			require.Equal(t, tt.wantDetail, ie.Detail)
		})
	}
}

func TestSolveCf_DomainErrors(t *testing.T) {
	tests := []struct {
		name    string
		gamma   float64
		pe      float64
		pa      float64
		area    float64
		wantArg string
	}{
		{"gamma too low", 0.9, 0.0125, 0.02, 10, "gamma"},
		{"gamma too high", 1.9, 0.0125, 0.02, 10, "gamma"},
		{"pe ratio at one", 1.2, 1.0, 0.02, 10, "ratio_pe_p0"},
		{"pe ratio above one", 1.2, 1.2, 0.02, 10, "ratio_pe_p0"},
		{"pe ratio negative", 1.2, -0.1, 0.02, 10, "ratio_pe_p0"},
		{"pa ratio above one", 1.2, 0.0125, 1.5, 10, "ratio_pa_p0"},
		{"pa ratio negative", 1.2, 0.0125, -0.2, 10, "ratio_pa_p0"},
		{"area ratio below one", 1.2, 0.0125, 0.02, 0.5, "ratio_Ae_Astar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CfScalar(tt.gamma, tt.pe, tt.pa, tt.area)
			AssertFailsWith(t, err, ErrDomain, tt.wantArg)
		})
	}
}

// TestValidationOrder verifies the first violated constraint in declaration
// order is the one reported when several inputs are bad at once.
func TestValidationOrder(t *testing.T) {
	_, err := CstarScalar(0.9, -1, -1)
	AssertFailsWith(t, err, ErrDomain, "gamma")

	_, err = CfScalar(1.2, 1.5, 1.5, 0.5)
	AssertFailsWith(t, err, ErrDomain, "ratio_pe_p0")

	_, err = CfScalar(1.2, 0.0125, 1.5, 0.5)
	AssertFailsWith(t, err, ErrDomain, "ratio_pa_p0")
}

// Whole-array validation: one bad element anywhere aborts the call.
func TestSolveCstar_WholeArrayValidation(t *testing.T) {
	_, err := SolveCstar(Vector(1.2, 0.9, 1.3), Scalar(350), Scalar(3500))
	AssertFailsWith(t, err, ErrDomain, "gamma")

	_, err = SolveCstar(Vector(1.2, 1.3), Vector(350, -1), Scalar(3500))
	AssertFailsWith(t, err, ErrDomain, "Rs")
}

func TestSolveCstar_NonNumeric(t *testing.T) {
	_, err := SolveCstar(nil, Scalar(350), Scalar(3500))
	AssertFailsWith(t, err, ErrNonNumeric, "gamma")

	_, err = SolveCstar(Scalar(1.2), Vector(350, math.NaN()), Scalar(3500))
	AssertFailsWith(t, err, ErrNonNumeric, "Rs")

	_, err = SolveCf(Scalar(1.2), Scalar(math.NaN()), Scalar(0.02), Scalar(10))
	AssertFailsWith(t, err, ErrNonNumeric, "ratio_pe_p0")
}

func TestSolveCstar_ShapeMismatch(t *testing.T) {
	_, err := SolveCstar(Vector(1.2, 1.3), Vector(300, 350, 400), Scalar(3500))
	AssertFailsWith(t, err, ErrShape, "")
}

// An infinite stagnation temperature is unbounded above and in-domain; the
// infinity flows through to the result.
func TestSolveCstar_InfiniteT0(t *testing.T) {
	got, err := CstarScalar(1.2, 350, math.Inf(1))
	require.NoError(t, err)
	require.True(t, math.IsInf(got, 1))
}

// Empty inputs pass validation vacuously and produce an empty result.
func TestSolveCstar_Empty(t *testing.T) {
	out, err := SolveCstar(Vector(), Scalar(350), Scalar(3500))
	require.NoError(t, err)
	require.Equal(t, []int{0}, out.Shape())
	require.Zero(t, out.Len())
}

// Deep overexpansion makes Cf itself negative; that is a value, not an error.
func TestSolveCf_NegativeForDeepOverexpansion(t *testing.T) {
	got, err := CfScalar(1.2, 0.0, 0.9, 100)
	require.NoError(t, err)
	require.False(t, math.IsNaN(got))
	require.Negative(t, got)
}

// Repeated calls with identical inputs are bit-identical.
func TestDeterminism(t *testing.T) {
	a, err := CstarScalar(1.2345, 321, 2987)
	require.NoError(t, err)
	b, err := CstarScalar(1.2345, 321, 2987)
	require.NoError(t, err)
	require.Equal(t, a, b)

	c, err := CfScalar(1.2345, 0.013, 0.021, 12.5)
	require.NoError(t, err)
	d, err := CfScalar(1.2345, 0.013, 0.021, 12.5)
	require.NoError(t, err)
	require.Equal(t, c, d)
}
