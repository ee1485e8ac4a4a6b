package rocketrel

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

// AssertionConfig contains tolerances for nozzle-relation checks.
type AssertionConfig struct {
	// Relative tolerance for value comparison
	RelTol float64
}

// DefaultAssertionConfig returns the tolerance the reference data sets were
// tabulated at.
func DefaultAssertionConfig() AssertionConfig {
	return AssertionConfig{
		RelTol: 1e-7,
	}
}

// AssertCloseRel verifies got matches want within cfg.RelTol.
func AssertCloseRel(t *testing.T, got, want float64, cfg AssertionConfig) {
	t.Helper()

	if !scalar.EqualWithinRel(got, want, cfg.RelTol) {
		t.Errorf("value mismatch: got %.10g, want %.10g (rtol: %g)", got, want, cfg.RelTol)
	}
}

// AssertAllCloseRel verifies got has the expected shape and matches want
// elementwise within cfg.RelTol.
func AssertAllCloseRel(t *testing.T, got *Tensor, wantShape []int, want []float64, cfg AssertionConfig) {
	t.Helper()

	if got == nil {
		t.Fatalf("got nil Tensor")
	}

	gotShape := got.Shape()
	if len(gotShape) != len(wantShape) {
		t.Fatalf("shape mismatch: got %v, want %v", gotShape, wantShape)
	}
	for i := range wantShape {
		if gotShape[i] != wantShape[i] {
			t.Fatalf("shape mismatch: got %v, want %v", gotShape, wantShape)
		}
	}

	if got.Len() != len(want) {
		t.Fatalf("length mismatch: got %d elements, want %d", got.Len(), len(want))
	}
	for i, w := range want {
		if !scalar.EqualWithinRel(got.At(i), w, cfg.RelTol) {
			t.Errorf("element %d mismatch: got %.10g, want %.10g (rtol: %g)", i, got.At(i), w, cfg.RelTol)
		}
	}
}

// AssertFailsWith verifies err wraps the expected kind sentinel and names
// the expected argument. Pass arg "" to skip the name check (shape failures
// carry no argument).
func AssertFailsWith(t *testing.T, err, kind error, arg string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected failure wrapping %v, got nil", kind)
	}
	if !errors.Is(err, kind) {
		t.Fatalf("expected failure wrapping %v, got: %v", kind, err)
	}

	var ie *InputError
	if !errors.As(err, &ie) {
		t.Fatalf("expected *InputError, got %T: %v", err, err)
	}
	if arg != "" && ie.Arg != arg {
		t.Errorf("failure names argument %q, want %q (err: %v)", ie.Arg, arg, err)
	}
}
