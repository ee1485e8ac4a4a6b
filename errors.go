package rocketrel

import (
	"errors"
	"fmt"
)

// Validation failure kinds. Every error returned by this package wraps
// exactly one of these sentinels.
var (
	// ErrNonNumeric indicates an input that is not numeric: an unsupported
	// Go type at the From boundary, or a NaN element in a Tensor.
	ErrNonNumeric = errors.New("rocketrel: input is not numeric")

	// ErrDomain indicates an input element outside its physical domain.
	ErrDomain = errors.New("rocketrel: input outside physical domain")

	// ErrShape indicates shapes that cannot be broadcast together.
	ErrShape = errors.New("rocketrel: shapes are not broadcast-compatible")
)

// InputError reports which argument failed validation and why.
//
// Test the kind with errors.Is and recover the argument name with errors.As:
//
//	_, err := rocketrel.SolveCstar(gamma, rs, t0)
//	if errors.Is(err, rocketrel.ErrDomain) {
//	    var ie *rocketrel.InputError
//	    errors.As(err, &ie)
//	    log.Printf("bad %s: %v", ie.Arg, ie)
//	}
type InputError struct {
	Arg    string // argument name as documented: "gamma", "Rs", "ratio_pe_p0", ...
	Err    error  // ErrNonNumeric, ErrDomain, or ErrShape
	Detail string // human-readable constraint, e.g. "gamma must be > 1 and < 1.8"
}

func (e *InputError) Error() string {
	switch {
	case e.Detail == "":
		return fmt.Sprintf("%s: %v", e.Arg, e.Err)
	case e.Arg == "":
		return e.Detail
	default:
		return fmt.Sprintf("%s: %s", e.Arg, e.Detail)
	}
}

func (e *InputError) Unwrap() error { return e.Err }

func nonNumericErr(arg, detail string) error {
	return &InputError{Arg: arg, Err: ErrNonNumeric, Detail: detail}
}

func domainErr(arg, constraint string) error {
	return &InputError{Arg: arg, Err: ErrDomain, Detail: constraint}
}

func shapeErr(detail string) error {
	return &InputError{Err: ErrShape, Detail: detail}
}
