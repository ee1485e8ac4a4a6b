package rocketrel

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Constraint texts are part of the diagnostic contract; callers match on
// them when building user-facing messages. Do not reword.
const (
	gammaConstraint = "gamma must be > 1 and < 1.8"
	rsConstraint    = "Specific gas constant must be > 0"
	t0Constraint    = "Stagnation temperature must be > 0"
	peP0Constraint  = "ratio_pe_p0 must be in [0, 1)"
	paP0Constraint  = "ratio_pa_p0 must be in [0, 1)"
	areaConstraint  = "ratio_Ae_Astar must be >= 1"
)

// SolveCstar computes the characteristic velocity c* for a gas, assuming
// ideal-gas, isentropic, adiabatic flow through a choked nozzle.
//
// Inputs (SI units):
//   - gamma: ratio of specific heats, dimensionless, each element in (1, 1.8)
//   - rs: specific gas constant, J/(kg·K), each element > 0
//   - t0: stagnation temperature, K, each element > 0
//
// Shapes broadcast elementwise; the result has the broadcast shape and is
// in m/s:
//
//	c* = sqrt( (1/γ) · ((γ+1)/2)^((γ+1)/(γ−1)) · Rs · T0 )
//
// c* characterizes combustion-chamber energy release and is independent of
// nozzle geometry. Validation is whole-array: a single violating element in
// any input aborts the call (ErrNonNumeric, ErrDomain, or ErrShape) before
// anything is computed.
func SolveCstar(gamma, rs, t0 *Tensor) (*Tensor, error) {
	inputs := []struct {
		arg string
		t   *Tensor
	}{
		{"gamma", gamma},
		{"Rs", rs},
		{"T0", t0},
	}
	for _, in := range inputs {
		if err := checkNumeric(in.arg, in.t); err != nil {
			return nil, err
		}
	}

	if err := checkDomain("gamma", gamma, gammaConstraint, validGamma); err != nil {
		return nil, err
	}
	if err := checkDomain("Rs", rs, rsConstraint, positive); err != nil {
		return nil, err
	}
	if err := checkDomain("T0", t0, t0Constraint, positive); err != nil {
		return nil, err
	}

	return apply(func(args []float64) float64 {
		g, r, temp := args[0], args[1], args[2]
		return math.Sqrt((1 / g) * math.Pow((g+1)/2, (g+1)/(g-1)) * r * temp)
	}, gamma, rs, t0)
}

// SolveCf computes the thrust coefficient C_f for a choked nozzle, the
// dimensionless factor relating thrust to chamber pressure and throat area.
//
// Inputs (dimensionless):
//   - gamma: ratio of specific heats, each element in (1, 1.8)
//   - ratioPeP0: exit to stagnation pressure ratio, each element in [0, 1)
//   - ratioPaP0: ambient to stagnation pressure ratio, each element in [0, 1)
//   - ratioAeAstar: exit to throat area ratio, each element >= 1
//
// Shapes broadcast elementwise; the result has the broadcast shape:
//
//	Cf = sqrt( (2γ²/(γ−1)) · (2/(γ+1))^((γ+1)/(γ−1)) · (1 − (pe/p0)^((γ−1)/γ)) )
//	     + (pe/p0 − pa/p0) · Ae/A*
//
// The radicand is non-negative for every in-domain input, so the result is
// never NaN. Cf itself can go negative for a heavily overexpanded nozzle
// (ambient pressure term dominating); that is returned as-is, not as an
// error.
func SolveCf(gamma, ratioPeP0, ratioPaP0, ratioAeAstar *Tensor) (*Tensor, error) {
	inputs := []struct {
		arg string
		t   *Tensor
	}{
		{"gamma", gamma},
		{"ratio_pe_p0", ratioPeP0},
		{"ratio_pa_p0", ratioPaP0},
		{"ratio_Ae_Astar", ratioAeAstar},
	}
	for _, in := range inputs {
		if err := checkNumeric(in.arg, in.t); err != nil {
			return nil, err
		}
	}

	if err := checkDomain("gamma", gamma, gammaConstraint, validGamma); err != nil {
		return nil, err
	}
	if err := checkDomain("ratio_pe_p0", ratioPeP0, peP0Constraint, unitInterval); err != nil {
		return nil, err
	}
	if err := checkDomain("ratio_pa_p0", ratioPaP0, paP0Constraint, unitInterval); err != nil {
		return nil, err
	}
	if err := checkDomain("ratio_Ae_Astar", ratioAeAstar, areaConstraint, atLeastOne); err != nil {
		return nil, err
	}

	return apply(func(args []float64) float64 {
		g, pe, pa, area := args[0], args[1], args[2], args[3]
		momentum := (2 * g * g / (g - 1)) *
			math.Pow(2/(g+1), (g+1)/(g-1)) *
			(1 - math.Pow(pe, (g-1)/g))
		return math.Sqrt(momentum) + (pe-pa)*area
	}, gamma, ratioPeP0, ratioPaP0, ratioAeAstar)
}

// CstarScalar is SolveCstar for plain float64 inputs.
func CstarScalar(gamma, rs, t0 float64) (float64, error) {
	out, err := SolveCstar(Scalar(gamma), Scalar(rs), Scalar(t0))
	if err != nil {
		return 0, err
	}
	v, _ := out.Float()
	return v, nil
}

// CfScalar is SolveCf for plain float64 inputs.
func CfScalar(gamma, ratioPeP0, ratioPaP0, ratioAeAstar float64) (float64, error) {
	out, err := SolveCf(Scalar(gamma), Scalar(ratioPeP0), Scalar(ratioPaP0), Scalar(ratioAeAstar))
	if err != nil {
		return 0, err
	}
	v, _ := out.Float()
	return v, nil
}

// checkNumeric rejects nil tensors and NaN elements. NaN is the float64
// rendition of "not a number", so it reports as ErrNonNumeric rather than
// a domain violation.
func checkNumeric(arg string, t *Tensor) error {
	if t == nil {
		return nonNumericErr(arg, arg+" must be numeric, got nil")
	}
	if floats.HasNaN(t.data) {
		return nonNumericErr(arg, arg+" must be numeric, got NaN")
	}
	return nil
}

// checkDomain fails with ErrDomain unless every element satisfies pred.
// The predicate must hold for the whole array; no partial evaluation.
func checkDomain(arg string, t *Tensor, constraint string, pred func(float64) bool) error {
	for _, v := range t.data {
		if !pred(v) {
			return domainErr(arg, constraint)
		}
	}
	return nil
}

func validGamma(g float64) bool { return g > 1 && g < 1.8 }

func positive(v float64) bool { return v > 0 }

func unitInterval(v float64) bool { return v >= 0 && v < 1 }

func atLeastOne(v float64) bool { return v >= 1 }
