// Package rocketrel computes ideal nozzle flow relations for rocket engines.
//
// # Overview
//
// rocketrel evaluates two closed-form quantities for ideal-gas, isentropic,
// adiabatic flow through a converging-diverging nozzle:
//
//   - c* (characteristic velocity): combustion-chamber energy release
//     efficiency, independent of nozzle geometry
//   - C_f (thrust coefficient): nozzle expansion efficiency, relating
//     thrust to chamber pressure and throat area
//
// Both are pure functions: validate inputs, evaluate one algebraic formula,
// return. There is no state, no configuration, and no I/O.
//
// # Quick Start
//
// Scalar inputs in SI units:
//
//	cstar, err := rocketrel.CstarScalar(1.2, 350, 3500)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("c* = %.1f m/s\n", cstar) // c* = 1706.6 m/s
//
//	cf, err := rocketrel.CfScalar(1.2, 0.0125, 0.02, 10)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Cf = %.4f\n", cf) // Cf = 1.5423
//
// # The Formulas
//
// Characteristic velocity, with γ the ratio of specific heats, Rs the
// specific gas constant and T0 the stagnation temperature:
//
//	c* = sqrt( (1/γ) · ((γ+1)/2)^((γ+1)/(γ−1)) · Rs · T0 )
//
// Thrust coefficient, with pe/p0 and pa/p0 the exit and ambient pressure
// ratios and Ae/A* the nozzle area ratio:
//
//	Cf = sqrt( (2γ²/(γ−1)) · (2/(γ+1))^((γ+1)/(γ−1)) · (1 − (pe/p0)^((γ−1)/γ)) )
//	     + (pe/p0 − pa/p0) · Ae/A*
//
// # Tensors and Broadcasting
//
// Array inputs go through the Tensor container, which evaluates the
// formulas elementwise under broadcasting (trailing dimensions aligned,
// size-1 dimensions stretched):
//
//	// c* for two gases at once
//	out, err := rocketrel.SolveCstar(
//	    rocketrel.Vector(1.2, 1.3),
//	    rocketrel.Vector(350, 300),
//	    rocketrel.Vector(3500, 3200),
//	)
//
//	// One gas across a sweep of area ratios: scalars broadcast
//	cf, err := rocketrel.SolveCf(
//	    rocketrel.Scalar(1.2),
//	    rocketrel.Scalar(0.0125),
//	    rocketrel.Scalar(0.02),
//	    rocketrel.Vector(2, 4, 6, 8, 10),
//	)
//
// Callers holding untyped data (decoded JSON, spreadsheet cells) convert it
// once at the boundary:
//
//	gamma, err := rocketrel.From("gamma", raw) // fails if raw is non-numeric
//
// # Validation
//
// Physical domains, enforced elementwise before any computation:
//
//   - gamma in (1, 1.8)
//   - Rs > 0 and T0 > 0
//   - pressure ratios in [0, 1)
//   - area ratio >= 1
//
// Validation is whole-array: one violating element anywhere aborts the call
// and nothing is computed. Checks run in a fixed order per function, so the
// first violated constraint is the one reported.
//
// # Errors
//
// Every failure wraps one of three sentinels:
//
//   - ErrNonNumeric: a value is not numeric (unsupported type at the From
//     boundary, or a NaN element)
//   - ErrDomain: an element is outside its physical domain
//   - ErrShape: input shapes cannot be broadcast together
//
// Inspect with errors.Is / errors.As; InputError carries the argument name.
//
// One deliberate gap: a heavily overexpanded nozzle (ambient pressure term
// dominating) can make C_f itself negative with every input still
// in-domain. SolveCf returns that value as-is instead of an error.
//
// # Concurrency
//
// All functions are pure and all inputs immutable; every call is
// independent and safe for unsynchronized concurrent use.
//
// # See Also
//
//   - examples/propellant-sweep - c* and C_f across a propellant gas table
package rocketrel
