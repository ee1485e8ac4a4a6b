package rocketrel

import (
	"fmt"
	"reflect"
)

// Tensor is a fixed-element-type (float64) container with an explicit shape.
// Rank 0 is a scalar. Elements are stored in row-major order.
//
// Tensors are value containers, not linear-algebra objects: the only
// operation this package performs on them is elementwise evaluation under
// broadcasting. Broadcasting follows the usual alignment rules: trailing
// dimensions are aligned, size-1 dimensions stretch, and any other mismatch
// fails with ErrShape.
//
// A Tensor is immutable after construction; constructors copy their input
// and accessors return copies. Safe for unsynchronized concurrent use.
type Tensor struct {
	shape []int
	data  []float64
}

// Scalar wraps a single value as a rank-0 Tensor.
func Scalar(v float64) *Tensor {
	return &Tensor{data: []float64{v}}
}

// Vector wraps values as a rank-1 Tensor of shape (len(v)).
func Vector(v ...float64) *Tensor {
	data := make([]float64, len(v))
	copy(data, v)
	return &Tensor{shape: []int{len(v)}, data: data}
}

// New builds a Tensor with the given shape from row-major data.
// len(data) must equal the product of the dimensions; New with no
// dimensions and exactly one element is equivalent to Scalar.
func New(data []float64, shape ...int) (*Tensor, error) {
	n := 1
	for _, d := range shape {
		if d < 0 {
			return nil, shapeErr(fmt.Sprintf("negative dimension in shape %v", shape))
		}
		n *= d
	}
	if len(data) != n {
		return nil, shapeErr(fmt.Sprintf("shape %v holds %d elements, data has %d", shape, n, len(data)))
	}
	return &Tensor{
		shape: append([]int(nil), shape...),
		data:  append([]float64(nil), data...),
	}, nil
}

// From converts an untyped Go value into a Tensor, checking numeric-ness
// once at this boundary so the solvers never introspect types again.
//
// Accepted: any integer or float scalar, and arbitrarily nested homogeneous
// slices or arrays of them ([]float64, [][]int, []any{1, 2.5}, ...).
// A non-numeric element fails with ErrNonNumeric naming arg; ragged nesting
// fails with ErrShape.
func From(arg string, v any) (*Tensor, error) {
	rv := indirect(reflect.ValueOf(v))
	shape, err := nestedShape(arg, rv)
	if err != nil {
		return nil, err
	}
	n := 1
	for _, d := range shape {
		n *= d
	}
	data, err := flatten(arg, rv, shape, make([]float64, 0, n))
	if err != nil {
		return nil, err
	}
	return &Tensor{shape: shape, data: data}, nil
}

// Shape returns a copy of the dimensions; empty for a scalar.
func (t *Tensor) Shape() []int {
	out := make([]int, len(t.shape))
	copy(out, t.shape)
	return out
}

// Len returns the total number of elements.
func (t *Tensor) Len() int { return len(t.data) }

// IsScalar reports whether t is rank 0.
func (t *Tensor) IsScalar() bool { return len(t.shape) == 0 }

// At returns the i-th element in row-major order.
func (t *Tensor) At(i int) float64 { return t.data[i] }

// Data returns a copy of the elements in row-major order.
func (t *Tensor) Data() []float64 {
	out := make([]float64, len(t.data))
	copy(out, t.data)
	return out
}

// Float returns the value of a rank-0 Tensor. ok is false for higher ranks.
func (t *Tensor) Float() (v float64, ok bool) {
	if !t.IsScalar() {
		return 0, false
	}
	return t.data[0], true
}

func (t *Tensor) String() string {
	if t.IsScalar() {
		return fmt.Sprintf("%g", t.data[0])
	}
	return fmt.Sprintf("Tensor%v%v", t.shape, t.data)
}

// broadcastShape merges two shapes: trailing dimensions aligned, size-1
// dimensions stretched, anything else is an ErrShape failure.
func broadcastShape(a, b []int) ([]int, error) {
	rank := len(a)
	if len(b) > rank {
		rank = len(b)
	}
	out := make([]int, rank)
	for i := 1; i <= rank; i++ {
		da, db := 1, 1
		if i <= len(a) {
			da = a[len(a)-i]
		}
		if i <= len(b) {
			db = b[len(b)-i]
		}
		switch {
		case da == db:
			out[rank-i] = da
		case da == 1:
			out[rank-i] = db
		case db == 1:
			out[rank-i] = da
		default:
			return nil, shapeErr(fmt.Sprintf("cannot broadcast shapes %v and %v", a, b))
		}
	}
	return out, nil
}

// broadcastStrides returns per-dimension strides for indexing t under the
// broadcast shape: zero for stretched or missing leading dimensions.
func broadcastStrides(t *Tensor, shape []int) []int {
	native := make([]int, len(t.shape))
	acc := 1
	for i := len(t.shape) - 1; i >= 0; i-- {
		native[i] = acc
		acc *= t.shape[i]
	}

	strides := make([]int, len(shape))
	offset := len(shape) - len(t.shape)
	for i := offset; i < len(shape); i++ {
		if t.shape[i-offset] != 1 {
			strides[i] = native[i-offset]
		}
	}
	return strides
}

// apply evaluates f elementwise over the broadcast of its operands.
// args passed to f are ordered as the operands are.
func apply(f func(args []float64) float64, ts ...*Tensor) (*Tensor, error) {
	shape := ts[0].shape
	for _, t := range ts[1:] {
		var err error
		if shape, err = broadcastShape(shape, t.shape); err != nil {
			return nil, err
		}
	}

	n := 1
	for _, d := range shape {
		n *= d
	}

	strides := make([][]int, len(ts))
	for k, t := range ts {
		strides[k] = broadcastStrides(t, shape)
	}

	out := make([]float64, n)
	idx := make([]int, len(shape))
	offsets := make([]int, len(ts))
	args := make([]float64, len(ts))
	for i := 0; i < n; i++ {
		for k, t := range ts {
			args[k] = t.data[offsets[k]]
		}
		out[i] = f(args)

		// Advance the row-major multi-index and each operand's offset.
		for d := len(shape) - 1; d >= 0; d-- {
			idx[d]++
			for k := range ts {
				offsets[k] += strides[k][d]
			}
			if idx[d] < shape[d] {
				break
			}
			idx[d] = 0
			for k := range ts {
				offsets[k] -= strides[k][d] * shape[d]
			}
		}
	}
	return &Tensor{shape: shape, data: out}, nil
}

func indirect(rv reflect.Value) reflect.Value {
	for rv.Kind() == reflect.Interface || rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return rv
		}
		rv = rv.Elem()
	}
	return rv
}

// nestedShape derives the shape of a nested slice/array value from its
// first elements. Raggedness is caught later by flatten.
func nestedShape(arg string, rv reflect.Value) ([]int, error) {
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Len() == 0 {
			return []int{0}, nil
		}
		inner, err := nestedShape(arg, indirect(rv.Index(0)))
		if err != nil {
			return nil, err
		}
		return append([]int{rv.Len()}, inner...), nil
	default:
		if _, ok := toFloat(rv); !ok {
			return nil, nonNumericErr(arg, fmt.Sprintf("%s must be numeric, got %s", arg, kindName(rv)))
		}
		return nil, nil
	}
}

// flatten appends rv's elements to out in row-major order, verifying every
// level against the derived shape.
func flatten(arg string, rv reflect.Value, shape []int, out []float64) ([]float64, error) {
	if len(shape) == 0 {
		v, ok := toFloat(rv)
		if !ok {
			return nil, nonNumericErr(arg, fmt.Sprintf("%s must be numeric, got %s", arg, kindName(rv)))
		}
		return append(out, v), nil
	}
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, shapeErr(fmt.Sprintf("%s is ragged: scalar where a length-%d dimension was expected", arg, shape[0]))
	}
	if rv.Len() != shape[0] {
		return nil, shapeErr(fmt.Sprintf("%s is ragged: got length %d, expected %d", arg, rv.Len(), shape[0]))
	}
	for i := 0; i < rv.Len(); i++ {
		var err error
		if out, err = flatten(arg, indirect(rv.Index(i)), shape[1:], out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func toFloat(rv reflect.Value) (float64, bool) {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

func kindName(rv reflect.Value) string {
	if !rv.IsValid() {
		return "nil"
	}
	return rv.Type().String()
}
