package cast

import (
	"errors"
	"fmt"
	"math"

	"go.dw1.io/safemath"
)

var (
	// ErrRange is returned by Checked when a float does not fit the target
	// exactly (NaN, infinite, fractional or out of range).
	ErrRange = errors.New("cast: value out of range")
	// ErrImaginary is returned by Checked when a complex value with a non-zero
	// imaginary part is cast to a non-complex kind.
	ErrImaginary = errors.New("cast: imaginary part would be discarded")
)

// Checked converts v to type T like [To], but reports conversions that would
// lose information instead of truncating silently. Integer narrowing goes
// through [safemath.ConvertAny] and surfaces its errors (for instance
// [safemath.ErrTruncation]) unchanged.
//
// Precision loss between float widths is not an error; overflow to infinity
// is.
func Checked[T, F Number](v F) (T, error) {
	var zero T
	src := load(v)
	to := KindOf[T]()

	if src.complex && !to.IsComplex() && src.im != 0 {
		return zero, fmt.Errorf("%w: %v to %s", ErrImaginary, v, to)
	}

	switch any(zero).(type) {
	case int8:
		return checkedInt[T, int8](src)
	case int16:
		return checkedInt[T, int16](src)
	case int32:
		return checkedInt[T, int32](src)
	case int64:
		return checkedInt[T, int64](src)
	case uint8:
		return checkedInt[T, uint8](src)
	case uint16:
		return checkedInt[T, uint16](src)
	case uint32:
		return checkedInt[T, uint32](src)
	case uint64:
		return checkedInt[T, uint64](src)
	case float32, complex64:
		if overflowsFloat32(src.f) || (src.complex && overflowsFloat32(src.im)) {
			return zero, fmt.Errorf("%w: %v to %s", ErrRange, v, to)
		}
	}
	return store[T](src), nil
}

// checkedInt narrows src to the integer type I using safemath and re-types the
// result as T (which is the caller's type parameter).
func checkedInt[T any, I safemath.Integer](src value) (T, error) {
	var zero T

	var (
		converted I
		err       error
	)
	switch src.cls {
	case classBool:
		converted, err = safemath.ConvertAny[I](boolToInt(src.b))
	case classInt:
		converted, err = safemath.ConvertAny[I](src.i)
	case classUint:
		converted, err = safemath.ConvertAny[I](src.u)
	default:
		converted, err = floatToInt[I](src.f)
	}
	if err != nil {
		return zero, err
	}
	return any(converted).(T), nil
}

// floatToInt accepts only finite, integral floats and then defers the width
// check to safemath.
func floatToInt[I safemath.Integer](f float64) (I, error) {
	var zero I
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Trunc(f) != f {
		return zero, fmt.Errorf("%w: %v is not an integer", ErrRange, f)
	}

	var (
		out I
		err error
	)
	switch {
	case f >= -(1<<63) && f < 1<<63:
		out, err = safemath.ConvertAny[I](int64(f))
	case f >= 0 && f < 1<<64:
		out, err = safemath.ConvertAny[I](uint64(f))
	default:
		return zero, fmt.Errorf("%w: %v", ErrRange, f)
	}
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrRange, err)
	}
	return out, nil
}

func overflowsFloat32(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f) && math.Abs(f) > math.MaxFloat32
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
