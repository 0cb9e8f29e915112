package cast

// class is the representation a source value is loaded into before it is
// stored as the target type. Integers stay integers so that integer to float
// conversions round once, straight from the source.
type class uint8

const (
	classBool class = iota
	classInt
	classUint
	classFloat
)

// value is a source number in its widest exact form. Float32 widens to
// float64 exactly, so going through float64 never changes a result.
type value struct {
	cls     class
	b       bool
	i       int64
	u       uint64
	f       float64
	im      float64
	complex bool
}

// To converts v to type T. It is total and never fails.
//
//   - complex to non-complex keeps the real part only;
//   - complex to complex converts the real and imaginary parts element-wise;
//   - real to complex yields (To(v), 0);
//   - bool converts to 1 or 0, and any number converts to bool as v != 0;
//   - everything else is Go's native conversion, so out-of-range float to
//     integer results are implementation-defined, as in a conversion
//     expression.
func To[T, F Number](v F) T {
	return store[T](load(v))
}

func load[F Number](v F) value {
	switch x := any(v).(type) {
	case bool:
		return value{cls: classBool, b: x}
	case int8:
		return value{cls: classInt, i: int64(x)}
	case int16:
		return value{cls: classInt, i: int64(x)}
	case int32:
		return value{cls: classInt, i: int64(x)}
	case int64:
		return value{cls: classInt, i: x}
	case uint8:
		return value{cls: classUint, u: uint64(x)}
	case uint16:
		return value{cls: classUint, u: uint64(x)}
	case uint32:
		return value{cls: classUint, u: uint64(x)}
	case uint64:
		return value{cls: classUint, u: x}
	case float32:
		return value{cls: classFloat, f: float64(x)}
	case float64:
		return value{cls: classFloat, f: x}
	case Extended:
		return value{cls: classFloat, f: float64(x)}
	case complex64:
		return value{cls: classFloat, f: float64(real(x)), im: float64(imag(x)), complex: true}
	case complex128:
		return value{cls: classFloat, f: real(x), im: imag(x), complex: true}
	case ExtendedComplex:
		return value{cls: classFloat, f: real(x), im: imag(x), complex: true}
	}
	return value{}
}

// imag returns the imaginary part as a real value of the same width.
func (v value) imag() value {
	return value{cls: classFloat, f: v.im}
}

func (v value) truth() bool {
	switch v.cls {
	case classBool:
		return v.b
	case classInt:
		return v.i != 0
	case classUint:
		return v.u != 0
	default:
		return v.f != 0
	}
}

func toSigned[I signed](v value) I {
	switch v.cls {
	case classBool:
		if v.b {
			return 1
		}
		return 0
	case classInt:
		return I(v.i)
	case classUint:
		return I(v.u)
	default:
		return I(v.f)
	}
}

func toUnsigned[U unsigned](v value) U {
	switch v.cls {
	case classBool:
		if v.b {
			return 1
		}
		return 0
	case classInt:
		return U(v.i)
	case classUint:
		return U(v.u)
	default:
		return U(v.f)
	}
}

func toFloat[F floating](v value) F {
	switch v.cls {
	case classBool:
		if v.b {
			return 1
		}
		return 0
	case classInt:
		return F(v.i)
	case classUint:
		return F(v.u)
	default:
		return F(v.f)
	}
}

func store[T Number](v value) T {
	var out any
	switch any(*new(T)).(type) {
	case bool:
		out = v.truth()
	case int8:
		out = toSigned[int8](v)
	case int16:
		out = toSigned[int16](v)
	case int32:
		out = toSigned[int32](v)
	case int64:
		out = toSigned[int64](v)
	case uint8:
		out = toUnsigned[uint8](v)
	case uint16:
		out = toUnsigned[uint16](v)
	case uint32:
		out = toUnsigned[uint32](v)
	case uint64:
		out = toUnsigned[uint64](v)
	case float32:
		out = toFloat[float32](v)
	case float64:
		out = toFloat[float64](v)
	case Extended:
		out = Extended(toFloat[float64](v))
	case complex64:
		out = complex(toFloat[float32](v), toFloat[float32](v.imag()))
	case complex128:
		out = complex(toFloat[float64](v), toFloat[float64](v.imag()))
	case ExtendedComplex:
		out = ExtendedComplex(complex(toFloat[float64](v), toFloat[float64](v.imag())))
	}
	return out.(T)
}
