package cast

import (
	"fmt"
	"strings"
)

// Kind identifies a numeric representation.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindBool
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindExtended
	KindComplex64
	KindComplex128
	KindExtendedComplex

	numKinds
)

var kindNames = [numKinds]string{
	KindInvalid:         "invalid",
	KindBool:            "bool",
	KindInt8:            "int8",
	KindInt16:           "int16",
	KindInt32:           "int32",
	KindInt64:           "int64",
	KindUint8:           "uint8",
	KindUint16:          "uint16",
	KindUint32:          "uint32",
	KindUint64:          "uint64",
	KindFloat32:         "float32",
	KindFloat64:         "float64",
	KindExtended:        "extended",
	KindComplex64:       "complex64",
	KindComplex128:      "complex128",
	KindExtendedComplex: "extended_complex",
}

// Kinds lists every valid kind.
func Kinds() []Kind {
	out := make([]Kind, 0, numKinds-1)
	for k := KindBool; k < numKinds; k++ {
		out = append(out, k)
	}
	return out
}

func (k Kind) String() string {
	if k < numKinds {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

func (k Kind) Valid() bool { return k > KindInvalid && k < numKinds }

func (k Kind) IsComplex() bool {
	return k == KindComplex64 || k == KindComplex128 || k == KindExtendedComplex
}

func (k Kind) IsInteger() bool { return k >= KindInt8 && k <= KindUint64 }

func (k Kind) IsFloat() bool { return k >= KindFloat32 && k <= KindExtended }

// Real returns the kind of the parts of a complex kind; other kinds map to
// themselves.
func (k Kind) Real() Kind {
	switch k {
	case KindComplex64:
		return KindFloat32
	case KindComplex128:
		return KindFloat64
	case KindExtendedComplex:
		return KindExtended
	}
	return k
}

// ParseKind resolves a kind name. C-style aliases ("float", "double",
// "long double", "complex<float>", ...) are accepted as well.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k := KindBool; k < numKinds; k++ {
		if kindNames[k] == name {
			return k, nil
		}
	}
	switch name {
	case "float":
		return KindFloat32, nil
	case "double":
		return KindFloat64, nil
	case "long double", "longdouble":
		return KindExtended, nil
	case "complex<float>":
		return KindComplex64, nil
	case "complex<double>":
		return KindComplex128, nil
	case "complex<long double>":
		return KindExtendedComplex, nil
	}
	return KindInvalid, fmt.Errorf("%w: unknown kind %q", ErrUnsupported, s)
}

// KindOf returns the kind of the type argument.
func KindOf[T Number]() Kind {
	var zero T
	return kindOfValue(zero)
}

func kindOfValue(v any) Kind {
	switch v.(type) {
	case bool:
		return KindBool
	case int8:
		return KindInt8
	case int16:
		return KindInt16
	case int32:
		return KindInt32
	case int64:
		return KindInt64
	case uint8:
		return KindUint8
	case uint16:
		return KindUint16
	case uint32:
		return KindUint32
	case uint64:
		return KindUint64
	case float32:
		return KindFloat32
	case float64:
		return KindFloat64
	case Extended:
		return KindExtended
	case complex64:
		return KindComplex64
	case complex128:
		return KindComplex128
	case ExtendedComplex:
		return KindExtendedComplex
	default:
		return KindInvalid
	}
}
