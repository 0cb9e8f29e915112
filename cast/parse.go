package cast

import (
	"fmt"
	"strconv"
	"strings"

	spfcast "github.com/spf13/cast"
	"go.dw1.io/safemath"
)

// Parse reads s as a value of kind k. Scalar text goes through spf13/cast
// (so "0x1f", "10.0" and "true" all work); integer widths are enforced with
// safemath. Complex text uses Go syntax, e.g. "(1+2i)" or "3-4i".
func Parse(k Kind, s string) (any, error) {
	s = strings.TrimSpace(s)
	switch k {
	case KindBool:
		return wrapParse[bool](k, s)(spfcast.ToBoolE(s))
	case KindInt8:
		return parseSigned[int8](k, s)
	case KindInt16:
		return parseSigned[int16](k, s)
	case KindInt32:
		return parseSigned[int32](k, s)
	case KindInt64:
		return parseSigned[int64](k, s)
	case KindUint8:
		return parseUnsigned[uint8](k, s)
	case KindUint16:
		return parseUnsigned[uint16](k, s)
	case KindUint32:
		return parseUnsigned[uint32](k, s)
	case KindUint64:
		return parseUnsigned[uint64](k, s)
	case KindFloat32:
		return wrapParse[float32](k, s)(spfcast.ToFloat32E(s))
	case KindFloat64:
		return wrapParse[float64](k, s)(spfcast.ToFloat64E(s))
	case KindExtended:
		f, err := spfcast.ToFloat64E(s)
		return wrapParse[Extended](k, s)(Extended(f), err)
	case KindComplex64:
		c, err := strconv.ParseComplex(s, 64)
		return wrapParse[complex64](k, s)(complex64(c), err)
	case KindComplex128:
		return wrapParse[complex128](k, s)(strconv.ParseComplex(s, 128))
	case KindExtendedComplex:
		c, err := strconv.ParseComplex(s, 128)
		return wrapParse[ExtendedComplex](k, s)(ExtendedComplex(c), err)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupported, k)
}

func parseSigned[I signed](k Kind, s string) (any, error) {
	n, err := spfcast.ToInt64E(s)
	if err != nil {
		return nil, parseError(k, s, err)
	}
	out, err := safemath.ConvertAny[I](n)
	if err != nil {
		return nil, parseError(k, s, err)
	}
	return out, nil
}

func parseUnsigned[U unsigned](k Kind, s string) (any, error) {
	n, err := spfcast.ToUint64E(s)
	if err != nil {
		return nil, parseError(k, s, err)
	}
	out, err := safemath.ConvertAny[U](n)
	if err != nil {
		return nil, parseError(k, s, err)
	}
	return out, nil
}

func wrapParse[V any](k Kind, s string) func(V, error) (any, error) {
	return func(v V, err error) (any, error) {
		if err != nil {
			return nil, parseError(k, s, err)
		}
		return v, nil
	}
}

func parseError(k Kind, s string, err error) error {
	return fmt.Errorf("cast: parse %q as %s: %w", s, k, err)
}
