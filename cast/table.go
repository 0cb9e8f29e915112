package cast

import (
	"errors"
	"fmt"
)

// ErrUnsupported is returned for dynamic values or kind names outside the
// supported set.
var ErrUnsupported = errors.New("cast: unsupported kind")

type converter func(any) any

type row [numKinds]converter

// table[from][to] is instantiated once from To, so runtime dispatch and the
// generic path can never disagree.
var table = [numKinds]row{
	KindBool:            rowFrom[bool](),
	KindInt8:            rowFrom[int8](),
	KindInt16:           rowFrom[int16](),
	KindInt32:           rowFrom[int32](),
	KindInt64:           rowFrom[int64](),
	KindUint8:           rowFrom[uint8](),
	KindUint16:          rowFrom[uint16](),
	KindUint32:          rowFrom[uint32](),
	KindUint64:          rowFrom[uint64](),
	KindFloat32:         rowFrom[float32](),
	KindFloat64:         rowFrom[float64](),
	KindExtended:        rowFrom[Extended](),
	KindComplex64:       rowFrom[complex64](),
	KindComplex128:      rowFrom[complex128](),
	KindExtendedComplex: rowFrom[ExtendedComplex](),
}

func rowFrom[F Number]() row {
	return row{
		KindBool:            conv[bool, F],
		KindInt8:            conv[int8, F],
		KindInt16:           conv[int16, F],
		KindInt32:           conv[int32, F],
		KindInt64:           conv[int64, F],
		KindUint8:           conv[uint8, F],
		KindUint16:          conv[uint16, F],
		KindUint32:          conv[uint32, F],
		KindUint64:          conv[uint64, F],
		KindFloat32:         conv[float32, F],
		KindFloat64:         conv[float64, F],
		KindExtended:        conv[Extended, F],
		KindComplex64:       conv[complex64, F],
		KindComplex128:      conv[complex128, F],
		KindExtendedComplex: conv[ExtendedComplex, F],
	}
}

func conv[T, F Number](v any) any {
	return To[T](v.(F))
}

// Convert casts the dynamic value v to the kind to. It fails only when v's
// type or to is not a supported kind; the conversion itself follows [To].
func Convert(v any, to Kind) (any, error) {
	from := kindOfValue(v)
	if !from.Valid() {
		return nil, fmt.Errorf("%w: source type %T", ErrUnsupported, v)
	}
	if !to.Valid() {
		return nil, fmt.Errorf("%w: target %s", ErrUnsupported, to)
	}
	return table[from][to](v), nil
}
