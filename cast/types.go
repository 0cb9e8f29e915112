package cast

// Extended is the extended-precision float kind. Go's widest native float is
// float64, so Extended shares its representation while remaining a distinct
// kind for dispatch.
type Extended float64

// ExtendedComplex is a complex number over Extended.
type ExtendedComplex complex128

// Number is a constraint that matches every kind supported by [To].
type Number interface {
	bool |
		int8 | int16 | int32 | int64 |
		uint8 | uint16 | uint32 | uint64 |
		float32 | float64 | Extended |
		complex64 | complex128 | ExtendedComplex
}

// signed, unsigned and floating narrow Number for the conversion helpers.
type signed interface {
	int8 | int16 | int32 | int64
}

type unsigned interface {
	uint8 | uint16 | uint32 | uint64
}

type floating interface {
	float32 | float64
}
