package cast

import (
	"math"
	"testing"
)

var complexSamples = []complex128{
	0,
	1 + 2i,
	-1.5 + 3i,
	127.9 - 1i,
	300.25,
	-129 + 5i,
	65535.5 - 0.5i,
	1e10 + 1i,
	-0.25 - 7i,
	math.MaxFloat32 * 2,
}

// same treats NaN as equal to itself so float and complex results compare.
func same[T Number](a, b T) bool {
	return a == b || (a != a && b != b)
}

// realOnly checks To[S](c) == To[S](real(c)) for one scalar target.
func realOnly[S, C, R Number](t *testing.T, samples []C, re func(C) R) {
	t.Helper()
	for _, c := range samples {
		got := To[S](c)
		want := To[S](re(c))
		if !same(got, want) {
			t.Fatalf("%s <- %s(%v): got %v want %v", KindOf[S](), KindOf[C](), c, got, want)
		}
	}
}

func complexToScalar[C, R Number](t *testing.T, samples []C, re func(C) R) {
	t.Helper()
	realOnly[bool](t, samples, re)
	realOnly[int8](t, samples, re)
	realOnly[int16](t, samples, re)
	realOnly[int32](t, samples, re)
	realOnly[int64](t, samples, re)
	realOnly[uint8](t, samples, re)
	realOnly[uint16](t, samples, re)
	realOnly[uint32](t, samples, re)
	realOnly[uint64](t, samples, re)
	realOnly[float32](t, samples, re)
	realOnly[float64](t, samples, re)
	realOnly[Extended](t, samples, re)
}

func TestComplexToScalarKeepsRealPart(t *testing.T) {
	t.Run("complex64", func(t *testing.T) {
		samples := make([]complex64, len(complexSamples))
		for i, c := range complexSamples {
			samples[i] = complex64(c)
		}
		complexToScalar(t, samples, func(c complex64) float32 { return real(c) })
	})

	t.Run("complex128", func(t *testing.T) {
		complexToScalar(t, complexSamples, func(c complex128) float64 { return real(c) })
	})

	t.Run("extendedComplex", func(t *testing.T) {
		samples := make([]ExtendedComplex, len(complexSamples))
		for i, c := range complexSamples {
			samples[i] = ExtendedComplex(c)
		}
		complexToScalar(t, samples, func(c ExtendedComplex) Extended { return Extended(real(c)) })
	})
}

func TestComplexToScalarValues(t *testing.T) {
	c := complex(3.75, -9)
	if got := To[int32](c); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
	if got := To[float32](c); got != 3.75 {
		t.Fatalf("expected 3.75, got %v", got)
	}
	if got := To[bool](complex(0, 5)); got {
		t.Fatalf("imaginary-only value must cast to false")
	}
	if got := To[bool](complex64(complex(-1, 0))); !got {
		t.Fatalf("non-zero real part must cast to true")
	}
}

func TestComplexToComplexIsElementWise(t *testing.T) {
	checks := map[string]func(c complex128) bool{
		"complex64<-complex64": func(c complex128) bool {
			x := complex64(c)
			return same(To[complex64](x), complex(To[float32](real(x)), To[float32](imag(x))))
		},
		"complex128<-complex64": func(c complex128) bool {
			x := complex64(c)
			return same(To[complex128](x), complex(To[float64](real(x)), To[float64](imag(x))))
		},
		"extended<-complex64": func(c complex128) bool {
			x := complex64(c)
			want := ExtendedComplex(complex(float64(To[Extended](real(x))), float64(To[Extended](imag(x)))))
			return same(To[ExtendedComplex](x), want)
		},
		"complex64<-complex128": func(c complex128) bool {
			return same(To[complex64](c), complex(To[float32](real(c)), To[float32](imag(c))))
		},
		"complex128<-complex128": func(c complex128) bool {
			return same(To[complex128](c), c)
		},
		"extended<-complex128": func(c complex128) bool {
			return same(To[ExtendedComplex](c), ExtendedComplex(c))
		},
		"complex64<-extended": func(c complex128) bool {
			x := ExtendedComplex(c)
			return same(To[complex64](x), complex(To[float32](real(x)), To[float32](imag(x))))
		},
		"complex128<-extended": func(c complex128) bool {
			return same(To[complex128](ExtendedComplex(c)), c)
		},
		"extended<-extended": func(c complex128) bool {
			x := ExtendedComplex(c)
			return same(To[ExtendedComplex](x), x)
		},
	}

	for name, check := range checks {
		t.Run(name, func(t *testing.T) {
			for _, c := range complexSamples {
				if !check(c) {
					t.Fatalf("element-wise mismatch for %v", c)
				}
			}
		})
	}
}

func TestNarrowingFollowsNativeConversion(t *testing.T) {
	t.Run("integerWrap", func(t *testing.T) {
		if got := To[int8](int64(300)); got != 44 {
			t.Fatalf("expected 44, got %d", got)
		}
		if got := To[uint8](int16(-1)); got != 255 {
			t.Fatalf("expected 255, got %d", got)
		}
		if got := To[int32](uint64(math.MaxUint64)); got != -1 {
			t.Fatalf("expected -1, got %d", got)
		}
	})

	t.Run("floatTruncation", func(t *testing.T) {
		if got := To[int16](float64(-12.9)); got != -12 {
			t.Fatalf("expected -12, got %d", got)
		}
		if got := To[float32](float64(0.1)); got != float32(0.1) {
			t.Fatalf("expected float32(0.1), got %v", got)
		}
	})

	t.Run("bool", func(t *testing.T) {
		if got := To[float64](true); got != 1 {
			t.Fatalf("expected 1, got %v", got)
		}
		if got := To[uint16](false); got != 0 {
			t.Fatalf("expected 0, got %d", got)
		}
		if got := To[bool](float32(math.NaN())); !got {
			t.Fatalf("NaN must cast to true")
		}
		if got := To[bool](uint64(0)); got {
			t.Fatalf("zero must cast to false")
		}
	})

	t.Run("largeIntegerToFloat", func(t *testing.T) {
		// Rounded once from the integer, not through an intermediate.
		v := int64(1<<53 + 1)
		if got := To[float64](v); got != float64(v) {
			t.Fatalf("expected %v, got %v", float64(v), got)
		}
		if got := To[float32](uint64(1<<63 + 1)); got != float32(uint64(1<<63+1)) {
			t.Fatalf("uint64 to float32 mismatch: %v", got)
		}
	})
}

func TestRealToComplex(t *testing.T) {
	if got := To[complex64](int8(-3)); got != complex64(complex(-3, 0)) {
		t.Fatalf("expected (-3+0i), got %v", got)
	}
	if got := To[ExtendedComplex](true); got != ExtendedComplex(complex(1, 0)) {
		t.Fatalf("expected (1+0i), got %v", got)
	}
	if got := To[complex128](Extended(2.5)); got != complex(2.5, 0) {
		t.Fatalf("expected (2.5+0i), got %v", got)
	}
}

func TestKindOf(t *testing.T) {
	cases := map[Kind]Kind{
		KindOf[bool]():            KindBool,
		KindOf[int8]():            KindInt8,
		KindOf[uint64]():          KindUint64,
		KindOf[float32]():         KindFloat32,
		KindOf[Extended]():        KindExtended,
		KindOf[complex64]():       KindComplex64,
		KindOf[ExtendedComplex](): KindExtendedComplex,
	}
	for got, want := range cases {
		if got != want {
			t.Fatalf("kind mismatch: got %s want %s", got, want)
		}
	}

	if KindComplex64.Real() != KindFloat32 || KindExtendedComplex.Real() != KindExtended || KindInt8.Real() != KindInt8 {
		t.Fatalf("Real() mismatch")
	}
	if len(Kinds()) != 15 {
		t.Fatalf("expected 15 kinds, got %d", len(Kinds()))
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Fatalf("round trip %s: got %s err %v", k, got, err)
		}
	}
	aliases := map[string]Kind{
		"double":               KindFloat64,
		"long double":          KindExtended,
		"complex<long double>": KindExtendedComplex,
		" Float ":              KindFloat32,
	}
	for in, want := range aliases {
		got, err := ParseKind(in)
		if err != nil || got != want {
			t.Fatalf("alias %q: got %s err %v", in, got, err)
		}
	}
	if _, err := ParseKind("int128"); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}
