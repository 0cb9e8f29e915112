// Package cast converts between numeric kinds and complex numbers built over
// the floating widths.
//
// [To] is total: it never fails and follows Go's native conversion rules,
// truncating or wrapping exactly as a conversion expression would. Complex
// values cast to a non-complex kind keep only their real part; complex to
// complex converts both parts element-wise.
//
// [Checked] is the range-checked counterpart. It uses [safemath] for integer
// narrowing and reports lossy float, complex and overflow conversions.
//
// [Convert] dispatches at run time through a table keyed by (source, target)
// [Kind], and [Parse] turns text into a kind using github.com/spf13/cast for the
// scalar forms.
package cast
