package value

import "strconv"

type Number float64

func (n Number) Kind() Kind {
	return NumberKind
}

func (n Number) NativeValue() any {
	return (float64)(n)
}

// String renders n without an exponent and without a trailing
// fractional part, so Number(3) prints as "3" and Number(3.5) as
// "3.5". Non-finite values render as "+Inf", "-Inf" and "NaN".
func (n Number) String() string {
	return strconv.FormatFloat((float64)(n), 'f', -1, 64)
}
