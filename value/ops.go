package value

import (
	"fmt"
	"strconv"
)

// IsTruthy reports how v behaves in a boolean context. Only null and
// false are falsy; every other value, including 0 and "", is truthy.
func IsTruthy(v Value) bool {
	switch v := v.(type) {
	case nil:
		return false
	case *Null:
		return false
	case Boolean:
		return (bool)(v)
	}
	return true
}

// Equal reports whether two values are equal. Nulls equal only each
// other, and values of different kinds are never equal. Comparing
// across kinds is not an error, it is just false.
func Equal(left, right Value) bool {
	if left.Kind() == NullKind || right.Kind() == NullKind {
		return left.Kind() == right.Kind()
	}
	if left.Kind() != right.Kind() {
		return false
	}
	return left.NativeValue() == right.NativeValue()
}

// ToString renders v the way print shows it: null as "nil", numbers
// per Number.String, everything else in its natural text form.
func ToString(v Value) string {
	switch v := v.(type) {
	case nil, *Null:
		return "nil"
	case Boolean:
		return strconv.FormatBool((bool)(v))
	case Number:
		return v.String()
	case String:
		return (string)(v)
	}
	return fmt.Sprint(v.NativeValue())
}

// ToFloat returns the native float64 of v if v is a number.
func ToFloat(v Value) (float64, bool) {
	n, ok := v.(Number)
	return (float64)(n), ok
}
