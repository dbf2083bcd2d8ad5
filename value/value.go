package value

const (
	NullKind   = Kind("null")
	StringKind = Kind("string")
	BoolKind   = Kind("bool")
	NumberKind = Kind("number")
)

type Kind string

// Value is a runtime value. Every value observable to a program is
// exactly one of the four kinds above; there are no numeric subtypes,
// integers are ordinary float64 numbers.
type Value interface {
	Kind() Kind
	NativeValue() any
}
