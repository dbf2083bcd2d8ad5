package value

var (
	True  = Boolean(true)
	False = Boolean(false)
)

type Boolean bool

// NewBoolean returns the singleton for b.
func NewBoolean(b bool) Boolean {
	if b {
		return True
	}
	return False
}

func (n Boolean) Kind() Kind {
	return BoolKind
}

func (n Boolean) NativeValue() any {
	return (bool)(n)
}
