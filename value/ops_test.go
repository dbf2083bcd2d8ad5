package value

import (
	"fmt"
	"math"
	"testing"

	"github.com/hexops/autogold/v2"
	"github.com/stretchr/testify/assert"
)

func TestIsTruthy(t *testing.T) {
	assert.False(t, IsTruthy(nil))
	assert.False(t, IsTruthy(NewNull()))
	assert.False(t, IsTruthy(False))
	assert.True(t, IsTruthy(True))
	assert.True(t, IsTruthy(Number(0)))
	assert.True(t, IsTruthy(Number(1)))
	assert.True(t, IsTruthy(String("")))
	assert.True(t, IsTruthy(String("x")))
}

func TestEqual(t *testing.T) {
	tests := []struct {
		left   Value
		right  Value
		expect bool
	}{
		{left: NewNull(), right: NewNull(), expect: true},
		{left: NewNull(), right: Number(0), expect: false},
		{left: Number(0), right: NewNull(), expect: false},
		{left: Number(1), right: Number(1), expect: true},
		{left: Number(1), right: Number(2), expect: false},
		{left: Number(1), right: String("1"), expect: false},
		{left: String("x"), right: String("x"), expect: true},
		{left: String("x"), right: String("y"), expect: false},
		{left: True, right: True, expect: true},
		{left: True, right: False, expect: false},
		{left: True, right: Number(1), expect: false},
	}

	for i, test := range tests {
		t.Run(fmt.Sprintf("%s%d", t.Name(), i), func(t *testing.T) {
			assert.Equal(t, test.expect, Equal(test.left, test.right))
		})
	}
}

func TestToString(t *testing.T) {
	tests := []struct {
		val    Value
		expect autogold.Value
	}{
		{val: NewNull(), expect: autogold.Expect("nil")},
		{val: True, expect: autogold.Expect("true")},
		{val: False, expect: autogold.Expect("false")},
		{val: Number(3), expect: autogold.Expect("3")},
		{val: Number(3.5), expect: autogold.Expect("3.5")},
		{val: Number(-0.25), expect: autogold.Expect("-0.25")},
		{val: Number(1000000), expect: autogold.Expect("1000000")},
		{val: Number(math.Inf(1)), expect: autogold.Expect("+Inf")},
		{val: String("hi"), expect: autogold.Expect("hi")},
		{val: String(""), expect: autogold.Expect("")},
	}

	for i, test := range tests {
		t.Run(fmt.Sprintf("%s%d", t.Name(), i), func(t *testing.T) {
			test.expect.Equal(t, ToString(test.val))
		})
	}
}

func TestToFloat(t *testing.T) {
	n, ok := ToFloat(Number(4))
	assert.True(t, ok)
	assert.Equal(t, 4.0, n)

	_, ok = ToFloat(String("4"))
	assert.False(t, ok)
}
