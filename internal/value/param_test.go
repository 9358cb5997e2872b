package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/queryforge/pdbquery/internal/value"
)

func TestNative(t *testing.T) {
	assert.Equal(t, "Class", value.Native(value.String("Class")))
	assert.Equal(t, 1.5, value.Native(value.Number(1.5)))
	assert.Equal(t, true, value.Native(value.Bool(true)))
}

func TestNativeAll(t *testing.T) {
	params := []value.Param{value.String("a"), value.Number(2), value.Bool(false)}
	assert.Equal(t, []any{"a", 2.0, false}, value.NativeAll(params))
}

func TestNativeAll_Empty(t *testing.T) {
	assert.Equal(t, []any{}, value.NativeAll(nil))
}

func TestMarshalJSON(t *testing.T) {
	data, err := value.MarshalJSON(value.String("Class"))
	assert.NoError(t, err)
	assert.JSONEq(t, `"Class"`, string(data))

	data, err = value.MarshalJSON(value.Number(0.3))
	assert.NoError(t, err)
	assert.JSONEq(t, `0.3`, string(data))

	data, err = value.MarshalJSON(value.Bool(true))
	assert.NoError(t, err)
	assert.JSONEq(t, `true`, string(data))
}

func TestNewNumber(t *testing.T) {
	assert.Equal(t, value.Number(42), value.NewNumber(42))
}
