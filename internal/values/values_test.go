package values

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reeflective/argparse/internal/errors"
)

func TestScalar_Fits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value Scalar
		kind  Kind
		want  bool
	}{
		{"bool in flag", Bool(true), Flag, true},
		{"bool in help", Bool(true), Help, true},
		{"bool in int", Bool(true), Integer, false},
		{"int in int", Int(3), Integer, true},
		{"int in string", Int(3), String, false},
		{"string in string", Str("a"), String, true},
		{"string in flag", Str("a"), Flag, false},
		{"absent in string", Scalar{}, String, false},
	}

	for _, tt := range tests {
		tt := tt
		assert.Equal(t, tt.want, tt.value.Fits(tt.kind), tt.name)
	}
}

func TestScalar_Accessors(t *testing.T) {
	t.Parallel()

	var absent Scalar
	require.False(t, absent.IsSet())
	require.Nil(t, absent.Interface())
	require.Empty(t, absent.String())

	n, ok := Int(42).AsInt()
	require.True(t, ok)
	require.Equal(t, 42, n)
	require.Equal(t, "42", Int(42).String())

	_, ok = Int(42).AsString()
	require.False(t, ok)

	s, ok := Str("file.txt").AsString()
	require.True(t, ok)
	require.Equal(t, "file.txt", s)

	b, ok := Bool(true).AsBool()
	require.True(t, ok)
	require.True(t, b)
	require.Equal(t, "true", Bool(true).String())

	kind, ok := Str("x").Kind()
	require.True(t, ok)
	require.Equal(t, String, kind)

	_, ok = absent.Kind()
	require.False(t, ok)
}

func TestOf(t *testing.T) {
	t.Parallel()

	v, err := Of(12)
	require.NoError(t, err)
	require.Equal(t, Int(12), v)

	v, err = Of("value")
	require.NoError(t, err)
	require.Equal(t, Str("value"), v)

	v, err = Of(false)
	require.NoError(t, err)
	require.Equal(t, Bool(false), v)

	_, err = Of(1.5)
	require.ErrorIs(t, err, errors.ErrTypeMismatch)
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		kind    Kind
		word    string
		want    Scalar
		wantErr bool
	}{
		{name: "integer", kind: Integer, word: "5", want: Int(5)},
		{name: "negative integer", kind: Integer, word: "-12", want: Int(-12)},
		{name: "not an integer", kind: Integer, word: "abc", wantErr: true},
		{name: "trailing garbage", kind: Integer, word: "12abc", wantErr: true},
		{name: "empty integer", kind: Integer, word: "", wantErr: true},
		{name: "string", kind: String, word: "abc", want: Str("abc")},
		{name: "empty string", kind: String, word: "", want: Str("")},
		{name: "flag", kind: Flag, word: "true", wantErr: true},
		{name: "help", kind: Help, word: "x", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(tt.kind, tt.word)
			if tt.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestSequence(t *testing.T) {
	t.Parallel()

	_, err := NewSequence(Flag)
	require.ErrorIs(t, err, errors.ErrTypeMismatch)

	ints, err := NewSequence(Integer)
	require.NoError(t, err)
	require.Equal(t, 0, ints.Len())

	require.NoError(t, ints.Append(Int(1)))
	require.NoError(t, ints.Append(Int(2)))
	require.ErrorIs(t, ints.Append(Str("3")), errors.ErrTypeMismatch)
	require.Equal(t, 2, ints.Len())
	require.Equal(t, []int{1, 2}, ints.Ints())

	v, err := ints.At(1)
	require.NoError(t, err)
	require.Equal(t, Int(2), v)

	_, err = ints.At(2)
	require.ErrorIs(t, err, errors.ErrOutOfRange)

	_, err = ints.At(-1)
	require.ErrorIs(t, err, errors.ErrOutOfRange)

	strs, err := NewSequence(String)
	require.NoError(t, err)
	require.NoError(t, strs.Append(Str("a")))
	require.ErrorIs(t, strs.Append(Int(1)), errors.ErrTypeMismatch)
	require.Equal(t, []string{"a"}, strs.Strings())

	// Returned slices are copies.
	copied := strs.Strings()
	copied[0] = "b"
	require.Equal(t, []string{"a"}, strs.Strings())
}

func TestBind(t *testing.T) {
	t.Parallel()

	var flag bool
	binding, err := Bind(&flag)
	require.NoError(t, err)
	require.True(t, binding.Accepts(Flag, false))
	require.True(t, binding.Accepts(Help, false))
	require.False(t, binding.Accepts(Integer, false))
	binding.Write(Bool(true))
	require.True(t, flag)

	var count int
	binding, err = Bind(&count)
	require.NoError(t, err)
	require.False(t, binding.Accepts(Integer, true))
	binding.Write(Int(3))
	require.Equal(t, 3, count)

	var name string
	binding, err = Bind(&name)
	require.NoError(t, err)
	binding.Write(Str("x"))
	require.Equal(t, "x", name)

	var list []int
	binding, err = Bind(&list)
	require.NoError(t, err)
	require.True(t, binding.IsMulti())
	require.True(t, binding.Accepts(Integer, true))
	binding.Write(Int(1))
	binding.Write(Int(2))
	require.Equal(t, []int{1, 2}, list)

	var words []string
	binding, err = Bind(&words)
	require.NoError(t, err)
	binding.Write(Str("a"))
	require.Equal(t, []string{"a"}, words)

	_, err = Bind(new(float64))
	require.ErrorIs(t, err, errors.ErrTypeMismatch)

	_, err = Bind((*int)(nil))
	require.ErrorIs(t, err, errors.ErrNilObject)

	var zero Binding
	require.False(t, zero.IsSet())
	zero.Write(Int(1)) // no-op
}
