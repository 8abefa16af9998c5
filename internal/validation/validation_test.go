package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefault(t *testing.T) {
	t.Parallel()

	validate := NewDefault()

	require.NoError(t, validate(8080, "min=1,max=65535", "port"))
	require.NoError(t, validate("example.com", "hostname", "host"))
	require.NoError(t, validate(-1, "", "any"))

	err := validate(0, "min=1", "port")
	require.Error(t, err)
	assert.Equal(t, "`0` is not a valid min for --port", err.Error())

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	require.Len(t, verrs, 1)
	assert.Equal(t, "min", verrs[0].Tag())

	err = validate("red", "oneof=blue green", "color")
	require.Error(t, err)
	assert.Equal(t, "`red` is not a valid oneof for --color", err.Error())
}

func TestNewWith(t *testing.T) {
	t.Parallel()

	custom := validator.New()
	err := custom.RegisterValidation("lower", func(fl validator.FieldLevel) bool {
		return fl.Field().String() == strings.ToLower(fl.Field().String())
	})
	require.NoError(t, err)

	validate := NewWith(custom)

	require.NoError(t, validate("lowercase", "lower", "name"))

	err = validate("MiXeD", "lower", "name")
	require.Error(t, err)
	assert.Equal(t, "`MiXeD` is not a valid lower for --name", err.Error())
}

func TestInvalidVarErrorFallback(t *testing.T) {
	t.Parallel()

	err := &invalidVarError{
		fieldName:    "name",
		fieldValue:   "x",
		validatorErr: errors.New("Key: '' Error: unexpected"),
	}

	assert.Equal(t, "Key: 'name' Error: unexpected", err.Error())
}
