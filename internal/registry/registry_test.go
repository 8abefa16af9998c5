package registry

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/reeflective/argparse/internal/errors"
	"github.com/reeflective/argparse/internal/values"
)

func TestAdd(t *testing.T) {
	t.Parallel()

	reg := New()

	num, err := reg.Add(values.Integer, 'n', "num", "a number")
	require.NoError(t, err)
	require.Equal(t, "num", num.Long())

	_, err = reg.Add(values.String, 0, "name", "")
	require.NoError(t, err)

	_, err = reg.Add(values.Flag, 0, "num", "")
	require.ErrorIs(t, err, errors.ErrDuplicatedFlag)
	require.ErrorIs(t, err, errors.ErrConfig)

	_, err = reg.Add(values.Flag, 'n', "other", "")
	require.ErrorIs(t, err, errors.ErrDuplicatedFlag)

	// Several options without short names are fine.
	_, err = reg.Add(values.Flag, 0, "other", "")
	require.NoError(t, err)

	_, err = reg.Add(values.Flag, 0, "", "")
	require.ErrorIs(t, err, errors.ErrConfig)

	// Declaration order is kept.
	var names []string
	for _, opt := range reg.Options() {
		names = append(names, opt.Long())
	}

	require.Equal(t, []string{"num", "name", "other"}, names)
}

func TestFind(t *testing.T) {
	t.Parallel()

	reg := New()

	verbose, err := reg.Add(values.Flag, 'v', "verbose", "")
	require.NoError(t, err)
	quiet, err := reg.Add(values.Flag, 0, "quiet", "")
	require.NoError(t, err)

	opt, err := reg.FindShort('v')
	require.NoError(t, err)
	require.Same(t, verbose, opt)

	opt, err = reg.FindLong("quiet")
	require.NoError(t, err)
	require.Same(t, quiet, opt)

	_, err = reg.FindShort('q')
	require.ErrorIs(t, err, errors.ErrUnknownFlag)

	// Options without short names are not found by the zero rune.
	_, err = reg.FindShort(0)
	require.ErrorIs(t, err, errors.ErrUnknownFlag)

	_, err = reg.FindLong("verb")
	require.ErrorIs(t, err, errors.ErrUnknownFlag)
}

func TestPositional(t *testing.T) {
	t.Parallel()

	reg := New()

	_, err := reg.Positional()
	require.ErrorIs(t, err, errors.ErrNoPositional)

	first, err := reg.Add(values.Integer, 0, "first", "")
	require.NoError(t, err)
	first.Positional()

	opt, err := reg.Positional()
	require.NoError(t, err)
	require.Same(t, first, opt)

	second, err := reg.Add(values.String, 0, "second", "")
	require.NoError(t, err)
	require.Panics(t, func() { second.Positional() })

	opt, err = reg.Positional()
	require.NoError(t, err)
	require.Same(t, first, opt)
}

func TestHelp(t *testing.T) {
	t.Parallel()

	reg := New()

	_, err := reg.Help()
	require.ErrorIs(t, err, errors.ErrNoHelp)

	help, err := reg.Add(values.Help, 'h', "help", "Program description")
	require.NoError(t, err)

	opt, err := reg.Help()
	require.NoError(t, err)
	require.Same(t, help, opt)

	_, err = reg.Add(values.Help, '?', "usage", "")
	require.ErrorIs(t, err, errors.ErrDuplicatedFlag)
}

func TestInvalid(t *testing.T) {
	t.Parallel()

	reg := New()

	_, err := reg.Add(values.Flag, 0, "flag", "")
	require.NoError(t, err)
	defaulted, err := reg.Add(values.Integer, 0, "defaulted", "")
	require.NoError(t, err)
	defaulted.Default(1)
	required, err := reg.Add(values.String, 0, "required", "")
	require.NoError(t, err)
	list, err := reg.Add(values.Integer, 0, "list", "")
	require.NoError(t, err)
	list.MultiValue(1)

	invalid := reg.Invalid()
	require.Len(t, invalid, 2)
	require.Same(t, required, invalid[0])
	require.Same(t, list, invalid[1])

	require.NoError(t, required.Set(values.Str("value")))
	require.NoError(t, list.Set(values.Int(1)))
	require.Empty(t, reg.Invalid())
}

func TestClosest(t *testing.T) {
	t.Parallel()

	reg := New()

	for _, long := range []string{"verbose", "version", "count"} {
		_, err := reg.Add(values.Flag, 0, long, "")
		require.NoError(t, err)
	}

	tests := []struct {
		name  string
		want  string
		found bool
	}{
		{"verbos", "verbose", true},
		{"vresion", "version", true},
		{"cuont", "count", true},
		{"counts", "count", true},
		{"help", "", false},
		{"v", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, found := reg.Closest(tt.name)
		require.Equal(t, tt.found, found, tt.name)
		require.Equal(t, tt.want, got, tt.name)
	}

	_, found := New().Closest("anything")
	require.False(t, found)
}

func TestLevenshtein(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, levenshtein("same", "same"))
	require.Equal(t, 3, levenshtein("", "abc"))
	require.Equal(t, 3, levenshtein("abc", ""))
	require.Equal(t, 3, levenshtein("kitten", "sitting"))
	require.Equal(t, 1, levenshtein("héllo", "hello"))
}
