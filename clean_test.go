package datautil_test

import (
	"errors"
	"strings"
	"testing"

	v "github.com/Gobd/datautil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type suffix string

func (s suffix) Transform(value string) (string, error) {
	return value + string(s), nil
}

func TestCleanStrings(t *testing.T) {
	appendF := func(s string) string { return s + "f" }
	appendG := func(s string) string { return s + "g" }

	tests := []struct {
		name string
		in   []string
		ops  []any
		want []string
	}{
		{
			name: "remove punctuation",
			in:   []string{"a!", "b?"},
			ops:  []any{v.RemovePunctuation},
			want: []string{"a", "b"},
		},
		{
			name: "empty input",
			in:   []string{},
			ops:  []any{strings.ToUpper},
			want: []string{},
		},
		{
			name: "nil input",
			in:   nil,
			ops:  []any{strings.ToUpper},
			want: []string{},
		},
		{
			name: "composition order",
			in:   []string{"x"},
			ops:  []any{appendF, appendG},
			want: []string{"xfg"},
		},
		{
			name: "no ops",
			in:   []string{"a!", "b"},
			ops:  nil,
			want: []string{"a!", "b"},
		},
		{
			name: "notebook states",
			in:   []string{"   Alabama ", "Georgia!", "Georgia", "georgia", "FlOrIda", "south   carolina##", "West virginia?"},
			ops:  []any{strings.TrimSpace, v.RemovePunctuation, v.Title},
			want: []string{"Alabama", "Georgia", "Georgia", "Georgia", "Florida", "South   Carolina", "West Virginia"},
		},
		{
			name: "mixed op kinds",
			in:   []string{"a"},
			ops: []any{
				v.TransformFunc(strings.ToUpper),
				func(s string) (string, error) { return s + "!", nil },
				suffix("?"),
				v.RemovePunctuation,
			},
			want: []string{"A"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.CleanStrings(tt.in, tt.ops...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCleanStrings_InvalidTransform(t *testing.T) {
	var nilFunc func(string) string
	called := false
	spy := func(s string) string {
		called = true
		return s
	}

	got, err := v.CleanStrings([]string{"a", "b"}, spy, 42, nil, nilFunc, func(int) int { return 0 })
	require.Error(t, err)
	assert.Nil(t, got)
	assert.False(t, called, "no value may be processed when an op is invalid")
	assert.True(t, errors.Is(err, v.ErrInvalidTransform))

	var ite *v.InvalidTransformError
	require.True(t, errors.As(err, &ite))
	assert.NotContains(t, ite.Errors, "0")
	for _, key := range []string{"1", "2", "3", "4"} {
		assert.Contains(t, ite.Errors, key)
	}
	assert.Contains(t, err.Error(), "1: int cannot be applied to a string")
}

func TestCleanStrings_FailFast(t *testing.T) {
	errBad := errors.New("bad value")
	calls := 0
	reject := func(s string) (string, error) {
		calls++
		if s == "bad" {
			return "", errBad
		}
		return s, nil
	}

	got, err := v.CleanStrings([]string{" ok ", " bad ", " never "}, strings.TrimSpace, reject)
	require.Error(t, err)
	assert.Nil(t, got)
	assert.Equal(t, 2, calls)
	assert.True(t, errors.Is(err, errBad))
	assert.False(t, errors.Is(err, v.ErrInvalidTransform))

	var te *v.TransformError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, 1, te.Index)
	assert.Equal(t, 1, te.Op)
	assert.Equal(t, " bad ", te.Value)
}

func TestClean(t *testing.T) {
	got := v.Clean([]string{" a! ", "B?"}, strings.TrimSpace, v.RemovePunctuation, strings.ToLower)
	assert.Equal(t, []string{"a", "b"}, got)
	assert.Equal(t, []string{}, v.Clean(nil, strings.ToLower))
}

func TestCompose(t *testing.T) {
	f := v.Compose(
		func(s string) string { return s + "1" },
		func(s string) string { return s + "2" },
	)
	assert.Equal(t, "x12", f("x"))
	assert.Equal(t, "same", v.Compose()("same"))
}

func TestPipeline(t *testing.T) {
	p, err := v.NewPipeline(strings.TrimSpace, v.RemovePunctuation)
	require.NoError(t, err)
	require.Len(t, p, 2)

	out, err := p.Apply("  hi! ")
	require.NoError(t, err)
	assert.Equal(t, "hi", out)

	in := []string{"x?", "y#"}
	cleaned, err := p.Clean(in)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, cleaned)
	assert.Equal(t, []string{"x?", "y#"}, in, "input must not be modified")
}

func TestMustPipeline(t *testing.T) {
	assert.NotPanics(t, func() { v.MustPipeline(strings.ToLower) })
	assert.Panics(t, func() { v.MustPipeline("not a func") })
}

func TestAsTransformer(t *testing.T) {
	for _, op := range []any{
		strings.ToLower,
		v.RemovePunctuation,
		v.TransformFunc(strings.ToUpper),
		v.TransformErrFunc(func(s string) (string, error) { return s, nil }),
		suffix("x"),
	} {
		tr, err := v.AsTransformer(op)
		require.NoError(t, err)
		require.NotNil(t, tr)
	}

	for _, op := range []any{nil, 1, "lower", v.TransformFunc(nil), func(string) {}} {
		_, err := v.AsTransformer(op)
		require.Error(t, err, "%T", op)
	}
}

type (
	caseOp  func(string) string
	checkOp func(string) (string, error)
)

func TestCleanStrings_NamedFuncTypes(t *testing.T) {
	nonEmpty := checkOp(func(s string) (string, error) {
		if s == "" {
			return "", errors.New("empty")
		}
		return s, nil
	})

	got, err := v.CleanStrings([]string{"a!", "b"}, caseOp(strings.ToUpper), nonEmpty, caseOp(v.RemovePunctuation))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, got)

	_, err = v.CleanStrings([]string{"ok", ""}, nonEmpty)
	require.Error(t, err)
	assert.EqualError(t, errors.Unwrap(err), "empty")

	var nilOp caseOp
	_, err = v.CleanStrings([]string{"a"}, nilOp)
	assert.True(t, errors.Is(err, v.ErrInvalidTransform))
}

func TestPipeline_NilEntries(t *testing.T) {
	tests := []struct {
		name string
		p    v.Pipeline
		keys []string
	}{
		{name: "nil transformer", p: v.Pipeline{nil}, keys: []string{"0"}},
		{name: "nil func", p: v.Pipeline{v.TransformFunc(strings.TrimSpace), v.TransformFunc(nil)}, keys: []string{"1"}},
		{name: "nil err func", p: v.Pipeline{v.TransformErrFunc(nil), nil}, keys: []string{"0", "1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			var err error
			require.NotPanics(t, func() { got, err = tt.p.Clean([]string{"x"}) })
			assert.Nil(t, got)
			require.True(t, errors.Is(err, v.ErrInvalidTransform))

			var ite *v.InvalidTransformError
			require.True(t, errors.As(err, &ite))
			assert.Len(t, ite.Errors, len(tt.keys))
			for _, key := range tt.keys {
				assert.Contains(t, ite.Errors, key)
			}

			_, err = tt.p.Apply("x")
			assert.True(t, errors.Is(err, v.ErrInvalidTransform))
		})
	}

	assert.NoError(t, v.Pipeline{}.Validate())
	assert.NoError(t, v.MustPipeline(strings.TrimSpace).Validate())
}
