package collections_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mzakariabigdata/imobject"
	"github.com/mzakariabigdata/imobject/collections"
)

type word struct {
	Text string
	Rank int
}

func (w word) Upper() string { return strings.ToUpper(w.Text) }

func (w word) Repeat(n int, sep string) string {
	return strings.TrimSuffix(strings.Repeat(w.Text+sep, n), sep)
}

func (w word) Check() (string, error) {
	if w.Text == "" {
		return "", errors.New("empty word")
	}
	return w.Text, nil
}

func words() *collections.Collection[word] {
	return collections.New(word{"cat", 3}, word{"ant", 1}, word{"dog", 4}, word{"bee", 2})
}

func TestParseInvocation(t *testing.T) {
	inv, err := collections.ParseInvocation(":Upper")
	require.NoError(t, err)
	assert.Equal(t, collections.InvokeMethod, inv.Kind())
	assert.Equal(t, "Upper", inv.Name())

	inv, err = collections.ParseInvocation(".Text")
	require.NoError(t, err)
	assert.Equal(t, collections.InvokeAttribute, inv.Kind())
	assert.Equal(t, ".Text", inv.String())

	for _, bad := range []string{"", ":", ".", "Upper"} {
		_, err := collections.ParseInvocation(bad)
		assert.ErrorIs(t, err, imobject.ErrInvalidArgument, bad)
	}
}

func TestTransformMethod(t *testing.T) {
	got, err := words().Transform(collections.MethodRef("Upper"), collections.TransformOptions[word]{})
	require.NoError(t, err)
	assert.Equal(t, []any{"CAT", "ANT", "DOG", "BEE"}, got.ToSlice())
}

func TestTransformMethodArgs(t *testing.T) {
	got, err := words().TransformList(collections.MethodRef("Repeat"),
		collections.TransformOptions[word]{Limit: 1}, 2, "-")
	require.NoError(t, err)
	assert.Equal(t, []any{"cat-cat"}, got)
}

func TestTransformAttribute(t *testing.T) {
	got, err := words().TransformList(collections.AttributeRef("Rank"), collections.TransformOptions[word]{})
	require.NoError(t, err)
	assert.Equal(t, []any{3, 1, 4, 2}, got)
}

func TestTransformCallable(t *testing.T) {
	tag := collections.Callable(func(item any, args ...any) (any, error) {
		return fmt.Sprintf("%s%s", args[0], item.(word).Text), nil
	})
	got, err := words().TransformList(tag, collections.TransformOptions[word]{Limit: 2}, "#")
	require.NoError(t, err)
	assert.Equal(t, []any{"#cat", "#ant"}, got)
}

func TestTransformOptionOrder(t *testing.T) {
	// limit 3 → cat ant dog; reverse → dog ant cat; sort by rank → ant cat dog;
	// filter drops ant.
	opts := collections.TransformOptions[word]{
		Limit:   3,
		Reverse: true,
		SortKey: func(w word) any { return w.Rank },
		Filter:  func(w word) bool { return w.Rank > 1 },
	}
	got, err := words().TransformList(collections.AttributeRef("Text"), opts)
	require.NoError(t, err)
	assert.Equal(t, []any{"cat", "dog"}, got)
}

func TestTransformReverseAndNegativeLimit(t *testing.T) {
	opts := collections.TransformOptions[word]{Limit: -1, Reverse: true}
	got, err := words().TransformList(collections.AttributeRef("Text"), opts)
	require.NoError(t, err)
	assert.Equal(t, []any{"dog", "ant", "cat"}, got)
}

func TestTransformErrors(t *testing.T) {
	none := collections.TransformOptions[word]{}

	_, err := words().Transform(collections.Invocation{}, none)
	assert.ErrorIs(t, err, imobject.ErrInvalidArgument)

	_, err = words().Transform(collections.Callable(nil), none)
	assert.ErrorIs(t, err, imobject.ErrInvalidArgument)

	_, err = words().Transform(collections.AttributeRef("Text"), none, 1)
	assert.ErrorIs(t, err, imobject.ErrInvalidArgument)

	_, err = words().Transform(collections.MethodRef("Missing"), none)
	assert.ErrorIs(t, err, imobject.ErrNotFound)

	_, err = words().Transform(collections.MethodRef("Text"), none)
	assert.ErrorIs(t, err, imobject.ErrNotCallable)

	_, err = words().Transform(collections.MethodRef("Repeat"), none, "two", "-")
	assert.ErrorIs(t, err, imobject.ErrInvalidArgument)

	_, err = words().Transform(collections.MethodRef("Upper"), none, 1)
	assert.ErrorIs(t, err, imobject.ErrInvalidArgument)

	_, err = words().Transform(collections.MethodRef("Upper"),
		collections.TransformOptions[word]{SortKey: func(w word) any {
			if w.Rank == 4 {
				return "four"
			}
			return w.Rank
		}})
	assert.ErrorIs(t, err, imobject.ErrTypeMismatch)
}

func TestTransformStopsAtFirstFailure(t *testing.T) {
	src := words().Push(word{Text: ""}, word{Text: "elk"})
	_, err := src.Transform(collections.MethodRef("Check"), collections.TransformOptions[word]{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty word")

	var itemErr *collections.ItemError
	require.True(t, errors.As(err, &itemErr))
	assert.Equal(t, 4, itemErr.Index)
}
