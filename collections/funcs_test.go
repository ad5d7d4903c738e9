package collections_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mzakariabigdata/imobject/collections"
)

func TestMapFunc(t *testing.T) {
	got := collections.Map(ints(1, 2, 3), func(n, _ int) string {
		return strconv.Itoa(n * 2)
	}).ToSlice()
	assert.Equal(t, []string{"2", "4", "6"}, got)
}

func TestReduceFunc(t *testing.T) {
	s := collections.Reduce(ints(1, 2, 3), func(acc string, n, _ int) string {
		if acc == "" {
			return strconv.Itoa(n)
		}
		return acc + "," + strconv.Itoa(n)
	}, "")
	assert.Equal(t, "1,2,3", s)
}

func TestPluckFunc(t *testing.T) {
	assert.Equal(t, []string{"Dave", "Bob", "Alice"}, names(people()))
}

func TestGroupByFunc(t *testing.T) {
	groups := collections.GroupBy(ints(1, 2, 3, 4, 5), func(n int) string {
		if n%2 == 0 {
			return "even"
		}
		return "odd"
	})
	assert.Equal(t, []string{"odd", "even"}, groups.Keys())

	odd, ok := groups.Get("odd")
	require.True(t, ok)
	assert.Equal(t, []int{1, 3, 5}, odd.ToSlice())

	_, ok = groups.Get("none")
	assert.False(t, ok)
	assert.Len(t, groups.Map(), 2)
}

func TestKeyByFunc(t *testing.T) {
	byName := collections.KeyBy(people(), func(r rec) string { return r["name"].(string) })
	assert.Equal(t, 40, byName["Bob"]["age"])
}
