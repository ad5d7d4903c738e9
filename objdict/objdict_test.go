package objdict_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mzakariabigdata/imobject"
	"github.com/mzakariabigdata/imobject/collections"
	"github.com/mzakariabigdata/imobject/objdict"
	"github.com/mzakariabigdata/imobject/query"
)

func sample() *objdict.ObjDict {
	return objdict.FromPairs(
		objdict.Pair{Key: "name", Value: "Alice"},
		objdict.Pair{Key: "age", Value: 25},
		objdict.Pair{Key: "address", Value: map[string]any{"city": "Paris", "zip": "75001"}},
		objdict.Pair{Key: "friends", Value: []any{
			map[string]any{"name": "Bob", "age": 40},
			map[string]any{"name": "Dave", "age": 30},
		}},
	)
}

func TestGetSetDelete(t *testing.T) {
	d := objdict.New()
	d.Set("a", 1)
	d.Set("b", "two")

	v, err := d.Get("a")
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	_, err = d.Get("missing")
	assert.ErrorIs(t, err, imobject.ErrNotFound)
	assert.Contains(t, err.Error(), `"missing"`)

	require.NoError(t, d.Delete("a"))
	assert.False(t, d.Has("a"))
	assert.ErrorIs(t, d.Delete("a"), imobject.ErrNotFound)
	assert.Equal(t, []string{"b"}, d.Keys())
}

func TestZeroValue(t *testing.T) {
	var d objdict.ObjDict
	assert.Zero(t, d.Len())
	d.Set("x", 1)
	assert.Equal(t, 1, d.Len())
}

func TestOrderIsInsertionOrder(t *testing.T) {
	d := objdict.New()
	d.Set("z", 1)
	d.Set("a", 2)
	d.Set("m", 3)
	d.Set("z", 4)
	assert.Equal(t, []string{"z", "a", "m"}, d.Keys())
	assert.Equal(t, []any{4, 2, 3}, d.Values())

	var keys []string
	for k := range d.All() {
		keys = append(keys, k)
		if k == "a" {
			break
		}
	}
	assert.Equal(t, []string{"z", "a"}, keys)
}

func TestFromSortsKeys(t *testing.T) {
	d := objdict.From(map[string]any{"b": 1, "c": 2, "a": 3})
	assert.Equal(t, []string{"a", "b", "c"}, d.Keys())
}

func TestWrappingInvariant(t *testing.T) {
	d := sample()

	addr, err := d.Get("address")
	require.NoError(t, err)
	require.IsType(t, &objdict.ObjDict{}, addr)

	friends, err := d.Get("friends")
	require.NoError(t, err)
	list, ok := friends.(*collections.Collection[any])
	require.True(t, ok)
	first, _ := list.First()
	assert.IsType(t, &objdict.ObjDict{}, first)

	d.Set("tags", []string{"x", "y"})
	tags, _ := d.Get("tags")
	assert.IsType(t, &collections.Collection[any]{}, tags)

	d.Set("raw", []byte("abc"))
	raw, _ := d.Get("raw")
	assert.Equal(t, []byte("abc"), raw)

	d.Set("scores", map[string]int{"math": 12})
	scores, _ := d.Get("scores")
	assert.IsType(t, &objdict.ObjDict{}, scores)
}

func TestWrapLeavesContainersAlone(t *testing.T) {
	d := objdict.New()
	assert.Same(t, d, objdict.Wrap(d))
	assert.Equal(t, 3, objdict.Wrap(3))
	assert.Nil(t, objdict.Wrap(nil))
}

func TestSelect(t *testing.T) {
	d := sample()

	sel, err := d.Select([]string{"age", "address"})
	require.NoError(t, err)
	assert.Equal(t, []string{"age", "address"}, sel.Keys())
	addr, _ := sel.Get("address")
	assert.IsType(t, &objdict.ObjDict{}, addr)

	sel, err = d.Select([]any{"name"})
	require.NoError(t, err)
	assert.Equal(t, 1, sel.Len())

	sel, err = d.Select(collections.New[any]("name"))
	require.NoError(t, err)
	assert.Equal(t, []string{"name"}, sel.Keys())

	_, err = d.Select("name")
	assert.ErrorIs(t, err, imobject.ErrInvalidArgument)

	_, err = d.Select([]any{"name", 3})
	assert.ErrorIs(t, err, imobject.ErrInvalidArgument)

	_, err = d.Select([]string{"name", "email"})
	assert.ErrorIs(t, err, imobject.ErrNotFound)
}

func TestExcept(t *testing.T) {
	got := sample().Except("friends", "address", "nope")
	assert.Equal(t, []string{"name", "age"}, got.Keys())
}

func TestToPlain(t *testing.T) {
	plain := sample().ToPlain()

	assert.Equal(t, map[string]any{"city": "Paris", "zip": "75001"}, plain["address"])

	friends, ok := plain["friends"].([]any)
	require.True(t, ok)
	require.Len(t, friends, 2)
	assert.IsType(t, &objdict.ObjDict{}, friends[0], "list elements stay wrapped")
}

func TestToPlainRoundTrip(t *testing.T) {
	d := objdict.From(map[string]any{
		"a": 1,
		"b": map[string]any{"c": "x", "d": map[string]any{"e": true}},
	})
	again := objdict.From(d.ToPlain())
	assert.True(t, d.Equal(again))
	assert.Equal(t, d.String(), again.String())
}

func TestMerge(t *testing.T) {
	d := sample()
	require.NoError(t, d.Merge(map[string]any{"age": 26, "address": map[string]any{"city": "Lyon"}}))

	age, _ := d.Get("age")
	assert.Equal(t, 26, age)
	city, _ := d.GetPath("address.city")
	assert.Equal(t, "Lyon", city)
	assert.False(t, d.HasPath("address.zip"), "Merge replaces nested containers")

	assert.ErrorIs(t, d.Merge(42), imobject.ErrInvalidArgument)
}

func TestMergeDeep(t *testing.T) {
	d := sample()
	other := objdict.New()
	other.SetPath("address.city", "Lyon")
	other.Set("email", "alice@example.com")
	require.NoError(t, d.MergeDeep(other))

	city, _ := d.GetPath("address.city")
	zip, _ := d.GetPath("address.zip")
	assert.Equal(t, "Lyon", city)
	assert.Equal(t, "75001", zip)
	assert.Equal(t, "email", d.Keys()[d.Len()-1])
}

func TestCopyOfNil(t *testing.T) {
	var d *objdict.ObjDict
	cp := d.Copy()
	require.NotNil(t, cp)
	assert.Zero(t, cp.Len())

	cp.Set("a", 1)
	assert.Zero(t, d.Len())
}

func TestCopyIsDeep(t *testing.T) {
	d := sample()
	cp := d.Copy()
	require.True(t, d.Equal(cp))

	cp.SetPath("address.city", "Nice")
	city, _ := d.GetPath("address.city")
	assert.Equal(t, "Paris", city)

	friend, _ := cp.GetPath("friends.0")
	friend.(*objdict.ObjDict).Set("age", 41)
	orig, _ := d.GetPath("friends.0.age")
	assert.Equal(t, 40, orig)
	assert.False(t, d.Equal(cp))
}

func TestEqual(t *testing.T) {
	a := objdict.From(map[string]any{"x": 1, "y": []any{1, 2}})
	b := objdict.FromPairs(
		objdict.Pair{Key: "y", Value: []int{1, 2}},
		objdict.Pair{Key: "x", Value: 1.0},
	)
	assert.True(t, a.Equal(b))
	assert.True(t, a.Equal(map[string]any{"x": 1, "y": []any{1, 2}}))
	assert.False(t, a.Equal(map[string]any{"x": 1}))
}

func TestQueryableElements(t *testing.T) {
	friends, _ := sample().Get("friends")
	list := friends.(*collections.Collection[any])

	older, err := list.Where(query.Shorthand{"age__gte": 35})
	require.NoError(t, err)
	require.Equal(t, 1, older.Count())
	bob, _ := older.First()
	name, _ := bob.(*objdict.ObjDict).Get("name")
	assert.Equal(t, "Bob", name)

	sorted, err := list.OrderBy("age", false)
	require.NoError(t, err)
	names, err := sorted.TransformList(collections.AttributeRef("name"), collections.TransformOptions[any]{})
	require.NoError(t, err)
	assert.Equal(t, []any{"Dave", "Bob"}, names)
}

func TestObjDictMethodsAreNotAttributes(t *testing.T) {
	list := collections.New[any](sample())
	_, err := list.Where(query.Shorthand{"Len": 4})
	assert.ErrorIs(t, err, imobject.ErrNotFound)

	lens, err := list.TransformList(collections.MethodRef("Len"), collections.TransformOptions[any]{})
	require.NoError(t, err)
	assert.Equal(t, []any{4}, lens)
}

func TestString(t *testing.T) {
	d := objdict.FromPairs(
		objdict.Pair{Key: "b", Value: 1},
		objdict.Pair{Key: "a", Value: []any{"x"}},
	)
	assert.Equal(t, `{"b":1,"a":["x"]}`, d.String())
}
