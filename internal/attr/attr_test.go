package attr_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mzakariabigdata/imobject"
	"github.com/mzakariabigdata/imobject/internal/attr"
)

// ─────────────────────────────────────────────────────────────────────────────
// Fixtures
// ─────────────────────────────────────────────────────────────────────────────

type address struct {
	City    string `json:"city"`
	ZipCode string `attr:"zip"`
}

type person struct {
	Name    string
	Age     int
	Address *address
	secret  string
}

func (p person) Greeting() string { return "hello " + p.Name }

func (p person) Initial() (string, error) {
	if p.Name == "" {
		return "", errors.New("no name")
	}
	return p.Name[:1], nil
}

func (p person) Shout(suffix string, times int) string {
	return strings.Repeat(strings.ToUpper(p.Name)+suffix, times)
}

func (p person) Join(sep string, parts ...string) string {
	return p.Name + sep + strings.Join(parts, sep)
}

func (p person) Fail() error { return errors.New("boom") }

type named struct{ values map[string]any }

func (n named) Lookup(name string) (any, bool) {
	v, ok := n.values[name]
	return v, ok
}

func (n named) Keys() []string {
	keys := make([]string, 0, len(n.values))
	for k := range n.values {
		keys = append(keys, k)
	}
	return keys
}

type list []any

func (l list) Elements() []any { return l }

type dispatcher struct{ calls []string }

func (d *dispatcher) CallMethod(name string, args ...any) (any, error) {
	d.calls = append(d.calls, name)
	return len(args), nil
}

func alice() person {
	return person{Name: "Alice", Age: 30, Address: &address{City: "Paris", ZipCode: "75001"}, secret: "x"}
}

// ─────────────────────────────────────────────────────────────────────────────
// KindOf
// ─────────────────────────────────────────────────────────────────────────────

type celsius float32

func TestKindOf(t *testing.T) {
	var nilPtr *person
	cases := []struct {
		in   any
		want attr.Kind
	}{
		{nil, attr.KindNil},
		{nilPtr, attr.KindNil},
		{true, attr.KindBool},
		{3, attr.KindNumber},
		{uint8(3), attr.KindNumber},
		{celsius(2.5), attr.KindNumber},
		{"x", attr.KindString},
		{[]int{1}, attr.KindList},
		{[2]string{}, attr.KindList},
		{list{1}, attr.KindList},
		{map[string]any{}, attr.KindMapping},
		{named{}, attr.KindMapping},
		{alice(), attr.KindObject},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%T", tc.in), func(t *testing.T) {
			assert.Equal(t, tc.want, attr.KindOf(tc.in))
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "number", attr.KindNumber.String())
	assert.Equal(t, "unknown", attr.Kind(200).String())
}

// ─────────────────────────────────────────────────────────────────────────────
// Resolve
// ─────────────────────────────────────────────────────────────────────────────

func TestResolveMap(t *testing.T) {
	m := map[string]any{"name": "Bob", "a.b": 1, "nested": map[string]any{"x": 2}}

	v, err := attr.Resolve(m, "name")
	require.NoError(t, err)
	assert.Equal(t, "Bob", v)

	v, err = attr.Resolve(m, "a.b")
	require.NoError(t, err)
	assert.Equal(t, 1, v, "literal dotted key wins")

	v, err = attr.Resolve(m, "nested.x")
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}

func TestResolveStruct(t *testing.T) {
	p := alice()

	cases := map[string]any{
		"Name":         "Alice",
		"age":          30,
		"Address.city": "Paris",
		"Address.zip":  "75001",
		"Greeting":     "hello Alice",
		"Initial":      "A",
	}
	for path, want := range cases {
		t.Run(path, func(t *testing.T) {
			v, err := attr.Resolve(p, path)
			require.NoError(t, err)
			assert.Equal(t, want, v)
		})
	}

	v, err := attr.Resolve(&p, "Name")
	require.NoError(t, err)
	assert.Equal(t, "Alice", v)
}

func TestResolveMissing(t *testing.T) {
	p := alice()
	for _, path := range []string{"secret", "missing", "Address.missing", "Name.first"} {
		_, err := attr.Resolve(p, path)
		assert.ErrorIs(t, err, imobject.ErrNotFound, path)
	}
	_, err := attr.Resolve(nil, "x")
	assert.ErrorIs(t, err, imobject.ErrNotFound)

	_, err = attr.Resolve(p, "")
	assert.ErrorIs(t, err, imobject.ErrInvalidArgument)
}

func TestResolveMethodError(t *testing.T) {
	_, err := attr.Resolve(person{}, "Initial")
	require.Error(t, err)
	assert.EqualError(t, err, "no name")
}

func TestResolveGetterIsAuthoritative(t *testing.T) {
	n := named{values: map[string]any{"k": "v"}}

	v, err := attr.Resolve(n, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", v)

	_, err = attr.Resolve(n, "Keys")
	assert.ErrorIs(t, err, imobject.ErrNotFound)
	_, err = attr.Resolve(n, "z")
	assert.ErrorIs(t, err, imobject.ErrNotFound)
}

// ─────────────────────────────────────────────────────────────────────────────
// Compare / Equal / Contains
// ─────────────────────────────────────────────────────────────────────────────

func TestCompare(t *testing.T) {
	cases := []struct {
		a, b any
		want int
		ok   bool
	}{
		{1, 2, -1, true},
		{2.5, 2, 1, true},
		{uint(3), int64(3), 0, true},
		{int64(1 << 62), int64(1<<62 + 1), -1, true},
		{int64(1<<53 + 1), float64(1 << 53), 1, true},
		{int8(-1), uint64(1<<64 - 1), -1, true},
		{"b", "a", 1, true},
		{false, true, -1, true},
		{1, "1", 0, false},
		{[]int{1}, []int{1}, 0, false},
		{nil, nil, 0, false},
	}
	for _, tc := range cases {
		got, ok := attr.Compare(tc.a, tc.b)
		assert.Equal(t, tc.ok, ok, "%v vs %v", tc.a, tc.b)
		if tc.ok {
			assert.Equal(t, tc.want, got, "%v vs %v", tc.a, tc.b)
		}
	}
}

func TestEqual(t *testing.T) {
	assert.True(t, attr.Equal(1, 1.0))
	assert.True(t, attr.Equal(uint8(7), int64(7)))
	assert.False(t, attr.Equal(1, "1"))
	assert.True(t, attr.Equal([]int{1, 2}, []any{1.0, 2}))
	assert.True(t, attr.Equal(list{"a"}, []string{"a"}))
	assert.True(t, attr.Equal(
		named{values: map[string]any{"a": []int{1}}},
		map[string]any{"a": []any{1}},
	))
	assert.False(t, attr.Equal(map[string]any{"a": 1}, map[string]any{"a": 2}))
	assert.True(t, attr.Equal(nil, nil))
	assert.False(t, attr.Equal(nil, 0))
}

func TestEqualKeepsIntegerPrecision(t *testing.T) {
	assert.False(t, attr.Equal(int64(1<<53), int64(1<<53+1)))
	assert.False(t, attr.Equal(uint64(1<<63), uint64(1<<63+1)))
	assert.True(t, attr.Equal(int64(1<<53+1), uint64(1<<53+1)))
	assert.False(t, attr.Equal(int64(-1), uint64(1<<64-1)))
	assert.False(t, attr.Equal(int64(1<<53+1), float64(1<<53)))
	assert.True(t, attr.Equal(1<<53, float64(1<<53)))
	assert.False(t, attr.Equal([]any{int64(1 << 53)}, []any{int64(1<<53 + 1)}))
	assert.False(t, attr.Equal(
		map[string]any{"id": int64(1 << 53)},
		map[string]any{"id": int64(1<<53 + 1)},
	))
	assert.False(t, attr.Equal(map[string]any{"a": 1}, map[string]any{"b": 1}))
}

func TestNormalize(t *testing.T) {
	got := attr.Normalize(map[string]any{
		"n":    3,
		"list": []int{1, 2},
		"seq":  list{"x"},
	})
	assert.Equal(t, map[string]any{
		"n":    3.0,
		"list": []any{1.0, 2.0},
		"seq":  []any{"x"},
	}, got)
}

func TestContains(t *testing.T) {
	found, ok := attr.Contains([]int{1, 2, 3}, 2.0)
	assert.True(t, ok)
	assert.True(t, found)

	found, ok = attr.Contains(list{"a", "b"}, "c")
	assert.True(t, ok)
	assert.False(t, found)

	found, ok = attr.Contains(map[string]struct{}{"x": {}}, "x")
	assert.True(t, ok)
	assert.True(t, found)

	found, ok = attr.Contains(map[int]bool{1: false, 2: true}, 1)
	assert.True(t, ok)
	assert.False(t, found)

	_, ok = attr.Contains(map[string]int{"x": 1}, "x")
	assert.False(t, ok)
	_, ok = attr.Contains("abc", "a")
	assert.False(t, ok)
	_, ok = attr.Contains(nil, "a")
	assert.False(t, ok)
}

func TestIsCollection(t *testing.T) {
	assert.True(t, attr.IsCollection([]string{}))
	assert.True(t, attr.IsCollection(list{}))
	assert.True(t, attr.IsCollection(map[string]struct{}{}))
	assert.False(t, attr.IsCollection(map[string]string{}))
	assert.False(t, attr.IsCollection("abc"))
	assert.False(t, attr.IsCollection(nil))
}

// ─────────────────────────────────────────────────────────────────────────────
// Call
// ─────────────────────────────────────────────────────────────────────────────

func TestCallMethod(t *testing.T) {
	p := alice()

	v, err := attr.Call(p, "Greeting")
	require.NoError(t, err)
	assert.Equal(t, "hello Alice", v)

	v, err = attr.Call(p, "Shout", "!", 2)
	require.NoError(t, err)
	assert.Equal(t, "ALICE!ALICE!", v)

	v, err = attr.Call(p, "Shout", "!", 2.0)
	require.NoError(t, err, "numeric arguments are converted")
	assert.Equal(t, "ALICE!ALICE!", v)

	v, err = attr.Call(p, "Join", "-", "b", "c")
	require.NoError(t, err)
	assert.Equal(t, "Alice-b-c", v)

	v, err = attr.Call(p, "Fail")
	assert.Nil(t, v)
	assert.EqualError(t, err, "boom")
}

func TestCallErrors(t *testing.T) {
	p := alice()

	_, err := attr.Call(p, "Missing")
	assert.ErrorIs(t, err, imobject.ErrNotFound)

	_, err = attr.Call(p, "Name")
	assert.ErrorIs(t, err, imobject.ErrNotCallable)

	_, err = attr.Call(p, "Shout", "!")
	assert.ErrorIs(t, err, imobject.ErrInvalidArgument)

	_, err = attr.Call(p, "Shout", 1, 2)
	assert.ErrorIs(t, err, imobject.ErrInvalidArgument)

	_, err = attr.Call(nil, "x")
	assert.ErrorIs(t, err, imobject.ErrNotFound)
}

func TestCallStoredFunc(t *testing.T) {
	m := map[string]any{
		"double": func(n int) int { return n * 2 },
		"label":  "not a func",
	}
	v, err := attr.Call(m, "double", 21)
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	_, err = attr.Call(m, "label")
	assert.ErrorIs(t, err, imobject.ErrNotCallable)
}

func TestCallCaller(t *testing.T) {
	d := &dispatcher{}
	v, err := attr.Call(d, "anything", 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	assert.Equal(t, []string{"anything"}, d.calls)
}

// ─────────────────────────────────────────────────────────────────────────────
// Fingerprint
// ─────────────────────────────────────────────────────────────────────────────

func TestFingerprint(t *testing.T) {
	a, err := attr.Fingerprint("x", []int{1, 2}, map[string]any{"k": 1})
	require.NoError(t, err)
	b, err := attr.Fingerprint("x", []any{1.0, 2}, map[string]any{"k": 1.0})
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := attr.Fingerprint("x", []int{2, 1}, map[string]any{"k": 1})
	require.NoError(t, err)
	assert.NotEqual(t, a, c)

	_, err = attr.Fingerprint(func() {})
	assert.ErrorIs(t, err, imobject.ErrInvalidArgument)
}
