package objdict

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mzakariabigdata/imobject"
	"github.com/mzakariabigdata/imobject/collections"
)

// ─────────────────────────────────────────────────────────────────────────────
// Dot-notation paths
//
// A path is a dot-separated list of keys walking nested ObjDicts. While
// reading, a numeric segment also indexes into a collection:
//
//	d.GetPath("user.address.city")   → "London"
//	d.GetPath("user.phones.0")       → first phone
//	d.SetPath("user.age", 30)
//	d.HasPath("user.name")           → true
//	d.ForgetPath("user.address")
// ─────────────────────────────────────────────────────────────────────────────

// GetPath returns the value at path. A key that literally contains dots
// is found before the path is split.
func (d *ObjDict) GetPath(path string) (any, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", imobject.ErrInvalidArgument)
	}
	if v, ok := d.Lookup(path); ok {
		return v, nil
	}

	var cur any = d
	for _, seg := range strings.Split(path, ".") {
		next, ok := step(cur, seg)
		if !ok {
			return nil, fmt.Errorf("%w: path %q has no value at %q", imobject.ErrNotFound, path, seg)
		}
		cur = next
	}
	return cur, nil
}

func step(cur any, seg string) (any, bool) {
	switch c := cur.(type) {
	case *ObjDict:
		return c.Lookup(seg)
	case *collections.Collection[any]:
		i, err := strconv.Atoi(seg)
		if err != nil {
			return nil, false
		}
		return c.Get(i)
	}
	return nil, false
}

// HasPath reports whether a value exists at path.
func (d *ObjDict) HasPath(path string) bool {
	_, err := d.GetPath(path)
	return err == nil
}

// SetPath stores value at path, creating intermediate ObjDicts as needed.
// An intermediate value that is not an ObjDict is replaced.
func (d *ObjDict) SetPath(path string, value any) {
	head, rest, found := strings.Cut(path, ".")
	if !found {
		d.Set(path, value)
		return
	}
	nested, ok := d.values[head].(*ObjDict)
	if !ok {
		nested = New()
		d.Set(head, nested)
	}
	nested.SetPath(rest, value)
}

// ForgetPath removes the value at path and reports whether it existed.
// Intermediate ObjDicts are left in place.
func (d *ObjDict) ForgetPath(path string) bool {
	head, rest, found := strings.Cut(path, ".")
	if !found {
		return d.Delete(path) == nil
	}
	nested, ok := d.values[head].(*ObjDict)
	if !ok {
		return false
	}
	return nested.ForgetPath(rest)
}

// Dot flattens nested ObjDicts into a single level keyed by dot paths.
// Collections are kept as values.
//
//	{"a": {"b": 1}, "c": 2}  →  {"a.b": 1, "c": 2}
func (d *ObjDict) Dot() *ObjDict {
	out := New()
	dotFlatten("", d, out)
	return out
}

func dotFlatten(prefix string, d *ObjDict, out *ObjDict) {
	for k, v := range d.All() {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(*ObjDict); ok && nested.Len() > 0 {
			dotFlatten(key, nested, out)
		} else {
			out.Set(key, v)
		}
	}
}

// Undot expands dot-path keys into nested ObjDicts; the inverse of Dot.
//
//	{"a.b": 1, "a.c": 2}  →  {"a": {"b": 1, "c": 2}}
func (d *ObjDict) Undot() *ObjDict {
	out := New()
	for k, v := range d.All() {
		out.SetPath(k, v)
	}
	return out
}
