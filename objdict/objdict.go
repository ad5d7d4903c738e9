package objdict

import (
	"fmt"
	"iter"
	"slices"
	"sort"

	"github.com/mzakariabigdata/imobject"
	"github.com/mzakariabigdata/imobject/collections"
	"github.com/mzakariabigdata/imobject/internal/attr"
)

// ObjDict is an ordered mapping from string keys to values whose nested
// maps and slices are always held as *ObjDict and
// *collections.Collection[any].
//
// The zero value is an empty ObjDict ready to use. An ObjDict is not safe
// for concurrent mutation.
type ObjDict struct {
	keys   []string
	values map[string]any
}

// Pair is one key/value entry, used by [FromPairs].
type Pair struct {
	Key   string
	Value any
}

var _ attr.Mapping = (*ObjDict)(nil)

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New returns an empty ObjDict.
func New() *ObjDict {
	return &ObjDict{values: make(map[string]any)}
}

// From builds an ObjDict from m, wrapping nested values. Go maps have no
// order, so keys are inserted in sorted order.
func From(m map[string]any) *ObjDict {
	d := &ObjDict{values: make(map[string]any, len(m))}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		d.Set(k, m[k])
	}
	return d
}

// FromPairs builds an ObjDict keeping the order of pairs. A repeated key
// keeps its first position and its last value.
func FromPairs(pairs ...Pair) *ObjDict {
	d := &ObjDict{values: make(map[string]any, len(pairs))}
	for _, p := range pairs {
		d.Set(p.Key, p.Value)
	}
	return d
}

// ─────────────────────────────────────────────────────────────────────────────
// Access
// ─────────────────────────────────────────────────────────────────────────────

// Get returns the value stored under key, or an error wrapping
// [imobject.ErrNotFound].
func (d *ObjDict) Get(key string) (any, error) {
	v, ok := d.Lookup(key)
	if !ok {
		return nil, missing(key)
	}
	return v, nil
}

// Lookup returns the value stored under key.
func (d *ObjDict) Lookup(key string) (any, bool) {
	if d == nil {
		return nil, false
	}
	v, ok := d.values[key]
	return v, ok
}

// Has reports whether key is present.
func (d *ObjDict) Has(key string) bool {
	_, ok := d.Lookup(key)
	return ok
}

// Set stores value under key after wrapping it. A new key is appended;
// an existing key keeps its position.
func (d *ObjDict) Set(key string, value any) {
	if d.values == nil {
		d.values = make(map[string]any)
	}
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = Wrap(value)
}

// Delete removes key, or returns an error wrapping [imobject.ErrNotFound].
func (d *ObjDict) Delete(key string) error {
	if !d.Has(key) {
		return missing(key)
	}
	delete(d.values, key)
	d.keys = slices.DeleteFunc(d.keys, func(k string) bool { return k == key })
	return nil
}

// Len returns the number of keys.
func (d *ObjDict) Len() int {
	if d == nil {
		return 0
	}
	return len(d.keys)
}

// Keys returns the keys in insertion order.
func (d *ObjDict) Keys() []string {
	if d == nil {
		return []string{}
	}
	return slices.Clone(d.keys)
}

// Values returns the values in key order.
func (d *ObjDict) Values() []any {
	out := make([]any, 0, d.Len())
	for _, v := range d.All() {
		out = append(out, v)
	}
	return out
}

// Each calls fn for every entry in key order.
func (d *ObjDict) Each(fn func(key string, value any)) {
	for k, v := range d.All() {
		fn(k, v)
	}
}

// All returns an iterator over the entries in key order.
func (d *ObjDict) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if d == nil {
			return
		}
		for _, k := range d.keys {
			if !yield(k, d.values[k]) {
				return
			}
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Derived containers
// ─────────────────────────────────────────────────────────────────────────────

// Select returns a new ObjDict holding only keys, in the order given.
// keys must be a []string, a []any of strings or a collection of strings;
// anything else fails with [imobject.ErrInvalidArgument]. A key that is
// not present fails with [imobject.ErrNotFound].
func (d *ObjDict) Select(keys any) (*ObjDict, error) {
	names, err := stringList(keys)
	if err != nil {
		return nil, err
	}
	out := &ObjDict{values: make(map[string]any, len(names))}
	for _, k := range names {
		v, ok := d.Lookup(k)
		if !ok {
			return nil, missing(k)
		}
		out.Set(k, v)
	}
	return out, nil
}

func stringList(keys any) ([]string, error) {
	var elems []any
	switch ks := keys.(type) {
	case []string:
		return ks, nil
	case []any:
		elems = ks
	case attr.Sequence:
		elems = ks.Elements()
	default:
		return nil, fmt.Errorf("%w: keys should be a list of strings, got %T",
			imobject.ErrInvalidArgument, keys)
	}
	out := make([]string, len(elems))
	for i, e := range elems {
		s, ok := e.(string)
		if !ok {
			return nil, fmt.Errorf("%w: key %v at position %d is not a string",
				imobject.ErrInvalidArgument, e, i)
		}
		out[i] = s
	}
	return out, nil
}

// Except returns a copy of d without keys. Missing keys are ignored.
func (d *ObjDict) Except(keys ...string) *ObjDict {
	out := New()
	for k, v := range d.All() {
		if !slices.Contains(keys, k) {
			out.Set(k, v)
		}
	}
	return out
}

// Merge sets every entry of other on d, replacing existing values. other
// may be an *ObjDict, any map with string keys, or another ordered
// mapping.
func (d *ObjDict) Merge(other any) error {
	src, err := asObjDict(other)
	if err != nil {
		return err
	}
	for k, v := range src.All() {
		d.Set(k, v)
	}
	return nil
}

// MergeDeep is like Merge but merges nested ObjDicts key by key instead of
// replacing them.
func (d *ObjDict) MergeDeep(other any) error {
	src, err := asObjDict(other)
	if err != nil {
		return err
	}
	d.mergeDeep(src)
	return nil
}

func (d *ObjDict) mergeDeep(src *ObjDict) {
	for k, srcVal := range src.All() {
		if dstVal, ok := d.Lookup(k); ok {
			dstDict, dstIsDict := dstVal.(*ObjDict)
			srcDict, srcIsDict := srcVal.(*ObjDict)
			if dstIsDict && srcIsDict {
				dstDict.mergeDeep(srcDict)
				continue
			}
		}
		d.Set(k, srcVal)
	}
}

func asObjDict(v any) (*ObjDict, error) {
	if od, ok := v.(*ObjDict); ok && od != nil {
		return od, nil
	}
	if m, ok := v.(attr.Mapping); ok {
		out := New()
		for _, k := range m.Keys() {
			val, _ := m.Lookup(k)
			out.Set(k, val)
		}
		return out, nil
	}
	if od, ok := Wrap(v).(*ObjDict); ok {
		return od, nil
	}
	return nil, fmt.Errorf("%w: expected a mapping, got %T", imobject.ErrInvalidArgument, v)
}

// ToPlain converts d back to plain Go values. Nested ObjDicts become
// map[string]any recursively. Nested collections become []any holding
// the same elements, so ObjDicts inside a list stay wrapped.
func (d *ObjDict) ToPlain() map[string]any {
	out := make(map[string]any, d.Len())
	for k, v := range d.All() {
		switch x := v.(type) {
		case *ObjDict:
			out[k] = x.ToPlain()
		case *collections.Collection[any]:
			out[k] = x.ToSlice()
		default:
			out[k] = v
		}
	}
	return out
}

// Copy returns a deep copy of d. Nested ObjDicts and collections are
// copied; other values are shared. A nil d copies to an empty ObjDict.
func (d *ObjDict) Copy() *ObjDict {
	if d == nil {
		return New()
	}
	out := &ObjDict{keys: slices.Clone(d.keys), values: make(map[string]any, d.Len())}
	for k, v := range d.All() {
		out.values[k] = clone(v)
	}
	return out
}

func clone(v any) any {
	switch x := v.(type) {
	case *ObjDict:
		return x.Copy()
	case *collections.Collection[any]:
		return collections.Map(x, func(e any, _ int) any { return clone(e) })
	}
	return v
}

// Equal reports whether d and other hold structurally equal data. other
// may be an ObjDict or a plain map. Key order is ignored and numbers
// compare by value.
func (d *ObjDict) Equal(other any) bool {
	return attr.Equal(d, other)
}

// String returns d as JSON.
func (d *ObjDict) String() string {
	b, err := d.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("ObjDict%v", d.ToPlain())
	}
	return string(b)
}

func missing(key string) error {
	return fmt.Errorf("%w: ObjDict has no attribute %q", imobject.ErrNotFound, key)
}
