package collections

import (
	"fmt"
	"reflect"
	"unicode/utf8"

	"github.com/mzakariabigdata/imobject"
	"github.com/mzakariabigdata/imobject/internal/attr"
	"github.com/mzakariabigdata/imobject/query"
)

// ─────────────────────────────────────────────────────────────────────────────
// Filtering
// ─────────────────────────────────────────────────────────────────────────────

// Where returns the items matching the filters, in their original order.
//
// The shorthand filters form one conjunction. An item is kept when it
// satisfies any of the trees, or when it satisfies every shorthand filter:
//
//	adults, err := people.Where(query.Shorthand{"age__gte": 18})
//	either, err := people.Where(nil, q30.Or(q40))
//
// With no filters and no tree conditions the result is empty, never the
// whole collection. An unknown operator or a failing predicate aborts the
// query.
func (c *Collection[T]) Where(filters query.Shorthand, trees ...*query.Tree) (*Collection[T], error) {
	preds, err := filters.Predicates()
	if err != nil {
		return nil, err
	}
	total := len(preds)
	for _, t := range trees {
		total += t.Len()
	}
	if total == 0 {
		return Empty[T](), nil
	}

	out := make([]T, 0)
	for i, item := range c.items {
		ok, err := matches(item, preds, trees)
		if err != nil {
			return nil, atItem(i, err)
		}
		if ok {
			out = append(out, item)
		}
	}
	return wrap(out), nil
}

func matches(item any, preds []query.Predicate, trees []*query.Tree) (bool, error) {
	for _, t := range trees {
		ok, err := t.Evaluate(item)
		if err != nil || ok {
			return ok, err
		}
	}
	if len(preds) == 0 {
		return false, nil
	}
	for _, p := range preds {
		ok, err := p.Evaluate(item)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

// FindOneBy returns the single item matching filters. It fails with
// [imobject.ErrNotFound] when nothing matches and with
// [imobject.ErrMultipleResults] when several items do.
func (c *Collection[T]) FindOneBy(filters query.Shorthand) (T, error) {
	var zero T
	found, err := c.Where(filters)
	if err != nil {
		return zero, err
	}
	switch found.Count() {
	case 0:
		return zero, fmt.Errorf("%w: no item matches %v", imobject.ErrNotFound, map[string]any(filters))
	case 1:
		return found.items[0], nil
	}
	return zero, fmt.Errorf("%w: %d items match %v",
		imobject.ErrMultipleResults, found.Count(), map[string]any(filters))
}

// ─────────────────────────────────────────────────────────────────────────────
// Ordering
// ─────────────────────────────────────────────────────────────────────────────

// OrderBy returns the items stably sorted by key:
//
//   - nil or "": natural order. Items must all be numbers (sorted by value)
//     or all be strings (sorted by length).
//   - string: the named attribute of each item.
//   - []string: several attributes, compared in turn.
//   - func(T) any or func(any) any: the returned value. Return []any to
//     sort on several criteria.
//
// With reverse, larger keys come first and items with equal keys keep
// their original order. Any other key fails with an error wrapping both
// [imobject.ErrNotCallable] and [imobject.ErrInvalidArgument]; keys that
// cannot be ordered against each other fail with a
// [*imobject.TypeMismatchError].
func (c *Collection[T]) OrderBy(key any, reverse bool) (*Collection[T], error) {
	var keyOf func(T) (any, error)
	switch k := key.(type) {
	case nil:
		return c.naturalOrder(reverse)
	case string:
		if k == "" {
			return c.naturalOrder(reverse)
		}
		keyOf = func(item T) (any, error) { return attr.Resolve(item, k) }
	case []string:
		keyOf = func(item T) (any, error) {
			tuple := make([]any, len(k))
			for i, name := range k {
				v, err := attr.Resolve(item, name)
				if err != nil {
					return nil, err
				}
				tuple[i] = v
			}
			return tuple, nil
		}
	case func(T) any:
		keyOf = func(item T) (any, error) { return k(item), nil }
	case func(any) any:
		keyOf = func(item T) (any, error) { return k(item), nil }
	default:
		return nil, fmt.Errorf("%w: %w: order key must be an attribute name or a function, got %T",
			imobject.ErrNotCallable, imobject.ErrInvalidArgument, key)
	}

	keys := make([]any, len(c.items))
	for i, item := range c.items {
		v, err := keyOf(item)
		if err != nil {
			return nil, atItem(i, err)
		}
		keys[i] = v
	}
	sorted, err := sortByKeys(c.items, keys, reverse)
	if err != nil {
		return nil, err
	}
	return wrap(sorted), nil
}

func (c *Collection[T]) naturalOrder(reverse bool) (*Collection[T], error) {
	kind, ok := uniformScalarKind(c.items)
	if !ok {
		return nil, fmt.Errorf("%w: without a key, items must all be numbers or all be strings",
			imobject.ErrInvalidArgument)
	}
	keys := make([]any, len(c.items))
	for i, item := range c.items {
		if kind == attr.KindString {
			keys[i] = utf8.RuneCountInString(reflect.ValueOf(item).String())
		} else {
			keys[i] = any(item)
		}
	}
	sorted, err := sortByKeys(c.items, keys, reverse)
	if err != nil {
		return nil, err
	}
	return wrap(sorted), nil
}

// uniformScalarKind reports the shared kind of items when they are all
// numbers or all strings. An empty slice counts as numbers.
func uniformScalarKind[T any](items []T) (attr.Kind, bool) {
	kind := attr.KindNumber
	for i, item := range items {
		k := attr.KindOf(item)
		if !attr.IsScalar(item) {
			return k, false
		}
		if i == 0 {
			kind = k
		} else if k != kind {
			return k, false
		}
	}
	return kind, true
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
// ─────────────────────────────────────────────────────────────────────────────

// Limit returns the first n items. A negative n drops n items from the
// end.
func (c *Collection[T]) Limit(n int) *Collection[T] {
	if n < 0 {
		return c.Skip(n)
	}
	return c.Take(n)
}

// Offset returns the items after the first n. A negative n keeps only the
// last -n items.
func (c *Collection[T]) Offset(n int) *Collection[T] {
	if n < 0 {
		return c.Take(n)
	}
	return c.Skip(n)
}

// All returns a shallow copy of the collection.
func (c *Collection[T]) All() *Collection[T] {
	return From(c.items)
}

// ─────────────────────────────────────────────────────────────────────────────
// Distinct
// ─────────────────────────────────────────────────────────────────────────────

// Distinct removes duplicates, keeping first occurrences in order.
//
// Without fields the items themselves are compared; they must all be
// numbers or all be strings, otherwise Distinct fails with
// [imobject.ErrInvalidArgument]. Numbers compare by value, so 1 and 1.0
// are duplicates.
//
// With fields, items are compared on the tuple of those attribute values:
//
//	people.Distinct("city", "age")
func (c *Collection[T]) Distinct(fields ...string) (*Collection[T], error) {
	if len(fields) == 0 {
		if _, ok := uniformScalarKind(c.items); !ok {
			return nil, fmt.Errorf("%w: at least one field must be given unless items are all numbers or all strings",
				imobject.ErrInvalidArgument)
		}
		return c.distinctBy(func(item T) ([]any, error) { return []any{item}, nil })
	}
	return c.distinctBy(func(item T) ([]any, error) {
		tuple := make([]any, len(fields))
		for j, f := range fields {
			v, err := attr.Resolve(item, f)
			if err != nil {
				return nil, err
			}
			tuple[j] = v
		}
		return tuple, nil
	})
}

// distinctBy buckets items by the fingerprint of their key tuple and
// confirms duplicates with attr.Equal, which keeps integer precision.
func (c *Collection[T]) distinctBy(key func(T) ([]any, error)) (*Collection[T], error) {
	seen := make(map[uint64][][]any)
	out := make([]T, 0)
	for i, item := range c.items {
		tuple, err := key(item)
		if err != nil {
			return nil, atItem(i, err)
		}
		h, err := attr.Fingerprint(tuple...)
		if err != nil {
			return nil, atItem(i, err)
		}
		if containsTuple(seen[h], tuple) {
			continue
		}
		seen[h] = append(seen[h], tuple)
		out = append(out, item)
	}
	return wrap(out), nil
}

func containsTuple(bucket [][]any, tuple []any) bool {
	for _, other := range bucket {
		if attr.Equal(other, tuple) {
			return true
		}
	}
	return false
}
