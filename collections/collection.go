package collections

import (
	"encoding/json"
	"fmt"
	"iter"
	"sort"
)

// Collection is an ordered, duplicate-permitting sequence of T.
//
// Every method that transforms the collection returns a *new* Collection,
// leaving the receiver unchanged. Results hold the same element values as
// their source: when T is a pointer, map or container type, mutating an
// element through one collection is visible through the others.
//
// # Creating a collection
//
//	c := collections.New(1, 2, 3, 4, 5)
//	c := collections.From([]string{"a", "b", "c"})
//	c := collections.Empty[*objdict.ObjDict]()
//
// # Method chaining
//
//	result := collections.New(1, 2, 3, 4, 5, 6).
//	    Filter(func(n int, _ int) bool { return n%2 == 0 }).
//	    Reverse().
//	    Take(2) // [6 4]
//
// The query methods ([Collection.Where], [Collection.OrderBy], ...) resolve
// attributes on elements, so they work on any T whose values are maps,
// structs or attribute containers.
type Collection[T any] struct {
	items []T
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Collection from a variadic list of items (copied).
func New[T any](items ...T) *Collection[T] {
	return From(items)
}

// From creates a Collection from a slice (the slice is copied).
func From[T any](items []T) *Collection[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Collection[T]{items: dst}
}

// Empty creates an empty Collection of type T.
func Empty[T any]() *Collection[T] {
	return &Collection[T]{items: []T{}}
}

// wrap adopts items without copying. Callers must own the slice.
func wrap[T any](items []T) *Collection[T] {
	if items == nil {
		items = []T{}
	}
	return &Collection[T]{items: items}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// ToSlice returns a copy of the underlying slice.
func (c *Collection[T]) ToSlice() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Elements returns the items as []any.
func (c *Collection[T]) Elements() []any {
	out := make([]any, len(c.items))
	for i, item := range c.items {
		out[i] = item
	}
	return out
}

// Count returns the number of items in the collection.
func (c *Collection[T]) Count() int { return len(c.items) }

// IsEmpty reports whether the collection contains no items.
func (c *Collection[T]) IsEmpty() bool { return len(c.items) == 0 }

// IsNotEmpty reports whether the collection has at least one item.
func (c *Collection[T]) IsNotEmpty() bool { return len(c.items) > 0 }

// Get returns the item at index together with a presence flag.
func (c *Collection[T]) Get(index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(c.items) {
		return zero, false
	}
	return c.items[index], true
}

// ToJSON serialises the collection items to a JSON array.
func (c *Collection[T]) ToJSON() ([]byte, error) {
	return json.Marshal(c.items)
}

// MarshalJSON encodes the collection as a JSON array.
func (c *Collection[T]) MarshalJSON() ([]byte, error) { return c.ToJSON() }

// MarshalYAML encodes the collection as a YAML sequence.
func (c *Collection[T]) MarshalYAML() (any, error) { return c.items, nil }

// String returns a JSON representation of the collection.
func (c *Collection[T]) String() string {
	b, err := c.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", c.items)
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(item, index) for every item.
func (c *Collection[T]) Each(fn func(T, int)) {
	for i, item := range c.items {
		fn(item, i)
	}
}

// Items returns an iterator over (index, item) pairs.
//
//	for i, p := range people.Items() { ... }
func (c *Collection[T]) Items() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, item := range c.items {
			if !yield(i, item) {
				return
			}
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Search
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first item, optionally matching fns[0].
// Returns the zero value and false when the collection is empty or no item
// satisfies the predicate.
func (c *Collection[T]) First(fns ...func(T) bool) (T, bool) {
	for _, item := range c.items {
		if len(fns) == 0 || fns[0](item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Last returns the last item, optionally matching fns[0].
func (c *Collection[T]) Last(fns ...func(T) bool) (T, bool) {
	for i := len(c.items) - 1; i >= 0; i-- {
		if len(fns) == 0 || fns[0](c.items[i]) {
			return c.items[i], true
		}
	}
	var zero T
	return zero, false
}

// Head returns up to n items from the start. The result is absent when
// the collection is empty or n <= 0, a single item when exactly one item
// is available, and a collection otherwise.
func (c *Collection[T]) Head(n int) Pick[T] {
	if n <= 0 {
		return Pick[T]{}
	}
	return pickOf(c.Take(n).items)
}

// Tail returns up to n items from the end, with the same shape rules as
// [Collection.Head].
func (c *Collection[T]) Tail(n int) Pick[T] {
	if n <= 0 {
		return Pick[T]{}
	}
	return pickOf(c.Take(-n).items)
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation (type-preserving)
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns a new collection with only the items for which fn(item, index)
// returns true.
func (c *Collection[T]) Filter(fn func(T, int) bool) *Collection[T] {
	out := make([]T, 0, len(c.items))
	for i, item := range c.items {
		if fn(item, i) {
			out = append(out, item)
		}
	}
	return wrap(out)
}

// Reject is the complement of [Collection.Filter].
func (c *Collection[T]) Reject(fn func(T, int) bool) *Collection[T] {
	return c.Filter(func(item T, i int) bool { return !fn(item, i) })
}

// Map returns a new Collection[any] with each item transformed by fn.
// For a typed result use the package-level [Map].
func (c *Collection[T]) Map(fn func(T, int) any) *Collection[any] {
	return Map(c, fn)
}

// Reverse returns a new collection with items in reversed order.
func (c *Collection[T]) Reverse() *Collection[T] {
	n := len(c.items)
	out := make([]T, n)
	for i, item := range c.items {
		out[n-1-i] = item
	}
	return wrap(out)
}

// Sort returns a new collection sorted by less. The sort is stable.
func (c *Collection[T]) Sort(less func(a, b T) bool) *Collection[T] {
	out := c.ToSlice()
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return wrap(out)
}

// SortBy returns a new collection sorted in ascending order by the float64
// value extracted by fn.
func (c *Collection[T]) SortBy(fn func(T) float64) *Collection[T] {
	return c.Sort(func(a, b T) bool { return fn(a) < fn(b) })
}

// ─────────────────────────────────────────────────────────────────────────────
// Add
// ─────────────────────────────────────────────────────────────────────────────

// Push returns a new collection with items appended.
func (c *Collection[T]) Push(items ...T) *Collection[T] {
	out := make([]T, len(c.items)+len(items))
	copy(out, c.items)
	copy(out[len(c.items):], items)
	return wrap(out)
}

// Concat returns a new collection with all items from other appended.
func (c *Collection[T]) Concat(other *Collection[T]) *Collection[T] {
	if other == nil {
		return c.Push()
	}
	return c.Push(other.items...)
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
// ─────────────────────────────────────────────────────────────────────────────

// Take returns at most n items from the start.
// A negative n returns items from the end (Take(-3) is the last 3 items).
func (c *Collection[T]) Take(n int) *Collection[T] {
	total := len(c.items)
	if n < 0 {
		return From(c.items[max(total+n, 0):])
	}
	return From(c.items[:min(n, total)])
}

// Skip returns a new collection without the first n items.
// A negative n drops items counted from the end.
func (c *Collection[T]) Skip(n int) *Collection[T] {
	total := len(c.items)
	if n < 0 {
		return From(c.items[:max(total+n, 0)])
	}
	return From(c.items[min(n, total):])
}

// Chunk splits the collection into consecutive groups of size. The last
// group may be shorter. Returns nil if size <= 0.
func (c *Collection[T]) Chunk(size int) []*Collection[T] {
	if size <= 0 {
		return nil
	}
	chunks := make([]*Collection[T], 0, (len(c.items)+size-1)/size)
	for i := 0; i < len(c.items); i += size {
		chunks = append(chunks, From(c.items[i:min(i+size, len(c.items))]))
	}
	return chunks
}
