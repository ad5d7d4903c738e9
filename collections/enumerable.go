package collections

import "github.com/mzakariabigdata/imobject/internal/attr"

// Enumerable is the read-only sequence surface satisfied by
// [Collection][T].
//
// Accept Enumerable in your own functions so that callers can pass any
// implementation without depending on the concrete *Collection type.
type Enumerable[T any] interface {
	// Count returns the number of items.
	Count() int

	// Each calls fn(item, index) for every item.
	Each(fn func(T, int))

	// Elements returns the items as []any.
	Elements() []any

	// First returns the first item, optionally matching fns[0].
	First(fns ...func(T) bool) (T, bool)

	// Last returns the last item, optionally matching fns[0].
	Last(fns ...func(T) bool) (T, bool)

	// IsEmpty reports whether the sequence contains no items.
	IsEmpty() bool

	// ToSlice returns a copy of every item as a plain Go slice.
	ToSlice() []T
}

var (
	_ Enumerable[any] = (*Collection[any])(nil)
	_ attr.Sequence   = (*Collection[any])(nil)
)
