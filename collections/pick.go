package collections

// Pick is the result of [Collection.Head] and [Collection.Tail]: nothing,
// one item, or several items.
type Pick[T any] struct {
	items []T
}

func pickOf[T any](items []T) Pick[T] {
	return Pick[T]{items: items}
}

// Len returns the number of picked items.
func (p Pick[T]) Len() int { return len(p.items) }

// IsAbsent reports whether nothing was picked.
func (p Pick[T]) IsAbsent() bool { return len(p.items) == 0 }

// One returns the item when exactly one was picked.
func (p Pick[T]) One() (T, bool) {
	if len(p.items) != 1 {
		var zero T
		return zero, false
	}
	return p.items[0], true
}

// Many returns the picked items as a collection when more than one was
// picked.
func (p Pick[T]) Many() (*Collection[T], bool) {
	if len(p.items) < 2 {
		return nil, false
	}
	return From(p.items), true
}

// Collection returns every picked item, whatever the shape.
func (p Pick[T]) Collection() *Collection[T] { return From(p.items) }

// Value returns nil, the single T, or a *Collection[T].
func (p Pick[T]) Value() any {
	switch len(p.items) {
	case 0:
		return nil
	case 1:
		return p.items[0]
	}
	return From(p.items)
}
