package collections

// This file contains package-level generic functions for operations that
// transform a Collection[T] to a Collection[U] (T ≠ U).
//
// Go generics do not allow methods to introduce their own type parameters, so
// these operations must be stand-alone functions:
//
//	names := collections.Pluck(people, func(p Person) string { return p.Name })

// Map applies fn to every item and returns a new Collection[U].
func Map[T, U any](c *Collection[T], fn func(T, int) U) *Collection[U] {
	out := make([]U, len(c.items))
	for i, item := range c.items {
		out[i] = fn(item, i)
	}
	return wrap(out)
}

// Reduce folds Collection[T] into a single value of type U.
//
//	total := collections.Reduce(orders,
//	    func(acc float64, o Order, _ int) float64 { return acc + o.Amount }, 0)
func Reduce[T, U any](c *Collection[T], fn func(U, T, int) U, initial U) U {
	result := initial
	for i, item := range c.items {
		result = fn(result, item, i)
	}
	return result
}

// Pluck extracts a single field U from every item T.
func Pluck[T, U any](c *Collection[T], fn func(T) U) *Collection[U] {
	return Map(c, func(item T, _ int) U { return fn(item) })
}

// GroupBy groups items by the comparable key K extracted by fn. Keys keep
// the order of their first occurrence.
//
//	byDept := collections.GroupBy(employees,
//	    func(e Employee) string { return e.Department })
func GroupBy[T any, K comparable](c *Collection[T], fn func(T) K) *Groups[K, T] {
	g := newGroups[K, T]()
	for _, item := range c.items {
		g.add(fn(item), item)
	}
	return g
}

// KeyBy builds a map[K]T keyed by the value extracted by fn.
// When multiple items share the same key, the last one wins.
func KeyBy[T any, K comparable](c *Collection[T], fn func(T) K) map[K]T {
	out := make(map[K]T, len(c.items))
	for _, item := range c.items {
		out[fn(item)] = item
	}
	return out
}
