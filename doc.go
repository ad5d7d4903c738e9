// Package imobject is the root of a small in-memory data-query library.
//
// The library is split into focused packages:
//
//   - [github.com/mzakariabigdata/imobject/objdict]: ObjDict, an ordered
//     attribute container that wraps nested maps and slices on write.
//   - [github.com/mzakariabigdata/imobject/collections]: Collection[T], a
//     generic sequence with transform helpers and ORM-like query methods
//     (Where, FindOneBy, OrderBy, GroupBy, Distinct, ...).
//   - [github.com/mzakariabigdata/imobject/query]: Predicate, Tree and the
//     operator table used by Collection.Where.
//   - [github.com/mzakariabigdata/imobject/factory]: a registry-driven
//     builder that turns configuration trees into object graphs.
//
// This root package only declares the error kinds shared by all of them.
// Compare with [errors.Is]:
//
//	_, err := people.FindOneBy(query.Shorthand{"name": "Bob"})
//	if errors.Is(err, imobject.ErrMultipleResults) {
//	    // narrow the filter
//	}
//
// # Aliasing
//
// Query results are new collections, but they hold the same element
// references as their source. Mutating an element reached through one
// collection is visible through every other collection holding it.
// Nothing in this library locks: mutating an element from another
// goroutine while a query runs over it is the caller's responsibility.
package imobject
