// Package collections provides Collection[T], a generic ordered sequence
// with functional helpers and ORM-like query methods over in-memory data.
//
// # Overview
//
// A Collection holds any element type. The sequence helpers (Filter, Map,
// Reverse, Take, Head, Tail, ...) work on every T; the query methods
// resolve attributes on elements, so they expect maps, structs, or
// attribute containers such as objdict.ObjDict:
//
//	people := collections.New(
//	    map[string]any{"name": "Dave", "age": 30},
//	    map[string]any{"name": "Bob", "age": 40},
//	    map[string]any{"name": "Alice", "age": 25},
//	)
//
//	found, err := people.Where(query.Shorthand{"age__gt": 25, "name__contains": "v"})
//	// → [{name: Dave, age: 30}]
//
// # Immutability
//
// All transformation and query methods return a *new* Collection, leaving
// the receiver unchanged. The new collection references the same element
// values: a mutated element is visible through every collection holding
// it. Nothing here locks.
//
// # Query methods
//
//	Where       filter by shorthand filters and/or query trees
//	FindOneBy   the single match, or ErrNotFound / ErrMultipleResults
//	OrderBy     stable sort by attribute, key function or natural order
//	GroupBy     ordered partition by key
//	Limit       first n items (negative: drop from the end)
//	Offset      items after the first n (negative: keep the last -n)
//	All         shallow copy
//	Distinct    first occurrences, by value or by attribute tuple
//
// # Transform
//
// [Collection.Transform] maps each item through an [Invocation]: a
// function, a method reference or an attribute reference. Options select
// and order the items first:
//
//	upper, err := words.Transform(collections.MethodRef("Upper"),
//	    collections.TransformOptions[Word]{Limit: 3, Reverse: true})
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so
// operations that change the element type are exposed as package-level
// functions: [Map], [Reduce], [Pluck], [GroupBy], [KeyBy].
package collections
