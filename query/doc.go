// Package query provides the filter vocabulary used by collection queries:
// an operator table, single-attribute [Predicate] values, boolean [Tree]
// composition and the keyword-style [Shorthand] form.
//
// # Predicates
//
// A Predicate compares one attribute of an element with an operand:
//
//	query.NewPredicate("age", query.OpGt, 25)
//	query.NewPredicate("name", query.OpContains, "v")
//
// Attribute names may be dotted ("address.city") to reach nested values.
//
// Without an operator the predicate matches implicitly. A string operand
// that compiles as a regular expression is matched against the start of
// the stringified attribute value; any other operand is compared for
// equality:
//
//	query.Match("name", "^Da")  // regular expression, anchored at the start
//	query.Match("age", 30)      // equality
//
// Because most plain strings are valid patterns, Match("name", "Bob") also
// matches "Bobby". Use OpEq for exact string equality.
//
// # Type rules
//
// Operators check their operands before comparing and fail with an error
// wrapping imobject.ErrTypeMismatch:
//
//	lt gt lte gte   value and operand of the same orderable kind
//	eq not          value and operand of the same kind
//	in nin          operand is a slice, array, sequence or set-like map
//	contains        value and operand are strings
//	startswith      value and operand are strings
//	endswith        value and operand are strings
//
// Numbers of different Go types (int, float64, uint8, ...) share a kind.
//
// # Trees
//
// A [Tree] groups predicates. A tree whose first child is itself a tree is
// a disjunction; any other tree is a conjunction:
//
//	adults := query.NewTree(query.NewPredicate("age", query.OpGte, 18))
//	named  := query.NewTree(query.Match("name", "^A"))
//
//	adults.And(named) // age >= 18 AND name =~ ^A  (children concatenated)
//	adults.Or(named)  // age >= 18 OR  name =~ ^A  (two-child disjunction)
//
// Evaluation short-circuits, and the first error aborts it.
//
// # Shorthand
//
// [Shorthand] is the keyword form accepted by Collection.Where. Keys are
// "attribute" or "attribute__operator":
//
//	query.Shorthand{"age__gt": 25, "name__contains": "v"}
package query
