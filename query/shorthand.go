package query

import (
	"fmt"
	"slices"
	"strings"

	"github.com/mzakariabigdata/imobject"
)

// separator splits an attribute from its operator in a shorthand key.
const separator = "__"

// Shorthand is the keyword form of a conjunction: each key is "attribute"
// or "attribute__operator" and maps to the operand.
type Shorthand map[string]any

// ParseKey splits a shorthand key into attribute and operator. A bare
// attribute yields an empty operator.
func ParseKey(key string) (string, Operator, error) {
	parts := strings.Split(key, separator)
	switch {
	case len(parts) > 2:
		return "", "", fmt.Errorf("%w: filter key %q has more than one %q", imobject.ErrInvalidArgument, key, separator)
	case parts[0] == "":
		return "", "", fmt.Errorf("%w: filter key %q has no attribute", imobject.ErrInvalidArgument, key)
	case len(parts) == 1:
		return key, "", nil
	}
	op, err := ParseOperator(parts[1])
	if err != nil {
		return "", "", err
	}
	return parts[0], op, nil
}

// Predicates expands s into predicates, sorted by key.
func (s Shorthand) Predicates() ([]Predicate, error) {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	out := make([]Predicate, 0, len(keys))
	for _, k := range keys {
		attribute, op, err := ParseKey(k)
		if err != nil {
			return nil, err
		}
		out = append(out, Predicate{Attribute: attribute, Operator: op, Operand: s[k]})
	}
	return out, nil
}

// Tree returns the conjunction of s as a tree.
func (s Shorthand) Tree() (*Tree, error) {
	preds, err := s.Predicates()
	if err != nil {
		return nil, err
	}
	nodes := make([]Node, len(preds))
	for i, p := range preds {
		nodes[i] = p
	}
	return NewTree(nodes...), nil
}
