package query

import "strings"

// Tree is an ordered group of nodes. When the first child is a *Tree the
// group is a disjunction over all children; otherwise it is a conjunction.
//
// Trees are immutable: And and Or build new trees.
type Tree struct {
	children []Node
}

// NewTree returns a tree over children.
func NewTree(children ...Node) *Tree {
	out := make([]Node, 0, len(children))
	for _, c := range children {
		if c != nil {
			out = append(out, c)
		}
	}
	return &Tree{children: out}
}

func (*Tree) node() {}

// And returns a conjunction built by concatenating the children of both
// trees.
func (t *Tree) And(other *Tree) *Tree {
	children := make([]Node, 0, t.Len()+other.Len())
	children = append(children, t.Children()...)
	children = append(children, other.Children()...)
	return &Tree{children: children}
}

// Or returns a two-child disjunction over t and other.
func (t *Tree) Or(other *Tree) *Tree {
	return &Tree{children: []Node{t, other}}
}

// Children returns a copy of the child list.
func (t *Tree) Children() []Node {
	if t == nil {
		return nil
	}
	out := make([]Node, len(t.children))
	copy(out, t.children)
	return out
}

// Len returns the number of direct children.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return len(t.children)
}

// IsDisjunction reports whether the tree evaluates as OR.
func (t *Tree) IsDisjunction() bool {
	if t.Len() == 0 {
		return false
	}
	_, ok := t.children[0].(*Tree)
	return ok
}

// Evaluate reports whether elem satisfies the tree. An empty tree is
// false.
func (t *Tree) Evaluate(elem any) (bool, error) {
	if t.Len() == 0 {
		return false, nil
	}
	or := t.IsDisjunction()
	for _, c := range t.children {
		ok, err := c.Evaluate(elem)
		if err != nil {
			return false, err
		}
		if ok == or {
			return or, nil
		}
	}
	return !or, nil
}

func (t *Tree) String() string {
	if t.Len() == 0 {
		return "()"
	}
	sep := " AND "
	if t.IsDisjunction() {
		sep = " OR "
	}
	parts := make([]string, len(t.children))
	for i, c := range t.children {
		if s, ok := c.(interface{ String() string }); ok {
			parts[i] = s.String()
		}
	}
	return "(" + strings.Join(parts, sep) + ")"
}
