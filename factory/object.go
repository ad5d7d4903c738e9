package factory

import (
	"fmt"
	"slices"

	"github.com/mzakariabigdata/imobject"
	"github.com/mzakariabigdata/imobject/collections"
	"github.com/mzakariabigdata/imobject/internal/attr"
)

// Object is a built instance: the value returned by the constructor plus
// the children attached to its named slots.
//
// Object is attribute-addressable, so built graphs can be handed straight
// to collection queries: a slot name resolves to its child (or list of
// children), any other name resolves on Value.
//
//	parents := collections.New[any](a, b)
//	found, _ := parents.Where(query.Shorthand{"child.name": "kid"})
type Object struct {
	Type  string
	Value any

	slots []string
	refs  map[string]any
}

var (
	_ attr.Getter = (*Object)(nil)
	_ attr.Caller = (*Object)(nil)
)

func newObject(typ string, value any) *Object {
	return &Object{Type: typ, Value: value, refs: make(map[string]any)}
}

// SetChild attaches v to the slot called name, replacing any previous
// value. v is usually an *Object or a *collections.Collection[any] of
// them.
func (o *Object) SetChild(name string, v any) {
	if o.refs == nil {
		o.refs = make(map[string]any)
	}
	if _, ok := o.refs[name]; !ok {
		o.slots = append(o.slots, name)
	}
	o.refs[name] = v
}

// Child returns the single child in slot name.
func (o *Object) Child(name string) (*Object, error) {
	v, ok := o.refs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s has no slot %q", imobject.ErrNotFound, o.Type, name)
	}
	child, ok := v.(*Object)
	if !ok {
		return nil, fmt.Errorf("%w: slot %s.%s holds %T, not a single object",
			imobject.ErrInvalidArgument, o.Type, name, v)
	}
	return child, nil
}

// ChildList returns the children in list slot name. The collection
// supports the usual queries.
func (o *Object) ChildList(name string) (*collections.Collection[any], error) {
	v, ok := o.refs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s has no slot %q", imobject.ErrNotFound, o.Type, name)
	}
	list, ok := v.(*collections.Collection[any])
	if !ok {
		return nil, fmt.Errorf("%w: slot %s.%s holds %T, not a list",
			imobject.ErrInvalidArgument, o.Type, name, v)
	}
	return list, nil
}

// Slots returns the slot names in the order they were attached.
func (o *Object) Slots() []string {
	return slices.Clone(o.slots)
}

// Lookup resolves name as a slot first, then as an attribute of Value.
func (o *Object) Lookup(name string) (any, bool) {
	if o == nil {
		return nil, false
	}
	if v, ok := o.refs[name]; ok {
		return v, true
	}
	if name == "Type" {
		return o.Type, true
	}
	if o.Value == nil {
		return nil, false
	}
	v, err := attr.Resolve(o.Value, name)
	if err != nil {
		return nil, false
	}
	return v, true
}

// CallMethod calls a method of Value.
func (o *Object) CallMethod(name string, args ...any) (any, error) {
	return attr.Call(o.Value, name, args...)
}

func (o *Object) String() string {
	return fmt.Sprintf("%s%v", o.Type, o.Slots())
}
