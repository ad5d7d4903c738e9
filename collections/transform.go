package collections

import (
	"fmt"
	"strings"

	"github.com/mzakariabigdata/imobject"
	"github.com/mzakariabigdata/imobject/internal/attr"
)

// Func is a callable applied to each item by [Collection.Transform]. args
// are the extra arguments given to Transform.
type Func func(item any, args ...any) (any, error)

// InvocationKind tags the variant held by an [Invocation].
type InvocationKind uint8

const (
	InvokeNone InvocationKind = iota
	InvokeCallable
	InvokeMethod
	InvokeAttribute
)

// Invocation says what [Collection.Transform] does with each item: call a
// function, call a named method, or read a named attribute. The zero
// value is invalid.
type Invocation struct {
	kind InvocationKind
	fn   Func
	name string
}

// Callable applies fn to each item.
func Callable(fn Func) Invocation {
	return Invocation{kind: InvokeCallable, fn: fn}
}

// MethodRef calls the method called name on each item, forwarding the
// Transform arguments.
func MethodRef(name string) Invocation {
	return Invocation{kind: InvokeMethod, name: name}
}

// AttributeRef reads the attribute called name on each item.
func AttributeRef(name string) Invocation {
	return Invocation{kind: InvokeAttribute, name: name}
}

// ParseInvocation reads the string form of an invocation: ":name" is a
// method reference and ".name" an attribute reference.
func ParseInvocation(s string) (Invocation, error) {
	switch {
	case len(s) > 1 && s[0] == ':':
		return MethodRef(s[1:]), nil
	case len(s) > 1 && s[0] == '.':
		return AttributeRef(s[1:]), nil
	}
	return Invocation{}, fmt.Errorf(
		"%w: invocation %q must start with ':' for a method or '.' for an attribute",
		imobject.ErrInvalidArgument, s)
}

// Kind returns the variant tag.
func (inv Invocation) Kind() InvocationKind { return inv.kind }

// Name returns the method or attribute name, or "" for a callable.
func (inv Invocation) Name() string { return inv.name }

func (inv Invocation) String() string {
	switch inv.kind {
	case InvokeCallable:
		return "callable"
	case InvokeMethod:
		return ":" + inv.name
	case InvokeAttribute:
		return "." + inv.name
	}
	return "<none>"
}

func (inv Invocation) validate(args []any) error {
	switch inv.kind {
	case InvokeNone:
		return fmt.Errorf("%w: an invocation is required", imobject.ErrInvalidArgument)
	case InvokeCallable:
		if inv.fn == nil {
			return fmt.Errorf("%w: callable invocation has a nil function", imobject.ErrInvalidArgument)
		}
	case InvokeMethod, InvokeAttribute:
		if strings.TrimSpace(inv.name) == "" {
			return fmt.Errorf("%w: invocation %s has an empty name", imobject.ErrInvalidArgument, inv)
		}
		if inv.kind == InvokeAttribute && len(args) > 0 {
			return fmt.Errorf("%w: attribute reference %s takes no arguments", imobject.ErrInvalidArgument, inv)
		}
	default:
		return fmt.Errorf("%w: unknown invocation kind %d", imobject.ErrInvalidArgument, inv.kind)
	}
	return nil
}

func (inv Invocation) apply(item any, args []any) (any, error) {
	switch inv.kind {
	case InvokeCallable:
		return inv.fn(item, args...)
	case InvokeMethod:
		return attr.Call(item, inv.name, args...)
	default:
		return attr.Resolve(item, inv.name)
	}
}

// TransformOptions select and order the items before the invocation runs.
// The zero value processes every item in order.
type TransformOptions[T any] struct {
	// Filter keeps only the items for which it returns true.
	Filter func(T) bool
	// Limit truncates the source to its first Limit items. 0 means no
	// limit; a negative value drops items from the end.
	Limit int
	// Reverse processes items in reverse order.
	Reverse bool
	// SortKey stably sorts items by the returned key. Keys must be
	// mutually orderable.
	SortKey func(T) any
}

// Transform applies inv to each selected item and collects the results.
//
// Items are processed strictly in this order: truncate by Limit, reverse,
// sort by SortKey, filter, then invoke. The first failing invocation
// aborts the whole transform.
//
//	names, err := people.Transform(collections.AttributeRef("name"),
//	    collections.TransformOptions[*objdict.ObjDict]{Limit: 10})
func (c *Collection[T]) Transform(inv Invocation, opts TransformOptions[T], args ...any) (*Collection[any], error) {
	out, err := c.TransformList(inv, opts, args...)
	if err != nil {
		return nil, err
	}
	return wrap(out), nil
}

// TransformList is [Collection.Transform] returning a plain slice.
func (c *Collection[T]) TransformList(inv Invocation, opts TransformOptions[T], args ...any) ([]any, error) {
	if err := inv.validate(args); err != nil {
		return nil, err
	}

	items := c.items
	if opts.Limit != 0 {
		items = c.Limit(opts.Limit).items
	}
	if opts.Reverse {
		items = wrap(items).Reverse().items
	}
	if opts.SortKey != nil {
		keys := make([]any, len(items))
		for i, item := range items {
			keys[i] = opts.SortKey(item)
		}
		sorted, err := sortByKeys(items, keys, false)
		if err != nil {
			return nil, err
		}
		items = sorted
	}

	out := make([]any, 0, len(items))
	for i, item := range items {
		if opts.Filter != nil && !opts.Filter(item) {
			continue
		}
		v, err := inv.apply(item, args)
		if err != nil {
			return nil, atItem(i, err)
		}
		out = append(out, v)
	}
	return out, nil
}
