package collections

import (
	"fmt"
	"iter"
	"reflect"

	"github.com/mzakariabigdata/imobject"
	"github.com/mzakariabigdata/imobject/internal/attr"
)

// Groups is an ordered partition of a collection: each key maps to the
// items that produced it, and keys keep the order of their first
// occurrence.
type Groups[K comparable, T any] struct {
	keys   []K
	groups map[K]*Collection[T]
}

func newGroups[K comparable, T any]() *Groups[K, T] {
	return &Groups[K, T]{groups: make(map[K]*Collection[T])}
}

func (g *Groups[K, T]) add(k K, item T) {
	c, ok := g.groups[k]
	if !ok {
		c = Empty[T]()
		g.groups[k] = c
		g.keys = append(g.keys, k)
	}
	c.items = append(c.items, item)
}

// Len returns the number of groups.
func (g *Groups[K, T]) Len() int { return len(g.keys) }

// Keys returns the group keys in first-occurrence order.
func (g *Groups[K, T]) Keys() []K {
	out := make([]K, len(g.keys))
	copy(out, g.keys)
	return out
}

// Get returns the group for k.
func (g *Groups[K, T]) Get(k K) (*Collection[T], bool) {
	c, ok := g.groups[k]
	return c, ok
}

// All iterates over (key, group) pairs in key order.
func (g *Groups[K, T]) All() iter.Seq2[K, *Collection[T]] {
	return func(yield func(K, *Collection[T]) bool) {
		for _, k := range g.keys {
			if !yield(k, g.groups[k]) {
				return
			}
		}
	}
}

// Map returns the groups as a plain map.
func (g *Groups[K, T]) Map() map[K]*Collection[T] {
	out := make(map[K]*Collection[T], len(g.groups))
	for k, c := range g.groups {
		out[k] = c
	}
	return out
}

// GroupBy partitions the collection by the key fn returns for each item.
// Keys must be comparable; a slice or map key fails with
// [imobject.ErrInvalidArgument]. For typed keys use the package-level
// [GroupBy].
func (c *Collection[T]) GroupBy(fn func(T) any) (*Groups[any, T], error) {
	return c.groupBy(func(item T) (any, error) { return fn(item), nil })
}

// GroupByAttribute partitions the collection by the value of the named
// attribute.
func (c *Collection[T]) GroupByAttribute(name string) (*Groups[any, T], error) {
	return c.groupBy(func(item T) (any, error) { return attr.Resolve(item, name) })
}

func (c *Collection[T]) groupBy(key func(T) (any, error)) (*Groups[any, T], error) {
	g := newGroups[any, T]()
	for i, item := range c.items {
		k, err := key(item)
		if err != nil {
			return nil, atItem(i, err)
		}
		if k != nil && !reflect.ValueOf(k).Comparable() {
			return nil, fmt.Errorf("%w: group key %T of item %d is not comparable",
				imobject.ErrInvalidArgument, k, i)
		}
		g.add(k, item)
	}
	return g, nil
}
