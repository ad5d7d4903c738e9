package objdict

import (
	"reflect"

	"github.com/mzakariabigdata/imobject/collections"
	"github.com/mzakariabigdata/imobject/internal/attr"
)

// Wrap applies the container rule to v:
//
//   - a map with string keys becomes an *ObjDict (keys sorted),
//   - a slice or array, except []byte, becomes a *collections.Collection[any],
//
// and the rule is applied again to every nested value. ObjDicts,
// collections and other values are returned unchanged.
func Wrap(v any) any {
	switch x := v.(type) {
	case nil, *ObjDict, *collections.Collection[any], []byte, string:
		return v
	case map[string]any:
		return From(x)
	case []any:
		return wrapList(x)
	case attr.Mapping, attr.Sequence:
		return v
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return v
		}
		m := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			m[iter.Key().String()] = iter.Value().Interface()
		}
		return From(m)
	case reflect.Slice, reflect.Array:
		items := make([]any, rv.Len())
		for i := range items {
			items[i] = rv.Index(i).Interface()
		}
		return wrapList(items)
	}
	return v
}

func wrapList(items []any) *collections.Collection[any] {
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = Wrap(item)
	}
	return collections.From(out)
}
