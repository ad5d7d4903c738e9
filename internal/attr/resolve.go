package attr

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/mzakariabigdata/imobject"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Resolve reads the attribute named by path on elem.
//
// A path is one attribute name or several joined by dots:
//
//	Resolve(order, "customer.address.city")
//
// The full path is first tried as a literal name so that keys containing
// dots stay reachable. Each segment is looked up on the value produced by
// the previous one, in this order:
//
//   - [Getter].Lookup, which is authoritative for values implementing it
//   - maps with string keys
//   - exported struct fields, by name, by `attr` or `json` tag, then by
//     case-insensitive name
//   - niladic methods returning a value, or a value and an error
//
// A missing segment yields an error wrapping [imobject.ErrNotFound].
func Resolve(elem any, path string) (any, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty attribute name", imobject.ErrInvalidArgument)
	}
	if v, ok, err := resolveSegment(elem, path); err != nil || ok {
		return v, err
	}
	if !strings.Contains(path, ".") {
		return nil, notFound(elem, path)
	}

	current := elem
	for _, seg := range strings.Split(path, ".") {
		v, ok, err := resolveSegment(current, seg)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, notFound(current, seg)
		}
		current = v
	}
	return current, nil
}

func notFound(v any, name string) error {
	return fmt.Errorf("%w: %T has no attribute %q", imobject.ErrNotFound, v, name)
}

// resolveSegment looks up a single attribute name. ok is false when the
// name does not exist; err is set only when a method getter fails.
func resolveSegment(v any, name string) (val any, ok bool, err error) {
	if v == nil {
		return nil, false, nil
	}
	if g, isGetter := v.(Getter); isGetter {
		val, ok := g.Lookup(name)
		return val, ok, nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Map {
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false, nil
		}
		mv := rv.MapIndex(reflect.ValueOf(name).Convert(rv.Type().Key()))
		if !mv.IsValid() {
			return nil, false, nil
		}
		return mv.Interface(), true, nil
	}

	if val, ok := structField(rv, name); ok {
		return val, true, nil
	}
	return methodGetter(rv, name)
}

func structField(rv reflect.Value, name string) (any, bool) {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, false
	}
	t := rv.Type()

	if f, ok := t.FieldByName(name); ok && f.IsExported() {
		if fv, err := rv.FieldByIndexErr(f.Index); err == nil && fv.CanInterface() {
			return fv.Interface(), true
		}
	}
	folded := -1
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if tagName(f, "attr") == name || tagName(f, "json") == name {
			return rv.Field(i).Interface(), true
		}
		if folded < 0 && strings.EqualFold(f.Name, name) {
			folded = i
		}
	}
	if folded >= 0 {
		return rv.Field(folded).Interface(), true
	}
	return nil, false
}

func tagName(f reflect.StructField, key string) string {
	tag, ok := f.Tag.Lookup(key)
	if !ok {
		return ""
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "-" {
		return ""
	}
	return name
}

func methodGetter(rv reflect.Value, name string) (any, bool, error) {
	m := rv.MethodByName(name)
	if !m.IsValid() {
		return nil, false, nil
	}
	mt := m.Type()
	if mt.NumIn() != 0 {
		return nil, false, nil
	}
	switch {
	case mt.NumOut() == 1:
		return m.Call(nil)[0].Interface(), true, nil
	case mt.NumOut() == 2 && mt.Out(1) == errorType:
		out := m.Call(nil)
		if errv := out[1].Interface(); errv != nil {
			return nil, false, errv.(error)
		}
		return out[0].Interface(), true, nil
	}
	return nil, false, nil
}
