package attr

import (
	"cmp"
	"math"
	"math/big"
	"reflect"
	"strings"
)

// Compare orders a against b. ok is false when the two values do not
// share an orderable kind (number, string or bool).
func Compare(a, b any) (result int, ok bool) {
	ka, kb := KindOf(a), KindOf(b)
	if ka != kb {
		return 0, false
	}
	switch ka {
	case KindNumber:
		return compareNumbers(reflect.ValueOf(a), reflect.ValueOf(b)), true
	case KindString:
		return strings.Compare(reflect.ValueOf(a).String(), reflect.ValueOf(b).String()), true
	case KindBool:
		x, y := reflect.ValueOf(a).Bool(), reflect.ValueOf(b).Bool()
		switch {
		case x == y:
			return 0, true
		case !x:
			return -1, true
		default:
			return 1, true
		}
	}
	return 0, false
}

// compareNumbers compares exactly: integers keep their full precision and
// a float is compared with an integer without rounding either. NaN falls
// back to float64 ordering.
func compareNumbers(a, b reflect.Value) int {
	switch {
	case isSigned(a.Kind()) && isSigned(b.Kind()):
		return cmp.Compare(a.Int(), b.Int())
	case isUnsigned(a.Kind()) && isUnsigned(b.Kind()):
		return cmp.Compare(a.Uint(), b.Uint())
	case isSigned(a.Kind()) && isUnsigned(b.Kind()):
		if a.Int() < 0 {
			return -1
		}
		return cmp.Compare(uint64(a.Int()), b.Uint())
	case isUnsigned(a.Kind()) && isSigned(b.Kind()):
		return -compareNumbers(b, a)
	}
	if x, y := exactFloat(a), exactFloat(b); x != nil && y != nil {
		return x.Cmp(y)
	}
	x, _ := Number(a.Interface())
	y, _ := Number(b.Interface())
	return cmp.Compare(x, y)
}

func exactFloat(v reflect.Value) *big.Float {
	switch {
	case isSigned(v.Kind()):
		return new(big.Float).SetInt64(v.Int())
	case isUnsigned(v.Kind()):
		return new(big.Float).SetUint64(v.Uint())
	}
	f := v.Float()
	if math.IsNaN(f) {
		return nil
	}
	return big.NewFloat(f)
}

func isSigned(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Int64
}

func isUnsigned(k reflect.Kind) bool {
	return k >= reflect.Uint && k <= reflect.Uintptr
}

// Equal reports structural equality. Numbers compare by value whatever
// their Go type, and containers compare by content, element by element.
func Equal(a, b any) bool {
	ka, kb := KindOf(a), KindOf(b)
	if ka != kb {
		return false
	}
	switch ka {
	case KindNil:
		return true
	case KindNumber, KindString, KindBool:
		c, _ := Compare(a, b)
		return c == 0
	case KindList:
		xs, ys := elementsOf(a), elementsOf(b)
		if len(xs) != len(ys) {
			return false
		}
		for i := range xs {
			if !Equal(xs[i], ys[i]) {
				return false
			}
		}
		return true
	case KindMapping:
		xs, okx := entriesOf(a)
		ys, oky := entriesOf(b)
		if !okx || !oky {
			return reflect.DeepEqual(a, b)
		}
		if len(xs) != len(ys) {
			return false
		}
		for k, x := range xs {
			y, ok := ys[k]
			if !ok || !Equal(x, y) {
				return false
			}
		}
		return true
	}
	return reflect.DeepEqual(a, b)
}

func elementsOf(v any) []any {
	if seq, ok := v.(Sequence); ok {
		return seq.Elements()
	}
	rv := reflect.ValueOf(v)
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

// entriesOf returns the members of a mapping. ok is false for Go maps
// whose keys are not strings.
func entriesOf(v any) (map[string]any, bool) {
	if m, ok := v.(Mapping); ok {
		keys := m.Keys()
		out := make(map[string]any, len(keys))
		for _, k := range keys {
			out[k], _ = m.Lookup(k)
		}
		return out, true
	}
	rv := reflect.ValueOf(v)
	if rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}

// Normalize converts v into a canonical plain form: numbers become
// float64, named strings and bools lose their type, mappings become
// map[string]any and sequences become []any, recursively. Other values
// are returned unchanged.
func Normalize(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case string, bool, float64:
		return x
	case Mapping:
		out := make(map[string]any, len(x.Keys()))
		for _, k := range x.Keys() {
			val, _ := x.Lookup(k)
			out[k] = Normalize(val)
		}
		return out
	case Sequence:
		items := x.Elements()
		out := make([]any, len(items))
		for i, item := range items {
			out[i] = Normalize(item)
		}
		return out
	}

	rv := reflect.ValueOf(v)
	if f, ok := Number(v); ok {
		return f
	}
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return rv.Bool()
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return v
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[iter.Key().String()] = Normalize(iter.Value().Interface())
		}
		return out
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return []any{}
		}
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = Normalize(rv.Index(i).Interface())
		}
		return out
	}
	return v
}

// Contains reports whether container holds item. Slices, arrays and
// Sequences are scanned with [Equal]; maps whose values are struct{} or
// bool act as sets and are looked up by key. ok is false when container is
// none of these.
func Contains(container, item any) (found bool, ok bool) {
	if seq, isSeq := container.(Sequence); isSeq {
		for _, elem := range seq.Elements() {
			if Equal(elem, item) {
				return true, true
			}
		}
		return false, true
	}
	if container == nil {
		return false, false
	}
	rv := reflect.ValueOf(container)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if Equal(rv.Index(i).Interface(), item) {
				return true, true
			}
		}
		return false, true
	case reflect.Map:
		if !isSetType(rv.Type()) {
			return false, false
		}
		iter := rv.MapRange()
		for iter.Next() {
			if Equal(iter.Key().Interface(), item) {
				if iter.Value().Kind() == reflect.Bool && !iter.Value().Bool() {
					continue
				}
				return true, true
			}
		}
		return false, true
	}
	return false, false
}

// IsCollection reports whether v is accepted as the operand of a
// membership operator.
func IsCollection(v any) bool {
	if _, ok := v.(Sequence); ok {
		return true
	}
	if v == nil {
		return false
	}
	t := reflect.TypeOf(v)
	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		return true
	case reflect.Map:
		return isSetType(t)
	}
	return false
}

func isSetType(t reflect.Type) bool {
	elem := t.Elem()
	return elem.Kind() == reflect.Bool || (elem.Kind() == reflect.Struct && elem.NumField() == 0)
}
