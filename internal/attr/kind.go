// Package attr resolves attributes on arbitrary Go values and classifies
// them into the coarse kinds the query operators reason about.
//
// Elements handed to a query can be containers from this module, plain
// maps, structs or pointers to structs. Containers are recognised through
// the small interfaces declared here so that this package does not depend
// on them.
package attr

import "reflect"

// Kind is the coarse runtime kind used by operator type rules.
type Kind uint8

const (
	KindNil Kind = iota
	KindBool
	KindNumber
	KindString
	KindList
	KindMapping
	KindObject
)

var kindNames = [...]string{
	KindNil:     "nil",
	KindBool:    "bool",
	KindNumber:  "number",
	KindString:  "string",
	KindList:    "list",
	KindMapping: "mapping",
	KindObject:  "object",
}

// String returns the kind name used in error messages.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Getter is implemented by values that expose named members, such as
// ObjDict or factory objects.
type Getter interface {
	Lookup(name string) (any, bool)
}

// Mapping is a Getter with an ordered key set.
type Mapping interface {
	Getter
	Keys() []string
}

// Sequence is implemented by list-like containers.
type Sequence interface {
	Elements() []any
}

// Caller is implemented by values that dispatch method references
// themselves instead of relying on reflection.
type Caller interface {
	CallMethod(name string, args ...any) (any, error)
}

// KindOf classifies v. Every Go integer, unsigned and float type (named or
// not) is a number.
func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return KindNil
	case Mapping:
		return KindMapping
	case Sequence:
		return KindList
	case string:
		return KindString
	case bool:
		return KindBool
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return KindBool
	case reflect.String:
		return KindString
	case reflect.Slice, reflect.Array:
		return KindList
	case reflect.Map:
		return KindMapping
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return KindNil
		}
	}
	if isNumberKind(rv.Kind()) {
		return KindNumber
	}
	return KindObject
}

func isNumberKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// Number reports v as a float64 when it is any numeric type.
func Number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case nil:
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// IsScalar reports whether v is a number or a string.
func IsScalar(v any) bool {
	k := KindOf(v)
	return k == KindNumber || k == KindString
}
