package query

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/mzakariabigdata/imobject"
	"github.com/mzakariabigdata/imobject/internal/attr"
)

// Operator is a comparison token from the operator table.
type Operator string

const (
	OpLt         Operator = "lt"
	OpGt         Operator = "gt"
	OpLte        Operator = "lte"
	OpGte        Operator = "gte"
	OpEq         Operator = "eq"
	OpNot        Operator = "not"
	OpIn         Operator = "in"
	OpNin        Operator = "nin"
	OpContains   Operator = "contains"
	OpStartsWith Operator = "startswith"
	OpEndsWith   Operator = "endswith"
)

type applyFunc func(op Operator, value, operand any) (bool, error)

var table = map[Operator]applyFunc{
	OpLt:         ordered(func(c int) bool { return c < 0 }),
	OpGt:         ordered(func(c int) bool { return c > 0 }),
	OpLte:        ordered(func(c int) bool { return c <= 0 }),
	OpGte:        ordered(func(c int) bool { return c >= 0 }),
	OpEq:         equality(true),
	OpNot:        equality(false),
	OpIn:         membership(true),
	OpNin:        membership(false),
	OpContains:   textual(strings.Contains),
	OpStartsWith: textual(strings.HasPrefix),
	OpEndsWith:   textual(strings.HasSuffix),
}

// Operators returns every operator of the table in a stable order.
func Operators() []Operator {
	return []Operator{
		OpLt, OpGt, OpLte, OpGte, OpEq, OpNot,
		OpIn, OpNin, OpContains, OpStartsWith, OpEndsWith,
	}
}

// ParseOperator validates s against the operator table.
func ParseOperator(s string) (Operator, error) {
	op := Operator(s)
	if !op.Valid() {
		return "", &imobject.OperatorError{Op: s}
	}
	return op, nil
}

// Valid reports whether op belongs to the operator table.
func (op Operator) Valid() bool {
	_, ok := table[op]
	return ok
}

// Apply evaluates value <op> operand.
func (op Operator) Apply(value, operand any) (bool, error) {
	fn, ok := table[op]
	if !ok {
		return false, &imobject.OperatorError{Op: string(op)}
	}
	return fn(op, value, operand)
}

func ordered(test func(int) bool) applyFunc {
	return func(op Operator, value, operand any) (bool, error) {
		kv, ko := attr.KindOf(value), attr.KindOf(operand)
		if kv != ko {
			return false, &imobject.TypeMismatchError{
				Op:       string(op),
				Expected: kv.String(),
				Found:    ko.String(),
			}
		}
		c, ok := attr.Compare(value, operand)
		if !ok {
			return false, &imobject.TypeMismatchError{
				Op:     string(op),
				Found:  ko.String(),
				Reason: fmt.Sprintf("operator cannot order %s values", kv),
			}
		}
		return test(c), nil
	}
}

func equality(want bool) applyFunc {
	return func(op Operator, value, operand any) (bool, error) {
		kv, ko := attr.KindOf(value), attr.KindOf(operand)
		if kv != ko {
			return false, &imobject.TypeMismatchError{
				Op:       string(op),
				Expected: kv.String(),
				Found:    ko.String(),
				Reason:   fmt.Sprintf("operator only works for same type fields, found %s and %s", kv, ko),
			}
		}
		return attr.Equal(value, operand) == want, nil
	}
}

func membership(want bool) applyFunc {
	return func(op Operator, value, operand any) (bool, error) {
		if !attr.IsCollection(operand) {
			return false, &imobject.TypeMismatchError{
				Op:       string(op),
				Expected: attr.KindList.String(),
				Found:    attr.KindOf(operand).String(),
			}
		}
		found, _ := attr.Contains(operand, value)
		return found == want, nil
	}
}

func textual(test func(s, part string) bool) applyFunc {
	return func(op Operator, value, operand any) (bool, error) {
		s, ok1 := stringOf(value)
		part, ok2 := stringOf(operand)
		if !ok1 || !ok2 {
			found := attr.KindOf(value)
			if ok1 {
				found = attr.KindOf(operand)
			}
			return false, &imobject.TypeMismatchError{
				Op:       string(op),
				Expected: attr.KindString.String(),
				Found:    found.String(),
				Reason:   "lookup only works for string type fields",
			}
		}
		return test(s, part), nil
	}
}

// stringOf accepts string and named string types.
func stringOf(v any) (string, bool) {
	if s, ok := v.(string); ok {
		return s, true
	}
	if v == nil {
		return "", false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.String {
		return "", false
	}
	return rv.String(), true
}
