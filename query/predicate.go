package query

import (
	"fmt"
	"sync"
	"time"

	"github.com/dlclark/regexp2"

	"github.com/mzakariabigdata/imobject/internal/attr"
)

// Node is a Predicate or a Tree.
type Node interface {
	Evaluate(elem any) (bool, error)
	node()
}

// Predicate compares one attribute of an element with an operand.
// An empty Operator selects implicit matching.
type Predicate struct {
	Attribute string
	Operator  Operator
	Operand   any
}

// NewPredicate returns the predicate attribute <op> operand. The operator
// is checked when the predicate is evaluated.
func NewPredicate(attribute string, op Operator, operand any) Predicate {
	return Predicate{Attribute: attribute, Operator: op, Operand: operand}
}

// Match returns an operator-less predicate: a regular-expression match
// when operand is a valid pattern, equality otherwise.
func Match(attribute string, operand any) Predicate {
	return Predicate{Attribute: attribute, Operand: operand}
}

func (Predicate) node() {}

// Evaluate resolves the attribute on elem and applies the operator.
func (p Predicate) Evaluate(elem any) (bool, error) {
	value, err := attr.Resolve(elem, p.Attribute)
	if err != nil {
		return false, err
	}
	if p.Operator != "" {
		return p.Operator.Apply(value, p.Operand)
	}
	if re, ok := compilePattern(p.Operand); ok {
		return matchPrefix(re, value)
	}
	return attr.Equal(value, p.Operand), nil
}

// String renders the predicate in shorthand form, e.g. age__gt=25.
func (p Predicate) String() string {
	if p.Operator == "" {
		return fmt.Sprintf("%s=%v", p.Attribute, p.Operand)
	}
	return fmt.Sprintf("%s__%s=%v", p.Attribute, p.Operator, p.Operand)
}

// MatchTimeout bounds a single implicit pattern match. It is read when a
// pattern is first compiled.
var MatchTimeout = time.Second

// patterns caches compiled operands by pattern text; operands that do not
// compile are stored as a nil *regexp2.Regexp.
var patterns sync.Map

func compilePattern(operand any) (*regexp2.Regexp, bool) {
	pattern, ok := stringOf(operand)
	if !ok {
		return nil, false
	}
	if v, ok := patterns.Load(pattern); ok {
		re := v.(*regexp2.Regexp)
		return re, re != nil
	}
	re, err := regexp2.Compile(pattern, regexp2.None)
	if err == nil {
		re.MatchTimeout = MatchTimeout
	}
	v, _ := patterns.LoadOrStore(pattern, re)
	re = v.(*regexp2.Regexp)
	return re, re != nil
}

// matchPrefix reports whether re matches at the start of value.
func matchPrefix(re *regexp2.Regexp, value any) (bool, error) {
	s, ok := stringOf(value)
	if !ok {
		s = fmt.Sprint(value)
	}
	m, err := re.FindStringMatch(s)
	if err != nil {
		return false, fmt.Errorf("query: pattern %q: %w", re.String(), err)
	}
	return m != nil && m.Index == 0, nil
}
