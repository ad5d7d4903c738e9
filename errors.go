package imobject

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by every package of the library.
//
// Use [errors.Is] for comparisons; the concrete errors returned by the
// library wrap one of these values.
var (
	// ErrNotFound is returned for a missing key, attribute or field, and by
	// FindOneBy when nothing matches.
	ErrNotFound = errors.New("imobject: not found")

	// ErrMultipleResults is returned by FindOneBy when more than one element
	// matches.
	ErrMultipleResults = errors.New("imobject: multiple results")

	// ErrInvalidArgument is returned when an input parameter has the wrong
	// shape, e.g. Select given something other than a list of strings.
	ErrInvalidArgument = errors.New("imobject: invalid argument")

	// ErrInvalidOperator is returned for an operator token that is not part
	// of the operator table.
	ErrInvalidOperator = errors.New("imobject: invalid operator")

	// ErrTypeMismatch is returned when an operand does not satisfy the type
	// rule of an operator.
	ErrTypeMismatch = errors.New("imobject: type mismatch")

	// ErrNotCallable is returned when a method reference resolves to
	// something that cannot be invoked.
	ErrNotCallable = errors.New("imobject: not callable")
)

// TypeMismatchError describes an operand that an operator cannot work with.
// It unwraps to [ErrTypeMismatch].
type TypeMismatchError struct {
	// Op is the operator token, e.g. "gt".
	Op string
	// Expected is the kind the operator wanted, e.g. "number".
	Expected string
	// Found is the kind it received, e.g. "string".
	Found string
	// Reason, when set, replaces the default message body.
	Reason string
}

func (e *TypeMismatchError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("'%s' %s", e.Op, e.Reason)
	}
	return fmt.Sprintf("'%s' operator expects %s, found %s", e.Op, e.Expected, e.Found)
}

// Unwrap returns [ErrTypeMismatch].
func (e *TypeMismatchError) Unwrap() error { return ErrTypeMismatch }

// OperatorError reports an operator token missing from the operator table.
// It unwraps to [ErrInvalidOperator].
type OperatorError struct {
	Op string
}

func (e *OperatorError) Error() string {
	return fmt.Sprintf("'%s' is not a valid operator", e.Op)
}

// Unwrap returns [ErrInvalidOperator].
func (e *OperatorError) Unwrap() error { return ErrInvalidOperator }
