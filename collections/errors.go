package collections

import "fmt"

// Collections report failures with the error kinds of the root imobject
// package:
//
//   - imobject.ErrNotFound: FindOneBy matched nothing, or an attribute
//     reference is missing on an item.
//   - imobject.ErrMultipleResults: FindOneBy matched several items.
//   - imobject.ErrInvalidArgument: malformed invocation, unsupported
//     natural ordering or distinct, non-comparable group key.
//   - imobject.ErrInvalidOperator: unknown shorthand operator.
//   - imobject.ErrTypeMismatch: operand or sort key of the wrong kind.
//   - imobject.ErrNotCallable: method reference or order key that cannot
//     be called.

// ItemError reports which item a failing per-item operation stopped at.
type ItemError struct {
	Index int
	Err   error
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("collections: item %d: %v", e.Index, e.Err)
}

// Unwrap returns the underlying error.
func (e *ItemError) Unwrap() error { return e.Err }

func atItem(i int, err error) error {
	if err == nil {
		return nil
	}
	return &ItemError{Index: i, Err: err}
}
