package attr

import (
	"fmt"
	"reflect"

	"github.com/mzakariabigdata/imobject"
)

// Call invokes the method called name on elem with args.
//
// Values implementing [Caller] dispatch the call themselves. Otherwise the
// method is looked up by reflection, and finally a function value stored
// under name (a map entry, a struct field or a Getter member) is called.
//
// A trailing error result is returned as the call error. Zero results give
// nil, one result is returned as is and more results are returned as
// []any.
func Call(elem any, name string, args ...any) (any, error) {
	if c, ok := elem.(Caller); ok {
		return c.CallMethod(name, args...)
	}
	if elem == nil {
		return nil, fmt.Errorf("%w: cannot call %q on nil", imobject.ErrNotFound, name)
	}

	fn := reflect.ValueOf(elem).MethodByName(name)
	if !fn.IsValid() {
		member, ok, err := resolveSegment(elem, name)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: %T has no method %q", imobject.ErrNotFound, elem, name)
		}
		fn = reflect.ValueOf(member)
		if !fn.IsValid() || fn.Kind() != reflect.Func || fn.IsNil() {
			return nil, fmt.Errorf("%w: %T.%s is %T", imobject.ErrNotCallable, elem, name, member)
		}
	}
	return Invoke(fn, name, args...)
}

// Invoke calls fn with args after checking arity and converting arguments
// to the parameter types.
func Invoke(fn reflect.Value, name string, args ...any) (any, error) {
	in, err := buildArgs(fn.Type(), name, args)
	if err != nil {
		return nil, err
	}
	return unpack(fn.Call(in))
}

func buildArgs(ft reflect.Type, name string, args []any) ([]reflect.Value, error) {
	n := ft.NumIn()
	if ft.IsVariadic() {
		if len(args) < n-1 {
			return nil, arityError(name, n-1, len(args), true)
		}
	} else if len(args) != n {
		return nil, arityError(name, n, len(args), false)
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		var pt reflect.Type
		if ft.IsVariadic() && i >= n-1 {
			pt = ft.In(n - 1).Elem()
		} else {
			pt = ft.In(i)
		}
		v, err := convertArg(arg, pt)
		if err != nil {
			return nil, fmt.Errorf("%w: %s argument %d: %v", imobject.ErrInvalidArgument, name, i, err)
		}
		in[i] = v
	}
	return in, nil
}

func arityError(name string, want, got int, variadic bool) error {
	atLeast := ""
	if variadic {
		atLeast = "at least "
	}
	return fmt.Errorf("%w: %s takes %s%d arguments, got %d",
		imobject.ErrInvalidArgument, name, atLeast, want, got)
}

func convertArg(arg any, pt reflect.Type) (reflect.Value, error) {
	if arg == nil {
		switch pt.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return reflect.Zero(pt), nil
		}
		return reflect.Value{}, fmt.Errorf("nil is not assignable to %s", pt)
	}
	v := reflect.ValueOf(arg)
	if v.Type().AssignableTo(pt) {
		return v, nil
	}
	if isNumberKind(v.Kind()) && isNumberKind(pt.Kind()) {
		return v.Convert(pt), nil
	}
	return reflect.Value{}, fmt.Errorf("%s is not assignable to %s", v.Type(), pt)
}

func unpack(out []reflect.Value) (any, error) {
	if n := len(out); n > 0 && out[n-1].Type() == errorType {
		if errv := out[n-1].Interface(); errv != nil {
			return nil, errv.(error)
		}
		out = out[:n-1]
	}
	switch len(out) {
	case 0:
		return nil, nil
	case 1:
		return out[0].Interface(), nil
	}
	vals := make([]any, len(out))
	for i, v := range out {
		vals[i] = v.Interface()
	}
	return vals, nil
}
