package factory

import (
	"errors"
	"fmt"

	"github.com/mzakariabigdata/imobject"
)

// Sentinel errors returned by the factory.
//
// ErrUnknownType and ErrInvalidConfig also match
// [imobject.ErrInvalidArgument]:
//
//	obj, err := reg.Build(cfg)
//	if errors.Is(err, factory.ErrUnknownType) {
//	    // cfg names a type nobody registered
//	}
var (
	// ErrUnknownType is returned by [Registry.Build] when a config names a
	// type that has no registered constructor.
	ErrUnknownType = fmt.Errorf("%w: factory: type not found in registry", imobject.ErrInvalidArgument)

	// ErrInvalidConfig is returned when a configuration tree has the wrong
	// shape or fails validation.
	ErrInvalidConfig = fmt.Errorf("%w: factory: invalid config", imobject.ErrInvalidArgument)

	// ErrEmptyTypeName is returned by [Registry.Register] for an empty name.
	ErrEmptyTypeName = errors.New("factory: type name must not be empty")

	// ErrNilConstructor is returned by [Registry.Register] for a nil
	// constructor.
	ErrNilConstructor = errors.New("factory: constructor must not be nil")
)
