package factory

import (
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/mzakariabigdata/imobject/collections"
	"github.com/mzakariabigdata/imobject/logging"
	"github.com/mzakariabigdata/imobject/objdict"
)

// Constructor builds the value of one object from its params.
type Constructor func(params *objdict.ObjDict) (any, error)

// Registry is a thread-safe map from type names to constructors, used to
// build object graphs from configuration trees.
//
// Register constructors once, then call [Registry.Build] or
// [Registry.BuildYAML] as often as needed:
//
//	reg := factory.NewRegistry()
//	_ = reg.Register("Parent", newParent)
//	_ = reg.Register("Child", newChild)
//	root, err := reg.BuildYAML(data)
//
// # Thread safety
//
// All Registry methods are safe for concurrent use. A [sync.RWMutex]
// serialises Register while allowing concurrent builds.
type Registry struct {
	mu    sync.RWMutex
	ctors map[string]Constructor
	log   zerolog.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger makes the registry trace every built object and attached
// slot at debug level.
func WithLogger(l zerolog.Logger) Option {
	return func(r *Registry) { r.log = logging.Component(l, "factory") }
}

// WithLogConfig is [WithLogger] with a logger built by [logging.New].
//
//	reg := factory.NewRegistry(factory.WithLogConfig(logging.Config{Level: "debug", Pretty: true}))
func WithLogConfig(cfg logging.Config) Option {
	return WithLogger(logging.New(cfg))
}

// NewRegistry returns an empty Registry. It does not log unless
// [WithLogger] or [WithLogConfig] is given.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{ctors: make(map[string]Constructor), log: zerolog.Nop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds or replaces the constructor for name.
func (r *Registry) Register(name string, ctor Constructor) error {
	if name == "" {
		return ErrEmptyTypeName
	}
	if ctor == nil {
		return ErrNilConstructor
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ctors[name] = ctor
	return nil
}

// Has reports whether name has a constructor.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.ctors[name]
	return ok
}

// Constructor returns the constructor registered under name, or an error
// wrapping [ErrUnknownType].
func (r *Registry) Constructor(name string) (Constructor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ctor, ok := r.ctors[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
	return ctor, nil
}

// Types returns the registered type names, sorted.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.ctors))
	for name := range r.ctors {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Build validates cfg and constructs the object graph it describes,
// depth first. A single slot gets an *Object, a list slot a
// *collections.Collection[any] of *Object. The first failure aborts the
// build.
func (r *Registry) Build(cfg *Config) (*Object, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return r.build(cfg)
}

// BuildYAML parses a YAML or JSON configuration document and builds it.
func (r *Registry) BuildYAML(data []byte) (*Object, error) {
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, err
	}
	return r.build(cfg)
}

func (r *Registry) build(cfg *Config) (*Object, error) {
	ctor, err := r.Constructor(cfg.Type)
	if err != nil {
		return nil, err
	}
	params := cfg.Params
	if params == nil {
		params = objdict.New()
	}
	value, err := ctor(params)
	if err != nil {
		return nil, fmt.Errorf("factory: construct %s: %w", cfg.Type, err)
	}
	obj := newObject(cfg.Type, value)
	r.log.Debug().Str("type", cfg.Type).Msg("object constructed")

	for _, slot := range cfg.Children {
		children := make([]any, 0, len(slot.Configs))
		for _, childCfg := range slot.Configs {
			child, err := r.build(childCfg)
			if err != nil {
				return nil, err
			}
			children = append(children, child)
			r.log.Debug().
				Str("type", cfg.Type).
				Str("slot", slot.Name).
				Str("child", child.Type).
				Msg("child attached")
		}
		if slot.List {
			obj.SetChild(slot.Name, collections.From(children))
		} else {
			obj.SetChild(slot.Name, children[0])
		}
	}
	return obj, nil
}
