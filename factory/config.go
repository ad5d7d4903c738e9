package factory

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mzakariabigdata/imobject/collections"
	"github.com/mzakariabigdata/imobject/objdict"
)

// Reserved configuration keys. Every other key of a config mapping names
// a child slot. "class" is accepted as a synonym of "type".
const (
	KeyType   = "type"
	KeyClass  = "class"
	KeyParams = "params"
)

// Config describes one object to build: the registered type name, the
// constructor parameters and the child objects attached to named slots.
//
//	type: Parent
//	params: {name: root}
//	child: {type: Child, params: {name: kid}}
//	children:
//	  - {type: Child, params: {name: a}}
//	  - {type: Child, params: {name: b}}
type Config struct {
	Type     string           `validate:"required,typename"`
	Params   *objdict.ObjDict `validate:"-"`
	Children []*Slot          `validate:"dive,required"`
}

// Slot is a named child position. A list slot holds any number of
// configs; a single slot holds exactly one.
type Slot struct {
	Name    string    `validate:"required,slotname"`
	List    bool      `validate:"-"`
	Configs []*Config `validate:"dive,required"`
}

// configValidate checks Config trees. Initialized in init() with the
// custom tags.
var configValidate *validator.Validate

func init() {
	configValidate = validator.New(validator.WithRequiredStructEnabled())
	_ = configValidate.RegisterValidation("typename", validateTypeName)
	_ = configValidate.RegisterValidation("slotname", validateSlotName)
	configValidate.RegisterStructValidation(validateSlot, Slot{})
}

// validateTypeName rejects type names holding whitespace.
func validateTypeName(fl validator.FieldLevel) bool {
	return !strings.ContainsAny(fl.Field().String(), " \t\r\n")
}

// validateSlotName rejects slot names that collide with reserved keys.
func validateSlotName(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case KeyType, KeyClass, KeyParams:
		return false
	}
	return true
}

func validateSlot(sl validator.StructLevel) {
	s := sl.Current().Interface().(Slot)
	if !s.List && len(s.Configs) != 1 {
		sl.ReportError(s.Configs, "Configs", "Configs", "single", "")
	}
}

// Validate checks the whole tree: every config needs a type name and
// every slot a non-reserved name.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: nil config", ErrInvalidConfig)
	}
	err := configValidate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	msgs := make([]string, len(verrs))
	for i, fe := range verrs {
		msgs[i] = fmt.Sprintf("%s fails %q", fe.Namespace(), fe.Tag())
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

// Slot returns the slot called name.
func (c *Config) Slot(name string) (*Slot, bool) {
	for _, s := range c.Children {
		if s.Name == name {
			return s, true
		}
	}
	return nil, false
}

// ParseConfig reads a configuration tree from a YAML or JSON document and
// validates it.
func ParseConfig(data []byte) (*Config, error) {
	var (
		d   *objdict.ObjDict
		err error
	)
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
		d, err = objdict.FromJSON(data)
	} else {
		d, err = objdict.FromYAML(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return ConfigFrom(d)
}

// ConfigFrom converts an ObjDict shaped like a configuration tree and
// validates it. Keys other than type/class and params become slots in key
// order: an ObjDict value is a single child, a collection a list of
// children.
func ConfigFrom(d *objdict.ObjDict) (*Config, error) {
	c, err := configFrom(d, "")
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func configFrom(d *objdict.ObjDict, path string) (*Config, error) {
	c := &Config{}
	for k, v := range d.All() {
		switch k {
		case KeyType, KeyClass:
			s, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("%w: %s%s must be a string, got %T", ErrInvalidConfig, path, k, v)
			}
			c.Type = s
		case KeyParams:
			switch p := v.(type) {
			case nil:
			case *objdict.ObjDict:
				c.Params = p
			default:
				return nil, fmt.Errorf("%w: %sparams must be a mapping, got %T", ErrInvalidConfig, path, v)
			}
		default:
			slot, err := slotFrom(k, v, path+k+".")
			if err != nil {
				return nil, err
			}
			c.Children = append(c.Children, slot)
		}
	}
	if c.Params == nil {
		c.Params = objdict.New()
	}
	return c, nil
}

func slotFrom(name string, v any, path string) (*Slot, error) {
	switch x := v.(type) {
	case *objdict.ObjDict:
		child, err := configFrom(x, path)
		if err != nil {
			return nil, err
		}
		return &Slot{Name: name, Configs: []*Config{child}}, nil
	case *collections.Collection[any]:
		slot := &Slot{Name: name, List: true, Configs: make([]*Config, 0, x.Count())}
		for i, item := range x.ToSlice() {
			d, ok := item.(*objdict.ObjDict)
			if !ok {
				return nil, fmt.Errorf("%w: %s%d must be a mapping, got %T", ErrInvalidConfig, path, i, item)
			}
			child, err := configFrom(d, fmt.Sprintf("%s%d.", path, i))
			if err != nil {
				return nil, err
			}
			slot.Configs = append(slot.Configs, child)
		}
		return slot, nil
	}
	return nil, fmt.Errorf("%w: %s must be a mapping or a list, got %T",
		ErrInvalidConfig, strings.TrimSuffix(path, "."), v)
}
