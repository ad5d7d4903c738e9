package objdict

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/mzakariabigdata/imobject"
	"github.com/mzakariabigdata/imobject/collections"
)

// ─────────────────────────────────────────────────────────────────────────────
// Loading
// ─────────────────────────────────────────────────────────────────────────────

// FromYAML parses a YAML mapping document into an ObjDict, keeping the
// key order of the document. An empty document gives an empty ObjDict.
func FromYAML(data []byte) (*ObjDict, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", imobject.ErrInvalidArgument, err)
	}
	if doc.Kind == 0 {
		return New(), nil
	}
	d := New()
	if err := d.UnmarshalYAML(&doc); err != nil {
		return nil, err
	}
	return d, nil
}

// FromJSON parses a JSON object into an ObjDict, keeping key order.
// Integral numbers decode as int, others as float64.
func FromJSON(data []byte) (*ObjDict, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := decodeJSON(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", imobject.ErrInvalidArgument, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after JSON value", imobject.ErrInvalidArgument)
	}
	d, ok := v.(*ObjDict)
	if !ok {
		return nil, fmt.Errorf("%w: expected a JSON object, got %T", imobject.ErrInvalidArgument, v)
	}
	return d, nil
}

func decodeJSON(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			d := New()
			for dec.More() {
				kt, err := dec.Token()
				if err != nil {
					return nil, err
				}
				v, err := decodeJSON(dec)
				if err != nil {
					return nil, err
				}
				d.Set(kt.(string), v)
			}
			_, err := dec.Token()
			return d, err
		case '[':
			items := make([]any, 0)
			for dec.More() {
				v, err := decodeJSON(dec)
				if err != nil {
					return nil, err
				}
				items = append(items, v)
			}
			_, err := dec.Token()
			return collections.From(items), err
		}
		return nil, fmt.Errorf("unexpected delimiter %q", t)
	case json.Number:
		if i, err := strconv.ParseInt(t.String(), 10, 0); err == nil {
			return int(i), nil
		}
		return t.Float64()
	}
	return tok, nil
}

// FromNode converts a decoded YAML node into wrapped values: mappings
// become ObjDicts, sequences become collections and scalars keep the type
// YAML resolves them to.
//
// An alias that refers to one of its own ancestors fails with
// [imobject.ErrInvalidArgument].
func FromNode(n *yaml.Node) (any, error) {
	return fromNode(n, make(map[*yaml.Node]bool))
}

// fromNode records in expanding the anchored nodes it is inside of.
func fromNode(n *yaml.Node, expanding map[*yaml.Node]bool) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return fromNode(n.Content[0], expanding)
	case yaml.AliasNode:
		if n.Alias == nil {
			return nil, fmt.Errorf("%w: line %d: unknown anchor %q", imobject.ErrInvalidArgument, n.Line, n.Value)
		}
		if expanding[n.Alias] {
			return nil, fmt.Errorf("%w: line %d: anchor %q contains itself", imobject.ErrInvalidArgument, n.Line, n.Value)
		}
		return fromNode(n.Alias, expanding)
	case yaml.MappingNode:
		if n.Anchor != "" {
			expanding[n] = true
			defer delete(expanding, n)
		}
		d := New()
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			if k.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("%w: line %d: mapping keys must be scalars",
					imobject.ErrInvalidArgument, k.Line)
			}
			val, err := fromNode(v, expanding)
			if err != nil {
				return nil, err
			}
			d.Set(k.Value, val)
		}
		return d, nil
	case yaml.SequenceNode:
		if n.Anchor != "" {
			expanding[n] = true
			defer delete(expanding, n)
		}
		items := make([]any, len(n.Content))
		for i, c := range n.Content {
			v, err := fromNode(c, expanding)
			if err != nil {
				return nil, err
			}
			items[i] = v
		}
		return collections.From(items), nil
	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", imobject.ErrInvalidArgument, n.Line, err)
		}
		return v, nil
	}
	return nil, fmt.Errorf("%w: unsupported YAML node kind %d", imobject.ErrInvalidArgument, n.Kind)
}

// ─────────────────────────────────────────────────────────────────────────────
// YAML
// ─────────────────────────────────────────────────────────────────────────────

// UnmarshalYAML replaces the content of d with a YAML mapping.
func (d *ObjDict) UnmarshalYAML(n *yaml.Node) error {
	v, err := FromNode(n)
	if err != nil {
		return err
	}
	src, ok := v.(*ObjDict)
	if !ok {
		return fmt.Errorf("%w: expected a YAML mapping, got %s",
			imobject.ErrInvalidArgument, kindName(n))
	}
	d.keys, d.values = src.keys, src.values
	return nil
}

func kindName(n *yaml.Node) string {
	for n.Kind == yaml.DocumentNode && len(n.Content) > 0 {
		n = n.Content[0]
	}
	switch n.Kind {
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar " + n.Tag
	}
	return fmt.Sprintf("node kind %d", n.Kind)
}

// MarshalYAML encodes d as a mapping node in key order.
func (d *ObjDict) MarshalYAML() (any, error) {
	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for k, v := range d.All() {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}
		val := &yaml.Node{}
		if err := val.Encode(v); err != nil {
			return nil, fmt.Errorf("objdict: encode %q: %w", k, err)
		}
		n.Content = append(n.Content, key, val)
	}
	return n, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// JSON
// ─────────────────────────────────────────────────────────────────────────────

// MarshalJSON encodes d as a JSON object in key order.
func (d *ObjDict) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	i := 0
	for k, v := range d.All() {
		if i > 0 {
			buf.WriteByte(',')
		}
		i++
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("objdict: encode %q: %w", k, err)
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON replaces the content of d with a JSON object, keeping
// key order.
func (d *ObjDict) UnmarshalJSON(data []byte) error {
	src, err := FromJSON(data)
	if err != nil {
		return err
	}
	d.keys, d.values = src.keys, src.values
	return nil
}
