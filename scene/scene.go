// Package scene describes svg documents in YAML files.
//
// A scene lists the size of the canvas and its elements:
//
//	width: 200
//	height: 100
//	flip: true
//	elements:
//	  - kind: rect
//	    geometry: [0, 0, 200, 100]
//	    attrs: {fill: "#eee"}
//	  - kind: path
//	    attrs: {stroke: red}
//	    path:
//	      - {op: move, args: [10, 10]}
//	      - {op: arc, args: [50, 50, 40, -90, 0]}
//	      - {op: close}
//
// Attribute maps keep the order of the file.
package scene

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/benoitkugler/svgwrite/attrs"
	"gopkg.in/yaml.v3"
)

// DefaultSize is used when the width or height of a scene is missing.
const DefaultSize = 100

// Scene is the root of a scene file.
type Scene struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// Flip draws the elements in a coordinate system
	// whose y axis points upward.
	Flip   bool `yaml:"flip,omitempty"`
	Pretty bool `yaml:"pretty,omitempty"`

	Meta     Attributes `yaml:"meta,omitempty"`
	Elements []Element  `yaml:"elements"`
}

// Element describes one svg element. Which fields are
// used depends on Kind.
type Element struct {
	Kind string `yaml:"kind"`

	// Geometry holds the numeric parameters of the shape:
	// rect: x y width height, circle: cx cy r, ellipse: cx cy rx ry,
	// line: x1 y1 x2 y2, text: x y
	Geometry []float64 `yaml:"geometry,omitempty"`
	// Points is the flat coordinates list of polylines and polygons.
	Points []float64 `yaml:"points,omitempty"`
	Text   string    `yaml:"text,omitempty"`

	Attrs      Attributes    `yaml:"attrs,omitempty"`
	Transforms []Transform   `yaml:"transforms,omitempty"`
	Path       []PathCommand `yaml:"path,omitempty"`
	Children   []Element     `yaml:"children,omitempty"`
}

// Transform is one item of a transform list, such as
// {op: rotate, args: [30]}
type Transform struct {
	Op   string    `yaml:"op"`
	Args []float64 `yaml:"args,omitempty"`
}

// PathCommand is one drawing call on a path.
// Op is one of move, line, curve, arc, close.
// Arc arguments are cx cy r theta1 theta2, with an optional
// maximum segment angle.
type PathCommand struct {
	Op      string    `yaml:"op"`
	Args    []float64 `yaml:"args,omitempty"`
	Radians bool      `yaml:"radians,omitempty"`
}

// Attributes is an ordered list of attributes.
// Nested mappings are supported, and rendered as
// CSS declarations.
type Attributes []attrs.KeyValue

// UnmarshalYAML decodes a mapping, keeping the order of the keys.
func (a *Attributes) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: attributes must be a mapping", value.Line)
	}
	out := make(Attributes, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		keyNode, valueNode := value.Content[i], value.Content[i+1]
		var key string
		if err := keyNode.Decode(&key); err != nil {
			return err
		}
		switch valueNode.Kind {
		case yaml.MappingNode:
			var nested Attributes
			if err := nested.UnmarshalYAML(valueNode); err != nil {
				return err
			}
			out = append(out, attrs.KV(key, []attrs.KeyValue(nested)))
		case yaml.ScalarNode:
			var v any
			if err := valueNode.Decode(&v); err != nil {
				return err
			}
			out = append(out, attrs.KV(key, v))
		default:
			return fmt.Errorf("line %d: unsupported value for attribute %q", valueNode.Line, key)
		}
	}
	*a = out
	return nil
}

func (s *Scene) normalize() {
	if s.Width == 0 {
		s.Width = DefaultSize
	}
	if s.Height == 0 {
		s.Height = DefaultSize
	}
}

// Load decodes a scene. Unknown fields are rejected.
func Load(r io.Reader) (*Scene, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var s Scene
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty scene")
		}
		return nil, err
	}
	s.normalize()
	if s.Width < 0 || s.Height < 0 {
		return nil, fmt.Errorf("invalid scene size %gx%g", s.Width, s.Height)
	}
	return &s, nil
}

// LoadFile decodes the scene stored in `path`.
func LoadFile(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	defer f.Close()
	s, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return s, nil
}
