package scene

import (
	"errors"
	"fmt"
	"io"

	"github.com/benoitkugler/svgwrite/attrs"
	"github.com/benoitkugler/svgwrite/svg"
	"github.com/benoitkugler/svgwrite/svgpath"
)

// ErrorMode sets how the scene builder handles entries
// it does not support (unknown element kinds, transforms
// or path commands).
type ErrorMode uint8

const (
	// IgnoreErrorMode skips unsupported entries
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode skips unsupported entries, with a warning
	// sent to svg.Logger()
	WarnErrorMode
	// StrictErrorMode fails on unsupported entries
	StrictErrorMode
)

// ErrUnsupported is returned in StrictErrorMode.
var ErrUnsupported = errors.New("unsupported scene entry")

type buildFunc func(b *builder, parent *svg.Group, el *Element) (svg.Element, error)

var buildFuncs = map[string]buildFunc{
	"rect":     rectB,
	"circle":   circleB,
	"ellipse":  ellipseB,
	"line":     lineB,
	"polyline": polylineB,
	"polygon":  polygonB,
	"text":     textB,
	"path":     pathB,
}

func init() {
	// avoids cyclical static declaration:
	// groupB refers to buildFuncs through builder.element
	buildFuncs["g"] = groupB
	buildFuncs["group"] = groupB
}

type builder struct {
	errorMode ErrorMode
	location  string // of the element being built, for error messages
}

func (b *builder) handleError(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	switch b.errorMode {
	case StrictErrorMode:
		return fmt.Errorf("%s: %w: %s", b.location, ErrUnsupported, msg)
	case WarnErrorMode:
		svg.Logger().Warn("scene: entry skipped", "location", b.location, "reason", msg)
	}
	return nil
}

func (b *builder) wrap(err error) error {
	return fmt.Errorf("%s: %w", b.location, err)
}

// Build returns the canvas described by the scene.
func (s *Scene) Build(mode ErrorMode) (*svg.Canvas, error) {
	canvas := svg.NewCanvas(s.Width, s.Height, s.Meta...)
	root := &canvas.Group
	if s.Flip {
		root = canvas.Flip()
	}
	b := &builder{errorMode: mode}
	for i := range s.Elements {
		b.location = fmt.Sprintf("elements[%d]", i)
		if err := b.element(root, &s.Elements[i]); err != nil {
			return nil, err
		}
	}
	return canvas, nil
}

// Render builds the scene and writes the document to `w`.
func (s *Scene) Render(w io.Writer, mode ErrorMode) error {
	canvas, err := s.Build(mode)
	if err != nil {
		return err
	}
	return canvas.Write(w, s.Pretty)
}

func (b *builder) element(parent *svg.Group, el *Element) error {
	bf, ok := buildFuncs[el.Kind]
	if !ok {
		return b.handleError("unknown element kind %q", el.Kind)
	}
	if len(el.Children) != 0 && el.Kind != "g" && el.Kind != "group" {
		if err := b.handleError("children are not supported for %s", el.Kind); err != nil {
			return err
		}
	}
	child, err := bf(b, parent, el)
	if err != nil {
		return err
	}
	return b.transforms(child.AsNode(), el.Transforms)
}

func (b *builder) transforms(node *svg.Node, list []Transform) error {
	for _, tr := range list {
		if _, ok := svg.ParseTransformKind(tr.Op); !ok {
			if err := b.handleError("unknown transform %q", tr.Op); err != nil {
				return err
			}
			continue
		}
		t, err := svg.NewTransform(tr.Op, tr.Args...)
		if err != nil {
			return b.wrap(err)
		}
		node.AddTransform(t)
	}
	return nil
}

func (b *builder) geometry(el *Element, n int) ([]float64, error) {
	if len(el.Geometry) != n {
		return nil, fmt.Errorf("%s: %w: %s expects %d geometry values, got %d",
			b.location, svg.ErrMalformedInput, el.Kind, n, len(el.Geometry))
	}
	return el.Geometry, nil
}

func meta(el *Element) []attrs.KeyValue { return el.Attrs }

func rectB(b *builder, parent *svg.Group, el *Element) (svg.Element, error) {
	g, err := b.geometry(el, 4)
	if err != nil {
		return nil, err
	}
	return parent.Rect(g[0], g[1], g[2], g[3], meta(el)...), nil
}

func circleB(b *builder, parent *svg.Group, el *Element) (svg.Element, error) {
	g, err := b.geometry(el, 3)
	if err != nil {
		return nil, err
	}
	return parent.Circle(g[0], g[1], g[2], meta(el)...), nil
}

func ellipseB(b *builder, parent *svg.Group, el *Element) (svg.Element, error) {
	g, err := b.geometry(el, 4)
	if err != nil {
		return nil, err
	}
	return parent.Ellipse(g[0], g[1], g[2], g[3], meta(el)...), nil
}

func lineB(b *builder, parent *svg.Group, el *Element) (svg.Element, error) {
	g, err := b.geometry(el, 4)
	if err != nil {
		return nil, err
	}
	return parent.Line(g[0], g[1], g[2], g[3], meta(el)...), nil
}

func polylineB(b *builder, parent *svg.Group, el *Element) (svg.Element, error) {
	pl, err := parent.PolylineXY(el.Points, meta(el)...)
	if err != nil {
		return nil, b.wrap(err)
	}
	return pl, nil
}

func polygonB(b *builder, parent *svg.Group, el *Element) (svg.Element, error) {
	pg, err := parent.PolygonXY(el.Points, meta(el)...)
	if err != nil {
		return nil, b.wrap(err)
	}
	return pg, nil
}

func textB(b *builder, parent *svg.Group, el *Element) (svg.Element, error) {
	g, err := b.geometry(el, 2)
	if err != nil {
		return nil, err
	}
	return parent.Text(g[0], g[1], el.Text, meta(el)...), nil
}

func groupB(b *builder, parent *svg.Group, el *Element) (svg.Element, error) {
	group := parent.SubGroup(meta(el)...)
	location := b.location
	defer func() { b.location = location }()
	for i := range el.Children {
		b.location = fmt.Sprintf("%s.children[%d]", location, i)
		if err := b.element(group, &el.Children[i]); err != nil {
			return nil, err
		}
	}
	return group, nil
}

// pathArity is the number of arguments of the path commands.
var pathArity = map[string]int{
	"move":  2,
	"line":  2,
	"curve": 6,
	"arc":   5, // or 6, with a maximum segment angle
	"close": 0,
}

func pathB(b *builder, parent *svg.Group, el *Element) (svg.Element, error) {
	p := parent.Path(meta(el)...)
	for i, cmd := range el.Path {
		arity, ok := pathArity[cmd.Op]
		if !ok {
			if err := b.handleError("unknown path command %q", cmd.Op); err != nil {
				return nil, err
			}
			continue
		}
		a := cmd.Args
		if len(a) != arity && !(cmd.Op == "arc" && len(a) == 6) {
			return nil, fmt.Errorf("%s.path[%d]: %w: %s expects %d arguments, got %d",
				b.location, i, svg.ErrMalformedInput, cmd.Op, arity, len(a))
		}
		unit := svgpath.Degrees
		if cmd.Radians {
			unit = svgpath.Radians
		}
		var err error
		switch cmd.Op {
		case "move":
			err = p.MoveTo(a[0], a[1])
		case "line":
			err = p.LineTo(a[0], a[1])
		case "curve":
			err = p.CurveTo(a[0], a[1], a[2], a[3], a[4], a[5])
		case "arc":
			if len(a) == 6 {
				err = p.ArcSplit(a[0], a[1], a[2], a[3], a[4], unit, a[5])
			} else {
				err = p.Arc(a[0], a[1], a[2], a[3], a[4], unit)
			}
		case "close":
			err = p.Close()
		}
		if err != nil {
			return nil, fmt.Errorf("%s.path[%d]: %w", b.location, i, err)
		}
	}
	return p, nil
}
