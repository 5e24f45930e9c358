package svg

import (
	"github.com/benoitkugler/svgwrite/attrs"
	"github.com/benoitkugler/svgwrite/svgpath"
)

// Group is a container for other elements.
// Groups do not use the fill and stroke defaults.
type Group struct {
	Node
}

func NewGroup(meta ...attrs.KeyValue) *Group {
	g := new(Group)
	g.init("g", false, nil, meta)
	return g
}

// The following methods create an element, add it
// to the group and return it.

// SubGroup adds a nested group.
func (g *Group) SubGroup(meta ...attrs.KeyValue) *Group {
	child := NewGroup(meta...)
	g.AddChild(child)
	return child
}

func (g *Group) Path(meta ...attrs.KeyValue) *Path {
	child := NewPath(meta...)
	g.AddChild(child)
	return child
}

func (g *Group) Rect(x, y, width, height float64, meta ...attrs.KeyValue) *Rect {
	child := NewRect(x, y, width, height, meta...)
	g.AddChild(child)
	return child
}

func (g *Group) Circle(cx, cy, r float64, meta ...attrs.KeyValue) *Circle {
	child := NewCircle(cx, cy, r, meta...)
	g.AddChild(child)
	return child
}

func (g *Group) Ellipse(cx, cy, rx, ry float64, meta ...attrs.KeyValue) *Ellipse {
	child := NewEllipse(cx, cy, rx, ry, meta...)
	g.AddChild(child)
	return child
}

func (g *Group) Line(x1, y1, x2, y2 float64, meta ...attrs.KeyValue) *Line {
	child := NewLine(x1, y1, x2, y2, meta...)
	g.AddChild(child)
	return child
}

func (g *Group) Polyline(points []svgpath.Point, meta ...attrs.KeyValue) *Polyline {
	child := NewPolyline(points, meta...)
	g.AddChild(child)
	return child
}

func (g *Group) Polygon(points []svgpath.Point, meta ...attrs.KeyValue) *Polyline {
	child := NewPolygon(points, meta...)
	g.AddChild(child)
	return child
}

// PolylineXY adds nothing if `coords` has an odd length.
func (g *Group) PolylineXY(coords []float64, meta ...attrs.KeyValue) (*Polyline, error) {
	child, err := PolylineXY(coords, meta...)
	if err != nil {
		return nil, err
	}
	g.AddChild(child)
	return child, nil
}

// PolygonXY adds nothing if `coords` has an odd length.
func (g *Group) PolygonXY(coords []float64, meta ...attrs.KeyValue) (*Polyline, error) {
	child, err := PolygonXY(coords, meta...)
	if err != nil {
		return nil, err
	}
	g.AddChild(child)
	return child, nil
}

func (g *Group) Text(x, y float64, content string, meta ...attrs.KeyValue) *Text {
	child := NewText(x, y, content, meta...)
	g.AddChild(child)
	return child
}
