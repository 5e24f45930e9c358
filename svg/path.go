package svg

import (
	"github.com/benoitkugler/svgwrite/attrs"
	"github.com/benoitkugler/svgwrite/svgpath"
)

// Path is an svg path element, drawn with a pen.
// The drawing methods return an error wrapping ErrInvalidPathState
// once the path is closed.
type Path struct {
	Node
	pen svgpath.Path
}

func NewPath(meta ...attrs.KeyValue) *Path {
	p := new(Path)
	p.init("path", true, nil, meta)
	p.own = p
	return p
}

func (p *Path) ownAttributes(m *attrs.Map) {
	m.Set("d", p.pen.ToSVGPath())
}

// Pen gives access to the drawn commands.
func (p *Path) Pen() *svgpath.Path { return &p.pen }

func (p *Path) MoveTo(x, y float64) error { return p.pen.MoveTo(x, y) }

func (p *Path) LineTo(x, y float64) error { return p.pen.LineTo(x, y) }

func (p *Path) CurveTo(x1, y1, x2, y2, x, y float64) error {
	return p.pen.CurveTo(x1, y1, x2, y2, x, y)
}

func (p *Path) Close() error { return p.pen.Close() }

// Arc draws a circular arc, see svgpath.Path.Arc
func (p *Path) Arc(cx, cy, r, theta1, theta2 float64, unit svgpath.AngleUnit) error {
	return p.pen.Arc(cx, cy, r, theta1, theta2, unit)
}

// ArcSplit draws a circular arc, see svgpath.Path.ArcSplit
func (p *Path) ArcSplit(cx, cy, r, theta1, theta2 float64, unit svgpath.AngleUnit, maxSegmentTheta float64) error {
	return p.pen.ArcSplit(cx, cy, r, theta1, theta2, unit, maxSegmentTheta)
}
