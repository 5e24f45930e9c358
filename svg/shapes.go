package svg

import (
	"fmt"
	"strings"

	"github.com/benoitkugler/svgwrite/attrs"
	"github.com/benoitkugler/svgwrite/svgpath"
)

// Rect is an axis aligned rectangle.
type Rect struct {
	Node
	X, Y, Width, Height float64
}

// NewRect returns a rectangle whose corner closest to the origin is (x, y).
func NewRect(x, y, width, height float64, meta ...attrs.KeyValue) *Rect {
	r := &Rect{X: x, Y: y, Width: width, Height: height}
	r.init("rect", true, nil, meta)
	r.own = r
	return r
}

func (r *Rect) ownAttributes(m *attrs.Map) {
	m.Set("x", r.X)
	m.Set("y", r.Y)
	m.Set("width", r.Width)
	m.Set("height", r.Height)
}

type Circle struct {
	Node
	Cx, Cy, R float64
}

// NewCircle returns a circle of center (cx, cy) and radius r.
func NewCircle(cx, cy, r float64, meta ...attrs.KeyValue) *Circle {
	c := &Circle{Cx: cx, Cy: cy, R: r}
	c.init("circle", true, nil, meta)
	c.own = c
	return c
}

func (c *Circle) ownAttributes(m *attrs.Map) {
	m.Set("cx", c.Cx)
	m.Set("cy", c.Cy)
	m.Set("r", c.R)
}

type Ellipse struct {
	Node
	Cx, Cy, Rx, Ry float64
}

// NewEllipse returns an axis aligned ellipse of center (cx, cy).
func NewEllipse(cx, cy, rx, ry float64, meta ...attrs.KeyValue) *Ellipse {
	e := &Ellipse{Cx: cx, Cy: cy, Rx: rx, Ry: ry}
	e.init("ellipse", true, nil, meta)
	e.own = e
	return e
}

func (e *Ellipse) ownAttributes(m *attrs.Map) {
	m.Set("cx", e.Cx)
	m.Set("cy", e.Cy)
	m.Set("rx", e.Rx)
	m.Set("ry", e.Ry)
}

// Line is a segment from (X1, Y1) to (X2, Y2).
type Line struct {
	Node
	X1, Y1, X2, Y2 float64
}

func NewLine(x1, y1, x2, y2 float64, meta ...attrs.KeyValue) *Line {
	l := &Line{X1: x1, Y1: y1, X2: x2, Y2: y2}
	l.init("line", true, nil, meta)
	l.own = l
	return l
}

func (l *Line) ownAttributes(m *attrs.Map) {
	m.Set("x1", l.X1)
	m.Set("y1", l.Y1)
	m.Set("x2", l.X2)
	m.Set("y2", l.Y2)
}

// Polyline is a sequence of connected segments.
// It is also used for polygons, which are implicitly closed.
type Polyline struct {
	Node
	Points []svgpath.Point
}

func newPolyline(tag string, points []svgpath.Point, meta []attrs.KeyValue) *Polyline {
	pl := &Polyline{Points: append([]svgpath.Point(nil), points...)}
	pl.init(tag, true, nil, meta)
	pl.own = pl
	return pl
}

// NewPolyline returns an open polyline going through `points`.
func NewPolyline(points []svgpath.Point, meta ...attrs.KeyValue) *Polyline {
	return newPolyline("polyline", points, meta)
}

// NewPolygon returns a closed polygon with vertices `points`.
func NewPolygon(points []svgpath.Point, meta ...attrs.KeyValue) *Polyline {
	return newPolyline("polygon", points, meta)
}

// pointsFromXY groups a flat x0, y0, x1, y1... list.
func pointsFromXY(coords []float64) ([]svgpath.Point, error) {
	if len(coords)%2 != 0 {
		return nil, fmt.Errorf("svg: %w: odd number of coordinates (%d)", ErrMalformedInput, len(coords))
	}
	out := make([]svgpath.Point, len(coords)/2)
	for i := range out {
		out[i] = svgpath.Point{coords[2*i], coords[2*i+1]}
	}
	return out, nil
}

// PolylineXY is the same as NewPolyline, with points given as
// a flat list of coordinates.
func PolylineXY(coords []float64, meta ...attrs.KeyValue) (*Polyline, error) {
	points, err := pointsFromXY(coords)
	if err != nil {
		return nil, err
	}
	return NewPolyline(points, meta...), nil
}

// PolygonXY is the same as NewPolygon, with points given as
// a flat list of coordinates.
func PolygonXY(coords []float64, meta ...attrs.KeyValue) (*Polyline, error) {
	points, err := pointsFromXY(coords)
	if err != nil {
		return nil, err
	}
	return NewPolygon(points, meta...), nil
}

// PointsString returns the value of the points attribute: "x,y x,y"
func (pl *Polyline) PointsString() string {
	chunks := make([]string, len(pl.Points))
	for i, p := range pl.Points {
		chunks[i] = attrs.FormatFloat(p[0]) + "," + attrs.FormatFloat(p[1])
	}
	return strings.Join(chunks, " ")
}

func (pl *Polyline) ownAttributes(m *attrs.Map) {
	m.Set("points", pl.PointsString())
}

// Text is a piece of text whose first character is at (X, Y).
// The content is written as the body of the element.
type Text struct {
	Node
	X, Y float64
}

func NewText(x, y float64, content string, meta ...attrs.KeyValue) *Text {
	t := &Text{X: x, Y: y}
	t.init("text", true, nil, meta)
	t.own = t
	t.SetContent(content)
	return t
}

func (t *Text) ownAttributes(m *attrs.Map) {
	m.Set("x", t.X)
	m.Set("y", t.Y)
}
