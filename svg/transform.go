package svg

import (
	"fmt"
	"math"
	"strings"

	"github.com/benoitkugler/svgwrite/attrs"
	"github.com/benoitkugler/svgwrite/svgpath"
	"golang.org/x/image/math/f64"
)

// TransformKind identifies a transform operation.
type TransformKind uint8

const (
	MatrixTransform TransformKind = iota
	TranslateTransform
	ScaleTransform
	RotateTransform
	SkewXTransform
	SkewYTransform
)

var transformNames = [...]string{
	MatrixTransform:    "matrix",
	TranslateTransform: "translate",
	ScaleTransform:     "scale",
	RotateTransform:    "rotate",
	SkewXTransform:     "skewX",
	SkewYTransform:     "skewY",
}

func (k TransformKind) String() string {
	if int(k) < len(transformNames) {
		return transformNames[k]
	}
	return "<unknown TransformKind>"
}

// Transform is one operation of a transform list.
// Angles are in degrees.
type Transform struct {
	Kind TransformKind
	Args []float64
}

// ParseTransformKind returns the kind named `name`,
// as written in svg: "matrix", "translate", "scale",
// "rotate", "skewX", "skewY".
func ParseTransformKind(name string) (TransformKind, bool) {
	for k, kn := range transformNames {
		if kn == name {
			return TransformKind(k), true
		}
	}
	return 0, false
}

// NewTransform checks the number of arguments for the
// operation `name` and returns the transform.
// An error wrapping ErrMalformedInput is returned for
// unknown names or bad arities.
func NewTransform(name string, args ...float64) (Transform, error) {
	kind, ok := ParseTransformKind(name)
	if !ok {
		return Transform{}, fmt.Errorf("svg: %w: unknown transform %q", ErrMalformedInput, name)
	}
	ln := len(args)
	switch kind {
	case MatrixTransform:
		ok = ln == 6
	case TranslateTransform, ScaleTransform:
		ok = ln == 1 || ln == 2
	case RotateTransform:
		ok = ln == 1 || ln == 3
	case SkewXTransform, SkewYTransform:
		ok = ln == 1
	}
	if !ok {
		return Transform{}, fmt.Errorf("svg: %w: %d arguments for transform %s", ErrMalformedInput, ln, name)
	}
	return Transform{Kind: kind, Args: append([]float64(nil), args...)}, nil
}

// String returns the svg form of the operation, such as translate(10 5)
func (t Transform) String() string {
	chunks := make([]string, len(t.Args))
	for i, a := range t.Args {
		chunks[i] = attrs.FormatFloat(a)
	}
	return t.Kind.String() + "(" + strings.Join(chunks, " ") + ")"
}

func (t Transform) arg(i int, def float64) float64 {
	if i < len(t.Args) {
		return t.Args[i]
	}
	return def
}

func degToRad(theta float64) float64 { return theta * math.Pi / 180 }

// Identity is the identity matrix.
var Identity = f64.Aff3{1, 0, 0, 0, 1, 0}

// mul returns the product m * n, that is, n is applied first.
func mul(m, n f64.Aff3) f64.Aff3 {
	return f64.Aff3{
		m[0]*n[0] + m[1]*n[3], m[0]*n[1] + m[1]*n[4], m[0]*n[2] + m[1]*n[5] + m[2],
		m[3]*n[0] + m[4]*n[3], m[3]*n[1] + m[4]*n[4], m[3]*n[2] + m[4]*n[5] + m[5],
	}
}

// Matrix returns the affine matrix of the operation.
// The svg matrix(a b c d e f) maps to {a, c, e, b, d, f}.
func (t Transform) Matrix() f64.Aff3 {
	switch t.Kind {
	case MatrixTransform:
		a, b, c, d, e, f := t.arg(0, 1), t.arg(1, 0), t.arg(2, 0), t.arg(3, 1), t.arg(4, 0), t.arg(5, 0)
		return f64.Aff3{a, c, e, b, d, f}
	case TranslateTransform:
		return f64.Aff3{1, 0, t.arg(0, 0), 0, 1, t.arg(1, 0)}
	case ScaleTransform:
		sx := t.arg(0, 1)
		return f64.Aff3{sx, 0, 0, 0, t.arg(1, sx), 0}
	case RotateTransform:
		theta := degToRad(t.arg(0, 0))
		cos, sin := math.Cos(theta), math.Sin(theta)
		rot := f64.Aff3{cos, -sin, 0, sin, cos, 0}
		if len(t.Args) == 3 {
			cx, cy := t.Args[1], t.Args[2]
			return mul(mul(f64.Aff3{1, 0, cx, 0, 1, cy}, rot), f64.Aff3{1, 0, -cx, 0, 1, -cy})
		}
		return rot
	case SkewXTransform:
		return f64.Aff3{1, math.Tan(degToRad(t.arg(0, 0))), 0, 0, 1, 0}
	case SkewYTransform:
		return f64.Aff3{1, 0, 0, math.Tan(degToRad(t.arg(0, 0))), 1, 0}
	default:
		return Identity
	}
}

// Apply returns the image of `p` by `m`.
func Apply(m f64.Aff3, p svgpath.Point) svgpath.Point {
	return svgpath.Point{
		m[0]*p[0] + m[1]*p[1] + m[2],
		m[3]*p[0] + m[4]*p[1] + m[5],
	}
}

// AddTransform appends `t` to the transform list of the node.
func (n *Node) AddTransform(t Transform) *Node {
	n.transforms = append(n.transforms, t)
	return n
}

// Matrix appends matrix(a b c d e f)
func (n *Node) Matrix(a, b, c, d, e, f float64) *Node {
	return n.AddTransform(Transform{Kind: MatrixTransform, Args: []float64{a, b, c, d, e, f}})
}

// Translate appends translate(tx ty)
func (n *Node) Translate(tx, ty float64) *Node {
	return n.AddTransform(Transform{Kind: TranslateTransform, Args: []float64{tx, ty}})
}

// Scale appends scale(sx sy)
func (n *Node) Scale(sx, sy float64) *Node {
	return n.AddTransform(Transform{Kind: ScaleTransform, Args: []float64{sx, sy}})
}

// Rotate appends a rotation of `theta` degrees around the origin.
func (n *Node) Rotate(theta float64) *Node {
	return n.AddTransform(Transform{Kind: RotateTransform, Args: []float64{theta}})
}

// RotateAround appends a rotation of `theta` degrees around (cx, cy).
func (n *Node) RotateAround(theta, cx, cy float64) *Node {
	return n.AddTransform(Transform{Kind: RotateTransform, Args: []float64{theta, cx, cy}})
}

// SkewX appends skewX(theta), in degrees.
func (n *Node) SkewX(theta float64) *Node {
	return n.AddTransform(Transform{Kind: SkewXTransform, Args: []float64{theta}})
}

// SkewY appends skewY(theta), in degrees.
func (n *Node) SkewY(theta float64) *Node {
	return n.AddTransform(Transform{Kind: SkewYTransform, Args: []float64{theta}})
}

// Transforms returns the transform list, in application order.
func (n *Node) Transforms() []Transform { return n.transforms }

// TransformString returns the value of the transform attribute.
func (n *Node) TransformString() string {
	chunks := make([]string, len(n.transforms))
	for i, t := range n.transforms {
		chunks[i] = t.String()
	}
	return strings.Join(chunks, " ")
}

// TransformMatrix composes the transform list into one matrix,
// mapping the node coordinates to its parent coordinates.
func (n *Node) TransformMatrix() f64.Aff3 {
	m := Identity
	for _, t := range n.transforms {
		m = mul(m, t.Matrix())
	}
	return m
}
