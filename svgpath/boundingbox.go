package svgpath

import "math"

// compute the bounding box of a path, taking
// into account the extrema of the curves

// Rect is an axis aligned rectangle.
type Rect struct{ Min, Max Point }

// Union returns the smallest rectangle containing r and s.
func (r Rect) Union(s Rect) Rect {
	return Rect{
		Min: Point{math.Min(r.Min[0], s.Min[0]), math.Min(r.Min[1], s.Min[1])},
		Max: Point{math.Max(r.Max[0], s.Max[0]), math.Max(r.Max[1], s.Max[1])},
	}
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 { return r.Max[0] - r.Min[0] }

// Height returns the vertical extent.
func (r Rect) Height() float64 { return r.Max[1] - r.Min[1] }

type bezier interface {
	// compute the t zeroing the derivative
	criticalPoints() (tX, tY []float64)
	// compute the point a time t
	evaluateCurve(t float64) (x, y float64)
}

type line [2]Point

func (l line) criticalPoints() (tX, tY []float64) { return nil, nil }

func (l line) evaluateCurve(t float64) (x, y float64) {
	return bezierLine(l[0][0], l[1][0], t), bezierLine(l[0][1], l[1][1], t)
}

func bezierLine(p0, p1, t float64) float64 {
	return (p1-p0)*t + p0
}

type cubicBezier [4]Point

func (cu cubicBezier) criticalPoints() (tX, tY []float64) {
	aX, bX, cX := cubicDerivative(cu[0][0], cu[1][0], cu[2][0], cu[3][0])
	aY, bY, cY := cubicDerivative(cu[0][1], cu[1][1], cu[2][1], cu[3][1])
	return quadraticRoots(aX, bX, cX), quadraticRoots(aY, bY, cY)
}

func (cu cubicBezier) evaluateCurve(t float64) (x, y float64) {
	return bezierSpline(cu[0][0], cu[1][0], cu[2][0], cu[3][0], t),
		bezierSpline(cu[0][1], cu[1][1], cu[2][1], cu[3][1], t)
}

// cubic polinomial
// x = At^3 + Bt^2 + Ct + D
// where A,B,C,D:
// A = p3 -3 * p2 + 3 * p1 - p0
// B = 3 * p2 - 6 * p1 +3 * p0
// C = 3 * p1 - 3 * p0
// D = p0
func bezierSpline(p0, p1, p2, p3, t float64) float64 {
	return (p3-3*p2+3*p1-p0)*t*t*t +
		(3*p2-6*p1+3*p0)*t*t +
		(3*p1-3*p0)*t +
		(p0)
}

// derivative of bezierSpline, as at^2 + bt + c
func cubicDerivative(p0, p1, p2, p3 float64) (a, b, c float64) {
	return 3*p3 - 9*p2 + 9*p1 - 3*p0, 6*p2 - 12*p1 + 6*p0, 3*p1 - 3*p0
}

func quadraticRoots(a, b, c float64) []float64 {
	if a == 0 {
		if b == 0 {
			return nil
		}
		return []float64{-c / b}
	}
	d := b*b - 4*a*c
	if d < 0 {
		return nil
	}
	if d == 0 {
		return []float64{-b / (2 * a)}
	}
	sq := math.Sqrt(d)
	return []float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)}
}

func computeBoundingBox(curve bezier) Rect {
	resX, resY := curve.criticalPoints()

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	// add begin and end point
	for _, t := range append(append(resX, 0, 1), resY...) {
		// filter invalid value
		if !(0 <= t && t <= 1) {
			continue
		}
		x, y := curve.evaluateCurve(t)
		minX, minY = math.Min(x, minX), math.Min(y, minY)
		maxX, maxY = math.Max(x, maxX), math.Max(y, maxY)
	}
	return Rect{Min: Point{minX, minY}, Max: Point{maxX, maxY}}
}

// Bounds returns the extent of the geometry drawn by the path,
// or false if the path has no command.
func (p *Path) Bounds() (Rect, bool) {
	var (
		out     Rect
		started bool
		current Point
	)
	extend := func(r Rect) {
		if !started {
			out, started = r, true
			return
		}
		out = out.Union(r)
	}
	for _, op := range p.ops {
		switch op := op.(type) {
		case MoveTo:
			current = Point(op)
			extend(Rect{Min: current, Max: current}) // degenerate case
		case LineTo:
			extend(computeBoundingBox(line{current, Point(op)}))
			current = Point(op)
		case CubicTo:
			extend(computeBoundingBox(cubicBezier{current, op[0], op[1], op[2]}))
			current = op[2]
		}
	}
	return out, started
}
