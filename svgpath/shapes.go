package svgpath

import (
	"fmt"
	"math"
)

// This file implements the approximation of
// circular arcs by cubic Bezier curves

// AngleUnit selects how arc angles are interpreted.
type AngleUnit uint8

const (
	Degrees AngleUnit = iota // default
	Radians
)

// DefaultMaxSegmentTheta is the maximum angle, in degrees, spanned
// by one cubic curve when approximating an arc.
const DefaultMaxSegmentTheta = 90.

// MaxArcSegments is the maximum number of curves a single arc
// may be split into. Arcs requiring more are rejected.
const MaxArcSegments = 1 << 16

func (u AngleUnit) toRadians(theta float64) float64 {
	if u == Radians {
		return theta
	}
	return theta * math.Pi / 180
}

func (u AngleUnit) String() string {
	switch u {
	case Degrees:
		return "Degrees"
	case Radians:
		return "Radians"
	default:
		return "<unknown AngleUnit>"
	}
}

// Arc draws a circular arc (a portion of the circumference of a circle),
// from angle `theta1` to `theta2`, around (cx, cy).
// The angle with value 0 is at three o'clock and the
// positive direction is counter-clockwise, if positive x is to the right
// and positive y is up.
// A line is first drawn from the pen to the start of the arc.
// Arcs spanning more than 90 degrees are split into several curves.
func (p *Path) Arc(cx, cy, radius, theta1, theta2 float64, unit AngleUnit) error {
	maxTheta := DefaultMaxSegmentTheta
	if unit == Radians {
		maxTheta = math.Pi / 2
	}
	if err := p.requireOpen("Arc"); err != nil {
		return err
	}
	return p.arc(cx, cy, radius, theta1, theta2, unit, maxTheta)
}

// ArcSplit is the same as Arc, but uses `maxSegmentTheta`, expressed in `unit`,
// as the maximum angle a curve can subtend.
// Arcs needing more than MaxArcSegments curves are rejected
// with an error wrapping ErrMalformedInput.
func (p *Path) ArcSplit(cx, cy, radius, theta1, theta2 float64, unit AngleUnit, maxSegmentTheta float64) error {
	if err := p.requireOpen("ArcSplit"); err != nil {
		return err
	}
	return p.arc(cx, cy, radius, theta1, theta2, unit, maxSegmentTheta)
}

func isFinite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

func (p *Path) arc(cx, cy, radius, theta1, theta2 float64, unit AngleUnit, maxTheta float64) error {
	if !(maxTheta > 0) || math.IsInf(maxTheta, 0) {
		return fmt.Errorf("svgpath: %w: invalid maximum segment angle %v", ErrMalformedInput, maxTheta)
	}
	if !isFinite(theta1) || !isFinite(theta2) {
		return fmt.Errorf("svgpath: %w: invalid arc angles (%v, %v)", ErrMalformedInput, theta1, theta2)
	}

	// the number of segments is computed in the caller unit,
	// so that 180 / 90 is exactly 2
	dTheta := theta2 - theta1
	n := math.Ceil(math.Abs(dTheta) / maxTheta)
	if !(n <= MaxArcSegments) { // also catches NaN and overflows
		return fmt.Errorf("svgpath: %w: arc from %v to %v needs too many segments of %v",
			ErrMalformedInput, theta1, theta2, maxTheta)
	}
	segs := int(n)

	t1 := unit.toRadians(theta1)
	p.lineTo(cx+radius*math.Cos(t1), cy+radius*math.Sin(t1))

	if segs == 0 {
		return nil
	}
	step := unit.toRadians(dTheta) / float64(segs)
	theta := t1
	for i := 0; i < segs; i++ {
		p.arcSegment(cx, cy, radius, theta, theta+step)
		theta += step
	}
	return nil
}

// ArcSegment returns the control points and end point of the cubic curve
// approximating the arc of center (cx, cy) from `theta1` to `theta2`, in radians.
// The approximation is accurate for spans up to 90 degrees.
func ArcSegment(cx, cy, radius, theta1, theta2 float64) CubicTo {
	rSin1 := radius * math.Sin(theta1)
	rCos1 := radius * math.Cos(theta1)
	rSin2 := radius * math.Sin(theta2)
	rCos2 := radius * math.Cos(theta2)

	h := 4. / 3. * math.Tan((theta2-theta1)/4)

	return CubicTo{
		{cx + rCos1 - h*rSin1, cy + rSin1 + h*rCos1},
		{cx + rCos2 + h*rSin2, cy + rSin2 - h*rCos2},
		{cx + rCos2, cy + rSin2},
	}
}

func (p *Path) arcSegment(cx, cy, radius, theta1, theta2 float64) {
	c := ArcSegment(cx, cy, radius, theta1, theta2)
	p.curveTo(c[0][0], c[0][1], c[1][0], c[1][1], c[2][0], c[2][1])
}
