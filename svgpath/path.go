// Implements the pen model used to draw svg paths:
// drawing calls are accumulated as path commands,
// which are then written as the `d` attribute of a path element.
package svgpath

import (
	"fmt"
	"strings"

	"golang.org/x/image/math/f64"
)

// Point is a position in user space, stored as (x, y).
type Point = f64.Vec2

type pathCommand uint8

// Human readable path constants
const (
	pathMoveTo pathCommand = iota
	pathLineTo
	pathCubicTo
	pathClose
)

// Operation groups the different path commands
type Operation interface {
	command() pathCommand
	// String returns the path data for the command.
	String() string
}

type MoveTo Point

type LineTo Point

// CubicTo stores the two control points and the end point.
type CubicTo [3]Point

type Close struct{}

func (MoveTo) command() pathCommand  { return pathMoveTo }
func (LineTo) command() pathCommand  { return pathLineTo }
func (CubicTo) command() pathCommand { return pathCubicTo }
func (Close) command() pathCommand   { return pathClose }

func (op MoveTo) String() string { return fmt.Sprintf("M %f %f", op[0], op[1]) }
func (op LineTo) String() string { return fmt.Sprintf("L %f %f", op[0], op[1]) }
func (op CubicTo) String() string {
	return fmt.Sprintf("C %f %f %f %f %f %f", op[0][0], op[0][1], op[1][0], op[1][1], op[2][0], op[2][1])
}
func (Close) String() string { return "Z" }

// State is the lifecycle of a Path.
type State uint8

const (
	// Uninitialized : no command yet, the pen is not set
	Uninitialized State = iota
	// Open : commands may be added
	Open
	// Closed : the path is terminated, no more command is accepted
	Closed
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "Uninitialized"
	case Open:
		return "Open"
	case Closed:
		return "Closed"
	default:
		return "<unknown State>"
	}
}

// Path accumulates drawing commands.
// The first drawing call on an empty path other than MoveTo
// starts the path at the origin.
// Once closed, the path rejects every drawing call with
// an error wrapping ErrInvalidPathState, and is left unchanged.
// The zero value is an empty, uninitialized path.
type Path struct {
	ops    []Operation
	pen    Point
	penSet bool
	state  State
}

// State returns the current lifecycle state.
func (p *Path) State() State { return p.state }

// Closed returns true once Close has been called.
func (p *Path) Closed() bool { return p.state == Closed }

// Pen returns the current position, and false
// if the pen has never been moved.
func (p *Path) Pen() (Point, bool) { return p.pen, p.penSet }

// Operations returns a copy of the accumulated commands.
func (p *Path) Operations() []Operation { return append([]Operation(nil), p.ops...) }

// Commands returns the path data of each command.
func (p *Path) Commands() []string {
	chunks := make([]string, len(p.ops))
	for i, op := range p.ops {
		chunks[i] = op.String()
	}
	return chunks
}

// ToSVGPath returns the path data, suitable
// for the `d` attribute.
func (p *Path) ToSVGPath() string {
	return strings.Join(p.Commands(), " ")
}

// String returns a readable representation of a Path.
func (p *Path) String() string {
	return p.ToSVGPath()
}

// requireOpen returns an error if the path is closed.
func (p *Path) requireOpen(op string) error {
	if p.state == Closed {
		return &StateError{Op: op, State: p.state}
	}
	return nil
}

// ensureInitialized moves to the origin if nothing
// has been drawn yet.
func (p *Path) ensureInitialized() {
	if p.state == Uninitialized {
		p.moveTo(0, 0)
	}
}

func (p *Path) moveTo(x, y float64) {
	p.ops = append(p.ops, MoveTo{x, y})
	p.pen = Point{x, y}
	p.penSet = true
	p.state = Open
}

func (p *Path) lineTo(x, y float64) {
	p.ensureInitialized()
	if (Point{x, y}) == p.pen { // degenerate segment
		return
	}
	p.ops = append(p.ops, LineTo{x, y})
	p.pen = Point{x, y}
}

func (p *Path) curveTo(x1, y1, x2, y2, x, y float64) {
	p.ensureInitialized()
	p.ops = append(p.ops, CubicTo{{x1, y1}, {x2, y2}, {x, y}})
	p.pen = Point{x, y}
}

// MoveTo moves the pen to (x, y), starting a new sub-path.
func (p *Path) MoveTo(x, y float64) error {
	if err := p.requireOpen("MoveTo"); err != nil {
		return err
	}
	p.moveTo(x, y)
	return nil
}

// LineTo draws a line from the pen to (x, y).
// Nothing is added if (x, y) is the current pen position.
func (p *Path) LineTo(x, y float64) error {
	if err := p.requireOpen("LineTo"); err != nil {
		return err
	}
	p.lineTo(x, y)
	return nil
}

// CurveTo draws a cubic Bezier curve from the pen to (x,y), using
// (x1,y1) as the control point for the current position and (x2,y2) as
// the control point for (x,y).
func (p *Path) CurveTo(x1, y1, x2, y2, x, y float64) error {
	if err := p.requireOpen("CurveTo"); err != nil {
		return err
	}
	p.curveTo(x1, y1, x2, y2, x, y)
	return nil
}

// Close closes the path. This prevents any further modifications.
func (p *Path) Close() error {
	if err := p.requireOpen("Close"); err != nil {
		return err
	}
	p.ops = append(p.ops, Close{})
	p.state = Closed
	return nil
}
