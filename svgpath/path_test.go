package svgpath

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestImplicitMoveTo(t *testing.T) {
	for name, draw := range map[string]func(p *Path) error{
		"LineTo":  func(p *Path) error { return p.LineTo(10, 20) },
		"CurveTo": func(p *Path) error { return p.CurveTo(1, 2, 3, 4, 5, 6) },
		"Arc":     func(p *Path) error { return p.Arc(5, 5, 1, 0, 90, Degrees) },
	} {
		var p Path
		if err := draw(&p); err != nil {
			t.Fatalf("%s: %s", name, err)
		}
		if got := p.Commands()[0]; got != "M 0.000000 0.000000" {
			t.Errorf("%s: expected implicit move to origin, got %q", name, got)
		}
	}

	var p Path
	if err := p.MoveTo(3, 4); err != nil {
		t.Fatal(err)
	}
	if got := p.ToSVGPath(); got != "M 3.000000 4.000000" {
		t.Errorf("unexpected path data %q", got)
	}
}

func TestStates(t *testing.T) {
	var p Path
	if p.State() != Uninitialized {
		t.Fatalf("expected Uninitialized, got %s", p.State())
	}
	if _, ok := p.Pen(); ok {
		t.Fatal("pen should not be set")
	}
	_ = p.LineTo(1, 1)
	if p.State() != Open {
		t.Fatalf("expected Open, got %s", p.State())
	}
	pen, ok := p.Pen()
	if !ok || pen != (Point{1, 1}) {
		t.Fatalf("unexpected pen %v", pen)
	}
	_ = p.Close()
	if !p.Closed() {
		t.Fatal("path should be closed")
	}
}

func TestCloseEmptyPath(t *testing.T) {
	var p Path
	if err := p.Close(); err != nil {
		t.Fatal(err)
	}
	if pen, ok := p.Pen(); ok {
		t.Fatalf("pen should not be set after closing an empty path, got %v", pen)
	}
	if got := p.ToSVGPath(); got != "Z" {
		t.Errorf("unexpected path data %q", got)
	}
}

func TestArcMaxSegments(t *testing.T) {
	var p Path
	if err := p.ArcSplit(0, 0, 1, 0, MaxArcSegments, Degrees, 1); err != nil {
		t.Fatal(err)
	}
	if got := countCurves(&p); got != MaxArcSegments {
		t.Errorf("expected %d curves, got %d", MaxArcSegments, got)
	}
}

func TestClosedPathIsFrozen(t *testing.T) {
	var p Path
	_ = p.MoveTo(1, 2)
	_ = p.LineTo(3, 4)
	if err := p.Close(); err != nil {
		t.Fatal(err)
	}
	before := p.ToSVGPath()
	pen, _ := p.Pen()

	for op, draw := range map[string]func() error{
		"MoveTo":  func() error { return p.MoveTo(0, 0) },
		"LineTo":  func() error { return p.LineTo(9, 9) },
		"CurveTo": func() error { return p.CurveTo(1, 1, 2, 2, 3, 3) },
		"Arc":     func() error { return p.Arc(0, 0, 1, 0, 180, Degrees) },
		"Close":   func() error { return p.Close() },
	} {
		err := draw()
		if !errors.Is(err, ErrInvalidPathState) {
			t.Fatalf("%s: expected ErrInvalidPathState, got %v", op, err)
		}
		var se *StateError
		if !errors.As(err, &se) || se.Op != op {
			t.Errorf("%s: error should name the operation, got %v", op, err)
		}
		if got := p.ToSVGPath(); got != before {
			t.Errorf("%s: path modified: %q", op, got)
		}
		if got, _ := p.Pen(); got != pen {
			t.Errorf("%s: pen modified: %v", op, got)
		}
	}
}

func TestDegenerateLine(t *testing.T) {
	var p Path
	_ = p.MoveTo(2, 3)
	_ = p.LineTo(2, 3)
	if got := p.ToSVGPath(); got != "M 2.000000 3.000000" {
		t.Errorf("degenerate segment emitted: %q", got)
	}

	var q Path
	_ = q.LineTo(0, 0)
	if got := q.ToSVGPath(); got != "M 0.000000 0.000000" {
		t.Errorf("degenerate segment emitted: %q", got)
	}
}

func TestCurveTo(t *testing.T) {
	var p Path
	_ = p.MoveTo(0, 0)
	_ = p.CurveTo(1, 2, 3, 4, 5.5, -6)
	_ = p.Close()
	expected := "M 0.000000 0.000000 C 1.000000 2.000000 3.000000 4.000000 5.500000 -6.000000 Z"
	if got := p.String(); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
	if pen, _ := p.Pen(); pen != (Point{5.5, -6}) {
		t.Errorf("unexpected pen %v", pen)
	}
}

func TestQuarterArc(t *testing.T) {
	var p Path
	if err := p.Arc(0, 0, 1, 0, 90, Degrees); err != nil {
		t.Fatal(err)
	}
	expected := "M 0.000000 0.000000 L 1.000000 0.000000 C 1.000000 0.552285 0.552285 1.000000 0.000000 1.000000"
	if got := p.ToSVGPath(); got != expected {
		t.Errorf("expected\n%s\ngot\n%s", expected, got)
	}

	h := 4. / 3. * math.Tan(math.Pi/8)
	want := []Operation{
		MoveTo{0, 0},
		LineTo{1, 0},
		CubicTo{{1, h}, {h, 1}, {0, 1}},
	}
	if d := cmp.Diff(want, p.Operations(), cmpopts.EquateApprox(0, 1e-12)); d != "" {
		t.Error(d)
	}
}

func countCurves(p *Path) int {
	n := 0
	for _, op := range p.Operations() {
		if _, ok := op.(CubicTo); ok {
			n++
		}
	}
	return n
}

func TestArcSplitting(t *testing.T) {
	for _, test := range []struct {
		theta1, theta2 float64
		unit           AngleUnit
		curves         int
	}{
		{0, 90, Degrees, 1},
		{0, 180, Degrees, 2},
		{0, 360, Degrees, 4},
		{90, -90, Degrees, 2},
		{0, 100, Degrees, 2},
		{0, 45, Degrees, 1},
		{0, math.Pi, Radians, 2},
		{0, 2 * math.Pi, Radians, 4},
		{30, 30, Degrees, 0},
	} {
		var p Path
		if err := p.Arc(0, 0, 1, test.theta1, test.theta2, test.unit); err != nil {
			t.Fatal(err)
		}
		if got := countCurves(&p); got != test.curves {
			t.Errorf("arc %v -> %v (%s): expected %d curves, got %d", test.theta1, test.theta2, test.unit, test.curves, got)
		}
	}
}

func TestHalfCircleSegments(t *testing.T) {
	var p Path
	_ = p.Arc(0, 0, 1, 0, 180, Degrees)
	ops := p.Operations()
	if len(ops) != 4 {
		t.Fatalf("expected 4 commands, got %d", len(ops))
	}
	// each segment spans 90 degrees
	want := []Operation{
		ArcSegment(0, 0, 1, 0, math.Pi/2),
		ArcSegment(0, 0, 1, math.Pi/2, math.Pi),
	}
	if d := cmp.Diff(want, ops[2:], cmpopts.EquateApprox(0, 1e-12)); d != "" {
		t.Error(d)
	}
}

func TestArcUnits(t *testing.T) {
	var deg, rad Path
	_ = deg.Arc(2, 3, 4, 10, 250, Degrees)
	_ = rad.Arc(2, 3, 4, 10*math.Pi/180, 250*math.Pi/180, Radians)
	if deg.ToSVGPath() != rad.ToSVGPath() {
		t.Errorf("units mismatch:\n%s\n%s", deg.ToSVGPath(), rad.ToSVGPath())
	}
}

func TestArcSplitMaxSegment(t *testing.T) {
	var p Path
	if err := p.ArcSplit(0, 0, 1, 0, 90, Degrees, 30); err != nil {
		t.Fatal(err)
	}
	if got := countCurves(&p); got != 3 {
		t.Errorf("expected 3 curves, got %d", got)
	}
	end, _ := p.Pen()
	if d := cmp.Diff(Point{0, 1}, end, cmpopts.EquateApprox(0, 1e-12)); d != "" {
		t.Error(d)
	}
}

func TestArcMalformed(t *testing.T) {
	var p Path
	_ = p.MoveTo(1, 1)
	for _, max := range []float64{0, -10, math.NaN(), math.Inf(1)} {
		err := p.ArcSplit(0, 0, 1, 0, 90, Degrees, max)
		if !errors.Is(err, ErrMalformedInput) {
			t.Errorf("max %v: expected ErrMalformedInput, got %v", max, err)
		}
	}
	if err := p.Arc(0, 0, 1, 0, math.Inf(1), Degrees); !errors.Is(err, ErrMalformedInput) {
		t.Errorf("expected ErrMalformedInput, got %v", err)
	}
	// finite angles, but too many segments
	if err := p.Arc(0, 0, 1, 0, 1e20, Degrees); !errors.Is(err, ErrMalformedInput) {
		t.Errorf("huge arc: expected ErrMalformedInput, got %v", err)
	}
	if err := p.ArcSplit(0, 0, 1, 0, 90, Degrees, 1e-300); !errors.Is(err, ErrMalformedInput) {
		t.Errorf("tiny segment angle: expected ErrMalformedInput, got %v", err)
	}
	if err := p.ArcSplit(0, 0, 1, 0, MaxArcSegments+1, Degrees, 1); !errors.Is(err, ErrMalformedInput) {
		t.Errorf("expected ErrMalformedInput above %d segments, got %v", MaxArcSegments, err)
	}
	if got := p.ToSVGPath(); got != "M 1.000000 1.000000" {
		t.Errorf("path modified: %q", got)
	}
}

func TestArcContinuesFromPen(t *testing.T) {
	var p Path
	_ = p.MoveTo(1, 0)
	_ = p.Arc(0, 0, 1, 0, 90, Degrees)
	// the pen is already on the arc start: no line is added
	if strings.Contains(p.ToSVGPath(), "L") {
		t.Errorf("unexpected line: %s", p.ToSVGPath())
	}
}

func TestBounds(t *testing.T) {
	var empty Path
	if _, ok := empty.Bounds(); ok {
		t.Fatal("empty path should have no bounds")
	}

	var p Path
	_ = p.MoveTo(3, 1)
	_ = p.Arc(1, 1, 2, 0, 360, Degrees)
	_ = p.Close()
	got, ok := p.Bounds()
	if !ok {
		t.Fatal("missing bounds")
	}
	want := Rect{Min: Point{-1, -1}, Max: Point{3, 3}}
	if d := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Error(d)
	}
	if got.Width() < 3.999 || got.Height() < 3.999 {
		t.Errorf("unexpected size %v", got)
	}

	var q Path
	_ = q.MoveTo(0, 0)
	_ = q.CurveTo(0, 10, 10, 10, 10, 0)
	got, _ = q.Bounds()
	// the curve peaks at t = 1/2, y = 7.5
	if d := cmp.Diff(Rect{Max: Point{10, 7.5}}, got, cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Error(d)
	}
}
