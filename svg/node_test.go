package svg

import (
	"strings"
	"testing"

	"github.com/benoitkugler/svgwrite/attrs"
	"github.com/benoitkugler/svgwrite/svgpath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectDefaults(t *testing.T) {
	r := NewRect(0, 0, 10, 20)
	assert.Equal(t, `<rect fill="none" stroke="#000" x="0" y="0" width="10" height="20" />`, r.Render(false, 0))
	assert.Equal(t, []string{"fill", "stroke", "x", "y", "width", "height"}, r.RenderAttributes().Keys())
}

func TestMetadataOverridesDefaults(t *testing.T) {
	r := NewRect(1, 2, 3, 4, attrs.KV("fill", "red"), attrs.KV("id", "r1"))
	assert.Equal(t, `<rect fill="red" id="r1" stroke="#000" x="1" y="2" width="3" height="4" />`, r.Render(false, 0))

	// explicit attributes are the last layer before the transform
	r.SetAttribute("stroke", "blue")
	r.SetAttribute("x", 5.5)
	got, err := r.Attribute("x")
	require.NoError(t, err)
	assert.Equal(t, 5.5, got)
	assert.Contains(t, r.Render(false, 0), `stroke="blue" x="5.5"`)
}

func TestGroupHasNoDefaults(t *testing.T) {
	g := NewGroup(attrs.KV("id", "layer"))
	assert.Equal(t, `<g id="layer" />`, g.Render(false, 0))
	assert.False(t, g.LoadDefaults())
	assert.True(t, NewCircle(0, 0, 1).LoadDefaults())

	c := NewCanvas(10, 10)
	assert.NotContains(t, c.Document(false), "fill")
}

func TestKeyNotFound(t *testing.T) {
	c := NewCircle(1, 2, 3)
	_, err := c.Attribute("stroke-width")
	assert.ErrorIs(t, err, ErrKeyNotFound)
	_, err = c.Meta("id")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	r, err := c.Attribute("r")
	require.NoError(t, err)
	assert.Equal(t, 3., r)

	c.SetMeta("id", "c1")
	id, err := c.Meta("id")
	require.NoError(t, err)
	assert.Equal(t, "c1", id)
}

func TestNestedAttribute(t *testing.T) {
	r := NewRect(0, 0, 1, 1, attrs.KV("style", map[string]any{"stroke-width": 2, "opacity": 0.5}))
	assert.Contains(t, r.Render(false, 0), `style="opacity:0.5;stroke-width:2"`)

	n := NewNode("use", []attrs.KeyValue{attrs.KV("href", "#a")})
	n.SetAttribute("style", []attrs.KeyValue{attrs.KV("fill", "red"), attrs.KV("stroke", "none")})
	assert.Equal(t, `<use fill="none" stroke="#000" href="#a" style="fill:red;stroke:none" />`, n.Render(false, 0))
}

func TestTransformAttribute(t *testing.T) {
	r := NewRect(0, 0, 1, 1)
	r.Translate(10, 20).Rotate(30).Scale(2, 3).SkewX(5).SkewY(-5)
	r.RotateAround(45, 1.5, 2).Matrix(1, 0, 0, -1, 0, 50)

	got, err := r.RenderAttributes().Get("transform")
	require.NoError(t, err)
	assert.Equal(t, "translate(10 20) rotate(30) scale(2 3) skewX(5) skewY(-5) rotate(45 1.5 2) matrix(1 0 0 -1 0 50)", got)

	// transform comes last, even over metadata
	r2 := NewRect(0, 0, 1, 1, attrs.KV("transform", "scale(9)"))
	r2.Translate(1, 1)
	keys := r2.RenderAttributes().Keys()
	assert.Equal(t, "transform", keys[0])
	assert.Contains(t, r2.Render(false, 0), `transform="translate(1 1)"`)
}

func TestTextContent(t *testing.T) {
	txt := NewText(5, 10, "hello", attrs.KV("font-size", 12))
	assert.Equal(t, `<text font-size="12" fill="none" stroke="#000" x="5" y="10">hello</text>`, txt.Render(false, 0))
	assert.Equal(t, "hello", txt.Content())
}

func TestElementTags(t *testing.T) {
	for tag, el := range map[string]Element{
		"svg":      NewCanvas(1, 1),
		"g":        NewGroup(),
		"path":     NewPath(),
		"rect":     NewRect(0, 0, 1, 1),
		"circle":   NewCircle(0, 0, 1),
		"ellipse":  NewEllipse(0, 0, 1, 2),
		"line":     NewLine(0, 0, 1, 1),
		"polyline": NewPolyline(nil),
		"polygon":  NewPolygon(nil),
		"text":     NewText(0, 0, "t"),
		"use":      NewNode("use", nil),
	} {
		assert.Equal(t, tag, el.AsNode().Tag())
		assert.True(t, strings.HasPrefix(el.Render(false, 0), "<"+tag+" "), tag)
	}
}

func TestRenderChildren(t *testing.T) {
	g := NewGroup()
	g.Line(0, 0, 1, 1)
	inner := g.SubGroup(attrs.KV("id", "inner"))
	inner.Circle(0, 0, 2)

	expected := `<g>
<line fill="none" stroke="#000" x1="0" y1="0" x2="1" y2="1" />
<g id="inner">
<circle fill="none" stroke="#000" cx="0" cy="0" r="2" />
</g>
</g>`
	assert.Equal(t, expected, g.Render(false, 0))

	expectedPretty := `<g>
  <line fill="none" stroke="#000" x1="0" y1="0" x2="1" y2="1" />
  <g id="inner">
    <circle fill="none" stroke="#000" cx="0" cy="0" r="2" />
  </g>
</g>`
	assert.Equal(t, expectedPretty, g.Render(true, 0))

	assert.True(t, strings.HasPrefix(inner.Render(true, 3), "      <g"))
}

func stripIndent(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimLeft(line, " ")
	}
	return strings.Join(lines, "\n")
}

func sampleCanvas() *Canvas {
	c := NewCanvas(200, 100, attrs.KV("id", "root"))
	c.Rect(0, 0, 200, 100, attrs.KV("fill", "#eee"))
	g := c.Flip()
	p := g.Path(attrs.KV("stroke", "red"))
	_ = p.MoveTo(10, 10)
	_ = p.LineTo(50, 10)
	_ = p.Arc(50, 50, 40, -90, 0, svgpath.Degrees)
	_ = p.Close()
	g.Text(20, 80, "label")
	_, _ = g.PolygonXY([]float64{0, 0, 10, 0, 10, 10})
	g.Ellipse(100, 50, 30, 10).Rotate(15)
	return c
}

func TestIdempotentRender(t *testing.T) {
	c := sampleCanvas()
	assert.Equal(t, c.Document(false), c.Document(false))
	assert.Equal(t, c.Document(true), c.Document(true))
}

func TestPrettyMatchesCompact(t *testing.T) {
	c := sampleCanvas()
	compact := c.Document(false)
	pretty := c.Document(true)
	assert.NotEqual(t, compact, pretty)
	assert.Equal(t, compact, stripIndent(pretty))
}
