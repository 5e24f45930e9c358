package svg

import (
	"fmt"
	"io"
	"os"

	"github.com/benoitkugler/svgwrite/attrs"
)

const (
	svgNamespace   = "http://www.w3.org/2000/svg"
	xlinkNamespace = "http://www.w3.org/1999/xlink"
)

// Canvas is the root of an svg document.
type Canvas struct {
	Group
	Width, Height float64
}

// NewCanvas returns an empty document, with a
// viewbox of "0 0 width height".
func NewCanvas(width, height float64, meta ...attrs.KeyValue) *Canvas {
	c := &Canvas{Width: width, Height: height}
	c.init("svg", false, nil, meta)
	c.own = c
	return c
}

func (c *Canvas) ownAttributes(m *attrs.Map) {
	m.Set("xmlns", svgNamespace)
	m.Set("xmlns:xlink", xlinkNamespace)
	m.Set("version", "1.1")
	m.Set("width", c.Width)
	m.Set("height", c.Height)
	m.Set("viewbox", fmt.Sprintf("0 0 %s %s", attrs.FormatFloat(c.Width), attrs.FormatFloat(c.Height)))
}

// Flip adds and returns a group whose y axis points upward,
// with origin at the bottom left corner of the canvas.
func (c *Canvas) Flip() *Group {
	g := c.SubGroup()
	g.Matrix(1, 0, 0, -1, 0, c.Height)
	Logger().Debug("svg: flipped group added", "height", c.Height)
	return g
}

// Document returns the markup of the whole document.
func (c *Canvas) Document(pretty bool) string {
	return c.Render(pretty, 0)
}

// Write writes the document to `w`.
func (c *Canvas) Write(w io.Writer, pretty bool) error {
	_, err := io.WriteString(w, c.Document(pretty))
	return err
}

// Save writes the document to the file at `path`,
// overwriting it if it exists.
func (c *Canvas) Save(path string, pretty bool) error {
	content := c.Document(pretty)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("saving svg document: %w", err)
	}
	Logger().Debug("svg: document saved", "path", path, "bytes", len(content))
	return nil
}
