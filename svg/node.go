// Provides a programmatic builder for svg documents:
// shapes, paths and groups are assembled in a tree,
// which is then written as svg markup.
//
// Attribute values are written verbatim: no XML escaping is applied.
package svg

import (
	"fmt"
	"strings"

	"cogentcore.org/core/base/indent"
	"github.com/benoitkugler/svgwrite/attrs"
)

// indentWidth is the number of spaces per nesting level
// when pretty printing.
const indentWidth = 2

// Element is implemented by all the nodes of the document tree.
type Element interface {
	// AsNode returns the shared node state.
	AsNode() *Node

	// Render returns the markup for the element and its children.
	// When `pretty` is true, lines are indented according to `level`.
	Render(pretty bool, level int) string
}

// ownAttributer is implemented by elements computing
// some of their attributes at render time, from typed fields.
type ownAttributer interface {
	ownAttributes(m *attrs.Map)
}

// defaultAttributes are applied to leaf shapes,
// when not otherwise specified.
var defaultAttributes = [...]attrs.KeyValue{
	{Key: "fill", Value: "none"},
	{Key: "stroke", Value: "#000"},
}

// Node is the base type for all elements within an svg tree.
// It holds the attributes, metadata, transforms and children of the element.
type Node struct {
	tag          string
	loadDefaults bool

	attributes *attrs.Map
	meta       *attrs.Map
	transforms []Transform
	children   []Element

	// text is written between the opening and closing tags
	text string

	own ownAttributer // optional
}

// NewNode returns an element named `tag`, with the given attributes.
// `meta` holds additional pass-through attributes.
// Fill and stroke defaults are enabled.
func NewNode(tag string, attributes []attrs.KeyValue, meta ...attrs.KeyValue) *Node {
	n := new(Node)
	n.init(tag, true, attributes, meta)
	return n
}

func (n *Node) init(tag string, loadDefaults bool, attributes, meta []attrs.KeyValue) {
	n.tag = tag
	n.loadDefaults = loadDefaults
	n.attributes = attrs.New(attributes...)
	n.meta = attrs.New(meta...)
}

func (n *Node) AsNode() *Node { return n }

// Tag returns the element name.
func (n *Node) Tag() string { return n.tag }

// LoadDefaults returns true if the fill and stroke defaults are applied.
func (n *Node) LoadDefaults() bool { return n.loadDefaults }

// SetAttribute sets the attribute `name`, overwriting
// any previous value.
func (n *Node) SetAttribute(name string, value any) *Node {
	if n.attributes == nil {
		n.attributes = attrs.New()
	}
	n.attributes.Set(name, value)
	return n
}

// Attribute returns the value of the attribute `name`,
// or an error wrapping ErrKeyNotFound.
// Attributes computed from the fields of a shape are included.
func (n *Node) Attribute(name string) (any, error) {
	return n.ownLayer().Get(name)
}

// Attributes returns the attributes explicitly set on the node.
func (n *Node) Attributes() *attrs.Map { return n.attributes }

// SetMeta sets the metadata `name`.
func (n *Node) SetMeta(name string, value any) *Node {
	if n.meta == nil {
		n.meta = attrs.New()
	}
	n.meta.Set(name, value)
	return n
}

// Meta returns the metadata `name`, or an error wrapping ErrKeyNotFound.
func (n *Node) Meta(name string) (any, error) {
	return n.meta.Get(name)
}

// SetContent sets the text written inside the element.
func (n *Node) SetContent(text string) *Node {
	n.text = text
	return n
}

// Content returns the text written inside the element.
func (n *Node) Content() string { return n.text }

// AddChild appends `child` to the children of the node.
// The node takes ownership of the child: it must not
// be added to another node.
func (n *Node) AddChild(child Element) *Node {
	n.children = append(n.children, child)
	return n
}

// Children returns the children, in rendering order.
func (n *Node) Children() []Element { return n.children }

// RenderAttributes returns the attributes written for the node.
// It merges, in this order, the metadata, the default attributes,
// the attributes of the node (computed ones, then the ones set
// explicitly) and its transform list. Later entries win, except
// for the defaults: they only fill keys the metadata leaves unset,
// so that a metadata `fill` is kept over fill="none".
func (n *Node) RenderAttributes() *attrs.Map {
	out := n.meta.Clone()
	if n.loadDefaults {
		for _, kv := range defaultAttributes {
			out.SetDefault(kv.Key, kv.Value)
		}
	}

	out.Merge(n.ownLayer())

	if len(n.transforms) != 0 {
		out.Set("transform", n.TransformString())
	}
	return out
}

// ownLayer returns the computed attributes, with the
// explicit ones on top.
func (n *Node) ownLayer() *attrs.Map {
	own := attrs.New()
	if n.own != nil {
		n.own.ownAttributes(own)
	}
	own.Merge(n.attributes)
	return own
}

// Render returns the markup of the node and its subtree.
func (n *Node) Render(pretty bool, level int) string {
	var prefix string
	if pretty {
		prefix = indent.Spaces(level, indentWidth)
	}

	var sb strings.Builder
	sb.WriteString(prefix)
	sb.WriteByte('<')
	sb.WriteString(n.tag)
	for k, v := range n.RenderAttributes().All() {
		fmt.Fprintf(&sb, ` %s="%s"`, k, attrs.Format(v))
	}

	if len(n.children) == 0 && n.text == "" {
		sb.WriteString(" />")
		return sb.String()
	}

	sb.WriteByte('>')
	sb.WriteString(n.text)
	if len(n.children) != 0 {
		chunks := make([]string, len(n.children))
		for i, child := range n.children {
			chunks[i] = child.Render(pretty, level+1)
		}
		sb.WriteByte('\n')
		sb.WriteString(strings.Join(chunks, "\n"))
		sb.WriteByte('\n')
		sb.WriteString(prefix)
	}
	sb.WriteString("</")
	sb.WriteString(n.tag)
	sb.WriteByte('>')
	return sb.String()
}
