package xmltree

import (
	"io"

	"github.com/beevik/etree"
)

// Document converts the node tree into an etree document rooted at n.
func (n *Node) Document() *etree.Document {
	doc := etree.NewDocument()
	n.attach(&doc.Element)
	return doc
}

func (n *Node) attach(parent *etree.Element) {
	el := parent.CreateElement(n.Tag)
	for _, a := range n.Attrs {
		el.CreateAttr(a.Key, a.Value)
	}
	if n.Text != "" {
		el.SetText(n.Text)
	}
	for _, c := range n.Children {
		c.attach(el)
	}
}

// WriteTo renders the tree to w without indentation.
func (n *Node) WriteTo(w io.Writer) (int64, error) {
	return n.Document().WriteTo(w)
}

// String renders the tree compactly. Rendering an in-memory tree cannot
// fail, so errors are swallowed here; use WriteTo when writing to real
// output.
func (n *Node) String() string {
	s, _ := n.Document().WriteToString()
	return s
}

// Indent renders the tree indented by the given number of spaces per level.
func (n *Node) Indent(spaces int) string {
	doc := n.Document()
	doc.Indent(spaces)
	s, _ := doc.WriteToString()
	return s
}
