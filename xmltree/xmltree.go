// Package xmltree holds a minimal ordered XML node representation.
// Entities build their output against this neutral tree; the textual
// rendering backend lives in render.go and can be swapped without
// touching any producer.
package xmltree

// Attr is a single element attribute. Attribute order is preserved.
type Attr struct {
	Key   string
	Value string
}

// Node is one element: a tag, optional text, ordered attributes and
// ordered children.
type Node struct {
	Tag      string
	Text     string
	Attrs    []Attr
	Children []*Node
}

// New creates an empty node with the given tag.
func New(tag string) *Node {
	return &Node{Tag: tag}
}

// SetText sets the node's text content and returns the node.
func (n *Node) SetText(text string) *Node {
	n.Text = text
	return n
}

// SetAttr sets an attribute, overwriting in place when the key already
// exists so attribute order stays stable.
func (n *Node) SetAttr(key, value string) *Node {
	for i := range n.Attrs {
		if n.Attrs[i].Key == key {
			n.Attrs[i].Value = value
			return n
		}
	}
	n.Attrs = append(n.Attrs, Attr{Key: key, Value: value})
	return n
}

// Attr returns the value of the named attribute and whether it is set.
func (n *Node) Attr(key string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// Append adds child nodes at the end and returns the node.
func (n *Node) Append(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// Child returns the first child with the given tag, or nil.
func (n *Node) Child(tag string) *Node {
	for _, c := range n.Children {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}
