package adf

import (
	"errors"
	"io"

	"github.com/ukydev/adf/xmltree"
)

// Document is the root of one ADF document, wrapping exactly one
// prospect.
type Document struct {
	prospect *Prospect
}

// NewDocument creates a Document around the given prospect.
func NewDocument(prospect *Prospect) *Document {
	return &Document{prospect: prospect}
}

// ToXML projects the document into its <adf> root node.
func (d *Document) ToXML() (*xmltree.Node, error) {
	node := xmltree.New("adf")
	child, err := d.prospect.ToXML()
	if err != nil {
		return nil, err
	}
	node.Append(child)
	return node, nil
}

// WriteTo renders the document to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	node, err := d.ToXML()
	if err != nil {
		return 0, err
	}
	return node.WriteTo(w)
}

// Parse is the inverse transform: document text back into the object
// graph. It is declared for the round trip but not implemented.
// TODO: implement parsing once a consumer needs the inverse direction.
func Parse(s string) (*Document, error) {
	return nil, errors.New("adf: parsing documents is not implemented")
}
