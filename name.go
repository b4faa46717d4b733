// Package adf builds documents in the Auto-lead Data Format: a prospect
// describing a buyer, vehicles of interest, the sending vendor and an
// optional lead provider. Entities are assembled with chained setters
// and projected into an ordered xmltree.Node matching the format's
// element names, attributes and child order.
package adf

import "github.com/ukydev/adf/xmltree"

// NamePart classifies which part of a person's name a Name carries.
type NamePart string

const (
	NamePartFirst  NamePart = "first"
	NamePartMiddle NamePart = "middle"
	NamePartSuffix NamePart = "suffix"
	NamePartLast   NamePart = "last"
	NamePartFull   NamePart = "full"
)

var nameParts = []NamePart{NamePartFirst, NamePartMiddle, NamePartSuffix, NamePartLast, NamePartFull}

// NameType distinguishes person names from business names.
type NameType string

const (
	NameTypeIndividual NameType = "individual"
	NameTypeBusiness   NameType = "business"
)

var nameTypes = []NameType{NameTypeIndividual, NameTypeBusiness}

// Name is a single name value with optional part and type classifiers.
type Name struct {
	value string
	part  NamePart
	typ   NameType
}

// NewName creates a Name with the given text value.
func NewName(value string) *Name {
	return &Name{value: value}
}

// SetPart sets the part classifier. Values outside the closed set are
// rejected and the prior value is kept.
func (n *Name) SetPart(part NamePart) (*Name, error) {
	if err := oneOf("name part", part, nameParts); err != nil {
		return n, err
	}
	n.part = part
	return n, nil
}

// SetType sets the name type.
func (n *Name) SetType(typ NameType) (*Name, error) {
	if err := oneOf("name type", typ, nameTypes); err != nil {
		return n, err
	}
	n.typ = typ
	return n, nil
}

// ToXML projects the name into a <name> node.
func (n *Name) ToXML() (*xmltree.Node, error) {
	node := xmltree.New("name").SetText(n.value)
	if n.part != "" {
		node.SetAttr("part", string(n.part))
	}
	if n.typ != "" {
		node.SetAttr("type", string(n.typ))
	}
	return node, nil
}
