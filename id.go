package adf

import "github.com/ukydev/adf/xmltree"

// ID is an identifier assigned by one of the parties in the exchange,
// optionally qualified with a sequence and the assigning source.
type ID struct {
	value    string
	sequence string
	source   string
}

// NewID creates an ID with the given value.
func NewID(value string) *ID {
	return &ID{value: value}
}

// SetSequence sets the sequence qualifier.
func (i *ID) SetSequence(sequence string) *ID {
	i.sequence = sequence
	return i
}

// SetSource names the system that assigned the identifier.
func (i *ID) SetSource(source string) *ID {
	i.source = source
	return i
}

// ToXML projects the identifier into an <id> node.
func (i *ID) ToXML() (*xmltree.Node, error) {
	node := xmltree.New("id").SetText(i.value)
	if i.sequence != "" {
		node.SetAttr("sequence", i.sequence)
	}
	if i.source != "" {
		node.SetAttr("source", i.source)
	}
	return node, nil
}
