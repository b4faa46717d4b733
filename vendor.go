package adf

import "github.com/ukydev/adf/xmltree"

// Vendor is the dealer or seller submitting the lead.
type Vendor struct {
	id      *ID
	name    string
	url     string
	contact *Contact
}

// NewVendor creates a Vendor with its name and contact.
func NewVendor(name string, contact *Contact) *Vendor {
	return &Vendor{name: name, contact: contact}
}

// SetID attaches an identifier.
func (v *Vendor) SetID(id *ID) *Vendor {
	v.id = id
	return v
}

// SetURL sets the vendor's web address.
func (v *Vendor) SetURL(url string) *Vendor {
	v.url = url
	return v
}

// ToXML projects the vendor into a <vendor> node.
func (v *Vendor) ToXML() (*xmltree.Node, error) {
	node := xmltree.New("vendor")

	if v.id != nil {
		child, err := v.id.ToXML()
		if err != nil {
			return nil, err
		}
		node.Append(child)
	}

	node.Append(xmltree.New("vendorname").SetText(v.name))
	appendText(node, "url", v.url)

	contact, err := v.contact.ToXML()
	if err != nil {
		return nil, err
	}
	node.Append(contact)

	return node, nil
}
