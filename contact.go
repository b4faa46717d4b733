package adf

import "github.com/ukydev/adf/xmltree"

// Contact aggregates names, emails, phone numbers and addresses for one
// party. A contact needs at least one name by the time it is projected;
// everything else is optional.
type Contact struct {
	primary   *bool
	names     []*Name
	emails    []*Email
	phones    []*PhoneNumber
	addresses []*Address
}

// NewContact creates an empty Contact.
func NewContact() *Contact {
	return &Contact{}
}

// SetPrimaryContact marks whether this is the primary contact.
func (c *Contact) SetPrimaryContact(v bool) *Contact {
	c.primary = &v
	return c
}

// AddName appends a name.
func (c *Contact) AddName(name *Name) *Contact {
	c.names = append(c.names, name)
	return c
}

// AddEmail appends an email address.
func (c *Contact) AddEmail(email *Email) *Contact {
	c.emails = append(c.emails, email)
	return c
}

// AddPhoneNumber appends a phone number.
func (c *Contact) AddPhoneNumber(phone *PhoneNumber) *Contact {
	c.phones = append(c.phones, phone)
	return c
}

// AddAddress appends an address.
func (c *Contact) AddAddress(address *Address) *Contact {
	c.addresses = append(c.addresses, address)
	return c
}

// ToXML projects the contact into a <contact> node: names, then emails,
// then phones, then addresses. Fails when no name has been added.
func (c *Contact) ToXML() (*xmltree.Node, error) {
	if len(c.names) == 0 {
		return nil, &MissingRequiredFieldError{Element: "contact", Field: "at least one name"}
	}

	node := xmltree.New("contact")
	if c.primary != nil {
		node.SetAttr("primarycontact", boolAttr(*c.primary))
	}
	for _, n := range c.names {
		child, err := n.ToXML()
		if err != nil {
			return nil, err
		}
		node.Append(child)
	}
	for _, e := range c.emails {
		child, err := e.ToXML()
		if err != nil {
			return nil, err
		}
		node.Append(child)
	}
	for _, p := range c.phones {
		child, err := p.ToXML()
		if err != nil {
			return nil, err
		}
		node.Append(child)
	}
	for _, a := range c.addresses {
		child, err := a.ToXML()
		if err != nil {
			return nil, err
		}
		node.Append(child)
	}
	return node, nil
}
