package adf

import "github.com/ukydev/adf/xmltree"

// Email is a single email address. The preferred-contact flag is
// tri-state: never set means the attribute is omitted entirely.
type Email struct {
	value     string
	preferred *bool
}

// NewEmail creates an Email with the given address.
func NewEmail(value string) *Email {
	return &Email{value: value}
}

// SetPreferredContact marks whether this is the preferred way to reach
// the contact.
func (e *Email) SetPreferredContact(v bool) *Email {
	e.preferred = &v
	return e
}

// ToXML projects the email into an <email> node.
func (e *Email) ToXML() (*xmltree.Node, error) {
	node := xmltree.New("email").SetText(e.value)
	if e.preferred != nil {
		node.SetAttr("preferredcontact", boolAttr(*e.preferred))
	}
	return node, nil
}
