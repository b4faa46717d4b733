package adf

import "github.com/ukydev/adf/xmltree"

// Provider is an intermediary lead-routing or third-party service
// associated with the lead. Like Contact it needs at least one name by
// projection time.
type Provider struct {
	id      *ID
	names   []*Name
	service string
	url     string
	emails  []*Email
	phones  []*PhoneNumber
	contact *Contact
}

// NewProvider creates an empty Provider.
func NewProvider() *Provider {
	return &Provider{}
}

// SetID attaches an identifier.
func (p *Provider) SetID(id *ID) *Provider {
	p.id = id
	return p
}

// AddName appends a name.
func (p *Provider) AddName(name *Name) *Provider {
	p.names = append(p.names, name)
	return p
}

// SetService describes the service the provider performed.
func (p *Provider) SetService(service string) *Provider {
	p.service = service
	return p
}

// SetURL sets the provider's web address.
func (p *Provider) SetURL(url string) *Provider {
	p.url = url
	return p
}

// AddEmail appends an email address.
func (p *Provider) AddEmail(email *Email) *Provider {
	p.emails = append(p.emails, email)
	return p
}

// AddPhoneNumber appends a phone number.
func (p *Provider) AddPhoneNumber(phone *PhoneNumber) *Provider {
	p.phones = append(p.phones, phone)
	return p
}

// SetContact attaches a full contact block.
func (p *Provider) SetContact(contact *Contact) *Provider {
	p.contact = contact
	return p
}

// ToXML projects the provider into a <provider> node. Fails when no
// name has been added.
func (p *Provider) ToXML() (*xmltree.Node, error) {
	if len(p.names) == 0 {
		return nil, &MissingRequiredFieldError{Element: "provider", Field: "at least one name"}
	}

	node := xmltree.New("provider")

	if p.id != nil {
		child, err := p.id.ToXML()
		if err != nil {
			return nil, err
		}
		node.Append(child)
	}
	for _, n := range p.names {
		child, err := n.ToXML()
		if err != nil {
			return nil, err
		}
		node.Append(child)
	}

	appendText(node, "service", p.service)
	appendText(node, "url", p.url)

	for _, e := range p.emails {
		child, err := e.ToXML()
		if err != nil {
			return nil, err
		}
		node.Append(child)
	}
	for _, ph := range p.phones {
		child, err := ph.ToXML()
		if err != nil {
			return nil, err
		}
		node.Append(child)
	}

	if p.contact != nil {
		child, err := p.contact.ToXML()
		if err != nil {
			return nil, err
		}
		node.Append(child)
	}

	return node, nil
}
