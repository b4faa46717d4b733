package adf

import (
	"time"

	"github.com/ukydev/adf/xmltree"
)

// Prospect is the root business entity: one sales lead linking the
// customer, the vehicles of interest, the vendor and the provider.
// Every field is optional at this level.
type Prospect struct {
	id          *ID
	requestDate time.Time
	vehicles    []*Vehicle
	customer    *Customer
	vendor      *Vendor
	provider    *Provider
}

// NewProspect creates an empty Prospect.
func NewProspect() *Prospect {
	return &Prospect{}
}

// SetID attaches an identifier.
func (p *Prospect) SetID(id *ID) *Prospect {
	p.id = id
	return p
}

// SetRequestDate records when the lead was requested. Rendered
// truncated to whole seconds.
func (p *Prospect) SetRequestDate(requestDate time.Time) *Prospect {
	p.requestDate = requestDate
	return p
}

// AddVehicle appends a vehicle of interest.
func (p *Prospect) AddVehicle(vehicle *Vehicle) *Prospect {
	p.vehicles = append(p.vehicles, vehicle)
	return p
}

// SetCustomer attaches the customer.
func (p *Prospect) SetCustomer(customer *Customer) *Prospect {
	p.customer = customer
	return p
}

// SetVendor attaches the vendor.
func (p *Prospect) SetVendor(vendor *Vendor) *Prospect {
	p.vendor = vendor
	return p
}

// SetProvider attaches the provider.
func (p *Prospect) SetProvider(provider *Provider) *Prospect {
	p.provider = provider
	return p
}

// ToXML projects the prospect into a <prospect> node: id, requestdate,
// vehicles, customer, vendor, provider.
func (p *Prospect) ToXML() (*xmltree.Node, error) {
	node := xmltree.New("prospect")

	if p.id != nil {
		child, err := p.id.ToXML()
		if err != nil {
			return nil, err
		}
		node.Append(child)
	}

	if !p.requestDate.IsZero() {
		node.Append(xmltree.New("requestdate").SetText(formatDate(p.requestDate)))
	}

	for _, v := range p.vehicles {
		child, err := v.ToXML()
		if err != nil {
			return nil, err
		}
		node.Append(child)
	}

	if p.customer != nil {
		child, err := p.customer.ToXML()
		if err != nil {
			return nil, err
		}
		node.Append(child)
	}

	if p.vendor != nil {
		child, err := p.vendor.ToXML()
		if err != nil {
			return nil, err
		}
		node.Append(child)
	}

	if p.provider != nil {
		child, err := p.provider.ToXML()
		if err != nil {
			return nil, err
		}
		node.Append(child)
	}

	return node, nil
}
