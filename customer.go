package adf

import (
	"time"

	"github.com/ukydev/adf/xmltree"
)

// Timeframe is the customer's purchase window. The format requires both
// dates whenever the block is present; that rule is enforced at
// projection time.
type Timeframe struct {
	EarliestDate time.Time
	LatestDate   time.Time
	Description  string
}

// Customer is the prospective buyer: a contact plus optional id,
// purchase timeframe and comments.
type Customer struct {
	contact   *Contact
	id        *ID
	timeframe *Timeframe
	comments  string
}

// NewCustomer creates a Customer around the given contact.
func NewCustomer(contact *Contact) *Customer {
	return &Customer{contact: contact}
}

// SetID attaches an identifier.
func (c *Customer) SetID(id *ID) *Customer {
	c.id = id
	return c
}

// SetTimeframe attaches the purchase window.
func (c *Customer) SetTimeframe(timeframe Timeframe) *Customer {
	c.timeframe = &timeframe
	return c
}

// SetComments sets free-text comments.
func (c *Customer) SetComments(comments string) *Customer {
	c.comments = comments
	return c
}

// ToXML projects the customer into a <customer> node. A timeframe with
// either date missing fails the projection.
func (c *Customer) ToXML() (*xmltree.Node, error) {
	node := xmltree.New("customer")

	contact, err := c.contact.ToXML()
	if err != nil {
		return nil, err
	}
	node.Append(contact)

	if c.id != nil {
		child, err := c.id.ToXML()
		if err != nil {
			return nil, err
		}
		node.Append(child)
	}

	if c.timeframe != nil {
		if c.timeframe.EarliestDate.IsZero() || c.timeframe.LatestDate.IsZero() {
			return nil, &MissingRequiredFieldError{Element: "customer timeframe", Field: "earliest and latest dates"}
		}
		tf := xmltree.New("timeframe")
		tf.Append(xmltree.New("earliestdate").SetText(formatDate(c.timeframe.EarliestDate)))
		tf.Append(xmltree.New("latestdate").SetText(formatDate(c.timeframe.LatestDate)))
		appendText(tf, "description", c.timeframe.Description)
		node.Append(tf)
	}

	appendText(node, "comments", c.comments)

	return node, nil
}
