package adf

import "github.com/ukydev/adf/xmltree"

// PhoneType classifies the kind of phone line.
type PhoneType string

const (
	PhoneTypeVoice     PhoneType = "phone"
	PhoneTypeFax       PhoneType = "fax"
	PhoneTypeCellphone PhoneType = "cellphone"
	PhoneTypePager     PhoneType = "pager"
)

var phoneTypes = []PhoneType{PhoneTypeVoice, PhoneTypeFax, PhoneTypeCellphone, PhoneTypePager}

// PhoneTime is the preferred time of day to call.
type PhoneTime string

const (
	PhoneTimeMorning      PhoneTime = "morning"
	PhoneTimeAfternoon    PhoneTime = "afternoon"
	PhoneTimeEvening      PhoneTime = "evening"
	PhoneTimeNoPreference PhoneTime = "nopreference"
	PhoneTimeDay          PhoneTime = "day"
)

var phoneTimes = []PhoneTime{PhoneTimeMorning, PhoneTimeAfternoon, PhoneTimeEvening, PhoneTimeNoPreference, PhoneTimeDay}

// PhoneNumber is a phone number with optional type, calling-time and
// preferred-contact classifiers.
type PhoneNumber struct {
	value     string
	typ       PhoneType
	time      PhoneTime
	preferred *bool
}

// NewPhoneNumber creates a PhoneNumber with the given number.
func NewPhoneNumber(value string) *PhoneNumber {
	return &PhoneNumber{value: value}
}

// SetType sets the line type.
func (p *PhoneNumber) SetType(typ PhoneType) (*PhoneNumber, error) {
	if err := oneOf("phone type", typ, phoneTypes); err != nil {
		return p, err
	}
	p.typ = typ
	return p, nil
}

// SetTime sets the preferred time of day to call.
func (p *PhoneNumber) SetTime(time PhoneTime) (*PhoneNumber, error) {
	if err := oneOf("phone time", time, phoneTimes); err != nil {
		return p, err
	}
	p.time = time
	return p, nil
}

// SetPreferredContact marks whether this is the preferred way to reach
// the contact.
func (p *PhoneNumber) SetPreferredContact(v bool) *PhoneNumber {
	p.preferred = &v
	return p
}

// ToXML projects the number into a <phone> node.
func (p *PhoneNumber) ToXML() (*xmltree.Node, error) {
	node := xmltree.New("phone").SetText(p.value)
	if p.typ != "" {
		node.SetAttr("type", string(p.typ))
	}
	if p.time != "" {
		node.SetAttr("time", string(p.time))
	}
	if p.preferred != nil {
		node.SetAttr("preferredcontact", boolAttr(*p.preferred))
	}
	return node, nil
}
