package adf

import (
	"strconv"

	"github.com/ukydev/adf/xmltree"
)

// AddressType classifies an address.
type AddressType string

const (
	AddressTypeWork     AddressType = "work"
	AddressTypeHome     AddressType = "home"
	AddressTypeDelivery AddressType = "delivery"
)

var addressTypes = []AddressType{AddressTypeWork, AddressTypeHome, AddressTypeDelivery}

// Address is a postal address. Street lines keep insertion order and
// are numbered from 1 in the output.
type Address struct {
	typ        AddressType
	streets    []string
	apartment  string
	city       string
	regionCode string
	postalCode string
	country    string
}

// NewAddress creates an empty Address.
func NewAddress() *Address {
	return &Address{}
}

// SetType sets the address type.
func (a *Address) SetType(typ AddressType) (*Address, error) {
	if err := oneOf("address type", typ, addressTypes); err != nil {
		return a, err
	}
	a.typ = typ
	return a, nil
}

// AddStreet appends a street line.
func (a *Address) AddStreet(street string) *Address {
	a.streets = append(a.streets, street)
	return a
}

// SetApartment sets the apartment or unit.
func (a *Address) SetApartment(apartment string) *Address {
	a.apartment = apartment
	return a
}

// SetCity sets the city.
func (a *Address) SetCity(city string) *Address {
	a.city = city
	return a
}

// SetRegionCode sets the state/province code.
func (a *Address) SetRegionCode(regionCode string) *Address {
	a.regionCode = regionCode
	return a
}

// SetPostalCode sets the postal code.
func (a *Address) SetPostalCode(postalCode string) *Address {
	a.postalCode = postalCode
	return a
}

// SetCountry sets the country.
func (a *Address) SetCountry(country string) *Address {
	a.country = country
	return a
}

// ToXML projects the address into an <address> node. Street children
// carry a 1-based line attribute.
func (a *Address) ToXML() (*xmltree.Node, error) {
	node := xmltree.New("address")
	if a.typ != "" {
		node.SetAttr("type", string(a.typ))
	}
	for i, s := range a.streets {
		node.Append(xmltree.New("street").SetText(s).SetAttr("line", strconv.Itoa(i+1)))
	}
	appendText(node, "apartment", a.apartment)
	appendText(node, "city", a.city)
	appendText(node, "regioncode", a.regionCode)
	appendText(node, "postalcode", a.postalCode)
	appendText(node, "country", a.country)
	return node, nil
}
