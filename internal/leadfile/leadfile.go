// Package leadfile reads a declarative JSON lead description and builds
// the corresponding ADF document through the builder API. The file
// carries no validation rules of its own; bad enum values or missing
// required substructures surface as the builder's errors.
package leadfile

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ukydev/adf"
)

// File is the top-level lead description.
type File struct {
	ID          *IDIn       `json:"id,omitempty"`
	RequestDate string      `json:"requestdate,omitempty"`
	Vehicles    []VehicleIn `json:"vehicles,omitempty"`
	Customer    *CustomerIn `json:"customer,omitempty"`
	Vendor      *VendorIn   `json:"vendor,omitempty"`
	Provider    *ProviderIn `json:"provider,omitempty"`
}

// IDIn describes an identifier.
type IDIn struct {
	Value    string `json:"value"`
	Sequence string `json:"sequence,omitempty"`
	Source   string `json:"source,omitempty"`
}

// NameIn describes a name.
type NameIn struct {
	Value string `json:"value"`
	Part  string `json:"part,omitempty"`
	Type  string `json:"type,omitempty"`
}

// EmailIn describes an email address.
type EmailIn struct {
	Value     string `json:"value"`
	Preferred *bool  `json:"preferredcontact,omitempty"`
}

// PhoneIn describes a phone number.
type PhoneIn struct {
	Value     string `json:"value"`
	Type      string `json:"type,omitempty"`
	Time      string `json:"time,omitempty"`
	Preferred *bool  `json:"preferredcontact,omitempty"`
}

// AddressIn describes a postal address.
type AddressIn struct {
	Type       string   `json:"type,omitempty"`
	Streets    []string `json:"streets,omitempty"`
	Apartment  string   `json:"apartment,omitempty"`
	City       string   `json:"city,omitempty"`
	RegionCode string   `json:"regioncode,omitempty"`
	PostalCode string   `json:"postalcode,omitempty"`
	Country    string   `json:"country,omitempty"`
}

// ContactIn describes a contact block.
type ContactIn struct {
	Primary   *bool       `json:"primarycontact,omitempty"`
	Names     []NameIn    `json:"names,omitempty"`
	Emails    []EmailIn   `json:"emails,omitempty"`
	Phones    []PhoneIn   `json:"phones,omitempty"`
	Addresses []AddressIn `json:"addresses,omitempty"`
}

// PriceIn describes a price.
type PriceIn struct {
	Value      string `json:"value"`
	Type       string `json:"type,omitempty"`
	Currency   string `json:"currency,omitempty"`
	Delta      string `json:"delta,omitempty"`
	RelativeTo string `json:"relativeto,omitempty"`
	Source     string `json:"source,omitempty"`
}

// ColorIn describes one color combination.
type ColorIn struct {
	Interior   string `json:"interiorcolor,omitempty"`
	Exterior   string `json:"exteriorcolor,omitempty"`
	Preference int    `json:"preference,omitempty"`
}

// ImageIn describes the image reference.
type ImageIn struct {
	URL     string `json:"url"`
	Width   int    `json:"width,omitempty"`
	Height  int    `json:"height,omitempty"`
	AltText string `json:"alttext,omitempty"`
}

// OptionIn describes one vehicle option.
type OptionIn struct {
	Name             string   `json:"name"`
	ManufacturerCode string   `json:"manufacturercode,omitempty"`
	Stock            string   `json:"stock,omitempty"`
	Weighting        int      `json:"weighting,omitempty"`
	Price            *PriceIn `json:"price,omitempty"`
}

// AmountIn describes a finance amount or balance.
type AmountIn struct {
	Value    string `json:"value"`
	Type     string `json:"type,omitempty"`
	Currency string `json:"currency,omitempty"`
}

// FinanceIn describes the finance summary.
type FinanceIn struct {
	Method  string     `json:"method"`
	Amounts []AmountIn `json:"amounts,omitempty"`
	Balance AmountIn   `json:"balance"`
}

// VehicleIn describes one vehicle of interest.
type VehicleIn struct {
	Interest       string     `json:"interest,omitempty"`
	Status         string     `json:"status,omitempty"`
	ID             *IDIn      `json:"id,omitempty"`
	Year           string     `json:"year"`
	Make           string     `json:"make"`
	Model          string     `json:"model"`
	VIN            string     `json:"vin,omitempty"`
	Stock          string     `json:"stock,omitempty"`
	Trim           string     `json:"trim,omitempty"`
	Doors          string     `json:"doors,omitempty"`
	BodyStyle      string     `json:"bodystyle,omitempty"`
	Transmission   string     `json:"transmission,omitempty"`
	Odometer       string     `json:"odometer,omitempty"`
	OdometerStatus string     `json:"odometerstatus,omitempty"`
	OdometerUnits  string     `json:"odometerunits,omitempty"`
	Condition      string     `json:"condition,omitempty"`
	Colors         []ColorIn  `json:"colorcombinations,omitempty"`
	Image          *ImageIn   `json:"imagetag,omitempty"`
	Price          *PriceIn   `json:"price,omitempty"`
	PriceComments  string     `json:"pricecomments,omitempty"`
	Options        []OptionIn `json:"options,omitempty"`
	Finance        *FinanceIn `json:"finance,omitempty"`
	Comments       string     `json:"comments,omitempty"`
}

// TimeframeIn describes the customer's purchase window. Dates are
// RFC 3339.
type TimeframeIn struct {
	EarliestDate string `json:"earliestdate,omitempty"`
	LatestDate   string `json:"latestdate,omitempty"`
	Description  string `json:"description,omitempty"`
}

// CustomerIn describes the customer.
type CustomerIn struct {
	Contact   ContactIn    `json:"contact"`
	ID        *IDIn        `json:"id,omitempty"`
	Timeframe *TimeframeIn `json:"timeframe,omitempty"`
	Comments  string       `json:"comments,omitempty"`
}

// VendorIn describes the vendor.
type VendorIn struct {
	Name    string    `json:"name"`
	Contact ContactIn `json:"contact"`
	ID      *IDIn     `json:"id,omitempty"`
	URL     string    `json:"url,omitempty"`
}

// ProviderIn describes the provider.
type ProviderIn struct {
	ID      *IDIn      `json:"id,omitempty"`
	Names   []NameIn   `json:"names,omitempty"`
	Service string     `json:"service,omitempty"`
	URL     string     `json:"url,omitempty"`
	Emails  []EmailIn  `json:"emails,omitempty"`
	Phones  []PhoneIn  `json:"phones,omitempty"`
	Contact *ContactIn `json:"contact,omitempty"`
}

// Read loads and decodes a lead description from a file.
func Read(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// Decode decodes a lead description from r.
func Decode(r io.Reader) (*File, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var file File
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("leadfile: %w", err)
	}
	return &file, nil
}

// Build maps the description onto the builder API and returns the
// assembled document.
func (f *File) Build() (*adf.Document, error) {
	prospect := adf.NewProspect()

	if f.ID != nil {
		prospect.SetID(buildID(f.ID))
	}
	if f.RequestDate != "" {
		t, err := time.Parse(time.RFC3339, f.RequestDate)
		if err != nil {
			return nil, fmt.Errorf("leadfile: requestdate: %w", err)
		}
		prospect.SetRequestDate(t)
	}

	for i := range f.Vehicles {
		vehicle, err := buildVehicle(&f.Vehicles[i])
		if err != nil {
			return nil, err
		}
		prospect.AddVehicle(vehicle)
	}

	if f.Customer != nil {
		customer, err := buildCustomer(f.Customer)
		if err != nil {
			return nil, err
		}
		prospect.SetCustomer(customer)
	}
	if f.Vendor != nil {
		vendor, err := buildVendor(f.Vendor)
		if err != nil {
			return nil, err
		}
		prospect.SetVendor(vendor)
	}
	if f.Provider != nil {
		provider, err := buildProvider(f.Provider)
		if err != nil {
			return nil, err
		}
		prospect.SetProvider(provider)
	}

	return adf.NewDocument(prospect), nil
}

func buildID(in *IDIn) *adf.ID {
	id := adf.NewID(in.Value)
	if in.Sequence != "" {
		id.SetSequence(in.Sequence)
	}
	if in.Source != "" {
		id.SetSource(in.Source)
	}
	return id
}

func buildName(in NameIn) (*adf.Name, error) {
	name := adf.NewName(in.Value)
	if in.Part != "" {
		if _, err := name.SetPart(adf.NamePart(in.Part)); err != nil {
			return nil, err
		}
	}
	if in.Type != "" {
		if _, err := name.SetType(adf.NameType(in.Type)); err != nil {
			return nil, err
		}
	}
	return name, nil
}

func buildEmail(in EmailIn) *adf.Email {
	email := adf.NewEmail(in.Value)
	if in.Preferred != nil {
		email.SetPreferredContact(*in.Preferred)
	}
	return email
}

func buildPhone(in PhoneIn) (*adf.PhoneNumber, error) {
	phone := adf.NewPhoneNumber(in.Value)
	if in.Type != "" {
		if _, err := phone.SetType(adf.PhoneType(in.Type)); err != nil {
			return nil, err
		}
	}
	if in.Time != "" {
		if _, err := phone.SetTime(adf.PhoneTime(in.Time)); err != nil {
			return nil, err
		}
	}
	if in.Preferred != nil {
		phone.SetPreferredContact(*in.Preferred)
	}
	return phone, nil
}

func buildAddress(in AddressIn) (*adf.Address, error) {
	address := adf.NewAddress()
	if in.Type != "" {
		if _, err := address.SetType(adf.AddressType(in.Type)); err != nil {
			return nil, err
		}
	}
	for _, s := range in.Streets {
		address.AddStreet(s)
	}
	address.SetApartment(in.Apartment).
		SetCity(in.City).
		SetRegionCode(in.RegionCode).
		SetPostalCode(in.PostalCode).
		SetCountry(in.Country)
	return address, nil
}

func buildContact(in ContactIn) (*adf.Contact, error) {
	contact := adf.NewContact()
	if in.Primary != nil {
		contact.SetPrimaryContact(*in.Primary)
	}
	for _, n := range in.Names {
		name, err := buildName(n)
		if err != nil {
			return nil, err
		}
		contact.AddName(name)
	}
	for _, e := range in.Emails {
		contact.AddEmail(buildEmail(e))
	}
	for _, p := range in.Phones {
		phone, err := buildPhone(p)
		if err != nil {
			return nil, err
		}
		contact.AddPhoneNumber(phone)
	}
	for _, a := range in.Addresses {
		address, err := buildAddress(a)
		if err != nil {
			return nil, err
		}
		contact.AddAddress(address)
	}
	return contact, nil
}

func buildPrice(in *PriceIn) (*adf.Price, error) {
	price := adf.NewPrice(in.Value)
	if in.Type != "" {
		if _, err := price.SetType(adf.PriceType(in.Type)); err != nil {
			return nil, err
		}
	}
	if in.Currency != "" {
		if _, err := price.SetCurrency(in.Currency); err != nil {
			return nil, err
		}
	}
	if in.Delta != "" {
		if _, err := price.SetDelta(adf.PriceDelta(in.Delta)); err != nil {
			return nil, err
		}
	}
	if in.RelativeTo != "" {
		if _, err := price.SetRelativeTo(adf.PriceRelativeTo(in.RelativeTo)); err != nil {
			return nil, err
		}
	}
	if in.Source != "" {
		price.SetSource(in.Source)
	}
	return price, nil
}

func buildVehicle(in *VehicleIn) (*adf.Vehicle, error) {
	vehicle := adf.NewVehicle(in.Year, in.Make, in.Model)
	if in.Interest != "" {
		if _, err := vehicle.SetInterest(adf.VehicleInterest(in.Interest)); err != nil {
			return nil, err
		}
	}
	if in.Status != "" {
		if _, err := vehicle.SetStatus(adf.VehicleStatus(in.Status)); err != nil {
			return nil, err
		}
	}
	if in.ID != nil {
		vehicle.SetID(buildID(in.ID))
	}
	vehicle.SetVIN(in.VIN).
		SetStock(in.Stock).
		SetTrim(in.Trim).
		SetDoors(in.Doors).
		SetBodyStyle(in.BodyStyle).
		SetTransmission(in.Transmission).
		SetOdometer(in.Odometer)
	if in.OdometerStatus != "" {
		if _, err := vehicle.SetOdometerStatus(adf.OdometerStatus(in.OdometerStatus)); err != nil {
			return nil, err
		}
	}
	if in.OdometerUnits != "" {
		if _, err := vehicle.SetOdometerUnits(adf.OdometerUnits(in.OdometerUnits)); err != nil {
			return nil, err
		}
	}
	if in.Condition != "" {
		if _, err := vehicle.SetCondition(adf.VehicleCondition(in.Condition)); err != nil {
			return nil, err
		}
	}
	for _, c := range in.Colors {
		vehicle.AddColorCombination(adf.ColorCombination{
			Interior:   c.Interior,
			Exterior:   c.Exterior,
			Preference: c.Preference,
		})
	}
	if in.Image != nil {
		vehicle.SetImageTag(adf.ImageTag{
			URL:     in.Image.URL,
			Width:   in.Image.Width,
			Height:  in.Image.Height,
			AltText: in.Image.AltText,
		})
	}
	if in.Price != nil {
		price, err := buildPrice(in.Price)
		if err != nil {
			return nil, err
		}
		vehicle.SetPrice(price)
	}
	vehicle.SetPriceComments(in.PriceComments)
	for _, o := range in.Options {
		option := adf.Option{
			Name:             o.Name,
			ManufacturerCode: o.ManufacturerCode,
			Stock:            o.Stock,
			Weighting:        o.Weighting,
		}
		if o.Price != nil {
			price, err := buildPrice(o.Price)
			if err != nil {
				return nil, err
			}
			option.Price = price
		}
		vehicle.AddOption(option)
	}
	if in.Finance != nil {
		amounts := make([]adf.FinanceAmount, 0, len(in.Finance.Amounts))
		for _, a := range in.Finance.Amounts {
			amounts = append(amounts, adf.FinanceAmount(a))
		}
		if _, err := vehicle.SetFinance(adf.FinanceMethod(in.Finance.Method), amounts, adf.FinanceAmount(in.Finance.Balance)); err != nil {
			return nil, err
		}
	}
	vehicle.SetComments(in.Comments)
	return vehicle, nil
}

func buildCustomer(in *CustomerIn) (*adf.Customer, error) {
	contact, err := buildContact(in.Contact)
	if err != nil {
		return nil, err
	}
	customer := adf.NewCustomer(contact)
	if in.ID != nil {
		customer.SetID(buildID(in.ID))
	}
	if in.Timeframe != nil {
		tf := adf.Timeframe{Description: in.Timeframe.Description}
		if in.Timeframe.EarliestDate != "" {
			t, err := time.Parse(time.RFC3339, in.Timeframe.EarliestDate)
			if err != nil {
				return nil, fmt.Errorf("leadfile: timeframe earliestdate: %w", err)
			}
			tf.EarliestDate = t
		}
		if in.Timeframe.LatestDate != "" {
			t, err := time.Parse(time.RFC3339, in.Timeframe.LatestDate)
			if err != nil {
				return nil, fmt.Errorf("leadfile: timeframe latestdate: %w", err)
			}
			tf.LatestDate = t
		}
		customer.SetTimeframe(tf)
	}
	customer.SetComments(in.Comments)
	return customer, nil
}

func buildVendor(in *VendorIn) (*adf.Vendor, error) {
	contact, err := buildContact(in.Contact)
	if err != nil {
		return nil, err
	}
	vendor := adf.NewVendor(in.Name, contact)
	if in.ID != nil {
		vendor.SetID(buildID(in.ID))
	}
	vendor.SetURL(in.URL)
	return vendor, nil
}

func buildProvider(in *ProviderIn) (*adf.Provider, error) {
	provider := adf.NewProvider()
	if in.ID != nil {
		provider.SetID(buildID(in.ID))
	}
	for _, n := range in.Names {
		name, err := buildName(n)
		if err != nil {
			return nil, err
		}
		provider.AddName(name)
	}
	provider.SetService(in.Service).SetURL(in.URL)
	for _, e := range in.Emails {
		provider.AddEmail(buildEmail(e))
	}
	for _, p := range in.Phones {
		phone, err := buildPhone(p)
		if err != nil {
			return nil, err
		}
		provider.AddPhoneNumber(phone)
	}
	if in.Contact != nil {
		contact, err := buildContact(*in.Contact)
		if err != nil {
			return nil, err
		}
		provider.SetContact(contact)
	}
	return provider, nil
}
