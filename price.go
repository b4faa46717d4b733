package adf

import (
	"strings"

	"golang.org/x/text/currency"

	"github.com/ukydev/adf/xmltree"
)

// PriceType classifies what a price figure represents.
type PriceType string

const (
	PriceTypeQuote     PriceType = "quote"
	PriceTypeOffer     PriceType = "offer"
	PriceTypeMSRP      PriceType = "msrp"
	PriceTypeInvoice   PriceType = "invoice"
	PriceTypeCall      PriceType = "call"
	PriceTypeAppraisal PriceType = "appraisal"
	PriceTypeAsking    PriceType = "asking"
)

var priceTypes = []PriceType{PriceTypeQuote, PriceTypeOffer, PriceTypeMSRP, PriceTypeInvoice, PriceTypeCall, PriceTypeAppraisal, PriceTypeAsking}

// PriceDelta states how the amount relates to a reference figure.
type PriceDelta string

const (
	PriceDeltaAbsolute   PriceDelta = "absolute"
	PriceDeltaRelative   PriceDelta = "relative"
	PriceDeltaPercentage PriceDelta = "percentage"
)

var priceDeltas = []PriceDelta{PriceDeltaAbsolute, PriceDeltaRelative, PriceDeltaPercentage}

// PriceRelativeTo names the reference figure for a delta price.
type PriceRelativeTo string

const (
	PriceRelativeToMSRP    PriceRelativeTo = "msrp"
	PriceRelativeToInvoice PriceRelativeTo = "invoice"
)

var priceRelativeTos = []PriceRelativeTo{PriceRelativeToMSRP, PriceRelativeToInvoice}

// Price is a monetary amount with optional classification, currency and
// delta semantics. The amount is carried as text, exactly as it will
// appear in the output.
type Price struct {
	value      string
	typ        PriceType
	currency   string
	delta      PriceDelta
	relativeTo PriceRelativeTo
	source     string
}

// NewPrice creates a Price with the given amount text.
func NewPrice(value string) *Price {
	return &Price{value: value}
}

// SetType sets the price type.
func (p *Price) SetType(typ PriceType) (*Price, error) {
	if err := oneOf("price type", typ, priceTypes); err != nil {
		return p, err
	}
	p.typ = typ
	return p, nil
}

// SetCurrency resolves a raw currency string against the ISO 4217
// registry and stores the canonical 3-letter code. Input case does not
// matter.
func (p *Price) SetCurrency(code string) (*Price, error) {
	unit, err := currency.ParseISO(strings.ToUpper(code))
	if err != nil {
		return p, &CurrencyResolutionError{Input: code}
	}
	p.currency = unit.String()
	return p, nil
}

// SetCurrencyUnit stores an already-resolved currency unit.
func (p *Price) SetCurrencyUnit(unit currency.Unit) *Price {
	p.currency = unit.String()
	return p
}

// SetDelta sets the delta kind.
func (p *Price) SetDelta(delta PriceDelta) (*Price, error) {
	if err := oneOf("price delta", delta, priceDeltas); err != nil {
		return p, err
	}
	p.delta = delta
	return p, nil
}

// SetRelativeTo sets the reference figure for a delta price.
func (p *Price) SetRelativeTo(relativeTo PriceRelativeTo) (*Price, error) {
	if err := oneOf("price relativeto", relativeTo, priceRelativeTos); err != nil {
		return p, err
	}
	p.relativeTo = relativeTo
	return p, nil
}

// SetSource names where the figure came from.
func (p *Price) SetSource(source string) *Price {
	p.source = source
	return p
}

// ToXML projects the price into a <price> node.
func (p *Price) ToXML() (*xmltree.Node, error) {
	node := xmltree.New("price").SetText(p.value)
	if p.typ != "" {
		node.SetAttr("type", string(p.typ))
	}
	if p.currency != "" {
		node.SetAttr("currency", p.currency)
	}
	if p.delta != "" {
		node.SetAttr("delta", string(p.delta))
	}
	if p.relativeTo != "" {
		node.SetAttr("relativeto", string(p.relativeTo))
	}
	if p.source != "" {
		node.SetAttr("source", p.source)
	}
	return node, nil
}
