package adf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func TestPriceMSRPScenario(t *testing.T) {
	price := NewPrice("25000")
	_, err := price.SetType(PriceTypeMSRP)
	require.NoError(t, err)
	_, err = price.SetCurrency("usd")
	require.NoError(t, err)

	assert.Equal(t, `<price type="msrp" currency="USD">25000</price>`, mustXML(t, price).String())
}

func TestPriceCurrencyCaseNormalization(t *testing.T) {
	for _, in := range []string{"eur", "EUR", "eUr"} {
		price, err := NewPrice("100").SetCurrency(in)
		require.NoError(t, err, in)
		cur, _ := mustXML(t, price).Attr("currency")
		assert.Equal(t, "EUR", cur)
	}
}

func TestPriceCurrencyResolutionFailure(t *testing.T) {
	price := NewPrice("100")
	_, err := price.SetCurrency("usd")
	require.NoError(t, err)

	_, err = price.SetCurrency("doubloons")
	var curErr *CurrencyResolutionError
	require.ErrorAs(t, err, &curErr)
	assert.Equal(t, "doubloons", curErr.Input)

	// prior resolved code survives the failed attempt
	cur, _ := mustXML(t, price).Attr("currency")
	assert.Equal(t, "USD", cur)
}

func TestPriceSetCurrencyUnit(t *testing.T) {
	price := NewPrice("100").SetCurrencyUnit(currency.JPY)
	cur, _ := mustXML(t, price).Attr("currency")
	assert.Equal(t, "JPY", cur)
}

func TestPriceDeltaAndRelativeTo(t *testing.T) {
	price := NewPrice("-500")
	_, err := price.SetDelta(PriceDeltaRelative)
	require.NoError(t, err)
	_, err = price.SetRelativeTo(PriceRelativeToInvoice)
	require.NoError(t, err)
	price.SetSource("appraiser")

	assert.Equal(t, `<price delta="relative" relativeto="invoice" source="appraiser">-500</price>`, mustXML(t, price).String())
}

func TestPriceEnumRejections(t *testing.T) {
	tests := []struct {
		field string
		set   func(p *Price) error
	}{
		{"price type", func(p *Price) error { _, err := p.SetType("sticker"); return err }},
		{"price delta", func(p *Price) error { _, err := p.SetDelta("approximate"); return err }},
		{"price relativeto", func(p *Price) error { _, err := p.SetRelativeTo("asking"); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			err := tt.set(NewPrice("100"))
			var enumErr *InvalidEnumValueError
			require.ErrorAs(t, err, &enumErr)
			assert.Equal(t, tt.field, enumErr.Field)
		})
	}
}
