package adf

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentFullScenario(t *testing.T) {
	prospect := NewProspect().
		AddVehicle(NewVehicle("2023", "Honda", "Civic")).
		SetCustomer(NewCustomer(namedContact("John Doe")))
	doc := NewDocument(prospect)

	node := mustXML(t, doc)
	assert.Equal(t, "adf", node.Tag)
	require.Len(t, node.Children, 1)

	p := node.Child("prospect")
	require.NotNil(t, p)
	var tags []string
	for _, c := range p.Children {
		tags = append(tags, c.Tag)
	}
	assert.Equal(t, []string{"vehicle", "customer"}, tags)

	contact := p.Child("customer").Child("contact")
	require.NotNil(t, contact)
	assert.Equal(t, "John Doe", contact.Child("name").Text)
}

func TestDocumentProjectionIsIdempotent(t *testing.T) {
	price, err := NewPrice("25000").SetCurrency("usd")
	require.NoError(t, err)
	vehicle := NewVehicle("2023", "Honda", "Civic").SetPrice(price)
	doc := NewDocument(NewProspect().
		AddVehicle(vehicle).
		SetCustomer(NewCustomer(namedContact("John Doe"))))

	first := mustXML(t, doc)
	second := mustXML(t, doc)
	assert.Equal(t, first, second)
	assert.Equal(t, first.String(), second.String())
}

func TestDocumentProjectionFailsThroughAggregates(t *testing.T) {
	// a nameless contact three levels down surfaces at the root call
	doc := NewDocument(NewProspect().SetCustomer(NewCustomer(NewContact())))

	_, err := doc.ToXML()
	var missing *MissingRequiredFieldError
	assert.ErrorAs(t, err, &missing)
}

func TestDocumentWriteTo(t *testing.T) {
	doc := NewDocument(NewProspect().AddVehicle(NewVehicle("2023", "Honda", "Civic")))

	var buf bytes.Buffer
	_, err := doc.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, "<adf><prospect><vehicle><year>2023</year><make>Honda</make><model>Civic</model></vehicle></prospect></adf>", buf.String())
}

func TestParseNotImplemented(t *testing.T) {
	doc, err := Parse("<adf><prospect/></adf>")
	assert.Nil(t, doc)
	assert.Error(t, err)
}
