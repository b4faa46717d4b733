package adf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVendorProjection(t *testing.T) {
	vendor := NewVendor("Springfield Honda", namedContact("Sales Desk")).
		SetID(NewID("d-55")).
		SetURL("https://springfieldhonda.example.com")

	node := mustXML(t, vendor)
	var tags []string
	for _, c := range node.Children {
		tags = append(tags, c.Tag)
	}
	assert.Equal(t, []string{"id", "vendorname", "url", "contact"}, tags)
	assert.Equal(t, "Springfield Honda", node.Child("vendorname").Text)
}

func TestVendorPropagatesContactGate(t *testing.T) {
	vendor := NewVendor("Springfield Honda", NewContact())

	_, err := vendor.ToXML()
	var missing *MissingRequiredFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "contact", missing.Element)
}
