package adf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactRequiresAName(t *testing.T) {
	contact := NewContact().AddEmail(NewEmail("john@example.com"))

	_, err := contact.ToXML()
	var missing *MissingRequiredFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "contact", missing.Element)

	// adding a name makes the same contact projectable
	contact.AddName(NewName("John Doe"))
	node, err := contact.ToXML()
	require.NoError(t, err)
	assert.NotNil(t, node.Child("name"))
}

func TestContactChildGrouping(t *testing.T) {
	// children are grouped by kind regardless of the order they were added
	contact := NewContact().
		AddAddress(NewAddress().AddStreet("123 Main St")).
		AddPhoneNumber(NewPhoneNumber("555-0100")).
		AddEmail(NewEmail("john@example.com")).
		AddName(NewName("John Doe"))

	node := mustXML(t, contact)
	var tags []string
	for _, c := range node.Children {
		tags = append(tags, c.Tag)
	}
	assert.Equal(t, []string{"name", "email", "phone", "address"}, tags)
}

func TestContactPrimaryContactAttr(t *testing.T) {
	contact := NewContact().AddName(NewName("John Doe"))

	_, ok := mustXML(t, contact).Attr("primarycontact")
	assert.False(t, ok)

	contact.SetPrimaryContact(true)
	v, _ := mustXML(t, contact).Attr("primarycontact")
	assert.Equal(t, "1", v)

	contact.SetPrimaryContact(false)
	v, _ = mustXML(t, contact).Attr("primarycontact")
	assert.Equal(t, "0", v)
}
