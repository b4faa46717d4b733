package xmltree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetAttrKeepsOrderOnOverwrite(t *testing.T) {
	n := New("price").SetAttr("type", "msrp").SetAttr("currency", "USD")
	n.SetAttr("type", "invoice")

	assert.Equal(t, []Attr{
		{Key: "type", Value: "invoice"},
		{Key: "currency", Value: "USD"},
	}, n.Attrs)
}

func TestAttrLookup(t *testing.T) {
	n := New("phone").SetAttr("type", "voice")

	v, ok := n.Attr("type")
	assert.True(t, ok)
	assert.Equal(t, "voice", v)

	_, ok = n.Attr("time")
	assert.False(t, ok)
}

func TestAppendPreservesOrder(t *testing.T) {
	n := New("address")
	n.Append(New("street").SetText("123 Main St"))
	n.Append(New("street").SetText("Apt 4"), New("city").SetText("Springfield"))

	assert.Len(t, n.Children, 3)
	assert.Equal(t, "123 Main St", n.Children[0].Text)
	assert.Equal(t, "Apt 4", n.Children[1].Text)
	assert.Equal(t, "city", n.Children[2].Tag)
}

func TestChildFindsFirstMatch(t *testing.T) {
	n := New("vehicle").Append(
		New("year").SetText("2023"),
		New("make").SetText("Honda"),
	)

	assert.Equal(t, "2023", n.Child("year").Text)
	assert.Nil(t, n.Child("vin"))
}
