package adf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDToXML(t *testing.T) {
	assert.Equal(t, "<id>42</id>", mustXML(t, NewID("42")).String())

	id := NewID("42").SetSequence("1").SetSource("DealerSite")
	assert.Equal(t, `<id sequence="1" source="DealerSite">42</id>`, mustXML(t, id).String())
}
