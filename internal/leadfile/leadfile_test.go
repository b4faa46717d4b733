package leadfile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukydev/adf"
)

const sampleLead = `{
  "id": {"value": "lead-1", "source": "DealerSite"},
  "requestdate": "2023-05-01T10:30:00Z",
  "vehicles": [
    {
      "interest": "buy",
      "status": "used",
      "year": "2021",
      "make": "Toyota",
      "model": "Camry",
      "odometer": "32000",
      "odometerunits": "mi",
      "price": {"value": "21500", "type": "asking", "currency": "usd"}
    }
  ],
  "customer": {
    "contact": {
      "names": [{"value": "John", "part": "first"}, {"value": "Doe", "part": "last"}],
      "emails": [{"value": "john@example.com", "preferredcontact": true}],
      "phones": [{"value": "555-0100", "type": "cellphone"}]
    }
  },
  "vendor": {
    "name": "Springfield Toyota",
    "contact": {"names": [{"value": "Sales Desk"}]}
  }
}`

func TestBuildFromSampleLead(t *testing.T) {
	file, err := Decode(strings.NewReader(sampleLead))
	require.NoError(t, err)

	doc, err := file.Build()
	require.NoError(t, err)

	node, err := doc.ToXML()
	require.NoError(t, err)

	prospect := node.Child("prospect")
	require.NotNil(t, prospect)

	var tags []string
	for _, c := range prospect.Children {
		tags = append(tags, c.Tag)
	}
	assert.Equal(t, []string{"id", "requestdate", "vehicle", "customer", "vendor"}, tags)

	vehicle := prospect.Child("vehicle")
	interest, _ := vehicle.Attr("interest")
	assert.Equal(t, "buy", interest)
	cur, _ := vehicle.Child("price").Attr("currency")
	assert.Equal(t, "USD", cur)

	assert.Equal(t, "2023-05-01T10:30:00Z", prospect.Child("requestdate").Text)
}

func TestBuildSurfacesEnumErrors(t *testing.T) {
	in := `{"vehicles": [{"year": "2021", "make": "Toyota", "model": "Camry", "interest": "rent"}]}`
	file, err := Decode(strings.NewReader(in))
	require.NoError(t, err)

	_, err = file.Build()
	var enumErr *adf.InvalidEnumValueError
	require.ErrorAs(t, err, &enumErr)
	assert.Equal(t, "vehicle interest", enumErr.Field)
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"prospect": {}}`))
	assert.Error(t, err)
}

func TestBuildRejectsBadRequestDate(t *testing.T) {
	file, err := Decode(strings.NewReader(`{"requestdate": "yesterday"}`))
	require.NoError(t, err)

	_, err = file.Build()
	assert.ErrorContains(t, err, "requestdate")
}

func TestBuildTimeframe(t *testing.T) {
	in := `{
	  "customer": {
	    "contact": {"names": [{"value": "John Doe"}]},
	    "timeframe": {"earliestdate": "2023-05-01T00:00:00Z", "latestdate": "2023-06-01T00:00:00Z"}
	  }
	}`
	file, err := Decode(strings.NewReader(in))
	require.NoError(t, err)

	doc, err := file.Build()
	require.NoError(t, err)

	node, err := doc.ToXML()
	require.NoError(t, err)
	tf := node.Child("prospect").Child("customer").Child("timeframe")
	require.NotNil(t, tf)
	assert.Equal(t, "2023-05-01T00:00:00Z", tf.Child("earliestdate").Text)
}
