package adf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func namedContact(name string) *Contact {
	return NewContact().AddName(NewName(name))
}

func TestCustomerProjection(t *testing.T) {
	customer := NewCustomer(namedContact("John Doe")).
		SetID(NewID("c-9")).
		SetComments("wants to close this month")

	node := mustXML(t, customer)
	var tags []string
	for _, c := range node.Children {
		tags = append(tags, c.Tag)
	}
	assert.Equal(t, []string{"contact", "id", "comments"}, tags)
}

func TestCustomerTimeframeRequiresBothDates(t *testing.T) {
	customer := NewCustomer(namedContact("John Doe")).
		SetTimeframe(Timeframe{EarliestDate: time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)})

	_, err := customer.ToXML()
	var missing *MissingRequiredFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "customer timeframe", missing.Element)

	// filling in the latest date unblocks the projection
	customer.SetTimeframe(Timeframe{
		EarliestDate: time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC),
		LatestDate:   time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
	})
	_, err = customer.ToXML()
	assert.NoError(t, err)
}

func TestCustomerTimeframeProjection(t *testing.T) {
	customer := NewCustomer(namedContact("John Doe")).
		SetTimeframe(Timeframe{
			EarliestDate: time.Date(2023, 5, 1, 9, 0, 0, 123456789, time.UTC),
			LatestDate:   time.Date(2023, 6, 1, 17, 30, 0, 0, time.UTC),
			Description:  "end of quarter",
		})

	tf := mustXML(t, customer).Child("timeframe")
	require.NotNil(t, tf)
	// sub-second precision is dropped
	want := "<timeframe>" +
		"<earliestdate>2023-05-01T09:00:00Z</earliestdate>" +
		"<latestdate>2023-06-01T17:30:00Z</latestdate>" +
		"<description>end of quarter</description>" +
		"</timeframe>"
	assert.Equal(t, want, tf.String())
}

func TestCustomerPropagatesContactGate(t *testing.T) {
	customer := NewCustomer(NewContact())

	_, err := customer.ToXML()
	var missing *MissingRequiredFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "contact", missing.Element)
}
