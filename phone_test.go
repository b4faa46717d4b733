package adf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhoneNumberToXML(t *testing.T) {
	phone := NewPhoneNumber("555-0100")
	_, err := phone.SetType(PhoneTypeCellphone)
	require.NoError(t, err)
	_, err = phone.SetTime(PhoneTimeEvening)
	require.NoError(t, err)
	phone.SetPreferredContact(true)

	assert.Equal(t, `<phone type="cellphone" time="evening" preferredcontact="1">555-0100</phone>`, mustXML(t, phone).String())
}

func TestPhoneNumberEnumRejection(t *testing.T) {
	phone := NewPhoneNumber("555-0100")

	_, err := phone.SetType("landline")
	var enumErr *InvalidEnumValueError
	require.ErrorAs(t, err, &enumErr)
	assert.Equal(t, "phone type", enumErr.Field)
	assert.Equal(t, "landline", enumErr.Value)

	_, err = phone.SetTime("midnight")
	require.ErrorAs(t, err, &enumErr)
	assert.Equal(t, "phone time", enumErr.Field)

	// nothing was stored
	assert.Equal(t, "<phone>555-0100</phone>", mustXML(t, phone).String())
}

func TestPhoneNumberAllTimesAccepted(t *testing.T) {
	for _, tm := range []PhoneTime{PhoneTimeMorning, PhoneTimeAfternoon, PhoneTimeEvening, PhoneTimeNoPreference, PhoneTimeDay} {
		_, err := NewPhoneNumber("555-0100").SetTime(tm)
		assert.NoError(t, err)
	}
}
