package adf

import (
	"fmt"
	"strings"
)

// InvalidEnumValueError reports a closed-set field set to a value
// outside its allowed set. The field is left unchanged.
type InvalidEnumValueError struct {
	Field   string
	Value   string
	Allowed []string
}

func (e *InvalidEnumValueError) Error() string {
	return fmt.Sprintf("adf: %s must be one of [%s], got %q", e.Field, strings.Join(e.Allowed, " "), e.Value)
}

// CurrencyResolutionError reports a currency string that did not
// resolve to an ISO 4217 code.
type CurrencyResolutionError struct {
	Input string
}

func (e *CurrencyResolutionError) Error() string {
	return fmt.Sprintf("adf: %q is not a recognized ISO 4217 currency", e.Input)
}

// MissingRequiredFieldError reports a required substructure that was
// absent when an entity was projected to XML.
type MissingRequiredFieldError struct {
	Element string
	Field   string
}

func (e *MissingRequiredFieldError) Error() string {
	return fmt.Sprintf("adf: %s requires %s", e.Element, e.Field)
}
