package adf

import (
	"time"

	"github.com/ukydev/adf/xmltree"
)

// Shared projection helpers. Optional fields are entirely omitted when
// unset; the output never carries empty elements or null markers.

// boolAttr encodes the tri-state boolean attributes. Unset flags never
// reach this function; a set flag renders as "1" or "0".
func boolAttr(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

// formatDate renders a timestamp in ISO 8601 extended form truncated to
// whole seconds.
func formatDate(t time.Time) string {
	return t.Truncate(time.Second).Format(time.RFC3339)
}

// appendText appends a <tag>text</tag> child when text is non-empty.
func appendText(parent *xmltree.Node, tag, text string) {
	if text != "" {
		parent.Append(xmltree.New(tag).SetText(text))
	}
}
