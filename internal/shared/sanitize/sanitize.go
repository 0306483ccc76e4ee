// Package sanitize strips markup from user-supplied text. Complaint and
// comment bodies are rendered back to other users, so HTML is removed at the
// boundary rather than trusted to be escaped on every output path.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var textPolicy = bluemonday.StrictPolicy()

// Text removes all HTML from s and unescapes entities so plain text like
// "A&B" survives the round trip unchanged.
func Text(s string) string {
	return strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(s)))
}
