package textutil

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// NormalizeName lowercases a display name and collapses all whitespace,
// producing a form suitable for case-insensitive identity comparison.
func NormalizeName(name string) string {
	name = strings.ToLower(name)
	name = strings.Trim(name, " \n\t")
	name = whitespaceRegex.ReplaceAllString(name, " ")
	return name
}

// Slug converts a free-text name into the hyphen-joined form the site
// uses in player page urls. "Zion Williamson" -> "zion-williamson"
func Slug(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), "-"))
}

// StripLabel removes a "Label: "-style prefix from a scraped span and
// trims the remainder. Returns ("", false) when the text does not carry
// the label at all; a labeled-but-empty span yields ("", true).
func StripLabel(text, label string) (string, bool) {
	idx := strings.Index(text, label)
	if idx < 0 {
		return "", false
	}
	return strings.TrimSpace(text[idx+len(label):]), true
}
