package keys

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CatalogKey produces a canonical key for a species or move name.
// Behavior: trims, lower-cases, collapses inner whitespace and dashes into
// single underscores. Suitable for stable DB keys.
func CatalogKey(name string) string {
	fields := strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return r == ' ' || r == '\t' || r == '-' || r == '_'
	})
	return strings.Join(fields, "_")
}

// DisplayName normalizes a name for display: "thunder  SHOCK" becomes
// "Thunder Shock".
func DisplayName(name string) string {
	return cases.Title(language.English).String(strings.Join(strings.Fields(name), " "))
}
