package countrykit

import (
	"regexp"
	"strings"
)

var callingCodePattern = regexp.MustCompile(`^\+\d{1,4}$`)

// IsValidCountryCode reports whether code, compared case-insensitively, is
// an alpha-2 code present in the table.
func (c *Catalog) IsValidCountryCode(code string) bool {
	if code == "" {
		return false
	}
	_, ok := c.table.Lookup(strings.ToUpper(code))
	return ok
}

// IsCountryCodeValue is IsValidCountryCode for values of unknown type.
// Only string and non-nil *string values can be valid.
func (c *Catalog) IsCountryCodeValue(v any) bool {
	switch s := v.(type) {
	case string:
		return c.IsValidCountryCode(s)
	case *string:
		return s != nil && c.IsValidCountryCode(*s)
	default:
		return false
	}
}

// IsValidCallingCode reports whether code is a '+' followed by 1 to 4 digits.
// Surrounding whitespace is not tolerated.
func IsValidCallingCode(code string) bool {
	return callingCodePattern.MatchString(code)
}

// IsValidCountryCode reports whether code is a known alpha-2 code, ignoring case.
func IsValidCountryCode(code string) bool {
	return defaultCatalog.IsValidCountryCode(code)
}

// IsCountryCodeValue reports whether v is a string holding a known alpha-2 code.
func IsCountryCodeValue(v any) bool {
	return defaultCatalog.IsCountryCodeValue(v)
}
