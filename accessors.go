package countrykit

import (
	"strings"

	"github.com/hightemp/countrykit/internal/countries"
)

// lookup resolves code case-insensitively. Unknown codes are reported to
// the diagnostic sink.
func (c *Catalog) lookup(code string) (string, countries.Record, bool) {
	if !c.IsValidCountryCode(code) {
		c.log.WithField("code", code).Warn("invalid country code")
		return "", countries.Record{}, false
	}
	upper := strings.ToUpper(code)
	rec, _ := c.table.Lookup(upper)
	return upper, rec, true
}

// CountryName returns the display name for an alpha-2 code.
func (c *Catalog) CountryName(code string) (string, bool) {
	_, rec, ok := c.lookup(code)
	return rec.Name, ok
}

// CallingCode returns the international calling code, e.g. "+44".
func (c *Catalog) CallingCode(code string) (string, bool) {
	_, rec, ok := c.lookup(code)
	return rec.CallingCode, ok
}

// Alpha3Code returns the ISO 3166-1 alpha-3 code for an alpha-2 code.
func (c *Catalog) Alpha3Code(code string) (string, bool) {
	_, rec, ok := c.lookup(code)
	return rec.Alpha3, ok
}

// CountryFlag returns the flag glyph stored in the table. Unlike Flag it
// never produces a glyph for codes the table does not know.
func (c *Catalog) CountryFlag(code string) (string, bool) {
	_, rec, ok := c.lookup(code)
	return rec.Flag, ok
}

// CountryByCode returns the full record for an alpha-2 code. The returned
// Code is always upper case, whatever case the caller used.
func (c *Catalog) CountryByCode(code string) (Country, bool) {
	upper, rec, ok := c.lookup(code)
	if !ok {
		return Country{}, false
	}
	return newCountry(upper, rec), true
}

// AllCountries returns every country in table order. Each call returns a
// new slice.
func (c *Catalog) AllCountries() []Country {
	result := make([]Country, 0, c.table.Count())
	c.table.Each(func(code string, rec countries.Record) bool {
		result = append(result, newCountry(code, rec))
		return true
	})
	return result
}

// CountryName returns the display name for an alpha-2 code.
func CountryName(code string) (string, bool) { return defaultCatalog.CountryName(code) }

// CallingCode returns the international calling code for an alpha-2 code.
func CallingCode(code string) (string, bool) { return defaultCatalog.CallingCode(code) }

// Alpha3Code returns the alpha-3 code for an alpha-2 code.
func Alpha3Code(code string) (string, bool) { return defaultCatalog.Alpha3Code(code) }

// CountryFlag returns the stored flag glyph for an alpha-2 code.
func CountryFlag(code string) (string, bool) { return defaultCatalog.CountryFlag(code) }

// CountryByCode returns the full record for an alpha-2 code.
func CountryByCode(code string) (Country, bool) { return defaultCatalog.CountryByCode(code) }

// AllCountries returns every country in table order.
func AllCountries() []Country { return defaultCatalog.AllCountries() }
