package countrykit

import "strings"

// SearchOptions controls SearchCountries.
type SearchOptions struct {
	// Limit caps the number of results. Zero or negative means no cap.
	Limit int
	// Exact requires equality instead of substring containment.
	Exact bool
	// IncludeCodes also matches the alpha-2 and alpha-3 codes.
	IncludeCodes bool
}

// DefaultSearchOptions returns substring matching over names and codes
// with no limit.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{IncludeCodes: true}
}

// SearchOption modifies SearchOptions.
type SearchOption func(*SearchOptions)

// WithLimit caps the number of results.
func WithLimit(n int) SearchOption {
	return func(o *SearchOptions) { o.Limit = n }
}

// WithExact switches between exact and substring matching.
func WithExact(exact bool) SearchOption {
	return func(o *SearchOptions) { o.Exact = exact }
}

// WithIncludeCodes toggles matching against alpha-2 and alpha-3 codes.
func WithIncludeCodes(include bool) SearchOption {
	return func(o *SearchOptions) { o.IncludeCodes = include }
}

// WithOptions replaces all options at once.
func WithOptions(opts SearchOptions) SearchOption {
	return func(o *SearchOptions) { *o = opts }
}

// SearchCountries returns the countries whose name, or alpha-2/alpha-3 code
// when codes are included, matches query case-insensitively. An empty or
// blank query yields no results.
//
// Results follow table order. The search is a linear scan over the whole
// table with no index; the table holds a few hundred rows.
func (c *Catalog) SearchCountries(query string, opts ...SearchOption) []Country {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []Country{}
	}

	o := DefaultSearchOptions()
	for _, opt := range opts {
		opt(&o)
	}

	match := strings.Contains
	if o.Exact {
		match = func(s, q string) bool { return s == q }
	}

	result := make([]Country, 0)
	seen := make(map[string]struct{})
	for _, country := range c.AllCountries() {
		if o.Limit > 0 && len(result) >= o.Limit {
			break
		}
		if _, dup := seen[country.Code]; dup {
			continue
		}

		hit := match(strings.ToLower(country.Name), q)
		if !hit && o.IncludeCodes {
			hit = match(strings.ToLower(country.Code), q) ||
				match(strings.ToLower(country.Alpha3), q)
		}
		if hit {
			seen[country.Code] = struct{}{}
			result = append(result, country)
		}
	}

	return result
}

// CountriesByCallingCode returns every country using callingCode, in
// table order. Malformed calling codes yield no results.
func (c *Catalog) CountriesByCallingCode(callingCode string) []Country {
	result := make([]Country, 0)
	if !IsValidCallingCode(callingCode) {
		return result
	}
	for _, country := range c.AllCountries() {
		if country.CallingCode == callingCode {
			result = append(result, country)
		}
	}
	return result
}

// SearchCountries searches the default catalog.
func SearchCountries(query string, opts ...SearchOption) []Country {
	return defaultCatalog.SearchCountries(query, opts...)
}

// CountriesByCallingCode returns every country sharing callingCode.
func CountriesByCallingCode(callingCode string) []Country {
	return defaultCatalog.CountriesByCallingCode(callingCode)
}
