// Package countrykit provides lookup, validation and search over a static
// table of ISO 3166-1 country metadata: alpha-2 and alpha-3 codes, display
// name, international calling code and flag glyph.
//
// The table is compiled in and never changes after start-up, so every
// function here is safe for concurrent use.
package countrykit

import (
	"github.com/hightemp/countrykit/internal/countries"
	"github.com/sirupsen/logrus"
)

// Country is a country record together with the alpha-2 code it is stored under.
type Country struct {
	Code        string `json:"code" yaml:"code"`
	Name        string `json:"name" yaml:"name"`
	Alpha3      string `json:"alpha3" yaml:"alpha3"`
	CallingCode string `json:"calling_code" yaml:"calling_code"`
	Flag        string `json:"flag" yaml:"flag"`
}

func newCountry(code string, rec countries.Record) Country {
	return Country{
		Code:        code,
		Name:        rec.Name,
		Alpha3:      rec.Alpha3,
		CallingCode: rec.CallingCode,
		Flag:        rec.Flag,
	}
}

// Catalog answers queries against a country table. The zero value is not
// usable; create one with New.
type Catalog struct {
	table *countries.Table
	log   logrus.FieldLogger
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithLogger sets the sink for diagnostics emitted when a lookup is given
// an unknown code.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Catalog) {
		if log != nil {
			c.log = log
		}
	}
}

// New returns a catalog over the embedded country table.
func New(opts ...Option) *Catalog {
	c := &Catalog{
		table: countries.Default(),
		log:   logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultCatalog = New()

// Default returns the catalog used by the package-level functions.
func Default() *Catalog {
	return defaultCatalog
}

// Codes returns every alpha-2 code in table order.
func (c *Catalog) Codes() []string {
	return c.table.Codes()
}

// Names returns every country name, aligned with Codes.
func (c *Catalog) Names() []string {
	return c.table.Names()
}

// CodeNames returns a map from alpha-2 code to country name.
func (c *Catalog) CodeNames() map[string]string {
	return c.table.CodeNames()
}

// Count returns the number of countries in the table.
func (c *Catalog) Count() int {
	return c.table.Count()
}

// Codes returns every alpha-2 code in table order.
func Codes() []string { return defaultCatalog.Codes() }

// Names returns every country name, aligned with Codes.
func Names() []string { return defaultCatalog.Names() }

// CodeNames returns a map from alpha-2 code to country name.
func CodeNames() map[string]string { return defaultCatalog.CodeNames() }

// Count returns the number of countries in the table.
func Count() int { return defaultCatalog.Count() }
