// Package output handles output formatting.
package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hightemp/countrykit"
	"gopkg.in/yaml.v3"
)

// CountryResult is the outcome of resolving one query against the catalog.
type CountryResult struct {
	Query       string `json:"query" yaml:"query"`
	Code        string `json:"code,omitempty" yaml:"code,omitempty"`
	Name        string `json:"name,omitempty" yaml:"name,omitempty"`
	Alpha3      string `json:"alpha3,omitempty" yaml:"alpha3,omitempty"`
	CallingCode string `json:"calling_code,omitempty" yaml:"calling_code,omitempty"`
	Flag        string `json:"flag,omitempty" yaml:"flag,omitempty"`
	Error       string `json:"error,omitempty" yaml:"error,omitempty"`
}

// NewCountryResult builds a result for a resolved country.
func NewCountryResult(query string, c countrykit.Country) *CountryResult {
	return &CountryResult{
		Query:       query,
		Code:        c.Code,
		Name:        c.Name,
		Alpha3:      c.Alpha3,
		CallingCode: c.CallingCode,
		Flag:        c.Flag,
	}
}

// FormatText formats result as tab-separated text.
func (r *CountryResult) FormatText() string {
	if r.Error != "" {
		return FormatError(r.Query, r.Error)
	}

	return fmt.Sprintf("%s\t%s\t%s\t%s\t%s",
		r.Code,
		r.Alpha3,
		r.CallingCode,
		r.Flag,
		r.Name,
	)
}

// FormatJSON formats result as JSON.
func (r *CountryResult) FormatJSON() (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FormatYAML formats result as a YAML document.
func (r *CountryResult) FormatYAML() (string, error) {
	data, err := yaml.Marshal(r)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// Format renders the result in the named format.
func (r *CountryResult) Format(format string) (string, error) {
	switch format {
	case "json":
		return r.FormatJSON()
	case "yaml":
		return r.FormatYAML()
	default:
		return r.FormatText(), nil
	}
}

// BatchResult contains results for several queries.
type BatchResult struct {
	Results []*CountryResult
}

// NewBatchResult wraps a list of countries, using each code as its query.
func NewBatchResult(list []countrykit.Country) *BatchResult {
	b := &BatchResult{Results: make([]*CountryResult, 0, len(list))}
	for _, c := range list {
		b.Results = append(b.Results, NewCountryResult(c.Code, c))
	}
	return b
}

// FormatText formats batch results as text (one line per result).
func (b *BatchResult) FormatText() string {
	var lines []string
	for _, r := range b.Results {
		lines = append(lines, r.FormatText())
	}
	return strings.Join(lines, "\n")
}

// FormatJSON formats batch results as JSON array.
func (b *BatchResult) FormatJSON() (string, error) {
	results := b.Results
	if results == nil {
		results = []*CountryResult{}
	}
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FormatYAML formats batch results as a YAML sequence.
func (b *BatchResult) FormatYAML() (string, error) {
	results := b.Results
	if results == nil {
		results = []*CountryResult{}
	}
	data, err := yaml.Marshal(results)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// Format renders the batch in the named format.
func (b *BatchResult) Format(format string) (string, error) {
	switch format {
	case "json":
		return b.FormatJSON()
	case "yaml":
		return b.FormatYAML()
	default:
		return b.FormatText(), nil
	}
}

// FormatError formats an error line for batch output.
func FormatError(query, msg string) string {
	return fmt.Sprintf("%s\t-\t-\t-\tERROR: %s", query, msg)
}
