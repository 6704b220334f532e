// Package batch handles batch country code lookups from a reader.
package batch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/hightemp/countrykit"
	"github.com/hightemp/countrykit/internal/output"
)

// Processor resolves alpha-2 codes read one per line.
type Processor struct {
	catalog *countrykit.Catalog
}

// NewProcessor creates a new batch processor.
func NewProcessor(catalog *countrykit.Catalog) *Processor {
	return &Processor{catalog: catalog}
}

// ProcessInput reads codes from r and writes results to w. Blank lines and
// lines starting with '#' are skipped. Text output is streamed line by
// line; JSON and YAML are written once input is exhausted.
func (p *Processor) ProcessInput(ctx context.Context, r io.Reader, w io.Writer, format string) error {
	scanner := bufio.NewScanner(r)
	var results []*output.CountryResult

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		result := p.processCode(line)
		if format == "json" || format == "yaml" {
			results = append(results, result)
			continue
		}
		if _, err := fmt.Fprintln(w, result.FormatText()); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	if format == "json" || format == "yaml" {
		batch := &output.BatchResult{Results: results}
		str, err := batch.Format(format)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, str)
	}

	return nil
}

func (p *Processor) processCode(code string) *output.CountryResult {
	country, ok := p.catalog.CountryByCode(code)
	if !ok {
		return &output.CountryResult{
			Query: code,
			Error: "unknown country code",
		}
	}
	return output.NewCountryResult(code, country)
}
