// Package countries provides the embedded ISO-3166 country table.
package countries

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"unicode/utf8"
)

//go:embed iso3166.txt
var iso3166Data string

// ErrMalformedRecord is returned when a table line violates the record format.
var ErrMalformedRecord = errors.New("malformed country record")

var (
	alpha2Pattern      = regexp.MustCompile(`^[A-Z]{2}$`)
	alpha3Pattern      = regexp.MustCompile(`^[A-Z]{3}$`)
	callingCodePattern = regexp.MustCompile(`^\+\d{1,4}$`)
)

// Regional indicator symbol range (U+1F1E6..U+1F1FF).
const (
	regionalIndicatorA rune = 0x1F1E6
	regionalIndicatorZ rune = 0x1F1FF
)

// Record holds the data stored for a single alpha-2 code.
type Record struct {
	Name        string
	Alpha3      string
	CallingCode string
	Flag        string
}

// Table is an immutable country table with its derived indexes.
type Table struct {
	records map[string]Record
	codes   []string
	names   []string
}

var (
	defaultTable *Table
	once         sync.Once
)

func init() {
	loadData()
}

func loadData() {
	once.Do(func() {
		t, err := Parse(iso3166Data)
		if err != nil {
			panic(fmt.Sprintf("countries: embedded table: %v", err))
		}
		defaultTable = t
	})
}

// Default returns the table built from the embedded data.
func Default() *Table {
	loadData()
	return defaultTable
}

// Parse builds a table from lines of the form
// "alpha2,alpha3,callingCode,flag,name". Blank lines and lines starting
// with '#' are skipped.
func Parse(content string) (*Table, error) {
	t := &Table{
		records: make(map[string]Record),
		codes:   make([]string, 0, 256),
		names:   make([]string, 0, 256),
	}

	scanner := bufio.NewScanner(strings.NewReader(content))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		code, rec, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if _, dup := t.records[code]; dup {
			return nil, fmt.Errorf("line %d: duplicate code %s: %w", lineNo, code, ErrMalformedRecord)
		}
		t.records[code] = rec
		t.codes = append(t.codes, code)
		t.names = append(t.names, rec.Name)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return t, nil
}

func parseLine(line string) (string, Record, error) {
	parts := strings.SplitN(line, ",", 5)
	if len(parts) != 5 {
		return "", Record{}, fmt.Errorf("expected 5 fields, got %d: %w", len(parts), ErrMalformedRecord)
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	code := parts[0]
	rec := Record{
		Alpha3:      parts[1],
		CallingCode: parts[2],
		Flag:        parts[3],
		Name:        parts[4],
	}

	switch {
	case !alpha2Pattern.MatchString(code):
		return "", Record{}, fmt.Errorf("alpha-2 code %q: %w", code, ErrMalformedRecord)
	case !alpha3Pattern.MatchString(rec.Alpha3):
		return "", Record{}, fmt.Errorf("alpha-3 code %q: %w", rec.Alpha3, ErrMalformedRecord)
	case !callingCodePattern.MatchString(rec.CallingCode):
		return "", Record{}, fmt.Errorf("calling code %q: %w", rec.CallingCode, ErrMalformedRecord)
	case !IsFlagGlyph(rec.Flag):
		return "", Record{}, fmt.Errorf("flag %q: %w", rec.Flag, ErrMalformedRecord)
	case rec.Name == "":
		return "", Record{}, fmt.Errorf("empty name for %s: %w", code, ErrMalformedRecord)
	}

	return code, rec, nil
}

// IsFlagGlyph reports whether s is exactly two regional indicator symbols.
func IsFlagGlyph(s string) bool {
	if utf8.RuneCountInString(s) != 2 {
		return false
	}
	for _, r := range s {
		if r < regionalIndicatorA || r > regionalIndicatorZ {
			return false
		}
	}
	return true
}

// Lookup returns the record stored under an uppercase alpha-2 code.
func (t *Table) Lookup(code string) (Record, bool) {
	rec, ok := t.records[code]
	return rec, ok
}

// Codes returns all alpha-2 codes in table order.
func (t *Table) Codes() []string {
	result := make([]string, len(t.codes))
	copy(result, t.codes)
	return result
}

// Names returns all country names, in the same order as Codes.
func (t *Table) Names() []string {
	result := make([]string, len(t.names))
	copy(result, t.names)
	return result
}

// CodeNames returns a fresh map from alpha-2 code to country name.
func (t *Table) CodeNames() map[string]string {
	result := make(map[string]string, len(t.codes))
	for _, c := range t.codes {
		result[c] = t.records[c].Name
	}
	return result
}

// Each calls fn for every record in table order until fn returns false.
func (t *Table) Each(fn func(code string, rec Record) bool) {
	for _, c := range t.codes {
		if !fn(c, t.records[c]) {
			return
		}
	}
}

// Count returns the number of countries.
func (t *Table) Count() int {
	return len(t.codes)
}
