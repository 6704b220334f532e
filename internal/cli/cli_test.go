package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type result struct {
	code   int
	stdout string
	stderr string
}

// runCLI executes the command line with a private (missing) config file so
// the user's configuration never leaks into tests.
func runCLI(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	args = append([]string{"--config", cfgPath}, args...)

	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func TestLookupSingle(t *testing.T) {
	res := runCLI(t, "", "us")
	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.Equal(t, "US\tUSA\t+1\t🇺🇸\tUnited States of America\n", res.stdout)
}

func TestLookupSingleJSON(t *testing.T) {
	res := runCLI(t, "", "--json", "GB")
	require.Equal(t, ExitSuccess, res.code, res.stderr)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &parsed))
	assert.Equal(t, "GB", parsed["code"])
	assert.Equal(t, "+44", parsed["calling_code"])
}

func TestLookupNotFound(t *testing.T) {
	res := runCLI(t, "", "XX")
	assert.Equal(t, ExitNotFound, res.code)
	assert.Contains(t, res.stderr, "invalid country code")
	assert.Contains(t, res.stderr, "Country code XX not found")
	assert.Empty(t, res.stdout)
}

func TestLookupBatch(t *testing.T) {
	res := runCLI(t, "US\nCA\n", "--format", "yaml")
	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.Contains(t, res.stdout, "code: US")
	assert.Contains(t, res.stdout, "code: CA")
}

func TestSearch(t *testing.T) {
	res := runCLI(t, "", "search", "united", "--limit", "2")
	require.Equal(t, ExitSuccess, res.code, res.stderr)

	lines := strings.Split(strings.TrimRight(res.stdout, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "AE\t"))
	assert.True(t, strings.HasPrefix(lines[1], "GB\t"))
}

func TestSearchExactMultiWord(t *testing.T) {
	res := runCLI(t, "", "search", "--exact", "United", "States", "of", "America")
	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.Equal(t, "US\tUSA\t+1\t🇺🇸\tUnited States of America\n", res.stdout)
}

func TestSearchNameOnly(t *testing.T) {
	res := runCLI(t, "", "search", "us", "--name-only")
	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.NotContains(t, res.stdout, "US\tUSA")
	assert.Contains(t, res.stdout, "AU\tAUS")
}

func TestSearchNoMatch(t *testing.T) {
	res := runCLI(t, "", "search", "atlantis")
	assert.Equal(t, ExitNotFound, res.code)
}

func TestSearchUsesConfigDefaults(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("search_limit: 1\nformat: json\n"), 0644))

	var stdout, stderr bytes.Buffer
	code := run([]string{"--config", cfgPath, "search", "united"}, strings.NewReader(""), &stdout, &stderr)
	require.Equal(t, ExitSuccess, code, stderr.String())

	var parsed []map[string]interface{}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &parsed))
	require.Len(t, parsed, 1)
	assert.Equal(t, "AE", parsed[0]["code"])
}

func TestList(t *testing.T) {
	res := runCLI(t, "", "list")
	require.Equal(t, ExitSuccess, res.code, res.stderr)
	lines := strings.Split(strings.TrimRight(res.stdout, "\n"), "\n")
	assert.Len(t, lines, 249)
}

func TestCallingCode(t *testing.T) {
	res := runCLI(t, "", "calling-code", "+1")
	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.Contains(t, res.stdout, "US\tUSA\t+1")
	assert.Contains(t, res.stdout, "CA\tCAN\t+1")

	res = runCLI(t, "", "calling-code", "44")
	assert.Equal(t, ExitInvalidInput, res.code)

	res = runCLI(t, "", "calling-code", "+999")
	assert.Equal(t, ExitNotFound, res.code)
}

func TestFlag(t *testing.T) {
	res := runCLI(t, "", "flag", "gb")
	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.Equal(t, "🇬🇧\n", res.stdout)

	res = runCLI(t, "", "flag", "g1")
	assert.Equal(t, ExitInvalidInput, res.code)
}

func TestValidate(t *testing.T) {
	res := runCLI(t, "", "validate", "US", "+44")
	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.Contains(t, res.stdout, "US\tcountry code\tvalid")
	assert.Contains(t, res.stdout, "+44\tcalling code\tvalid")

	res = runCLI(t, "", "validate", "US", "XX", "+12345")
	assert.Equal(t, ExitInvalidInput, res.code)
	assert.Contains(t, res.stdout, "XX\tcountry code\tinvalid")
	assert.Contains(t, res.stdout, "+12345\tcalling code\tinvalid")
}

func TestVersion(t *testing.T) {
	res := runCLI(t, "", "version")
	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.Contains(t, res.stdout, "countrykit dev")
	assert.Contains(t, res.stdout, "countries: 249")
}

func TestInvalidFormat(t *testing.T) {
	res := runCLI(t, "", "--format", "xml", "US")
	assert.Equal(t, ExitInvalidInput, res.code)
}

func TestIsASCIILetters(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"US", true},
		{"gb", true},
		{"U1", false},
		{"É", false},
		{"", true},
	}

	for _, tc := range tests {
		if got := isASCIILetters(tc.input); got != tc.expected {
			t.Errorf("isASCIILetters(%q) = %v, expected %v", tc.input, got, tc.expected)
		}
	}
}
