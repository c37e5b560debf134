package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oovm/resistor/builder"
	"github.com/oovm/resistor/color"
	"github.com/oovm/resistor/internal/config"
)

// run executes a fresh command tree with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	prev := config.Get()
	t.Cleanup(func() { config.Set(prev) })

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

// TestDecode_Text decodes the four-band reference part.
func TestDecode_Text(t *testing.T) {
	out, err := run(t, "decode", "brown", "black", "red", "gold")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "1000Ω ± 5%\n"), out)
}

// TestDecode_JSONWithLetters decodes the six-band reference part as JSON.
func TestDecode_JSONWithLetters(t *testing.T) {
	out, err := run(t, "decode", "-f", "json", "--letters", "red", "violet", "yellow", "blue", "green", "blue")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "274000000", doc["resistance"])
	assert.Equal(t, "0.5", doc["tolerance"])
	assert.Equal(t, float64(10), doc["temperature_coefficient"])
	assert.Equal(t, "D", doc["tolerance_letter"])
	assert.Equal(t, "Z", doc["temperature_coefficient_letter"])
}

// TestDecode_Errors covers bad names, bad counts and invalid bands.
func TestDecode_Errors(t *testing.T) {
	_, err := run(t, "decode", "pink", "black", "red", "gold")
	assert.ErrorIs(t, err, builder.ErrInvalidBand)
	assert.ErrorIs(t, err, color.ErrNotDigit)

	_, err = run(t, "decode", "brown", "black", "red", "magenta")
	assert.ErrorIs(t, err, color.ErrUnknownColor)

	_, err = run(t, "decode", "brown", "black", "red")
	assert.Error(t, err)

	_, err = run(t, "decode", "-f", "yaml", "brown", "black", "red", "gold")
	assert.Error(t, err)
}

// TestDecode_ConfigFile reads the output format from an HCL config.
func TestDecode_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resistor.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`format = "json"`+"\n"+`letters = true`+"\n"), 0o644))

	out, err := run(t, "--config", path, "decode", "brown", "black", "black", "red", "brown")
	require.NoError(t, err)
	assert.Contains(t, out, `"resistance": "10000"`)
	assert.Contains(t, out, `"tolerance_letter": "F"`)
}

// TestColors prints one header and fourteen rows.
func TestColors(t *testing.T) {
	out, err := run(t, "colors")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 15)
	assert.True(t, strings.HasPrefix(lines[0], "COLOR"))
	assert.Regexp(t, `^pink\s+-\s+1e-3\s+-\s+-$`, lines[1])
	assert.Regexp(t, `^gold\s+-\s+1e-1\s+5% J\s+-$`, lines[3])
	assert.Regexp(t, `^white\s+9\s+1e9\s+-\s+-$`, lines[13])
	assert.Regexp(t, `^empty\s+-\s+-\s+20% M\s+-$`, lines[14])
}

// TestVersion prints the version string.
func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "resistor version "+version+"\n", out)
}
