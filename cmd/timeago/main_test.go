package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true

	base := []string{
		"--config", filepath.Join(t.TempDir(), "config.toml"),
		"--now", "2024-03-15T12:00:00Z",
	}

	c := newCmd()
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetArgs(append(base, args...))

	err := c.Execute()
	return out.String(), err
}

func TestTrans(t *testing.T) {
	out, err := run(t, "--locale", "uk", "2024-03-13T12:00:00Z", "2024-03-15 11:40:00")
	require.NoError(t, err)
	assert.Equal(t, "2 дня назад\n20 хвилин назад\n", out)
}

func TestTransSeconds(t *testing.T) {
	out, err := run(t, "--seconds", "--override", "day=single day", "86400", "59")
	require.NoError(t, err)
	assert.Equal(t, "1 single day ago\n59 seconds ago\n", out)
}

func TestTransErrors(t *testing.T) {
	_, err := run(t)
	assert.Error(t, err)

	_, err = run(t, "not-a-date")
	assert.Error(t, err)

	_, err = run(t, "2024-03-16T12:00:00Z")
	assert.Error(t, err)
}

func TestLocales(t *testing.T) {
	out, err := run(t, "locales", "--locale", "pl")
	require.NoError(t, err)
	assert.Contains(t, out, "* pl")
	assert.Contains(t, out, "  uk     Українська")
}

func TestExplain(t *testing.T) {
	out, err := run(t, "explain", "--locale", "ru", "2003-03-20T12:00:00Z")
	require.NoError(t, err)

	assert.Contains(t, out, "locale:    ru")
	assert.Contains(t, out, "elapsed:   662,342,400s")
	assert.Contains(t, out, "unit:      years")
	assert.Contains(t, out, "count:     21")
	assert.Contains(t, out, "category:  single")
	assert.Contains(t, out, "result:    21 год назад")
}

func TestConfigPacks(t *testing.T) {
	color.NoColor = true
	testdata, err := filepath.Abs(filepath.Join("..", "..", "testdata"))
	require.NoError(t, err)

	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	content := "locale = \"be\"\n\n[[packs]]\ncode = \"be\"\nname = \"Беларуская\"\n" +
		"rules = \"" + filepath.ToSlash(filepath.Join(testdata, "be_rules.yaml")) + "\"\n" +
		"phrases = [\"" + filepath.ToSlash(filepath.Join(testdata, "be.yaml")) + "\"]\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o644))

	c := newCmd()
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetArgs([]string{"--config", cfgPath, "--seconds", "300"})

	require.NoError(t, c.Execute())
	assert.Equal(t, "5 хвілін таму\n", out.String())
}
