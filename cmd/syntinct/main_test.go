package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"syntinct/internal/config"
	appErrors "syntinct/internal/errors"
	"syntinct/internal/neovim"
	"syntinct/internal/theme"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(config.ResetForTesting(t))

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestGenerateToStdout(t *testing.T) {
	out, err := runCLI(t, "generate")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "local highlights = {\n"))
	assert.Contains(t, out, `["Normal"] = {`)
	assert.True(t, strings.HasSuffix(out, string(neovim.DefaultSupport())))
}

func TestGenerateToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colors", "nord-dark.lua")
	out, err := runCLI(t, "generate", "--theme", "nord-dark", "-o", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	base, err := theme.Lookup("nord-dark")
	require.NoError(t, err)
	assert.Equal(t, neovim.New(base).Lua(neovim.DefaultSupport()), data)
}

func TestGenerateCustomSupport(t *testing.T) {
	support := filepath.Join(t.TempDir(), "support.lua")
	require.NoError(t, os.WriteFile(support, []byte("return highlights\n"), 0o600))

	out, err := runCLI(t, "generate", "--support", support)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "}\n\nreturn highlights\n"))
}

func TestUnknownThemeFails(t *testing.T) {
	_, err := runCLI(t, "generate", "--theme", "no-such-theme")
	require.Error(t, err)
	assert.True(t, appErrors.IsCode(err, appErrors.CodeUnknownTheme))
}

func TestFlagsOverrideConfigOnlyWhenSet(t *testing.T) {
	t.Cleanup(config.ResetForTesting(t))
	require.NoError(t, config.Set(config.KeyExportFormat, "yaml"))

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"export"})
	require.NoError(t, root.Execute())
	assert.True(t, strings.HasPrefix(out.String(), "- name: "), "config value used when flag absent")

	root = newRootCmd()
	out.Reset()
	root.SetOut(&out)
	root.SetArgs([]string{"export", "--format", "json"})
	require.NoError(t, root.Execute())

	var records []map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &records))
	assert.NotEmpty(t, records)
}

func TestExportUnknownFormat(t *testing.T) {
	_, err := runCLI(t, "export", "--format", "toml")
	require.Error(t, err)
	assert.True(t, appErrors.IsCode(err, appErrors.CodeUnknownFormat))
}

func TestBuildWritesEachTheme(t *testing.T) {
	dir := t.TempDir()
	out, err := runCLI(t, "build", "--dir", dir, "syntark", "nord-dark")
	require.NoError(t, err)

	for _, name := range []string{"syntark", "nord-dark"} {
		path := filepath.Join(dir, name+".lua")
		assert.Contains(t, out, "wrote "+path)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data, []byte("local highlights = {")))
	}
}

func TestBuildAllThemes(t *testing.T) {
	dir := t.TempDir()
	_, err := runCLI(t, "build", "--dir", dir)
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, len(theme.Available()))
}

func TestBuildRejectsDuplicatesAndUnknown(t *testing.T) {
	_, err := runCLI(t, "build", "--dir", t.TempDir(), "syntark", "syntark")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "more than once")

	_, err = runCLI(t, "build", "--dir", t.TempDir(), "syntark", "bogus")
	require.Error(t, err)
	assert.True(t, appErrors.IsCode(err, appErrors.CodeUnknownTheme))
}

func TestListMarksCurrentTheme(t *testing.T) {
	out, err := runCLI(t, "list", "--theme", "gruvbox-dark")
	require.NoError(t, err)
	assert.Contains(t, out, "* gruvbox-dark\n")
	assert.Contains(t, out, "  syntark\n")
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), len(theme.Available()))
}

func TestCheckPassesForRegisteredThemes(t *testing.T) {
	out, err := runCLI(t, "check")
	require.NoError(t, err)
	assert.Contains(t, out, "ok   syntark\n")
	assert.NotContains(t, out, "FAIL")
}

func TestCheckReportsUnknownTheme(t *testing.T) {
	out, err := runCLI(t, "check", "syntark", "bogus")
	require.Error(t, err)
	assert.Contains(t, out, "FAIL bogus")
	assert.Contains(t, err.Error(), "1 of 2 themes failed")
}

func TestDescribePlain(t *testing.T) {
	out, err := runCLI(t, "describe", "--format", "plain", "--theme", "thematic-dark")
	require.NoError(t, err)
	assert.Contains(t, out, "# thematic-dark")
	assert.Contains(t, out, "## Diagnostics")
}

func TestVersionCommand(t *testing.T) {
	out, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "syntinct version dev")
	assert.Contains(t, out, "OS/Arch:")
}

func TestPrintVersionRelease(t *testing.T) {
	origVersion, origBuild, origBuildTime := Version, Build, BuildTime
	t.Cleanup(func() {
		Version, Build, BuildTime = origVersion, origBuild, origBuildTime
	})
	Version, Build, BuildTime = "0.1.0", "abc1234", "2026-10-01_12:00:00"

	var buf bytes.Buffer
	printVersion(&buf)
	out := buf.String()
	assert.Contains(t, out, "syntinct version 0.1.0 (build: abc1234) [2026-10-01_12:00:00]")
	assert.NotContains(t, out, "Commit:")
}
