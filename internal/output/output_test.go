package output

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "syntinct/internal/errors"
)

func stubClipboard(t *testing.T, fn func(string) error) {
	t.Helper()
	orig := clipboardWrite
	clipboardWrite = fn
	t.Cleanup(func() { clipboardWrite = orig })
}

func TestWriteFileCreatesDirectoriesAndReplaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colors", "syntark.lua")

	require.NoError(t, WriteFile(path, []byte("first\n")))
	require.NoError(t, WriteFile(path, []byte("second\n")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second\n", string(got))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
}

func TestWriteFileLeavesNoPartialFileOnFailure(t *testing.T) {
	dir := t.TempDir()
	// A non-empty directory at the destination makes the final rename fail.
	path := filepath.Join(dir, "syntark.lua")
	require.NoError(t, os.MkdirAll(filepath.Join(path, "occupied"), 0755))

	err := WriteFile(path, []byte("local highlights = {}\n"))
	require.Error(t, err)
	assert.True(t, appErrors.IsCode(err, appErrors.CodeWriteFailed))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp file should be removed")
	assert.Equal(t, "syntark.lua", entries[0].Name())
	assert.True(t, entries[0].IsDir())
}

func TestDeliverToStdout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Target{Stdout: &buf}.Deliver([]byte("hello")))
	assert.Equal(t, "hello", buf.String())
}

func TestDeliverPrefersPathOverStdout(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "out.lua")
	require.NoError(t, Target{Path: path, Stdout: &buf}.Deliver([]byte("data")))
	assert.Empty(t, buf.String())

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "data", string(got))
}

func TestDeliverCopiesToClipboard(t *testing.T) {
	var copied string
	stubClipboard(t, func(s string) error {
		copied = s
		return nil
	})

	var buf bytes.Buffer
	require.NoError(t, Target{Stdout: &buf, Clipboard: true}.Deliver([]byte("lua")))
	assert.Equal(t, "lua", copied)
	assert.Equal(t, "lua", buf.String())
}

func TestClipboardFailureIsCoded(t *testing.T) {
	stubClipboard(t, func(string) error { return errors.New("no display") })

	err := CopyToClipboard([]byte("x"))
	require.Error(t, err)
	assert.True(t, appErrors.IsCode(err, appErrors.CodeClipboard))
	assert.Contains(t, err.Error(), "no display")
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errors.New("pipe closed") }

func TestDeliverSurfacesStdoutErrors(t *testing.T) {
	err := Target{Stdout: brokenWriter{}}.Deliver([]byte("x"))
	require.Error(t, err)
	assert.True(t, appErrors.IsCode(err, appErrors.CodeWriteFailed))
}
