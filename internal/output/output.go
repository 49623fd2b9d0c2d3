// Package output delivers rendered artifacts to files, stdout, or the
// system clipboard.
package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"

	"syntinct/internal/debug"
	appErrors "syntinct/internal/errors"
)

// clipboardWrite is a variable so tests can avoid touching the real clipboard.
var clipboardWrite = clipboard.WriteAll

// Target says where a single artifact goes. An empty Path means Stdout.
type Target struct {
	Path      string
	Clipboard bool
	Stdout    io.Writer
}

// Deliver writes data to the target. When Clipboard is set the data is
// also copied; a clipboard failure is reported after the primary write.
func (t Target) Deliver(data []byte) error {
	if t.Path != "" {
		if err := WriteFile(t.Path, data); err != nil {
			return err
		}
	} else if t.Stdout != nil {
		if _, err := t.Stdout.Write(data); err != nil {
			return appErrors.New(appErrors.CodeWriteFailed, "write stdout", err)
		}
	}

	if t.Clipboard {
		if err := CopyToClipboard(data); err != nil {
			return err
		}
	}
	return nil
}

// WriteFile replaces path with data. The bytes are written to a temporary
// file in the same directory and renamed into place, so readers see either
// the previous file or the complete new one.
func WriteFile(path string, data []byte) error {
	log := debug.Component("output")

	dir := filepath.Dir(path)
	//nolint:gosec // G301: output directory is user-visible
	if err := os.MkdirAll(dir, 0755); err != nil {
		return appErrors.New(appErrors.CodeWriteFailed, "create output directory", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return appErrors.New(appErrors.CodeWriteFailed, "create temp file", err)
	}
	tmpPath := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpPath) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return appErrors.New(appErrors.CodeWriteFailed, fmt.Sprintf("write %s", path), err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return appErrors.New(appErrors.CodeWriteFailed, fmt.Sprintf("sync %s", path), err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return appErrors.New(appErrors.CodeWriteFailed, fmt.Sprintf("close %s", path), err)
	}
	//nolint:gosec // G302: colorscheme files are meant to be world-readable
	if err := os.Chmod(tmpPath, 0644); err != nil {
		cleanup()
		return appErrors.New(appErrors.CodeWriteFailed, fmt.Sprintf("chmod %s", path), err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		cleanup()
		return appErrors.New(appErrors.CodeWriteFailed, fmt.Sprintf("install %s", path), err)
	}

	log.Debug().Str("path", path).Int("bytes", len(data)).Msg("wrote artifact")
	return nil
}

// CopyToClipboard places data on the system clipboard.
func CopyToClipboard(data []byte) error {
	if err := clipboardWrite(string(data)); err != nil {
		return appErrors.New(appErrors.CodeClipboard, "copy to clipboard", err)
	}
	debug.Logf("copied %d bytes to clipboard", len(data))
	return nil
}
