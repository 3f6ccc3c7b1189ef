// Package maskfile reads and writes the project-local marker file that
// records a chosen Haxe version. The file holds a single version
// reference as its entire trimmed contents.
package maskfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultName is the marker file consulted in the working directory when
// no explicit path is given.
const DefaultName = ".mask"

// IOError reports a mask file that exists but cannot be read, or a write
// that failed for reasons other than the version being unknown.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("mask file %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Read returns the version reference recorded at path with surrounding
// whitespace trimmed. found is false when no file exists there; any other
// failure is an *IOError.
func Read(path string) (ref string, found bool, err error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, &IOError{Path: path, Err: err}
	}
	return strings.TrimSpace(string(raw)), true, nil
}

// Write records ref at path, creating the file if absent and replacing
// its contents otherwise. The write goes through a temp file and rename
// so a concurrent reader never observes a partial reference.
func Write(path string, ref string) error {
	if err := writeFileAtomically(path, []byte(ref+"\n"), 0o644); err != nil {
		return &IOError{Path: path, Err: err}
	}
	return nil
}

func writeFileAtomically(path string, content []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".mask-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	tmpName := tmp.Name()
	cleanup := func() {
		_ = os.Remove(tmpName)
	}

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Chmod(perm); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}
