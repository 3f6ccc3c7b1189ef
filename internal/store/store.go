// Package store locates installed Haxe versions on disk. Each installed
// version is a self-contained directory named after its version reference
// directly under the store root, holding the compiler binary, haxelib and
// the standard library.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"mask/internal/versionutil"
)

// ErrNotInstalled reports a version reference with no matching directory
// under the store root.
var ErrNotInstalled = errors.New("haxe version is not installed")

const storeDirName = ".haxe"

// StdDirName is the standard library directory inside a version root.
const StdDirName = "std"

// Store resolves version references against a fixed root directory. The
// root is carried explicitly so tests can point it at a temporary tree.
type Store struct {
	Root string
}

// Default returns the store rooted at ~/.haxe.
func Default() (Store, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Store{}, fmt.Errorf("resolve user home: %w", err)
	}
	return Store{Root: filepath.Join(home, storeDirName)}, nil
}

// VersionDir returns the directory a version would occupy, without
// checking that it exists.
func (s Store) VersionDir(ref string) string {
	return filepath.Join(s.Root, ref)
}

// StdDir returns the standard library root of a version, without checking
// that it exists.
func (s Store) StdDir(ref string) string {
	return filepath.Join(s.Root, ref, StdDirName)
}

// Exists reports whether the version directory is present. Directory
// presence is the only check here; toolkit integrity is validated at
// dispatch time.
func (s Store) Exists(ref string) bool {
	info, err := os.Stat(s.VersionDir(ref))
	return err == nil && info.IsDir()
}

// RootOf returns the directory of an installed version, or ErrNotInstalled
// when no directory of that name exists.
func (s Store) RootOf(ref string) (string, error) {
	dir := s.VersionDir(ref)
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("haxe version %s: %w", ref, ErrNotInstalled)
		}
		return "", fmt.Errorf("stat version directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("haxe version %s: %w", ref, ErrNotInstalled)
	}
	return dir, nil
}

// List enumerates installed versions, newest first. A missing store root
// means no versions are installed.
func (s Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.Root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read store root %s: %w", s.Root, err)
	}

	versions := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		versions = append(versions, entry.Name())
	}

	versionutil.SortNewestFirst(versions)
	return versions, nil
}
