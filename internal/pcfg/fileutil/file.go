// Package fileutil provides the small set of file helpers pcfg needs:
//   - atomic replacement of the config and card files
//   - existence checks that treat permission errors as "present"
//   - SHA256 hashing used to skip no-op reloads
package fileutil

import (
	"crypto/sha256"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/performai/pcfg/internal/pcfg/errors"
)

// Exists reports whether something exists at path
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || !os.IsNotExist(err)
}

// IsFile reports whether path exists and is a regular file
func IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// EnsureDir creates dir and its parents if missing. An empty dir is a no-op.
func EnsureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// WriteFile creates the parent directory and atomically replaces path
func WriteFile(path string, data []byte) error {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	perm := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}
	if err := writeFileAtomic(path, data, perm); err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return errors.Wrapf(errors.ErrPermissionDenied, "%s", path)
		}
		return err
	}
	return nil
}

// GetFileHashHex calculates the SHA256 hash of a file and returns it as a hex string
func GetFileHashHex(file string) (string, error) {
	//nolint:gosec // G304: path is chosen by the user
	f, err := os.Open(file)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}
