// Package card locates and reads the auxiliary card file referenced by
// aime.aimePath. The file may be called aime.txt or felica.txt and users
// frequently rename one to the other, so lookups fall back between the two.
package card

import (
	"path/filepath"
	"strings"

	"github.com/performai/pcfg/internal/pcfg/fileutil"
)

const (
	AimeFile   = "aime.txt"
	FelicaFile = "felica.txt"
)

// Conflict describes a directory holding both candidate card files
type Conflict struct {
	Dir        string
	AimePath   string
	FelicaPath string
}

// FullPath joins a configured path onto baseDir unless it is already absolute.
// Backslash separators written by Windows users are accepted on every OS.
func FullPath(p, baseDir string) string {
	p = filepath.FromSlash(strings.ReplaceAll(p, `\`, "/"))
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(baseDir, p)
}

// Resolve returns the card file that actually exists for the configured path.
// When nothing matches, the joined path is returned unchanged.
func Resolve(p, baseDir string) string {
	full := FullPath(p, baseDir)
	if fileutil.Exists(full) {
		return full
	}

	dir := filepath.Dir(full)
	for _, name := range alternates(filepath.Base(full)) {
		candidate := filepath.Join(dir, name)
		if fileutil.Exists(candidate) {
			return candidate
		}
	}
	return full
}

func alternates(base string) []string {
	switch strings.ToLower(base) {
	case AimeFile:
		return []string{FelicaFile}
	case FelicaFile:
		return []string{AimeFile}
	default:
		return []string{AimeFile, FelicaFile}
	}
}

// CheckConflict reports whether dir contains both aime.txt and felica.txt
func CheckConflict(dir string) (Conflict, bool) {
	c := Conflict{
		Dir:        dir,
		AimePath:   filepath.Join(dir, AimeFile),
		FelicaPath: filepath.Join(dir, FelicaFile),
	}
	return c, fileutil.Exists(c.AimePath) && fileutil.Exists(c.FelicaPath)
}
