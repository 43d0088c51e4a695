package card

import (
	"os"
	"strings"

	"github.com/performai/pcfg/internal/pcfg/errors"
	"github.com/performai/pcfg/internal/pcfg/fileutil"
)

// Read returns the card file contents verbatim. A missing file is not an
// error: ok is false and content is empty.
func Read(path string) (content string, ok bool, err error) {
	//nolint:gosec // G304: path comes from the user's config
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, errors.Wrapf(err, "failed to read card file %s", path)
	}
	return string(data), true, nil
}

// Write stores content verbatim, creating the parent directory first
func Write(path, content string) error {
	if strings.TrimSpace(path) == "" {
		return errors.ErrEmptyCardPath
	}
	if err := fileutil.WriteFile(path, []byte(content)); err != nil {
		return errors.Wrap(err, "failed to save card file")
	}
	return nil
}
