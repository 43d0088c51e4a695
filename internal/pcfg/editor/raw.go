package editor

import (
	"os"

	"github.com/performai/pcfg/internal/pcfg/errors"
)

// RawText returns the file exactly as stored on disk
func (e *Editor) RawText() (string, error) {
	if e.path == "" {
		return "", errors.ErrNotLoaded
	}
	//nolint:gosec // G304: path is the open config file
	data, err := os.ReadFile(e.path)
	if err != nil {
		return "", errors.Wrap(err, "failed to read config")
	}
	return string(data), nil
}

// ApplyRaw replaces the file with text and reopens it
func (e *Editor) ApplyRaw(text string) error {
	if e.path == "" {
		return errors.ErrNotLoaded
	}
	if err := e.write(e.path, []byte(text), "raw apply"); err != nil {
		return err
	}
	return e.Reload()
}
