package editor

import (
	"path/filepath"
	"strings"

	"github.com/performai/pcfg/internal/pcfg/card"
	"github.com/performai/pcfg/internal/pcfg/errors"
	"github.com/performai/pcfg/internal/pcfg/form"
)

// CardSetting returns aime.aimePath as written in the document
func (e *Editor) CardSetting() string {
	return e.doc.GetString("aime", "aimePath", form.DefaultAimePath)
}

// CardPath returns the card file that exists on disk for the configured path,
// relative paths being resolved against the config file's directory
func (e *Editor) CardPath() string {
	return card.Resolve(e.CardSetting(), e.Dir())
}

// LoadCard reads the card file. ok is false when it does not exist.
func (e *Editor) LoadCard() (content string, ok bool, err error) {
	if !e.loaded {
		return "", false, errors.ErrNotLoaded
	}
	return card.Read(e.CardPath())
}

// SaveCard writes content to the resolved card file
func (e *Editor) SaveCard(content string) error {
	if !e.loaded {
		return errors.ErrNotLoaded
	}
	if strings.TrimSpace(e.CardSetting()) == "" {
		return errors.ErrEmptyCardPath
	}
	return card.Write(e.CardPath(), content)
}

// CardConflict reports whether the card directory holds both aime.txt and
// felica.txt
func (e *Editor) CardConflict() (card.Conflict, bool) {
	dir := filepath.Dir(card.FullPath(e.CardSetting(), e.Dir()))
	return card.CheckConflict(dir)
}
