// Package editor owns the single open config document and implements every
// user action as a method: open, edit forms, save, card file access and the
// raw-text advanced mode.
package editor

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/performai/pcfg/internal/log"
	"github.com/performai/pcfg/internal/pcfg/errors"
	"github.com/performai/pcfg/internal/pcfg/fileutil"
	"github.com/performai/pcfg/internal/pcfg/form"
	"github.com/performai/pcfg/internal/pcfg/history"
	"github.com/performai/pcfg/internal/pcfg/ini"
	"github.com/performai/pcfg/internal/pcfg/variant"
)

// Editor is the handle for one open config file
type Editor struct {
	path    string
	doc     *ini.Document
	variant variant.Variant
	loaded  bool
	status  string

	history *history.Store
}

// Option configures an Editor
type Option func(*Editor)

// WithHistory records the previous file content before every write
func WithHistory(store *history.Store) Option {
	return func(e *Editor) {
		e.history = store
	}
}

// New returns an editor with nothing loaded
func New(opts ...Option) *Editor {
	e := &Editor{
		doc:     ini.New(),
		variant: variant.SDEZ,
		status:  "no file loaded",
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Open reads and parses path. On failure the editor is marked not loaded and
// the previous document is kept.
func (e *Editor) Open(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	doc, err := ini.ParseFile(abs)
	if err != nil {
		e.loaded = false
		e.status = "load failed"
		return errors.Wrap(err, "failed to load config")
	}

	e.path = abs
	e.doc = doc
	e.variant = variant.Detect(doc)
	e.loaded = true
	e.status = fmt.Sprintf("loaded: %s [%s]", filepath.Base(abs), e.variant)
	log.Debug("Loaded %s with %d sections, detected %s", abs, doc.Len(), e.variant)
	return nil
}

// Reload re-reads the current file from disk
func (e *Editor) Reload() error {
	if e.path == "" {
		return errors.ErrNotLoaded
	}
	return e.Open(e.path)
}

// Loaded reports whether a document was opened successfully
func (e *Editor) Loaded() bool {
	return e.loaded
}

// Path returns the absolute path of the open file
func (e *Editor) Path() string {
	return e.path
}

// Dir returns the directory holding the open file
func (e *Editor) Dir() string {
	if e.path == "" {
		return ""
	}
	return filepath.Dir(e.path)
}

// Document returns the in-memory document
func (e *Editor) Document() *ini.Document {
	return e.doc
}

// Variant returns the active variant
func (e *Editor) Variant() variant.Variant {
	return e.variant
}

// SetVariant overrides the detected variant
func (e *Editor) SetVariant(v variant.Variant) {
	e.variant = v
	e.status = fmt.Sprintf("current variant: %s", v)
}

// Status returns a one-line description of the editor state
func (e *Editor) Status() string {
	return e.status
}

// Forms loads the form values for the active variant
func (e *Editor) Forms() form.Forms {
	return form.Load(e.doc, e.variant)
}

// ApplyForms writes the forms into the document. The document is unchanged
// when the forms are invalid.
func (e *Editor) ApplyForms(f form.Forms) error {
	if !e.loaded {
		return errors.ErrNotLoaded
	}
	next := e.doc.Clone()
	if err := f.Apply(next); err != nil {
		return err
	}
	e.doc = next
	e.variant = f.Variant
	return nil
}

// Set stores a single value in the document
func (e *Editor) Set(section, key, value string) error {
	if !e.loaded {
		return errors.ErrNotLoaded
	}
	return e.doc.Set(section, key, value)
}

// Save writes the document back to its file
func (e *Editor) Save() error {
	if !e.loaded {
		return errors.ErrNotLoaded
	}
	return e.write(e.path, []byte(e.doc.Serialize()), "save")
}

// SaveAs writes the document to path and makes it the open file
func (e *Editor) SaveAs(path string) error {
	if !e.loaded {
		return errors.ErrNotLoaded
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrapf(errors.ErrInvalidPath, "%s", path)
	}
	if err := e.write(abs, []byte(e.doc.Serialize()), "save as"); err != nil {
		return err
	}
	e.path = abs
	return nil
}

func (e *Editor) write(path string, data []byte, reason string) error {
	e.snapshot(path, reason)
	if err := fileutil.WriteFile(path, data); err != nil {
		e.status = "save failed"
		return errors.Wrap(err, "failed to save config")
	}
	e.status = fmt.Sprintf("saved: %s", filepath.Base(path))
	log.Debug("Wrote %d bytes to %s", len(data), path)
	return nil
}

// snapshot stores the current on-disk content of path. Failures are logged
// and never block the write.
func (e *Editor) snapshot(path, reason string) {
	if e.history == nil || !e.history.Enabled() {
		return
	}
	//nolint:gosec // G304: path is the open config file
	old, err := os.ReadFile(path)
	if err != nil {
		return
	}
	if _, err := e.history.Record(path, string(old), reason); err != nil {
		log.Warn("Could not record history snapshot: %v", err)
	}
}

// Restore writes a stored snapshot back to the open file and reloads it
func (e *Editor) Restore(id int64) error {
	if e.history == nil || !e.history.Enabled() {
		return errors.ErrHistoryDisabled
	}
	if e.path == "" {
		return errors.ErrNotLoaded
	}
	snap, err := e.history.Get(id)
	if err != nil {
		return err
	}
	if err := e.write(e.path, []byte(snap.Content), fmt.Sprintf("restore %d", id)); err != nil {
		return err
	}
	return e.Reload()
}
