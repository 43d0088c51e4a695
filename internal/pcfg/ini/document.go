// Package ini implements the section/key document model of segatools.ini.
//
// The format is deliberately loose:
//   - "[name]" opens a section; lines before the first header are dropped
//   - lines starting with ";" are comments
//   - "key=value" is split on the first "=" and both sides are trimmed
//   - anything else is silently ignored
//
// Sections and keys keep their first-insertion order so that a loaded file is
// written back in the same layout.
package ini

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/performai/pcfg/internal/pcfg/errors"
)

// Entry is a single key=value pair inside a section
type Entry struct {
	Key   string
	Value string
}

type section struct {
	keys   []string
	values map[string]string
}

func newSection() *section {
	return &section{values: make(map[string]string)}
}

func (s *section) set(key, value string) {
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
}

// Document is an ordered mapping of section name to key/value entries
type Document struct {
	order    []string
	sections map[string]*section
}

// New returns an empty document
func New() *Document {
	return &Document{sections: make(map[string]*section)}
}

// Parse builds a document from config text. Malformed lines are dropped.
func Parse(text string) *Document {
	doc := New()
	current := ""

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, ";") {
			continue
		}

		if len(trimmed) >= 2 && trimmed[0] == '[' && trimmed[len(trimmed)-1] == ']' {
			current = trimmed[1 : len(trimmed)-1]
			if current != "" {
				// A repeated header starts the section over.
				doc.replace(current, newSection())
			}
			continue
		}

		key, value, ok := strings.Cut(trimmed, "=")
		if !ok || current == "" {
			continue
		}
		doc.sections[current].set(strings.TrimSpace(key), strings.TrimSpace(value))
	}

	return doc
}

// ParseFile reads and parses the file at path
func ParseFile(path string) (*Document, error) {
	//nolint:gosec // G304: path is chosen by the user
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(errors.ErrFileNotFound, "%s", path)
		}
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	return Parse(string(data)), nil
}

func (d *Document) replace(name string, s *section) {
	if _, ok := d.sections[name]; !ok {
		d.order = append(d.order, name)
	}
	d.sections[name] = s
}

// Serialize renders the document back to text. Values are written verbatim.
func (d *Document) Serialize() string {
	var buf bytes.Buffer
	_, _ = d.WriteTo(&buf)
	return buf.String()
}

// WriteTo writes the serialized document to w
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	var sb strings.Builder
	for _, name := range d.order {
		s := d.sections[name]
		sb.WriteString("[" + name + "]\n")
		for _, key := range s.keys {
			sb.WriteString(key + "=" + s.values[key] + "\n")
		}
		sb.WriteString("\n")
	}
	n, err := io.WriteString(w, sb.String())
	return int64(n), err
}

// Has reports whether the section exists
func (d *Document) Has(sectionName string) bool {
	_, ok := d.sections[sectionName]
	return ok
}

// HasKey reports whether key exists in section
func (d *Document) HasKey(sectionName, key string) bool {
	_, ok := d.Lookup(sectionName, key)
	return ok
}

// Lookup returns the raw value and whether it was present
func (d *Document) Lookup(sectionName, key string) (string, bool) {
	s, ok := d.sections[sectionName]
	if !ok {
		return "", false
	}
	v, ok := s.values[key]
	return v, ok
}

// GetString returns the stored value or def when the section or key is absent
func (d *Document) GetString(sectionName, key, def string) string {
	if v, ok := d.Lookup(sectionName, key); ok {
		return v
	}
	return def
}

// GetBool returns true iff the stored value is exactly "1", or def when absent
func (d *Document) GetBool(sectionName, key string, def bool) bool {
	if v, ok := d.Lookup(sectionName, key); ok {
		return v == "1"
	}
	return def
}

// GetInt returns the stored integer, or def when absent or not a number
func (d *Document) GetInt(sectionName, key string, def int) int {
	v, ok := d.Lookup(sectionName, key)
	if !ok {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

// SetSection replaces the section wholesale, keeping its position if it existed
func (d *Document) SetSection(name string, entries []Entry) error {
	if name == "" {
		return errors.ErrEmptySection
	}
	s := newSection()
	for _, e := range entries {
		if strings.ContainsAny(e.Value, "\r\n") {
			return errors.Wrapf(errors.ErrInvalidValue, "%s.%s contains a newline", name, e.Key)
		}
		s.set(e.Key, e.Value)
	}
	d.replace(name, s)
	return nil
}

// Set stores a single value, creating the section if needed
func (d *Document) Set(sectionName, key, value string) error {
	if sectionName == "" {
		return errors.ErrEmptySection
	}
	if strings.ContainsAny(value, "\r\n") {
		return errors.Wrapf(errors.ErrInvalidValue, "%s.%s contains a newline", sectionName, key)
	}
	s, ok := d.sections[sectionName]
	if !ok {
		s = newSection()
		d.replace(sectionName, s)
	}
	s.set(key, value)
	return nil
}

// DeleteSection removes the section if present
func (d *Document) DeleteSection(name string) {
	if _, ok := d.sections[name]; !ok {
		return
	}
	delete(d.sections, name)
	for i, n := range d.order {
		if n == name {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
}

// Sections returns the section names in document order
func (d *Document) Sections() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

// Section returns a copy of the section's entries in order, nil if absent
func (d *Document) Section(name string) []Entry {
	s, ok := d.sections[name]
	if !ok {
		return nil
	}
	out := make([]Entry, 0, len(s.keys))
	for _, key := range s.keys {
		out = append(out, Entry{Key: key, Value: s.values[key]})
	}
	return out
}

// Len returns the number of sections
func (d *Document) Len() int {
	return len(d.order)
}

// Clone returns a deep copy
func (d *Document) Clone() *Document {
	c := New()
	for _, name := range d.order {
		s := newSection()
		for _, e := range d.Section(name) {
			s.set(e.Key, e.Value)
		}
		c.replace(name, s)
	}
	return c
}

// Map returns an unordered view of the document, mostly for comparisons
func (d *Document) Map() map[string]map[string]string {
	out := make(map[string]map[string]string, len(d.sections))
	for name, s := range d.sections {
		m := make(map[string]string, len(s.values))
		for k, v := range s.values {
			m[k] = v
		}
		out[name] = m
	}
	return out
}

// Equal reports whether both documents hold the same sections, keys and values
func (d *Document) Equal(other *Document) bool {
	if other == nil || len(d.sections) != len(other.sections) {
		return false
	}
	for name, s := range d.sections {
		o, ok := other.sections[name]
		if !ok || len(s.values) != len(o.values) {
			return false
		}
		for k, v := range s.values {
			if ov, ok := o.values[k]; !ok || ov != v {
				return false
			}
		}
	}
	return true
}

// String implements fmt.Stringer
func (d *Document) String() string {
	return fmt.Sprintf("ini.Document(%d sections)", len(d.order))
}
