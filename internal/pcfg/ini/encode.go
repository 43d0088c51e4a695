package ini

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v2"
)

// MarshalYAML renders the document as an ordered mapping
func (d *Document) MarshalYAML() (interface{}, error) {
	out := make(yaml.MapSlice, 0, len(d.order))
	for _, name := range d.order {
		entries := make(yaml.MapSlice, 0, len(d.sections[name].keys))
		for _, e := range d.Section(name) {
			entries = append(entries, yaml.MapItem{Key: e.Key, Value: e.Value})
		}
		out = append(out, yaml.MapItem{Key: name, Value: entries})
	}
	return out, nil
}

// MarshalJSON renders the document as a JSON object in document order
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range d.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONString(&buf, name); err != nil {
			return nil, err
		}
		buf.WriteString(":{")
		for j, e := range d.Section(name) {
			if j > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONString(&buf, e.Key); err != nil {
				return nil, err
			}
			buf.WriteByte(':')
			if err := writeJSONString(&buf, e.Value); err != nil {
				return nil, err
			}
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	buf.Write(b)
	return nil
}

// ToYAML returns the YAML rendering of the document
func (d *Document) ToYAML() ([]byte, error) {
	return yaml.Marshal(d)
}
