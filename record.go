package dataminer

import (
	"bytes"
	"encoding/json"
)

// Field is one named value of a record. Found is false when the container
// had no node matching the field's locator, or the node lacked the
// requested attribute.
type Field struct {
	Name  string
	Value string
	Found bool
}

// Record holds the fields extracted from one container, in configuration order.
type Record []Field

// Get returns the value of the named field.
// The boolean is false when the field is absent or unknown.
func (r Record) Get(name string) (string, bool) {
	for _, f := range r {
		if f.Name == name {
			return f.Value, f.Found
		}
	}
	return "", false
}

// Names returns the field names in order.
func (r Record) Names() []string {
	names := make([]string, len(r))
	for i, f := range r {
		names[i] = f.Name
	}
	return names
}

// MarshalJSON encodes the record as an object whose keys keep field order.
// Absent fields encode as null.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONString(&buf, f.Name); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if !f.Found {
			buf.WriteString("null")
			continue
		}
		if err := writeJSONString(&buf, f.Value); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// writeJSONString writes s as a JSON string without HTML escaping.
func writeJSONString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	// Encode terminates every value with a newline.
	buf.Truncate(buf.Len() - 1)
	return nil
}

// ResultSet is the ordered collection of records produced by a run.
type ResultSet []Record
