package dataminer

import (
	"context"
	"strings"
)

// Format is an output serialization format.
type Format string

// Supported output formats.
const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// ParseFormat normalizes s and returns the matching Format.
// Unknown formats return *SerializationError.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatCSV:
		return f, nil
	}
	return "", &SerializationError{Format: s}
}

// Filename derives the output file name from a base name and a format.
func Filename(base string, format Format) string {
	return base + "." + string(format)
}

// Output describes the result of storing a ResultSet.
type Output struct {
	// Path is the written file. Empty when nothing was written.
	Path string

	// Records is the number of records serialized.
	Records int

	// Written is false when there was nothing to write, for example an
	// empty ResultSet in CSV format.
	Written bool
}

// Store persists a ResultSet.
type Store interface {
	// Store serializes records in the given format to a destination derived
	// from name. Unsupported formats return *SerializationError and write
	// nothing.
	Store(ctx context.Context, records ResultSet, format Format, name string) (*Output, error)
}
