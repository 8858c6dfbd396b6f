// Package fs provides file-based storage for extracted records.
package fs

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/fwojciec/dataminer"
)

// Ensure Store implements dataminer.Store at compile time.
var _ dataminer.Store = (*Store)(nil)

// Store writes result sets as JSON or CSV files in a directory.
// Files are written to a temporary file first and renamed into place, so a
// failed write never leaves a partial output file behind.
type Store struct {
	dir string
}

// NewStore creates a new Store that writes to dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the file path used for name in the given format.
func (s *Store) Path(name string, format dataminer.Format) string {
	return filepath.Join(s.dir, dataminer.Filename(name, format))
}

// Store serializes records to the file derived from name and format.
// An empty result set in CSV format writes nothing and reports
// Output.Written == false.
func (s *Store) Store(ctx context.Context, records dataminer.ResultSet, format dataminer.Format, name string) (*dataminer.Output, error) {
	f, err := dataminer.ParseFormat(string(format))
	if err != nil {
		return nil, err
	}

	var encode func(io.Writer, dataminer.ResultSet) error
	switch f {
	case dataminer.FormatJSON:
		encode = EncodeJSON
	case dataminer.FormatCSV:
		if len(records) == 0 {
			return &dataminer.Output{}, nil
		}
		encode = EncodeCSV
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := s.Path(name, f)
	if err := writeFileAtomic(path, func(w io.Writer) error {
		return encode(w, records)
	}); err != nil {
		return nil, err
	}

	return &dataminer.Output{
		Path:    path,
		Records: len(records),
		Written: true,
	}, nil
}

// EncodeJSON writes records as an indented JSON array. Non-ASCII and HTML
// characters are written verbatim; absent values are null.
func EncodeJSON(w io.Writer, records dataminer.ResultSet) error {
	if records == nil {
		records = dataminer.ResultSet{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

// EncodeCSV writes a header row taken from the first record's field names
// followed by one row per record. Absent values are empty cells.
// Nothing is written for an empty result set.
func EncodeCSV(w io.Writer, records dataminer.ResultSet) error {
	if len(records) == 0 {
		return nil
	}

	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	header := records[0].Names()
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, len(header))
	for _, r := range records {
		for i, name := range header {
			row[i], _ = r.Get(name)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// writeFileAtomic writes to a temporary file next to path and renames it
// into place once write and close have succeeded.
func writeFileAtomic(path string, write func(io.Writer) error) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if err := write(tmp); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
