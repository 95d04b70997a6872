// Package output serializes retrieved element sets to the three-line text
// format downstream consumers read.
package output

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spacedata/tlefetch/internal/spacetrack"
)

// UnknownName is written in place of an absent object name. Defaulting
// happens only here so decoded records keep the absent/present distinction.
const UnknownName = "Unknown"

// Writer emits records as newline-terminated triples (name, line 1,
// line 2) in the order given, with no header, footer or separators.
type Writer struct {
	f  *os.File
	bw *bufio.Writer
}

// Create creates or truncates the output file at path.
func Create(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating output file: %w", err)
	}
	return &Writer{f: f, bw: bufio.NewWriter(f)}, nil
}

// WriteRecord writes one record's three lines.
func (w *Writer) WriteRecord(rec spacetrack.Record) error {
	name := UnknownName
	if rec.Name != nil {
		name = *rec.Name
	}
	for _, line := range []string{name, rec.Line1, rec.Line2} {
		if _, err := w.bw.WriteString(line); err != nil {
			return err
		}
		if err := w.bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return nil
}

// WriteRecords writes every record in order, stopping at the first error.
func (w *Writer) WriteRecords(recs []spacetrack.Record) error {
	for _, rec := range recs {
		if err := w.WriteRecord(rec); err != nil {
			return fmt.Errorf("writing record %s: %w", rec.NoradID, err)
		}
	}
	return nil
}

// Close flushes buffered lines and closes the file.
func (w *Writer) Close() error {
	if err := w.bw.Flush(); err != nil {
		w.f.Close()
		return err
	}
	return w.f.Close()
}
