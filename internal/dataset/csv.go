package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// Load errors. All of them abort the run before any stage executes.
var (
	ErrEmptyFile      = errors.New("input file has no header row")
	ErrHeaderMismatch = errors.New("header does not match the expected schema")
)

// Load reads the source CSV into a table. The file handle is held only for
// the duration of this call.
//
// The header must contain exactly the eight schema columns; a missing, extra,
// or duplicated column is a load error, not something to reconcile silently.
// The source column order is preserved for output fidelity. Every cell loads
// as text; interpreting sentinels and numbers is the pipeline's job.
func Load(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)

	header, err := r.Read()
	if err == io.EOF {
		return Table{}, fmt.Errorf("%s: %w", path, ErrEmptyFile)
	}
	if err != nil {
		return Table{}, fmt.Errorf("failed to read header: %w", err)
	}
	if err := validateHeader(header); err != nil {
		return Table{}, err
	}

	t := Table{Columns: header}
	for line := 2; ; line++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Table{}, fmt.Errorf("failed to read record at line %d: %w", line, err)
		}
		row := make(Row, len(record))
		for i, field := range record {
			row[i] = TextCell(field)
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// validateHeader checks the header against the fixed schema as a set.
func validateHeader(header []string) error {
	seen := make(map[string]int, len(header))
	for _, name := range header {
		seen[name]++
	}
	for name, n := range seen {
		if n > 1 {
			return fmt.Errorf("%w: duplicate column %q", ErrHeaderMismatch, name)
		}
	}
	for _, name := range Columns {
		if seen[name] == 0 {
			return fmt.Errorf("%w: missing column %q", ErrHeaderMismatch, name)
		}
		delete(seen, name)
	}
	for name := range seen {
		return fmt.Errorf("%w: unexpected column %q", ErrHeaderMismatch, name)
	}
	return nil
}
