// Package tables loads the four tabular invoice sources: the shared clients
// and businesses reference tables and the per-year cost ledger and invoice
// metadata tables. Every loader validates the header row against a fixed
// column set and fails loading on any schema or type mismatch; tables are
// immutable after loading.
package tables

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Sentinel errors shared by all table loaders.
var (
	// ErrMalformedSource is returned when a table's header does not match
	// the expected column set or a value cannot be parsed to its type.
	ErrMalformedSource = errors.New("malformed source table")

	// ErrMissingInvoice is returned when a per-year table has no row for a
	// requested invoice sequence number.
	ErrMissingInvoice = errors.New("missing invoice")

	// ErrMissingReference is returned when a reference table lookup names an
	// unknown key.
	ErrMissingReference = errors.New("missing reference")
)

// readTable reads a delimited source, checks that the header row matches
// header exactly (same columns, same order, nothing extra or missing) and
// returns the data rows in source order.
func readTable(r io.Reader, name string, header []string) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(header)
	cr.TrimLeadingSpace = true

	got, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: %s has no header row", ErrMalformedSource, name)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedSource, name, err)
	}
	for i, want := range header {
		if got[i] != want {
			return nil, fmt.Errorf("%w: %s header column %d is %q, want %q",
				ErrMalformedSource, name, i+1, got[i], want)
		}
	}

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedSource, name, err)
	}
	return rows, nil
}

// parseInt parses a numeric cell, wrapping failures as ErrMalformedSource.
func parseInt(name, column, value string) (int64, error) {
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s column %s has non-numeric value %q",
			ErrMalformedSource, name, column, value)
	}
	return n, nil
}
