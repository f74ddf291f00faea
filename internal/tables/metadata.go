package tables

import (
	"fmt"
	"io"
)

var metadataHeader = []string{"index", "business", "client", "year", "month", "day"}

// RawMetadata is one unresolved row of a year's invoices table: the business
// and client are still reference-table keys and the date is still three raw
// components.
type RawMetadata struct {
	Business string
	Client   string
	Year     int
	Month    int
	Day      int
}

// Metadata is one year's invoice metadata table keyed by sequence number.
type Metadata struct {
	rows map[int]RawMetadata
}

// LoadMetadata reads a year's invoices table from r.
func LoadMetadata(r io.Reader) (*Metadata, error) {
	records, err := readTable(r, "invoices", metadataHeader)
	if err != nil {
		return nil, err
	}

	rows := make(map[int]RawMetadata, len(records))
	for _, record := range records {
		sequence, err := parseInt("invoices", "index", record[0])
		if err != nil {
			return nil, err
		}
		year, err := parseInt("invoices", "year", record[3])
		if err != nil {
			return nil, err
		}
		month, err := parseInt("invoices", "month", record[4])
		if err != nil {
			return nil, err
		}
		day, err := parseInt("invoices", "day", record[5])
		if err != nil {
			return nil, err
		}

		rows[int(sequence)] = RawMetadata{
			Business: record[1],
			Client:   record[2],
			Year:     int(year),
			Month:    int(month),
			Day:      int(day),
		}
	}

	return &Metadata{rows: rows}, nil
}

// Get returns the raw metadata for an invoice sequence, failing with
// ErrMissingInvoice when the table has no row for it.
func (m *Metadata) Get(sequence int) (RawMetadata, error) {
	row, ok := m.rows[sequence]
	if !ok {
		return RawMetadata{}, fmt.Errorf("%w: no entry for sequence %d in invoices table", ErrMissingInvoice, sequence)
	}
	return row, nil
}
