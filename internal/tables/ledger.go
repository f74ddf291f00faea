package tables

import (
	"fmt"
	"io"

	"invoices/pkg/models"
)

var ledgerHeader = []string{"index", "amount", "services", "attachment"}

// Ledger is one year's cost table, grouping line items by invoice sequence
// number. Within a group, items keep their source row order; that order is
// what the rendered items table shows.
type Ledger struct {
	items map[int][]models.LineItem
}

// LoadLedger reads a year's data table from r.
func LoadLedger(r io.Reader) (*Ledger, error) {
	rows, err := readTable(r, "data", ledgerHeader)
	if err != nil {
		return nil, err
	}

	items := make(map[int][]models.LineItem)
	for _, row := range rows {
		sequence, err := parseInt("data", "index", row[0])
		if err != nil {
			return nil, err
		}
		amount, err := parseInt("data", "amount", row[1])
		if err != nil {
			return nil, err
		}

		item := models.LineItem{
			Description: row[2],
			Amount:      models.Money(amount),
		}
		if row[3] != "" {
			attachment := row[3]
			item.Attachment = &attachment
		}

		items[int(sequence)] = append(items[int(sequence)], item)
	}

	return &Ledger{items: items}, nil
}

// Get returns the line items for an invoice sequence in source order. An
// invoice is never silently empty: no rows means ErrMissingInvoice.
func (l *Ledger) Get(sequence int) ([]models.LineItem, error) {
	items, ok := l.items[sequence]
	if !ok {
		return nil, fmt.Errorf("%w: no entry for sequence %d in data table", ErrMissingInvoice, sequence)
	}
	return items, nil
}
