package tables

import (
	"fmt"
	"io"

	"invoices/pkg/models"
)

var businessesHeader = []string{"id", "name", "street", "city", "country", "vat", "bank", "iban", "bic"}

// Businesses is the keyed businesses reference table, shared across all years.
type Businesses struct {
	byID map[string]models.Business
}

// LoadBusinesses reads the businesses table from r.
func LoadBusinesses(r io.Reader) (*Businesses, error) {
	rows, err := readTable(r, "businesses", businessesHeader)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]models.Business, len(rows))
	for _, row := range rows {
		byID[row[0]] = models.Business{
			Name:    row[1],
			Street:  row[2],
			City:    row[3],
			Country: row[4],
			VAT:     row[5],
			Bank:    row[6],
			IBAN:    row[7],
			BIC:     row[8],
		}
	}

	return &Businesses{byID: byID}, nil
}

// Get resolves a business key, failing with ErrMissingReference when the
// table has no such business.
func (b *Businesses) Get(key string) (models.Business, error) {
	business, ok := b.byID[key]
	if !ok {
		return models.Business{}, fmt.Errorf("%w: business %q not in businesses table", ErrMissingReference, key)
	}
	return business, nil
}
