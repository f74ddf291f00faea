package tables

import (
	"fmt"
	"io"

	"invoices/pkg/models"
)

// clientsHeader is the canonical clients.csv schema. The partyid column is
// part of the schema but an individual cell may be empty; the accounting
// export decides how to treat a client without one.
var clientsHeader = []string{"id", "name", "street", "city", "country", "vat", "vatpolicy", "partyid"}

// Clients is the keyed clients reference table, shared across all years.
type Clients struct {
	byID map[string]models.Client
}

// LoadClients reads the clients table from r.
func LoadClients(r io.Reader) (*Clients, error) {
	rows, err := readTable(r, "clients", clientsHeader)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]models.Client, len(rows))
	for _, row := range rows {
		client := models.Client{
			Name:      row[1],
			Street:    row[2],
			City:      row[3],
			Country:   row[4],
			VAT:       row[5],
			VATPolicy: row[6],
		}
		if row[7] != "" {
			partyID, err := parseInt("clients", "partyid", row[7])
			if err != nil {
				return nil, err
			}
			client.PartyID = &partyID
		}
		byID[row[0]] = client
	}

	return &Clients{byID: byID}, nil
}

// Get resolves a client key, failing with ErrMissingReference when the table
// has no such client.
func (c *Clients) Get(key string) (models.Client, error) {
	client, ok := c.byID[key]
	if !ok {
		return models.Client{}, fmt.Errorf("%w: client %q not in clients table", ErrMissingReference, key)
	}
	return client, nil
}
