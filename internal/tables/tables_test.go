package tables

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// loaders adapts each typed loader to a common signature for the shared
// schema-validation cases.
var loaders = map[string]func(r io.Reader) error{
	"clients":    func(r io.Reader) error { _, err := LoadClients(r); return err },
	"businesses": func(r io.Reader) error { _, err := LoadBusinesses(r); return err },
	"data":       func(r io.Reader) error { _, err := LoadLedger(r); return err },
	"invoices":   func(r io.Reader) error { _, err := LoadMetadata(r); return err },
}

var validHeaders = map[string]string{
	"clients":    "id,name,street,city,country,vat,vatpolicy,partyid",
	"businesses": "id,name,street,city,country,vat,bank,iban,bic",
	"data":       "index,amount,services,attachment",
	"invoices":   "index,business,client,year,month,day",
}

func TestLoadRejectsSchemaDrift(t *testing.T) {
	for name, load := range loaders {
		t.Run(name, func(t *testing.T) {
			header := validHeaders[name]

			t.Run("empty source", func(t *testing.T) {
				assert.ErrorIs(t, load(strings.NewReader("")), ErrMalformedSource)
			})

			t.Run("missing column", func(t *testing.T) {
				truncated := header[:strings.LastIndex(header, ",")]
				assert.ErrorIs(t, load(strings.NewReader(truncated+"\n")), ErrMalformedSource)
			})

			t.Run("extra column", func(t *testing.T) {
				assert.ErrorIs(t, load(strings.NewReader(header+",extra\n")), ErrMalformedSource)
			})

			t.Run("renamed column", func(t *testing.T) {
				columns := strings.Split(header, ",")
				columns[0] = "identifier"
				renamed := strings.Join(columns, ",")
				assert.ErrorIs(t, load(strings.NewReader(renamed+"\n")), ErrMalformedSource)
			})

			t.Run("header only is a valid empty table", func(t *testing.T) {
				assert.NoError(t, load(strings.NewReader(header+"\n")))
			})
		})
	}
}

func TestLoadRejectsShortRows(t *testing.T) {
	src := validHeaders["data"] + "\n1,1000\n"
	assert.ErrorIs(t, loaders["data"](strings.NewReader(src)), ErrMalformedSource)
}
