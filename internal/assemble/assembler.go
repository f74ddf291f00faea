// Package assemble joins the four invoice source tables into one fully
// resolved Invoice value. It is the only place where reference keys are
// resolved and where the raw date components become a validated Date; any
// failure aborts the whole assembly, never returning a partial invoice.
package assemble

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog"

	"invoices/internal/logger"
	"invoices/internal/tables"
	"invoices/pkg/models"
)

// Assembler builds invoices from the tables under a base directory:
// clients.csv and businesses.csv at the root, data.csv and invoices.csv in
// the per-year subdirectory.
type Assembler struct {
	log zerolog.Logger
}

// New creates an Assembler.
func New() *Assembler {
	return &Assembler{log: logger.WithComponent("assemble")}
}

// Assemble loads all four tables and joins them into the invoice identified
// by index.
func (a *Assembler) Assemble(dir string, index models.InvoiceIndex) (*models.Invoice, error) {
	a.log.Debug().Str("dir", dir).Stringer("index", index).Msg("assembling invoice")

	clients, err := loadTable(filepath.Join(dir, "clients.csv"), tables.LoadClients)
	if err != nil {
		return nil, err
	}
	businesses, err := loadTable(filepath.Join(dir, "businesses.csv"), tables.LoadBusinesses)
	if err != nil {
		return nil, err
	}

	yearDir := filepath.Join(dir, strconv.Itoa(index.Year))
	ledger, err := loadTable(filepath.Join(yearDir, "data.csv"), tables.LoadLedger)
	if err != nil {
		return nil, err
	}
	metadata, err := loadTable(filepath.Join(yearDir, "invoices.csv"), tables.LoadMetadata)
	if err != nil {
		return nil, err
	}

	items, err := ledger.Get(index.Sequence)
	if err != nil {
		return nil, err
	}
	raw, err := metadata.Get(index.Sequence)
	if err != nil {
		return nil, err
	}

	business, err := businesses.Get(raw.Business)
	if err != nil {
		return nil, fmt.Errorf("invoice %s: %w", index, err)
	}
	client, err := clients.Get(raw.Client)
	if err != nil {
		return nil, fmt.Errorf("invoice %s: %w", index, err)
	}

	date, err := models.NewDate(raw.Year, raw.Month, raw.Day)
	if err != nil {
		return nil, fmt.Errorf("%w: invoices table row %d: %v",
			tables.ErrMalformedSource, index.Sequence, err)
	}

	a.log.Info().
		Stringer("index", index).
		Str("client", client.Name).
		Str("business", business.Name).
		Int("items", len(items)).
		Msg("invoice assembled")

	return &models.Invoice{
		Index: index,
		Metadata: models.InvoiceData{
			Business: business,
			Client:   client,
			Date:     date,
		},
		Items: items,
	}, nil
}

// loadTable opens path and hands it to the table loader.
func loadTable[T any](path string, load func(r io.Reader) (T, error)) (T, error) {
	var zero T
	f, err := os.Open(path)
	if err != nil {
		return zero, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	table, err := load(f)
	if err != nil {
		return zero, fmt.Errorf("loading %s: %w", path, err)
	}
	return table, nil
}
