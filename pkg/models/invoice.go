// Package models holds the invoice domain types shared by the table loaders,
// the assembler, the document renderer and the accounting export.
package models

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidIndex is returned when a requested invoice identity cannot be
// parsed or falls outside the supported range.
var ErrInvalidIndex = errors.New("invalid invoice index")

const (
	maxYear     = 9999
	maxSequence = 99 // display form is two digits
)

// InvoiceIndex identifies one invoice by issuing year and per-year sequence
// number. Immutable once constructed.
type InvoiceIndex struct {
	Year     int
	Sequence int
}

// NewInvoiceIndex validates the year and sequence ranges.
func NewInvoiceIndex(year, sequence int) (InvoiceIndex, error) {
	if year < 1 || year > maxYear {
		return InvoiceIndex{}, fmt.Errorf("%w: year %d out of range", ErrInvalidIndex, year)
	}
	if sequence < 1 || sequence > maxSequence {
		return InvoiceIndex{}, fmt.Errorf("%w: sequence %d out of range", ErrInvalidIndex, sequence)
	}
	return InvoiceIndex{Year: year, Sequence: sequence}, nil
}

// ParseInvoiceIndex builds an InvoiceIndex from the raw year and sequence
// command-line arguments.
func ParseInvoiceIndex(yearArg, sequenceArg string) (InvoiceIndex, error) {
	year, err := strconv.Atoi(yearArg)
	if err != nil {
		return InvoiceIndex{}, fmt.Errorf("%w: year %q is not a number", ErrInvalidIndex, yearArg)
	}
	sequence, err := strconv.Atoi(sequenceArg)
	if err != nil {
		return InvoiceIndex{}, fmt.Errorf("%w: sequence %q is not a number", ErrInvalidIndex, sequenceArg)
	}
	return NewInvoiceIndex(year, sequence)
}

// String renders the canonical display form YYYY-NN.
func (ix InvoiceIndex) String() string {
	return fmt.Sprintf("%04d-%02d", ix.Year, ix.Sequence)
}

// Filename returns the canonical relative path of the rendered document,
// YYYY/NN.html.
func (ix InvoiceIndex) Filename() string {
	return fmt.Sprintf("%04d/%02d.html", ix.Year, ix.Sequence)
}

// LineItem is one billed position of an invoice.
type LineItem struct {
	Description string
	Amount      Money
	Attachment  *string // relative file reference; nil when none
}

// Client is a billed party from the clients reference table.
type Client struct {
	Name      string
	Street    string
	City      string
	Country   string
	VAT       string
	VATPolicy string
	PartyID   *int64 // accounting counterparty id; nil when the table has none
}

// Business is an issuing party from the businesses reference table.
type Business struct {
	Name    string
	Street  string
	City    string
	Country string
	VAT     string
	Bank    string
	IBAN    string
	BIC     string
}

// InvoiceData is the resolved, denormalized metadata of one invoice.
type InvoiceData struct {
	Business Business
	Client   Client
	Date     Date
}

// Invoice is the root aggregate: identity, resolved metadata and line items
// in ledger order. Only the assembler constructs it; it is read-only after.
type Invoice struct {
	Index    InvoiceIndex
	Metadata InvoiceData
	Items    []LineItem
}

// Total sums all line item amounts in cent space.
func (inv *Invoice) Total() Money {
	var total Money
	for _, item := range inv.Items {
		total += item.Amount
	}
	return total
}
