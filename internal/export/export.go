// Package export derives the structured accounting payload from an assembled
// invoice and its rendered PDF. The payload mirrors the accounting service's
// order schema, PascalCase field names included, and is the only place where
// cent amounts become decimal major-unit values.
package export

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"invoices/pkg/models"
)

// Payment terms granted on every invoice.
const expiryDays = 30

// Fixed payload constants.
const (
	orderDirection  = "Income"
	orderType       = "Invoice"
	ventilationCode = "55"
	currency        = "EUR"
)

var (
	// ErrArtifactRead is returned when the rendered PDF cannot be read for
	// embedding.
	ErrArtifactRead = errors.New("cannot read rendered artifact")

	// ErrMissingPartyID is returned when the invoice's client carries no
	// accounting counterparty id. The export never substitutes a default.
	ErrMissingPartyID = errors.New("client has no party id")
)

// Order is the accounting payload for one invoice.
type Order struct {
	OrderNumber     string      `json:"OrderNumber"`
	OrderTitle      string      `json:"OrderTitle"`
	OrderDate       string      `json:"OrderDate"`
	ExpiryDate      string      `json:"ExpiryDate"`
	OrderType       string      `json:"OrderType"`
	LastModified    string      `json:"LastModified"`
	Created         string      `json:"Created"`
	OrderDirection  string      `json:"OrderDirection"`
	CounterPartyID  int64       `json:"CounterPartyID"`
	OrderPDF        OrderPDF    `json:"OrderPDF"`
	OrderLines      []OrderLine `json:"OrderLines"`
	VentilationCode string      `json:"VentilationCode"`
	Paid            bool        `json:"Paid"`
	IsSent          bool        `json:"IsSent"`
	Currency        string      `json:"Currency"`
}

// OrderPDF is the base64-embedded rendered document.
type OrderPDF struct {
	FileName    string `json:"FileName"`
	FileContent string `json:"FileContent"`
}

// OrderLine is one billed position.
type OrderLine struct {
	Description   string  `json:"Description"`
	Quantity      float64 `json:"Quantity"`
	UnitPriceExcl float64 `json:"UnitPriceExcl"`
	VATPercentage float64 `json:"VATPercentage"`
}

// Export builds the accounting payload for invoice, embedding the rendered
// PDF found at artifactPath.
func Export(invoice *models.Invoice, artifactPath string) (*Order, error) {
	client := invoice.Metadata.Client
	if client.PartyID == nil {
		return nil, fmt.Errorf("%w: client %q", ErrMissingPartyID, client.Name)
	}

	pdf, err := readArtifact(artifactPath)
	if err != nil {
		return nil, err
	}

	lines := make([]OrderLine, 0, len(invoice.Items))
	for _, item := range invoice.Items {
		lines = append(lines, OrderLine{
			Description: item.Description,
			Quantity:    1,
			// The one sanctioned lossy step: cents to a decimal major-unit
			// value for the wire format.
			UnitPriceExcl: item.Amount.Decimal().InexactFloat64(),
			VATPercentage: 0,
		})
	}

	index := invoice.Index.String()
	date := invoice.Metadata.Date
	return &Order{
		OrderNumber:     index,
		OrderTitle:      index,
		OrderDate:       date.String(),
		ExpiryDate:      date.AddDays(expiryDays).String(),
		OrderType:       orderType,
		LastModified:    date.String(),
		Created:         date.String(),
		OrderDirection:  orderDirection,
		CounterPartyID:  *client.PartyID,
		OrderPDF:        *pdf,
		OrderLines:      lines,
		VentilationCode: ventilationCode,
		Paid:            true,
		IsSent:          true,
		Currency:        currency,
	}, nil
}

// JSON serializes the payload as UTF-8 JSON.
func (o *Order) JSON() ([]byte, error) {
	return json.Marshal(o)
}

// readArtifact loads and base64-encodes the rendered PDF.
func readArtifact(path string) (*OrderPDF, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrArtifactRead, err)
	}
	return &OrderPDF{
		FileName:    filepath.Base(path),
		FileContent: base64.StdEncoding.EncodeToString(content),
	}, nil
}
