// Package render substitutes an assembled invoice into an HTML template.
//
// The template contract is small: <output data-field="..."> elements are
// replaced with the named formatted invoice field, and exactly one element
// carrying the "items" class receives one table row per line item, in ledger
// order. Substitution is a two-pass walk — collect and validate the shape
// first, mutate second — so a malformed template fails before anything is
// touched. The renderer does no file I/O; callers serialize the returned
// document themselves.
package render

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"invoices/pkg/models"
)

// DefaultTemplate is the invoice skeleton compiled into the binary. A
// different template may be supplied via configuration.
//
//go:embed assets/template.html
var DefaultTemplate []byte

// ErrTemplateShape is returned when the template violates the placeholder
// contract: a missing or duplicated items container, an output element
// without a data-field attribute, or a data-field the invoice does not
// provide.
var ErrTemplateShape = errors.New("template shape error")

// Document is a rendered, in-memory HTML document.
type Document struct {
	root *html.Node
}

// WriteTo serializes the document as HTML to w.
func (d *Document) WriteTo(w io.Writer) error {
	return html.Render(w, d.root)
}

// Render substitutes invoice into the template and returns the resulting
// document.
func Render(invoice *models.Invoice, template []byte) (*Document, error) {
	doc, err := html.Parse(bytes.NewReader(template))
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}

	fields := substitutions(invoice)

	// First pass: collect placeholders and containers, then validate the
	// shape before mutating anything.
	type slot struct {
		node  *html.Node
		value string
	}
	var slots []slot
	var containers []*html.Node
	var walkErr error
	walk(doc, func(n *html.Node) {
		if walkErr != nil || n.Type != html.ElementNode {
			return
		}
		if hasClass(n, "items") {
			containers = append(containers, n)
		}
		if n.Data != "output" {
			return
		}
		field, ok := attr(n, "data-field")
		if !ok {
			walkErr = fmt.Errorf("%w: output element without data-field attribute", ErrTemplateShape)
			return
		}
		value, ok := fields[field]
		if !ok {
			walkErr = fmt.Errorf("%w: unknown field %q", ErrTemplateShape, field)
			return
		}
		slots = append(slots, slot{node: n, value: value})
	})
	if walkErr != nil {
		return nil, walkErr
	}
	if len(containers) != 1 {
		return nil, fmt.Errorf("%w: found %d items containers, want exactly one",
			ErrTemplateShape, len(containers))
	}

	// Second pass: fill placeholders and append one row per line item.
	for _, s := range slots {
		s.node.AppendChild(textNode(s.value))
	}
	for _, item := range invoice.Items {
		containers[0].AppendChild(itemRow(item))
	}

	return &Document{root: doc}, nil
}

// substitutions maps template field names to their formatted values.
func substitutions(invoice *models.Invoice) map[string]string {
	client := invoice.Metadata.Client
	business := invoice.Metadata.Business
	return map[string]string{
		"total":             invoice.Total().String(),
		"invoice-date":      invoice.Metadata.Date.String(),
		"invoice-index":     invoice.Index.String(),
		"client-name":       client.Name,
		"client-street":     client.Street,
		"client-city":       client.City,
		"client-country":    client.Country,
		"client-vat":        client.VAT,
		"client-vat-policy": client.VATPolicy,
		"business-name":     business.Name,
		"business-street":   business.Street,
		"business-city":     business.City,
		"business-country":  business.Country,
		"business-vat":      business.VAT,
		"business-bank":     business.Bank,
		"business-iban":     business.IBAN,
		"business-bic":      business.BIC,
	}
}

// itemRow builds <tr><td>description</td><td class="num">amount</td></tr>.
func itemRow(item models.LineItem) *html.Node {
	row := element(atom.Tr)

	description := element(atom.Td)
	description.AppendChild(textNode(item.Description))
	row.AppendChild(description)

	amount := element(atom.Td, html.Attribute{Key: "class", Val: "num"})
	amount.AppendChild(textNode(item.Amount.String()))
	row.AppendChild(amount)

	return row
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

func textNode(text string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: text}
}

// walk visits every node of the tree in document order.
func walk(n *html.Node, visit func(*html.Node)) {
	visit(n)
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		walk(child, visit)
	}
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func hasClass(n *html.Node, class string) bool {
	classes, ok := attr(n, "class")
	if !ok {
		return false
	}
	for _, c := range strings.Fields(classes) {
		if c == class {
			return true
		}
	}
	return false
}
