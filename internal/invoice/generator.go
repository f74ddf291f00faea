// Package invoice orchestrates one invoice run: assemble the invoice from
// the source tables, render it into the HTML template, convert the document
// to PDF through the external converter and write the accounting payload
// next to it.
//
// The steps run strictly in order and the first failure aborts the run;
// rendering and export only happen after a fully successful assembly, so a
// failed run never leaves a renderable partial artifact behind.
package invoice

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"invoices/internal/assemble"
	"invoices/internal/export"
	"invoices/internal/logger"
	"invoices/internal/pdf"
	"invoices/internal/render"
	"invoices/pkg/models"
)

// Generator runs the full pipeline for single invoices.
type Generator struct {
	assembler *assemble.Assembler
	converter pdf.Converter
	template  []byte
	log       zerolog.Logger
}

// NewGenerator creates a Generator using the given converter and HTML
// template source. A nil template selects render.DefaultTemplate.
func NewGenerator(converter pdf.Converter, template []byte) *Generator {
	if template == nil {
		template = render.DefaultTemplate
	}
	return &Generator{
		assembler: assemble.New(),
		converter: converter,
		template:  template,
		log:       logger.WithComponent("generator"),
	}
}

// Generate produces the rendered document, the PDF artifact and the
// accounting payload for the invoice identified by index, with all inputs
// and outputs under dir.
func (g *Generator) Generate(ctx context.Context, dir string, index models.InvoiceIndex) error {
	inv, err := g.assembler.Assemble(dir, index)
	if err != nil {
		return err
	}

	doc, err := render.Render(inv, g.template)
	if err != nil {
		return err
	}

	htmlPath := filepath.Join(dir, filepath.FromSlash(inv.Index.Filename()))
	if err := writeDocument(doc, htmlPath); err != nil {
		return err
	}
	g.log.Info().Str("path", htmlPath).Msg("rendered document written")

	pdfPath, err := g.converter.Convert(ctx, htmlPath)
	if err != nil {
		return err
	}
	g.log.Info().Str("path", pdfPath).Msg("PDF artifact created")

	order, err := export.Export(inv, pdfPath)
	if err != nil {
		return err
	}
	payload, err := order.JSON()
	if err != nil {
		return fmt.Errorf("serializing accounting payload: %w", err)
	}

	jsonPath := strings.TrimSuffix(htmlPath, filepath.Ext(htmlPath)) + ".json"
	if err := os.WriteFile(jsonPath, payload, 0o644); err != nil {
		return fmt.Errorf("writing accounting payload: %w", err)
	}
	g.log.Info().Str("path", jsonPath).Msg("accounting payload written")

	return nil
}

// writeDocument serializes the rendered document to path, creating the
// per-year directory if needed.
func writeDocument(doc *render.Document, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating rendered document: %w", err)
	}
	if err := doc.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("writing rendered document: %w", err)
	}
	return f.Close()
}
