package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"invoices/internal/config"
	"invoices/internal/invoice"
	"invoices/internal/logger"
	"invoices/internal/pdf"
	"invoices/pkg/models"
)

var generateCmd = &cobra.Command{
	Use:   "generate [year] [sequence]",
	Short: "Generate one invoice: HTML document, PDF artifact and accounting payload",
	Long: `Assemble the invoice identified by year and sequence number from the
tables under the data directory, render it into the HTML template, convert
the document to PDF and write the accounting JSON payload next to it.

The data directory must contain clients.csv and businesses.csv at its root
and data.csv plus invoices.csv in the per-year subdirectory. Outputs land at
<data-dir>/<year>/<sequence>.html, .pdf and .json.`,
	Example: `  # Generate invoice 1 of 2024 from the current directory
  invoices generate 2024 1

  # Generate from a dedicated data directory with a custom template
  invoices generate 2024 1 --data-dir ~/bookkeeping --template letterhead.html

  # Use a different HTML-to-PDF converter binary
  invoices generate 2024 1 --converter weasyprint`,
	Args: cobra.ExactArgs(2),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringP("data-dir", "d", "", "Data directory (default: DATA_DIR env or current directory)")
	generateCmd.Flags().StringP("template", "t", "", "HTML template path (default: embedded template)")
	generateCmd.Flags().String("converter", "", "PDF converter binary (default: PDF_CONVERTER env or prince)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("generate")

	index, err := models.ParseInvoiceIndex(args[0], args[1])
	if err != nil {
		return err
	}

	cfg := config.Load()
	dataDir, _ := cmd.Flags().GetString("data-dir")
	if dataDir == "" {
		dataDir = cfg.DataDir
	}
	templatePath, _ := cmd.Flags().GetString("template")
	if templatePath == "" {
		templatePath = cfg.TemplatePath
	}
	converter, _ := cmd.Flags().GetString("converter")
	if converter == "" {
		converter = cfg.PDFConverter
	}

	var template []byte
	if templatePath != "" {
		template, err = os.ReadFile(templatePath)
		if err != nil {
			return fmt.Errorf("reading template: %w", err)
		}
	}

	log.Info().
		Stringer("index", index).
		Str("data_dir", dataDir).
		Str("converter", converter).
		Msg("Starting invoice generation")

	// Let an interrupt cancel the external converter.
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	generator := invoice.NewGenerator(pdf.NewPrince(converter), template)
	if err := generator.Generate(ctx, dataDir, index); err != nil {
		log.Error().Err(err).Stringer("index", index).Msg("Invoice generation failed")
		return err
	}

	log.Info().Stringer("index", index).Msg("Invoice generation completed")
	return nil
}
