package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"invoices/internal/logger"
)

var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "invoices",
	Short: "Invoices CLI - generate invoices from tabular data sources",
	Long: `Invoices CLI assembles an invoice from the clients, businesses,
per-year invoice metadata and cost tables kept as delimited text files,
renders it into a styled HTML document, converts that document to PDF via an
external converter and writes the structured accounting payload alongside.`,
	Version: version,
}

func Execute() {
	log := logger.WithComponent("cmd")

	if err := rootCmd.Execute(); err != nil {
		log.Error().
			Err(err).
			Msg("Command execution failed")
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print version information")
}
