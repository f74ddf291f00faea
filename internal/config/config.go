package config

import (
	"os"

	"invoices/internal/logger"
)

type Config struct {
	// Invoice data directory: holds clients.csv, businesses.csv and the
	// per-year table directories. Generated artifacts are written here too.
	DataDir string

	// Optional path of an HTML template overriding the embedded one.
	TemplatePath string

	// Binary used to convert the rendered document to PDF.
	PDFConverter string

	// Logging Configuration
	LogLevel      string
	LogFormat     string
	LogTimeFormat string
	LogOutput     string
}

// Load reads the configuration from the environment. Every setting has a
// default, so loading never fails.
func Load() *Config {
	return &Config{
		DataDir:       getEnv("DATA_DIR", "."),
		TemplatePath:  getEnv("INVOICE_TEMPLATE", ""),
		PDFConverter:  getEnv("PDF_CONVERTER", "prince"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "console"),
		LogTimeFormat: getEnv("LOG_TIME_FORMAT", "2006-01-02T15:04:05Z07:00"),
		LogOutput:     getEnv("LOG_OUTPUT", "stderr"),
	}
}

// GetLoggerConfig returns a logger configuration from the main config
func (c *Config) GetLoggerConfig() logger.LogConfig {
	return logger.LogConfig{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		TimeFormat: c.LogTimeFormat,
		Output:     c.LogOutput,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
