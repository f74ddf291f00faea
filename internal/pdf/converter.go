// Package pdf wraps the external document-to-PDF converter behind a narrow
// interface so the pipeline can be exercised with a fake in tests.
package pdf

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"invoices/internal/logger"
)

// ErrConversionFailed is returned when the converter binary exits non-zero
// or cannot be started.
var ErrConversionFailed = errors.New("PDF conversion failed")

// Converter turns a rendered HTML document into a PDF artifact, returning
// the artifact's path.
type Converter interface {
	Convert(ctx context.Context, path string) (string, error)
}

// DefaultBinary is the converter invoked when none is configured.
const DefaultBinary = "prince"

// Prince converts documents by shelling out to the Prince XML binary
// (or any drop-in replacement accepting `<input> -o <output>`).
type Prince struct {
	binary string
	log    zerolog.Logger
}

// NewPrince creates a converter using the given binary, falling back to
// DefaultBinary when empty.
func NewPrince(binary string) *Prince {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Prince{
		binary: binary,
		log:    logger.WithComponent("pdf"),
	}
}

// Convert runs the converter on path and returns the output path, which is
// the input path with its extension replaced by .pdf.
func (p *Prince) Convert(ctx context.Context, path string) (string, error) {
	output := withPDFExt(path)

	p.log.Debug().Str("binary", p.binary).Str("in", path).Str("out", output).Msg("converting to PDF")

	cmd := exec.CommandContext(ctx, p.binary, path, "-o", output)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrConversionFailed, p.binary, err)
	}

	return output, nil
}

// withPDFExt swaps the final extension for .pdf.
func withPDFExt(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".pdf"
}
