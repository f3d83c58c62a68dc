// Package loader extracts text segments from document files.
//
// Each supported format has its own TextExtractable variant; the Dispatcher
// picks one by file extension. Unknown extensions route to a best-effort
// generic variant, so dispatch itself never fails — only reading can.
package loader

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aarshrpatel/document-analyzer-agent/constants"
	"github.com/aarshrpatel/document-analyzer-agent/internal/common"
)

// Segment is one unit of extracted text: a page, a row, or a section.
// Metadata is opaque to the rest of the pipeline.
type Segment struct {
	Text     string
	Metadata map[string]string
}

// TextExtractable is a format-specific loading strategy. New formats are
// added by introducing a variant, not by changing the dispatch flow.
type TextExtractable interface {
	Extract(ctx context.Context, path string) ([]Segment, error)
}

// Config for the Dispatcher.
type Config struct {
	Tesseract     string // binary name or absolute path; if empty -> "tesseract"
	TesseractLang string // default "eng"
	Logger        *slog.Logger
}

// Dispatcher selects a TextExtractable by file extension and runs it.
type Dispatcher struct {
	pdf         TextExtractable
	image       TextExtractable
	word        TextExtractable
	csv         TextExtractable
	spreadsheet TextExtractable
	generic     TextExtractable
	logger      *slog.Logger
}

func NewDispatcher(cfg Config) *Dispatcher {
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "eng"
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Dispatcher{
		pdf:         &pdfLoader{},
		image:       &imageLoader{runner: execRunner{}, bin: cfg.Tesseract, lang: cfg.TesseractLang},
		word:        &wordLoader{},
		csv:         &csvLoader{},
		spreadsheet: &excelLoader{},
		generic:     &genericLoader{},
		logger:      cfg.Logger,
	}
}

// ForPath returns the strategy for a path. Unknown extensions get the
// generic fallback; there is no "no strategy" answer.
func (d *Dispatcher) ForPath(path string) TextExtractable {
	switch constants.MapExtToFormat(filepath.Ext(path)) {
	case constants.PDF:
		return d.pdf
	case constants.IMAGE:
		return d.image
	case constants.WORD:
		return d.word
	case constants.CSV:
		return d.csv
	case constants.SPREADSHEET:
		return d.spreadsheet
	default:
		return d.generic
	}
}

// Load stats the file, dispatches on extension, and returns the extracted
// segments. Missing files, unreadable content, and documents that yield no
// text all surface as a LOAD failure; the invocation is over at that point.
func (d *Dispatcher) Load(ctx context.Context, path string) ([]Segment, error) {
	format := constants.MapExtToFormat(filepath.Ext(path))
	d.logger.Debug("loader.dispatch", "path", path, "format", string(format))

	if _, err := os.Stat(path); err != nil {
		return nil, common.NewLoadFailure(fmt.Sprintf("stat %s", path), err)
	}

	segments, err := d.ForPath(path).Extract(ctx, path)
	if err != nil {
		return nil, common.NewLoadFailure(fmt.Sprintf("extract %s (%s)", path, format), err)
	}
	if len(segments) == 0 {
		return nil, common.NewLoadFailure(fmt.Sprintf("document %s produced no text segments", path), nil)
	}

	d.logger.Info("loader.ok", "path", path, "format", string(format), "segments", len(segments))
	return segments, nil
}
