package loader

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ledongthuc/pdf"
)

// pdfLoader extracts embedded text from a PDF, one segment per page.
type pdfLoader struct{}

func (l *pdfLoader) Extract(_ context.Context, path string) ([]Segment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat pdf: %w", err)
	}

	reader, err := pdf.NewReader(f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("read pdf: %w", err)
	}

	var segments []Segment
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// A single undecodable page does not sink the document.
			continue
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		segments = append(segments, Segment{
			Text:     text,
			Metadata: map[string]string{"page": strconv.Itoa(i)},
		})
	}
	return segments, nil
}
