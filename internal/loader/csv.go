package loader

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// csvLoader reads a CSV file, one segment per row. Cells are joined with
// ", " so the row reads as a line of text downstream.
type csvLoader struct{}

func (l *csvLoader) Extract(_ context.Context, path string) ([]Segment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // ragged rows are fine; this is text, not a table

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	var segments []Segment
	for i, record := range records {
		text := strings.TrimSpace(strings.Join(record, ", "))
		if text == "" {
			continue
		}
		segments = append(segments, Segment{
			Text:     text,
			Metadata: map[string]string{"row": strconv.Itoa(i + 1)},
		})
	}
	return segments, nil
}
