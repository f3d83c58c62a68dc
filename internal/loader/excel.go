package loader

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// excelLoader reads a workbook, one segment per non-empty row, across all
// sheets. Legacy .xls workbooks are not supported by the reader and surface
// as an open error.
type excelLoader struct{}

func (l *excelLoader) Extract(_ context.Context, path string) ([]Segment, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	var segments []Segment
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
		}
		for i, row := range rows {
			text := strings.TrimSpace(strings.Join(row, ", "))
			if text == "" {
				continue
			}
			segments = append(segments, Segment{
				Text:     text,
				Metadata: map[string]string{"sheet": sheet, "row": strconv.Itoa(i + 1)},
			})
		}
	}
	return segments, nil
}
