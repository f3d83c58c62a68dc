package loader

import (
	"context"
	"fmt"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"
)

// genericLoader is the fallback for extensions without a dedicated variant.
// Valid UTF-8 content passes through as one segment; binary content gets a
// printable-run salvage. Only an unreadable file is an error.
type genericLoader struct{}

func (l *genericLoader) Extract(_ context.Context, path string) ([]Segment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var text string
	if utf8.Valid(data) {
		text = strings.TrimSpace(string(data))
	} else {
		text = salvagePrintable(data)
	}
	if text == "" {
		return nil, nil
	}
	return []Segment{{Text: text}}, nil
}

// salvagePrintable keeps runs of printable characters of at least minRun
// bytes, joined by newlines. It is a crude strings(1) over file content.
func salvagePrintable(data []byte) string {
	const minRun = 4

	var out []string
	var run strings.Builder
	flush := func() {
		if run.Len() >= minRun {
			out = append(out, run.String())
		}
		run.Reset()
	}

	for _, b := range data {
		r := rune(b)
		if r < utf8.RuneSelf && (unicode.IsPrint(r) || r == '\t') {
			run.WriteByte(b)
		} else {
			flush()
		}
	}
	flush()

	return strings.TrimSpace(strings.Join(out, "\n"))
}
