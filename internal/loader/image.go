package loader

import (
	"context"
	"fmt"
	"strings"
)

// imageLoader runs tesseract on an image and returns the recognized text
// as a single segment.
type imageLoader struct {
	runner Runner
	bin    string
	lang   string
}

func (l *imageLoader) Extract(ctx context.Context, path string) ([]Segment, error) {
	// tesseract <file> stdout -l <lang>
	out, errb, err := l.runner.Run(ctx, l.bin, path, "stdout", "-l", l.lang)
	if err != nil {
		return nil, fmt.Errorf("tesseract: %w (%s)", err, truncate(string(errb), 512))
	}

	text := strings.TrimSpace(string(out))
	if text == "" {
		return nil, nil
	}
	return []Segment{{
		Text:     text,
		Metadata: map[string]string{"method": "image-ocr", "lang": l.lang},
	}}, nil
}
