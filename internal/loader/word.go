package loader

import (
	"archive/zip"
	"context"
	"encoding/xml"
	"fmt"
	"strings"
)

// wordLoader parses a .docx by reading word/document.xml from the ZIP
// archive, one segment per paragraph. Legacy .doc files are not ZIP
// containers; those fall back to a printable-text salvage of the raw bytes.
type wordLoader struct{}

func (l *wordLoader) Extract(ctx context.Context, path string) ([]Segment, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		// Not a ZIP container (legacy .doc or corrupt file): best effort.
		return (&genericLoader{}).Extract(ctx, path)
	}
	defer r.Close()

	var docFile *zip.File
	for _, f := range r.File {
		if f.Name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return nil, fmt.Errorf("word/document.xml not found in archive")
	}

	rc, err := docFile.Open()
	if err != nil {
		return nil, fmt.Errorf("open document.xml: %w", err)
	}
	defer rc.Close()

	decoder := xml.NewDecoder(rc)
	var segments []Segment
	var currentText strings.Builder
	var inParagraph bool

	for {
		tok, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "p" {
				inParagraph = true
				currentText.Reset()
			}
		case xml.CharData:
			if inParagraph {
				currentText.Write(t)
			}
		case xml.EndElement:
			if t.Name.Local == "p" && inParagraph {
				inParagraph = false
				text := strings.TrimSpace(currentText.String())
				if text == "" {
					continue
				}
				segments = append(segments, Segment{Text: text})
			}
		}
	}

	return segments, nil
}
