package analyze

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aarshrpatel/document-analyzer-agent/internal/common"
)

const filenamePromptTemplate = `Given the following extracted information from a document:
%s

And this naming convention:
%s

Generate a filename that follows the naming convention using the extracted information.
Only return the filename itself, no explanations or other text.
Do not include a file extension in your response.`

// reservedChars are replaced with '_' so the candidate is safe on every
// mainstream filesystem.
const reservedChars = `<>:"/\|?*`

// GenerateFilename asks the service for a filename stem satisfying the
// naming convention, sanitizes it, and reattaches the original extension
// (leading dot included). A stem that sanitizes to nothing is a NAMING
// failure — the pipeline never emits a filename that is only an extension.
func (a *Analyzer) GenerateFilename(ctx context.Context, extractedInfo, namingConvention, originalExt string) (string, error) {
	start := time.Now()
	a.log.Info("analyze.filename.start", "ext", originalExt)

	prompt := fmt.Sprintf(filenamePromptTemplate, extractedInfo, namingConvention)
	out, err := a.svc.Complete(ctx, prompt)
	if err != nil {
		return "", common.NewNamingFailure("generative call failed", err)
	}

	stem := SanitizeFilename(out)
	if stem == "" {
		return "", common.NewNamingFailure("synthesized filename is empty after sanitization", nil)
	}

	filename := stem + originalExt
	a.log.Info("analyze.filename.ok",
		"filename", filename,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return filename, nil
}

// SanitizeFilename applies the post-processing rules in order: trim outer
// whitespace, drop embedded CR/LF, replace filesystem-reserved characters
// with '_'.
func SanitizeFilename(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ReplaceAll(name, "\n", "")
	name = strings.ReplaceAll(name, "\r", "")
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(reservedChars, r) {
			return '_'
		}
		return r
	}, name)
}
