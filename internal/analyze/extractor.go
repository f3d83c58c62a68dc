// Package analyze holds the two generative steps of the pipeline: structured
// information extraction and filename synthesis. Both go through the same
// injected llm.GenerativeTextService.
package analyze

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aarshrpatel/document-analyzer-agent/internal/common"
	"github.com/aarshrpatel/document-analyzer-agent/internal/llm"
)

const extractPromptTemplate = `You are an expert document analyzer. The following is a document that needs information extraction.

DOCUMENT TEXT:
%s

NAMING CONVENTION REQUIRED:
%s

Based on the naming convention, extract the specific information from the document.
Only include information that is explicitly stated in the document.
Return your result as a JSON object with keys matching the requirements in the naming convention.
Return ONLY the JSON object, no explanations or other text.`

// Analyzer runs the generative steps against an injected text service.
type Analyzer struct {
	svc llm.GenerativeTextService
	log *slog.Logger
}

func NewAnalyzer(svc llm.GenerativeTextService, logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{svc: svc, log: logger}
}

// ExtractInfo asks the service for a JSON object whose keys follow the
// naming convention, using only information present in the text. The raw
// (fence-stripped) response is returned after being validated as a JSON
// object; anything else is an EXTRACTION failure.
func (a *Analyzer) ExtractInfo(ctx context.Context, text, namingConvention string) (string, error) {
	start := time.Now()
	a.log.Info("analyze.extract.start",
		"text_len", len(text),
		"convention_len", len(namingConvention),
	)

	prompt := fmt.Sprintf(extractPromptTemplate, text, namingConvention)
	out, err := a.svc.Complete(ctx, prompt)
	if err != nil {
		return "", common.NewExtractionFailure("generative call failed", err)
	}

	out = stripCodeFence(out)
	if out == "" {
		return "", common.NewExtractionFailure("generative service returned empty output", nil)
	}
	if err := ValidateExtractedInfo([]byte(out)); err != nil {
		return "", common.NewExtractionFailure("extracted info is not a JSON object", err)
	}

	a.log.Info("analyze.extract.ok",
		"result_len", len(out),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, nil
}

// stripCodeFence unwraps a markdown-fenced response. Models asked for bare
// JSON still fence it often enough that we tolerate it here.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		first := strings.TrimSpace(s[:i])
		if first == "" || first == "json" {
			s = s[i+1:]
		}
	}
	if i := strings.LastIndex(s, "```"); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
