package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aarshrpatel/document-analyzer-agent/internal/analyze"
	"github.com/aarshrpatel/document-analyzer-agent/internal/common"
	"github.com/aarshrpatel/document-analyzer-agent/internal/loader"
	"github.com/aarshrpatel/document-analyzer-agent/internal/textnorm"
)

// stubLoader returns canned segments or an error.
type stubLoader struct {
	segments []loader.Segment
	err      error
}

func (s *stubLoader) Load(context.Context, string) ([]loader.Segment, error) {
	return s.segments, s.err
}

// scriptedService replays one completion per call.
type scriptedService struct {
	responses []string
	calls     int
}

func (s *scriptedService) Complete(context.Context, string) (string, error) {
	if s.calls >= len(s.responses) {
		panic("unexpected extra completion call")
	}
	out := s.responses[s.calls]
	s.calls++
	return out, nil
}

func invoiceSegments() []loader.Segment {
	return []loader.Segment{
		{Text: "ACME Corp"},
		{Text: "Invoice Number: 4471, Date: 2024-03-01"},
		{Text: "Total: 99.00 USD"},
	}
}

func TestAnalyzeEndToEnd(t *testing.T) {
	svc := &scriptedService{responses: []string{
		`{"invoice_number":"4471","date":"2024-03-01"}`,
		"4471_2024-03-01",
	}}
	p := NewProcessor(nil,
		&stubLoader{segments: invoiceSegments()},
		textnorm.NewNormalizer(0, 0, 0),
		analyze.NewAnalyzer(svc, nil),
	)

	res, err := p.Analyze(context.Background(), "/docs/invoice.pdf", "{invoice_number}_{date}")
	require.NoError(t, err)

	assert.Equal(t, 3, res.Segments)
	assert.False(t, res.Chunked)
	assert.Equal(t, `{"invoice_number":"4471","date":"2024-03-01"}`, res.ExtractedInfo)
	assert.Equal(t, "4471_2024-03-01.pdf", res.Filename)
	assert.Equal(t, 2, svc.calls)
}

func TestAnalyzeLoadFailureSkipsService(t *testing.T) {
	svc := &scriptedService{}
	p := NewProcessor(nil,
		&stubLoader{err: common.NewLoadFailure("no such file", os.ErrNotExist)},
		textnorm.NewNormalizer(0, 0, 0),
		analyze.NewAnalyzer(svc, nil),
	)

	_, err := p.Analyze(context.Background(), "/docs/missing.pdf", "{date}")
	require.Error(t, err)
	assert.True(t, common.IsLoadFailure(err))
	assert.Equal(t, 0, svc.calls)
}

func TestAnalyzeChunksLargeDocument(t *testing.T) {
	large := []loader.Segment{
		{Text: strings.Repeat("alpha paragraph\n\n", 500)},
		{Text: strings.Repeat("omega paragraph\n\n", 500)},
	}
	svc := &scriptedService{responses: []string{`{"k":"v"}`, "name"}}
	p := NewProcessor(nil,
		&stubLoader{segments: large},
		textnorm.NewNormalizer(0, 0, 0),
		analyze.NewAnalyzer(svc, nil),
	)

	res, err := p.Analyze(context.Background(), "/docs/big.txt", "{k}")
	require.NoError(t, err)
	assert.True(t, res.Chunked)
	assert.LessOrEqual(t, res.AnalyzedChars, 2*textnorm.DefaultChunkSize+2)
}

func TestAnalyzeNamingFailureStopsPipeline(t *testing.T) {
	svc := &scriptedService{responses: []string{`{"k":"v"}`, "  \n "}}
	p := NewProcessor(nil,
		&stubLoader{segments: invoiceSegments()},
		textnorm.NewNormalizer(0, 0, 0),
		analyze.NewAnalyzer(svc, nil),
	)

	_, err := p.Analyze(context.Background(), "/docs/invoice.pdf", "{k}")
	require.Error(t, err)
	assert.True(t, common.IsNamingFailure(err))
}

func TestAnalyzeAndRenameResolvesCollision(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "scan.txt")
	require.NoError(t, os.WriteFile(src, []byte("report body"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "report.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "report_1.txt"), []byte("x"), 0o644))

	svc := &scriptedService{responses: []string{`{"title":"report"}`, "report"}}
	p := NewProcessor(nil,
		&stubLoader{segments: []loader.Segment{{Text: "report body"}}},
		textnorm.NewNormalizer(0, 0, 0),
		analyze.NewAnalyzer(svc, nil),
	)

	res, resolved, err := p.AnalyzeAndRename(context.Background(), src, "{title}")
	require.NoError(t, err)
	assert.Equal(t, "report.txt", res.Filename)
	assert.Equal(t, filepath.Join(dir, "report_2.txt"), resolved)

	assert.NoFileExists(t, src)
	assert.FileExists(t, resolved)
}
