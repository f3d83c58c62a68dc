// Package pipeline wires the stages end to end: load, normalize, extract,
// synthesize, and (for callers that opt in) rename. Each stage's output is
// the next stage's only input; the first failure stops the run.
package pipeline

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/aarshrpatel/document-analyzer-agent/internal/analyze"
	"github.com/aarshrpatel/document-analyzer-agent/internal/loader"
	"github.com/aarshrpatel/document-analyzer-agent/internal/rename"
	"github.com/aarshrpatel/document-analyzer-agent/internal/textnorm"
)

// Loader is the document-loading boundary the pipeline depends on.
// *loader.Dispatcher satisfies it.
type Loader interface {
	Load(ctx context.Context, path string) ([]loader.Segment, error)
}

// Result summarizes one analysis invocation.
type Result struct {
	Segments      int    // segments the loader produced
	Chunked       bool   // whether normalization had to chunk
	AnalyzedChars int    // characters actually sent to the extraction step
	ExtractedInfo string // raw JSON object from the extraction step
	Filename      string // sanitized candidate filename, extension attached
}

// Processor coordinates the sequential stages for a single document.
type Processor struct {
	logger     *slog.Logger
	loader     Loader
	normalizer *textnorm.Normalizer
	analyzer   *analyze.Analyzer
	renamer    *rename.Renamer
}

func NewProcessor(logger *slog.Logger, ld Loader, normalizer *textnorm.Normalizer, analyzer *analyze.Analyzer) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		logger:     logger,
		loader:     ld,
		normalizer: normalizer,
		analyzer:   analyzer,
		renamer:    rename.NewRenamer(logger),
	}
}

// Analyze runs the pipeline up to and including filename synthesis. The file
// on disk is not touched beyond reading it.
func (p *Processor) Analyze(ctx context.Context, path, namingConvention string) (Result, error) {
	start := time.Now()
	var res Result

	segments, err := p.loader.Load(ctx, path)
	if err != nil {
		p.logger.Error("pipeline.load.failed", "path", path, "err", err)
		return res, err
	}
	res.Segments = len(segments)
	p.logger.Info("pipeline.load.ok", "path", path, "segments", res.Segments)

	texts := make([]string, len(segments))
	for i, s := range segments {
		texts[i] = s.Text
	}
	text, chunked := p.normalizer.Normalize(texts)
	res.Chunked = chunked
	res.AnalyzedChars = len(text)
	if chunked {
		p.logger.Info("pipeline.normalize.chunked", "analyzed_chars", len(text))
	}

	info, err := p.analyzer.ExtractInfo(ctx, text, namingConvention)
	if err != nil {
		p.logger.Error("pipeline.extract.failed", "path", path, "err", err)
		return res, err
	}
	res.ExtractedInfo = info

	filename, err := p.analyzer.GenerateFilename(ctx, info, namingConvention, filepath.Ext(path))
	if err != nil {
		p.logger.Error("pipeline.filename.failed", "path", path, "err", err)
		return res, err
	}
	res.Filename = filename

	p.logger.Info("pipeline.analyze.ok",
		"path", path,
		"filename", filename,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return res, nil
}

// AnalyzeAndRename runs Analyze and then moves the file to the synthesized
// name, collision-safe, within its directory. It returns the resolved path.
// The CLI does not call this; it exists for library callers that opt in.
func (p *Processor) AnalyzeAndRename(ctx context.Context, path, namingConvention string) (Result, string, error) {
	res, err := p.Analyze(ctx, path, namingConvention)
	if err != nil {
		return res, "", err
	}

	resolved, err := p.renamer.Rename(path, res.Filename)
	if err != nil {
		p.logger.Error("pipeline.rename.failed", "path", path, "err", err)
		return res, "", err
	}
	return res, resolved, nil
}
