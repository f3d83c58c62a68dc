package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/aarshrpatel/document-analyzer-agent/internal/analyze"
	"github.com/aarshrpatel/document-analyzer-agent/internal/common"
	"github.com/aarshrpatel/document-analyzer-agent/internal/llm/anthropic"
	"github.com/aarshrpatel/document-analyzer-agent/internal/loader"
	"github.com/aarshrpatel/document-analyzer-agent/internal/pipeline"
	"github.com/aarshrpatel/document-analyzer-agent/internal/textnorm"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	if len(os.Args) != 3 {
		printError("Usage: document-analyzer <file_path> <naming_convention>\n")
		os.Exit(2)
	}
	filePath := os.Args[1]
	namingConvention := os.Args[2]

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	// Configuration is checked before any I/O happens.
	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}

	svc := anthropic.NewClient(anthropic.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		MaxTokens:   cfg.LLM.MaxTokens,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)

	dispatcher := loader.NewDispatcher(loader.Config{
		Tesseract:     cfg.OCR.Tesseract,
		TesseractLang: cfg.OCR.TesseractLang,
		Logger:        logger,
	})
	normalizer := textnorm.NewNormalizer(cfg.Normalize.Threshold, cfg.Normalize.ChunkSize, cfg.Normalize.ChunkOverlap)
	analyzer := analyze.NewAnalyzer(svc, logger)
	processor := pipeline.NewProcessor(logger, dispatcher, normalizer, analyzer)

	ctx := context.Background()

	fmt.Printf("Loading document: %s\n", filePath)
	res, err := processor.Analyze(ctx, filePath, namingConvention)
	if res.Segments > 0 {
		fmt.Printf("Successfully loaded document with %d segment(s)\n", res.Segments)
	}
	if res.Chunked {
		fmt.Println("Document is large, splitting into chunks...")
		fmt.Printf("Analyzing first %d characters...\n", res.AnalyzedChars)
	}
	if err != nil {
		printError("Error (%s stage): %v\n", common.StageOf(err), err)
		os.Exit(1)
	}

	fmt.Printf("Extracted information: %s\n", res.ExtractedInfo)
	fmt.Printf("Generated new filename: %s\n", res.Filename)
	// The rename itself is a library operation; this entry point only suggests.
}
