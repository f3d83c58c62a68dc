// Package textnorm turns loaded segments into a single bounded analysis text.
//
// Short documents pass through untouched. Long ones are split into
// overlapping chunks along paragraph, then line, then sentence, then word
// boundaries, and only the first two chunks travel downstream — the prompt
// budget always prefers the document's beginning.
package textnorm

import "strings"

const (
	DefaultThreshold    = 10000
	DefaultChunkSize    = 4000
	DefaultChunkOverlap = 200
)

// separators in boundary-priority order; "" is the hard-cut fallback.
var separators = []string{"\n\n", "\n", ". ", " ", ""}

// Normalizer bounds document text for downstream prompts.
type Normalizer struct {
	Threshold    int
	ChunkSize    int
	ChunkOverlap int
}

func NewNormalizer(threshold, chunkSize, chunkOverlap int) *Normalizer {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if chunkOverlap < 0 || chunkOverlap >= chunkSize {
		chunkOverlap = DefaultChunkOverlap
	}
	return &Normalizer{Threshold: threshold, ChunkSize: chunkSize, ChunkOverlap: chunkOverlap}
}

// Normalize joins segment texts with a blank line and, when the result
// exceeds the threshold, reduces it to the first two chunks. The returned
// bool reports whether chunking happened. Never fails.
func (n *Normalizer) Normalize(texts []string) (string, bool) {
	combined := strings.Join(texts, "\n\n")
	if len(combined) <= n.Threshold {
		return combined, false
	}

	chunks := n.SplitText(combined)
	if len(chunks) > 2 {
		chunks = chunks[:2]
	}
	return strings.Join(chunks, "\n\n"), true
}

// SplitText splits text into chunks of at most ChunkSize characters with
// ChunkOverlap characters carried between neighbors, preferring to break at
// the highest-priority boundary present.
func (n *Normalizer) SplitText(text string) []string {
	return n.split(text, separators)
}

func (n *Normalizer) split(text string, seps []string) []string {
	if len(text) <= n.ChunkSize {
		return []string{text}
	}

	sep := ""
	var deeper []string
	for i, s := range seps {
		if s == "" {
			break
		}
		if strings.Contains(text, s) {
			sep = s
			deeper = seps[i+1:]
			break
		}
	}
	if sep == "" {
		return n.hardSplit(text)
	}

	var splits []string
	for _, part := range strings.Split(text, sep) {
		if part == "" {
			continue
		}
		if len(part) > n.ChunkSize {
			splits = append(splits, n.split(part, deeper)...)
		} else {
			splits = append(splits, part)
		}
	}
	return n.merge(splits, sep)
}

// hardSplit cuts fixed windows when no boundary is available.
func (n *Normalizer) hardSplit(text string) []string {
	step := n.ChunkSize - n.ChunkOverlap
	var chunks []string
	for start := 0; ; start += step {
		end := start + n.ChunkSize
		if end >= len(text) {
			chunks = append(chunks, text[start:])
			return chunks
		}
		chunks = append(chunks, text[start:end])
	}
}

// merge greedily packs splits into chunks up to ChunkSize, retaining a
// trailing tail of up to ChunkOverlap characters as the start of the next
// chunk.
func (n *Normalizer) merge(splits []string, sep string) []string {
	joinedLen := func(parts []string) int {
		total := 0
		for i, p := range parts {
			if i > 0 {
				total += len(sep)
			}
			total += len(p)
		}
		return total
	}

	var chunks []string
	var current []string
	for _, s := range splits {
		if len(current) > 0 && joinedLen(append(current, s)) > n.ChunkSize {
			chunks = append(chunks, strings.Join(current, sep))

			// keep a tail within the overlap budget
			for len(current) > 0 && (joinedLen(current) > n.ChunkOverlap ||
				joinedLen(append(current, s)) > n.ChunkSize) {
				current = current[1:]
			}
		}
		current = append(current, s)
	}
	if len(current) > 0 {
		chunks = append(chunks, strings.Join(current, sep))
	}
	return chunks
}
