// Package chunker provides fixed-size word windowing of document text.
package chunker

import "strings"

// DefaultChunkSize is the default number of words per chunk.
const DefaultChunkSize = 300

// Splitter splits raw text into bounded-size, order-preserving segments.
// Windowing is purely word-count based; no sentence or semantic boundary
// awareness is applied.
type Splitter struct {
	chunkSize int
}

// Option configures the splitter.
type Option func(*Splitter)

// WithChunkSize sets the chunk size in words.
func WithChunkSize(size int) Option {
	return func(s *Splitter) {
		if size > 0 {
			s.chunkSize = size
		}
	}
}

// New creates a new splitter with the given options.
func New(opts ...Option) *Splitter {
	s := &Splitter{chunkSize: DefaultChunkSize}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ChunkSize returns the configured words-per-chunk limit.
func (s *Splitter) ChunkSize() int {
	return s.chunkSize
}

// Split partitions text into non-overlapping segments of at most ChunkSize
// words each, preserving word order. Joining the segments with single spaces
// reconstructs the whitespace-normalised input.
//
// Empty or all-whitespace input yields exactly one empty segment, so every
// document has at least one chunk and downstream indexing never sees an
// empty sequence. The final segment may be shorter than ChunkSize.
func (s *Splitter) Split(text string) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	chunks := make([]string, 0, (len(words)+s.chunkSize-1)/s.chunkSize)
	for start := 0; start < len(words); start += s.chunkSize {
		end := start + s.chunkSize
		if end > len(words) {
			end = len(words)
		}
		chunks = append(chunks, strings.Join(words[start:end], " "))
	}
	return chunks
}
