package chunker

import (
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	t.Run("default values", func(t *testing.T) {
		s := New()
		if s.chunkSize != DefaultChunkSize {
			t.Errorf("expected chunkSize %d, got %d", DefaultChunkSize, s.chunkSize)
		}
	})

	t.Run("custom chunk size", func(t *testing.T) {
		s := New(WithChunkSize(50))
		if s.chunkSize != 50 {
			t.Errorf("expected chunkSize 50, got %d", s.chunkSize)
		}
	})

	t.Run("zero and negative ignored", func(t *testing.T) {
		s := New(WithChunkSize(0))
		if s.chunkSize != DefaultChunkSize {
			t.Errorf("expected default chunkSize, got %d", s.chunkSize)
		}
		s = New(WithChunkSize(-5))
		if s.chunkSize != DefaultChunkSize {
			t.Errorf("expected default chunkSize, got %d", s.chunkSize)
		}
	})
}

func TestSplitter_Split_Empty(t *testing.T) {
	s := New()

	for _, input := range []string{"", "   ", "\n\t \n"} {
		chunks := s.Split(input)
		if len(chunks) != 1 {
			t.Fatalf("input %q: expected exactly 1 chunk, got %d", input, len(chunks))
		}
		if chunks[0] != "" {
			t.Errorf("input %q: expected empty segment, got %q", input, chunks[0])
		}
	}
}

func TestSplitter_Split_SingleChunk(t *testing.T) {
	s := New(WithChunkSize(10))
	chunks := s.Split("the quick brown fox")

	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0] != "the quick brown fox" {
		t.Errorf("unexpected chunk content: %q", chunks[0])
	}
}

func TestSplitter_Split_WordBounds(t *testing.T) {
	s := New(WithChunkSize(3))
	chunks := s.Split("one two three four five six seven")

	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(chunks))
	}
	want := []string{"one two three", "four five six", "seven"}
	for i, w := range want {
		if chunks[i] != w {
			t.Errorf("chunk %d: expected %q, got %q", i, w, chunks[i])
		}
	}
}

func TestSplitter_Split_Reconstruction(t *testing.T) {
	// Chunks joined with spaces must reconstruct the whitespace-normalised
	// input, and chunk count must be ceil(words/chunkSize).
	sizes := []int{1, 2, 3, 7, 50}
	for _, size := range sizes {
		t.Run(fmt.Sprintf("size_%d", size), func(t *testing.T) {
			s := New(WithChunkSize(size))
			input := "Data   communication is the exchange\nof data between two devices via some form of transmission medium"
			words := strings.Fields(input)

			chunks := s.Split(input)

			wantCount := (len(words) + size - 1) / size
			if len(chunks) != wantCount {
				t.Errorf("expected %d chunks, got %d", wantCount, len(chunks))
			}
			for i, c := range chunks {
				n := len(strings.Fields(c))
				if n > size {
					t.Errorf("chunk %d has %d words, exceeds %d", i, n, size)
				}
			}
			if got := strings.Join(chunks, " "); got != strings.Join(words, " ") {
				t.Errorf("reconstruction mismatch:\n got %q\nwant %q", got, strings.Join(words, " "))
			}
		})
	}
}
