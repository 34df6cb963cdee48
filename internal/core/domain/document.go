package domain

import "time"

// Document represents an uploaded study document after chunking and embedding.
// A document is created atomically on upload and never updated in place;
// a re-upload produces a new document with a new ID.
type Document struct {
	// ID is the process-unique identifier, assigned at upload time.
	ID string

	// Filename is the caller-supplied source file name.
	Filename string

	// Subject is the study subject this document belongs to.
	Subject string

	// Chunks is the ordered sequence of text segments. Order reflects
	// source document order.
	Chunks []string

	// Embeddings holds one unit-normalised vector per chunk, positionally
	// aligned with Chunks. len(Embeddings) == len(Chunks) always.
	Embeddings [][]float32

	// Degraded is true when the embedding provider was unavailable at
	// upload time and the embeddings are random fallback vectors. Such a
	// document is stored and listable but unsearchable by meaning.
	Degraded bool

	// UploadedAt is when the document was created.
	UploadedAt time.Time
}

// ChunkCount returns the number of chunks in the document.
func (d *Document) ChunkCount() int {
	return len(d.Chunks)
}

// Info returns the listing metadata for the document, excluding chunk
// text and embeddings.
func (d *Document) Info() DocumentInfo {
	return DocumentInfo{
		ID:         d.ID,
		Filename:   d.Filename,
		Subject:    d.Subject,
		ChunkCount: len(d.Chunks),
		Degraded:   d.Degraded,
		UploadedAt: d.UploadedAt,
	}
}

// DocumentInfo is the embedding-free metadata view of a document,
// returned by listing operations.
type DocumentInfo struct {
	ID         string    `json:"doc_id"`
	Filename   string    `json:"filename"`
	Subject    string    `json:"subject"`
	ChunkCount int       `json:"num_chunks"`
	Degraded   bool      `json:"degraded"`
	UploadedAt time.Time `json:"upload_date"`
}

// UploadResult summarises a successful upload.
type UploadResult struct {
	DocumentID string `json:"doc_id"`
	Filename   string `json:"filename"`
	Subject    string `json:"subject"`
	ChunkCount int    `json:"num_chunks"`

	// Degraded signals that the embedding provider failed and the stored
	// embeddings are fallback vectors.
	Degraded bool `json:"degraded"`
}
