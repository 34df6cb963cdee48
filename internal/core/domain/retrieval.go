package domain

// ChunkRef traces a retrieval match back to its source chunk.
// It is ephemeral and remains valid for as long as the document exists.
type ChunkRef struct {
	// DocumentID is the owning document.
	DocumentID string `json:"doc_id"`

	// Filename is the owning document's file name, for display.
	Filename string `json:"filename"`

	// ChunkIndex is the position of the chunk within the document.
	ChunkIndex int `json:"chunk_index"`
}

// RetrievalResult is a single ranked match from the retriever.
type RetrievalResult struct {
	// Text is the matched chunk content.
	Text string `json:"text"`

	// Score is the raw cosine similarity against the query vector,
	// in [-1, 1].
	Score float64 `json:"score"`

	// Source identifies where the chunk came from.
	Source ChunkRef `json:"source"`
}

// RetrievalOptions configures a retrieval call.
type RetrievalOptions struct {
	// DocumentIDs restricts the candidate set to the given documents.
	// Empty means every document in the store. Unknown IDs contribute
	// no chunks.
	DocumentIDs []string

	// TopK is the maximum number of results to return.
	TopK int
}
