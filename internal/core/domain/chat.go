package domain

import "time"

// Answer is the response to a chat query, grounded in retrieved material.
type Answer struct {
	// Text is the natural-language answer.
	Text string `json:"answer"`

	// Sources are the retrieval results the answer was grounded on.
	// Empty when no material matched.
	Sources []RetrievalResult `json:"sources"`

	// Timestamp is when the answer was produced.
	Timestamp time.Time `json:"timestamp"`
}

// ChatEntry records one query/answer exchange in the session history.
type ChatEntry struct {
	Timestamp time.Time         `json:"timestamp"`
	Query     string            `json:"query"`
	Answer    string            `json:"answer"`
	Sources   []RetrievalResult `json:"sources"`
}
