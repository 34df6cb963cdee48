// Package domain defines the core business entities for PrepPal.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: An uploaded study document with its chunks and embeddings
//   - RetrievalResult: A ranked chunk match with provenance
//   - QuizQuestion: A generated multiple-choice question
//   - StudyPlan: A day-by-day study schedule
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
