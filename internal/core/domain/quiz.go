package domain

// QuizQuestion is a single generated multiple-choice question.
type QuizQuestion struct {
	// Question is the question text.
	Question string `json:"question"`

	// Options are the answer choices, typically four.
	Options []string `json:"options"`

	// CorrectIndex is the index into Options of the correct answer.
	CorrectIndex int `json:"correct_index"`

	// Explanation justifies the correct answer.
	Explanation string `json:"explanation"`
}

// QuizRequest describes a quiz generation call.
type QuizRequest struct {
	// Topic focuses the quiz. Empty means the scoped materials at large.
	Topic string

	// DocumentIDs restricts context to the given documents.
	// Empty means every document in the store.
	DocumentIDs []string

	// NumQuestions is the number of questions to generate.
	NumQuestions int
}
