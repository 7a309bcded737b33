package quiz

import "math/rand"

// Difficulty levels as reported by the question source.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Question is a single multiple-choice trivia question. All text fields are
// plain, already HTML-entity-decoded strings; the question source owns the
// decoding. A Question is never mutated after it is loaded into an Engine.
type Question struct {
	Text             string
	CorrectAnswer    string
	IncorrectAnswers []string
	Category         string
	Difficulty       string
}

// PresentedQuestion pairs a Question with one concrete randomized answer
// ordering. CorrectIndex is the position of CorrectAnswer within
// ShuffledAnswers; display and grading must both use the same ordering.
type PresentedQuestion struct {
	Question
	ShuffledAnswers []string
	CorrectIndex    int
}

// present builds a PresentedQuestion by shuffling the combined answer set.
func present(q Question) *PresentedQuestion {
	answers := make([]string, 0, len(q.IncorrectAnswers)+1)
	answers = append(answers, q.IncorrectAnswers...)
	answers = append(answers, q.CorrectAnswer)

	// Track where the correct answer lands rather than searching for it
	// afterwards, so a distractor with identical text can never steal it.
	correct := len(answers) - 1
	rand.Shuffle(len(answers), func(i, j int) {
		answers[i], answers[j] = answers[j], answers[i]
		switch correct {
		case i:
			correct = j
		case j:
			correct = i
		}
	})

	return &PresentedQuestion{
		Question:        q,
		ShuffledAnswers: answers,
		CorrectIndex:    correct,
	}
}
