package trivia

import "math/rand/v2"

// QuestionType describes how a question's answers are structured.
type QuestionType string

const (
	// TypeMultiple is a four-option multiple choice question.
	TypeMultiple QuestionType = "multiple"

	// TypeBoolean is a True/False question.
	TypeBoolean QuestionType = "boolean"
)

// Difficulty is the source-assigned difficulty of a question.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Question is a single trivia question with its answer set and the
// player's current guess.
//
// A Question is created at ingestion time when a raw API record is mapped
// into the model; its identity and answer texts never change afterwards.
// The guess is the only mutable state and is written exclusively through
// SetGuess.
type Question struct {
	// ID is an opaque unique identifier assigned at ingestion.
	// The external source does not supply one.
	ID string

	Category   string
	Type       QuestionType
	Difficulty Difficulty

	// Prompt is the question text shown to the player.
	Prompt string

	// CorrectAnswer is the canonical correct answer text.
	CorrectAnswer string

	// IncorrectAnswers holds the distractor texts in source order.
	IncorrectAnswers []string

	guess    string
	shuffled []string
}

// AllAnswers returns every incorrect answer plus the correct answer in
// randomized order. The shuffle happens once per Question and is cached,
// so repeated calls return the same ordering; a refresh creates new
// Question values and therefore a new shuffle.
func (q *Question) AllAnswers() []string {
	if q.shuffled == nil {
		all := make([]string, 0, len(q.IncorrectAnswers)+1)
		all = append(all, q.IncorrectAnswers...)
		all = append(all, q.CorrectAnswer)
		rand.Shuffle(len(all), func(i, j int) {
			all[i], all[j] = all[j], all[i]
		})
		q.shuffled = all
	}
	return q.shuffled
}

// SetGuess replaces the current guess unconditionally. The text is not
// validated against the known answers.
func (q *Question) SetGuess(text string) {
	q.guess = text
}

// Guess returns the current guess, or "" if none has been made.
func (q *Question) Guess() string {
	return q.guess
}

// Answered reports whether a guess has been made.
func (q *Question) Answered() bool {
	return q.guess != ""
}

// IsCorrect reports whether the current guess equals the correct answer
// exactly (case-sensitive, no trimming). It is false while no guess has
// been made.
func (q *Question) IsCorrect() bool {
	return q.guess != "" && q.guess == q.CorrectAnswer
}
