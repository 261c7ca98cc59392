package engine

import "errors"

// Engine failures are surfaced as distinct, catchable conditions. The HTTP
// layer maps them to status codes; the engine itself has no user-facing text.
var (
	// ErrNotFound means the referenced subject, question, answer or attempt
	// has no matching record.
	ErrNotFound = errors.New("record not found")

	// ErrValidation covers malformed input: bad filters, non-positive
	// counts, unknown difficulty levels, empty or duplicated submissions.
	ErrValidation = errors.New("validation failed")

	// ErrQuestionNotInAttempt is returned when an answer targets a question
	// that is not part of the attempt's stored sequence.
	ErrQuestionNotInAttempt = errors.New("question not in this attempt")

	// ErrAnswerMismatch is returned when the selected answer does not belong
	// to the submitted question. Out-of-range selections fail instead of
	// being counted as incorrect, so scoring statistics stay clean.
	ErrAnswerMismatch = errors.New("answer does not belong to question")

	// ErrDuplicateAnswer is returned on re-submission for an already
	// answered question. Answers are write-once per attempt.
	ErrDuplicateAnswer = errors.New("question already answered")

	// ErrAlreadyCompleted is returned when mutating a finalized attempt.
	ErrAlreadyCompleted = errors.New("attempt already completed")

	// ErrEmptyPool means no questions match the requested filter, so an
	// attempt cannot be started. Callers render a "no questions available"
	// state rather than treating it as a fault.
	ErrEmptyPool = errors.New("no questions available for this filter")
)
