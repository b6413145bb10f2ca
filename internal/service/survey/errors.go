package survey

import "errors"

var (
	ErrNotFound              = errors.New("assessment session not found")
	ErrInvalidState          = errors.New("operation not allowed in the session's current state")
	ErrEmptyIntake           = errors.New("intake must contain a complaint or at least one symptom")
	ErrIncompleteAnswers     = errors.New("answers do not match the pending stage's questions")
	ErrConflictingTransition = errors.New("a concurrent submission already advanced this session")
	ErrMalformedResponse     = errors.New("generated content failed validation")
	ErrGenerationFailed      = errors.New("could not generate a usable questionnaire stage")
)
