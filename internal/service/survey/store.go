package survey

import (
	"context"

	"github.com/google/uuid"
)

// NewQuestionnaire is the payload for appending one generated stage to a
// session. Exactly the fields matching the kind should be set.
type NewQuestionnaire struct {
	Kind      QuestionnaireKind
	Questions []Question
	Symptoms  []Symptom
	Variants  []string
	Report    *Report
}

// Transition is one atomic state-machine step. From guards the update: the
// store must apply the whole transition only if the session's status still
// equals From, and report ErrConflictingTransition otherwise. All non-zero
// optional fields apply within the same transaction.
type Transition struct {
	SessionID uuid.UUID
	From      Status
	To        Status

	// Intake, when set, is recorded on the session (intake submission only).
	Intake *Intake

	// AnswerQuestionnaire and Answers, when set, record the one-time answers
	// on that questionnaire.
	AnswerQuestionnaire uuid.UUID
	Answers             AnswerSet

	// Append, when set, adds the next generated stage.
	Append *NewQuestionnaire
}

// Store persists assessment sessions. Implementations must make
// ApplyTransition atomic and status-guarded so that concurrent submissions
// resolve to exactly one winner.
type Store interface {
	// CreateSession creates a session in intake_pending status with its
	// first questionnaire (the symptom list) already attached.
	CreateSession(ctx context.Context, ownerID *uuid.UUID, first NewQuestionnaire) (*Session, error)

	// GetSession loads a session with all questionnaires ordered by creation
	// time. Returns ErrNotFound for unknown ids.
	GetSession(ctx context.Context, id uuid.UUID) (*Session, error)

	// ApplyTransition applies t atomically and returns the updated session.
	// Returns ErrNotFound for unknown ids and ErrConflictingTransition when
	// the status guard fails.
	ApplyTransition(ctx context.Context, t Transition) (*Session, error)
}
