package survey

import (
	"time"

	"github.com/google/uuid"
)

// ---------------------------------------------------------------------------
// Session status
// ---------------------------------------------------------------------------

// Status is the assessment session's position in the questionnaire flow.
// Transitions are strictly forward; see state.go for the transition table.
type Status string

const (
	StatusIntakePending Status = "intake_pending"
	StatusStage1Pending Status = "stage1_pending"
	StatusStage2Pending Status = "stage2_pending"
	StatusStage3Pending Status = "stage3_pending"
	StatusFinished      Status = "finished"
)

// rank orders statuses along the single forward path.
var statusRank = map[Status]int{
	StatusIntakePending: 0,
	StatusStage1Pending: 1,
	StatusStage2Pending: 2,
	StatusStage3Pending: 3,
	StatusFinished:      4,
}

func (s Status) Valid() bool {
	_, ok := statusRank[s]
	return ok
}

// Before reports whether s precedes other on the forward path.
func (s Status) Before(other Status) bool {
	return statusRank[s] < statusRank[other]
}

func (s Status) Terminal() bool { return s == StatusFinished }

// Values lists all recognized statuses; used by the ent schema.
func (Status) Values() []string {
	return []string{
		string(StatusIntakePending),
		string(StatusStage1Pending),
		string(StatusStage2Pending),
		string(StatusStage3Pending),
		string(StatusFinished),
	}
}

// ---------------------------------------------------------------------------
// Questionnaire
// ---------------------------------------------------------------------------

// QuestionnaireKind identifies what one generated stage holds.
type QuestionnaireKind string

const (
	KindSymptomList QuestionnaireKind = "symptom_list"
	KindVariants    QuestionnaireKind = "variants"
	KindStage1      QuestionnaireKind = "stage_1"
	KindStage2      QuestionnaireKind = "stage_2"
	KindStage3      QuestionnaireKind = "stage_3"
	KindResult      QuestionnaireKind = "result"
)

// Values lists all recognized kinds; used by the ent schema.
func (QuestionnaireKind) Values() []string {
	return []string{
		string(KindSymptomList),
		string(KindVariants),
		string(KindStage1),
		string(KindStage2),
		string(KindStage3),
		string(KindResult),
	}
}

// QuestionKind is the answer modality of a single question.
type QuestionKind string

const (
	QuestionFreeText     QuestionKind = "free_text"
	QuestionSingleChoice QuestionKind = "single_choice"
	QuestionScale        QuestionKind = "scale_1_10"
)

const (
	ScaleMin = 1
	ScaleMax = 10
)

// Question is one item inside a generated questionnaire stage.
// Options is non-empty exactly when Kind is QuestionSingleChoice.
type Question struct {
	ID      string       `json:"id"`
	Prompt  string       `json:"prompt"`
	Kind    QuestionKind `json:"kind"`
	Options []string     `json:"options,omitempty"`
}

// Symptom is one entry of the symptom catalog offered at intake.
type Symptom struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Clarifications []string `json:"clarifications,omitempty"`
}

// ---------------------------------------------------------------------------
// Intake
// ---------------------------------------------------------------------------

// IntakeSymptom is the user's selection for one catalog symptom.
type IntakeSymptom struct {
	Clarifications []string `json:"clarifications,omitempty"`
	Details        string   `json:"details,omitempty"`
}

// Intake is the user's initial complaint and/or structured symptom selection.
// Immutable once the intake-submission transition has been applied.
type Intake struct {
	Complaint string                   `json:"complaint,omitempty"`
	Symptoms  map[string]IntakeSymptom `json:"symptoms,omitempty"`
}

func (i Intake) Empty() bool {
	return i.Complaint == "" && len(i.Symptoms) == 0
}

// ---------------------------------------------------------------------------
// Answers
// ---------------------------------------------------------------------------

// Answer is a tagged union keyed by the question's kind: exactly one field is
// set. Text for FREE_TEXT, Choice for SINGLE_CHOICE, Scale for SCALE_1_10.
type Answer struct {
	Text   *string `json:"text,omitempty"`
	Choice *string `json:"choice,omitempty"`
	Scale  *int    `json:"scale,omitempty"`
}

// Value returns the answer's payload for prompt-building and serialization.
func (a Answer) Value() any {
	switch {
	case a.Text != nil:
		return *a.Text
	case a.Choice != nil:
		return *a.Choice
	case a.Scale != nil:
		return *a.Scale
	}
	return nil
}

// AnswerSet maps question id to the submitted answer for one stage.
type AnswerSet map[string]Answer

// ---------------------------------------------------------------------------
// Report
// ---------------------------------------------------------------------------

// RecommendedTest is one entry of the report's ordered test list.
type RecommendedTest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Report is the RESULT questionnaire's payload. Generated exactly once per
// session and immutable thereafter. Degraded marks the placeholder substituted
// when the oracle replied with unusable content.
type Report struct {
	PersonalPlan      string            `json:"personal_plan"`
	ClinicianPrep     string            `json:"clinician_prep"`
	SpecialistSummary string            `json:"specialist_summary"`
	RecommendedTests  []RecommendedTest `json:"recommended_tests"`
	Degraded          bool              `json:"degraded,omitempty"`
}

// ---------------------------------------------------------------------------
// Aggregates
// ---------------------------------------------------------------------------

// Questionnaire is one generated stage belonging to a session. Records are
// append-only: never deleted, never reordered. At most one per kind exists
// for a given session. The payload fields are kind-specific.
type Questionnaire struct {
	ID        uuid.UUID         `json:"id"`
	SessionID uuid.UUID         `json:"session_id"`
	Kind      QuestionnaireKind `json:"kind"`
	Questions []Question        `json:"questions,omitempty"`
	Symptoms  []Symptom         `json:"symptoms,omitempty"`
	Variants  []string          `json:"variants,omitempty"`
	Report    *Report           `json:"report,omitempty"`
	Answers   AnswerSet         `json:"answers,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

// Answered reports whether this stage has received its one-time answers.
func (q *Questionnaire) Answered() bool { return q.Answers != nil }

// Session is one assessment run, from intake to final report.
// Questionnaires are ordered by creation time.
type Session struct {
	ID             uuid.UUID       `json:"id"`
	OwnerID        *uuid.UUID      `json:"owner_id,omitempty"`
	Status         Status          `json:"status"`
	Intake         *Intake         `json:"intake,omitempty"`
	Questionnaires []Questionnaire `json:"questionnaires"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// Pending returns the questionnaire the user must complete next: the most
// recently created one with no answers and kind other than result. Nil when
// every stage is answered or the session holds no questionnaires yet.
func (s *Session) Pending() *Questionnaire {
	for i := len(s.Questionnaires) - 1; i >= 0; i-- {
		q := &s.Questionnaires[i]
		if q.Kind != KindResult && !q.Answered() {
			return q
		}
	}
	return nil
}

// ByKind returns the session's questionnaire of the given kind, or nil.
func (s *Session) ByKind(kind QuestionnaireKind) *Questionnaire {
	for i := range s.Questionnaires {
		if s.Questionnaires[i].Kind == kind {
			return &s.Questionnaires[i]
		}
	}
	return nil
}

// Report returns the final report when the session has one.
func (s *Session) Report() *Report {
	if q := s.ByKind(KindResult); q != nil {
		return q.Report
	}
	return nil
}

// ---------------------------------------------------------------------------
// Operation results
// ---------------------------------------------------------------------------

// StartResult is returned by Start: the new session id plus the symptom
// catalog the user picks from.
type StartResult struct {
	SessionID uuid.UUID `json:"session_id"`
	Symptoms  []Symptom `json:"symptoms"`
}

// SubmitResult is returned by SubmitAnswers: the session's new status plus
// either the next stage's questions or the final report.
// AlreadyFinished marks the no-op acknowledgment for finished sessions.
type SubmitResult struct {
	NextStatus      Status     `json:"next_status"`
	Questions       []Question `json:"questions,omitempty"`
	Report          *Report    `json:"report,omitempty"`
	AlreadyFinished bool       `json:"already_finished,omitempty"`
}
