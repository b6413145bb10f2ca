// Package survey implements the adaptive assessment flow: a session-scoped
// state machine that walks a user from intake through generated questionnaire
// stages to a final report.
package survey

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/opora-health/opora_backend/pkg/oracle"
)

// ---------------------------------------------------------------------------
// Interfaces
// ---------------------------------------------------------------------------

// Oracle is the generation backend the flow consumes. Satisfied by
// *oracle.Client; narrowed to an interface so tests can script responses.
type Oracle interface {
	SymptomCatalog(ctx context.Context) ([]oracle.Symptom, error)
	Variants(ctx context.Context, complaint string) ([]string, error)
	StageQuestions(ctx context.Context, stage int, pc oracle.PromptContext) ([]oracle.Question, error)
	FollowupQuestions(ctx context.Context, pc oracle.PromptContext) ([]oracle.Question, error)
	GenerateReport(ctx context.Context, pc oracle.PromptContext) (oracle.Report, error)
}

type Service interface {
	// Start creates a session and returns the symptom catalog to pick from.
	// Never fails on oracle trouble; the built-in catalog covers outages.
	Start(ctx context.Context, ownerID *uuid.UUID) (*StartResult, error)

	// PreviewVariants rephrases an open-ended complaint into candidate
	// first-person self-descriptions. Session-independent.
	PreviewVariants(ctx context.Context, complaint string) ([]string, error)

	// SubmitIntake records the complaint/symptom selection and advances the
	// session to its first question stage. Valid only while the session is
	// awaiting intake; any later status is rejected.
	SubmitIntake(ctx context.Context, sessionID uuid.UUID, intake Intake) (*SubmitResult, error)

	// SubmitAnswers records answers for the pending stage and advances the
	// session, returning either the next stage's questions or the report.
	SubmitAnswers(ctx context.Context, sessionID uuid.UUID, answers AnswerSet) (*SubmitResult, error)

	// GetSession returns the full session with all questionnaires.
	GetSession(ctx context.Context, id uuid.UUID) (*Session, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type service struct {
	store  Store
	oracle Oracle
}

func New(store Store, o Oracle) Service {
	return &service{store: store, oracle: o}
}

func (s *service) Start(ctx context.Context, ownerID *uuid.UUID) (*StartResult, error) {
	symptoms := s.fetchCatalog(ctx)

	sess, err := s.store.CreateSession(ctx, ownerID, NewQuestionnaire{
		Kind:     KindSymptomList,
		Symptoms: symptoms,
	})
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return &StartResult{SessionID: sess.ID, Symptoms: symptoms}, nil
}

// fetchCatalog asks the oracle for the symptom catalog and falls back to the
// built-in list whenever the reply is unusable. Starting must never block on
// generation.
func (s *service) fetchCatalog(ctx context.Context) []Symptom {
	raw, err := s.oracle.SymptomCatalog(ctx)
	if err != nil {
		slog.Warn("symptom catalog generation failed, using built-in catalog", "error", err)
		return normalizeSymptoms(oracle.DefaultSymptomCatalog())
	}
	symptoms := normalizeSymptoms(raw)
	if len(symptoms) == 0 {
		slog.Warn("symptom catalog came back empty, using built-in catalog")
		return normalizeSymptoms(oracle.DefaultSymptomCatalog())
	}
	return symptoms
}

func (s *service) PreviewVariants(ctx context.Context, complaint string) ([]string, error) {
	complaint = strings.TrimSpace(complaint)
	if complaint == "" {
		return nil, fmt.Errorf("%w: complaint is required for variants", ErrEmptyIntake)
	}

	raw, err := s.oracle.Variants(ctx, complaint)
	if err != nil {
		slog.Warn("variant generation failed, using generic variants", "error", err)
		return oracle.DefaultVariants(complaint), nil
	}

	variants := make([]string, 0, len(raw))
	for _, v := range raw {
		if v = strings.TrimSpace(v); v != "" {
			variants = append(variants, v)
		}
	}
	if len(variants) == 0 {
		slog.Warn("variant generation came back empty, using generic variants")
		return oracle.DefaultVariants(complaint), nil
	}
	return variants, nil
}

func (s *service) SubmitIntake(ctx context.Context, sessionID uuid.UUID, intake Intake) (*SubmitResult, error) {
	sess, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Status != StatusIntakePending {
		return nil, fmt.Errorf("%w: intake already submitted (status %s)", ErrInvalidState, sess.Status)
	}

	intake.Complaint = strings.TrimSpace(intake.Complaint)
	if intake.Empty() {
		return nil, ErrEmptyIntake
	}

	// Generation runs before any write so a failed call leaves the session
	// untouched and the submission retryable.
	pc := promptContext(&intake, sess, "", nil)
	raw, err := s.oracle.StageQuestions(ctx, 1, pc)
	if err != nil {
		return nil, fmt.Errorf("%w: stage 1: %v", ErrGenerationFailed, err)
	}
	questions, err := normalizeQuestions(raw, "1")
	if err != nil {
		return nil, fmt.Errorf("%w: stage 1: %v", ErrGenerationFailed, err)
	}

	updated, err := s.store.ApplyTransition(ctx, Transition{
		SessionID: sessionID,
		From:      StatusIntakePending,
		To:        StatusStage1Pending,
		Intake:    &intake,
		Append:    &NewQuestionnaire{Kind: KindStage1, Questions: questions},
	})
	if err != nil {
		return nil, err
	}
	return &SubmitResult{NextStatus: updated.Status, Questions: questions}, nil
}

func (s *service) SubmitAnswers(ctx context.Context, sessionID uuid.UUID, answers AnswerSet) (*SubmitResult, error) {
	sess, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Status.Terminal() {
		return &SubmitResult{NextStatus: sess.Status, Report: sess.Report(), AlreadyFinished: true}, nil
	}

	step, ok := stageFlow[sess.Status]
	if !ok {
		return nil, fmt.Errorf("%w: no answers expected in status %s", ErrInvalidState, sess.Status)
	}
	pending := sess.ByKind(step.pending)
	if pending == nil || pending.Answered() {
		return nil, fmt.Errorf("%w: stage %s is not awaiting answers", ErrInvalidState, step.pending)
	}
	if err := validateAnswers(pending.Questions, answers); err != nil {
		return nil, err
	}

	pc := promptContext(sess.Intake, sess, step.pending, answers)

	if step.final {
		return s.finish(ctx, sess, pending, answers, pc)
	}

	var next []Question
	if step.followup {
		next = s.followupQuestions(ctx, pc, step.stageTag)
		if len(next) == 0 {
			// no third stage warranted; go straight to the report
			return s.finish(ctx, sess, pending, answers, pc)
		}
	} else {
		raw, err := s.oracle.StageQuestions(ctx, 2, pc)
		if err != nil {
			return nil, fmt.Errorf("%w: stage 2: %v", ErrGenerationFailed, err)
		}
		if next, err = normalizeQuestions(raw, step.stageTag); err != nil {
			return nil, fmt.Errorf("%w: stage 2: %v", ErrGenerationFailed, err)
		}
	}

	updated, err := s.store.ApplyTransition(ctx, Transition{
		SessionID:           sess.ID,
		From:                sess.Status,
		To:                  step.next,
		AnswerQuestionnaire: pending.ID,
		Answers:             answers,
		Append:              &NewQuestionnaire{Kind: step.nextKind, Questions: next},
	})
	if err != nil {
		return nil, err
	}
	return &SubmitResult{NextStatus: updated.Status, Questions: next}, nil
}

func (s *service) GetSession(ctx context.Context, id uuid.UUID) (*Session, error) {
	return s.store.GetSession(ctx, id)
}

// followupQuestions fetches the optional stage-3 set. Any failure counts as
// "no follow-up needed": the third stage is an enrichment, never a blocker.
func (s *service) followupQuestions(ctx context.Context, pc oracle.PromptContext, stageTag string) []Question {
	raw, err := s.oracle.FollowupQuestions(ctx, pc)
	if err != nil {
		slog.Warn("follow-up generation failed, skipping third stage", "error", err)
		return nil
	}
	if len(raw) == 0 {
		return nil
	}
	questions, err := normalizeQuestions(raw, stageTag)
	if err != nil {
		slog.Warn("follow-up questions failed validation, skipping third stage", "error", err)
		return nil
	}
	return questions
}

// finish runs report generation and moves the session to its terminal state.
// An unreachable oracle keeps the session retryable; a reachable oracle with
// an unusable report finishes with a labeled placeholder instead, because a
// user who completed every stage must always reach a viewable end state.
func (s *service) finish(ctx context.Context, sess *Session, pending *Questionnaire, answers AnswerSet, pc oracle.PromptContext) (*SubmitResult, error) {
	report := s.generateReport(ctx, pc)
	if report == nil {
		return nil, fmt.Errorf("%w: report", ErrGenerationFailed)
	}

	updated, err := s.store.ApplyTransition(ctx, Transition{
		SessionID:           sess.ID,
		From:                sess.Status,
		To:                  StatusFinished,
		AnswerQuestionnaire: pending.ID,
		Answers:             answers,
		Append:              &NewQuestionnaire{Kind: KindResult, Report: report},
	})
	if err != nil {
		return nil, err
	}
	return &SubmitResult{NextStatus: updated.Status, Report: report}, nil
}

// generateReport returns the normalized report, the placeholder when the
// oracle replied with unusable content, or nil when the oracle was unreachable.
func (s *service) generateReport(ctx context.Context, pc oracle.PromptContext) *Report {
	raw, err := s.oracle.GenerateReport(ctx, pc)
	if err != nil {
		if errors.Is(err, oracle.ErrMalformed) {
			slog.Warn("report came back malformed, storing placeholder", "error", err)
			return placeholderReport()
		}
		slog.Error("report generation failed", "error", err)
		return nil
	}
	report, err := normalizeReport(raw)
	if err != nil {
		slog.Warn("report failed validation, storing placeholder", "error", err)
		return placeholderReport()
	}
	return report
}

// ---------------------------------------------------------------------------
// Answer validation
// ---------------------------------------------------------------------------

// validateAnswers checks a submitted set against the pending stage's
// questions: every question answered, no extras, each answer matching its
// question's modality.
func validateAnswers(questions []Question, answers AnswerSet) error {
	byID := make(map[string]Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	for id := range answers {
		if _, ok := byID[id]; !ok {
			return fmt.Errorf("%w: answer for unknown question %q", ErrIncompleteAnswers, id)
		}
	}
	for _, q := range questions {
		a, ok := answers[q.ID]
		if !ok {
			return fmt.Errorf("%w: question %q is unanswered", ErrIncompleteAnswers, q.ID)
		}
		if err := validateAnswer(q, a); err != nil {
			return err
		}
	}
	return nil
}

func validateAnswer(q Question, a Answer) error {
	set := 0
	if a.Text != nil {
		set++
	}
	if a.Choice != nil {
		set++
	}
	if a.Scale != nil {
		set++
	}
	if set != 1 {
		return fmt.Errorf("%w: question %q needs exactly one answer value", ErrIncompleteAnswers, q.ID)
	}

	switch q.Kind {
	case QuestionFreeText:
		if a.Text == nil || strings.TrimSpace(*a.Text) == "" {
			return fmt.Errorf("%w: question %q expects non-empty text", ErrIncompleteAnswers, q.ID)
		}
	case QuestionSingleChoice:
		if a.Choice == nil {
			return fmt.Errorf("%w: question %q expects a choice", ErrIncompleteAnswers, q.ID)
		}
		for _, opt := range q.Options {
			if *a.Choice == opt {
				return nil
			}
		}
		return fmt.Errorf("%w: question %q got a choice outside its options", ErrIncompleteAnswers, q.ID)
	case QuestionScale:
		if a.Scale == nil {
			return fmt.Errorf("%w: question %q expects a scale value", ErrIncompleteAnswers, q.ID)
		}
		if *a.Scale < ScaleMin || *a.Scale > ScaleMax {
			return fmt.Errorf("%w: question %q scale value %d out of range", ErrIncompleteAnswers, q.ID, *a.Scale)
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Prompt context assembly
// ---------------------------------------------------------------------------

// promptContext assembles the accumulated context sent to the oracle: the
// intake plus every recorded stage's answers, plus the in-flight answer set
// for currentKind (not yet persisted at call time).
func promptContext(intake *Intake, sess *Session, currentKind QuestionnaireKind, current AnswerSet) oracle.PromptContext {
	pc := oracle.PromptContext{}
	if intake != nil {
		pc.Complaint = intake.Complaint
		if len(intake.Symptoms) > 0 {
			pc.Symptoms = make(map[string]oracle.SymptomSelection, len(intake.Symptoms))
			for id, sel := range intake.Symptoms {
				pc.Symptoms[id] = oracle.SymptomSelection{
					Clarifications: sel.Clarifications,
					Details:        sel.Details,
				}
			}
		}
	}

	stageAnswers := func(kind QuestionnaireKind) map[string]any {
		if kind == currentKind {
			return answerValues(current)
		}
		if q := sess.ByKind(kind); q != nil && q.Answered() {
			return answerValues(q.Answers)
		}
		return nil
	}
	pc.Stage1Answers = stageAnswers(KindStage1)
	pc.Stage2Answers = stageAnswers(KindStage2)
	pc.Stage3Answers = stageAnswers(KindStage3)
	return pc
}

func answerValues(as AnswerSet) map[string]any {
	if len(as) == 0 {
		return nil
	}
	out := make(map[string]any, len(as))
	for id, a := range as {
		out[id] = a.Value()
	}
	return out
}
