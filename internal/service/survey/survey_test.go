package survey

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/opora-health/opora_backend/pkg/oracle"
)

// ---------------------------------------------------------------------------
// Fakes
// ---------------------------------------------------------------------------

// memStore is an in-memory Store with the same status-guard semantics the
// database implementation provides.
type memStore struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Session

	// applyHook, when set, runs once before the next ApplyTransition, used
	// to simulate a concurrent writer sneaking in between read and write.
	applyHook func()
}

func newMemStore() *memStore {
	return &memStore{sessions: make(map[uuid.UUID]*Session)}
}

func (m *memStore) CreateSession(_ context.Context, ownerID *uuid.UUID, first NewQuestionnaire) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	sess := &Session{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Status:    StatusIntakePending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	appendStage(sess, first, now)
	m.sessions[sess.ID] = sess
	return copySession(sess), nil
}

func (m *memStore) GetSession(_ context.Context, id uuid.UUID) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copySession(sess), nil
}

func (m *memStore) ApplyTransition(_ context.Context, t Transition) (*Session, error) {
	if m.applyHook != nil {
		hook := m.applyHook
		m.applyHook = nil
		hook()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[t.SessionID]
	if !ok {
		return nil, ErrNotFound
	}
	if sess.Status != t.From {
		return nil, fmt.Errorf("%w: status is %s", ErrConflictingTransition, sess.Status)
	}

	now := time.Now()
	sess.Status = t.To
	sess.UpdatedAt = now
	if t.Intake != nil {
		in := *t.Intake
		sess.Intake = &in
	}
	if t.Answers != nil {
		for i := range sess.Questionnaires {
			if sess.Questionnaires[i].ID == t.AnswerQuestionnaire {
				sess.Questionnaires[i].Answers = t.Answers
			}
		}
	}
	if t.Append != nil {
		appendStage(sess, *t.Append, now)
	}
	return copySession(sess), nil
}

func appendStage(sess *Session, nq NewQuestionnaire, now time.Time) {
	sess.Questionnaires = append(sess.Questionnaires, Questionnaire{
		ID:        uuid.New(),
		SessionID: sess.ID,
		Kind:      nq.Kind,
		Questions: nq.Questions,
		Symptoms:  nq.Symptoms,
		Variants:  nq.Variants,
		Report:    nq.Report,
		CreatedAt: now,
	})
}

func copySession(s *Session) *Session {
	out := *s
	out.Questionnaires = append([]Questionnaire(nil), s.Questionnaires...)
	return &out
}

// fakeOracle scripts each generation call; unset calls fail loudly.
type fakeOracle struct {
	catalog  func(ctx context.Context) ([]oracle.Symptom, error)
	variants func(ctx context.Context, complaint string) ([]string, error)
	stage    func(ctx context.Context, stage int, pc oracle.PromptContext) ([]oracle.Question, error)
	followup func(ctx context.Context, pc oracle.PromptContext) ([]oracle.Question, error)
	report   func(ctx context.Context, pc oracle.PromptContext) (oracle.Report, error)
}

func (f *fakeOracle) SymptomCatalog(ctx context.Context) ([]oracle.Symptom, error) {
	if f.catalog == nil {
		return nil, errors.New("unexpected SymptomCatalog call")
	}
	return f.catalog(ctx)
}

func (f *fakeOracle) Variants(ctx context.Context, complaint string) ([]string, error) {
	if f.variants == nil {
		return nil, errors.New("unexpected Variants call")
	}
	return f.variants(ctx, complaint)
}

func (f *fakeOracle) StageQuestions(ctx context.Context, stage int, pc oracle.PromptContext) ([]oracle.Question, error) {
	if f.stage == nil {
		return nil, errors.New("unexpected StageQuestions call")
	}
	return f.stage(ctx, stage, pc)
}

func (f *fakeOracle) FollowupQuestions(ctx context.Context, pc oracle.PromptContext) ([]oracle.Question, error) {
	if f.followup == nil {
		return nil, errors.New("unexpected FollowupQuestions call")
	}
	return f.followup(ctx, pc)
}

func (f *fakeOracle) GenerateReport(ctx context.Context, pc oracle.PromptContext) (oracle.Report, error) {
	if f.report == nil {
		return oracle.Report{}, errors.New("unexpected GenerateReport call")
	}
	return f.report(ctx, pc)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func rawQuestions(prefix string) []oracle.Question {
	return []oracle.Question{
		{ID: prefix + "_text", Text: "Tell us more", Type: "free_text"},
		{ID: prefix + "_choice", Text: "Pick one", Type: "single_choice", Options: []string{"rarely", "often"}},
		{ID: prefix + "_scale", Text: "Rate severity", Type: "scale_1_10"},
	}
}

// answersFor builds a valid answer set for a stage's normalized questions.
func answersFor(questions []Question) AnswerSet {
	as := make(AnswerSet, len(questions))
	for _, q := range questions {
		switch q.Kind {
		case QuestionSingleChoice:
			as[q.ID] = Answer{Choice: strPtr(q.Options[0])}
		case QuestionScale:
			as[q.ID] = Answer{Scale: intPtr(7)}
		default:
			as[q.ID] = Answer{Text: strPtr("an answer")}
		}
	}
	return as
}

func goodReport() oracle.Report {
	return oracle.Report{
		PersonalPlan:     "a plan",
		PsychPrep:        "session prep",
		SpecialistDoc:    "clinical summary",
		RecommendedTests: []oracle.RecommendedTest{{Name: "GAD-7", Description: "anxiety screen"}},
	}
}

// startedSession creates a session and submits a minimal intake, leaving it
// in stage1_pending with the given store and oracle.
func startedSession(t *testing.T, svc Service, o *fakeOracle) uuid.UUID {
	t.Helper()

	o.catalog = func(context.Context) ([]oracle.Symptom, error) {
		return oracle.DefaultSymptomCatalog(), nil
	}
	o.stage = func(_ context.Context, stage int, _ oracle.PromptContext) ([]oracle.Question, error) {
		return rawQuestions(fmt.Sprintf("s%d", stage)), nil
	}

	start, err := svc.Start(context.Background(), nil)
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	_, err = svc.SubmitIntake(context.Background(), start.SessionID, Intake{Complaint: "I feel anxious"})
	if err != nil {
		t.Fatalf("SubmitIntake() error = %v", err)
	}
	return start.SessionID
}

// ---------------------------------------------------------------------------
// Start / PreviewVariants
// ---------------------------------------------------------------------------

func TestStart(t *testing.T) {
	store := newMemStore()
	o := &fakeOracle{
		catalog: func(context.Context) ([]oracle.Symptom, error) {
			return []oracle.Symptom{{ID: "s1", Name: "Anxiety"}}, nil
		},
	}
	svc := New(store, o)

	res, err := svc.Start(context.Background(), nil)
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if len(res.Symptoms) != 1 || res.Symptoms[0].Name != "Anxiety" {
		t.Errorf("Start() symptoms = %+v", res.Symptoms)
	}

	sess, err := svc.GetSession(context.Background(), res.SessionID)
	if err != nil {
		t.Fatalf("GetSession() error = %v", err)
	}
	if sess.Status != StatusIntakePending {
		t.Errorf("new session status = %s, want %s", sess.Status, StatusIntakePending)
	}
	if q := sess.ByKind(KindSymptomList); q == nil || len(q.Symptoms) != 1 {
		t.Error("symptom list questionnaire not recorded")
	}
}

func TestStartFallsBackToBuiltinCatalog(t *testing.T) {
	for name, o := range map[string]*fakeOracle{
		"oracle down": {catalog: func(context.Context) ([]oracle.Symptom, error) {
			return nil, oracle.ErrUnavailable
		}},
		"empty catalog": {catalog: func(context.Context) ([]oracle.Symptom, error) {
			return []oracle.Symptom{{Name: "  "}}, nil
		}},
	} {
		t.Run(name, func(t *testing.T) {
			svc := New(newMemStore(), o)
			res, err := svc.Start(context.Background(), nil)
			if err != nil {
				t.Fatalf("Start() error = %v", err)
			}
			if len(res.Symptoms) != len(oracle.DefaultSymptomCatalog()) {
				t.Errorf("fallback catalog has %d symptoms, want %d",
					len(res.Symptoms), len(oracle.DefaultSymptomCatalog()))
			}
		})
	}
}

func TestStartKeepsOwner(t *testing.T) {
	store := newMemStore()
	o := &fakeOracle{catalog: func(context.Context) ([]oracle.Symptom, error) {
		return oracle.DefaultSymptomCatalog(), nil
	}}
	svc := New(store, o)

	owner := uuid.New()
	res, err := svc.Start(context.Background(), &owner)
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	sess, _ := svc.GetSession(context.Background(), res.SessionID)
	if sess.OwnerID == nil || *sess.OwnerID != owner {
		t.Errorf("session owner = %v, want %s", sess.OwnerID, owner)
	}
}

func TestPreviewVariants(t *testing.T) {
	o := &fakeOracle{
		variants: func(_ context.Context, complaint string) ([]string, error) {
			return []string{"variant one", "  ", "variant two"}, nil
		},
	}
	svc := New(newMemStore(), o)

	got, err := svc.PreviewVariants(context.Background(), "I feel low")
	if err != nil {
		t.Fatalf("PreviewVariants() error = %v", err)
	}
	if len(got) != 2 {
		t.Errorf("PreviewVariants() = %v, want blank entries dropped", got)
	}
}

func TestPreviewVariantsRequiresComplaint(t *testing.T) {
	svc := New(newMemStore(), &fakeOracle{})
	if _, err := svc.PreviewVariants(context.Background(), "   "); !errors.Is(err, ErrEmptyIntake) {
		t.Errorf("PreviewVariants() error = %v, want ErrEmptyIntake", err)
	}
}

func TestPreviewVariantsFallback(t *testing.T) {
	o := &fakeOracle{
		variants: func(context.Context, string) ([]string, error) {
			return nil, oracle.ErrMalformed
		},
	}
	svc := New(newMemStore(), o)

	got, err := svc.PreviewVariants(context.Background(), "I feel low")
	if err != nil {
		t.Fatalf("PreviewVariants() error = %v", err)
	}
	if len(got) == 0 || got[0] != "I feel low" {
		t.Errorf("fallback variants should lead with the complaint, got %v", got)
	}
}

// ---------------------------------------------------------------------------
// SubmitIntake
// ---------------------------------------------------------------------------

func TestSubmitIntake(t *testing.T) {
	store := newMemStore()
	o := &fakeOracle{}
	svc := New(store, o)

	var gotPC oracle.PromptContext
	o.catalog = func(context.Context) ([]oracle.Symptom, error) {
		return oracle.DefaultSymptomCatalog(), nil
	}
	o.stage = func(_ context.Context, stage int, pc oracle.PromptContext) ([]oracle.Question, error) {
		if stage != 1 {
			t.Fatalf("intake should request stage 1, got %d", stage)
		}
		gotPC = pc
		return rawQuestions("s1"), nil
	}

	start, _ := svc.Start(context.Background(), nil)
	intake := Intake{
		Complaint: "I can't sleep",
		Symptoms: map[string]IntakeSymptom{
			"s3": {Clarifications: []string{"Frequent waking"}, Details: "worse on weekdays"},
		},
	}
	res, err := svc.SubmitIntake(context.Background(), start.SessionID, intake)
	if err != nil {
		t.Fatalf("SubmitIntake() error = %v", err)
	}
	if res.NextStatus != StatusStage1Pending {
		t.Errorf("NextStatus = %s, want %s", res.NextStatus, StatusStage1Pending)
	}
	if len(res.Questions) != 3 {
		t.Errorf("got %d questions, want 3", len(res.Questions))
	}
	if gotPC.Complaint != "I can't sleep" || len(gotPC.Symptoms) != 1 {
		t.Errorf("prompt context missing intake: %+v", gotPC)
	}

	sess, _ := svc.GetSession(context.Background(), start.SessionID)
	if sess.Intake == nil || sess.Intake.Complaint != "I can't sleep" {
		t.Error("intake not persisted on session")
	}
	if sess.ByKind(KindStage1) == nil {
		t.Error("stage 1 questionnaire not persisted")
	}
}

func TestSubmitIntakeEmpty(t *testing.T) {
	store := newMemStore()
	o := &fakeOracle{catalog: func(context.Context) ([]oracle.Symptom, error) {
		return oracle.DefaultSymptomCatalog(), nil
	}}
	svc := New(store, o)

	start, _ := svc.Start(context.Background(), nil)
	if _, err := svc.SubmitIntake(context.Background(), start.SessionID, Intake{Complaint: "  "}); !errors.Is(err, ErrEmptyIntake) {
		t.Errorf("SubmitIntake() error = %v, want ErrEmptyIntake", err)
	}
}

func TestSubmitIntakeUnknownSession(t *testing.T) {
	svc := New(newMemStore(), &fakeOracle{})
	if _, err := svc.SubmitIntake(context.Background(), uuid.New(), Intake{Complaint: "x"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("SubmitIntake() error = %v, want ErrNotFound", err)
	}
}

func TestSubmitIntakeGenerationFailureLeavesSessionRetryable(t *testing.T) {
	store := newMemStore()
	o := &fakeOracle{
		catalog: func(context.Context) ([]oracle.Symptom, error) {
			return oracle.DefaultSymptomCatalog(), nil
		},
		stage: func(context.Context, int, oracle.PromptContext) ([]oracle.Question, error) {
			return nil, oracle.ErrUnavailable
		},
	}
	svc := New(store, o)

	start, _ := svc.Start(context.Background(), nil)
	_, err := svc.SubmitIntake(context.Background(), start.SessionID, Intake{Complaint: "x"})
	if !errors.Is(err, ErrGenerationFailed) {
		t.Fatalf("SubmitIntake() error = %v, want ErrGenerationFailed", err)
	}

	sess, _ := svc.GetSession(context.Background(), start.SessionID)
	if sess.Status != StatusIntakePending {
		t.Errorf("failed generation must leave status untouched, got %s", sess.Status)
	}

	// a retry after recovery succeeds
	o.stage = func(context.Context, int, oracle.PromptContext) ([]oracle.Question, error) {
		return rawQuestions("s1"), nil
	}
	if _, err := svc.SubmitIntake(context.Background(), start.SessionID, Intake{Complaint: "x"}); err != nil {
		t.Fatalf("retry after recovery failed: %v", err)
	}
}

func TestSubmitIntakeTwice(t *testing.T) {
	store := newMemStore()
	o := &fakeOracle{}
	svc := New(store, o)
	id := startedSession(t, svc, o)

	if _, err := svc.SubmitIntake(context.Background(), id, Intake{Complaint: "again"}); !errors.Is(err, ErrInvalidState) {
		t.Errorf("second SubmitIntake() error = %v, want ErrInvalidState", err)
	}
}

// ---------------------------------------------------------------------------
// SubmitAnswers
// ---------------------------------------------------------------------------

func TestFullAssessmentFlow(t *testing.T) {
	store := newMemStore()
	o := &fakeOracle{}
	svc := New(store, o)
	ctx := context.Background()
	id := startedSession(t, svc, o)

	sess, _ := svc.GetSession(ctx, id)
	stage1 := sess.ByKind(KindStage1)

	// stage 1 -> stage 2, prompt context must carry stage-1 answers
	o.stage = func(_ context.Context, stage int, pc oracle.PromptContext) ([]oracle.Question, error) {
		if stage != 2 {
			t.Fatalf("expected stage 2 request, got %d", stage)
		}
		if len(pc.Stage1Answers) != len(stage1.Questions) {
			t.Errorf("stage-2 prompt carries %d stage-1 answers, want %d", len(pc.Stage1Answers), len(stage1.Questions))
		}
		return rawQuestions("s2"), nil
	}
	res, err := svc.SubmitAnswers(ctx, id, answersFor(stage1.Questions))
	if err != nil {
		t.Fatalf("SubmitAnswers(stage 1) error = %v", err)
	}
	if res.NextStatus != StatusStage2Pending || len(res.Questions) != 3 {
		t.Fatalf("stage 1 submit = %+v", res)
	}

	// stage 2 -> stage 3 via follow-up
	o.followup = func(_ context.Context, pc oracle.PromptContext) ([]oracle.Question, error) {
		if len(pc.Stage2Answers) == 0 {
			t.Error("follow-up prompt missing stage-2 answers")
		}
		return rawQuestions("s3"), nil
	}
	res, err = svc.SubmitAnswers(ctx, id, answersFor(res.Questions))
	if err != nil {
		t.Fatalf("SubmitAnswers(stage 2) error = %v", err)
	}
	if res.NextStatus != StatusStage3Pending || len(res.Questions) != 3 {
		t.Fatalf("stage 2 submit = %+v", res)
	}

	// stage 3 -> finished with report
	o.report = func(_ context.Context, pc oracle.PromptContext) (oracle.Report, error) {
		if len(pc.Stage3Answers) == 0 {
			t.Error("report prompt missing stage-3 answers")
		}
		return goodReport(), nil
	}
	res, err = svc.SubmitAnswers(ctx, id, answersFor(res.Questions))
	if err != nil {
		t.Fatalf("SubmitAnswers(stage 3) error = %v", err)
	}
	if res.NextStatus != StatusFinished || res.Report == nil {
		t.Fatalf("final submit = %+v", res)
	}
	if res.Report.Degraded {
		t.Error("valid report marked degraded")
	}

	sess, _ = svc.GetSession(ctx, id)
	if sess.Status != StatusFinished {
		t.Errorf("final status = %s", sess.Status)
	}
	if len(sess.Questionnaires) != 5 {
		t.Errorf("session holds %d questionnaires, want 5", len(sess.Questionnaires))
	}
	if sess.Report() == nil {
		t.Error("report not retrievable from session")
	}
}

func TestEmptyFollowupSkipsToReport(t *testing.T) {
	for name, followup := range map[string]func(context.Context, oracle.PromptContext) ([]oracle.Question, error){
		"empty list": func(context.Context, oracle.PromptContext) ([]oracle.Question, error) {
			return nil, nil
		},
		"oracle failure": func(context.Context, oracle.PromptContext) ([]oracle.Question, error) {
			return nil, oracle.ErrUnavailable
		},
		"unusable questions": func(context.Context, oracle.PromptContext) ([]oracle.Question, error) {
			return []oracle.Question{{Text: "  "}}, nil
		},
	} {
		t.Run(name, func(t *testing.T) {
			store := newMemStore()
			o := &fakeOracle{}
			svc := New(store, o)
			ctx := context.Background()
			id := startedSession(t, svc, o)

			sess, _ := svc.GetSession(ctx, id)
			o.stage = func(context.Context, int, oracle.PromptContext) ([]oracle.Question, error) {
				return rawQuestions("s2"), nil
			}
			res, err := svc.SubmitAnswers(ctx, id, answersFor(sess.ByKind(KindStage1).Questions))
			if err != nil {
				t.Fatalf("SubmitAnswers(stage 1) error = %v", err)
			}

			o.followup = followup
			o.report = func(context.Context, oracle.PromptContext) (oracle.Report, error) {
				return goodReport(), nil
			}
			res, err = svc.SubmitAnswers(ctx, id, answersFor(res.Questions))
			if err != nil {
				t.Fatalf("SubmitAnswers(stage 2) error = %v", err)
			}
			if res.NextStatus != StatusFinished || res.Report == nil {
				t.Fatalf("stage 2 with no follow-up should finish, got %+v", res)
			}

			sess, _ = svc.GetSession(ctx, id)
			if sess.ByKind(KindStage3) != nil {
				t.Error("no stage-3 questionnaire should exist when follow-up is skipped")
			}
		})
	}
}

func TestMalformedReportStoresPlaceholder(t *testing.T) {
	store := newMemStore()
	o := &fakeOracle{}
	svc := New(store, o)
	ctx := context.Background()
	id := startedSession(t, svc, o)

	sess, _ := svc.GetSession(ctx, id)
	o.stage = func(context.Context, int, oracle.PromptContext) ([]oracle.Question, error) {
		return rawQuestions("s2"), nil
	}
	res, _ := svc.SubmitAnswers(ctx, id, answersFor(sess.ByKind(KindStage1).Questions))

	o.followup = func(context.Context, oracle.PromptContext) ([]oracle.Question, error) { return nil, nil }
	o.report = func(context.Context, oracle.PromptContext) (oracle.Report, error) {
		return oracle.Report{}, oracle.ErrMalformed
	}
	res, err := svc.SubmitAnswers(ctx, id, answersFor(res.Questions))
	if err != nil {
		t.Fatalf("SubmitAnswers() error = %v", err)
	}
	if res.NextStatus != StatusFinished {
		t.Errorf("session must still finish, got %s", res.NextStatus)
	}
	if res.Report == nil || !res.Report.Degraded {
		t.Errorf("expected degraded placeholder report, got %+v", res.Report)
	}
}

func TestUnreachableReportKeepsSessionRetryable(t *testing.T) {
	store := newMemStore()
	o := &fakeOracle{}
	svc := New(store, o)
	ctx := context.Background()
	id := startedSession(t, svc, o)

	sess, _ := svc.GetSession(ctx, id)
	o.stage = func(context.Context, int, oracle.PromptContext) ([]oracle.Question, error) {
		return rawQuestions("s2"), nil
	}
	res, _ := svc.SubmitAnswers(ctx, id, answersFor(sess.ByKind(KindStage1).Questions))

	o.followup = func(context.Context, oracle.PromptContext) ([]oracle.Question, error) { return nil, nil }
	o.report = func(context.Context, oracle.PromptContext) (oracle.Report, error) {
		return oracle.Report{}, oracle.ErrUnavailable
	}
	answers := answersFor(res.Questions)
	if _, err := svc.SubmitAnswers(ctx, id, answers); !errors.Is(err, ErrGenerationFailed) {
		t.Fatalf("SubmitAnswers() error = %v, want ErrGenerationFailed", err)
	}

	sess, _ = svc.GetSession(ctx, id)
	if sess.Status != StatusStage2Pending {
		t.Errorf("status after failed report = %s, want %s", sess.Status, StatusStage2Pending)
	}

	// recovery: the same submission now succeeds
	o.report = func(context.Context, oracle.PromptContext) (oracle.Report, error) {
		return goodReport(), nil
	}
	final, err := svc.SubmitAnswers(ctx, id, answers)
	if err != nil {
		t.Fatalf("retry after recovery failed: %v", err)
	}
	if final.NextStatus != StatusFinished {
		t.Errorf("retry status = %s, want finished", final.NextStatus)
	}
}

func TestSubmitAnswersValidation(t *testing.T) {
	store := newMemStore()
	o := &fakeOracle{}
	svc := New(store, o)
	ctx := context.Background()
	id := startedSession(t, svc, o)

	sess, _ := svc.GetSession(ctx, id)
	questions := sess.ByKind(KindStage1).Questions
	valid := answersFor(questions)

	tests := []struct {
		name   string
		mutate func(AnswerSet)
	}{
		{"missing answer", func(as AnswerSet) { delete(as, questions[0].ID) }},
		{"unknown question", func(as AnswerSet) { as["nope"] = Answer{Text: strPtr("x")} }},
		{"two values set", func(as AnswerSet) {
			as[questions[0].ID] = Answer{Text: strPtr("x"), Scale: intPtr(3)}
		}},
		{"blank text", func(as AnswerSet) { as[questions[0].ID] = Answer{Text: strPtr("  ")} }},
		{"choice outside options", func(as AnswerSet) {
			as[questions[1].ID] = Answer{Choice: strPtr("never offered")}
		}},
		{"wrong modality", func(as AnswerSet) { as[questions[1].ID] = Answer{Text: strPtr("often")} }},
		{"scale too high", func(as AnswerSet) { as[questions[2].ID] = Answer{Scale: intPtr(11)} }},
		{"scale too low", func(as AnswerSet) { as[questions[2].ID] = Answer{Scale: intPtr(0)} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			as := make(AnswerSet, len(valid))
			for k, v := range valid {
				as[k] = v
			}
			tt.mutate(as)
			if _, err := svc.SubmitAnswers(ctx, id, as); !errors.Is(err, ErrIncompleteAnswers) {
				t.Errorf("SubmitAnswers() error = %v, want ErrIncompleteAnswers", err)
			}
		})
	}

	// invalid submissions must not advance the session
	sess, _ = svc.GetSession(ctx, id)
	if sess.Status != StatusStage1Pending {
		t.Errorf("status after rejected answers = %s", sess.Status)
	}
}

func TestSubmitAnswersBeforeIntake(t *testing.T) {
	store := newMemStore()
	o := &fakeOracle{catalog: func(context.Context) ([]oracle.Symptom, error) {
		return oracle.DefaultSymptomCatalog(), nil
	}}
	svc := New(store, o)

	start, _ := svc.Start(context.Background(), nil)
	if _, err := svc.SubmitAnswers(context.Background(), start.SessionID, AnswerSet{}); !errors.Is(err, ErrInvalidState) {
		t.Errorf("SubmitAnswers() error = %v, want ErrInvalidState", err)
	}
}

func TestFinishedSessionActsAsNoOp(t *testing.T) {
	store := newMemStore()
	o := &fakeOracle{}
	svc := New(store, o)
	ctx := context.Background()
	id := startedSession(t, svc, o)

	sess, _ := svc.GetSession(ctx, id)
	o.stage = func(context.Context, int, oracle.PromptContext) ([]oracle.Question, error) {
		return rawQuestions("s2"), nil
	}
	res, _ := svc.SubmitAnswers(ctx, id, answersFor(sess.ByKind(KindStage1).Questions))
	o.followup = func(context.Context, oracle.PromptContext) ([]oracle.Question, error) { return nil, nil }
	o.report = func(context.Context, oracle.PromptContext) (oracle.Report, error) {
		return goodReport(), nil
	}
	if _, err := svc.SubmitAnswers(ctx, id, answersFor(res.Questions)); err != nil {
		t.Fatalf("finishing submit failed: %v", err)
	}

	// further answer submissions acknowledge without mutating anything
	res, err := svc.SubmitAnswers(ctx, id, AnswerSet{})
	if err != nil {
		t.Fatalf("post-finish SubmitAnswers() error = %v", err)
	}
	if !res.AlreadyFinished || res.NextStatus != StatusFinished {
		t.Errorf("post-finish submit = %+v", res)
	}
	if res.Report == nil {
		t.Error("post-finish acknowledgment should include the report")
	}

	// intake, by contrast, is only ever valid before the first stage
	if _, err := svc.SubmitIntake(ctx, id, Intake{Complaint: "x"}); !errors.Is(err, ErrInvalidState) {
		t.Errorf("post-finish SubmitIntake() error = %v, want ErrInvalidState", err)
	}
}

func TestResubmittingAnsweredStage(t *testing.T) {
	store := newMemStore()
	o := &fakeOracle{}
	svc := New(store, o)
	ctx := context.Background()
	id := startedSession(t, svc, o)

	sess, _ := svc.GetSession(ctx, id)
	stage1Answers := answersFor(sess.ByKind(KindStage1).Questions)
	o.stage = func(context.Context, int, oracle.PromptContext) ([]oracle.Question, error) {
		return rawQuestions("s2"), nil
	}
	if _, err := svc.SubmitAnswers(ctx, id, stage1Answers); err != nil {
		t.Fatalf("SubmitAnswers(stage 1) error = %v", err)
	}

	// replaying the stage-1 answers fails validation against the now-pending
	// stage 2 and must not advance or duplicate anything
	if _, err := svc.SubmitAnswers(ctx, id, stage1Answers); !errors.Is(err, ErrIncompleteAnswers) {
		t.Fatalf("replayed SubmitAnswers() error = %v, want ErrIncompleteAnswers", err)
	}

	sess, _ = svc.GetSession(ctx, id)
	if sess.Status != StatusStage2Pending {
		t.Errorf("status after replay = %s, want %s", sess.Status, StatusStage2Pending)
	}
	if got := len(sess.Questionnaires); got != 3 {
		t.Errorf("session holds %d questionnaires after replay, want 3", got)
	}
}

func TestConcurrentSubmissionLoses(t *testing.T) {
	store := newMemStore()
	o := &fakeOracle{}
	svc := New(store, o)
	ctx := context.Background()
	id := startedSession(t, svc, o)

	sess, _ := svc.GetSession(ctx, id)
	answers := answersFor(sess.ByKind(KindStage1).Questions)
	o.stage = func(context.Context, int, oracle.PromptContext) ([]oracle.Question, error) {
		return rawQuestions("s2"), nil
	}

	// a competing submission lands between this one's read and write
	store.applyHook = func() {
		if _, err := store.ApplyTransition(ctx, Transition{
			SessionID: id,
			From:      StatusStage1Pending,
			To:        StatusStage2Pending,
			Append:    &NewQuestionnaire{Kind: KindStage2, Questions: []Question{{ID: "q2_1", Prompt: "x", Kind: QuestionFreeText}}},
		}); err != nil {
			t.Errorf("competing transition failed: %v", err)
		}
	}

	if _, err := svc.SubmitAnswers(ctx, id, answers); !errors.Is(err, ErrConflictingTransition) {
		t.Fatalf("losing submission error = %v, want ErrConflictingTransition", err)
	}

	sess, _ = svc.GetSession(ctx, id)
	if sess.Status != StatusStage2Pending {
		t.Errorf("status = %s, want the winner's %s", sess.Status, StatusStage2Pending)
	}
	if got := len(sess.Questionnaires); got != 3 {
		t.Errorf("loser must not append a duplicate stage, have %d questionnaires", got)
	}
}
