package survey

import (
	"errors"
	"testing"

	"github.com/opora-health/opora_backend/pkg/oracle"
)

func TestNormalizeQuestions(t *testing.T) {
	tests := []struct {
		name    string
		raw     []oracle.Question
		want    []Question
		wantErr error
	}{
		{
			name:    "empty list",
			raw:     nil,
			wantErr: ErrMalformedResponse,
		},
		{
			name: "well formed passthrough",
			raw: []oracle.Question{
				{ID: "q1", Text: "How do you sleep?", Type: "free_text"},
				{ID: "q2", Text: "Pick one", Type: "single_choice", Options: []string{"a", "b"}},
				{ID: "q3", Text: "Rate it", Type: "scale_1_10"},
			},
			want: []Question{
				{ID: "q1", Prompt: "How do you sleep?", Kind: QuestionFreeText},
				{ID: "q2", Prompt: "Pick one", Kind: QuestionSingleChoice, Options: []string{"a", "b"}},
				{ID: "q3", Prompt: "Rate it", Kind: QuestionScale},
			},
		},
		{
			name: "missing and duplicate ids get positional placeholders",
			raw: []oracle.Question{
				{ID: "", Text: "one", Type: "text"},
				{ID: "dup", Text: "two", Type: "text"},
				{ID: "dup", Text: "three", Type: "text"},
			},
			want: []Question{
				{ID: "q2_1", Prompt: "one", Kind: QuestionFreeText},
				{ID: "dup", Prompt: "two", Kind: QuestionFreeText},
				{ID: "q2_3", Prompt: "three", Kind: QuestionFreeText},
			},
		},
		{
			name: "unknown kind degrades to free text and drops options",
			raw: []oracle.Question{
				{ID: "q1", Text: "hmm", Type: "essay", Options: []string{"stray"}},
			},
			want: []Question{
				{ID: "q1", Prompt: "hmm", Kind: QuestionFreeText},
			},
		},
		{
			name: "loose kind aliases",
			raw: []oracle.Question{
				{ID: "q1", Text: "pick", Type: "CHOICE", Options: []string{"x"}},
				{ID: "q2", Text: "rate", Type: "Scale"},
			},
			want: []Question{
				{ID: "q1", Prompt: "pick", Kind: QuestionSingleChoice, Options: []string{"x"}},
				{ID: "q2", Prompt: "rate", Kind: QuestionScale},
			},
		},
		{
			name: "empty prompt rejected",
			raw: []oracle.Question{
				{ID: "q1", Text: "   ", Type: "text"},
			},
			wantErr: ErrMalformedResponse,
		},
		{
			name: "choice without options rejected",
			raw: []oracle.Question{
				{ID: "q1", Text: "pick", Type: "single_choice"},
			},
			wantErr: ErrMalformedResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeQuestions(tt.raw, "2")
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("normalizeQuestions() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("normalizeQuestions() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("normalizeQuestions() returned %d questions, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i].ID != tt.want[i].ID || got[i].Prompt != tt.want[i].Prompt || got[i].Kind != tt.want[i].Kind {
					t.Errorf("question %d = %+v, want %+v", i, got[i], tt.want[i])
				}
				if len(got[i].Options) != len(tt.want[i].Options) {
					t.Errorf("question %d options = %v, want %v", i, got[i].Options, tt.want[i].Options)
				}
			}
		})
	}
}

func TestNormalizeSymptoms(t *testing.T) {
	raw := []oracle.Symptom{
		{ID: "a", Name: "Anxiety", Clarifications: []string{"worry"}},
		{ID: "", Name: "Low mood"},
		{ID: "c", Name: "   "},
	}
	got := normalizeSymptoms(raw)
	if len(got) != 2 {
		t.Fatalf("normalizeSymptoms() returned %d entries, want 2", len(got))
	}
	if got[0].ID != "a" || got[0].Name != "Anxiety" {
		t.Errorf("first symptom = %+v", got[0])
	}
	if got[1].ID != "s2" {
		t.Errorf("missing id should be filled positionally, got %q", got[1].ID)
	}
}

func TestNormalizeReport(t *testing.T) {
	full := oracle.Report{
		PersonalPlan:  "plan",
		PsychPrep:     "prep",
		SpecialistDoc: "doc",
		RecommendedTests: []oracle.RecommendedTest{
			{Name: "PHQ-9", Description: "depression screen"},
			{Name: "   "},
		},
	}

	got, err := normalizeReport(full)
	if err != nil {
		t.Fatalf("normalizeReport() error = %v", err)
	}
	if got.PersonalPlan != "plan" || got.ClinicianPrep != "prep" || got.SpecialistSummary != "doc" {
		t.Errorf("normalizeReport() = %+v", got)
	}
	if len(got.RecommendedTests) != 1 || got.RecommendedTests[0].Name != "PHQ-9" {
		t.Errorf("nameless tests should be dropped, got %+v", got.RecommendedTests)
	}
	if got.Degraded {
		t.Error("valid report must not be marked degraded")
	}

	for _, missing := range []oracle.Report{
		{PsychPrep: "prep", SpecialistDoc: "doc"},
		{PersonalPlan: "plan", SpecialistDoc: "doc"},
		{PersonalPlan: "plan", PsychPrep: "prep"},
	} {
		if _, err := normalizeReport(missing); !errors.Is(err, ErrMalformedResponse) {
			t.Errorf("normalizeReport(%+v) error = %v, want ErrMalformedResponse", missing, err)
		}
	}
}

func TestPlaceholderReport(t *testing.T) {
	r := placeholderReport()
	if !r.Degraded {
		t.Error("placeholder must be marked degraded")
	}
	if r.PersonalPlan == "" || r.ClinicianPrep == "" || r.SpecialistSummary == "" {
		t.Error("placeholder documents must be non-empty")
	}
}
