package survey

import (
	"fmt"
	"strings"

	"github.com/opora-health/opora_backend/pkg/oracle"
)

// normalizeQuestions validates and repairs a raw generated question list
// against the canonical stage shape. Repairs: a missing or duplicate id
// becomes a positional placeholder (q<stageTag>_<index>), an unrecognized
// kind becomes FREE_TEXT, and options are emptied for non-choice questions.
// Rejected outright: an empty list, a question without prompt text, and a
// choice question with no options. Those cannot be repaired without
// fabricating questionnaire content.
func normalizeQuestions(raw []oracle.Question, stageTag string) ([]Question, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty question list", ErrMalformedResponse)
	}

	out := make([]Question, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for i, rq := range raw {
		prompt := strings.TrimSpace(rq.Text)
		if prompt == "" {
			return nil, fmt.Errorf("%w: question %d has no prompt text", ErrMalformedResponse, i+1)
		}

		id := strings.TrimSpace(rq.ID)
		if _, dup := seen[id]; id == "" || dup {
			id = fmt.Sprintf("q%s_%d", stageTag, i+1)
		}
		seen[id] = struct{}{}

		kind := questionKind(rq.Type)
		options := rq.Options
		if kind == QuestionSingleChoice {
			if len(options) == 0 {
				return nil, fmt.Errorf("%w: choice question %q has no options", ErrMalformedResponse, id)
			}
		} else {
			options = nil
		}

		out = append(out, Question{
			ID:      id,
			Prompt:  prompt,
			Kind:    kind,
			Options: options,
		})
	}
	return out, nil
}

// questionKind maps the oracle's loose type labels onto the three recognized
// kinds. Anything unrecognized degrades to FREE_TEXT.
func questionKind(t string) QuestionKind {
	switch strings.ToLower(strings.TrimSpace(t)) {
	case "choice", string(QuestionSingleChoice):
		return QuestionSingleChoice
	case "scale", string(QuestionScale):
		return QuestionScale
	default:
		return QuestionFreeText
	}
}

// normalizeSymptoms drops unusable catalog entries and fills missing ids.
// Unlike question lists an empty result is not an error here; the caller
// substitutes the built-in catalog.
func normalizeSymptoms(raw []oracle.Symptom) []Symptom {
	out := make([]Symptom, 0, len(raw))
	for i, rs := range raw {
		name := strings.TrimSpace(rs.Name)
		if name == "" {
			continue
		}
		id := strings.TrimSpace(rs.ID)
		if id == "" {
			id = fmt.Sprintf("s%d", i+1)
		}
		out = append(out, Symptom{ID: id, Name: name, Clarifications: rs.Clarifications})
	}
	return out
}

// normalizeReport requires all three documents non-empty; the recommended
// test list may be empty, but entries without a name are dropped.
func normalizeReport(raw oracle.Report) (*Report, error) {
	plan := strings.TrimSpace(raw.PersonalPlan)
	prep := strings.TrimSpace(raw.PsychPrep)
	summary := strings.TrimSpace(raw.SpecialistDoc)
	if plan == "" || prep == "" || summary == "" {
		return nil, fmt.Errorf("%w: report is missing one or more documents", ErrMalformedResponse)
	}

	tests := make([]RecommendedTest, 0, len(raw.RecommendedTests))
	for _, t := range raw.RecommendedTests {
		name := strings.TrimSpace(t.Name)
		if name == "" {
			continue
		}
		tests = append(tests, RecommendedTest{Name: name, Description: strings.TrimSpace(t.Description)})
	}

	return &Report{
		PersonalPlan:      plan,
		ClinicianPrep:     prep,
		SpecialistSummary: summary,
		RecommendedTests:  tests,
	}, nil
}

// placeholderReport is the clearly labeled substitute stored when the oracle
// replied but its report failed validation. Sessions must always reach a
// viewable terminal state.
func placeholderReport() *Report {
	const notice = "Report generation failed. The assessment itself was saved; " +
		"please contact support or retake the final step with a clinician."
	return &Report{
		PersonalPlan:      notice,
		ClinicianPrep:     notice,
		SpecialistSummary: notice,
		RecommendedTests:  []RecommendedTest{},
		Degraded:          true,
	}
}
