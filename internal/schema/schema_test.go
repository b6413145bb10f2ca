package schema

import (
	"testing"

	"entgo.io/ent/dialect/entsql"
)

func TestSessionCascadesToQuestionnaires(t *testing.T) {
	edges := AssessmentSession{}.Edges()
	if len(edges) != 1 {
		t.Fatalf("AssessmentSession has %d edges, want 1", len(edges))
	}
	desc := edges[0].Descriptor()
	if desc.Name != "questionnaires" || desc.Type != "Questionnaire" {
		t.Errorf("edge = %s -> %s, want questionnaires -> Questionnaire", desc.Name, desc.Type)
	}

	cascade := false
	for _, a := range desc.Annotations {
		if ann, ok := a.(*entsql.Annotation); ok && ann.OnDelete == entsql.Cascade {
			cascade = true
		}
	}
	if !cascade {
		t.Error("deleting a session must cascade to its questionnaires")
	}
}

func TestQuestionnaireBelongsToSession(t *testing.T) {
	edges := Questionnaire{}.Edges()
	if len(edges) != 1 {
		t.Fatalf("Questionnaire has %d edges, want 1", len(edges))
	}
	desc := edges[0].Descriptor()
	if desc.RefName != "questionnaires" {
		t.Errorf("edge ref = %q, want questionnaires", desc.RefName)
	}
	if !desc.Unique || !desc.Required {
		t.Error("every questionnaire needs exactly one owning session")
	}
	if desc.Field != "session_id" {
		t.Errorf("edge bound to field %q, want session_id", desc.Field)
	}
}
