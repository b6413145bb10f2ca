package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/opora-health/opora_backend/internal/service/survey"
)

// Questionnaire is one generated stage of an assessment session. Records are
// append-only; the payload columns are kind-specific and only one of them is
// populated per row.
type Questionnaire struct {
	ent.Schema
}

func (Questionnaire) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (Questionnaire) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("session_id", uuid.UUID{}).
			Comment("FK → assessment_sessions.id"),

		field.Enum("kind").
			GoType(survey.QuestionnaireKind("")),

		field.JSON("questions", []survey.Question{}).
			Optional(),

		field.JSON("symptoms", []survey.Symptom{}).
			Optional(),

		field.JSON("variants", []string{}).
			Optional(),

		field.JSON("report", &survey.Report{}).
			Optional(),

		field.JSON("answers", survey.AnswerSet{}).
			Optional().
			Comment("Nil until the one-time answer submission lands"),
	}
}

func (Questionnaire) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", AssessmentSession.Type).
			Ref("questionnaires").
			Unique().
			Required().
			Field("session_id"),
	}
}

func (Questionnaire) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "created_at"),
		index.Fields("session_id", "kind").
			Unique(),
	}
}
