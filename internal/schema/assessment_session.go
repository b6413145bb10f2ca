package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/opora-health/opora_backend/internal/service/survey"
)

// AssessmentSession is one adaptive assessment run: intake, generated
// questionnaire stages, final report.
type AssessmentSession struct {
	ent.Schema
}

func (AssessmentSession) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (AssessmentSession) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("owner_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Authenticated user who started the session; nil for anonymous runs"),

		field.Enum("status").
			GoType(survey.Status("")).
			Default(string(survey.StatusIntakePending)),

		field.JSON("intake", &survey.Intake{}).
			Optional().
			Comment("Complaint and symptom selection, immutable once recorded"),
	}
}

func (AssessmentSession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("questionnaires", Questionnaire.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (AssessmentSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id", "status"),
		index.Fields("status"),
	}
}
