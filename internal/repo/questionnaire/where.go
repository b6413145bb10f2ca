// Code generated by ent, DO NOT EDIT.

package questionnaire

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/opora-health/opora_backend/internal/repo/predicate"
	"github.com/opora-health/opora_backend/internal/service/survey"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v uuid.UUID) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldEQ(FieldSessionID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldLTE(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v uuid.UUID) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v uuid.UUID) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...uuid.UUID) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...uuid.UUID) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldNotIn(FieldSessionID, vs...))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v survey.QuestionnaireKind) predicate.Questionnaire {
	vc := v
	return predicate.Questionnaire(sql.FieldEQ(FieldKind, vc))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v survey.QuestionnaireKind) predicate.Questionnaire {
	vc := v
	return predicate.Questionnaire(sql.FieldNEQ(FieldKind, vc))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...survey.QuestionnaireKind) predicate.Questionnaire {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.Questionnaire(sql.FieldIn(FieldKind, v...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...survey.QuestionnaireKind) predicate.Questionnaire {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.Questionnaire(sql.FieldNotIn(FieldKind, v...))
}

// QuestionsIsNil applies the IsNil predicate on the "questions" field.
func QuestionsIsNil() predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldIsNull(FieldQuestions))
}

// QuestionsNotNil applies the NotNil predicate on the "questions" field.
func QuestionsNotNil() predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldNotNull(FieldQuestions))
}

// SymptomsIsNil applies the IsNil predicate on the "symptoms" field.
func SymptomsIsNil() predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldIsNull(FieldSymptoms))
}

// SymptomsNotNil applies the NotNil predicate on the "symptoms" field.
func SymptomsNotNil() predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldNotNull(FieldSymptoms))
}

// VariantsIsNil applies the IsNil predicate on the "variants" field.
func VariantsIsNil() predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldIsNull(FieldVariants))
}

// VariantsNotNil applies the NotNil predicate on the "variants" field.
func VariantsNotNil() predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldNotNull(FieldVariants))
}

// ReportIsNil applies the IsNil predicate on the "report" field.
func ReportIsNil() predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldIsNull(FieldReport))
}

// ReportNotNil applies the NotNil predicate on the "report" field.
func ReportNotNil() predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldNotNull(FieldReport))
}

// AnswersIsNil applies the IsNil predicate on the "answers" field.
func AnswersIsNil() predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldIsNull(FieldAnswers))
}

// AnswersNotNil applies the NotNil predicate on the "answers" field.
func AnswersNotNil() predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldNotNull(FieldAnswers))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.Questionnaire {
	return predicate.Questionnaire(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.AssessmentSession) predicate.Questionnaire {
	return predicate.Questionnaire(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Questionnaire) predicate.Questionnaire {
	return predicate.Questionnaire(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Questionnaire) predicate.Questionnaire {
	return predicate.Questionnaire(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Questionnaire) predicate.Questionnaire {
	return predicate.Questionnaire(sql.NotPredicates(p))
}
