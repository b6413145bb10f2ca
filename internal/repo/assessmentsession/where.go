// Code generated by ent, DO NOT EDIT.

package assessmentsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/opora-health/opora_backend/internal/repo/predicate"
	"github.com/opora-health/opora_backend/internal/service/survey"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v uuid.UUID) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldEQ(FieldOwnerID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldLTE(FieldUpdatedAt, v))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v uuid.UUID) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v uuid.UUID) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...uuid.UUID) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...uuid.UUID) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v uuid.UUID) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v uuid.UUID) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v uuid.UUID) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v uuid.UUID) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldLTE(FieldOwnerID, v))
}

// OwnerIDIsNil applies the IsNil predicate on the "owner_id" field.
func OwnerIDIsNil() predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldIsNull(FieldOwnerID))
}

// OwnerIDNotNil applies the NotNil predicate on the "owner_id" field.
func OwnerIDNotNil() predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldNotNull(FieldOwnerID))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v survey.Status) predicate.AssessmentSession {
	vc := v
	return predicate.AssessmentSession(sql.FieldEQ(FieldStatus, vc))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v survey.Status) predicate.AssessmentSession {
	vc := v
	return predicate.AssessmentSession(sql.FieldNEQ(FieldStatus, vc))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...survey.Status) predicate.AssessmentSession {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.AssessmentSession(sql.FieldIn(FieldStatus, v...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...survey.Status) predicate.AssessmentSession {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.AssessmentSession(sql.FieldNotIn(FieldStatus, v...))
}

// IntakeIsNil applies the IsNil predicate on the "intake" field.
func IntakeIsNil() predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldIsNull(FieldIntake))
}

// IntakeNotNil applies the NotNil predicate on the "intake" field.
func IntakeNotNil() predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldNotNull(FieldIntake))
}

// HasQuestionnaires applies the HasEdge predicate on the "questionnaires" edge.
func HasQuestionnaires() predicate.AssessmentSession {
	return predicate.AssessmentSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, QuestionnairesTable, QuestionnairesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasQuestionnairesWith applies the HasEdge predicate on the "questionnaires" edge with a given conditions (other predicates).
func HasQuestionnairesWith(preds ...predicate.Questionnaire) predicate.AssessmentSession {
	return predicate.AssessmentSession(func(s *sql.Selector) {
		step := newQuestionnairesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AssessmentSession) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AssessmentSession) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AssessmentSession) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.NotPredicates(p))
}
