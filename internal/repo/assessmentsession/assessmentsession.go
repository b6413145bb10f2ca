// Code generated by ent, DO NOT EDIT.

package assessmentsession

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/opora-health/opora_backend/internal/service/survey"
)

const (
	// Label holds the string label denoting the assessmentsession type in the database.
	Label = "assessment_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldOwnerID holds the string denoting the owner_id field in the database.
	FieldOwnerID = "owner_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldIntake holds the string denoting the intake field in the database.
	FieldIntake = "intake"
	// EdgeQuestionnaires holds the string denoting the questionnaires edge name in mutations.
	EdgeQuestionnaires = "questionnaires"
	// Table holds the table name of the assessmentsession in the database.
	Table = "assessment_sessions"
	// QuestionnairesTable is the table that holds the questionnaires relation/edge.
	QuestionnairesTable = "questionnaires"
	// QuestionnairesInverseTable is the table name for the Questionnaire entity.
	// It exists in this package in order to avoid circular dependency with the "questionnaire" package.
	QuestionnairesInverseTable = "questionnaires"
	// QuestionnairesColumn is the table column denoting the questionnaires relation/edge.
	QuestionnairesColumn = "session_id"
)

// Columns holds all SQL columns for assessmentsession fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldOwnerID,
	FieldStatus,
	FieldIntake,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

const DefaultStatus survey.Status = "intake_pending"

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s survey.Status) error {
	switch s {
	case "intake_pending", "stage1_pending", "stage2_pending", "stage3_pending", "finished":
		return nil
	default:
		return fmt.Errorf("assessmentsession: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the AssessmentSession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByOwnerID orders the results by the owner_id field.
func ByOwnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByQuestionnairesCount orders the results by questionnaires count.
func ByQuestionnairesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newQuestionnairesStep(), opts...)
	}
}

// ByQuestionnaires orders the results by questionnaires terms.
func ByQuestionnaires(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newQuestionnairesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newQuestionnairesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(QuestionnairesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, QuestionnairesTable, QuestionnairesColumn),
	)
}
