// Code generated by ent, DO NOT EDIT.

package questionnaire

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/opora-health/opora_backend/internal/service/survey"
)

const (
	// Label holds the string label denoting the questionnaire type in the database.
	Label = "questionnaire"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldQuestions holds the string denoting the questions field in the database.
	FieldQuestions = "questions"
	// FieldSymptoms holds the string denoting the symptoms field in the database.
	FieldSymptoms = "symptoms"
	// FieldVariants holds the string denoting the variants field in the database.
	FieldVariants = "variants"
	// FieldReport holds the string denoting the report field in the database.
	FieldReport = "report"
	// FieldAnswers holds the string denoting the answers field in the database.
	FieldAnswers = "answers"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// Table holds the table name of the questionnaire in the database.
	Table = "questionnaires"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "questionnaires"
	// SessionInverseTable is the table name for the AssessmentSession entity.
	// It exists in this package in order to avoid circular dependency with the "assessmentsession" package.
	SessionInverseTable = "assessment_sessions"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "session_id"
)

// Columns holds all SQL columns for questionnaire fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldSessionID,
	FieldKind,
	FieldQuestions,
	FieldSymptoms,
	FieldVariants,
	FieldReport,
	FieldAnswers,
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
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// KindValidator is a validator for the "kind" field enum values. It is called by the builders before save.
func KindValidator(k survey.QuestionnaireKind) error {
	switch k {
	case "symptom_list", "variants", "stage_1", "stage_2", "stage_3", "result":
		return nil
	default:
		return fmt.Errorf("questionnaire: invalid enum value for kind field: %q", k)
	}
}

// OrderOption defines the ordering options for the Questionnaire queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// BySessionField orders the results by session field.
func BySessionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSessionStep(), sql.OrderByField(field, opts...))
	}
}
func newSessionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
	)
}
