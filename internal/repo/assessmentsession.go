// Code generated by ent, DO NOT EDIT.

package repo

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/opora-health/opora_backend/internal/repo/assessmentsession"
	"github.com/opora-health/opora_backend/internal/service/survey"
)

// AssessmentSession is the model entity for the AssessmentSession schema.
type AssessmentSession struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Authenticated user who started the session; nil for anonymous runs
	OwnerID *uuid.UUID `json:"owner_id,omitempty"`
	// Status holds the value of the "status" field.
	Status survey.Status `json:"status,omitempty"`
	// Complaint and symptom selection, immutable once recorded
	Intake *survey.Intake `json:"intake,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AssessmentSessionQuery when eager-loading is set.
	Edges        AssessmentSessionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AssessmentSessionEdges holds the relations/edges for other nodes in the graph.
type AssessmentSessionEdges struct {
	// Questionnaires holds the value of the questionnaires edge.
	Questionnaires []*Questionnaire `json:"questionnaires,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// QuestionnairesOrErr returns the Questionnaires value or an error if the edge
// was not loaded in eager-loading.
func (e AssessmentSessionEdges) QuestionnairesOrErr() ([]*Questionnaire, error) {
	if e.loadedTypes[0] {
		return e.Questionnaires, nil
	}
	return nil, &NotLoadedError{edge: "questionnaires"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AssessmentSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case assessmentsession.FieldOwnerID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case assessmentsession.FieldIntake:
			values[i] = new([]byte)
		case assessmentsession.FieldStatus:
			values[i] = new(sql.NullString)
		case assessmentsession.FieldCreatedAt, assessmentsession.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case assessmentsession.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AssessmentSession fields.
func (_m *AssessmentSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case assessmentsession.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case assessmentsession.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case assessmentsession.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case assessmentsession.FieldOwnerID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field owner_id", values[i])
			} else if value.Valid {
				_m.OwnerID = new(uuid.UUID)
				*_m.OwnerID = *value.S.(*uuid.UUID)
			}
		case assessmentsession.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = survey.Status(value.String)
			}
		case assessmentsession.FieldIntake:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field intake", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Intake); err != nil {
					return fmt.Errorf("unmarshal field intake: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AssessmentSession.
// This includes values selected through modifiers, order, etc.
func (_m *AssessmentSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryQuestionnaires queries the "questionnaires" edge of the AssessmentSession entity.
func (_m *AssessmentSession) QueryQuestionnaires() *QuestionnaireQuery {
	return NewAssessmentSessionClient(_m.config).QueryQuestionnaires(_m)
}

// Update returns a builder for updating this AssessmentSession.
// Note that you need to call AssessmentSession.Unwrap() before calling this method if this AssessmentSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AssessmentSession) Update() *AssessmentSessionUpdateOne {
	return NewAssessmentSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AssessmentSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AssessmentSession) Unwrap() *AssessmentSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: AssessmentSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AssessmentSession) String() string {
	var builder strings.Builder
	builder.WriteString("AssessmentSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.OwnerID; v != nil {
		builder.WriteString("owner_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("intake=")
	builder.WriteString(fmt.Sprintf("%v", _m.Intake))
	builder.WriteByte(')')
	return builder.String()
}

// AssessmentSessions is a parsable slice of AssessmentSession.
type AssessmentSessions []*AssessmentSession
