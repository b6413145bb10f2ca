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
	"github.com/opora-health/opora_backend/internal/repo/questionnaire"
	"github.com/opora-health/opora_backend/internal/service/survey"
)

// Questionnaire is the model entity for the Questionnaire schema.
type Questionnaire struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// FK → assessment_sessions.id
	SessionID uuid.UUID `json:"session_id,omitempty"`
	// Kind holds the value of the "kind" field.
	Kind survey.QuestionnaireKind `json:"kind,omitempty"`
	// Questions holds the value of the "questions" field.
	Questions []survey.Question `json:"questions,omitempty"`
	// Symptoms holds the value of the "symptoms" field.
	Symptoms []survey.Symptom `json:"symptoms,omitempty"`
	// Variants holds the value of the "variants" field.
	Variants []string `json:"variants,omitempty"`
	// Report holds the value of the "report" field.
	Report *survey.Report `json:"report,omitempty"`
	// Nil until the one-time answer submission lands
	Answers survey.AnswerSet `json:"answers,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the QuestionnaireQuery when eager-loading is set.
	Edges        QuestionnaireEdges `json:"edges"`
	selectValues sql.SelectValues
}

// QuestionnaireEdges holds the relations/edges for other nodes in the graph.
type QuestionnaireEdges struct {
	// Session holds the value of the session edge.
	Session *AssessmentSession `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e QuestionnaireEdges) SessionOrErr() (*AssessmentSession, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: assessmentsession.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Questionnaire) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case questionnaire.FieldQuestions, questionnaire.FieldSymptoms, questionnaire.FieldVariants, questionnaire.FieldReport, questionnaire.FieldAnswers:
			values[i] = new([]byte)
		case questionnaire.FieldKind:
			values[i] = new(sql.NullString)
		case questionnaire.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case questionnaire.FieldID, questionnaire.FieldSessionID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Questionnaire fields.
func (_m *Questionnaire) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case questionnaire.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case questionnaire.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case questionnaire.FieldSessionID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value != nil {
				_m.SessionID = *value
			}
		case questionnaire.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = survey.QuestionnaireKind(value.String)
			}
		case questionnaire.FieldQuestions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field questions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Questions); err != nil {
					return fmt.Errorf("unmarshal field questions: %w", err)
				}
			}
		case questionnaire.FieldSymptoms:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field symptoms", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Symptoms); err != nil {
					return fmt.Errorf("unmarshal field symptoms: %w", err)
				}
			}
		case questionnaire.FieldVariants:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field variants", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Variants); err != nil {
					return fmt.Errorf("unmarshal field variants: %w", err)
				}
			}
		case questionnaire.FieldReport:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field report", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Report); err != nil {
					return fmt.Errorf("unmarshal field report: %w", err)
				}
			}
		case questionnaire.FieldAnswers:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field answers", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Answers); err != nil {
					return fmt.Errorf("unmarshal field answers: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Questionnaire.
// This includes values selected through modifiers, order, etc.
func (_m *Questionnaire) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the Questionnaire entity.
func (_m *Questionnaire) QuerySession() *AssessmentSessionQuery {
	return NewQuestionnaireClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this Questionnaire.
// Note that you need to call Questionnaire.Unwrap() before calling this method if this Questionnaire
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Questionnaire) Update() *QuestionnaireUpdateOne {
	return NewQuestionnaireClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Questionnaire entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Questionnaire) Unwrap() *Questionnaire {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Questionnaire is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Questionnaire) String() string {
	var builder strings.Builder
	builder.WriteString("Questionnaire(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionID))
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.Kind))
	builder.WriteString(", ")
	builder.WriteString("questions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Questions))
	builder.WriteString(", ")
	builder.WriteString("symptoms=")
	builder.WriteString(fmt.Sprintf("%v", _m.Symptoms))
	builder.WriteString(", ")
	builder.WriteString("variants=")
	builder.WriteString(fmt.Sprintf("%v", _m.Variants))
	builder.WriteString(", ")
	builder.WriteString("report=")
	builder.WriteString(fmt.Sprintf("%v", _m.Report))
	builder.WriteString(", ")
	builder.WriteString("answers=")
	builder.WriteString(fmt.Sprintf("%v", _m.Answers))
	builder.WriteByte(')')
	return builder.String()
}

// Questionnaires is a parsable slice of Questionnaire.
type Questionnaires []*Questionnaire
