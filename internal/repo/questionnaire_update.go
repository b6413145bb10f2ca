// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/opora-health/opora_backend/internal/repo/assessmentsession"
	"github.com/opora-health/opora_backend/internal/repo/predicate"
	"github.com/opora-health/opora_backend/internal/repo/questionnaire"
	"github.com/opora-health/opora_backend/internal/service/survey"
)

// QuestionnaireUpdate is the builder for updating Questionnaire entities.
type QuestionnaireUpdate struct {
	config
	hooks    []Hook
	mutation *QuestionnaireMutation
}

// Where appends a list predicates to the QuestionnaireUpdate builder.
func (_u *QuestionnaireUpdate) Where(ps ...predicate.Questionnaire) *QuestionnaireUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *QuestionnaireUpdate) SetSessionID(v uuid.UUID) *QuestionnaireUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *QuestionnaireUpdate) SetNillableSessionID(v *uuid.UUID) *QuestionnaireUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *QuestionnaireUpdate) SetKind(v survey.QuestionnaireKind) *QuestionnaireUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *QuestionnaireUpdate) SetNillableKind(v *survey.QuestionnaireKind) *QuestionnaireUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *QuestionnaireUpdate) SetQuestions(v []survey.Question) *QuestionnaireUpdate {
	_u.mutation.SetQuestions(v)
	return _u
}

// AppendQuestions appends value to the "questions" field.
func (_u *QuestionnaireUpdate) AppendQuestions(v []survey.Question) *QuestionnaireUpdate {
	_u.mutation.AppendQuestions(v)
	return _u
}

// ClearQuestions clears the value of the "questions" field.
func (_u *QuestionnaireUpdate) ClearQuestions() *QuestionnaireUpdate {
	_u.mutation.ClearQuestions()
	return _u
}

// SetSymptoms sets the "symptoms" field.
func (_u *QuestionnaireUpdate) SetSymptoms(v []survey.Symptom) *QuestionnaireUpdate {
	_u.mutation.SetSymptoms(v)
	return _u
}

// AppendSymptoms appends value to the "symptoms" field.
func (_u *QuestionnaireUpdate) AppendSymptoms(v []survey.Symptom) *QuestionnaireUpdate {
	_u.mutation.AppendSymptoms(v)
	return _u
}

// ClearSymptoms clears the value of the "symptoms" field.
func (_u *QuestionnaireUpdate) ClearSymptoms() *QuestionnaireUpdate {
	_u.mutation.ClearSymptoms()
	return _u
}

// SetVariants sets the "variants" field.
func (_u *QuestionnaireUpdate) SetVariants(v []string) *QuestionnaireUpdate {
	_u.mutation.SetVariants(v)
	return _u
}

// AppendVariants appends value to the "variants" field.
func (_u *QuestionnaireUpdate) AppendVariants(v []string) *QuestionnaireUpdate {
	_u.mutation.AppendVariants(v)
	return _u
}

// ClearVariants clears the value of the "variants" field.
func (_u *QuestionnaireUpdate) ClearVariants() *QuestionnaireUpdate {
	_u.mutation.ClearVariants()
	return _u
}

// SetReport sets the "report" field.
func (_u *QuestionnaireUpdate) SetReport(v *survey.Report) *QuestionnaireUpdate {
	_u.mutation.SetReport(v)
	return _u
}

// ClearReport clears the value of the "report" field.
func (_u *QuestionnaireUpdate) ClearReport() *QuestionnaireUpdate {
	_u.mutation.ClearReport()
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *QuestionnaireUpdate) SetAnswers(v survey.AnswerSet) *QuestionnaireUpdate {
	_u.mutation.SetAnswers(v)
	return _u
}

// ClearAnswers clears the value of the "answers" field.
func (_u *QuestionnaireUpdate) ClearAnswers() *QuestionnaireUpdate {
	_u.mutation.ClearAnswers()
	return _u
}

// SetSession sets the "session" edge to the AssessmentSession entity.
func (_u *QuestionnaireUpdate) SetSession(v *AssessmentSession) *QuestionnaireUpdate {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the QuestionnaireMutation object of the builder.
func (_u *QuestionnaireUpdate) Mutation() *QuestionnaireMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the AssessmentSession entity.
func (_u *QuestionnaireUpdate) ClearSession() *QuestionnaireUpdate {
	_u.mutation.ClearSession()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuestionnaireUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionnaireUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuestionnaireUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionnaireUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionnaireUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := questionnaire.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`repo: validator failed for field "Questionnaire.kind": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Questionnaire.session"`)
	}
	return nil
}

func (_u *QuestionnaireUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(questionnaire.Table, questionnaire.Columns, sqlgraph.NewFieldSpec(questionnaire.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(questionnaire.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(questionnaire.FieldQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, questionnaire.FieldQuestions, value)
		})
	}
	if _u.mutation.QuestionsCleared() {
		_spec.ClearField(questionnaire.FieldQuestions, field.TypeJSON)
	}
	if value, ok := _u.mutation.Symptoms(); ok {
		_spec.SetField(questionnaire.FieldSymptoms, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSymptoms(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, questionnaire.FieldSymptoms, value)
		})
	}
	if _u.mutation.SymptomsCleared() {
		_spec.ClearField(questionnaire.FieldSymptoms, field.TypeJSON)
	}
	if value, ok := _u.mutation.Variants(); ok {
		_spec.SetField(questionnaire.FieldVariants, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedVariants(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, questionnaire.FieldVariants, value)
		})
	}
	if _u.mutation.VariantsCleared() {
		_spec.ClearField(questionnaire.FieldVariants, field.TypeJSON)
	}
	if value, ok := _u.mutation.Report(); ok {
		_spec.SetField(questionnaire.FieldReport, field.TypeJSON, value)
	}
	if _u.mutation.ReportCleared() {
		_spec.ClearField(questionnaire.FieldReport, field.TypeJSON)
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(questionnaire.FieldAnswers, field.TypeJSON, value)
	}
	if _u.mutation.AnswersCleared() {
		_spec.ClearField(questionnaire.FieldAnswers, field.TypeJSON)
	}
	if _u.mutation.SessionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   questionnaire.SessionTable,
			Columns: []string{questionnaire.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assessmentsession.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   questionnaire.SessionTable,
			Columns: []string{questionnaire.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assessmentsession.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questionnaire.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuestionnaireUpdateOne is the builder for updating a single Questionnaire entity.
type QuestionnaireUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuestionnaireMutation
}

// SetSessionID sets the "session_id" field.
func (_u *QuestionnaireUpdateOne) SetSessionID(v uuid.UUID) *QuestionnaireUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *QuestionnaireUpdateOne) SetNillableSessionID(v *uuid.UUID) *QuestionnaireUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *QuestionnaireUpdateOne) SetKind(v survey.QuestionnaireKind) *QuestionnaireUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *QuestionnaireUpdateOne) SetNillableKind(v *survey.QuestionnaireKind) *QuestionnaireUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *QuestionnaireUpdateOne) SetQuestions(v []survey.Question) *QuestionnaireUpdateOne {
	_u.mutation.SetQuestions(v)
	return _u
}

// AppendQuestions appends value to the "questions" field.
func (_u *QuestionnaireUpdateOne) AppendQuestions(v []survey.Question) *QuestionnaireUpdateOne {
	_u.mutation.AppendQuestions(v)
	return _u
}

// ClearQuestions clears the value of the "questions" field.
func (_u *QuestionnaireUpdateOne) ClearQuestions() *QuestionnaireUpdateOne {
	_u.mutation.ClearQuestions()
	return _u
}

// SetSymptoms sets the "symptoms" field.
func (_u *QuestionnaireUpdateOne) SetSymptoms(v []survey.Symptom) *QuestionnaireUpdateOne {
	_u.mutation.SetSymptoms(v)
	return _u
}

// AppendSymptoms appends value to the "symptoms" field.
func (_u *QuestionnaireUpdateOne) AppendSymptoms(v []survey.Symptom) *QuestionnaireUpdateOne {
	_u.mutation.AppendSymptoms(v)
	return _u
}

// ClearSymptoms clears the value of the "symptoms" field.
func (_u *QuestionnaireUpdateOne) ClearSymptoms() *QuestionnaireUpdateOne {
	_u.mutation.ClearSymptoms()
	return _u
}

// SetVariants sets the "variants" field.
func (_u *QuestionnaireUpdateOne) SetVariants(v []string) *QuestionnaireUpdateOne {
	_u.mutation.SetVariants(v)
	return _u
}

// AppendVariants appends value to the "variants" field.
func (_u *QuestionnaireUpdateOne) AppendVariants(v []string) *QuestionnaireUpdateOne {
	_u.mutation.AppendVariants(v)
	return _u
}

// ClearVariants clears the value of the "variants" field.
func (_u *QuestionnaireUpdateOne) ClearVariants() *QuestionnaireUpdateOne {
	_u.mutation.ClearVariants()
	return _u
}

// SetReport sets the "report" field.
func (_u *QuestionnaireUpdateOne) SetReport(v *survey.Report) *QuestionnaireUpdateOne {
	_u.mutation.SetReport(v)
	return _u
}

// ClearReport clears the value of the "report" field.
func (_u *QuestionnaireUpdateOne) ClearReport() *QuestionnaireUpdateOne {
	_u.mutation.ClearReport()
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *QuestionnaireUpdateOne) SetAnswers(v survey.AnswerSet) *QuestionnaireUpdateOne {
	_u.mutation.SetAnswers(v)
	return _u
}

// ClearAnswers clears the value of the "answers" field.
func (_u *QuestionnaireUpdateOne) ClearAnswers() *QuestionnaireUpdateOne {
	_u.mutation.ClearAnswers()
	return _u
}

// SetSession sets the "session" edge to the AssessmentSession entity.
func (_u *QuestionnaireUpdateOne) SetSession(v *AssessmentSession) *QuestionnaireUpdateOne {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the QuestionnaireMutation object of the builder.
func (_u *QuestionnaireUpdateOne) Mutation() *QuestionnaireMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the AssessmentSession entity.
func (_u *QuestionnaireUpdateOne) ClearSession() *QuestionnaireUpdateOne {
	_u.mutation.ClearSession()
	return _u
}

// Where appends a list predicates to the QuestionnaireUpdate builder.
func (_u *QuestionnaireUpdateOne) Where(ps ...predicate.Questionnaire) *QuestionnaireUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuestionnaireUpdateOne) Select(field string, fields ...string) *QuestionnaireUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Questionnaire entity.
func (_u *QuestionnaireUpdateOne) Save(ctx context.Context) (*Questionnaire, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionnaireUpdateOne) SaveX(ctx context.Context) *Questionnaire {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuestionnaireUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionnaireUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionnaireUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := questionnaire.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`repo: validator failed for field "Questionnaire.kind": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Questionnaire.session"`)
	}
	return nil
}

func (_u *QuestionnaireUpdateOne) sqlSave(ctx context.Context) (_node *Questionnaire, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(questionnaire.Table, questionnaire.Columns, sqlgraph.NewFieldSpec(questionnaire.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Questionnaire.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, questionnaire.FieldID)
		for _, f := range fields {
			if !questionnaire.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != questionnaire.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(questionnaire.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(questionnaire.FieldQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, questionnaire.FieldQuestions, value)
		})
	}
	if _u.mutation.QuestionsCleared() {
		_spec.ClearField(questionnaire.FieldQuestions, field.TypeJSON)
	}
	if value, ok := _u.mutation.Symptoms(); ok {
		_spec.SetField(questionnaire.FieldSymptoms, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSymptoms(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, questionnaire.FieldSymptoms, value)
		})
	}
	if _u.mutation.SymptomsCleared() {
		_spec.ClearField(questionnaire.FieldSymptoms, field.TypeJSON)
	}
	if value, ok := _u.mutation.Variants(); ok {
		_spec.SetField(questionnaire.FieldVariants, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedVariants(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, questionnaire.FieldVariants, value)
		})
	}
	if _u.mutation.VariantsCleared() {
		_spec.ClearField(questionnaire.FieldVariants, field.TypeJSON)
	}
	if value, ok := _u.mutation.Report(); ok {
		_spec.SetField(questionnaire.FieldReport, field.TypeJSON, value)
	}
	if _u.mutation.ReportCleared() {
		_spec.ClearField(questionnaire.FieldReport, field.TypeJSON)
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(questionnaire.FieldAnswers, field.TypeJSON, value)
	}
	if _u.mutation.AnswersCleared() {
		_spec.ClearField(questionnaire.FieldAnswers, field.TypeJSON)
	}
	if _u.mutation.SessionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   questionnaire.SessionTable,
			Columns: []string{questionnaire.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assessmentsession.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   questionnaire.SessionTable,
			Columns: []string{questionnaire.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assessmentsession.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Questionnaire{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questionnaire.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
