// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/opora-health/opora_backend/internal/repo/assessmentsession"
	"github.com/opora-health/opora_backend/internal/repo/predicate"
	"github.com/opora-health/opora_backend/internal/repo/questionnaire"
	"github.com/opora-health/opora_backend/internal/service/survey"
)

// AssessmentSessionUpdate is the builder for updating AssessmentSession entities.
type AssessmentSessionUpdate struct {
	config
	hooks    []Hook
	mutation *AssessmentSessionMutation
}

// Where appends a list predicates to the AssessmentSessionUpdate builder.
func (_u *AssessmentSessionUpdate) Where(ps ...predicate.AssessmentSession) *AssessmentSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AssessmentSessionUpdate) SetUpdatedAt(v time.Time) *AssessmentSessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *AssessmentSessionUpdate) SetOwnerID(v uuid.UUID) *AssessmentSessionUpdate {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *AssessmentSessionUpdate) SetNillableOwnerID(v *uuid.UUID) *AssessmentSessionUpdate {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// ClearOwnerID clears the value of the "owner_id" field.
func (_u *AssessmentSessionUpdate) ClearOwnerID() *AssessmentSessionUpdate {
	_u.mutation.ClearOwnerID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AssessmentSessionUpdate) SetStatus(v survey.Status) *AssessmentSessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AssessmentSessionUpdate) SetNillableStatus(v *survey.Status) *AssessmentSessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetIntake sets the "intake" field.
func (_u *AssessmentSessionUpdate) SetIntake(v *survey.Intake) *AssessmentSessionUpdate {
	_u.mutation.SetIntake(v)
	return _u
}

// ClearIntake clears the value of the "intake" field.
func (_u *AssessmentSessionUpdate) ClearIntake() *AssessmentSessionUpdate {
	_u.mutation.ClearIntake()
	return _u
}

// AddQuestionnaireIDs adds the "questionnaires" edge to the Questionnaire entity by IDs.
func (_u *AssessmentSessionUpdate) AddQuestionnaireIDs(ids ...uuid.UUID) *AssessmentSessionUpdate {
	_u.mutation.AddQuestionnaireIDs(ids...)
	return _u
}

// AddQuestionnaires adds the "questionnaires" edges to the Questionnaire entity.
func (_u *AssessmentSessionUpdate) AddQuestionnaires(v ...*Questionnaire) *AssessmentSessionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQuestionnaireIDs(ids...)
}

// Mutation returns the AssessmentSessionMutation object of the builder.
func (_u *AssessmentSessionUpdate) Mutation() *AssessmentSessionMutation {
	return _u.mutation
}

// ClearQuestionnaires clears all "questionnaires" edges to the Questionnaire entity.
func (_u *AssessmentSessionUpdate) ClearQuestionnaires() *AssessmentSessionUpdate {
	_u.mutation.ClearQuestionnaires()
	return _u
}

// RemoveQuestionnaireIDs removes the "questionnaires" edge to Questionnaire entities by IDs.
func (_u *AssessmentSessionUpdate) RemoveQuestionnaireIDs(ids ...uuid.UUID) *AssessmentSessionUpdate {
	_u.mutation.RemoveQuestionnaireIDs(ids...)
	return _u
}

// RemoveQuestionnaires removes "questionnaires" edges to Questionnaire entities.
func (_u *AssessmentSessionUpdate) RemoveQuestionnaires(v ...*Questionnaire) *AssessmentSessionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQuestionnaireIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssessmentSessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssessmentSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AssessmentSessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := assessmentsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentSessionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := assessmentsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "AssessmentSession.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessmentsession.Table, assessmentsession.Columns, sqlgraph.NewFieldSpec(assessmentsession.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(assessmentsession.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(assessmentsession.FieldOwnerID, field.TypeUUID, value)
	}
	if _u.mutation.OwnerIDCleared() {
		_spec.ClearField(assessmentsession.FieldOwnerID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(assessmentsession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Intake(); ok {
		_spec.SetField(assessmentsession.FieldIntake, field.TypeJSON, value)
	}
	if _u.mutation.IntakeCleared() {
		_spec.ClearField(assessmentsession.FieldIntake, field.TypeJSON)
	}
	if _u.mutation.QuestionnairesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   assessmentsession.QuestionnairesTable,
			Columns: []string{assessmentsession.QuestionnairesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionnaire.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQuestionnairesIDs(); len(nodes) > 0 && !_u.mutation.QuestionnairesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   assessmentsession.QuestionnairesTable,
			Columns: []string{assessmentsession.QuestionnairesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionnaire.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionnairesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   assessmentsession.QuestionnairesTable,
			Columns: []string{assessmentsession.QuestionnairesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionnaire.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssessmentSessionUpdateOne is the builder for updating a single AssessmentSession entity.
type AssessmentSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssessmentSessionMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AssessmentSessionUpdateOne) SetUpdatedAt(v time.Time) *AssessmentSessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *AssessmentSessionUpdateOne) SetOwnerID(v uuid.UUID) *AssessmentSessionUpdateOne {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *AssessmentSessionUpdateOne) SetNillableOwnerID(v *uuid.UUID) *AssessmentSessionUpdateOne {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// ClearOwnerID clears the value of the "owner_id" field.
func (_u *AssessmentSessionUpdateOne) ClearOwnerID() *AssessmentSessionUpdateOne {
	_u.mutation.ClearOwnerID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AssessmentSessionUpdateOne) SetStatus(v survey.Status) *AssessmentSessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AssessmentSessionUpdateOne) SetNillableStatus(v *survey.Status) *AssessmentSessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetIntake sets the "intake" field.
func (_u *AssessmentSessionUpdateOne) SetIntake(v *survey.Intake) *AssessmentSessionUpdateOne {
	_u.mutation.SetIntake(v)
	return _u
}

// ClearIntake clears the value of the "intake" field.
func (_u *AssessmentSessionUpdateOne) ClearIntake() *AssessmentSessionUpdateOne {
	_u.mutation.ClearIntake()
	return _u
}

// AddQuestionnaireIDs adds the "questionnaires" edge to the Questionnaire entity by IDs.
func (_u *AssessmentSessionUpdateOne) AddQuestionnaireIDs(ids ...uuid.UUID) *AssessmentSessionUpdateOne {
	_u.mutation.AddQuestionnaireIDs(ids...)
	return _u
}

// AddQuestionnaires adds the "questionnaires" edges to the Questionnaire entity.
func (_u *AssessmentSessionUpdateOne) AddQuestionnaires(v ...*Questionnaire) *AssessmentSessionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQuestionnaireIDs(ids...)
}

// Mutation returns the AssessmentSessionMutation object of the builder.
func (_u *AssessmentSessionUpdateOne) Mutation() *AssessmentSessionMutation {
	return _u.mutation
}

// ClearQuestionnaires clears all "questionnaires" edges to the Questionnaire entity.
func (_u *AssessmentSessionUpdateOne) ClearQuestionnaires() *AssessmentSessionUpdateOne {
	_u.mutation.ClearQuestionnaires()
	return _u
}

// RemoveQuestionnaireIDs removes the "questionnaires" edge to Questionnaire entities by IDs.
func (_u *AssessmentSessionUpdateOne) RemoveQuestionnaireIDs(ids ...uuid.UUID) *AssessmentSessionUpdateOne {
	_u.mutation.RemoveQuestionnaireIDs(ids...)
	return _u
}

// RemoveQuestionnaires removes "questionnaires" edges to Questionnaire entities.
func (_u *AssessmentSessionUpdateOne) RemoveQuestionnaires(v ...*Questionnaire) *AssessmentSessionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQuestionnaireIDs(ids...)
}

// Where appends a list predicates to the AssessmentSessionUpdate builder.
func (_u *AssessmentSessionUpdateOne) Where(ps ...predicate.AssessmentSession) *AssessmentSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssessmentSessionUpdateOne) Select(field string, fields ...string) *AssessmentSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AssessmentSession entity.
func (_u *AssessmentSessionUpdateOne) Save(ctx context.Context) (*AssessmentSession, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentSessionUpdateOne) SaveX(ctx context.Context) *AssessmentSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssessmentSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AssessmentSessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := assessmentsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentSessionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := assessmentsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "AssessmentSession.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentSessionUpdateOne) sqlSave(ctx context.Context) (_node *AssessmentSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessmentsession.Table, assessmentsession.Columns, sqlgraph.NewFieldSpec(assessmentsession.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "AssessmentSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assessmentsession.FieldID)
		for _, f := range fields {
			if !assessmentsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != assessmentsession.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(assessmentsession.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(assessmentsession.FieldOwnerID, field.TypeUUID, value)
	}
	if _u.mutation.OwnerIDCleared() {
		_spec.ClearField(assessmentsession.FieldOwnerID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(assessmentsession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Intake(); ok {
		_spec.SetField(assessmentsession.FieldIntake, field.TypeJSON, value)
	}
	if _u.mutation.IntakeCleared() {
		_spec.ClearField(assessmentsession.FieldIntake, field.TypeJSON)
	}
	if _u.mutation.QuestionnairesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   assessmentsession.QuestionnairesTable,
			Columns: []string{assessmentsession.QuestionnairesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionnaire.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQuestionnairesIDs(); len(nodes) > 0 && !_u.mutation.QuestionnairesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   assessmentsession.QuestionnairesTable,
			Columns: []string{assessmentsession.QuestionnairesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionnaire.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionnairesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   assessmentsession.QuestionnairesTable,
			Columns: []string{assessmentsession.QuestionnairesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionnaire.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AssessmentSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
