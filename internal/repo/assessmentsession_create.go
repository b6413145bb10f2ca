// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/opora-health/opora_backend/internal/repo/assessmentsession"
	"github.com/opora-health/opora_backend/internal/repo/questionnaire"
	"github.com/opora-health/opora_backend/internal/service/survey"
)

// AssessmentSessionCreate is the builder for creating a AssessmentSession entity.
type AssessmentSessionCreate struct {
	config
	mutation *AssessmentSessionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *AssessmentSessionCreate) SetCreatedAt(v time.Time) *AssessmentSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AssessmentSessionCreate) SetNillableCreatedAt(v *time.Time) *AssessmentSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AssessmentSessionCreate) SetUpdatedAt(v time.Time) *AssessmentSessionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AssessmentSessionCreate) SetNillableUpdatedAt(v *time.Time) *AssessmentSessionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetOwnerID sets the "owner_id" field.
func (_c *AssessmentSessionCreate) SetOwnerID(v uuid.UUID) *AssessmentSessionCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_c *AssessmentSessionCreate) SetNillableOwnerID(v *uuid.UUID) *AssessmentSessionCreate {
	if v != nil {
		_c.SetOwnerID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *AssessmentSessionCreate) SetStatus(v survey.Status) *AssessmentSessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AssessmentSessionCreate) SetNillableStatus(v *survey.Status) *AssessmentSessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetIntake sets the "intake" field.
func (_c *AssessmentSessionCreate) SetIntake(v *survey.Intake) *AssessmentSessionCreate {
	_c.mutation.SetIntake(v)
	return _c
}

// SetID sets the "id" field.
func (_c *AssessmentSessionCreate) SetID(v uuid.UUID) *AssessmentSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AssessmentSessionCreate) SetNillableID(v *uuid.UUID) *AssessmentSessionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddQuestionnaireIDs adds the "questionnaires" edge to the Questionnaire entity by IDs.
func (_c *AssessmentSessionCreate) AddQuestionnaireIDs(ids ...uuid.UUID) *AssessmentSessionCreate {
	_c.mutation.AddQuestionnaireIDs(ids...)
	return _c
}

// AddQuestionnaires adds the "questionnaires" edges to the Questionnaire entity.
func (_c *AssessmentSessionCreate) AddQuestionnaires(v ...*Questionnaire) *AssessmentSessionCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddQuestionnaireIDs(ids...)
}

// Mutation returns the AssessmentSessionMutation object of the builder.
func (_c *AssessmentSessionCreate) Mutation() *AssessmentSessionMutation {
	return _c.mutation
}

// Save creates the AssessmentSession in the database.
func (_c *AssessmentSessionCreate) Save(ctx context.Context) (*AssessmentSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AssessmentSessionCreate) SaveX(ctx context.Context) *AssessmentSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AssessmentSessionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := assessmentsession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := assessmentsession.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := assessmentsession.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := assessmentsession.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AssessmentSessionCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "AssessmentSession.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "AssessmentSession.updated_at"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "AssessmentSession.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := assessmentsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "AssessmentSession.status": %w`, err)}
		}
	}
	return nil
}

func (_c *AssessmentSessionCreate) sqlSave(ctx context.Context) (*AssessmentSession, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AssessmentSessionCreate) createSpec() (*AssessmentSession, *sqlgraph.CreateSpec) {
	var (
		_node = &AssessmentSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(assessmentsession.Table, sqlgraph.NewFieldSpec(assessmentsession.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(assessmentsession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(assessmentsession.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(assessmentsession.FieldOwnerID, field.TypeUUID, value)
		_node.OwnerID = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(assessmentsession.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Intake(); ok {
		_spec.SetField(assessmentsession.FieldIntake, field.TypeJSON, value)
		_node.Intake = value
	}
	if nodes := _c.mutation.QuestionnairesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AssessmentSession.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AssessmentSessionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *AssessmentSessionCreate) OnConflict(opts ...sql.ConflictOption) *AssessmentSessionUpsertOne {
	_c.conflict = opts
	return &AssessmentSessionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AssessmentSession.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AssessmentSessionCreate) OnConflictColumns(columns ...string) *AssessmentSessionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AssessmentSessionUpsertOne{
		create: _c,
	}
}

type (
	// AssessmentSessionUpsertOne is the builder for "upsert"-ing
	//  one AssessmentSession node.
	AssessmentSessionUpsertOne struct {
		create *AssessmentSessionCreate
	}

	// AssessmentSessionUpsert is the "OnConflict" setter.
	AssessmentSessionUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *AssessmentSessionUpsert) SetUpdatedAt(v time.Time) *AssessmentSessionUpsert {
	u.Set(assessmentsession.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AssessmentSessionUpsert) UpdateUpdatedAt() *AssessmentSessionUpsert {
	u.SetExcluded(assessmentsession.FieldUpdatedAt)
	return u
}

// SetOwnerID sets the "owner_id" field.
func (u *AssessmentSessionUpsert) SetOwnerID(v uuid.UUID) *AssessmentSessionUpsert {
	u.Set(assessmentsession.FieldOwnerID, v)
	return u
}

// UpdateOwnerID sets the "owner_id" field to the value that was provided on create.
func (u *AssessmentSessionUpsert) UpdateOwnerID() *AssessmentSessionUpsert {
	u.SetExcluded(assessmentsession.FieldOwnerID)
	return u
}

// ClearOwnerID clears the value of the "owner_id" field.
func (u *AssessmentSessionUpsert) ClearOwnerID() *AssessmentSessionUpsert {
	u.SetNull(assessmentsession.FieldOwnerID)
	return u
}

// SetStatus sets the "status" field.
func (u *AssessmentSessionUpsert) SetStatus(v survey.Status) *AssessmentSessionUpsert {
	u.Set(assessmentsession.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AssessmentSessionUpsert) UpdateStatus() *AssessmentSessionUpsert {
	u.SetExcluded(assessmentsession.FieldStatus)
	return u
}

// SetIntake sets the "intake" field.
func (u *AssessmentSessionUpsert) SetIntake(v *survey.Intake) *AssessmentSessionUpsert {
	u.Set(assessmentsession.FieldIntake, v)
	return u
}

// UpdateIntake sets the "intake" field to the value that was provided on create.
func (u *AssessmentSessionUpsert) UpdateIntake() *AssessmentSessionUpsert {
	u.SetExcluded(assessmentsession.FieldIntake)
	return u
}

// ClearIntake clears the value of the "intake" field.
func (u *AssessmentSessionUpsert) ClearIntake() *AssessmentSessionUpsert {
	u.SetNull(assessmentsession.FieldIntake)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AssessmentSession.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(assessmentsession.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AssessmentSessionUpsertOne) UpdateNewValues() *AssessmentSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(assessmentsession.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(assessmentsession.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AssessmentSession.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AssessmentSessionUpsertOne) Ignore() *AssessmentSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AssessmentSessionUpsertOne) DoNothing() *AssessmentSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AssessmentSessionCreate.OnConflict
// documentation for more info.
func (u *AssessmentSessionUpsertOne) Update(set func(*AssessmentSessionUpsert)) *AssessmentSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AssessmentSessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AssessmentSessionUpsertOne) SetUpdatedAt(v time.Time) *AssessmentSessionUpsertOne {
	return u.Update(func(s *AssessmentSessionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AssessmentSessionUpsertOne) UpdateUpdatedAt() *AssessmentSessionUpsertOne {
	return u.Update(func(s *AssessmentSessionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetOwnerID sets the "owner_id" field.
func (u *AssessmentSessionUpsertOne) SetOwnerID(v uuid.UUID) *AssessmentSessionUpsertOne {
	return u.Update(func(s *AssessmentSessionUpsert) {
		s.SetOwnerID(v)
	})
}

// UpdateOwnerID sets the "owner_id" field to the value that was provided on create.
func (u *AssessmentSessionUpsertOne) UpdateOwnerID() *AssessmentSessionUpsertOne {
	return u.Update(func(s *AssessmentSessionUpsert) {
		s.UpdateOwnerID()
	})
}

// ClearOwnerID clears the value of the "owner_id" field.
func (u *AssessmentSessionUpsertOne) ClearOwnerID() *AssessmentSessionUpsertOne {
	return u.Update(func(s *AssessmentSessionUpsert) {
		s.ClearOwnerID()
	})
}

// SetStatus sets the "status" field.
func (u *AssessmentSessionUpsertOne) SetStatus(v survey.Status) *AssessmentSessionUpsertOne {
	return u.Update(func(s *AssessmentSessionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AssessmentSessionUpsertOne) UpdateStatus() *AssessmentSessionUpsertOne {
	return u.Update(func(s *AssessmentSessionUpsert) {
		s.UpdateStatus()
	})
}

// SetIntake sets the "intake" field.
func (u *AssessmentSessionUpsertOne) SetIntake(v *survey.Intake) *AssessmentSessionUpsertOne {
	return u.Update(func(s *AssessmentSessionUpsert) {
		s.SetIntake(v)
	})
}

// UpdateIntake sets the "intake" field to the value that was provided on create.
func (u *AssessmentSessionUpsertOne) UpdateIntake() *AssessmentSessionUpsertOne {
	return u.Update(func(s *AssessmentSessionUpsert) {
		s.UpdateIntake()
	})
}

// ClearIntake clears the value of the "intake" field.
func (u *AssessmentSessionUpsertOne) ClearIntake() *AssessmentSessionUpsertOne {
	return u.Update(func(s *AssessmentSessionUpsert) {
		s.ClearIntake()
	})
}

// Exec executes the query.
func (u *AssessmentSessionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for AssessmentSessionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AssessmentSessionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AssessmentSessionUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: AssessmentSessionUpsertOne.ID is not supported by MySQL driver. Use AssessmentSessionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AssessmentSessionUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AssessmentSessionCreateBulk is the builder for creating many AssessmentSession entities in bulk.
type AssessmentSessionCreateBulk struct {
	config
	err      error
	builders []*AssessmentSessionCreate
	conflict []sql.ConflictOption
}

// Save creates the AssessmentSession entities in the database.
func (_c *AssessmentSessionCreateBulk) Save(ctx context.Context) ([]*AssessmentSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AssessmentSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AssessmentSessionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AssessmentSessionCreateBulk) SaveX(ctx context.Context) []*AssessmentSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AssessmentSession.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AssessmentSessionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *AssessmentSessionCreateBulk) OnConflict(opts ...sql.ConflictOption) *AssessmentSessionUpsertBulk {
	_c.conflict = opts
	return &AssessmentSessionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AssessmentSession.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AssessmentSessionCreateBulk) OnConflictColumns(columns ...string) *AssessmentSessionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AssessmentSessionUpsertBulk{
		create: _c,
	}
}

// AssessmentSessionUpsertBulk is the builder for "upsert"-ing
// a bulk of AssessmentSession nodes.
type AssessmentSessionUpsertBulk struct {
	create *AssessmentSessionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AssessmentSession.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(assessmentsession.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AssessmentSessionUpsertBulk) UpdateNewValues() *AssessmentSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(assessmentsession.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(assessmentsession.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AssessmentSession.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AssessmentSessionUpsertBulk) Ignore() *AssessmentSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AssessmentSessionUpsertBulk) DoNothing() *AssessmentSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AssessmentSessionCreateBulk.OnConflict
// documentation for more info.
func (u *AssessmentSessionUpsertBulk) Update(set func(*AssessmentSessionUpsert)) *AssessmentSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AssessmentSessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AssessmentSessionUpsertBulk) SetUpdatedAt(v time.Time) *AssessmentSessionUpsertBulk {
	return u.Update(func(s *AssessmentSessionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AssessmentSessionUpsertBulk) UpdateUpdatedAt() *AssessmentSessionUpsertBulk {
	return u.Update(func(s *AssessmentSessionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetOwnerID sets the "owner_id" field.
func (u *AssessmentSessionUpsertBulk) SetOwnerID(v uuid.UUID) *AssessmentSessionUpsertBulk {
	return u.Update(func(s *AssessmentSessionUpsert) {
		s.SetOwnerID(v)
	})
}

// UpdateOwnerID sets the "owner_id" field to the value that was provided on create.
func (u *AssessmentSessionUpsertBulk) UpdateOwnerID() *AssessmentSessionUpsertBulk {
	return u.Update(func(s *AssessmentSessionUpsert) {
		s.UpdateOwnerID()
	})
}

// ClearOwnerID clears the value of the "owner_id" field.
func (u *AssessmentSessionUpsertBulk) ClearOwnerID() *AssessmentSessionUpsertBulk {
	return u.Update(func(s *AssessmentSessionUpsert) {
		s.ClearOwnerID()
	})
}

// SetStatus sets the "status" field.
func (u *AssessmentSessionUpsertBulk) SetStatus(v survey.Status) *AssessmentSessionUpsertBulk {
	return u.Update(func(s *AssessmentSessionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AssessmentSessionUpsertBulk) UpdateStatus() *AssessmentSessionUpsertBulk {
	return u.Update(func(s *AssessmentSessionUpsert) {
		s.UpdateStatus()
	})
}

// SetIntake sets the "intake" field.
func (u *AssessmentSessionUpsertBulk) SetIntake(v *survey.Intake) *AssessmentSessionUpsertBulk {
	return u.Update(func(s *AssessmentSessionUpsert) {
		s.SetIntake(v)
	})
}

// UpdateIntake sets the "intake" field to the value that was provided on create.
func (u *AssessmentSessionUpsertBulk) UpdateIntake() *AssessmentSessionUpsertBulk {
	return u.Update(func(s *AssessmentSessionUpsert) {
		s.UpdateIntake()
	})
}

// ClearIntake clears the value of the "intake" field.
func (u *AssessmentSessionUpsertBulk) ClearIntake() *AssessmentSessionUpsertBulk {
	return u.Update(func(s *AssessmentSessionUpsert) {
		s.ClearIntake()
	})
}

// Exec executes the query.
func (u *AssessmentSessionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the AssessmentSessionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for AssessmentSessionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AssessmentSessionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
