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

// QuestionnaireCreate is the builder for creating a Questionnaire entity.
type QuestionnaireCreate struct {
	config
	mutation *QuestionnaireMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *QuestionnaireCreate) SetCreatedAt(v time.Time) *QuestionnaireCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QuestionnaireCreate) SetNillableCreatedAt(v *time.Time) *QuestionnaireCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *QuestionnaireCreate) SetSessionID(v uuid.UUID) *QuestionnaireCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *QuestionnaireCreate) SetKind(v survey.QuestionnaireKind) *QuestionnaireCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetQuestions sets the "questions" field.
func (_c *QuestionnaireCreate) SetQuestions(v []survey.Question) *QuestionnaireCreate {
	_c.mutation.SetQuestions(v)
	return _c
}

// SetSymptoms sets the "symptoms" field.
func (_c *QuestionnaireCreate) SetSymptoms(v []survey.Symptom) *QuestionnaireCreate {
	_c.mutation.SetSymptoms(v)
	return _c
}

// SetVariants sets the "variants" field.
func (_c *QuestionnaireCreate) SetVariants(v []string) *QuestionnaireCreate {
	_c.mutation.SetVariants(v)
	return _c
}

// SetReport sets the "report" field.
func (_c *QuestionnaireCreate) SetReport(v *survey.Report) *QuestionnaireCreate {
	_c.mutation.SetReport(v)
	return _c
}

// SetAnswers sets the "answers" field.
func (_c *QuestionnaireCreate) SetAnswers(v survey.AnswerSet) *QuestionnaireCreate {
	_c.mutation.SetAnswers(v)
	return _c
}

// SetID sets the "id" field.
func (_c *QuestionnaireCreate) SetID(v uuid.UUID) *QuestionnaireCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *QuestionnaireCreate) SetNillableID(v *uuid.UUID) *QuestionnaireCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetSession sets the "session" edge to the AssessmentSession entity.
func (_c *QuestionnaireCreate) SetSession(v *AssessmentSession) *QuestionnaireCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the QuestionnaireMutation object of the builder.
func (_c *QuestionnaireCreate) Mutation() *QuestionnaireMutation {
	return _c.mutation
}

// Save creates the Questionnaire in the database.
func (_c *QuestionnaireCreate) Save(ctx context.Context) (*Questionnaire, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuestionnaireCreate) SaveX(ctx context.Context) *Questionnaire {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionnaireCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionnaireCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuestionnaireCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := questionnaire.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := questionnaire.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuestionnaireCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Questionnaire.created_at"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`repo: missing required field "Questionnaire.session_id"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`repo: missing required field "Questionnaire.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := questionnaire.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`repo: validator failed for field "Questionnaire.kind": %w`, err)}
		}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`repo: missing required edge "Questionnaire.session"`)}
	}
	return nil
}

func (_c *QuestionnaireCreate) sqlSave(ctx context.Context) (*Questionnaire, error) {
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

func (_c *QuestionnaireCreate) createSpec() (*Questionnaire, *sqlgraph.CreateSpec) {
	var (
		_node = &Questionnaire{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(questionnaire.Table, sqlgraph.NewFieldSpec(questionnaire.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(questionnaire.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(questionnaire.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Questions(); ok {
		_spec.SetField(questionnaire.FieldQuestions, field.TypeJSON, value)
		_node.Questions = value
	}
	if value, ok := _c.mutation.Symptoms(); ok {
		_spec.SetField(questionnaire.FieldSymptoms, field.TypeJSON, value)
		_node.Symptoms = value
	}
	if value, ok := _c.mutation.Variants(); ok {
		_spec.SetField(questionnaire.FieldVariants, field.TypeJSON, value)
		_node.Variants = value
	}
	if value, ok := _c.mutation.Report(); ok {
		_spec.SetField(questionnaire.FieldReport, field.TypeJSON, value)
		_node.Report = value
	}
	if value, ok := _c.mutation.Answers(); ok {
		_spec.SetField(questionnaire.FieldAnswers, field.TypeJSON, value)
		_node.Answers = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
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
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Questionnaire.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QuestionnaireUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *QuestionnaireCreate) OnConflict(opts ...sql.ConflictOption) *QuestionnaireUpsertOne {
	_c.conflict = opts
	return &QuestionnaireUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Questionnaire.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QuestionnaireCreate) OnConflictColumns(columns ...string) *QuestionnaireUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QuestionnaireUpsertOne{
		create: _c,
	}
}

type (
	// QuestionnaireUpsertOne is the builder for "upsert"-ing
	//  one Questionnaire node.
	QuestionnaireUpsertOne struct {
		create *QuestionnaireCreate
	}

	// QuestionnaireUpsert is the "OnConflict" setter.
	QuestionnaireUpsert struct {
		*sql.UpdateSet
	}
)

// SetSessionID sets the "session_id" field.
func (u *QuestionnaireUpsert) SetSessionID(v uuid.UUID) *QuestionnaireUpsert {
	u.Set(questionnaire.FieldSessionID, v)
	return u
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *QuestionnaireUpsert) UpdateSessionID() *QuestionnaireUpsert {
	u.SetExcluded(questionnaire.FieldSessionID)
	return u
}

// SetKind sets the "kind" field.
func (u *QuestionnaireUpsert) SetKind(v survey.QuestionnaireKind) *QuestionnaireUpsert {
	u.Set(questionnaire.FieldKind, v)
	return u
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *QuestionnaireUpsert) UpdateKind() *QuestionnaireUpsert {
	u.SetExcluded(questionnaire.FieldKind)
	return u
}

// SetQuestions sets the "questions" field.
func (u *QuestionnaireUpsert) SetQuestions(v []survey.Question) *QuestionnaireUpsert {
	u.Set(questionnaire.FieldQuestions, v)
	return u
}

// UpdateQuestions sets the "questions" field to the value that was provided on create.
func (u *QuestionnaireUpsert) UpdateQuestions() *QuestionnaireUpsert {
	u.SetExcluded(questionnaire.FieldQuestions)
	return u
}

// ClearQuestions clears the value of the "questions" field.
func (u *QuestionnaireUpsert) ClearQuestions() *QuestionnaireUpsert {
	u.SetNull(questionnaire.FieldQuestions)
	return u
}

// SetSymptoms sets the "symptoms" field.
func (u *QuestionnaireUpsert) SetSymptoms(v []survey.Symptom) *QuestionnaireUpsert {
	u.Set(questionnaire.FieldSymptoms, v)
	return u
}

// UpdateSymptoms sets the "symptoms" field to the value that was provided on create.
func (u *QuestionnaireUpsert) UpdateSymptoms() *QuestionnaireUpsert {
	u.SetExcluded(questionnaire.FieldSymptoms)
	return u
}

// ClearSymptoms clears the value of the "symptoms" field.
func (u *QuestionnaireUpsert) ClearSymptoms() *QuestionnaireUpsert {
	u.SetNull(questionnaire.FieldSymptoms)
	return u
}

// SetVariants sets the "variants" field.
func (u *QuestionnaireUpsert) SetVariants(v []string) *QuestionnaireUpsert {
	u.Set(questionnaire.FieldVariants, v)
	return u
}

// UpdateVariants sets the "variants" field to the value that was provided on create.
func (u *QuestionnaireUpsert) UpdateVariants() *QuestionnaireUpsert {
	u.SetExcluded(questionnaire.FieldVariants)
	return u
}

// ClearVariants clears the value of the "variants" field.
func (u *QuestionnaireUpsert) ClearVariants() *QuestionnaireUpsert {
	u.SetNull(questionnaire.FieldVariants)
	return u
}

// SetReport sets the "report" field.
func (u *QuestionnaireUpsert) SetReport(v *survey.Report) *QuestionnaireUpsert {
	u.Set(questionnaire.FieldReport, v)
	return u
}

// UpdateReport sets the "report" field to the value that was provided on create.
func (u *QuestionnaireUpsert) UpdateReport() *QuestionnaireUpsert {
	u.SetExcluded(questionnaire.FieldReport)
	return u
}

// ClearReport clears the value of the "report" field.
func (u *QuestionnaireUpsert) ClearReport() *QuestionnaireUpsert {
	u.SetNull(questionnaire.FieldReport)
	return u
}

// SetAnswers sets the "answers" field.
func (u *QuestionnaireUpsert) SetAnswers(v survey.AnswerSet) *QuestionnaireUpsert {
	u.Set(questionnaire.FieldAnswers, v)
	return u
}

// UpdateAnswers sets the "answers" field to the value that was provided on create.
func (u *QuestionnaireUpsert) UpdateAnswers() *QuestionnaireUpsert {
	u.SetExcluded(questionnaire.FieldAnswers)
	return u
}

// ClearAnswers clears the value of the "answers" field.
func (u *QuestionnaireUpsert) ClearAnswers() *QuestionnaireUpsert {
	u.SetNull(questionnaire.FieldAnswers)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Questionnaire.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(questionnaire.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *QuestionnaireUpsertOne) UpdateNewValues() *QuestionnaireUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(questionnaire.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(questionnaire.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Questionnaire.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *QuestionnaireUpsertOne) Ignore() *QuestionnaireUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QuestionnaireUpsertOne) DoNothing() *QuestionnaireUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QuestionnaireCreate.OnConflict
// documentation for more info.
func (u *QuestionnaireUpsertOne) Update(set func(*QuestionnaireUpsert)) *QuestionnaireUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QuestionnaireUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionID sets the "session_id" field.
func (u *QuestionnaireUpsertOne) SetSessionID(v uuid.UUID) *QuestionnaireUpsertOne {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *QuestionnaireUpsertOne) UpdateSessionID() *QuestionnaireUpsertOne {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.UpdateSessionID()
	})
}

// SetKind sets the "kind" field.
func (u *QuestionnaireUpsertOne) SetKind(v survey.QuestionnaireKind) *QuestionnaireUpsertOne {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *QuestionnaireUpsertOne) UpdateKind() *QuestionnaireUpsertOne {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.UpdateKind()
	})
}

// SetQuestions sets the "questions" field.
func (u *QuestionnaireUpsertOne) SetQuestions(v []survey.Question) *QuestionnaireUpsertOne {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.SetQuestions(v)
	})
}

// UpdateQuestions sets the "questions" field to the value that was provided on create.
func (u *QuestionnaireUpsertOne) UpdateQuestions() *QuestionnaireUpsertOne {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.UpdateQuestions()
	})
}

// ClearQuestions clears the value of the "questions" field.
func (u *QuestionnaireUpsertOne) ClearQuestions() *QuestionnaireUpsertOne {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.ClearQuestions()
	})
}

// SetSymptoms sets the "symptoms" field.
func (u *QuestionnaireUpsertOne) SetSymptoms(v []survey.Symptom) *QuestionnaireUpsertOne {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.SetSymptoms(v)
	})
}

// UpdateSymptoms sets the "symptoms" field to the value that was provided on create.
func (u *QuestionnaireUpsertOne) UpdateSymptoms() *QuestionnaireUpsertOne {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.UpdateSymptoms()
	})
}

// ClearSymptoms clears the value of the "symptoms" field.
func (u *QuestionnaireUpsertOne) ClearSymptoms() *QuestionnaireUpsertOne {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.ClearSymptoms()
	})
}

// SetVariants sets the "variants" field.
func (u *QuestionnaireUpsertOne) SetVariants(v []string) *QuestionnaireUpsertOne {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.SetVariants(v)
	})
}

// UpdateVariants sets the "variants" field to the value that was provided on create.
func (u *QuestionnaireUpsertOne) UpdateVariants() *QuestionnaireUpsertOne {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.UpdateVariants()
	})
}

// ClearVariants clears the value of the "variants" field.
func (u *QuestionnaireUpsertOne) ClearVariants() *QuestionnaireUpsertOne {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.ClearVariants()
	})
}

// SetReport sets the "report" field.
func (u *QuestionnaireUpsertOne) SetReport(v *survey.Report) *QuestionnaireUpsertOne {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.SetReport(v)
	})
}

// UpdateReport sets the "report" field to the value that was provided on create.
func (u *QuestionnaireUpsertOne) UpdateReport() *QuestionnaireUpsertOne {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.UpdateReport()
	})
}

// ClearReport clears the value of the "report" field.
func (u *QuestionnaireUpsertOne) ClearReport() *QuestionnaireUpsertOne {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.ClearReport()
	})
}

// SetAnswers sets the "answers" field.
func (u *QuestionnaireUpsertOne) SetAnswers(v survey.AnswerSet) *QuestionnaireUpsertOne {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.SetAnswers(v)
	})
}

// UpdateAnswers sets the "answers" field to the value that was provided on create.
func (u *QuestionnaireUpsertOne) UpdateAnswers() *QuestionnaireUpsertOne {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.UpdateAnswers()
	})
}

// ClearAnswers clears the value of the "answers" field.
func (u *QuestionnaireUpsertOne) ClearAnswers() *QuestionnaireUpsertOne {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.ClearAnswers()
	})
}

// Exec executes the query.
func (u *QuestionnaireUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for QuestionnaireCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QuestionnaireUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *QuestionnaireUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: QuestionnaireUpsertOne.ID is not supported by MySQL driver. Use QuestionnaireUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *QuestionnaireUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// QuestionnaireCreateBulk is the builder for creating many Questionnaire entities in bulk.
type QuestionnaireCreateBulk struct {
	config
	err      error
	builders []*QuestionnaireCreate
	conflict []sql.ConflictOption
}

// Save creates the Questionnaire entities in the database.
func (_c *QuestionnaireCreateBulk) Save(ctx context.Context) ([]*Questionnaire, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Questionnaire, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuestionnaireMutation)
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
func (_c *QuestionnaireCreateBulk) SaveX(ctx context.Context) []*Questionnaire {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionnaireCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionnaireCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Questionnaire.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QuestionnaireUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *QuestionnaireCreateBulk) OnConflict(opts ...sql.ConflictOption) *QuestionnaireUpsertBulk {
	_c.conflict = opts
	return &QuestionnaireUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Questionnaire.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QuestionnaireCreateBulk) OnConflictColumns(columns ...string) *QuestionnaireUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QuestionnaireUpsertBulk{
		create: _c,
	}
}

// QuestionnaireUpsertBulk is the builder for "upsert"-ing
// a bulk of Questionnaire nodes.
type QuestionnaireUpsertBulk struct {
	create *QuestionnaireCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Questionnaire.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(questionnaire.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *QuestionnaireUpsertBulk) UpdateNewValues() *QuestionnaireUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(questionnaire.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(questionnaire.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Questionnaire.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *QuestionnaireUpsertBulk) Ignore() *QuestionnaireUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QuestionnaireUpsertBulk) DoNothing() *QuestionnaireUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QuestionnaireCreateBulk.OnConflict
// documentation for more info.
func (u *QuestionnaireUpsertBulk) Update(set func(*QuestionnaireUpsert)) *QuestionnaireUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QuestionnaireUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionID sets the "session_id" field.
func (u *QuestionnaireUpsertBulk) SetSessionID(v uuid.UUID) *QuestionnaireUpsertBulk {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *QuestionnaireUpsertBulk) UpdateSessionID() *QuestionnaireUpsertBulk {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.UpdateSessionID()
	})
}

// SetKind sets the "kind" field.
func (u *QuestionnaireUpsertBulk) SetKind(v survey.QuestionnaireKind) *QuestionnaireUpsertBulk {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *QuestionnaireUpsertBulk) UpdateKind() *QuestionnaireUpsertBulk {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.UpdateKind()
	})
}

// SetQuestions sets the "questions" field.
func (u *QuestionnaireUpsertBulk) SetQuestions(v []survey.Question) *QuestionnaireUpsertBulk {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.SetQuestions(v)
	})
}

// UpdateQuestions sets the "questions" field to the value that was provided on create.
func (u *QuestionnaireUpsertBulk) UpdateQuestions() *QuestionnaireUpsertBulk {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.UpdateQuestions()
	})
}

// ClearQuestions clears the value of the "questions" field.
func (u *QuestionnaireUpsertBulk) ClearQuestions() *QuestionnaireUpsertBulk {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.ClearQuestions()
	})
}

// SetSymptoms sets the "symptoms" field.
func (u *QuestionnaireUpsertBulk) SetSymptoms(v []survey.Symptom) *QuestionnaireUpsertBulk {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.SetSymptoms(v)
	})
}

// UpdateSymptoms sets the "symptoms" field to the value that was provided on create.
func (u *QuestionnaireUpsertBulk) UpdateSymptoms() *QuestionnaireUpsertBulk {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.UpdateSymptoms()
	})
}

// ClearSymptoms clears the value of the "symptoms" field.
func (u *QuestionnaireUpsertBulk) ClearSymptoms() *QuestionnaireUpsertBulk {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.ClearSymptoms()
	})
}

// SetVariants sets the "variants" field.
func (u *QuestionnaireUpsertBulk) SetVariants(v []string) *QuestionnaireUpsertBulk {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.SetVariants(v)
	})
}

// UpdateVariants sets the "variants" field to the value that was provided on create.
func (u *QuestionnaireUpsertBulk) UpdateVariants() *QuestionnaireUpsertBulk {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.UpdateVariants()
	})
}

// ClearVariants clears the value of the "variants" field.
func (u *QuestionnaireUpsertBulk) ClearVariants() *QuestionnaireUpsertBulk {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.ClearVariants()
	})
}

// SetReport sets the "report" field.
func (u *QuestionnaireUpsertBulk) SetReport(v *survey.Report) *QuestionnaireUpsertBulk {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.SetReport(v)
	})
}

// UpdateReport sets the "report" field to the value that was provided on create.
func (u *QuestionnaireUpsertBulk) UpdateReport() *QuestionnaireUpsertBulk {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.UpdateReport()
	})
}

// ClearReport clears the value of the "report" field.
func (u *QuestionnaireUpsertBulk) ClearReport() *QuestionnaireUpsertBulk {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.ClearReport()
	})
}

// SetAnswers sets the "answers" field.
func (u *QuestionnaireUpsertBulk) SetAnswers(v survey.AnswerSet) *QuestionnaireUpsertBulk {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.SetAnswers(v)
	})
}

// UpdateAnswers sets the "answers" field to the value that was provided on create.
func (u *QuestionnaireUpsertBulk) UpdateAnswers() *QuestionnaireUpsertBulk {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.UpdateAnswers()
	})
}

// ClearAnswers clears the value of the "answers" field.
func (u *QuestionnaireUpsertBulk) ClearAnswers() *QuestionnaireUpsertBulk {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.ClearAnswers()
	})
}

// Exec executes the query.
func (u *QuestionnaireUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the QuestionnaireCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for QuestionnaireCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QuestionnaireUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
