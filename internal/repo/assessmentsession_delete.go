// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/opora-health/opora_backend/internal/repo/assessmentsession"
	"github.com/opora-health/opora_backend/internal/repo/predicate"
)

// AssessmentSessionDelete is the builder for deleting a AssessmentSession entity.
type AssessmentSessionDelete struct {
	config
	hooks    []Hook
	mutation *AssessmentSessionMutation
}

// Where appends a list predicates to the AssessmentSessionDelete builder.
func (_d *AssessmentSessionDelete) Where(ps ...predicate.AssessmentSession) *AssessmentSessionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AssessmentSessionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AssessmentSessionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AssessmentSessionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(assessmentsession.Table, sqlgraph.NewFieldSpec(assessmentsession.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// AssessmentSessionDeleteOne is the builder for deleting a single AssessmentSession entity.
type AssessmentSessionDeleteOne struct {
	_d *AssessmentSessionDelete
}

// Where appends a list predicates to the AssessmentSessionDelete builder.
func (_d *AssessmentSessionDeleteOne) Where(ps ...predicate.AssessmentSession) *AssessmentSessionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AssessmentSessionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{assessmentsession.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AssessmentSessionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
