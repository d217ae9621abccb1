// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/vibecheck/vibecheck/ent/predicate"
	"github.com/vibecheck/vibecheck/ent/tunnelsession"
)

// TunnelSessionUpdate is the builder for updating TunnelSession entities.
type TunnelSessionUpdate struct {
	config
	hooks    []Hook
	mutation *TunnelSessionMutation
}

// Where appends a list predicates to the TunnelSessionUpdate builder.
func (_u *TunnelSessionUpdate) Where(ps ...predicate.TunnelSession) *TunnelSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTargetPort sets the "target_port" field.
func (_u *TunnelSessionUpdate) SetTargetPort(v int) *TunnelSessionUpdate {
	_u.mutation.ResetTargetPort()
	_u.mutation.SetTargetPort(v)
	return _u
}

// SetNillableTargetPort sets the "target_port" field if the given value is not nil.
func (_u *TunnelSessionUpdate) SetNillableTargetPort(v *int) *TunnelSessionUpdate {
	if v != nil {
		_u.SetTargetPort(*v)
	}
	return _u
}

// AddTargetPort adds value to the "target_port" field.
func (_u *TunnelSessionUpdate) AddTargetPort(v int) *TunnelSessionUpdate {
	_u.mutation.AddTargetPort(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *TunnelSessionUpdate) SetStatus(v tunnelsession.Status) *TunnelSessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TunnelSessionUpdate) SetNillableStatus(v *tunnelsession.Status) *TunnelSessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (_u *TunnelSessionUpdate) SetLastHeartbeat(v time.Time) *TunnelSessionUpdate {
	_u.mutation.SetLastHeartbeat(v)
	return _u
}

// SetNillableLastHeartbeat sets the "last_heartbeat" field if the given value is not nil.
func (_u *TunnelSessionUpdate) SetNillableLastHeartbeat(v *time.Time) *TunnelSessionUpdate {
	if v != nil {
		_u.SetLastHeartbeat(*v)
	}
	return _u
}

// Mutation returns the TunnelSessionMutation object of the builder.
func (_u *TunnelSessionUpdate) Mutation() *TunnelSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TunnelSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TunnelSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TunnelSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TunnelSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TunnelSessionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := tunnelsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TunnelSession.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TunnelSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tunnelsession.Table, tunnelsession.Columns, sqlgraph.NewFieldSpec(tunnelsession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TargetPort(); ok {
		_spec.SetField(tunnelsession.FieldTargetPort, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTargetPort(); ok {
		_spec.AddField(tunnelsession.FieldTargetPort, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(tunnelsession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastHeartbeat(); ok {
		_spec.SetField(tunnelsession.FieldLastHeartbeat, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tunnelsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TunnelSessionUpdateOne is the builder for updating a single TunnelSession entity.
type TunnelSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TunnelSessionMutation
}

// SetTargetPort sets the "target_port" field.
func (_u *TunnelSessionUpdateOne) SetTargetPort(v int) *TunnelSessionUpdateOne {
	_u.mutation.ResetTargetPort()
	_u.mutation.SetTargetPort(v)
	return _u
}

// SetNillableTargetPort sets the "target_port" field if the given value is not nil.
func (_u *TunnelSessionUpdateOne) SetNillableTargetPort(v *int) *TunnelSessionUpdateOne {
	if v != nil {
		_u.SetTargetPort(*v)
	}
	return _u
}

// AddTargetPort adds value to the "target_port" field.
func (_u *TunnelSessionUpdateOne) AddTargetPort(v int) *TunnelSessionUpdateOne {
	_u.mutation.AddTargetPort(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *TunnelSessionUpdateOne) SetStatus(v tunnelsession.Status) *TunnelSessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TunnelSessionUpdateOne) SetNillableStatus(v *tunnelsession.Status) *TunnelSessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (_u *TunnelSessionUpdateOne) SetLastHeartbeat(v time.Time) *TunnelSessionUpdateOne {
	_u.mutation.SetLastHeartbeat(v)
	return _u
}

// SetNillableLastHeartbeat sets the "last_heartbeat" field if the given value is not nil.
func (_u *TunnelSessionUpdateOne) SetNillableLastHeartbeat(v *time.Time) *TunnelSessionUpdateOne {
	if v != nil {
		_u.SetLastHeartbeat(*v)
	}
	return _u
}

// Mutation returns the TunnelSessionMutation object of the builder.
func (_u *TunnelSessionUpdateOne) Mutation() *TunnelSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the TunnelSessionUpdate builder.
func (_u *TunnelSessionUpdateOne) Where(ps ...predicate.TunnelSession) *TunnelSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TunnelSessionUpdateOne) Select(field string, fields ...string) *TunnelSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TunnelSession entity.
func (_u *TunnelSessionUpdateOne) Save(ctx context.Context) (*TunnelSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TunnelSessionUpdateOne) SaveX(ctx context.Context) *TunnelSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TunnelSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TunnelSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TunnelSessionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := tunnelsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TunnelSession.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TunnelSessionUpdateOne) sqlSave(ctx context.Context) (_node *TunnelSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tunnelsession.Table, tunnelsession.Columns, sqlgraph.NewFieldSpec(tunnelsession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TunnelSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tunnelsession.FieldID)
		for _, f := range fields {
			if !tunnelsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tunnelsession.FieldID {
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
	if value, ok := _u.mutation.TargetPort(); ok {
		_spec.SetField(tunnelsession.FieldTargetPort, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTargetPort(); ok {
		_spec.AddField(tunnelsession.FieldTargetPort, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(tunnelsession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastHeartbeat(); ok {
		_spec.SetField(tunnelsession.FieldLastHeartbeat, field.TypeTime, value)
	}
	_node = &TunnelSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tunnelsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
