// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/vibecheck/vibecheck/ent/tunnelsession"
)

// TunnelSessionCreate is the builder for creating a TunnelSession entity.
type TunnelSessionCreate struct {
	config
	mutation *TunnelSessionMutation
	hooks    []Hook
}

// SetTargetPort sets the "target_port" field.
func (_c *TunnelSessionCreate) SetTargetPort(v int) *TunnelSessionCreate {
	_c.mutation.SetTargetPort(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *TunnelSessionCreate) SetStatus(v tunnelsession.Status) *TunnelSessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TunnelSessionCreate) SetNillableStatus(v *tunnelsession.Status) *TunnelSessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TunnelSessionCreate) SetCreatedAt(v time.Time) *TunnelSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TunnelSessionCreate) SetNillableCreatedAt(v *time.Time) *TunnelSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (_c *TunnelSessionCreate) SetLastHeartbeat(v time.Time) *TunnelSessionCreate {
	_c.mutation.SetLastHeartbeat(v)
	return _c
}

// SetNillableLastHeartbeat sets the "last_heartbeat" field if the given value is not nil.
func (_c *TunnelSessionCreate) SetNillableLastHeartbeat(v *time.Time) *TunnelSessionCreate {
	if v != nil {
		_c.SetLastHeartbeat(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TunnelSessionCreate) SetID(v string) *TunnelSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the TunnelSessionMutation object of the builder.
func (_c *TunnelSessionCreate) Mutation() *TunnelSessionMutation {
	return _c.mutation
}

// Save creates the TunnelSession in the database.
func (_c *TunnelSessionCreate) Save(ctx context.Context) (*TunnelSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TunnelSessionCreate) SaveX(ctx context.Context) *TunnelSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TunnelSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TunnelSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TunnelSessionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := tunnelsession.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := tunnelsession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.LastHeartbeat(); !ok {
		v := tunnelsession.DefaultLastHeartbeat()
		_c.mutation.SetLastHeartbeat(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TunnelSessionCreate) check() error {
	if _, ok := _c.mutation.TargetPort(); !ok {
		return &ValidationError{Name: "target_port", err: errors.New(`ent: missing required field "TunnelSession.target_port"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "TunnelSession.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := tunnelsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TunnelSession.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TunnelSession.created_at"`)}
	}
	if _, ok := _c.mutation.LastHeartbeat(); !ok {
		return &ValidationError{Name: "last_heartbeat", err: errors.New(`ent: missing required field "TunnelSession.last_heartbeat"`)}
	}
	return nil
}

func (_c *TunnelSessionCreate) sqlSave(ctx context.Context) (*TunnelSession, error) {
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
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected TunnelSession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TunnelSessionCreate) createSpec() (*TunnelSession, *sqlgraph.CreateSpec) {
	var (
		_node = &TunnelSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tunnelsession.Table, sqlgraph.NewFieldSpec(tunnelsession.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TargetPort(); ok {
		_spec.SetField(tunnelsession.FieldTargetPort, field.TypeInt, value)
		_node.TargetPort = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(tunnelsession.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(tunnelsession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.LastHeartbeat(); ok {
		_spec.SetField(tunnelsession.FieldLastHeartbeat, field.TypeTime, value)
		_node.LastHeartbeat = value
	}
	return _node, _spec
}

// TunnelSessionCreateBulk is the builder for creating many TunnelSession entities in bulk.
type TunnelSessionCreateBulk struct {
	config
	err      error
	builders []*TunnelSessionCreate
}

// Save creates the TunnelSession entities in the database.
func (_c *TunnelSessionCreateBulk) Save(ctx context.Context) ([]*TunnelSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TunnelSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TunnelSessionMutation)
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
func (_c *TunnelSessionCreateBulk) SaveX(ctx context.Context) []*TunnelSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TunnelSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TunnelSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
