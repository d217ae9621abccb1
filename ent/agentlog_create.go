// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/vibecheck/vibecheck/ent/agentlog"
	"github.com/vibecheck/vibecheck/ent/assessment"
)

// AgentLogCreate is the builder for creating a AgentLog entity.
type AgentLogCreate struct {
	config
	mutation *AgentLogMutation
	hooks    []Hook
}

// SetAssessmentID sets the "assessment_id" field.
func (_c *AgentLogCreate) SetAssessmentID(v string) *AgentLogCreate {
	_c.mutation.SetAssessmentID(v)
	return _c
}

// SetAgent sets the "agent" field.
func (_c *AgentLogCreate) SetAgent(v string) *AgentLogCreate {
	_c.mutation.SetAgent(v)
	return _c
}

// SetStep sets the "step" field.
func (_c *AgentLogCreate) SetStep(v int) *AgentLogCreate {
	_c.mutation.SetStep(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *AgentLogCreate) SetAction(v string) *AgentLogCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetTarget sets the "target" field.
func (_c *AgentLogCreate) SetTarget(v string) *AgentLogCreate {
	_c.mutation.SetTarget(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *AgentLogCreate) SetPayload(v string) *AgentLogCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetNillablePayload sets the "payload" field if the given value is not nil.
func (_c *AgentLogCreate) SetNillablePayload(v *string) *AgentLogCreate {
	if v != nil {
		_c.SetPayload(*v)
	}
	return _c
}

// SetResponseCode sets the "response_code" field.
func (_c *AgentLogCreate) SetResponseCode(v int) *AgentLogCreate {
	_c.mutation.SetResponseCode(v)
	return _c
}

// SetNillableResponseCode sets the "response_code" field if the given value is not nil.
func (_c *AgentLogCreate) SetNillableResponseCode(v *int) *AgentLogCreate {
	if v != nil {
		_c.SetResponseCode(*v)
	}
	return _c
}

// SetResponsePreview sets the "response_preview" field.
func (_c *AgentLogCreate) SetResponsePreview(v string) *AgentLogCreate {
	_c.mutation.SetResponsePreview(v)
	return _c
}

// SetNillableResponsePreview sets the "response_preview" field if the given value is not nil.
func (_c *AgentLogCreate) SetNillableResponsePreview(v *string) *AgentLogCreate {
	if v != nil {
		_c.SetResponsePreview(*v)
	}
	return _c
}

// SetReasoning sets the "reasoning" field.
func (_c *AgentLogCreate) SetReasoning(v string) *AgentLogCreate {
	_c.mutation.SetReasoning(v)
	return _c
}

// SetFindingID sets the "finding_id" field.
func (_c *AgentLogCreate) SetFindingID(v string) *AgentLogCreate {
	_c.mutation.SetFindingID(v)
	return _c
}

// SetNillableFindingID sets the "finding_id" field if the given value is not nil.
func (_c *AgentLogCreate) SetNillableFindingID(v *string) *AgentLogCreate {
	if v != nil {
		_c.SetFindingID(*v)
	}
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AgentLogCreate) SetTimestamp(v time.Time) *AgentLogCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AgentLogCreate) SetNillableTimestamp(v *time.Time) *AgentLogCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentLogCreate) SetID(v string) *AgentLogCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetAssessment sets the "assessment" edge to the Assessment entity.
func (_c *AgentLogCreate) SetAssessment(v *Assessment) *AgentLogCreate {
	return _c.SetAssessmentID(v.ID)
}

// Mutation returns the AgentLogMutation object of the builder.
func (_c *AgentLogCreate) Mutation() *AgentLogMutation {
	return _c.mutation
}

// Save creates the AgentLog in the database.
func (_c *AgentLogCreate) Save(ctx context.Context) (*AgentLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentLogCreate) SaveX(ctx context.Context) *AgentLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentLogCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := agentlog.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentLogCreate) check() error {
	if _, ok := _c.mutation.AssessmentID(); !ok {
		return &ValidationError{Name: "assessment_id", err: errors.New(`ent: missing required field "AgentLog.assessment_id"`)}
	}
	if _, ok := _c.mutation.Agent(); !ok {
		return &ValidationError{Name: "agent", err: errors.New(`ent: missing required field "AgentLog.agent"`)}
	}
	if _, ok := _c.mutation.Step(); !ok {
		return &ValidationError{Name: "step", err: errors.New(`ent: missing required field "AgentLog.step"`)}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "AgentLog.action"`)}
	}
	if _, ok := _c.mutation.Target(); !ok {
		return &ValidationError{Name: "target", err: errors.New(`ent: missing required field "AgentLog.target"`)}
	}
	if _, ok := _c.mutation.Reasoning(); !ok {
		return &ValidationError{Name: "reasoning", err: errors.New(`ent: missing required field "AgentLog.reasoning"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AgentLog.timestamp"`)}
	}
	if len(_c.mutation.AssessmentIDs()) == 0 {
		return &ValidationError{Name: "assessment", err: errors.New(`ent: missing required edge "AgentLog.assessment"`)}
	}
	return nil
}

func (_c *AgentLogCreate) sqlSave(ctx context.Context) (*AgentLog, error) {
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
			return nil, fmt.Errorf("unexpected AgentLog.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentLogCreate) createSpec() (*AgentLog, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentlog.Table, sqlgraph.NewFieldSpec(agentlog.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Agent(); ok {
		_spec.SetField(agentlog.FieldAgent, field.TypeString, value)
		_node.Agent = value
	}
	if value, ok := _c.mutation.Step(); ok {
		_spec.SetField(agentlog.FieldStep, field.TypeInt, value)
		_node.Step = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(agentlog.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.Target(); ok {
		_spec.SetField(agentlog.FieldTarget, field.TypeString, value)
		_node.Target = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(agentlog.FieldPayload, field.TypeString, value)
		_node.Payload = &value
	}
	if value, ok := _c.mutation.ResponseCode(); ok {
		_spec.SetField(agentlog.FieldResponseCode, field.TypeInt, value)
		_node.ResponseCode = &value
	}
	if value, ok := _c.mutation.ResponsePreview(); ok {
		_spec.SetField(agentlog.FieldResponsePreview, field.TypeString, value)
		_node.ResponsePreview = &value
	}
	if value, ok := _c.mutation.Reasoning(); ok {
		_spec.SetField(agentlog.FieldReasoning, field.TypeString, value)
		_node.Reasoning = value
	}
	if value, ok := _c.mutation.FindingID(); ok {
		_spec.SetField(agentlog.FieldFindingID, field.TypeString, value)
		_node.FindingID = &value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(agentlog.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if nodes := _c.mutation.AssessmentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentlog.AssessmentTable,
			Columns: []string{agentlog.AssessmentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assessment.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AssessmentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AgentLogCreateBulk is the builder for creating many AgentLog entities in bulk.
type AgentLogCreateBulk struct {
	config
	err      error
	builders []*AgentLogCreate
}

// Save creates the AgentLog entities in the database.
func (_c *AgentLogCreateBulk) Save(ctx context.Context) ([]*AgentLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentLogMutation)
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
func (_c *AgentLogCreateBulk) SaveX(ctx context.Context) []*AgentLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
