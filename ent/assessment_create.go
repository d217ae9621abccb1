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
	"github.com/vibecheck/vibecheck/ent/finding"
)

// AssessmentCreate is the builder for creating a Assessment entity.
type AssessmentCreate struct {
	config
	mutation *AssessmentMutation
	hooks    []Hook
}

// SetMode sets the "mode" field.
func (_c *AssessmentCreate) SetMode(v assessment.Mode) *AssessmentCreate {
	_c.mutation.SetMode(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AssessmentCreate) SetStatus(v assessment.Status) *AssessmentCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AssessmentCreate) SetNillableStatus(v *assessment.Status) *AssessmentCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetRepoURL sets the "repo_url" field.
func (_c *AssessmentCreate) SetRepoURL(v string) *AssessmentCreate {
	_c.mutation.SetRepoURL(v)
	return _c
}

// SetNillableRepoURL sets the "repo_url" field if the given value is not nil.
func (_c *AssessmentCreate) SetNillableRepoURL(v *string) *AssessmentCreate {
	if v != nil {
		_c.SetRepoURL(*v)
	}
	return _c
}

// SetTargetURL sets the "target_url" field.
func (_c *AssessmentCreate) SetTargetURL(v string) *AssessmentCreate {
	_c.mutation.SetTargetURL(v)
	return _c
}

// SetNillableTargetURL sets the "target_url" field if the given value is not nil.
func (_c *AssessmentCreate) SetNillableTargetURL(v *string) *AssessmentCreate {
	if v != nil {
		_c.SetTargetURL(*v)
	}
	return _c
}

// SetTunnelSessionID sets the "tunnel_session_id" field.
func (_c *AssessmentCreate) SetTunnelSessionID(v string) *AssessmentCreate {
	_c.mutation.SetTunnelSessionID(v)
	return _c
}

// SetNillableTunnelSessionID sets the "tunnel_session_id" field if the given value is not nil.
func (_c *AssessmentCreate) SetNillableTunnelSessionID(v *string) *AssessmentCreate {
	if v != nil {
		_c.SetTunnelSessionID(*v)
	}
	return _c
}

// SetAgents sets the "agents" field.
func (_c *AssessmentCreate) SetAgents(v []string) *AssessmentCreate {
	_c.mutation.SetAgents(v)
	return _c
}

// SetDepth sets the "depth" field.
func (_c *AssessmentCreate) SetDepth(v assessment.Depth) *AssessmentCreate {
	_c.mutation.SetDepth(v)
	return _c
}

// SetNillableDepth sets the "depth" field if the given value is not nil.
func (_c *AssessmentCreate) SetNillableDepth(v *assessment.Depth) *AssessmentCreate {
	if v != nil {
		_c.SetDepth(*v)
	}
	return _c
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (_c *AssessmentCreate) SetIdempotencyKey(v string) *AssessmentCreate {
	_c.mutation.SetIdempotencyKey(v)
	return _c
}

// SetNillableIdempotencyKey sets the "idempotency_key" field if the given value is not nil.
func (_c *AssessmentCreate) SetNillableIdempotencyKey(v *string) *AssessmentCreate {
	if v != nil {
		_c.SetIdempotencyKey(*v)
	}
	return _c
}

// SetFindingCounts sets the "finding_counts" field.
func (_c *AssessmentCreate) SetFindingCounts(v map[string]int) *AssessmentCreate {
	_c.mutation.SetFindingCounts(v)
	return _c
}

// SetErrorType sets the "error_type" field.
func (_c *AssessmentCreate) SetErrorType(v string) *AssessmentCreate {
	_c.mutation.SetErrorType(v)
	return _c
}

// SetNillableErrorType sets the "error_type" field if the given value is not nil.
func (_c *AssessmentCreate) SetNillableErrorType(v *string) *AssessmentCreate {
	if v != nil {
		_c.SetErrorType(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *AssessmentCreate) SetErrorMessage(v string) *AssessmentCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *AssessmentCreate) SetNillableErrorMessage(v *string) *AssessmentCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AssessmentCreate) SetCreatedAt(v time.Time) *AssessmentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AssessmentCreate) SetNillableCreatedAt(v *time.Time) *AssessmentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AssessmentCreate) SetUpdatedAt(v time.Time) *AssessmentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AssessmentCreate) SetNillableUpdatedAt(v *time.Time) *AssessmentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *AssessmentCreate) SetCompletedAt(v time.Time) *AssessmentCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *AssessmentCreate) SetNillableCompletedAt(v *time.Time) *AssessmentCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AssessmentCreate) SetID(v string) *AssessmentCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddFindingIDs adds the "findings" edge to the Finding entity by IDs.
func (_c *AssessmentCreate) AddFindingIDs(ids ...string) *AssessmentCreate {
	_c.mutation.AddFindingIDs(ids...)
	return _c
}

// AddFindings adds the "findings" edges to the Finding entity.
func (_c *AssessmentCreate) AddFindings(v ...*Finding) *AssessmentCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFindingIDs(ids...)
}

// AddAgentLogIDs adds the "agent_logs" edge to the AgentLog entity by IDs.
func (_c *AssessmentCreate) AddAgentLogIDs(ids ...string) *AssessmentCreate {
	_c.mutation.AddAgentLogIDs(ids...)
	return _c
}

// AddAgentLogs adds the "agent_logs" edges to the AgentLog entity.
func (_c *AssessmentCreate) AddAgentLogs(v ...*AgentLog) *AssessmentCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAgentLogIDs(ids...)
}

// Mutation returns the AssessmentMutation object of the builder.
func (_c *AssessmentCreate) Mutation() *AssessmentMutation {
	return _c.mutation
}

// Save creates the Assessment in the database.
func (_c *AssessmentCreate) Save(ctx context.Context) (*Assessment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AssessmentCreate) SaveX(ctx context.Context) *Assessment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AssessmentCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := assessment.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Depth(); !ok {
		v := assessment.DefaultDepth
		_c.mutation.SetDepth(v)
	}
	if _, ok := _c.mutation.FindingCounts(); !ok {
		v := assessment.DefaultFindingCounts
		_c.mutation.SetFindingCounts(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := assessment.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := assessment.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AssessmentCreate) check() error {
	if _, ok := _c.mutation.Mode(); !ok {
		return &ValidationError{Name: "mode", err: errors.New(`ent: missing required field "Assessment.mode"`)}
	}
	if v, ok := _c.mutation.Mode(); ok {
		if err := assessment.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "Assessment.mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Assessment.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := assessment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Assessment.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Depth(); !ok {
		return &ValidationError{Name: "depth", err: errors.New(`ent: missing required field "Assessment.depth"`)}
	}
	if v, ok := _c.mutation.Depth(); ok {
		if err := assessment.DepthValidator(v); err != nil {
			return &ValidationError{Name: "depth", err: fmt.Errorf(`ent: validator failed for field "Assessment.depth": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FindingCounts(); !ok {
		return &ValidationError{Name: "finding_counts", err: errors.New(`ent: missing required field "Assessment.finding_counts"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Assessment.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Assessment.updated_at"`)}
	}
	return nil
}

func (_c *AssessmentCreate) sqlSave(ctx context.Context) (*Assessment, error) {
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
			return nil, fmt.Errorf("unexpected Assessment.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AssessmentCreate) createSpec() (*Assessment, *sqlgraph.CreateSpec) {
	var (
		_node = &Assessment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(assessment.Table, sqlgraph.NewFieldSpec(assessment.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Mode(); ok {
		_spec.SetField(assessment.FieldMode, field.TypeEnum, value)
		_node.Mode = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(assessment.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.RepoURL(); ok {
		_spec.SetField(assessment.FieldRepoURL, field.TypeString, value)
		_node.RepoURL = &value
	}
	if value, ok := _c.mutation.TargetURL(); ok {
		_spec.SetField(assessment.FieldTargetURL, field.TypeString, value)
		_node.TargetURL = &value
	}
	if value, ok := _c.mutation.TunnelSessionID(); ok {
		_spec.SetField(assessment.FieldTunnelSessionID, field.TypeString, value)
		_node.TunnelSessionID = &value
	}
	if value, ok := _c.mutation.Agents(); ok {
		_spec.SetField(assessment.FieldAgents, field.TypeJSON, value)
		_node.Agents = value
	}
	if value, ok := _c.mutation.Depth(); ok {
		_spec.SetField(assessment.FieldDepth, field.TypeEnum, value)
		_node.Depth = value
	}
	if value, ok := _c.mutation.IdempotencyKey(); ok {
		_spec.SetField(assessment.FieldIdempotencyKey, field.TypeString, value)
		_node.IdempotencyKey = &value
	}
	if value, ok := _c.mutation.FindingCounts(); ok {
		_spec.SetField(assessment.FieldFindingCounts, field.TypeJSON, value)
		_node.FindingCounts = value
	}
	if value, ok := _c.mutation.ErrorType(); ok {
		_spec.SetField(assessment.FieldErrorType, field.TypeString, value)
		_node.ErrorType = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(assessment.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(assessment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(assessment.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(assessment.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.FindingsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   assessment.FindingsTable,
			Columns: []string{assessment.FindingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(finding.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AgentLogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   assessment.AgentLogsTable,
			Columns: []string{assessment.AgentLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentlog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AssessmentCreateBulk is the builder for creating many Assessment entities in bulk.
type AssessmentCreateBulk struct {
	config
	err      error
	builders []*AssessmentCreate
}

// Save creates the Assessment entities in the database.
func (_c *AssessmentCreateBulk) Save(ctx context.Context) ([]*Assessment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Assessment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AssessmentMutation)
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
func (_c *AssessmentCreateBulk) SaveX(ctx context.Context) []*Assessment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
