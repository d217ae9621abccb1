// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/vibecheck/vibecheck/ent/agentlog"
	"github.com/vibecheck/vibecheck/ent/assessment"
	"github.com/vibecheck/vibecheck/ent/finding"
	"github.com/vibecheck/vibecheck/ent/predicate"
)

// AssessmentUpdate is the builder for updating Assessment entities.
type AssessmentUpdate struct {
	config
	hooks    []Hook
	mutation *AssessmentMutation
}

// Where appends a list predicates to the AssessmentUpdate builder.
func (_u *AssessmentUpdate) Where(ps ...predicate.Assessment) *AssessmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMode sets the "mode" field.
func (_u *AssessmentUpdate) SetMode(v assessment.Mode) *AssessmentUpdate {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *AssessmentUpdate) SetNillableMode(v *assessment.Mode) *AssessmentUpdate {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AssessmentUpdate) SetStatus(v assessment.Status) *AssessmentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AssessmentUpdate) SetNillableStatus(v *assessment.Status) *AssessmentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRepoURL sets the "repo_url" field.
func (_u *AssessmentUpdate) SetRepoURL(v string) *AssessmentUpdate {
	_u.mutation.SetRepoURL(v)
	return _u
}

// SetNillableRepoURL sets the "repo_url" field if the given value is not nil.
func (_u *AssessmentUpdate) SetNillableRepoURL(v *string) *AssessmentUpdate {
	if v != nil {
		_u.SetRepoURL(*v)
	}
	return _u
}

// ClearRepoURL clears the value of the "repo_url" field.
func (_u *AssessmentUpdate) ClearRepoURL() *AssessmentUpdate {
	_u.mutation.ClearRepoURL()
	return _u
}

// SetTargetURL sets the "target_url" field.
func (_u *AssessmentUpdate) SetTargetURL(v string) *AssessmentUpdate {
	_u.mutation.SetTargetURL(v)
	return _u
}

// SetNillableTargetURL sets the "target_url" field if the given value is not nil.
func (_u *AssessmentUpdate) SetNillableTargetURL(v *string) *AssessmentUpdate {
	if v != nil {
		_u.SetTargetURL(*v)
	}
	return _u
}

// ClearTargetURL clears the value of the "target_url" field.
func (_u *AssessmentUpdate) ClearTargetURL() *AssessmentUpdate {
	_u.mutation.ClearTargetURL()
	return _u
}

// SetTunnelSessionID sets the "tunnel_session_id" field.
func (_u *AssessmentUpdate) SetTunnelSessionID(v string) *AssessmentUpdate {
	_u.mutation.SetTunnelSessionID(v)
	return _u
}

// SetNillableTunnelSessionID sets the "tunnel_session_id" field if the given value is not nil.
func (_u *AssessmentUpdate) SetNillableTunnelSessionID(v *string) *AssessmentUpdate {
	if v != nil {
		_u.SetTunnelSessionID(*v)
	}
	return _u
}

// ClearTunnelSessionID clears the value of the "tunnel_session_id" field.
func (_u *AssessmentUpdate) ClearTunnelSessionID() *AssessmentUpdate {
	_u.mutation.ClearTunnelSessionID()
	return _u
}

// SetAgents sets the "agents" field.
func (_u *AssessmentUpdate) SetAgents(v []string) *AssessmentUpdate {
	_u.mutation.SetAgents(v)
	return _u
}

// AppendAgents appends value to the "agents" field.
func (_u *AssessmentUpdate) AppendAgents(v []string) *AssessmentUpdate {
	_u.mutation.AppendAgents(v)
	return _u
}

// ClearAgents clears the value of the "agents" field.
func (_u *AssessmentUpdate) ClearAgents() *AssessmentUpdate {
	_u.mutation.ClearAgents()
	return _u
}

// SetDepth sets the "depth" field.
func (_u *AssessmentUpdate) SetDepth(v assessment.Depth) *AssessmentUpdate {
	_u.mutation.SetDepth(v)
	return _u
}

// SetNillableDepth sets the "depth" field if the given value is not nil.
func (_u *AssessmentUpdate) SetNillableDepth(v *assessment.Depth) *AssessmentUpdate {
	if v != nil {
		_u.SetDepth(*v)
	}
	return _u
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (_u *AssessmentUpdate) SetIdempotencyKey(v string) *AssessmentUpdate {
	_u.mutation.SetIdempotencyKey(v)
	return _u
}

// SetNillableIdempotencyKey sets the "idempotency_key" field if the given value is not nil.
func (_u *AssessmentUpdate) SetNillableIdempotencyKey(v *string) *AssessmentUpdate {
	if v != nil {
		_u.SetIdempotencyKey(*v)
	}
	return _u
}

// ClearIdempotencyKey clears the value of the "idempotency_key" field.
func (_u *AssessmentUpdate) ClearIdempotencyKey() *AssessmentUpdate {
	_u.mutation.ClearIdempotencyKey()
	return _u
}

// SetFindingCounts sets the "finding_counts" field.
func (_u *AssessmentUpdate) SetFindingCounts(v map[string]int) *AssessmentUpdate {
	_u.mutation.SetFindingCounts(v)
	return _u
}

// SetErrorType sets the "error_type" field.
func (_u *AssessmentUpdate) SetErrorType(v string) *AssessmentUpdate {
	_u.mutation.SetErrorType(v)
	return _u
}

// SetNillableErrorType sets the "error_type" field if the given value is not nil.
func (_u *AssessmentUpdate) SetNillableErrorType(v *string) *AssessmentUpdate {
	if v != nil {
		_u.SetErrorType(*v)
	}
	return _u
}

// ClearErrorType clears the value of the "error_type" field.
func (_u *AssessmentUpdate) ClearErrorType() *AssessmentUpdate {
	_u.mutation.ClearErrorType()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AssessmentUpdate) SetErrorMessage(v string) *AssessmentUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AssessmentUpdate) SetNillableErrorMessage(v *string) *AssessmentUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AssessmentUpdate) ClearErrorMessage() *AssessmentUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AssessmentUpdate) SetUpdatedAt(v time.Time) *AssessmentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AssessmentUpdate) SetCompletedAt(v time.Time) *AssessmentUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AssessmentUpdate) SetNillableCompletedAt(v *time.Time) *AssessmentUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AssessmentUpdate) ClearCompletedAt() *AssessmentUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddFindingIDs adds the "findings" edge to the Finding entity by IDs.
func (_u *AssessmentUpdate) AddFindingIDs(ids ...string) *AssessmentUpdate {
	_u.mutation.AddFindingIDs(ids...)
	return _u
}

// AddFindings adds the "findings" edges to the Finding entity.
func (_u *AssessmentUpdate) AddFindings(v ...*Finding) *AssessmentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFindingIDs(ids...)
}

// AddAgentLogIDs adds the "agent_logs" edge to the AgentLog entity by IDs.
func (_u *AssessmentUpdate) AddAgentLogIDs(ids ...string) *AssessmentUpdate {
	_u.mutation.AddAgentLogIDs(ids...)
	return _u
}

// AddAgentLogs adds the "agent_logs" edges to the AgentLog entity.
func (_u *AssessmentUpdate) AddAgentLogs(v ...*AgentLog) *AssessmentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAgentLogIDs(ids...)
}

// Mutation returns the AssessmentMutation object of the builder.
func (_u *AssessmentUpdate) Mutation() *AssessmentMutation {
	return _u.mutation
}

// ClearFindings clears all "findings" edges to the Finding entity.
func (_u *AssessmentUpdate) ClearFindings() *AssessmentUpdate {
	_u.mutation.ClearFindings()
	return _u
}

// RemoveFindingIDs removes the "findings" edge to Finding entities by IDs.
func (_u *AssessmentUpdate) RemoveFindingIDs(ids ...string) *AssessmentUpdate {
	_u.mutation.RemoveFindingIDs(ids...)
	return _u
}

// RemoveFindings removes "findings" edges to Finding entities.
func (_u *AssessmentUpdate) RemoveFindings(v ...*Finding) *AssessmentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFindingIDs(ids...)
}

// ClearAgentLogs clears all "agent_logs" edges to the AgentLog entity.
func (_u *AssessmentUpdate) ClearAgentLogs() *AssessmentUpdate {
	_u.mutation.ClearAgentLogs()
	return _u
}

// RemoveAgentLogIDs removes the "agent_logs" edge to AgentLog entities by IDs.
func (_u *AssessmentUpdate) RemoveAgentLogIDs(ids ...string) *AssessmentUpdate {
	_u.mutation.RemoveAgentLogIDs(ids...)
	return _u
}

// RemoveAgentLogs removes "agent_logs" edges to AgentLog entities.
func (_u *AssessmentUpdate) RemoveAgentLogs(v ...*AgentLog) *AssessmentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAgentLogIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssessmentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssessmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AssessmentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := assessment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentUpdate) check() error {
	if v, ok := _u.mutation.Mode(); ok {
		if err := assessment.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "Assessment.mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := assessment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Assessment.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Depth(); ok {
		if err := assessment.DepthValidator(v); err != nil {
			return &ValidationError{Name: "depth", err: fmt.Errorf(`ent: validator failed for field "Assessment.depth": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessment.Table, assessment.Columns, sqlgraph.NewFieldSpec(assessment.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(assessment.FieldMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(assessment.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RepoURL(); ok {
		_spec.SetField(assessment.FieldRepoURL, field.TypeString, value)
	}
	if _u.mutation.RepoURLCleared() {
		_spec.ClearField(assessment.FieldRepoURL, field.TypeString)
	}
	if value, ok := _u.mutation.TargetURL(); ok {
		_spec.SetField(assessment.FieldTargetURL, field.TypeString, value)
	}
	if _u.mutation.TargetURLCleared() {
		_spec.ClearField(assessment.FieldTargetURL, field.TypeString)
	}
	if value, ok := _u.mutation.TunnelSessionID(); ok {
		_spec.SetField(assessment.FieldTunnelSessionID, field.TypeString, value)
	}
	if _u.mutation.TunnelSessionIDCleared() {
		_spec.ClearField(assessment.FieldTunnelSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.Agents(); ok {
		_spec.SetField(assessment.FieldAgents, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAgents(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, assessment.FieldAgents, value)
		})
	}
	if _u.mutation.AgentsCleared() {
		_spec.ClearField(assessment.FieldAgents, field.TypeJSON)
	}
	if value, ok := _u.mutation.Depth(); ok {
		_spec.SetField(assessment.FieldDepth, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IdempotencyKey(); ok {
		_spec.SetField(assessment.FieldIdempotencyKey, field.TypeString, value)
	}
	if _u.mutation.IdempotencyKeyCleared() {
		_spec.ClearField(assessment.FieldIdempotencyKey, field.TypeString)
	}
	if value, ok := _u.mutation.FindingCounts(); ok {
		_spec.SetField(assessment.FieldFindingCounts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ErrorType(); ok {
		_spec.SetField(assessment.FieldErrorType, field.TypeString, value)
	}
	if _u.mutation.ErrorTypeCleared() {
		_spec.ClearField(assessment.FieldErrorType, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(assessment.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(assessment.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(assessment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(assessment.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(assessment.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.FindingsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFindingsIDs(); len(nodes) > 0 && !_u.mutation.FindingsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FindingsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AgentLogsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAgentLogsIDs(); len(nodes) > 0 && !_u.mutation.AgentLogsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentLogsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssessmentUpdateOne is the builder for updating a single Assessment entity.
type AssessmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssessmentMutation
}

// SetMode sets the "mode" field.
func (_u *AssessmentUpdateOne) SetMode(v assessment.Mode) *AssessmentUpdateOne {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *AssessmentUpdateOne) SetNillableMode(v *assessment.Mode) *AssessmentUpdateOne {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AssessmentUpdateOne) SetStatus(v assessment.Status) *AssessmentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AssessmentUpdateOne) SetNillableStatus(v *assessment.Status) *AssessmentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRepoURL sets the "repo_url" field.
func (_u *AssessmentUpdateOne) SetRepoURL(v string) *AssessmentUpdateOne {
	_u.mutation.SetRepoURL(v)
	return _u
}

// SetNillableRepoURL sets the "repo_url" field if the given value is not nil.
func (_u *AssessmentUpdateOne) SetNillableRepoURL(v *string) *AssessmentUpdateOne {
	if v != nil {
		_u.SetRepoURL(*v)
	}
	return _u
}

// ClearRepoURL clears the value of the "repo_url" field.
func (_u *AssessmentUpdateOne) ClearRepoURL() *AssessmentUpdateOne {
	_u.mutation.ClearRepoURL()
	return _u
}

// SetTargetURL sets the "target_url" field.
func (_u *AssessmentUpdateOne) SetTargetURL(v string) *AssessmentUpdateOne {
	_u.mutation.SetTargetURL(v)
	return _u
}

// SetNillableTargetURL sets the "target_url" field if the given value is not nil.
func (_u *AssessmentUpdateOne) SetNillableTargetURL(v *string) *AssessmentUpdateOne {
	if v != nil {
		_u.SetTargetURL(*v)
	}
	return _u
}

// ClearTargetURL clears the value of the "target_url" field.
func (_u *AssessmentUpdateOne) ClearTargetURL() *AssessmentUpdateOne {
	_u.mutation.ClearTargetURL()
	return _u
}

// SetTunnelSessionID sets the "tunnel_session_id" field.
func (_u *AssessmentUpdateOne) SetTunnelSessionID(v string) *AssessmentUpdateOne {
	_u.mutation.SetTunnelSessionID(v)
	return _u
}

// SetNillableTunnelSessionID sets the "tunnel_session_id" field if the given value is not nil.
func (_u *AssessmentUpdateOne) SetNillableTunnelSessionID(v *string) *AssessmentUpdateOne {
	if v != nil {
		_u.SetTunnelSessionID(*v)
	}
	return _u
}

// ClearTunnelSessionID clears the value of the "tunnel_session_id" field.
func (_u *AssessmentUpdateOne) ClearTunnelSessionID() *AssessmentUpdateOne {
	_u.mutation.ClearTunnelSessionID()
	return _u
}

// SetAgents sets the "agents" field.
func (_u *AssessmentUpdateOne) SetAgents(v []string) *AssessmentUpdateOne {
	_u.mutation.SetAgents(v)
	return _u
}

// AppendAgents appends value to the "agents" field.
func (_u *AssessmentUpdateOne) AppendAgents(v []string) *AssessmentUpdateOne {
	_u.mutation.AppendAgents(v)
	return _u
}

// ClearAgents clears the value of the "agents" field.
func (_u *AssessmentUpdateOne) ClearAgents() *AssessmentUpdateOne {
	_u.mutation.ClearAgents()
	return _u
}

// SetDepth sets the "depth" field.
func (_u *AssessmentUpdateOne) SetDepth(v assessment.Depth) *AssessmentUpdateOne {
	_u.mutation.SetDepth(v)
	return _u
}

// SetNillableDepth sets the "depth" field if the given value is not nil.
func (_u *AssessmentUpdateOne) SetNillableDepth(v *assessment.Depth) *AssessmentUpdateOne {
	if v != nil {
		_u.SetDepth(*v)
	}
	return _u
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (_u *AssessmentUpdateOne) SetIdempotencyKey(v string) *AssessmentUpdateOne {
	_u.mutation.SetIdempotencyKey(v)
	return _u
}

// SetNillableIdempotencyKey sets the "idempotency_key" field if the given value is not nil.
func (_u *AssessmentUpdateOne) SetNillableIdempotencyKey(v *string) *AssessmentUpdateOne {
	if v != nil {
		_u.SetIdempotencyKey(*v)
	}
	return _u
}

// ClearIdempotencyKey clears the value of the "idempotency_key" field.
func (_u *AssessmentUpdateOne) ClearIdempotencyKey() *AssessmentUpdateOne {
	_u.mutation.ClearIdempotencyKey()
	return _u
}

// SetFindingCounts sets the "finding_counts" field.
func (_u *AssessmentUpdateOne) SetFindingCounts(v map[string]int) *AssessmentUpdateOne {
	_u.mutation.SetFindingCounts(v)
	return _u
}

// SetErrorType sets the "error_type" field.
func (_u *AssessmentUpdateOne) SetErrorType(v string) *AssessmentUpdateOne {
	_u.mutation.SetErrorType(v)
	return _u
}

// SetNillableErrorType sets the "error_type" field if the given value is not nil.
func (_u *AssessmentUpdateOne) SetNillableErrorType(v *string) *AssessmentUpdateOne {
	if v != nil {
		_u.SetErrorType(*v)
	}
	return _u
}

// ClearErrorType clears the value of the "error_type" field.
func (_u *AssessmentUpdateOne) ClearErrorType() *AssessmentUpdateOne {
	_u.mutation.ClearErrorType()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AssessmentUpdateOne) SetErrorMessage(v string) *AssessmentUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AssessmentUpdateOne) SetNillableErrorMessage(v *string) *AssessmentUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AssessmentUpdateOne) ClearErrorMessage() *AssessmentUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AssessmentUpdateOne) SetUpdatedAt(v time.Time) *AssessmentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AssessmentUpdateOne) SetCompletedAt(v time.Time) *AssessmentUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AssessmentUpdateOne) SetNillableCompletedAt(v *time.Time) *AssessmentUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AssessmentUpdateOne) ClearCompletedAt() *AssessmentUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddFindingIDs adds the "findings" edge to the Finding entity by IDs.
func (_u *AssessmentUpdateOne) AddFindingIDs(ids ...string) *AssessmentUpdateOne {
	_u.mutation.AddFindingIDs(ids...)
	return _u
}

// AddFindings adds the "findings" edges to the Finding entity.
func (_u *AssessmentUpdateOne) AddFindings(v ...*Finding) *AssessmentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFindingIDs(ids...)
}

// AddAgentLogIDs adds the "agent_logs" edge to the AgentLog entity by IDs.
func (_u *AssessmentUpdateOne) AddAgentLogIDs(ids ...string) *AssessmentUpdateOne {
	_u.mutation.AddAgentLogIDs(ids...)
	return _u
}

// AddAgentLogs adds the "agent_logs" edges to the AgentLog entity.
func (_u *AssessmentUpdateOne) AddAgentLogs(v ...*AgentLog) *AssessmentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAgentLogIDs(ids...)
}

// Mutation returns the AssessmentMutation object of the builder.
func (_u *AssessmentUpdateOne) Mutation() *AssessmentMutation {
	return _u.mutation
}

// ClearFindings clears all "findings" edges to the Finding entity.
func (_u *AssessmentUpdateOne) ClearFindings() *AssessmentUpdateOne {
	_u.mutation.ClearFindings()
	return _u
}

// RemoveFindingIDs removes the "findings" edge to Finding entities by IDs.
func (_u *AssessmentUpdateOne) RemoveFindingIDs(ids ...string) *AssessmentUpdateOne {
	_u.mutation.RemoveFindingIDs(ids...)
	return _u
}

// RemoveFindings removes "findings" edges to Finding entities.
func (_u *AssessmentUpdateOne) RemoveFindings(v ...*Finding) *AssessmentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFindingIDs(ids...)
}

// ClearAgentLogs clears all "agent_logs" edges to the AgentLog entity.
func (_u *AssessmentUpdateOne) ClearAgentLogs() *AssessmentUpdateOne {
	_u.mutation.ClearAgentLogs()
	return _u
}

// RemoveAgentLogIDs removes the "agent_logs" edge to AgentLog entities by IDs.
func (_u *AssessmentUpdateOne) RemoveAgentLogIDs(ids ...string) *AssessmentUpdateOne {
	_u.mutation.RemoveAgentLogIDs(ids...)
	return _u
}

// RemoveAgentLogs removes "agent_logs" edges to AgentLog entities.
func (_u *AssessmentUpdateOne) RemoveAgentLogs(v ...*AgentLog) *AssessmentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAgentLogIDs(ids...)
}

// Where appends a list predicates to the AssessmentUpdate builder.
func (_u *AssessmentUpdateOne) Where(ps ...predicate.Assessment) *AssessmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssessmentUpdateOne) Select(field string, fields ...string) *AssessmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Assessment entity.
func (_u *AssessmentUpdateOne) Save(ctx context.Context) (*Assessment, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentUpdateOne) SaveX(ctx context.Context) *Assessment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssessmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AssessmentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := assessment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentUpdateOne) check() error {
	if v, ok := _u.mutation.Mode(); ok {
		if err := assessment.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "Assessment.mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := assessment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Assessment.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Depth(); ok {
		if err := assessment.DepthValidator(v); err != nil {
			return &ValidationError{Name: "depth", err: fmt.Errorf(`ent: validator failed for field "Assessment.depth": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentUpdateOne) sqlSave(ctx context.Context) (_node *Assessment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessment.Table, assessment.Columns, sqlgraph.NewFieldSpec(assessment.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Assessment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assessment.FieldID)
		for _, f := range fields {
			if !assessment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != assessment.FieldID {
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
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(assessment.FieldMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(assessment.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RepoURL(); ok {
		_spec.SetField(assessment.FieldRepoURL, field.TypeString, value)
	}
	if _u.mutation.RepoURLCleared() {
		_spec.ClearField(assessment.FieldRepoURL, field.TypeString)
	}
	if value, ok := _u.mutation.TargetURL(); ok {
		_spec.SetField(assessment.FieldTargetURL, field.TypeString, value)
	}
	if _u.mutation.TargetURLCleared() {
		_spec.ClearField(assessment.FieldTargetURL, field.TypeString)
	}
	if value, ok := _u.mutation.TunnelSessionID(); ok {
		_spec.SetField(assessment.FieldTunnelSessionID, field.TypeString, value)
	}
	if _u.mutation.TunnelSessionIDCleared() {
		_spec.ClearField(assessment.FieldTunnelSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.Agents(); ok {
		_spec.SetField(assessment.FieldAgents, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAgents(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, assessment.FieldAgents, value)
		})
	}
	if _u.mutation.AgentsCleared() {
		_spec.ClearField(assessment.FieldAgents, field.TypeJSON)
	}
	if value, ok := _u.mutation.Depth(); ok {
		_spec.SetField(assessment.FieldDepth, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IdempotencyKey(); ok {
		_spec.SetField(assessment.FieldIdempotencyKey, field.TypeString, value)
	}
	if _u.mutation.IdempotencyKeyCleared() {
		_spec.ClearField(assessment.FieldIdempotencyKey, field.TypeString)
	}
	if value, ok := _u.mutation.FindingCounts(); ok {
		_spec.SetField(assessment.FieldFindingCounts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ErrorType(); ok {
		_spec.SetField(assessment.FieldErrorType, field.TypeString, value)
	}
	if _u.mutation.ErrorTypeCleared() {
		_spec.ClearField(assessment.FieldErrorType, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(assessment.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(assessment.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(assessment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(assessment.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(assessment.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.FindingsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFindingsIDs(); len(nodes) > 0 && !_u.mutation.FindingsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FindingsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AgentLogsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAgentLogsIDs(); len(nodes) > 0 && !_u.mutation.AgentLogsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentLogsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Assessment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
