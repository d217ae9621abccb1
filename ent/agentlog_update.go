// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/vibecheck/vibecheck/ent/agentlog"
	"github.com/vibecheck/vibecheck/ent/predicate"
)

// AgentLogUpdate is the builder for updating AgentLog entities.
type AgentLogUpdate struct {
	config
	hooks    []Hook
	mutation *AgentLogMutation
}

// Where appends a list predicates to the AgentLogUpdate builder.
func (_u *AgentLogUpdate) Where(ps ...predicate.AgentLog) *AgentLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgent sets the "agent" field.
func (_u *AgentLogUpdate) SetAgent(v string) *AgentLogUpdate {
	_u.mutation.SetAgent(v)
	return _u
}

// SetNillableAgent sets the "agent" field if the given value is not nil.
func (_u *AgentLogUpdate) SetNillableAgent(v *string) *AgentLogUpdate {
	if v != nil {
		_u.SetAgent(*v)
	}
	return _u
}

// SetStep sets the "step" field.
func (_u *AgentLogUpdate) SetStep(v int) *AgentLogUpdate {
	_u.mutation.ResetStep()
	_u.mutation.SetStep(v)
	return _u
}

// SetNillableStep sets the "step" field if the given value is not nil.
func (_u *AgentLogUpdate) SetNillableStep(v *int) *AgentLogUpdate {
	if v != nil {
		_u.SetStep(*v)
	}
	return _u
}

// AddStep adds value to the "step" field.
func (_u *AgentLogUpdate) AddStep(v int) *AgentLogUpdate {
	_u.mutation.AddStep(v)
	return _u
}

// SetAction sets the "action" field.
func (_u *AgentLogUpdate) SetAction(v string) *AgentLogUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *AgentLogUpdate) SetNillableAction(v *string) *AgentLogUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetTarget sets the "target" field.
func (_u *AgentLogUpdate) SetTarget(v string) *AgentLogUpdate {
	_u.mutation.SetTarget(v)
	return _u
}

// SetNillableTarget sets the "target" field if the given value is not nil.
func (_u *AgentLogUpdate) SetNillableTarget(v *string) *AgentLogUpdate {
	if v != nil {
		_u.SetTarget(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *AgentLogUpdate) SetPayload(v string) *AgentLogUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetNillablePayload sets the "payload" field if the given value is not nil.
func (_u *AgentLogUpdate) SetNillablePayload(v *string) *AgentLogUpdate {
	if v != nil {
		_u.SetPayload(*v)
	}
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *AgentLogUpdate) ClearPayload() *AgentLogUpdate {
	_u.mutation.ClearPayload()
	return _u
}

// SetResponseCode sets the "response_code" field.
func (_u *AgentLogUpdate) SetResponseCode(v int) *AgentLogUpdate {
	_u.mutation.ResetResponseCode()
	_u.mutation.SetResponseCode(v)
	return _u
}

// SetNillableResponseCode sets the "response_code" field if the given value is not nil.
func (_u *AgentLogUpdate) SetNillableResponseCode(v *int) *AgentLogUpdate {
	if v != nil {
		_u.SetResponseCode(*v)
	}
	return _u
}

// AddResponseCode adds value to the "response_code" field.
func (_u *AgentLogUpdate) AddResponseCode(v int) *AgentLogUpdate {
	_u.mutation.AddResponseCode(v)
	return _u
}

// ClearResponseCode clears the value of the "response_code" field.
func (_u *AgentLogUpdate) ClearResponseCode() *AgentLogUpdate {
	_u.mutation.ClearResponseCode()
	return _u
}

// SetResponsePreview sets the "response_preview" field.
func (_u *AgentLogUpdate) SetResponsePreview(v string) *AgentLogUpdate {
	_u.mutation.SetResponsePreview(v)
	return _u
}

// SetNillableResponsePreview sets the "response_preview" field if the given value is not nil.
func (_u *AgentLogUpdate) SetNillableResponsePreview(v *string) *AgentLogUpdate {
	if v != nil {
		_u.SetResponsePreview(*v)
	}
	return _u
}

// ClearResponsePreview clears the value of the "response_preview" field.
func (_u *AgentLogUpdate) ClearResponsePreview() *AgentLogUpdate {
	_u.mutation.ClearResponsePreview()
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *AgentLogUpdate) SetReasoning(v string) *AgentLogUpdate {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *AgentLogUpdate) SetNillableReasoning(v *string) *AgentLogUpdate {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// SetFindingID sets the "finding_id" field.
func (_u *AgentLogUpdate) SetFindingID(v string) *AgentLogUpdate {
	_u.mutation.SetFindingID(v)
	return _u
}

// SetNillableFindingID sets the "finding_id" field if the given value is not nil.
func (_u *AgentLogUpdate) SetNillableFindingID(v *string) *AgentLogUpdate {
	if v != nil {
		_u.SetFindingID(*v)
	}
	return _u
}

// ClearFindingID clears the value of the "finding_id" field.
func (_u *AgentLogUpdate) ClearFindingID() *AgentLogUpdate {
	_u.mutation.ClearFindingID()
	return _u
}

// Mutation returns the AgentLogMutation object of the builder.
func (_u *AgentLogUpdate) Mutation() *AgentLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentLogUpdate) check() error {
	if _u.mutation.AssessmentCleared() && len(_u.mutation.AssessmentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentLog.assessment"`)
	}
	return nil
}

func (_u *AgentLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentlog.Table, agentlog.Columns, sqlgraph.NewFieldSpec(agentlog.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Agent(); ok {
		_spec.SetField(agentlog.FieldAgent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Step(); ok {
		_spec.SetField(agentlog.FieldStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStep(); ok {
		_spec.AddField(agentlog.FieldStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(agentlog.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Target(); ok {
		_spec.SetField(agentlog.FieldTarget, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(agentlog.FieldPayload, field.TypeString, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(agentlog.FieldPayload, field.TypeString)
	}
	if value, ok := _u.mutation.ResponseCode(); ok {
		_spec.SetField(agentlog.FieldResponseCode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedResponseCode(); ok {
		_spec.AddField(agentlog.FieldResponseCode, field.TypeInt, value)
	}
	if _u.mutation.ResponseCodeCleared() {
		_spec.ClearField(agentlog.FieldResponseCode, field.TypeInt)
	}
	if value, ok := _u.mutation.ResponsePreview(); ok {
		_spec.SetField(agentlog.FieldResponsePreview, field.TypeString, value)
	}
	if _u.mutation.ResponsePreviewCleared() {
		_spec.ClearField(agentlog.FieldResponsePreview, field.TypeString)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(agentlog.FieldReasoning, field.TypeString, value)
	}
	if value, ok := _u.mutation.FindingID(); ok {
		_spec.SetField(agentlog.FieldFindingID, field.TypeString, value)
	}
	if _u.mutation.FindingIDCleared() {
		_spec.ClearField(agentlog.FieldFindingID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentLogUpdateOne is the builder for updating a single AgentLog entity.
type AgentLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentLogMutation
}

// SetAgent sets the "agent" field.
func (_u *AgentLogUpdateOne) SetAgent(v string) *AgentLogUpdateOne {
	_u.mutation.SetAgent(v)
	return _u
}

// SetNillableAgent sets the "agent" field if the given value is not nil.
func (_u *AgentLogUpdateOne) SetNillableAgent(v *string) *AgentLogUpdateOne {
	if v != nil {
		_u.SetAgent(*v)
	}
	return _u
}

// SetStep sets the "step" field.
func (_u *AgentLogUpdateOne) SetStep(v int) *AgentLogUpdateOne {
	_u.mutation.ResetStep()
	_u.mutation.SetStep(v)
	return _u
}

// SetNillableStep sets the "step" field if the given value is not nil.
func (_u *AgentLogUpdateOne) SetNillableStep(v *int) *AgentLogUpdateOne {
	if v != nil {
		_u.SetStep(*v)
	}
	return _u
}

// AddStep adds value to the "step" field.
func (_u *AgentLogUpdateOne) AddStep(v int) *AgentLogUpdateOne {
	_u.mutation.AddStep(v)
	return _u
}

// SetAction sets the "action" field.
func (_u *AgentLogUpdateOne) SetAction(v string) *AgentLogUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *AgentLogUpdateOne) SetNillableAction(v *string) *AgentLogUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetTarget sets the "target" field.
func (_u *AgentLogUpdateOne) SetTarget(v string) *AgentLogUpdateOne {
	_u.mutation.SetTarget(v)
	return _u
}

// SetNillableTarget sets the "target" field if the given value is not nil.
func (_u *AgentLogUpdateOne) SetNillableTarget(v *string) *AgentLogUpdateOne {
	if v != nil {
		_u.SetTarget(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *AgentLogUpdateOne) SetPayload(v string) *AgentLogUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetNillablePayload sets the "payload" field if the given value is not nil.
func (_u *AgentLogUpdateOne) SetNillablePayload(v *string) *AgentLogUpdateOne {
	if v != nil {
		_u.SetPayload(*v)
	}
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *AgentLogUpdateOne) ClearPayload() *AgentLogUpdateOne {
	_u.mutation.ClearPayload()
	return _u
}

// SetResponseCode sets the "response_code" field.
func (_u *AgentLogUpdateOne) SetResponseCode(v int) *AgentLogUpdateOne {
	_u.mutation.ResetResponseCode()
	_u.mutation.SetResponseCode(v)
	return _u
}

// SetNillableResponseCode sets the "response_code" field if the given value is not nil.
func (_u *AgentLogUpdateOne) SetNillableResponseCode(v *int) *AgentLogUpdateOne {
	if v != nil {
		_u.SetResponseCode(*v)
	}
	return _u
}

// AddResponseCode adds value to the "response_code" field.
func (_u *AgentLogUpdateOne) AddResponseCode(v int) *AgentLogUpdateOne {
	_u.mutation.AddResponseCode(v)
	return _u
}

// ClearResponseCode clears the value of the "response_code" field.
func (_u *AgentLogUpdateOne) ClearResponseCode() *AgentLogUpdateOne {
	_u.mutation.ClearResponseCode()
	return _u
}

// SetResponsePreview sets the "response_preview" field.
func (_u *AgentLogUpdateOne) SetResponsePreview(v string) *AgentLogUpdateOne {
	_u.mutation.SetResponsePreview(v)
	return _u
}

// SetNillableResponsePreview sets the "response_preview" field if the given value is not nil.
func (_u *AgentLogUpdateOne) SetNillableResponsePreview(v *string) *AgentLogUpdateOne {
	if v != nil {
		_u.SetResponsePreview(*v)
	}
	return _u
}

// ClearResponsePreview clears the value of the "response_preview" field.
func (_u *AgentLogUpdateOne) ClearResponsePreview() *AgentLogUpdateOne {
	_u.mutation.ClearResponsePreview()
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *AgentLogUpdateOne) SetReasoning(v string) *AgentLogUpdateOne {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *AgentLogUpdateOne) SetNillableReasoning(v *string) *AgentLogUpdateOne {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// SetFindingID sets the "finding_id" field.
func (_u *AgentLogUpdateOne) SetFindingID(v string) *AgentLogUpdateOne {
	_u.mutation.SetFindingID(v)
	return _u
}

// SetNillableFindingID sets the "finding_id" field if the given value is not nil.
func (_u *AgentLogUpdateOne) SetNillableFindingID(v *string) *AgentLogUpdateOne {
	if v != nil {
		_u.SetFindingID(*v)
	}
	return _u
}

// ClearFindingID clears the value of the "finding_id" field.
func (_u *AgentLogUpdateOne) ClearFindingID() *AgentLogUpdateOne {
	_u.mutation.ClearFindingID()
	return _u
}

// Mutation returns the AgentLogMutation object of the builder.
func (_u *AgentLogUpdateOne) Mutation() *AgentLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentLogUpdate builder.
func (_u *AgentLogUpdateOne) Where(ps ...predicate.AgentLog) *AgentLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentLogUpdateOne) Select(field string, fields ...string) *AgentLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentLog entity.
func (_u *AgentLogUpdateOne) Save(ctx context.Context) (*AgentLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentLogUpdateOne) SaveX(ctx context.Context) *AgentLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentLogUpdateOne) check() error {
	if _u.mutation.AssessmentCleared() && len(_u.mutation.AssessmentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentLog.assessment"`)
	}
	return nil
}

func (_u *AgentLogUpdateOne) sqlSave(ctx context.Context) (_node *AgentLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentlog.Table, agentlog.Columns, sqlgraph.NewFieldSpec(agentlog.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentlog.FieldID)
		for _, f := range fields {
			if !agentlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentlog.FieldID {
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
	if value, ok := _u.mutation.Agent(); ok {
		_spec.SetField(agentlog.FieldAgent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Step(); ok {
		_spec.SetField(agentlog.FieldStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStep(); ok {
		_spec.AddField(agentlog.FieldStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(agentlog.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Target(); ok {
		_spec.SetField(agentlog.FieldTarget, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(agentlog.FieldPayload, field.TypeString, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(agentlog.FieldPayload, field.TypeString)
	}
	if value, ok := _u.mutation.ResponseCode(); ok {
		_spec.SetField(agentlog.FieldResponseCode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedResponseCode(); ok {
		_spec.AddField(agentlog.FieldResponseCode, field.TypeInt, value)
	}
	if _u.mutation.ResponseCodeCleared() {
		_spec.ClearField(agentlog.FieldResponseCode, field.TypeInt)
	}
	if value, ok := _u.mutation.ResponsePreview(); ok {
		_spec.SetField(agentlog.FieldResponsePreview, field.TypeString, value)
	}
	if _u.mutation.ResponsePreviewCleared() {
		_spec.ClearField(agentlog.FieldResponsePreview, field.TypeString)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(agentlog.FieldReasoning, field.TypeString, value)
	}
	if value, ok := _u.mutation.FindingID(); ok {
		_spec.SetField(agentlog.FieldFindingID, field.TypeString, value)
	}
	if _u.mutation.FindingIDCleared() {
		_spec.ClearField(agentlog.FieldFindingID, field.TypeString)
	}
	_node = &AgentLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
