// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/vibecheck/vibecheck/ent/finding"
	"github.com/vibecheck/vibecheck/ent/predicate"
)

// FindingUpdate is the builder for updating Finding entities.
type FindingUpdate struct {
	config
	hooks    []Hook
	mutation *FindingMutation
}

// Where appends a list predicates to the FindingUpdate builder.
func (_u *FindingUpdate) Where(ps ...predicate.Finding) *FindingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *FindingUpdate) SetSeverity(v finding.Severity) *FindingUpdate {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *FindingUpdate) SetNillableSeverity(v *finding.Severity) *FindingUpdate {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *FindingUpdate) SetCategory(v string) *FindingUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *FindingUpdate) SetNillableCategory(v *string) *FindingUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *FindingUpdate) SetTitle(v string) *FindingUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *FindingUpdate) SetNillableTitle(v *string) *FindingUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *FindingUpdate) SetDescription(v string) *FindingUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *FindingUpdate) SetNillableDescription(v *string) *FindingUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetLocation sets the "location" field.
func (_u *FindingUpdate) SetLocation(v map[string]interface{}) *FindingUpdate {
	_u.mutation.SetLocation(v)
	return _u
}

// ClearLocation clears the value of the "location" field.
func (_u *FindingUpdate) ClearLocation() *FindingUpdate {
	_u.mutation.ClearLocation()
	return _u
}

// SetEvidence sets the "evidence" field.
func (_u *FindingUpdate) SetEvidence(v map[string]interface{}) *FindingUpdate {
	_u.mutation.SetEvidence(v)
	return _u
}

// ClearEvidence clears the value of the "evidence" field.
func (_u *FindingUpdate) ClearEvidence() *FindingUpdate {
	_u.mutation.ClearEvidence()
	return _u
}

// SetRemediation sets the "remediation" field.
func (_u *FindingUpdate) SetRemediation(v string) *FindingUpdate {
	_u.mutation.SetRemediation(v)
	return _u
}

// SetNillableRemediation sets the "remediation" field if the given value is not nil.
func (_u *FindingUpdate) SetNillableRemediation(v *string) *FindingUpdate {
	if v != nil {
		_u.SetRemediation(*v)
	}
	return _u
}

// SetAgent sets the "agent" field.
func (_u *FindingUpdate) SetAgent(v string) *FindingUpdate {
	_u.mutation.SetAgent(v)
	return _u
}

// SetNillableAgent sets the "agent" field if the given value is not nil.
func (_u *FindingUpdate) SetNillableAgent(v *string) *FindingUpdate {
	if v != nil {
		_u.SetAgent(*v)
	}
	return _u
}

// ClearAgent clears the value of the "agent" field.
func (_u *FindingUpdate) ClearAgent() *FindingUpdate {
	_u.mutation.ClearAgent()
	return _u
}

// Mutation returns the FindingMutation object of the builder.
func (_u *FindingUpdate) Mutation() *FindingMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FindingUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FindingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FindingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FindingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FindingUpdate) check() error {
	if v, ok := _u.mutation.Severity(); ok {
		if err := finding.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "Finding.severity": %w`, err)}
		}
	}
	if _u.mutation.AssessmentCleared() && len(_u.mutation.AssessmentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Finding.assessment"`)
	}
	return nil
}

func (_u *FindingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(finding.Table, finding.Columns, sqlgraph.NewFieldSpec(finding.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(finding.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(finding.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(finding.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(finding.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(finding.FieldLocation, field.TypeJSON, value)
	}
	if _u.mutation.LocationCleared() {
		_spec.ClearField(finding.FieldLocation, field.TypeJSON)
	}
	if value, ok := _u.mutation.Evidence(); ok {
		_spec.SetField(finding.FieldEvidence, field.TypeJSON, value)
	}
	if _u.mutation.EvidenceCleared() {
		_spec.ClearField(finding.FieldEvidence, field.TypeJSON)
	}
	if value, ok := _u.mutation.Remediation(); ok {
		_spec.SetField(finding.FieldRemediation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Agent(); ok {
		_spec.SetField(finding.FieldAgent, field.TypeString, value)
	}
	if _u.mutation.AgentCleared() {
		_spec.ClearField(finding.FieldAgent, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{finding.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FindingUpdateOne is the builder for updating a single Finding entity.
type FindingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FindingMutation
}

// SetSeverity sets the "severity" field.
func (_u *FindingUpdateOne) SetSeverity(v finding.Severity) *FindingUpdateOne {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *FindingUpdateOne) SetNillableSeverity(v *finding.Severity) *FindingUpdateOne {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *FindingUpdateOne) SetCategory(v string) *FindingUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *FindingUpdateOne) SetNillableCategory(v *string) *FindingUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *FindingUpdateOne) SetTitle(v string) *FindingUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *FindingUpdateOne) SetNillableTitle(v *string) *FindingUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *FindingUpdateOne) SetDescription(v string) *FindingUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *FindingUpdateOne) SetNillableDescription(v *string) *FindingUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetLocation sets the "location" field.
func (_u *FindingUpdateOne) SetLocation(v map[string]interface{}) *FindingUpdateOne {
	_u.mutation.SetLocation(v)
	return _u
}

// ClearLocation clears the value of the "location" field.
func (_u *FindingUpdateOne) ClearLocation() *FindingUpdateOne {
	_u.mutation.ClearLocation()
	return _u
}

// SetEvidence sets the "evidence" field.
func (_u *FindingUpdateOne) SetEvidence(v map[string]interface{}) *FindingUpdateOne {
	_u.mutation.SetEvidence(v)
	return _u
}

// ClearEvidence clears the value of the "evidence" field.
func (_u *FindingUpdateOne) ClearEvidence() *FindingUpdateOne {
	_u.mutation.ClearEvidence()
	return _u
}

// SetRemediation sets the "remediation" field.
func (_u *FindingUpdateOne) SetRemediation(v string) *FindingUpdateOne {
	_u.mutation.SetRemediation(v)
	return _u
}

// SetNillableRemediation sets the "remediation" field if the given value is not nil.
func (_u *FindingUpdateOne) SetNillableRemediation(v *string) *FindingUpdateOne {
	if v != nil {
		_u.SetRemediation(*v)
	}
	return _u
}

// SetAgent sets the "agent" field.
func (_u *FindingUpdateOne) SetAgent(v string) *FindingUpdateOne {
	_u.mutation.SetAgent(v)
	return _u
}

// SetNillableAgent sets the "agent" field if the given value is not nil.
func (_u *FindingUpdateOne) SetNillableAgent(v *string) *FindingUpdateOne {
	if v != nil {
		_u.SetAgent(*v)
	}
	return _u
}

// ClearAgent clears the value of the "agent" field.
func (_u *FindingUpdateOne) ClearAgent() *FindingUpdateOne {
	_u.mutation.ClearAgent()
	return _u
}

// Mutation returns the FindingMutation object of the builder.
func (_u *FindingUpdateOne) Mutation() *FindingMutation {
	return _u.mutation
}

// Where appends a list predicates to the FindingUpdate builder.
func (_u *FindingUpdateOne) Where(ps ...predicate.Finding) *FindingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FindingUpdateOne) Select(field string, fields ...string) *FindingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Finding entity.
func (_u *FindingUpdateOne) Save(ctx context.Context) (*Finding, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FindingUpdateOne) SaveX(ctx context.Context) *Finding {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FindingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FindingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FindingUpdateOne) check() error {
	if v, ok := _u.mutation.Severity(); ok {
		if err := finding.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "Finding.severity": %w`, err)}
		}
	}
	if _u.mutation.AssessmentCleared() && len(_u.mutation.AssessmentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Finding.assessment"`)
	}
	return nil
}

func (_u *FindingUpdateOne) sqlSave(ctx context.Context) (_node *Finding, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(finding.Table, finding.Columns, sqlgraph.NewFieldSpec(finding.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Finding.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, finding.FieldID)
		for _, f := range fields {
			if !finding.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != finding.FieldID {
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
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(finding.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(finding.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(finding.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(finding.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(finding.FieldLocation, field.TypeJSON, value)
	}
	if _u.mutation.LocationCleared() {
		_spec.ClearField(finding.FieldLocation, field.TypeJSON)
	}
	if value, ok := _u.mutation.Evidence(); ok {
		_spec.SetField(finding.FieldEvidence, field.TypeJSON, value)
	}
	if _u.mutation.EvidenceCleared() {
		_spec.ClearField(finding.FieldEvidence, field.TypeJSON)
	}
	if value, ok := _u.mutation.Remediation(); ok {
		_spec.SetField(finding.FieldRemediation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Agent(); ok {
		_spec.SetField(finding.FieldAgent, field.TypeString, value)
	}
	if _u.mutation.AgentCleared() {
		_spec.ClearField(finding.FieldAgent, field.TypeString)
	}
	_node = &Finding{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{finding.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
