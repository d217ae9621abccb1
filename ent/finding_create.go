// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/vibecheck/vibecheck/ent/assessment"
	"github.com/vibecheck/vibecheck/ent/finding"
)

// FindingCreate is the builder for creating a Finding entity.
type FindingCreate struct {
	config
	mutation *FindingMutation
	hooks    []Hook
}

// SetAssessmentID sets the "assessment_id" field.
func (_c *FindingCreate) SetAssessmentID(v string) *FindingCreate {
	_c.mutation.SetAssessmentID(v)
	return _c
}

// SetSeverity sets the "severity" field.
func (_c *FindingCreate) SetSeverity(v finding.Severity) *FindingCreate {
	_c.mutation.SetSeverity(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *FindingCreate) SetCategory(v string) *FindingCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *FindingCreate) SetTitle(v string) *FindingCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *FindingCreate) SetDescription(v string) *FindingCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetLocation sets the "location" field.
func (_c *FindingCreate) SetLocation(v map[string]interface{}) *FindingCreate {
	_c.mutation.SetLocation(v)
	return _c
}

// SetEvidence sets the "evidence" field.
func (_c *FindingCreate) SetEvidence(v map[string]interface{}) *FindingCreate {
	_c.mutation.SetEvidence(v)
	return _c
}

// SetRemediation sets the "remediation" field.
func (_c *FindingCreate) SetRemediation(v string) *FindingCreate {
	_c.mutation.SetRemediation(v)
	return _c
}

// SetAgent sets the "agent" field.
func (_c *FindingCreate) SetAgent(v string) *FindingCreate {
	_c.mutation.SetAgent(v)
	return _c
}

// SetNillableAgent sets the "agent" field if the given value is not nil.
func (_c *FindingCreate) SetNillableAgent(v *string) *FindingCreate {
	if v != nil {
		_c.SetAgent(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FindingCreate) SetCreatedAt(v time.Time) *FindingCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FindingCreate) SetNillableCreatedAt(v *time.Time) *FindingCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FindingCreate) SetID(v string) *FindingCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetAssessment sets the "assessment" edge to the Assessment entity.
func (_c *FindingCreate) SetAssessment(v *Assessment) *FindingCreate {
	return _c.SetAssessmentID(v.ID)
}

// Mutation returns the FindingMutation object of the builder.
func (_c *FindingCreate) Mutation() *FindingMutation {
	return _c.mutation
}

// Save creates the Finding in the database.
func (_c *FindingCreate) Save(ctx context.Context) (*Finding, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FindingCreate) SaveX(ctx context.Context) *Finding {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FindingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FindingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FindingCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := finding.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FindingCreate) check() error {
	if _, ok := _c.mutation.AssessmentID(); !ok {
		return &ValidationError{Name: "assessment_id", err: errors.New(`ent: missing required field "Finding.assessment_id"`)}
	}
	if _, ok := _c.mutation.Severity(); !ok {
		return &ValidationError{Name: "severity", err: errors.New(`ent: missing required field "Finding.severity"`)}
	}
	if v, ok := _c.mutation.Severity(); ok {
		if err := finding.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "Finding.severity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "Finding.category"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Finding.title"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Finding.description"`)}
	}
	if _, ok := _c.mutation.Remediation(); !ok {
		return &ValidationError{Name: "remediation", err: errors.New(`ent: missing required field "Finding.remediation"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Finding.created_at"`)}
	}
	if len(_c.mutation.AssessmentIDs()) == 0 {
		return &ValidationError{Name: "assessment", err: errors.New(`ent: missing required edge "Finding.assessment"`)}
	}
	return nil
}

func (_c *FindingCreate) sqlSave(ctx context.Context) (*Finding, error) {
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
			return nil, fmt.Errorf("unexpected Finding.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FindingCreate) createSpec() (*Finding, *sqlgraph.CreateSpec) {
	var (
		_node = &Finding{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(finding.Table, sqlgraph.NewFieldSpec(finding.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Severity(); ok {
		_spec.SetField(finding.FieldSeverity, field.TypeEnum, value)
		_node.Severity = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(finding.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(finding.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(finding.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Location(); ok {
		_spec.SetField(finding.FieldLocation, field.TypeJSON, value)
		_node.Location = value
	}
	if value, ok := _c.mutation.Evidence(); ok {
		_spec.SetField(finding.FieldEvidence, field.TypeJSON, value)
		_node.Evidence = value
	}
	if value, ok := _c.mutation.Remediation(); ok {
		_spec.SetField(finding.FieldRemediation, field.TypeString, value)
		_node.Remediation = value
	}
	if value, ok := _c.mutation.Agent(); ok {
		_spec.SetField(finding.FieldAgent, field.TypeString, value)
		_node.Agent = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(finding.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.AssessmentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   finding.AssessmentTable,
			Columns: []string{finding.AssessmentColumn},
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

// FindingCreateBulk is the builder for creating many Finding entities in bulk.
type FindingCreateBulk struct {
	config
	err      error
	builders []*FindingCreate
}

// Save creates the Finding entities in the database.
func (_c *FindingCreateBulk) Save(ctx context.Context) ([]*Finding, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Finding, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FindingMutation)
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
func (_c *FindingCreateBulk) SaveX(ctx context.Context) []*Finding {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FindingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FindingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
