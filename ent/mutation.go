// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/vibecheck/vibecheck/ent/agentlog"
	"github.com/vibecheck/vibecheck/ent/assessment"
	"github.com/vibecheck/vibecheck/ent/finding"
	"github.com/vibecheck/vibecheck/ent/predicate"
	"github.com/vibecheck/vibecheck/ent/tunnelsession"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgentLog      = "AgentLog"
	TypeAssessment    = "Assessment"
	TypeFinding       = "Finding"
	TypeTunnelSession = "TunnelSession"
)

// AgentLogMutation represents an operation that mutates the AgentLog nodes in the graph.
type AgentLogMutation struct {
	config
	op                Op
	typ               string
	id                *string
	agent             *string
	step              *int
	addstep           *int
	action            *string
	target            *string
	payload           *string
	response_code     *int
	addresponse_code  *int
	response_preview  *string
	reasoning         *string
	finding_id        *string
	timestamp         *time.Time
	clearedFields     map[string]struct{}
	assessment        *string
	clearedassessment bool
	done              bool
	oldValue          func(context.Context) (*AgentLog, error)
	predicates        []predicate.AgentLog
}

var _ ent.Mutation = (*AgentLogMutation)(nil)

// agentlogOption allows management of the mutation configuration using functional options.
type agentlogOption func(*AgentLogMutation)

// newAgentLogMutation creates new mutation for the AgentLog entity.
func newAgentLogMutation(c config, op Op, opts ...agentlogOption) *AgentLogMutation {
	m := &AgentLogMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentLogID sets the ID field of the mutation.
func withAgentLogID(id string) agentlogOption {
	return func(m *AgentLogMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentLog
		)
		m.oldValue = func(ctx context.Context) (*AgentLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentLog sets the old AgentLog of the mutation.
func withAgentLog(node *AgentLog) agentlogOption {
	return func(m *AgentLogMutation) {
		m.oldValue = func(context.Context) (*AgentLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentLog entities.
func (m *AgentLogMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentLogMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentLogMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAssessmentID sets the "assessment_id" field.
func (m *AgentLogMutation) SetAssessmentID(s string) {
	m.assessment = &s
}

// AssessmentID returns the value of the "assessment_id" field in the mutation.
func (m *AgentLogMutation) AssessmentID() (r string, exists bool) {
	v := m.assessment
	if v == nil {
		return
	}
	return *v, true
}

// OldAssessmentID returns the old "assessment_id" field's value of the AgentLog entity.
// If the AgentLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentLogMutation) OldAssessmentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssessmentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssessmentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssessmentID: %w", err)
	}
	return oldValue.AssessmentID, nil
}

// ResetAssessmentID resets all changes to the "assessment_id" field.
func (m *AgentLogMutation) ResetAssessmentID() {
	m.assessment = nil
}

// SetAgent sets the "agent" field.
func (m *AgentLogMutation) SetAgent(s string) {
	m.agent = &s
}

// Agent returns the value of the "agent" field in the mutation.
func (m *AgentLogMutation) Agent() (r string, exists bool) {
	v := m.agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAgent returns the old "agent" field's value of the AgentLog entity.
// If the AgentLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentLogMutation) OldAgent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgent: %w", err)
	}
	return oldValue.Agent, nil
}

// ResetAgent resets all changes to the "agent" field.
func (m *AgentLogMutation) ResetAgent() {
	m.agent = nil
}

// SetStep sets the "step" field.
func (m *AgentLogMutation) SetStep(i int) {
	m.step = &i
	m.addstep = nil
}

// Step returns the value of the "step" field in the mutation.
func (m *AgentLogMutation) Step() (r int, exists bool) {
	v := m.step
	if v == nil {
		return
	}
	return *v, true
}

// OldStep returns the old "step" field's value of the AgentLog entity.
// If the AgentLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentLogMutation) OldStep(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStep is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStep requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStep: %w", err)
	}
	return oldValue.Step, nil
}

// AddStep adds i to the "step" field.
func (m *AgentLogMutation) AddStep(i int) {
	if m.addstep != nil {
		*m.addstep += i
	} else {
		m.addstep = &i
	}
}

// AddedStep returns the value that was added to the "step" field in this mutation.
func (m *AgentLogMutation) AddedStep() (r int, exists bool) {
	v := m.addstep
	if v == nil {
		return
	}
	return *v, true
}

// ResetStep resets all changes to the "step" field.
func (m *AgentLogMutation) ResetStep() {
	m.step = nil
	m.addstep = nil
}

// SetAction sets the "action" field.
func (m *AgentLogMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *AgentLogMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the AgentLog entity.
// If the AgentLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentLogMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *AgentLogMutation) ResetAction() {
	m.action = nil
}

// SetTarget sets the "target" field.
func (m *AgentLogMutation) SetTarget(s string) {
	m.target = &s
}

// Target returns the value of the "target" field in the mutation.
func (m *AgentLogMutation) Target() (r string, exists bool) {
	v := m.target
	if v == nil {
		return
	}
	return *v, true
}

// OldTarget returns the old "target" field's value of the AgentLog entity.
// If the AgentLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentLogMutation) OldTarget(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTarget is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTarget requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTarget: %w", err)
	}
	return oldValue.Target, nil
}

// ResetTarget resets all changes to the "target" field.
func (m *AgentLogMutation) ResetTarget() {
	m.target = nil
}

// SetPayload sets the "payload" field.
func (m *AgentLogMutation) SetPayload(s string) {
	m.payload = &s
}

// Payload returns the value of the "payload" field in the mutation.
func (m *AgentLogMutation) Payload() (r string, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the AgentLog entity.
// If the AgentLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentLogMutation) OldPayload(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *AgentLogMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[agentlog.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *AgentLogMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[agentlog.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *AgentLogMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, agentlog.FieldPayload)
}

// SetResponseCode sets the "response_code" field.
func (m *AgentLogMutation) SetResponseCode(i int) {
	m.response_code = &i
	m.addresponse_code = nil
}

// ResponseCode returns the value of the "response_code" field in the mutation.
func (m *AgentLogMutation) ResponseCode() (r int, exists bool) {
	v := m.response_code
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseCode returns the old "response_code" field's value of the AgentLog entity.
// If the AgentLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentLogMutation) OldResponseCode(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseCode: %w", err)
	}
	return oldValue.ResponseCode, nil
}

// AddResponseCode adds i to the "response_code" field.
func (m *AgentLogMutation) AddResponseCode(i int) {
	if m.addresponse_code != nil {
		*m.addresponse_code += i
	} else {
		m.addresponse_code = &i
	}
}

// AddedResponseCode returns the value that was added to the "response_code" field in this mutation.
func (m *AgentLogMutation) AddedResponseCode() (r int, exists bool) {
	v := m.addresponse_code
	if v == nil {
		return
	}
	return *v, true
}

// ClearResponseCode clears the value of the "response_code" field.
func (m *AgentLogMutation) ClearResponseCode() {
	m.response_code = nil
	m.addresponse_code = nil
	m.clearedFields[agentlog.FieldResponseCode] = struct{}{}
}

// ResponseCodeCleared returns if the "response_code" field was cleared in this mutation.
func (m *AgentLogMutation) ResponseCodeCleared() bool {
	_, ok := m.clearedFields[agentlog.FieldResponseCode]
	return ok
}

// ResetResponseCode resets all changes to the "response_code" field.
func (m *AgentLogMutation) ResetResponseCode() {
	m.response_code = nil
	m.addresponse_code = nil
	delete(m.clearedFields, agentlog.FieldResponseCode)
}

// SetResponsePreview sets the "response_preview" field.
func (m *AgentLogMutation) SetResponsePreview(s string) {
	m.response_preview = &s
}

// ResponsePreview returns the value of the "response_preview" field in the mutation.
func (m *AgentLogMutation) ResponsePreview() (r string, exists bool) {
	v := m.response_preview
	if v == nil {
		return
	}
	return *v, true
}

// OldResponsePreview returns the old "response_preview" field's value of the AgentLog entity.
// If the AgentLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentLogMutation) OldResponsePreview(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponsePreview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponsePreview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponsePreview: %w", err)
	}
	return oldValue.ResponsePreview, nil
}

// ClearResponsePreview clears the value of the "response_preview" field.
func (m *AgentLogMutation) ClearResponsePreview() {
	m.response_preview = nil
	m.clearedFields[agentlog.FieldResponsePreview] = struct{}{}
}

// ResponsePreviewCleared returns if the "response_preview" field was cleared in this mutation.
func (m *AgentLogMutation) ResponsePreviewCleared() bool {
	_, ok := m.clearedFields[agentlog.FieldResponsePreview]
	return ok
}

// ResetResponsePreview resets all changes to the "response_preview" field.
func (m *AgentLogMutation) ResetResponsePreview() {
	m.response_preview = nil
	delete(m.clearedFields, agentlog.FieldResponsePreview)
}

// SetReasoning sets the "reasoning" field.
func (m *AgentLogMutation) SetReasoning(s string) {
	m.reasoning = &s
}

// Reasoning returns the value of the "reasoning" field in the mutation.
func (m *AgentLogMutation) Reasoning() (r string, exists bool) {
	v := m.reasoning
	if v == nil {
		return
	}
	return *v, true
}

// OldReasoning returns the old "reasoning" field's value of the AgentLog entity.
// If the AgentLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentLogMutation) OldReasoning(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReasoning is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReasoning requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReasoning: %w", err)
	}
	return oldValue.Reasoning, nil
}

// ResetReasoning resets all changes to the "reasoning" field.
func (m *AgentLogMutation) ResetReasoning() {
	m.reasoning = nil
}

// SetFindingID sets the "finding_id" field.
func (m *AgentLogMutation) SetFindingID(s string) {
	m.finding_id = &s
}

// FindingID returns the value of the "finding_id" field in the mutation.
func (m *AgentLogMutation) FindingID() (r string, exists bool) {
	v := m.finding_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFindingID returns the old "finding_id" field's value of the AgentLog entity.
// If the AgentLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentLogMutation) OldFindingID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFindingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFindingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFindingID: %w", err)
	}
	return oldValue.FindingID, nil
}

// ClearFindingID clears the value of the "finding_id" field.
func (m *AgentLogMutation) ClearFindingID() {
	m.finding_id = nil
	m.clearedFields[agentlog.FieldFindingID] = struct{}{}
}

// FindingIDCleared returns if the "finding_id" field was cleared in this mutation.
func (m *AgentLogMutation) FindingIDCleared() bool {
	_, ok := m.clearedFields[agentlog.FieldFindingID]
	return ok
}

// ResetFindingID resets all changes to the "finding_id" field.
func (m *AgentLogMutation) ResetFindingID() {
	m.finding_id = nil
	delete(m.clearedFields, agentlog.FieldFindingID)
}

// SetTimestamp sets the "timestamp" field.
func (m *AgentLogMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *AgentLogMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the AgentLog entity.
// If the AgentLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentLogMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *AgentLogMutation) ResetTimestamp() {
	m.timestamp = nil
}

// ClearAssessment clears the "assessment" edge to the Assessment entity.
func (m *AgentLogMutation) ClearAssessment() {
	m.clearedassessment = true
	m.clearedFields[agentlog.FieldAssessmentID] = struct{}{}
}

// AssessmentCleared reports if the "assessment" edge to the Assessment entity was cleared.
func (m *AgentLogMutation) AssessmentCleared() bool {
	return m.clearedassessment
}

// AssessmentIDs returns the "assessment" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AssessmentID instead. It exists only for internal usage by the builders.
func (m *AgentLogMutation) AssessmentIDs() (ids []string) {
	if id := m.assessment; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAssessment resets all changes to the "assessment" edge.
func (m *AgentLogMutation) ResetAssessment() {
	m.assessment = nil
	m.clearedassessment = false
}

// Where appends a list predicates to the AgentLogMutation builder.
func (m *AgentLogMutation) Where(ps ...predicate.AgentLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentLog).
func (m *AgentLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentLogMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.assessment != nil {
		fields = append(fields, agentlog.FieldAssessmentID)
	}
	if m.agent != nil {
		fields = append(fields, agentlog.FieldAgent)
	}
	if m.step != nil {
		fields = append(fields, agentlog.FieldStep)
	}
	if m.action != nil {
		fields = append(fields, agentlog.FieldAction)
	}
	if m.target != nil {
		fields = append(fields, agentlog.FieldTarget)
	}
	if m.payload != nil {
		fields = append(fields, agentlog.FieldPayload)
	}
	if m.response_code != nil {
		fields = append(fields, agentlog.FieldResponseCode)
	}
	if m.response_preview != nil {
		fields = append(fields, agentlog.FieldResponsePreview)
	}
	if m.reasoning != nil {
		fields = append(fields, agentlog.FieldReasoning)
	}
	if m.finding_id != nil {
		fields = append(fields, agentlog.FieldFindingID)
	}
	if m.timestamp != nil {
		fields = append(fields, agentlog.FieldTimestamp)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentlog.FieldAssessmentID:
		return m.AssessmentID()
	case agentlog.FieldAgent:
		return m.Agent()
	case agentlog.FieldStep:
		return m.Step()
	case agentlog.FieldAction:
		return m.Action()
	case agentlog.FieldTarget:
		return m.Target()
	case agentlog.FieldPayload:
		return m.Payload()
	case agentlog.FieldResponseCode:
		return m.ResponseCode()
	case agentlog.FieldResponsePreview:
		return m.ResponsePreview()
	case agentlog.FieldReasoning:
		return m.Reasoning()
	case agentlog.FieldFindingID:
		return m.FindingID()
	case agentlog.FieldTimestamp:
		return m.Timestamp()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentlog.FieldAssessmentID:
		return m.OldAssessmentID(ctx)
	case agentlog.FieldAgent:
		return m.OldAgent(ctx)
	case agentlog.FieldStep:
		return m.OldStep(ctx)
	case agentlog.FieldAction:
		return m.OldAction(ctx)
	case agentlog.FieldTarget:
		return m.OldTarget(ctx)
	case agentlog.FieldPayload:
		return m.OldPayload(ctx)
	case agentlog.FieldResponseCode:
		return m.OldResponseCode(ctx)
	case agentlog.FieldResponsePreview:
		return m.OldResponsePreview(ctx)
	case agentlog.FieldReasoning:
		return m.OldReasoning(ctx)
	case agentlog.FieldFindingID:
		return m.OldFindingID(ctx)
	case agentlog.FieldTimestamp:
		return m.OldTimestamp(ctx)
	}
	return nil, fmt.Errorf("unknown AgentLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentlog.FieldAssessmentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssessmentID(v)
		return nil
	case agentlog.FieldAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgent(v)
		return nil
	case agentlog.FieldStep:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStep(v)
		return nil
	case agentlog.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case agentlog.FieldTarget:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTarget(v)
		return nil
	case agentlog.FieldPayload:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case agentlog.FieldResponseCode:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseCode(v)
		return nil
	case agentlog.FieldResponsePreview:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponsePreview(v)
		return nil
	case agentlog.FieldReasoning:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReasoning(v)
		return nil
	case agentlog.FieldFindingID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFindingID(v)
		return nil
	case agentlog.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	}
	return fmt.Errorf("unknown AgentLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentLogMutation) AddedFields() []string {
	var fields []string
	if m.addstep != nil {
		fields = append(fields, agentlog.FieldStep)
	}
	if m.addresponse_code != nil {
		fields = append(fields, agentlog.FieldResponseCode)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentLogMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agentlog.FieldStep:
		return m.AddedStep()
	case agentlog.FieldResponseCode:
		return m.AddedResponseCode()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agentlog.FieldStep:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStep(v)
		return nil
	case agentlog.FieldResponseCode:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddResponseCode(v)
		return nil
	}
	return fmt.Errorf("unknown AgentLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentlog.FieldPayload) {
		fields = append(fields, agentlog.FieldPayload)
	}
	if m.FieldCleared(agentlog.FieldResponseCode) {
		fields = append(fields, agentlog.FieldResponseCode)
	}
	if m.FieldCleared(agentlog.FieldResponsePreview) {
		fields = append(fields, agentlog.FieldResponsePreview)
	}
	if m.FieldCleared(agentlog.FieldFindingID) {
		fields = append(fields, agentlog.FieldFindingID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentLogMutation) ClearField(name string) error {
	switch name {
	case agentlog.FieldPayload:
		m.ClearPayload()
		return nil
	case agentlog.FieldResponseCode:
		m.ClearResponseCode()
		return nil
	case agentlog.FieldResponsePreview:
		m.ClearResponsePreview()
		return nil
	case agentlog.FieldFindingID:
		m.ClearFindingID()
		return nil
	}
	return fmt.Errorf("unknown AgentLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentLogMutation) ResetField(name string) error {
	switch name {
	case agentlog.FieldAssessmentID:
		m.ResetAssessmentID()
		return nil
	case agentlog.FieldAgent:
		m.ResetAgent()
		return nil
	case agentlog.FieldStep:
		m.ResetStep()
		return nil
	case agentlog.FieldAction:
		m.ResetAction()
		return nil
	case agentlog.FieldTarget:
		m.ResetTarget()
		return nil
	case agentlog.FieldPayload:
		m.ResetPayload()
		return nil
	case agentlog.FieldResponseCode:
		m.ResetResponseCode()
		return nil
	case agentlog.FieldResponsePreview:
		m.ResetResponsePreview()
		return nil
	case agentlog.FieldReasoning:
		m.ResetReasoning()
		return nil
	case agentlog.FieldFindingID:
		m.ResetFindingID()
		return nil
	case agentlog.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	}
	return fmt.Errorf("unknown AgentLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.assessment != nil {
		edges = append(edges, agentlog.EdgeAssessment)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentLogMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agentlog.EdgeAssessment:
		if id := m.assessment; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedassessment {
		edges = append(edges, agentlog.EdgeAssessment)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentLogMutation) EdgeCleared(name string) bool {
	switch name {
	case agentlog.EdgeAssessment:
		return m.clearedassessment
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentLogMutation) ClearEdge(name string) error {
	switch name {
	case agentlog.EdgeAssessment:
		m.ClearAssessment()
		return nil
	}
	return fmt.Errorf("unknown AgentLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentLogMutation) ResetEdge(name string) error {
	switch name {
	case agentlog.EdgeAssessment:
		m.ResetAssessment()
		return nil
	}
	return fmt.Errorf("unknown AgentLog edge %s", name)
}

// AssessmentMutation represents an operation that mutates the Assessment nodes in the graph.
type AssessmentMutation struct {
	config
	op                Op
	typ               string
	id                *string
	mode              *assessment.Mode
	status            *assessment.Status
	repo_url          *string
	target_url        *string
	tunnel_session_id *string
	agents            *[]string
	appendagents      []string
	depth             *assessment.Depth
	idempotency_key   *string
	finding_counts    *map[string]int
	error_type        *string
	error_message     *string
	created_at        *time.Time
	updated_at        *time.Time
	completed_at      *time.Time
	clearedFields     map[string]struct{}
	findings          map[string]struct{}
	removedfindings   map[string]struct{}
	clearedfindings   bool
	agent_logs        map[string]struct{}
	removedagent_logs map[string]struct{}
	clearedagent_logs bool
	done              bool
	oldValue          func(context.Context) (*Assessment, error)
	predicates        []predicate.Assessment
}

var _ ent.Mutation = (*AssessmentMutation)(nil)

// assessmentOption allows management of the mutation configuration using functional options.
type assessmentOption func(*AssessmentMutation)

// newAssessmentMutation creates new mutation for the Assessment entity.
func newAssessmentMutation(c config, op Op, opts ...assessmentOption) *AssessmentMutation {
	m := &AssessmentMutation{
		config:        c,
		op:            op,
		typ:           TypeAssessment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAssessmentID sets the ID field of the mutation.
func withAssessmentID(id string) assessmentOption {
	return func(m *AssessmentMutation) {
		var (
			err   error
			once  sync.Once
			value *Assessment
		)
		m.oldValue = func(ctx context.Context) (*Assessment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Assessment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAssessment sets the old Assessment of the mutation.
func withAssessment(node *Assessment) assessmentOption {
	return func(m *AssessmentMutation) {
		m.oldValue = func(context.Context) (*Assessment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AssessmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AssessmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Assessment entities.
func (m *AssessmentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AssessmentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AssessmentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Assessment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMode sets the "mode" field.
func (m *AssessmentMutation) SetMode(a assessment.Mode) {
	m.mode = &a
}

// Mode returns the value of the "mode" field in the mutation.
func (m *AssessmentMutation) Mode() (r assessment.Mode, exists bool) {
	v := m.mode
	if v == nil {
		return
	}
	return *v, true
}

// OldMode returns the old "mode" field's value of the Assessment entity.
// If the Assessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentMutation) OldMode(ctx context.Context) (v assessment.Mode, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMode: %w", err)
	}
	return oldValue.Mode, nil
}

// ResetMode resets all changes to the "mode" field.
func (m *AssessmentMutation) ResetMode() {
	m.mode = nil
}

// SetStatus sets the "status" field.
func (m *AssessmentMutation) SetStatus(a assessment.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AssessmentMutation) Status() (r assessment.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Assessment entity.
// If the Assessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentMutation) OldStatus(ctx context.Context) (v assessment.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AssessmentMutation) ResetStatus() {
	m.status = nil
}

// SetRepoURL sets the "repo_url" field.
func (m *AssessmentMutation) SetRepoURL(s string) {
	m.repo_url = &s
}

// RepoURL returns the value of the "repo_url" field in the mutation.
func (m *AssessmentMutation) RepoURL() (r string, exists bool) {
	v := m.repo_url
	if v == nil {
		return
	}
	return *v, true
}

// OldRepoURL returns the old "repo_url" field's value of the Assessment entity.
// If the Assessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentMutation) OldRepoURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepoURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepoURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepoURL: %w", err)
	}
	return oldValue.RepoURL, nil
}

// ClearRepoURL clears the value of the "repo_url" field.
func (m *AssessmentMutation) ClearRepoURL() {
	m.repo_url = nil
	m.clearedFields[assessment.FieldRepoURL] = struct{}{}
}

// RepoURLCleared returns if the "repo_url" field was cleared in this mutation.
func (m *AssessmentMutation) RepoURLCleared() bool {
	_, ok := m.clearedFields[assessment.FieldRepoURL]
	return ok
}

// ResetRepoURL resets all changes to the "repo_url" field.
func (m *AssessmentMutation) ResetRepoURL() {
	m.repo_url = nil
	delete(m.clearedFields, assessment.FieldRepoURL)
}

// SetTargetURL sets the "target_url" field.
func (m *AssessmentMutation) SetTargetURL(s string) {
	m.target_url = &s
}

// TargetURL returns the value of the "target_url" field in the mutation.
func (m *AssessmentMutation) TargetURL() (r string, exists bool) {
	v := m.target_url
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetURL returns the old "target_url" field's value of the Assessment entity.
// If the Assessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentMutation) OldTargetURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetURL: %w", err)
	}
	return oldValue.TargetURL, nil
}

// ClearTargetURL clears the value of the "target_url" field.
func (m *AssessmentMutation) ClearTargetURL() {
	m.target_url = nil
	m.clearedFields[assessment.FieldTargetURL] = struct{}{}
}

// TargetURLCleared returns if the "target_url" field was cleared in this mutation.
func (m *AssessmentMutation) TargetURLCleared() bool {
	_, ok := m.clearedFields[assessment.FieldTargetURL]
	return ok
}

// ResetTargetURL resets all changes to the "target_url" field.
func (m *AssessmentMutation) ResetTargetURL() {
	m.target_url = nil
	delete(m.clearedFields, assessment.FieldTargetURL)
}

// SetTunnelSessionID sets the "tunnel_session_id" field.
func (m *AssessmentMutation) SetTunnelSessionID(s string) {
	m.tunnel_session_id = &s
}

// TunnelSessionID returns the value of the "tunnel_session_id" field in the mutation.
func (m *AssessmentMutation) TunnelSessionID() (r string, exists bool) {
	v := m.tunnel_session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTunnelSessionID returns the old "tunnel_session_id" field's value of the Assessment entity.
// If the Assessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentMutation) OldTunnelSessionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTunnelSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTunnelSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTunnelSessionID: %w", err)
	}
	return oldValue.TunnelSessionID, nil
}

// ClearTunnelSessionID clears the value of the "tunnel_session_id" field.
func (m *AssessmentMutation) ClearTunnelSessionID() {
	m.tunnel_session_id = nil
	m.clearedFields[assessment.FieldTunnelSessionID] = struct{}{}
}

// TunnelSessionIDCleared returns if the "tunnel_session_id" field was cleared in this mutation.
func (m *AssessmentMutation) TunnelSessionIDCleared() bool {
	_, ok := m.clearedFields[assessment.FieldTunnelSessionID]
	return ok
}

// ResetTunnelSessionID resets all changes to the "tunnel_session_id" field.
func (m *AssessmentMutation) ResetTunnelSessionID() {
	m.tunnel_session_id = nil
	delete(m.clearedFields, assessment.FieldTunnelSessionID)
}

// SetAgents sets the "agents" field.
func (m *AssessmentMutation) SetAgents(s []string) {
	m.agents = &s
	m.appendagents = nil
}

// Agents returns the value of the "agents" field in the mutation.
func (m *AssessmentMutation) Agents() (r []string, exists bool) {
	v := m.agents
	if v == nil {
		return
	}
	return *v, true
}

// OldAgents returns the old "agents" field's value of the Assessment entity.
// If the Assessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentMutation) OldAgents(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgents: %w", err)
	}
	return oldValue.Agents, nil
}

// AppendAgents adds s to the "agents" field.
func (m *AssessmentMutation) AppendAgents(s []string) {
	m.appendagents = append(m.appendagents, s...)
}

// AppendedAgents returns the list of values that were appended to the "agents" field in this mutation.
func (m *AssessmentMutation) AppendedAgents() ([]string, bool) {
	if len(m.appendagents) == 0 {
		return nil, false
	}
	return m.appendagents, true
}

// ClearAgents clears the value of the "agents" field.
func (m *AssessmentMutation) ClearAgents() {
	m.agents = nil
	m.appendagents = nil
	m.clearedFields[assessment.FieldAgents] = struct{}{}
}

// AgentsCleared returns if the "agents" field was cleared in this mutation.
func (m *AssessmentMutation) AgentsCleared() bool {
	_, ok := m.clearedFields[assessment.FieldAgents]
	return ok
}

// ResetAgents resets all changes to the "agents" field.
func (m *AssessmentMutation) ResetAgents() {
	m.agents = nil
	m.appendagents = nil
	delete(m.clearedFields, assessment.FieldAgents)
}

// SetDepth sets the "depth" field.
func (m *AssessmentMutation) SetDepth(a assessment.Depth) {
	m.depth = &a
}

// Depth returns the value of the "depth" field in the mutation.
func (m *AssessmentMutation) Depth() (r assessment.Depth, exists bool) {
	v := m.depth
	if v == nil {
		return
	}
	return *v, true
}

// OldDepth returns the old "depth" field's value of the Assessment entity.
// If the Assessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentMutation) OldDepth(ctx context.Context) (v assessment.Depth, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDepth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDepth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDepth: %w", err)
	}
	return oldValue.Depth, nil
}

// ResetDepth resets all changes to the "depth" field.
func (m *AssessmentMutation) ResetDepth() {
	m.depth = nil
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (m *AssessmentMutation) SetIdempotencyKey(s string) {
	m.idempotency_key = &s
}

// IdempotencyKey returns the value of the "idempotency_key" field in the mutation.
func (m *AssessmentMutation) IdempotencyKey() (r string, exists bool) {
	v := m.idempotency_key
	if v == nil {
		return
	}
	return *v, true
}

// OldIdempotencyKey returns the old "idempotency_key" field's value of the Assessment entity.
// If the Assessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentMutation) OldIdempotencyKey(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIdempotencyKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIdempotencyKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIdempotencyKey: %w", err)
	}
	return oldValue.IdempotencyKey, nil
}

// ClearIdempotencyKey clears the value of the "idempotency_key" field.
func (m *AssessmentMutation) ClearIdempotencyKey() {
	m.idempotency_key = nil
	m.clearedFields[assessment.FieldIdempotencyKey] = struct{}{}
}

// IdempotencyKeyCleared returns if the "idempotency_key" field was cleared in this mutation.
func (m *AssessmentMutation) IdempotencyKeyCleared() bool {
	_, ok := m.clearedFields[assessment.FieldIdempotencyKey]
	return ok
}

// ResetIdempotencyKey resets all changes to the "idempotency_key" field.
func (m *AssessmentMutation) ResetIdempotencyKey() {
	m.idempotency_key = nil
	delete(m.clearedFields, assessment.FieldIdempotencyKey)
}

// SetFindingCounts sets the "finding_counts" field.
func (m *AssessmentMutation) SetFindingCounts(value map[string]int) {
	m.finding_counts = &value
}

// FindingCounts returns the value of the "finding_counts" field in the mutation.
func (m *AssessmentMutation) FindingCounts() (r map[string]int, exists bool) {
	v := m.finding_counts
	if v == nil {
		return
	}
	return *v, true
}

// OldFindingCounts returns the old "finding_counts" field's value of the Assessment entity.
// If the Assessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentMutation) OldFindingCounts(ctx context.Context) (v map[string]int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFindingCounts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFindingCounts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFindingCounts: %w", err)
	}
	return oldValue.FindingCounts, nil
}

// ResetFindingCounts resets all changes to the "finding_counts" field.
func (m *AssessmentMutation) ResetFindingCounts() {
	m.finding_counts = nil
}

// SetErrorType sets the "error_type" field.
func (m *AssessmentMutation) SetErrorType(s string) {
	m.error_type = &s
}

// ErrorType returns the value of the "error_type" field in the mutation.
func (m *AssessmentMutation) ErrorType() (r string, exists bool) {
	v := m.error_type
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorType returns the old "error_type" field's value of the Assessment entity.
// If the Assessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentMutation) OldErrorType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorType: %w", err)
	}
	return oldValue.ErrorType, nil
}

// ClearErrorType clears the value of the "error_type" field.
func (m *AssessmentMutation) ClearErrorType() {
	m.error_type = nil
	m.clearedFields[assessment.FieldErrorType] = struct{}{}
}

// ErrorTypeCleared returns if the "error_type" field was cleared in this mutation.
func (m *AssessmentMutation) ErrorTypeCleared() bool {
	_, ok := m.clearedFields[assessment.FieldErrorType]
	return ok
}

// ResetErrorType resets all changes to the "error_type" field.
func (m *AssessmentMutation) ResetErrorType() {
	m.error_type = nil
	delete(m.clearedFields, assessment.FieldErrorType)
}

// SetErrorMessage sets the "error_message" field.
func (m *AssessmentMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *AssessmentMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Assessment entity.
// If the Assessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *AssessmentMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[assessment.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *AssessmentMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[assessment.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *AssessmentMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, assessment.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *AssessmentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AssessmentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Assessment entity.
// If the Assessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AssessmentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AssessmentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AssessmentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Assessment entity.
// If the Assessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AssessmentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *AssessmentMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *AssessmentMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Assessment entity.
// If the Assessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *AssessmentMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[assessment.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *AssessmentMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[assessment.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *AssessmentMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, assessment.FieldCompletedAt)
}

// AddFindingIDs adds the "findings" edge to the Finding entity by ids.
func (m *AssessmentMutation) AddFindingIDs(ids ...string) {
	if m.findings == nil {
		m.findings = make(map[string]struct{})
	}
	for i := range ids {
		m.findings[ids[i]] = struct{}{}
	}
}

// ClearFindings clears the "findings" edge to the Finding entity.
func (m *AssessmentMutation) ClearFindings() {
	m.clearedfindings = true
}

// FindingsCleared reports if the "findings" edge to the Finding entity was cleared.
func (m *AssessmentMutation) FindingsCleared() bool {
	return m.clearedfindings
}

// RemoveFindingIDs removes the "findings" edge to the Finding entity by IDs.
func (m *AssessmentMutation) RemoveFindingIDs(ids ...string) {
	if m.removedfindings == nil {
		m.removedfindings = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.findings, ids[i])
		m.removedfindings[ids[i]] = struct{}{}
	}
}

// RemovedFindings returns the removed IDs of the "findings" edge to the Finding entity.
func (m *AssessmentMutation) RemovedFindingsIDs() (ids []string) {
	for id := range m.removedfindings {
		ids = append(ids, id)
	}
	return
}

// FindingsIDs returns the "findings" edge IDs in the mutation.
func (m *AssessmentMutation) FindingsIDs() (ids []string) {
	for id := range m.findings {
		ids = append(ids, id)
	}
	return
}

// ResetFindings resets all changes to the "findings" edge.
func (m *AssessmentMutation) ResetFindings() {
	m.findings = nil
	m.clearedfindings = false
	m.removedfindings = nil
}

// AddAgentLogIDs adds the "agent_logs" edge to the AgentLog entity by ids.
func (m *AssessmentMutation) AddAgentLogIDs(ids ...string) {
	if m.agent_logs == nil {
		m.agent_logs = make(map[string]struct{})
	}
	for i := range ids {
		m.agent_logs[ids[i]] = struct{}{}
	}
}

// ClearAgentLogs clears the "agent_logs" edge to the AgentLog entity.
func (m *AssessmentMutation) ClearAgentLogs() {
	m.clearedagent_logs = true
}

// AgentLogsCleared reports if the "agent_logs" edge to the AgentLog entity was cleared.
func (m *AssessmentMutation) AgentLogsCleared() bool {
	return m.clearedagent_logs
}

// RemoveAgentLogIDs removes the "agent_logs" edge to the AgentLog entity by IDs.
func (m *AssessmentMutation) RemoveAgentLogIDs(ids ...string) {
	if m.removedagent_logs == nil {
		m.removedagent_logs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.agent_logs, ids[i])
		m.removedagent_logs[ids[i]] = struct{}{}
	}
}

// RemovedAgentLogs returns the removed IDs of the "agent_logs" edge to the AgentLog entity.
func (m *AssessmentMutation) RemovedAgentLogsIDs() (ids []string) {
	for id := range m.removedagent_logs {
		ids = append(ids, id)
	}
	return
}

// AgentLogsIDs returns the "agent_logs" edge IDs in the mutation.
func (m *AssessmentMutation) AgentLogsIDs() (ids []string) {
	for id := range m.agent_logs {
		ids = append(ids, id)
	}
	return
}

// ResetAgentLogs resets all changes to the "agent_logs" edge.
func (m *AssessmentMutation) ResetAgentLogs() {
	m.agent_logs = nil
	m.clearedagent_logs = false
	m.removedagent_logs = nil
}

// Where appends a list predicates to the AssessmentMutation builder.
func (m *AssessmentMutation) Where(ps ...predicate.Assessment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AssessmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AssessmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Assessment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AssessmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AssessmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Assessment).
func (m *AssessmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AssessmentMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.mode != nil {
		fields = append(fields, assessment.FieldMode)
	}
	if m.status != nil {
		fields = append(fields, assessment.FieldStatus)
	}
	if m.repo_url != nil {
		fields = append(fields, assessment.FieldRepoURL)
	}
	if m.target_url != nil {
		fields = append(fields, assessment.FieldTargetURL)
	}
	if m.tunnel_session_id != nil {
		fields = append(fields, assessment.FieldTunnelSessionID)
	}
	if m.agents != nil {
		fields = append(fields, assessment.FieldAgents)
	}
	if m.depth != nil {
		fields = append(fields, assessment.FieldDepth)
	}
	if m.idempotency_key != nil {
		fields = append(fields, assessment.FieldIdempotencyKey)
	}
	if m.finding_counts != nil {
		fields = append(fields, assessment.FieldFindingCounts)
	}
	if m.error_type != nil {
		fields = append(fields, assessment.FieldErrorType)
	}
	if m.error_message != nil {
		fields = append(fields, assessment.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, assessment.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, assessment.FieldUpdatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, assessment.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AssessmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case assessment.FieldMode:
		return m.Mode()
	case assessment.FieldStatus:
		return m.Status()
	case assessment.FieldRepoURL:
		return m.RepoURL()
	case assessment.FieldTargetURL:
		return m.TargetURL()
	case assessment.FieldTunnelSessionID:
		return m.TunnelSessionID()
	case assessment.FieldAgents:
		return m.Agents()
	case assessment.FieldDepth:
		return m.Depth()
	case assessment.FieldIdempotencyKey:
		return m.IdempotencyKey()
	case assessment.FieldFindingCounts:
		return m.FindingCounts()
	case assessment.FieldErrorType:
		return m.ErrorType()
	case assessment.FieldErrorMessage:
		return m.ErrorMessage()
	case assessment.FieldCreatedAt:
		return m.CreatedAt()
	case assessment.FieldUpdatedAt:
		return m.UpdatedAt()
	case assessment.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AssessmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case assessment.FieldMode:
		return m.OldMode(ctx)
	case assessment.FieldStatus:
		return m.OldStatus(ctx)
	case assessment.FieldRepoURL:
		return m.OldRepoURL(ctx)
	case assessment.FieldTargetURL:
		return m.OldTargetURL(ctx)
	case assessment.FieldTunnelSessionID:
		return m.OldTunnelSessionID(ctx)
	case assessment.FieldAgents:
		return m.OldAgents(ctx)
	case assessment.FieldDepth:
		return m.OldDepth(ctx)
	case assessment.FieldIdempotencyKey:
		return m.OldIdempotencyKey(ctx)
	case assessment.FieldFindingCounts:
		return m.OldFindingCounts(ctx)
	case assessment.FieldErrorType:
		return m.OldErrorType(ctx)
	case assessment.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case assessment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case assessment.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case assessment.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Assessment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssessmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case assessment.FieldMode:
		v, ok := value.(assessment.Mode)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMode(v)
		return nil
	case assessment.FieldStatus:
		v, ok := value.(assessment.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case assessment.FieldRepoURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepoURL(v)
		return nil
	case assessment.FieldTargetURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetURL(v)
		return nil
	case assessment.FieldTunnelSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTunnelSessionID(v)
		return nil
	case assessment.FieldAgents:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgents(v)
		return nil
	case assessment.FieldDepth:
		v, ok := value.(assessment.Depth)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDepth(v)
		return nil
	case assessment.FieldIdempotencyKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIdempotencyKey(v)
		return nil
	case assessment.FieldFindingCounts:
		v, ok := value.(map[string]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFindingCounts(v)
		return nil
	case assessment.FieldErrorType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorType(v)
		return nil
	case assessment.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case assessment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case assessment.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case assessment.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Assessment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AssessmentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AssessmentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssessmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Assessment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AssessmentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(assessment.FieldRepoURL) {
		fields = append(fields, assessment.FieldRepoURL)
	}
	if m.FieldCleared(assessment.FieldTargetURL) {
		fields = append(fields, assessment.FieldTargetURL)
	}
	if m.FieldCleared(assessment.FieldTunnelSessionID) {
		fields = append(fields, assessment.FieldTunnelSessionID)
	}
	if m.FieldCleared(assessment.FieldAgents) {
		fields = append(fields, assessment.FieldAgents)
	}
	if m.FieldCleared(assessment.FieldIdempotencyKey) {
		fields = append(fields, assessment.FieldIdempotencyKey)
	}
	if m.FieldCleared(assessment.FieldErrorType) {
		fields = append(fields, assessment.FieldErrorType)
	}
	if m.FieldCleared(assessment.FieldErrorMessage) {
		fields = append(fields, assessment.FieldErrorMessage)
	}
	if m.FieldCleared(assessment.FieldCompletedAt) {
		fields = append(fields, assessment.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AssessmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AssessmentMutation) ClearField(name string) error {
	switch name {
	case assessment.FieldRepoURL:
		m.ClearRepoURL()
		return nil
	case assessment.FieldTargetURL:
		m.ClearTargetURL()
		return nil
	case assessment.FieldTunnelSessionID:
		m.ClearTunnelSessionID()
		return nil
	case assessment.FieldAgents:
		m.ClearAgents()
		return nil
	case assessment.FieldIdempotencyKey:
		m.ClearIdempotencyKey()
		return nil
	case assessment.FieldErrorType:
		m.ClearErrorType()
		return nil
	case assessment.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case assessment.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Assessment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AssessmentMutation) ResetField(name string) error {
	switch name {
	case assessment.FieldMode:
		m.ResetMode()
		return nil
	case assessment.FieldStatus:
		m.ResetStatus()
		return nil
	case assessment.FieldRepoURL:
		m.ResetRepoURL()
		return nil
	case assessment.FieldTargetURL:
		m.ResetTargetURL()
		return nil
	case assessment.FieldTunnelSessionID:
		m.ResetTunnelSessionID()
		return nil
	case assessment.FieldAgents:
		m.ResetAgents()
		return nil
	case assessment.FieldDepth:
		m.ResetDepth()
		return nil
	case assessment.FieldIdempotencyKey:
		m.ResetIdempotencyKey()
		return nil
	case assessment.FieldFindingCounts:
		m.ResetFindingCounts()
		return nil
	case assessment.FieldErrorType:
		m.ResetErrorType()
		return nil
	case assessment.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case assessment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case assessment.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case assessment.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Assessment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AssessmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.findings != nil {
		edges = append(edges, assessment.EdgeFindings)
	}
	if m.agent_logs != nil {
		edges = append(edges, assessment.EdgeAgentLogs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AssessmentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case assessment.EdgeFindings:
		ids := make([]ent.Value, 0, len(m.findings))
		for id := range m.findings {
			ids = append(ids, id)
		}
		return ids
	case assessment.EdgeAgentLogs:
		ids := make([]ent.Value, 0, len(m.agent_logs))
		for id := range m.agent_logs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AssessmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedfindings != nil {
		edges = append(edges, assessment.EdgeFindings)
	}
	if m.removedagent_logs != nil {
		edges = append(edges, assessment.EdgeAgentLogs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AssessmentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case assessment.EdgeFindings:
		ids := make([]ent.Value, 0, len(m.removedfindings))
		for id := range m.removedfindings {
			ids = append(ids, id)
		}
		return ids
	case assessment.EdgeAgentLogs:
		ids := make([]ent.Value, 0, len(m.removedagent_logs))
		for id := range m.removedagent_logs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AssessmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedfindings {
		edges = append(edges, assessment.EdgeFindings)
	}
	if m.clearedagent_logs {
		edges = append(edges, assessment.EdgeAgentLogs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AssessmentMutation) EdgeCleared(name string) bool {
	switch name {
	case assessment.EdgeFindings:
		return m.clearedfindings
	case assessment.EdgeAgentLogs:
		return m.clearedagent_logs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AssessmentMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Assessment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AssessmentMutation) ResetEdge(name string) error {
	switch name {
	case assessment.EdgeFindings:
		m.ResetFindings()
		return nil
	case assessment.EdgeAgentLogs:
		m.ResetAgentLogs()
		return nil
	}
	return fmt.Errorf("unknown Assessment edge %s", name)
}

// FindingMutation represents an operation that mutates the Finding nodes in the graph.
type FindingMutation struct {
	config
	op                Op
	typ               string
	id                *string
	severity          *finding.Severity
	category          *string
	title             *string
	description       *string
	location          *map[string]interface{}
	evidence          *map[string]interface{}
	remediation       *string
	agent             *string
	created_at        *time.Time
	clearedFields     map[string]struct{}
	assessment        *string
	clearedassessment bool
	done              bool
	oldValue          func(context.Context) (*Finding, error)
	predicates        []predicate.Finding
}

var _ ent.Mutation = (*FindingMutation)(nil)

// findingOption allows management of the mutation configuration using functional options.
type findingOption func(*FindingMutation)

// newFindingMutation creates new mutation for the Finding entity.
func newFindingMutation(c config, op Op, opts ...findingOption) *FindingMutation {
	m := &FindingMutation{
		config:        c,
		op:            op,
		typ:           TypeFinding,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFindingID sets the ID field of the mutation.
func withFindingID(id string) findingOption {
	return func(m *FindingMutation) {
		var (
			err   error
			once  sync.Once
			value *Finding
		)
		m.oldValue = func(ctx context.Context) (*Finding, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Finding.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFinding sets the old Finding of the mutation.
func withFinding(node *Finding) findingOption {
	return func(m *FindingMutation) {
		m.oldValue = func(context.Context) (*Finding, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FindingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FindingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Finding entities.
func (m *FindingMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FindingMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FindingMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Finding.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAssessmentID sets the "assessment_id" field.
func (m *FindingMutation) SetAssessmentID(s string) {
	m.assessment = &s
}

// AssessmentID returns the value of the "assessment_id" field in the mutation.
func (m *FindingMutation) AssessmentID() (r string, exists bool) {
	v := m.assessment
	if v == nil {
		return
	}
	return *v, true
}

// OldAssessmentID returns the old "assessment_id" field's value of the Finding entity.
// If the Finding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FindingMutation) OldAssessmentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssessmentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssessmentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssessmentID: %w", err)
	}
	return oldValue.AssessmentID, nil
}

// ResetAssessmentID resets all changes to the "assessment_id" field.
func (m *FindingMutation) ResetAssessmentID() {
	m.assessment = nil
}

// SetSeverity sets the "severity" field.
func (m *FindingMutation) SetSeverity(f finding.Severity) {
	m.severity = &f
}

// Severity returns the value of the "severity" field in the mutation.
func (m *FindingMutation) Severity() (r finding.Severity, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the Finding entity.
// If the Finding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FindingMutation) OldSeverity(ctx context.Context) (v finding.Severity, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ResetSeverity resets all changes to the "severity" field.
func (m *FindingMutation) ResetSeverity() {
	m.severity = nil
}

// SetCategory sets the "category" field.
func (m *FindingMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *FindingMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the Finding entity.
// If the Finding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FindingMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *FindingMutation) ResetCategory() {
	m.category = nil
}

// SetTitle sets the "title" field.
func (m *FindingMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *FindingMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Finding entity.
// If the Finding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FindingMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *FindingMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *FindingMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *FindingMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Finding entity.
// If the Finding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FindingMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *FindingMutation) ResetDescription() {
	m.description = nil
}

// SetLocation sets the "location" field.
func (m *FindingMutation) SetLocation(value map[string]interface{}) {
	m.location = &value
}

// Location returns the value of the "location" field in the mutation.
func (m *FindingMutation) Location() (r map[string]interface{}, exists bool) {
	v := m.location
	if v == nil {
		return
	}
	return *v, true
}

// OldLocation returns the old "location" field's value of the Finding entity.
// If the Finding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FindingMutation) OldLocation(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocation: %w", err)
	}
	return oldValue.Location, nil
}

// ClearLocation clears the value of the "location" field.
func (m *FindingMutation) ClearLocation() {
	m.location = nil
	m.clearedFields[finding.FieldLocation] = struct{}{}
}

// LocationCleared returns if the "location" field was cleared in this mutation.
func (m *FindingMutation) LocationCleared() bool {
	_, ok := m.clearedFields[finding.FieldLocation]
	return ok
}

// ResetLocation resets all changes to the "location" field.
func (m *FindingMutation) ResetLocation() {
	m.location = nil
	delete(m.clearedFields, finding.FieldLocation)
}

// SetEvidence sets the "evidence" field.
func (m *FindingMutation) SetEvidence(value map[string]interface{}) {
	m.evidence = &value
}

// Evidence returns the value of the "evidence" field in the mutation.
func (m *FindingMutation) Evidence() (r map[string]interface{}, exists bool) {
	v := m.evidence
	if v == nil {
		return
	}
	return *v, true
}

// OldEvidence returns the old "evidence" field's value of the Finding entity.
// If the Finding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FindingMutation) OldEvidence(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvidence: %w", err)
	}
	return oldValue.Evidence, nil
}

// ClearEvidence clears the value of the "evidence" field.
func (m *FindingMutation) ClearEvidence() {
	m.evidence = nil
	m.clearedFields[finding.FieldEvidence] = struct{}{}
}

// EvidenceCleared returns if the "evidence" field was cleared in this mutation.
func (m *FindingMutation) EvidenceCleared() bool {
	_, ok := m.clearedFields[finding.FieldEvidence]
	return ok
}

// ResetEvidence resets all changes to the "evidence" field.
func (m *FindingMutation) ResetEvidence() {
	m.evidence = nil
	delete(m.clearedFields, finding.FieldEvidence)
}

// SetRemediation sets the "remediation" field.
func (m *FindingMutation) SetRemediation(s string) {
	m.remediation = &s
}

// Remediation returns the value of the "remediation" field in the mutation.
func (m *FindingMutation) Remediation() (r string, exists bool) {
	v := m.remediation
	if v == nil {
		return
	}
	return *v, true
}

// OldRemediation returns the old "remediation" field's value of the Finding entity.
// If the Finding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FindingMutation) OldRemediation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRemediation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRemediation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRemediation: %w", err)
	}
	return oldValue.Remediation, nil
}

// ResetRemediation resets all changes to the "remediation" field.
func (m *FindingMutation) ResetRemediation() {
	m.remediation = nil
}

// SetAgent sets the "agent" field.
func (m *FindingMutation) SetAgent(s string) {
	m.agent = &s
}

// Agent returns the value of the "agent" field in the mutation.
func (m *FindingMutation) Agent() (r string, exists bool) {
	v := m.agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAgent returns the old "agent" field's value of the Finding entity.
// If the Finding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FindingMutation) OldAgent(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgent: %w", err)
	}
	return oldValue.Agent, nil
}

// ClearAgent clears the value of the "agent" field.
func (m *FindingMutation) ClearAgent() {
	m.agent = nil
	m.clearedFields[finding.FieldAgent] = struct{}{}
}

// AgentCleared returns if the "agent" field was cleared in this mutation.
func (m *FindingMutation) AgentCleared() bool {
	_, ok := m.clearedFields[finding.FieldAgent]
	return ok
}

// ResetAgent resets all changes to the "agent" field.
func (m *FindingMutation) ResetAgent() {
	m.agent = nil
	delete(m.clearedFields, finding.FieldAgent)
}

// SetCreatedAt sets the "created_at" field.
func (m *FindingMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FindingMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Finding entity.
// If the Finding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FindingMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FindingMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearAssessment clears the "assessment" edge to the Assessment entity.
func (m *FindingMutation) ClearAssessment() {
	m.clearedassessment = true
	m.clearedFields[finding.FieldAssessmentID] = struct{}{}
}

// AssessmentCleared reports if the "assessment" edge to the Assessment entity was cleared.
func (m *FindingMutation) AssessmentCleared() bool {
	return m.clearedassessment
}

// AssessmentIDs returns the "assessment" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AssessmentID instead. It exists only for internal usage by the builders.
func (m *FindingMutation) AssessmentIDs() (ids []string) {
	if id := m.assessment; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAssessment resets all changes to the "assessment" edge.
func (m *FindingMutation) ResetAssessment() {
	m.assessment = nil
	m.clearedassessment = false
}

// Where appends a list predicates to the FindingMutation builder.
func (m *FindingMutation) Where(ps ...predicate.Finding) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FindingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FindingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Finding, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FindingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FindingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Finding).
func (m *FindingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FindingMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.assessment != nil {
		fields = append(fields, finding.FieldAssessmentID)
	}
	if m.severity != nil {
		fields = append(fields, finding.FieldSeverity)
	}
	if m.category != nil {
		fields = append(fields, finding.FieldCategory)
	}
	if m.title != nil {
		fields = append(fields, finding.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, finding.FieldDescription)
	}
	if m.location != nil {
		fields = append(fields, finding.FieldLocation)
	}
	if m.evidence != nil {
		fields = append(fields, finding.FieldEvidence)
	}
	if m.remediation != nil {
		fields = append(fields, finding.FieldRemediation)
	}
	if m.agent != nil {
		fields = append(fields, finding.FieldAgent)
	}
	if m.created_at != nil {
		fields = append(fields, finding.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FindingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case finding.FieldAssessmentID:
		return m.AssessmentID()
	case finding.FieldSeverity:
		return m.Severity()
	case finding.FieldCategory:
		return m.Category()
	case finding.FieldTitle:
		return m.Title()
	case finding.FieldDescription:
		return m.Description()
	case finding.FieldLocation:
		return m.Location()
	case finding.FieldEvidence:
		return m.Evidence()
	case finding.FieldRemediation:
		return m.Remediation()
	case finding.FieldAgent:
		return m.Agent()
	case finding.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FindingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case finding.FieldAssessmentID:
		return m.OldAssessmentID(ctx)
	case finding.FieldSeverity:
		return m.OldSeverity(ctx)
	case finding.FieldCategory:
		return m.OldCategory(ctx)
	case finding.FieldTitle:
		return m.OldTitle(ctx)
	case finding.FieldDescription:
		return m.OldDescription(ctx)
	case finding.FieldLocation:
		return m.OldLocation(ctx)
	case finding.FieldEvidence:
		return m.OldEvidence(ctx)
	case finding.FieldRemediation:
		return m.OldRemediation(ctx)
	case finding.FieldAgent:
		return m.OldAgent(ctx)
	case finding.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Finding field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FindingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case finding.FieldAssessmentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssessmentID(v)
		return nil
	case finding.FieldSeverity:
		v, ok := value.(finding.Severity)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case finding.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case finding.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case finding.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case finding.FieldLocation:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocation(v)
		return nil
	case finding.FieldEvidence:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvidence(v)
		return nil
	case finding.FieldRemediation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRemediation(v)
		return nil
	case finding.FieldAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgent(v)
		return nil
	case finding.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Finding field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FindingMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FindingMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FindingMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Finding numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FindingMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(finding.FieldLocation) {
		fields = append(fields, finding.FieldLocation)
	}
	if m.FieldCleared(finding.FieldEvidence) {
		fields = append(fields, finding.FieldEvidence)
	}
	if m.FieldCleared(finding.FieldAgent) {
		fields = append(fields, finding.FieldAgent)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FindingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FindingMutation) ClearField(name string) error {
	switch name {
	case finding.FieldLocation:
		m.ClearLocation()
		return nil
	case finding.FieldEvidence:
		m.ClearEvidence()
		return nil
	case finding.FieldAgent:
		m.ClearAgent()
		return nil
	}
	return fmt.Errorf("unknown Finding nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FindingMutation) ResetField(name string) error {
	switch name {
	case finding.FieldAssessmentID:
		m.ResetAssessmentID()
		return nil
	case finding.FieldSeverity:
		m.ResetSeverity()
		return nil
	case finding.FieldCategory:
		m.ResetCategory()
		return nil
	case finding.FieldTitle:
		m.ResetTitle()
		return nil
	case finding.FieldDescription:
		m.ResetDescription()
		return nil
	case finding.FieldLocation:
		m.ResetLocation()
		return nil
	case finding.FieldEvidence:
		m.ResetEvidence()
		return nil
	case finding.FieldRemediation:
		m.ResetRemediation()
		return nil
	case finding.FieldAgent:
		m.ResetAgent()
		return nil
	case finding.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Finding field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FindingMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.assessment != nil {
		edges = append(edges, finding.EdgeAssessment)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FindingMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case finding.EdgeAssessment:
		if id := m.assessment; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FindingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FindingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FindingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedassessment {
		edges = append(edges, finding.EdgeAssessment)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FindingMutation) EdgeCleared(name string) bool {
	switch name {
	case finding.EdgeAssessment:
		return m.clearedassessment
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FindingMutation) ClearEdge(name string) error {
	switch name {
	case finding.EdgeAssessment:
		m.ClearAssessment()
		return nil
	}
	return fmt.Errorf("unknown Finding unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FindingMutation) ResetEdge(name string) error {
	switch name {
	case finding.EdgeAssessment:
		m.ResetAssessment()
		return nil
	}
	return fmt.Errorf("unknown Finding edge %s", name)
}

// TunnelSessionMutation represents an operation that mutates the TunnelSession nodes in the graph.
type TunnelSessionMutation struct {
	config
	op             Op
	typ            string
	id             *string
	target_port    *int
	addtarget_port *int
	status         *tunnelsession.Status
	created_at     *time.Time
	last_heartbeat *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*TunnelSession, error)
	predicates     []predicate.TunnelSession
}

var _ ent.Mutation = (*TunnelSessionMutation)(nil)

// tunnelsessionOption allows management of the mutation configuration using functional options.
type tunnelsessionOption func(*TunnelSessionMutation)

// newTunnelSessionMutation creates new mutation for the TunnelSession entity.
func newTunnelSessionMutation(c config, op Op, opts ...tunnelsessionOption) *TunnelSessionMutation {
	m := &TunnelSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeTunnelSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTunnelSessionID sets the ID field of the mutation.
func withTunnelSessionID(id string) tunnelsessionOption {
	return func(m *TunnelSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *TunnelSession
		)
		m.oldValue = func(ctx context.Context) (*TunnelSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TunnelSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTunnelSession sets the old TunnelSession of the mutation.
func withTunnelSession(node *TunnelSession) tunnelsessionOption {
	return func(m *TunnelSessionMutation) {
		m.oldValue = func(context.Context) (*TunnelSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TunnelSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TunnelSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TunnelSession entities.
func (m *TunnelSessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TunnelSessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TunnelSessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TunnelSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTargetPort sets the "target_port" field.
func (m *TunnelSessionMutation) SetTargetPort(i int) {
	m.target_port = &i
	m.addtarget_port = nil
}

// TargetPort returns the value of the "target_port" field in the mutation.
func (m *TunnelSessionMutation) TargetPort() (r int, exists bool) {
	v := m.target_port
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetPort returns the old "target_port" field's value of the TunnelSession entity.
// If the TunnelSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TunnelSessionMutation) OldTargetPort(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetPort is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetPort requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetPort: %w", err)
	}
	return oldValue.TargetPort, nil
}

// AddTargetPort adds i to the "target_port" field.
func (m *TunnelSessionMutation) AddTargetPort(i int) {
	if m.addtarget_port != nil {
		*m.addtarget_port += i
	} else {
		m.addtarget_port = &i
	}
}

// AddedTargetPort returns the value that was added to the "target_port" field in this mutation.
func (m *TunnelSessionMutation) AddedTargetPort() (r int, exists bool) {
	v := m.addtarget_port
	if v == nil {
		return
	}
	return *v, true
}

// ResetTargetPort resets all changes to the "target_port" field.
func (m *TunnelSessionMutation) ResetTargetPort() {
	m.target_port = nil
	m.addtarget_port = nil
}

// SetStatus sets the "status" field.
func (m *TunnelSessionMutation) SetStatus(t tunnelsession.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TunnelSessionMutation) Status() (r tunnelsession.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the TunnelSession entity.
// If the TunnelSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TunnelSessionMutation) OldStatus(ctx context.Context) (v tunnelsession.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TunnelSessionMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TunnelSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TunnelSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TunnelSession entity.
// If the TunnelSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TunnelSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TunnelSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (m *TunnelSessionMutation) SetLastHeartbeat(t time.Time) {
	m.last_heartbeat = &t
}

// LastHeartbeat returns the value of the "last_heartbeat" field in the mutation.
func (m *TunnelSessionMutation) LastHeartbeat() (r time.Time, exists bool) {
	v := m.last_heartbeat
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeat returns the old "last_heartbeat" field's value of the TunnelSession entity.
// If the TunnelSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TunnelSessionMutation) OldLastHeartbeat(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeat: %w", err)
	}
	return oldValue.LastHeartbeat, nil
}

// ResetLastHeartbeat resets all changes to the "last_heartbeat" field.
func (m *TunnelSessionMutation) ResetLastHeartbeat() {
	m.last_heartbeat = nil
}

// Where appends a list predicates to the TunnelSessionMutation builder.
func (m *TunnelSessionMutation) Where(ps ...predicate.TunnelSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TunnelSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TunnelSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TunnelSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TunnelSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TunnelSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TunnelSession).
func (m *TunnelSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TunnelSessionMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.target_port != nil {
		fields = append(fields, tunnelsession.FieldTargetPort)
	}
	if m.status != nil {
		fields = append(fields, tunnelsession.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, tunnelsession.FieldCreatedAt)
	}
	if m.last_heartbeat != nil {
		fields = append(fields, tunnelsession.FieldLastHeartbeat)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TunnelSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tunnelsession.FieldTargetPort:
		return m.TargetPort()
	case tunnelsession.FieldStatus:
		return m.Status()
	case tunnelsession.FieldCreatedAt:
		return m.CreatedAt()
	case tunnelsession.FieldLastHeartbeat:
		return m.LastHeartbeat()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TunnelSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tunnelsession.FieldTargetPort:
		return m.OldTargetPort(ctx)
	case tunnelsession.FieldStatus:
		return m.OldStatus(ctx)
	case tunnelsession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case tunnelsession.FieldLastHeartbeat:
		return m.OldLastHeartbeat(ctx)
	}
	return nil, fmt.Errorf("unknown TunnelSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TunnelSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tunnelsession.FieldTargetPort:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetPort(v)
		return nil
	case tunnelsession.FieldStatus:
		v, ok := value.(tunnelsession.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case tunnelsession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case tunnelsession.FieldLastHeartbeat:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeat(v)
		return nil
	}
	return fmt.Errorf("unknown TunnelSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TunnelSessionMutation) AddedFields() []string {
	var fields []string
	if m.addtarget_port != nil {
		fields = append(fields, tunnelsession.FieldTargetPort)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TunnelSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case tunnelsession.FieldTargetPort:
		return m.AddedTargetPort()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TunnelSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case tunnelsession.FieldTargetPort:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTargetPort(v)
		return nil
	}
	return fmt.Errorf("unknown TunnelSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TunnelSessionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TunnelSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TunnelSessionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TunnelSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TunnelSessionMutation) ResetField(name string) error {
	switch name {
	case tunnelsession.FieldTargetPort:
		m.ResetTargetPort()
		return nil
	case tunnelsession.FieldStatus:
		m.ResetStatus()
		return nil
	case tunnelsession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case tunnelsession.FieldLastHeartbeat:
		m.ResetLastHeartbeat()
		return nil
	}
	return fmt.Errorf("unknown TunnelSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TunnelSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TunnelSessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TunnelSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TunnelSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TunnelSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TunnelSessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TunnelSessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TunnelSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TunnelSessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TunnelSession edge %s", name)
}
