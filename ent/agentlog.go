// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/vibecheck/vibecheck/ent/agentlog"
	"github.com/vibecheck/vibecheck/ent/assessment"
)

// AgentLog is the model entity for the AgentLog schema.
type AgentLog struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// AssessmentID holds the value of the "assessment_id" field.
	AssessmentID string `json:"assessment_id,omitempty"`
	// Agent holds the value of the "agent" field.
	Agent string `json:"agent,omitempty"`
	// 1-based step index within the (assessment, agent) run
	Step int `json:"step,omitempty"`
	// What the agent did (e.g. 'http_request', 'report_finding')
	Action string `json:"action,omitempty"`
	// Probed path or finding title
	Target string `json:"target,omitempty"`
	// Request body, when one was sent
	Payload *string `json:"payload,omitempty"`
	// ResponseCode holds the value of the "response_code" field.
	ResponseCode *int `json:"response_code,omitempty"`
	// Truncated response body returned to the model
	ResponsePreview *string `json:"response_preview,omitempty"`
	// Model text preceding this tool call
	Reasoning string `json:"reasoning,omitempty"`
	// Set on report_finding steps
	FindingID *string `json:"finding_id,omitempty"`
	// Timestamp holds the value of the "timestamp" field.
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AgentLogQuery when eager-loading is set.
	Edges        AgentLogEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AgentLogEdges holds the relations/edges for other nodes in the graph.
type AgentLogEdges struct {
	// Assessment holds the value of the assessment edge.
	Assessment *Assessment `json:"assessment,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AssessmentOrErr returns the Assessment value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AgentLogEdges) AssessmentOrErr() (*Assessment, error) {
	if e.Assessment != nil {
		return e.Assessment, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: assessment.Label}
	}
	return nil, &NotLoadedError{edge: "assessment"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AgentLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agentlog.FieldStep, agentlog.FieldResponseCode:
			values[i] = new(sql.NullInt64)
		case agentlog.FieldID, agentlog.FieldAssessmentID, agentlog.FieldAgent, agentlog.FieldAction, agentlog.FieldTarget, agentlog.FieldPayload, agentlog.FieldResponsePreview, agentlog.FieldReasoning, agentlog.FieldFindingID:
			values[i] = new(sql.NullString)
		case agentlog.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgentLog fields.
func (_m *AgentLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agentlog.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case agentlog.FieldAssessmentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assessment_id", values[i])
			} else if value.Valid {
				_m.AssessmentID = value.String
			}
		case agentlog.FieldAgent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent", values[i])
			} else if value.Valid {
				_m.Agent = value.String
			}
		case agentlog.FieldStep:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field step", values[i])
			} else if value.Valid {
				_m.Step = int(value.Int64)
			}
		case agentlog.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				_m.Action = value.String
			}
		case agentlog.FieldTarget:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target", values[i])
			} else if value.Valid {
				_m.Target = value.String
			}
		case agentlog.FieldPayload:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value.Valid {
				_m.Payload = new(string)
				*_m.Payload = value.String
			}
		case agentlog.FieldResponseCode:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field response_code", values[i])
			} else if value.Valid {
				_m.ResponseCode = new(int)
				*_m.ResponseCode = int(value.Int64)
			}
		case agentlog.FieldResponsePreview:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field response_preview", values[i])
			} else if value.Valid {
				_m.ResponsePreview = new(string)
				*_m.ResponsePreview = value.String
			}
		case agentlog.FieldReasoning:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reasoning", values[i])
			} else if value.Valid {
				_m.Reasoning = value.String
			}
		case agentlog.FieldFindingID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field finding_id", values[i])
			} else if value.Valid {
				_m.FindingID = new(string)
				*_m.FindingID = value.String
			}
		case agentlog.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AgentLog.
// This includes values selected through modifiers, order, etc.
func (_m *AgentLog) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAssessment queries the "assessment" edge of the AgentLog entity.
func (_m *AgentLog) QueryAssessment() *AssessmentQuery {
	return NewAgentLogClient(_m.config).QueryAssessment(_m)
}

// Update returns a builder for updating this AgentLog.
// Note that you need to call AgentLog.Unwrap() before calling this method if this AgentLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AgentLog) Update() *AgentLogUpdateOne {
	return NewAgentLogClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AgentLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AgentLog) Unwrap() *AgentLog {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AgentLog is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AgentLog) String() string {
	var builder strings.Builder
	builder.WriteString("AgentLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("assessment_id=")
	builder.WriteString(_m.AssessmentID)
	builder.WriteString(", ")
	builder.WriteString("agent=")
	builder.WriteString(_m.Agent)
	builder.WriteString(", ")
	builder.WriteString("step=")
	builder.WriteString(fmt.Sprintf("%v", _m.Step))
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(_m.Action)
	builder.WriteString(", ")
	builder.WriteString("target=")
	builder.WriteString(_m.Target)
	builder.WriteString(", ")
	if v := _m.Payload; v != nil {
		builder.WriteString("payload=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ResponseCode; v != nil {
		builder.WriteString("response_code=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ResponsePreview; v != nil {
		builder.WriteString("response_preview=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("reasoning=")
	builder.WriteString(_m.Reasoning)
	builder.WriteString(", ")
	if v := _m.FindingID; v != nil {
		builder.WriteString("finding_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AgentLogs is a parsable slice of AgentLog.
type AgentLogs []*AgentLog
