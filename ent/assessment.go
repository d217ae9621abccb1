// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/vibecheck/vibecheck/ent/assessment"
)

// Assessment is the model entity for the Assessment schema.
type Assessment struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Mode holds the value of the "mode" field.
	Mode assessment.Mode `json:"mode,omitempty"`
	// Status holds the value of the "status" field.
	Status assessment.Status `json:"status,omitempty"`
	// Lightweight mode repository source
	RepoURL *string `json:"repo_url,omitempty"`
	// Robust mode target base URL
	TargetURL *string `json:"target_url,omitempty"`
	// Robust mode tunnel source (resolved to target_url at schedule time)
	TunnelSessionID *string `json:"tunnel_session_id,omitempty"`
	// Robust agent roster in execution order
	Agents []string `json:"agents,omitempty"`
	// Depth holds the value of the "depth" field.
	Depth assessment.Depth `json:"depth,omitempty"`
	// IdempotencyKey holds the value of the "idempotency_key" field.
	IdempotencyKey *string `json:"idempotency_key,omitempty"`
	// Denormalized severity histogram, written at completion
	FindingCounts map[string]int `json:"finding_counts,omitempty"`
	// Uppercase terminal failure code (e.g. TARGET_UNREACHABLE)
	ErrorType *string `json:"error_type,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AssessmentQuery when eager-loading is set.
	Edges        AssessmentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AssessmentEdges holds the relations/edges for other nodes in the graph.
type AssessmentEdges struct {
	// Findings holds the value of the findings edge.
	Findings []*Finding `json:"findings,omitempty"`
	// AgentLogs holds the value of the agent_logs edge.
	AgentLogs []*AgentLog `json:"agent_logs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// FindingsOrErr returns the Findings value or an error if the edge
// was not loaded in eager-loading.
func (e AssessmentEdges) FindingsOrErr() ([]*Finding, error) {
	if e.loadedTypes[0] {
		return e.Findings, nil
	}
	return nil, &NotLoadedError{edge: "findings"}
}

// AgentLogsOrErr returns the AgentLogs value or an error if the edge
// was not loaded in eager-loading.
func (e AssessmentEdges) AgentLogsOrErr() ([]*AgentLog, error) {
	if e.loadedTypes[1] {
		return e.AgentLogs, nil
	}
	return nil, &NotLoadedError{edge: "agent_logs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Assessment) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case assessment.FieldAgents, assessment.FieldFindingCounts:
			values[i] = new([]byte)
		case assessment.FieldID, assessment.FieldMode, assessment.FieldStatus, assessment.FieldRepoURL, assessment.FieldTargetURL, assessment.FieldTunnelSessionID, assessment.FieldDepth, assessment.FieldIdempotencyKey, assessment.FieldErrorType, assessment.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case assessment.FieldCreatedAt, assessment.FieldUpdatedAt, assessment.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Assessment fields.
func (_m *Assessment) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case assessment.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case assessment.FieldMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mode", values[i])
			} else if value.Valid {
				_m.Mode = assessment.Mode(value.String)
			}
		case assessment.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = assessment.Status(value.String)
			}
		case assessment.FieldRepoURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field repo_url", values[i])
			} else if value.Valid {
				_m.RepoURL = new(string)
				*_m.RepoURL = value.String
			}
		case assessment.FieldTargetURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_url", values[i])
			} else if value.Valid {
				_m.TargetURL = new(string)
				*_m.TargetURL = value.String
			}
		case assessment.FieldTunnelSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tunnel_session_id", values[i])
			} else if value.Valid {
				_m.TunnelSessionID = new(string)
				*_m.TunnelSessionID = value.String
			}
		case assessment.FieldAgents:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field agents", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Agents); err != nil {
					return fmt.Errorf("unmarshal field agents: %w", err)
				}
			}
		case assessment.FieldDepth:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field depth", values[i])
			} else if value.Valid {
				_m.Depth = assessment.Depth(value.String)
			}
		case assessment.FieldIdempotencyKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field idempotency_key", values[i])
			} else if value.Valid {
				_m.IdempotencyKey = new(string)
				*_m.IdempotencyKey = value.String
			}
		case assessment.FieldFindingCounts:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field finding_counts", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FindingCounts); err != nil {
					return fmt.Errorf("unmarshal field finding_counts: %w", err)
				}
			}
		case assessment.FieldErrorType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_type", values[i])
			} else if value.Valid {
				_m.ErrorType = new(string)
				*_m.ErrorType = value.String
			}
		case assessment.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case assessment.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case assessment.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case assessment.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Assessment.
// This includes values selected through modifiers, order, etc.
func (_m *Assessment) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFindings queries the "findings" edge of the Assessment entity.
func (_m *Assessment) QueryFindings() *FindingQuery {
	return NewAssessmentClient(_m.config).QueryFindings(_m)
}

// QueryAgentLogs queries the "agent_logs" edge of the Assessment entity.
func (_m *Assessment) QueryAgentLogs() *AgentLogQuery {
	return NewAssessmentClient(_m.config).QueryAgentLogs(_m)
}

// Update returns a builder for updating this Assessment.
// Note that you need to call Assessment.Unwrap() before calling this method if this Assessment
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Assessment) Update() *AssessmentUpdateOne {
	return NewAssessmentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Assessment entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Assessment) Unwrap() *Assessment {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Assessment is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Assessment) String() string {
	var builder strings.Builder
	builder.WriteString("Assessment(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("mode=")
	builder.WriteString(fmt.Sprintf("%v", _m.Mode))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.RepoURL; v != nil {
		builder.WriteString("repo_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.TargetURL; v != nil {
		builder.WriteString("target_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.TunnelSessionID; v != nil {
		builder.WriteString("tunnel_session_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("agents=")
	builder.WriteString(fmt.Sprintf("%v", _m.Agents))
	builder.WriteString(", ")
	builder.WriteString("depth=")
	builder.WriteString(fmt.Sprintf("%v", _m.Depth))
	builder.WriteString(", ")
	if v := _m.IdempotencyKey; v != nil {
		builder.WriteString("idempotency_key=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("finding_counts=")
	builder.WriteString(fmt.Sprintf("%v", _m.FindingCounts))
	builder.WriteString(", ")
	if v := _m.ErrorType; v != nil {
		builder.WriteString("error_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Assessments is a parsable slice of Assessment.
type Assessments []*Assessment
