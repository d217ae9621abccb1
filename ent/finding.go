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
	"github.com/vibecheck/vibecheck/ent/finding"
)

// Finding is the model entity for the Finding schema.
type Finding struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// AssessmentID holds the value of the "assessment_id" field.
	AssessmentID string `json:"assessment_id,omitempty"`
	// Severity holds the value of the "severity" field.
	Severity finding.Severity `json:"severity,omitempty"`
	// Analyzer category (e.g. 'vulnerable_dependency', 'hardcoded_secret')
	Category string `json:"category,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// file/endpoint/dependency location, discriminated by 'type'
	Location map[string]interface{} `json:"location,omitempty"`
	// Evidence holds the value of the "evidence" field.
	Evidence map[string]interface{} `json:"evidence,omitempty"`
	// Remediation holds the value of the "remediation" field.
	Remediation string `json:"remediation,omitempty"`
	// Robust mode agent that produced the finding
	Agent *string `json:"agent,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FindingQuery when eager-loading is set.
	Edges        FindingEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FindingEdges holds the relations/edges for other nodes in the graph.
type FindingEdges struct {
	// Assessment holds the value of the assessment edge.
	Assessment *Assessment `json:"assessment,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AssessmentOrErr returns the Assessment value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FindingEdges) AssessmentOrErr() (*Assessment, error) {
	if e.Assessment != nil {
		return e.Assessment, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: assessment.Label}
	}
	return nil, &NotLoadedError{edge: "assessment"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Finding) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case finding.FieldLocation, finding.FieldEvidence:
			values[i] = new([]byte)
		case finding.FieldID, finding.FieldAssessmentID, finding.FieldSeverity, finding.FieldCategory, finding.FieldTitle, finding.FieldDescription, finding.FieldRemediation, finding.FieldAgent:
			values[i] = new(sql.NullString)
		case finding.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Finding fields.
func (_m *Finding) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case finding.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case finding.FieldAssessmentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assessment_id", values[i])
			} else if value.Valid {
				_m.AssessmentID = value.String
			}
		case finding.FieldSeverity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field severity", values[i])
			} else if value.Valid {
				_m.Severity = finding.Severity(value.String)
			}
		case finding.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case finding.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case finding.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case finding.FieldLocation:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field location", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Location); err != nil {
					return fmt.Errorf("unmarshal field location: %w", err)
				}
			}
		case finding.FieldEvidence:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field evidence", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Evidence); err != nil {
					return fmt.Errorf("unmarshal field evidence: %w", err)
				}
			}
		case finding.FieldRemediation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field remediation", values[i])
			} else if value.Valid {
				_m.Remediation = value.String
			}
		case finding.FieldAgent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent", values[i])
			} else if value.Valid {
				_m.Agent = new(string)
				*_m.Agent = value.String
			}
		case finding.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Finding.
// This includes values selected through modifiers, order, etc.
func (_m *Finding) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAssessment queries the "assessment" edge of the Finding entity.
func (_m *Finding) QueryAssessment() *AssessmentQuery {
	return NewFindingClient(_m.config).QueryAssessment(_m)
}

// Update returns a builder for updating this Finding.
// Note that you need to call Finding.Unwrap() before calling this method if this Finding
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Finding) Update() *FindingUpdateOne {
	return NewFindingClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Finding entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Finding) Unwrap() *Finding {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Finding is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Finding) String() string {
	var builder strings.Builder
	builder.WriteString("Finding(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("assessment_id=")
	builder.WriteString(_m.AssessmentID)
	builder.WriteString(", ")
	builder.WriteString("severity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Severity))
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("location=")
	builder.WriteString(fmt.Sprintf("%v", _m.Location))
	builder.WriteString(", ")
	builder.WriteString("evidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Evidence))
	builder.WriteString(", ")
	builder.WriteString("remediation=")
	builder.WriteString(_m.Remediation)
	builder.WriteString(", ")
	if v := _m.Agent; v != nil {
		builder.WriteString("agent=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Findings is a parsable slice of Finding.
type Findings []*Finding
