// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/vibecheck/vibecheck/ent/tunnelsession"
)

// TunnelSession is the model entity for the TunnelSession schema.
type TunnelSession struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Local port the CLI forwards requests to
	TargetPort int `json:"target_port,omitempty"`
	// Status holds the value of the "status" field.
	Status tunnelsession.Status `json:"status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Updated on every pong
	LastHeartbeat time.Time `json:"last_heartbeat,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TunnelSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case tunnelsession.FieldTargetPort:
			values[i] = new(sql.NullInt64)
		case tunnelsession.FieldID, tunnelsession.FieldStatus:
			values[i] = new(sql.NullString)
		case tunnelsession.FieldCreatedAt, tunnelsession.FieldLastHeartbeat:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TunnelSession fields.
func (_m *TunnelSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case tunnelsession.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case tunnelsession.FieldTargetPort:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field target_port", values[i])
			} else if value.Valid {
				_m.TargetPort = int(value.Int64)
			}
		case tunnelsession.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = tunnelsession.Status(value.String)
			}
		case tunnelsession.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case tunnelsession.FieldLastHeartbeat:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_heartbeat", values[i])
			} else if value.Valid {
				_m.LastHeartbeat = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TunnelSession.
// This includes values selected through modifiers, order, etc.
func (_m *TunnelSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TunnelSession.
// Note that you need to call TunnelSession.Unwrap() before calling this method if this TunnelSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TunnelSession) Update() *TunnelSessionUpdateOne {
	return NewTunnelSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TunnelSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TunnelSession) Unwrap() *TunnelSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TunnelSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TunnelSession) String() string {
	var builder strings.Builder
	builder.WriteString("TunnelSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("target_port=")
	builder.WriteString(fmt.Sprintf("%v", _m.TargetPort))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("last_heartbeat=")
	builder.WriteString(_m.LastHeartbeat.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TunnelSessions is a parsable slice of TunnelSession.
type TunnelSessions []*TunnelSession
