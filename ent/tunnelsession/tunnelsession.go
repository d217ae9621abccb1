// Code generated by ent, DO NOT EDIT.

package tunnelsession

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the tunnelsession type in the database.
	Label = "tunnel_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "tunnel_session_id"
	// FieldTargetPort holds the string denoting the target_port field in the database.
	FieldTargetPort = "target_port"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldLastHeartbeat holds the string denoting the last_heartbeat field in the database.
	FieldLastHeartbeat = "last_heartbeat"
	// Table holds the table name of the tunnelsession in the database.
	Table = "tunnel_sessions"
)

// Columns holds all SQL columns for tunnelsession fields.
var Columns = []string{
	FieldID,
	FieldTargetPort,
	FieldStatus,
	FieldCreatedAt,
	FieldLastHeartbeat,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultLastHeartbeat holds the default value on creation for the "last_heartbeat" field.
	DefaultLastHeartbeat func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusConnected is the default value of the Status enum.
const DefaultStatus = StatusConnected

// Status values.
const (
	StatusConnected    Status = "connected"
	StatusDisconnected Status = "disconnected"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusConnected, StatusDisconnected:
		return nil
	default:
		return fmt.Errorf("tunnelsession: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the TunnelSession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTargetPort orders the results by the target_port field.
func ByTargetPort(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetPort, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByLastHeartbeat orders the results by the last_heartbeat field.
func ByLastHeartbeat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastHeartbeat, opts...).ToFunc()
}
