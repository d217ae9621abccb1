// Code generated by ent, DO NOT EDIT.

package assessment

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the assessment type in the database.
	Label = "assessment"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "assessment_id"
	// FieldMode holds the string denoting the mode field in the database.
	FieldMode = "mode"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldRepoURL holds the string denoting the repo_url field in the database.
	FieldRepoURL = "repo_url"
	// FieldTargetURL holds the string denoting the target_url field in the database.
	FieldTargetURL = "target_url"
	// FieldTunnelSessionID holds the string denoting the tunnel_session_id field in the database.
	FieldTunnelSessionID = "tunnel_session_id"
	// FieldAgents holds the string denoting the agents field in the database.
	FieldAgents = "agents"
	// FieldDepth holds the string denoting the depth field in the database.
	FieldDepth = "depth"
	// FieldIdempotencyKey holds the string denoting the idempotency_key field in the database.
	FieldIdempotencyKey = "idempotency_key"
	// FieldFindingCounts holds the string denoting the finding_counts field in the database.
	FieldFindingCounts = "finding_counts"
	// FieldErrorType holds the string denoting the error_type field in the database.
	FieldErrorType = "error_type"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgeFindings holds the string denoting the findings edge name in mutations.
	EdgeFindings = "findings"
	// EdgeAgentLogs holds the string denoting the agent_logs edge name in mutations.
	EdgeAgentLogs = "agent_logs"
	// FindingFieldID holds the string denoting the ID field of the Finding.
	FindingFieldID = "finding_id"
	// AgentLogFieldID holds the string denoting the ID field of the AgentLog.
	AgentLogFieldID = "log_id"
	// Table holds the table name of the assessment in the database.
	Table = "assessments"
	// FindingsTable is the table that holds the findings relation/edge.
	FindingsTable = "findings"
	// FindingsInverseTable is the table name for the Finding entity.
	// It exists in this package in order to avoid circular dependency with the "finding" package.
	FindingsInverseTable = "findings"
	// FindingsColumn is the table column denoting the findings relation/edge.
	FindingsColumn = "assessment_id"
	// AgentLogsTable is the table that holds the agent_logs relation/edge.
	AgentLogsTable = "agent_logs"
	// AgentLogsInverseTable is the table name for the AgentLog entity.
	// It exists in this package in order to avoid circular dependency with the "agentlog" package.
	AgentLogsInverseTable = "agent_logs"
	// AgentLogsColumn is the table column denoting the agent_logs relation/edge.
	AgentLogsColumn = "assessment_id"
)

// Columns holds all SQL columns for assessment fields.
var Columns = []string{
	FieldID,
	FieldMode,
	FieldStatus,
	FieldRepoURL,
	FieldTargetURL,
	FieldTunnelSessionID,
	FieldAgents,
	FieldDepth,
	FieldIdempotencyKey,
	FieldFindingCounts,
	FieldErrorType,
	FieldErrorMessage,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldCompletedAt,
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
	// DefaultFindingCounts holds the default value on creation for the "finding_counts" field.
	DefaultFindingCounts map[string]int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Mode defines the type for the "mode" enum field.
type Mode string

// Mode values.
const (
	ModeLightweight Mode = "lightweight"
	ModeRobust      Mode = "robust"
)

func (m Mode) String() string {
	return string(m)
}

// ModeValidator is a validator for the "mode" field enum values. It is called by the builders before save.
func ModeValidator(m Mode) error {
	switch m {
	case ModeLightweight, ModeRobust:
		return nil
	default:
		return fmt.Errorf("assessment: invalid enum value for mode field: %q", m)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusQueued is the default value of the Status enum.
const DefaultStatus = StatusQueued

// Status values.
const (
	StatusQueued    Status = "queued"
	StatusCloning   Status = "cloning"
	StatusAnalyzing Status = "analyzing"
	StatusScanning  Status = "scanning"
	StatusComplete  Status = "complete"
	StatusFailed    Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusQueued, StatusCloning, StatusAnalyzing, StatusScanning, StatusComplete, StatusFailed:
		return nil
	default:
		return fmt.Errorf("assessment: invalid enum value for status field: %q", s)
	}
}

// Depth defines the type for the "depth" enum field.
type Depth string

// DepthStandard is the default value of the Depth enum.
const DefaultDepth = DepthStandard

// Depth values.
const (
	DepthQuick    Depth = "quick"
	DepthStandard Depth = "standard"
	DepthDeep     Depth = "deep"
)

func (d Depth) String() string {
	return string(d)
}

// DepthValidator is a validator for the "depth" field enum values. It is called by the builders before save.
func DepthValidator(d Depth) error {
	switch d {
	case DepthQuick, DepthStandard, DepthDeep:
		return nil
	default:
		return fmt.Errorf("assessment: invalid enum value for depth field: %q", d)
	}
}

// OrderOption defines the ordering options for the Assessment queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByMode orders the results by the mode field.
func ByMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMode, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByRepoURL orders the results by the repo_url field.
func ByRepoURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRepoURL, opts...).ToFunc()
}

// ByTargetURL orders the results by the target_url field.
func ByTargetURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetURL, opts...).ToFunc()
}

// ByTunnelSessionID orders the results by the tunnel_session_id field.
func ByTunnelSessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTunnelSessionID, opts...).ToFunc()
}

// ByDepth orders the results by the depth field.
func ByDepth(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDepth, opts...).ToFunc()
}

// ByIdempotencyKey orders the results by the idempotency_key field.
func ByIdempotencyKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIdempotencyKey, opts...).ToFunc()
}

// ByErrorType orders the results by the error_type field.
func ByErrorType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorType, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByFindingsCount orders the results by findings count.
func ByFindingsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newFindingsStep(), opts...)
	}
}

// ByFindings orders the results by findings terms.
func ByFindings(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFindingsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAgentLogsCount orders the results by agent_logs count.
func ByAgentLogsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAgentLogsStep(), opts...)
	}
}

// ByAgentLogs orders the results by agent_logs terms.
func ByAgentLogs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAgentLogsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newFindingsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FindingsInverseTable, FindingFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, FindingsTable, FindingsColumn),
	)
}
func newAgentLogsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AgentLogsInverseTable, AgentLogFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AgentLogsTable, AgentLogsColumn),
	)
}
