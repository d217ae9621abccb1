// Code generated by ent, DO NOT EDIT.

package agentlog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the agentlog type in the database.
	Label = "agent_log"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "log_id"
	// FieldAssessmentID holds the string denoting the assessment_id field in the database.
	FieldAssessmentID = "assessment_id"
	// FieldAgent holds the string denoting the agent field in the database.
	FieldAgent = "agent"
	// FieldStep holds the string denoting the step field in the database.
	FieldStep = "step"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldTarget holds the string denoting the target field in the database.
	FieldTarget = "target"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldResponseCode holds the string denoting the response_code field in the database.
	FieldResponseCode = "response_code"
	// FieldResponsePreview holds the string denoting the response_preview field in the database.
	FieldResponsePreview = "response_preview"
	// FieldReasoning holds the string denoting the reasoning field in the database.
	FieldReasoning = "reasoning"
	// FieldFindingID holds the string denoting the finding_id field in the database.
	FieldFindingID = "finding_id"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// EdgeAssessment holds the string denoting the assessment edge name in mutations.
	EdgeAssessment = "assessment"
	// AssessmentFieldID holds the string denoting the ID field of the Assessment.
	AssessmentFieldID = "assessment_id"
	// Table holds the table name of the agentlog in the database.
	Table = "agent_logs"
	// AssessmentTable is the table that holds the assessment relation/edge.
	AssessmentTable = "agent_logs"
	// AssessmentInverseTable is the table name for the Assessment entity.
	// It exists in this package in order to avoid circular dependency with the "assessment" package.
	AssessmentInverseTable = "assessments"
	// AssessmentColumn is the table column denoting the assessment relation/edge.
	AssessmentColumn = "assessment_id"
)

// Columns holds all SQL columns for agentlog fields.
var Columns = []string{
	FieldID,
	FieldAssessmentID,
	FieldAgent,
	FieldStep,
	FieldAction,
	FieldTarget,
	FieldPayload,
	FieldResponseCode,
	FieldResponsePreview,
	FieldReasoning,
	FieldFindingID,
	FieldTimestamp,
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
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
)

// OrderOption defines the ordering options for the AgentLog queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAssessmentID orders the results by the assessment_id field.
func ByAssessmentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssessmentID, opts...).ToFunc()
}

// ByAgent orders the results by the agent field.
func ByAgent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgent, opts...).ToFunc()
}

// ByStep orders the results by the step field.
func ByStep(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStep, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByTarget orders the results by the target field.
func ByTarget(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTarget, opts...).ToFunc()
}

// ByPayload orders the results by the payload field.
func ByPayload(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPayload, opts...).ToFunc()
}

// ByResponseCode orders the results by the response_code field.
func ByResponseCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResponseCode, opts...).ToFunc()
}

// ByResponsePreview orders the results by the response_preview field.
func ByResponsePreview(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResponsePreview, opts...).ToFunc()
}

// ByReasoning orders the results by the reasoning field.
func ByReasoning(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReasoning, opts...).ToFunc()
}

// ByFindingID orders the results by the finding_id field.
func ByFindingID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFindingID, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByAssessmentField orders the results by assessment field.
func ByAssessmentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAssessmentStep(), sql.OrderByField(field, opts...))
	}
}
func newAssessmentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AssessmentInverseTable, AssessmentFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AssessmentTable, AssessmentColumn),
	)
}
