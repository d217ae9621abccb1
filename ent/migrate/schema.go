// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentLogsColumns holds the columns for the "agent_logs" table.
	AgentLogsColumns = []*schema.Column{
		{Name: "log_id", Type: field.TypeString, Unique: true},
		{Name: "agent", Type: field.TypeString},
		{Name: "step", Type: field.TypeInt},
		{Name: "action", Type: field.TypeString},
		{Name: "target", Type: field.TypeString},
		{Name: "payload", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "response_code", Type: field.TypeInt, Nullable: true},
		{Name: "response_preview", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "reasoning", Type: field.TypeString, Size: 2147483647},
		{Name: "finding_id", Type: field.TypeString, Nullable: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "assessment_id", Type: field.TypeString},
	}
	// AgentLogsTable holds the schema information for the "agent_logs" table.
	AgentLogsTable = &schema.Table{
		Name:       "agent_logs",
		Columns:    AgentLogsColumns,
		PrimaryKey: []*schema.Column{AgentLogsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agent_logs_assessments_agent_logs",
				Columns:    []*schema.Column{AgentLogsColumns[11]},
				RefColumns: []*schema.Column{AssessmentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agentlog_assessment_id",
				Unique:  false,
				Columns: []*schema.Column{AgentLogsColumns[11]},
			},
			{
				Name:    "agentlog_assessment_id_agent_step",
				Unique:  false,
				Columns: []*schema.Column{AgentLogsColumns[11], AgentLogsColumns[1], AgentLogsColumns[2]},
			},
		},
	}
	// AssessmentsColumns holds the columns for the "assessments" table.
	AssessmentsColumns = []*schema.Column{
		{Name: "assessment_id", Type: field.TypeString, Unique: true},
		{Name: "mode", Type: field.TypeEnum, Enums: []string{"lightweight", "robust"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"queued", "cloning", "analyzing", "scanning", "complete", "failed"}, Default: "queued"},
		{Name: "repo_url", Type: field.TypeString, Nullable: true},
		{Name: "target_url", Type: field.TypeString, Nullable: true},
		{Name: "tunnel_session_id", Type: field.TypeString, Nullable: true},
		{Name: "agents", Type: field.TypeJSON, Nullable: true},
		{Name: "depth", Type: field.TypeEnum, Enums: []string{"quick", "standard", "deep"}, Default: "standard"},
		{Name: "idempotency_key", Type: field.TypeString, Nullable: true},
		{Name: "finding_counts", Type: field.TypeJSON},
		{Name: "error_type", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// AssessmentsTable holds the schema information for the "assessments" table.
	AssessmentsTable = &schema.Table{
		Name:       "assessments",
		Columns:    AssessmentsColumns,
		PrimaryKey: []*schema.Column{AssessmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "assessment_status",
				Unique:  false,
				Columns: []*schema.Column{AssessmentsColumns[2]},
			},
			{
				Name:    "assessment_mode",
				Unique:  false,
				Columns: []*schema.Column{AssessmentsColumns[1]},
			},
			{
				Name:    "assessment_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{AssessmentsColumns[2], AssessmentsColumns[12]},
			},
			{
				Name:    "assessment_idempotency_key",
				Unique:  true,
				Columns: []*schema.Column{AssessmentsColumns[8]},
				Annotation: &entsql.IndexAnnotation{
					Where: "idempotency_key IS NOT NULL",
				},
			},
		},
	}
	// FindingsColumns holds the columns for the "findings" table.
	FindingsColumns = []*schema.Column{
		{Name: "finding_id", Type: field.TypeString, Unique: true},
		{Name: "severity", Type: field.TypeEnum, Enums: []string{"critical", "high", "medium", "low", "info"}},
		{Name: "category", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "location", Type: field.TypeJSON, Nullable: true},
		{Name: "evidence", Type: field.TypeJSON, Nullable: true},
		{Name: "remediation", Type: field.TypeString, Size: 2147483647},
		{Name: "agent", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "assessment_id", Type: field.TypeString},
	}
	// FindingsTable holds the schema information for the "findings" table.
	FindingsTable = &schema.Table{
		Name:       "findings",
		Columns:    FindingsColumns,
		PrimaryKey: []*schema.Column{FindingsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "findings_assessments_findings",
				Columns:    []*schema.Column{FindingsColumns[10]},
				RefColumns: []*schema.Column{AssessmentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "finding_assessment_id",
				Unique:  false,
				Columns: []*schema.Column{FindingsColumns[10]},
			},
			{
				Name:    "finding_assessment_id_severity",
				Unique:  false,
				Columns: []*schema.Column{FindingsColumns[10], FindingsColumns[1]},
			},
			{
				Name:    "finding_assessment_id_category",
				Unique:  false,
				Columns: []*schema.Column{FindingsColumns[10], FindingsColumns[2]},
			},
		},
	}
	// TunnelSessionsColumns holds the columns for the "tunnel_sessions" table.
	TunnelSessionsColumns = []*schema.Column{
		{Name: "tunnel_session_id", Type: field.TypeString, Unique: true},
		{Name: "target_port", Type: field.TypeInt},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"connected", "disconnected"}, Default: "connected"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "last_heartbeat", Type: field.TypeTime},
	}
	// TunnelSessionsTable holds the schema information for the "tunnel_sessions" table.
	TunnelSessionsTable = &schema.Table{
		Name:       "tunnel_sessions",
		Columns:    TunnelSessionsColumns,
		PrimaryKey: []*schema.Column{TunnelSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tunnelsession_status",
				Unique:  false,
				Columns: []*schema.Column{TunnelSessionsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentLogsTable,
		AssessmentsTable,
		FindingsTable,
		TunnelSessionsTable,
	}
)

func init() {
	AgentLogsTable.ForeignKeys[0].RefTable = AssessmentsTable
	FindingsTable.ForeignKeys[0].RefTable = AssessmentsTable
}
