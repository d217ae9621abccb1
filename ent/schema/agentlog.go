package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentLog holds the schema definition for the AgentLog entity, one row per
// robust agent step.
type AgentLog struct {
	ent.Schema
}

// Fields of the AgentLog.
func (AgentLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("log_id").
			Unique().
			Immutable(),
		field.String("assessment_id").
			Immutable(),
		field.String("agent"),
		field.Int("step").
			Comment("1-based step index within the (assessment, agent) run"),
		field.String("action").
			Comment("What the agent did (e.g. 'http_request', 'report_finding')"),
		field.String("target").
			Comment("Probed path or finding title"),
		field.Text("payload").
			Optional().
			Nillable().
			Comment("Request body, when one was sent"),
		field.Int("response_code").
			Optional().
			Nillable(),
		field.Text("response_preview").
			Optional().
			Nillable().
			Comment("Truncated response body returned to the model"),
		field.Text("reasoning").
			Comment("Model text preceding this tool call"),
		field.String("finding_id").
			Optional().
			Nillable().
			Comment("Set on report_finding steps"),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the AgentLog.
func (AgentLog) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("assessment", Assessment.Type).
			Ref("agent_logs").
			Field("assessment_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the AgentLog.
func (AgentLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("assessment_id"),
		index.Fields("assessment_id", "agent", "step"),
	}
}
