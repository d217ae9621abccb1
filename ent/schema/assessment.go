package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Assessment holds the schema definition for the Assessment entity.
type Assessment struct {
	ent.Schema
}

// Fields of the Assessment.
func (Assessment) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("assessment_id").
			Unique().
			Immutable(),
		field.Enum("mode").
			Values("lightweight", "robust"),
		field.Enum("status").
			Values("queued", "cloning", "analyzing", "scanning", "complete", "failed").
			Default("queued"),
		field.String("repo_url").
			Optional().
			Nillable().
			Comment("Lightweight mode repository source"),
		field.String("target_url").
			Optional().
			Nillable().
			Comment("Robust mode target base URL"),
		field.String("tunnel_session_id").
			Optional().
			Nillable().
			Comment("Robust mode tunnel source (resolved to target_url at schedule time)"),
		field.JSON("agents", []string{}).
			Optional().
			Comment("Robust agent roster in execution order"),
		field.Enum("depth").
			Values("quick", "standard", "deep").
			Default("standard"),
		field.String("idempotency_key").
			Optional().
			Nillable(),
		field.JSON("finding_counts", map[string]int{}).
			Default(map[string]int{
				"critical": 0, "high": 0, "medium": 0, "low": 0, "info": 0, "total": 0,
			}).
			Comment("Denormalized severity histogram, written at completion"),
		field.String("error_type").
			Optional().
			Nillable().
			Comment("Uppercase terminal failure code (e.g. TARGET_UNREACHABLE)"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Assessment.
func (Assessment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("findings", Finding.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("agent_logs", AgentLog.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Assessment.
func (Assessment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("mode"),
		index.Fields("status", "created_at"),

		// Idempotency keys are unique when present.
		index.Fields("idempotency_key").
			Unique().
			Annotations(entsql.IndexWhere("idempotency_key IS NOT NULL")),
	}
}
