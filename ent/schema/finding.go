package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Finding holds the schema definition for the Finding entity.
type Finding struct {
	ent.Schema
}

// Fields of the Finding.
func (Finding) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("finding_id").
			Unique().
			Immutable(),
		field.String("assessment_id").
			Immutable(),
		field.Enum("severity").
			Values("critical", "high", "medium", "low", "info"),
		field.String("category").
			Comment("Analyzer category (e.g. 'vulnerable_dependency', 'hardcoded_secret')"),
		field.String("title"),
		field.Text("description"),
		field.JSON("location", map[string]interface{}{}).
			Optional().
			Comment("file/endpoint/dependency location, discriminated by 'type'"),
		field.JSON("evidence", map[string]interface{}{}).
			Optional(),
		field.Text("remediation"),
		field.String("agent").
			Optional().
			Nillable().
			Comment("Robust mode agent that produced the finding"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Finding.
func (Finding) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("assessment", Assessment.Type).
			Ref("findings").
			Field("assessment_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Finding.
func (Finding) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("assessment_id"),
		index.Fields("assessment_id", "severity"),
		index.Fields("assessment_id", "category"),
	}
}
