package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TunnelSession holds the schema definition for the TunnelSession entity.
// Liveness is determined by the in-memory connection registry; rows record
// the session's lifecycle for lookups and auditing.
type TunnelSession struct {
	ent.Schema
}

// Fields of the TunnelSession.
func (TunnelSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("tunnel_session_id").
			Unique().
			Immutable(),
		field.Int("target_port").
			Comment("Local port the CLI forwards requests to"),
		field.Enum("status").
			Values("connected", "disconnected").
			Default("connected"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("last_heartbeat").
			Default(time.Now).
			Comment("Updated on every pong"),
	}
}

// Indexes of the TunnelSession.
func (TunnelSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
	}
}
