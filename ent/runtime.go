// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/vibecheck/vibecheck/ent/agentlog"
	"github.com/vibecheck/vibecheck/ent/assessment"
	"github.com/vibecheck/vibecheck/ent/finding"
	"github.com/vibecheck/vibecheck/ent/schema"
	"github.com/vibecheck/vibecheck/ent/tunnelsession"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentlogFields := schema.AgentLog{}.Fields()
	_ = agentlogFields
	// agentlogDescTimestamp is the schema descriptor for timestamp field.
	agentlogDescTimestamp := agentlogFields[11].Descriptor()
	// agentlog.DefaultTimestamp holds the default value on creation for the timestamp field.
	agentlog.DefaultTimestamp = agentlogDescTimestamp.Default.(func() time.Time)
	assessmentFields := schema.Assessment{}.Fields()
	_ = assessmentFields
	// assessmentDescFindingCounts is the schema descriptor for finding_counts field.
	assessmentDescFindingCounts := assessmentFields[9].Descriptor()
	// assessment.DefaultFindingCounts holds the default value on creation for the finding_counts field.
	assessment.DefaultFindingCounts = assessmentDescFindingCounts.Default.(map[string]int)
	// assessmentDescCreatedAt is the schema descriptor for created_at field.
	assessmentDescCreatedAt := assessmentFields[12].Descriptor()
	// assessment.DefaultCreatedAt holds the default value on creation for the created_at field.
	assessment.DefaultCreatedAt = assessmentDescCreatedAt.Default.(func() time.Time)
	// assessmentDescUpdatedAt is the schema descriptor for updated_at field.
	assessmentDescUpdatedAt := assessmentFields[13].Descriptor()
	// assessment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	assessment.DefaultUpdatedAt = assessmentDescUpdatedAt.Default.(func() time.Time)
	// assessment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	assessment.UpdateDefaultUpdatedAt = assessmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	findingFields := schema.Finding{}.Fields()
	_ = findingFields
	// findingDescCreatedAt is the schema descriptor for created_at field.
	findingDescCreatedAt := findingFields[10].Descriptor()
	// finding.DefaultCreatedAt holds the default value on creation for the created_at field.
	finding.DefaultCreatedAt = findingDescCreatedAt.Default.(func() time.Time)
	tunnelsessionFields := schema.TunnelSession{}.Fields()
	_ = tunnelsessionFields
	// tunnelsessionDescCreatedAt is the schema descriptor for created_at field.
	tunnelsessionDescCreatedAt := tunnelsessionFields[3].Descriptor()
	// tunnelsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	tunnelsession.DefaultCreatedAt = tunnelsessionDescCreatedAt.Default.(func() time.Time)
	// tunnelsessionDescLastHeartbeat is the schema descriptor for last_heartbeat field.
	tunnelsessionDescLastHeartbeat := tunnelsessionFields[4].Descriptor()
	// tunnelsession.DefaultLastHeartbeat holds the default value on creation for the last_heartbeat field.
	tunnelsession.DefaultLastHeartbeat = tunnelsessionDescLastHeartbeat.Default.(func() time.Time)
}
