// Code generated by ent, DO NOT EDIT.

package agentlog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/vibecheck/vibecheck/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldContainsFold(FieldID, id))
}

// AssessmentID applies equality check predicate on the "assessment_id" field. It's identical to AssessmentIDEQ.
func AssessmentID(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldEQ(FieldAssessmentID, v))
}

// Agent applies equality check predicate on the "agent" field. It's identical to AgentEQ.
func Agent(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldEQ(FieldAgent, v))
}

// Step applies equality check predicate on the "step" field. It's identical to StepEQ.
func Step(v int) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldEQ(FieldStep, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldEQ(FieldAction, v))
}

// Target applies equality check predicate on the "target" field. It's identical to TargetEQ.
func Target(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldEQ(FieldTarget, v))
}

// Payload applies equality check predicate on the "payload" field. It's identical to PayloadEQ.
func Payload(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldEQ(FieldPayload, v))
}

// ResponseCode applies equality check predicate on the "response_code" field. It's identical to ResponseCodeEQ.
func ResponseCode(v int) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldEQ(FieldResponseCode, v))
}

// ResponsePreview applies equality check predicate on the "response_preview" field. It's identical to ResponsePreviewEQ.
func ResponsePreview(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldEQ(FieldResponsePreview, v))
}

// Reasoning applies equality check predicate on the "reasoning" field. It's identical to ReasoningEQ.
func Reasoning(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldEQ(FieldReasoning, v))
}

// FindingID applies equality check predicate on the "finding_id" field. It's identical to FindingIDEQ.
func FindingID(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldEQ(FieldFindingID, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldEQ(FieldTimestamp, v))
}

// AssessmentIDEQ applies the EQ predicate on the "assessment_id" field.
func AssessmentIDEQ(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldEQ(FieldAssessmentID, v))
}

// AssessmentIDNEQ applies the NEQ predicate on the "assessment_id" field.
func AssessmentIDNEQ(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldNEQ(FieldAssessmentID, v))
}

// AssessmentIDIn applies the In predicate on the "assessment_id" field.
func AssessmentIDIn(vs ...string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldIn(FieldAssessmentID, vs...))
}

// AssessmentIDNotIn applies the NotIn predicate on the "assessment_id" field.
func AssessmentIDNotIn(vs ...string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldNotIn(FieldAssessmentID, vs...))
}

// AssessmentIDGT applies the GT predicate on the "assessment_id" field.
func AssessmentIDGT(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldGT(FieldAssessmentID, v))
}

// AssessmentIDGTE applies the GTE predicate on the "assessment_id" field.
func AssessmentIDGTE(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldGTE(FieldAssessmentID, v))
}

// AssessmentIDLT applies the LT predicate on the "assessment_id" field.
func AssessmentIDLT(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldLT(FieldAssessmentID, v))
}

// AssessmentIDLTE applies the LTE predicate on the "assessment_id" field.
func AssessmentIDLTE(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldLTE(FieldAssessmentID, v))
}

// AssessmentIDContains applies the Contains predicate on the "assessment_id" field.
func AssessmentIDContains(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldContains(FieldAssessmentID, v))
}

// AssessmentIDHasPrefix applies the HasPrefix predicate on the "assessment_id" field.
func AssessmentIDHasPrefix(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldHasPrefix(FieldAssessmentID, v))
}

// AssessmentIDHasSuffix applies the HasSuffix predicate on the "assessment_id" field.
func AssessmentIDHasSuffix(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldHasSuffix(FieldAssessmentID, v))
}

// AssessmentIDEqualFold applies the EqualFold predicate on the "assessment_id" field.
func AssessmentIDEqualFold(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldEqualFold(FieldAssessmentID, v))
}

// AssessmentIDContainsFold applies the ContainsFold predicate on the "assessment_id" field.
func AssessmentIDContainsFold(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldContainsFold(FieldAssessmentID, v))
}

// AgentEQ applies the EQ predicate on the "agent" field.
func AgentEQ(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldEQ(FieldAgent, v))
}

// AgentNEQ applies the NEQ predicate on the "agent" field.
func AgentNEQ(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldNEQ(FieldAgent, v))
}

// AgentIn applies the In predicate on the "agent" field.
func AgentIn(vs ...string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldIn(FieldAgent, vs...))
}

// AgentNotIn applies the NotIn predicate on the "agent" field.
func AgentNotIn(vs ...string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldNotIn(FieldAgent, vs...))
}

// AgentGT applies the GT predicate on the "agent" field.
func AgentGT(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldGT(FieldAgent, v))
}

// AgentGTE applies the GTE predicate on the "agent" field.
func AgentGTE(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldGTE(FieldAgent, v))
}

// AgentLT applies the LT predicate on the "agent" field.
func AgentLT(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldLT(FieldAgent, v))
}

// AgentLTE applies the LTE predicate on the "agent" field.
func AgentLTE(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldLTE(FieldAgent, v))
}

// AgentContains applies the Contains predicate on the "agent" field.
func AgentContains(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldContains(FieldAgent, v))
}

// AgentHasPrefix applies the HasPrefix predicate on the "agent" field.
func AgentHasPrefix(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldHasPrefix(FieldAgent, v))
}

// AgentHasSuffix applies the HasSuffix predicate on the "agent" field.
func AgentHasSuffix(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldHasSuffix(FieldAgent, v))
}

// AgentEqualFold applies the EqualFold predicate on the "agent" field.
func AgentEqualFold(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldEqualFold(FieldAgent, v))
}

// AgentContainsFold applies the ContainsFold predicate on the "agent" field.
func AgentContainsFold(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldContainsFold(FieldAgent, v))
}

// StepEQ applies the EQ predicate on the "step" field.
func StepEQ(v int) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldEQ(FieldStep, v))
}

// StepNEQ applies the NEQ predicate on the "step" field.
func StepNEQ(v int) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldNEQ(FieldStep, v))
}

// StepIn applies the In predicate on the "step" field.
func StepIn(vs ...int) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldIn(FieldStep, vs...))
}

// StepNotIn applies the NotIn predicate on the "step" field.
func StepNotIn(vs ...int) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldNotIn(FieldStep, vs...))
}

// StepGT applies the GT predicate on the "step" field.
func StepGT(v int) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldGT(FieldStep, v))
}

// StepGTE applies the GTE predicate on the "step" field.
func StepGTE(v int) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldGTE(FieldStep, v))
}

// StepLT applies the LT predicate on the "step" field.
func StepLT(v int) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldLT(FieldStep, v))
}

// StepLTE applies the LTE predicate on the "step" field.
func StepLTE(v int) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldLTE(FieldStep, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldContainsFold(FieldAction, v))
}

// TargetEQ applies the EQ predicate on the "target" field.
func TargetEQ(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldEQ(FieldTarget, v))
}

// TargetNEQ applies the NEQ predicate on the "target" field.
func TargetNEQ(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldNEQ(FieldTarget, v))
}

// TargetIn applies the In predicate on the "target" field.
func TargetIn(vs ...string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldIn(FieldTarget, vs...))
}

// TargetNotIn applies the NotIn predicate on the "target" field.
func TargetNotIn(vs ...string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldNotIn(FieldTarget, vs...))
}

// TargetGT applies the GT predicate on the "target" field.
func TargetGT(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldGT(FieldTarget, v))
}

// TargetGTE applies the GTE predicate on the "target" field.
func TargetGTE(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldGTE(FieldTarget, v))
}

// TargetLT applies the LT predicate on the "target" field.
func TargetLT(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldLT(FieldTarget, v))
}

// TargetLTE applies the LTE predicate on the "target" field.
func TargetLTE(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldLTE(FieldTarget, v))
}

// TargetContains applies the Contains predicate on the "target" field.
func TargetContains(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldContains(FieldTarget, v))
}

// TargetHasPrefix applies the HasPrefix predicate on the "target" field.
func TargetHasPrefix(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldHasPrefix(FieldTarget, v))
}

// TargetHasSuffix applies the HasSuffix predicate on the "target" field.
func TargetHasSuffix(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldHasSuffix(FieldTarget, v))
}

// TargetEqualFold applies the EqualFold predicate on the "target" field.
func TargetEqualFold(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldEqualFold(FieldTarget, v))
}

// TargetContainsFold applies the ContainsFold predicate on the "target" field.
func TargetContainsFold(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldContainsFold(FieldTarget, v))
}

// PayloadEQ applies the EQ predicate on the "payload" field.
func PayloadEQ(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldEQ(FieldPayload, v))
}

// PayloadNEQ applies the NEQ predicate on the "payload" field.
func PayloadNEQ(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldNEQ(FieldPayload, v))
}

// PayloadIn applies the In predicate on the "payload" field.
func PayloadIn(vs ...string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldIn(FieldPayload, vs...))
}

// PayloadNotIn applies the NotIn predicate on the "payload" field.
func PayloadNotIn(vs ...string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldNotIn(FieldPayload, vs...))
}

// PayloadGT applies the GT predicate on the "payload" field.
func PayloadGT(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldGT(FieldPayload, v))
}

// PayloadGTE applies the GTE predicate on the "payload" field.
func PayloadGTE(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldGTE(FieldPayload, v))
}

// PayloadLT applies the LT predicate on the "payload" field.
func PayloadLT(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldLT(FieldPayload, v))
}

// PayloadLTE applies the LTE predicate on the "payload" field.
func PayloadLTE(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldLTE(FieldPayload, v))
}

// PayloadContains applies the Contains predicate on the "payload" field.
func PayloadContains(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldContains(FieldPayload, v))
}

// PayloadHasPrefix applies the HasPrefix predicate on the "payload" field.
func PayloadHasPrefix(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldHasPrefix(FieldPayload, v))
}

// PayloadHasSuffix applies the HasSuffix predicate on the "payload" field.
func PayloadHasSuffix(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldHasSuffix(FieldPayload, v))
}

// PayloadIsNil applies the IsNil predicate on the "payload" field.
func PayloadIsNil() predicate.AgentLog {
	return predicate.AgentLog(sql.FieldIsNull(FieldPayload))
}

// PayloadNotNil applies the NotNil predicate on the "payload" field.
func PayloadNotNil() predicate.AgentLog {
	return predicate.AgentLog(sql.FieldNotNull(FieldPayload))
}

// PayloadEqualFold applies the EqualFold predicate on the "payload" field.
func PayloadEqualFold(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldEqualFold(FieldPayload, v))
}

// PayloadContainsFold applies the ContainsFold predicate on the "payload" field.
func PayloadContainsFold(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldContainsFold(FieldPayload, v))
}

// ResponseCodeEQ applies the EQ predicate on the "response_code" field.
func ResponseCodeEQ(v int) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldEQ(FieldResponseCode, v))
}

// ResponseCodeNEQ applies the NEQ predicate on the "response_code" field.
func ResponseCodeNEQ(v int) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldNEQ(FieldResponseCode, v))
}

// ResponseCodeIn applies the In predicate on the "response_code" field.
func ResponseCodeIn(vs ...int) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldIn(FieldResponseCode, vs...))
}

// ResponseCodeNotIn applies the NotIn predicate on the "response_code" field.
func ResponseCodeNotIn(vs ...int) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldNotIn(FieldResponseCode, vs...))
}

// ResponseCodeGT applies the GT predicate on the "response_code" field.
func ResponseCodeGT(v int) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldGT(FieldResponseCode, v))
}

// ResponseCodeGTE applies the GTE predicate on the "response_code" field.
func ResponseCodeGTE(v int) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldGTE(FieldResponseCode, v))
}

// ResponseCodeLT applies the LT predicate on the "response_code" field.
func ResponseCodeLT(v int) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldLT(FieldResponseCode, v))
}

// ResponseCodeLTE applies the LTE predicate on the "response_code" field.
func ResponseCodeLTE(v int) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldLTE(FieldResponseCode, v))
}

// ResponseCodeIsNil applies the IsNil predicate on the "response_code" field.
func ResponseCodeIsNil() predicate.AgentLog {
	return predicate.AgentLog(sql.FieldIsNull(FieldResponseCode))
}

// ResponseCodeNotNil applies the NotNil predicate on the "response_code" field.
func ResponseCodeNotNil() predicate.AgentLog {
	return predicate.AgentLog(sql.FieldNotNull(FieldResponseCode))
}

// ResponsePreviewEQ applies the EQ predicate on the "response_preview" field.
func ResponsePreviewEQ(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldEQ(FieldResponsePreview, v))
}

// ResponsePreviewNEQ applies the NEQ predicate on the "response_preview" field.
func ResponsePreviewNEQ(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldNEQ(FieldResponsePreview, v))
}

// ResponsePreviewIn applies the In predicate on the "response_preview" field.
func ResponsePreviewIn(vs ...string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldIn(FieldResponsePreview, vs...))
}

// ResponsePreviewNotIn applies the NotIn predicate on the "response_preview" field.
func ResponsePreviewNotIn(vs ...string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldNotIn(FieldResponsePreview, vs...))
}

// ResponsePreviewGT applies the GT predicate on the "response_preview" field.
func ResponsePreviewGT(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldGT(FieldResponsePreview, v))
}

// ResponsePreviewGTE applies the GTE predicate on the "response_preview" field.
func ResponsePreviewGTE(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldGTE(FieldResponsePreview, v))
}

// ResponsePreviewLT applies the LT predicate on the "response_preview" field.
func ResponsePreviewLT(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldLT(FieldResponsePreview, v))
}

// ResponsePreviewLTE applies the LTE predicate on the "response_preview" field.
func ResponsePreviewLTE(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldLTE(FieldResponsePreview, v))
}

// ResponsePreviewContains applies the Contains predicate on the "response_preview" field.
func ResponsePreviewContains(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldContains(FieldResponsePreview, v))
}

// ResponsePreviewHasPrefix applies the HasPrefix predicate on the "response_preview" field.
func ResponsePreviewHasPrefix(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldHasPrefix(FieldResponsePreview, v))
}

// ResponsePreviewHasSuffix applies the HasSuffix predicate on the "response_preview" field.
func ResponsePreviewHasSuffix(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldHasSuffix(FieldResponsePreview, v))
}

// ResponsePreviewIsNil applies the IsNil predicate on the "response_preview" field.
func ResponsePreviewIsNil() predicate.AgentLog {
	return predicate.AgentLog(sql.FieldIsNull(FieldResponsePreview))
}

// ResponsePreviewNotNil applies the NotNil predicate on the "response_preview" field.
func ResponsePreviewNotNil() predicate.AgentLog {
	return predicate.AgentLog(sql.FieldNotNull(FieldResponsePreview))
}

// ResponsePreviewEqualFold applies the EqualFold predicate on the "response_preview" field.
func ResponsePreviewEqualFold(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldEqualFold(FieldResponsePreview, v))
}

// ResponsePreviewContainsFold applies the ContainsFold predicate on the "response_preview" field.
func ResponsePreviewContainsFold(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldContainsFold(FieldResponsePreview, v))
}

// ReasoningEQ applies the EQ predicate on the "reasoning" field.
func ReasoningEQ(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldEQ(FieldReasoning, v))
}

// ReasoningNEQ applies the NEQ predicate on the "reasoning" field.
func ReasoningNEQ(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldNEQ(FieldReasoning, v))
}

// ReasoningIn applies the In predicate on the "reasoning" field.
func ReasoningIn(vs ...string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldIn(FieldReasoning, vs...))
}

// ReasoningNotIn applies the NotIn predicate on the "reasoning" field.
func ReasoningNotIn(vs ...string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldNotIn(FieldReasoning, vs...))
}

// ReasoningGT applies the GT predicate on the "reasoning" field.
func ReasoningGT(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldGT(FieldReasoning, v))
}

// ReasoningGTE applies the GTE predicate on the "reasoning" field.
func ReasoningGTE(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldGTE(FieldReasoning, v))
}

// ReasoningLT applies the LT predicate on the "reasoning" field.
func ReasoningLT(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldLT(FieldReasoning, v))
}

// ReasoningLTE applies the LTE predicate on the "reasoning" field.
func ReasoningLTE(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldLTE(FieldReasoning, v))
}

// ReasoningContains applies the Contains predicate on the "reasoning" field.
func ReasoningContains(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldContains(FieldReasoning, v))
}

// ReasoningHasPrefix applies the HasPrefix predicate on the "reasoning" field.
func ReasoningHasPrefix(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldHasPrefix(FieldReasoning, v))
}

// ReasoningHasSuffix applies the HasSuffix predicate on the "reasoning" field.
func ReasoningHasSuffix(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldHasSuffix(FieldReasoning, v))
}

// ReasoningEqualFold applies the EqualFold predicate on the "reasoning" field.
func ReasoningEqualFold(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldEqualFold(FieldReasoning, v))
}

// ReasoningContainsFold applies the ContainsFold predicate on the "reasoning" field.
func ReasoningContainsFold(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldContainsFold(FieldReasoning, v))
}

// FindingIDEQ applies the EQ predicate on the "finding_id" field.
func FindingIDEQ(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldEQ(FieldFindingID, v))
}

// FindingIDNEQ applies the NEQ predicate on the "finding_id" field.
func FindingIDNEQ(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldNEQ(FieldFindingID, v))
}

// FindingIDIn applies the In predicate on the "finding_id" field.
func FindingIDIn(vs ...string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldIn(FieldFindingID, vs...))
}

// FindingIDNotIn applies the NotIn predicate on the "finding_id" field.
func FindingIDNotIn(vs ...string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldNotIn(FieldFindingID, vs...))
}

// FindingIDGT applies the GT predicate on the "finding_id" field.
func FindingIDGT(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldGT(FieldFindingID, v))
}

// FindingIDGTE applies the GTE predicate on the "finding_id" field.
func FindingIDGTE(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldGTE(FieldFindingID, v))
}

// FindingIDLT applies the LT predicate on the "finding_id" field.
func FindingIDLT(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldLT(FieldFindingID, v))
}

// FindingIDLTE applies the LTE predicate on the "finding_id" field.
func FindingIDLTE(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldLTE(FieldFindingID, v))
}

// FindingIDContains applies the Contains predicate on the "finding_id" field.
func FindingIDContains(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldContains(FieldFindingID, v))
}

// FindingIDHasPrefix applies the HasPrefix predicate on the "finding_id" field.
func FindingIDHasPrefix(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldHasPrefix(FieldFindingID, v))
}

// FindingIDHasSuffix applies the HasSuffix predicate on the "finding_id" field.
func FindingIDHasSuffix(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldHasSuffix(FieldFindingID, v))
}

// FindingIDIsNil applies the IsNil predicate on the "finding_id" field.
func FindingIDIsNil() predicate.AgentLog {
	return predicate.AgentLog(sql.FieldIsNull(FieldFindingID))
}

// FindingIDNotNil applies the NotNil predicate on the "finding_id" field.
func FindingIDNotNil() predicate.AgentLog {
	return predicate.AgentLog(sql.FieldNotNull(FieldFindingID))
}

// FindingIDEqualFold applies the EqualFold predicate on the "finding_id" field.
func FindingIDEqualFold(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldEqualFold(FieldFindingID, v))
}

// FindingIDContainsFold applies the ContainsFold predicate on the "finding_id" field.
func FindingIDContainsFold(v string) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldContainsFold(FieldFindingID, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.AgentLog {
	return predicate.AgentLog(sql.FieldLTE(FieldTimestamp, v))
}

// HasAssessment applies the HasEdge predicate on the "assessment" edge.
func HasAssessment() predicate.AgentLog {
	return predicate.AgentLog(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AssessmentTable, AssessmentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAssessmentWith applies the HasEdge predicate on the "assessment" edge with a given conditions (other predicates).
func HasAssessmentWith(preds ...predicate.Assessment) predicate.AgentLog {
	return predicate.AgentLog(func(s *sql.Selector) {
		step := newAssessmentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AgentLog) predicate.AgentLog {
	return predicate.AgentLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AgentLog) predicate.AgentLog {
	return predicate.AgentLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AgentLog) predicate.AgentLog {
	return predicate.AgentLog(sql.NotPredicates(p))
}
