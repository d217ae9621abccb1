// Code generated by ent, DO NOT EDIT.

package assessment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/vibecheck/vibecheck/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Assessment {
	return predicate.Assessment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Assessment {
	return predicate.Assessment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Assessment {
	return predicate.Assessment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Assessment {
	return predicate.Assessment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Assessment {
	return predicate.Assessment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Assessment {
	return predicate.Assessment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Assessment {
	return predicate.Assessment(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Assessment {
	return predicate.Assessment(sql.FieldContainsFold(FieldID, id))
}

// RepoURL applies equality check predicate on the "repo_url" field. It's identical to RepoURLEQ.
func RepoURL(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldRepoURL, v))
}

// TargetURL applies equality check predicate on the "target_url" field. It's identical to TargetURLEQ.
func TargetURL(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldTargetURL, v))
}

// TunnelSessionID applies equality check predicate on the "tunnel_session_id" field. It's identical to TunnelSessionIDEQ.
func TunnelSessionID(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldTunnelSessionID, v))
}

// IdempotencyKey applies equality check predicate on the "idempotency_key" field. It's identical to IdempotencyKeyEQ.
func IdempotencyKey(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldIdempotencyKey, v))
}

// ErrorType applies equality check predicate on the "error_type" field. It's identical to ErrorTypeEQ.
func ErrorType(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldErrorType, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldUpdatedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldCompletedAt, v))
}

// ModeEQ applies the EQ predicate on the "mode" field.
func ModeEQ(v Mode) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldMode, v))
}

// ModeNEQ applies the NEQ predicate on the "mode" field.
func ModeNEQ(v Mode) predicate.Assessment {
	return predicate.Assessment(sql.FieldNEQ(FieldMode, v))
}

// ModeIn applies the In predicate on the "mode" field.
func ModeIn(vs ...Mode) predicate.Assessment {
	return predicate.Assessment(sql.FieldIn(FieldMode, vs...))
}

// ModeNotIn applies the NotIn predicate on the "mode" field.
func ModeNotIn(vs ...Mode) predicate.Assessment {
	return predicate.Assessment(sql.FieldNotIn(FieldMode, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Assessment {
	return predicate.Assessment(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Assessment {
	return predicate.Assessment(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Assessment {
	return predicate.Assessment(sql.FieldNotIn(FieldStatus, vs...))
}

// RepoURLEQ applies the EQ predicate on the "repo_url" field.
func RepoURLEQ(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldRepoURL, v))
}

// RepoURLNEQ applies the NEQ predicate on the "repo_url" field.
func RepoURLNEQ(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldNEQ(FieldRepoURL, v))
}

// RepoURLIn applies the In predicate on the "repo_url" field.
func RepoURLIn(vs ...string) predicate.Assessment {
	return predicate.Assessment(sql.FieldIn(FieldRepoURL, vs...))
}

// RepoURLNotIn applies the NotIn predicate on the "repo_url" field.
func RepoURLNotIn(vs ...string) predicate.Assessment {
	return predicate.Assessment(sql.FieldNotIn(FieldRepoURL, vs...))
}

// RepoURLGT applies the GT predicate on the "repo_url" field.
func RepoURLGT(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldGT(FieldRepoURL, v))
}

// RepoURLGTE applies the GTE predicate on the "repo_url" field.
func RepoURLGTE(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldGTE(FieldRepoURL, v))
}

// RepoURLLT applies the LT predicate on the "repo_url" field.
func RepoURLLT(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldLT(FieldRepoURL, v))
}

// RepoURLLTE applies the LTE predicate on the "repo_url" field.
func RepoURLLTE(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldLTE(FieldRepoURL, v))
}

// RepoURLContains applies the Contains predicate on the "repo_url" field.
func RepoURLContains(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldContains(FieldRepoURL, v))
}

// RepoURLHasPrefix applies the HasPrefix predicate on the "repo_url" field.
func RepoURLHasPrefix(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldHasPrefix(FieldRepoURL, v))
}

// RepoURLHasSuffix applies the HasSuffix predicate on the "repo_url" field.
func RepoURLHasSuffix(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldHasSuffix(FieldRepoURL, v))
}

// RepoURLIsNil applies the IsNil predicate on the "repo_url" field.
func RepoURLIsNil() predicate.Assessment {
	return predicate.Assessment(sql.FieldIsNull(FieldRepoURL))
}

// RepoURLNotNil applies the NotNil predicate on the "repo_url" field.
func RepoURLNotNil() predicate.Assessment {
	return predicate.Assessment(sql.FieldNotNull(FieldRepoURL))
}

// RepoURLEqualFold applies the EqualFold predicate on the "repo_url" field.
func RepoURLEqualFold(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEqualFold(FieldRepoURL, v))
}

// RepoURLContainsFold applies the ContainsFold predicate on the "repo_url" field.
func RepoURLContainsFold(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldContainsFold(FieldRepoURL, v))
}

// TargetURLEQ applies the EQ predicate on the "target_url" field.
func TargetURLEQ(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldTargetURL, v))
}

// TargetURLNEQ applies the NEQ predicate on the "target_url" field.
func TargetURLNEQ(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldNEQ(FieldTargetURL, v))
}

// TargetURLIn applies the In predicate on the "target_url" field.
func TargetURLIn(vs ...string) predicate.Assessment {
	return predicate.Assessment(sql.FieldIn(FieldTargetURL, vs...))
}

// TargetURLNotIn applies the NotIn predicate on the "target_url" field.
func TargetURLNotIn(vs ...string) predicate.Assessment {
	return predicate.Assessment(sql.FieldNotIn(FieldTargetURL, vs...))
}

// TargetURLGT applies the GT predicate on the "target_url" field.
func TargetURLGT(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldGT(FieldTargetURL, v))
}

// TargetURLGTE applies the GTE predicate on the "target_url" field.
func TargetURLGTE(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldGTE(FieldTargetURL, v))
}

// TargetURLLT applies the LT predicate on the "target_url" field.
func TargetURLLT(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldLT(FieldTargetURL, v))
}

// TargetURLLTE applies the LTE predicate on the "target_url" field.
func TargetURLLTE(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldLTE(FieldTargetURL, v))
}

// TargetURLContains applies the Contains predicate on the "target_url" field.
func TargetURLContains(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldContains(FieldTargetURL, v))
}

// TargetURLHasPrefix applies the HasPrefix predicate on the "target_url" field.
func TargetURLHasPrefix(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldHasPrefix(FieldTargetURL, v))
}

// TargetURLHasSuffix applies the HasSuffix predicate on the "target_url" field.
func TargetURLHasSuffix(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldHasSuffix(FieldTargetURL, v))
}

// TargetURLIsNil applies the IsNil predicate on the "target_url" field.
func TargetURLIsNil() predicate.Assessment {
	return predicate.Assessment(sql.FieldIsNull(FieldTargetURL))
}

// TargetURLNotNil applies the NotNil predicate on the "target_url" field.
func TargetURLNotNil() predicate.Assessment {
	return predicate.Assessment(sql.FieldNotNull(FieldTargetURL))
}

// TargetURLEqualFold applies the EqualFold predicate on the "target_url" field.
func TargetURLEqualFold(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEqualFold(FieldTargetURL, v))
}

// TargetURLContainsFold applies the ContainsFold predicate on the "target_url" field.
func TargetURLContainsFold(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldContainsFold(FieldTargetURL, v))
}

// TunnelSessionIDEQ applies the EQ predicate on the "tunnel_session_id" field.
func TunnelSessionIDEQ(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldTunnelSessionID, v))
}

// TunnelSessionIDNEQ applies the NEQ predicate on the "tunnel_session_id" field.
func TunnelSessionIDNEQ(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldNEQ(FieldTunnelSessionID, v))
}

// TunnelSessionIDIn applies the In predicate on the "tunnel_session_id" field.
func TunnelSessionIDIn(vs ...string) predicate.Assessment {
	return predicate.Assessment(sql.FieldIn(FieldTunnelSessionID, vs...))
}

// TunnelSessionIDNotIn applies the NotIn predicate on the "tunnel_session_id" field.
func TunnelSessionIDNotIn(vs ...string) predicate.Assessment {
	return predicate.Assessment(sql.FieldNotIn(FieldTunnelSessionID, vs...))
}

// TunnelSessionIDGT applies the GT predicate on the "tunnel_session_id" field.
func TunnelSessionIDGT(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldGT(FieldTunnelSessionID, v))
}

// TunnelSessionIDGTE applies the GTE predicate on the "tunnel_session_id" field.
func TunnelSessionIDGTE(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldGTE(FieldTunnelSessionID, v))
}

// TunnelSessionIDLT applies the LT predicate on the "tunnel_session_id" field.
func TunnelSessionIDLT(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldLT(FieldTunnelSessionID, v))
}

// TunnelSessionIDLTE applies the LTE predicate on the "tunnel_session_id" field.
func TunnelSessionIDLTE(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldLTE(FieldTunnelSessionID, v))
}

// TunnelSessionIDContains applies the Contains predicate on the "tunnel_session_id" field.
func TunnelSessionIDContains(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldContains(FieldTunnelSessionID, v))
}

// TunnelSessionIDHasPrefix applies the HasPrefix predicate on the "tunnel_session_id" field.
func TunnelSessionIDHasPrefix(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldHasPrefix(FieldTunnelSessionID, v))
}

// TunnelSessionIDHasSuffix applies the HasSuffix predicate on the "tunnel_session_id" field.
func TunnelSessionIDHasSuffix(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldHasSuffix(FieldTunnelSessionID, v))
}

// TunnelSessionIDIsNil applies the IsNil predicate on the "tunnel_session_id" field.
func TunnelSessionIDIsNil() predicate.Assessment {
	return predicate.Assessment(sql.FieldIsNull(FieldTunnelSessionID))
}

// TunnelSessionIDNotNil applies the NotNil predicate on the "tunnel_session_id" field.
func TunnelSessionIDNotNil() predicate.Assessment {
	return predicate.Assessment(sql.FieldNotNull(FieldTunnelSessionID))
}

// TunnelSessionIDEqualFold applies the EqualFold predicate on the "tunnel_session_id" field.
func TunnelSessionIDEqualFold(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEqualFold(FieldTunnelSessionID, v))
}

// TunnelSessionIDContainsFold applies the ContainsFold predicate on the "tunnel_session_id" field.
func TunnelSessionIDContainsFold(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldContainsFold(FieldTunnelSessionID, v))
}

// AgentsIsNil applies the IsNil predicate on the "agents" field.
func AgentsIsNil() predicate.Assessment {
	return predicate.Assessment(sql.FieldIsNull(FieldAgents))
}

// AgentsNotNil applies the NotNil predicate on the "agents" field.
func AgentsNotNil() predicate.Assessment {
	return predicate.Assessment(sql.FieldNotNull(FieldAgents))
}

// DepthEQ applies the EQ predicate on the "depth" field.
func DepthEQ(v Depth) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldDepth, v))
}

// DepthNEQ applies the NEQ predicate on the "depth" field.
func DepthNEQ(v Depth) predicate.Assessment {
	return predicate.Assessment(sql.FieldNEQ(FieldDepth, v))
}

// DepthIn applies the In predicate on the "depth" field.
func DepthIn(vs ...Depth) predicate.Assessment {
	return predicate.Assessment(sql.FieldIn(FieldDepth, vs...))
}

// DepthNotIn applies the NotIn predicate on the "depth" field.
func DepthNotIn(vs ...Depth) predicate.Assessment {
	return predicate.Assessment(sql.FieldNotIn(FieldDepth, vs...))
}

// IdempotencyKeyEQ applies the EQ predicate on the "idempotency_key" field.
func IdempotencyKeyEQ(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldIdempotencyKey, v))
}

// IdempotencyKeyNEQ applies the NEQ predicate on the "idempotency_key" field.
func IdempotencyKeyNEQ(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldNEQ(FieldIdempotencyKey, v))
}

// IdempotencyKeyIn applies the In predicate on the "idempotency_key" field.
func IdempotencyKeyIn(vs ...string) predicate.Assessment {
	return predicate.Assessment(sql.FieldIn(FieldIdempotencyKey, vs...))
}

// IdempotencyKeyNotIn applies the NotIn predicate on the "idempotency_key" field.
func IdempotencyKeyNotIn(vs ...string) predicate.Assessment {
	return predicate.Assessment(sql.FieldNotIn(FieldIdempotencyKey, vs...))
}

// IdempotencyKeyGT applies the GT predicate on the "idempotency_key" field.
func IdempotencyKeyGT(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldGT(FieldIdempotencyKey, v))
}

// IdempotencyKeyGTE applies the GTE predicate on the "idempotency_key" field.
func IdempotencyKeyGTE(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldGTE(FieldIdempotencyKey, v))
}

// IdempotencyKeyLT applies the LT predicate on the "idempotency_key" field.
func IdempotencyKeyLT(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldLT(FieldIdempotencyKey, v))
}

// IdempotencyKeyLTE applies the LTE predicate on the "idempotency_key" field.
func IdempotencyKeyLTE(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldLTE(FieldIdempotencyKey, v))
}

// IdempotencyKeyContains applies the Contains predicate on the "idempotency_key" field.
func IdempotencyKeyContains(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldContains(FieldIdempotencyKey, v))
}

// IdempotencyKeyHasPrefix applies the HasPrefix predicate on the "idempotency_key" field.
func IdempotencyKeyHasPrefix(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldHasPrefix(FieldIdempotencyKey, v))
}

// IdempotencyKeyHasSuffix applies the HasSuffix predicate on the "idempotency_key" field.
func IdempotencyKeyHasSuffix(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldHasSuffix(FieldIdempotencyKey, v))
}

// IdempotencyKeyIsNil applies the IsNil predicate on the "idempotency_key" field.
func IdempotencyKeyIsNil() predicate.Assessment {
	return predicate.Assessment(sql.FieldIsNull(FieldIdempotencyKey))
}

// IdempotencyKeyNotNil applies the NotNil predicate on the "idempotency_key" field.
func IdempotencyKeyNotNil() predicate.Assessment {
	return predicate.Assessment(sql.FieldNotNull(FieldIdempotencyKey))
}

// IdempotencyKeyEqualFold applies the EqualFold predicate on the "idempotency_key" field.
func IdempotencyKeyEqualFold(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEqualFold(FieldIdempotencyKey, v))
}

// IdempotencyKeyContainsFold applies the ContainsFold predicate on the "idempotency_key" field.
func IdempotencyKeyContainsFold(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldContainsFold(FieldIdempotencyKey, v))
}

// ErrorTypeEQ applies the EQ predicate on the "error_type" field.
func ErrorTypeEQ(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldErrorType, v))
}

// ErrorTypeNEQ applies the NEQ predicate on the "error_type" field.
func ErrorTypeNEQ(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldNEQ(FieldErrorType, v))
}

// ErrorTypeIn applies the In predicate on the "error_type" field.
func ErrorTypeIn(vs ...string) predicate.Assessment {
	return predicate.Assessment(sql.FieldIn(FieldErrorType, vs...))
}

// ErrorTypeNotIn applies the NotIn predicate on the "error_type" field.
func ErrorTypeNotIn(vs ...string) predicate.Assessment {
	return predicate.Assessment(sql.FieldNotIn(FieldErrorType, vs...))
}

// ErrorTypeGT applies the GT predicate on the "error_type" field.
func ErrorTypeGT(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldGT(FieldErrorType, v))
}

// ErrorTypeGTE applies the GTE predicate on the "error_type" field.
func ErrorTypeGTE(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldGTE(FieldErrorType, v))
}

// ErrorTypeLT applies the LT predicate on the "error_type" field.
func ErrorTypeLT(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldLT(FieldErrorType, v))
}

// ErrorTypeLTE applies the LTE predicate on the "error_type" field.
func ErrorTypeLTE(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldLTE(FieldErrorType, v))
}

// ErrorTypeContains applies the Contains predicate on the "error_type" field.
func ErrorTypeContains(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldContains(FieldErrorType, v))
}

// ErrorTypeHasPrefix applies the HasPrefix predicate on the "error_type" field.
func ErrorTypeHasPrefix(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldHasPrefix(FieldErrorType, v))
}

// ErrorTypeHasSuffix applies the HasSuffix predicate on the "error_type" field.
func ErrorTypeHasSuffix(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldHasSuffix(FieldErrorType, v))
}

// ErrorTypeIsNil applies the IsNil predicate on the "error_type" field.
func ErrorTypeIsNil() predicate.Assessment {
	return predicate.Assessment(sql.FieldIsNull(FieldErrorType))
}

// ErrorTypeNotNil applies the NotNil predicate on the "error_type" field.
func ErrorTypeNotNil() predicate.Assessment {
	return predicate.Assessment(sql.FieldNotNull(FieldErrorType))
}

// ErrorTypeEqualFold applies the EqualFold predicate on the "error_type" field.
func ErrorTypeEqualFold(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEqualFold(FieldErrorType, v))
}

// ErrorTypeContainsFold applies the ContainsFold predicate on the "error_type" field.
func ErrorTypeContainsFold(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldContainsFold(FieldErrorType, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Assessment {
	return predicate.Assessment(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Assessment {
	return predicate.Assessment(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Assessment {
	return predicate.Assessment(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Assessment {
	return predicate.Assessment(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldLTE(FieldUpdatedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Assessment {
	return predicate.Assessment(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Assessment {
	return predicate.Assessment(sql.FieldNotNull(FieldCompletedAt))
}

// HasFindings applies the HasEdge predicate on the "findings" edge.
func HasFindings() predicate.Assessment {
	return predicate.Assessment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, FindingsTable, FindingsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFindingsWith applies the HasEdge predicate on the "findings" edge with a given conditions (other predicates).
func HasFindingsWith(preds ...predicate.Finding) predicate.Assessment {
	return predicate.Assessment(func(s *sql.Selector) {
		step := newFindingsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAgentLogs applies the HasEdge predicate on the "agent_logs" edge.
func HasAgentLogs() predicate.Assessment {
	return predicate.Assessment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AgentLogsTable, AgentLogsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAgentLogsWith applies the HasEdge predicate on the "agent_logs" edge with a given conditions (other predicates).
func HasAgentLogsWith(preds ...predicate.AgentLog) predicate.Assessment {
	return predicate.Assessment(func(s *sql.Selector) {
		step := newAgentLogsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Assessment) predicate.Assessment {
	return predicate.Assessment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Assessment) predicate.Assessment {
	return predicate.Assessment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Assessment) predicate.Assessment {
	return predicate.Assessment(sql.NotPredicates(p))
}
