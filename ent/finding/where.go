// Code generated by ent, DO NOT EDIT.

package finding

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/vibecheck/vibecheck/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Finding {
	return predicate.Finding(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Finding {
	return predicate.Finding(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Finding {
	return predicate.Finding(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Finding {
	return predicate.Finding(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Finding {
	return predicate.Finding(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Finding {
	return predicate.Finding(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Finding {
	return predicate.Finding(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Finding {
	return predicate.Finding(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Finding {
	return predicate.Finding(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Finding {
	return predicate.Finding(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Finding {
	return predicate.Finding(sql.FieldContainsFold(FieldID, id))
}

// AssessmentID applies equality check predicate on the "assessment_id" field. It's identical to AssessmentIDEQ.
func AssessmentID(v string) predicate.Finding {
	return predicate.Finding(sql.FieldEQ(FieldAssessmentID, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.Finding {
	return predicate.Finding(sql.FieldEQ(FieldCategory, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Finding {
	return predicate.Finding(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Finding {
	return predicate.Finding(sql.FieldEQ(FieldDescription, v))
}

// Remediation applies equality check predicate on the "remediation" field. It's identical to RemediationEQ.
func Remediation(v string) predicate.Finding {
	return predicate.Finding(sql.FieldEQ(FieldRemediation, v))
}

// Agent applies equality check predicate on the "agent" field. It's identical to AgentEQ.
func Agent(v string) predicate.Finding {
	return predicate.Finding(sql.FieldEQ(FieldAgent, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Finding {
	return predicate.Finding(sql.FieldEQ(FieldCreatedAt, v))
}

// AssessmentIDEQ applies the EQ predicate on the "assessment_id" field.
func AssessmentIDEQ(v string) predicate.Finding {
	return predicate.Finding(sql.FieldEQ(FieldAssessmentID, v))
}

// AssessmentIDNEQ applies the NEQ predicate on the "assessment_id" field.
func AssessmentIDNEQ(v string) predicate.Finding {
	return predicate.Finding(sql.FieldNEQ(FieldAssessmentID, v))
}

// AssessmentIDIn applies the In predicate on the "assessment_id" field.
func AssessmentIDIn(vs ...string) predicate.Finding {
	return predicate.Finding(sql.FieldIn(FieldAssessmentID, vs...))
}

// AssessmentIDNotIn applies the NotIn predicate on the "assessment_id" field.
func AssessmentIDNotIn(vs ...string) predicate.Finding {
	return predicate.Finding(sql.FieldNotIn(FieldAssessmentID, vs...))
}

// AssessmentIDGT applies the GT predicate on the "assessment_id" field.
func AssessmentIDGT(v string) predicate.Finding {
	return predicate.Finding(sql.FieldGT(FieldAssessmentID, v))
}

// AssessmentIDGTE applies the GTE predicate on the "assessment_id" field.
func AssessmentIDGTE(v string) predicate.Finding {
	return predicate.Finding(sql.FieldGTE(FieldAssessmentID, v))
}

// AssessmentIDLT applies the LT predicate on the "assessment_id" field.
func AssessmentIDLT(v string) predicate.Finding {
	return predicate.Finding(sql.FieldLT(FieldAssessmentID, v))
}

// AssessmentIDLTE applies the LTE predicate on the "assessment_id" field.
func AssessmentIDLTE(v string) predicate.Finding {
	return predicate.Finding(sql.FieldLTE(FieldAssessmentID, v))
}

// AssessmentIDContains applies the Contains predicate on the "assessment_id" field.
func AssessmentIDContains(v string) predicate.Finding {
	return predicate.Finding(sql.FieldContains(FieldAssessmentID, v))
}

// AssessmentIDHasPrefix applies the HasPrefix predicate on the "assessment_id" field.
func AssessmentIDHasPrefix(v string) predicate.Finding {
	return predicate.Finding(sql.FieldHasPrefix(FieldAssessmentID, v))
}

// AssessmentIDHasSuffix applies the HasSuffix predicate on the "assessment_id" field.
func AssessmentIDHasSuffix(v string) predicate.Finding {
	return predicate.Finding(sql.FieldHasSuffix(FieldAssessmentID, v))
}

// AssessmentIDEqualFold applies the EqualFold predicate on the "assessment_id" field.
func AssessmentIDEqualFold(v string) predicate.Finding {
	return predicate.Finding(sql.FieldEqualFold(FieldAssessmentID, v))
}

// AssessmentIDContainsFold applies the ContainsFold predicate on the "assessment_id" field.
func AssessmentIDContainsFold(v string) predicate.Finding {
	return predicate.Finding(sql.FieldContainsFold(FieldAssessmentID, v))
}

// SeverityEQ applies the EQ predicate on the "severity" field.
func SeverityEQ(v Severity) predicate.Finding {
	return predicate.Finding(sql.FieldEQ(FieldSeverity, v))
}

// SeverityNEQ applies the NEQ predicate on the "severity" field.
func SeverityNEQ(v Severity) predicate.Finding {
	return predicate.Finding(sql.FieldNEQ(FieldSeverity, v))
}

// SeverityIn applies the In predicate on the "severity" field.
func SeverityIn(vs ...Severity) predicate.Finding {
	return predicate.Finding(sql.FieldIn(FieldSeverity, vs...))
}

// SeverityNotIn applies the NotIn predicate on the "severity" field.
func SeverityNotIn(vs ...Severity) predicate.Finding {
	return predicate.Finding(sql.FieldNotIn(FieldSeverity, vs...))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.Finding {
	return predicate.Finding(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.Finding {
	return predicate.Finding(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.Finding {
	return predicate.Finding(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.Finding {
	return predicate.Finding(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.Finding {
	return predicate.Finding(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.Finding {
	return predicate.Finding(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.Finding {
	return predicate.Finding(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.Finding {
	return predicate.Finding(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.Finding {
	return predicate.Finding(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.Finding {
	return predicate.Finding(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.Finding {
	return predicate.Finding(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.Finding {
	return predicate.Finding(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.Finding {
	return predicate.Finding(sql.FieldContainsFold(FieldCategory, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Finding {
	return predicate.Finding(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Finding {
	return predicate.Finding(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Finding {
	return predicate.Finding(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Finding {
	return predicate.Finding(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Finding {
	return predicate.Finding(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Finding {
	return predicate.Finding(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Finding {
	return predicate.Finding(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Finding {
	return predicate.Finding(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Finding {
	return predicate.Finding(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Finding {
	return predicate.Finding(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Finding {
	return predicate.Finding(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Finding {
	return predicate.Finding(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Finding {
	return predicate.Finding(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Finding {
	return predicate.Finding(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Finding {
	return predicate.Finding(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Finding {
	return predicate.Finding(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Finding {
	return predicate.Finding(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Finding {
	return predicate.Finding(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Finding {
	return predicate.Finding(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Finding {
	return predicate.Finding(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Finding {
	return predicate.Finding(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Finding {
	return predicate.Finding(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Finding {
	return predicate.Finding(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Finding {
	return predicate.Finding(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Finding {
	return predicate.Finding(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Finding {
	return predicate.Finding(sql.FieldContainsFold(FieldDescription, v))
}

// LocationIsNil applies the IsNil predicate on the "location" field.
func LocationIsNil() predicate.Finding {
	return predicate.Finding(sql.FieldIsNull(FieldLocation))
}

// LocationNotNil applies the NotNil predicate on the "location" field.
func LocationNotNil() predicate.Finding {
	return predicate.Finding(sql.FieldNotNull(FieldLocation))
}

// EvidenceIsNil applies the IsNil predicate on the "evidence" field.
func EvidenceIsNil() predicate.Finding {
	return predicate.Finding(sql.FieldIsNull(FieldEvidence))
}

// EvidenceNotNil applies the NotNil predicate on the "evidence" field.
func EvidenceNotNil() predicate.Finding {
	return predicate.Finding(sql.FieldNotNull(FieldEvidence))
}

// RemediationEQ applies the EQ predicate on the "remediation" field.
func RemediationEQ(v string) predicate.Finding {
	return predicate.Finding(sql.FieldEQ(FieldRemediation, v))
}

// RemediationNEQ applies the NEQ predicate on the "remediation" field.
func RemediationNEQ(v string) predicate.Finding {
	return predicate.Finding(sql.FieldNEQ(FieldRemediation, v))
}

// RemediationIn applies the In predicate on the "remediation" field.
func RemediationIn(vs ...string) predicate.Finding {
	return predicate.Finding(sql.FieldIn(FieldRemediation, vs...))
}

// RemediationNotIn applies the NotIn predicate on the "remediation" field.
func RemediationNotIn(vs ...string) predicate.Finding {
	return predicate.Finding(sql.FieldNotIn(FieldRemediation, vs...))
}

// RemediationGT applies the GT predicate on the "remediation" field.
func RemediationGT(v string) predicate.Finding {
	return predicate.Finding(sql.FieldGT(FieldRemediation, v))
}

// RemediationGTE applies the GTE predicate on the "remediation" field.
func RemediationGTE(v string) predicate.Finding {
	return predicate.Finding(sql.FieldGTE(FieldRemediation, v))
}

// RemediationLT applies the LT predicate on the "remediation" field.
func RemediationLT(v string) predicate.Finding {
	return predicate.Finding(sql.FieldLT(FieldRemediation, v))
}

// RemediationLTE applies the LTE predicate on the "remediation" field.
func RemediationLTE(v string) predicate.Finding {
	return predicate.Finding(sql.FieldLTE(FieldRemediation, v))
}

// RemediationContains applies the Contains predicate on the "remediation" field.
func RemediationContains(v string) predicate.Finding {
	return predicate.Finding(sql.FieldContains(FieldRemediation, v))
}

// RemediationHasPrefix applies the HasPrefix predicate on the "remediation" field.
func RemediationHasPrefix(v string) predicate.Finding {
	return predicate.Finding(sql.FieldHasPrefix(FieldRemediation, v))
}

// RemediationHasSuffix applies the HasSuffix predicate on the "remediation" field.
func RemediationHasSuffix(v string) predicate.Finding {
	return predicate.Finding(sql.FieldHasSuffix(FieldRemediation, v))
}

// RemediationEqualFold applies the EqualFold predicate on the "remediation" field.
func RemediationEqualFold(v string) predicate.Finding {
	return predicate.Finding(sql.FieldEqualFold(FieldRemediation, v))
}

// RemediationContainsFold applies the ContainsFold predicate on the "remediation" field.
func RemediationContainsFold(v string) predicate.Finding {
	return predicate.Finding(sql.FieldContainsFold(FieldRemediation, v))
}

// AgentEQ applies the EQ predicate on the "agent" field.
func AgentEQ(v string) predicate.Finding {
	return predicate.Finding(sql.FieldEQ(FieldAgent, v))
}

// AgentNEQ applies the NEQ predicate on the "agent" field.
func AgentNEQ(v string) predicate.Finding {
	return predicate.Finding(sql.FieldNEQ(FieldAgent, v))
}

// AgentIn applies the In predicate on the "agent" field.
func AgentIn(vs ...string) predicate.Finding {
	return predicate.Finding(sql.FieldIn(FieldAgent, vs...))
}

// AgentNotIn applies the NotIn predicate on the "agent" field.
func AgentNotIn(vs ...string) predicate.Finding {
	return predicate.Finding(sql.FieldNotIn(FieldAgent, vs...))
}

// AgentGT applies the GT predicate on the "agent" field.
func AgentGT(v string) predicate.Finding {
	return predicate.Finding(sql.FieldGT(FieldAgent, v))
}

// AgentGTE applies the GTE predicate on the "agent" field.
func AgentGTE(v string) predicate.Finding {
	return predicate.Finding(sql.FieldGTE(FieldAgent, v))
}

// AgentLT applies the LT predicate on the "agent" field.
func AgentLT(v string) predicate.Finding {
	return predicate.Finding(sql.FieldLT(FieldAgent, v))
}

// AgentLTE applies the LTE predicate on the "agent" field.
func AgentLTE(v string) predicate.Finding {
	return predicate.Finding(sql.FieldLTE(FieldAgent, v))
}

// AgentContains applies the Contains predicate on the "agent" field.
func AgentContains(v string) predicate.Finding {
	return predicate.Finding(sql.FieldContains(FieldAgent, v))
}

// AgentHasPrefix applies the HasPrefix predicate on the "agent" field.
func AgentHasPrefix(v string) predicate.Finding {
	return predicate.Finding(sql.FieldHasPrefix(FieldAgent, v))
}

// AgentHasSuffix applies the HasSuffix predicate on the "agent" field.
func AgentHasSuffix(v string) predicate.Finding {
	return predicate.Finding(sql.FieldHasSuffix(FieldAgent, v))
}

// AgentIsNil applies the IsNil predicate on the "agent" field.
func AgentIsNil() predicate.Finding {
	return predicate.Finding(sql.FieldIsNull(FieldAgent))
}

// AgentNotNil applies the NotNil predicate on the "agent" field.
func AgentNotNil() predicate.Finding {
	return predicate.Finding(sql.FieldNotNull(FieldAgent))
}

// AgentEqualFold applies the EqualFold predicate on the "agent" field.
func AgentEqualFold(v string) predicate.Finding {
	return predicate.Finding(sql.FieldEqualFold(FieldAgent, v))
}

// AgentContainsFold applies the ContainsFold predicate on the "agent" field.
func AgentContainsFold(v string) predicate.Finding {
	return predicate.Finding(sql.FieldContainsFold(FieldAgent, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Finding {
	return predicate.Finding(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Finding {
	return predicate.Finding(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Finding {
	return predicate.Finding(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Finding {
	return predicate.Finding(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Finding {
	return predicate.Finding(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Finding {
	return predicate.Finding(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Finding {
	return predicate.Finding(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Finding {
	return predicate.Finding(sql.FieldLTE(FieldCreatedAt, v))
}

// HasAssessment applies the HasEdge predicate on the "assessment" edge.
func HasAssessment() predicate.Finding {
	return predicate.Finding(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AssessmentTable, AssessmentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAssessmentWith applies the HasEdge predicate on the "assessment" edge with a given conditions (other predicates).
func HasAssessmentWith(preds ...predicate.Assessment) predicate.Finding {
	return predicate.Finding(func(s *sql.Selector) {
		step := newAssessmentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Finding) predicate.Finding {
	return predicate.Finding(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Finding) predicate.Finding {
	return predicate.Finding(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Finding) predicate.Finding {
	return predicate.Finding(sql.NotPredicates(p))
}
