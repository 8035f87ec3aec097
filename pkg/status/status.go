package status

import (
	"k8s.io/apimachinery/pkg/api/meta"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	steeringv1alpha1 "github.com/openshift/ste-codec/api/v1alpha1"
)

const (
	// ConditionCompiled means every lookup of the rule was built and every
	// value was encoded into STE tags.
	ConditionCompiled = "Compiled"
	// ConditionDegraded means the rule could not be compiled; the reason
	// names the failing error kind.
	ConditionDegraded = "Degraded"
)

// Set records condition as the current state of rule and clears the other
// one. Transition times only move when a condition changes status.
func Set(rule *steeringv1alpha1.SteeringRule, condition string, reason string, message string) {
	for _, c := range getConditions(condition, reason, message) {
		meta.SetStatusCondition(&rule.Status.Conditions, c)
	}
}

// IsCompiled reports whether the last Set marked the rule compiled.
func IsCompiled(rule *steeringv1alpha1.SteeringRule) bool {
	return meta.IsStatusConditionTrue(rule.Status.Conditions, ConditionCompiled)
}

// getConditions based on the passed in condition it will update the status template
// Status field.
func getConditions(condition string, reason string, message string) []metav1.Condition {
	conditions := getBaseConditions()
	switch condition {
	case ConditionCompiled:
		conditions[0].Status = metav1.ConditionTrue
		conditions[0].Reason = reason
		conditions[0].Message = message
	case ConditionDegraded:
		conditions[1].Status = metav1.ConditionTrue
		conditions[1].Reason = reason
		conditions[1].Message = message
	}
	return conditions
}

// getBaseConditions return a template list for conditions.
func getBaseConditions() []metav1.Condition {
	return []metav1.Condition{
		{
			Type:   ConditionCompiled,
			Status: metav1.ConditionFalse,
			Reason: ConditionCompiled,
		},
		{
			Type:   ConditionDegraded,
			Status: metav1.ConditionFalse,
			Reason: ConditionDegraded,
		},
	}
}
