package matcher

import (
	"fmt"

	"github.com/pkg/errors"

	steeringv1alpha1 "github.com/openshift/ste-codec/api/v1alpha1"
	"github.com/openshift/ste-codec/pkg/status"
	"github.com/openshift/ste-codec/pkg/ste"
)

// Compile validates rule, builds its matcher and encodes every value. The
// outcome is recorded in the rule status; on failure the compiled lookups
// are cleared and the error is also returned.
func Compile(rule *steeringv1alpha1.SteeringRule, caps ste.Capabilities, opts Options) ([][]STE, error) {
	log := opts.Log
	if log.GetSink() != nil {
		opts.Log = log.WithValues("steeringrule", rule.Name)
	}

	stes, m, err := compile(rule, caps, opts)
	if err != nil {
		rule.Status.Lookups = nil
		status.Set(rule, status.ConditionDegraded, reasonOf(err), err.Error())
		return nil, err
	}

	rule.Status.Lookups = m.CompiledLookups(stes)
	status.Set(rule, status.ConditionCompiled, status.ConditionCompiled,
		fmt.Sprintf("%d lookups, %d values", len(m.Builders), len(stes)))
	return stes, nil
}

func compile(rule *steeringv1alpha1.SteeringRule, caps ste.Capabilities, opts Options) ([][]STE, *Matcher, error) {
	stectx, err := ste.GetContext(rule.Spec.HardwareVersion)
	if err != nil {
		return nil, nil, err
	}
	if err := steeringv1alpha1.ValidateSteeringRule(rule); err != nil {
		return nil, nil, err
	}
	opts.Context = stectx
	opts.Caps = caps
	opts.Rx = rule.Spec.Direction == steeringv1alpha1.SteeringDirectionRx

	m, err := New(opts, rule.Spec.Lookups, &rule.Spec.Mask)
	if err != nil {
		return nil, nil, err
	}

	stes := make([][]STE, 0, len(rule.Spec.Values))
	for i := range rule.Spec.Values {
		entries, err := m.BuildSTEs(&rule.Spec.Values[i])
		if err != nil {
			return nil, nil, errors.Wrapf(err, "values[%d]", i)
		}
		stes = append(stes, entries)
	}
	return stes, m, nil
}

// reasonOf names the condition reason of a compile failure.
func reasonOf(err error) string {
	if errors.Is(err, UnconsumedFieldsError{}) {
		return "UnconsumedFields"
	}
	if kind := ste.KindOf(err); kind != "unknown" {
		return kind
	}
	return "InvalidRule"
}
