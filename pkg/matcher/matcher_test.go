package matcher

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	logf "sigs.k8s.io/controller-runtime/pkg/log"
	controllerruntimemetrics "sigs.k8s.io/controller-runtime/pkg/metrics"

	steeringv1alpha1 "github.com/openshift/ste-codec/api/v1alpha1"
	"github.com/openshift/ste-codec/pkg/metrics"
	"github.com/openshift/ste-codec/pkg/status"
	"github.com/openshift/ste-codec/pkg/ste"
)

var testCaps = &ste.StaticCaps{
	FlexParserIDICMPDW0:   4,
	FlexParserIDICMPDW1:   5,
	FlexParserIDICMPv6DW0: 4,
	FlexParserIDICMPv6DW1: 5,
	Vports:                map[uint16]uint16{1: 0x10},
}

func l2AndFiveTupleMask() *steeringv1alpha1.MatchParam {
	mask := &steeringv1alpha1.MatchParam{}
	mask.Outer.DMAC47To16 = 0xffffffff
	mask.Outer.DMAC15To0 = 0xffff
	mask.Outer.IPVersion = 0xf
	mask.Outer.DstIP31To0 = 0xffffffff
	mask.Outer.TCPDport = 0xffff
	mask.Outer.IPProtocol = 0xff
	return mask
}

func l2AndFiveTupleValue(dport uint16) *steeringv1alpha1.MatchParam {
	value := &steeringv1alpha1.MatchParam{}
	value.Outer.DMAC47To16 = 0x0102
	value.Outer.DMAC15To0 = 0x0304
	value.Outer.IPVersion = steeringv1alpha1.IPVersionIPv4
	value.Outer.DstIP31To0 = 0x0a000001
	value.Outer.TCPDport = dport
	value.Outer.IPProtocol = 6
	return value
}

var l2AndFiveTuple = []steeringv1alpha1.SteeringLookup{
	{Name: steeringv1alpha1.LookupEthL2SrcDst},
	{Name: steeringv1alpha1.LookupEthL3IPv4FiveTuple},
}

var testStats = metrics.NewStatistics()

func testOptions() Options {
	return Options{
		Context: ste.ContextV0(),
		Caps:    testCaps,
		Log:     logf.Log.WithName("matcher"),
		Stats:   testStats,
	}
}

// errorCount reads stecodec_matcher_errors_total{kind} from the registry.
func errorCount(kind string) float64 {
	families, err := controllerruntimemetrics.Registry.Gather()
	Expect(err).NotTo(HaveOccurred())
	for _, mf := range families {
		if mf.GetName() != "stecodec_matcher_errors_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, label := range m.GetLabel() {
				if label.GetName() == "kind" && label.GetValue() == kind {
					return m.GetCounter().GetValue()
				}
			}
		}
	}
	return 0
}

var _ = Describe("Matcher", func() {
	Context("building a matcher", func() {
		It("initializes the lookups in order without touching the mask", func() {
			mask := l2AndFiveTupleMask()
			m, err := New(testOptions(), l2AndFiveTuple, mask)
			Expect(err).NotTo(HaveOccurred())
			Expect(m.Builders).To(HaveLen(2))
			Expect(m.Builders[0].LuType).To(Equal(ste.LuTypeEthL2SrcDstO))
			Expect(m.Builders[1].LuType).To(Equal(ste.LuTypeEthL3IPv4FiveTupleO))
			Expect(m.Builders[0].PackedByteMask()).To(Equal(uint16(0xfc08)))
			Expect(mask).To(Equal(l2AndFiveTupleMask()))
		})

		It("uses the rx lookup types", func() {
			opts := testOptions()
			opts.Rx = true
			m, err := New(opts, l2AndFiveTuple, l2AndFiveTupleMask())
			Expect(err).NotTo(HaveOccurred())
			Expect(m.Builders[0].LuType).To(Equal(ste.LuTypeEthL2SrcDstD))
			Expect(m.Builders[1].LuType).To(Equal(ste.LuTypeEthL3IPv4FiveTupleD))
		})

		It("rejects mask fields no lookup consumes", func() {
			mask := l2AndFiveTupleMask()
			mask.Misc3.GTPUTEID = 0xffffffff
			before := errorCount(UnconsumedFieldsKind)
			_, err := New(testOptions(), l2AndFiveTuple, mask)
			Expect(errors.Is(err, UnconsumedFieldsError{})).To(BeTrue())
			Expect(errorCount(UnconsumedFieldsKind)).To(Equal(before + 1))
			var unconsumed UnconsumedFieldsError
			Expect(errors.As(err, &unconsumed)).To(BeTrue())
			Expect(unconsumed.Pass).To(Equal("mask"))
			Expect(unconsumed.Fields).To(Equal([]string{"misc3.gtpu_teid"}))
		})

		It("rejects unknown lookups", func() {
			lookups := []steeringv1alpha1.SteeringLookup{{Name: "flex_parser_7"}}
			_, err := New(testOptions(), lookups, l2AndFiveTupleMask())
			Expect(errors.Is(err, ste.ErrUnsupportedLookup)).To(BeTrue())
		})

		It("surfaces capability failures", func() {
			mask := &steeringv1alpha1.MatchParam{}
			mask.Misc3.ICMPv4Type = 0xff
			opts := testOptions()
			opts.Caps = &ste.StaticCaps{}
			lookups := []steeringv1alpha1.SteeringLookup{{Name: steeringv1alpha1.LookupICMP}}
			_, err := New(opts, lookups, mask)
			Expect(errors.Is(err, ste.ErrUnsupportedCapabilitySlot)).To(BeTrue())
		})
	})

	Context("encoding values", func() {
		var m *Matcher

		BeforeEach(func() {
			var err error
			m, err = New(testOptions(), l2AndFiveTuple, l2AndFiveTupleMask())
			Expect(err).NotTo(HaveOccurred())
		})

		It("produces one STE per lookup", func() {
			value := l2AndFiveTupleValue(443)
			stes, err := m.BuildSTEs(value)
			Expect(err).NotTo(HaveOccurred())
			Expect(stes).To(HaveLen(2))
			Expect(stes[0].Tag).To(Equal([ste.TagSize]byte{0x00, 0x00, 0x01, 0x02, 0x03, 0x04, 12: 0x04}))
			Expect(stes[0].ByteMask).To(Equal(uint16(0xfc08)))
			Expect(stes[1].Lookup).To(Equal(steeringv1alpha1.LookupEthL3IPv4FiveTuple))
			Expect(value).To(Equal(l2AndFiveTupleValue(443)))
		})

		It("reuses the matcher for several values", func() {
			a, err := m.BuildSTEs(l2AndFiveTupleValue(80))
			Expect(err).NotTo(HaveOccurred())
			b, err := m.BuildSTEs(l2AndFiveTupleValue(443))
			Expect(err).NotTo(HaveOccurred())
			Expect(a[0].Tag).To(Equal(b[0].Tag))
			Expect(a[1].Tag).NotTo(Equal(b[1].Tag))
		})

		It("rejects value fields no lookup consumes", func() {
			value := l2AndFiveTupleValue(443)
			value.Misc.GREProtocol = 0x6558
			before := errorCount(UnconsumedFieldsKind)
			_, err := m.BuildSTEs(value)
			Expect(errorCount(UnconsumedFieldsKind)).To(Equal(before + 1))
			var unconsumed UnconsumedFieldsError
			Expect(errors.As(err, &unconsumed)).To(BeTrue())
			Expect(unconsumed.Pass).To(Equal("value"))
			Expect(unconsumed.Fields).To(ConsistOf("misc.gre_protocol"))
		})

		It("propagates invalid ip versions", func() {
			value := l2AndFiveTupleValue(443)
			value.Outer.IPVersion = 5
			_, err := m.BuildSTEs(value)
			Expect(errors.Is(err, ste.ErrInvalidIPVersion)).To(BeTrue())
		})

		It("renders compiled lookups", func() {
			stes, err := m.BuildSTEs(l2AndFiveTupleValue(443))
			Expect(err).NotTo(HaveOccurred())
			lookups := m.CompiledLookups([][]STE{stes})
			Expect(lookups).To(HaveLen(2))
			Expect(lookups[0].Name).To(Equal(steeringv1alpha1.LookupEthL2SrcDst))
			Expect(lookups[0].LookupType).To(Equal(uint16(0x36)))
			Expect(lookups[0].BitMask).To(Equal("ffffffffffff0000000000000c000000"))
			Expect(lookups[0].Tags).To(Equal([]string{"00000102030400000000000004000000"}))
		})
	})

	Context("compiling a SteeringRule", func() {
		var rule *steeringv1alpha1.SteeringRule

		BeforeEach(func() {
			rule = &steeringv1alpha1.SteeringRule{
				ObjectMeta: metav1.ObjectMeta{Name: "web"},
				Spec: steeringv1alpha1.SteeringRuleSpec{
					Direction: steeringv1alpha1.SteeringDirectionTx,
					Lookups:   l2AndFiveTuple,
					Mask:      *l2AndFiveTupleMask(),
					Values:    []steeringv1alpha1.MatchParam{*l2AndFiveTupleValue(80), *l2AndFiveTupleValue(443)},
				},
			}
		})

		It("records the compiled lookups", func() {
			stes, err := Compile(rule, testCaps, testOptions())
			Expect(err).NotTo(HaveOccurred())
			Expect(stes).To(HaveLen(2))
			Expect(status.IsCompiled(rule)).To(BeTrue())
			Expect(rule.Status.Lookups).To(HaveLen(2))
			Expect(rule.Status.Lookups[1].Tags).To(HaveLen(2))
		})

		It("marks invalid rules degraded", func() {
			rule.Spec.Values[1].Outer.IPVersion = 5
			_, err := Compile(rule, testCaps, testOptions())
			Expect(errors.Is(err, ste.ErrInvalidIPVersion)).To(BeTrue())
			Expect(status.IsCompiled(rule)).To(BeFalse())
			Expect(rule.Status.Lookups).To(BeEmpty())
			Expect(rule.Status.Conditions).To(ContainElement(And(
				HaveField("Type", status.ConditionDegraded),
				HaveField("Reason", "invalid_ip_version"),
			)))
		})

		It("refuses unsupported hardware versions", func() {
			rule.Spec.HardwareVersion = 1
			_, err := Compile(rule, testCaps, testOptions())
			Expect(errors.Is(err, ste.ErrUnsupportedVersion)).To(BeTrue())
			Expect(status.IsCompiled(rule)).To(BeFalse())
			Expect(rule.Status.Conditions).To(ContainElement(And(
				HaveField("Type", status.ConditionDegraded),
				HaveField("Reason", "unsupported_version"),
			)))
		})

		It("marks rules failing validation as invalid", func() {
			rule.Spec.Direction = "sideways"
			_, err := Compile(rule, testCaps, testOptions())
			Expect(err).To(HaveOccurred())
			Expect(rule.Status.Conditions).To(ContainElement(And(
				HaveField("Type", status.ConditionDegraded),
				HaveField("Reason", "InvalidRule"),
			)))
		})
	})
})
