package ste

import (
	"github.com/pkg/errors"

	"github.com/openshift/ste-codec/api/v1alpha1"
)

const (
	icmpTypeShift = 24
	icmpCodeShift = 16
)

func icmpv4Set(misc3 *v1alpha1.MatchMisc3) bool {
	return misc3.ICMPv4Type != 0 || misc3.ICMPv4Code != 0 || misc3.ICMPv4HeaderData != 0
}

func (sb *Builder) icmpSlot() SlotAssignment {
	if sb.caps == nil {
		return SlotUnsupported
	}
	return sb.caps.ICMPSlotFor(sb.icmp)
}

// v0ICMPTag packs type and code into flex_parser_4 and the header data into
// flex_parser_5. The family is fixed by the mask at init time, so a value
// matching type 0 and code 0 still selects the right fields.
func v0ICMPTag(value *v1alpha1.MatchParam, sb *Builder, tag []byte) error {
	misc3 := &value.Misc3
	icmpType, icmpCode, headerData := &misc3.ICMPv4Type, &misc3.ICMPv4Code, &misc3.ICMPv4HeaderData
	if sb.icmp == ICMPv6 {
		icmpType, icmpCode, headerData = &misc3.ICMPv6Type, &misc3.ICMPv6Code, &misc3.ICMPv6HeaderData
	}

	if sb.icmpSlot() != SlotDW4DW5 {
		return errors.Wrapf(ErrUnsupportedCapabilitySlot, "%s", sb.icmp)
	}

	l := &flexParser1
	if *icmpType != 0 {
		l.FlexParser4.Set(tag, uint32(*icmpType)<<icmpTypeShift)
		*icmpType = 0
	}
	if *icmpCode != 0 {
		cur := l.FlexParser4.Get(tag)
		l.FlexParser4.Set(tag, cur|uint32(*icmpCode)<<icmpCodeShift)
		*icmpCode = 0
	}
	SetTag(tag, l.FlexParser5, headerData)
	return nil
}

func v0ICMPInit(sb *Builder, mask *v1alpha1.MatchParam) error {
	sb.icmp = ICMPv6
	if icmpv4Set(&mask.Misc3) {
		sb.icmp = ICMPv4
	}
	return initSymmetric(sb, mask, LuTypeFlexParser1, v0ICMPTag)
}

func v0GeneralPurposeTag(value *v1alpha1.MatchParam, sb *Builder, tag []byte) error {
	SetTag(tag, generalPurpose.LookupField, &value.Misc2.MetadataRegA)
	return nil
}

func v0GeneralPurposeInit(sb *Builder, mask *v1alpha1.MatchParam) error {
	return initSymmetric(sb, mask, LuTypeGeneralPurpose, v0GeneralPurposeTag)
}

func v0Register0Tag(value *v1alpha1.MatchParam, sb *Builder, tag []byte) error {
	misc2 := &value.Misc2

	SetTag(tag, register0.HighH, &misc2.MetadataRegC0)
	SetTag(tag, register0.HighL, &misc2.MetadataRegC1)
	SetTag(tag, register0.LowH, &misc2.MetadataRegC2)
	SetTag(tag, register0.LowL, &misc2.MetadataRegC3)
	return nil
}

func v0Register0Init(sb *Builder, mask *v1alpha1.MatchParam) error {
	return initSymmetric(sb, mask, LuTypeSteeringRegisters0, v0Register0Tag)
}

func v0Register1Tag(value *v1alpha1.MatchParam, sb *Builder, tag []byte) error {
	misc2 := &value.Misc2

	SetTag(tag, register1.HighH, &misc2.MetadataRegC4)
	SetTag(tag, register1.HighL, &misc2.MetadataRegC5)
	SetTag(tag, register1.LowH, &misc2.MetadataRegC6)
	SetTag(tag, register1.LowL, &misc2.MetadataRegC7)
	return nil
}

func v0Register1Init(sb *Builder, mask *v1alpha1.MatchParam) error {
	return initSymmetric(sb, mask, LuTypeSteeringRegisters1, v0Register1Tag)
}

// v0SrcGVMIQPNTag resolves source_port through the vport table only when
// the matcher masks the GVMI. A GVMI of 0 is a wildcard and writes nothing.
func v0SrcGVMIQPNTag(value *v1alpha1.MatchParam, sb *Builder, tag []byte) error {
	misc := &value.Misc

	SetTag(tag, srcGVMIQP.SourceQP, &misc.SourceSQN)

	if srcGVMIQP.SourceGVMI.Get(sb.BitMask[:]) == 0 {
		return nil
	}
	var (
		gvmi uint16
		ok   bool
	)
	if sb.caps != nil {
		gvmi, ok = sb.caps.VportGVMI(misc.SourcePort)
	}
	if !ok {
		return errors.Wrapf(ErrVportLookupFailed, "source_port %d", misc.SourcePort)
	}
	if gvmi != 0 {
		srcGVMIQP.SourceGVMI.Set(tag, uint32(gvmi))
	}
	misc.SourcePort = 0
	return nil
}

func v0SrcGVMIQPNInit(sb *Builder, mask *v1alpha1.MatchParam) error {
	misc := &mask.Misc

	SetOnes(sb.BitMask[:], srcGVMIQP.SourceGVMI, &misc.SourcePort)
	SetOnes(sb.BitMask[:], srcGVMIQP.SourceQP, &misc.SourceSQN)

	sb.finish(LuTypeSrcGVMIAndQP, v0SrcGVMIQPNTag)
	return nil
}
