package ste

import (
	"github.com/pkg/errors"

	"github.com/openshift/ste-codec/api/v1alpha1"
)

// setL3Type encodes ip_version as the STE l3_type marker. An unknown
// version leaves both the tag and the match field untouched.
func setL3Type(tag []byte, f Field, spec *v1alpha1.MatchSpec) error {
	switch spec.IPVersion {
	case 0:
		return nil
	case v1alpha1.IPVersionIPv4:
		f.Set(tag, steIPv4)
	case v1alpha1.IPVersionIPv6:
		f.Set(tag, steIPv6)
	default:
		return errors.Wrapf(ErrInvalidIPVersion, "ip_version %d", spec.IPVersion)
	}
	spec.IPVersion = 0
	return nil
}

// setVLANQualifier encodes the VLAN type, customer first.
func setVLANQualifier(tag []byte, f Field, cvlan, svlan *uint8) {
	if *cvlan != 0 {
		f.Set(tag, steCVLAN)
		*cvlan = 0
	} else if *svlan != 0 {
		f.Set(tag, steSVLAN)
		*svlan = 0
	}
}

func v0EthL2SrcDstBitMask(value *v1alpha1.MatchParam, inner bool, bitMask []byte) {
	mask := value.Spec(inner)
	l := &ethL2SrcDst

	SetTag(bitMask, l.DMAC47To16, &mask.DMAC47To16)
	SetTag(bitMask, l.DMAC15To0, &mask.DMAC15To0)

	if mask.SMAC47To16 != 0 || mask.SMAC15To0 != 0 {
		l.SMAC47To32.Set(bitMask, mask.SMAC47To16>>16)
		l.SMAC31To0.Set(bitMask, mask.SMAC47To16<<16|uint32(mask.SMAC15To0))
		mask.SMAC47To16 = 0
		mask.SMAC15To0 = 0
	}

	SetTag(bitMask, l.FirstVLANID, &mask.FirstVID)
	SetTag(bitMask, l.FirstCFI, &mask.FirstCFI)
	SetTag(bitMask, l.FirstPriority, &mask.FirstPrio)
	SetOnes(bitMask, l.L3Type, &mask.IPVersion)

	if mask.CVLANTag != 0 {
		l.FirstVLANQualifier.Set(bitMask, l.FirstVLANQualifier.Ones())
		mask.CVLANTag = 0
	} else if mask.SVLANTag != 0 {
		l.FirstVLANQualifier.Set(bitMask, l.FirstVLANQualifier.Ones())
		mask.SVLANTag = 0
	}
}

func v0EthL2SrcDstTag(value *v1alpha1.MatchParam, sb *Builder, tag []byte) error {
	spec := value.Spec(sb.Inner)
	l := &ethL2SrcDst

	SetTag(tag, l.DMAC47To16, &spec.DMAC47To16)
	SetTag(tag, l.DMAC15To0, &spec.DMAC15To0)

	if spec.SMAC47To16 != 0 || spec.SMAC15To0 != 0 {
		l.SMAC47To32.Set(tag, spec.SMAC47To16>>16)
		l.SMAC31To0.Set(tag, spec.SMAC47To16<<16|uint32(spec.SMAC15To0))
		spec.SMAC47To16 = 0
		spec.SMAC15To0 = 0
	}

	if err := setL3Type(tag, l.L3Type, spec); err != nil {
		return err
	}

	SetTag(tag, l.FirstVLANID, &spec.FirstVID)
	SetTag(tag, l.FirstCFI, &spec.FirstCFI)
	SetTag(tag, l.FirstPriority, &spec.FirstPrio)
	setVLANQualifier(tag, l.FirstVLANQualifier, &spec.CVLANTag, &spec.SVLANTag)
	return nil
}

func v0EthL2SrcDstInit(sb *Builder, mask *v1alpha1.MatchParam) error {
	v0EthL2SrcDstBitMask(mask, sb.Inner, sb.BitMask[:])
	sb.finish(luEthL2SrcDst.pick(sb.Rx, sb.Inner), v0EthL2SrcDstTag)
	return nil
}

// v0EthL2SrcOrDstBitMask encodes the part shared by the L2 src and L2 dst
// lookups. The second VLAN comes from misc, on the side of sb.Inner.
func v0EthL2SrcOrDstBitMask(value *v1alpha1.MatchParam, inner bool, bitMask []byte) {
	mask := value.Spec(inner)
	misc := &value.Misc
	l := &ethL2Src

	SetTag(bitMask, l.FirstVLANID, &mask.FirstVID)
	SetTag(bitMask, l.FirstCFI, &mask.FirstCFI)
	SetTag(bitMask, l.FirstPriority, &mask.FirstPrio)
	SetTag(bitMask, l.IPFragmented, &mask.Frag)
	SetTag(bitMask, l.L3Ethertype, &mask.Ethertype)
	SetOnes(bitMask, l.L3Type, &mask.IPVersion)

	if mask.SVLANTag != 0 || mask.CVLANTag != 0 {
		l.FirstVLANQualifier.Set(bitMask, l.FirstVLANQualifier.Ones())
		mask.CVLANTag = 0
		mask.SVLANTag = 0
	}

	second := secondVLANOf(misc, inner)
	if *second.cvlan != 0 || *second.svlan != 0 {
		l.SecondVLANQualifier.Set(bitMask, l.SecondVLANQualifier.Ones())
		*second.cvlan = 0
		*second.svlan = 0
	}
	SetTag(bitMask, l.SecondVLANID, second.vid)
	SetTag(bitMask, l.SecondCFI, second.cfi)
	SetTag(bitMask, l.SecondPriority, second.prio)
}

func v0EthL2SrcOrDstTag(value *v1alpha1.MatchParam, inner bool, tag []byte) error {
	spec := value.Spec(inner)
	misc := &value.Misc
	l := &ethL2Src

	SetTag(tag, l.FirstVLANID, &spec.FirstVID)
	SetTag(tag, l.FirstCFI, &spec.FirstCFI)
	SetTag(tag, l.FirstPriority, &spec.FirstPrio)
	SetTag(tag, l.IPFragmented, &spec.Frag)
	SetTag(tag, l.L3Ethertype, &spec.Ethertype)

	if err := setL3Type(tag, l.L3Type, spec); err != nil {
		return err
	}

	setVLANQualifier(tag, l.FirstVLANQualifier, &spec.CVLANTag, &spec.SVLANTag)

	second := secondVLANOf(misc, inner)
	setVLANQualifier(tag, l.SecondVLANQualifier, second.cvlan, second.svlan)
	SetTag(tag, l.SecondVLANID, second.vid)
	SetTag(tag, l.SecondCFI, second.cfi)
	SetTag(tag, l.SecondPriority, second.prio)
	return nil
}

type secondVLAN struct {
	cvlan, svlan *uint8
	vid          *uint16
	cfi, prio    *uint8
}

func secondVLANOf(misc *v1alpha1.MatchMisc, inner bool) secondVLAN {
	if inner {
		return secondVLAN{
			cvlan: &misc.InnerSecondCVLANTag,
			svlan: &misc.InnerSecondSVLANTag,
			vid:   &misc.InnerSecondVID,
			cfi:   &misc.InnerSecondCFI,
			prio:  &misc.InnerSecondPrio,
		}
	}
	return secondVLAN{
		cvlan: &misc.OuterSecondCVLANTag,
		svlan: &misc.OuterSecondSVLANTag,
		vid:   &misc.OuterSecondVID,
		cfi:   &misc.OuterSecondCFI,
		prio:  &misc.OuterSecondPrio,
	}
}

func v0EthL2SrcTag(value *v1alpha1.MatchParam, sb *Builder, tag []byte) error {
	spec := value.Spec(sb.Inner)

	SetTag(tag, ethL2Src.MAC47To16, &spec.SMAC47To16)
	SetTag(tag, ethL2Src.MAC15To0, &spec.SMAC15To0)

	return v0EthL2SrcOrDstTag(value, sb.Inner, tag)
}

func v0EthL2SrcInit(sb *Builder, mask *v1alpha1.MatchParam) error {
	m := mask.Spec(sb.Inner)
	SetTag(sb.BitMask[:], ethL2Src.MAC47To16, &m.SMAC47To16)
	SetTag(sb.BitMask[:], ethL2Src.MAC15To0, &m.SMAC15To0)
	v0EthL2SrcOrDstBitMask(mask, sb.Inner, sb.BitMask[:])

	sb.finish(luEthL2Src.pick(sb.Rx, sb.Inner), v0EthL2SrcTag)
	return nil
}

func v0EthL2DstTag(value *v1alpha1.MatchParam, sb *Builder, tag []byte) error {
	spec := value.Spec(sb.Inner)

	SetTag(tag, ethL2Dst.MAC47To16, &spec.DMAC47To16)
	SetTag(tag, ethL2Dst.MAC15To0, &spec.DMAC15To0)

	return v0EthL2SrcOrDstTag(value, sb.Inner, tag)
}

func v0EthL2DstInit(sb *Builder, mask *v1alpha1.MatchParam) error {
	m := mask.Spec(sb.Inner)
	SetTag(sb.BitMask[:], ethL2Dst.MAC47To16, &m.DMAC47To16)
	SetTag(sb.BitMask[:], ethL2Dst.MAC15To0, &m.DMAC15To0)
	v0EthL2SrcOrDstBitMask(mask, sb.Inner, sb.BitMask[:])

	sb.finish(luEthL2Dst.pick(sb.Rx, sb.Inner), v0EthL2DstTag)
	return nil
}

func v0EthL2TunnelBitMask(value *v1alpha1.MatchParam, inner bool, bitMask []byte) {
	mask := value.Spec(inner)
	misc := &value.Misc
	l := &ethL2Tunnel

	SetTag(bitMask, l.DMAC47To16, &mask.DMAC47To16)
	SetTag(bitMask, l.DMAC15To0, &mask.DMAC15To0)
	SetTag(bitMask, l.FirstVLANID, &mask.FirstVID)
	SetTag(bitMask, l.FirstCFI, &mask.FirstCFI)
	SetTag(bitMask, l.FirstPriority, &mask.FirstPrio)
	SetTag(bitMask, l.IPFragmented, &mask.Frag)
	SetTag(bitMask, l.L3Ethertype, &mask.Ethertype)
	SetOnes(bitMask, l.L3Type, &mask.IPVersion)

	if misc.VXLANVNI != 0 {
		l.L2TunnelingNetworkID.Set(bitMask, misc.VXLANVNI<<8)
		misc.VXLANVNI = 0
	}

	if mask.SVLANTag != 0 || mask.CVLANTag != 0 {
		l.FirstVLANQualifier.Set(bitMask, l.FirstVLANQualifier.Ones())
		mask.CVLANTag = 0
		mask.SVLANTag = 0
	}
}

func v0EthL2TunnelTag(value *v1alpha1.MatchParam, sb *Builder, tag []byte) error {
	spec := value.Spec(sb.Inner)
	misc := &value.Misc
	l := &ethL2Tunnel

	SetTag(tag, l.DMAC47To16, &spec.DMAC47To16)
	SetTag(tag, l.DMAC15To0, &spec.DMAC15To0)
	SetTag(tag, l.FirstVLANID, &spec.FirstVID)
	SetTag(tag, l.FirstCFI, &spec.FirstCFI)
	SetTag(tag, l.IPFragmented, &spec.Frag)
	SetTag(tag, l.FirstPriority, &spec.FirstPrio)
	SetTag(tag, l.L3Ethertype, &spec.Ethertype)

	if misc.VXLANVNI != 0 {
		l.L2TunnelingNetworkID.Set(tag, misc.VXLANVNI<<8)
		misc.VXLANVNI = 0
	}

	setVLANQualifier(tag, l.FirstVLANQualifier, &spec.CVLANTag, &spec.SVLANTag)

	return setL3Type(tag, l.L3Type, spec)
}

// v0EthL2TunnelInit always uses the inner L2 tunneling lookup type.
func v0EthL2TunnelInit(sb *Builder, mask *v1alpha1.MatchParam) error {
	v0EthL2TunnelBitMask(mask, sb.Inner, sb.BitMask[:])
	sb.finish(LuTypeEthL2TunnelingI, v0EthL2TunnelTag)
	return nil
}
