package ste

import (
	"github.com/openshift/ste-codec/api/v1alpha1"
)

func v0EthL3IPv6DstTag(value *v1alpha1.MatchParam, sb *Builder, tag []byte) error {
	spec := value.Spec(sb.Inner)

	SetTag(tag, ethL3IPv6Dst.IP127To96, &spec.DstIP127To96)
	SetTag(tag, ethL3IPv6Dst.IP95To64, &spec.DstIP95To64)
	SetTag(tag, ethL3IPv6Dst.IP63To32, &spec.DstIP63To32)
	SetTag(tag, ethL3IPv6Dst.IP31To0, &spec.DstIP31To0)
	return nil
}

func v0EthL3IPv6DstInit(sb *Builder, mask *v1alpha1.MatchParam) error {
	return initSymmetric(sb, mask, luEthL3IPv6Dst.pick(sb.Rx, sb.Inner), v0EthL3IPv6DstTag)
}

func v0EthL3IPv6SrcTag(value *v1alpha1.MatchParam, sb *Builder, tag []byte) error {
	spec := value.Spec(sb.Inner)

	SetTag(tag, ethL3IPv6Src.IP127To96, &spec.SrcIP127To96)
	SetTag(tag, ethL3IPv6Src.IP95To64, &spec.SrcIP95To64)
	SetTag(tag, ethL3IPv6Src.IP63To32, &spec.SrcIP63To32)
	SetTag(tag, ethL3IPv6Src.IP31To0, &spec.SrcIP31To0)
	return nil
}

func v0EthL3IPv6SrcInit(sb *Builder, mask *v1alpha1.MatchParam) error {
	return initSymmetric(sb, mask, luEthL3IPv6Src.pick(sb.Rx, sb.Inner), v0EthL3IPv6SrcTag)
}

// v0EthL3IPv4FiveTupleTag writes TCP and UDP ports to the same slots; a
// well formed match sets only one of them.
func v0EthL3IPv4FiveTupleTag(value *v1alpha1.MatchParam, sb *Builder, tag []byte) error {
	spec := value.Spec(sb.Inner)
	l := &ethL3IPv4FiveTuple

	SetTag(tag, l.DestinationAddress, &spec.DstIP31To0)
	SetTag(tag, l.SourceAddress, &spec.SrcIP31To0)
	SetTag(tag, l.DestinationPort, &spec.TCPDport)
	SetTag(tag, l.DestinationPort, &spec.UDPDport)
	SetTag(tag, l.SourcePort, &spec.TCPSport)
	SetTag(tag, l.SourcePort, &spec.UDPSport)
	SetTag(tag, l.Protocol, &spec.IPProtocol)
	SetTag(tag, l.Fragmented, &spec.Frag)
	SetTag(tag, l.DSCP, &spec.IPDSCP)
	SetTag(tag, l.ECN, &spec.IPECN)
	SetTag(tag, l.TCPFlags, &spec.TCPFlags)
	return nil
}

func v0EthL3IPv4FiveTupleInit(sb *Builder, mask *v1alpha1.MatchParam) error {
	return initSymmetric(sb, mask, luEthL3IPv4FiveTuple.pick(sb.Rx, sb.Inner), v0EthL3IPv4FiveTupleTag)
}

func v0EthL3IPv4MiscTag(value *v1alpha1.MatchParam, sb *Builder, tag []byte) error {
	spec := value.Spec(sb.Inner)

	SetTag(tag, ethL3IPv4Misc.TimeToLive, &spec.IPTTLHoplimit)
	return nil
}

func v0EthL3IPv4MiscInit(sb *Builder, mask *v1alpha1.MatchParam) error {
	return initSymmetric(sb, mask, luEthL3IPv4Misc.pick(sb.Rx, sb.Inner), v0EthL3IPv4MiscTag)
}

func v0EthIPv6L3L4Tag(value *v1alpha1.MatchParam, sb *Builder, tag []byte) error {
	spec := value.Spec(sb.Inner)
	misc := &value.Misc
	l := &ethL4

	SetTag(tag, l.DstPort, &spec.TCPDport)
	SetTag(tag, l.SrcPort, &spec.TCPSport)
	SetTag(tag, l.DstPort, &spec.UDPDport)
	SetTag(tag, l.SrcPort, &spec.UDPSport)
	SetTag(tag, l.Protocol, &spec.IPProtocol)
	SetTag(tag, l.Fragmented, &spec.Frag)
	SetTag(tag, l.DSCP, &spec.IPDSCP)
	SetTag(tag, l.ECN, &spec.IPECN)
	SetTag(tag, l.IPv6HopLimit, &spec.IPTTLHoplimit)

	if sb.Inner {
		SetTag(tag, l.FlowLabel, &misc.InnerIPv6FlowLabel)
	} else {
		SetTag(tag, l.FlowLabel, &misc.OuterIPv6FlowLabel)
	}

	SetTag(tag, l.TCPFlags, &spec.TCPFlags)
	return nil
}

func v0EthIPv6L3L4Init(sb *Builder, mask *v1alpha1.MatchParam) error {
	return initSymmetric(sb, mask, luEthL4.pick(sb.Rx, sb.Inner), v0EthIPv6L3L4Tag)
}

func v0EthL4MiscTag(value *v1alpha1.MatchParam, sb *Builder, tag []byte) error {
	misc3 := &value.Misc3

	if sb.Inner {
		SetTag(tag, ethL4Misc.SeqNum, &misc3.InnerTCPSeqNum)
		SetTag(tag, ethL4Misc.AckNum, &misc3.InnerTCPAckNum)
	} else {
		SetTag(tag, ethL4Misc.SeqNum, &misc3.OuterTCPSeqNum)
		SetTag(tag, ethL4Misc.AckNum, &misc3.OuterTCPAckNum)
	}
	return nil
}

func v0EthL4MiscInit(sb *Builder, mask *v1alpha1.MatchParam) error {
	return initSymmetric(sb, mask, luEthL4Misc.pick(sb.Rx, sb.Inner), v0EthL4MiscTag)
}
