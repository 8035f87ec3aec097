package packetmatch

import (
	"encoding/binary"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/pkg/errors"

	steeringv1alpha1 "github.com/openshift/ste-codec/api/v1alpha1"
)

// decoder carries the header view being filled while walking the layers
// of one packet. Headers after a tunnel go to the inner view.
type decoder struct {
	value *steeringv1alpha1.MatchParam
	inner bool
	// vlans counts the VLAN tags of the current view.
	vlans int
	// under is the last GRE, UDP or MPLS layer seen.
	under gopacket.LayerType
}

// ValueFromPacket decodes an Ethernet frame into the match value a rule
// would need to match it exactly.
func ValueFromPacket(data []byte) (*steeringv1alpha1.MatchParam, error) {
	packet := gopacket.NewPacket(data, layers.LayerTypeEthernet, gopacket.Default)
	if errLayer := packet.ErrorLayer(); errLayer != nil {
		return nil, errors.Wrap(errLayer.Error(), "failed to decode packet")
	}

	d := &decoder{value: &steeringv1alpha1.MatchParam{}}
	for _, layer := range packet.Layers() {
		d.decode(layer)
	}
	return d.value, nil
}

// ExactMask returns the mask selecting every non-zero field of value.
func ExactMask(value *steeringv1alpha1.MatchParam) *steeringv1alpha1.MatchParam {
	return value.ExactMask()
}

func (d *decoder) spec() *steeringv1alpha1.MatchSpec {
	return d.value.Spec(d.inner)
}

func (d *decoder) tunnel() {
	d.inner = true
	d.vlans = 0
}

func (d *decoder) decode(layer gopacket.Layer) {
	switch l := layer.(type) {
	case *layers.Ethernet:
		d.ethernet(l)
	case *layers.Dot1Q:
		d.dot1q(l)
	case *layers.IPv4:
		d.ipv4(l)
	case *layers.IPv6:
		d.ipv6(l)
	case *layers.TCP:
		d.tcp(l)
	case *layers.UDP:
		d.udp(l)
	case *layers.ICMPv4:
		d.icmpv4(l)
	case *layers.ICMPv6:
		d.icmpv6(l)
	case *layers.GRE:
		d.gre(l)
	case *layers.MPLS:
		d.mpls(l)
	case *layers.VXLAN:
		d.value.Misc.VXLANVNI = l.VNI
		d.tunnel()
	case *layers.Geneve:
		d.geneve(l)
	case *layers.GTPv1U:
		d.gtpu(l)
	}
}

func (d *decoder) ethernet(l *layers.Ethernet) {
	s := d.spec()
	s.SetSrcMAC(l.SrcMAC)
	s.SetDstMAC(l.DstMAC)
	s.Ethertype = uint16(l.EthernetType)
	d.vlanQualifier(&s.CVLANTag, &s.SVLANTag, l.EthernetType)
}

func (d *decoder) vlanQualifier(cvlan, svlan *uint8, t layers.EthernetType) {
	switch t {
	case layers.EthernetTypeDot1Q:
		*cvlan = 1
	case layers.EthernetTypeQinQ:
		*svlan = 1
	}
}

func (d *decoder) dot1q(l *layers.Dot1Q) {
	s := d.spec()
	misc := &d.value.Misc
	var cfi uint8
	if l.DropEligible {
		cfi = 1
	}

	switch d.vlans {
	case 0:
		s.FirstVID, s.FirstCFI, s.FirstPrio = l.VLANIdentifier, cfi, l.Priority
		if d.inner {
			d.vlanQualifier(&misc.InnerSecondCVLANTag, &misc.InnerSecondSVLANTag, l.Type)
		} else {
			d.vlanQualifier(&misc.OuterSecondCVLANTag, &misc.OuterSecondSVLANTag, l.Type)
		}
	case 1:
		if d.inner {
			misc.InnerSecondVID, misc.InnerSecondCFI, misc.InnerSecondPrio = l.VLANIdentifier, cfi, l.Priority
		} else {
			misc.OuterSecondVID, misc.OuterSecondCFI, misc.OuterSecondPrio = l.VLANIdentifier, cfi, l.Priority
		}
	}
	d.vlans++
	s.Ethertype = uint16(l.Type)
}

func (d *decoder) ipv4(l *layers.IPv4) {
	s := d.spec()
	s.IPVersion = steeringv1alpha1.IPVersionIPv4
	s.SetSrcIP(l.SrcIP)
	s.SetDstIP(l.DstIP)
	s.IPProtocol = uint8(l.Protocol)
	s.IPTTLHoplimit = l.TTL
	s.IPDSCP, s.IPECN = l.TOS>>2, l.TOS&0x3
	if l.Flags&layers.IPv4MoreFragments != 0 || l.FragOffset != 0 {
		s.Frag = 1
	}
}

func (d *decoder) ipv6(l *layers.IPv6) {
	s := d.spec()
	s.IPVersion = steeringv1alpha1.IPVersionIPv6
	s.SetSrcIP(l.SrcIP)
	s.SetDstIP(l.DstIP)
	s.IPProtocol = uint8(l.NextHeader)
	s.IPTTLHoplimit = l.HopLimit
	s.IPDSCP, s.IPECN = l.TrafficClass>>2, l.TrafficClass&0x3
	if d.inner {
		d.value.Misc.InnerIPv6FlowLabel = l.FlowLabel
	} else {
		d.value.Misc.OuterIPv6FlowLabel = l.FlowLabel
	}
}

func (d *decoder) tcp(l *layers.TCP) {
	s := d.spec()
	s.TCPSport = uint16(l.SrcPort)
	s.TCPDport = uint16(l.DstPort)
	s.TCPFlags = tcpFlags(l)
	if d.inner {
		d.value.Misc3.InnerTCPSeqNum, d.value.Misc3.InnerTCPAckNum = l.Seq, l.Ack
	} else {
		d.value.Misc3.OuterTCPSeqNum, d.value.Misc3.OuterTCPAckNum = l.Seq, l.Ack
	}
}

// tcpFlags packs the flags FIN first, up to NS in bit 8.
func tcpFlags(l *layers.TCP) uint16 {
	var flags uint16
	for i, set := range []bool{l.FIN, l.SYN, l.RST, l.PSH, l.ACK, l.URG, l.ECE, l.CWR, l.NS} {
		if set {
			flags |= 1 << i
		}
	}
	return flags
}

func (d *decoder) udp(l *layers.UDP) {
	s := d.spec()
	s.UDPSport = uint16(l.SrcPort)
	s.UDPDport = uint16(l.DstPort)
	d.under = layers.LayerTypeUDP
}

func (d *decoder) icmpv4(l *layers.ICMPv4) {
	misc3 := &d.value.Misc3
	misc3.ICMPv4Type = l.TypeCode.Type()
	misc3.ICMPv4Code = l.TypeCode.Code()
	misc3.ICMPv4HeaderData = uint32(l.Id)<<16 | uint32(l.Seq)
}

func (d *decoder) icmpv6(l *layers.ICMPv6) {
	misc3 := &d.value.Misc3
	misc3.ICMPv6Type = l.TypeCode.Type()
	misc3.ICMPv6Code = l.TypeCode.Code()
	if len(l.Payload) >= 4 {
		misc3.ICMPv6HeaderData = binary.BigEndian.Uint32(l.Payload[:4])
	}
}

func (d *decoder) gre(l *layers.GRE) {
	misc := &d.value.Misc
	misc.GREProtocol = uint16(l.Protocol)
	misc.GRECPresent = boolBit(l.ChecksumPresent)
	misc.GREKPresent = boolBit(l.KeyPresent)
	misc.GRESPresent = boolBit(l.SeqPresent)
	if l.KeyPresent {
		misc.GREKeyH = l.Key >> 8
		misc.GREKeyL = uint8(l.Key)
	}
	d.under = layers.LayerTypeGRE
	if l.Protocol != layers.EthernetTypeMPLSUnicast {
		d.tunnel()
	}
}

// mpls records the top label of a stack. Labels carried by GRE or UDP are
// the tunnel labels; otherwise it is the first label of the current view.
// Headers below the stack go to the inner view.
func (d *decoder) mpls(l *layers.MPLS) {
	if d.under == layers.LayerTypeMPLS {
		return
	}
	m := &d.value.Misc2
	ttl, sbos, exp, label := &m.OuterFirstMPLSTTL, &m.OuterFirstMPLSSBos, &m.OuterFirstMPLSExp, &m.OuterFirstMPLSLabel
	switch {
	case d.under == layers.LayerTypeGRE:
		ttl, sbos, exp, label = &m.OuterFirstMPLSOverGRETTL, &m.OuterFirstMPLSOverGRESBos, &m.OuterFirstMPLSOverGREExp, &m.OuterFirstMPLSOverGRELabel
	case d.under == layers.LayerTypeUDP:
		ttl, sbos, exp, label = &m.OuterFirstMPLSOverUDPTTL, &m.OuterFirstMPLSOverUDPSBos, &m.OuterFirstMPLSOverUDPExp, &m.OuterFirstMPLSOverUDPLabel
	case d.inner:
		ttl, sbos, exp, label = &m.InnerFirstMPLSTTL, &m.InnerFirstMPLSSBos, &m.InnerFirstMPLSExp, &m.InnerFirstMPLSLabel
	}
	*ttl, *sbos, *exp, *label = l.TTL, boolBit(l.StackBottom), l.TrafficClass, l.Label
	d.under = layers.LayerTypeMPLS
	d.tunnel()
}

func (d *decoder) geneve(l *layers.Geneve) {
	misc := &d.value.Misc
	misc.GeneveVNI = l.VNI
	misc.GeneveOAM = boolBit(l.OAMPacket)
	misc.GeneveProtocolType = uint16(l.Protocol)
	misc.GeneveOptLen = l.OptionsLength / 4
	d.tunnel()
}

func (d *decoder) gtpu(l *layers.GTPv1U) {
	misc3 := &d.value.Misc3
	misc3.GTPUTEID = l.TEID
	misc3.GTPUMsgType = l.MessageType
	misc3.GTPUFlags = boolBit(l.ExtensionHeaderFlag)<<2 | boolBit(l.SequenceNumberFlag)<<1 | boolBit(l.NPDUFlag)
	d.tunnel()
}

func boolBit(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
