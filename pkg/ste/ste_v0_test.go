package ste

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/pkg/errors"

	"github.com/openshift/ste-codec/api/v1alpha1"
)

var testCaps = &StaticCaps{
	FlexParserIDICMPDW0:   4,
	FlexParserIDICMPDW1:   5,
	FlexParserIDICMPv6DW0: 4,
	FlexParserIDICMPv6DW1: 5,
	Vports:                map[uint16]uint16{1: 0x10},
}

func initBuilder(t *testing.T, kind v1alpha1.LookupName, rx, inner bool, mask *v1alpha1.MatchParam) *Builder {
	t.Helper()
	sb := NewBuilder(kind, testCaps, rx, inner)
	if err := ContextV0().Init(sb, mask); err != nil {
		t.Fatalf("%s: init failed: %v", kind, err)
	}
	return sb
}

func TestEthL2SrcDstEndToEnd(t *testing.T) {
	mask := &v1alpha1.MatchParam{}
	mask.Outer.DMAC47To16 = 0xffffffff
	mask.Outer.DMAC15To0 = 0xffff
	mask.Outer.IPVersion = 0xf

	sb := initBuilder(t, v1alpha1.LookupEthL2SrcDst, false, false, mask)

	expectedMask := [TagSize]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 12: 0x0c}
	if sb.BitMask != expectedMask {
		t.Errorf("wrong bit mask\n got: % x\nwant: % x\n", sb.BitMask, expectedMask)
	}
	if sb.LuType != LuTypeEthL2SrcDstO {
		t.Errorf("wrong lookup type\n got: %s\nwant: %s\n", sb.LuType, LuTypeEthL2SrcDstO)
	}
	if got := sb.PackedByteMask(); got != 0xfc08 {
		t.Errorf("wrong byte mask\n got: %#04x\nwant: 0xfc08\n", got)
	}
	if !mask.IsZero() {
		t.Errorf("mask not consumed: %v", mask.Residual())
	}

	value := &v1alpha1.MatchParam{}
	value.Outer.DMAC47To16 = 0x0102
	value.Outer.DMAC15To0 = 0x0304
	value.Outer.IPVersion = v1alpha1.IPVersionIPv4

	var tag [TagSize]byte
	if err := sb.Tag(value, &tag); err != nil {
		t.Fatalf("tag failed: %v", err)
	}
	expectedTag := [TagSize]byte{0x00, 0x00, 0x01, 0x02, 0x03, 0x04, 12: 0x04}
	if tag != expectedTag {
		t.Errorf("wrong tag\n got: % x\nwant: % x\n", tag, expectedTag)
	}
	if !value.IsZero() {
		t.Errorf("value not consumed: %v", value.Residual())
	}
}

func TestEthL2SrcDstSplitsSourceMAC(t *testing.T) {
	mask := &v1alpha1.MatchParam{}
	mask.Outer.SMAC47To16 = 0x11223344
	mask.Outer.SMAC15To0 = 0x5566

	sb := initBuilder(t, v1alpha1.LookupEthL2SrcDst, false, false, mask)
	if got := ethL2SrcDst.SMAC47To32.Get(sb.BitMask[:]); got != 0x1122 {
		t.Errorf("wrong smac_47_32\n got: %#x\nwant: 0x1122\n", got)
	}
	if got := ethL2SrcDst.SMAC31To0.Get(sb.BitMask[:]); got != 0x33445566 {
		t.Errorf("wrong smac_31_0\n got: %#x\nwant: 0x33445566\n", got)
	}
	if !mask.IsZero() {
		t.Errorf("mask not consumed: %v", mask.Residual())
	}
}

func TestVLANQualifierPriority(t *testing.T) {
	tests := []struct {
		name      string
		kind      v1alpha1.LookupName
		qualifier Field
	}{
		{name: "l2 src dst", kind: v1alpha1.LookupEthL2SrcDst, qualifier: ethL2SrcDst.FirstVLANQualifier},
		{name: "l2 src", kind: v1alpha1.LookupEthL2Src, qualifier: ethL2Src.FirstVLANQualifier},
		{name: "l2 dst", kind: v1alpha1.LookupEthL2Dst, qualifier: ethL2Dst.FirstVLANQualifier},
		{name: "l2 tunnel", kind: v1alpha1.LookupEthL2Tunnel, qualifier: ethL2Tunnel.FirstVLANQualifier},
	}
	for _, tt := range tests {
		mask := &v1alpha1.MatchParam{}
		mask.Outer.CVLANTag = 1
		mask.Outer.SVLANTag = 1
		sb := initBuilder(t, tt.kind, false, false, mask)
		if got := tt.qualifier.Get(sb.BitMask[:]); got != 3 {
			t.Errorf("%s: wrong qualifier mask\n got: %d\nwant: 3\n", tt.name, got)
		}

		value := &v1alpha1.MatchParam{}
		value.Outer.CVLANTag = 1
		value.Outer.SVLANTag = 1
		var tag [TagSize]byte
		if err := sb.Tag(value, &tag); err != nil {
			t.Fatalf("%s: tag failed: %v", tt.name, err)
		}
		if got := tt.qualifier.Get(tag[:]); got != steCVLAN {
			t.Errorf("%s: wrong qualifier\n got: %d\nwant: %d\n", tt.name, got, steCVLAN)
		}
		if value.Outer.CVLANTag != 0 {
			t.Errorf("%s: cvlan_tag not consumed", tt.name)
		}

		value = &v1alpha1.MatchParam{}
		value.Outer.SVLANTag = 1
		tag = [TagSize]byte{}
		if err := sb.Tag(value, &tag); err != nil {
			t.Fatalf("%s: tag failed: %v", tt.name, err)
		}
		if got := tt.qualifier.Get(tag[:]); got != steSVLAN {
			t.Errorf("%s: wrong qualifier\n got: %d\nwant: %d\n", tt.name, got, steSVLAN)
		}
	}
}

func TestInvalidIPVersion(t *testing.T) {
	tests := []struct {
		name   string
		kind   v1alpha1.LookupName
		l3Type Field
	}{
		{name: "l2 src dst", kind: v1alpha1.LookupEthL2SrcDst, l3Type: ethL2SrcDst.L3Type},
		{name: "l2 src", kind: v1alpha1.LookupEthL2Src, l3Type: ethL2Src.L3Type},
		{name: "l2 dst", kind: v1alpha1.LookupEthL2Dst, l3Type: ethL2Dst.L3Type},
		{name: "l2 tunnel", kind: v1alpha1.LookupEthL2Tunnel, l3Type: ethL2Tunnel.L3Type},
	}
	for _, tt := range tests {
		mask := &v1alpha1.MatchParam{}
		mask.Outer.IPVersion = 0xf
		sb := initBuilder(t, tt.kind, true, false, mask)

		for _, version := range []uint8{1, 5, 15} {
			value := &v1alpha1.MatchParam{}
			value.Outer.IPVersion = version
			var tag [TagSize]byte
			err := sb.Tag(value, &tag)
			if !errors.Is(err, ErrInvalidIPVersion) {
				t.Errorf("%s: version %d: expected ErrInvalidIPVersion, got %v", tt.name, version, err)
			}
			if got := tt.l3Type.Get(tag[:]); got != 0 {
				t.Errorf("%s: version %d: l3_type written: %d", tt.name, version, got)
			}
			if value.Outer.IPVersion != version {
				t.Errorf("%s: version %d: ip_version consumed", tt.name, version)
			}
		}

		value := &v1alpha1.MatchParam{}
		value.Outer.IPVersion = v1alpha1.IPVersionIPv6
		var tag [TagSize]byte
		if err := sb.Tag(value, &tag); err != nil {
			t.Fatalf("%s: tag failed: %v", tt.name, err)
		}
		if got := tt.l3Type.Get(tag[:]); got != steIPv6 {
			t.Errorf("%s: wrong l3_type\n got: %d\nwant: %d\n", tt.name, got, steIPv6)
		}
	}
}

func TestLookupTypeSelection(t *testing.T) {
	tests := []struct {
		kind             v1alpha1.LookupName
		outer, inner, rx LuType
	}{
		{v1alpha1.LookupEthL2SrcDst, LuTypeEthL2SrcDstO, LuTypeEthL2SrcDstI, LuTypeEthL2SrcDstD},
		{v1alpha1.LookupEthL2Src, LuTypeEthL2SrcO, LuTypeEthL2SrcI, LuTypeEthL2SrcD},
		{v1alpha1.LookupEthL2Dst, LuTypeEthL2DstO, LuTypeEthL2DstI, LuTypeEthL2DstD},
		{v1alpha1.LookupEthL3IPv6Src, LuTypeEthL3IPv6SrcO, LuTypeEthL3IPv6SrcI, LuTypeEthL3IPv6SrcD},
		{v1alpha1.LookupEthL3IPv6Dst, LuTypeEthL3IPv6DstO, LuTypeEthL3IPv6DstI, LuTypeEthL3IPv6DstD},
		{v1alpha1.LookupEthL3IPv4FiveTuple, LuTypeEthL3IPv4FiveTupleO, LuTypeEthL3IPv4FiveTupleI, LuTypeEthL3IPv4FiveTupleD},
		{v1alpha1.LookupEthL3IPv4Misc, LuTypeEthL3IPv4MiscO, LuTypeEthL3IPv4MiscI, LuTypeEthL3IPv4MiscD},
		{v1alpha1.LookupEthIPv6L3L4, LuTypeEthL4O, LuTypeEthL4I, LuTypeEthL4D},
		{v1alpha1.LookupEthL4Misc, LuTypeEthL4MiscO, LuTypeEthL4MiscI, LuTypeEthL4MiscD},
		{v1alpha1.LookupMPLS, LuTypeMPLSFirstO, LuTypeMPLSFirstI, LuTypeMPLSFirstD},
		{v1alpha1.LookupEthL2Tunnel, LuTypeEthL2TunnelingI, LuTypeEthL2TunnelingI, LuTypeEthL2TunnelingI},
		{v1alpha1.LookupTunnelGRE, LuTypeGRE, LuTypeGRE, LuTypeGRE},
		{v1alpha1.LookupTunnelMPLS, LuTypeFlexParser0, LuTypeFlexParser0, LuTypeFlexParser0},
		{v1alpha1.LookupGeneralPurpose, LuTypeGeneralPurpose, LuTypeGeneralPurpose, LuTypeGeneralPurpose},
		{v1alpha1.LookupTunnelVXLANGPE, LuTypeFlexParserTunnelHeader, LuTypeFlexParserTunnelHeader, LuTypeFlexParserTunnelHeader},
		{v1alpha1.LookupTunnelGeneve, LuTypeFlexParserTunnelHeader, LuTypeFlexParserTunnelHeader, LuTypeFlexParserTunnelHeader},
		{v1alpha1.LookupTunnelGTPU, LuTypeFlexParserTunnelHeader, LuTypeFlexParserTunnelHeader, LuTypeFlexParserTunnelHeader},
		{v1alpha1.LookupRegister0, LuTypeSteeringRegisters0, LuTypeSteeringRegisters0, LuTypeSteeringRegisters0},
		{v1alpha1.LookupRegister1, LuTypeSteeringRegisters1, LuTypeSteeringRegisters1, LuTypeSteeringRegisters1},
		{v1alpha1.LookupSrcGVMIQPN, LuTypeSrcGVMIAndQP, LuTypeSrcGVMIAndQP, LuTypeSrcGVMIAndQP},
		{v1alpha1.LookupICMP, LuTypeFlexParser1, LuTypeFlexParser1, LuTypeFlexParser1},
	}
	for _, tt := range tests {
		cases := []struct {
			rx, inner bool
			expected  LuType
		}{
			{false, false, tt.outer},
			{true, false, tt.rx},
			{false, true, tt.inner},
			{true, true, tt.inner},
		}
		for _, c := range cases {
			sb := initBuilder(t, tt.kind, c.rx, c.inner, &v1alpha1.MatchParam{})
			if sb.LuType != c.expected {
				t.Errorf("%s rx=%v inner=%v: wrong lookup type\n got: %s\nwant: %s\n",
					tt.kind, c.rx, c.inner, sb.LuType, c.expected)
			}
		}
	}
}

func TestLuTypeValues(t *testing.T) {
	if LuTypeEthL3IPv4FiveTupleD != 0x20 || LuTypeMPLSFirstI != 0x24 || LuTypeSteeringRegisters1 != 0x30 {
		t.Errorf("lookup type enumeration changed")
	}
	if LuTypeEthL2SrcDstD.String() != "ETHL2_SRC_DST_D" {
		t.Errorf("wrong name %q", LuTypeEthL2SrcDstD.String())
	}
	if LuType(0x7f).String() != "LuType(0x7f)" {
		t.Errorf("wrong name %q", LuType(0x7f).String())
	}
}

func TestEthL2SecondVLAN(t *testing.T) {
	for _, inner := range []bool{false, true} {
		mask := &v1alpha1.MatchParam{}
		value := &v1alpha1.MatchParam{}
		if inner {
			mask.Misc.InnerSecondSVLANTag = 1
			mask.Misc.InnerSecondVID = 0xfff
			value.Misc.InnerSecondSVLANTag = 1
			value.Misc.InnerSecondVID = 100
		} else {
			mask.Misc.OuterSecondSVLANTag = 1
			mask.Misc.OuterSecondVID = 0xfff
			value.Misc.OuterSecondSVLANTag = 1
			value.Misc.OuterSecondVID = 100
		}

		sb := initBuilder(t, v1alpha1.LookupEthL2Src, false, inner, mask)
		if got := ethL2Src.SecondVLANQualifier.Get(sb.BitMask[:]); got != 3 {
			t.Errorf("inner=%v: wrong second qualifier mask %d", inner, got)
		}
		if !mask.IsZero() {
			t.Errorf("inner=%v: mask not consumed: %v", inner, mask.Residual())
		}

		var tag [TagSize]byte
		if err := sb.Tag(value, &tag); err != nil {
			t.Fatalf("inner=%v: tag failed: %v", inner, err)
		}
		if got := ethL2Src.SecondVLANQualifier.Get(tag[:]); got != steSVLAN {
			t.Errorf("inner=%v: wrong second qualifier %d", inner, got)
		}
		if got := ethL2Src.SecondVLANID.Get(tag[:]); got != 100 {
			t.Errorf("inner=%v: wrong second vlan id %d", inner, got)
		}
		if !value.IsZero() {
			t.Errorf("inner=%v: value not consumed: %v", inner, value.Residual())
		}
	}
}

func TestEthL2TunnelNetworkID(t *testing.T) {
	mask := &v1alpha1.MatchParam{}
	mask.Misc.VXLANVNI = 0xffffff
	sb := initBuilder(t, v1alpha1.LookupEthL2Tunnel, true, false, mask)
	if got := ethL2Tunnel.L2TunnelingNetworkID.Get(sb.BitMask[:]); got != 0xffffff00 {
		t.Errorf("wrong network id mask %#x", got)
	}

	value := &v1alpha1.MatchParam{}
	value.Misc.VXLANVNI = 0x123456
	var tag [TagSize]byte
	if err := sb.Tag(value, &tag); err != nil {
		t.Fatalf("tag failed: %v", err)
	}
	if got := ethL2Tunnel.L2TunnelingNetworkID.Get(tag[:]); got != 0x12345600 {
		t.Errorf("wrong network id\n got: %#x\nwant: 0x12345600\n", got)
	}
}

func TestIPv4FiveTuple(t *testing.T) {
	mask := &v1alpha1.MatchParam{}
	mask.Inner.DstIP31To0 = 0xffffffff
	mask.Inner.UDPDport = 0xffff
	mask.Inner.IPProtocol = 0xff
	mask.Inner.TCPFlags = 0x1ff
	mask.Inner.IPDSCP = 0x3f

	sb := initBuilder(t, v1alpha1.LookupEthL3IPv4FiveTuple, true, true, mask)
	if sb.LuType != LuTypeEthL3IPv4FiveTupleI {
		t.Errorf("wrong lookup type %s", sb.LuType)
	}

	value := &v1alpha1.MatchParam{}
	value.Inner.DstIP31To0 = 0x0a000001
	value.Inner.UDPDport = 4789
	value.Inner.IPProtocol = 17
	value.Inner.TCPFlags = 0x012
	value.Inner.IPDSCP = 46
	var tag [TagSize]byte
	if err := sb.Tag(value, &tag); err != nil {
		t.Fatalf("tag failed: %v", err)
	}

	l := &ethL3IPv4FiveTuple
	got := map[string]uint32{
		"destination_address": l.DestinationAddress.Get(tag[:]),
		"destination_port":    l.DestinationPort.Get(tag[:]),
		"protocol":            l.Protocol.Get(tag[:]),
		"tcp_flags":           l.TCPFlags.Get(tag[:]),
		"dscp":                l.DSCP.Get(tag[:]),
		"source_port":         l.SourcePort.Get(tag[:]),
	}
	expected := map[string]uint32{
		"destination_address": 0x0a000001,
		"destination_port":    4789,
		"protocol":            17,
		"tcp_flags":           0x012,
		"dscp":                46,
		"source_port":         0,
	}
	for name, want := range expected {
		if got[name] != want {
			t.Errorf("%s\n got: %#x\nwant: %#x\n", name, got[name], want)
		}
	}
	if !value.IsZero() {
		t.Errorf("value not consumed: %v", value.Residual())
	}
}

func TestIPv6L3L4FlowLabel(t *testing.T) {
	for _, inner := range []bool{false, true} {
		mask := &v1alpha1.MatchParam{}
		if inner {
			mask.Misc.InnerIPv6FlowLabel = 0xfffff
		} else {
			mask.Misc.OuterIPv6FlowLabel = 0xfffff
		}
		mask.Spec(inner).IPTTLHoplimit = 0xff

		sb := initBuilder(t, v1alpha1.LookupEthIPv6L3L4, false, inner, mask)
		if got := ethL4.FlowLabel.Get(sb.BitMask[:]); got != 0xfffff {
			t.Errorf("inner=%v: wrong flow label mask %#x", inner, got)
		}
		if got := ethL4.IPv6HopLimit.Get(sb.BitMask[:]); got != 0xff {
			t.Errorf("inner=%v: wrong hop limit mask %#x", inner, got)
		}
		if !mask.IsZero() {
			t.Errorf("inner=%v: mask not consumed: %v", inner, mask.Residual())
		}
	}
}

func TestTunnelMPLSPrefersGRE(t *testing.T) {
	mask := &v1alpha1.MatchParam{}
	mask.Misc2.OuterFirstMPLSOverGRELabel = 0xfffff
	mask.Misc2.OuterFirstMPLSOverUDPLabel = 0xfffff

	sb := initBuilder(t, v1alpha1.LookupTunnelMPLS, false, false, mask)
	if mask.Misc2.OuterFirstMPLSOverGRELabel != 0 {
		t.Errorf("over gre label not consumed")
	}
	if mask.Misc2.OuterFirstMPLSOverUDPLabel == 0 {
		t.Errorf("over udp label consumed")
	}

	value := &v1alpha1.MatchParam{}
	value.Misc2.OuterFirstMPLSOverUDPLabel = 16
	value.Misc2.OuterFirstMPLSOverUDPTTL = 64
	var tag [TagSize]byte
	if err := sb.Tag(value, &tag); err != nil {
		t.Fatalf("tag failed: %v", err)
	}
	if got := flexParser0.Parser3Label.Get(tag[:]); got != 16 {
		t.Errorf("wrong label %d", got)
	}
	if got := flexParser0.Parser3TTL.Get(tag[:]); got != 64 {
		t.Errorf("wrong ttl %d", got)
	}
}

func TestICMPFamilyFromMask(t *testing.T) {
	mask := &v1alpha1.MatchParam{}
	mask.Misc3.ICMPv4Type = 0xff
	mask.Misc3.ICMPv4Code = 0xff
	sb := initBuilder(t, v1alpha1.LookupICMP, false, false, mask)
	if got := flexParser1.FlexParser4.Get(sb.BitMask[:]); got != 0xffff0000 {
		t.Errorf("wrong flex_parser_4 mask %#x", got)
	}

	// Echo reply is type 0 code 0: nothing to write, family stays v4.
	value := &v1alpha1.MatchParam{}
	var tag [TagSize]byte
	if err := sb.Tag(value, &tag); err != nil {
		t.Fatalf("tag failed: %v", err)
	}
	if tag != [TagSize]byte{} {
		t.Errorf("unexpected tag % x", tag)
	}
	if sb.icmp != ICMPv4 {
		t.Errorf("wrong family %s", sb.icmp)
	}

	value.Misc3.ICMPv4Type = 3
	value.Misc3.ICMPv4Code = 1
	if err := sb.Tag(value, &tag); err != nil {
		t.Fatalf("tag failed: %v", err)
	}
	if got := flexParser1.FlexParser4.Get(tag[:]); got != 0x03010000 {
		t.Errorf("wrong flex_parser_4\n got: %#x\nwant: 0x3010000\n", got)
	}
}

func TestSrcGVMIQPNWithoutGVMIMask(t *testing.T) {
	mask := &v1alpha1.MatchParam{}
	mask.Misc.SourceSQN = 0xffffff
	sb := initBuilder(t, v1alpha1.LookupSrcGVMIQPN, false, false, mask)

	value := &v1alpha1.MatchParam{}
	value.Misc.SourceSQN = 7
	value.Misc.SourcePort = 99
	var tag [TagSize]byte
	if err := sb.Tag(value, &tag); err != nil {
		t.Fatalf("tag failed: %v", err)
	}
	if got := srcGVMIQP.SourceQP.Get(tag[:]); got != 7 {
		t.Errorf("wrong source_qp %d", got)
	}
	if value.Misc.SourcePort != 99 {
		t.Errorf("source_port consumed without a gvmi mask")
	}
}

// fullMatch sets every field of p to its all-ones value.
func fullMatch() *v1alpha1.MatchParam {
	p := &v1alpha1.MatchParam{}
	for _, s := range []*v1alpha1.MatchSpec{&p.Outer, &p.Inner} {
		s.SMAC47To16, s.SMAC15To0, s.DMAC47To16, s.DMAC15To0 = 0xffffffff, 0xffff, 0xffffffff, 0xffff
		s.Ethertype, s.FirstVID, s.FirstCFI, s.FirstPrio = 0xffff, 0xfff, 1, 7
		s.TCPFlags, s.IPVersion, s.Frag, s.SVLANTag, s.CVLANTag = 0x1ff, 0xf, 1, 1, 1
		s.IPECN, s.IPDSCP, s.IPProtocol, s.IPTTLHoplimit = 3, 0x3f, 0xff, 0xff
		s.TCPDport, s.TCPSport, s.UDPDport, s.UDPSport = 0xffff, 0xffff, 0xffff, 0xffff
		s.SrcIP127To96, s.SrcIP95To64, s.SrcIP63To32, s.SrcIP31To0 = 0xffffffff, 0xffffffff, 0xffffffff, 0xffffffff
		s.DstIP127To96, s.DstIP95To64, s.DstIP63To32, s.DstIP31To0 = 0xffffffff, 0xffffffff, 0xffffffff, 0xffffffff
	}
	p.Misc.VXLANVNI, p.Misc.GREProtocol, p.Misc.GREKeyH, p.Misc.GREKeyL = 0xffffff, 0xffff, 0xffffff, 0xff
	p.Misc.GeneveVNI, p.Misc.GeneveOAM, p.Misc.GeneveOptLen, p.Misc.GeneveProtocolType = 0xffffff, 1, 0x3f, 0xffff
	p.Misc.OuterIPv6FlowLabel, p.Misc.InnerIPv6FlowLabel = 0xfffff, 0xfffff
	p.Misc.SourceSQN = 0xffffff
	p.Misc2.OuterFirstMPLSLabel, p.Misc2.InnerFirstMPLSLabel = 0xfffff, 0xfffff
	p.Misc2.OuterFirstMPLSOverGRELabel = 0xfffff
	p.Misc2.MetadataRegA, p.Misc2.MetadataRegC0, p.Misc2.MetadataRegC7 = 0xffffffff, 0xffffffff, 0xffffffff
	p.Misc3.OuterTCPSeqNum, p.Misc3.InnerTCPAckNum = 0xffffffff, 0xffffffff
	p.Misc3.OuterVXLANGPEVNI, p.Misc3.GTPUTEID, p.Misc3.GTPUFlags = 0xffffff, 0xffffffff, 7
	p.Misc3.ICMPv4Type, p.Misc3.ICMPv4Code, p.Misc3.ICMPv4HeaderData = 0xff, 0xff, 0xffffffff
	return p
}

func TestByteMaskMatchesBitMask(t *testing.T) {
	for _, kind := range v1alpha1.LookupNames() {
		for _, inner := range []bool{false, true} {
			sb := initBuilder(t, kind, true, inner, fullMatch())
			for i := range sb.BitMask {
				want := byte(0)
				if sb.BitMask[i] != 0 {
					want = 0xff
				}
				if sb.ByteMask[i] != want {
					t.Errorf("%s inner=%v: byte %d\n got: %#x\nwant: %#x\n", kind, inner, i, sb.ByteMask[i], want)
				}
			}
			if sb.BitMask == [TagSize]byte{} {
				t.Errorf("%s inner=%v: empty bit mask", kind, inner)
			}
		}
	}
}

func TestTagIsIdempotent(t *testing.T) {
	for _, kind := range v1alpha1.LookupNames() {
		if kind == v1alpha1.LookupSrcGVMIQPN {
			continue
		}
		sb := initBuilder(t, kind, false, false, fullMatch())

		value := fullMatch()
		value.Outer.IPVersion = v1alpha1.IPVersionIPv4
		value.Inner.IPVersion = v1alpha1.IPVersionIPv6
		value.Outer.SVLANTag = 0
		var tag [TagSize]byte
		if err := sb.Tag(value, &tag); err != nil {
			t.Fatalf("%s: tag failed: %v", kind, err)
		}
		first := tag
		if err := sb.Tag(value, &tag); err != nil {
			t.Fatalf("%s: second tag failed: %v", kind, err)
		}
		if tag != first {
			t.Errorf("%s: second pass changed the tag\n got: % x\nwant: % x\n", kind, tag, first)
		}
		for i := range tag {
			if tag[i]&^sb.BitMask[i] != 0 {
				t.Errorf("%s: tag byte %d outside of the bit mask", kind, i)
			}
		}
	}
}

func TestGetContext(t *testing.T) {
	ctx, err := GetContext(0)
	if err != nil {
		t.Fatalf("version 0: %v", err)
	}
	if ctx.Version() != 0 {
		t.Errorf("wrong version %d", ctx.Version())
	}
	for _, kind := range v1alpha1.LookupNames() {
		if !ctx.Supports(kind) {
			t.Errorf("%s not supported", kind)
		}
		if _, ok := LayoutOf(kind); !ok {
			t.Errorf("%s has no layout", kind)
		}
	}
	if ctx.Supports("eth_l5") {
		t.Errorf("unknown lookup supported")
	}

	if _, err := GetContext(1); !errors.Is(err, ErrUnsupportedVersion) {
		t.Errorf("version 1: expected ErrUnsupportedVersion, got %v", err)
	}

	sb := NewBuilder("eth_l5", testCaps, false, false)
	if err := ctx.Init(sb, &v1alpha1.MatchParam{}); !errors.Is(err, ErrUnsupportedLookup) {
		t.Errorf("expected ErrUnsupportedLookup, got %v", err)
	}
	if err := sb.Tag(&v1alpha1.MatchParam{}, &[TagSize]byte{}); !errors.Is(err, ErrUnsupportedLookup) {
		t.Errorf("expected ErrUnsupportedLookup from an uninitialized builder, got %v", err)
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		err      error
		expected string
	}{
		{errors.Wrapf(ErrInvalidIPVersion, "ip_version %d", 5), "invalid_ip_version"},
		{errors.Wrap(errors.Wrap(ErrVportLookupFailed, "inner"), "outer"), "vport_lookup_failed"},
		{ErrUnsupportedCapabilitySlot, "unsupported_capability_slot"},
		{errors.New("boom"), "unknown"},
	}
	for _, tt := range tests {
		if got := KindOf(tt.err); got != tt.expected {
			t.Errorf("%v\n got: %s\nwant: %s\n", tt.err, got, tt.expected)
		}
	}
}

func TestLayoutDecode(t *testing.T) {
	var tag [TagSize]byte
	ethL2SrcDst.DMAC47To16.Set(tag[:], 0x0102)
	ethL2SrcDst.L3Type.Set(tag[:], steIPv4)

	l, ok := LayoutOf(v1alpha1.LookupEthL2SrcDst)
	if !ok {
		t.Fatalf("no layout")
	}
	got := l.Decode(tag[:])
	if len(got) != 2 || got["dmac_47_16"] != 0x0102 || got["l3_type"] != steIPv4 {
		t.Errorf("wrong decode %v", got)
	}
}

func TestEncoderFieldPositions(t *testing.T) {
	tests := []struct {
		kind   v1alpha1.LookupName
		rx     bool
		inner  bool
		luType LuType
		set    func(p *v1alpha1.MatchParam)
		fields map[string]uint32
		// tag, when set, is the whole expected record.
		tag *[TagSize]byte
	}{
		{
			kind:   v1alpha1.LookupEthL3IPv6Src,
			inner:  true,
			luType: LuTypeEthL3IPv6SrcI,
			set: func(p *v1alpha1.MatchParam) {
				p.Inner.SrcIP127To96, p.Inner.SrcIP95To64, p.Inner.SrcIP63To32, p.Inner.SrcIP31To0 = 0x20010db8, 1, 2, 3
			},
			fields: map[string]uint32{"src_ip_127_96": 0x20010db8, "src_ip_95_64": 1, "src_ip_63_32": 2, "src_ip_31_0": 3},
			tag:    &[TagSize]byte{0x20, 0x01, 0x0d, 0xb8, 0, 0, 0, 1, 0, 0, 0, 2, 0, 0, 0, 3},
		},
		{
			kind:   v1alpha1.LookupEthL3IPv6Dst,
			luType: LuTypeEthL3IPv6DstO,
			set: func(p *v1alpha1.MatchParam) {
				p.Outer.DstIP127To96, p.Outer.DstIP95To64, p.Outer.DstIP63To32, p.Outer.DstIP31To0 = 0xfe800000, 4, 5, 6
			},
			fields: map[string]uint32{"dst_ip_127_96": 0xfe800000, "dst_ip_95_64": 4, "dst_ip_63_32": 5, "dst_ip_31_0": 6},
		},
		{
			kind:   v1alpha1.LookupEthL3IPv4Misc,
			rx:     true,
			luType: LuTypeEthL3IPv4MiscD,
			set: func(p *v1alpha1.MatchParam) {
				p.Outer.IPTTLHoplimit = 64
			},
			fields: map[string]uint32{"time_to_live": 64},
			tag:    &[TagSize]byte{8: 64},
		},
		{
			kind:   v1alpha1.LookupEthL4Misc,
			luType: LuTypeEthL4MiscO,
			set: func(p *v1alpha1.MatchParam) {
				p.Misc3.OuterTCPSeqNum, p.Misc3.OuterTCPAckNum = 0x01020304, 0x05060708
			},
			fields: map[string]uint32{"seq_num": 0x01020304, "ack_num": 0x05060708},
			tag:    &[TagSize]byte{4: 1, 2, 3, 4, 5, 6, 7, 8},
		},
		{
			kind:   v1alpha1.LookupEthL4Misc,
			inner:  true,
			luType: LuTypeEthL4MiscI,
			set: func(p *v1alpha1.MatchParam) {
				p.Misc3.InnerTCPSeqNum, p.Misc3.InnerTCPAckNum = 9, 10
			},
			fields: map[string]uint32{"seq_num": 9, "ack_num": 10},
		},
		{
			kind:   v1alpha1.LookupMPLS,
			inner:  true,
			luType: LuTypeMPLSFirstI,
			set: func(p *v1alpha1.MatchParam) {
				m := &p.Misc2
				m.InnerFirstMPLSLabel, m.InnerFirstMPLSExp, m.InnerFirstMPLSSBos, m.InnerFirstMPLSTTL = 0x12345, 5, 1, 64
			},
			fields: map[string]uint32{"mpls0_label": 0x12345, "mpls0_exp": 5, "mpls0_s_bos": 1, "mpls0_ttl": 64},
			tag:    &[TagSize]byte{0x12, 0x34, 0x5b, 0x40},
		},
		{
			kind:   v1alpha1.LookupTunnelGRE,
			luType: LuTypeGRE,
			set: func(p *v1alpha1.MatchParam) {
				m := &p.Misc
				m.GREProtocol, m.GREKeyH, m.GREKeyL = 0x6558, 0xabcdef, 0x12
				m.GRECPresent, m.GREKPresent, m.GRESPresent = 1, 1, 1
			},
			fields: map[string]uint32{
				"gre_protocol": 0x6558, "gre_key_h": 0xabcdef, "gre_key_l": 0x12,
				"gre_c_present": 1, "gre_k_present": 1, "gre_s_present": 1,
			},
			tag: &[TagSize]byte{0xb0, 0x00, 0x65, 0x58, 8: 0xab, 0xcd, 0xef, 0x12},
		},
		{
			kind:   v1alpha1.LookupTunnelGeneve,
			luType: LuTypeFlexParserTunnelHeader,
			set: func(p *v1alpha1.MatchParam) {
				m := &p.Misc
				m.GeneveProtocolType, m.GeneveOAM, m.GeneveOptLen, m.GeneveVNI = 0x6558, 1, 3, 0x123456
			},
			fields: map[string]uint32{"geneve_protocol_type": 0x6558, "geneve_oam": 1, "geneve_opt_len": 3, "geneve_vni": 0x123456},
			tag:    &[TagSize]byte{0x03, 0x80, 0x65, 0x58, 0x12, 0x34, 0x56},
		},
		{
			kind:   v1alpha1.LookupTunnelGTPU,
			luType: LuTypeFlexParserTunnelHeader,
			set: func(p *v1alpha1.MatchParam) {
				p.Misc3.GTPUFlags, p.Misc3.GTPUMsgType, p.Misc3.GTPUTEID = 7, 0xff, 0x11223344
			},
			fields: map[string]uint32{"gtpu_flags": 7, "gtpu_msg_type": 0xff, "gtpu_teid": 0x11223344},
			tag:    &[TagSize]byte{0x07, 0xff, 0x00, 0x00, 0x11, 0x22, 0x33, 0x44},
		},
		{
			kind:   v1alpha1.LookupTunnelVXLANGPE,
			luType: LuTypeFlexParserTunnelHeader,
			set: func(p *v1alpha1.MatchParam) {
				m := &p.Misc3
				m.OuterVXLANGPEFlags, m.OuterVXLANGPENextProtocol, m.OuterVXLANGPEVNI = 0x0c, 3, 0xabcdef
			},
			fields: map[string]uint32{"outer_vxlan_gpe_flags": 0x0c, "outer_vxlan_gpe_next_protocol": 3, "outer_vxlan_gpe_vni": 0xabcdef},
			tag:    &[TagSize]byte{0x0c, 0x00, 0x00, 0x03, 0xab, 0xcd, 0xef},
		},
		{
			kind:   v1alpha1.LookupRegister0,
			luType: LuTypeSteeringRegisters0,
			set: func(p *v1alpha1.MatchParam) {
				m := &p.Misc2
				m.MetadataRegC0, m.MetadataRegC1, m.MetadataRegC2, m.MetadataRegC3 = 1, 2, 3, 4
			},
			fields: map[string]uint32{"register_0_h": 1, "register_0_l": 2, "register_1_h": 3, "register_1_l": 4},
			tag:    &[TagSize]byte{3: 1, 7: 2, 11: 3, 15: 4},
		},
		{
			kind:   v1alpha1.LookupRegister1,
			luType: LuTypeSteeringRegisters1,
			set: func(p *v1alpha1.MatchParam) {
				m := &p.Misc2
				m.MetadataRegC4, m.MetadataRegC5, m.MetadataRegC6, m.MetadataRegC7 = 5, 6, 7, 8
			},
			fields: map[string]uint32{"register_2_h": 5, "register_2_l": 6, "register_3_h": 7, "register_3_l": 8},
			tag:    &[TagSize]byte{3: 5, 7: 6, 11: 7, 15: 8},
		},
		{
			kind:   v1alpha1.LookupGeneralPurpose,
			luType: LuTypeGeneralPurpose,
			set: func(p *v1alpha1.MatchParam) {
				p.Misc2.MetadataRegA = 0xdeadbeef
			},
			fields: map[string]uint32{"general_purpose_lookup_field": 0xdeadbeef},
			tag:    &[TagSize]byte{0xde, 0xad, 0xbe, 0xef},
		},
	}

	for _, tt := range tests {
		name := fmt.Sprintf("%s inner=%v rx=%v", tt.kind, tt.inner, tt.rx)
		layout, ok := LayoutOf(tt.kind)
		if !ok {
			t.Fatalf("%s: no layout", name)
		}

		value := &v1alpha1.MatchParam{}
		tt.set(value)
		mask := value.ExactMask()
		sb := initBuilder(t, tt.kind, tt.rx, tt.inner, mask)
		if sb.LuType != tt.luType {
			t.Errorf("%s: wrong lookup type\n got: %s\nwant: %s\n", name, sb.LuType, tt.luType)
		}
		if !mask.IsZero() {
			t.Errorf("%s: mask not consumed: %v", name, mask.Residual())
		}

		expectedMask := map[string]uint32{}
		for _, f := range layout {
			if _, ok := tt.fields[f.Name]; ok {
				expectedMask[f.Name] = f.Ones()
			}
		}
		if got := layout.Decode(sb.BitMask[:]); !reflect.DeepEqual(got, expectedMask) {
			t.Errorf("%s: wrong bit mask\n got: %v\nwant: %v\n", name, got, expectedMask)
		}

		var tag [TagSize]byte
		if err := sb.Tag(value, &tag); err != nil {
			t.Fatalf("%s: tag failed: %v", name, err)
		}
		if got := layout.Decode(tag[:]); !reflect.DeepEqual(got, tt.fields) {
			t.Errorf("%s: wrong tag fields\n got: %v\nwant: %v\n", name, got, tt.fields)
		}
		if tt.tag != nil && tag != *tt.tag {
			t.Errorf("%s: wrong tag\n got: % x\nwant: % x\n", name, tag, *tt.tag)
		}
		if !value.IsZero() {
			t.Errorf("%s: value not consumed: %v", name, value.Residual())
		}
	}
}
