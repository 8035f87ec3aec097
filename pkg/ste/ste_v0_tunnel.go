package ste

import (
	"github.com/openshift/ste-codec/api/v1alpha1"
)

func v0MPLSTag(value *v1alpha1.MatchParam, sb *Builder, tag []byte) error {
	misc2 := &value.Misc2

	if sb.Inner {
		SetTag(tag, mpls.Label, &misc2.InnerFirstMPLSLabel)
		SetTag(tag, mpls.SBos, &misc2.InnerFirstMPLSSBos)
		SetTag(tag, mpls.Exp, &misc2.InnerFirstMPLSExp)
		SetTag(tag, mpls.TTL, &misc2.InnerFirstMPLSTTL)
	} else {
		SetTag(tag, mpls.Label, &misc2.OuterFirstMPLSLabel)
		SetTag(tag, mpls.SBos, &misc2.OuterFirstMPLSSBos)
		SetTag(tag, mpls.Exp, &misc2.OuterFirstMPLSExp)
		SetTag(tag, mpls.TTL, &misc2.OuterFirstMPLSTTL)
	}
	return nil
}

func v0MPLSInit(sb *Builder, mask *v1alpha1.MatchParam) error {
	return initSymmetric(sb, mask, luMPLSFirst.pick(sb.Rx, sb.Inner), v0MPLSTag)
}

func v0TunnelGRETag(value *v1alpha1.MatchParam, sb *Builder, tag []byte) error {
	misc := &value.Misc

	SetTag(tag, gre.Protocol, &misc.GREProtocol)
	SetTag(tag, gre.KPresent, &misc.GREKPresent)
	SetTag(tag, gre.KeyH, &misc.GREKeyH)
	SetTag(tag, gre.KeyL, &misc.GREKeyL)
	SetTag(tag, gre.CPresent, &misc.GRECPresent)
	SetTag(tag, gre.SPresent, &misc.GRESPresent)
	return nil
}

func v0TunnelGREInit(sb *Builder, mask *v1alpha1.MatchParam) error {
	return initSymmetric(sb, mask, LuTypeGRE, v0TunnelGRETag)
}

func mplsOverGRESet(misc2 *v1alpha1.MatchMisc2) bool {
	return misc2.OuterFirstMPLSOverGRELabel != 0 || misc2.OuterFirstMPLSOverGREExp != 0 ||
		misc2.OuterFirstMPLSOverGRESBos != 0 || misc2.OuterFirstMPLSOverGRETTL != 0
}

// v0TunnelMPLSTag matches the first label after a GRE or UDP tunnel header
// through flex parser 3. MPLS over GRE wins when both are present.
func v0TunnelMPLSTag(value *v1alpha1.MatchParam, sb *Builder, tag []byte) error {
	misc2 := &value.Misc2
	l := &flexParser0

	if mplsOverGRESet(misc2) {
		SetTag(tag, l.Parser3Label, &misc2.OuterFirstMPLSOverGRELabel)
		SetTag(tag, l.Parser3Exp, &misc2.OuterFirstMPLSOverGREExp)
		SetTag(tag, l.Parser3SBos, &misc2.OuterFirstMPLSOverGRESBos)
		SetTag(tag, l.Parser3TTL, &misc2.OuterFirstMPLSOverGRETTL)
	} else {
		SetTag(tag, l.Parser3Label, &misc2.OuterFirstMPLSOverUDPLabel)
		SetTag(tag, l.Parser3Exp, &misc2.OuterFirstMPLSOverUDPExp)
		SetTag(tag, l.Parser3SBos, &misc2.OuterFirstMPLSOverUDPSBos)
		SetTag(tag, l.Parser3TTL, &misc2.OuterFirstMPLSOverUDPTTL)
	}
	return nil
}

func v0TunnelMPLSInit(sb *Builder, mask *v1alpha1.MatchParam) error {
	return initSymmetric(sb, mask, LuTypeFlexParser0, v0TunnelMPLSTag)
}

func v0TunnelVXLANGPETag(value *v1alpha1.MatchParam, sb *Builder, tag []byte) error {
	misc3 := &value.Misc3

	SetTag(tag, tunnelVXLANGPE.Flags, &misc3.OuterVXLANGPEFlags)
	SetTag(tag, tunnelVXLANGPE.NextProtocol, &misc3.OuterVXLANGPENextProtocol)
	SetTag(tag, tunnelVXLANGPE.VNI, &misc3.OuterVXLANGPEVNI)
	return nil
}

func v0TunnelVXLANGPEInit(sb *Builder, mask *v1alpha1.MatchParam) error {
	return initSymmetric(sb, mask, LuTypeFlexParserTunnelHeader, v0TunnelVXLANGPETag)
}

func v0TunnelGeneveTag(value *v1alpha1.MatchParam, sb *Builder, tag []byte) error {
	misc := &value.Misc

	SetTag(tag, tunnelGeneve.ProtocolType, &misc.GeneveProtocolType)
	SetTag(tag, tunnelGeneve.OAM, &misc.GeneveOAM)
	SetTag(tag, tunnelGeneve.OptLen, &misc.GeneveOptLen)
	SetTag(tag, tunnelGeneve.VNI, &misc.GeneveVNI)
	return nil
}

func v0TunnelGeneveInit(sb *Builder, mask *v1alpha1.MatchParam) error {
	return initSymmetric(sb, mask, LuTypeFlexParserTunnelHeader, v0TunnelGeneveTag)
}

func v0TunnelGTPUTag(value *v1alpha1.MatchParam, sb *Builder, tag []byte) error {
	misc3 := &value.Misc3

	SetTag(tag, tunnelGTPU.Flags, &misc3.GTPUFlags)
	SetTag(tag, tunnelGTPU.MsgType, &misc3.GTPUMsgType)
	SetTag(tag, tunnelGTPU.TEID, &misc3.GTPUTEID)
	return nil
}

func v0TunnelGTPUInit(sb *Builder, mask *v1alpha1.MatchParam) error {
	return initSymmetric(sb, mask, LuTypeFlexParserTunnelHeader, v0TunnelGTPUTag)
}
