package ste

import "fmt"

// LuType is the hardware lookup type of an STE. The values are the v0
// device enumeration.
type LuType uint16

const (
	LuTypeNOP                    LuType = 0x00
	LuTypeSrcGVMIAndQP           LuType = 0x05
	LuTypeEthL2TunnelingI        LuType = 0x0a
	LuTypeEthL2DstO              LuType = 0x06
	LuTypeEthL2DstI              LuType = 0x07
	LuTypeEthL2DstD              LuType = 0x1b
	LuTypeEthL2SrcO              LuType = 0x08
	LuTypeEthL2SrcI              LuType = 0x09
	LuTypeEthL2SrcD              LuType = 0x1c
	LuTypeEthL2SrcDstO           LuType = 0x36
	LuTypeEthL2SrcDstI           LuType = 0x37
	LuTypeEthL2SrcDstD           LuType = 0x38
	LuTypeEthL3IPv6DstO          LuType = 0x0d
	LuTypeEthL3IPv6DstI          LuType = 0x0e
	LuTypeEthL3IPv6DstD          LuType = 0x1e
	LuTypeEthL3IPv6SrcO          LuType = 0x0f
	LuTypeEthL3IPv6SrcI          LuType = 0x10
	LuTypeEthL3IPv6SrcD          LuType = 0x1f
	LuTypeEthL3IPv4FiveTupleO    LuType = 0x11
	LuTypeEthL3IPv4FiveTupleI    LuType = 0x12
	LuTypeEthL3IPv4FiveTupleD    LuType = 0x20
	LuTypeEthL3IPv4MiscO         LuType = 0x29
	LuTypeEthL3IPv4MiscI         LuType = 0x2a
	LuTypeEthL3IPv4MiscD         LuType = 0x2b
	LuTypeEthL4O                 LuType = 0x13
	LuTypeEthL4I                 LuType = 0x14
	LuTypeEthL4D                 LuType = 0x21
	LuTypeEthL4MiscO             LuType = 0x2c
	LuTypeEthL4MiscI             LuType = 0x2d
	LuTypeEthL4MiscD             LuType = 0x2e
	LuTypeMPLSFirstO             LuType = 0x15
	LuTypeMPLSFirstI             LuType = 0x24
	LuTypeMPLSFirstD             LuType = 0x25
	LuTypeGRE                    LuType = 0x16
	LuTypeFlexParser0            LuType = 0x22
	LuTypeFlexParser1            LuType = 0x23
	LuTypeFlexParserTunnelHeader LuType = 0x19
	LuTypeGeneralPurpose         LuType = 0x18
	LuTypeSteeringRegisters0     LuType = 0x2f
	LuTypeSteeringRegisters1     LuType = 0x30
	// LuTypeDontCare shares its value with LuTypeEthL3IPv6SrcO.
	LuTypeDontCare               LuType = 0x0f
)

// luTypeSet is a lookup type that exists as outer, inner and
// outer-on-receive (decap) variants.
type luTypeSet struct {
	outer, inner, rx LuType
}

// pick selects the inner variant first, then the receive variant.
func (s luTypeSet) pick(rx, inner bool) LuType {
	switch {
	case inner:
		return s.inner
	case rx:
		return s.rx
	default:
		return s.outer
	}
}

var (
	luEthL2Dst           = luTypeSet{LuTypeEthL2DstO, LuTypeEthL2DstI, LuTypeEthL2DstD}
	luEthL2Src           = luTypeSet{LuTypeEthL2SrcO, LuTypeEthL2SrcI, LuTypeEthL2SrcD}
	luEthL2SrcDst        = luTypeSet{LuTypeEthL2SrcDstO, LuTypeEthL2SrcDstI, LuTypeEthL2SrcDstD}
	luEthL3IPv6Dst       = luTypeSet{LuTypeEthL3IPv6DstO, LuTypeEthL3IPv6DstI, LuTypeEthL3IPv6DstD}
	luEthL3IPv6Src       = luTypeSet{LuTypeEthL3IPv6SrcO, LuTypeEthL3IPv6SrcI, LuTypeEthL3IPv6SrcD}
	luEthL3IPv4FiveTuple = luTypeSet{LuTypeEthL3IPv4FiveTupleO, LuTypeEthL3IPv4FiveTupleI, LuTypeEthL3IPv4FiveTupleD}
	luEthL3IPv4Misc      = luTypeSet{LuTypeEthL3IPv4MiscO, LuTypeEthL3IPv4MiscI, LuTypeEthL3IPv4MiscD}
	luEthL4              = luTypeSet{LuTypeEthL4O, LuTypeEthL4I, LuTypeEthL4D}
	luEthL4Misc          = luTypeSet{LuTypeEthL4MiscO, LuTypeEthL4MiscI, LuTypeEthL4MiscD}
	luMPLSFirst          = luTypeSet{LuTypeMPLSFirstO, LuTypeMPLSFirstI, LuTypeMPLSFirstD}
)

var luTypeNames = map[LuType]string{
	LuTypeNOP:                    "NOP",
	LuTypeSrcGVMIAndQP:           "SRC_GVMI_AND_QP",
	LuTypeEthL2TunnelingI:        "ETHL2_TUNNELING_I",
	LuTypeEthL2DstO:              "ETHL2_DST_O",
	LuTypeEthL2DstI:              "ETHL2_DST_I",
	LuTypeEthL2DstD:              "ETHL2_DST_D",
	LuTypeEthL2SrcO:              "ETHL2_SRC_O",
	LuTypeEthL2SrcI:              "ETHL2_SRC_I",
	LuTypeEthL2SrcD:              "ETHL2_SRC_D",
	LuTypeEthL2SrcDstO:           "ETHL2_SRC_DST_O",
	LuTypeEthL2SrcDstI:           "ETHL2_SRC_DST_I",
	LuTypeEthL2SrcDstD:           "ETHL2_SRC_DST_D",
	LuTypeEthL3IPv6DstO:          "ETHL3_IPV6_DST_O",
	LuTypeEthL3IPv6DstI:          "ETHL3_IPV6_DST_I",
	LuTypeEthL3IPv6DstD:          "ETHL3_IPV6_DST_D",
	LuTypeEthL3IPv6SrcO:          "ETHL3_IPV6_SRC_O",
	LuTypeEthL3IPv6SrcI:          "ETHL3_IPV6_SRC_I",
	LuTypeEthL3IPv6SrcD:          "ETHL3_IPV6_SRC_D",
	LuTypeEthL3IPv4FiveTupleO:    "ETHL3_IPV4_5_TUPLE_O",
	LuTypeEthL3IPv4FiveTupleI:    "ETHL3_IPV4_5_TUPLE_I",
	LuTypeEthL3IPv4FiveTupleD:    "ETHL3_IPV4_5_TUPLE_D",
	LuTypeEthL3IPv4MiscO:         "ETHL3_IPV4_MISC_O",
	LuTypeEthL3IPv4MiscI:         "ETHL3_IPV4_MISC_I",
	LuTypeEthL3IPv4MiscD:         "ETHL3_IPV4_MISC_D",
	LuTypeEthL4O:                 "ETHL4_O",
	LuTypeEthL4I:                 "ETHL4_I",
	LuTypeEthL4D:                 "ETHL4_D",
	LuTypeEthL4MiscO:             "ETHL4_MISC_O",
	LuTypeEthL4MiscI:             "ETHL4_MISC_I",
	LuTypeEthL4MiscD:             "ETHL4_MISC_D",
	LuTypeMPLSFirstO:             "MPLS_FIRST_O",
	LuTypeMPLSFirstI:             "MPLS_FIRST_I",
	LuTypeMPLSFirstD:             "MPLS_FIRST_D",
	LuTypeGRE:                    "GRE",
	LuTypeFlexParser0:            "FLEX_PARSER_0",
	LuTypeFlexParser1:            "FLEX_PARSER_1",
	LuTypeFlexParserTunnelHeader: "FLEX_PARSER_TNL_HEADER",
	LuTypeGeneralPurpose:         "GENERAL_PURPOSE",
	LuTypeSteeringRegisters0:     "STEERING_REGISTERS_0",
	LuTypeSteeringRegisters1:     "STEERING_REGISTERS_1",
}

func (t LuType) String() string {
	if name, ok := luTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("LuType(%#x)", uint16(t))
}
