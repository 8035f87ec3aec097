package ste

import (
	"reflect"

	"github.com/openshift/ste-codec/api/v1alpha1"
)

// Values written to the l3_type and vlan qualifier fields.
const (
	steIPv4 = 1
	steIPv6 = 2

	steSVLAN = 1
	steCVLAN = 2
)

// ethL2 holds the fields the L2 src and L2 dst records share; only the MAC
// words at offset 0 differ between them.
type ethL2 struct {
	MAC47To16           Field
	MAC15To0            Field
	L3Ethertype         Field
	QPType              Field
	EthertypeFilter     Field
	SxSniffer           Field
	ForceLB             Field
	FunctionalLB        Field
	Port                Field
	FirstPriority       Field
	FirstCFI            Field
	FirstVLANQualifier  Field
	FirstVLANID         Field
	IPFragmented        Field
	TCPSyn              Field
	EncapType           Field
	L3Type              Field
	L4Type              Field
	SecondPriority      Field
	SecondCFI           Field
	SecondVLANQualifier Field
	SecondVLANID        Field
}

func newEthL2(mac string) ethL2 {
	return ethL2{
		MAC47To16:           NewField(mac+"_47_16", 0x00, 32),
		MAC15To0:            NewField(mac+"_15_0", 0x20, 16),
		L3Ethertype:         NewField("l3_ethertype", 0x30, 16),
		QPType:              NewField("qp_type", 0x40, 2),
		EthertypeFilter:     NewField("ethertype_filter", 0x42, 1),
		SxSniffer:           NewField("sx_sniffer", 0x44, 1),
		ForceLB:             NewField("force_lb", 0x45, 1),
		FunctionalLB:        NewField("functional_lb", 0x46, 1),
		Port:                NewField("port", 0x47, 1),
		FirstPriority:       NewField("first_priority", 0x4c, 3),
		FirstCFI:            NewField("first_cfi", 0x4f, 1),
		FirstVLANQualifier:  NewField("first_vlan_qualifier", 0x50, 2),
		FirstVLANID:         NewField("first_vlan_id", 0x54, 12),
		IPFragmented:        NewField("ip_fragmented", 0x60, 1),
		TCPSyn:              NewField("tcp_syn", 0x61, 1),
		EncapType:           NewField("encp_type", 0x62, 2),
		L3Type:              NewField("l3_type", 0x64, 2),
		L4Type:              NewField("l4_type", 0x66, 2),
		SecondPriority:      NewField("second_priority", 0x6c, 3),
		SecondCFI:           NewField("second_cfi", 0x6f, 1),
		SecondVLANQualifier: NewField("second_vlan_qualifier", 0x70, 2),
		SecondVLANID:        NewField("second_vlan_id", 0x74, 12),
	}
}

var (
	ethL2Src = newEthL2("smac")
	ethL2Dst = newEthL2("dmac")
)

var ethL2SrcDst = struct {
	DMAC47To16         Field
	DMAC15To0          Field
	SMAC47To32         Field
	SMAC31To0          Field
	SxSniffer          Field
	ForceLB            Field
	FunctionalLB       Field
	Port               Field
	L3Type             Field
	FirstPriority      Field
	FirstCFI           Field
	FirstVLANQualifier Field
	FirstVLANID        Field
}{
	DMAC47To16:         NewField("dmac_47_16", 0x00, 32),
	DMAC15To0:          NewField("dmac_15_0", 0x20, 16),
	SMAC47To32:         NewField("smac_47_32", 0x30, 16),
	SMAC31To0:          NewField("smac_31_0", 0x40, 32),
	SxSniffer:          NewField("sx_sniffer", 0x60, 1),
	ForceLB:            NewField("force_lb", 0x61, 1),
	FunctionalLB:       NewField("functional_lb", 0x62, 1),
	Port:               NewField("port", 0x63, 1),
	L3Type:             NewField("l3_type", 0x64, 2),
	FirstPriority:      NewField("first_priority", 0x6c, 3),
	FirstCFI:           NewField("first_cfi", 0x6f, 1),
	FirstVLANQualifier: NewField("first_vlan_qualifier", 0x70, 2),
	FirstVLANID:        NewField("first_vlan_id", 0x74, 12),
}

var ethL2Tunnel = struct {
	DMAC47To16           Field
	DMAC15To0            Field
	L3Ethertype          Field
	L2TunnelingNetworkID Field
	IPFragmented         Field
	TCPSyn               Field
	EncapType            Field
	L3Type               Field
	L4Type               Field
	FirstPriority        Field
	FirstCFI             Field
	GREKeyFlag           Field
	FirstVLANQualifier   Field
	FirstVLANID          Field
}{
	DMAC47To16:           NewField("dmac_47_16", 0x00, 32),
	DMAC15To0:            NewField("dmac_15_0", 0x20, 16),
	L3Ethertype:          NewField("l3_ethertype", 0x30, 16),
	L2TunnelingNetworkID: NewField("l2_tunneling_network_id", 0x40, 32),
	IPFragmented:         NewField("ip_fragmented", 0x60, 1),
	TCPSyn:               NewField("tcp_syn", 0x61, 1),
	EncapType:            NewField("encp_type", 0x62, 2),
	L3Type:               NewField("l3_type", 0x64, 2),
	L4Type:               NewField("l4_type", 0x66, 2),
	FirstPriority:        NewField("first_priority", 0x68, 3),
	FirstCFI:             NewField("first_cfi", 0x6b, 1),
	GREKeyFlag:           NewField("gre_key_flag", 0x6f, 1),
	FirstVLANQualifier:   NewField("first_vlan_qualifier", 0x70, 2),
	FirstVLANID:          NewField("first_vlan_id", 0x74, 12),
}

type ipv6Address struct {
	IP127To96 Field
	IP95To64  Field
	IP63To32  Field
	IP31To0   Field
}

func newIPv6Address(prefix string) ipv6Address {
	return ipv6Address{
		IP127To96: NewField(prefix+"_127_96", 0x00, 32),
		IP95To64:  NewField(prefix+"_95_64", 0x20, 32),
		IP63To32:  NewField(prefix+"_63_32", 0x40, 32),
		IP31To0:   NewField(prefix+"_31_0", 0x60, 32),
	}
}

var (
	ethL3IPv6Src = newIPv6Address("src_ip")
	ethL3IPv6Dst = newIPv6Address("dst_ip")
)

var ethL3IPv4FiveTuple = struct {
	DestinationAddress Field
	SourceAddress      Field
	SourcePort         Field
	DestinationPort    Field
	Fragmented         Field
	FirstFragment      Field
	ECN                Field
	TCPFlags           Field
	DSCP               Field
	Protocol           Field
}{
	DestinationAddress: NewField("destination_address", 0x00, 32),
	SourceAddress:      NewField("source_address", 0x20, 32),
	SourcePort:         NewField("source_port", 0x40, 16),
	DestinationPort:    NewField("destination_port", 0x50, 16),
	Fragmented:         NewField("fragmented", 0x60, 1),
	FirstFragment:      NewField("first_fragment", 0x61, 1),
	ECN:                NewField("ecn", 0x65, 2),
	TCPFlags:           NewField("tcp_flags", 0x67, 9),
	DSCP:               NewField("dscp", 0x70, 6),
	Protocol:           NewField("protocol", 0x78, 8),
}

var ethL3IPv4Misc = struct {
	Version        Field
	IHL            Field
	TotalLength    Field
	Identification Field
	Flags          Field
	FragmentOffset Field
	TimeToLive     Field
	Checksum       Field
}{
	Version:        NewField("version", 0x00, 4),
	IHL:            NewField("ihl", 0x04, 4),
	TotalLength:    NewField("total_length", 0x10, 16),
	Identification: NewField("identification", 0x20, 16),
	Flags:          NewField("flags", 0x30, 3),
	FragmentOffset: NewField("fragment_offset", 0x33, 13),
	TimeToLive:     NewField("time_to_live", 0x40, 8),
	Checksum:       NewField("checksum", 0x50, 16),
}

var ethL4 = struct {
	Fragmented        Field
	FirstFragment     Field
	Protocol          Field
	DstPort           Field
	IPv6Version       Field
	ECN               Field
	TCPFlags          Field
	SrcPort           Field
	IPv6PayloadLength Field
	IPv6HopLimit      Field
	DSCP              Field
	TCPDataOffset     Field
	FlowLabel         Field
}{
	Fragmented:        NewField("fragmented", 0x00, 1),
	FirstFragment:     NewField("first_fragment", 0x01, 1),
	Protocol:          NewField("protocol", 0x08, 8),
	DstPort:           NewField("dst_port", 0x10, 16),
	IPv6Version:       NewField("ipv6_version", 0x20, 4),
	ECN:               NewField("ecn", 0x25, 2),
	TCPFlags:          NewField("tcp_flags", 0x27, 9),
	SrcPort:           NewField("src_port", 0x30, 16),
	IPv6PayloadLength: NewField("ipv6_payload_length", 0x40, 16),
	IPv6HopLimit:      NewField("ipv6_hop_limit", 0x50, 8),
	DSCP:              NewField("dscp", 0x58, 6),
	TCPDataOffset:     NewField("tcp_data_offset", 0x60, 4),
	FlowLabel:         NewField("flow_label", 0x6c, 20),
}

var ethL4Misc = struct {
	Checksum      Field
	Length        Field
	SeqNum        Field
	AckNum        Field
	UrgentPointer Field
	WindowSize    Field
}{
	Checksum:      NewField("checksum", 0x00, 16),
	Length:        NewField("length", 0x10, 16),
	SeqNum:        NewField("seq_num", 0x20, 32),
	AckNum:        NewField("ack_num", 0x40, 32),
	UrgentPointer: NewField("urgent_pointer", 0x60, 16),
	WindowSize:    NewField("window_size", 0x70, 16),
}

var mpls = struct {
	Label Field
	Exp   Field
	SBos  Field
	TTL   Field
}{
	Label: NewField("mpls0_label", 0x00, 20),
	Exp:   NewField("mpls0_exp", 0x14, 3),
	SBos:  NewField("mpls0_s_bos", 0x17, 1),
	TTL:   NewField("mpls0_ttl", 0x18, 8),
}

var flexParser0 = struct {
	Parser3Label Field
	Parser3Exp   Field
	Parser3SBos  Field
	Parser3TTL   Field
	FlexParser2  Field
	FlexParser1  Field
	FlexParser0  Field
}{
	Parser3Label: NewField("parser_3_label", 0x00, 20),
	Parser3Exp:   NewField("parser_3_exp", 0x14, 3),
	Parser3SBos:  NewField("parser_3_s_bos", 0x17, 1),
	Parser3TTL:   NewField("parser_3_ttl", 0x18, 8),
	FlexParser2:  NewField("flex_parser_2", 0x20, 32),
	FlexParser1:  NewField("flex_parser_1", 0x40, 32),
	FlexParser0:  NewField("flex_parser_0", 0x60, 32),
}

var flexParser1 = struct {
	FlexParser7 Field
	FlexParser6 Field
	FlexParser5 Field
	FlexParser4 Field
}{
	FlexParser7: NewField("flex_parser_7", 0x00, 32),
	FlexParser6: NewField("flex_parser_6", 0x20, 32),
	FlexParser5: NewField("flex_parser_5", 0x40, 32),
	FlexParser4: NewField("flex_parser_4", 0x60, 32),
}

var gre = struct {
	CPresent       Field
	KPresent       Field
	SPresent       Field
	StrictSrcRoute Field
	Recur          Field
	Flags          Field
	Version        Field
	Protocol       Field
	Checksum       Field
	Offset         Field
	KeyH           Field
	KeyL           Field
	SeqNum         Field
}{
	CPresent:       NewField("gre_c_present", 0x00, 1),
	KPresent:       NewField("gre_k_present", 0x02, 1),
	SPresent:       NewField("gre_s_present", 0x03, 1),
	StrictSrcRoute: NewField("strict_src_route", 0x04, 1),
	Recur:          NewField("recur", 0x05, 3),
	Flags:          NewField("flags", 0x08, 5),
	Version:        NewField("version", 0x0d, 3),
	Protocol:       NewField("gre_protocol", 0x10, 16),
	Checksum:       NewField("checksum", 0x20, 16),
	Offset:         NewField("offset", 0x30, 16),
	KeyH:           NewField("gre_key_h", 0x40, 24),
	KeyL:           NewField("gre_key_l", 0x58, 8),
	SeqNum:         NewField("seq_num", 0x60, 32),
}

var tunnelVXLANGPE = struct {
	Flags        Field
	NextProtocol Field
	VNI          Field
}{
	Flags:        NewField("outer_vxlan_gpe_flags", 0x00, 8),
	NextProtocol: NewField("outer_vxlan_gpe_next_protocol", 0x18, 8),
	VNI:          NewField("outer_vxlan_gpe_vni", 0x20, 24),
}

var tunnelGeneve = struct {
	OptLen       Field
	OAM          Field
	ProtocolType Field
	VNI          Field
}{
	OptLen:       NewField("geneve_opt_len", 0x02, 6),
	OAM:          NewField("geneve_oam", 0x08, 1),
	ProtocolType: NewField("geneve_protocol_type", 0x10, 16),
	VNI:          NewField("geneve_vni", 0x20, 24),
}

var tunnelGTPU = struct {
	Flags   Field
	MsgType Field
	TEID    Field
}{
	Flags:   NewField("gtpu_flags", 0x05, 3),
	MsgType: NewField("gtpu_msg_type", 0x08, 8),
	TEID:    NewField("gtpu_teid", 0x20, 32),
}

var generalPurpose = struct {
	LookupField Field
}{
	LookupField: NewField("general_purpose_lookup_field", 0x00, 32),
}

type steeringRegisters struct {
	HighH Field
	HighL Field
	LowH  Field
	LowL  Field
}

func newSteeringRegisters(first, second int) steeringRegisters {
	reg := func(n int, part string) string {
		return "register_" + string(rune('0'+n)) + "_" + part
	}
	return steeringRegisters{
		HighH: NewField(reg(first, "h"), 0x00, 32),
		HighL: NewField(reg(first, "l"), 0x20, 32),
		LowH:  NewField(reg(second, "h"), 0x40, 32),
		LowL:  NewField(reg(second, "l"), 0x60, 32),
	}
}

var (
	register0 = newSteeringRegisters(0, 1)
	register1 = newSteeringRegisters(2, 3)
)

var srcGVMIQP = struct {
	LoopbackSyndrome  Field
	SourceGVMI        Field
	ForceLB           Field
	FunctionalLB      Field
	SourceIsRequestor Field
	SourceQP          Field
}{
	LoopbackSyndrome:  NewField("loopback_syndrome", 0x00, 8),
	SourceGVMI:        NewField("source_gvmi", 0x10, 16),
	ForceLB:           NewField("force_lb", 0x25, 1),
	FunctionalLB:      NewField("functional_lb", 0x26, 1),
	SourceIsRequestor: NewField("source_is_requestor", 0x27, 1),
	SourceQP:          NewField("source_qp", 0x28, 24),
}

// Layout is the ordered field list of one STE record format.
type Layout []Field

var layouts = map[v1alpha1.LookupName]Layout{
	v1alpha1.LookupEthL2SrcDst:        fieldsOf(ethL2SrcDst),
	v1alpha1.LookupEthL3IPv6Src:       fieldsOf(ethL3IPv6Src),
	v1alpha1.LookupEthL3IPv6Dst:       fieldsOf(ethL3IPv6Dst),
	v1alpha1.LookupEthL3IPv4FiveTuple: fieldsOf(ethL3IPv4FiveTuple),
	v1alpha1.LookupEthL2Src:           fieldsOf(ethL2Src),
	v1alpha1.LookupEthL2Dst:           fieldsOf(ethL2Dst),
	v1alpha1.LookupEthL2Tunnel:        fieldsOf(ethL2Tunnel),
	v1alpha1.LookupEthL3IPv4Misc:      fieldsOf(ethL3IPv4Misc),
	v1alpha1.LookupEthIPv6L3L4:        fieldsOf(ethL4),
	v1alpha1.LookupMPLS:               fieldsOf(mpls),
	v1alpha1.LookupTunnelGRE:          fieldsOf(gre),
	v1alpha1.LookupTunnelMPLS:         fieldsOf(flexParser0),
	v1alpha1.LookupICMP:               fieldsOf(flexParser1),
	v1alpha1.LookupGeneralPurpose:     fieldsOf(generalPurpose),
	v1alpha1.LookupEthL4Misc:          fieldsOf(ethL4Misc),
	v1alpha1.LookupTunnelVXLANGPE:     fieldsOf(tunnelVXLANGPE),
	v1alpha1.LookupTunnelGeneve:       fieldsOf(tunnelGeneve),
	v1alpha1.LookupTunnelGTPU:         fieldsOf(tunnelGTPU),
	v1alpha1.LookupRegister0:          fieldsOf(register0),
	v1alpha1.LookupRegister1:          fieldsOf(register1),
	v1alpha1.LookupSrcGVMIQPN:         fieldsOf(srcGVMIQP),
}

// LayoutOf returns the record layout written by a lookup.
func LayoutOf(kind v1alpha1.LookupName) (Layout, bool) {
	l, ok := layouts[kind]
	return l, ok
}

// Decode returns the non-zero fields of buf keyed by field name.
func (l Layout) Decode(buf []byte) map[string]uint32 {
	out := map[string]uint32{}
	for _, f := range l {
		if v := f.Get(buf); v != 0 {
			out[f.Name] = v
		}
	}
	return out
}

func fieldsOf(layout interface{}) Layout {
	v := reflect.ValueOf(layout)
	var fields Layout
	for i := 0; i < v.NumField(); i++ {
		if f, ok := v.Field(i).Interface().(Field); ok {
			fields = append(fields, f)
		}
	}
	return fields
}
