/*
Copyright 2022.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package v1alpha1

// The match structures below are used both as a mask (non-zero means the
// field participates in the lookup) and as a value (the bits to match).
// The width tag is the number of significant bits of each field; the
// device decodes the produced records positionally, so widths are part of
// the API.

const (
	// IPVersionIPv4 is the ip_version value selecting IPv4 headers.
	IPVersionIPv4 = 4
	// IPVersionIPv6 is the ip_version value selecting IPv6 headers.
	IPVersionIPv6 = 6
)

// MatchSpec holds the L2-L4 header fields of either the outer or the inner
// (tunneled) packet.
type MatchSpec struct {
	SMAC47To16 uint32 `json:"smac_47_16,omitempty" width:"32"`
	Ethertype  uint16 `json:"ethertype,omitempty" width:"16"`
	SMAC15To0  uint16 `json:"smac_15_0,omitempty" width:"16"`
	DMAC47To16 uint32 `json:"dmac_47_16,omitempty" width:"32"`
	// First VLAN tag; valid only when CVLANTag or SVLANTag is set.
	FirstVID  uint16 `json:"first_vid,omitempty" width:"12"`
	FirstCFI  uint8  `json:"first_cfi,omitempty" width:"1"`
	FirstPrio uint8  `json:"first_prio,omitempty" width:"3"`
	DMAC15To0 uint16 `json:"dmac_15_0,omitempty" width:"16"`
	// TCPFlags bit 0 is FIN, then SYN, RST, PSH, ACK, URG, ECE, CWR and NS.
	TCPFlags  uint16 `json:"tcp_flags,omitempty" width:"9"`
	IPVersion uint8  `json:"ip_version,omitempty" width:"4"`
	Frag      uint8  `json:"frag,omitempty" width:"1"`
	// SVLANTag and CVLANTag qualify the first VLAN (0x88a8 and 0x8100).
	// They cannot be set together.
	SVLANTag      uint8  `json:"svlan_tag,omitempty" width:"1"`
	CVLANTag      uint8  `json:"cvlan_tag,omitempty" width:"1"`
	IPECN         uint8  `json:"ip_ecn,omitempty" width:"2"`
	IPDSCP        uint8  `json:"ip_dscp,omitempty" width:"6"`
	IPProtocol    uint8  `json:"ip_protocol,omitempty" width:"8"`
	TCPDport      uint16 `json:"tcp_dport,omitempty" width:"16"`
	TCPSport      uint16 `json:"tcp_sport,omitempty" width:"16"`
	IPTTLHoplimit uint8  `json:"ip_ttl_hoplimit,omitempty" width:"8"`
	UDPDport      uint16 `json:"udp_dport,omitempty" width:"16"`
	UDPSport      uint16 `json:"udp_sport,omitempty" width:"16"`
	// IPv4 addresses use only the 31_0 words.
	SrcIP127To96 uint32 `json:"src_ip_127_96,omitempty" width:"32"`
	SrcIP95To64  uint32 `json:"src_ip_95_64,omitempty" width:"32"`
	SrcIP63To32  uint32 `json:"src_ip_63_32,omitempty" width:"32"`
	SrcIP31To0   uint32 `json:"src_ip_31_0,omitempty" width:"32"`
	DstIP127To96 uint32 `json:"dst_ip_127_96,omitempty" width:"32"`
	DstIP95To64  uint32 `json:"dst_ip_95_64,omitempty" width:"32"`
	DstIP63To32  uint32 `json:"dst_ip_63_32,omitempty" width:"32"`
	DstIP31To0   uint32 `json:"dst_ip_31_0,omitempty" width:"32"`
}

// MatchMisc holds source, second VLAN and tunnel header fields.
type MatchMisc struct {
	SourceSQN      uint32 `json:"source_sqn,omitempty" width:"24"`
	SourceVHCAPort uint8  `json:"source_vhca_port,omitempty" width:"4"`
	GRESPresent    uint8  `json:"gre_s_present,omitempty" width:"1"`
	GREKPresent    uint8  `json:"gre_k_present,omitempty" width:"1"`
	GRECPresent    uint8  `json:"gre_c_present,omitempty" width:"1"`
	SourcePort     uint16 `json:"source_port,omitempty" width:"16"`

	SourceEswitchOwnerVHCAID uint16 `json:"source_eswitch_owner_vhca_id,omitempty" width:"16"`

	InnerSecondVID  uint16 `json:"inner_second_vid,omitempty" width:"12"`
	InnerSecondCFI  uint8  `json:"inner_second_cfi,omitempty" width:"1"`
	InnerSecondPrio uint8  `json:"inner_second_prio,omitempty" width:"3"`
	OuterSecondVID  uint16 `json:"outer_second_vid,omitempty" width:"12"`
	OuterSecondCFI  uint8  `json:"outer_second_cfi,omitempty" width:"1"`
	OuterSecondPrio uint8  `json:"outer_second_prio,omitempty" width:"3"`

	GREProtocol uint16 `json:"gre_protocol,omitempty" width:"16"`

	InnerSecondSVLANTag uint8 `json:"inner_second_svlan_tag,omitempty" width:"1"`
	OuterSecondSVLANTag uint8 `json:"outer_second_svlan_tag,omitempty" width:"1"`
	InnerSecondCVLANTag uint8 `json:"inner_second_cvlan_tag,omitempty" width:"1"`
	OuterSecondCVLANTag uint8 `json:"outer_second_cvlan_tag,omitempty" width:"1"`

	GREKeyL uint8  `json:"gre_key_l,omitempty" width:"8"`
	GREKeyH uint32 `json:"gre_key_h,omitempty" width:"24"`

	VXLANVNI uint32 `json:"vxlan_vni,omitempty" width:"24"`

	GeneveOAM uint8  `json:"geneve_oam,omitempty" width:"1"`
	GeneveVNI uint32 `json:"geneve_vni,omitempty" width:"24"`

	OuterIPv6FlowLabel uint32 `json:"outer_ipv6_flow_label,omitempty" width:"20"`
	InnerIPv6FlowLabel uint32 `json:"inner_ipv6_flow_label,omitempty" width:"20"`

	GeneveProtocolType uint16 `json:"geneve_protocol_type,omitempty" width:"16"`
	GeneveOptLen       uint8  `json:"geneve_opt_len,omitempty" width:"6"`

	BTHDstQP uint32 `json:"bth_dst_qp,omitempty" width:"24"`
}

// MatchMisc2 holds MPLS labels and metadata registers.
type MatchMisc2 struct {
	OuterFirstMPLSTTL   uint8  `json:"outer_first_mpls_ttl,omitempty" width:"8"`
	OuterFirstMPLSSBos  uint8  `json:"outer_first_mpls_s_bos,omitempty" width:"1"`
	OuterFirstMPLSExp   uint8  `json:"outer_first_mpls_exp,omitempty" width:"3"`
	OuterFirstMPLSLabel uint32 `json:"outer_first_mpls_label,omitempty" width:"20"`

	InnerFirstMPLSTTL   uint8  `json:"inner_first_mpls_ttl,omitempty" width:"8"`
	InnerFirstMPLSSBos  uint8  `json:"inner_first_mpls_s_bos,omitempty" width:"1"`
	InnerFirstMPLSExp   uint8  `json:"inner_first_mpls_exp,omitempty" width:"3"`
	InnerFirstMPLSLabel uint32 `json:"inner_first_mpls_label,omitempty" width:"20"`

	OuterFirstMPLSOverGRETTL   uint8  `json:"outer_first_mpls_over_gre_ttl,omitempty" width:"8"`
	OuterFirstMPLSOverGRESBos  uint8  `json:"outer_first_mpls_over_gre_s_bos,omitempty" width:"1"`
	OuterFirstMPLSOverGREExp   uint8  `json:"outer_first_mpls_over_gre_exp,omitempty" width:"3"`
	OuterFirstMPLSOverGRELabel uint32 `json:"outer_first_mpls_over_gre_label,omitempty" width:"20"`

	OuterFirstMPLSOverUDPTTL   uint8  `json:"outer_first_mpls_over_udp_ttl,omitempty" width:"8"`
	OuterFirstMPLSOverUDPSBos  uint8  `json:"outer_first_mpls_over_udp_s_bos,omitempty" width:"1"`
	OuterFirstMPLSOverUDPExp   uint8  `json:"outer_first_mpls_over_udp_exp,omitempty" width:"3"`
	OuterFirstMPLSOverUDPLabel uint32 `json:"outer_first_mpls_over_udp_label,omitempty" width:"20"`

	MetadataRegC7 uint32 `json:"metadata_reg_c_7,omitempty" width:"32"`
	MetadataRegC6 uint32 `json:"metadata_reg_c_6,omitempty" width:"32"`
	MetadataRegC5 uint32 `json:"metadata_reg_c_5,omitempty" width:"32"`
	MetadataRegC4 uint32 `json:"metadata_reg_c_4,omitempty" width:"32"`
	MetadataRegC3 uint32 `json:"metadata_reg_c_3,omitempty" width:"32"`
	MetadataRegC2 uint32 `json:"metadata_reg_c_2,omitempty" width:"32"`
	MetadataRegC1 uint32 `json:"metadata_reg_c_1,omitempty" width:"32"`
	MetadataRegC0 uint32 `json:"metadata_reg_c_0,omitempty" width:"32"`
	MetadataRegA  uint32 `json:"metadata_reg_a,omitempty" width:"32"`
}

// MatchMisc3 holds TCP sequence numbers, VXLAN-GPE, ICMP and GTP-U fields.
type MatchMisc3 struct {
	InnerTCPSeqNum uint32 `json:"inner_tcp_seq_num,omitempty" width:"32"`
	OuterTCPSeqNum uint32 `json:"outer_tcp_seq_num,omitempty" width:"32"`
	InnerTCPAckNum uint32 `json:"inner_tcp_ack_num,omitempty" width:"32"`
	OuterTCPAckNum uint32 `json:"outer_tcp_ack_num,omitempty" width:"32"`

	OuterVXLANGPEVNI          uint32 `json:"outer_vxlan_gpe_vni,omitempty" width:"24"`
	OuterVXLANGPEFlags        uint8  `json:"outer_vxlan_gpe_flags,omitempty" width:"8"`
	OuterVXLANGPENextProtocol uint8  `json:"outer_vxlan_gpe_next_protocol,omitempty" width:"8"`

	ICMPv4HeaderData uint32 `json:"icmpv4_header_data,omitempty" width:"32"`
	ICMPv6HeaderData uint32 `json:"icmpv6_header_data,omitempty" width:"32"`
	ICMPv6Code       uint8  `json:"icmpv6_code,omitempty" width:"8"`
	ICMPv6Type       uint8  `json:"icmpv6_type,omitempty" width:"8"`
	ICMPv4Code       uint8  `json:"icmpv4_code,omitempty" width:"8"`
	ICMPv4Type       uint8  `json:"icmpv4_type,omitempty" width:"8"`

	GTPUTEID    uint32 `json:"gtpu_teid,omitempty" width:"32"`
	GTPUMsgType uint8  `json:"gtpu_msg_type,omitempty" width:"8"`
	GTPUFlags   uint8  `json:"gtpu_flags,omitempty" width:"3"`
}

// MatchParam is the full match specification handed to the lookup
// builders. Builders zero every field they consume.
type MatchParam struct {
	Outer MatchSpec  `json:"outer,omitempty"`
	Misc  MatchMisc  `json:"misc,omitempty"`
	Inner MatchSpec  `json:"inner,omitempty"`
	Misc2 MatchMisc2 `json:"misc2,omitempty"`
	Misc3 MatchMisc3 `json:"misc3,omitempty"`
}
