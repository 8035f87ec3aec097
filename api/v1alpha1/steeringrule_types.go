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

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// LookupName names one steering lookup (one STE layout family).
type LookupName string

const (
	LookupEthL2SrcDst        LookupName = "eth_l2_src_dst"
	LookupEthL3IPv6Src       LookupName = "eth_l3_ipv6_src"
	LookupEthL3IPv6Dst       LookupName = "eth_l3_ipv6_dst"
	LookupEthL3IPv4FiveTuple LookupName = "eth_l3_ipv4_5_tuple"
	LookupEthL2Src           LookupName = "eth_l2_src"
	LookupEthL2Dst           LookupName = "eth_l2_dst"
	LookupEthL2Tunnel        LookupName = "eth_l2_tnl"
	LookupEthL3IPv4Misc      LookupName = "eth_l3_ipv4_misc"
	LookupEthIPv6L3L4        LookupName = "eth_ipv6_l3_l4"
	LookupMPLS               LookupName = "mpls"
	LookupTunnelGRE          LookupName = "tnl_gre"
	LookupTunnelMPLS         LookupName = "tnl_mpls"
	LookupICMP               LookupName = "icmp"
	LookupGeneralPurpose     LookupName = "general_purpose"
	LookupEthL4Misc          LookupName = "eth_l4_misc"
	LookupTunnelVXLANGPE     LookupName = "tnl_vxlan_gpe"
	LookupTunnelGeneve       LookupName = "tnl_geneve"
	LookupTunnelGTPU         LookupName = "tnl_gtpu"
	LookupRegister0          LookupName = "register_0"
	LookupRegister1          LookupName = "register_1"
	LookupSrcGVMIQPN         LookupName = "src_gvmi_qpn"
)

// LookupNames lists every lookup known to the API, in the order the v0
// steering context declares them.
func LookupNames() []LookupName {
	return []LookupName{
		LookupEthL2SrcDst, LookupEthL3IPv6Src, LookupEthL3IPv6Dst, LookupEthL3IPv4FiveTuple,
		LookupEthL2Src, LookupEthL2Dst, LookupEthL2Tunnel, LookupEthL3IPv4Misc,
		LookupEthIPv6L3L4, LookupMPLS, LookupTunnelGRE, LookupTunnelMPLS, LookupICMP,
		LookupGeneralPurpose, LookupEthL4Misc, LookupTunnelVXLANGPE, LookupTunnelGeneve,
		LookupTunnelGTPU, LookupRegister0, LookupRegister1, LookupSrcGVMIQPN,
	}
}

// SteeringDirection is the traffic direction of the table a rule goes to.
// +kubebuilder:validation:Enum="rx";"tx"
type SteeringDirection string

const (
	SteeringDirectionRx SteeringDirection = "rx"
	SteeringDirectionTx SteeringDirection = "tx"
)

// SteeringLookup is one step of the lookup chain.
type SteeringLookup struct {
	// Name of the lookup.
	// +kubebuilder:validation:Required
	Name LookupName `json:"name"`

	// Inner selects the tunneled (inner) header view instead of the outer one.
	// +optional
	Inner bool `json:"inner,omitempty"`
}

// SteeringRuleSpec defines the desired state of SteeringRule
type SteeringRuleSpec struct {
	// HardwareVersion selects the steering entry format generation.
	// +kubebuilder:validation:Maximum:=0
	// +optional
	HardwareVersion uint8 `json:"hardwareVersion,omitempty"`

	// Direction of the steering table.
	// +kubebuilder:validation:Required
	Direction SteeringDirection `json:"direction"`

	// Lookups is the ordered lookup chain. Together the lookups must consume
	// every field set in Mask.
	// +kubebuilder:validation:MinItems:=1
	Lookups []SteeringLookup `json:"lookups"`

	// Mask marks the bits compared by the matcher.
	Mask MatchParam `json:"mask"`

	// Values are the concrete rules sharing Mask.
	// +optional
	Values []MatchParam `json:"values,omitempty"`
}

// CompiledLookup is the hardware view of one lookup of the chain.
type CompiledLookup struct {
	Name       LookupName `json:"name"`
	LookupType uint16     `json:"lookupType"`
	// BitMask and Tags are hex encoded STE records.
	BitMask  string   `json:"bitMask"`
	ByteMask uint16   `json:"byteMask"`
	Tags     []string `json:"tags,omitempty"`
}

// SteeringRuleStatus defines the observed state of SteeringRule
type SteeringRuleStatus struct {
	// +optional
	Conditions []metav1.Condition `json:"conditions,omitempty"`
	// +optional
	Lookups []CompiledLookup `json:"lookups,omitempty"`
}

//+kubebuilder:object:root=true
//+kubebuilder:subresource:status

// SteeringRule is the Schema for the steeringrules API
type SteeringRule struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   SteeringRuleSpec   `json:"spec,omitempty"`
	Status SteeringRuleStatus `json:"status,omitempty"`
}

//+kubebuilder:object:root=true

// SteeringRuleList contains a list of SteeringRule
type SteeringRuleList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []SteeringRule `json:"items"`
}

func init() {
	SchemeBuilder.Register(&SteeringRule{}, &SteeringRuleList{})
}
