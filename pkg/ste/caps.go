package ste

//go:generate mockgen -destination=mocks/mock_caps.go -package=mocks github.com/openshift/ste-codec/pkg/ste Capabilities

// ICMPVersion selects the ICMP family of a lookup.
type ICMPVersion int

const (
	ICMPv4 ICMPVersion = iota
	ICMPv6
)

func (v ICMPVersion) String() string {
	if v == ICMPv4 {
		return "icmpv4"
	}
	return "icmpv6"
}

// SlotAssignment is where the flex parser places the two ICMP header words.
type SlotAssignment int

const (
	// SlotUnsupported is any placement the v0 ICMP layout cannot address.
	SlotUnsupported SlotAssignment = iota
	// SlotDW4DW5 puts type and code in flex_parser_4 and the header data in
	// flex_parser_5.
	SlotDW4DW5
)

// Capabilities is the read-only view of the device the encoders consult.
type Capabilities interface {
	ICMPSlotFor(v ICMPVersion) SlotAssignment
	// VportGVMI resolves a source port to its GVMI.
	VportGVMI(port uint16) (gvmi uint16, ok bool)
}

// StaticCaps is a Capabilities backed by queried flex parser ids and a
// vport table.
type StaticCaps struct {
	FlexParserIDICMPDW0   uint8             `json:"flexParserIdIcmpDw0"`
	FlexParserIDICMPDW1   uint8             `json:"flexParserIdIcmpDw1"`
	FlexParserIDICMPv6DW0 uint8             `json:"flexParserIdIcmpv6Dw0"`
	FlexParserIDICMPv6DW1 uint8             `json:"flexParserIdIcmpv6Dw1"`
	Vports                map[uint16]uint16 `json:"vports,omitempty"`
}

var _ Capabilities = &StaticCaps{}

func (c *StaticCaps) ICMPSlotFor(v ICMPVersion) SlotAssignment {
	dw0, dw1 := c.FlexParserIDICMPDW0, c.FlexParserIDICMPDW1
	if v == ICMPv6 {
		dw0, dw1 = c.FlexParserIDICMPv6DW0, c.FlexParserIDICMPv6DW1
	}
	if dw0 == 4 && dw1 == 5 {
		return SlotDW4DW5
	}
	return SlotUnsupported
}

func (c *StaticCaps) VportGVMI(port uint16) (uint16, bool) {
	gvmi, ok := c.Vports[port]
	return gvmi, ok
}
