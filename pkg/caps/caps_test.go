package caps

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/openshift/ste-codec/pkg/ste"
)

const testCapsYAML = `
flexParserIdIcmpDw0: 4
flexParserIdIcmpDw1: 5
flexParserIdIcmpv6Dw0: 6
flexParserIdIcmpv6Dw1: 7
vports:
  1: 16
  2: 0
`

func TestDecode(t *testing.T) {
	tcs := []struct {
		name     string
		input    string
		icmpv4   ste.SlotAssignment
		icmpv6   ste.SlotAssignment
		vports   map[uint16]uint16
		expectOK bool
	}{
		{
			name:     "yaml",
			input:    testCapsYAML,
			icmpv4:   ste.SlotDW4DW5,
			icmpv6:   ste.SlotUnsupported,
			vports:   map[uint16]uint16{1: 16, 2: 0},
			expectOK: true,
		},
		{
			name:     "json",
			input:    `{"flexParserIdIcmpv6Dw0": 4, "flexParserIdIcmpv6Dw1": 5}`,
			icmpv4:   ste.SlotUnsupported,
			icmpv6:   ste.SlotDW4DW5,
			expectOK: true,
		},
		{
			name:     "invalid",
			input:    "flexParserIdIcmpDw0: [",
			expectOK: false,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			c, err := Decode(strings.NewReader(tc.input))
			if !tc.expectOK {
				if err == nil {
					t.Fatalf("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("decode failed: %v", err)
			}
			if got := c.ICMPSlotFor(ste.ICMPv4); got != tc.icmpv4 {
				t.Errorf("wrong icmpv4 slot\n got: %v\nwant: %v\n", got, tc.icmpv4)
			}
			if got := c.ICMPSlotFor(ste.ICMPv6); got != tc.icmpv6 {
				t.Errorf("wrong icmpv6 slot\n got: %v\nwant: %v\n", got, tc.icmpv6)
			}
			for port, gvmi := range tc.vports {
				if got, ok := c.VportGVMI(port); !ok || got != gvmi {
					t.Errorf("vport %d\n got: %d %v\nwant: %d\n", port, got, ok, gvmi)
				}
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "caps.yaml")
	if err := os.WriteFile(path, []byte(testCapsYAML), 0o600); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if _, ok := c.VportGVMI(3); ok {
		t.Errorf("unknown vport resolved")
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("expected an error for a missing file")
	}
}
