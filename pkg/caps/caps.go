package caps

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"k8s.io/apimachinery/pkg/util/yaml"
	"k8s.io/klog"

	"github.com/openshift/ste-codec/pkg/ste"
)

const decodeBufferSize = 4096

// Load reads a capability view from a YAML or JSON file.
func Load(path string) (*ste.StaticCaps, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open capabilities file %s", path)
	}
	defer f.Close()

	c, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load capabilities file %s", path)
	}
	klog.Infof("Loaded device capabilities from %s with %d vports", path, len(c.Vports))
	return c, nil
}

// Decode reads a capability view from r.
func Decode(r io.Reader) (*ste.StaticCaps, error) {
	c := &ste.StaticCaps{}
	if err := yaml.NewYAMLOrJSONDecoder(r, decodeBufferSize).Decode(c); err != nil {
		return nil, err
	}
	if c.ICMPSlotFor(ste.ICMPv4) == ste.SlotUnsupported {
		klog.Warningf("ICMPv4 flex parser ids %d/%d cannot be used by the icmp lookup",
			c.FlexParserIDICMPDW0, c.FlexParserIDICMPDW1)
	}
	if c.ICMPSlotFor(ste.ICMPv6) == ste.SlotUnsupported {
		klog.Warningf("ICMPv6 flex parser ids %d/%d cannot be used by the icmp lookup",
			c.FlexParserIDICMPv6DW0, c.FlexParserIDICMPv6DW1)
	}
	return c, nil
}
