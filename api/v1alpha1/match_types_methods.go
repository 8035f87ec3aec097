package v1alpha1

import (
	"encoding/binary"
	"net"
	"reflect"
	"strconv"
	"strings"
)

// Spec returns the inner or the outer header view of the match parameters.
func (p *MatchParam) Spec(inner bool) *MatchSpec {
	if inner {
		return &p.Inner
	}
	return &p.Outer
}

// IsZero reports whether every field has been consumed.
func (p *MatchParam) IsZero() bool {
	return *p == MatchParam{}
}

// Residual returns the wire names ("outer.smac_47_16", "misc3.gtpu_teid")
// of every field that is still non-zero.
func (p *MatchParam) Residual() []string {
	var names []string
	walkMatchFields(reflect.ValueOf(p).Elem(), "", func(name string, _ int, v uint64) {
		if v != 0 {
			names = append(names, name)
		}
	})
	return names
}

// ExactMask returns a mask selecting every bit of each non-zero field of p.
func (p *MatchParam) ExactMask() *MatchParam {
	mask := &MatchParam{}
	setExactMask(reflect.ValueOf(mask).Elem(), reflect.ValueOf(p).Elem())
	return mask
}

func setExactMask(mask, value reflect.Value) {
	t := value.Type()
	for i := 0; i < t.NumField(); i++ {
		fv := value.Field(i)
		if fv.Kind() == reflect.Struct {
			setExactMask(mask.Field(i), fv)
			continue
		}
		if fv.Uint() == 0 {
			continue
		}
		width, err := strconv.Atoi(t.Field(i).Tag.Get("width"))
		if err != nil {
			width = fv.Type().Bits()
		}
		mask.Field(i).SetUint(uint64(1)<<width - 1)
	}
}

// walkMatchFields calls fn for every leaf field of a match structure with
// its dotted json name, declared width and current value.
func walkMatchFields(v reflect.Value, prefix string, fn func(name string, width int, v uint64)) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		name := strings.Split(sf.Tag.Get("json"), ",")[0]
		if prefix != "" {
			name = prefix + "." + name
		}
		fv := v.Field(i)
		if fv.Kind() == reflect.Struct {
			walkMatchFields(fv, name, fn)
			continue
		}
		width, err := strconv.Atoi(sf.Tag.Get("width"))
		if err != nil {
			width = fv.Type().Bits()
		}
		fn(name, width, fv.Uint())
	}
}

// SetDstMAC splits mac into the dmac_47_16 and dmac_15_0 fields.
func (s *MatchSpec) SetDstMAC(mac net.HardwareAddr) {
	s.DMAC47To16, s.DMAC15To0 = splitMAC(mac)
}

// SetSrcMAC splits mac into the smac_47_16 and smac_15_0 fields.
func (s *MatchSpec) SetSrcMAC(mac net.HardwareAddr) {
	s.SMAC47To16, s.SMAC15To0 = splitMAC(mac)
}

// DstMAC joins dmac_47_16 and dmac_15_0.
func (s *MatchSpec) DstMAC() net.HardwareAddr {
	return joinMAC(s.DMAC47To16, s.DMAC15To0)
}

// SrcMAC joins smac_47_16 and smac_15_0.
func (s *MatchSpec) SrcMAC() net.HardwareAddr {
	return joinMAC(s.SMAC47To16, s.SMAC15To0)
}

// SetSrcIP stores an IPv4 address in src_ip_31_0 or an IPv6 address across
// the four src_ip words.
func (s *MatchSpec) SetSrcIP(ip net.IP) {
	s.SrcIP127To96, s.SrcIP95To64, s.SrcIP63To32, s.SrcIP31To0 = splitIP(ip)
}

// SetDstIP stores an IPv4 address in dst_ip_31_0 or an IPv6 address across
// the four dst_ip words.
func (s *MatchSpec) SetDstIP(ip net.IP) {
	s.DstIP127To96, s.DstIP95To64, s.DstIP63To32, s.DstIP31To0 = splitIP(ip)
}

func splitMAC(mac net.HardwareAddr) (uint32, uint16) {
	if len(mac) != 6 {
		return 0, 0
	}
	return binary.BigEndian.Uint32(mac[0:4]), binary.BigEndian.Uint16(mac[4:6])
}

func joinMAC(hi uint32, lo uint16) net.HardwareAddr {
	mac := make(net.HardwareAddr, 6)
	binary.BigEndian.PutUint32(mac[0:4], hi)
	binary.BigEndian.PutUint16(mac[4:6], lo)
	return mac
}

func splitIP(ip net.IP) (w0, w1, w2, w3 uint32) {
	if ip4 := ip.To4(); ip4 != nil {
		return 0, 0, 0, binary.BigEndian.Uint32(ip4)
	}
	ip16 := ip.To16()
	if ip16 == nil {
		return 0, 0, 0, 0
	}
	return binary.BigEndian.Uint32(ip16[0:4]), binary.BigEndian.Uint32(ip16[4:8]),
		binary.BigEndian.Uint32(ip16[8:12]), binary.BigEndian.Uint32(ip16[12:16])
}
