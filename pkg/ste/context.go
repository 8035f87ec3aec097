package ste

import (
	"github.com/pkg/errors"

	"github.com/openshift/ste-codec/api/v1alpha1"
)

// Context builds lookups for one generation of the steering format.
type Context interface {
	Version() uint8
	Supports(kind v1alpha1.LookupName) bool
	// Init derives the lookup type and masks of sb from mask, zeroing the
	// mask fields it consumed.
	Init(sb *Builder, mask *v1alpha1.MatchParam) error
}

// GetContext returns the context of a steering format version.
func GetContext(version uint8) (Context, error) {
	switch version {
	case 0:
		return ContextV0(), nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedVersion, "version %d", version)
	}
}

type initFunc func(sb *Builder, mask *v1alpha1.MatchParam) error

type contextV0 struct {
	builders map[v1alpha1.LookupName]initFunc
}

var steCtxV0 = &contextV0{
	builders: map[v1alpha1.LookupName]initFunc{
		v1alpha1.LookupEthL2SrcDst:        v0EthL2SrcDstInit,
		v1alpha1.LookupEthL3IPv6Src:       v0EthL3IPv6SrcInit,
		v1alpha1.LookupEthL3IPv6Dst:       v0EthL3IPv6DstInit,
		v1alpha1.LookupEthL3IPv4FiveTuple: v0EthL3IPv4FiveTupleInit,
		v1alpha1.LookupEthL2Src:           v0EthL2SrcInit,
		v1alpha1.LookupEthL2Dst:           v0EthL2DstInit,
		v1alpha1.LookupEthL2Tunnel:        v0EthL2TunnelInit,
		v1alpha1.LookupEthL3IPv4Misc:      v0EthL3IPv4MiscInit,
		v1alpha1.LookupEthIPv6L3L4:        v0EthIPv6L3L4Init,
		v1alpha1.LookupMPLS:               v0MPLSInit,
		v1alpha1.LookupTunnelGRE:          v0TunnelGREInit,
		v1alpha1.LookupTunnelMPLS:         v0TunnelMPLSInit,
		v1alpha1.LookupICMP:               v0ICMPInit,
		v1alpha1.LookupGeneralPurpose:     v0GeneralPurposeInit,
		v1alpha1.LookupEthL4Misc:          v0EthL4MiscInit,
		v1alpha1.LookupTunnelVXLANGPE:     v0TunnelVXLANGPEInit,
		v1alpha1.LookupTunnelGeneve:       v0TunnelGeneveInit,
		v1alpha1.LookupTunnelGTPU:         v0TunnelGTPUInit,
		v1alpha1.LookupRegister0:          v0Register0Init,
		v1alpha1.LookupRegister1:          v0Register1Init,
		v1alpha1.LookupSrcGVMIQPN:         v0SrcGVMIQPNInit,
	},
}

// ContextV0 returns the context of the first steering format generation.
func ContextV0() Context {
	return steCtxV0
}

func (c *contextV0) Version() uint8 {
	return 0
}

func (c *contextV0) Supports(kind v1alpha1.LookupName) bool {
	_, ok := c.builders[kind]
	return ok
}

func (c *contextV0) Init(sb *Builder, mask *v1alpha1.MatchParam) error {
	build, ok := c.builders[sb.Kind]
	if !ok {
		return errors.Wrapf(ErrUnsupportedLookup, "%q", sb.Kind)
	}
	if err := build(sb, mask); err != nil {
		return errors.Wrapf(err, "%s init", sb.Kind)
	}
	return nil
}

// initSymmetric builds lookups whose bit mask is the tag function run over
// the mask.
func initSymmetric(sb *Builder, mask *v1alpha1.MatchParam, lu LuType, tag tagFunc) error {
	if err := tag(mask, sb, sb.BitMask[:]); err != nil {
		return err
	}
	sb.finish(lu, tag)
	return nil
}
