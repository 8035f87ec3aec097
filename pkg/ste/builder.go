package ste

import (
	"github.com/pkg/errors"

	"github.com/openshift/ste-codec/api/v1alpha1"
)

type tagFunc func(value *v1alpha1.MatchParam, sb *Builder, tag []byte) error

// Builder is the per-matcher state of one lookup. Init fills the lookup
// type and the masks from a mask MatchParam; Tag then encodes any number
// of value MatchParams against it.
type Builder struct {
	Kind  v1alpha1.LookupName
	Rx    bool
	Inner bool

	LuType   LuType
	BitMask  [TagSize]byte
	ByteMask [TagSize]byte

	caps Capabilities
	icmp ICMPVersion
	tag  tagFunc
}

// NewBuilder returns an uninitialized builder for kind.
func NewBuilder(kind v1alpha1.LookupName, caps Capabilities, rx, inner bool) *Builder {
	return &Builder{Kind: kind, Rx: rx, Inner: inner, caps: caps}
}

// Tag encodes value into tag and zeroes the fields it consumed. On error
// tag holds a partial encoding and must be discarded.
func (sb *Builder) Tag(value *v1alpha1.MatchParam, tag *[TagSize]byte) error {
	if sb.tag == nil {
		return errors.Wrapf(ErrUnsupportedLookup, "%s: builder not initialized", sb.Kind)
	}
	if err := sb.tag(value, sb, tag[:]); err != nil {
		return errors.Wrapf(err, "%s tag", sb.Kind)
	}
	return nil
}

// PackedByteMask is the byte mask in its one-bit-per-byte form.
func (sb *Builder) PackedByteMask() uint16 {
	return PackByteMask(sb.ByteMask)
}

func (sb *Builder) finish(lu LuType, tag tagFunc) {
	sb.LuType = lu
	sb.ByteMask = ToByteMask(sb.BitMask)
	sb.tag = tag
}
