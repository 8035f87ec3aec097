package matcher

import (
	"encoding/hex"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"

	steeringv1alpha1 "github.com/openshift/ste-codec/api/v1alpha1"
	"github.com/openshift/ste-codec/pkg/metrics"
	"github.com/openshift/ste-codec/pkg/ste"
)

// Options configure a Matcher.
type Options struct {
	Context ste.Context
	Caps    ste.Capabilities
	Rx      bool
	Log     logr.Logger
	// Stats may be nil.
	Stats *metrics.Statistics
}

// Matcher is an ordered chain of initialized lookup builders sharing one
// mask. It is safe to call BuildSTEs concurrently once New returns.
type Matcher struct {
	Builders []*ste.Builder

	log   logr.Logger
	stats *metrics.Statistics
}

// STE is one encoded steering entry of a rule.
type STE struct {
	Lookup   steeringv1alpha1.LookupName
	LuType   ste.LuType
	ByteMask uint16
	BitMask  [ste.TagSize]byte
	Tag      [ste.TagSize]byte
}

// New initializes one builder per lookup, in order, over a copy of mask.
// Every non-zero mask field must be consumed by some lookup.
func New(opts Options, lookups []steeringv1alpha1.SteeringLookup, mask *steeringv1alpha1.MatchParam) (*Matcher, error) {
	if opts.Context == nil {
		return nil, errors.Wrap(ste.ErrUnsupportedVersion, "no steering context")
	}
	if opts.Log.GetSink() == nil {
		opts.Log = logr.Discard()
	}
	m := &Matcher{log: opts.Log, stats: opts.Stats}

	remaining := mask.DeepCopy()
	for _, lookup := range lookups {
		if !opts.Context.Supports(lookup.Name) {
			err := errors.Wrapf(ste.ErrUnsupportedLookup, "%q in version %d", lookup.Name, opts.Context.Version())
			m.stats.Failed(err)
			return nil, err
		}
		sb := ste.NewBuilder(lookup.Name, opts.Caps, opts.Rx, lookup.Inner)
		if err := opts.Context.Init(sb, remaining); err != nil {
			m.stats.Failed(err)
			return nil, err
		}
		m.stats.BuilderInitialized(sb)
		m.log.V(1).Info("Initialized lookup", "lookup", sb.Kind, "inner", sb.Inner,
			"luType", sb.LuType.String(), "byteMask", sb.PackedByteMask())
		m.Builders = append(m.Builders, sb)
	}

	if !remaining.IsZero() {
		m.stats.FailedWith(UnconsumedFieldsKind)
		return nil, UnconsumedFieldsError{Pass: "mask", Fields: remaining.Residual()}
	}
	return m, nil
}

// BuildSTEs encodes a copy of value with every builder of the matcher.
func (m *Matcher) BuildSTEs(value *steeringv1alpha1.MatchParam) ([]STE, error) {
	remaining := value.DeepCopy()
	stes := make([]STE, 0, len(m.Builders))
	for _, sb := range m.Builders {
		entry := STE{
			Lookup:   sb.Kind,
			LuType:   sb.LuType,
			ByteMask: sb.PackedByteMask(),
			BitMask:  sb.BitMask,
		}
		if err := sb.Tag(remaining, &entry.Tag); err != nil {
			m.stats.Failed(err)
			return nil, err
		}
		m.stats.TagEncoded(sb)
		stes = append(stes, entry)
	}

	if !remaining.IsZero() {
		m.stats.FailedWith(UnconsumedFieldsKind)
		return nil, UnconsumedFieldsError{Pass: "value", Fields: remaining.Residual()}
	}
	return stes, nil
}

// CompiledLookups renders the builders and the tags of stes in the status
// form. stes[i] is the list BuildSTEs returned for the i-th rule value.
func (m *Matcher) CompiledLookups(stes [][]STE) []steeringv1alpha1.CompiledLookup {
	lookups := make([]steeringv1alpha1.CompiledLookup, 0, len(m.Builders))
	for i, sb := range m.Builders {
		cl := steeringv1alpha1.CompiledLookup{
			Name:       sb.Kind,
			LookupType: uint16(sb.LuType),
			BitMask:    hex.EncodeToString(sb.BitMask[:]),
			ByteMask:   sb.PackedByteMask(),
		}
		for _, entries := range stes {
			cl.Tags = append(cl.Tags, hex.EncodeToString(entries[i].Tag[:]))
		}
		lookups = append(lookups, cl)
	}
	return lookups
}
