package scrollstage

import (
	"errors"
	"fmt"
)

// Value is a property value that is either fixed or computed per target index.
type Value struct {
	v  float64
	fn func(i int) float64
}

// Val returns a fixed value.
func Val(v float64) Value {
	return Value{v: v}
}

// Each returns a value computed from the target's index within its tween.
func Each(fn func(i int) float64) Value {
	return Value{fn: fn}
}

// EachOf returns the i-th element of vs for target i. Indices past the end
// reuse the last element.
func EachOf(vs []float64) Value {
	if len(vs) == 0 {
		return Value{}
	}
	return Each(func(i int) float64 {
		if i >= len(vs) {
			i = len(vs) - 1
		}
		return vs[i]
	})
}

func (v Value) at(i int) float64 {
	if v.fn != nil {
		return v.fn(i)
	}
	return v.v
}

// Prop pairs a property with its value.
type Prop struct {
	Name  Property
	Value Value
}

// P is shorthand for a fixed-value Prop.
func P(name Property, v float64) Prop {
	return Prop{Name: name, Value: Val(v)}
}

// PEach is shorthand for a per-target Prop.
func PEach(name Property, fn func(i int) float64) Prop {
	return Prop{Name: name, Value: Each(fn)}
}

type positionKind uint8

const (
	posEnd positionKind = iota
	posAbsolute
	posLabel
	posAfterPrevious
	posWithPrevious
)

// Position places a tween or label on the timeline. The zero Position is the
// end of the timeline built so far.
type Position struct {
	kind   positionKind
	label  string
	offset float64
}

// At is an absolute position in progress units.
func At(p float64) Position { return Position{kind: posAbsolute, offset: p} }

// AtEnd is offset after the end of everything added so far.
func AtEnd(offset float64) Position { return Position{kind: posEnd, offset: offset} }

// AtLabel is offset after the named label.
func AtLabel(name string, offset float64) Position {
	return Position{kind: posLabel, label: name, offset: offset}
}

// AfterPrevious is offset after the end of the most recently added tween.
func AfterPrevious(offset float64) Position {
	return Position{kind: posAfterPrevious, offset: offset}
}

// WithPrevious is offset after the start of the most recently added tween.
func WithPrevious(offset float64) Position {
	return Position{kind: posWithPrevious, offset: offset}
}

// TweenOptions configures one tween.
type TweenOptions struct {
	// Duration in progress units. Zero uses TimelineConfig.DefaultDuration.
	Duration float64
	// Ease defaults to TimelineConfig.DefaultEase.
	Ease    Easing
	Stagger *Stagger
}

// TimelineConfig holds timeline-wide defaults.
type TimelineConfig struct {
	// DefaultEase applies to tweens without an Ease. Nil means Linear.
	DefaultEase Easing
	// DefaultDuration applies to tweens without a Duration. Zero means 0.5.
	DefaultDuration float64
}

const defaultTweenDuration = 0.5

type tweenStep struct {
	targets []string
	from    []Prop
	to      []Prop
	opts    TweenOptions
}

type timelineStep struct {
	label string
	pos   Position
	tween *tweenStep
}

// TimelineBuilder records tweens and labels in registration order. Nothing is
// resolved until Compile.
type TimelineBuilder struct {
	cfg   TimelineConfig
	steps []timelineStep
}

// NewTimeline starts a timeline with the given defaults.
func NewTimeline(cfg TimelineConfig) *TimelineBuilder {
	if cfg.DefaultEase == nil {
		cfg.DefaultEase = Linear
	}
	if cfg.DefaultDuration == 0 {
		cfg.DefaultDuration = defaultTweenDuration
	}
	return &TimelineBuilder{cfg: cfg}
}

// FromTo animates targets from explicit start values to end values.
func (b *TimelineBuilder) FromTo(targets []string, from, to []Prop, opts TweenOptions, pos Position) *TimelineBuilder {
	b.steps = append(b.steps, timelineStep{pos: pos, tween: &tweenStep{targets: targets, from: from, to: to, opts: opts}})
	return b
}

// To animates targets from whatever value each property holds at that point
// of the timeline to the given end values.
func (b *TimelineBuilder) To(targets []string, to []Prop, opts TweenOptions, pos Position) *TimelineBuilder {
	return b.FromTo(targets, nil, to, opts, pos)
}

// AddLabel names a point on the timeline for later AtLabel positions.
func (b *TimelineBuilder) AddLabel(name string, pos Position) *TimelineBuilder {
	b.steps = append(b.steps, timelineStep{label: name, pos: pos})
	return b
}

// PropertyReader reads current property values from a host.
type PropertyReader interface {
	Property(h Handle, p Property) float64
}

// Segment is one property transition on one target. Segments with a stagger
// share P0/P1 and differ by Offset.
type Segment struct {
	Target   Handle
	Property Property
	From, To float64
	P0, P1   float64
	Offset   float64
	Spread   float64
	Ease     Easing
	// Group identifies the staggered tween the segment belongs to, or -1.
	Group int
}

// Span returns the segment's effective range after staggering.
func (s *Segment) Span() (start, end float64) {
	return s.P0 + s.Offset*s.Spread*(s.P1-s.P0), s.P1
}

// Fraction returns the eased-input fraction for timeline time t, clamped to
// [0, 1]. A zero-length span jumps to 1 at its end.
func (s *Segment) Fraction(t float64) float64 {
	start, end := s.Span()
	if end <= start {
		if t >= end {
			return 1
		}
		return 0
	}
	return Clamp01((t - start) / (end - start))
}

// ValueAt returns the interpolated value at timeline time t. Outside the span
// the value is pinned to From or To.
func (s *Segment) ValueAt(t float64) float64 {
	f := s.Fraction(t)
	switch {
	case f <= 0:
		return s.From
	case f >= 1:
		return s.To
	}
	return Lerp(s.From, s.To, s.Ease(f))
}

// Write is one property assignment produced by Advance.
type Write struct {
	Target   Handle
	Property Property
	Value    float64
}

type channelKey struct {
	target Handle
	prop   Property
}

type channel struct {
	key  channelKey
	segs []int
}

// Timeline is a compiled, immutable set of segments. Advance is a pure
// function of progress.
type Timeline struct {
	segments []Segment
	channels []channel
	duration float64
	labels   map[string]float64
	baseline []Write
}

// Compile resolves target names through table, label and relative positions,
// staggers and implicit start values. Implicit start values come from the
// last earlier-registered segment on the same target property, or from host.
func (b *TimelineBuilder) Compile(table HandleTable, host PropertyReader) (*Timeline, error) {
	if host == nil {
		return nil, ErrNoHost
	}
	tl := &Timeline{labels: make(map[string]float64)}
	index := make(map[channelKey]int)
	lastEnd := make(map[channelKey]float64)

	var end, prevStart, prevEnd float64
	havePrev := false
	group := 0

	resolve := func(pos Position) (float64, error) {
		var at float64
		switch pos.kind {
		case posAbsolute:
			at = pos.offset
		case posLabel:
			l, ok := tl.labels[pos.label]
			if !ok {
				return 0, fmt.Errorf("%w: %q", ErrUnknownLabel, pos.label)
			}
			at = l + pos.offset
		case posAfterPrevious:
			at = end + pos.offset
			if havePrev {
				at = prevEnd + pos.offset
			}
		case posWithPrevious:
			at = end + pos.offset
			if havePrev {
				at = prevStart + pos.offset
			}
		default:
			at = end + pos.offset
		}
		return max(at, 0), nil
	}

	for i, st := range b.steps {
		at, err := resolve(st.pos)
		if err != nil {
			return nil, fmt.Errorf("timeline step %d: %w", i, err)
		}
		if st.tween == nil {
			if _, dup := tl.labels[st.label]; dup {
				return nil, fmt.Errorf("timeline step %d: %w: %q", i, ErrDuplicateLabel, st.label)
			}
			tl.labels[st.label] = at
			continue
		}

		tw := st.tween
		dur := tw.opts.Duration
		if dur < 0 {
			return nil, fmt.Errorf("timeline step %d: negative duration %v", i, dur)
		}
		if dur == 0 {
			dur = b.cfg.DefaultDuration
		}
		easing := tw.opts.Ease
		if easing == nil {
			easing = b.cfg.DefaultEase
		}
		handles, err := table.Resolve(tw.targets)
		if err != nil {
			return nil, fmt.Errorf("timeline step %d: %w", i, err)
		}

		offsets := make([]float64, len(handles))
		spread := 0.0
		segGroup := -1
		if s := tw.opts.Stagger; s != nil {
			if s.Spread < 0 || s.Spread > 1 {
				return nil, fmt.Errorf("timeline step %d: %w: spread %v", i, ErrInvalidStagger, s.Spread)
			}
			offsets = ComputeOffsets(len(handles), s.Policy, s.Seed, s.Positions)
			spread = s.Spread
			segGroup = group
			group++
		}

		p0, p1 := at, at+dur
		for ti, h := range handles {
			for _, prop := range tw.to {
				key := channelKey{h, prop.Name}
				ci, seen := index[key]
				if !seen {
					ci = len(tl.channels)
					index[key] = ci
					tl.channels = append(tl.channels, channel{key: key})
					tl.baseline = append(tl.baseline, Write{Target: h, Property: prop.Name, Value: host.Property(h, prop.Name)})
				}

				from, ok := lookupProp(tw.from, prop.Name)
				var fromV float64
				switch {
				case ok:
					fromV = from.at(ti)
				case seen:
					fromV = lastEnd[key]
				default:
					fromV = tl.baseline[ci].Value
				}
				toV := prop.Value.at(ti)
				lastEnd[key] = toV

				tl.channels[ci].segs = append(tl.channels[ci].segs, len(tl.segments))
				tl.segments = append(tl.segments, Segment{
					Target:   h,
					Property: prop.Name,
					From:     fromV,
					To:       toV,
					P0:       p0,
					P1:       p1,
					Offset:   offsets[ti],
					Spread:   spread,
					Ease:     easing,
					Group:    segGroup,
				})
			}
		}

		prevStart, prevEnd, havePrev = p0, p1, true
		end = max(end, p1)
	}

	tl.duration = end
	return tl, nil
}

func lookupProp(props []Prop, name Property) (Value, bool) {
	for i := len(props) - 1; i >= 0; i-- {
		if props[i].Name == name {
			return props[i].Value, true
		}
	}
	return Value{}, false
}

// Duration returns the timeline length in progress units.
func (tl *Timeline) Duration() float64 {
	return tl.duration
}

// Segments returns the compiled segments in registration order. The returned
// slice MUST NOT be mutated.
func (tl *Timeline) Segments() []Segment {
	return tl.segments
}

// Label returns the resolved time of a label.
func (tl *Timeline) Label(name string) (float64, bool) {
	t, ok := tl.labels[name]
	return t, ok
}

// Baseline returns the values each animated property held when the timeline
// was compiled, in channel order.
func (tl *Timeline) Baseline() []Write {
	return tl.baseline
}

// Channels returns the number of distinct target properties the timeline
// writes on every Advance.
func (tl *Timeline) Channels() int {
	return len(tl.channels)
}

// Advance evaluates every channel for one progress snapshot and returns one
// write per target property, in order of first registration.
func (tl *Timeline) Advance(progress float64) []Write {
	return tl.AdvanceInto(make([]Write, 0, len(tl.channels)), progress)
}

// AdvanceInto is Advance appending into dst, for callers that reuse a buffer.
//
// Within a channel the last-registered segment that has begun wins; before
// any has begun the earliest-starting segment's From is shown.
func (tl *Timeline) AdvanceInto(dst []Write, progress float64) []Write {
	t := Clamp01(progress) * tl.duration
	for ci := range tl.channels {
		ch := &tl.channels[ci]
		winner := -1
		for _, si := range ch.segs {
			if start, _ := tl.segments[si].Span(); t >= start {
				winner = si
			}
		}
		var v float64
		if winner >= 0 {
			v = tl.segments[winner].ValueAt(t)
		} else {
			first := ch.segs[0]
			firstStart, _ := tl.segments[first].Span()
			for _, si := range ch.segs[1:] {
				if start, _ := tl.segments[si].Span(); start < firstStart {
					first, firstStart = si, start
				}
			}
			v = tl.segments[first].From
		}
		dst = append(dst, Write{Target: ch.key.target, Property: ch.key.prop, Value: v})
	}
	return dst
}

// Conflict reports two segments on the same target property whose spans
// overlap; the later-registered one wins while both are active.
type Conflict struct {
	Target   Handle
	Property Property
	First    int
	Second   int
}

// Conflicts lists overlapping segments on the same channel.
func (tl *Timeline) Conflicts() []Conflict {
	var out []Conflict
	for _, ch := range tl.channels {
		for a := 0; a < len(ch.segs); a++ {
			as, ae := tl.segments[ch.segs[a]].Span()
			for b := a + 1; b < len(ch.segs); b++ {
				bs, be := tl.segments[ch.segs[b]].Span()
				if as < be && bs < ae {
					out = append(out, Conflict{ch.key.target, ch.key.prop, ch.segs[a], ch.segs[b]})
				}
			}
		}
	}
	return out
}

// Sentinel errors returned by Compile and Binding.Validate.
var (
	ErrMissingHandle  = errors.New("scrollstage: missing handle")
	ErrUnknownLabel   = errors.New("scrollstage: unknown label")
	ErrDuplicateLabel = errors.New("scrollstage: duplicate label")
	ErrInvalidStagger = errors.New("scrollstage: invalid stagger")
	ErrNoHost         = errors.New("scrollstage: no host")
)
