// Package scrollstage maps scroll position to a deterministic animation
// timeline and layers a pointer-reactive distortion filter on top.
//
// A host (a renderer, a page, a test) owns the visual objects. It hands
// scrollstage opaque [Handle]s for them, reads and writes their properties
// through the [Host] interface, and delivers scroll, resize and pointer
// notifications. scrollstage owns only the timeline, the stagger
// distribution, the pin state and the pointer state.
//
// # Quick start
//
// Build a timeline, describe the trigger region and mount a [Stage]:
//
//	tl := scrollstage.NewTimeline(scrollstage.TimelineConfig{})
//	tl.FromTo([]string{"title"},
//		[]scrollstage.Prop{scrollstage.P(scrollstage.PropScale, 0.5)},
//		[]scrollstage.Prop{scrollstage.P(scrollstage.PropScale, 1.45)},
//		scrollstage.TweenOptions{Ease: scrollstage.OutQuart},
//		scrollstage.At(0))
//
//	stage := scrollstage.Mount(scrollstage.Binding{
//		Host:      host,
//		Handles:   scrollstage.HandleTable{"wrapper": 1, "title": 2},
//		Trigger:   "wrapper",
//		PinTarget: "wrapper",
//		TriggerConfig: scrollstage.TriggerConfig{
//			Pin:        true,
//			Anticipate: 1,
//		},
//		Layout:   scrollstage.Layout{ElementTop: 0, ElementHeight: 720, ViewportHeight: 720},
//		Timeline: tl,
//	})
//	defer stage.Dispose()
//
// Then forward host notifications: [Stage.Scroll] on every scroll event,
// [Stage.Resize] when the layout changes, [Stage.PointerEnter],
// [Stage.PointerMove] and [Stage.PointerLeave] for hover targets, and
// [Stage.Frame] once per display frame. Hosts that push events can implement
// [EventSource] (or embed a [ListenerRegistry]) and set Binding.Source; the
// stage then subscribes on mount and unsubscribes on [Stage.Dispose].
//
// # Timelines
//
// Positions are in timeline units; progress p in [0, 1] plays the timeline at
// p times its duration. Segments before their start show their start value
// and segments after their end show their end value, so a discontinuous
// scroll jump never leaves an object half-way. When segments overlap on the
// same property of the same object, the last registered one that has begun
// wins. Labels ([TimelineBuilder.AddLabel], [AtLabel]) are resolved once by
// [TimelineBuilder.Compile].
//
// A [Stagger] spreads one tween across its targets by index, in a seeded
// random order, or outward from the center of their positions.
//
// # Pointer distortion
//
// A [PointerController] maps the pointer position inside the hovered
// target's box to [FilterParams] at most once per frame while hovering, and
// restores the baseline on leave and on dispose.
//
// # Teardown
//
// [Stage.Dispose] is idempotent. It cancels pending frame work, releases the
// pin, writes every animated property back to the value read at mount and
// resets the filter. Events that arrive afterwards are ignored.
//
// A concrete host on [Ebitengine] lives in scrollstage/ebitenhost, and an
// ECS bridge (via [Donburi]) in scrollstage/ecs.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package scrollstage
