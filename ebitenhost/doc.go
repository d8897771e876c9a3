// Package ebitenhost is a scrollstage host built on [Ebitengine].
//
// A [Host] is a flat registry of textured quads with CSS-like 3D transforms
// (a fixed [FaceTransform] plus the animated x, y, z, scale, opacity,
// rotateX and rotateY properties), projected with a perspective camera. It
// implements scrollstage.Host, scrollstage.FilterSink,
// scrollstage.EventSource and scrollstage.LayoutReader, so a stage can be
// mounted on it directly:
//
//	host := ebitenhost.New(ebitenhost.Config{Width: 1280, Height: 720, Trigger: "section"})
//	// ... host.Add objects ...
//	stage := scrollstage.Mount(scrollstage.Binding{
//		Host: host, Filter: host, Source: host,
//		Handles: host.Handles(), HoverTargets: host.HoverTargets(),
//		// ...
//	})
//	ebitenhost.Run(ebitenhost.NewGame(host, stage, ebitenhost.GameConfig{}),
//		ebitenhost.RunConfig{Title: "cube", Width: 1280, Height: 720})
//
// Hovered objects with the filter attached are drawn through [GlitchFilter],
// a Kage turbulence displacement shader.
//
// [Ebitengine]: https://ebitengine.org
package ebitenhost
