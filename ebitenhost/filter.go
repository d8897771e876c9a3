package ebitenhost

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/scrollstage"
)

// glitchShaderSrc displaces each pixel by two channels of fractal
// turbulence: the noise frequency is Params.xy (cycles per pixel) and the
// displacement scale is Params.z pixels, as in an SVG
// feTurbulence + feDisplacementMap pair.
const glitchShaderSrc = `//kage:unit pixels
package main

var Params vec3

func hash2(p vec2) float {
	return fract(sin(dot(p, vec2(127.1, 311.7))) * 43758.5453)
}

func valueNoise(p vec2) float {
	i := floor(p)
	f := fract(p)
	u := f * f * (3 - 2*f)
	a := hash2(i)
	b := hash2(i + vec2(1, 0))
	c := hash2(i + vec2(0, 1))
	d := hash2(i + vec2(1, 1))
	return mix(mix(a, b, u.x), mix(c, d, u.x), u.y)
}

func turbulence(p vec2) float {
	sum := 0.0
	amp := 0.5
	for i := 0; i < 2; i++ {
		sum += amp * abs(valueNoise(p)*2-1)
		p *= 2
		amp *= 0.5
	}
	return sum
}

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	pos := src - imageSrc0Origin()
	p := pos * Params.xy
	dx := turbulence(p)
	dy := turbulence(p + vec2(31.7, 17.3))
	offset := (vec2(dx, dy) - 0.5) * Params.z
	return imageSrc0At(src + offset)
}
`

// --- Lazy shader compilation ---

var glitchShader *ebiten.Shader

func ensureGlitchShader() *ebiten.Shader {
	if glitchShader == nil {
		s, err := ebiten.NewShader([]byte(glitchShaderSrc))
		if err != nil {
			panic("scrollstage: failed to compile glitch shader: " + err.Error())
		}
		glitchShader = s
	}
	return glitchShader
}

// GlitchFilter distorts an image with turbulence-driven displacement.
type GlitchFilter struct {
	Params scrollstage.FilterParams

	uniforms    map[string]any
	paramsF32   [3]float32 // persistent buffer to avoid per-frame slice escape
	paramsSlice []float32  // persistent slice header pointing into paramsF32
	shaderOp    ebiten.DrawRectShaderOptions
}

// NewGlitchFilter creates a filter with zero displacement.
func NewGlitchFilter() *GlitchFilter {
	f := &GlitchFilter{
		uniforms: make(map[string]any, 1),
	}
	f.paramsSlice = f.paramsF32[:]
	f.uniforms["Params"] = f.paramsSlice
	return f
}

// Apply renders src into dst with the displacement.
func (f *GlitchFilter) Apply(src, dst *ebiten.Image) {
	shader := ensureGlitchShader()
	f.paramsF32[0] = float32(f.Params.FreqX)
	f.paramsF32[1] = float32(f.Params.FreqY)
	f.paramsF32[2] = float32(f.Params.Intensity)
	bounds := src.Bounds()
	f.shaderOp.Images[0] = src
	f.shaderOp.Uniforms = f.uniforms
	dst.DrawRectShader(bounds.Dx(), bounds.Dy(), shader, &f.shaderOp)
}

// Padding returns the largest displacement in pixels.
func (f *GlitchFilter) Padding() int {
	return int(math.Ceil(math.Abs(f.Params.Intensity) / 2))
}
