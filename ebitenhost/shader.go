package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/weatheroverlay"
)

// maxGradientStops is the number of stops the gradient shader can blend.
// Extra stops are dropped.
const maxGradientStops = 8

// radialGradientShaderSrc paints a concentric radial gradient. Colors are
// straight alpha; the output is premultiplied.
const radialGradientShaderSrc = `//kage:unit pixels
package main

var Center vec2
var Radii vec2
var StopCount float
var Offsets [8]float
var Colors [8]vec4
var Alpha float

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	d := distance(dst.xy, Center)
	span := Radii.y - Radii.x
	t := 0.0
	if span == 0.0 {
		if d >= Radii.x {
			t = 1.0
		}
	} else {
		t = clamp((d-Radii.x)/span, 0.0, 1.0)
	}
	c := Colors[0]
	for i := 1; i < 8; i++ {
		if float(i) < StopCount && t > Offsets[i-1] {
			k := 1.0
			if Offsets[i] > Offsets[i-1] {
				k = clamp((t-Offsets[i-1])/(Offsets[i]-Offsets[i-1]), 0.0, 1.0)
			}
			c = mix(Colors[i-1], Colors[i], k)
		}
	}
	a := c.a * Alpha
	return vec4(c.rgb*a, a)
}
`

// Compiled on the first gradient fill.
var radialGradientShader *ebiten.Shader

func ensureRadialGradientShader() *ebiten.Shader {
	if radialGradientShader == nil {
		s, err := ebiten.NewShader([]byte(radialGradientShaderSrc))
		if err != nil {
			panic("ebitenhost: failed to compile radial gradient shader: " + err.Error())
		}
		radialGradientShader = s
	}
	return radialGradientShader
}

// gradientUniforms fills u with the shader uniforms for g at global alpha.
func gradientUniforms(u map[string]any, g *weatheroverlay.RadialGradient, alpha float64) {
	stops := g.Stops()
	if len(stops) > maxGradientStops {
		stops = stops[:maxGradientStops]
	}
	offsets := make([]float32, maxGradientStops)
	colors := make([]float32, 4*maxGradientStops)
	for i, st := range stops {
		offsets[i] = float32(st.Offset)
		colors[4*i] = float32(st.Color.R)
		colors[4*i+1] = float32(st.Color.G)
		colors[4*i+2] = float32(st.Color.B)
		colors[4*i+3] = float32(st.Color.A)
	}
	u["Center"] = []float32{float32(g.X0), float32(g.Y0)}
	u["Radii"] = []float32{float32(g.R0), float32(g.R1)}
	u["StopCount"] = float32(len(stops))
	u["Offsets"] = offsets
	u["Colors"] = colors
	u["Alpha"] = float32(alpha)
}
