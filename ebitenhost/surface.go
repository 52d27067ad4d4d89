package ebitenhost

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/phanxgames/weatheroverlay"
)

// whitePixel is the texture sampled by solid-color triangles.
var whitePixel *ebiten.Image

func init() {
	whitePixel = ebiten.NewImage(1, 1)
	whitePixel.Fill(weatheroverlay.ColorWhite.RGBA())
}

// defaultFace is used for every Font; the overlay only ever draws short
// labels.
var defaultFace = text.NewGoXFace(basicfont.Face7x13)

// Surface implements weatheroverlay.Surface on an *ebiten.Image. Solid fills
// and strokes are triangulated with ebiten's vector package; gradient fills
// run through a Kage shader.
type Surface struct {
	dst *ebiten.Image
	weatheroverlay.Path

	fill      weatheroverlay.Paint
	stroke    weatheroverlay.Color
	lineWidth float64
	lineCap   weatheroverlay.LineCap
	alpha     float64
	align     weatheroverlay.TextAlign
	baseline  weatheroverlay.TextBaseline
	face      text.Face

	vpath    vector.Path
	vertices []ebiten.Vertex
	indices  []uint16
	uniforms map[string]any
}

var _ weatheroverlay.Surface = (*Surface)(nil)

// NewSurface wraps dst.
func NewSurface(dst *ebiten.Image) *Surface {
	return &Surface{
		dst:       dst,
		fill:      weatheroverlay.Color{A: 1},
		stroke:    weatheroverlay.Color{A: 1},
		lineWidth: 1,
		alpha:     1,
		face:      defaultFace,
		uniforms:  make(map[string]any, 6),
	}
}

// Image returns the target image.
func (s *Surface) Image() *ebiten.Image {
	return s.dst
}

// ClearRect implements weatheroverlay.Surface.
func (s *Surface) ClearRect(x, y, w, h float64) {
	r := image.Rect(
		int(math.Floor(x)), int(math.Floor(y)),
		int(math.Ceil(x+w)), int(math.Ceil(y+h)),
	).Intersect(s.dst.Bounds())
	if r.Empty() {
		return
	}
	if r == s.dst.Bounds() {
		s.dst.Clear()
		return
	}
	s.dst.SubImage(r).(*ebiten.Image).Clear()
}

// FillRect implements weatheroverlay.Surface. The current path is left
// untouched.
func (s *Surface) FillRect(x, y, w, h float64) {
	s.vpath.Reset()
	s.vpath.MoveTo(float32(x), float32(y))
	s.vpath.LineTo(float32(x+w), float32(y))
	s.vpath.LineTo(float32(x+w), float32(y+h))
	s.vpath.LineTo(float32(x), float32(y+h))
	s.vpath.Close()
	s.fillPath(s.fill)
}

// SetFillStyle implements weatheroverlay.Surface. A nil paint is ignored.
func (s *Surface) SetFillStyle(p weatheroverlay.Paint) {
	if p != nil {
		s.fill = p
	}
}

// SetStrokeStyle implements weatheroverlay.Surface.
func (s *Surface) SetStrokeStyle(c weatheroverlay.Color) { s.stroke = c }

// SetLineWidth implements weatheroverlay.Surface. Non-positive and
// non-finite widths are ignored.
func (s *Surface) SetLineWidth(w float64) {
	if w > 0 && !math.IsInf(w, 0) {
		s.lineWidth = w
	}
}

// SetLineCap implements weatheroverlay.Surface.
func (s *Surface) SetLineCap(c weatheroverlay.LineCap) { s.lineCap = c }

// SetGlobalAlpha implements weatheroverlay.Surface. Values outside [0, 1]
// are ignored.
func (s *Surface) SetGlobalAlpha(a float64) {
	if a >= 0 && a <= 1 {
		s.alpha = a
	}
}

// SetFont implements weatheroverlay.Surface. Every font maps to the same
// bitmap face.
func (s *Surface) SetFont(weatheroverlay.Font) {}

// SetTextAlign implements weatheroverlay.Surface.
func (s *Surface) SetTextAlign(a weatheroverlay.TextAlign) { s.align = a }

// SetTextBaseline implements weatheroverlay.Surface.
func (s *Surface) SetTextBaseline(b weatheroverlay.TextBaseline) { s.baseline = b }

// Fill implements weatheroverlay.Surface using the non-zero rule.
func (s *Surface) Fill() {
	s.buildPath(3)
	s.fillPath(s.fill)
}

// Stroke implements weatheroverlay.Surface.
func (s *Surface) Stroke() {
	s.buildPath(2)
	op := &vector.StrokeOptions{
		Width:    float32(s.lineWidth),
		LineJoin: vector.LineJoinRound,
		LineCap:  vectorLineCap(s.lineCap),
	}
	s.vertices, s.indices = s.vpath.AppendVerticesAndIndicesForStroke(s.vertices[:0], s.indices[:0], op)
	s.drawSolid(s.stroke)
}

// FillText implements weatheroverlay.Surface.
func (s *Surface) FillText(str string, x, y float64) {
	var c weatheroverlay.Color
	switch p := s.fill.(type) {
	case weatheroverlay.Color:
		c = p
	case *weatheroverlay.RadialGradient:
		c = p.At(x, y)
	}

	op := &text.DrawOptions{}
	m := s.face.Metrics()
	switch s.baseline {
	case weatheroverlay.TextBaselineTop:
		op.SecondaryAlign = text.AlignStart
	case weatheroverlay.TextBaselineMiddle:
		op.SecondaryAlign = text.AlignCenter
	case weatheroverlay.TextBaselineBottom:
		op.SecondaryAlign = text.AlignEnd
	default:
		y -= m.HAscent
	}
	switch s.align {
	case weatheroverlay.TextAlignCenter:
		op.PrimaryAlign = text.AlignCenter
	case weatheroverlay.TextAlignEnd:
		op.PrimaryAlign = text.AlignEnd
	}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c.WithAlpha(s.alpha).RGBA())
	text.Draw(s.dst, str, s.face, op)
}

// buildPath copies subpaths with at least minPoints points into the ebiten
// vector path.
func (s *Surface) buildPath(minPoints int) {
	s.vpath.Reset()
	for _, sp := range s.Subpaths() {
		if len(sp.Points) < minPoints {
			continue
		}
		s.vpath.MoveTo(float32(sp.Points[0].X), float32(sp.Points[0].Y))
		for _, pt := range sp.Points[1:] {
			s.vpath.LineTo(float32(pt.X), float32(pt.Y))
		}
		if sp.Closed || minPoints == 3 {
			s.vpath.Close()
		}
	}
}

func (s *Surface) fillPath(p weatheroverlay.Paint) {
	s.vertices, s.indices = s.vpath.AppendVerticesAndIndicesForFilling(s.vertices[:0], s.indices[:0])
	switch p := p.(type) {
	case weatheroverlay.Color:
		s.drawSolid(p)
	case *weatheroverlay.RadialGradient:
		s.drawGradient(p)
	}
}

func (s *Surface) drawSolid(c weatheroverlay.Color) {
	if len(s.indices) == 0 || s.alpha == 0 {
		return
	}
	for i := range s.vertices {
		v := &s.vertices[i]
		v.SrcX, v.SrcY = 0.5, 0.5
		v.ColorR = float32(c.R)
		v.ColorG = float32(c.G)
		v.ColorB = float32(c.B)
		v.ColorA = float32(c.A * s.alpha)
	}
	s.dst.DrawTriangles(s.vertices, s.indices, whitePixel, &ebiten.DrawTrianglesOptions{
		FillRule:  ebiten.FillRuleNonZero,
		AntiAlias: true,
	})
}

func (s *Surface) drawGradient(g *weatheroverlay.RadialGradient) {
	if len(s.indices) == 0 || s.alpha == 0 {
		return
	}
	gradientUniforms(s.uniforms, g, s.alpha)
	s.dst.DrawTrianglesShader(s.vertices, s.indices, ensureRadialGradientShader(), &ebiten.DrawTrianglesShaderOptions{
		Uniforms:  s.uniforms,
		FillRule:  ebiten.FillRuleNonZero,
		AntiAlias: true,
	})
}

func vectorLineCap(c weatheroverlay.LineCap) vector.LineCap {
	switch c {
	case weatheroverlay.LineCapRound:
		return vector.LineCapRound
	case weatheroverlay.LineCapSquare:
		return vector.LineCapSquare
	default:
		return vector.LineCapButt
	}
}
