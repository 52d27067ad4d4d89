package weatheroverlay

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// RasterSurface is a software Surface backed by an *image.RGBA. Paths are
// rasterized with golang.org/x/image/vector and text is drawn with the
// basicfont 7x13 face regardless of the requested Font.
type RasterSurface struct {
	img    *image.RGBA
	bounds Rect
	z      vector.Rasterizer
	Path

	fill      Paint
	stroke    Color
	lineWidth float64
	lineCap   LineCap
	alpha     float64
	font      Font
	align     TextAlign
	baseline  TextBaseline

	polys [][]Vec2 // scratch for Fill and Stroke
}

// NewRasterSurface creates a transparent w×h surface.
func NewRasterSurface(w, h int) *RasterSurface {
	return &RasterSurface{
		img:       image.NewRGBA(image.Rect(0, 0, w, h)),
		bounds:    Rect{Width: float64(w), Height: float64(h)},
		fill:      Color{A: 1},
		stroke:    Color{A: 1},
		lineWidth: 1,
		alpha:     1,
		font:      DefaultFont,
	}
}

// Image returns the backing image. It is overwritten by subsequent drawing.
func (s *RasterSurface) Image() *image.RGBA {
	return s.img
}

// Clone returns a copy of the current pixels.
func (s *RasterSurface) Clone() *image.RGBA {
	out := image.NewRGBA(s.img.Rect)
	copy(out.Pix, s.img.Pix)
	return out
}

// Size returns the surface dimensions in pixels.
func (s *RasterSurface) Size() (int, int) {
	return s.img.Rect.Dx(), s.img.Rect.Dy()
}

// ClearRect implements Surface.
func (s *RasterSurface) ClearRect(x, y, w, h float64) {
	r := pixelRect(Rect{x, y, w, h}.Intersect(s.bounds))
	for py := r.Min.Y; py < r.Max.Y; py++ {
		row := s.img.Pix[s.img.PixOffset(r.Min.X, py):s.img.PixOffset(r.Max.X, py)]
		clear(row)
	}
}

// FillRect implements Surface. The current path is left untouched.
func (s *RasterSurface) FillRect(x, y, w, h float64) {
	rect := []Vec2{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}
	s.polys = append(s.polys[:0], rect)
	s.rasterize(s.polys, s.fill)
}

// SetFillStyle implements Surface. A nil paint is ignored.
func (s *RasterSurface) SetFillStyle(p Paint) {
	if p != nil {
		s.fill = p
	}
}

// SetStrokeStyle implements Surface.
func (s *RasterSurface) SetStrokeStyle(c Color) { s.stroke = c }

// SetLineWidth implements Surface. Non-positive and non-finite widths are
// ignored.
func (s *RasterSurface) SetLineWidth(w float64) {
	if w > 0 && !math.IsInf(w, 0) {
		s.lineWidth = w
	}
}

// SetLineCap implements Surface.
func (s *RasterSurface) SetLineCap(c LineCap) { s.lineCap = c }

// SetGlobalAlpha implements Surface. Values outside [0, 1] are ignored.
func (s *RasterSurface) SetGlobalAlpha(a float64) {
	if a >= 0 && a <= 1 {
		s.alpha = a
	}
}

// SetFont implements Surface.
func (s *RasterSurface) SetFont(f Font) { s.font = f }

// SetTextAlign implements Surface.
func (s *RasterSurface) SetTextAlign(a TextAlign) { s.align = a }

// SetTextBaseline implements Surface.
func (s *RasterSurface) SetTextBaseline(b TextBaseline) { s.baseline = b }

// Fill implements Surface using the non-zero rule. Every subpath is
// implicitly closed.
func (s *RasterSurface) Fill() {
	s.polys = s.polys[:0]
	for _, sp := range s.Subpaths() {
		if len(sp.Points) >= 3 {
			s.polys = append(s.polys, sp.Points)
		}
	}
	s.rasterize(s.polys, s.fill)
}

// Stroke implements Surface. Segments are joined by the caps only.
func (s *RasterSurface) Stroke() {
	s.polys = s.polys[:0]
	for _, sp := range s.Subpaths() {
		s.polys = append(s.polys, strokePolygons(sp.Points, sp.Closed, s.lineWidth, s.lineCap)...)
	}
	s.rasterize(s.polys, s.stroke)
}

// FillText implements Surface with the fill color. Gradient fills draw with
// the gradient's color at the text anchor.
func (s *RasterSurface) FillText(text string, x, y float64) {
	var c Color
	switch p := s.fill.(type) {
	case Color:
		c = p
	case *RadialGradient:
		c = p.At(x, y)
	}

	face := basicfont.Face7x13
	d := font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(c.WithAlpha(s.alpha).RGBA()),
		Face: face,
	}

	width := float64(d.MeasureString(text)) / 64
	switch s.align {
	case TextAlignCenter:
		x -= width / 2
	case TextAlignEnd:
		x -= width
	}

	m := face.Metrics()
	ascent := float64(m.Ascent) / 64
	descent := float64(m.Descent) / 64
	switch s.baseline {
	case TextBaselineTop:
		y += ascent
	case TextBaselineMiddle:
		y += (ascent - descent) / 2
	case TextBaselineBottom:
		y -= descent
	}

	d.Dot = fixed.Point26_6{
		X: fixed.Int26_6(math.Round(x * 64)),
		Y: fixed.Int26_6(math.Round(y * 64)),
	}
	d.DrawString(text)
}

// rasterize composites the union of polys over the image with paint, scaled
// by the global alpha. Only the part of the surface the polygons touch is
// rasterized.
func (s *RasterSurface) rasterize(polys [][]Vec2, p Paint) {
	if len(polys) == 0 || s.alpha == 0 {
		return
	}

	box := polygonBounds(polys).Intersect(s.bounds)
	if box.Empty() {
		return
	}
	r := pixelRect(box)
	if r.Empty() {
		return
	}
	clip := Rect{float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy())}

	s.z.Reset(r.Dx(), r.Dy())
	s.z.DrawOp = draw.Over
	ox, oy := clip.X, clip.Y
	for _, poly := range polys {
		pts := clipPolygon(poly, clip)
		if len(pts) < 3 {
			continue
		}
		s.z.MoveTo(float32(pts[0].X-ox), float32(pts[0].Y-oy))
		for _, pt := range pts[1:] {
			s.z.LineTo(float32(pt.X-ox), float32(pt.Y-oy))
		}
		s.z.ClosePath()
	}

	s.z.Draw(s.img, r, paintImage(p, s.alpha, s.img.Rect), r.Min)
}

func polygonBounds(polys [][]Vec2) Rect {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, poly := range polys {
		for _, pt := range poly {
			minX = math.Min(minX, pt.X)
			minY = math.Min(minY, pt.Y)
			maxX = math.Max(maxX, pt.X)
			maxY = math.Max(maxY, pt.Y)
		}
	}
	if minX > maxX {
		return Rect{}
	}
	return Rect{minX, minY, maxX - minX, maxY - minY}
}

// pixelRect returns the smallest pixel rectangle covering r.
func pixelRect(r Rect) image.Rectangle {
	if r.Empty() {
		return image.Rectangle{}
	}
	return image.Rect(
		int(math.Floor(r.X)), int(math.Floor(r.Y)),
		int(math.Ceil(r.X+r.Width)), int(math.Ceil(r.Y+r.Height)),
	)
}

// paintImage adapts a Paint to an image source for compositing.
func paintImage(p Paint, alpha float64, bounds image.Rectangle) image.Image {
	switch p := p.(type) {
	case *RadialGradient:
		return &gradientImage{g: p, alpha: alpha, bounds: bounds}
	case Color:
		return image.NewUniform(p.WithAlpha(alpha).RGBA())
	default:
		return image.Transparent
	}
}

// gradientImage samples a RadialGradient at pixel centers.
type gradientImage struct {
	g      *RadialGradient
	alpha  float64
	bounds image.Rectangle
}

func (gi *gradientImage) ColorModel() color.Model { return color.RGBAModel }

func (gi *gradientImage) Bounds() image.Rectangle { return gi.bounds }

func (gi *gradientImage) At(x, y int) color.Color {
	return gi.g.At(float64(x)+0.5, float64(y)+0.5).WithAlpha(gi.alpha).RGBA()
}
